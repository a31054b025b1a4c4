// Package extract resolves the text values of configured fields from records.
//
// Extraction never fails: a missing path, a nil record or a value that is not
// text all resolve to the empty string, which never matches.
package extract

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/gcbaptista/go-fuzzy-search/model"
)

// Accessor yields the text of one field of a record.
type Accessor interface {
	Extract(record interface{}) string
}

// AccessorFunc adapts a plain function to the Accessor interface.
type AccessorFunc func(record interface{}) string

// Extract calls f(record).
func (f AccessorFunc) Extract(record interface{}) string {
	return f(record)
}

// PathAccessor resolves a dotted path such as "course.name".
//
// Supported record shapes:
//   - model.Fielder: the record answers for itself
//   - json.RawMessage, []byte: raw JSON, resolved with gjson
//   - model.Document, map[string]interface{}, map[string]string and
//     []interface{} (numeric segments index into slices)
type PathAccessor struct {
	path     string
	segments []string
}

// Path returns an Accessor for the given dotted path.
func Path(path string) *PathAccessor {
	return &PathAccessor{
		path:     path,
		segments: strings.Split(path, "."),
	}
}

// String returns the dotted path.
func (a *PathAccessor) String() string {
	return a.path
}

// Extract returns the text at the path, or "" when absent or not text.
func (a *PathAccessor) Extract(record interface{}) string {
	switch rec := record.(type) {
	case nil:
		return ""
	case model.Fielder:
		if value, ok := rec.Field(a.path); ok {
			return value
		}
		return ""
	case json.RawMessage:
		return jsonText(gjson.GetBytes(rec, a.path))
	case []byte:
		return jsonText(gjson.GetBytes(rec, a.path))
	}

	current := record
	for _, segment := range a.segments {
		next, ok := step(current, segment)
		if !ok {
			return ""
		}
		current = next
	}

	if text, ok := current.(string); ok {
		return text
	}
	return ""
}

func jsonText(result gjson.Result) string {
	if result.Type != gjson.String {
		return ""
	}
	return result.Str
}

func step(current interface{}, segment string) (interface{}, bool) {
	switch node := current.(type) {
	case model.Document:
		value, ok := node[segment]
		return value, ok
	case map[string]interface{}:
		value, ok := node[segment]
		return value, ok
	case map[string]string:
		value, ok := node[segment]
		return value, ok
	case []interface{}:
		i, err := strconv.Atoi(segment)
		if err != nil || i < 0 || i >= len(node) {
			return nil, false
		}
		return node[i], true
	case []string:
		i, err := strconv.Atoi(segment)
		if err != nil || i < 0 || i >= len(node) {
			return nil, false
		}
		return node[i], true
	}
	return nil, false
}
