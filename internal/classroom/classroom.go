// Package classroom searches exported Google Classroom data: courses,
// assignments (course work) and announcements. Each entity type has a fixed
// set of searchable fields and its own result line format.
package classroom

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/gcbaptista/go-fuzzy-search/config"
	"github.com/gcbaptista/go-fuzzy-search/internal/extract"
	"github.com/gcbaptista/go-fuzzy-search/model"
	"github.com/gcbaptista/go-fuzzy-search/services"
)

// Kind names a Classroom entity type.
type Kind string

const (
	Courses       Kind = "courses"
	Assignments   Kind = "assignments"
	Announcements Kind = "announcements"
)

const previewLength = 50

type preset struct {
	fields  []string
	listKey string // member holding the list in a Classroom API list response
	scope   string // suffix of the results header
}

var presets = map[Kind]preset{
	Courses:       {fields: []string{"name"}, listKey: "courses"},
	Assignments:   {fields: []string{"title", "description"}, listKey: "courseWork", scope: " in assignments"},
	Announcements: {fields: []string{"text"}, listKey: "announcements", scope: " in announcements"},
}

// ParseKind validates an entity type name.
func ParseKind(name string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := presets[kind]; !ok {
		return "", fmt.Errorf("unknown entity type '%s' (must be courses, assignments or announcements)", name)
	}
	return kind, nil
}

// Settings returns the index settings for kind. A zero threshold keeps the default.
func Settings(kind Kind, threshold float64) config.IndexSettings {
	p := presets[kind]
	fields := make([]config.FieldSettings, len(p.fields))
	for i, name := range p.fields {
		fields[i] = config.FieldSettings{Name: name}
	}
	return config.IndexSettings{
		Name:      string(kind),
		Fields:    fields,
		Threshold: threshold,
	}
}

// LoadRecords reads entities of kind from JSON. data is either a plain array
// or a Classroom API list response such as {"courses": [...]}. When courseID
// is set, only entities whose "courseId" matches are kept.
func LoadRecords(data []byte, kind Kind, courseID string) ([]model.Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("records are not valid JSON")
	}

	list := gjson.ParseBytes(data)
	if !list.IsArray() {
		list = list.Get(presets[kind].listKey)
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("no %s list found in records", kind)
	}

	var records []model.Record
	for i, item := range list.Array() {
		if !item.IsObject() {
			return nil, fmt.Errorf("%s entry %d is not an object", kind, i)
		}
		if courseID != "" && item.Get("courseId").String() != courseID {
			continue
		}
		records = append(records, model.Record{Data: json.RawMessage(item.Raw)})
	}
	return records, nil
}

// FormatHit renders one result line.
func FormatHit(kind Kind, hit services.MatchResult) string {
	field := func(path string) string {
		return extract.Path(path).Extract(hit.Record.Data)
	}

	switch kind {
	case Assignments:
		return fmt.Sprintf("[Assignment] %s (ID: %s) - Score: %.3f", field("title"), hit.Record.ID, hit.Score)
	case Announcements:
		return fmt.Sprintf("[Announcement] %s (ID: %s) - Score: %.3f", preview(field("text")), hit.Record.ID, hit.Score)
	default:
		return fmt.Sprintf("[%s] %s (ID: %s) - Score: %.3f", field("courseState"), field("name"), hit.Record.ID, hit.Score)
	}
}

// preview shortens text to its first 50 characters.
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength]) + "..."
}

// WriteResults prints the results block for query.
func WriteResults(w io.Writer, kind Kind, query string, hits []services.MatchResult) error {
	if _, err := fmt.Fprintf(w, "\nSearch results for \"%s\"%s:\n\n", query, presets[kind].scope); err != nil {
		return err
	}

	if len(hits) == 0 {
		_, err := fmt.Fprintln(w, "No matches found.")
		return err
	}

	for _, hit := range hits {
		if _, err := fmt.Fprintln(w, FormatHit(kind, hit)); err != nil {
			return err
		}
	}
	return nil
}
