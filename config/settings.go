// Package config provides configuration structures for the fuzzy search engine.
// It defines index settings, searchable fields, scoring weights and the
// policy used to combine per-field scores.
package config

import (
	"fmt"
	"strings"
)

// Combine policies for merging per-field scores into a record score.
const (
	CombineBest            = "best"
	CombineWeightedAverage = "weighted_average"
)

const (
	DefaultThreshold        = 0.4
	DefaultMaxPatternLength = 32
	DefaultDistanceWeight   = 1.0
	DefaultPositionWeight   = 0.1
	DefaultFieldWeight      = 1.0

	// MaxBitmaskPatternLength is the width of the bitmask used by the accelerated matcher.
	MaxBitmaskPatternLength = 64
)

// FieldSettings names a searchable field of a record and its relative weight.
// Name may be a dotted path into nested records (e.g. "course.name").
type FieldSettings struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight,omitempty"` // Relative weight, defaults to 1
}

// IndexSettings contains all configuration options for a fuzzy search index.
//
// Matching is case-insensitive: queries and field values are case-folded
// identically before comparison, so scores are comparable across records
// regardless of the original casing.
type IndexSettings struct {
	Name               string          `json:"name"`                            // Unique name for the index (required by the engine)
	Fields             []FieldSettings `json:"fields"`                          // Fields that are searched, e.g. [{"name":"title"},{"name":"description"}]
	Threshold          float64         `json:"threshold"`                       // Maximum accepted score in (0,1]; lower is stricter
	Combine            string          `json:"combine,omitempty"`               // "best" or "weighted_average"
	MaxPatternLength   int             `json:"max_pattern_length,omitempty"`    // Longer terms skip bitmask acceleration
	DistanceWeight     *float64        `json:"distance_weight,omitempty"`       // Weight of the edit distance component of a score (default 1; 0 is kept)
	PositionWeight     *float64        `json:"position_weight,omitempty"`       // Weight of the match position component of a score (default 0.1; 0 is kept)
	IgnoreLocation     bool            `json:"ignore_location,omitempty"`       // Drop the position penalty entirely
	MinMatchCharLength int             `json:"min_match_char_length,omitempty"` // Query terms shorter than this are ignored
	IncludeMatches     *bool           `json:"include_matches,omitempty"`       // Include highlight ranges in results (default true)
}

// FieldNames returns the configured field names in order.
func (settings *IndexSettings) FieldNames() []string {
	names := make([]string, len(settings.Fields))
	for i, f := range settings.Fields {
		names[i] = f.Name
	}
	return names
}

// EffectiveDistanceWeight returns the distance weight, or the default when unset.
func (settings *IndexSettings) EffectiveDistanceWeight() float64 {
	if settings.DistanceWeight == nil {
		return DefaultDistanceWeight
	}
	return *settings.DistanceWeight
}

// EffectivePositionWeight returns the position weight, the default when
// unset, or 0 when location is ignored.
func (settings *IndexSettings) EffectivePositionWeight() float64 {
	if settings.IgnoreLocation {
		return 0
	}
	if settings.PositionWeight == nil {
		return DefaultPositionWeight
	}
	return *settings.PositionWeight
}

// Clone returns a copy that shares no memory with settings.
func (settings *IndexSettings) Clone() IndexSettings {
	clone := *settings
	clone.Fields = append([]FieldSettings(nil), settings.Fields...)
	clone.DistanceWeight = cloneFloat(settings.DistanceWeight)
	clone.PositionWeight = cloneFloat(settings.PositionWeight)
	if settings.IncludeMatches != nil {
		include := *settings.IncludeMatches
		clone.IncludeMatches = &include
	}
	return clone
}

// Float64 returns a pointer to v, for setting optional weights.
func Float64(v float64) *float64 {
	return &v
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

// ShouldIncludeMatches reports whether highlight ranges are returned.
func (settings *IndexSettings) ShouldIncludeMatches() bool {
	return settings.IncludeMatches == nil || *settings.IncludeMatches
}

// Validate checks the settings and returns every problem found.
// An empty slice means the settings can be used to build an index.
func (settings *IndexSettings) Validate() []string {
	var problems []string

	if len(settings.Fields) == 0 {
		problems = append(problems, "At least one searchable field is required")
	}

	seen := make(map[string]bool)
	for _, field := range settings.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			problems = append(problems, "Field name cannot be empty or whitespace-only")
			continue
		}
		if seen[field.Name] {
			problems = append(problems, "Duplicate field '"+field.Name+"' found in fields")
		}
		seen[field.Name] = true
		if field.Weight < 0 {
			problems = append(problems, fmt.Sprintf("Weight for field '%s' must be positive, got %g", field.Name, field.Weight))
		}
		if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") || strings.Contains(name, "..") {
			problems = append(problems, "Field path '"+field.Name+"' has an empty segment")
		}
	}

	if !(settings.Threshold > 0 && settings.Threshold <= 1) {
		problems = append(problems, fmt.Sprintf("Threshold must be in (0,1], got %g", settings.Threshold))
	}

	if settings.Combine != CombineBest && settings.Combine != CombineWeightedAverage {
		problems = append(problems, "Invalid combine policy '"+settings.Combine+"' (must be 'best' or 'weighted_average')")
	}

	if settings.MaxPatternLength < 1 || settings.MaxPatternLength > MaxBitmaskPatternLength {
		problems = append(problems, fmt.Sprintf("max_pattern_length must be between 1 and %d, got %d", MaxBitmaskPatternLength, settings.MaxPatternLength))
	}

	if (settings.DistanceWeight != nil && *settings.DistanceWeight < 0) ||
		(settings.PositionWeight != nil && *settings.PositionWeight < 0) {
		problems = append(problems, "Scoring weights cannot be negative")
	}

	if settings.MinMatchCharLength < 0 {
		problems = append(problems, "min_match_char_length cannot be negative")
	}

	return problems
}

// ApplyDefaults applies default values to the index settings.
// A zero Threshold becomes DefaultThreshold; out-of-range values are left
// untouched so Validate can report them. Scoring weights are only defaulted
// when unset, so an explicit 0 switches that component off.
func (settings *IndexSettings) ApplyDefaults() {
	if settings.Threshold == 0 {
		settings.Threshold = DefaultThreshold
	}
	if settings.Combine == "" {
		settings.Combine = CombineBest
	}
	if settings.MaxPatternLength == 0 {
		settings.MaxPatternLength = DefaultMaxPatternLength
	}
	if settings.DistanceWeight == nil {
		settings.DistanceWeight = Float64(DefaultDistanceWeight)
	}
	if settings.PositionWeight == nil {
		settings.PositionWeight = Float64(DefaultPositionWeight)
	}
	if settings.MinMatchCharLength == 0 {
		settings.MinMatchCharLength = 1
	}

	if settings.Fields == nil {
		settings.Fields = []FieldSettings{}
	}
	for i := range settings.Fields {
		if settings.Fields[i].Weight == 0 {
			settings.Fields[i].Weight = DefaultFieldWeight
		}
	}
}
