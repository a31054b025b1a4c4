package search

import (
	"math"
	"sort"
	"strconv"

	"github.com/gcbaptista/go-fuzzy-search/config"
	"github.com/gcbaptista/go-fuzzy-search/internal/errors"
	"github.com/gcbaptista/go-fuzzy-search/internal/extract"
	"github.com/gcbaptista/go-fuzzy-search/internal/matcher"
	"github.com/gcbaptista/go-fuzzy-search/internal/pattern"
	"github.com/gcbaptista/go-fuzzy-search/model"
	"github.com/gcbaptista/go-fuzzy-search/services"
)

// Index is an immutable snapshot of records paired with the fields and
// scoring settings used to search them. It is safe for concurrent use:
// nothing is mutated after BuildIndex returns.
type Index struct {
	settings config.IndexSettings
	fields   []FieldSpec
	records  []model.Record
}

type buildOptions struct {
	accessors map[string]extract.Accessor
}

// BuildOption customizes BuildIndex.
type BuildOption func(*buildOptions)

// WithAccessor overrides how the named field is read from records.
func WithAccessor(field string, accessor extract.Accessor) BuildOption {
	return func(o *buildOptions) {
		o.accessors[field] = accessor
	}
}

// BuildIndex snapshots records and validates settings. It returns a
// *errors.ConfigurationError when the fields are empty or invalid, or when
// the threshold is outside (0,1]; in that case no index is created.
//
// Records keep their ID when one is given; otherwise the ID is taken from a
// document "id" field, falling back to the record's position.
func BuildIndex(records []model.Record, settings config.IndexSettings, opts ...BuildOption) (*Index, error) {
	settings = settings.Clone()
	settings.ApplyDefaults()

	options := buildOptions{accessors: make(map[string]extract.Accessor)}
	for _, opt := range opts {
		opt(&options)
	}

	problems := settings.Validate()
	known := make(map[string]bool, len(settings.Fields))
	for _, f := range settings.Fields {
		known[f.Name] = true
	}
	var unknown []string
	for name := range options.accessors {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		problems = append(problems, "Accessor given for unknown field '"+name+"'")
	}
	if len(problems) > 0 {
		return nil, errors.NewConfigurationError(settings.Name, problems...)
	}

	fields := make([]FieldSpec, len(settings.Fields))
	for i, f := range settings.Fields {
		accessor, ok := options.accessors[f.Name]
		if !ok {
			accessor = extract.Path(f.Name)
		}
		fields[i] = FieldSpec{Name: f.Name, Weight: f.Weight, Accessor: accessor}
	}

	snapshot := make([]model.Record, len(records))
	for i, rec := range records {
		rec.Position = i
		if rec.ID == "" {
			rec.ID = recordID(rec.Data, i)
		}
		snapshot[i] = rec
	}

	return &Index{
		settings: settings,
		fields:   fields,
		records:  snapshot,
	}, nil
}

func recordID(data interface{}, position int) string {
	if id := extract.Path("id").Extract(data); id != "" {
		return id
	}
	return strconv.Itoa(position)
}

// Settings returns a copy of the settings, with defaults applied.
func (idx *Index) Settings() config.IndexSettings {
	return idx.settings.Clone()
}

// Fields returns the resolved field specs.
func (idx *Index) Fields() []FieldSpec {
	return append([]FieldSpec(nil), idx.fields...)
}

// Len returns the number of records in the index.
func (idx *Index) Len() int {
	return len(idx.records)
}

// Records returns a copy of the indexed records in insertion order.
func (idx *Index) Records() []model.Record {
	return append([]model.Record(nil), idx.records...)
}

// Search compiles query, matches every configured field of every record and
// returns the records whose combined score is within the threshold, best
// first. Ties keep insertion order. An empty query or no match yields an
// empty, non-nil slice.
func (idx *Index) Search(query string) []services.MatchResult {
	p := pattern.Compile(query, pattern.Options{
		MaxPatternLength: idx.settings.MaxPatternLength,
		MinTermLength:    idx.settings.MinMatchCharLength,
	})
	if p.IsEmpty() {
		return []services.MatchResult{}
	}

	opts := matcher.Options{
		Threshold:      idx.settings.Threshold,
		DistanceWeight: idx.settings.EffectiveDistanceWeight(),
		PositionWeight: idx.settings.EffectivePositionWeight(),
	}
	includeMatches := idx.settings.ShouldIncludeMatches()

	results := make([]services.MatchResult, 0)
	for i := range idx.records {
		hit := idx.matchRecord(i, p, opts, includeMatches)
		if hit == nil {
			continue
		}

		score := combine(idx.settings.Combine, hit)
		if score > idx.settings.Threshold {
			continue
		}

		results = append(results, services.MatchResult{
			Record:  idx.records[i],
			Score:   score,
			Matches: hit.matches,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score < results[j].Score
	})

	return results
}

// matchRecord runs the matcher over every field of one record. Field scores
// above the threshold are discarded, so a record is a candidate only when at
// least one field is itself acceptable.
func (idx *Index) matchRecord(i int, p pattern.Pattern, opts matcher.Options, includeMatches bool) *candidateHit {
	rec := idx.records[i]

	var hit *candidateHit
	for _, field := range idx.fields {
		value := field.Accessor.Extract(rec.Data)
		if value == "" {
			continue
		}

		result, ok := matcher.Match(value, p, opts)
		if !ok || result.Score > opts.Threshold {
			continue
		}

		fm := services.FieldMatch{Field: field.Name, Value: value, Score: result.Score}
		if includeMatches {
			fm.Ranges = result.Ranges
		}

		if hit == nil {
			hit = &candidateHit{}
		}
		hit.matches = append(hit.matches, fm)
		hit.weights = append(hit.weights, field.Weight)
	}
	return hit
}

// combine merges field scores into a record score.
//
// best: the minimum of score^weight over matched fields. Weight 1 leaves a
// score unchanged, heavier fields pull their score towards 0, and since
// scores are in [0,1) the result stays there.
//
// weighted_average: sum(weight*score) / sum(weight) over matched fields.
func combine(policy string, hit *candidateHit) float64 {
	switch policy {
	case config.CombineWeightedAverage:
		total, weights := 0.0, 0.0
		for i, m := range hit.matches {
			total += hit.weights[i] * m.Score
			weights += hit.weights[i]
		}
		if weights == 0 {
			return 1
		}
		return total / weights
	default:
		best := math.Inf(1)
		for i, m := range hit.matches {
			if s := math.Pow(m.Score, hit.weights[i]); s < best {
				best = s
			}
		}
		return best
	}
}
