package search

import (
	"github.com/gcbaptista/go-fuzzy-search/internal/extract"
	"github.com/gcbaptista/go-fuzzy-search/services"
)

// FieldSpec is a resolved searchable field: its name, weight and accessor.
type FieldSpec struct {
	Name     string
	Weight   float64
	Accessor extract.Accessor
}

// candidateHit represents a record candidate during ranking
type candidateHit struct {
	matches []services.FieldMatch
	weights []float64 // weight of the field behind each entry of matches
}
