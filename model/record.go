package model

// Record pairs an opaque caller-supplied item with its identity.
// The engine never mutates Data.
type Record struct {
	ID       string      `json:"id"`       // Externally supplied key, or generated when absent
	Position int         `json:"position"` // Original insertion order, used to break score ties
	Data     interface{} `json:"data"`
}

// Fielder is implemented by record types that expose their own text fields.
// Field returns the value at the given path and whether it exists as text.
type Fielder interface {
	Field(path string) (string, bool)
}
