package model

// Document is a flexible map representing a JSON record, as decoded by encoding/json.
// Nested objects are map[string]interface{} values and may be addressed with dotted paths.
type Document map[string]interface{}
