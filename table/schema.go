package table

// Schema describes one version of a table's column layout. The metadata core
// only reads the schema id; field contents are carried through untouched so
// schema evolution stays the concern of the schema layer.
type Schema struct {
	ID                 int           `json:"schema-id"`
	Type               string        `json:"type,omitempty"`
	Fields             []NestedField `json:"fields"`
	IdentifierFieldIDs []int         `json:"identifier-field-ids,omitempty"`
}

// NestedField is a single column in a schema
type NestedField struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Doc      string `json:"doc,omitempty"`
}
