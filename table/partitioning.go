package table

// InitialSpecID is the spec id assigned to an implicit first partition spec
const InitialSpecID = 0

// PartitionSpec describes how a table's rows map to partition values
type PartitionSpec struct {
	SpecID int              `json:"spec-id"`
	Fields []PartitionField `json:"fields"`
}

// PartitionField is a single partition dimension
type PartitionField struct {
	SourceID  int    `json:"source-id"` // ID from the schema
	FieldID   int    `json:"field-id"`  // Unique ID for partition field
	Name      string `json:"name"`      // Partition name (e.g. "year", "month", "day")
	Transform string `json:"transform"` // year, month, day, bucket, truncate, identity
}

// UnpartitionedSpec is the spec of a table with no partition dimensions
func UnpartitionedSpec() PartitionSpec {
	return PartitionSpec{SpecID: InitialSpecID}
}
