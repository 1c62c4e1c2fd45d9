package table

import (
	"github.com/google/uuid"
)

const (
	// DefaultSchemaID is assigned to a v1 singular schema without a schema-id
	DefaultSchemaID = 0

	// InitialSequenceNumber is the last-sequence-number of a table that has
	// never committed under format version 2
	InitialSequenceNumber = 0

	// SupportedFormatVersion is the highest format version this package reads
	SupportedFormatVersion = 2
)

// TableMetadata is the version-agnostic view of a parsed metadata document.
// Exactly two implementations exist, one per format version. Values are
// immutable once constructed; producing a new state always yields a new
// value (see (*TableMetadataV1).ToV2).
type TableMetadata interface {
	// Version returns the format version tag, 1 or 2
	Version() int

	// CommonFields returns the fields shared by both format versions.
	// The returned value is read-only.
	CommonFields() *CommonMetadata
}

// CommonMetadata holds the attributes shared by both format versions,
// normalized so that v1 documents behave as v2-compatible values: plural
// collections are always populated and refs always carries the main branch
// whenever a current snapshot is set.
type CommonMetadata struct {
	Location           string                 `json:"location"`
	TableUUID          uuid.UUID              `json:"table-uuid"`
	LastUpdatedMS      int64                  `json:"last-updated-ms"`
	LastColumnID       int                    `json:"last-column-id"`
	Schemas            []*Schema              `json:"schemas"`
	CurrentSchemaID    int                    `json:"current-schema-id"`
	PartitionSpecs     []PartitionSpec        `json:"partition-specs"`
	DefaultSpecID      int                    `json:"default-spec-id"`
	LastPartitionID    int                    `json:"last-partition-id"`
	Properties         Properties             `json:"properties,omitempty"`
	CurrentSnapshotID  *int64                 `json:"current-snapshot-id,omitempty"`
	Snapshots          []Snapshot             `json:"snapshots,omitempty"`
	SnapshotLog        []SnapshotLogEntry     `json:"snapshot-log,omitempty"`
	MetadataLog        []MetadataLogEntry     `json:"metadata-log,omitempty"`
	SortOrders         []SortOrder            `json:"sort-orders"`
	DefaultSortOrderID int                    `json:"default-sort-order-id"`
	Refs               map[string]SnapshotRef `json:"refs,omitempty"`
}

// TableMetadataV1 is a parsed format-version 1 document. The singular
// Schema and PartitionSpec fields are kept for writing v1 back out; the
// plural collections in CommonMetadata are the ones downstream code reads.
type TableMetadataV1 struct {
	CommonMetadata
	FormatVersion int              `json:"format-version"`
	Schema        *Schema          `json:"schema,omitempty"`
	PartitionSpec []PartitionField `json:"partition-spec,omitempty"`
}

// TableMetadataV2 is a parsed format-version 2 document
type TableMetadataV2 struct {
	CommonMetadata
	FormatVersion      int   `json:"format-version"`
	LastSequenceNumber int64 `json:"last-sequence-number"`
}

func (m *TableMetadataV1) Version() int { return 1 }
func (m *TableMetadataV2) Version() int { return 2 }

func (m *TableMetadataV1) CommonFields() *CommonMetadata { return &m.CommonMetadata }
func (m *TableMetadataV2) CommonFields() *CommonMetadata { return &m.CommonMetadata }

// SchemaByID returns the schema with the given id, or nil
func (c *CommonMetadata) SchemaByID(id int) *Schema {
	for _, s := range c.Schemas {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// CurrentSchema returns the schema named by current-schema-id. Never nil on
// a successfully constructed document.
func (c *CommonMetadata) CurrentSchema() *Schema {
	return c.SchemaByID(c.CurrentSchemaID)
}

// SpecByID returns the partition spec with the given id, or nil
func (c *CommonMetadata) SpecByID(id int) *PartitionSpec {
	for i := range c.PartitionSpecs {
		if c.PartitionSpecs[i].SpecID == id {
			return &c.PartitionSpecs[i]
		}
	}
	return nil
}

// DefaultPartitionSpec returns the spec named by default-spec-id. Never nil
// on a successfully constructed document.
func (c *CommonMetadata) DefaultPartitionSpec() *PartitionSpec {
	return c.SpecByID(c.DefaultSpecID)
}

// SortOrderByID returns the sort order with the given id, or nil
func (c *CommonMetadata) SortOrderByID(id int) *SortOrder {
	for i := range c.SortOrders {
		if c.SortOrders[i].OrderID == id {
			return &c.SortOrders[i]
		}
	}
	return nil
}

// DefaultSortOrder returns the order named by default-sort-order-id, or nil
// when the table is unsorted and carries no explicit unsorted order entry
func (c *CommonMetadata) DefaultSortOrder() *SortOrder {
	return c.SortOrderByID(c.DefaultSortOrderID)
}

// SnapshotByID returns the snapshot with the given id, or nil
func (c *CommonMetadata) SnapshotByID(id int64) *Snapshot {
	for i := range c.Snapshots {
		if c.Snapshots[i].SnapshotID == id {
			return &c.Snapshots[i]
		}
	}
	return nil
}

// SnapshotByRefName resolves a branch or tag name to its snapshot, or nil
func (c *CommonMetadata) SnapshotByRefName(name string) *Snapshot {
	if ref, ok := c.Refs[name]; ok {
		return c.SnapshotByID(ref.SnapshotID)
	}
	return nil
}

// CurrentSnapshot returns the snapshot named by current-snapshot-id, or nil
// when the table has no current snapshot
func (c *CommonMetadata) CurrentSnapshot() *Snapshot {
	if c.CurrentSnapshotID == nil {
		return nil
	}
	return c.SnapshotByID(*c.CurrentSnapshotID)
}
