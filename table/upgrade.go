package table

import (
	"maps"
	"slices"
)

// ToV2 upgrades a validated v1 document to format version 2. Common fields
// are copied, the version tag becomes 2, and last-sequence-number starts at
// the initial value since v1 has no sequence numbers. The result passes v2
// validation before it is returned and the receiver is left untouched.
// There is no downgrade: no v2-to-v1 constructor exists.
func (m *TableMetadataV1) ToV2() (*TableMetadataV2, error) {
	out := &TableMetadataV2{
		CommonMetadata:     m.CommonMetadata.clone(),
		FormatVersion:      2,
		LastSequenceNumber: InitialSequenceNumber,
	}
	if err := out.CommonMetadata.validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// clone copies the common fields into independent containers so the two
// documents share no mutable state
func (c CommonMetadata) clone() CommonMetadata {
	out := c
	out.Schemas = slices.Clone(c.Schemas)
	out.PartitionSpecs = slices.Clone(c.PartitionSpecs)
	out.SortOrders = slices.Clone(c.SortOrders)
	out.Snapshots = slices.Clone(c.Snapshots)
	out.SnapshotLog = slices.Clone(c.SnapshotLog)
	out.MetadataLog = slices.Clone(c.MetadataLog)
	if c.Properties != nil {
		out.Properties = maps.Clone(c.Properties)
	}
	if c.Refs != nil {
		out.Refs = maps.Clone(c.Refs)
	}
	if c.CurrentSnapshotID != nil {
		id := *c.CurrentSnapshotID
		out.CurrentSnapshotID = &id
	}
	return out
}
