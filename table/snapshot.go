package table

// Properties is a free-form string-to-string map of table configuration
type Properties map[string]string

// Snapshot is a point-in-time view of the table's data. The metadata core
// stores snapshots and reads only their ids; manifest contents live behind
// the manifest-list location and are decoded elsewhere.
type Snapshot struct {
	SnapshotID       int64             `json:"snapshot-id"`
	ParentSnapshotID *int64            `json:"parent-snapshot-id,omitempty"`
	SequenceNumber   int64             `json:"sequence-number,omitempty"`
	TimestampMS      int64             `json:"timestamp-ms"`
	ManifestList     string            `json:"manifest-list,omitempty"`
	SchemaID         *int              `json:"schema-id,omitempty"`
	Summary          map[string]string `json:"summary,omitempty"`
}

// SnapshotLogEntry records one historical change of current-snapshot-id.
// Entries are expected to be chronologically non-decreasing; snapshot
// expiration may truncate a prefix but never reorders what remains.
type SnapshotLogEntry struct {
	SnapshotID  int64 `json:"snapshot-id"`
	TimestampMS int64 `json:"timestamp-ms"`
}

// MetadataLogEntry records the location of a previous metadata document.
// Same ordering and prefix-truncation discipline as SnapshotLogEntry.
type MetadataLogEntry struct {
	MetadataFile string `json:"metadata-file"`
	TimestampMS  int64  `json:"timestamp-ms"`
}
