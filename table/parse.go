package table

import (
	"encoding/json"
	stderrors "errors"
	"io"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/waifairer/iceberg/pkg/errors"
)

// ParseMetadata reads a metadata document from r and parses it
func ParseMetadata(r io.Reader) (TableMetadata, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(MalformedDocument, err, "failed to read metadata document")
	}
	return ParseMetadataBytes(b)
}

// ParseMetadataString parses a metadata document from a string
func ParseMetadataString(s string) (TableMetadata, error) {
	return ParseMetadataBytes([]byte(s))
}

// ParseMetadataBytes dispatches on the declared format-version and runs the
// matching construction pipeline. The version tag is sniffed from the raw
// bytes before any structural decode so an unsupported version fails closed
// without touching the rest of the document.
func ParseMetadataBytes(b []byte) (TableMetadata, error) {
	if !gjson.ValidBytes(b) {
		return nil, errors.New(MalformedDocument, "metadata document is not valid JSON")
	}
	version := gjson.GetBytes(b, "format-version")
	if !version.Exists() {
		return nil, errors.New(MissingFormatVersion, "missing format-version in metadata document")
	}
	if version.Type == gjson.Number {
		switch version.Num {
		case 1:
			return parseV1(b)
		case 2:
			return parseV2(b)
		}
	}
	return nil, errors.Newf(UnsupportedFormatVersion, "unsupported format version: %s", version.Raw).
		AddContext("format-version", version.Raw)
}

// rawMetadata mirrors the wire document with optionality preserved, so the
// normalization steps can tell absent fields from zero values. The pipeline
// mutates this intermediate value only; parsed documents are built from it
// in one shot at the end.
type rawMetadata struct {
	FormatVersion      *int                   `json:"format-version"`
	TableUUID          *uuid.UUID             `json:"table-uuid"`
	Location           *string                `json:"location"`
	LastSequenceNumber *int64                 `json:"last-sequence-number"`
	LastUpdatedMS      *int64                 `json:"last-updated-ms"`
	LastColumnID       *int                   `json:"last-column-id"`
	Schema             *Schema                `json:"schema"`
	Schemas            []*Schema              `json:"schemas"`
	CurrentSchemaID    *int                   `json:"current-schema-id"`
	PartitionSpec      []PartitionField       `json:"partition-spec"`
	PartitionSpecs     []PartitionSpec        `json:"partition-specs"`
	DefaultSpecID      *int                   `json:"default-spec-id"`
	LastPartitionID    *int                   `json:"last-partition-id"`
	Properties         Properties             `json:"properties"`
	CurrentSnapshotID  *int64                 `json:"current-snapshot-id"`
	Snapshots          []Snapshot             `json:"snapshots"`
	SnapshotLog        []SnapshotLogEntry     `json:"snapshot-log"`
	MetadataLog        []MetadataLogEntry     `json:"metadata-log"`
	SortOrders         []SortOrder            `json:"sort-orders"`
	DefaultSortOrderID *int                   `json:"default-sort-order-id"`
	Refs               map[string]SnapshotRef `json:"refs"`
}

func decodeRaw(b []byte) (*rawMetadata, error) {
	var raw rawMetadata
	if err := json.Unmarshal(b, &raw); err != nil {
		if errors.HasCode(err, MalformedDocument) {
			return nil, err
		}
		var typeErr *json.UnmarshalTypeError
		if stderrors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, errors.Wrap(MalformedDocument, err, "metadata document failed to decode").
				AddContext("field", typeErr.Field)
		}
		return nil, errors.Wrap(MalformedDocument, err, "metadata document failed to decode")
	}
	return &raw, nil
}

func missingField(name string) error {
	return errors.Newf(MalformedDocument, "missing required field %q", name).
		AddContext("field", name)
}

func (r *rawMetadata) currentSchemaID() int {
	if r.CurrentSchemaID != nil {
		return *r.CurrentSchemaID
	}
	return DefaultSchemaID
}

func (r *rawMetadata) defaultSpecID() int {
	if r.DefaultSpecID != nil {
		return *r.DefaultSpecID
	}
	return InitialSpecID
}

func (r *rawMetadata) defaultSortOrderID() int {
	if r.DefaultSortOrderID != nil {
		return *r.DefaultSortOrderID
	}
	return UnsortedSortOrderID
}

func (r *rawMetadata) lastSequenceNumber() int64 {
	if r.LastSequenceNumber != nil {
		return *r.LastSequenceNumber
	}
	return InitialSequenceNumber
}

// cleanupSnapshotID rewrites the -1 sentinel to "absent". Both encodings
// mean "no current snapshot"; collapsing them here keeps every later step
// on a single representation.
func (r *rawMetadata) cleanupSnapshotID() {
	if r.CurrentSnapshotID != nil && *r.CurrentSnapshotID == -1 {
		r.CurrentSnapshotID = nil
	}
}

// applyV1Defaults fills the fields a v2-compatible view needs but v1
// documents may omit. A singular schema without schema-id already decoded
// to DefaultSchemaID, so only last-partition-id and table-uuid remain.
func (r *rawMetadata) applyV1Defaults() error {
	if r.LastPartitionID == nil {
		if len(r.PartitionSpec) == 0 {
			return errors.New(MalformedPartitionSpec,
				"cannot derive last-partition-id from an empty partition-spec").
				AddContext("field", "partition-spec")
		}
		maxFieldID := r.PartitionSpec[0].FieldID
		for _, f := range r.PartitionSpec[1:] {
			if f.FieldID > maxFieldID {
				maxFieldID = f.FieldID
			}
		}
		r.LastPartitionID = &maxFieldID
	}
	if r.TableUUID == nil {
		id := uuid.New()
		r.TableUUID = &id
	}
	return nil
}

// constructSchemas synthesizes the plural schemas collection from the v1
// singular schema, or cross-checks a supplied collection right away
func (r *rawMetadata) constructSchemas() error {
	if len(r.Schemas) == 0 {
		if r.Schema == nil {
			return missingField("schema")
		}
		r.Schemas = []*Schema{r.Schema}
		return nil
	}
	return checkSchemas(r.currentSchemaID(), r.Schemas)
}

// constructPartitionSpecs synthesizes partition-specs from the v1 singular
// field list under the reserved initial spec id, or cross-checks a supplied
// collection right away
func (r *rawMetadata) constructPartitionSpecs() error {
	if len(r.PartitionSpecs) == 0 {
		r.PartitionSpecs = []PartitionSpec{{SpecID: InitialSpecID, Fields: r.PartitionSpec}}
		return nil
	}
	return checkPartitionSpecs(r.defaultSpecID(), r.PartitionSpecs)
}

// constructSortOrders defaults an absent sort-orders collection to the
// single unsorted order, or cross-checks a supplied collection right away
func (r *rawMetadata) constructSortOrders() error {
	if len(r.SortOrders) == 0 {
		r.SortOrders = []SortOrder{UnsortedSortOrder()}
		return nil
	}
	return checkSortOrders(r.defaultSortOrderID(), r.SortOrders)
}

// buildCommon checks the fields both versions require, constructs the main
// branch ref, and runs the cross-reference checks one final time so the
// referential invariants hold for every document this package hands out.
func (r *rawMetadata) buildCommon() (CommonMetadata, error) {
	if r.Location == nil {
		return CommonMetadata{}, missingField("location")
	}
	if r.LastUpdatedMS == nil {
		return CommonMetadata{}, missingField("last-updated-ms")
	}
	if r.LastColumnID == nil {
		return CommonMetadata{}, missingField("last-column-id")
	}

	c := CommonMetadata{
		Location:           *r.Location,
		LastUpdatedMS:      *r.LastUpdatedMS,
		LastColumnID:       *r.LastColumnID,
		Schemas:            r.Schemas,
		CurrentSchemaID:    r.currentSchemaID(),
		PartitionSpecs:     r.PartitionSpecs,
		DefaultSpecID:      r.defaultSpecID(),
		Properties:         r.Properties,
		CurrentSnapshotID:  r.CurrentSnapshotID,
		Snapshots:          r.Snapshots,
		SnapshotLog:        r.SnapshotLog,
		MetadataLog:        r.MetadataLog,
		SortOrders:         r.SortOrders,
		DefaultSortOrderID: r.defaultSortOrderID(),
		Refs:               r.Refs,
	}
	if r.TableUUID != nil {
		c.TableUUID = *r.TableUUID
	}
	if r.LastPartitionID != nil {
		c.LastPartitionID = *r.LastPartitionID
	}

	// The main branch always tracks current-snapshot-id, even over an
	// explicitly supplied conflicting "main" entry.
	if c.CurrentSnapshotID != nil {
		if c.Refs == nil {
			c.Refs = make(map[string]SnapshotRef)
		}
		c.Refs[MainBranch] = newMainRef(*c.CurrentSnapshotID)
	}

	if err := c.validate(); err != nil {
		return CommonMetadata{}, err
	}
	return c, nil
}

func parseV1(b []byte) (TableMetadata, error) {
	raw, err := decodeRaw(b)
	if err != nil {
		return nil, err
	}
	raw.cleanupSnapshotID()
	if err := raw.applyV1Defaults(); err != nil {
		return nil, err
	}
	if err := raw.constructSchemas(); err != nil {
		return nil, err
	}
	if err := raw.constructPartitionSpecs(); err != nil {
		return nil, err
	}
	if err := raw.constructSortOrders(); err != nil {
		return nil, err
	}
	common, err := raw.buildCommon()
	if err != nil {
		return nil, err
	}
	return &TableMetadataV1{
		CommonMetadata: common,
		FormatVersion:  1,
		Schema:         raw.Schema,
		PartitionSpec:  raw.PartitionSpec,
	}, nil
}

func parseV2(b []byte) (TableMetadata, error) {
	raw, err := decodeRaw(b)
	if err != nil {
		return nil, err
	}
	raw.cleanupSnapshotID()
	if raw.TableUUID == nil {
		return nil, missingField("table-uuid")
	}
	if raw.LastPartitionID == nil {
		return nil, missingField("last-partition-id")
	}
	common, err := raw.buildCommon()
	if err != nil {
		return nil, err
	}
	return &TableMetadataV2{
		CommonMetadata:     common,
		FormatVersion:      2,
		LastSequenceNumber: raw.lastSequenceNumber(),
	}, nil
}
