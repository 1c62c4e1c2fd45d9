package table

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waifairer/iceberg/pkg/errors"
)

func TestToV2(t *testing.T) {
	md, err := ParseMetadataString(exampleMetadataV1)
	require.NoError(t, err)
	v1 := md.(*TableMetadataV1)

	v2, err := v1.ToV2()
	require.NoError(t, err)

	assert.Equal(t, 2, v2.Version())
	assert.Equal(t, 2, v2.FormatVersion)
	assert.Equal(t, int64(InitialSequenceNumber), v2.LastSequenceNumber)

	// every common field carries over verbatim
	assert.Equal(t, v1.CommonMetadata, v2.CommonMetadata)

	// the source document is untouched
	assert.Equal(t, 1, v1.Version())
	assert.Equal(t, 1, v1.FormatVersion)
	reparsed, err := ParseMetadataString(exampleMetadataV1)
	require.NoError(t, err)
	assert.Equal(t, reparsed.CommonFields().Schemas, v1.CommonFields().Schemas)
}

func TestToV2_IndependentValue(t *testing.T) {
	md, err := ParseMetadataString(exampleMetadataV1Live(t))
	require.NoError(t, err)
	v1 := md.(*TableMetadataV1)

	v2, err := v1.ToV2()
	require.NoError(t, err)

	// the upgraded copy shares no containers with the source
	v2.Properties["touched"] = "true"
	v2.Refs["dev"] = SnapshotRef{SnapshotID: 1, Type: BranchRef}
	assert.NotContains(t, v1.Properties, "touched")
	assert.NotContains(t, v1.Refs, "dev")
}

func TestToV2_Revalidates(t *testing.T) {
	md, err := ParseMetadataString(exampleMetadataV1)
	require.NoError(t, err)
	v1 := md.(*TableMetadataV1)

	// a hand-built value with a dangling pointer must not survive upgrade
	broken := *v1
	broken.CommonMetadata = v1.CommonMetadata.clone()
	broken.CurrentSchemaID = 42
	_, err = broken.ToV2()
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, DanglingSchemaReference))
}

// Re-validating an already-v2 document is idempotent: writing it out and
// parsing it back produces an equal value.
func TestParseV2_Idempotent(t *testing.T) {
	md, err := ParseMetadataString(exampleMetadataV2)
	require.NoError(t, err)
	v2 := md.(*TableMetadataV2)

	out, err := json.Marshal(v2)
	require.NoError(t, err)

	again, err := ParseMetadataBytes(out)
	require.NoError(t, err)
	assert.Equal(t, v2, again)
}

// v1 document that carries properties and a live current snapshot, so the
// clone-independence test has non-empty containers to probe
func exampleMetadataV1Live(t *testing.T) string {
	t.Helper()
	return `{
		"format-version": 1,
		"table-uuid": "d20125c8-7284-442c-9aea-15fee620737c",
		"location": "s3://bucket/test/location",
		"last-updated-ms": 1602638573874,
		"last-column-id": 1,
		"schema": {"fields": [{"id": 1, "name": "x", "required": true, "type": "long"}]},
		"partition-spec": [{"name": "x", "transform": "identity", "source-id": 1, "field-id": 1000}],
		"properties": {"write.format.default": "parquet"},
		"current-snapshot-id": 1925,
		"snapshots": [{"snapshot-id": 1925, "timestamp-ms": 1602638573822}]
	}`
}
