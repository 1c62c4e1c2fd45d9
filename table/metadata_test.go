package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommonMetadata_SchemaLookups(t *testing.T) {
	md, err := ParseMetadataString(exampleMetadataV2)
	require.NoError(t, err)
	c := md.CommonFields()

	current := c.CurrentSchema()
	require.NotNil(t, current)
	assert.Equal(t, 1, current.ID)
	assert.Len(t, current.Fields, 3)
	assert.Equal(t, []int{1, 2}, current.IdentifierFieldIDs)

	assert.Equal(t, c.Schemas[0], c.SchemaByID(0))
	assert.Nil(t, c.SchemaByID(99))
}

func TestCommonMetadata_SpecAndSortOrderLookups(t *testing.T) {
	md, err := ParseMetadataString(exampleMetadataV2)
	require.NoError(t, err)
	c := md.CommonFields()

	spec := c.DefaultPartitionSpec()
	require.NotNil(t, spec)
	assert.Equal(t, 0, spec.SpecID)
	require.Len(t, spec.Fields, 1)
	assert.Equal(t, "identity", spec.Fields[0].Transform)
	assert.Nil(t, c.SpecByID(99))

	order := c.DefaultSortOrder()
	require.NotNil(t, order)
	assert.Equal(t, 3, order.OrderID)
	assert.Len(t, order.Fields, 2)
	assert.Equal(t, "desc", order.Fields[1].Direction)
	assert.Nil(t, c.SortOrderByID(99))
}

func TestCommonMetadata_SnapshotLookups(t *testing.T) {
	md, err := ParseMetadataString(exampleMetadataV2)
	require.NoError(t, err)
	c := md.CommonFields()

	current := c.CurrentSnapshot()
	require.NotNil(t, current)
	assert.Equal(t, int64(3055729675574597004), current.SnapshotID)
	require.NotNil(t, current.ParentSnapshotID)
	assert.Equal(t, int64(3051729675574597004), *current.ParentSnapshotID)

	assert.Equal(t, current, c.SnapshotByRefName(MainBranch))
	assert.Nil(t, c.SnapshotByRefName("nope"))
	assert.Nil(t, c.SnapshotByID(12345))
}

func TestUnpartitionedAndUnsortedDefaults(t *testing.T) {
	assert.Equal(t, InitialSpecID, UnpartitionedSpec().SpecID)
	assert.Empty(t, UnpartitionedSpec().Fields)
	assert.Equal(t, UnsortedSortOrderID, UnsortedSortOrder().OrderID)
	assert.Empty(t, UnsortedSortOrder().Fields)
}
