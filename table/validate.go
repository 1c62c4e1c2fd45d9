package table

import (
	"strconv"

	"github.com/waifairer/iceberg/pkg/errors"
)

// checkSchemas verifies that currentSchemaID resolves within schemas
func checkSchemas(currentSchemaID int, schemas []*Schema) error {
	for _, s := range schemas {
		if s.ID == currentSchemaID {
			return nil
		}
	}
	return errors.Newf(DanglingSchemaReference,
		"current-schema-id %d can't be found in the schemas", currentSchemaID).
		AddContext("current-schema-id", strconv.Itoa(currentSchemaID))
}

// checkPartitionSpecs verifies that defaultSpecID resolves within specs
func checkPartitionSpecs(defaultSpecID int, specs []PartitionSpec) error {
	for i := range specs {
		if specs[i].SpecID == defaultSpecID {
			return nil
		}
	}
	return errors.Newf(DanglingPartitionSpecReference,
		"default-spec-id %d can't be found in the partition-specs", defaultSpecID).
		AddContext("default-spec-id", strconv.Itoa(defaultSpecID))
}

// checkSortOrders verifies that defaultSortOrderID resolves within orders.
// The unsorted sentinel is always valid, whether or not an explicit unsorted
// order entry exists.
func checkSortOrders(defaultSortOrderID int, orders []SortOrder) error {
	if defaultSortOrderID == UnsortedSortOrderID {
		return nil
	}
	for i := range orders {
		if orders[i].OrderID == defaultSortOrderID {
			return nil
		}
	}
	return errors.Newf(DanglingSortOrderReference,
		"default-sort-order-id %d can't be found in the sort-orders", defaultSortOrderID).
		AddContext("default-sort-order-id", strconv.Itoa(defaultSortOrderID))
}

// validate runs the cross-reference checks against the normalized common
// fields. Holds for every successfully constructed document of either
// version.
func (c *CommonMetadata) validate() error {
	if err := checkSchemas(c.CurrentSchemaID, c.Schemas); err != nil {
		return err
	}
	if err := checkPartitionSpecs(c.DefaultSpecID, c.PartitionSpecs); err != nil {
		return err
	}
	return checkSortOrders(c.DefaultSortOrderID, c.SortOrders)
}
