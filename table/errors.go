package table

import "github.com/waifairer/iceberg/pkg/errors"

// Package-specific error codes for metadata parsing and validation. Every
// failure out of this package carries exactly one of these; callers branch
// on codes, never on message text.
var (
	// MissingFormatVersion - the document has no format-version field
	MissingFormatVersion = errors.MustNewCode("table.missing_format_version")

	// UnsupportedFormatVersion - format-version is present but not 1 or 2
	UnsupportedFormatVersion = errors.MustNewCode("table.unsupported_format_version")

	// MalformedDocument - a field is missing or has the wrong shape; the
	// offending field name is in the "field" context entry
	MalformedDocument = errors.MustNewCode("table.malformed_document")

	// MalformedPartitionSpec - last-partition-id cannot be derived from an
	// empty v1 partition-spec field list
	MalformedPartitionSpec = errors.MustNewCode("table.malformed_partition_spec")

	// DanglingSchemaReference - current-schema-id resolves to no schema
	DanglingSchemaReference = errors.MustNewCode("table.dangling_schema_reference")

	// DanglingPartitionSpecReference - default-spec-id resolves to no spec
	DanglingPartitionSpecReference = errors.MustNewCode("table.dangling_partition_spec_reference")

	// DanglingSortOrderReference - default-sort-order-id resolves to no order
	DanglingSortOrderReference = errors.MustNewCode("table.dangling_sort_order_reference")
)
