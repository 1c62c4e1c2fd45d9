package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/waifairer/iceberg/pkg/errors"
	"github.com/waifairer/iceberg/table"
)

var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Work with table metadata documents",
	Long: `Work with Iceberg table metadata documents.

This command provides subcommands for metadata operations:
- validate: Parse a document and report whether it is well-formed
- describe: Show a summary of a document's schemas, specs and snapshots
- upgrade: Rewrite a format-version 1 document as format-version 2

Examples:
  iceberg metadata validate v1.metadata.json
  iceberg metadata describe v2.metadata.json --format yaml
  iceberg metadata upgrade v1.metadata.json -o v2.metadata.json`,
}

var metadataValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a metadata document",
	Long: `Parse the given metadata document and report whether it satisfies the
format rules for its declared format-version.

On failure the error code identifies the first violated rule, for example
table.dangling_schema_reference or table.malformed_partition_spec.`,
	Args: cobra.ExactArgs(1),
	RunE: runMetadataValidate,
}

var metadataDescribeCmd = &cobra.Command{
	Use:   "describe <file>",
	Short: "Summarize a metadata document",
	Long: `Parse the given metadata document and print a summary of its
identity, schema and partition layout, sort order and snapshot state.

Examples:
  iceberg metadata describe v2.metadata.json
  iceberg metadata describe v2.metadata.json --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runMetadataDescribe,
}

var metadataUpgradeCmd = &cobra.Command{
	Use:   "upgrade <file>",
	Short: "Upgrade a v1 document to format version 2",
	Long: `Parse a format-version 1 metadata document and write out its
format-version 2 equivalent. The upgrade is one-way; there is no downgrade.

The input file is never modified. Without --output the upgraded document is
written to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runMetadataUpgrade,
}

type metadataDescribeOptions struct {
	format string
}

type metadataUpgradeOptions struct {
	output string
}

var (
	metadataDescribeOpts = &metadataDescribeOptions{}
	metadataUpgradeOpts  = &metadataUpgradeOptions{}
)

func init() {
	rootCmd.AddCommand(metadataCmd)

	metadataCmd.AddCommand(metadataValidateCmd)
	metadataCmd.AddCommand(metadataDescribeCmd)
	metadataCmd.AddCommand(metadataUpgradeCmd)

	metadataDescribeCmd.Flags().StringVar(&metadataDescribeOpts.format, "format", "json", "output format: json, yaml")
	metadataUpgradeCmd.Flags().StringVarP(&metadataUpgradeOpts.output, "output", "o", "", "write the upgraded document to this file instead of stdout")
}

// metadataSummary is the describe output shape
type metadataSummary struct {
	FormatVersion      int               `json:"format-version" yaml:"format-version"`
	TableUUID          string            `json:"table-uuid" yaml:"table-uuid"`
	Location           string            `json:"location" yaml:"location"`
	LastUpdatedMS      int64             `json:"last-updated-ms" yaml:"last-updated-ms"`
	LastSequenceNumber *int64            `json:"last-sequence-number,omitempty" yaml:"last-sequence-number,omitempty"`
	CurrentSchemaID    int               `json:"current-schema-id" yaml:"current-schema-id"`
	SchemaCount        int               `json:"schema-count" yaml:"schema-count"`
	ColumnCount        int               `json:"column-count" yaml:"column-count"`
	DefaultSpecID      int               `json:"default-spec-id" yaml:"default-spec-id"`
	PartitionSpecCount int               `json:"partition-spec-count" yaml:"partition-spec-count"`
	DefaultSortOrderID int               `json:"default-sort-order-id" yaml:"default-sort-order-id"`
	SortOrderCount     int               `json:"sort-order-count" yaml:"sort-order-count"`
	CurrentSnapshotID  *int64            `json:"current-snapshot-id,omitempty" yaml:"current-snapshot-id,omitempty"`
	SnapshotCount      int               `json:"snapshot-count" yaml:"snapshot-count"`
	Refs               map[string]string `json:"refs,omitempty" yaml:"refs,omitempty"`
	Properties         table.Properties  `json:"properties,omitempty" yaml:"properties,omitempty"`
}

func buildMetadataSummary(md table.TableMetadata) metadataSummary {
	c := md.CommonFields()

	summary := metadataSummary{
		FormatVersion:      md.Version(),
		TableUUID:          c.TableUUID.String(),
		Location:           c.Location,
		LastUpdatedMS:      c.LastUpdatedMS,
		CurrentSchemaID:    c.CurrentSchemaID,
		SchemaCount:        len(c.Schemas),
		DefaultSpecID:      c.DefaultSpecID,
		PartitionSpecCount: len(c.PartitionSpecs),
		DefaultSortOrderID: c.DefaultSortOrderID,
		SortOrderCount:     len(c.SortOrders),
		CurrentSnapshotID:  c.CurrentSnapshotID,
		SnapshotCount:      len(c.Snapshots),
		Properties:         c.Properties,
	}
	if schema := c.CurrentSchema(); schema != nil {
		summary.ColumnCount = len(schema.Fields)
	}
	if v2, ok := md.(*table.TableMetadataV2); ok {
		summary.LastSequenceNumber = &v2.LastSequenceNumber
	}
	if len(c.Refs) > 0 {
		summary.Refs = make(map[string]string, len(c.Refs))
		for name, ref := range c.Refs {
			summary.Refs[name] = fmt.Sprintf("%s -> %d", ref.Type, ref.SnapshotID)
		}
	}
	return summary
}

func renderMetadataSummary(summary metadataSummary, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(summary, "", "  ")
	case "yaml":
		return yaml.Marshal(summary)
	default:
		return nil, fmt.Errorf("unknown output format %q (expected json or yaml)", format)
	}
}

func parseMetadataFile(path string) (table.TableMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return table.ParseMetadataBytes(data)
}

func runMetadataValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	logger := getLoggerFromContext(cmd.Context())

	if logger != nil {
		logger.Info().Str("cmd", "metadata-validate").Str("path", path).Msg("Validating metadata document")
	}

	md, err := parseMetadataFile(path)
	if err != nil {
		if logger != nil {
			logger.Error().Str("cmd", "metadata-validate").Str("path", path).Err(err).Msg("Validation failed")
		}
		if code := errors.GetCode(err); code != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "invalid: [%s] %v\n", code, err)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "invalid: %v\n", err)
		}
		return err
	}

	c := md.CommonFields()
	fmt.Fprintf(cmd.OutOrStdout(), "valid: format-version %d, table %s, %d schema(s), %d snapshot(s)\n",
		md.Version(), c.TableUUID, len(c.Schemas), len(c.Snapshots))
	return nil
}

func runMetadataDescribe(cmd *cobra.Command, args []string) error {
	path := args[0]
	logger := getLoggerFromContext(cmd.Context())

	if logger != nil {
		logger.Info().Str("cmd", "metadata-describe").Str("path", path).Str("format", metadataDescribeOpts.format).Msg("Describing metadata document")
	}

	md, err := parseMetadataFile(path)
	if err != nil {
		if logger != nil {
			logger.Error().Str("cmd", "metadata-describe").Str("path", path).Err(err).Msg("Failed to parse metadata document")
		}
		return err
	}

	out, err := renderMetadataSummary(buildMetadataSummary(md), metadataDescribeOpts.format)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", out)
	return nil
}

func runMetadataUpgrade(cmd *cobra.Command, args []string) error {
	path := args[0]
	logger := getLoggerFromContext(cmd.Context())

	if logger != nil {
		logger.Info().Str("cmd", "metadata-upgrade").Str("path", path).Msg("Upgrading metadata document")
	}

	md, err := parseMetadataFile(path)
	if err != nil {
		if logger != nil {
			logger.Error().Str("cmd", "metadata-upgrade").Str("path", path).Err(err).Msg("Failed to parse metadata document")
		}
		return err
	}

	v1, ok := md.(*table.TableMetadataV1)
	if !ok {
		return fmt.Errorf("%s is already a format-version %d document", path, md.Version())
	}

	v2, err := v1.ToV2()
	if err != nil {
		if logger != nil {
			logger.Error().Str("cmd", "metadata-upgrade").Str("path", path).Err(err).Msg("Upgrade failed validation")
		}
		return err
	}

	out, err := json.MarshalIndent(v2, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode upgraded document: %w", err)
	}

	if metadataUpgradeOpts.output != "" {
		if err := os.WriteFile(metadataUpgradeOpts.output, append(out, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", metadataUpgradeOpts.output, err)
		}
		if logger != nil {
			logger.Info().Str("cmd", "metadata-upgrade").Str("output", metadataUpgradeOpts.output).Msg("Wrote upgraded document")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "upgraded %s -> %s (format-version 2)\n", path, metadataUpgradeOpts.output)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", out)
	return nil
}
