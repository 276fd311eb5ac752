package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/juhum/hotel-reservations/internal/document"
	"github.com/juhum/hotel-reservations/internal/export"
	"github.com/juhum/hotel-reservations/internal/schema"
)

type ValidateOptions struct {
	InputFile  string
	SchemaFile string
	OutputFile string
}

func newValidateCmd() *cobra.Command {
	opts := &ValidateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a YAML document and write it as normalized JSON",
		RunE: func(c *cobra.Command, args []string) error {
			return runValidate(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.InputFile, "input", "i", "data/raw/hotel_data.yaml", "Path to the YAML document")
	cmd.Flags().StringVarP(&opts.SchemaFile, "schema", "s", "data/schema/hotel_reservation_schema.json", "Path to the JSON Schema")
	cmd.Flags().StringVarP(&opts.OutputFile, "output", "o", "data/processed/json_output.json", "Where to write the normalized JSON")

	return cmd
}

func runValidate(opts *ValidateOptions) error {
	raw, err := os.ReadFile(opts.InputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	normalized := document.NormalizeDocument(doc)

	schemaJSON, err := schema.LoadFile(opts.SchemaFile)
	if err != nil {
		return err
	}
	if err := schema.Validate(normalized, schemaJSON); err != nil {
		return err
	}

	out, err := export.JSON(normalized)
	if err != nil {
		return err
	}
	if err := writeFile(opts.OutputFile, out); err != nil {
		return err
	}

	fmt.Printf("Document valid. Normalized JSON written to %s\n", opts.OutputFile)
	return nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
