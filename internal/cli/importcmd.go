package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/juhum/hotel-reservations/internal/document"
)

type ImportOptions struct {
	InputFile string
}

func newImportCmd() *cobra.Command {
	opts := &ImportOptions{}

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load a normalized JSON document into MongoDB (clear-and-replace)",
		RunE: func(c *cobra.Command, args []string) error {
			return runImport(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.InputFile, "input", "i", "data/processed/json_output.json", "Path to the normalized JSON document")

	return cmd
}

func runImport(opts *ImportOptions) error {
	raw, err := os.ReadFile(opts.InputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	// All three record sets must be present before anything is cleared.
	sections := make(map[string][]interface{}, len(document.Sections))
	for _, name := range document.Sections {
		records, ok := doc[name].([]interface{})
		if !ok {
			return fmt.Errorf("missing required section: %s", name)
		}
		sections[name] = records
	}

	client, st, err := connect()
	if err != nil {
		return err
	}
	defer disconnect(client)

	counts, err := st.Replace(context.Background(), sections)
	if err != nil {
		return err
	}

	fmt.Printf("Import finished: %d hotels, %d guests, %d reservations\n",
		counts.Hotels, counts.Guests, counts.Reservations)
	return nil
}
