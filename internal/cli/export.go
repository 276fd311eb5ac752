package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/juhum/hotel-reservations/internal/document"
	"github.com/juhum/hotel-reservations/internal/export"
)

type ExportOptions struct {
	Format     string
	OutputFile string
}

func newExportCmd() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump the stored record sets to a file",
		Long: `Export fetches all three record sets from MongoDB (without storage
identifiers) and writes them as JSON, YAML, flattened CSV or an HTML
report.`,
		RunE: func(c *cobra.Command, args []string) error {
			return runExport(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "json", "Output format: json, yaml, csv or html")
	cmd.Flags().StringVarP(&opts.OutputFile, "output", "o", "", "Output file (default data/processed/hotel_export.<format>)")

	return cmd
}

func runExport(opts *ExportOptions) error {
	client, st, err := connect()
	if err != nil {
		return err
	}
	defer disconnect(client)

	data, err := st.FetchAll(context.Background())
	if err != nil {
		return err
	}

	var out []byte
	switch opts.Format {
	case "json":
		out, err = export.JSON(data)
	case "yaml":
		out, err = export.YAML(data)
	case "csv":
		var rows []document.Row
		if rows, err = document.Flatten(data); err == nil {
			out, err = export.CSV(rows)
		}
	case "html":
		out, err = export.HTML(data)
	default:
		return fmt.Errorf("unknown format %q (want json, yaml, csv or html)", opts.Format)
	}
	if err != nil {
		return err
	}

	path := opts.OutputFile
	if path == "" {
		path = "data/processed/hotel_export." + opts.Format
	}
	if err := writeFile(path, out); err != nil {
		return err
	}

	fmt.Printf("Export written to %s\n", path)
	return nil
}
