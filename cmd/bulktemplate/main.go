// Package main provides the CLI entry point for bulktemplate.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/shuhna/bulktemplate/pkg/bulktemplate"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	entryRows  int
	noSamples  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bulktemplate",
		Short: "Generate the Flash Express bulk shipments Excel template",
		Long: `bulktemplate creates an Excel workbook for bulk shipment data entry:
a Shipments sheet with dropdown-constrained columns, a Choices sheet
holding the allowed values, and an Instructions sheet.`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", bulktemplate.DefaultFilename, "Output file path")
	rootCmd.Flags().IntVar(&entryRows, "rows", bulktemplate.DefaultEntryRows, "Last row covered by dropdown validation")
	rootCmd.Flags().BoolVar(&noSamples, "no-samples", false, "Omit the example rows from the Shipments sheet")

	rootCmd.AddCommand(newInspectCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts := bulktemplate.DefaultOptions()
	opts.EntryRows = entryRows
	if noSamples {
		include := false
		opts.IncludeSamples = &include
	}

	f, err := bulktemplate.Build(opts)
	if err != nil {
		return fmt.Errorf("failed to build template: %w", err)
	}
	defer f.Close()

	if err := bulktemplate.Save(f, outputPath); err != nil {
		return err
	}

	fmt.Printf("Template created successfully: %s\n", outputPath)
	fmt.Println("The template includes:")
	fmt.Println("  - Shipments sheet with dropdown menus")
	fmt.Println("  - Choices sheet with all dropdown options")
	fmt.Println("  - Instructions sheet with detailed guidance")
	if !noSamples {
		fmt.Println("  - Sample data rows for reference")
	}
	return nil
}

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [template.xlsx]",
		Short: "Summarize the structure of a generated template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := bulktemplate.Inspect(args[0])
			if err != nil {
				return fmt.Errorf("inspection failed: %w", err)
			}

			fmt.Printf("Sheets: %s (active: %s)\n", strings.Join(summary.Sheets, ", "), summary.ActiveSheet)
			fmt.Printf("Shipments columns: %d\n", len(summary.Headers))
			fmt.Printf("Shipments data rows: %d\n", summary.DataRows)
			fmt.Printf("Dropdown validations: %d\n", summary.Validations)

			headers := make([]string, 0, len(summary.ChoiceRows))
			for header := range summary.ChoiceRows {
				headers = append(headers, header)
			}
			sort.Strings(headers)
			for _, header := range headers {
				fmt.Printf("  %s: %d options\n", header, summary.ChoiceRows[header])
			}
			return nil
		},
	}
}
