package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vhdlparse/internal/diag"
	"vhdlparse/internal/diagfmt"
	"vhdlparse/internal/driver"
	"vhdlparse/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] path",
	Short: "Parse the declarative items of VHDL sources",
	Long: `Parse runs the declaration parser over one file, or over every
*.vhd and *.vhdl file under a directory, and reports diagnostics`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return runParseDir(cmd, path, format, maxDiagnostics)
	}

	result, err := driver.Parse(path, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	result.Bag.Sort()
	if err := renderDiagnostics(cmd, format, result.Bag, result.FileSet); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d declarations, %d diagnostics\n",
		path, len(result.Declarations), result.Bag.Len())
	if result.Bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}

func runParseDir(cmd *cobra.Command, dir, format string, maxDiagnostics int) error {
	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	fileSet, results, err := driver.ParseDir(cmd.Context(), dir, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	failed := 0
	for _, result := range results {
		result.Bag.Sort()
		if err := renderDiagnostics(cmd, format, result.Bag, fileSet); err != nil {
			return err
		}
		status := "ok"
		if result.Bag.HasErrors() {
			status = "FAILED"
			failed++
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d declarations, %d diagnostics, %s\n",
			result.Path, len(result.Declarations), result.Bag.Len(), status)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(results))
	}
	return nil
}

func renderDiagnostics(cmd *cobra.Command, format string, bag *diag.Bag, fs *source.FileSet) error {
	if bag.Len() == 0 {
		return nil
	}
	switch format {
	case "pretty":
		opts := diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		}
		diagfmt.Pretty(os.Stderr, bag, fs, opts)
		return nil
	case "json":
		return diagfmt.JSON(os.Stdout, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
