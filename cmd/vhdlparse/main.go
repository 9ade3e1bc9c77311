package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vhdlparse/internal/project"
	"vhdlparse/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "vhdlparse",
	Short: "VHDL declaration parser and diagnostic tool",
	Long:  `vhdlparse tokenizes and parses the declarative subset of VHDL and reports diagnostics`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)

	cfg, err := project.DiscoverConfig(".")
	if err != nil {
		cfg = project.DefaultConfig()
	}

	rootCmd.PersistentFlags().String("color", cfg.Output.Color, "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", cfg.Diagnostics.Max, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().Int("jobs", cfg.Jobs, "parallel workers for directory commands (0 = all CPUs)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the tri-state color flag against the stream.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
