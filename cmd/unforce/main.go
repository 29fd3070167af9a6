package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"unforce/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "unforce",
	Short: "Force-try rewriter for Swift sources",
	Long:  `unforce finds force-try expressions and rewrites them into do/catch blocks while preserving formatting and comments`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(rewriteCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("jobs", 0, "number of parallel workers (0 = number of CPUs)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
