package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"unforce/internal/diagfmt"
	"unforce/internal/driver"
	"unforce/internal/project"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] <file.swift|directory>",
	Short: "Find force-try expressions without rewriting anything",
	Long:  "Scan lexes and parses the target, reports every force-try candidate as a diagnostic, and shows the rewrite each one would get.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	scanCmd.Flags().Bool("no-cache", false, "bypass the scan cache")
	scanCmd.Flags().Bool("fixes", true, "show available rewrites for each diagnostic")
}

// buildScanOptions assembles driver options from CLI flags and the nearest
// project manifest. Flags win over manifest values. The manifest is returned
// too (nil when absent) so commands can read their own settings from it.
func buildScanOptions(cmd *cobra.Command, targetPath string, noCache bool) (driver.Options, *project.Manifest, error) {
	var opts driver.Options

	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return opts, nil, err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return opts, nil, err
	}

	startDir := targetPath
	if info, err := os.Stat(targetPath); err == nil && !info.IsDir() {
		startDir = filepath.Dir(targetPath)
	}
	manifest, found, err := project.Load(startDir)
	if err != nil {
		return opts, nil, err
	}

	opts.Jobs = jobs
	opts.MaxDiagnostics = maxDiagnostics

	if found {
		if opts.Jobs == 0 && manifest.Config.Scan.Jobs > 0 {
			opts.Jobs = manifest.Config.Scan.Jobs
		}
		if !cmd.Root().PersistentFlags().Changed("max-diagnostics") && manifest.Config.Scan.MaxDiag > 0 {
			opts.MaxDiagnostics = manifest.Config.Scan.MaxDiag
		}
		opts.Exclude = manifest.Excluded

		if manifest.Config.Cache.Enabled && !noCache {
			var cache *driver.ScanCache
			if dir := manifest.Config.Cache.Dir; dir != "" {
				cache, err = driver.OpenScanCacheAt(dir)
			} else {
				cache, err = driver.OpenScanCache("unforce")
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: scan cache unavailable: %v\n", err)
			} else {
				opts.Cache = cache
			}
		}
	}
	return opts, manifest, nil
}

func runScan(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	showFixes, err := cmd.Flags().GetBool("fixes")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	opts, _, err := buildScanOptions(cmd, targetPath, noCache)
	if err != nil {
		return err
	}

	fileSet, results, err := driver.ScanPath(cmd.Context(), targetPath, opts)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	bag := driver.CollectDiagnostics(results, opts.MaxDiagnostics)

	switch format {
	case "json":
		err = diagfmt.JSON(os.Stdout, bag, fileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			IncludeFixes:     showFixes,
			IncludePreviews:  showFixes,
		})
		if err != nil {
			return err
		}
	case "pretty":
		diagfmt.Pretty(os.Stdout, bag, fileSet, diagfmt.PrettyOpts{
			Color:       useColor(cmd, os.Stdout),
			ShowNotes:   true,
			ShowFixes:   showFixes,
			ShowPreview: showFixes,
		})
		if !quiet {
			matches := 0
			for _, r := range results {
				matches += r.Matches
			}
			fmt.Fprintf(os.Stdout, "\n%d candidate(s) in %d file(s)\n", matches, len(results))
		}
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}

	if bag.HasErrors() {
		return fmt.Errorf("scan finished with errors")
	}
	return nil
}
