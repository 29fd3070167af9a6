package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"unforce/internal/diag"
	"unforce/internal/driver"
	"unforce/internal/fix"
	"unforce/internal/source"
	"unforce/internal/ui"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [flags] <file.swift|directory>",
	Short: "Rewrite force-try expressions into do/catch blocks",
	Long:  "Rewrite scans the target and applies the do/catch rewrite according to the chosen strategy, preserving all surrounding formatting and comments.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRewrite,
}

func init() {
	rewriteCmd.Flags().Bool("all", false, "apply every available rewrite")
	rewriteCmd.Flags().Bool("once", false, "apply the first available rewrite (default)")
	rewriteCmd.Flags().String("id", "", "apply the rewrite with a specific identifier")
	rewriteCmd.Flags().Bool("interactive", false, "pick rewrites in an interactive selector")
	rewriteCmd.Flags().Bool("dry-run", false, "stage everything but write nothing")
	rewriteCmd.Flags().String("backup", "", "save originals with this suffix before overwriting")
}

func runRewrite(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	applyAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	applyOnce, err := cmd.Flags().GetBool("once")
	if err != nil {
		return err
	}
	targetID, err := cmd.Flags().GetString("id")
	if err != nil {
		return err
	}
	interactive, err := cmd.Flags().GetBool("interactive")
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}
	backupSuffix, err := cmd.Flags().GetString("backup")
	if err != nil {
		return err
	}
	if targetID != "" && (applyAll || applyOnce || interactive) {
		return fmt.Errorf("--id cannot be combined with --all, --once, or --interactive")
	}
	if applyAll && applyOnce {
		return fmt.Errorf("--all and --once are mutually exclusive")
	}
	if interactive && (applyAll || applyOnce) {
		return fmt.Errorf("--interactive cannot be combined with --all or --once")
	}
	if interactive && !isTerminal(os.Stdin) {
		return fmt.Errorf("--interactive requires a terminal")
	}

	// Rewriting always works from fresh parses; cached results carry no
	// fixes to apply.
	opts, manifest, err := buildScanOptions(cmd, targetPath, true)
	if err != nil {
		return err
	}
	if backupSuffix == "" && manifest != nil {
		backupSuffix = manifest.Config.Fix.BackupSuffix
	}

	fileSet, results, err := driver.ScanPath(cmd.Context(), targetPath, opts)
	if err != nil {
		return fmt.Errorf("rewrite: %w", err)
	}
	bag := driver.CollectDiagnostics(results, 0)

	applyOpts := fix.ApplyOptions{
		Mode:         fix.ApplyModeOnce,
		DryRun:       dryRun,
		BackupSuffix: backupSuffix,
	}
	switch {
	case targetID != "":
		applyOpts.Mode = fix.ApplyModeID
		applyOpts.TargetID = targetID
	case applyAll:
		applyOpts.Mode = fix.ApplyModeAll
	case interactive:
		picked, err := pickInteractively(bag, fileSet)
		if err != nil {
			return err
		}
		if picked.Canceled {
			fmt.Fprintln(os.Stdout, "Canceled, nothing applied.")
			return nil
		}
		if len(picked.IDs) == 0 {
			fmt.Fprintln(os.Stdout, "Nothing selected, nothing applied.")
			return nil
		}
		applyOpts.Mode = fix.ApplyModeSet
		applyOpts.TargetIDs = picked.IDs
	}

	res, applyErr := fix.Apply(fileSet, bag.Items(), applyOpts)
	return reportApplyResult(res, applyErr, dryRun)
}

// pickInteractively turns each diagnostic's fixes into picker rows.
func pickInteractively(bag *diag.Bag, fileSet *source.FileSet) (ui.PickResult, error) {
	var items []ui.FixItem
	for _, d := range bag.Items() {
		if len(d.Fixes) == 0 {
			continue
		}
		file := fileSet.Get(d.Primary.File)
		if file == nil {
			continue
		}
		start, _ := fileSet.Resolve(d.Primary)
		location := fmt.Sprintf("%s:%d:%d", file.FormatPath("relative", fileSet.BaseDir()), start.Line, start.Col)
		for _, f := range d.Fixes {
			items = append(items, ui.FixItem{
				ID:       f.ID,
				Title:    f.Title,
				Location: location,
				Detail:   file.GetLine(start.Line),
			})
		}
	}
	return ui.PickFixes(items)
}

func reportApplyResult(res *fix.ApplyResult, applyErr error, dryRun bool) error {
	if res == nil {
		return applyErr
	}

	if len(res.Applied) > 0 {
		verb := "Applied"
		if dryRun {
			verb = "Would apply"
		}
		fmt.Fprintf(os.Stdout, "%s %d rewrite(s):\n", verb, len(res.Applied))
		for _, item := range res.Applied {
			location := item.PrimaryPath
			if location == "" {
				location = "(unknown location)"
			}
			fmt.Fprintf(os.Stdout, "  %s [%s] at %s (%d edits, %s)\n",
				item.Title, item.ID, location, item.EditCount, item.Applicability.String())
		}
	}

	if len(res.FileChanges) > 0 && !dryRun {
		fmt.Fprintln(os.Stdout, "Updated files:")
		for _, change := range res.FileChanges {
			fmt.Fprintf(os.Stdout, "  %s (%d edits)\n", change.Path, change.EditCount)
		}
	}

	if len(res.Skipped) > 0 {
		fmt.Fprintln(os.Stdout, "Skipped rewrites:")
		for _, skip := range res.Skipped {
			id := skip.ID
			if id == "" {
				id = "(unnamed)"
			}
			if skip.Title != "" {
				fmt.Fprintf(os.Stdout, "  %s [%s]: %s\n", skip.Title, id, skip.Reason)
			} else {
				fmt.Fprintf(os.Stdout, "  [%s]: %s\n", id, skip.Reason)
			}
		}
	}

	if applyErr != nil {
		if errors.Is(applyErr, fix.ErrNoFixes) && len(res.Applied) == 0 {
			fmt.Fprintln(os.Stdout, "No applicable rewrites found.")
			return nil
		}
		return applyErr
	}
	return nil
}
