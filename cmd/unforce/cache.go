package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"unforce/internal/driver"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the scan cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop every cached scan result",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := driver.OpenScanCache("unforce")
		if err != nil {
			return fmt.Errorf("cache clear: %w", err)
		}
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("cache clear: %w", err)
		}
		quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
		if !quiet {
			fmt.Fprintln(os.Stdout, "Scan cache cleared.")
		}
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}
