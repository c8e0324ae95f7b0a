// Copyright (C) 2026 Storj Labs, Inc.
// See LICENSE for copying information.

// metainspect inspects and edits the custom metadata of item files. Shown
// metadata goes through the same export and import the uplink C bindings use.
package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storj.io/uplinkmeta/pkg/process"
)

func main() {
	process.Execute(newRootCmd())
}

// newRootCmd creates the metainspect command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "metainspect",
		Short:        "Inspect and edit the custom metadata of item files",
		SilenceUsage: true,
	}

	show := &cobra.Command{
		Use:   "show ITEMFILE [KEY]",
		Short: "Show the custom metadata of an item, or the value of one key",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  cmdShow,
	}
	show.Flags().Bool("system", false, "also show the system metadata")
	root.AddCommand(show)

	root.AddCommand(&cobra.Command{
		Use:   "set ITEMFILE KEY VALUE",
		Short: "Set the value of a custom metadata key",
		Args:  cobra.ExactArgs(3),
		RunE:  cmdSet,
	})

	root.AddCommand(&cobra.Command{
		Use:   "rm ITEMFILE KEY",
		Short: "Remove a custom metadata key",
		Args:  cobra.ExactArgs(2),
		RunE:  cmdRemove,
	})

	return root
}

// withLogger runs fn with the process logger.
func withLogger(fn func(log *zap.Logger) error) error {
	log, err := process.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	return fn(log)
}
