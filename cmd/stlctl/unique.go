package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/stlkit/cmd/stlctl/logger"
	"github.com/joshuapare/stlkit/stl/compare"
)

var (
	uniqueContainer string
	uniqueOrder     ordering
	uniquePresort   bool
)

func init() {
	cmd := newUniqueCmd()
	cmd.Flags().StringVarP(&uniqueContainer, "container", "c", containerList, "Container to deduplicate in (vector, flist, list)")
	cmd.Flags().BoolVar(&uniquePresort, "sort", false, "Sort before removing duplicates so every duplicate goes")
	uniqueOrder.bind(cmd.Flags())
	rootCmd.AddCommand(cmd)
}

func newUniqueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unique <value>...",
		Short: "Remove consecutive duplicate values",
		Long: `The unique command keeps the first value of every run of equivalent
consecutive values. With --collate, values that collate equally (for example
differing only in case at the chosen strength) count as duplicates.

Example:
  stlctl unique a a b a
  stlctl unique --sort --numeric 3 1 3 2 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnique(args)
		},
	}
}

func runUnique(args []string) error {
	if err := checkContainer(uniqueContainer); err != nil {
		return err
	}

	if uniqueOrder.numeric {
		nums, err := parseInts(args)
		if err != nil {
			return err
		}
		less, err := uniqueOrder.intLess()
		if err != nil {
			return err
		}
		return uniqueAndReport(nums, less)
	}

	less, err := uniqueOrder.stringLess()
	if err != nil {
		return err
	}
	return uniqueAndReport(args, less)
}

func uniqueAndReport[T any](vals []T, less func(a, b T) bool) error {
	if uniquePresort {
		sorted, err := sortIn(uniqueContainer, vals, less)
		if err != nil {
			return err
		}
		vals = sorted
	}

	kept, removed, err := uniqueIn(uniqueContainer, vals, compare.Equivalent(less))
	if err != nil {
		return err
	}
	logger.Info("unique", "container", uniqueContainer, "kept", len(kept), "removed", removed)
	printVerbose("Removed %d duplicate(s)\n", removed)

	if jsonOut {
		return printJSON(map[string]any{
			"container": uniqueContainer,
			"values":    kept,
			"removed":   removed,
		})
	}
	printValues(kept)
	return nil
}
