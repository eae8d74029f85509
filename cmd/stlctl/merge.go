package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/joshuapare/stlkit/cmd/stlctl/logger"
	"github.com/joshuapare/stlkit/stl/compare"
)

var (
	mergeContainer string
	mergeOrder     ordering
	mergePresort   bool
)

func init() {
	cmd := newMergeCmd()
	cmd.Flags().StringVarP(&mergeContainer, "container", "c", containerList, "Container to merge in (vector, flist, list)")
	cmd.Flags().BoolVar(&mergePresort, "sort", false, "Sort both inputs before merging")
	mergeOrder.bind(cmd.Flags())
	rootCmd.AddCommand(cmd)
}

func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <a,b,c> <x,y,z>",
		Short: "Merge two sorted comma separated sequences",
		Long: `The merge command merges two sorted sequences into one. Linked lists move
the nodes of the second sequence into the first without copying them. On ties
the elements of the first sequence come first.

Example:
  stlctl merge 1,3,5 2,3,4 --numeric
  stlctl merge --sort pear,apple fig,kiwi`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(args)
		},
	}
}

func runMerge(args []string) error {
	if err := checkArgs(args, 2, "stlctl merge <a,b,c> <x,y,z>"); err != nil {
		return err
	}
	if err := checkContainer(mergeContainer); err != nil {
		return err
	}
	a, b := splitList(args[0]), splitList(args[1])
	printVerbose("Merging %d and %d value(s) in a %s\n", len(a), len(b), mergeContainer)

	if mergeOrder.numeric {
		x, err := parseInts(a)
		if err != nil {
			return fmt.Errorf("first input: %w", err)
		}
		y, err := parseInts(b)
		if err != nil {
			return fmt.Errorf("second input: %w", err)
		}
		less, err := mergeOrder.intLess()
		if err != nil {
			return err
		}
		return mergeAndReport(x, y, less)
	}

	less, err := mergeOrder.stringLess()
	if err != nil {
		return err
	}
	return mergeAndReport(a, b, less)
}

func mergeAndReport[T any](a, b []T, less func(a, b T) bool) error {
	inputs := [][]T{a, b}
	for i, in := range inputs {
		if mergePresort {
			slices.SortStableFunc(in, compare.ThreeWay(less))
			continue
		}
		if !slices.IsSortedFunc(in, compare.ThreeWay(less)) {
			return fmt.Errorf("input %d is not sorted (use --sort)", i+1)
		}
	}

	merged, err := mergeIn(mergeContainer, a, b, less)
	if err != nil {
		return err
	}
	logger.Info("merged", "container", mergeContainer, "count", len(merged))

	if jsonOut {
		return printJSON(map[string]any{
			"container": mergeContainer,
			"values":    merged,
		})
	}
	printValues(merged)
	return nil
}
