package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/stlkit/cmd/stlctl/logger"
)

var (
	sortContainer string
	sortOrder     ordering
)

func init() {
	cmd := newSortCmd()
	cmd.Flags().StringVarP(&sortContainer, "container", "c", containerList, "Container to sort in (vector, flist, list)")
	sortOrder.bind(cmd.Flags())
	rootCmd.AddCommand(cmd)
}

func newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort <value>...",
		Short: "Stable sort values inside a container",
		Long: `The sort command copies the values into the chosen container and sorts
them there with a stable sort. Lists relink their nodes; the vector sorts its
contiguous block.

Example:
  stlctl sort pear apple fig
  stlctl sort --container flist --numeric --desc 3 10 2
  stlctl sort --collate de Zoo apple Äpfel zebra`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(args)
		},
	}
}

func runSort(args []string) error {
	if err := checkContainer(sortContainer); err != nil {
		return err
	}
	printVerbose("Sorting %d value(s) in a %s\n", len(args), sortContainer)

	if sortOrder.numeric {
		nums, err := parseInts(args)
		if err != nil {
			return err
		}
		less, err := sortOrder.intLess()
		if err != nil {
			return err
		}
		sorted, err := sortIn(sortContainer, nums, less)
		if err != nil {
			return err
		}
		return reportSorted(sorted)
	}

	less, err := sortOrder.stringLess()
	if err != nil {
		return err
	}
	sorted, err := sortIn(sortContainer, args, less)
	if err != nil {
		return err
	}
	return reportSorted(sorted)
}

func reportSorted[T any](sorted []T) error {
	logger.Info("sorted", "container", sortContainer, "count", len(sorted))
	if jsonOut {
		return printJSON(map[string]any{
			"container": sortContainer,
			"values":    sorted,
		})
	}
	printValues(sorted)
	return nil
}
