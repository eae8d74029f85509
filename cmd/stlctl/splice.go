package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/stlkit/cmd/stlctl/logger"
)

var (
	spliceContainer string
	spliceAt        int
	spliceCount     int
)

func init() {
	cmd := newSpliceCmd()
	cmd.Flags().StringVarP(&spliceContainer, "container", "c", containerList, "Container to splice in (vector, flist, list)")
	cmd.Flags().IntVar(&spliceAt, "at", -1, "Index in the destination to splice before (-1 = end)")
	cmd.Flags().IntVarP(&spliceCount, "count", "n", -1, "Number of leading source values to move (-1 = all)")
	rootCmd.AddCommand(cmd)
}

func newSpliceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "splice <dest,...> <src,...>",
		Short: "Move leading values of one sequence into another",
		Long: `The splice command moves the first --count values of the source sequence
into the destination before index --at. Linked lists relink the nodes; the
vector copies the range and erases it from the source.

Example:
  stlctl splice a,b,c x,y,z --at 1
  stlctl splice --container flist --count 2 a,b x,y,z`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplice(args)
		},
	}
}

func runSplice(args []string) error {
	if err := checkArgs(args, 2, "stlctl splice <dest,...> <src,...>"); err != nil {
		return err
	}
	if err := checkContainer(spliceContainer); err != nil {
		return err
	}
	dst, src := splitList(args[0]), splitList(args[1])

	at, count := spliceAt, spliceCount
	if at < 0 {
		at = len(dst)
	}
	if count < 0 {
		count = len(src)
	}
	printVerbose("Moving %d value(s) into position %d of a %s\n", count, at, spliceContainer)

	dest, rest, err := spliceIn(spliceContainer, dst, src, at, count)
	if err != nil {
		return err
	}
	logger.Info("spliced", "container", spliceContainer, "moved", count, "dest", len(dest), "source", len(rest))

	if jsonOut {
		return printJSON(map[string]any{
			"container": spliceContainer,
			"dest":      dest,
			"source":    rest,
		})
	}
	printValues(dest)
	printVerbose("source: %v\n", rest)
	return nil
}
