package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/joshuapare/stlkit/cmd/stlctl/logger"
	"github.com/joshuapare/stlkit/stl/alloc"
	"github.com/joshuapare/stlkit/stl/vector"
)

var (
	growthN       int
	growthReserve int
	growthSource  string
	growthLimit   int
	growthShrink  bool
	growthTable   bool
)

func init() {
	cmd := newGrowthCmd()
	cmd.Flags().IntVar(&growthN, "n", 16, "Number of values to append")
	cmd.Flags().IntVar(&growthReserve, "reserve", 0, "Capacity to reserve before appending")
	cmd.Flags().StringVar(&growthSource, "source", "heap", "Storage source (heap, budget, mmap)")
	cmd.Flags().IntVar(&growthLimit, "limit", 1<<20, "Byte limit of the budget source")
	cmd.Flags().BoolVar(&growthShrink, "shrink", false, "Shrink to fit after appending")
	cmd.Flags().BoolVar(&growthTable, "table", false, "Render the trace as a table")
	rootCmd.AddCommand(cmd)
}

func newGrowthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "growth",
		Short: "Trace vector capacity while appending",
		Long: `The growth command appends --n integers to a vector and records every
capacity change. The budget source refuses requests past --limit bytes, which
shows where growth fails and that the vector keeps its old contents.

Example:
  stlctl growth --n 100
  stlctl growth --n 10 --source budget --limit 64
  stlctl growth --n 4096 --source mmap --shrink`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrowth()
		},
	}
}

// growthStep is one capacity change.
type growthStep struct {
	Len int `json:"len"`
	Cap int `json:"cap"`
}

// accounting is a Source that reports its activity.
type accounting interface {
	alloc.Source
	Stats() alloc.Stats
}

func newSource(name string, limit int) (accounting, error) {
	switch name {
	case "heap":
		return nil, nil
	case "budget":
		if limit < 0 {
			return nil, fmt.Errorf("negative budget limit: %d", limit)
		}
		return alloc.NewBudget(limit), nil
	case "mmap":
		return alloc.NewMmap(), nil
	default:
		return nil, fmt.Errorf("unsupported source %q (want heap, budget, mmap)", name)
	}
}

func runGrowth() error {
	if growthN < 0 {
		return fmt.Errorf("negative count: %d", growthN)
	}
	src, err := newSource(growthSource, growthLimit)
	if err != nil {
		return err
	}

	opts := vector.DefaultOptions()
	opts.Capacity = growthReserve
	if src != nil {
		opts.Source = src
	}
	v, err := vector.NewWithOptions[int64](opts)
	if err != nil {
		return fmt.Errorf("reserve %d: %w", growthReserve, err)
	}
	defer v.Destroy()

	steps, growErr := traceGrowth(v, growthN)
	if growErr == nil && growthShrink {
		if err := v.ShrinkToFit(); err != nil {
			return err
		}
		steps = append(steps, growthStep{Len: v.Len(), Cap: v.Cap()})
	}
	if err := v.Verify(); err != nil {
		return err
	}

	report := map[string]any{
		"source": growthSource,
		"len":    v.Len(),
		"cap":    v.Cap(),
		"steps":  steps,
	}
	if src != nil {
		st := src.Stats()
		report["stats"] = st
		logger.Debug("source stats",
			"source", growthSource,
			"live", st.LiveBytes,
			"peak", st.PeakBytes,
			"failures", st.Failures,
		)
	}
	if growErr != nil {
		report["error"] = growErr.Error()
	}

	if jsonOut {
		if err := printJSON(report); err != nil {
			return err
		}
	} else {
		if growthTable {
			printInfo("%s\n", renderSteps(steps))
		} else {
			for _, s := range steps {
				printInfo("len=%d cap=%d\n", s.Len, s.Cap)
			}
		}
		if st, ok := report["stats"].(alloc.Stats); ok {
			printVerbose("live=%d peak=%d acquires=%d releases=%d failures=%d\n",
				st.LiveBytes, st.PeakBytes, st.Acquires, st.Releases, st.Failures)
		}
	}
	return growErr
}

// traceGrowth appends 0..n-1 to v and records each capacity change. It
// stops at the first failed append.
func traceGrowth(v *vector.Vector[int64], n int) ([]growthStep, error) {
	steps := []growthStep{}
	last := v.Cap()
	for i := range n {
		if err := v.PushBack(int64(i)); err != nil {
			logger.Warn("append failed", "index", i, "cap", v.Cap(), "error", err)
			return steps, fmt.Errorf("append %d: %w", i, err)
		}
		if c := v.Cap(); c != last {
			logger.Debug("grew", "len", v.Len(), "cap", c)
			steps = append(steps, growthStep{Len: v.Len(), Cap: c})
			last = c
		}
	}
	return steps, nil
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)

// renderSteps lays the trace out as a bordered table with a growth factor
// column.
func renderSteps(steps []growthStep) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("LEN", "CAP", "FACTOR").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	prev := 0
	for _, s := range steps {
		factor := "-"
		if prev > 0 {
			factor = strconv.FormatFloat(float64(s.Cap)/float64(prev), 'f', 2, 64)
		}
		t.Row(strconv.Itoa(s.Len), strconv.Itoa(s.Cap), factor)
		prev = s.Cap
	}
	return t.Render()
}
