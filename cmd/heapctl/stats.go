package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/heapkit/heap/alloc"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [script]",
		Short: "Show allocator statistics",
		Long: `The stats command runs a workload silently and reports allocator
counters (calls, growth, reuse, splits, merges, probes) and the final heap
shape. Without a script the demo sequence is used.

Example:
  heapctl stats
  heapctl stats workload.txt --mode next-fit
  heapctl stats --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

func runStats(args []string) error {
	var ops []scriptOp
	if len(args) == 1 {
		var err error
		if ops, err = loadScript(args[0]); err != nil {
			return err
		}
	}

	h, err := openHeap()
	if err != nil {
		return err
	}
	defer h.Close()

	if ops != nil {
		err = newScriptRunner(h, nil).run(ops)
	} else {
		err = demoSequence(h, nil)
	}
	if err != nil {
		return err
	}

	st := h.Stats()
	if jsonOut {
		return printJSON(st)
	}
	if quiet {
		return nil
	}
	printStats(st)
	return nil
}

// printStats prints counters with grouped digits.
func printStats(st alloc.Stats) {
	p := message.NewPrinter(language.English)

	p.Fprintf(os.Stdout, "Mode: %s\n\n", st.Mode)

	p.Fprintf(os.Stdout, "Operations:\n")
	p.Fprintf(os.Stdout, "  %-13s %d\n", "Allocations:", st.AllocCalls)
	p.Fprintf(os.Stdout, "  %-13s %d\n", "Frees:", st.FreeCalls)
	p.Fprintf(os.Stdout, "  %-13s %d\n", "Reused:", st.Reused)
	p.Fprintf(os.Stdout, "  %-13s %d\n", "Splits:", st.Splits)
	p.Fprintf(os.Stdout, "  %-13s %d\n", "Coalesces:", st.Coalesces)
	p.Fprintf(os.Stdout, "  %-13s %d\n", "Probes:", st.Probes)
	p.Fprintf(os.Stdout, "  %-13s %d (%d bytes)\n\n", "Growth:", st.GrowCalls, st.GrowBytes)

	p.Fprintf(os.Stdout, "Heap:\n")
	p.Fprintf(os.Stdout, "  %-13s %d (%d used, %d free)\n", "Blocks:", st.Blocks, st.UsedBlocks, st.FreeBlocks)
	p.Fprintf(os.Stdout, "  %-13s %d bytes\n", "Used:", st.UsedBytes)
	p.Fprintf(os.Stdout, "  %-13s %d bytes\n", "Free:", st.FreeBytes)
	p.Fprintf(os.Stdout, "  %-13s %d bytes\n", "Largest free:", st.LargestFree)
	p.Fprintf(os.Stdout, "  %-13s %d bytes\n", "Region:", st.RegionBytes)
}
