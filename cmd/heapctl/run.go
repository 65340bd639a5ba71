package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Replay an allocation script",
		Long: `The run command replays a script of allocator operations, one per line:

  alloc <name> <bytes>   allocate and bind the pointer to name
  free <name>            free the pointer bound to name
  reset                  discard every block
  init <mode>            reset and switch strategy
  dump                   print the heap

Lines starting with # are comments. Failures report the line number.
Use "-" to read the script from stdin.

Example:
  heapctl run workload.txt
  heapctl run workload.txt --mode best-fit --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(args)
		},
	}
	return cmd
}

func runScript(args []string) error {
	ops, err := loadScript(args[0])
	if err != nil {
		return err
	}

	h, err := openHeap()
	if err != nil {
		return err
	}
	defer h.Close()

	rec := &recorder{h: h}
	if err := newScriptRunner(h, rec.record).run(ops); err != nil {
		return err
	}

	if !jsonOut {
		st := h.Stats()
		printInfo("%d operations, %d live blocks (%d used)\n", len(ops), st.Blocks, st.UsedBlocks)
	}
	return rec.flush()
}

func loadScript(path string) ([]scriptOp, error) {
	if path == "-" {
		return parseScript(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	printVerbose("Loading script: %s\n", path)
	return parseScript(f)
}
