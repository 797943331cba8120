/*
Command regiontree runs update/query scripts against sparse region trees.

	regiontree demo
	regiontree run --settings tree.yaml commands.txt
	regiontree dot commands.txt > tree.dot

Scripts are described in package regiontree/script.
*/
package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	trace    string // trace level, empty for no tracing
	colors   string // auto, always or never
	settings string // path of a YAML settings file
	metrics  bool   // print tree metrics after a run
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "regiontree",
		Short:        "sparse 2D range-update / range-query trees",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupTracing(opts.trace, cmd.ErrOrStderr())
			setupColors(opts.colors, cmd.OutOrStdout())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.trace, "trace", "", "trace level (Debug, Info, Error)")
	root.PersistentFlags().StringVar(&opts.colors, "color", "auto", "colored grids (auto, always, never)")

	demo := &cobra.Command{
		Use:   "demo",
		Short: "run a small assign-min scenario and print its grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), cmd.OutOrStdout())
		},
	}
	run := &cobra.Command{
		Use:   "run <script>",
		Short: "execute a script (use - for stdin)",
		Long: `
Execute a script against a fresh tree configured by --settings. Results of
query, at, grid and stats commands go to stdout.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd.Context(), opts, args[0], cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	run.Flags().StringVar(&opts.settings, "settings", "", "YAML settings file")
	run.Flags().BoolVar(&opts.metrics, "metrics", false, "print tree metrics after the run")
	dot := &cobra.Command{
		Use:   "dot <script>",
		Short: "execute a script and print the tree in GraphViz DOT format",
		Long: `
Execute a script like "run" does, then write the tree's nodes as a GraphViz
digraph to stdout. Script output goes to stderr.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dotScript(cmd.Context(), opts, args[0], cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	dot.Flags().StringVar(&opts.settings, "settings", "", "YAML settings file")

	root.AddCommand(demo, run, dot)
	return root
}

// setupTracing routes tracing to the Go logger at the given level.
func setupTracing(level string, w io.Writer) {
	if level == "" {
		return
	}
	tracer := gologadapter.New()
	tracer.SetOutput(w)
	tracer.SetTraceLevel(tracing.TraceLevelFromString(level))
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return tracer
	}))
	tracer.Infof("tracing at level %s", tracer.GetTraceLevel())
}

func setupColors(mode string, out io.Writer) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		f, ok := out.(*os.File)
		color.NoColor = !ok || !term.IsTerminal(int(f.Fd()))
	}
}
