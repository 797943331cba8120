package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/regiontree"
	"github.com/npillmayer/regiontree/promstats"
	"github.com/npillmayer/regiontree/script"
	"github.com/prometheus/client_golang/prometheus"
)

const demoScript = `
# single cells
set 0 0 7
set 0 1 6
set 1 1 4
set 2 1 1
set 2 2 4
# a column and a row, overwriting
update 0 2 3 2 9
update 2 0 2 2 9
grid 0 0 2 2
query 0 0 0 1
query 0 0 1 0
query 1 1 2 2
query 0 0 1000000000 1000000000
stats
`

func runDemo(ctx context.Context, out io.Writer) error {
	tree, err := script.NewTree(script.Settings{Policy: "assign-min"})
	if err != nil {
		return err
	}
	defer tree.Destroy()
	return script.Run(ctx, tree, strings.NewReader(demoScript), out)
}

func runScript(ctx context.Context, opts *options, path string, stdin io.Reader, out io.Writer) error {
	tree, err := execute(ctx, opts, path, stdin, out)
	if err != nil {
		return err
	}
	if opts.metrics {
		return printMetrics(out, path, tree)
	}
	return nil
}

func dotScript(ctx context.Context, opts *options, path string, stdin io.Reader, out, diag io.Writer) error {
	tree, err := execute(ctx, opts, path, stdin, diag)
	if err != nil {
		return err
	}
	return regiontree.Tree2Dot(tree, out)
}

// execute runs the script at path (or stdin for "-") on a new tree.
func execute(ctx context.Context, opts *options, path string, stdin io.Reader, out io.Writer) (*regiontree.Tree[int64, int64], error) {
	settings := script.DefaultSettings()
	if opts.settings != "" {
		var err error
		if settings, err = script.LoadSettings(opts.settings); err != nil {
			return nil, err
		}
	}
	tree, err := script.NewTree(settings)
	if err != nil {
		return nil, err
	}
	in := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open script")
		}
		defer f.Close()
		in = f
	}
	if err := script.Run(ctx, tree, in, out); err != nil {
		return nil, errors.Wrapf(err, "script %s", path)
	}
	return tree, nil
}

// printMetrics gathers the tree's metrics through a Prometheus registry and
// prints them as "name value" lines.
func printMetrics(out io.Writer, name string, tree *regiontree.Tree[int64, int64]) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(promstats.NewCollector(name, tree)); err != nil {
		return err
	}
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			v := m.GetCounter().GetValue()
			if g := m.GetGauge(); g != nil {
				v = g.GetValue()
			}
			fmt.Fprintf(out, "%s %g\n", mf.GetName(), v)
		}
	}
	return nil
}
