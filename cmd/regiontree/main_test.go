package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, diag bytes.Buffer
	root := newRootCmd()
	root.SetArgs(append(args, "--color", "never"))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&diag)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDemo(t *testing.T) {
	out, err := execRoot(t, "", "demo")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "7 6 9\n0 4 9\n9 9 9\n6\n0\n4\n0\nnodes: "), out)
}

func TestRunWithSettings(t *testing.T) {
	settings := writeFile(t, "tree.yaml", "policy: accumulate\nmax_row: 9\nmax_col: 9\n")
	scr := writeFile(t, "cmds.txt", "update 0 0 9 9 1\nupdate 0 0 4 4 1\nquery 0 0 9 9\n")
	out, err := execRoot(t, "", "run", "--settings", settings, "--metrics", scr)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "125\n"), out)
	assert.Contains(t, out, "regiontree_updates_total 2\n")
	assert.Contains(t, out, "regiontree_queries_total 1\n")
	assert.Contains(t, out, "regiontree_nodes_freed_total 0\n")
}

func TestRunFromStdin(t *testing.T) {
	out, err := execRoot(t, "set 1 1 5\nat 1 1\nat 1 2\n", "run", "-")
	require.NoError(t, err)
	assert.Equal(t, "5\n0\n", out)
}

func TestRunReportsErrors(t *testing.T) {
	_, err := execRoot(t, "at 1 1\nat -1 0\n", "run", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = execRoot(t, "", "run", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	settings := writeFile(t, "bad.yaml", "policy: median\n")
	_, err = execRoot(t, "", "run", "--settings", settings, "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "median")
}

func TestDot(t *testing.T) {
	out, err := execRoot(t, "update 0 0 1 1 3\nquery 0 0 1 0\n", "dot", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "strict digraph {\n"), out)
	assert.NotContains(t, out, "\n6\n", "script output goes to stderr")
}
