package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/regiontree"
)

// ErrSyntax signals a malformed script line.
var ErrSyntax = errors.New("script: syntax error")

// Target is the tree a script operates on. Both *regiontree.Tree[int64, int64]
// and *regiontree.Locked[int64, int64] are targets.
type Target interface {
	CellReader
	Update(r1, c1, r2, c2 int, d int64) error
	UpdateAt(r, c int, d int64) error
	Query(r1, c1, r2, c2 int) (int64, error)
	Stats() regiontree.Stats
}

// Interpreter executes script commands against a target tree and writes
// results to an output writer.
type Interpreter struct {
	tree Target
	out  io.Writer
	grid *GridPrinter
	line int // number of the current line
}

// NewInterpreter creates an interpreter for tree, printing to out.
func NewInterpreter(tree Target, out io.Writer) *Interpreter {
	return &Interpreter{tree: tree, out: out, grid: NewGridPrinter()}
}

// SetGridPrinter replaces the printer used by the grid command.
func (ip *Interpreter) SetGridPrinter(gp *GridPrinter) {
	ip.grid = gp
}

// Run executes a script with default interpreter settings.
func Run(ctx context.Context, tree Target, script io.Reader, out io.Writer) error {
	return NewInterpreter(tree, out).Run(ctx, script)
}

// Run executes all lines of script. It stops at the first failing line and
// returns its error, annotated with the line number. ctx is checked before
// every line.
func (ip *Interpreter) Run(ctx context.Context, script io.Reader) error {
	sc := bufio.NewScanner(script)
	ip.line = 0
	for sc.Scan() {
		ip.line++
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "line %d", ip.line)
		}
		if err := ip.Exec(sc.Text()); err != nil {
			tracer().Errorf("script: line %d: %v", ip.line, err)
			return errors.Wrapf(err, "line %d", ip.line)
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "reading script")
	}
	tracer().Debugf("script: executed %d lines", ip.line)
	return nil
}

// Exec executes a single command line.
func (ip *Interpreter) Exec(cmdline string) error {
	if i := strings.IndexByte(cmdline, '#'); i >= 0 {
		cmdline = cmdline[:i]
	}
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "update":
		n, err := numbers(cmd, args, 5)
		if err != nil {
			return err
		}
		return ip.tree.Update(int(n[0]), int(n[1]), int(n[2]), int(n[3]), n[4])
	case "set":
		n, err := numbers(cmd, args, 3)
		if err != nil {
			return err
		}
		return ip.tree.UpdateAt(int(n[0]), int(n[1]), n[2])
	case "query":
		n, err := numbers(cmd, args, 4)
		if err != nil {
			return err
		}
		v, err := ip.tree.Query(int(n[0]), int(n[1]), int(n[2]), int(n[3]))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(ip.out, v)
		return err
	case "at":
		n, err := numbers(cmd, args, 2)
		if err != nil {
			return err
		}
		v, err := ip.tree.At(int(n[0]), int(n[1]))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(ip.out, v)
		return err
	case "grid":
		n, err := numbers(cmd, args, 4)
		if err != nil {
			return err
		}
		q := regiontree.Rect{R1: int(n[0]), C1: int(n[1]), R2: int(n[2]), C2: int(n[3])}
		return ip.grid.Print(ip.out, ip.tree, q)
	case "stats":
		if len(args) != 0 {
			return errors.Wrapf(ErrSyntax, "stats takes no arguments")
		}
		s := ip.tree.Stats()
		_, err := fmt.Fprintf(ip.out, "nodes: %d live, %d created, %d freed; updates: %d; queries: %d\n",
			s.Live(), s.NodesCreated, s.NodesFreed, s.Updates, s.Queries)
		return err
	}
	return errors.Wrapf(ErrSyntax, "unknown command %q", cmd)
}

// numbers parses exactly n integer arguments of command cmd.
func numbers(cmd string, args []string, n int) ([]int64, error) {
	if len(args) != n {
		return nil, errors.Wrapf(ErrSyntax, "%s takes %d arguments, have %d", cmd, n, len(args))
	}
	nums := make([]int64, n)
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrSyntax, "%s: argument %d is not an integer: %q", cmd, i+1, a)
		}
		nums[i] = v
	}
	return nums, nil
}
