// Package trace implements the generator's developer-facing diagnostic
// dump: a pretty-printed view of the statement dispatch decisions and the
// ILT branch/state-vector tree, written to stderr when the CLI's
// --trace flag is set. It mirrors the teacher's approach of reaching for
// github.com/kr/pretty for this rather than a hand-rolled recursive
// printer. No part of the generator calls RecordDispatch or RecordBranches,
// so the log the CLI flushes is always empty.
package trace

import (
	"fmt"
	"io"

	"github.com/kr/pretty"

	"github.com/cwbudde/ttcn3gen/ast"
)

// Dispatch is one statement-dispatch decision recorded during generation:
// the statement kind dispatched on and, for alt/interleave, which lowering
// form was chosen.
type Dispatch struct {
	Kind ast.StatementKind
	Loc  ast.Location
	Note string // e.g. "standalone alt" / "ILT branch form" / "standalone receive loop"
}

// BranchSnapshot is one branch of an ILT/alt at the moment it was lowered,
// for the --trace dump; it does not retain the generated text itself,
// only the facts a reader debugging the lowering needs.
type BranchSnapshot struct {
	Index       int
	Kind        string // "alt" / "interleave" / "receive"
	HasGuard    bool
	IsReceiving bool
	CanRepeat   bool
	StateVar    string // empty outside an interleave
}

// Log accumulates Dispatch and BranchSnapshot records during one
// generation run and prints them on Flush. A nil *Log is valid and every
// method on it is a no-op, so call sites don't need to branch on whether
// tracing is enabled.
type Log struct {
	dispatches []Dispatch
	branches   [][]BranchSnapshot
}

// New returns an empty Log, or nil when enabled is false.
func New(enabled bool) *Log {
	if !enabled {
		return nil
	}
	return &Log{}
}

func (l *Log) RecordDispatch(d Dispatch) {
	if l == nil {
		return
	}
	l.dispatches = append(l.dispatches, d)
}

func (l *Log) RecordBranches(branches []BranchSnapshot) {
	if l == nil {
		return
	}
	l.branches = append(l.branches, branches)
}

// Flush pretty-prints the accumulated dispatch and branch records to w.
// A nil *Log flushes nothing.
func (l *Log) Flush(w io.Writer) {
	if l == nil {
		return
	}
	for _, d := range l.dispatches {
		fmt.Fprintf(w, "dispatch %s at %s\n", d.Kind, d.Loc)
		if d.Note != "" {
			fmt.Fprintf(w, "  %s\n", d.Note)
		}
	}
	for _, group := range l.branches {
		fmt.Fprint(w, "branches:\n")
		fmt.Fprintf(w, "%# v\n", pretty.Formatter(group))
	}
}
