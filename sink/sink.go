// Package sink implements the generator's output-side plumbing: the
// Expression struct exchanged between sub-generators (§3) and the
// CodeUnit carrying the four named text sinks of §6. Buffers are growable
// string builders passed by pointer, replacing the source's mutating
// pointer-to-pointer convention per the design notes.
package sink

import (
	"strconv"
	"strings"
)

// Expression is the unit of code exchanged between sub-generators: a
// preamble of setup statements, the value expression itself, and a
// postamble of teardown statements. The concatenation contract is
// `preamble; lhs = expr; postamble` — any sub-generator that cannot
// express itself as a single expression pushes into Preamble instead.
type Expression struct {
	Preamble  strings.Builder
	Expr      string
	Postamble strings.Builder
}

// HasSideEffects reports whether this expression needs statement-level
// preamble/postamble around its use, i.e. it is not a bare single
// expression.
func (e *Expression) HasSideEffects() bool {
	return e.Preamble.Len() > 0 || e.Postamble.Len() > 0
}

// AssignTo renders the full `preamble; lhs = expr; postamble` form into a
// single string, the concatenation rule of §3.
func (e *Expression) AssignTo(lhs string) string {
	var b strings.Builder
	b.WriteString(e.Preamble.String())
	if lhs != "" {
		b.WriteString(lhs)
		b.WriteString(" = ")
	}
	b.WriteString(e.Expr)
	b.WriteString(";\n")
	b.WriteString(e.Postamble.String())
	return b.String()
}

// CodeUnit is the per-compilation-unit output: the four named sinks of §6,
// plus the per-unit fresh-identifier counter the design notes prescribe
// ("a monotonic counter stored on the module node, reset at the start of
// each run") as the fix for the source's ad hoc temporary-id generator.
type CodeUnit struct {
	ClassDefs   strings.Builder // class declarations, in dependency order
	Methods     strings.Builder // method and free-function bodies
	DefGlobVars strings.Builder // declarations of process-wide globals
	SrcGlobVars strings.Builder // initialisation fragments for those globals

	tmpCounter int
}

// NewCodeUnit returns an empty CodeUnit with its identifier counter reset,
// as required for determinism across repeated runs on the same input.
func NewCodeUnit() *CodeUnit {
	return &CodeUnit{}
}

// FreshID returns a unique identifier with the given prefix, unique within
// this compilation unit and stable under re-run (the counter always starts
// at zero for a fresh CodeUnit, so the same AST always yields the same
// names).
func (u *CodeUnit) FreshID(prefix string) string {
	id := u.tmpCounter
	u.tmpCounter++
	return prefix + "_" + strconv.Itoa(id)
}
