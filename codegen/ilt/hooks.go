// Package ilt implements the Interleave Lowering Transform of spec §4.4
// and the standalone-alt form of §4.5: flattening an alt/interleave
// statement's branches into a snapshot-driven dispatch loop. It has no
// dependency on package codegen — every piece of statement-level
// rendering it needs (guard evaluation, matcher construction, branch-body
// emission) arrives through a Hooks value the caller assembles, which is
// what lets codegen and ilt sit on either side of the same import edge
// without a cycle.
package ilt

import (
	"github.com/cwbudde/ttcn3gen/ast"
)

// BranchKind mirrors the original transform's AB_ALT/AB_IL/AB_RECV
// distinction (Eclipse_Titan_Core's ILT_branch): whether a branch is a
// plain alt guard, a nested interleave, or a bare receiving statement. The
// lowering does not consult it: every completed interleave branch body
// checks sibling completion before jumping to the done label.
type BranchKind int

const (
	BranchAlt BranchKind = iota
	BranchInterleave
	BranchReceive
)

// Hooks is the statement-rendering surface package codegen supplies.
type Hooks struct {
	// FreshID returns a unique identifier with the given prefix.
	FreshID func(prefix string) string

	// Guard renders a boolean guard expression to its preamble/expr pair;
	// a nil Value renders as the always-true condition.
	Guard func(v ast.Value) (preamble, expr string)

	// ConstBool folds a compile-time-constant boolean guard.
	ConstBool func(v ast.Value) (value bool, ok bool)

	// Matcher builds a receiving operation's runtime matcher call and
	// reports whether it can return REPEAT (§4.3's matcher table).
	Matcher func(op ast.Statement) (call string, canRepeat bool)

	// IsReceiving reports whether op is a receiving-kind statement, as
	// opposed to a plain altstep-call/invoke guard operation; only a
	// receiving op needs the three-phase snapshot dance, a plain op just
	// runs once per iteration when its guard is true.
	IsReceiving func(op ast.Statement) bool

	// EmitOp runs a non-receiving guard operation (an altstep call or
	// invoke) for its side effect, with no alt-status result.
	EmitOp func(op ast.Statement) error

	// RenderBody renders a branch's statement block and returns its
	// generated text, for inlining or for placement behind a body label.
	RenderBody func(block *ast.StatementBlock) (string, error)

	// InAltstep is true while lowering the top-level alt of an altstep
	// definition, which changes how YES/REPEAT/BREAK terminate (§4.5,
	// "An altstep body ... each branch's YES path returns ALT_YES").
	InAltstep bool
}
