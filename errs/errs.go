// Package errs implements the generator's internal error taxonomy (spec
// §7): fatal (logic) errors that abort generation, semantic errors the
// checker is assumed to have already surfaced, and non-fatal warnings.
// Nothing here panics; a recursive emitter that hits a violated invariant
// returns a *Fatal with the offending location instead.
package errs

import (
	"fmt"

	"github.com/cwbudde/ttcn3gen/ast"
)

// Fatal is a logic-error: the AST violates an invariant the generator
// relies on, and is therefore always a bug in the checker or the
// generator itself. Terminating compilation is the only valid response;
// there is no recovery path.
type Fatal struct {
	Loc     ast.Location
	Message string
}

func (e *Fatal) Error() string {
	return fmt.Sprintf("%s: internal error: %s", e.Loc, e.Message)
}

// NewFatal builds a Fatal at loc.
func NewFatal(loc ast.Location, format string, args ...any) *Fatal {
	return &Fatal{Loc: loc, Message: fmt.Sprintf(format, args...)}
}

// Semantic represents a checker-reported error the generator is told
// about (statementtype == ERROR) so it can skip emission for the
// offending statement without treating it as its own bug.
type Semantic struct {
	Loc     ast.Location
	Message string
}

func (e *Semantic) Error() string {
	return fmt.Sprintf("%s: %s", e.Loc, e.Message)
}

// WarningKind enumerates the non-fatal warnings §7 lists by name.
type WarningKind int

const (
	WarnUnreachableAfterTerminating WarningKind = iota
	WarnUnreachableAfterConstantTrue
	WarnBusyWaitRepeat
	WarnDeactivateDefaultsLegacy
)

var warningText = map[WarningKind]string{
	WarnUnreachableAfterTerminating:  "unreachable code after a terminating statement",
	WarnUnreachableAfterConstantTrue: "unreachable branch after an always-true condition",
	WarnBusyWaitRepeat:               "busy-wait: [else] { repeat } as first statement",
	WarnDeactivateDefaultsLegacy:     "deactivating defaults from within an altstep/function in the legacy runtime",
}

// Warning is a diagnostic that does not stop generation.
type Warning struct {
	Loc  ast.Location
	Kind WarningKind
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: warning: %s", w.Loc, warningText[w.Kind])
}

// Sink collects warnings emitted during one generation run, mirroring the
// teacher's pattern of accumulating diagnostics alongside output rather
// than printing them inline from deep in the recursion.
type Sink struct {
	Warnings []Warning
}

func (s *Sink) Warn(loc ast.Location, kind WarningKind) {
	s.Warnings = append(s.Warnings, Warning{Loc: loc, Kind: kind})
}

// Runtime-error names emitted as calls to TTCN_error/TTCN_EncDec_ErrorContext
// (§7's "Errors raised by generated code at runtime" list). Kept as
// constants rather than free-form strings so every call site in codegen
// shares one source of truth and a typo can't silently diverge from the
// contract.
const (
	RTUnboundOperand       = "unbound-operand"
	RTInvalidNumeric       = "invalid-numeric"
	RTNullReference        = "null-reference"
	RTOmittedTag           = "omitted-tag"
	RTNoBranchChosen       = "no-branch-chosen"
	RTTimerNegativeDuration = "timer-negative-duration"
	RTTestcaseStop         = "testcase.stop"
	RTCallOfUnboundFunc    = "call-of-unbound-function"
	RTDecodeBufferNonEmpty = "decode-buffer-nonempty"
	RTEncodeEnumUnbound    = "encode-enum-unbound"
	RTInvalidStateValue    = "invalid-state-value"
)
