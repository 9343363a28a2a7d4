package codegen

import (
	"strings"

	"github.com/cwbudde/ttcn3gen/ast"
	"github.com/cwbudde/ttcn3gen/codegen/ilt"
)

// isReceivingStmt reports whether stmt is one of the receiving-statement
// kinds the §4.3 matcher table covers, as opposed to a plain operation
// (altstep call, invoke) used as an alt/interleave guard.
func isReceivingStmt(stmt ast.Statement) bool {
	switch stmt.(type) {
	case *ast.ReceiveStatement, *ast.TriggerStatement, *ast.CheckReceiveStatement,
		*ast.GetCallStatement, *ast.CheckGetCallStatement, *ast.GetReplyStatement,
		*ast.CheckGetReplyStatement, *ast.CatchStatement, *ast.CheckCatchStatement,
		*ast.CheckStatement, *ast.DoneStatement, *ast.KilledStatement, *ast.TimeoutStatement:
		return true
	default:
		return false
	}
}

// captureBody temporarily redirects c.Unit.Methods into a fresh builder so
// a nested statement block can be rendered to a string in isolation (used
// by alt/interleave branch bodies, which the ilt package places either
// inline or behind a generated label rather than writing straight into
// the enclosing method).
func captureBody(c Context, block *ast.StatementBlock) (string, error) {
	saved := c.Unit.Methods
	c.Unit.Methods = strings.Builder{}
	err := EmitBlockStatements(c, block)
	out := c.Unit.Methods.String()
	c.Unit.Methods = saved
	return out, err
}

func hooksFor(c Context) ilt.Hooks {
	return ilt.Hooks{
		FreshID: c.Unit.FreshID,
		Guard: func(v ast.Value) (string, string) {
			if v == nil {
				return "", "TRUE"
			}
			e := renderValue(c, v)
			return e.Preamble.String(), e.Expr
		},
		ConstBool: constBool,
		Matcher: func(op ast.Statement) (string, bool) {
			return MatcherCall(c, op)
		},
		IsReceiving: isReceivingStmt,
		EmitOp: func(op ast.Statement) error {
			return EmitStatement(c, op)
		},
		RenderBody: func(block *ast.StatementBlock) (string, error) {
			return captureBody(c, block)
		},
		InAltstep: c.InAltstep,
	}
}

func emitAlt(c Context, s *ast.AltStatement) error {
	hasReceive := false
	for _, g := range s.Guards {
		if branchHasEmbeddedReceive(g.Body) {
			hasReceive = true
		}
	}
	if !hasReceive {
		out, err := ilt.EmitAlt(hooksFor(c), s)
		if err != nil {
			return err
		}
		c.Unit.Methods.WriteString(out)
		return nil
	}
	out, err := ilt.EmitInterleave(hooksFor(c), altAsInterleave(s))
	if err != nil {
		return err
	}
	c.Unit.Methods.WriteString(out)
	return nil
}

func emitInterleave(c Context, s *ast.InterleaveStatement) error {
	out, err := ilt.EmitInterleave(hooksFor(c), s)
	if err != nil {
		return err
	}
	c.Unit.Methods.WriteString(out)
	return nil
}

// branchHasEmbeddedReceive reports whether a branch body contains a
// receiving statement anywhere at top level, the condition that routes a
// plain alt to the ILT branch form instead of the standalone form
// (§4.3 "alt. ... When the alt has no embedded receiving statement ...
// otherwise the ILT branch form is used").
func branchHasEmbeddedReceive(block *ast.StatementBlock) bool {
	if block == nil {
		return false
	}
	for _, stmt := range block.Statements {
		if isReceivingStmt(stmt) {
			return true
		}
	}
	return false
}

// altAsInterleave adapts an AltStatement to the InterleaveStatement shape
// EmitInterleave expects; an alt with an embedded receiving statement
// needs the same state-vector machinery interleave always uses, just
// without interleave's "every branch runs exactly once" contract driving
// the state variables to anything other than a single pass.
func altAsInterleave(s *ast.AltStatement) *ast.InterleaveStatement {
	return &ast.InterleaveStatement{Base: s.Base, Guards: s.Guards}
}
