package codegen

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/ttcn3gen/ast"
	"github.com/cwbudde/ttcn3gen/errs"
	"github.com/cwbudde/ttcn3gen/genopts"
	"github.com/cwbudde/ttcn3gen/internal/testast"
	"github.com/cwbudde/ttcn3gen/sink"
)

func newContext() Context {
	return Context{
		Opts: genopts.Default(),
		Unit: sink.NewCodeUnit(),
		Diag: &errs.Sink{},
	}
}

func loc(line int) ast.Location {
	return ast.Location{File: "fixture.ttcn3", BeginLine: line, EndLine: line}
}

func TestEmitLog(t *testing.T) {
	c := newContext()
	stmt := &ast.LogStatement{
		Base: ast.NewBase(ast.KindLog, loc(1), nil),
		Args: []ast.Value{testast.Expr("x"), testast.Expr(`"literal"`)},
	}
	if err := EmitStatement(c, stmt); err != nil {
		t.Fatalf("EmitStatement: %v", err)
	}
	snaps.MatchSnapshot(t, "log statement", c.Unit.Methods.String())
}

func TestEmitSetVerdictWithReason(t *testing.T) {
	c := newContext()
	stmt := &ast.SetVerdictStatement{
		Base:   ast.NewBase(ast.KindSetVerdict, loc(2), nil),
		Value:  testast.Expr("PASS"),
		Reason: testast.Expr(`"all good"`),
	}
	if err := EmitStatement(c, stmt); err != nil {
		t.Fatalf("EmitStatement: %v", err)
	}
	snaps.MatchSnapshot(t, "setverdict with reason", c.Unit.Methods.String())
}

func TestEmitIfConstantTrueShortCircuits(t *testing.T) {
	c := newContext()
	block := ast.NewStatementBlock(nil)
	stmt := &ast.IfStatement{
		Base: ast.NewBase(ast.KindIf, loc(3), block),
		Clauses: []ast.IfClause{
			{Cond: testast.Expr("guard"), Body: logBlock("guarded")},
			{Cond: testast.ConstBool(true), Body: logBlock("reached")},
			{Cond: testast.Expr("never_evaluated"), Body: logBlock("unreachable")},
		},
	}
	if err := EmitStatement(c, stmt); err != nil {
		t.Fatalf("EmitStatement: %v", err)
	}
	snaps.MatchSnapshot(t, "if constant-true short-circuit", c.Unit.Methods.String())
	if len(c.Diag.Warnings) != 1 || c.Diag.Warnings[0].Kind != errs.WarnUnreachableAfterConstantTrue {
		t.Fatalf("expected one WarnUnreachableAfterConstantTrue, got %#v", c.Diag.Warnings)
	}
}

func TestEmitForInfinite(t *testing.T) {
	c := newContext()
	block := ast.NewStatementBlock(nil)
	stmt := &ast.ForStatement{
		Base: ast.NewBase(ast.KindFor, loc(4), block),
		Body: logBlock("body"),
	}
	if err := EmitStatement(c, stmt); err != nil {
		t.Fatalf("EmitStatement: %v", err)
	}
	snaps.MatchSnapshot(t, "for infinite loop", c.Unit.Methods.String())
}

func TestEmitAssignmentAndLocalDef(t *testing.T) {
	c := newContext()
	target := testast.NewRef("counter")
	assign := &ast.AssignmentStatement{
		Base:   ast.NewBase(ast.KindAssignment, loc(5), nil),
		Target: target,
		Value:  testast.Expr("counter + 1"),
	}
	def := &ast.LocalDefStatement{
		Base:  ast.NewBase(ast.KindLocalDef, loc(6), nil),
		Names: []string{"a", "b"},
		Type:  testast.NewType("INTEGER"),
		Init:  testast.Expr("0"),
	}
	if err := EmitStatement(c, def); err != nil {
		t.Fatalf("EmitStatement(def): %v", err)
	}
	if err := EmitStatement(c, assign); err != nil {
		t.Fatalf("EmitStatement(assign): %v", err)
	}
	snaps.MatchSnapshot(t, "local def then assignment", c.Unit.Methods.String())
}

func TestEmitBreakInsideAltstepReturnsAltBreak(t *testing.T) {
	c := newContext()
	c.InAltstep = true
	if err := EmitStatement(c, &ast.BreakStatement{Base: ast.NewBase(ast.KindBreak, loc(7), nil)}); err != nil {
		t.Fatalf("EmitStatement: %v", err)
	}
	snaps.MatchSnapshot(t, "break inside altstep", c.Unit.Methods.String())
}

func TestEmitDeactivateAllWarnsInAltstep(t *testing.T) {
	c := newContext()
	c.InAltstep = true
	stmt := &ast.DeactivateStatement{Base: ast.NewBase(ast.KindDeactivate, loc(8), nil)}
	if err := EmitStatement(c, stmt); err != nil {
		t.Fatalf("EmitStatement: %v", err)
	}
	snaps.MatchSnapshot(t, "deactivate all inside altstep", c.Unit.Methods.String())
	if len(c.Diag.Warnings) != 1 || c.Diag.Warnings[0].Kind != errs.WarnDeactivateDefaultsLegacy {
		t.Fatalf("expected one WarnDeactivateDefaultsLegacy, got %#v", c.Diag.Warnings)
	}
}

func logBlock(arg string) *ast.StatementBlock {
	block := ast.NewStatementBlock(nil)
	block.Append(&ast.LogStatement{
		Base: ast.NewBase(ast.KindLog, loc(0), block),
		Args: []ast.Value{testast.Expr(arg)},
	})
	return block
}
