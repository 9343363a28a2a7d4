package ilt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/ttcn3gen/ast"
	"github.com/cwbudde/ttcn3gen/runtimeabi"
)

// fakeHooks builds a Hooks value exercising the same shape a real
// codegen.hooksFor would, without needing package codegen: guards render as
// bare identifiers, bodies render as a single log line, and a receiving op
// renders as a fixed matcher call.
func fakeHooks(inAltstep bool) Hooks {
	counter := 0
	return Hooks{
		FreshID: func(prefix string) string {
			counter++
			return fmt.Sprintf("%s_%d", prefix, counter)
		},
		Guard: func(v ast.Value) (string, string) {
			if v == nil {
				return "", "TRUE"
			}
			return "", v.(interface{ Expr() string }).Expr()
		},
		ConstBool: func(v ast.Value) (bool, bool) {
			if cb, ok := v.(interface{ ConstBool() (bool, bool) }); ok {
				return cb.ConstBool()
			}
			return false, false
		},
		Matcher: func(op ast.Statement) (string, bool) {
			return "port.receive(&msg)", true
		},
		IsReceiving: func(op ast.Statement) bool {
			_, ok := op.(*fakeReceive)
			return ok
		},
		EmitOp: func(op ast.Statement) error {
			return nil
		},
		RenderBody: func(block *ast.StatementBlock) (string, error) {
			return "TTCN_Logger::log_va_list(\"branch body\");\n", nil
		},
		InAltstep: inAltstep,
	}
}

// fakeGuard is a minimal ast.Value fake local to this test file rather than
// taken from internal/testast: it only needs to carry a literal expression
// and an optional constant-bool fold.
type fakeGuard struct {
	expr       string
	constVal   bool
	constIsSet bool
}

func (g *fakeGuard) Pos() ast.Location { return ast.Location{} }
func (g *fakeGuard) Type() ast.StaticType { return nil }
func (g *fakeGuard) IsConstant() bool { return g.constIsSet }
func (g *fakeGuard) SingleExpr() bool { return true }
func (g *fakeGuard) ConstBool() (bool, bool) { return g.constVal, g.constIsSet }
func (g *fakeGuard) Render(ast.Unit) (string, string, string) { return "", g.expr, "" }
func (g *fakeGuard) Expr() string { return g.expr }

func namedGuard(expr string) ast.Value { return &fakeGuard{expr: expr} }
func constGuard(v bool) ast.Value      { return &fakeGuard{constVal: v, constIsSet: true} }

type fakeReceive struct{ ast.Base }

func plainBody() *ast.StatementBlock {
	return ast.NewStatementBlock(nil)
}

func TestEmitAltStandaloneNoReceive(t *testing.T) {
	h := fakeHooks(false)
	s := &ast.AltStatement{
		Base: ast.NewBase(ast.KindAlt, ast.Location{File: "f", BeginLine: 1, EndLine: 1}, nil),
		Guards: []ast.AltGuard{
			{Kind: ast.GuardInvoke, Guard: namedGuard("ready"), Op: &fakeReceive{}, Body: plainBody()},
			{Kind: ast.GuardElse, Body: plainBody()},
		},
	}
	out, err := EmitAlt(h, s)
	if err != nil {
		t.Fatalf("EmitAlt: %v", err)
	}
	snaps.MatchSnapshot(t, "standalone alt with else", out)
}

func TestEmitAltStandaloneInAltstepReturnsAltYes(t *testing.T) {
	h := fakeHooks(true)
	s := &ast.AltStatement{
		Base: ast.NewBase(ast.KindAlt, ast.Location{File: "f", BeginLine: 2, EndLine: 2}, nil),
		Guards: []ast.AltGuard{
			{Kind: ast.GuardInvoke, Op: &fakeReceive{}, Body: plainBody()},
		},
	}
	out, err := EmitAlt(h, s)
	if err != nil {
		t.Fatalf("EmitAlt: %v", err)
	}
	snaps.MatchSnapshot(t, "standalone alt inside altstep", out)
}

func TestEmitAltConstantFalseGuardSkipsBranch(t *testing.T) {
	h := fakeHooks(false)
	s := &ast.AltStatement{
		Base: ast.NewBase(ast.KindAlt, ast.Location{File: "f", BeginLine: 4, EndLine: 4}, nil),
		Guards: []ast.AltGuard{
			{Kind: ast.GuardInvoke, Guard: constGuard(false), Op: &fakeReceive{}, Body: plainBody()},
			{Kind: ast.GuardElse, Body: plainBody()},
		},
	}
	out, err := EmitAlt(h, s)
	if err != nil {
		t.Fatalf("EmitAlt: %v", err)
	}
	snaps.MatchSnapshot(t, "alt with constant-false guard", out)
}

func TestEmitInterleaveTwoBranches(t *testing.T) {
	h := fakeHooks(false)
	recv := &fakeReceive{}
	s := &ast.InterleaveStatement{
		Base: ast.NewBase(ast.KindInterleave, ast.Location{File: "f", BeginLine: 3, EndLine: 3}, nil),
		Guards: []ast.AltGuard{
			{Kind: ast.GuardOpGuard, Op: recv, Body: plainBody()},
			{Kind: ast.GuardOpGuard, Op: recv, Body: plainBody()},
		},
	}
	out, err := EmitInterleave(h, s)
	if err != nil {
		t.Fatalf("EmitInterleave: %v", err)
	}
	if opens, closes := strings.Count(out, "{"), strings.Count(out, "}"); opens != closes {
		t.Fatalf("unbalanced braces: %d opens, %d closes\n%s", opens, closes, out)
	}

	loopOpen := strings.Index(out, "for (;;) {")
	if loopOpen < 0 {
		t.Fatalf("expected a snapshot-driven for(;;) loop, got:\n%s", out)
	}
	takeNew := strings.Index(out, runtimeabi.SnapshotTakeNew+"(TRUE)")
	if takeNew < 0 {
		t.Fatalf("expected a blocking %s(TRUE) call, got:\n%s", runtimeabi.SnapshotTakeNew, out)
	}
	doneLabel := strings.Index(out, "\nil_done_")
	if doneLabel < 0 {
		t.Fatalf("expected a done label, got:\n%s", out)
	}
	if !(loopOpen < takeNew && takeNew < doneLabel) {
		t.Fatalf("expected the blocking take_new(TRUE) call to lie inside the for(;;) loop, "+
			"before the done label (loopOpen=%d, takeNew=%d, doneLabel=%d):\n%s",
			loopOpen, takeNew, doneLabel, out)
	}
	if !strings.Contains(out[loopOpen:doneLabel], runtimeabi.TryAltsteps) {
		t.Fatalf("expected the default-altstep probe %s to lie inside the for(;;) loop:\n%s",
			runtimeabi.TryAltsteps, out)
	}
	snaps.MatchSnapshot(t, "interleave two branches", out)
}
