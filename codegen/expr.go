package codegen

import (
	"github.com/cwbudde/ttcn3gen/ast"
	"github.com/cwbudde/ttcn3gen/sink"
)

// renderValue renders v into a sink.Expression via its own Render method;
// by the time the generator runs the AST is assumed checked, so this
// can't itself fail. c.Unit supplies fresh identifiers to v if it needs
// any while rendering itself.
func renderValue(c Context, v ast.Value) *sink.Expression {
	e := &sink.Expression{}
	if v == nil {
		e.Expr = "ANY_VALUE"
		return e
	}
	pre, expr, post := v.Render(c.Unit)
	e.Preamble.WriteString(pre)
	e.Expr = expr
	e.Postamble.WriteString(post)
	return e
}

// mustExpr is renderValue without a Context, for the handful of call sites
// (constant-fold checks, switch-case literals) that render a value which
// is guaranteed not to need fresh identifiers of its own.
func mustExpr(v ast.Value) *sink.Expression {
	e := &sink.Expression{}
	if v == nil {
		e.Expr = "ANY_VALUE"
		return e
	}
	pre, expr, post := v.Render(nil)
	e.Preamble.WriteString(pre)
	e.Expr = expr
	e.Postamble.WriteString(post)
	return e
}

// constBool folds v at compile time; ok is false when v is not a
// compile-time-constant boolean.
func constBool(v ast.Value) (value, ok bool) {
	if v == nil {
		return false, false
	}
	return v.ConstBool()
}

// constBoolOrNil treats a nil condition (infinite loop) as "not constant",
// so callers fall through to emitting the loop body unconditionally.
func constBoolOrNil(v ast.Value) (value, ok bool) {
	if v == nil {
		return false, false
	}
	return v.ConstBool()
}
