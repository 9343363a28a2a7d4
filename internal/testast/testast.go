// Package testast implements minimal stand-ins for the externally-owned
// ast.Value, ast.Template, ast.Reference and ast.StaticType interfaces, for
// use by codegen package tests that need to drive the emitter without a
// real front end.
package testast

import "github.com/cwbudde/ttcn3gen/ast"

// Type is a fake ast.StaticType. Each call to NewType gets a distinct
// DescriptorAddr so decode-match comparisons in tests behave like distinct
// real types.
type Type struct {
	name string
	addr uintptr
	done bool
}

var typeCounter uintptr

func NewType(name string) *Type {
	typeCounter++
	return &Type{name: name, addr: typeCounter}
}

func NewTypeWithDone(name string, hasDone bool) *Type {
	t := NewType(name)
	t.done = hasDone
	return t
}

func (t *Type) Name() string           { return t.name }
func (t *Type) DescriptorAddr() uintptr { return t.addr }
func (t *Type) HasDoneExtension() bool  { return t.done }

// Val is a fake ast.Value.
type Val struct {
	loc      ast.Location
	typ      ast.StaticType
	constant bool
	single   bool
	boolVal  bool
	boolOK   bool
	pre      string
	expr     string
	post     string
}

func (v *Val) Pos() ast.Location { return v.loc }
func (v *Val) Type() ast.StaticType { return v.typ }
func (v *Val) IsConstant() bool { return v.constant }
func (v *Val) SingleExpr() bool { return v.single }
func (v *Val) ConstBool() (bool, bool) { return v.boolVal, v.boolOK }
func (v *Val) Render(ast.Unit) (string, string, string) { return v.pre, v.expr, v.post }

// Expr builds a Val that renders as a bare expression with no preamble.
func Expr(expr string) *Val {
	return &Val{single: true, expr: expr}
}

// ExprWithPreamble builds a Val whose rendering needs setup/teardown code.
func ExprWithPreamble(pre, expr, post string) *Val {
	return &Val{expr: expr, pre: pre, post: post}
}

// ConstBool builds a Val that folds to a compile-time constant boolean.
func ConstBool(value bool) *Val {
	expr := "false"
	if value {
		expr = "true"
	}
	return &Val{single: true, constant: true, boolVal: value, boolOK: true, expr: expr}
}

// Typed attaches a static type to v, for call sites that inspect Type().
func (v *Val) Typed(t ast.StaticType) *Val {
	v.typ = t
	return v
}

// Tmpl is a fake ast.Template.
type Tmpl struct {
	loc          ast.Location
	typ          ast.StaticType
	pre          string
	expr         string
	post         string
	decodeTarget ast.StaticType
	decodeEnc    string
	isDecode     bool
}

func (t *Tmpl) Pos() ast.Location { return t.loc }
func (t *Tmpl) Type() ast.StaticType { return t.typ }
func (t *Tmpl) Render(ast.Unit) (string, string, string) { return t.pre, t.expr, t.post }
func (t *Tmpl) IsDecodeMatch() (ast.StaticType, string, bool) {
	return t.decodeTarget, t.decodeEnc, t.isDecode
}

// TemplateExpr builds a plain (non-decode-match) Tmpl.
func TemplateExpr(expr string) *Tmpl {
	return &Tmpl{expr: expr}
}

// DecodeMatch builds a Tmpl representing `decode(...)` into target, encoded
// via the given string-encoding expression.
func DecodeMatch(target ast.StaticType, encoding string) *Tmpl {
	return &Tmpl{decodeTarget: target, decodeEnc: encoding, isDecode: true}
}

// Ref is a fake ast.Reference.
type Ref struct {
	loc  ast.Location
	typ  ast.StaticType
	name string
}

func (r *Ref) Pos() ast.Location { return r.loc }
func (r *Ref) Type() ast.StaticType { return r.typ }
func (r *Ref) Name() string { return r.name }

// NewRef builds a Ref with the given name.
func NewRef(name string) *Ref {
	return &Ref{name: name}
}

// NewTypedRef builds a Ref with a name and a static type.
func NewTypedRef(name string, t ast.StaticType) *Ref {
	return &Ref{name: name, typ: t}
}
