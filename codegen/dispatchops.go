package codegen

import (
	"fmt"
	"strings"

	"github.com/cwbudde/ttcn3gen/ast"
	"github.com/cwbudde/ttcn3gen/errs"
)

func renderArgs(c Context, args []ast.Value) (preamble, list string) {
	var pre, parts strings.Builder
	for i, a := range args {
		e := renderValue(c, a)
		pre.WriteString(e.Preamble.String())
		if i > 0 {
			parts.WriteString(", ")
		}
		parts.WriteString(e.Expr)
		pre.WriteString(e.Postamble.String())
	}
	return pre.String(), parts.String()
}

func emitInstanceCall(c Context, s *ast.InstanceCallStatement) error {
	pre, args := renderArgs(c, s.Args)
	c.Unit.Methods.WriteString(pre)
	fmt.Fprintf(&c.Unit.Methods, "%s(%s);\n", refName(s.Callee), args)
	return nil
}

func emitInvokeOnDeref(c Context, s *ast.InvokeOnDerefStatement) error {
	fr := renderValue(c, s.FuncRef)
	pre, args := renderArgs(c, s.Args)
	c.Unit.Methods.WriteString(fr.Preamble.String())
	c.Unit.Methods.WriteString(pre)
	fmt.Fprintf(&c.Unit.Methods, "%s.invoke(%s);\n", fr.Expr, args)
	c.Unit.Methods.WriteString(fr.Postamble.String())
	return nil
}

func emitActivate(c Context, s *ast.ActivateStatement) error {
	pre, args := renderArgs(c, s.Args)
	c.Unit.Methods.WriteString(pre)
	if s.Ref != nil {
		fr := renderValue(c, s.Ref)
		c.Unit.Methods.WriteString(fr.Preamble.String())
		fmt.Fprintf(&c.Unit.Methods, "%s.activate(%s);\n", fr.Expr, args)
		c.Unit.Methods.WriteString(fr.Postamble.String())
		return nil
	}
	fmt.Fprintf(&c.Unit.Methods, "%s_activate(%s);\n", refName(s.Altstep), args)
	return nil
}

func emitDeactivate(c Context, s *ast.DeactivateStatement) error {
	if s.Target == nil {
		if c.InAltstep && !c.Opts.UseRuntime2 {
			c.Diag.Warn(s.Loc, errs.WarnDeactivateDefaultsLegacy)
		}
		fmt.Fprintf(&c.Unit.Methods, "TTCN_Default::deactivate_all();\n")
		return nil
	}
	t := renderValue(c, s.Target)
	c.Unit.Methods.WriteString(t.Preamble.String())
	fmt.Fprintf(&c.Unit.Methods, "TTCN_Default::deactivate(%s);\n", t.Expr)
	c.Unit.Methods.WriteString(t.Postamble.String())
	return nil
}
