package codegen

import (
	"fmt"

	"github.com/cwbudde/ttcn3gen/ast"
)

func emitLog(c Context, s *ast.LogStatement) error {
	pre, args := renderArgs(c, s.Args)
	c.Unit.Methods.WriteString(pre)
	fmt.Fprintf(&c.Unit.Methods, "TTCN_Logger::log_va_list(%s);\n", args)
	return nil
}

func emitAction(c Context, s *ast.ActionStatement) error {
	pre, args := renderArgs(c, s.Args)
	c.Unit.Methods.WriteString(pre)
	fmt.Fprintf(&c.Unit.Methods, "TTCN_Runtime::action_va_list(%s);\n", args)
	return nil
}

// emitSetVerdict implements "setverdict(v, reason)"; a compile-time
// constant verdict renders the runtime's bare enum literal, per the same
// constant-folding discipline guard conditions use (§8 property 3).
func emitSetVerdict(c Context, s *ast.SetVerdictStatement) error {
	v := renderValue(c, s.Value)
	c.Unit.Methods.WriteString(v.Preamble.String())
	if s.Reason == nil {
		fmt.Fprintf(&c.Unit.Methods, "TTCN_Runtime::setverdict(%s);\n", v.Expr)
		c.Unit.Methods.WriteString(v.Postamble.String())
		return nil
	}
	r := renderValue(c, s.Reason)
	c.Unit.Methods.WriteString(r.Preamble.String())
	fmt.Fprintf(&c.Unit.Methods, "TTCN_Runtime::setverdict(%s, %s);\n", v.Expr, r.Expr)
	c.Unit.Methods.WriteString(r.Postamble.String())
	c.Unit.Methods.WriteString(v.Postamble.String())
	return nil
}

// emitExecuteTestcase implements "execute(testcase(args) [, timeout])",
// which runs the named testcase to completion; the call is emitted as a
// statement, so the verdict it returns is discarded.
func emitExecuteTestcase(c Context, s *ast.ExecuteTestcaseStatement) error {
	pre, args := renderArgs(c, s.Args)
	c.Unit.Methods.WriteString(pre)
	if s.Timeout == nil {
		fmt.Fprintf(&c.Unit.Methods, "%s(%s);\n", refName(s.Testcase), args)
		return nil
	}
	t := renderValue(c, s.Timeout)
	c.Unit.Methods.WriteString(t.Preamble.String())
	fmt.Fprintf(&c.Unit.Methods, "%s(%s, %s);\n", refName(s.Testcase), args, t.Expr)
	c.Unit.Methods.WriteString(t.Postamble.String())
	return nil
}

func emitString2Value(c Context, s *ast.String2ValueStatement) error {
	src := renderValue(c, s.Source)
	c.Unit.Methods.WriteString(src.Preamble.String())
	fmt.Fprintf(&c.Unit.Methods, "str2val(%s, %s);\n", src.Expr, refName(s.Target))
	c.Unit.Methods.WriteString(src.Postamble.String())
	return nil
}

func emitInt2Enum(c Context, s *ast.Int2EnumStatement) error {
	src := renderValue(c, s.Source)
	c.Unit.Methods.WriteString(src.Preamble.String())
	fmt.Fprintf(&c.Unit.Methods, "%s.int2enum(%s);\n", refName(s.Target), src.Expr)
	c.Unit.Methods.WriteString(src.Postamble.String())
	return nil
}

// emitUpdate implements "@update", attaching or detaching an erroneous
// attribute descriptor on a previously-declared constant/template.
func emitUpdate(c Context, s *ast.UpdateStatement) error {
	d := s.Descriptor
	if !d.Attach {
		fmt.Fprintf(&c.Unit.Methods, "%s.remove_erroneous();\n", refName(d.Target))
		return nil
	}
	if d.Parametrised {
		fmt.Fprintf(&c.Unit.Methods, "%s.set_erroneous(&%s_erroneous_values);\n", refName(d.Target), refName(d.Target))
		return nil
	}
	init := renderValue(c, d.InitExpr)
	c.Unit.Methods.WriteString(init.Preamble.String())
	fmt.Fprintf(&c.Unit.Methods, "%s.set_erroneous(%s);\n", refName(d.Target), init.Expr)
	c.Unit.Methods.WriteString(init.Postamble.String())
	return nil
}

// emitSetState implements "port.setstate(state, template)"; State is
// rendered as given: it is not folded here and no 0..3 range check is
// emitted for it.
func emitSetState(c Context, s *ast.SetStateStatement) error {
	state := renderValue(c, s.State)
	c.Unit.Methods.WriteString(state.Preamble.String())
	if s.Template == nil {
		fmt.Fprintf(&c.Unit.Methods, "%s.setstate(%s);\n", refName(s.Port), state.Expr)
		c.Unit.Methods.WriteString(state.Postamble.String())
		return nil
	}
	tmpl := renderValue(c, s.Template)
	c.Unit.Methods.WriteString(tmpl.Preamble.String())
	fmt.Fprintf(&c.Unit.Methods, "%s.setstate(%s, %s);\n", refName(s.Port), state.Expr, tmpl.Expr)
	c.Unit.Methods.WriteString(tmpl.Postamble.String())
	c.Unit.Methods.WriteString(state.Postamble.String())
	return nil
}
