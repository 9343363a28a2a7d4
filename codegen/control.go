package codegen

import (
	"fmt"

	"github.com/cwbudde/ttcn3gen/ast"
	"github.com/cwbudde/ttcn3gen/errs"
	"github.com/cwbudde/ttcn3gen/runtimeabi"
)

func emitBlock(c Context, s *ast.BlockStatement) error {
	switch s.Body.Exception {
	case ast.ExceptionTry:
		fmt.Fprintf(&c.Unit.Methods, "try {\n")
		if c.Opts.DebuggerActive {
			fmt.Fprintf(&c.Unit.Methods, "%s debug_scope;\n", "TTCN3_Debug_Scope")
		}
		if err := EmitBlockStatements(c, s.Body); err != nil {
			return err
		}
		fmt.Fprintf(&c.Unit.Methods, "}\n")
		return nil
	case ast.ExceptionCatch:
		fmt.Fprintf(&c.Unit.Methods, "catch (const TC_Error& %s) {\n", s.Body.CatchVar)
		if err := EmitBlockStatements(c, s.Body); err != nil {
			return err
		}
		fmt.Fprintf(&c.Unit.Methods, "}\n")
		return nil
	default:
		fmt.Fprintf(&c.Unit.Methods, "{\n")
		if c.Opts.DebuggerActive {
			fmt.Fprintf(&c.Unit.Methods, "TTCN3_Debug_Scope debug_scope;\n")
		}
		if err := EmitBlockStatements(c, s.Body); err != nil {
			return err
		}
		fmt.Fprintf(&c.Unit.Methods, "}\n")
		return nil
	}
}

// emitIf linearises the clause cascade (§4.3 "if"): a compile-time-true
// guard makes the remaining clauses unreachable (flagged, non-fatal); a
// compile-time-false guard drops its clause entirely.
func emitIf(c Context, s *ast.IfStatement) error {
	wroteAny := false
	sawAlwaysTrue := false
	for i, clause := range s.Clauses {
		if sawAlwaysTrue {
			c.Diag.Warn(s.Loc, errs.WarnUnreachableAfterConstantTrue)
			break
		}
		folded, isConst := constBool(clause.Cond)
		if isConst && !folded {
			continue // compile-time false: drop this clause
		}
		if isConst && folded {
			if !wroteAny {
				// First and only reachable clause: its body runs
				// unconditionally, no exit test emitted (§8 property 3).
				if err := EmitBlockStatements(c, clause.Body); err != nil {
					return err
				}
				if i+1 < len(s.Clauses) {
					c.Diag.Warn(s.Loc, errs.WarnUnreachableAfterConstantTrue)
				}
				return nil
			}
			fmt.Fprintf(&c.Unit.Methods, "else {\n")
			if err := EmitBlockStatements(c, clause.Body); err != nil {
				return err
			}
			fmt.Fprintf(&c.Unit.Methods, "}\n")
			sawAlwaysTrue = true
			wroteAny = true
			continue
		}

		kw := "if"
		if wroteAny {
			kw = "else if"
		}
		expr := mustExpr(clause.Cond)
		c.Unit.Methods.WriteString(expr.Preamble.String())
		fmt.Fprintf(&c.Unit.Methods, "%s (%s) {\n", kw, expr.Expr)
		if err := EmitBlockStatements(c, clause.Body); err != nil {
			return err
		}
		fmt.Fprintf(&c.Unit.Methods, "}\n")
		c.Unit.Methods.WriteString(expr.Postamble.String())
		wroteAny = true
	}
	if s.Else != nil && !sawAlwaysTrue {
		if wroteAny {
			fmt.Fprintf(&c.Unit.Methods, "else {\n")
			if err := EmitBlockStatements(c, s.Else); err != nil {
				return err
			}
			fmt.Fprintf(&c.Unit.Methods, "}\n")
		} else {
			if err := EmitBlockStatements(c, s.Else); err != nil {
				return err
			}
		}
	}
	return nil
}

// emitSelectCase picks the switch form when the scrutinee is integer-typed
// and every case value is a compile-time constant; whether a value fits the
// target's native integer range is not checked. The cascade form is used
// otherwise (§4.3 "select-case").
func emitSelectCase(c Context, s *ast.SelectCaseStatement) error {
	if canUseSwitchForm(s) {
		return emitSelectCaseSwitch(c, s)
	}
	return emitSelectCaseCascade(c, s)
}

func canUseSwitchForm(s *ast.SelectCaseStatement) bool {
	if s.Scrutinee.Type() == nil || s.Scrutinee.Type().Name() != "integer" {
		return false
	}
	for _, cl := range s.Clauses {
		for _, v := range cl.Values {
			if !v.IsConstant() {
				return false
			}
		}
	}
	return true
}

func emitSelectCaseSwitch(c Context, s *ast.SelectCaseStatement) error {
	scrut := mustExpr(s.Scrutinee)
	c.Unit.Methods.WriteString(scrut.Preamble.String())
	fmt.Fprintf(&c.Unit.Methods, "switch (%s.get_long_long_val()) {\n", scrut.Expr)

	seen := map[string]bool{}
	for _, cl := range s.Clauses {
		for _, v := range cl.Values {
			lit := mustExpr(v).Expr
			if seen[lit] {
				continue // duplicate case values deduplicate (§4.3 "select-case")
			}
			seen[lit] = true
			fmt.Fprintf(&c.Unit.Methods, "case(%s):\n", lit)
		}
		if err := EmitBlockStatements(c, cl.Body); err != nil {
			return err
		}
		fmt.Fprintf(&c.Unit.Methods, "break;\n")
	}
	if s.Else != nil {
		fmt.Fprintf(&c.Unit.Methods, "default:\n")
		if err := EmitBlockStatements(c, s.Else); err != nil {
			return err
		}
	}
	fmt.Fprintf(&c.Unit.Methods, "}\n")
	c.Unit.Methods.WriteString(scrut.Postamble.String())
	return nil
}

func emitSelectCaseCascade(c Context, s *ast.SelectCaseStatement) error {
	tmp := c.Unit.FreshID("sel")
	scrut := mustExpr(s.Scrutinee)
	c.Unit.Methods.WriteString(scrut.Preamble.String())
	fmt.Fprintf(&c.Unit.Methods, "const auto& %s = %s;\n", tmp, scrut.Expr)
	c.Unit.Methods.WriteString(scrut.Postamble.String())

	wroteAny := false
	for _, cl := range s.Clauses {
		kw := "if"
		if wroteAny {
			kw = "else if"
		}
		var conds []string
		for _, v := range cl.Values {
			match := fmt.Sprintf("%s.match(%s)", mustExpr(v).Expr, tmp)
			if c.Opts.OmitInValueList {
				match = fmt.Sprintf("%s.match(%s, TRUE)", mustExpr(v).Expr, tmp)
			}
			conds = append(conds, match)
		}
		fmt.Fprintf(&c.Unit.Methods, "%s (%s) {\n", kw, joinOr(conds))
		if err := EmitBlockStatements(c, cl.Body); err != nil {
			return err
		}
		fmt.Fprintf(&c.Unit.Methods, "}\n")
		wroteAny = true
	}
	if s.Else != nil {
		fmt.Fprintf(&c.Unit.Methods, "else {\n")
		if err := EmitBlockStatements(c, s.Else); err != nil {
			return err
		}
		fmt.Fprintf(&c.Unit.Methods, "}\n")
	}
	return nil
}

// emitSelectUnion emits a switch on the tag selector (§4.3
// "select-union"); duplicate/missing alternatives are rejected by the
// checker, not here.
func emitSelectUnion(c Context, s *ast.SelectUnionStatement) error {
	scrut := mustExpr(s.Scrutinee)
	c.Unit.Methods.WriteString(scrut.Preamble.String())
	fmt.Fprintf(&c.Unit.Methods, "switch (%s.get_selection()) {\n", scrut.Expr)
	typeName := "U"
	if s.Scrutinee.Type() != nil {
		typeName = s.Scrutinee.Type().Name()
	}
	for _, cl := range s.Clauses {
		if cl.IsElse {
			fmt.Fprintf(&c.Unit.Methods, "default:\n")
		} else {
			fmt.Fprintf(&c.Unit.Methods, "case(%s::ALT_%s):\n", typeName, cl.Alternative)
		}
		if err := EmitBlockStatements(c, cl.Body); err != nil {
			return err
		}
		fmt.Fprintf(&c.Unit.Methods, "break;\n")
	}
	fmt.Fprintf(&c.Unit.Methods, "}\n")
	c.Unit.Methods.WriteString(scrut.Postamble.String())
	return nil
}

// emitFor/emitWhile/emitDoWhile constant-fold their condition (§4.3
// "for / while / do-while"). They emit only the plain form: a loop inside an
// interleave branch body also reaches them through Hooks.RenderBody, and
// codegen/ilt does not re-emit it with ILT labels of its own.
func emitFor(c Context, s *ast.ForStatement) error {
	begin, next, end := loopLabels(c.Unit, s.Labels)
	sub := c
	sub.EnclosingLoop = &s.Labels

	if folded, isConst := constBoolOrNil(s.Cond); isConst && !folded {
		fmt.Fprintf(&c.Unit.Methods, "/* for-loop with compile-time-false condition: unreachable */\n")
		return nil
	}

	if s.Init != nil {
		if err := EmitStatement(c, s.Init); err != nil {
			return err
		}
	}
	labelLine(c, begin)
	constTrue := s.Cond == nil
	cond := "TRUE"
	if s.Cond != nil {
		if folded, isConst := constBoolOrNil(s.Cond); isConst && folded {
			constTrue = true
		} else {
			cond = mustExpr(s.Cond).Expr
		}
	}
	if !constTrue {
		fmt.Fprintf(&c.Unit.Methods, "if (!(%s)) goto %s;\n", cond, end)
	}
	if err := EmitBlockStatements(sub, s.Body); err != nil {
		return err
	}
	labelLine(c, next)
	if s.Post != nil {
		if err := EmitStatement(c, s.Post); err != nil {
			return err
		}
	}
	fmt.Fprintf(&c.Unit.Methods, "goto %s;\n", begin)
	labelLine(c, end)
	return nil
}

func emitWhile(c Context, s *ast.WhileStatement) error {
	begin, next, end := loopLabels(c.Unit, s.Labels)
	sub := c
	sub.EnclosingLoop = &s.Labels

	if folded, isConst := constBool(s.Cond); isConst {
		if !folded {
			fmt.Fprintf(&c.Unit.Methods, "/* while (false): unreachable */\n")
			return nil
		}
		fmt.Fprintf(&c.Unit.Methods, "for (;;) {\n")
		if err := EmitBlockStatements(sub, s.Body); err != nil {
			return err
		}
		fmt.Fprintf(&c.Unit.Methods, "}\n")
		return nil
	}

	labelLine(c, begin)
	fmt.Fprintf(&c.Unit.Methods, "if (!(%s)) goto %s;\n", mustExpr(s.Cond).Expr, end)
	if err := EmitBlockStatements(sub, s.Body); err != nil {
		return err
	}
	labelLine(c, next)
	fmt.Fprintf(&c.Unit.Methods, "goto %s;\n", begin)
	labelLine(c, end)
	return nil
}

func emitDoWhile(c Context, s *ast.DoWhileStatement) error {
	begin, next, end := loopLabels(c.Unit, s.Labels)
	sub := c
	sub.EnclosingLoop = &s.Labels

	if folded, isConst := constBool(s.Cond); isConst && !folded {
		// do-while with compile-time-false: emit the body once.
		return EmitBlockStatements(sub, s.Body)
	}

	labelLine(c, begin)
	if err := EmitBlockStatements(sub, s.Body); err != nil {
		return err
	}
	labelLine(c, next)
	fmt.Fprintf(&c.Unit.Methods, "if (%s) goto %s;\n", mustExpr(s.Cond).Expr, begin)
	labelLine(c, end)
	return nil
}

func loopLabels(u interface{ FreshID(string) string }, l ast.LoopLabels) (begin, next, end string) {
	if l.HasLabels {
		return l.Begin, l.Next, l.End
	}
	return u.FreshID("loop_begin"), u.FreshID("loop_next"), u.FreshID("loop_end")
}

func labelLine(c Context, label string) {
	fmt.Fprintf(&c.Unit.Methods, "%s:\n", label)
}

// emitBreak resolves break to the innermost enclosing structure (§4.3
// "break / continue"): a generated end-label inside an alt/interleave, an
// altstep's ALT_BREAK return, or the target's native break.
func emitBreak(c Context, s *ast.BreakStatement) error {
	switch {
	case c.InAltstep:
		fmt.Fprintf(&c.Unit.Methods, "return %s;\n", runtimeabi.AltReturnBreak)
	case c.AltEndLabel != "":
		fmt.Fprintf(&c.Unit.Methods, "goto %s;\n", c.AltEndLabel)
	case c.EnclosingLoop != nil && c.EnclosingLoop.HasLabels:
		fmt.Fprintf(&c.Unit.Methods, "goto %s;\n", c.EnclosingLoop.End)
	default:
		fmt.Fprintf(&c.Unit.Methods, "break;\n")
	}
	return nil
}

func emitContinue(c Context, s *ast.ContinueStatement) error {
	if c.EnclosingLoop != nil && c.EnclosingLoop.HasLabels {
		fmt.Fprintf(&c.Unit.Methods, "goto %s;\n", c.EnclosingLoop.Next)
		return nil
	}
	fmt.Fprintf(&c.Unit.Methods, "continue;\n")
	return nil
}

func emitReturn(c Context, s *ast.ReturnStatement) error {
	if s.Value == nil {
		fmt.Fprintf(&c.Unit.Methods, "return;\n")
		return nil
	}
	expr := mustExpr(s.Value)
	c.Unit.Methods.WriteString(expr.Preamble.String())
	if c.Opts.DebuggerActive {
		tmp := c.Unit.FreshID("retval")
		fmt.Fprintf(&c.Unit.Methods, "DEBUGGER_STORE_RETURN_VALUE(%s, %s);\n", tmp, expr.Expr)
		fmt.Fprintf(&c.Unit.Methods, "return %s;\n", tmp)
	} else {
		fmt.Fprintf(&c.Unit.Methods, "return %s;\n", expr.Expr)
	}
	c.Unit.Methods.WriteString(expr.Postamble.String())
	return nil
}

func joinOr(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " || "
		}
		out += p
	}
	return out
}
