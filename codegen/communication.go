package codegen

import (
	"fmt"

	"github.com/cwbudde/ttcn3gen/ast"
	"github.com/cwbudde/ttcn3gen/codegen/redirect"
	"github.com/cwbudde/ttcn3gen/runtimeabi"
)

// ---- Sending operations (§4.3 "Sending operations") ----

func portExprOrAny(c Context, r ast.Reference, anyHelper string) string {
	if r == nil {
		return anyHelper
	}
	return refName(r)
}

func emitSend(c Context, s *ast.SendStatement) error {
	msg := renderValue(c, s.Message)
	c.Unit.Methods.WriteString(msg.Preamble.String())
	port := portExprOrAny(c, s.Port, runtimeabi.PortAnyReceive) // any port.send has its own helper normally; kept symmetric with any-receive naming
	if s.To != nil {
		to := renderValue(c, s.To)
		c.Unit.Methods.WriteString(to.Preamble.String())
		fmt.Fprintf(&c.Unit.Methods, "%s.send(%s, %s);\n", port, msg.Expr, to.Expr)
		c.Unit.Methods.WriteString(to.Postamble.String())
	} else {
		fmt.Fprintf(&c.Unit.Methods, "%s.send(%s);\n", port, msg.Expr)
	}
	c.Unit.Methods.WriteString(msg.Postamble.String())
	return nil
}

// emitCall sequences port evaluation, message/signature construction, the
// optional `to` clause, and (when present) starts the call timer in a
// fresh inner scope that closes right after the call. The response/exception
// body follows as an ordinary statement block: it is not wrapped in an alt,
// and its getreply/catch operations keep their own port and signature
// (§4.3 "Sending operations").
func emitCall(c Context, s *ast.CallStatement) error {
	sig := renderValue(c, s.Signature)
	c.Unit.Methods.WriteString(sig.Preamble.String())
	port := portExprOrAny(c, s.Port, runtimeabi.PortAnyCall)

	toExpr := ""
	if s.To != nil {
		to := renderValue(c, s.To)
		c.Unit.Methods.WriteString(to.Preamble.String())
		toExpr = ", " + to.Expr
	}

	if s.Timer != nil {
		fmt.Fprintf(&c.Unit.Methods, "{\n%s.start();\n", refName(s.Timer))
	}
	fmt.Fprintf(&c.Unit.Methods, "%s.call(%s%s);\n", port, sig.Expr, toExpr)
	if s.Timer != nil {
		fmt.Fprintf(&c.Unit.Methods, "}\n")
	}
	c.Unit.Methods.WriteString(sig.Postamble.String())

	if s.Body != nil {
		// The body's statements are emitted as they stand; nothing here
		// checks that an embedded getreply/catch targets this port and
		// signature.
		if err := EmitBlockStatements(c, s.Body); err != nil {
			return err
		}
	}
	return nil
}

func emitReply(c Context, s *ast.ReplyStatement) error {
	sig := renderValue(c, s.Signature)
	c.Unit.Methods.WriteString(sig.Preamble.String())
	port := portExprOrAny(c, s.Port, runtimeabi.PortAnyCall)
	if s.To != nil {
		to := renderValue(c, s.To)
		fmt.Fprintf(&c.Unit.Methods, "%s.reply(%s, %s);\n", port, sig.Expr, to.Expr)
	} else {
		fmt.Fprintf(&c.Unit.Methods, "%s.reply(%s);\n", port, sig.Expr)
	}
	c.Unit.Methods.WriteString(sig.Postamble.String())
	return nil
}

func emitRaise(c Context, s *ast.RaiseStatement) error {
	sig := renderValue(c, s.Signature)
	exc := renderValue(c, s.Exception)
	c.Unit.Methods.WriteString(sig.Preamble.String())
	c.Unit.Methods.WriteString(exc.Preamble.String())
	port := portExprOrAny(c, s.Port, runtimeabi.PortAnyCall)
	if s.To != nil {
		to := renderValue(c, s.To)
		fmt.Fprintf(&c.Unit.Methods, "%s.raise(%s, %s, %s);\n", port, sig.Expr, exc.Expr, to.Expr)
	} else {
		fmt.Fprintf(&c.Unit.Methods, "%s.raise(%s, %s);\n", port, sig.Expr, exc.Expr)
	}
	c.Unit.Methods.WriteString(exc.Postamble.String())
	c.Unit.Methods.WriteString(sig.Postamble.String())
	return nil
}

// ---- Receiving operations (§4.3 "Receiving operations") ----

// MatcherCall builds the runtime matcher argument list for one receiving
// statement kind, per the table in §4.3.
func MatcherCall(c Context, stmt ast.Statement) (call string, canRepeat bool) {
	switch s := stmt.(type) {
	case *ast.ReceiveStatement:
		return fmt.Sprintf("%s.receive(%s, %s, %s, %s, %s)",
			portOrAny(s.Port), templateOrAny(c, s.Template), valueRedirectArg(c, s.ValueRedirect),
			fromArg(c, s.From, s.SenderRedirect), senderRedirectArg(c, s.SenderRedirect), indexRedirectArg(c, s.IndexRedirect)), false
	case *ast.TriggerStatement:
		return fmt.Sprintf("%s.trigger(%s, %s, %s, %s, %s)",
			portOrAny(s.Port), templateOrAny(c, s.Template), valueRedirectArg(c, s.ValueRedirect),
			fromArg(c, s.From, s.SenderRedirect), senderRedirectArg(c, s.SenderRedirect), indexRedirectArg(c, s.IndexRedirect)), true
	case *ast.CheckReceiveStatement:
		return fmt.Sprintf("%s.check_receive(%s, %s, %s, %s, %s)",
			portOrAny(s.Port), templateOrAny(c, s.Template), valueRedirectArg(c, s.ValueRedirect),
			fromArg(c, s.From, s.SenderRedirect), senderRedirectArg(c, s.SenderRedirect), indexRedirectArg(c, s.IndexRedirect)), false
	case *ast.GetCallStatement:
		sigName := signatureTypeName(s.Signature)
		return fmt.Sprintf("%s.getcall(%s, %s, %s_call_redirect(%s), %s, %s)",
			portOrAny(s.Port), signatureExprOrAny(c, s.Signature), fromArg(c, s.From, s.SenderRedirect),
			sigName, redirect.RenderParamRedirect(s.ParamRedirect), senderRedirectArg(c, s.SenderRedirect),
			indexRedirectArg(c, s.IndexRedirect)), false
	case *ast.CheckGetCallStatement:
		return fmt.Sprintf("%s.check_getcall(%s, %s, %s)",
			portOrAny(s.Port), fromArg(c, s.From, s.SenderRedirect), senderRedirectArg(c, s.SenderRedirect),
			indexRedirectArg(c, s.IndexRedirect)), false
	case *ast.GetReplyStatement:
		sigName := signatureTypeName(s.Signature)
		retMatch := "ANY_VALUE"
		if s.ReturnMatch != nil {
			retMatch = mustExpr(s.ReturnMatch).Expr
		}
		return fmt.Sprintf("%s.getreply(%s.set_value_template(%s), %s, %s_reply_redirect(%s), %s, %s)",
			portOrAny(s.Port), signatureExprOrAny(c, s.Signature), retMatch, fromArg(c, s.From, s.SenderRedirect),
			sigName, redirect.RenderParamRedirect(s.ParamRedirect), senderRedirectArg(c, s.SenderRedirect),
			indexRedirectArg(c, s.IndexRedirect)), false
	case *ast.CheckGetReplyStatement:
		return fmt.Sprintf("%s.check_getreply(%s, %s, %s)",
			portOrAny(s.Port), fromArg(c, s.From, s.SenderRedirect), senderRedirectArg(c, s.SenderRedirect),
			indexRedirectArg(c, s.IndexRedirect)), false
	case *ast.CatchStatement:
		sigName := signatureTypeName(s.Signature)
		return fmt.Sprintf("%s.get_exception(%s_exception_template(%s, %s), %s, %s, %s)",
			portOrAny(s.Port), sigName, templateOrAny(c, s.Template), valueRedirectArg(c, s.ValueRedirect),
			fromArg(c, s.From, s.SenderRedirect), senderRedirectArg(c, s.SenderRedirect),
			indexRedirectArg(c, s.IndexRedirect)), false
	case *ast.CheckCatchStatement:
		return fmt.Sprintf("%s.check_catch(%s, %s, %s)",
			portOrAny(s.Port), fromArg(c, s.From, s.SenderRedirect), senderRedirectArg(c, s.SenderRedirect),
			indexRedirectArg(c, s.IndexRedirect)), false
	case *ast.CheckStatement:
		return fmt.Sprintf("%s.check(%s, %s, %s)",
			portOrAny(s.Port), fromArg(c, s.From, s.SenderRedirect), senderRedirectArg(c, s.SenderRedirect),
			indexRedirectArg(c, s.IndexRedirect)), false
	case *ast.DoneStatement:
		return doneMatcher(c, s), runtimeabi.CanRepeat("done")
	case *ast.KilledStatement:
		return killedMatcher(s), runtimeabi.CanRepeat("killed")
	case *ast.TimeoutStatement:
		return timeoutMatcher(s), false
	default:
		return "/* unsupported matcher */", false
	}
}

func portOrAny(p ast.Reference) string {
	if p == nil {
		return "any_port"
	}
	return p.Name()
}

func templateOrAny(c Context, t ast.Template) string {
	if t == nil {
		return "ANY_VALUE"
	}
	pre, expr, post := t.Render(c.Unit)
	_ = pre
	_ = post
	return expr
}

func signatureExprOrAny(c Context, v ast.Value) string {
	if v == nil {
		return "ANY_VALUE"
	}
	return mustExpr(v).Expr
}

func signatureTypeName(v ast.Value) string {
	if v == nil || v.Type() == nil {
		return "Signature"
	}
	return v.Type().Name()
}

// fromArg/senderRedirectArg implement §4.3's "From clause and sender
// redirect" rule: an omitted from-template with a sender-redirect whose
// target has an SUT-address type uses `any value template of address
// type`; otherwise `any component reference`.
func fromArg(c Context, from ast.Template, sender *ast.ValueRedirectEntry) string {
	if from != nil {
		return mustTemplateExpr(from)
	}
	if sender != nil && isAddressType(sender.Variable) {
		return "any_value<address>"
	}
	return "any_compref"
}

func isAddressType(r ast.Reference) bool {
	return r != nil && r.Type() != nil && r.Type().Name() == "address"
}

func mustTemplateExpr(t ast.Template) string {
	// Templates share the Node contract; generation of their literal form
	// is delegated to the same Render-style mechanism as Value, through
	// the type name as a stand-in identifier supplied by the checked AST.
	if t == nil {
		return "ANY_VALUE"
	}
	if t.Type() != nil {
		return t.Type().Name() + "_template"
	}
	return "ANY_VALUE"
}

func valueRedirectArg(c Context, vr *ast.ValueRedirect) string {
	return redirect.RenderValueRedirect(c.Unit, vr, c.Opts.UseRuntime2)
}

func senderRedirectArg(c Context, e *ast.ValueRedirectEntry) string {
	if e == nil {
		return "NULL"
	}
	return "&(" + e.Variable.Name() + ")"
}

func indexRedirectArg(c Context, ir *ast.IndexRedirect) string {
	return redirect.RenderIndexRedirect(c.Unit, ir)
}

func doneMatcher(c Context, s *ast.DoneStatement) string {
	vr := valueRedirectArg(c, s.ValueRedirect)
	ir := indexRedirectArg(c, s.IndexRedirect)
	match := "ANY_VALUE"
	if s.Match != nil {
		match = mustExpr(s.Match).Expr
	}
	switch s.Target {
	case ast.DoneAny:
		return fmt.Sprintf("any_component.done(%s, %s, %s)", match, vr, ir)
	case ast.DoneAll:
		return fmt.Sprintf("all_component.done(%s, %s, %s)", match, vr, ir)
	default:
		if s.Match == nil && s.ValueRedirect == nil {
			return fmt.Sprintf("%s.done(%s)", refName(s.Component), ir)
		}
		return fmt.Sprintf("%s.done(%s, %s, %s, %s)", refName(s.Component), "done", match, vr, ir)
	}
}

func killedMatcher(s *ast.KilledStatement) string {
	switch s.Target {
	case ast.KilledAny:
		return "any_component.killed()"
	case ast.KilledAll:
		return "all_component.killed()"
	default:
		return fmt.Sprintf("%s.killed()", refName(s.Component))
	}
}

func timeoutMatcher(s *ast.TimeoutStatement) string {
	if s.Target == ast.TimeoutAny {
		return "any_timer.timeout()"
	}
	return fmt.Sprintf("%s.timeout()", refName(s.Timer))
}

// emitStandaloneReceive emits the standalone receive loop of §4.3 for a
// receiving statement appearing at statement scope (i.e. not as one
// branch of an alt/interleave, which package ilt handles instead). Every
// such loop shares the exact shape required by §8 property 6: exactly one
// non-blocking take_new before the loop and exactly one blocking take_new
// at the end of each iteration.
func emitStandaloneReceive(c Context, stmt ast.Statement) error {
	matcher, canRepeat := MatcherCall(c, stmt)
	label := c.Unit.FreshID("recv")
	m := &c.Unit.Methods

	fmt.Fprintf(m, "{\n%s:\n", label)
	fmt.Fprintf(m, "alt_status alt_flag = %s, default_flag = %s;\n",
		runtimeabi.AltUnchecked, runtimeabi.AltUnchecked)
	fmt.Fprintf(m, "%s(FALSE);\n", runtimeabi.SnapshotTakeNew)
	fmt.Fprintf(m, "for (;;) {\n")
	fmt.Fprintf(m, "if (alt_flag != %s) {\n", runtimeabi.AltNo)
	fmt.Fprintf(m, "alt_flag = %s;\n", matcher)
	fmt.Fprintf(m, "if (alt_flag == %s) break;\n", runtimeabi.AltYes)
	if canRepeat {
		fmt.Fprintf(m, "if (alt_flag == %s) goto %s;\n", runtimeabi.AltRepeat, label)
	}
	fmt.Fprintf(m, "}\n")
	fmt.Fprintf(m, "if (default_flag != %s) {\n", runtimeabi.AltNo)
	fmt.Fprintf(m, "default_flag = %s();\n", runtimeabi.TryAltsteps)
	fmt.Fprintf(m, "if (default_flag == %s || default_flag == %s) break;\n", runtimeabi.AltYes, runtimeabi.AltBreak)
	fmt.Fprintf(m, "if (default_flag == %s) goto %s;\n", runtimeabi.AltRepeat, label)
	fmt.Fprintf(m, "}\n")
	fmt.Fprintf(m, "if (alt_flag == %s && default_flag == %s)\n", runtimeabi.AltNo, runtimeabi.AltNo)
	fmt.Fprintf(m, "%s(\"none of the branches can be chosen %s\");\n",
		runtimeabi.TTCNError, stmt.Pos())
	fmt.Fprintf(m, "%s(TRUE);\n", runtimeabi.SnapshotTakeNew)
	fmt.Fprintf(m, "}\n}\n")
	return nil
}
