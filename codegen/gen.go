// Package codegen implements the statement emitter of spec §4.3: a single
// dispatcher keyed by statement kind that writes target-language source
// text into a sink.CodeUnit, recursing into nested blocks/expressions and
// handing off to package ilt whenever it meets an interleave or an alt
// with an embedded receiving statement.
package codegen

import (
	"fmt"

	"github.com/cwbudde/ttcn3gen/ast"
	"github.com/cwbudde/ttcn3gen/errs"
	"github.com/cwbudde/ttcn3gen/genopts"
	"github.com/cwbudde/ttcn3gen/runtimeabi"
	"github.com/cwbudde/ttcn3gen/sink"
)

// Context is the value threaded down through the recursive emitter in
// place of the source's stored my_sb/my_def back-pointers (design note
// "Mutually recursive AST ↔ generator"): the current scope, the enclosing
// loop's generated labels (if any), and whether we are inside an altstep
// body (which changes how break/return lower).
type Context struct {
	Opts genopts.Options
	Unit *sink.CodeUnit
	Diag *errs.Sink

	Scope *ast.StatementBlock

	// EnclosingLoop is the nearest enclosing for/while/do-while's labels,
	// used to resolve break/continue; nil outside any loop.
	EnclosingLoop *ast.LoopLabels

	// InAltstep is true while emitting the body of an altstep definition,
	// which changes break/return lowering (§4.3 "break / continue").
	InAltstep bool

	// AltEndLabel, when non-empty, names the end label of the alt/interleave
	// branch body being emitted, so a `break` inside it can `goto` there. No
	// emitter in this module sets it (hooksFor leaves it empty).
	AltEndLabel string
}

// Sub returns a copy of c with Scope replaced, for descending into a
// nested StatementBlock without mutating the caller's Context.
func (c Context) Sub(scope *ast.StatementBlock) Context {
	c.Scope = scope
	return c
}

// EmitStatement is the single dispatcher of §4.3: preconditions assume a
// semantically valid AST; postconditions are that well-formed target code
// has been written into c.Unit.Methods (the sink every statement-level
// emission target uses) unless the statement is itself a declaration with
// no bytecode-equivalent (handled case by case below).
func EmitStatement(c Context, stmt ast.Statement) error {
	if stmt == nil {
		return nil
	}
	switch s := stmt.(type) {
	case *ast.BlockStatement:
		return emitBlock(c, s)
	case *ast.IfStatement:
		return emitIf(c, s)
	case *ast.SelectCaseStatement:
		return emitSelectCase(c, s)
	case *ast.SelectUnionStatement:
		return emitSelectUnion(c, s)
	case *ast.ForStatement:
		return emitFor(c, s)
	case *ast.WhileStatement:
		return emitWhile(c, s)
	case *ast.DoWhileStatement:
		return emitDoWhile(c, s)
	case *ast.BreakStatement:
		return emitBreak(c, s)
	case *ast.ContinueStatement:
		return emitContinue(c, s)
	case *ast.LabelStatement:
		fmt.Fprintf(&c.Unit.Methods, "%s:\n", s.Name)
		return nil
	case *ast.GotoStatement:
		fmt.Fprintf(&c.Unit.Methods, "goto %s;\n", s.Target)
		return nil
	case *ast.ReturnStatement:
		return emitReturn(c, s)
	case *ast.StopExecStatement:
		fmt.Fprintf(&c.Unit.Methods, "%s();\n", runtimeabi.StopExecution)
		return nil
	case *ast.StopTestcaseStatement:
		fmt.Fprintf(&c.Unit.Methods, "%s(%s);\n", runtimeabi.TTCNError, quoted(errs.RTTestcaseStop))
		return nil
	case *ast.StartProfilerStatement:
		fmt.Fprintf(&c.Unit.Methods, "TTCN_Profiler::start();\n")
		return nil
	case *ast.StopProfilerStatement:
		fmt.Fprintf(&c.Unit.Methods, "TTCN_Profiler::stop();\n")
		return nil

	case *ast.AltStatement:
		return emitAlt(c, s)
	case *ast.InterleaveStatement:
		return emitInterleave(c, s)
	case *ast.RepeatStatement:
		fmt.Fprintf(&c.Unit.Methods, "goto %s;\n", currentSnapshotLabel(c))
		return nil

	case *ast.AssignmentStatement:
		return emitAssignment(c, s)
	case *ast.LocalDefStatement:
		return emitLocalDef(c, s)

	case *ast.InstanceCallStatement:
		return emitInstanceCall(c, s)
	case *ast.InvokeOnDerefStatement:
		return emitInvokeOnDeref(c, s)
	case *ast.ActivateStatement:
		return emitActivate(c, s)
	case *ast.DeactivateStatement:
		return emitDeactivate(c, s)

	case *ast.SendStatement:
		return emitSend(c, s)
	case *ast.CallStatement:
		return emitCall(c, s)
	case *ast.ReplyStatement:
		return emitReply(c, s)
	case *ast.RaiseStatement:
		return emitRaise(c, s)

	case *ast.ReceiveStatement, *ast.TriggerStatement, *ast.CheckReceiveStatement,
		*ast.GetCallStatement, *ast.CheckGetCallStatement, *ast.GetReplyStatement,
		*ast.CheckGetReplyStatement, *ast.CatchStatement, *ast.CheckCatchStatement,
		*ast.CheckStatement, *ast.DoneStatement, *ast.KilledStatement, *ast.TimeoutStatement:
		return emitStandaloneReceive(c, stmt)

	case *ast.ConnectStatement:
		return emitConnect(c, s)
	case *ast.DisconnectStatement:
		return emitDisconnect(c, s)
	case *ast.MapStatement:
		return emitMap(c, s)
	case *ast.UnmapStatement:
		return emitUnmap(c, s)

	case *ast.StartComponentStatement:
		return emitStartComponent(c, s)
	case *ast.StopComponentStatement:
		return emitStopComponent(c, s)
	case *ast.KillStatement:
		return emitKill(c, s)
	case *ast.StartPortStatement:
		fmt.Fprintf(&c.Unit.Methods, "%s.start();\n", refName(s.Port))
		return nil
	case *ast.StopPortStatement:
		return emitStopPort(c, s)
	case *ast.ClearStatement:
		return emitClear(c, s)
	case *ast.HaltStatement:
		fmt.Fprintf(&c.Unit.Methods, "%s.halt();\n", refName(s.Port))
		return nil
	case *ast.StartTimerStatement:
		return emitStartTimer(c, s)
	case *ast.StopTimerStatement:
		return emitStopTimer(c, s)

	case *ast.LogStatement:
		return emitLog(c, s)
	case *ast.ActionStatement:
		return emitAction(c, s)
	case *ast.SetVerdictStatement:
		return emitSetVerdict(c, s)
	case *ast.ExecuteTestcaseStatement:
		return emitExecuteTestcase(c, s)
	case *ast.String2ValueStatement:
		return emitString2Value(c, s)
	case *ast.Int2EnumStatement:
		return emitInt2Enum(c, s)
	case *ast.UpdateStatement:
		return emitUpdate(c, s)
	case *ast.SetStateStatement:
		return emitSetState(c, s)

	default:
		return errs.NewFatal(stmt.Pos(), "unhandled statement kind %T (statementtype = ERROR should have been filtered upstream)", stmt)
	}
}

// EmitBlockStatements emits every statement of block in source order,
// stopping at the first error.
func EmitBlockStatements(c Context, block *ast.StatementBlock) error {
	if block == nil {
		return nil
	}
	sub := c.Sub(block)
	for _, stmt := range block.Statements {
		if err := EmitStatement(sub, stmt); err != nil {
			return err
		}
	}
	return nil
}

func quoted(s string) string { return sink.Quote(s) }

func refName(r ast.Reference) string {
	if r == nil {
		return "<self>"
	}
	return r.Name()
}

// currentSnapshotLabel is a placeholder hook resolved properly once inside
// an alt/interleave/standalone-receive-loop emission; outside of one, a
// bare `repeat` is a checker-level error the generator asserts against.
func currentSnapshotLabel(c Context) string {
	if c.AltEndLabel != "" {
		return c.AltEndLabel
	}
	return "label"
}
