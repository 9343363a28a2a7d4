// Package ast defines the checked abstract syntax tree that the code
// generator consumes. The tree is produced by a front end (lexer, parser,
// semantic checker) that lives outside this module's scope; by the time a
// node reaches the generator it is assumed to be semantically valid.
package ast

import "fmt"

// Location is a source position: a file name plus a begin/end line pair.
// Every Statement carries one so diagnostics and generated error strings
// can point back at the original program.
type Location struct {
	File      string
	BeginLine int
	EndLine   int
}

func (l Location) String() string {
	if l.BeginLine == l.EndLine {
		return fmt.Sprintf("%s:%d", l.File, l.BeginLine)
	}
	return fmt.Sprintf("%s:%d-%d", l.File, l.BeginLine, l.EndLine)
}

// StatementKind tags every concrete Statement with the kind the dispatcher
// in package codegen switches on. Kept as an explicit enum (rather than a
// type switch alone) so callers that only need the kind don't have to
// type-assert. The dispatcher does not check its switch against this list;
// a kind it has no case for reaches its default branch, which returns an
// errs.Fatal.
type StatementKind int

const (
	KindBlock StatementKind = iota
	KindIf
	KindSelectCase
	KindSelectUnion
	KindFor
	KindWhile
	KindDoWhile
	KindBreak
	KindContinue
	KindLabel
	KindGoto
	KindReturn
	KindStopExec
	KindStopTestcase
	KindStartProfiler
	KindStopProfiler

	KindAlt
	KindInterleave
	KindRepeat

	KindAssignment
	KindLocalDef

	KindInstanceCall
	KindInvokeOnDeref
	KindActivate
	KindDeactivate

	KindSend
	KindCall
	KindReply
	KindRaise

	KindReceive
	KindTrigger
	KindCheckReceive
	KindGetCall
	KindCheckGetCall
	KindGetReply
	KindCheckGetReply
	KindCatch
	KindCheckCatch
	KindCheck
	KindDone
	KindKilled
	KindTimeout

	KindConnect
	KindDisconnect
	KindMap
	KindUnmap

	KindStartComponent
	KindStopComponent
	KindKill
	KindStartPort
	KindStopPort
	KindClear
	KindHalt
	KindStartTimer
	KindStopTimer

	KindLog
	KindAction
	KindSetVerdict
	KindExecuteTestcase
	KindString2Value
	KindInt2Enum
	KindUpdate
	KindSetState
)

var kindNames = map[StatementKind]string{
	KindBlock: "block", KindIf: "if", KindSelectCase: "select-case", KindSelectUnion: "select-union",
	KindFor: "for", KindWhile: "while", KindDoWhile: "do-while", KindBreak: "break", KindContinue: "continue",
	KindLabel: "label", KindGoto: "goto", KindReturn: "return", KindStopExec: "stop-exec",
	KindStopTestcase: "stop-testcase", KindStartProfiler: "start-profiler", KindStopProfiler: "stop-profiler",
	KindAlt: "alt", KindInterleave: "interleave", KindRepeat: "repeat",
	KindAssignment: "assignment", KindLocalDef: "local-definition",
	KindInstanceCall: "instance-call", KindInvokeOnDeref: "invoke-on-deref", KindActivate: "activate", KindDeactivate: "deactivate",
	KindSend: "send", KindCall: "call", KindReply: "reply", KindRaise: "raise",
	KindReceive: "receive", KindTrigger: "trigger", KindCheckReceive: "check-receive",
	KindGetCall: "getcall", KindCheckGetCall: "check-getcall", KindGetReply: "getreply",
	KindCheckGetReply: "check-getreply", KindCatch: "catch", KindCheckCatch: "check-catch",
	KindCheck: "check", KindDone: "done", KindKilled: "killed", KindTimeout: "timeout",
	KindConnect: "connect", KindDisconnect: "disconnect", KindMap: "map", KindUnmap: "unmap",
	KindStartComponent: "start-component", KindStopComponent: "stop-component", KindKill: "kill",
	KindStartPort: "start-port", KindStopPort: "stop-port", KindClear: "clear", KindHalt: "halt",
	KindStartTimer: "start-timer", KindStopTimer: "stop-timer",
	KindLog: "log", KindAction: "action", KindSetVerdict: "setverdict", KindExecuteTestcase: "execute",
	KindString2Value: "string2value", KindInt2Enum: "int2enum", KindUpdate: "@update", KindSetState: "setstate",
}

func (k StatementKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown-statement-kind"
}

// Node is the base interface implemented by every AST node the generator
// walks, mirroring the front end's own Node/Statement split.
type Node interface {
	Pos() Location
}

// Statement is a tagged variant over the ~60 statement kinds of the
// language. Every concrete kind embeds Base, which supplies Kind and Pos;
// the dispatcher type-switches on the concrete type, not on Kind() alone.
// The Go compiler does not flag a missing case in that switch; an unhandled
// kind is reported at generation time as an errs.Fatal.
type Statement interface {
	Node
	Kind() StatementKind
	statementNode()
	// Block returns the StatementBlock that lexically owns this statement.
	Block() *StatementBlock
}

// Base is embedded by every concrete Statement. It carries the source
// location and the back-pointer to the enclosing block, replacing the
// front end's `my_sb` pointer convention: the generator reads it but (per
// the "ILT branches pointing into AST" design note) never mutates it.
type Base struct {
	Loc   Location
	Owner *StatementBlock
	kind  StatementKind
}

func (b *Base) Pos() Location            { return b.Loc }
func (b *Base) Kind() StatementKind      { return b.kind }
func (b *Base) Block() *StatementBlock   { return b.Owner }
func (b *Base) statementNode()           {}

// NewBase constructs a Base for a concrete statement of the given kind.
func NewBase(kind StatementKind, loc Location, owner *StatementBlock) Base {
	return Base{Loc: loc, Owner: owner, kind: kind}
}
