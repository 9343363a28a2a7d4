package ast

// LogStatement / ActionStatement take a free-form list of loggable values.
type LogStatement struct {
	Base
	Args []Value
}

type ActionStatement struct {
	Base
	Args []Value
}

// Verdict is the fixed five-value TTCN-3 verdict lattice.
type Verdict int

const (
	VerdictNone Verdict = iota
	VerdictPass
	VerdictInconc
	VerdictFail
	VerdictError
)

// SetVerdictStatement is `setverdict(v, reason)`.
type SetVerdictStatement struct {
	Base
	Value  Value // evaluates to a Verdict; may be a compile-time constant
	Reason Value // optional
}

// ExecuteTestcaseStatement runs a testcase to completion and yields its
// verdict.
type ExecuteTestcaseStatement struct {
	Base
	Testcase Reference
	Args     []Value
	Timeout  Value // optional guard timer duration
}

// String2ValueStatement / Int2EnumStatement are the two built-in
// conversion statements (§4.3).
type String2ValueStatement struct {
	Base
	Source Value
	Target Reference
}

type Int2EnumStatement struct {
	Base
	Source Value
	Target Reference
}

// ErroneousDescriptor is one `@update` attachment/detachment of an
// erroneous-attribute descriptor (§3 "Redirect objects" sibling, §4.3
// "@update").
type ErroneousDescriptor struct {
	Target     Reference // the previously-declared constant/template
	Attach     bool      // false means detach
	Parametrised bool    // true => descriptor referred to via a process-wide pointer
	InitExpr   Value     // descriptor initialisation; may reference locals
}

type UpdateStatement struct {
	Base
	Descriptor ErroneousDescriptor
}

// SetStateStatement sets a port's state (§4.3 "setstate"). State is
// constant-folded when possible; it must then lie in 0..3.
type SetStateStatement struct {
	Base
	Port     Reference
	State    Value // integer 0..3
	Template Value // optional; logged if present
}
