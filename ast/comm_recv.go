package ast

// ReceiveStatement is `port.receive(template) -> value redirect`.
type ReceiveStatement struct {
	Base
	ReceiveCommon
	Template Template // the matching template; nil means "any value"
}

// TriggerStatement is like ReceiveStatement but its matcher can repeat
// (§5 "Ordering guarantees": trigger may return REPEAT).
type TriggerStatement struct {
	Base
	ReceiveCommon
	Template Template
}

// CheckReceiveStatement peeks without consuming.
type CheckReceiveStatement struct {
	Base
	ReceiveCommon
	Template Template
}

// GetCallStatement matches an incoming procedure-call signature.
type GetCallStatement struct {
	Base
	ReceiveCommon
	Signature     Value
	ParamRedirect *ParamRedirect
}

type CheckGetCallStatement struct {
	Base
	ReceiveCommon
	Signature Value
}

// GetReplyStatement matches a reply to a call this component made,
// including the expected-return-value match.
type GetReplyStatement struct {
	Base
	ReceiveCommon
	Signature     Value
	ReturnMatch   Value // nil means ANY_VALUE
	ParamRedirect *ParamRedirect
}

type CheckGetReplyStatement struct {
	Base
	ReceiveCommon
	Signature Value
}

// CatchStatement matches a raised exception.
type CatchStatement struct {
	Base
	ReceiveCommon
	Signature Value
	Template  Template
}

type CheckCatchStatement struct {
	Base
	ReceiveCommon
	Signature Value
}

// CheckStatement is the bare `port.check` with no template.
type CheckStatement struct {
	Base
	ReceiveCommon
}

// DoneTarget distinguishes `compref.done`, `any component.done`, and
// `all component.done`.
type DoneTarget int

const (
	DoneComponent DoneTarget = iota
	DoneAny
	DoneAll
)

// DoneStatement is `compref.done(match, redirect)` or the any/all forms.
// The matched template's static type must have a "done extension"
// (§8 property 7). The checker is responsible for catching a violation;
// codegen does not consult HasDoneExtension and has no error-type fallback.
type DoneStatement struct {
	Base
	Target        DoneTarget
	Component     Reference // nil unless Target == DoneComponent
	Match         Value     // optional value-return match
	ValueRedirect *ValueRedirect
	IndexRedirect *IndexRedirect
}

type KilledTarget int

const (
	KilledComponent KilledTarget = iota
	KilledAny
	KilledAll
)

type KilledStatement struct {
	Base
	Target    KilledTarget
	Component Reference
	IndexRedirect *IndexRedirect
}

type TimeoutTarget int

const (
	TimeoutTimer TimeoutTarget = iota
	TimeoutAny
)

type TimeoutStatement struct {
	Base
	Target TimeoutTarget
	Timer  Reference
}
