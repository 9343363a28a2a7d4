package ast

// StaticType is an opaque handle to a type the generator never inspects
// structurally; it only ever compares type identity (pointer/descriptor
// equality) or asks the type for a handful of yes/no facts.
type StaticType interface {
	// Name is the target-language type name to emit at a use site.
	Name() string

	// DescriptorAddr identifies this type for the decode-match /
	// redirect-target comparison of §4.3's "Redirect objects" and the
	// "Redirect decoding optimisation" testable property: two types
	// compare equal for that optimisation iff DescriptorAddr is equal.
	DescriptorAddr() uintptr

	// HasDoneExtension reports whether the runtime can return a value for
	// `X.done(match, redirect)` on this type (§8 property 7).
	HasDoneExtension() bool
}

// Value, Template and Reference are externally-owned AST nodes (§3): the
// generator treats them as opaque except for the handful of questions it
// is allowed to ask.
type Value interface {
	Node
	Type() StaticType
	IsConstant() bool
	// SingleExpr reports whether this value has a single-expression
	// target-language form; when false the generator must use the
	// preamble of the resulting Expression to build it up.
	SingleExpr() bool
	// ConstBool reports the folded boolean value of a compile-time
	// constant boolean expression, and whether Value actually is one; used
	// by guard constant-folding (§8 property 3).
	ConstBool() (value bool, ok bool)
	// Render produces this value's target-language form as a
	// (preamble, expr, postamble) triple, the raw material for a
	// sink.Expression (§3's Expression struct contract).
	Render(unit Unit) (preamble, expr, postamble string)
}

// Unit is the minimal fresh-identifier surface a Value/Template needs from
// the enclosing sink.CodeUnit while rendering itself, kept as a narrow
// interface here so package ast does not depend on package sink.
type Unit interface {
	FreshID(prefix string) string
}

type Template interface {
	Node
	Type() StaticType
	// IsDecodeMatch reports whether this template is a decode-match
	// template (a `decode(...)` sub-template), and if so the codec type it
	// decodes into and the string-encoding expression used to re-encode,
	// if statically known.
	IsDecodeMatch() (target StaticType, encoding string, ok bool)
	// Render produces this template's target-language literal form, the
	// same contract as Value.Render.
	Render(unit Unit) (preamble, expr, postamble string)
}

// Reference is an externally-owned reference to a declared variable,
// formal parameter, port, timer or component instance.
type Reference interface {
	Node
	Type() StaticType
	Name() string
}

// EnumElement is one defined element of an enumerated type.
type EnumElement struct {
	Name      string
	Numeric   int64
	TextAlias string // optional; empty means "no alias"
}

// EnumDef is the checked definition of an enumerated type, the input to
// the L1 enum emitter of §4.1.
type EnumDef struct {
	Name        string
	DisplayName string
	Elements    []EnumElement

	// UnknownValue and UnboundValue are two numeric values reserved by the
	// checker, guaranteed not to collide with any Elements entry.
	UnknownValue int64
	UnboundValue int64

	Codecs CodecSet
}

// FuncRefKind distinguishes the three function-reference type emitters of
// §4.2.
type FuncRefKind int

const (
	FuncRefFunction FuncRefKind = iota
	FuncRefAltstep
	FuncRefTestcase
)

// FuncRefDef is the checked definition of a function/altstep/testcase
// reference type, the input to the L1 function-reference emitter.
type FuncRefDef struct {
	Name       string
	Kind       FuncRefKind
	Params     string // formal-parameter list, already rendered as a textual fragment by the checker
	ReturnType StaticType
	RunsOn     StaticType // nil if the type has no runs-on restriction

	// Startable is false when the function is known to run on `self`,
	// which forbids `start(compref, args)` (§4.2).
	Startable bool
}

// CodecSet records which codecs are enabled for a type, driving which
// encode/decode entry points §4.1/§4.2 emit.
type CodecSet struct {
	BER, RAW, TEXT, XER, JSON bool
}
