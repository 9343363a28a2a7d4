package ast

// InstanceCallStatement is a statement-level call to a function/altstep
// whose result, if any, is discarded.
type InstanceCallStatement struct {
	Base
	Callee Reference
	Args   []Value
}

// InvokeOnDerefStatement calls through a function-reference value
// (`f.invoke(args)` at statement level, or invocation through a
// dereferenced altstep/testcase reference).
type InvokeOnDerefStatement struct {
	Base
	FuncRef Value
	Args    []Value
}

// ActivateStatement activates an altstep as a default, optionally through
// a function-reference value rather than a named altstep.
type ActivateStatement struct {
	Base
	Altstep Reference
	Ref     Value // set instead of Altstep for activate(f.invoke-style refs); nil otherwise
	Args    []Value
}

// DeactivateStatement deactivates one previously activated default, or (no
// Target) every default active in this scope.
type DeactivateStatement struct {
	Base
	Target Value // nil means "deactivate all"
}
