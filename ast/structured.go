package ast

// AltStatement is a non-deterministic choice between guarded branches
// (§3 "Structured"). When none of its AltGuards embed a receiving
// statement in their body, codegen emits the standalone-alt form of §4.5;
// otherwise it is routed to the ILT (§4.4).
type AltStatement struct {
	Base
	Guards []AltGuard
}

// InterleaveStatement always goes through the ILT (§4.4), regardless of
// whether its branches embed receiving statements, since interleave's
// "every branch runs exactly once" contract needs the state-vector
// machinery even for a branch with a single inline operation.
type InterleaveStatement struct {
	Base
	Guards []AltGuard
}

// RepeatStatement re-enters the nearest enclosing alt/interleave snapshot
// loop from inside a branch body.
type RepeatStatement struct{ Base }
