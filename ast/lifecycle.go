package ast

// StartComponentStatement starts a component, either by a named component
// type/function or through a dereferenced function-reference value.
type StartComponentStatement struct {
	Base
	Component Reference
	FuncName  string // set when starting "by name"
	FuncRef   Value  // set instead of FuncName when starting "by deref"
	Args      []Value
}

type StopComponentStatement struct {
	Base
	Component Reference // nil means `stop` on self/all, per All
	All       bool
}

type KillStatement struct {
	Base
	Component Reference
	All       bool
}

type StartPortStatement struct {
	Base
	Port Reference
}

type StopPortStatement struct {
	Base
	Port Reference // nil means "all ports"
	All  bool
}

type ClearStatement struct {
	Base
	Port Reference // nil means "all ports"
	All  bool
}

type HaltStatement struct {
	Base
	Port Reference
}

type StartTimerStatement struct {
	Base
	Timer    Reference
	Duration Value // optional; nil reuses the timer's default duration
}

type StopTimerStatement struct {
	Base
	Timer Reference // nil means "all timers"
	All   bool
}
