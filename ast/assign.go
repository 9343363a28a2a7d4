package ast

// AssignmentStatement is `target := value`, possibly into a sub-selected
// field/index of target.
type AssignmentStatement struct {
	Base
	Target Reference
	Value  Value
}

// LocalDefStatement declares one or more local variables/constants/
// templates in the current scope.
type LocalDefStatement struct {
	Base
	Names []string
	Type  StaticType
	Init  Value // nil if uninitialised
}
