package ast

// ConnectStatement / DisconnectStatement wire or unwire two port instances.
type ConnectStatement struct {
	Base
	CompA, PortA Reference
	CompB, PortB Reference
}

type DisconnectStatement struct {
	Base
	CompA, PortA Reference
	CompB, PortB Reference
}

// MapStatement / UnmapStatement map or unmap a port to a system interface,
// optionally with mapping parameters.
type MapStatement struct {
	Base
	CompA, PortA Reference
	System, PortB Reference
	Params        []Value
}

type UnmapStatement struct {
	Base
	CompA, PortA  Reference
	System, PortB Reference
	Params        []Value
}
