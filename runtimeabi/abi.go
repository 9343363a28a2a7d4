// Package runtimeabi names the fixed runtime entry points the generator
// calls into (spec §6). The generator emits these names verbatim; it does
// not implement them, and this module does not ship a runtime — these are
// symbols, not functions.
package runtimeabi

const (
	SnapshotTakeNew = "TTCN_Snapshot::take_new"

	TryAltsteps = "TTCN_Default::try_altsteps"

	StopExecution  = "TTCN_Runtime::stop_execution"
	StopComponent  = "TTCN_Runtime::stop_component"
	KillComponent  = "TTCN_Runtime::kill_component"
	ComponentDone  = "TTCN_Runtime::component_done"
	ComponentKilled = "TTCN_Runtime::component_killed"
	SetVerdict     = "TTCN_Runtime::setverdict"
	SetPortState   = "TTCN_Runtime::set_port_state"

	PortAllStart        = "PORT::all_start"
	PortAllStop         = "PORT::all_stop"
	PortAnyReceive      = "PORT::any_receive"
	PortAnyCheckReceive = "PORT::any_check_receive"
	PortAnyCall         = "PORT::any_call"
	PortAnyCheck        = "PORT::any_check"

	DebugScope       = "TTCN3_Debug_Scope"
	DebugStoreReturn = "DEBUGGER_STORE_RETURN_VALUE"

	TTCNError             = "TTCN_error"
	EncDecErrorContextError = "TTCN_EncDec_ErrorContext::error"

	// AltStatusType is the runtime's alt-status enum type name, used to
	// declare the flag arrays/variables the ILT and standalone-alt forms
	// generate (§4.4, §4.5).
	AltStatusType = "alt_status"

	// AltReturnYes/AltReturnBreak/AltReturnRepeat are an altstep body's
	// three terminating return values (§4.5: "An altstep body ... each
	// branch's YES path returns ALT_YES").
	AltReturnYes    = "ALT_YES"
	AltReturnBreak  = "ALT_BREAK"
	AltReturnRepeat = "ALT_REPEAT"
)

// AltStatus is the fixed five-value result of a guard operation (§5).
type AltStatus int

const (
	AltUnchecked AltStatus = iota
	AltYes
	AltNo
	AltMaybe
	AltRepeat
	AltBreak
)

func (s AltStatus) String() string {
	switch s {
	case AltUnchecked:
		return "ALT_UNCHECKED"
	case AltYes:
		return "ALT_YES"
	case AltNo:
		return "ALT_NO"
	case AltMaybe:
		return "ALT_MAYBE"
	case AltRepeat:
		return "ALT_REPEAT"
	case AltBreak:
		return "ALT_BREAK"
	default:
		return "ALT_UNCHECKED"
	}
}

// CanRepeat reports whether a receiving operation kind is allowed to
// return AltRepeat (§5: "only receive on non-trigger, timeout, check*
// never repeat; trigger, done, killed may").
func CanRepeat(kind string) bool {
	switch kind {
	case "trigger", "done", "killed":
		return true
	default:
		return false
	}
}
