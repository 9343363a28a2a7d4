package codegen

import (
	"fmt"

	"github.com/cwbudde/ttcn3gen/ast"
)

// emitConnect/emitDisconnect implement the two port-topology statements of
// §4.3 "connect / disconnect": both sides name a component and a port, and
// lower to a single runtime call taking all four.
func emitConnect(c Context, s *ast.ConnectStatement) error {
	fmt.Fprintf(&c.Unit.Methods, "TTCN_Runtime::connect_port(%s, %s, %s, %s);\n",
		refName(s.CompA), quoted2(s.PortA), refName(s.CompB), quoted2(s.PortB))
	return nil
}

func emitDisconnect(c Context, s *ast.DisconnectStatement) error {
	fmt.Fprintf(&c.Unit.Methods, "TTCN_Runtime::disconnect_port(%s, %s, %s, %s);\n",
		refName(s.CompA), quoted2(s.PortA), refName(s.CompB), quoted2(s.PortB))
	return nil
}

// emitMap/emitUnmap implement "map / unmap"; an optional mapping-parameter
// list renders as a trailing argument list, absent when Params is empty.
func emitMap(c Context, s *ast.MapStatement) error {
	pre, args := renderArgs(c, s.Params)
	c.Unit.Methods.WriteString(pre)
	fmt.Fprintf(&c.Unit.Methods, "TTCN_Runtime::map_port(%s, %s, %s, %s%s);\n",
		refName(s.CompA), quoted2(s.PortA), refName(s.System), quoted2(s.PortB), trailingArgs(args))
	return nil
}

func emitUnmap(c Context, s *ast.UnmapStatement) error {
	pre, args := renderArgs(c, s.Params)
	c.Unit.Methods.WriteString(pre)
	fmt.Fprintf(&c.Unit.Methods, "TTCN_Runtime::unmap_port(%s, %s, %s, %s%s);\n",
		refName(s.CompA), quoted2(s.PortA), refName(s.System), quoted2(s.PortB), trailingArgs(args))
	return nil
}

func trailingArgs(args string) string {
	if args == "" {
		return ""
	}
	return ", " + args
}

// quoted2 renders a port reference's name as a string-literal argument;
// port identity crosses the runtime boundary by name, not by reference.
func quoted2(r ast.Reference) string {
	return quoted(refName(r))
}

// emitStartComponent implements "component_ref.start(...)" in both its
// by-name and by-deref forms (§4.2 "function reference ... start
// restrictions" governs which FuncRefDef.Startable values reach here; the
// checker is responsible for rejecting a `start` on a self-bound
// function before codegen runs).
func emitStartComponent(c Context, s *ast.StartComponentStatement) error {
	pre, args := renderArgs(c, s.Args)
	c.Unit.Methods.WriteString(pre)
	if s.FuncRef != nil {
		fr := renderValue(c, s.FuncRef)
		c.Unit.Methods.WriteString(fr.Preamble.String())
		fmt.Fprintf(&c.Unit.Methods, "%s.start(%s);\n", refName(s.Component), mergeArgs(fr.Expr, args))
		c.Unit.Methods.WriteString(fr.Postamble.String())
		return nil
	}
	fmt.Fprintf(&c.Unit.Methods, "%s.start(%s(%s));\n", refName(s.Component), s.FuncName, args)
	return nil
}

func mergeArgs(first, rest string) string {
	if rest == "" {
		return first
	}
	return first + ", " + rest
}

func emitStopComponent(c Context, s *ast.StopComponentStatement) error {
	if s.All {
		fmt.Fprintf(&c.Unit.Methods, "TTCN_Runtime::stop_all_component();\n")
		return nil
	}
	if s.Component == nil {
		fmt.Fprintf(&c.Unit.Methods, "TTCN_Runtime::stop_component(SELF_COMPREF);\n")
		return nil
	}
	fmt.Fprintf(&c.Unit.Methods, "TTCN_Runtime::stop_component(%s);\n", refName(s.Component))
	return nil
}

func emitKill(c Context, s *ast.KillStatement) error {
	if s.All {
		fmt.Fprintf(&c.Unit.Methods, "TTCN_Runtime::kill_all_component();\n")
		return nil
	}
	fmt.Fprintf(&c.Unit.Methods, "TTCN_Runtime::kill_component(%s);\n", refName(s.Component))
	return nil
}

func emitStopPort(c Context, s *ast.StopPortStatement) error {
	if s.All || s.Port == nil {
		fmt.Fprintf(&c.Unit.Methods, "PORT::stop_all_port();\n")
		return nil
	}
	fmt.Fprintf(&c.Unit.Methods, "%s.stop();\n", refName(s.Port))
	return nil
}

func emitClear(c Context, s *ast.ClearStatement) error {
	if s.All || s.Port == nil {
		fmt.Fprintf(&c.Unit.Methods, "PORT::clear_all_port();\n")
		return nil
	}
	fmt.Fprintf(&c.Unit.Methods, "%s.clear();\n", refName(s.Port))
	return nil
}

func emitStartTimer(c Context, s *ast.StartTimerStatement) error {
	if s.Duration == nil {
		fmt.Fprintf(&c.Unit.Methods, "%s.start();\n", refName(s.Timer))
		return nil
	}
	d := renderValue(c, s.Duration)
	c.Unit.Methods.WriteString(d.Preamble.String())
	fmt.Fprintf(&c.Unit.Methods, "%s.start(%s);\n", refName(s.Timer), d.Expr)
	c.Unit.Methods.WriteString(d.Postamble.String())
	return nil
}

func emitStopTimer(c Context, s *ast.StopTimerStatement) error {
	if s.All || s.Timer == nil {
		fmt.Fprintf(&c.Unit.Methods, "TIMER::all_stop();\n")
		return nil
	}
	fmt.Fprintf(&c.Unit.Methods, "%s.stop();\n", refName(s.Timer))
	return nil
}
