package codegen

import (
	"fmt"

	"github.com/cwbudde/ttcn3gen/ast"
)

func emitAssignment(c Context, s *ast.AssignmentStatement) error {
	val := renderValue(c, s.Value)
	c.Unit.Methods.WriteString(val.Preamble.String())
	fmt.Fprintf(&c.Unit.Methods, "%s = %s;\n", refName(s.Target), val.Expr)
	c.Unit.Methods.WriteString(val.Postamble.String())
	return nil
}

func emitLocalDef(c Context, s *ast.LocalDefStatement) error {
	typeName := "auto"
	if s.Type != nil {
		typeName = s.Type.Name()
	}
	for _, name := range s.Names {
		if s.Init != nil {
			init := renderValue(c, s.Init)
			c.Unit.Methods.WriteString(init.Preamble.String())
			fmt.Fprintf(&c.Unit.Methods, "%s %s(%s);\n", typeName, name, init.Expr)
			c.Unit.Methods.WriteString(init.Postamble.String())
		} else {
			fmt.Fprintf(&c.Unit.Methods, "%s %s;\n", typeName, name)
		}
	}
	return nil
}
