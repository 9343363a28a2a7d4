package redirect

import (
	"fmt"

	"github.com/cwbudde/ttcn3gen/ast"
	"github.com/cwbudde/ttcn3gen/sink"
)

// RenderIndexRedirect emits the `any from` index-redirect argument. The
// three IndexRedirectShape variants (§4.3 "Index redirect") are rendered
// differently: IndexSingle passes the variable's address and IndexOneDim the
// address of its first element, with no helper type; only IndexMultiDim
// synthesises an Index_Redirect class.
func RenderIndexRedirect(unit *sink.CodeUnit, ir *ast.IndexRedirect) string {
	if ir == nil {
		return "NULL"
	}
	switch ir.Shape {
	case ast.IndexSingle:
		return "&(" + ir.Variable.Name() + ")"
	case ast.IndexOneDim:
		return "&(" + ir.Variable.Name() + "[0])"
	case ast.IndexMultiDim:
		className := unit.FreshID("Index_Redirect")
		writeMultiDimClass(unit, className, ir)
		return className + "(&(" + ir.Variable.Name() + "))"
	default:
		return "NULL"
	}
}

func writeMultiDimClass(unit *sink.CodeUnit, className string, ir *ast.IndexRedirect) {
	fmt.Fprintf(&unit.ClassDefs,
		"class %s : public Index_Redirect_Interface {\npublic:\n  int dims() const { return %d; }\n};\n",
		className, ir.Dims)
}
