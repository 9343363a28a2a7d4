package redirect

import (
	"fmt"
	"strings"

	"github.com/cwbudde/ttcn3gen/ast"
)

// RenderParamRedirect renders a getcall/getreply/catch parameter-redirect
// clause as the constructor-argument fragment a `<signature>_call_redirect`
// or `<signature>_reply_redirect` wrapper expects, one positional slot per
// formal parameter (§4.3 "Parameter redirect"). Padding slots introduced by
// the checker's by-name-to-positional normalisation (§3 invariant) render
// as NULL.
func RenderParamRedirect(pr *ast.ParamRedirect) string {
	if pr == nil || len(pr.Entries) == 0 {
		return ""
	}
	var parts []string
	for _, e := range pr.Entries {
		parts = append(parts, renderParamEntry(e))
	}
	return strings.Join(parts, ", ")
}

func renderParamEntry(e ast.ParamRedirectEntry) string {
	if !e.Present {
		return "NULL"
	}
	if !e.Decoded {
		return "&(" + e.Variable.Name() + ")"
	}

	// Decoded parameter redirects synthesise the same re-encode/decode
	// fallback as a decoded value-redirect entry, but scoped to this one
	// positional slot. This produces only the per-slot setter fragment;
	// communication.go emits the `<signature>_call_redirect(...)`/
	// `<signature>_reply_redirect(...)` constructor text around it, and no
	// class declaration for that name is generated.
	return fmt.Sprintf("decoded_param_redirect(&(%s), %s)", e.Variable.Name(), renderEncoding(e.StringEncoding))
}
