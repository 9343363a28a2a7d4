// Package redirect implements the value- and parameter-redirect emitters
// of spec §4.3 ("Redirect objects" / "Value redirect" / "Parameter
// redirect") and the index-redirect helper class of "Index redirect".
package redirect

import (
	"fmt"
	"strings"

	"github.com/cwbudde/ttcn3gen/ast"
	"github.com/cwbudde/ttcn3gen/errs"
	"github.com/cwbudde/ttcn3gen/sink"
)

// RenderValueRedirect emits the argument expression a receiving
// operation's matcher call passes for its value-redirect parameter.
//
// Two target shapes, per §4.3: a single whole-value redirect against the
// legacy runtime emits `&(variable)`; anything richer — multiple entries,
// a sub-path, or a decoded entry — synthesises a
// Value_Redirect_Interface subclass into unit.ClassDefs and returns a
// constructor call, required whenever useRuntime2 is set or the redirect
// can't be expressed as a single `&()`.
func RenderValueRedirect(unit *sink.CodeUnit, vr *ast.ValueRedirect, useRuntime2 bool) string {
	if vr == nil || len(vr.Entries) == 0 {
		return "NULL"
	}
	if !useRuntime2 && isLegacyShape(vr) {
		return "&(" + vr.Entries[0].Variable.Name() + ")"
	}

	className := unit.FreshID("Value_Redirect")
	writeValueRedirectClass(unit, className, vr)
	return className + "()"
}

// isLegacyShape reports whether vr is a single whole-value, non-decoded
// redirect — the only shape the legacy runtime's `&(variable)` form can
// express.
func isLegacyShape(vr *ast.ValueRedirect) bool {
	return len(vr.Entries) == 1 && vr.Entries[0].SubPath == "" && !vr.Entries[0].Decoded
}

func writeValueRedirectClass(unit *sink.CodeUnit, className string, vr *ast.ValueRedirect) {
	var b strings.Builder
	fmt.Fprintf(&b, "class %s : public Value_Redirect_Interface {\n", className)
	fmt.Fprintf(&b, "public:\n")
	fmt.Fprintf(&b, "  boolean set_values(const Base_Type* value_ptr) const {\n")
	for _, e := range vr.Entries {
		writeEntry(&b, e)
	}
	fmt.Fprintf(&b, "    return TRUE;\n")
	fmt.Fprintf(&b, "  }\n")
	fmt.Fprintf(&b, "};\n")
	unit.ClassDefs.WriteString(b.String())
}

func writeEntry(b *strings.Builder, e ast.ValueRedirectEntry) {
	selector := "value_ptr"
	if e.SubPath != "" {
		selector = fmt.Sprintf("value_ptr->field(%q)", e.SubPath)
	}

	if !e.Decoded {
		fmt.Fprintf(b, "    %s = %s; // copy, or converter() if types differ\n", e.Variable.Name(), selector)
		return
	}

	// Decoded redirect (§4.3, §8 property 8): prefer the matched
	// decode_match template's own decode result when its target type and
	// string encoding agree with what this entry asks for; otherwise
	// re-encode into a buffer and decode through the configured codec.
	target, encoding, isDecodeMatch := decodeMatchOf(e)
	sameTarget := isDecodeMatch && e.DecodedTarget != nil && target != nil &&
		e.DecodedTarget.DescriptorAddr() == target.DescriptorAddr() && encoding == renderEncoding(e.StringEncoding)

	fmt.Fprintf(b, "    if (%v) {\n", sameTarget)
	fmt.Fprintf(b, "      %s = *static_cast<const %s*>(%s->get_decode_result());\n",
		e.Variable.Name(), typeName(e.DecodedTarget), selector)
	fmt.Fprintf(b, "    } else {\n")
	fmt.Fprintf(b, "      TTCN_Buffer buf;\n")
	fmt.Fprintf(b, "      %s->encode(buf, %s);\n", selector, renderEncoding(e.StringEncoding))
	fmt.Fprintf(b, "      %s.decode(buf);\n", e.Variable.Name())
	fmt.Fprintf(b, "      if (buf.get_pos() != buf.get_len()) TTCN_error(%q);\n", errs.RTDecodeBufferNonEmpty)
	fmt.Fprintf(b, "    }\n")
}

// decodeMatchOf reports the decode_match sub-template the checker resolved
// as matching e's source position, if any — distinct from e.DecodedTarget/
// e.StringEncoding, which are what this redirect entry itself asks to
// decode into. The two only coincide when the redirect requests the exact
// type/encoding the match already produced.
func decodeMatchOf(e ast.ValueRedirectEntry) (target ast.StaticType, encoding string, ok bool) {
	if !e.Decoded || e.MatchedTemplateTarget == nil {
		return nil, "", false
	}
	return e.MatchedTemplateTarget, renderEncoding(e.MatchedTemplateEncoding), true
}

func renderEncoding(v ast.Value) string {
	if v == nil {
		return ""
	}
	_, expr, _ := v.Render(nil)
	return expr
}

func typeName(t ast.StaticType) string {
	if t == nil {
		return "Base_Type"
	}
	return t.Name()
}
