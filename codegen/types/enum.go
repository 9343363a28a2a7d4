// Package types implements the L1 per-type emitters of spec §4.1–4.2: the
// enum value/template class pair and the function/altstep/testcase
// reference value/template class pair. Both write into the same four
// sinks as the statement emitter (package codegen), but operate on
// ast.EnumDef/ast.FuncRefDef rather than on a statement tree, so they are
// invoked once per declared type rather than from EmitStatement's
// dispatch.
package types

import (
	"fmt"
	"strings"

	"github.com/tidwall/sjson"

	"github.com/cwbudde/ttcn3gen/ast"
	"github.com/cwbudde/ttcn3gen/errs"
	"github.com/cwbudde/ttcn3gen/sink"
)

// EmitEnum writes def's value class and template class into unit
// (§4.1). The two reserved numeric values UNKNOWN and UNBOUND round out
// the field's state space beyond def.Elements.
func EmitEnum(unit *sink.CodeUnit, def ast.EnumDef) error {
	emitEnumValueClass(unit, def)
	emitEnumTemplateClass(unit, def)
	return nil
}

func emitEnumValueClass(unit *sink.CodeUnit, def ast.EnumDef) {
	var b strings.Builder
	fmt.Fprintf(&b, "class %s {\n", def.Name)
	fmt.Fprintf(&b, "private:\n  int enum_value; // one of the elements, UNKNOWN (%d), or UNBOUND (%d)\n",
		def.UnknownValue, def.UnboundValue)
	fmt.Fprintf(&b, "public:\n")
	fmt.Fprintf(&b, "  %s() : enum_value(%d) {}\n", def.Name, def.UnboundValue)
	fmt.Fprintf(&b, "  %s(int other_value) {\n", def.Name)
	fmt.Fprintf(&b, "    if (!is_valid_enum(other_value)) TTCN_error(%q);\n", errs.RTInvalidNumeric)
	fmt.Fprintf(&b, "    enum_value = other_value;\n  }\n")

	fmt.Fprintf(&b, "  %s& operator=(const %s& other) {\n", def.Name, def.Name)
	fmt.Fprintf(&b, "    if (other.enum_value == %d) TTCN_error(%q);\n", def.UnboundValue, errs.RTUnboundOperand)
	fmt.Fprintf(&b, "    enum_value = other.enum_value;\n    return *this;\n  }\n")

	emitEnumComparisons(&b, def)

	fmt.Fprintf(&b, "  static const char* enum_to_str(%s v, boolean textual) {\n", def.Name)
	for _, el := range def.Elements {
		if el.TextAlias != "" {
			fmt.Fprintf(&b, "    if (v.enum_value == %d) return textual ? %q : %q;\n", el.Numeric, el.TextAlias, el.Name)
		} else {
			fmt.Fprintf(&b, "    if (v.enum_value == %d) return %q;\n", el.Numeric, el.Name)
		}
	}
	fmt.Fprintf(&b, "    return \"<unknown>\";\n  }\n")

	fmt.Fprintf(&b, "  static %s str_to_enum(const char* s) {\n", def.Name)
	for _, el := range def.Elements {
		fmt.Fprintf(&b, "    if (!strcmp(s, %q)", el.Name)
		if el.TextAlias != "" {
			fmt.Fprintf(&b, " || !strcmp(s, %q)", el.TextAlias)
		}
		fmt.Fprintf(&b, ") return %s(%d);\n", def.Name, el.Numeric)
	}
	fmt.Fprintf(&b, "    return %s(%d);\n  }\n", def.Name, def.UnknownValue)

	fmt.Fprintf(&b, "  static boolean is_valid_enum(int i) {\n")
	for _, el := range def.Elements {
		fmt.Fprintf(&b, "    if (i == %d) return TRUE;\n", el.Numeric)
	}
	fmt.Fprintf(&b, "    return FALSE;\n  }\n")

	fmt.Fprintf(&b, "  int enum2int() const {\n")
	fmt.Fprintf(&b, "    if (enum_value == %d || enum_value == %d) TTCN_error(%q);\n",
		def.UnboundValue, def.UnknownValue, errs.RTUnboundOperand)
	fmt.Fprintf(&b, "    return enum_value;\n  }\n")
	fmt.Fprintf(&b, "  static %s int2enum(int i) { return %s(i); }\n", def.Name, def.Name)
	fmt.Fprintf(&b, "  int as_int() const { return enum_value; }\n")
	fmt.Fprintf(&b, "  static %s from_int(int i) { return %s(i); }\n", def.Name, def.Name)

	emitEnumCodecs(&b, def)

	fmt.Fprintf(&b, "};\n")
	unit.ClassDefs.WriteString(b.String())
}

func emitEnumComparisons(b *strings.Builder, def ast.EnumDef) {
	ops := []string{"==", "<", ">"}
	for _, op := range ops {
		fmt.Fprintf(b, "  boolean operator%s(const %s& other) const {\n", op, def.Name)
		fmt.Fprintf(b, "    if (enum_value == %d || other.enum_value == %d) TTCN_error(%q);\n",
			def.UnboundValue, def.UnboundValue, errs.RTUnboundOperand)
		fmt.Fprintf(b, "    return enum_value %s other.enum_value;\n  }\n", op)
	}
	fmt.Fprintf(b, "  boolean operator!=(const %s& other) const { return !(*this == other); }\n", def.Name)
	fmt.Fprintf(b, "  boolean operator<=(const %s& other) const { return !(*this > other); }\n", def.Name)
	fmt.Fprintf(b, "  boolean operator>=(const %s& other) const { return !(*this < other); }\n", def.Name)
}

// emitEnumCodecs emits the per-codec encode/decode entry points (§4.1),
// one pair for each of RAW, TEXT, XER and JSON that def.Codecs enables; an
// enabled BER gets no entry point here. RAW needs the minimum bit width
// covering every element value, plus a sign bit if any value is negative;
// TEXT needs the token table already built by enum_to_str/str_to_enum;
// XER carries the xerUseNumber mode switch and tolerates leading
// whitespace on decode; JSON renders enum_to_str(*this, TRUE) as a JSON
// string, i.e. the text alias when there is one, else the element name.
func emitEnumCodecs(b *strings.Builder, def ast.EnumDef) {
	fmt.Fprintf(b, "  void encode_text(Text_Buf& buf) const { buf.push_int(enum_value); }\n")
	fmt.Fprintf(b, "  void decode_text(Text_Buf& buf) {\n")
	fmt.Fprintf(b, "    int v = buf.pull_int();\n")
	fmt.Fprintf(b, "    if (!is_valid_enum(v)) TTCN_error(%q);\n", errs.RTInvalidNumeric)
	fmt.Fprintf(b, "    enum_value = v;\n  }\n")

	if def.Codecs.RAW {
		width := rawBitWidth(def)
		fmt.Fprintf(b, "  int RAW_encode(TTCN_Buffer& buf) const { return RAW_encode_enum(buf, enum_value, %d); }\n", width)
		fmt.Fprintf(b, "  int RAW_decode(TTCN_Buffer& buf) { return RAW_decode_enum(buf, enum_value, %d); }\n", width)
	}
	if def.Codecs.TEXT {
		fmt.Fprintf(b, "  int TEXT_encode(TTCN_Buffer& buf) const { return TEXT_encode_enum(buf, enum_to_str(*this, TRUE)); }\n")
		fmt.Fprintf(b, "  int TEXT_decode(TTCN_Buffer& buf) { *this = str_to_enum(TEXT_decode_token(buf)); return 0; }\n")
	}
	if def.Codecs.XER {
		fmt.Fprintf(b, "  int XER_encode(const XERdescriptor_t& d, TTCN_Buffer& buf) const { return XER_encode_enum(d, buf, enum_value, xerUseNumber); }\n")
		fmt.Fprintf(b, "  int XER_decode(const XERdescriptor_t& d, XmlReaderWrap& r) { skip_leading_whitespace(r); return XER_decode_enum(d, r, enum_value); }\n")
	}
	if def.Codecs.JSON {
		fmt.Fprintf(b, "  int JSON_encode(JSON_Tokenizer& tok) const { return tok.put_next_token(JSON_STRING, enum_to_str(*this, TRUE)); }\n")
		fmt.Fprintf(b, "  int JSON_decode(JSON_Tokenizer& tok) { char* s; tok.get_next_token(JSON_STRING, &s); *this = str_to_enum(s); return 0; }\n")
		fmt.Fprintf(b, "  static const char* json_descriptor() { return %q; }\n", buildJSONDescriptor(def))
	}
}

// buildJSONDescriptor renders def's element name/value table as a JSON
// array literal, embedded as a C++ string constant for the runtime's JSON
// codec helper to introspect at start-up (schema validation, module
// parameter defaulting). Built field-by-field with sjson rather than
// struct-marshalled, since the target shape (name/value pairs keyed by
// position) doesn't map onto a single Go struct worth declaring just for
// this.
func buildJSONDescriptor(def ast.EnumDef) string {
	doc := "[]"
	var err error
	for i, el := range def.Elements {
		doc, err = sjson.Set(doc, fmt.Sprintf("%d.name", i), el.Name)
		if err != nil {
			return "[]"
		}
		doc, err = sjson.Set(doc, fmt.Sprintf("%d.value", i), el.Numeric)
		if err != nil {
			return "[]"
		}
		if el.TextAlias != "" {
			doc, err = sjson.Set(doc, fmt.Sprintf("%d.alias", i), el.TextAlias)
			if err != nil {
				return "[]"
			}
		}
	}
	return doc
}

// rawBitWidth finds the minimum bit width that represents every element
// value, signed if any value is negative (§4.1 "the minimum bit width
// required to represent all element values plus sign if any value is
// negative").
func rawBitWidth(def ast.EnumDef) int {
	if len(def.Elements) == 0 {
		return 1
	}
	min, max := def.Elements[0].Numeric, def.Elements[0].Numeric
	for _, el := range def.Elements {
		if el.Numeric < min {
			min = el.Numeric
		}
		if el.Numeric > max {
			max = el.Numeric
		}
	}
	signed := min < 0
	for bits := 1; bits <= 63; bits++ {
		if signed {
			lo := -(int64(1) << uint(bits-1))
			hi := (int64(1) << uint(bits-1)) - 1
			if min >= lo && max <= hi {
				return bits
			}
		} else if max < (int64(1) << uint(bits)) {
			return bits
		}
	}
	return 63
}

// emitEnumTemplateClass implements the template class of §4.1's final
// bullet: the six template kinds shared by every L1 matching-template
// emitter (specific value, omit, any-value, any-or-omit, value-list,
// complemented-list).
func emitEnumTemplateClass(unit *sink.CodeUnit, def ast.EnumDef) {
	tname := def.Name + "_template"
	var b strings.Builder
	fmt.Fprintf(&b, "class %s {\n", tname)
	fmt.Fprintf(&b, "private:\n  template_sel selection;\n  %s single_value;\n  vector<%s> value_list;\n",
		def.Name, def.Name)
	fmt.Fprintf(&b, "public:\n")
	fmt.Fprintf(&b, "  %s() : selection(UNINITIALIZED_TEMPLATE) {}\n", tname)
	fmt.Fprintf(&b, "  %s(template_sel sel) : selection(sel) {}\n", tname)
	fmt.Fprintf(&b, "  %s(%s v) : selection(SPECIFIC_VALUE), single_value(v) {}\n", tname, def.Name)
	fmt.Fprintf(&b, "  %s& operator=(const %s& other) { selection = other.selection; single_value = other.single_value; value_list = other.value_list; return *this; }\n",
		tname, tname)
	fmt.Fprintf(&b, "  boolean match(%s v) const {\n", def.Name)
	fmt.Fprintf(&b, "    switch (selection) {\n")
	fmt.Fprintf(&b, "    case ANY_VALUE: case ANY_OR_OMIT: return TRUE;\n")
	fmt.Fprintf(&b, "    case OMIT_VALUE: return FALSE;\n")
	fmt.Fprintf(&b, "    case SPECIFIC_VALUE: return single_value == v;\n")
	fmt.Fprintf(&b, "    case VALUE_LIST: return value_list.contains(v);\n")
	fmt.Fprintf(&b, "    case COMPLEMENTED_LIST: return !value_list.contains(v);\n")
	fmt.Fprintf(&b, "    default: return FALSE;\n    }\n  }\n")
	fmt.Fprintf(&b, "  %s list_item(int i) const { return value_list[i]; }\n", def.Name)
	fmt.Fprintf(&b, "  void log() const {}\n  void log_match(%s v) const {}\n", def.Name)
	fmt.Fprintf(&b, "  boolean is_value() const { return selection == SPECIFIC_VALUE; }\n")
	fmt.Fprintf(&b, "  void set_param(Module_Param& param) { single_value = %s::str_to_enum(param.get_string()); selection = SPECIFIC_VALUE; }\n", def.Name)
	fmt.Fprintf(&b, "  Module_Param* get_param(Module_Param_Name& name) const { return NULL; }\n")
	fmt.Fprintf(&b, "  void encode_text(Text_Buf& buf) const { single_value.encode_text(buf); }\n")
	fmt.Fprintf(&b, "  void decode_text(Text_Buf& buf) { single_value.decode_text(buf); selection = SPECIFIC_VALUE; }\n")
	fmt.Fprintf(&b, "};\n")
	unit.ClassDefs.WriteString(b.String())
}
