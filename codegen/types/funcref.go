package types

import (
	"fmt"
	"strings"

	"github.com/cwbudde/ttcn3gen/ast"
	"github.com/cwbudde/ttcn3gen/errs"
	"github.com/cwbudde/ttcn3gen/sink"
)

// FuncRefEmitter emits the value/template class pair of §4.2 for one
// function/altstep/testcase reference type. Startable is taken from the
// AST as given (a function known to run on self can never be started
// elsewhere, enum.c/functionref.c's is_startable check, §4 supplement); it
// only decides whether a start method is emitted and is not re-checked here.
type FuncRefEmitter struct {
	Unit *sink.CodeUnit
}

// Emit writes def's value class and template class into e.Unit. The
// checker is responsible for rejecting a `start` call against a
// non-startable reference before generation reaches here; this emitter
// just never emits a start method for one (see emitFunctionBody).
func (e FuncRefEmitter) Emit(def ast.FuncRefDef) error {
	e.emitValueClass(def)
	e.emitTemplateClass(def)
	return nil
}

func (e FuncRefEmitter) emitValueClass(def ast.FuncRefDef) {
	var b strings.Builder
	fmt.Fprintf(&b, "class %s {\n", def.Name)
	fmt.Fprintf(&b, "private:\n  void* func_ptr; // type-punned function pointer, NULL means unbound\n")
	fmt.Fprintf(&b, "public:\n")
	fmt.Fprintf(&b, "  %s() : func_ptr(NULL) {}\n", def.Name)
	fmt.Fprintf(&b, "  %s& operator=(const %s& other) {\n", def.Name, def.Name)
	fmt.Fprintf(&b, "    func_ptr = other.func_ptr;\n    return *this;\n  }\n")
	fmt.Fprintf(&b, "  boolean operator==(const %s& other) const { return func_ptr == other.func_ptr; }\n", def.Name)
	fmt.Fprintf(&b, "  boolean operator!=(const %s& other) const { return !(*this == other); }\n", def.Name)
	fmt.Fprintf(&b, "  boolean is_bound() const { return func_ptr != NULL; }\n")

	switch def.Kind {
	case ast.FuncRefFunction:
		e.emitFunctionBody(&b, def)
	case ast.FuncRefAltstep:
		e.emitAltstepBody(&b, def)
	case ast.FuncRefTestcase:
		e.emitTestcaseBody(&b, def)
	}

	fmt.Fprintf(&b, "};\n")
	e.Unit.ClassDefs.WriteString(b.String())
}

func (e FuncRefEmitter) emitFunctionBody(b *strings.Builder, def ast.FuncRefDef) {
	ret := "void"
	if def.ReturnType != nil {
		ret = def.ReturnType.Name()
	}
	fmt.Fprintf(b, "  %s invoke(%s) const {\n", ret, def.Params)
	fmt.Fprintf(b, "    if (!is_bound()) TTCN_error(%q);\n", errs.RTCallOfUnboundFunc)
	fmt.Fprintf(b, "    if (func_ptr == NULL) TTCN_error(%q);\n", errs.RTNullReference)
	fmt.Fprintf(b, "    return reinterpret_cast<%s(*)(%s)>(func_ptr)(args);\n  }\n", ret, def.Params)

	if def.Startable {
		fmt.Fprintf(b, "  void start(const COMPONENT& compref, %s) const {\n", def.Params)
		fmt.Fprintf(b, "    if (!is_bound()) TTCN_error(%q);\n", errs.RTCallOfUnboundFunc)
		fmt.Fprintf(b, "    TTCN_Runtime::start_function(compref, func_ptr, args);\n  }\n")
	}

	// Text-buffer encode/decode looks up the function's opaque runtime
	// address, forbidden when the function's runs-on restriction pins it
	// to self (§4.2: "forbidden if the function runs on self").
	if def.RunsOn != nil && !def.Startable {
		fmt.Fprintf(b, "  void encode_text(Text_Buf&) const { TTCN_error(\"function bound to self cannot be encoded\"); }\n")
		fmt.Fprintf(b, "  void decode_text(Text_Buf&) { TTCN_error(\"function bound to self cannot be decoded\"); }\n")
	} else {
		fmt.Fprintf(b, "  void encode_text(Text_Buf& buf) const { buf.push_func_addr(func_ptr); }\n")
		fmt.Fprintf(b, "  void decode_text(Text_Buf& buf) { func_ptr = buf.pull_func_addr(); }\n")
	}
}

func (e FuncRefEmitter) emitAltstepBody(b *strings.Builder, def ast.FuncRefDef) {
	fmt.Fprintf(b, "  alt_status invoke(%s) const {\n", def.Params)
	fmt.Fprintf(b, "    if (!is_bound()) TTCN_error(%q);\n", errs.RTCallOfUnboundFunc)
	fmt.Fprintf(b, "    return reinterpret_cast<alt_status(*)(%s)>(func_ptr)(args);\n  }\n", def.Params)
	fmt.Fprintf(b, "  void invoke_standalone(%s) const {\n", def.Params)
	fmt.Fprintf(b, "    if (!is_bound()) TTCN_error(%q);\n", errs.RTCallOfUnboundFunc)
	fmt.Fprintf(b, "    reinterpret_cast<void(*)(%s)>(func_ptr)(args);\n  }\n", def.Params)
	fmt.Fprintf(b, "  Default_Base* activate(%s) const {\n", def.Params)
	fmt.Fprintf(b, "    if (!is_bound()) TTCN_error(%q);\n", errs.RTCallOfUnboundFunc)
	fmt.Fprintf(b, "    return TTCN_Default::activate(func_ptr, args);\n  }\n")
	fmt.Fprintf(b, "  void encode_text(Text_Buf& buf) const { buf.push_func_addr(func_ptr); }\n")
	fmt.Fprintf(b, "  void decode_text(Text_Buf& buf) { func_ptr = buf.pull_func_addr(); }\n")
}

func (e FuncRefEmitter) emitTestcaseBody(b *strings.Builder, def ast.FuncRefDef) {
	fmt.Fprintf(b, "  verdicttype execute(%s) const {\n", def.Params)
	fmt.Fprintf(b, "    if (!is_bound()) TTCN_error(%q);\n", errs.RTCallOfUnboundFunc)
	fmt.Fprintf(b, "    return reinterpret_cast<verdicttype(*)(%s)>(func_ptr)(args);\n  }\n", def.Params)
	fmt.Fprintf(b, "  void encode_text(Text_Buf& buf) const { buf.push_func_addr(func_ptr); }\n")
	fmt.Fprintf(b, "  void decode_text(Text_Buf& buf) { func_ptr = buf.pull_func_addr(); }\n")
}

// emitTemplateClass mirrors the enum template class of §4.1, wrapping the
// same six template kinds over def's value class instead of an enum.
func (e FuncRefEmitter) emitTemplateClass(def ast.FuncRefDef) {
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
	fmt.Fprintf(&b, "  void encode_text(Text_Buf& buf) const { single_value.encode_text(buf); }\n")
	fmt.Fprintf(&b, "  void decode_text(Text_Buf& buf) { single_value.decode_text(buf); selection = SPECIFIC_VALUE; }\n")
	fmt.Fprintf(&b, "};\n")
	e.Unit.ClassDefs.WriteString(b.String())
}
