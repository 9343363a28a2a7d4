package types

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/tidwall/gjson"

	"github.com/cwbudde/ttcn3gen/ast"
	"github.com/cwbudde/ttcn3gen/sink"
)

func colorEnum() ast.EnumDef {
	return ast.EnumDef{
		Name:        "Color",
		DisplayName: "Color",
		Elements: []ast.EnumElement{
			{Name: "red", Numeric: 0},
			{Name: "green", Numeric: 1, TextAlias: "GRN"},
			{Name: "blue", Numeric: 2},
		},
		UnknownValue: -1,
		UnboundValue: -2,
		Codecs:       ast.CodecSet{RAW: true, TEXT: true, XER: true, JSON: true},
	}
}

func TestEmitEnumValueAndTemplateClass(t *testing.T) {
	unit := sink.NewCodeUnit()
	if err := EmitEnum(unit, colorEnum()); err != nil {
		t.Fatalf("EmitEnum: %v", err)
	}
	snaps.MatchSnapshot(t, "enum value and template classes", unit.ClassDefs.String())
}

func TestEmitEnumNoCodecs(t *testing.T) {
	unit := sink.NewCodeUnit()
	def := colorEnum()
	def.Codecs = ast.CodecSet{}
	if err := EmitEnum(unit, def); err != nil {
		t.Fatalf("EmitEnum: %v", err)
	}
	snaps.MatchSnapshot(t, "enum with no codecs enabled", unit.ClassDefs.String())
}

func TestRawBitWidthUnsignedFitsOneByte(t *testing.T) {
	def := ast.EnumDef{Elements: []ast.EnumElement{{Numeric: 0}, {Numeric: 200}}}
	if got := rawBitWidth(def); got != 8 {
		t.Fatalf("got %d, want 8", got)
	}
}

func TestRawBitWidthSignedNeedsExtraBit(t *testing.T) {
	def := ast.EnumDef{Elements: []ast.EnumElement{{Numeric: -1}, {Numeric: 1}}}
	if got := rawBitWidth(def); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestRawBitWidthEmptyElements(t *testing.T) {
	if got := rawBitWidth(ast.EnumDef{}); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

func TestBuildJSONDescriptorStructure(t *testing.T) {
	doc := buildJSONDescriptor(colorEnum())
	if !gjson.Valid(doc) {
		t.Fatalf("buildJSONDescriptor produced invalid JSON: %s", doc)
	}
	results := gjson.Parse(doc).Array()
	if len(results) != 3 {
		t.Fatalf("got %d elements, want 3", len(results))
	}
	if got := gjson.Get(doc, "1.name").String(); got != "green" {
		t.Fatalf("got %q, want green", got)
	}
	if got := gjson.Get(doc, "1.alias").String(); got != "GRN" {
		t.Fatalf("got %q, want GRN", got)
	}
	if gjson.Get(doc, "0.alias").Exists() {
		t.Fatalf("element without a text alias should omit the alias field")
	}
	if got := gjson.Get(doc, "2.value").Int(); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestRawBitWidthLargeUnsignedValue(t *testing.T) {
	def := ast.EnumDef{Elements: []ast.EnumElement{{Numeric: 0}, {Numeric: 70000}}}
	if got := rawBitWidth(def); got != 17 {
		t.Fatalf("got %d, want 17", got)
	}
}
