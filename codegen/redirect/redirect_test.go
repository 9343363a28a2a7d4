package redirect

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/ttcn3gen/ast"
	"github.com/cwbudde/ttcn3gen/internal/testast"
	"github.com/cwbudde/ttcn3gen/sink"
)

func TestRenderValueRedirectNil(t *testing.T) {
	got := RenderValueRedirect(sink.NewCodeUnit(), nil, false)
	if got != "NULL" {
		t.Fatalf("got %q, want NULL", got)
	}
}

func TestRenderValueRedirectLegacyShape(t *testing.T) {
	unit := sink.NewCodeUnit()
	vr := &ast.ValueRedirect{Entries: []ast.ValueRedirectEntry{
		{Variable: testast.NewRef("received")},
	}}
	got := RenderValueRedirect(unit, vr, false)
	if got != "&(received)" {
		t.Fatalf("got %q, want &(received)", got)
	}
	if unit.ClassDefs.Len() != 0 {
		t.Fatalf("legacy shape should not synthesise a class, got %q", unit.ClassDefs.String())
	}
}

func TestRenderValueRedirectRuntime2Class(t *testing.T) {
	unit := sink.NewCodeUnit()
	vr := &ast.ValueRedirect{Entries: []ast.ValueRedirectEntry{
		{Variable: testast.NewRef("whole")},
	}}
	got := RenderValueRedirect(unit, vr, true)
	snaps.MatchSnapshot(t, "runtime-2 single-entry class ctor", got)
	snaps.MatchSnapshot(t, "runtime-2 single-entry class body", unit.ClassDefs.String())
}

func TestRenderValueRedirectMultiEntryWithSubPath(t *testing.T) {
	unit := sink.NewCodeUnit()
	vr := &ast.ValueRedirect{Entries: []ast.ValueRedirectEntry{
		{Variable: testast.NewRef("whole")},
		{Variable: testast.NewRef("field"), SubPath: "y.f"},
	}}
	_ = RenderValueRedirect(unit, vr, false)
	snaps.MatchSnapshot(t, "multi-entry value redirect class", unit.ClassDefs.String())
}

func TestRenderValueRedirectDecodedSameTargetCopies(t *testing.T) {
	unit := sink.NewCodeUnit()
	octType := testast.NewType("octetstring")
	vr := &ast.ValueRedirect{Entries: []ast.ValueRedirectEntry{
		{
			Variable:                testast.NewRef("decoded_val"),
			Decoded:                 true,
			StringEncoding:          testast.Expr(`"UTF-8"`),
			DecodedTarget:           octType,
			MatchedTemplateTarget:   octType,
			MatchedTemplateEncoding: testast.Expr(`"UTF-8"`),
		},
	}}
	_ = RenderValueRedirect(unit, vr, false)
	snaps.MatchSnapshot(t, "decoded redirect same target copies result", unit.ClassDefs.String())
}

func TestRenderValueRedirectDecodedDifferentTargetReencodes(t *testing.T) {
	unit := sink.NewCodeUnit()
	requested := testast.NewType("MyRecord")
	matched := testast.NewType("octetstring")
	vr := &ast.ValueRedirect{Entries: []ast.ValueRedirectEntry{
		{
			Variable:                testast.NewRef("decoded_val"),
			Decoded:                 true,
			StringEncoding:          testast.Expr(`"UTF-8"`),
			DecodedTarget:           requested,
			MatchedTemplateTarget:   matched,
			MatchedTemplateEncoding: testast.Expr(`"UTF-8"`),
		},
	}}
	_ = RenderValueRedirect(unit, vr, false)
	snaps.MatchSnapshot(t, "decoded redirect different target re-encodes", unit.ClassDefs.String())
}

func TestRenderValueRedirectDecodedNoMatchReencodes(t *testing.T) {
	unit := sink.NewCodeUnit()
	requested := testast.NewType("MyRecord")
	vr := &ast.ValueRedirect{Entries: []ast.ValueRedirectEntry{
		{
			Variable:       testast.NewRef("decoded_val"),
			Decoded:        true,
			StringEncoding: testast.Expr(`"UTF-8"`),
			DecodedTarget:  requested,
		},
	}}
	_ = RenderValueRedirect(unit, vr, false)
	snaps.MatchSnapshot(t, "decoded redirect with no decode-match re-encodes", unit.ClassDefs.String())
}

func TestRenderParamRedirect(t *testing.T) {
	pr := &ast.ParamRedirect{Entries: []ast.ParamRedirectEntry{
		{Present: true, Variable: testast.NewRef("p0")},
		{Present: false},
		{Present: true, Variable: testast.NewRef("p2"), Decoded: true, StringEncoding: testast.Expr(`"BER:2002"`)},
	}}
	got := RenderParamRedirect(pr)
	snaps.MatchSnapshot(t, "param redirect mixed entries", got)
}

func TestRenderParamRedirectEmpty(t *testing.T) {
	if got := RenderParamRedirect(nil); got != "" {
		t.Fatalf("got %q, want empty string", got)
	}
	if got := RenderParamRedirect(&ast.ParamRedirect{}); got != "" {
		t.Fatalf("got %q, want empty string", got)
	}
}

func TestRenderIndexRedirectShapes(t *testing.T) {
	unit := sink.NewCodeUnit()

	single := RenderIndexRedirect(unit, &ast.IndexRedirect{Shape: ast.IndexSingle, Variable: testast.NewRef("idx")})
	if single != "&(idx)" {
		t.Fatalf("got %q, want &(idx)", single)
	}

	oneDim := RenderIndexRedirect(unit, &ast.IndexRedirect{Shape: ast.IndexOneDim, Variable: testast.NewRef("idx")})
	if oneDim != "&(idx[0])" {
		t.Fatalf("got %q, want &(idx[0])", oneDim)
	}

	multi := RenderIndexRedirect(unit, &ast.IndexRedirect{Shape: ast.IndexMultiDim, Variable: testast.NewRef("idx"), Dims: 3})
	snaps.MatchSnapshot(t, "multi-dim index redirect ctor", multi)
	snaps.MatchSnapshot(t, "multi-dim index redirect class", unit.ClassDefs.String())
}

func TestRenderIndexRedirectNil(t *testing.T) {
	if got := RenderIndexRedirect(sink.NewCodeUnit(), nil); got != "NULL" {
		t.Fatalf("got %q, want NULL", got)
	}
}
