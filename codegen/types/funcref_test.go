package types

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/ttcn3gen/ast"
	"github.com/cwbudde/ttcn3gen/internal/testast"
	"github.com/cwbudde/ttcn3gen/sink"
)

func TestEmitFuncRefFunctionStartable(t *testing.T) {
	unit := sink.NewCodeUnit()
	def := ast.FuncRefDef{
		Name:       "IntFunc",
		Kind:       ast.FuncRefFunction,
		Params:     "integer x",
		ReturnType: testast.NewType("integer"),
		Startable:  true,
	}
	if err := (FuncRefEmitter{Unit: unit}).Emit(def); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	snaps.MatchSnapshot(t, "startable function reference classes", unit.ClassDefs.String())
}

func TestEmitFuncRefFunctionBoundToSelfForbidsEncode(t *testing.T) {
	unit := sink.NewCodeUnit()
	def := ast.FuncRefDef{
		Name:      "SelfFunc",
		Kind:      ast.FuncRefFunction,
		Params:    "",
		RunsOn:    testast.NewType("MyComponent"),
		Startable: false,
	}
	if err := (FuncRefEmitter{Unit: unit}).Emit(def); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	snaps.MatchSnapshot(t, "self-bound function reference forbids encode", unit.ClassDefs.String())
}

func TestEmitFuncRefAltstep(t *testing.T) {
	unit := sink.NewCodeUnit()
	def := ast.FuncRefDef{
		Name:   "MyAltstep",
		Kind:   ast.FuncRefAltstep,
		Params: "",
	}
	if err := (FuncRefEmitter{Unit: unit}).Emit(def); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	snaps.MatchSnapshot(t, "altstep reference classes", unit.ClassDefs.String())
}

func TestEmitFuncRefTestcase(t *testing.T) {
	unit := sink.NewCodeUnit()
	def := ast.FuncRefDef{
		Name:   "MyTestcase",
		Kind:   ast.FuncRefTestcase,
		Params: "",
	}
	if err := (FuncRefEmitter{Unit: unit}).Emit(def); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	snaps.MatchSnapshot(t, "testcase reference classes", unit.ClassDefs.String())
}

func TestEmitFuncRefFunctionVoidReturn(t *testing.T) {
	unit := sink.NewCodeUnit()
	def := ast.FuncRefDef{
		Name:   "VoidFunc",
		Kind:   ast.FuncRefFunction,
		Params: "",
	}
	if err := (FuncRefEmitter{Unit: unit}).Emit(def); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	snaps.MatchSnapshot(t, "non-startable void function reference classes", unit.ClassDefs.String())
}
