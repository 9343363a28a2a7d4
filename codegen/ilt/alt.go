package ilt

import (
	"fmt"
	"strings"

	"github.com/cwbudde/ttcn3gen/ast"
	"github.com/cwbudde/ttcn3gen/runtimeabi"
)

// EmitAlt lowers a statement-level alt with no receiving statement
// embedded in any branch body, the standalone form of §4.5. (An alt with
// an embedded receiving statement is routed to EmitInterleave instead,
// by the caller's own dispatch — the ILT's branch machinery subsumes
// this simpler form but the two are kept separate since the standalone
// form never needs state variables.)
func EmitAlt(h Hooks, s *ast.AltStatement) (string, error) {
	var out strings.Builder

	branches, elseGuard := splitElse(s.Guards)
	n := len(branches)
	label := h.FreshID("alt")
	needsLabel := false
	for _, g := range branches {
		if g.Kind == ast.GuardOpGuard && h.IsReceiving(g.Op) {
			if _, canRepeat := h.Matcher(g.Op); canRepeat {
				needsLabel = true
			}
		}
	}

	fmt.Fprintf(&out, "{\n")
	fmt.Fprintf(&out, "%s F[%d];\n", runtimeabi.AltStatusType, n)
	for i, g := range branches {
		init := runtimeabi.AltMaybe
		if g.Guard != nil {
			init = runtimeabi.AltUnchecked
		}
		fmt.Fprintf(&out, "F[%d] = %s;\n", i, init)
	}
	hasDefault := elseGuard == nil
	if hasDefault {
		fmt.Fprintf(&out, "%s default_flag = %s;\n", runtimeabi.AltStatusType, runtimeabi.AltMaybe)
	}
	if needsLabel {
		fmt.Fprintf(&out, "%s:\n", label)
	}
	fmt.Fprintf(&out, "for (;;) {\n")

	for i, g := range branches {
		if err := emitBranchPhases(h, &out, i, g, label, s.Loc.String()); err != nil {
			return "", err
		}
	}

	if hasDefault {
		fmt.Fprintf(&out, "if (default_flag == %s) {\n", runtimeabi.AltMaybe)
		fmt.Fprintf(&out, "default_flag = %s();\n", runtimeabi.TryAltsteps)
		if h.InAltstep {
			fmt.Fprintf(&out, "if (default_flag == %s) return %s;\n", runtimeabi.AltYes, runtimeabi.AltReturnYes)
			fmt.Fprintf(&out, "if (default_flag == %s) return %s;\n", runtimeabi.AltBreak, runtimeabi.AltReturnBreak)
		} else {
			fmt.Fprintf(&out, "if (default_flag == %s || default_flag == %s) break;\n", runtimeabi.AltYes, runtimeabi.AltBreak)
		}
		fmt.Fprintf(&out, "if (default_flag == %s) goto %s;\n", runtimeabi.AltRepeat, label)
		fmt.Fprintf(&out, "}\n")
		fmt.Fprintf(&out, "%s\n", allFlagsNoCheck(n, hasDefault))
		fmt.Fprintf(&out, "%s(%q);\n", runtimeabi.TTCNError, "none of the branches can be chosen "+s.Loc.String())
		fmt.Fprintf(&out, "%s(TRUE);\n", runtimeabi.SnapshotTakeNew)
	} else {
		body, err := h.RenderBody(elseGuard.Body)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&out, "%s\n", body)
		fmt.Fprintf(&out, "break;\n")
	}

	fmt.Fprintf(&out, "}\n}\n")
	return out.String(), nil
}

func allFlagsNoCheck(n int, hasDefault bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "if (")
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(" && ")
		}
		fmt.Fprintf(&b, "F[%d] == %s", i, runtimeabi.AltNo)
	}
	if n == 0 {
		b.WriteString("TRUE")
	}
	if hasDefault {
		fmt.Fprintf(&b, " && default_flag == %s", runtimeabi.AltNo)
	}
	b.WriteString(")")
	return b.String()
}

// emitBranchPhases runs the three-phase evaluation of §4.4/§4.5 for one
// alt branch with no owning state variable (a standalone alt has no
// interleave state vector, so phase 1 reduces to just the guard
// expression).
func emitBranchPhases(h Hooks, out *strings.Builder, i int, g ast.AltGuard, label, loc string) error {
	fmt.Fprintf(out, "if (F[%d] == %s) {\n", i, runtimeabi.AltUnchecked)
	pre, expr := h.Guard(g.Guard)
	out.WriteString(pre)
	if val, ok := h.ConstBool(g.Guard); ok {
		if val {
			fmt.Fprintf(out, "F[%d] = %s;\n", i, runtimeabi.AltMaybe)
		} else {
			fmt.Fprintf(out, "F[%d] = %s;\n", i, runtimeabi.AltNo)
		}
	} else {
		fmt.Fprintf(out, "F[%d] = (%s) ? %s : %s;\n", i, expr, runtimeabi.AltMaybe, runtimeabi.AltNo)
	}
	fmt.Fprintf(out, "}\n")

	fmt.Fprintf(out, "if (F[%d] == %s) {\n", i, runtimeabi.AltMaybe)
	switch g.Kind {
	case ast.GuardOpGuard:
		if h.IsReceiving(g.Op) {
			matcher, canRepeat := h.Matcher(g.Op)
			fmt.Fprintf(out, "F[%d] = %s;\n", i, matcher)
			if canRepeat {
				if h.InAltstep {
					fmt.Fprintf(out, "if (F[%d] == %s) return %s;\n", i, runtimeabi.AltRepeat, runtimeabi.AltReturnRepeat)
				} else {
					fmt.Fprintf(out, "if (F[%d] == %s) goto %s;\n", i, runtimeabi.AltRepeat, label)
				}
			}
		} else {
			if err := h.EmitOp(g.Op); err != nil {
				return err
			}
			fmt.Fprintf(out, "F[%d] = %s;\n", i, runtimeabi.AltYes)
		}
	case ast.GuardAltstepRef, ast.GuardInvoke:
		if err := h.EmitOp(g.Op); err != nil {
			return err
		}
		fmt.Fprintf(out, "F[%d] = %s;\n", i, runtimeabi.AltYes)
	}
	fmt.Fprintf(out, "}\n")

	fmt.Fprintf(out, "if (F[%d] == %s) {\n", i, runtimeabi.AltYes)
	body, err := h.RenderBody(g.Body)
	if err != nil {
		return err
	}
	out.WriteString(body)
	if h.InAltstep {
		fmt.Fprintf(out, "return %s;\n", runtimeabi.AltReturnYes)
	} else {
		fmt.Fprintf(out, "break;\n")
	}
	fmt.Fprintf(out, "}\n")
	return nil
}

func splitElse(guards []ast.AltGuard) (branches []ast.AltGuard, elseGuard *ast.AltGuard) {
	for idx := range guards {
		g := guards[idx]
		if g.Kind == ast.GuardElse {
			eg := g
			elseGuard = &eg
			continue
		}
		branches = append(branches, g)
	}
	return branches, elseGuard
}
