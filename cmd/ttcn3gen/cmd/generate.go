package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cwbudde/ttcn3gen/ast"
	"github.com/cwbudde/ttcn3gen/codegen"
	"github.com/cwbudde/ttcn3gen/errs"
	"github.com/cwbudde/ttcn3gen/genopts"
	"github.com/cwbudde/ttcn3gen/internal/trace"
	"github.com/cwbudde/ttcn3gen/sink"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate target-language source for a fixture statement block",
	Long: `generate drives the statement emitter over a built-in fixture
statement block (this generator does not lex, parse, or check TTCN-3
source itself — it consumes an already-checked AST) and writes the four
sink buffers to <outdir>/class_defs.inc, methods.inc, def_glob_vars.inc
and src_glob_vars.inc.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("out", "o", ".", "output directory for the four sink files")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = "ttcn3gen.yaml"
	}
	opts, err := genopts.Load(configPath)
	if err != nil {
		log.Printf("ttcn3gen: %v", err)
		return err
	}
	if v, _ := cmd.Flags().GetBool("use-runtime-2"); v {
		opts.UseRuntime2 = true
	}
	if v, _ := cmd.Flags().GetBool("debugger-active"); v {
		opts.DebuggerActive = true
	}

	traceEnabled, _ := cmd.Flags().GetBool("trace")
	tr := trace.New(traceEnabled)

	unit := sink.NewCodeUnit()
	diag := &errs.Sink{}
	c := codegen.Context{Opts: opts, Unit: unit, Diag: diag}

	block := fixtureBlock()
	if err := codegen.EmitBlockStatements(c, block); err != nil {
		log.Printf("ttcn3gen: generation failed: %v", err)
		return err
	}
	tr.Flush(os.Stderr)
	for _, w := range diag.Warnings {
		log.Print(w.String())
	}

	outDir, _ := cmd.Flags().GetString("out")
	return writeSinks(outDir, unit)
}

func writeSinks(outDir string, unit *sink.CodeUnit) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("ttcn3gen: creating output directory: %w", err)
	}
	files := map[string]string{
		"class_defs.inc":    unit.ClassDefs.String(),
		"methods.inc":       unit.Methods.String(),
		"def_glob_vars.inc": unit.DefGlobVars.String(),
		"src_glob_vars.inc": unit.SrcGlobVars.String(),
	}
	for name, content := range files {
		path := filepath.Join(outDir, name)
		if err := writeFile(path, content); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path, content string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ttcn3gen: writing %s: %w", path, err)
	}
	defer f.Close()
	_, err = io.WriteString(f, content)
	return err
}

// fixtureBlock stands in for the checked AST a real front end would
// supply; it holds a single log statement, enough to smoke test the
// four-sink wiring end to end.
func fixtureBlock() *ast.StatementBlock {
	block := ast.NewStatementBlock(nil)
	block.Append(&ast.LogStatement{
		Base: ast.NewBase(ast.KindLog, ast.Location{File: "fixture.ttcn", BeginLine: 1, EndLine: 1}, block),
	})
	return block
}
