package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "ttcn3gen",
	Short: "Statement/interleave code generator for a checked TTCN-3-style AST",
	Long: `ttcn3gen lowers a checked statement and expression AST into
target-language source text across four named sinks: class definitions,
method bodies, global-variable declarations, and their initialisers.

It does not lex, parse, or semantically check its input, and does not
implement the runtime library the generated code calls into — it only
emits calls against a fixed runtime ABI.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().String("config", "", "path to ttcn3gen.yaml (defaults to ./ttcn3gen.yaml if present)")
	rootCmd.PersistentFlags().Bool("trace", false, "flush the ILT/dispatch trace log to stderr (the generator records no entries into it, so nothing is printed)")
	rootCmd.PersistentFlags().Bool("use-runtime-2", false, "emit the richer runtime-2 redirect/template forms")
	rootCmd.PersistentFlags().Bool("debugger-active", false, "insert debug-scope markers at every lexical scope")
}
