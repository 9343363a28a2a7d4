// Package genopts collects the process-wide configuration knobs the
// generator consumes (spec §6). The design notes call out "config knobs as
// globals" as a pattern needing a fix in the target implementation: this
// package is that fix — a single Options value threaded through the
// generator, read by emitters but never written by them.
package genopts

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Options is the generator's full configuration surface.
type Options struct {
	// UseRuntime2 enables the richer value-redirect class hierarchy,
	// virtual dispatch overrides on value/template classes, and generic
	// get_param; when false, the lighter is_present alias and legacy
	// direct redirects are emitted instead.
	UseRuntime2 bool `yaml:"use_runtime_2"`

	// DebuggerActive inserts a debug scope at every new lexical scope and
	// wraps return values in a store-return-value macro invocation.
	DebuggerActive bool `yaml:"debugger_active"`

	// OmitInValueList adds a second argument to template.match(value,
	// TRUE) inside select-case matches, so `*` behaves as
	// "omit-in-value-list".
	OmitInValueList bool `yaml:"omit_in_value_list"`

	Codecs CodecFlags `yaml:"codecs"`
}

// CodecFlags is the per-codec enable set that gates which encode/decode
// entry points the L1 emitters produce.
type CodecFlags struct {
	BER  bool `yaml:"enable_ber"`
	RAW  bool `yaml:"enable_raw"`
	TEXT bool `yaml:"enable_text"`
	XER  bool `yaml:"enable_xer"`
	JSON bool `yaml:"enable_json"`
}

// Default returns the conservative default configuration: runtime-1
// redirects, debugger off, TEXT/RAW codecs enabled (the two every TTCN-3
// toolchain ships), BER/XER/JSON opt-in.
func Default() Options {
	return Options{
		UseRuntime2: false,
		Codecs:      CodecFlags{RAW: true, TEXT: true},
	}
}

// Load reads a YAML configuration file (ttcn3gen.yaml) and overlays it on
// top of Default(); a missing file is not an error, callers get the
// defaults back unchanged.
func Load(path string) (Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return opts, nil
	}
	if err != nil {
		return opts, fmt.Errorf("genopts: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("genopts: parsing %s: %w", path, err)
	}
	return opts, nil
}
