package genopts

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	opts := Default()
	if opts.UseRuntime2 {
		t.Fatalf("UseRuntime2 should default to false")
	}
	if opts.DebuggerActive {
		t.Fatalf("DebuggerActive should default to false")
	}
	if !opts.Codecs.RAW || !opts.Codecs.TEXT {
		t.Fatalf("RAW and TEXT should default to enabled: %+v", opts.Codecs)
	}
	if opts.Codecs.BER || opts.Codecs.XER || opts.Codecs.JSON {
		t.Fatalf("BER/XER/JSON should default to disabled: %+v", opts.Codecs)
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	opts, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if opts != Default() {
		t.Fatalf("got %+v, want Default()", opts)
	}
}

func TestLoadOverlaysOnDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ttcn3gen.yaml")
	const body = "use_runtime_2: true\ncodecs:\n  enable_ber: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !opts.UseRuntime2 {
		t.Fatalf("expected use_runtime_2 to be overlaid true")
	}
	if !opts.Codecs.BER {
		t.Fatalf("expected enable_ber to be overlaid true")
	}
	if !opts.Codecs.TEXT {
		t.Fatalf("expected TEXT to retain its default true (not overwritten by the YAML overlay)")
	}
}

func TestLoadInvalidYAMLReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("use_runtime_2: [not, a, bool]"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for malformed YAML")
	}
}
