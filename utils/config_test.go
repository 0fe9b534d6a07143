package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseArgs(t *testing.T) {
	config, err := ParseArgs([]string{"gol", "table64x64.bin", "64", "100"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if config.InputPath != "table64x64.bin" || config.Size != 64 || config.Generations != 100 {
		t.Fatalf("unexpected config: %+v", config)
	}
}

func TestParseArgsWrongCountIsFatal(t *testing.T) {
	for _, args := range [][]string{
		{"gol"},
		{"gol", "table.bin"},
		{"gol", "table.bin", "64"},
		{"gol", "table.bin", "64", "100", "extra"},
	} {
		if _, err := ParseArgs(args); err == nil {
			t.Errorf("ParseArgs(%v) succeeded, want usage error", args)
		}
	}
}

func TestParseArgsGarbageNumbersPassThrough(t *testing.T) {
	config, err := ParseArgs([]string{"gol", "table.bin", "not-a-number", "also-not"})
	if err != nil {
		t.Fatalf("malformed numbers should not fail usage validation: %v", err)
	}
	if config.Size != 0 || config.Generations != 0 {
		t.Fatalf("garbage numbers parsed as %d/%d, want 0/0", config.Size, config.Generations)
	}
}

func TestLoadOptionsMissingFileFallsBack(t *testing.T) {
	opts, err := LoadOptions(filepath.Join(t.TempDir(), "gol.json"))
	if err == nil {
		t.Fatal("expected error for missing options file")
	}
	if opts != DefaultOptions() {
		t.Fatalf("fallback options = %+v, want defaults", opts)
	}
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gol.json")
	data := `{"preview_size": 8, "report_timing": false, "output_dir": "out"}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if opts.PreviewSize != 8 || opts.ReportTiming || opts.OutputDir != "out" {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestLoadOptionsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gol.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOptions(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestWarningString(t *testing.T) {
	w := Warnf("ReadBoard", "expected to read %d elements, read %d", 16, 5)
	want := "Warning: [ReadBoard] expected to read 16 elements, read 5"
	if got := w.String(); got != want {
		t.Errorf("Warning.String() = %q, want %q", got, want)
	}
}
