package main

// Notes:
// - runMain: we test command dispatch and exit codes. Conversion itself is
//   covered in convert_test.go.
// - hasVerboseFlag / isCommand: argument scanning before flag parsing.
// - verboseLogger: gated output used for automaxprocs.

import (
	"context"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"version", []string{"version"}, ExitSuccess, "txt2pdf dev", ""},
		{"top-level help flag", []string{"--help"}, ExitSuccess, "Commands:", ""},
		{"help", []string{"help"}, ExitSuccess, "install-browser", ""},
		{"help convert", []string{"help", "convert"}, ExitSuccess, "--renderer", ""},
		{"help doctor", []string{"help", "doctor"}, ExitSuccess, "--json", ""},
		{"help install-browser", []string{"help", "install-browser"}, ExitSuccess, "managed Chromium", ""},
		{"help config", []string{"help", "config"}, ExitSuccess, "effective", ""},
		{"help unknown", []string{"help", "nope"}, ExitUsage, "", "Unknown command: nope"},
		{"install-browser", []string{"install-browser"}, ExitSuccess, "Browser installed: /cache/chromium/chrome", ""},
		{"install-browser extra arg", []string{"install-browser", "now"}, ExitUsage, "", "unexpected argument"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			te := newTestEnv(t)
			args := append([]string{"txt2pdf"}, tt.args...)

			code := runMain(context.Background(), args, te.Environment)

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d; stderr: %s", code, tt.wantCode, te.stderr)
			}
			if tt.wantStdout != "" && !strings.Contains(te.stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want to contain %q", te.stdout, tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(te.stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want to contain %q", te.stderr, tt.wantStderr)
			}
		})
	}
}

func TestRunMain_DefaultsToConvert(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t)
	input := writeInput(t, "x")

	for _, args := range [][]string{{"txt2pdf", input}, {"txt2pdf", "convert", input}} {
		te.stdout.Reset()
		if code := runMain(context.Background(), args, te.Environment); code != ExitSuccess {
			t.Fatalf("%v: exit code = %d; stderr: %s", args, code, te.stderr)
		}
		if !strings.Contains(te.stdout.String(), "PDF created successfully") {
			t.Errorf("%v: stdout = %q", args, te.stdout)
		}
	}
	if te.conv.calls != 2 {
		t.Errorf("Convert calls = %d, want 2", te.conv.calls)
	}
}

// ---------------------------------------------------------------------------
// TestArgScanning - Pre-parse helpers
// ---------------------------------------------------------------------------

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"txt2pdf", "-v"}, true},
		{[]string{"txt2pdf", "in.txt", "--verbose"}, true},
		{[]string{"txt2pdf", "in.txt"}, false},
		{[]string{"txt2pdf", "--", "-v"}, false},
	}

	for _, tt := range tests {
		if got := hasVerboseFlag(tt.args); got != tt.want {
			t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestIsCommand(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"convert", "doctor", "install-browser", "config", "version", "help"} {
		if !isCommand(name) {
			t.Errorf("isCommand(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"notes.txt", "-v", ""} {
		if isCommand(name) {
			t.Errorf("isCommand(%q) = true, want false", name)
		}
	}
}

func TestVerboseLogger(t *testing.T) {
	t.Parallel()

	te := newTestEnv(t)

	verboseLogger([]string{"txt2pdf"}, te.Environment)("maxprocs: %d", 4)
	if te.stderr.Len() != 0 {
		t.Errorf("quiet logger wrote %q", te.stderr)
	}

	verboseLogger([]string{"txt2pdf", "-v"}, te.Environment)("maxprocs: %d", 4)
	if te.stderr.String() != "maxprocs: 4\n" {
		t.Errorf("stderr = %q, want maxprocs: 4", te.stderr)
	}
}
