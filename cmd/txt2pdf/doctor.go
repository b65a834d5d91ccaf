package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	flag "github.com/spf13/pflag"

	txt2pdf "github.com/alnah/go-txt2pdf"
	"github.com/alnah/go-txt2pdf/internal/fileutil"
	"github.com/alnah/go-txt2pdf/internal/hints"
)

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"`
	Chrome   chromeInfo `json:"chrome"`
	Fallback fontInfo   `json:"fallback"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// chromeInfo holds Chrome/Chromium detection results.
type chromeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Source  string `json:"source,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

// fontInfo describes the font the basic renderer would use.
type fontInfo struct {
	Font string `json:"font"`
	Path string `json:"path,omitempty"`
	OK   bool   `json:"ok"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	Container  bool   `json:"container"`
	CI         bool   `json:"ci"`
	NoSandbox  string `json:"rod_no_sandbox"`
	BrowserBin string `json:"rod_browser_bin"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad flags.
func runDoctorCmd(args []string, env *Environment) int {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	jsonOutput := fs.Bool("json", false, "print results as JSON")
	fontName := fs.String("fallback-font", os.Getenv("TXT2PDF_FALLBACK_FONT"), "check this basic renderer font")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printDoctorUsage(env.Stdout)
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v: %v%s\n", ErrInvalidFlags, err, hints.ForUsage("doctor"))
		return ExitUsage
	}

	result := runDoctor(env.Prober, *fontName)

	if *jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(prober txt2pdf.Prober, fontName string) *doctorResult {
	result := &doctorResult{
		Status: statusReady,
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  os.Getenv("ROD_NO_SANDBOX"),
			BrowserBin: os.Getenv("ROD_BROWSER_BIN"),
		},
	}

	checkChrome(result, prober)
	checkFallbackFont(result, fontName)
	checkEnvironment(result)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}

	return result
}

// checkChrome reports what the converter's probe would find.
func checkChrome(result *doctorResult, prober txt2pdf.Prober) {
	caps := prober.Probe()
	if !caps.BrowserFound {
		msg := "Chrome/Chromium not found. Install Chrome, set ROD_BROWSER_BIN, or run 'txt2pdf install-browser'"
		if caps.BrowserSource == txt2pdf.SourceEnv {
			msg = fmt.Sprintf("ROD_BROWSER_BIN=%s does not exist", caps.BrowserPath)
		}
		result.Errors = append(result.Errors, msg)
		return
	}

	result.Chrome.Found = true
	result.Chrome.Path = caps.BrowserPath
	result.Chrome.Source = caps.BrowserSource
	result.Chrome.Sandbox = result.Env.NoSandbox != "1" && os.Getenv("CI") != "true"

	out, err := exec.Command(caps.BrowserPath, "--version").Output() // #nosec G204 -- probed browser path
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not get Chrome version: %v", err))
		return
	}
	result.Chrome.Version = strings.TrimSpace(string(out))
}

// checkFallbackFont verifies the basic renderer's TrueType font, if one
// is configured. The core font needs no check.
func checkFallbackFont(result *doctorResult, name string) {
	if name == "" {
		result.Fallback = fontInfo{Font: "Arial (core, cp1252)", OK: true}
		return
	}

	result.Fallback.Font = name
	path, err := txt2pdf.FindFallbackFont(name)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Fallback font: %v", err))
		return
	}
	result.Fallback.Path = path
	result.Fallback.OK = true
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult) {
	result.Env.Container = hints.IsInContainer()

	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"} {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}

	if result.Env.Container && result.Env.NoSandbox != "1" {
		result.Warnings = append(result.Warnings,
			"Container detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1")
	}
}

// checkSystem verifies the temp directory used for HTML pages is writable.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, fileutil.TempPrefix+"doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Temp directory not writable: %s", tmpDir))
		return
	}
	_ = os.Remove(testFile)
	result.System.TempWritable = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "txt2pdf doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Chrome/Chromium")
	if r.Chrome.Found {
		fmt.Fprintf(w, "  [OK] Found at %s (%s)\n", r.Chrome.Path, r.Chrome.Source)
		if r.Chrome.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Chrome.Version)
		}
		if r.Chrome.Sandbox {
			fmt.Fprintln(w, "  [OK] Sandbox: enabled")
		} else {
			fmt.Fprintln(w, "  [OK] Sandbox: disabled")
		}
	} else {
		fmt.Fprintln(w, "  [ERROR] Not found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Basic renderer")
	switch {
	case r.Fallback.OK && r.Fallback.Path != "":
		fmt.Fprintf(w, "  [OK] Font: %s (%s)\n", r.Fallback.Font, r.Fallback.Path)
	case r.Fallback.OK:
		fmt.Fprintf(w, "  [OK] Font: %s\n", r.Fallback.Font)
	default:
		fmt.Fprintf(w, "  [ERROR] Font not found: %s\n", r.Fallback.Font)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintln(w, "  [OK] Container: detected")
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to convert")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
