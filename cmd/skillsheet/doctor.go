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
	"slices"
	"strings"

	"github.com/go-rod/rod/lib/launcher"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-skillsheet/internal/assets"
	"github.com/alnah/go-skillsheet/internal/config"
	"github.com/alnah/go-skillsheet/internal/fileutil"
)

// Doctor status values.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult is the report printed by the doctor command.
type doctorResult struct {
	Status   string         `json:"status"`
	Formats  []formatStatus `json:"formats"`
	Inputs   []inputStatus  `json:"default_inputs"`
	Chrome   chromeInfo     `json:"chrome"`
	Env      envInfo        `json:"environment"`
	System   systemInfo     `json:"system"`
	Styles   []string       `json:"styles"`
	Warnings []string       `json:"warnings,omitempty"`
	Errors   []string       `json:"errors,omitempty"`
}

// formatStatus tells whether one output format can be produced.
type formatStatus struct {
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
}

// inputStatus tells whether a default source file exists in the working
// directory.
type inputStatus struct {
	Path  string `json:"path"`
	Found bool   `json:"found"`
}

type chromeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	NoSandbox     string `json:"rod_no_sandbox"`
	BrowserBin    string `json:"rod_browser_bin"`
}

type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

func (r *doctorResult) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *doctorResult) fail(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// runDoctorCmd executes the doctor command and returns an exit code.
// A missing Chrome only disables pdf, so it is a warning; an unwritable
// temp directory blocks every format and is an error.
func runDoctorCmd(args []string, env *Environment) int {
	var jsonOutput bool
	fs := newDoctorFlagSet(&jsonOutput)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printCommandUsage(env.Stdout, cmdDoctor)
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "%v: doctor: %v\n", ErrUsage, err)
		return ExitUsage
	}

	result := runDoctor()

	if jsonOutput {
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

func newDoctorFlagSet(jsonOutput *bool) *flag.FlagSet {
	fs := flag.NewFlagSet(cmdDoctor, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(jsonOutput, "json", false, "print the result as JSON")
	return fs
}

// runDoctor runs every check and derives the overall status.
func runDoctor() *doctorResult {
	r := &doctorResult{
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  os.Getenv("ROD_NO_SANDBOX"),
			BrowserBin: os.Getenv("ROD_BROWSER_BIN"),
		},
		Styles: assets.StyleNames(),
	}

	checkChrome(r)
	checkEnvironment(r)
	checkTempDir(r)
	checkDefaultInputs(r)

	tempOK := r.System.TempWritable
	r.Formats = []formatStatus{
		{Name: cmdXLSX, Ready: true},
		{Name: cmdDOCX, Ready: true},
		{Name: cmdHTML, Ready: true},
		{Name: cmdPDF, Ready: tempOK && r.Chrome.Found},
	}

	switch {
	case len(r.Errors) > 0:
		r.Status = statusErrors
	case len(r.Warnings) > 0:
		r.Status = statusWarnings
	default:
		r.Status = statusReady
	}
	return r
}

// checkChrome finds the browser used for pdf: ROD_BROWSER_BIN when set,
// otherwise go-rod's lookup.
func checkChrome(r *doctorResult) {
	path := r.Env.BrowserBin
	if path == "" {
		var found bool
		if path, found = launcher.LookPath(); !found {
			r.warn("Chrome/Chromium not found; pdf is unavailable. Install Chrome or set ROD_BROWSER_BIN")
			return
		}
	}
	if !fileutil.FileExists(path) {
		r.warn("Chrome not found at %s; pdf is unavailable", path)
		return
	}

	r.Chrome.Found = true
	r.Chrome.Path = path
	r.Chrome.Sandbox = r.Env.NoSandbox != "1"

	out, err := exec.Command(path, "--version").Output() // #nosec G204 -- path from launcher or ROD_BROWSER_BIN
	if err != nil {
		r.warn("Could not get Chrome version: %v", err)
		return
	}
	r.Chrome.Version = strings.TrimSpace(string(out))
}

// ciVariables are set by common CI services.
var ciVariables = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}

func checkEnvironment(r *doctorResult) {
	r.Env.Container, r.Env.ContainerHint = isContainer()
	r.Env.CI = slices.ContainsFunc(ciVariables, func(v string) bool { return os.Getenv(v) != "" })

	if (r.Env.Container || r.Env.CI) && r.Env.NoSandbox != "1" {
		r.warn("Container/CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1")
	}
}

// isContainer reports whether a container was detected and by which signal.
func isContainer() (bool, string) {
	if os.Getenv("SKILLSHEET_CONTAINER") == "1" {
		return true, "SKILLSHEET_CONTAINER=1"
	}
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true, "/.dockerenv"
	}
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkTempDir verifies the directory the pdf renderer writes HTML to.
func checkTempDir(r *doctorResult) {
	dir := os.TempDir()
	probe := filepath.Join(dir, "skillsheet-doctor-test")
	if err := os.WriteFile(probe, []byte("ok"), 0o600); err != nil {
		r.fail("Temp directory not writable: %s", dir)
		return
	}
	_ = os.Remove(probe)
	r.System.TempWritable = true
}

// checkDefaultInputs looks for the files converted when no path is given.
func checkDefaultInputs(r *doctorResult) {
	def := config.DefaultConfig().Inputs
	paths := slices.Clone(def.Files)
	for _, p := range def.Workbook {
		if !slices.Contains(paths, p) {
			paths = append(paths, p)
		}
	}

	missing := 0
	for _, p := range paths {
		found := fileutil.FileExists(p)
		if !found {
			missing++
		}
		r.Inputs = append(r.Inputs, inputStatus{Path: p, Found: found})
	}
	if missing == len(paths) {
		r.warn("No default input in the working directory; pass file paths explicitly")
	}
}

// printDoctorResult writes the report in sections.
func printDoctorResult(w io.Writer, r *doctorResult) {
	line := func(tag, format string, args ...any) {
		fmt.Fprintf(w, "  [%s] %s\n", tag, fmt.Sprintf(format, args...))
	}

	fmt.Fprintln(w, "skillsheet doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Formats")
	for _, f := range r.Formats {
		if f.Ready {
			line("OK", "%s", f.Name)
		} else {
			line("WARN", "%s: unavailable", f.Name)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Default inputs")
	for _, in := range r.Inputs {
		if in.Found {
			line("OK", "%s", in.Path)
		} else {
			line("--", "%s: not found", in.Path)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Chrome/Chromium (pdf)")
	if r.Chrome.Found {
		line("OK", "Found at %s", r.Chrome.Path)
		if r.Chrome.Version != "" {
			line("OK", "Version: %s", r.Chrome.Version)
		}
		if r.Chrome.Sandbox {
			line("OK", "Sandbox: enabled")
		} else {
			line("OK", "Sandbox: disabled (ROD_NO_SANDBOX=1)")
		}
	} else {
		line("WARN", "Not found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	line("OK", "Platform: %s/%s", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		line("OK", "Container: detected (%s)", r.Env.ContainerHint)
	}
	if r.Env.CI {
		line("OK", "CI: detected")
	}
	if r.System.TempWritable {
		line("OK", "Temp directory: writable")
	} else {
		line("ERROR", "Temp directory: not writable")
	}
	line("OK", "Embedded styles: %s", strings.Join(r.Styles, ", "))
	fmt.Fprintln(w)

	for _, group := range []struct {
		title, tag string
		items      []string
	}{
		{"Warnings:", "WARN", r.Warnings},
		{"Errors:", "ERROR", r.Errors},
	} {
		if len(group.items) == 0 {
			continue
		}
		fmt.Fprintln(w, group.title)
		for _, item := range group.items {
			line(group.tag, "%s", item)
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
