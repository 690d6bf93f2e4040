package main

// Notes:
// - runMain/runConvert: we drive the CLI through Environment with a fake
//   Converter, so no browser is needed. Outputs go to t.TempDir().
// - Per-file failures (missing source, render error) keep exit code 0.
// - Tests that depend on the working directory use t.Chdir() and cannot
//   run in parallel.
// These are acceptable gaps: the real Converter is tested in the root package.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	skillsheet "github.com/alnah/go-skillsheet"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

// fakeConverter records calls and returns the format name as content.
type fakeConverter struct {
	mu     sync.Mutex
	calls  []string
	err    error
	closed bool
	sheet  *skillsheet.SkillSheet
	onCall func() // runs after each conversion is recorded
}

func (f *fakeConverter) record(format string, input skillsheet.Input) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, format)
	if f.onCall != nil {
		f.onCall()
	}
	if f.err != nil {
		return nil, f.err
	}
	return []byte(format + ":" + input.Markdown), nil
}

func (f *fakeConverter) Extract(skillsheet.Input) *skillsheet.SkillSheet {
	if f.sheet != nil {
		return f.sheet
	}
	return &skillsheet.SkillSheet{BasicInfo: skillsheet.NewKeyValues()}
}

func (f *fakeConverter) ToWorkbook(_ context.Context, in skillsheet.Input) ([]byte, error) {
	return f.record("xlsx", in)
}

func (f *fakeConverter) ToDocument(_ context.Context, in skillsheet.Input) ([]byte, error) {
	return f.record("docx", in)
}

func (f *fakeConverter) ToHTML(_ context.Context, in skillsheet.Input) ([]byte, error) {
	return f.record("html", in)
}

func (f *fakeConverter) ToPDF(_ context.Context, in skillsheet.Input) ([]byte, error) {
	return f.record("pdf", in)
}

func (f *fakeConverter) Close() error {
	f.closed = true
	return nil
}

// testEnv returns an Environment backed by conv and captured writers.
func testEnv(conv Converter, newErr error) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	env := &Environment{
		Now:    func() time.Time { return now },
		Stdout: &stdout,
		Stderr: &stderr,
		NewConverter: func(...skillsheet.Option) (Converter, error) {
			if newErr != nil {
				return nil, newErr
			}
			return conv, nil
		},
	}
	return env, &stdout, &stderr
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// ---------------------------------------------------------------------------
// TestRunConvert - Conversion commands
// ---------------------------------------------------------------------------

func TestRunConvert(t *testing.T) {
	t.Parallel()

	t.Run("writes output next to the source", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := writeSource(t, dir, "HM.md", "# sheet")
		conv := &fakeConverter{}
		env, stdout, _ := testEnv(conv, nil)

		code := runMain(context.Background(), []string{"skillsheet", "xlsx", src}, env)

		if code != ExitSuccess {
			t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
		}
		out := filepath.Join(dir, "HM.xlsx")
		if got := readOutput(t, out); got != "xlsx:# sheet" {
			t.Errorf("output = %q, want %q", got, "xlsx:# sheet")
		}
		if !strings.Contains(stdout.String(), "Created "+out) {
			t.Errorf("stdout = %q, want Created line", stdout.String())
		}
		if !conv.closed {
			t.Error("converter was not closed")
		}
	})

	t.Run("output dir is created", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := writeSource(t, dir, "README.md", "text")
		outDir := filepath.Join(dir, "out", "nested")
		env, _, _ := testEnv(&fakeConverter{}, nil)

		code := runMain(context.Background(), []string{"skillsheet", "docx", "-o", outDir, src}, env)

		if code != ExitSuccess {
			t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
		}
		if got := readOutput(t, filepath.Join(outDir, "README.docx")); got != "docx:text" {
			t.Errorf("output = %q", got)
		}
	})

	t.Run("missing file is reported and skipped", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := writeSource(t, dir, "HM.md", "x")
		missing := filepath.Join(dir, "missing.md")
		conv := &fakeConverter{}
		env, stdout, stderr := testEnv(conv, nil)

		code := runMain(context.Background(), []string{"skillsheet", "html", missing, src}, env)

		if code != ExitSuccess {
			t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(stderr.String(), "file not found: "+missing) {
			t.Errorf("stderr = %q, want file not found line", stderr.String())
		}
		if len(conv.calls) != 1 {
			t.Errorf("calls = %v, want one html call", conv.calls)
		}
		if !strings.Contains(stdout.String(), "1 succeeded, 1 failed") {
			t.Errorf("stdout = %q, want summary", stdout.String())
		}
	})

	t.Run("render failure is reported and skipped", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := writeSource(t, dir, "HM.md", "x")
		env, _, stderr := testEnv(&fakeConverter{err: errors.New("boom")}, nil)

		code := runMain(context.Background(), []string{"skillsheet", "docx", src}, env)

		if code != ExitSuccess {
			t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(stderr.String(), "FAILED "+src+": boom") {
			t.Errorf("stderr = %q, want FAILED line", stderr.String())
		}
		if _, err := os.Stat(filepath.Join(dir, "HM.docx")); !os.IsNotExist(err) {
			t.Errorf("output should not exist, stat err = %v", err)
		}
	})

	t.Run("browser failure gets a hint", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := writeSource(t, dir, "HM.md", "x")
		env, _, stderr := testEnv(&fakeConverter{err: skillsheet.ErrBrowserConnect}, nil)

		code := runMain(context.Background(), []string{"skillsheet", "pdf", src}, env)

		if code != ExitSuccess {
			t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(stderr.String(), "skillsheet doctor") {
			t.Errorf("stderr = %q, want doctor hint", stderr.String())
		}
	})

	t.Run("all runs xlsx, docx and html", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := writeSource(t, dir, "HM.md", "x")
		conv := &fakeConverter{}
		env, _, _ := testEnv(conv, nil)

		code := runMain(context.Background(), []string{"skillsheet", "all", src}, env)

		if code != ExitSuccess {
			t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
		}
		want := []string{"xlsx", "docx", "html"}
		if strings.Join(conv.calls, ",") != strings.Join(want, ",") {
			t.Errorf("calls = %v, want %v", conv.calls, want)
		}
		for _, ext := range want {
			if _, err := os.Stat(filepath.Join(dir, "HM."+ext)); err != nil {
				t.Errorf("missing HM.%s: %v", ext, err)
			}
		}
	})

	t.Run("quiet prints nothing on success", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := writeSource(t, dir, "HM.md", "x")
		env, stdout, _ := testEnv(&fakeConverter{}, nil)

		code := runMain(context.Background(), []string{"skillsheet", "xlsx", "-q", src}, env)

		if code != ExitSuccess {
			t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
		}
		if stdout.Len() != 0 {
			t.Errorf("stdout = %q, want empty", stdout.String())
		}
	})

	t.Run("cancelled context stops before converting", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := writeSource(t, dir, "HM.md", "x")
		conv := &fakeConverter{}
		env, _, _ := testEnv(conv, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		code := runMain(ctx, []string{"skillsheet", "xlsx", src}, env)

		if code != ExitGeneral {
			t.Errorf("exit code = %d, want %d", code, ExitGeneral)
		}
		if len(conv.calls) != 0 {
			t.Errorf("calls = %v, want none", conv.calls)
		}
	})

	t.Run("cancelled mid run reports finished files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		first := writeSource(t, dir, "a.md", "x")
		second := writeSource(t, dir, "b.md", "y")
		missing := filepath.Join(dir, "missing.md")

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		conv := &fakeConverter{onCall: cancel}
		env, stdout, stderr := testEnv(conv, nil)

		code := runMain(ctx, []string{"skillsheet", "xlsx", missing, first, second}, env)

		if code != ExitGeneral {
			t.Errorf("exit code = %d, want %d", code, ExitGeneral)
		}
		if len(conv.calls) != 1 {
			t.Errorf("calls = %v, want one", conv.calls)
		}
		if !strings.Contains(stdout.String(), "Created "+filepath.Join(dir, "a.xlsx")) {
			t.Errorf("stdout = %q, want Created line for the finished file", stdout.String())
		}
		if !strings.Contains(stderr.String(), "file not found: "+missing) {
			t.Errorf("stderr = %q, want missing file reported", stderr.String())
		}
		if strings.Contains(stdout.String(), "b.xlsx") {
			t.Errorf("stdout = %q, second file should not be converted", stdout.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunConvert_SetupErrors - Failures before any file is converted
// ---------------------------------------------------------------------------

func TestRunConvert_SetupErrors(t *testing.T) {
	t.Parallel()

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv(&fakeConverter{}, nil)
		code := runMain(context.Background(), []string{"skillsheet", "xlsx", "--nope"}, env)

		if code != ExitUsage {
			t.Errorf("exit code = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "usage error") {
			t.Errorf("stderr = %q, want usage error", stderr.String())
		}
	})

	t.Run("missing config", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "nope.yaml")
		env, _, stderr := testEnv(&fakeConverter{}, nil)
		code := runMain(context.Background(), []string{"skillsheet", "docx", "-c", missing, "a.md"}, env)

		if code != ExitUsage {
			t.Errorf("exit code = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "hint:") {
			t.Errorf("stderr = %q, want hint", stderr.String())
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv(nil, skillsheet.ErrStyleNotFound)
		code := runMain(context.Background(), []string{"skillsheet", "html", "--style", "fancy", "a.md"}, env)

		if code != ExitUsage {
			t.Errorf("exit code = %d, want %d", code, ExitUsage)
		}
		if !strings.Contains(stderr.String(), "available: compact, print") {
			t.Errorf("stderr = %q, want style list", stderr.String())
		}
	})

	t.Run("help flag", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv(&fakeConverter{}, nil)
		code := runMain(context.Background(), []string{"skillsheet", "pdf", "--help"}, env)

		if code != ExitSuccess {
			t.Errorf("exit code = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(stdout.String(), "--timeout") {
			t.Errorf("stdout = %q, want pdf flags", stdout.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunConvert_DefaultInputs - Configured inputs without file arguments
// ---------------------------------------------------------------------------

func TestRunConvert_DefaultInputs(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "HM_スキルシート.md", "sheet")
	t.Chdir(dir)

	t.Run("xlsx uses the workbook list", func(t *testing.T) {
		conv := &fakeConverter{}
		env, _, stderr := testEnv(conv, nil)

		code := runMain(context.Background(), []string{"skillsheet", "xlsx"}, env)

		if code != ExitSuccess {
			t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
		}
		if len(conv.calls) != 1 {
			t.Errorf("calls = %v, want one", conv.calls)
		}
		if stderr.Len() != 0 {
			t.Errorf("stderr = %q, want empty", stderr.String())
		}
	})

	t.Run("docx reports the missing README", func(t *testing.T) {
		conv := &fakeConverter{}
		env, _, stderr := testEnv(conv, nil)

		code := runMain(context.Background(), []string{"skillsheet", "docx"}, env)

		if code != ExitSuccess {
			t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
		}
		if !strings.Contains(stderr.String(), "file not found: README.md") {
			t.Errorf("stderr = %q, want README.md not found", stderr.String())
		}
		if _, err := os.Stat(filepath.Join(dir, "HM_スキルシート.docx")); err != nil {
			t.Errorf("missing docx output: %v", err)
		}
	})
}

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
		{"no command", []string{"skillsheet"}, ExitUsage, "", "Usage: skillsheet"},
		{"unknown command", []string{"skillsheet", "convert"}, ExitUsage, "", "unknown command: convert"},
		{"version", []string{"skillsheet", "version"}, ExitSuccess, "skillsheet dev", ""},
		{"help", []string{"skillsheet", "help"}, ExitSuccess, "Commands:", ""},
		{"dash help", []string{"skillsheet", "--help"}, ExitSuccess, "Commands:", ""},
		{"help command", []string{"skillsheet", "help", "inspect"}, ExitSuccess, "--format", ""},
		{"help unknown", []string{"skillsheet", "help", "nope"}, ExitUsage, "", "unknown command: nope"},
		{"completion usage", []string{"skillsheet", "completion"}, ExitSuccess, "Supported shells", ""},
		{"completion unknown shell", []string{"skillsheet", "completion", "tcsh"}, ExitUsage, "", "unsupported shell"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(&fakeConverter{}, nil)
			code := runMain(context.Background(), tt.args, env)

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestStepsFor - Command to output format mapping
// ---------------------------------------------------------------------------

func TestStepsFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		command string
		want    string
	}{
		{cmdXLSX, "xlsx"},
		{cmdDOCX, "docx"},
		{cmdHTML, "html"},
		{cmdPDF, "pdf"},
		{cmdAll, "xlsx,docx,html"},
		{cmdInspect, ""},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			t.Parallel()

			var exts []string
			for _, s := range stepsFor(tt.command) {
				exts = append(exts, s.ext)
			}
			if got := strings.Join(exts, ","); got != tt.want {
				t.Errorf("stepsFor(%q) = %q, want %q", tt.command, got, tt.want)
			}
		})
	}
}
