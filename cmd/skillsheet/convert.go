package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	skillsheet "github.com/alnah/go-skillsheet"
	"github.com/alnah/go-skillsheet/internal/assets"
	"github.com/alnah/go-skillsheet/internal/config"
	"github.com/alnah/go-skillsheet/internal/fileutil"
	"github.com/alnah/go-skillsheet/internal/hints"
	"github.com/alnah/go-skillsheet/internal/logging"
)

// ErrOutputDir is returned when the output directory cannot be created.
var ErrOutputDir = errors.New("cannot create output directory")

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// renderFunc produces one output format from a converter.
type renderFunc func(c Converter, ctx context.Context, input skillsheet.Input) ([]byte, error)

// step is one output format of a run.
type step struct {
	ext      string
	render   renderFunc
	workbook bool // defaults to the workbook input list
}

var (
	stepXLSX = step{ext: "xlsx", render: Converter.ToWorkbook, workbook: true}
	stepDOCX = step{ext: "docx", render: Converter.ToDocument}
	stepHTML = step{ext: "html", render: Converter.ToHTML}
	stepPDF  = step{ext: "pdf", render: Converter.ToPDF}
)

// stepsFor returns the steps run by a conversion command.
func stepsFor(command string) []step {
	switch command {
	case cmdXLSX:
		return []step{stepXLSX}
	case cmdDOCX:
		return []step{stepDOCX}
	case cmdHTML:
		return []step{stepHTML}
	case cmdPDF:
		return []step{stepPDF}
	case cmdAll:
		return []step{stepXLSX, stepDOCX, stepHTML}
	}
	return nil
}

// conversionResult is the outcome of one file and one step.
type conversionResult struct {
	InputPath  string
	OutputPath string
	Missing    bool
	Err        error
	Duration   time.Duration
}

// runConvert runs a conversion command. Errors returned here happen before
// any file is converted; per-file failures are reported and skipped.
func runConvert(ctx context.Context, command string, args []string, env *Environment) error {
	flags, files, err := parseCommandFlags(command, args)
	if err != nil {
		return err
	}

	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig(env.Stderr)

	cfg, err := loadConfig(flags, envCfg)
	if err != nil {
		return withHint(err, flags, envCfg)
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Out:    env.Stderr,
	})
	if err != nil {
		return err
	}

	opts, err := converterOptions(cfg, logger)
	if err != nil {
		return err
	}

	conv, err := env.NewConverter(opts...)
	if err != nil {
		return withHint(err, flags, envCfg)
	}
	defer func() { _ = conv.Close() }()

	if cfg.Output.Dir != "" {
		if err := os.MkdirAll(cfg.Output.Dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v%s", ErrOutputDir, err, hints.ForOutputDirectory())
		}
	}

	var results []conversionResult
	for _, s := range stepsFor(command) {
		inputs := files
		if len(inputs) == 0 {
			inputs = defaultInputs(s, cfg)
		}
		for _, path := range inputs {
			if err := ctx.Err(); err != nil {
				printResults(results, flags.common.quiet, flags.common.verbose, env)
				return err
			}
			results = append(results, convertFile(ctx, conv, s, path, cfg.Output.Dir, env))
		}
	}

	printResults(results, flags.common.quiet, flags.common.verbose, env)
	return nil
}

// defaultInputs returns the configured inputs used when no file is given.
func defaultInputs(s step, cfg *config.Config) []string {
	if s.workbook {
		return cfg.Inputs.Workbook
	}
	return cfg.Inputs.Files
}

// convertFile converts one source file to one output format.
func convertFile(ctx context.Context, conv Converter, s step, path, outputDir string, env *Environment) (result conversionResult) {
	start := env.Now()
	result.InputPath = path
	defer func() { result.Duration = env.Now().Sub(start) }()

	content, err := os.ReadFile(path) // #nosec G304 -- user-provided input path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.Missing = true
			return result
		}
		result.Err = fmt.Errorf("reading source: %w", err)
		return result
	}

	out, err := fileutil.OutputPath(path, outputDir, s.ext)
	if err != nil {
		result.Err = err
		return result
	}
	result.OutputPath = out

	data, err := s.render(conv, ctx, skillsheet.Input{
		Markdown:  string(content),
		SourceDir: filepath.Dir(path),
	})
	if err != nil {
		result.Err = err
		return result
	}

	// #nosec G306 -- outputs are meant to be readable
	if err := os.WriteFile(out, data, filePermissions); err != nil {
		result.Err = fmt.Errorf("writing %s: %w", out, err)
		return result
	}
	return result
}

// printResults reports each result. Missing sources and failures go to
// stderr and never change the exit code.
func printResults(results []conversionResult, quiet, verbose bool, env *Environment) {
	var succeeded, failed int

	for _, r := range results {
		switch {
		case r.Missing:
			failed++
			fmt.Fprintf(env.Stderr, "file not found: %s\n", r.InputPath)
		case r.Err != nil:
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintForFailure(r.Err))
		default:
			succeeded++
			if quiet {
				continue
			}
			if verbose {
				fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
			} else {
				fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
			}
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}
}

// hintForFailure returns a hint for a per-file conversion error.
func hintForFailure(err error) string {
	switch {
	case errors.Is(err, skillsheet.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, skillsheet.ErrPageLoad):
		return hints.ForTimeout()
	}
	return ""
}

// withHint appends a hint to a setup error.
func withHint(err error, flags *cliFlags, env *envConfig) error {
	var hint string
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		name := flags.common.config
		if name == "" {
			name = env.ConfigPath
		}
		hint = hints.ForConfigNotFound(configSearchPaths(name))
	case errors.Is(err, skillsheet.ErrStyleNotFound):
		hint = hints.ForStyleNotFound(assets.StyleNames())
	case errors.Is(err, skillsheet.ErrInvalidVocabulary):
		hint = hints.ForVocabulary()
	case errors.Is(err, skillsheet.ErrInvalidSheet):
		hint = hints.ForSheetName()
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}

// configSearchPaths lists where a config name is looked up.
func configSearchPaths(name string) []string {
	if fileutil.IsFilePath(name) {
		return []string{name}
	}
	paths := []string{name + ".yaml", name + ".yml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths,
			filepath.Join(dir, "go-skillsheet", name+".yaml"),
			filepath.Join(dir, "go-skillsheet", name+".yml"))
	}
	return paths
}
