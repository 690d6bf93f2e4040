package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"
)

// ErrUsage wraps flag parsing and argument errors.
var ErrUsage = errors.New("usage error")

// Inspect output formats.
const (
	formatYAML = "yaml"
	formatText = "text"
)

// commonFlags holds flags shared by every conversion command.
type commonFlags struct {
	config    string
	quiet     bool
	verbose   bool
	logFormat string
}

// outputFlags holds output location flags.
type outputFlags struct {
	dir string
}

// styleFlags holds HTML styling flags.
type styleFlags struct {
	style     string
	assetPath string
}

// pdfFlags holds PDF rendering flags.
type pdfFlags struct {
	timeout time.Duration
}

// inspectFlags holds flags for the inspect command.
type inspectFlags struct {
	format string
}

// cliFlags holds the parsed flags of one command. Groups a command does not
// register keep their zero values.
type cliFlags struct {
	common  commonFlags
	output  outputFlags
	style   styleFlags
	pdf     pdfFlags
	inspect inspectFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log skipped sections and entries")
	fs.StringVar(&f.logFormat, "log-format", "", "diagnostic log format: console, json")
}

// addOutputFlags adds output location flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output-dir", "o", "", "output directory (default: next to the source)")
}

// addStyleFlags adds HTML styling flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addPDFFlags adds PDF rendering flags to a FlagSet.
func addPDFFlags(fs *flag.FlagSet, f *pdfFlags) {
	fs.DurationVarP(&f.timeout, "timeout", "t", 0, "PDF page load timeout (e.g., 30s, 2m)")
}

// addInspectFlags adds inspect flags to a FlagSet.
func addInspectFlags(fs *flag.FlagSet, f *inspectFlags) {
	fs.StringVar(&f.format, "format", formatYAML, "output format: yaml, text")
}

// newFlagSet registers the flags a command accepts.
func newFlagSet(command string, f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	addCommonFlags(fs, &f.common)
	switch command {
	case cmdInspect:
		addInspectFlags(fs, &f.inspect)
	case cmdXLSX, cmdDOCX:
		addOutputFlags(fs, &f.output)
	case cmdHTML, cmdAll:
		addOutputFlags(fs, &f.output)
		addStyleFlags(fs, &f.style)
	case cmdPDF:
		addOutputFlags(fs, &f.output)
		addStyleFlags(fs, &f.style)
		addPDFFlags(fs, &f.pdf)
	}
	return fs
}

// parseCommandFlags parses the flags of command and returns positional args.
func parseCommandFlags(command string, args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := newFlagSet(command, f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrUsage, command, err)
	}

	if f.common.quiet && f.common.verbose {
		return nil, nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}
	if f.pdf.timeout < 0 {
		return nil, nil, fmt.Errorf("%w: --timeout must be positive", ErrUsage)
	}
	switch f.inspect.format {
	case "", formatYAML, formatText:
	default:
		return nil, nil, fmt.Errorf("%w: --format %q (must be yaml or text)", ErrUsage, f.inspect.format)
	}

	return f, fs.Args(), nil
}
