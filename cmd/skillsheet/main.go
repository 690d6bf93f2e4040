package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Commands.
const (
	cmdXLSX       = "xlsx"
	cmdDOCX       = "docx"
	cmdHTML       = "html"
	cmdPDF        = "pdf"
	cmdAll        = "all"
	cmdInspect    = "inspect"
	cmdDoctor     = "doctor"
	cmdCompletion = "completion"
	cmdVersion    = "version"
	cmdHelp       = "help"
)

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches args[1] to a command and returns the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	command, rest := args[1], args[2:]

	var err error
	switch command {
	case cmdXLSX, cmdDOCX, cmdHTML, cmdPDF, cmdAll:
		err = runConvert(ctx, command, rest, env)
	case cmdInspect:
		err = runInspect(command, rest, env)
	case cmdDoctor:
		return runDoctorCmd(rest, env)
	case cmdCompletion:
		err = runCompletion(rest, env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "skillsheet %s\n", Version)
		return ExitSuccess
	case cmdHelp, "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", command)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if errors.Is(err, flag.ErrHelp) {
		printCommandUsage(env.Stdout, command)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isCommand reports whether arg names a known command.
func isCommand(arg string) bool {
	switch arg {
	case cmdXLSX, cmdDOCX, cmdHTML, cmdPDF, cmdAll, cmdInspect,
		cmdDoctor, cmdCompletion, cmdVersion, cmdHelp:
		return true
	}
	return false
}
