package main

import (
	"fmt"
	"io"
)

// commandSummary is one line of the command list.
type commandSummary struct {
	Name string
	Desc string
}

// commandSummaries lists the commands in help order.
var commandSummaries = []commandSummary{
	{cmdXLSX, "Extract the skill sheet into an Excel workbook"},
	{cmdDOCX, "Convert markdown to a Word document"},
	{cmdHTML, "Convert markdown to a styled HTML page"},
	{cmdPDF, "Convert markdown to PDF with headless Chrome"},
	{cmdAll, "Run xlsx, docx and html"},
	{cmdInspect, "Print the extracted records"},
	{cmdDoctor, "Check the PDF environment"},
	{cmdCompletion, "Generate shell completion script"},
	{cmdVersion, "Show version information"},
	{cmdHelp, "Show help for a command"},
}

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: skillsheet <command> [flags] [files...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range commandSummaries {
		fmt.Fprintf(w, "  %-12s %s\n", c.Name, c.Desc)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without files, the inputs listed in the config are converted")
	fmt.Fprintln(w, "(default: HM_スキルシート.md and README.md; xlsx uses HM_スキルシート.md only).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'skillsheet help <command>' for details on a specific command.")
}

// runHelp handles "skillsheet help [command]".
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if !isCommand(args[0]) {
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	printCommandUsage(env.Stdout, args[0])
	return ExitSuccess
}

// printCommandUsage prints the usage of one command. Flag lines come from the
// command's FlagSet.
func printCommandUsage(w io.Writer, command string) {
	switch command {
	case cmdXLSX, cmdDOCX, cmdHTML, cmdPDF, cmdAll:
		fmt.Fprintf(w, "Usage: skillsheet %s [flags] [files...]\n", command)
		fmt.Fprintln(w)
		fmt.Fprintln(w, summaryFor(command)+".")
		fmt.Fprintln(w, "Outputs are written next to each source unless --output-dir is set.")
		fmt.Fprintln(w)
		printFlags(w, command)
		printEnvironment(w, command)
	case cmdInspect:
		fmt.Fprintln(w, "Usage: skillsheet inspect [flags] [files...]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Print the records extracted from each file without writing outputs.")
		fmt.Fprintln(w)
		printFlags(w, command)
	case cmdDoctor:
		fmt.Fprintln(w, "Usage: skillsheet doctor [--json]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Check Chrome, container/CI settings, temp directory and embedded styles.")
	case cmdCompletion:
		printCompletionUsage(w)
	case cmdVersion:
		fmt.Fprintln(w, "Usage: skillsheet version")
	case cmdHelp:
		fmt.Fprintln(w, "Usage: skillsheet help [command]")
	}
}

func summaryFor(command string) string {
	for _, c := range commandSummaries {
		if c.Name == command {
			return c.Desc
		}
	}
	return ""
}

// printFlags prints the flags registered for command.
func printFlags(w io.Writer, command string) {
	fs := newFlagSet(command, &cliFlags{})
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}

// printEnvironment lists the environment variables a command reads.
func printEnvironment(w io.Writer, command string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SKILLSHEET_CONFIG        config file name or path")
	fmt.Fprintln(w, "  SKILLSHEET_OUTPUT_DIR    output directory")
	switch command {
	case cmdHTML, cmdPDF, cmdAll:
		fmt.Fprintln(w, "  SKILLSHEET_STYLE         CSS style name or path")
	}
	if command == cmdPDF {
		fmt.Fprintln(w, "  SKILLSHEET_TIMEOUT       PDF page load timeout")
		fmt.Fprintln(w, "  ROD_BROWSER_BIN          Chrome binary")
		fmt.Fprintln(w, "  ROD_NO_SANDBOX=1         disable the Chrome sandbox (Docker/CI)")
	}
}
