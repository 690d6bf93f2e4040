package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = fmt.Errorf("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string
	Short    string
	Type     flagType
	Desc     string
	Values   []string // enum values
	FileGlob string   // comma-separated globs, e.g. "*.yaml,*.yml"
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	FilePattern string   // glob for file arguments; empty if none
	Args        []string // fixed argument values
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string
	FileGlob string
	IsDir    bool
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"log-format": {Values: []string{"console", "json"}},
	"format":     {Values: []string{formatYAML, formatText}},
	"config":     {FileGlob: "*.yaml,*.yml"},
	"style":      {FileGlob: "*.css"},
	"output-dir": {IsDir: true},
	"asset-path": {IsDir: true},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
			Type:  flagString,
		}
		if f.Value.Type() == "bool" {
			fd.Type = flagBool
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSets.
func getCommands() []commandDef {
	var jsonOutput bool
	commands := make([]commandDef, 0, len(commandSummaries))

	for _, c := range commandSummaries {
		def := commandDef{Name: c.Name, Desc: c.Desc}
		switch c.Name {
		case cmdXLSX, cmdDOCX, cmdHTML, cmdPDF, cmdAll, cmdInspect:
			def.Flags = extractFlagsFromFlagSet(newFlagSet(c.Name, &cliFlags{}))
			def.FilePattern = "*.md"
		case cmdDoctor:
			def.Flags = extractFlagsFromFlagSet(newDoctorFlagSet(&jsonOutput))
		case cmdCompletion:
			def.Args = []string{string(ShellBash), string(ShellZsh), string(ShellFish)}
		case cmdHelp:
			for _, other := range commandSummaries {
				def.Args = append(def.Args, other.Name)
			}
		}
		commands = append(commands, def)
	}
	return commands
}

// GenerateCompletion writes shell completion script to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: skillsheet completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(skillsheet completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(skillsheet completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    skillsheet completion fish > ~/.config/fish/completions/skillsheet.fish")
}

// globExtensions turns "*.yaml,*.yml" into ["yaml", "yml"].
func globExtensions(globs string) []string {
	var exts []string
	for _, g := range strings.Split(globs, ",") {
		exts = append(exts, strings.TrimPrefix(strings.TrimSpace(g), "*."))
	}
	return exts
}

// flagNames returns "--long" and, when set, "-s".
func flagNames(f flagDef) []string {
	names := []string{"--" + f.Long}
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}
	return names
}

// ----------------------------------------------------------------------------
// Bash
// ----------------------------------------------------------------------------

func generateBash(w io.Writer) error {
	commands := getCommands()

	var b strings.Builder
	b.WriteString("# bash completion for skillsheet\n\n")
	b.WriteString("_skillsheet() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    COMPREPLY=()\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")

	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.Name
	}
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(names, " "))
	b.WriteString("        return 0\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"$cmd\" in\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		writeBashCommand(&b, c)
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _skillsheet skillsheet\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeBashCommand(b *strings.Builder, c commandDef) {
	if len(c.Args) > 0 {
		fmt.Fprintf(b, "            COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(c.Args, " "))
		return
	}

	var valued []string
	var all []string
	for _, f := range c.Flags {
		all = append(all, flagNames(f)...)
		if f.Type == flagBool {
			continue
		}
		var reply string
		switch f.Type {
		case flagEnum:
			reply = fmt.Sprintf("$(compgen -W %q -- \"$cur\")", strings.Join(f.Values, " "))
		case flagFile:
			reply = fmt.Sprintf("$(compgen -f -X '!*.@(%s)' -- \"$cur\")", strings.Join(globExtensions(f.FileGlob), "|"))
		case flagDir:
			reply = "$(compgen -d -- \"$cur\")"
		default:
			continue
		}
		valued = append(valued, fmt.Sprintf("                %s) COMPREPLY=( %s ); return 0 ;;\n",
			strings.Join(flagNames(f), "|"), reply))
	}

	if len(valued) > 0 {
		b.WriteString("            case \"$prev\" in\n")
		for _, v := range valued {
			b.WriteString(v)
		}
		b.WriteString("            esac\n")
	}

	if len(all) > 0 {
		sort.Strings(all)
		b.WriteString("            if [[ \"$cur\" == -* ]]; then\n")
		fmt.Fprintf(b, "                COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(all, " "))
		if c.FilePattern != "" {
			b.WriteString("            else\n")
			fmt.Fprintf(b, "                COMPREPLY=( $(compgen -f -X '!*.@(%s)' -- \"$cur\") )\n",
				strings.Join(globExtensions(c.FilePattern), "|"))
		}
		b.WriteString("            fi\n")
	}
}

// ----------------------------------------------------------------------------
// Zsh
// ----------------------------------------------------------------------------

// zshEscape makes s safe inside a single-quoted _arguments spec.
func zshEscape(s string) string {
	return strings.NewReplacer("'", "", "[", "(", "]", ")", ":", " -").Replace(s)
}

func generateZsh(w io.Writer) error {
	commands := getCommands()

	var b strings.Builder
	b.WriteString("#compdef skillsheet\n\n")
	b.WriteString("_skillsheet() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    local cmd=\"${words[2]}\"\n")
	b.WriteString("    shift words\n")
	b.WriteString("    (( CURRENT-- ))\n\n")
	b.WriteString("    case \"$cmd\" in\n")
	for _, c := range commands {
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		writeZshCommand(&b, c)
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _skillsheet skillsheet\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeZshCommand(b *strings.Builder, c commandDef) {
	var specs []string
	for _, f := range c.Flags {
		desc := zshEscape(f.Desc)
		var action string
		switch f.Type {
		case flagBool:
		case flagEnum:
			action = fmt.Sprintf(":value:(%s)", strings.Join(f.Values, " "))
		case flagFile:
			action = fmt.Sprintf(":file:_files -g \"*.(%s)\"", strings.Join(globExtensions(f.FileGlob), "|"))
		case flagDir:
			action = ":directory:_files -/"
		default:
			action = ":value:"
		}
		if f.Short != "" {
			specs = append(specs, fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'",
				f.Short, f.Long, f.Short, f.Long, desc, action))
		} else {
			specs = append(specs, fmt.Sprintf("'--%s[%s]%s'", f.Long, desc, action))
		}
	}
	if c.FilePattern != "" {
		specs = append(specs, fmt.Sprintf("'*:file:_files -g \"*.(%s)\"'",
			strings.Join(globExtensions(c.FilePattern), "|")))
	}
	if len(c.Args) > 0 {
		specs = append(specs, fmt.Sprintf("'1:argument:(%s)'", strings.Join(c.Args, " ")))
	}
	if len(specs) == 0 {
		b.WriteString("            :\n")
		return
	}

	b.WriteString("            _arguments \\\n")
	for i, s := range specs {
		b.WriteString("                " + s)
		if i < len(specs)-1 {
			b.WriteString(" \\")
		}
		b.WriteString("\n")
	}
}

// ----------------------------------------------------------------------------
// Fish
// ----------------------------------------------------------------------------

// fishEscape makes s safe inside a single-quoted fish string.
func fishEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s)
}

func generateFish(w io.Writer) error {
	commands := getCommands()

	var b strings.Builder
	b.WriteString("# fish completion for skillsheet\n\n")
	b.WriteString("complete -c skillsheet -f\n\n")

	for _, c := range commands {
		fmt.Fprintf(&b, "complete -c skillsheet -n '__fish_use_subcommand' -a %s -d '%s'\n",
			c.Name, fishEscape(c.Desc))
	}

	for _, c := range commands {
		cond := fmt.Sprintf("-n '__fish_seen_subcommand_from %s'", c.Name)
		if len(c.Flags) > 0 || c.FilePattern != "" || len(c.Args) > 0 {
			b.WriteString("\n")
		}
		for _, f := range c.Flags {
			line := "complete -c skillsheet " + cond
			if f.Short != "" {
				line += " -s " + f.Short
			}
			line += " -l " + f.Long
			switch f.Type {
			case flagBool:
			case flagEnum:
				line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				line += " -r -F"
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			default:
				line += " -r"
			}
			line += fmt.Sprintf(" -d '%s'\n", fishEscape(f.Desc))
			b.WriteString(line)
		}
		if c.FilePattern != "" {
			fmt.Fprintf(&b, "complete -c skillsheet %s -F\n", cond)
		}
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "complete -c skillsheet %s -x -a '%s'\n", cond, strings.Join(c.Args, " "))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
