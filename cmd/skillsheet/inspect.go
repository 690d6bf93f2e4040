package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	skillsheet "github.com/alnah/go-skillsheet"
	"github.com/alnah/go-skillsheet/internal/logging"
	"github.com/alnah/go-skillsheet/internal/yamlutil"
)

// defaultWrapWidth is used when stdout is not a terminal.
const defaultWrapWidth = 80

// projectFieldNames names Project.Fields in order.
var projectFieldNames = []string{
	"number", "company", "period", "industry", "employment", "team_size",
	"technologies", "overview", "duties", "skills", "achievements",
}

// runInspect prints the records extracted from each source file without
// writing any output file.
func runInspect(command string, args []string, env *Environment) error {
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

	if len(files) == 0 {
		files = cfg.Inputs.Files
	}

	for _, path := range files {
		content, err := os.ReadFile(path) // #nosec G304 -- user-provided input path
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintf(env.Stderr, "file not found: %s\n", path)
			} else {
				fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", path, err)
			}
			continue
		}

		sheet := conv.Extract(skillsheet.Input{Markdown: string(content)})
		if flags.inspect.format == formatText {
			writeSheetText(env.Stdout, path, sheet, logging.Width(env.Stdout, defaultWrapWidth))
			continue
		}

		data, err := yamlutil.Marshal(yamlutil.MapSlice{
			{Key: "source", Value: path},
			{Key: "sheet", Value: sheetView(sheet)},
		})
		if err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", path, err)
			continue
		}
		fmt.Fprintln(env.Stdout, "---")
		_, _ = env.Stdout.Write(data)
	}
	return nil
}

// kvView keeps the insertion order of kv.
func kvView(kv *skillsheet.KeyValues) yamlutil.MapSlice {
	view := yamlutil.MapSlice{}
	if kv == nil {
		return view
	}
	for k, v := range kv.All() {
		view = append(view, yamlutil.MapItem{Key: k, Value: v})
	}
	return view
}

// sheetView orders the sheet the way the workbook does.
func sheetView(s *skillsheet.SkillSheet) yamlutil.MapSlice {
	specialties := yamlutil.MapSlice{}
	for _, sp := range s.Specialties {
		specialties = append(specialties, yamlutil.MapItem{Key: sp.Category, Value: sp.Items})
	}

	skills := yamlutil.MapSlice{}
	for _, c := range s.Skills {
		skills = append(skills, yamlutil.MapItem{Key: c.Category, Value: kvView(c.Skills)})
	}

	projects := make([]yamlutil.MapSlice, 0, len(s.Projects))
	for _, p := range s.Projects {
		projects = append(projects, projectView(p))
	}

	return yamlutil.MapSlice{
		{Key: "basic_info", Value: kvView(s.BasicInfo)},
		{Key: "specialties", Value: specialties},
		{Key: "skills", Value: skills},
		{Key: "self_pr", Value: s.SelfPR},
		{Key: "projects", Value: projects},
		{Key: "responsibility", Value: yamlutil.MapSlice{
			{Key: "header", Value: s.Responsibility.Header},
			{Key: "rows", Value: s.Responsibility.Rows},
		}},
		{Key: "strengths", Value: s.Strengths},
	}
}

func projectView(p skillsheet.Project) yamlutil.MapSlice {
	view := yamlutil.MapSlice{}
	for i, value := range p.Fields() {
		if value == "" {
			continue
		}
		view = append(view, yamlutil.MapItem{Key: projectFieldNames[i], Value: value})
	}
	return view
}

// writeSheetText prints a wrapped plain-text summary of the sheet.
func writeSheetText(w io.Writer, path string, s *skillsheet.SkillSheet, width int) {
	const pad = 2
	wrap := func(text string) string {
		return indent.String(wordwrap.String(text, width-pad), pad)
	}

	fmt.Fprintf(w, "== %s ==\n", path)

	fmt.Fprintln(w, "basic info:")
	if s.BasicInfo != nil {
		for k, v := range s.BasicInfo.All() {
			fmt.Fprintln(w, wrap(k+": "+v))
		}
	}

	fmt.Fprintln(w, "specialties:")
	for _, sp := range s.Specialties {
		fmt.Fprintln(w, wrap(sp.Category+": "+strings.Join(sp.Items, ", ")))
	}

	fmt.Fprintln(w, "skills:")
	for _, c := range s.Skills {
		var parts []string
		if c.Skills != nil {
			for tech, years := range c.Skills.All() {
				parts = append(parts, tech+" ("+years+")")
			}
		}
		fmt.Fprintln(w, wrap(c.Category+": "+strings.Join(parts, ", ")))
	}

	fmt.Fprintln(w, "self pr:")
	for _, pr := range s.SelfPR {
		fmt.Fprintln(w, wrap("- "+pr))
	}

	fmt.Fprintf(w, "projects: %d\n", len(s.Projects))
	for _, p := range s.Projects {
		fmt.Fprintln(w, wrap(p.Number+" "+p.Company+" "+p.Period))
	}

	fmt.Fprintf(w, "responsibility: %d rows\n", len(s.Responsibility.Rows))

	fmt.Fprintln(w, "strengths:")
	for _, st := range s.Strengths {
		fmt.Fprintln(w, wrap("- "+st))
	}
	fmt.Fprintln(w)
}
