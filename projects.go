package skillsheet

import (
	"regexp"
	"strings"

	"github.com/alnah/go-skillsheet/internal/markdown"
)

// fieldSeparator joins multi-item project fields.
const fieldSeparator = " | "

var (
	// technologyPattern matches "- **Label：** value".
	technologyPattern = regexp.MustCompile(`^[-*+]\s+\*\*(.+?：)\*\*\s*(.*)$`)

	newlineRun = regexp.MustCompile(`\n+`)
)

// Projects splits the project history section on "---" rules and returns one
// record per chunk whose title matches "<n>. <company>（<period>）".
// Chunks without a matching title are skipped.
func (e *Extractor) Projects(text string) []Project {
	section, ok := e.section(text, e.vocab.projects)
	if !ok {
		return nil
	}

	var projects []Project
	for _, chunk := range markdown.SplitOnRule(section) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		p, ok := e.project(chunk)
		if !ok {
			e.logger.Debug().Str("chunk", firstLine(chunk)).Msg("skipping project without title")
			continue
		}
		projects = append(projects, p)
	}
	return projects
}

// project parses one project chunk.
func (e *Extractor) project(chunk string) (Project, bool) {
	title := e.vocab.title.FindStringSubmatch(chunk)
	if title == nil {
		return Project{}, false
	}

	p := Project{
		Number:  title[1],
		Company: strings.TrimSpace(title[2]),
		Period:  strings.TrimSpace(title[3]),
	}

	if m := e.vocab.metadata.FindStringSubmatch(chunk); m != nil {
		p.Industry = strings.TrimSpace(m[1])
		p.Employment = strings.TrimSpace(m[2])
		p.TeamSize = strings.TrimSpace(m[3])
	}

	if body, ok := markdown.FindSection(chunk, e.vocab.technologies); ok {
		p.Technologies = strings.Join(e.technologies(body, p.Number), fieldSeparator)
	}
	if body, ok := markdown.FindSection(chunk, e.vocab.overview); ok {
		p.Overview = newlineRun.ReplaceAllString(strings.TrimSpace(body), " ")
	}
	if body, ok := markdown.FindSection(chunk, e.vocab.duties); ok {
		p.Duties = e.merged(body, p.Number, "duties")
	}
	if body, ok := markdown.FindSection(chunk, e.vocab.skillsGained); ok {
		items := markdown.ListItems(body, markdown.ListOptions{TopLevelOnly: true})
		p.Skills = strings.Join(items, fieldSeparator)
	}
	if body, ok := markdown.FindSection(chunk, e.vocab.achievements); ok {
		p.Achievements = e.merged(body, p.Number, "achievements")
	}

	return p, true
}

// technologies keeps "- **Label：** value" lines as "Label： value".
// Any other non-blank line is dropped and logged.
func (e *Extractor) technologies(body, number string) []string {
	var out []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := technologyPattern.FindStringSubmatch(line)
		if m == nil {
			e.logger.Debug().Str("project", number).Str("line", line).Msg("dropping technology line")
			continue
		}
		out = append(out, strings.TrimSpace(m[1]+" "+markdown.StripEmphasis(m[2])))
	}
	return out
}

// merged joins the bullets of a duties or achievements body. Lines outside
// any bullet are dropped and logged.
func (e *Extractor) merged(body, number, field string) string {
	items, dropped := markdown.MergedItems(body)
	for _, line := range dropped {
		e.logger.Debug().Str("project", number).Str("field", field).Str("line", line).Msg("dropping line outside a bullet")
	}
	return strings.Join(items, fieldSeparator)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
