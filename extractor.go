package skillsheet

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/go-skillsheet/internal/markdown"
	"github.com/alnah/go-skillsheet/internal/pipeline"
)

// strengthPattern matches "1. **Title**: body" and "- **Title**：body".
var strengthPattern = regexp.MustCompile(`^\s*(?:\d+\.|[-*+])\s+\*\*(.+?)\*\*\s*[:：]\s*(.*)$`)

// Extractor pulls skill sheet records out of markdown text.
// It never fails on missing content: absent sections yield empty records.
type Extractor struct {
	vocab  *compiledVocabulary
	logger zerolog.Logger
}

// NewExtractor creates an Extractor for the given vocabulary.
// Returns ErrInvalidVocabulary if a heading or label is malformed.
func NewExtractor(v Vocabulary, logger zerolog.Logger) (*Extractor, error) {
	c, err := v.compile()
	if err != nil {
		return nil, err
	}
	return &Extractor{vocab: c, logger: logger}, nil
}

// Extract runs every section extractor over text.
func (e *Extractor) Extract(text string) *SkillSheet {
	text = pipeline.NormalizeLineEndings(text)
	return &SkillSheet{
		BasicInfo:      e.BasicInfo(text),
		Specialties:    e.Specialties(text),
		Skills:         e.Skills(text),
		SelfPR:         e.SelfPR(text),
		Projects:       e.Projects(text),
		Responsibility: e.Responsibility(text),
		Strengths:      e.Strengths(text),
	}
}

// BasicInfo returns the key-value table of the basic information section.
func (e *Extractor) BasicInfo(text string) *KeyValues {
	section, ok := e.section(text, e.vocab.basicInfo)
	if !ok {
		return NewKeyValues()
	}
	return firstKeyValueTable(section)
}

// Specialties returns the areas (bold bullets before the first sub-heading)
// followed by each configured group. Categories without items are omitted.
func (e *Extractor) Specialties(text string) []Specialty {
	section, ok := e.section(text, e.vocab.specialties)
	if !ok {
		return nil
	}

	var out []Specialty
	if areas := markdown.BoldItems(markdown.Preamble(section)); len(areas) > 0 {
		out = append(out, Specialty{Category: e.vocab.areasLabel, Items: areas})
	}
	for _, g := range e.vocab.groups {
		body, found := markdown.FindSection(section, g.heading)
		if !found {
			continue
		}
		if items := markdown.ListItems(body, markdown.ListOptions{}); len(items) > 0 {
			out = append(out, Specialty{Category: g.label, Items: items})
		}
	}
	return out
}

// Skills returns one category per configured skill heading, in order.
// Each heading is searched in the whole document; a missing heading yields
// an empty category.
func (e *Extractor) Skills(text string) []SkillCategory {
	out := make([]SkillCategory, 0, len(e.vocab.skills))
	for _, cat := range e.vocab.skills {
		skills := NewKeyValues()
		if section, ok := e.section(text, cat.heading); ok {
			skills = firstKeyValueTable(section)
		}
		out = append(out, SkillCategory{Category: cat.label, Skills: skills})
	}
	return out
}

// SelfPR returns the bullet items of the self-PR section.
func (e *Extractor) SelfPR(text string) []string {
	section, ok := e.section(text, e.vocab.selfPR)
	if !ok {
		return nil
	}
	return markdown.ListItems(section, markdown.ListOptions{})
}

// Responsibility returns the first table of the responsibility section as a
// rectangular matrix. The matrix is empty when no data row survives.
func (e *Extractor) Responsibility(text string) ResponsibilityMatrix {
	section, ok := e.section(text, e.vocab.responsibility)
	if !ok {
		return ResponsibilityMatrix{}
	}
	table, found := markdown.FirstTable(section)
	if !found {
		return ResponsibilityMatrix{}
	}
	m, ok := markdown.MatrixFromTable(table)
	if !ok {
		e.logger.Debug().Str("section", e.vocab.responsibility.String()).Msg("responsibility table has no data rows")
		return ResponsibilityMatrix{}
	}
	return ResponsibilityMatrix{Header: m.Header, Rows: m.Rows}
}

// Strengths returns "Title: body" for every "<n>. **Title**: body" line of
// the strengths section. Other lines are ignored.
func (e *Extractor) Strengths(text string) []string {
	section, ok := e.section(text, e.vocab.strengths)
	if !ok {
		return nil
	}

	var out []string
	for _, line := range strings.Split(section, "\n") {
		m := strengthPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		out = append(out, strings.TrimSpace(m[1])+": "+strings.TrimSpace(m[2]))
	}
	return out
}

// section finds h in text and logs when it is missing.
func (e *Extractor) section(text string, h markdown.Heading) (string, bool) {
	body, found := markdown.FindSection(text, h)
	if !found {
		e.logger.Debug().Str("section", h.String()).Msg("section not found")
	}
	return body, found
}

// firstKeyValueTable reads the first table of section as key-value pairs.
func firstKeyValueTable(section string) *KeyValues {
	table, found := markdown.FirstTable(section)
	if !found {
		return NewKeyValues()
	}
	return markdown.KeyValueTable(table)
}
