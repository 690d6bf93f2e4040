package skillsheet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-skillsheet/internal/markdown"
)

// Vocabulary maps the logical sections of a skill sheet to the headings that
// introduce them. Headings are written in markdown form, e.g. "## 📋 基本情報";
// a line matches when it has the same number of '#' and its title starts
// with the configured title.
type Vocabulary struct {
	BasicInfo       string
	Specialties     SpecialtyVocabulary
	SkillCategories []Category
	SelfPR          string
	Projects        ProjectVocabulary
	Responsibility  string
	Strengths       string
}

// Category pairs a display label with the heading of its section.
type Category struct {
	Label   string
	Heading string
}

// SpecialtyVocabulary describes the specialties section. Areas are the bold
// bullets before the first sub-heading; Groups are sub-sections of bullets.
type SpecialtyVocabulary struct {
	Heading    string
	AreasLabel string
	Groups     []Category
}

// ProjectVocabulary describes the project history section.
type ProjectVocabulary struct {
	Heading    string
	TitleLevel int // heading level of "<n>. <company>（<period>）"

	// Metadata labels, as written between "**" markers.
	PeriodLabel     string
	IndustryLabel   string
	EmploymentLabel string
	TeamSizeLabel   string

	// Sub-section headings.
	Technologies string
	Overview     string
	Duties       string
	Skills       string
	Achievements string
}

// DefaultVocabulary returns the headings of the Japanese skill sheet layout.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		BasicInfo: "## 📋 基本情報",
		Specialties: SpecialtyVocabulary{
			Heading:    "## 🎯 得意分野",
			AreasLabel: "得意分野",
			Groups: []Category{
				{Label: "得意言語", Heading: "### 得意言語"},
				{Label: "得意業務", Heading: "### 得意業務"},
			},
		},
		SkillCategories: []Category{
			{Label: "開発言語", Heading: "### 開発言語"},
			{Label: "フレームワーク", Heading: "### フレームワーク"},
			{Label: "データベース", Heading: "### データベース"},
			{Label: "サーバー・OS", Heading: "### サーバー・OS"},
		},
		SelfPR: "## 🌟 自己PR・備考",
		Projects: ProjectVocabulary{
			Heading:         "## 📈 職歴・プロジェクト経験（時系列順）",
			TitleLevel:      3,
			PeriodLabel:     "期間：",
			IndustryLabel:   "業種：",
			EmploymentLabel: "雇用形態：",
			TeamSizeLabel:   "チーム規模：",
			Technologies:    "#### 使用技術",
			Overview:        "#### プロジェクト概要",
			Duties:          "#### 主な業務内容",
			Skills:          "#### 習得スキル",
			Achievements:    "#### 成果・実績",
		},
		Responsibility: "## 📊 担当領域",
		Strengths:      "## 🎯 強み・特徴",
	}
}

// Validate checks that every heading parses and every label is set.
func (v Vocabulary) Validate() error {
	_, err := v.compile()
	return err
}

// category is a Category with its heading parsed.
type category struct {
	label   string
	heading markdown.Heading
}

// compiledVocabulary holds parsed headings and the project patterns.
type compiledVocabulary struct {
	basicInfo      markdown.Heading
	specialties    markdown.Heading
	areasLabel     string
	groups         []category
	skills         []category
	selfPR         markdown.Heading
	responsibility markdown.Heading
	strengths      markdown.Heading

	projects     markdown.Heading
	title        *regexp.Regexp
	metadata     *regexp.Regexp
	technologies markdown.Heading
	overview     markdown.Heading
	duties       markdown.Heading
	skillsGained markdown.Heading
	achievements markdown.Heading
}

func (v Vocabulary) compile() (*compiledVocabulary, error) {
	p := &headingParser{}
	c := &compiledVocabulary{
		basicInfo:      p.parse("basic info", v.BasicInfo),
		specialties:    p.parse("specialties", v.Specialties.Heading),
		areasLabel:     strings.TrimSpace(v.Specialties.AreasLabel),
		groups:         p.categories("specialty group", v.Specialties.Groups),
		skills:         p.categories("skill category", v.SkillCategories),
		selfPR:         p.parse("self-PR", v.SelfPR),
		responsibility: p.parse("responsibility", v.Responsibility),
		strengths:      p.parse("strengths", v.Strengths),
		projects:       p.parse("projects", v.Projects.Heading),
		technologies:   p.parse("technologies", v.Projects.Technologies),
		overview:       p.parse("overview", v.Projects.Overview),
		duties:         p.parse("duties", v.Projects.Duties),
		skillsGained:   p.parse("skills", v.Projects.Skills),
		achievements:   p.parse("achievements", v.Projects.Achievements),
	}
	if p.err != nil {
		return nil, p.err
	}
	if c.areasLabel == "" {
		return nil, fmt.Errorf("%w: specialty areas label is empty", ErrInvalidVocabulary)
	}

	pv := v.Projects
	if pv.TitleLevel < 1 || pv.TitleLevel > 6 {
		return nil, fmt.Errorf("%w: project title level %d (must be 1-6)", ErrInvalidVocabulary, pv.TitleLevel)
	}
	for _, l := range []struct{ name, label string }{
		{"period", pv.PeriodLabel},
		{"industry", pv.IndustryLabel},
		{"employment", pv.EmploymentLabel},
		{"team size", pv.TeamSizeLabel},
	} {
		if strings.TrimSpace(l.label) == "" {
			return nil, fmt.Errorf("%w: project %s label is empty", ErrInvalidVocabulary, l.name)
		}
	}

	c.title = regexp.MustCompile(`(?m)^#{` + fmt.Sprint(pv.TitleLevel) + `}[ \t]+(\d+)\.[ \t]+(.+?)（(.+?)）`)
	c.metadata = regexp.MustCompile(
		bold(pv.PeriodLabel) + `.*?\|\s*` +
			bold(pv.IndustryLabel) + `\s*(.+?)\s*\|\s*` +
			bold(pv.EmploymentLabel) + `\s*(.+?)\s*\n` +
			bold(pv.TeamSizeLabel) + `\s*(.+)`)

	return c, nil
}

// bold returns a pattern matching "**label**" literally.
func bold(label string) string {
	return `\*\*` + regexp.QuoteMeta(label) + `\*\*`
}

// headingParser parses headings and keeps the first error.
type headingParser struct {
	err error
}

func (p *headingParser) parse(name, pattern string) markdown.Heading {
	if p.err != nil {
		return markdown.Heading{}
	}
	h, err := markdown.ParseHeading(pattern)
	if err != nil {
		p.err = fmt.Errorf("%w: %s heading: %v", ErrInvalidVocabulary, name, err)
	}
	return h
}

func (p *headingParser) categories(name string, cats []Category) []category {
	out := make([]category, 0, len(cats))
	seen := make(map[string]bool, len(cats))
	for _, cat := range cats {
		label := strings.TrimSpace(cat.Label)
		if p.err == nil && label == "" {
			p.err = fmt.Errorf("%w: %s label is empty", ErrInvalidVocabulary, name)
		}
		if p.err == nil && seen[label] {
			p.err = fmt.Errorf("%w: duplicate %s %q", ErrInvalidVocabulary, name, label)
		}
		seen[label] = true
		out = append(out, category{label: label, heading: p.parse(name+" "+label, cat.Heading)})
	}
	return out
}
