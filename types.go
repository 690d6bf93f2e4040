package skillsheet

import "github.com/alnah/go-skillsheet/internal/markdown"

// KeyValues is an insertion-ordered string map with last-write-wins updates.
type KeyValues = markdown.KeyValues

// NewKeyValues returns an empty KeyValues.
func NewKeyValues() *KeyValues {
	return markdown.NewKeyValues()
}

// Input is the source of one conversion.
type Input struct {
	Markdown  string
	SourceDir string // resolves relative image paths in HTML/PDF output
}

// SkillSheet holds every record extracted from one document.
type SkillSheet struct {
	BasicInfo      *KeyValues
	Specialties    []Specialty
	Skills         []SkillCategory
	SelfPR         []string
	Projects       []Project
	Responsibility ResponsibilityMatrix
	Strengths      []string
}

// Specialty is one category of the specialties section.
type Specialty struct {
	Category string
	Items    []string
}

// SkillCategory maps technologies to experience for one category.
type SkillCategory struct {
	Category string
	Skills   *KeyValues // technology -> years of experience
}

// Project is one entry of the project history.
// Multi-item fields are joined with " | ".
type Project struct {
	Number       string
	Company      string
	Period       string
	Industry     string
	Employment   string
	TeamSize     string
	Technologies string
	Overview     string
	Duties       string
	Skills       string
	Achievements string
}

// Fields returns the project fields in column order.
func (p Project) Fields() []string {
	return []string{
		p.Number, p.Company, p.Period, p.Industry, p.Employment, p.TeamSize,
		p.Technologies, p.Overview, p.Duties, p.Skills, p.Achievements,
	}
}

// ResponsibilityMatrix is a rectangular table: every row has len(Header) cells.
type ResponsibilityMatrix struct {
	Header []string
	Rows   [][]string
}

// Empty reports whether the matrix holds no data.
func (m ResponsibilityMatrix) Empty() bool {
	return len(m.Rows) == 0
}
