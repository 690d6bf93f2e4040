package skillsheet

// Notes:
// - Validate must reject every malformed heading and empty label with
//   ErrInvalidVocabulary
// - Error order is deterministic: the first problem found is reported

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestVocabulary_Validate
// ---------------------------------------------------------------------------

func TestVocabulary_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(v *Vocabulary)
		wantErr string
	}{
		{"default", func(v *Vocabulary) {}, ""},
		{"heading without hashes", func(v *Vocabulary) { v.BasicInfo = "基本情報" }, "basic info heading"},
		{"heading without title", func(v *Vocabulary) { v.SelfPR = "##" }, "self-PR heading"},
		{"empty areas label", func(v *Vocabulary) { v.Specialties.AreasLabel = " " }, "areas label"},
		{"empty group label", func(v *Vocabulary) {
			v.Specialties.Groups = []Category{{Label: "", Heading: "### X"}}
		}, "specialty group label is empty"},
		{"duplicate skill category", func(v *Vocabulary) {
			v.SkillCategories = []Category{
				{Label: "言語", Heading: "### 言語"},
				{Label: "言語", Heading: "### 言語2"},
			}
		}, "duplicate skill category"},
		{"bad skill heading", func(v *Vocabulary) {
			v.SkillCategories = []Category{{Label: "言語", Heading: "言語"}}
		}, "skill category 言語 heading"},
		{"title level zero", func(v *Vocabulary) { v.Projects.TitleLevel = 0 }, "title level 0"},
		{"title level seven", func(v *Vocabulary) { v.Projects.TitleLevel = 7 }, "title level 7"},
		{"empty period label", func(v *Vocabulary) { v.Projects.PeriodLabel = "" }, "period label"},
		{"empty team size label", func(v *Vocabulary) { v.Projects.TeamSizeLabel = "" }, "team size label"},
		{"first error wins", func(v *Vocabulary) {
			v.Projects.IndustryLabel = ""
			v.Projects.EmploymentLabel = ""
		}, "industry label"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := DefaultVocabulary()
			tt.modify(&v)
			err := v.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidVocabulary) {
				t.Fatalf("Validate() error = %v, want ErrInvalidVocabulary", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want to contain %q", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestVocabulary_ProjectPatterns - Labels are matched literally
// ---------------------------------------------------------------------------

func TestVocabulary_ProjectPatterns(t *testing.T) {
	t.Parallel()

	v := DefaultVocabulary()
	v.Projects.PeriodLabel = "Period (dates):"
	v.Projects.IndustryLabel = "Industry:"
	v.Projects.EmploymentLabel = "Type:"
	v.Projects.TeamSizeLabel = "Team:"
	v.Projects.TitleLevel = 2

	c, err := v.compile()
	if err != nil {
		t.Fatalf("compile() unexpected error: %v", err)
	}

	chunk := "## 4. Acme（2020）\n\n**Period (dates):** 2020 | **Industry:** Retail | **Type:** Contract\n**Team:** 3\n"
	if m := c.title.FindStringSubmatch(chunk); m == nil || m[2] != "Acme" {
		t.Errorf("title match = %v, want company Acme", m)
	}
	m := c.metadata.FindStringSubmatch(chunk)
	if m == nil {
		t.Fatal("metadata did not match")
	}
	if m[1] != "Retail" || m[2] != "Contract" || strings.TrimSpace(m[3]) != "3" {
		t.Errorf("metadata = %q, want [Retail Contract 3]", m[1:])
	}
}
