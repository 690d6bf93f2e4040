package main

// Notes:
// - converterOptions: unset config fields must keep the library defaults;
//   set fields replace them. We check the mapping functions directly since
//   Option values are opaque closures.

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	skillsheet "github.com/alnah/go-skillsheet"
	"github.com/alnah/go-skillsheet/internal/config"
)

// ---------------------------------------------------------------------------
// TestVocabularyFrom - Heading overrides
// ---------------------------------------------------------------------------

func TestVocabularyFrom(t *testing.T) {
	t.Parallel()

	t.Run("empty config keeps defaults", func(t *testing.T) {
		t.Parallel()

		got := vocabularyFrom(config.VocabularyConfig{})
		want := skillsheet.DefaultVocabulary()

		if got.BasicInfo != want.BasicInfo {
			t.Errorf("BasicInfo = %q, want %q", got.BasicInfo, want.BasicInfo)
		}
		if len(got.SkillCategories) != len(want.SkillCategories) {
			t.Errorf("SkillCategories = %d, want %d", len(got.SkillCategories), len(want.SkillCategories))
		}
		if got.Projects.TitleLevel != want.Projects.TitleLevel {
			t.Errorf("TitleLevel = %d, want %d", got.Projects.TitleLevel, want.Projects.TitleLevel)
		}
	})

	t.Run("overrides replace defaults", func(t *testing.T) {
		t.Parallel()

		got := vocabularyFrom(config.VocabularyConfig{
			BasicInfo:       "## Profile",
			SkillCategories: []config.CategoryConfig{{Label: "Languages", Heading: "### Languages"}},
			Projects: config.ProjectVocabularyConfig{
				Heading:    "## Projects",
				TitleLevel: 4,
				Period:     "Period:",
			},
		})

		if got.BasicInfo != "## Profile" {
			t.Errorf("BasicInfo = %q, want ## Profile", got.BasicInfo)
		}
		if len(got.SkillCategories) != 1 || got.SkillCategories[0].Label != "Languages" {
			t.Errorf("SkillCategories = %+v", got.SkillCategories)
		}
		if got.Projects.Heading != "## Projects" || got.Projects.TitleLevel != 4 || got.Projects.PeriodLabel != "Period:" {
			t.Errorf("Projects = %+v", got.Projects)
		}
		if got.Projects.Overview != skillsheet.DefaultVocabulary().Projects.Overview {
			t.Errorf("Overview = %q, want default", got.Projects.Overview)
		}
	})
}

// ---------------------------------------------------------------------------
// TestStyleFrom - Workbook, document, HTML and PDF overrides
// ---------------------------------------------------------------------------

func TestStyleFrom(t *testing.T) {
	t.Parallel()

	t.Run("workbook sheet override", func(t *testing.T) {
		t.Parallel()

		got := workbookStyleFrom(config.ExcelConfig{
			HeaderFillColor: "112233",
			Sheets: config.SheetsConfig{
				Strengths: config.SheetConfig{Name: "Strengths"},
			},
		})
		def := skillsheet.DefaultWorkbookStyle()

		if got.HeaderFillColor != "112233" {
			t.Errorf("HeaderFillColor = %q, want 112233", got.HeaderFillColor)
		}
		if got.HeaderFontColor != def.HeaderFontColor {
			t.Errorf("HeaderFontColor = %q, want default", got.HeaderFontColor)
		}
		if got.Sheets.Strengths.Name != "Strengths" {
			t.Errorf("Strengths.Name = %q, want Strengths", got.Sheets.Strengths.Name)
		}
		if len(got.Sheets.Strengths.Columns) != len(def.Sheets.Strengths.Columns) {
			t.Errorf("Strengths.Columns = %v, want default", got.Sheets.Strengths.Columns)
		}
		if err := got.Validate(); err != nil {
			t.Errorf("Validate() = %v", err)
		}
	})

	t.Run("document partial heading sizes", func(t *testing.T) {
		t.Parallel()

		got := documentStyleFrom(config.WordConfig{
			FontFamily:   "Meiryo",
			HeadingSizes: []float64{20},
			PageSize:     "letter",
		})

		if got.FontFamily != "Meiryo" {
			t.Errorf("FontFamily = %q, want Meiryo", got.FontFamily)
		}
		if got.HeadingSizes != [4]float64{20, 14, 12, 11} {
			t.Errorf("HeadingSizes = %v", got.HeadingSizes)
		}
		if got.PageSize != "letter" {
			t.Errorf("PageSize = %q, want letter", got.PageSize)
		}
	})

	t.Run("html style", func(t *testing.T) {
		t.Parallel()

		got := htmlStyleFrom(config.HTMLConfig{Style: "compact"})
		if got.Style != "compact" || got.Lang != "ja" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("pdf footer disabled", func(t *testing.T) {
		t.Parallel()

		off := false
		got := pdfPageFrom(config.PDFConfig{Footer: &off, MarginMM: 10})
		if got.Footer {
			t.Error("Footer = true, want false")
		}
		if got.MarginMM != 10 {
			t.Errorf("MarginMM = %v, want 10", got.MarginMM)
		}
		if got.Size != skillsheet.PageSizeA4 {
			t.Errorf("Size = %q, want default", got.Size)
		}
	})
}

// ---------------------------------------------------------------------------
// TestConverterOptions - Timeout handling
// ---------------------------------------------------------------------------

func TestConverterOptions(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.PDF.Timeout = "45s"
		cfg.Assets.BasePath = "/assets"

		opts, err := converterOptions(cfg, zerolog.Nop())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// logger, vocabulary, workbook, document, html, pdf, assets, timeout
		if len(opts) != 8 {
			t.Errorf("len(opts) = %d, want 8", len(opts))
		}
	})

	t.Run("invalid timeout", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.PDF.Timeout = "later"

		_, err := converterOptions(cfg, zerolog.Nop())
		if !errors.Is(err, config.ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})
}
