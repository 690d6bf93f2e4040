package main

import (
	"github.com/rs/zerolog"

	skillsheet "github.com/alnah/go-skillsheet"
	"github.com/alnah/go-skillsheet/internal/config"
)

// converterOptions turns the merged config into converter options. Unset
// config fields keep the library defaults.
func converterOptions(cfg *config.Config, logger zerolog.Logger) ([]skillsheet.Option, error) {
	opts := []skillsheet.Option{
		skillsheet.WithLogger(logger),
		skillsheet.WithVocabulary(vocabularyFrom(cfg.Vocabulary)),
		skillsheet.WithWorkbookStyle(workbookStyleFrom(cfg.Excel)),
		skillsheet.WithDocumentStyle(documentStyleFrom(cfg.Word)),
		skillsheet.WithHTMLStyle(htmlStyleFrom(cfg.HTML)),
		skillsheet.WithPDFPage(pdfPageFrom(cfg.PDF)),
	}

	if cfg.Assets.BasePath != "" {
		opts = append(opts, skillsheet.WithAssetPath(cfg.Assets.BasePath))
	}

	timeout, err := cfg.PDF.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		opts = append(opts, skillsheet.WithTimeout(timeout))
	}

	return opts, nil
}

// override replaces *dst with src when src is set.
func override(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

func overrideFloat(dst *float64, src float64) {
	if src > 0 {
		*dst = src
	}
}

func categoriesFrom(cats []config.CategoryConfig) []skillsheet.Category {
	out := make([]skillsheet.Category, len(cats))
	for i, c := range cats {
		out[i] = skillsheet.Category{Label: c.Label, Heading: c.Heading}
	}
	return out
}

func vocabularyFrom(c config.VocabularyConfig) skillsheet.Vocabulary {
	v := skillsheet.DefaultVocabulary()

	override(&v.BasicInfo, c.BasicInfo)
	override(&v.Specialties.Heading, c.Specialties)
	override(&v.Specialties.AreasLabel, c.SpecialtyAreas)
	if len(c.SpecialtyGroups) > 0 {
		v.Specialties.Groups = categoriesFrom(c.SpecialtyGroups)
	}
	if len(c.SkillCategories) > 0 {
		v.SkillCategories = categoriesFrom(c.SkillCategories)
	}
	override(&v.SelfPR, c.SelfPR)
	override(&v.Responsibility, c.Responsibility)
	override(&v.Strengths, c.Strengths)

	p := &v.Projects
	override(&p.Heading, c.Projects.Heading)
	if c.Projects.TitleLevel > 0 {
		p.TitleLevel = c.Projects.TitleLevel
	}
	override(&p.PeriodLabel, c.Projects.Period)
	override(&p.IndustryLabel, c.Projects.Industry)
	override(&p.EmploymentLabel, c.Projects.Employment)
	override(&p.TeamSizeLabel, c.Projects.TeamSize)
	override(&p.Technologies, c.Projects.Technologies)
	override(&p.Overview, c.Projects.Overview)
	override(&p.Duties, c.Projects.Duties)
	override(&p.Skills, c.Projects.Skills)
	override(&p.Achievements, c.Projects.Achievements)

	return v
}

func sheetFrom(layout *skillsheet.SheetLayout, c config.SheetConfig) {
	override(&layout.Name, c.Name)
	if len(c.Columns) > 0 {
		layout.Columns = c.Columns
	}
	if len(c.Widths) > 0 {
		layout.Widths = c.Widths
	}
}

func workbookStyleFrom(c config.ExcelConfig) skillsheet.WorkbookStyle {
	s := skillsheet.DefaultWorkbookStyle()

	override(&s.HeaderFontColor, c.HeaderFontColor)
	override(&s.HeaderFillColor, c.HeaderFillColor)

	sheetFrom(&s.Sheets.BasicInfo, c.Sheets.BasicInfo)
	sheetFrom(&s.Sheets.Specialties, c.Sheets.Specialties)
	sheetFrom(&s.Sheets.Skills, c.Sheets.Skills)
	sheetFrom(&s.Sheets.SelfPR, c.Sheets.SelfPR)
	sheetFrom(&s.Sheets.Projects, c.Sheets.Projects)
	sheetFrom(&s.Sheets.Responsibility, c.Sheets.Responsibility)
	sheetFrom(&s.Sheets.Strengths, c.Sheets.Strengths)

	return s
}

func documentStyleFrom(c config.WordConfig) skillsheet.DocumentStyle {
	s := skillsheet.DefaultDocumentStyle()

	override(&s.FontFamily, c.FontFamily)
	override(&s.CodeFontFamily, c.CodeFontFamily)
	for i, size := range c.HeadingSizes {
		if i < len(s.HeadingSizes) {
			overrideFloat(&s.HeadingSizes[i], size)
		}
	}
	overrideFloat(&s.BodySize, c.BodySize)
	overrideFloat(&s.TableSize, c.TableSize)
	overrideFloat(&s.CodeSize, c.CodeSize)
	override(&s.HyperlinkColor, c.HyperlinkColor)
	override(&s.PageSize, c.PageSize)
	overrideFloat(&s.Margin, c.Margin)

	return s
}

func htmlStyleFrom(c config.HTMLConfig) skillsheet.HTMLStyle {
	s := skillsheet.DefaultHTMLStyle()
	override(&s.Title, c.Title)
	override(&s.Lang, c.Lang)
	override(&s.Style, c.Style)
	return s
}

func pdfPageFrom(c config.PDFConfig) skillsheet.PDFPage {
	p := skillsheet.DefaultPDFPage()
	override(&p.Size, c.PageSize)
	overrideFloat(&p.MarginMM, c.MarginMM)
	if c.Footer != nil {
		p.Footer = *c.Footer
	}
	return p
}
