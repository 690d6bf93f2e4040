package skillsheet

import (
	"fmt"
	"regexp"
	"strings"
)

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Margin bounds in inches.
const (
	MinMargin = 0.25
	MaxMargin = 3.0
)

// pageSize holds page dimensions in inches and twips (1/1440 inch).
type pageSize struct {
	widthInches, heightInches float64
	widthTwips, heightTwips   int
}

var pageSizes = map[string]pageSize{
	PageSizeA4:     {8.27, 11.69, 11906, 16838},
	PageSizeLetter: {8.5, 11, 12240, 15840},
	PageSizeLegal:  {8.5, 14, 12240, 20160},
}

// lookupPageSize returns the dimensions of a page size (case-insensitive).
func lookupPageSize(name string) (pageSize, error) {
	size, ok := pageSizes[strings.ToLower(name)]
	if !ok {
		return pageSize{}, fmt.Errorf("%w: %q", ErrInvalidPageSize, name)
	}
	return size, nil
}

func validateMargin(inches float64) error {
	if inches < MinMargin || inches > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, inches, MinMargin, MaxMargin)
	}
	return nil
}

var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// ValidateColor checks for a six-digit hex RGB color without '#'.
func ValidateColor(color string) error {
	if !hexColor.MatchString(color) {
		return fmt.Errorf("%w: %q (want RRGGBB)", ErrInvalidColor, color)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Workbook
// ---------------------------------------------------------------------------

// SheetLayout names a worksheet, its header cells and column widths.
// Columns past the end of Widths reuse the last width.
type SheetLayout struct {
	Name    string
	Columns []string
	Widths  []float64
}

// WorkbookSheets lists the seven worksheets in output order.
// The responsibility sheet takes its header from the document table, so its
// Columns are ignored.
type WorkbookSheets struct {
	BasicInfo      SheetLayout
	Specialties    SheetLayout
	Skills         SheetLayout
	SelfPR         SheetLayout
	Projects       SheetLayout
	Responsibility SheetLayout
	Strengths      SheetLayout
}

// ordered returns the layouts with the number of header cells each needs
// (0 means free).
func (s WorkbookSheets) ordered() []struct {
	layout  SheetLayout
	columns int
} {
	return []struct {
		layout  SheetLayout
		columns int
	}{
		{s.BasicInfo, 2},
		{s.Specialties, 2},
		{s.Skills, 3},
		{s.SelfPR, 2},
		{s.Projects, 11},
		{s.Responsibility, 0},
		{s.Strengths, 2},
	}
}

// WorkbookStyle configures the Excel output.
type WorkbookStyle struct {
	HeaderFontColor string // RRGGBB
	HeaderFillColor string // RRGGBB
	Sheets          WorkbookSheets
}

// DefaultWorkbookStyle returns the seven-sheet layout with a bold white on
// blue header row.
func DefaultWorkbookStyle() WorkbookStyle {
	return WorkbookStyle{
		HeaderFontColor: "FFFFFF",
		HeaderFillColor: "4472C4",
		Sheets: WorkbookSheets{
			BasicInfo: SheetLayout{
				Name:    "基本情報",
				Columns: []string{"項目", "内容"},
				Widths:  []float64{20, 40},
			},
			Specialties: SheetLayout{
				Name:    "得意分野",
				Columns: []string{"カテゴリ", "内容"},
				Widths:  []float64{20, 50},
			},
			Skills: SheetLayout{
				Name:    "技術スキル",
				Columns: []string{"カテゴリ", "技術・言語", "経験年数"},
				Widths:  []float64{20, 25, 15},
			},
			SelfPR: SheetLayout{
				Name:    "自己PR・備考",
				Columns: []string{"No", "自己PR・備考"},
				Widths:  []float64{8, 80},
			},
			Projects: SheetLayout{
				Name: "プロジェクト経験",
				Columns: []string{
					"No", "会社名", "期間", "業種", "雇用形態", "チーム規模",
					"主要技術", "プロジェクト概要", "主な業務内容", "習得スキル", "成果・実績",
				},
				Widths: []float64{5, 20, 20, 10, 12, 15, 30, 40, 40, 40, 40},
			},
			Responsibility: SheetLayout{
				Name:   "担当領域",
				Widths: []float64{35, 18},
			},
			Strengths: SheetLayout{
				Name:    "強み・特徴",
				Columns: []string{"No", "強み・特徴"},
				Widths:  []float64{8, 80},
			},
		},
	}
}

// maxSheetNameLength is the Excel limit on worksheet names.
const maxSheetNameLength = 31

// Validate checks colors, sheet names and header column counts.
func (s WorkbookStyle) Validate() error {
	if err := ValidateColor(s.HeaderFontColor); err != nil {
		return fmt.Errorf("header font: %w", err)
	}
	if err := ValidateColor(s.HeaderFillColor); err != nil {
		return fmt.Errorf("header fill: %w", err)
	}

	seen := make(map[string]bool)
	for _, sheet := range s.Sheets.ordered() {
		name := sheet.layout.Name
		switch {
		case strings.TrimSpace(name) == "":
			return fmt.Errorf("%w: empty sheet name", ErrInvalidSheet)
		case len([]rune(name)) > maxSheetNameLength:
			return fmt.Errorf("%w: sheet name %q exceeds %d characters", ErrInvalidSheet, name, maxSheetNameLength)
		case strings.ContainsAny(name, `:\/?*[]`):
			return fmt.Errorf("%w: sheet name %q contains a reserved character", ErrInvalidSheet, name)
		case seen[strings.ToLower(name)]:
			return fmt.Errorf("%w: duplicate sheet name %q", ErrInvalidSheet, name)
		}
		seen[strings.ToLower(name)] = true

		if sheet.columns > 0 && len(sheet.layout.Columns) != sheet.columns {
			return fmt.Errorf("%w: sheet %q needs %d columns, got %d", ErrInvalidSheet, name, sheet.columns, len(sheet.layout.Columns))
		}
		for _, w := range sheet.layout.Widths {
			if w <= 0 || w > 255 {
				return fmt.Errorf("%w: sheet %q column width %.1f (must be in (0, 255])", ErrInvalidSheet, name, w)
			}
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Document
// ---------------------------------------------------------------------------

// DocumentStyle configures the Word output. Sizes are in points.
type DocumentStyle struct {
	FontFamily     string
	CodeFontFamily string
	HeadingSizes   [4]float64 // levels 1-4
	BodySize       float64
	TableSize      float64
	CodeSize       float64
	HyperlinkColor string // RRGGBB
	PageSize       string
	Margin         float64 // inches, all sides
}

// DefaultDocumentStyle returns A4 with 1-inch margins in Yu Gothic.
func DefaultDocumentStyle() DocumentStyle {
	return DocumentStyle{
		FontFamily:     "Yu Gothic",
		CodeFontFamily: "Consolas",
		HeadingSizes:   [4]float64{16, 14, 12, 11},
		BodySize:       10,
		TableSize:      9,
		CodeSize:       9,
		HyperlinkColor: "0563C1",
		PageSize:       PageSizeA4,
		Margin:         1,
	}
}

// Validate checks fonts, sizes, color, page size and margin.
func (s DocumentStyle) Validate() error {
	if strings.TrimSpace(s.FontFamily) == "" || strings.TrimSpace(s.CodeFontFamily) == "" {
		return fmt.Errorf("%w: font family is empty", ErrInvalidFont)
	}
	sizes := append(s.HeadingSizes[:], s.BodySize, s.TableSize, s.CodeSize)
	for _, size := range sizes {
		if size < 1 || size > 400 {
			return fmt.Errorf("%w: %.1fpt (must be between 1 and 400)", ErrInvalidFont, size)
		}
	}
	if err := ValidateColor(s.HyperlinkColor); err != nil {
		return fmt.Errorf("hyperlink: %w", err)
	}
	if _, err := lookupPageSize(s.PageSize); err != nil {
		return err
	}
	return validateMargin(s.Margin)
}

// ---------------------------------------------------------------------------
// HTML / PDF
// ---------------------------------------------------------------------------

// DefaultStyleName is the embedded stylesheet used for HTML output.
const DefaultStyleName = "print"

// HTMLStyle configures the HTML document.
type HTMLStyle struct {
	Title string
	Lang  string
	Style string // embedded style name, CSS file path, or inline CSS
}

// DefaultHTMLStyle returns the print stylesheet with a Japanese title.
func DefaultHTMLStyle() HTMLStyle {
	return HTMLStyle{
		Title: "HM スキルシート",
		Lang:  "ja",
		Style: DefaultStyleName,
	}
}

// PDFPage configures PDF page layout.
type PDFPage struct {
	Size     string
	MarginMM float64 // all sides
	Footer   bool    // "Page N of M" footer and title header
}

// DefaultPDFPage returns A4 with 20mm margins and page numbers.
func DefaultPDFPage() PDFPage {
	return PDFPage{Size: PageSizeA4, MarginMM: 20, Footer: true}
}

const mmPerInch = 25.4

// marginInches converts the margin to inches.
func (p PDFPage) marginInches() float64 {
	return p.MarginMM / mmPerInch
}

// Validate checks the page size and margin.
func (p PDFPage) Validate() error {
	if _, err := lookupPageSize(p.Size); err != nil {
		return err
	}
	return validateMargin(p.marginInches())
}
