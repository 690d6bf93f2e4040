package docx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gomutex/godocx"
	wdoc "github.com/gomutex/godocx/docx"
)

// TwipsPerInch converts inches to the twentieths of a point Word uses for
// page geometry.
const TwipsPerInch = 1440

// ErrInvalidStyle indicates page geometry or font sizes that cannot produce a
// document.
var ErrInvalidStyle = errors.New("invalid document style")

// Style holds fonts, sizes in points and page geometry in twips.
type Style struct {
	FontFamily     string
	CodeFontFamily string
	HeadingSizes   [4]float64 // levels 1..4
	BodySize       float64
	TableSize      float64
	CodeSize       float64
	HyperlinkColor string // RRGGBB
	PageWidth      int
	PageHeight     int
	Margin         int // applied to all four sides
}

func (s Style) validate() error {
	if s.PageWidth <= 0 || s.PageHeight <= 0 {
		return fmt.Errorf("%w: page %dx%d", ErrInvalidStyle, s.PageWidth, s.PageHeight)
	}
	if s.Margin < 0 || 2*s.Margin >= s.PageWidth || 2*s.Margin >= s.PageHeight {
		return fmt.Errorf("%w: margin %d does not fit the page", ErrInvalidStyle, s.Margin)
	}
	sizes := append(s.HeadingSizes[:], s.BodySize, s.TableSize, s.CodeSize)
	for _, pt := range sizes {
		if pt <= 0 {
			return fmt.Errorf("%w: font size %.1f", ErrInvalidStyle, pt)
		}
	}
	return nil
}

// textWidth is the usable width between the side margins.
func (s Style) textWidth() int {
	return s.PageWidth - 2*s.Margin
}

// halfPoints converts a point size to the w:sz unit.
func halfPoints(pt float64) uint64 {
	return uint64(math.Round(pt * 2))
}

// Render converts markdown to a .docx package held in memory.
func Render(markdown string, style Style) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, markdown, style); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write converts markdown and streams the .docx package to w.
func Write(w io.Writer, markdown string, style Style) error {
	if err := style.validate(); err != nil {
		return err
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("loading document template: %w", err)
	}
	if doc.DocStyles != nil {
		applyStyles(doc.DocStyles, style)
	}
	if doc.Document.Body == nil {
		doc.Document.Body = wdoc.NewBody(doc)
	}
	applyPage(doc.Document.Body, style)

	b := &bodyBuilder{doc: doc, style: style}
	b.scan(markdown)

	if err := doc.Write(w); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}
