package docx

import (
	wdoc "github.com/gomutex/godocx/docx"
	"github.com/gomutex/godocx/wml/ctypes"
)

// Style IDs provided by the godocx default template.
const (
	styleListBullet = "ListBullet"
	styleNoSpacing  = "NoSpacing"
	styleTableGrid  = "TableGrid"
	styleHyperlink  = "Hyperlink"
)

// headerFooterDistance is the template's header and footer offset (0.5in).
const headerFooterDistance = 720

// applyStyles sets the body font and size on the document defaults, the
// heading fonts and sizes, and the hyperlink color.
func applyStyles(styles *ctypes.Styles, s Style) {
	if styles.DocDefaults == nil {
		styles.DocDefaults = &ctypes.DocDefault{}
	}
	if styles.DocDefaults.RunProp == nil {
		styles.DocDefaults.RunProp = &ctypes.RunPropDefault{}
	}
	if styles.DocDefaults.RunProp.RunProp == nil {
		styles.DocDefaults.RunProp.RunProp = &ctypes.RunProperty{}
	}
	setFont(styles.DocDefaults.RunProp.RunProp, s.FontFamily, s.BodySize)

	headings := map[string]float64{
		"Heading1": s.HeadingSizes[0],
		"Heading2": s.HeadingSizes[1],
		"Heading3": s.HeadingSizes[2],
		"Heading4": s.HeadingSizes[3],
	}
	for i := range styles.StyleList {
		st := &styles.StyleList[i]
		if st.ID == nil {
			continue
		}
		if pt, ok := headings[*st.ID]; ok {
			setFont(runProp(st), s.FontFamily, pt)
		}
		if *st.ID == styleHyperlink {
			runProp(st).Color = ctypes.NewColor(s.HyperlinkColor)
		}
	}
}

func runProp(st *ctypes.Style) *ctypes.RunProperty {
	if st.RunProp == nil {
		st.RunProp = &ctypes.RunProperty{}
	}
	return st.RunProp
}

// setFont replaces theme fonts with family for every script.
func setFont(rp *ctypes.RunProperty, family string, pt float64) {
	rp.Fonts = &ctypes.RunFonts{Ascii: family, HAnsi: family, EastAsia: family, CS: family}
	rp.Size = ctypes.NewFontSize(halfPoints(pt))
	rp.SizeCs = ctypes.NewFontSizeCS(halfPoints(pt))
}

// applyPage sets the final section's page size and margins.
func applyPage(body *wdoc.Body, s Style) {
	if body.SectPr == nil {
		body.SectPr = ctypes.NewSectionProper()
	}

	width, height := uint64(s.PageWidth), uint64(s.PageHeight)
	margin, edge, gutter := s.Margin, headerFooterDistance, 0

	body.SectPr.PageSize = &ctypes.PageSize{Width: &width, Height: &height}
	body.SectPr.PageMargin = &ctypes.PageMargin{
		Top:    &margin,
		Right:  &margin,
		Bottom: &margin,
		Left:   &margin,
		Header: &edge,
		Footer: &edge,
		Gutter: &gutter,
	}
}
