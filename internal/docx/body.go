package docx

import (
	"fmt"
	"regexp"
	"strings"

	wdoc "github.com/gomutex/godocx/docx"
	"github.com/gomutex/godocx/wml/ctypes"
	"github.com/gomutex/godocx/wml/stypes"

	"github.com/alnah/go-skillsheet/internal/markdown"
)

// codeSpacing is the space before and after a code block, in twips (6pt).
const codeSpacing = 120

// inlinePattern matches **bold** spans and [text](url) links.
var inlinePattern = regexp.MustCompile(`\*\*(.+?)\*\*|\[([^\]]+)\]\(([^)\s]+)\)`)

// headingPrefixes maps "#" prefixes to Word heading levels, longest first.
var headingPrefixes = []struct {
	prefix string
	level  int
}{
	{"#### ", 4},
	{"### ", 3},
	{"## ", 2},
	{"# ", 1},
}

// bodyBuilder appends paragraphs and tables to the document body.
type bodyBuilder struct {
	doc   *wdoc.RootDoc
	style Style
}

// scan walks markdown line by line and emits paragraphs and tables.
func (b *bodyBuilder) scan(text string) {
	lines := strings.Split(text, "\n")

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		if level, title, ok := heading(line); ok {
			b.paragraph(fmt.Sprintf("Heading%d", level), title)
			continue
		}

		switch {
		case strings.HasPrefix(line, "- "):
			b.paragraph(styleListBullet, line[2:])
		case strings.HasPrefix(line, "|"):
			table, next := markdown.ParseTable(lines, i)
			b.table(table)
			i = next - 1
		case strings.HasPrefix(line, "```"):
			var code []string
			for i++; i < len(lines) && !strings.HasPrefix(strings.TrimSpace(lines[i]), "```"); i++ {
				code = append(code, lines[i])
			}
			if len(code) > 0 {
				b.code(code)
			}
		default:
			b.paragraph("", line)
		}
	}
}

// heading returns the level and text of a "#".."####" line.
func heading(line string) (level int, title string, ok bool) {
	for _, h := range headingPrefixes {
		if strings.HasPrefix(line, h.prefix) {
			return h.level, strings.TrimSpace(line[len(h.prefix):]), true
		}
	}
	return 0, "", false
}

// paragraph appends one paragraph with the given style ID ("" for Normal).
func (b *bodyBuilder) paragraph(styleID, text string) {
	p := b.doc.AddEmptyParagraph()
	if styleID != "" {
		p.Style(styleID)
	}
	inline(p, text, runFormat{})
}

// runFormat holds per-run overrides on top of the paragraph style.
type runFormat struct {
	bold bool
	size uint64 // half-points, 0 keeps the style size
}

// inline adds text to p as runs, splitting out bold spans and hyperlinks.
func inline(p *wdoc.Paragraph, text string, f runFormat) {
	last := 0
	for _, m := range inlinePattern.FindAllStringSubmatchIndex(text, -1) {
		addRun(p, text[last:m[0]], f)

		if m[2] >= 0 {
			bold := f
			bold.bold = true
			addRun(p, text[m[2]:m[3]], bold)
		} else {
			link := p.AddLink(markdown.StripEmphasis(text[m[4]:m[5]]), text[m[6]:m[7]])
			if f.bold {
				link.Bold(true)
			}
			resizeLast(p, f.size)
		}
		last = m[1]
	}
	addRun(p, text[last:], f)
}

func addRun(p *wdoc.Paragraph, text string, f runFormat) {
	if text == "" {
		return
	}
	r := p.AddText(text)
	if f.bold {
		r.Bold(true)
	}
	resizeLast(p, f.size)
}

// resizeLast sets the size of the run or hyperlink added last to p. The run
// API only takes whole points; table and code sizes may be fractional.
func resizeLast(p *wdoc.Paragraph, size uint64) {
	children := p.GetCT().Children
	if size == 0 || len(children) == 0 {
		return
	}

	last := children[len(children)-1]
	run := last.Run
	if last.Link != nil {
		run = last.Link.Run
	}
	if run == nil {
		return
	}
	if run.Property == nil {
		run.Property = &ctypes.RunProperty{}
	}
	run.Property.Size = ctypes.NewFontSize(size)
	run.Property.SizeCs = ctypes.NewFontSizeCS(size)
}

// table appends a Table Grid table spanning the text width. The first row
// sets the column count and is bold; shorter rows are padded and longer rows
// truncated.
func (b *bodyBuilder) table(t markdown.Table) {
	if t.Empty() {
		return
	}
	cols := len(t.Rows[0])
	colWidth := b.style.textWidth() / cols
	size := halfPoints(b.style.TableSize)

	widths := make([]uint64, cols)
	for c := range widths {
		widths[c] = uint64(colWidth)
	}

	tbl := b.doc.AddTable()
	tbl.Style(styleTableGrid)
	tbl.Width(colWidth*cols, stypes.TableWidthDxa).Grid(widths...)

	for r, row := range t.Rows {
		f := runFormat{bold: r == 0, size: size}
		tr := tbl.AddRow()
		for c := range cols {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			tc := tr.AddCell().Width(colWidth, stypes.TableWidthDxa)
			inline(tc.AddEmptyPara(), cell, f)
		}
	}
}

// code appends a fenced block as one No Spacing paragraph in the code font,
// with line breaks between source lines.
func (b *bodyBuilder) code(lines []string) {
	size := halfPoints(b.style.CodeSize)

	p := b.doc.AddEmptyParagraph()
	p.Style(styleNoSpacing)
	p.Spacing(codeSpacing, codeSpacing)

	for i, line := range lines {
		r := p.AddText(line).Font(b.style.CodeFontFamily)
		resizeLast(p, size)
		if i < len(lines)-1 {
			r.AddBreak(nil)
		}
	}
}
