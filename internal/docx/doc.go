// Package docx writes markdown as a Word (.docx) document.
//
// The converter is a line scanner, not a markdown parser. It understands
// headings up to level four, "- " bullets, pipe tables, fenced code blocks,
// **bold** spans and [text](url) links. Everything else becomes a plain
// paragraph.
//
// Documents are built with godocx on top of its default template, which
// carries the Heading1-4, ListBullet, NoSpacing, TableGrid and Hyperlink
// styles. Fonts, sizes, the hyperlink color and the page geometry are applied
// to the template before the body is written.
package docx
