// Package markdown implements the line-oriented extraction primitives used to
// pull structured records out of a skill sheet document.
//
// It is not a markdown parser. Every function works on plain text and relies
// on a small set of conventions:
//   - headings are lines starting with 1-6 '#' followed by a space
//   - tables are consecutive lines starting with '|'
//   - bullets are lines starting with "- ", "* " or "+ " after indentation
//
// Nothing in this package returns an error. Absent sections, tables, or
// items produce zero values so callers can build partial records.
package markdown
