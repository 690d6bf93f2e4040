// Package pipeline implements the Markdown-to-HTML stages:
//   - Markdown preprocessing (line endings, blank lines)
//   - Markdown to HTML fragment via Goldmark (GFM tables, heading IDs,
//     chroma highlighting classes)
//   - image path rewriting for rendering from a temporary file
//   - wrapping the fragment in a document template
//   - CSS injection
//
// PDF generation is handled by the root package using headless Chrome.
package pipeline
