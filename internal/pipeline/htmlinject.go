package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
)

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized to prevent injection attacks.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		// Find the closing > of <body...>
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// DocumentData fills the document template.
// Body is trusted HTML produced by the markdown converter.
type DocumentData struct {
	Title string
	Lang  string
	Body  string
}

// DocumentRenderer wraps an HTML fragment in a complete document.
type DocumentRenderer interface {
	Render(ctx context.Context, data DocumentData) (string, error)
}

// DocumentTemplate renders DocumentData with an html/template.
// The template sees .Title, .Lang and .Body (already HTML).
type DocumentTemplate struct {
	tmpl *template.Template
}

// NewDocumentTemplate parses tmplContent.
func NewDocumentTemplate(tmplContent string) (*DocumentTemplate, error) {
	tmpl, err := template.New("document").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing document template: %w", err)
	}
	return &DocumentTemplate{tmpl: tmpl}, nil
}

// Render executes the template.
func (d *DocumentTemplate) Render(ctx context.Context, data DocumentData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	view := struct {
		Title string
		Lang  string
		Body  template.HTML
	}{
		Title: data.Title,
		Lang:  data.Lang,
		Body:  template.HTML(data.Body), // #nosec G203 -- goldmark output without WithUnsafe
	}

	var buf bytes.Buffer
	if err := d.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("rendering document template: %w", err)
	}
	return buf.String(), nil
}
