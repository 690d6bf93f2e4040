package skillsheet

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/alnah/go-skillsheet/internal/assets"
	"github.com/alnah/go-skillsheet/internal/docx"
	"github.com/alnah/go-skillsheet/internal/fileutil"
	"github.com/alnah/go-skillsheet/internal/pipeline"
	"github.com/alnah/go-skillsheet/internal/workbook"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.DocumentRenderer     = (*pipeline.DocumentTemplate)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ pdfConverter                  = (*rodConverter)(nil)
	_ pdfRenderer                   = (*rodRenderer)(nil)
)

// Embedded template names.
const (
	documentTemplateName  = "document"
	pdfHeaderTemplateName = "pdf-header"
	pdfFooterTemplateName = "pdf-footer"
)

// Converter turns skill sheet markdown into Excel, Word, HTML and PDF.
// Create with NewConverter and Close when done; Close releases the browser
// started by the first ToPDF call.
type Converter struct {
	cfg           converterConfig
	logger        zerolog.Logger
	extractor     *Extractor
	assetLoader   assets.AssetLoader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	document      pipeline.DocumentRenderer
	cssInjector   pipeline.CSSInjector
	pdfConverter  pdfConverter

	css       string // stylesheet + highlighting rules
	pdfHeader string
	pdfFooter string
}

// NewConverter creates a Converter with the default vocabulary and styles.
// Returns an error if an option holds an invalid value or an asset fails to
// load.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:           defaultConfig(),
		logger:        zerolog.Nop(),
		preprocessor:  &pipeline.CommonMarkPreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		cssInjector:   &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	extractor, err := NewExtractor(c.cfg.vocabulary, c.logger)
	if err != nil {
		return nil, err
	}
	c.extractor = extractor

	resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	c.assetLoader = resolver

	if err := c.loadAssets(); err != nil {
		return nil, err
	}

	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// validate checks every style option.
func (c *Converter) validate() error {
	if err := c.cfg.workbook.Validate(); err != nil {
		return err
	}
	if err := c.cfg.document.Validate(); err != nil {
		return err
	}
	return c.cfg.pdf.Validate()
}

// loadAssets resolves the stylesheet and loads the HTML templates.
func (c *Converter) loadAssets() error {
	style, err := c.resolveStyle()
	if err != nil {
		return err
	}
	highlight, err := pipeline.HighlightCSS(pipeline.DefaultHighlightStyle)
	if err != nil {
		return fmt.Errorf("generating highlight CSS: %w", err)
	}
	c.css = style + "\n" + highlight

	tmpl, err := c.assetLoader.LoadTemplate(documentTemplateName)
	if err != nil {
		return fmt.Errorf("loading document template: %w", err)
	}
	if c.document, err = pipeline.NewDocumentTemplate(tmpl); err != nil {
		return fmt.Errorf("initializing document template: %w", err)
	}

	if c.pdfHeader, err = c.assetLoader.LoadTemplate(pdfHeaderTemplateName); err != nil {
		return fmt.Errorf("loading PDF header template: %w", err)
	}
	if c.pdfFooter, err = c.assetLoader.LoadTemplate(pdfFooterTemplateName); err != nil {
		return fmt.Errorf("loading PDF footer template: %w", err)
	}
	return nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS.
func (c *Converter) resolveStyle() (string, error) {
	input := c.cfg.html.Style
	if input == "" {
		input = DefaultStyleName
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("loading style file %q: %w", input, err)
		}
		return string(content), nil
	}

	if fileutil.IsCSS(input) {
		return input, nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) {
			return "", fmt.Errorf("%w: %q", ErrStyleNotFound, input)
		}
		return "", fmt.Errorf("loading style %q: %w", input, err)
	}
	return css, nil
}

// Extract returns the records of the skill sheet in input.
func (c *Converter) Extract(input Input) *SkillSheet {
	return c.extractor.Extract(input.Markdown)
}

// ToWorkbook builds the seven-sheet Excel workbook.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) ToWorkbook(ctx context.Context, input Input) (data []byte, err error) {
	defer recoverInto(&err)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sheet := c.Extract(input)
	data, err = workbook.Bytes(workbookSheets(sheet, c.cfg.workbook), workbook.Style{
		HeaderFontColor: c.cfg.workbook.HeaderFontColor,
		HeaderFillColor: c.cfg.workbook.HeaderFillColor,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkbookWrite, err)
	}
	return data, nil
}

// ToDocument renders the markdown as a Word document.
func (c *Converter) ToDocument(ctx context.Context, input Input) (data []byte, err error) {
	defer recoverInto(&err)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content := pipeline.NormalizeLineEndings(input.Markdown)
	data, err = docx.Render(content, documentStyle(c.cfg.document))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentWrite, err)
	}
	return data, nil
}

// ToHTML renders the markdown as a standalone HTML document with the
// configured stylesheet inlined.
func (c *Converter) ToHTML(ctx context.Context, input Input) (data []byte, err error) {
	defer recoverInto(&err)

	htmlContent, err := c.renderHTML(ctx, input)
	if err != nil {
		return nil, err
	}
	return []byte(htmlContent), nil
}

// ToPDF renders the HTML document to PDF in headless Chrome.
func (c *Converter) ToPDF(ctx context.Context, input Input) (data []byte, err error) {
	defer recoverInto(&err)

	htmlContent, err := c.renderHTML(ctx, input)
	if err != nil {
		return nil, err
	}

	opts := &pdfOptions{Page: c.cfg.pdf}
	if c.cfg.pdf.Footer {
		opts.HeaderTemplate = c.pdfHeader
		opts.FooterTemplate = c.pdfFooter
	}

	data, err = c.pdfConverter.ToPDF(ctx, htmlContent, opts)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	return data, nil
}

// renderHTML runs preprocessing, goldmark, path rewriting, the document
// template and CSS injection.
func (c *Converter) renderHTML(ctx context.Context, input Input) (string, error) {
	content := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body, err := c.htmlConverter.ToHTML(ctx, content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	if input.SourceDir != "" {
		body, err = pipeline.RewriteImagePaths(body, input.SourceDir)
		if err != nil {
			return "", fmt.Errorf("rewriting image paths: %w", err)
		}
	}

	doc, err := c.document.Render(ctx, pipeline.DocumentData{
		Title: c.cfg.html.Title,
		Lang:  c.cfg.html.Lang,
		Body:  body,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	doc = c.cssInjector.InjectCSS(ctx, doc, c.css)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return doc, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// recoverInto turns a panic into an error.
func recoverInto(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("internal error: %v", r)
	}
}

// documentStyle maps DocumentStyle to the renderer's units.
// The style is validated by NewConverter.
func documentStyle(s DocumentStyle) docx.Style {
	size, _ := lookupPageSize(s.PageSize)
	margin := int(s.Margin * docx.TwipsPerInch)
	return docx.Style{
		FontFamily:     s.FontFamily,
		CodeFontFamily: s.CodeFontFamily,
		HeadingSizes:   s.HeadingSizes,
		BodySize:       s.BodySize,
		TableSize:      s.TableSize,
		CodeSize:       s.CodeSize,
		HyperlinkColor: s.HyperlinkColor,
		PageWidth:      size.widthTwips,
		PageHeight:     size.heightTwips,
		Margin:         margin,
	}
}
