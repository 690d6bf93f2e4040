package skillsheet

import (
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds the settings applied by options.
type converterConfig struct {
	vocabulary Vocabulary
	workbook   WorkbookStyle
	document   DocumentStyle
	html       HTMLStyle
	pdf        PDFPage
	assetPath  string
	timeout    time.Duration
}

// defaultTimeout bounds page loading in the PDF renderer.
const defaultTimeout = 30 * time.Second

func defaultConfig() converterConfig {
	return converterConfig{
		vocabulary: DefaultVocabulary(),
		workbook:   DefaultWorkbookStyle(),
		document:   DefaultDocumentStyle(),
		html:       DefaultHTMLStyle(),
		pdf:        DefaultPDFPage(),
		timeout:    defaultTimeout,
	}
}

// WithVocabulary sets the section headings used for extraction.
func WithVocabulary(v Vocabulary) Option {
	return func(c *Converter) {
		c.cfg.vocabulary = v
	}
}

// WithWorkbookStyle sets the Excel sheet layout and header colors.
func WithWorkbookStyle(s WorkbookStyle) Option {
	return func(c *Converter) {
		c.cfg.workbook = s
	}
}

// WithDocumentStyle sets the Word fonts, sizes and page layout.
func WithDocumentStyle(s DocumentStyle) Option {
	return func(c *Converter) {
		c.cfg.document = s
	}
}

// WithHTMLStyle sets the HTML title, language and stylesheet.
func WithHTMLStyle(s HTMLStyle) Option {
	return func(c *Converter) {
		c.cfg.html = s
	}
}

// WithPDFPage sets the PDF page size, margin and footer.
func WithPDFPage(p PDFPage) Option {
	return func(c *Converter) {
		c.cfg.pdf = p
	}
}

// WithAssetPath overrides embedded styles and templates with files from a
// directory. Assets missing there fall back to the embedded ones.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithTimeout sets the PDF page load timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("skillsheet: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithLogger sets the logger used for diagnostics. The default discards.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Converter) {
		c.logger = l
	}
}
