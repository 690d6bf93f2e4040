package skillsheet

import "errors"

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrWorkbookWrite  = errors.New("workbook write failed")
	ErrDocumentWrite  = errors.New("document write failed")

	// Vocabulary validation errors.
	ErrInvalidVocabulary = errors.New("invalid vocabulary")

	// Style validation errors.
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrInvalidMargin   = errors.New("invalid margin")
	ErrInvalidColor    = errors.New("invalid color")
	ErrInvalidFont     = errors.New("invalid font")
	ErrInvalidSheet    = errors.New("invalid sheet layout")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
