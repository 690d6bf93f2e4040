package assets

import "errors"

// Sentinel errors for asset lookup.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidAssetName rejects names that are not bare file stems.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath rejects an asset directory that cannot be read.
	ErrInvalidBasePath = errors.New("invalid asset directory")

	ErrAssetRead     = errors.New("asset read failed")
	ErrPathTraversal = errors.New("asset path escapes asset directory")
)
