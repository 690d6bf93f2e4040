package assets

// AssetLoader loads the CSS styles and HTML templates used by the HTML and
// PDF renderers. Names never carry an extension.
type AssetLoader interface {
	// LoadStyle returns styles/{name}.css, or ErrStyleNotFound.
	LoadStyle(name string) (string, error)

	// LoadTemplate returns templates/{name}.html, or ErrTemplateNotFound.
	LoadTemplate(name string) (string, error)
}
