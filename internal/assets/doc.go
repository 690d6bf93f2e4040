// Package assets provides the CSS styles and HTML templates used for HTML
// and PDF output.
//
//	AssetLoader (interface)
//	    ├── EmbeddedLoader    - go:embed copies (print, compact styles;
//	    │                       document, pdf-header, pdf-footer templates)
//	    ├── FilesystemLoader  - custom directory on disk
//	    └── AssetResolver     - custom first, embedded fallback
//
// A custom directory mirrors the embedded layout:
//
//	{basePath}/
//	├── styles/{name}.css
//	└── templates/{name}.html
//
// Names are validated before use and resolved file paths must stay inside
// basePath, symlinks included.
package assets
