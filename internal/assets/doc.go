// Package assets provides the HTML page template and base stylesheet used by
// the Chrome renderer.
//
// # Loaders
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - go:embed copies shipped with the binary
//	    ├── FilesystemLoader  - a user directory on disk
//	    └── AssetResolver     - custom directory first, embedded on "not found"
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── base.css         # page reset and font defaults
//	└── templates/
//	    └── document.html    # html/template receiving the block list
//
// Asset names are validated so they cannot carry path separators or dots;
// FilesystemLoader additionally resolves symlinks and checks containment.
package assets
