package assets

import (
	"embed"
	"fmt"
)

//go:embed styles/*.css templates/*.html
var files embed.FS

// EmbeddedLoader serves the document template and base stylesheet built
// into the binary. It is the default when no asset path is configured.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle returns styles/<name>.css.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return readEmbedded("styles", name, ".css", ErrStyleNotFound)
}

// LoadTemplate returns templates/<name>.html.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return readEmbedded("templates", name, ".html", ErrTemplateNotFound)
}

func readEmbedded(dir, name, ext string, notFound error) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := files.ReadFile(dir + "/" + name + ext)
	if err != nil {
		return "", fmt.Errorf("%w: %q", notFound, name)
	}
	return string(content), nil
}

var _ AssetLoader = (*EmbeddedLoader)(nil)
