package assets

// Built-in asset names.
const (
	BaseStyleName        = "base"
	DocumentTemplateName = "document"
)

// AssetLoader loads CSS styles and HTML templates by name.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	LoadTemplate(name string) (string, error)
}
