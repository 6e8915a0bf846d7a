package template

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/haliatech/sassy/pkg/messages"
	"gopkg.in/yaml.v3"
)

//go:embed sassy.yml
var defaultTemplate []byte

// LoadError carries the catalog message name for a template load
// failure so the CLI can render it as a coded diagnostic.
type LoadError struct {
	// Name is the catalog message name (ConfigNotFound or
	// ConfigBadFormat).
	Name string
	// Path is the template file that failed to load.
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load template %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads and parses a template file from disk.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Name: messages.ConfigNotFound, Path: path, Err: err}
	}
	return parse(data, path)
}

// LoadDefault parses the embedded default template.
func LoadDefault() (*Template, error) {
	return parse(defaultTemplate, "embedded sassy.yml")
}

func parse(data []byte, path string) (*Template, error) {
	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, &LoadError{Name: messages.ConfigBadFormat, Path: path, Err: err}
	}
	return &t, nil
}
