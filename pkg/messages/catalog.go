package messages

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Symbolic message names. The catalog is keyed by these; callers never
// hardcode codes or text.
const (
	FileCreateOK     = "file_create_ok"
	DirCreateOK      = "dir_create_ok"
	RepoInitOK       = "repo_init_ok"
	FileDeleteOK     = "file_delete_ok"
	FileExists       = "file_exists"
	DirExists        = "dir_exists"
	FileNotFound     = "file_not_found"
	FileCreateFailed = "file_create_failed"
	DirCreateFailed  = "dir_create_failed"
	FileDeleteFailed = "file_delete_failed"
	RepoInitFailed   = "repo_init_failed"
	ConfigNotFound   = "yaml_file_not_found"
	ConfigBadFormat  = "bad_yaml_format"

	// fallbackName is returned for lookups of unknown names.
	fallbackName = "error_msg"
)

//go:embed messages.yml
var catalogData []byte

type entry struct {
	Code int    `yaml:"code"`
	Text string `yaml:"text"`
}

// Catalog maps symbolic names to message templates. Severity is derived
// from the leading digit of the entry code through the catalog's own
// severity table.
type Catalog struct {
	entries  map[string]entry
	severity map[int]string
}

// NewCatalog loads the embedded message catalog.
func NewCatalog() (*Catalog, error) {
	return ParseCatalog(catalogData)
}

// MustCatalog is NewCatalog for wiring paths where the embedded catalog
// being unparsable is a build defect.
func MustCatalog() *Catalog {
	c, err := NewCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCatalog builds a Catalog from raw YAML.
func ParseCatalog(data []byte) (*Catalog, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse message catalog: %w", err)
	}

	c := &Catalog{
		entries:  make(map[string]entry, len(raw)),
		severity: make(map[int]string),
	}

	for name, node := range raw {
		if name == "severity" {
			if err := node.Decode(&c.severity); err != nil {
				return nil, fmt.Errorf("failed to parse severity table: %w", err)
			}
			continue
		}
		var e entry
		if err := node.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to parse message %q: %w", name, err)
		}
		c.entries[name] = e
	}

	if _, ok := c.entries[fallbackName]; !ok {
		return nil, fmt.Errorf("message catalog has no %q fallback entry", fallbackName)
	}
	return c, nil
}

// Get builds a fresh Diagnostic for the named message. An unknown name
// falls back to the error_msg entry with extra forced to the requested
// name, so callers always receive a diagnostic.
func (c *Catalog) Get(name, extra string) *Diagnostic {
	e, ok := c.entries[name]
	if !ok {
		e = c.entries[fallbackName]
		extra = name
	}
	return newDiagnostic(e.Code, c.severityFor(e.Code), e.Text, extra)
}

// severityFor selects severity from the code's leading digit.
func (c *Catalog) severityFor(code int) Severity {
	digit := code
	for digit >= 10 {
		digit /= 10
	}
	return SeverityFromName(c.severity[digit])
}
