// Package topics serves the embedded usage documentation for the
// topics command.
package topics

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed docs/*.md
var docsFS embed.FS

const docsDir = "docs"

// List returns the available topic names, sorted.
func List() ([]string, error) {
	entries, err := docsFS.ReadDir(docsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded docs: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names, nil
}

// Content returns the raw markdown for a topic.
func Content(name string) (string, error) {
	data, err := docsFS.ReadFile(docsDir + "/" + name + ".md")
	if err != nil {
		return "", fmt.Errorf("unknown topic %q", name)
	}
	return string(data), nil
}

// Show renders a topic for terminal display.
func Show(name string, renderer Renderer) (string, error) {
	content, err := Content(name)
	if err != nil {
		return "", err
	}
	return renderer.Render(content, ".md"), nil
}
