// Package template models the declarative scaffold template: named
// structure groups of directories and file templates, plus feature
// groups that borrow their directories from the structure section.
package template

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// FileKind tags the source encoding of a file template entry.
type FileKind int

const (
	// FileInvalid marks an entry of an unrecognized shape. Resolvers
	// skip these rather than failing, a deliberate permissive-parse
	// policy.
	FileInvalid FileKind = iota
	// FileBare is a bare file name; content defaults to empty.
	FileBare
	// FileWithContent is a single-entry name-to-content mapping.
	FileWithContent
)

// FileTemplate is one file entry of a group: a relative name and
// optional literal content.
type FileTemplate struct {
	Name    string
	Content string
	Kind    FileKind
}

// ParseFile decodes the two supported encodings of a file entry: a bare
// string, or a single-entry mapping of name to content. Anything else
// yields an invalid template.
func ParseFile(node *yaml.Node) FileTemplate {
	if node == nil {
		return FileTemplate{}
	}

	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag != "!!str" {
			return FileTemplate{}
		}
		return FileTemplate{Name: node.Value, Kind: FileBare}

	case yaml.MappingNode:
		if len(node.Content) < 2 {
			return FileTemplate{}
		}
		key, val := node.Content[0], node.Content[1]
		if key.Kind != yaml.ScalarNode || key.Tag != "!!str" {
			return FileTemplate{}
		}
		if val.Kind != yaml.ScalarNode {
			return FileTemplate{}
		}
		content := val.Value
		if val.Tag == "!!null" {
			content = ""
		}
		return FileTemplate{Name: key.Value, Content: content, Kind: FileWithContent}
	}

	return FileTemplate{}
}

// SubstitutedName returns the file name with every occurrence of token
// replaced by value. Case-sensitive literal replacement, no templating.
func (f FileTemplate) SubstitutedName(token, value string) string {
	if token == "" {
		return f.Name
	}
	return strings.ReplaceAll(f.Name, token, value)
}

// SubstitutedContent returns the content with every occurrence of token
// replaced by value.
func (f FileTemplate) SubstitutedContent(token, value string) string {
	if token == "" || f.Content == "" {
		return f.Content
	}
	return strings.ReplaceAll(f.Content, token, value)
}

// StructureGroup is one named bundle of directories and file templates,
// normalized from either template section.
type StructureGroup struct {
	Name  string
	Dirs  []string
	Files []FileTemplate
}

// rawGroup is the on-disk shape of a group entry. File entries stay as
// raw nodes until ParseFile classifies them.
type rawGroup struct {
	Dirs  []string    `yaml:"dirs"`
	Files []yaml.Node `yaml:"files"`
}

// section preserves the template's key order, which drives group
// iteration and feature resolution.
type section struct {
	names  []string
	groups map[string]rawGroup
}

func (s *section) decode(node *yaml.Node) error {
	s.groups = make(map[string]rawGroup)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		var g rawGroup
		if err := node.Content[i+1].Decode(&g); err != nil {
			return err
		}
		s.names = append(s.names, name)
		s.groups[name] = g
	}
	return nil
}

// Template is the fully parsed, read-only template. Missing sections
// degrade to empty; loading never mutates it afterwards.
type Template struct {
	// Apps is the placeholder token substituted with the project name.
	Apps string
	// Feature is the placeholder token substituted with the feature name.
	Feature string
	// Args maps symbolic directory-filter tokens (e.g. "*a") to
	// directory-group names.
	Args map[string]string

	structure section
	features  section
}

// UnmarshalYAML decodes the template while preserving section key order.
func (t *Template) UnmarshalYAML(root *yaml.Node) error {
	var doc struct {
		Apps      string            `yaml:"apps"`
		Feature   string            `yaml:"feature"`
		Args      map[string]string `yaml:"args"`
		Structure yaml.Node         `yaml:"structure"`
		Features  yaml.Node         `yaml:"features"`
	}
	if err := root.Decode(&doc); err != nil {
		return err
	}

	t.Apps = doc.Apps
	t.Feature = doc.Feature
	t.Args = doc.Args
	if t.Args == nil {
		t.Args = map[string]string{}
	}
	if err := t.structure.decode(&doc.Structure); err != nil {
		return err
	}
	return t.features.decode(&doc.Features)
}
