package template_test

import (
	"testing"

	"github.com/haliatech/sassy/pkg/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// fileNodes parses a YAML sequence into its element nodes, the shape
// ParseFile sees when a section is decoded.
func fileNodes(t *testing.T, doc string) []yaml.Node {
	t.Helper()
	var nodes []yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(doc), &nodes))
	return nodes
}

func TestParseFile(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want template.FileTemplate
	}{
		{
			name: "bare file name",
			doc:  `["README.md"]`,
			want: template.FileTemplate{Name: "README.md", Kind: template.FileBare},
		},
		{
			name: "name with content",
			doc:  `[{"VERSION": "0.1.0"}]`,
			want: template.FileTemplate{Name: "VERSION", Content: "0.1.0", Kind: template.FileWithContent},
		},
		{
			name: "null content becomes empty",
			doc:  `[{"empty.txt": null}]`,
			want: template.FileTemplate{Name: "empty.txt", Kind: template.FileWithContent},
		},
		{
			name: "non-string scalar is invalid",
			doc:  `[42]`,
			want: template.FileTemplate{},
		},
		{
			name: "sequence entry is invalid",
			doc:  `[[a, b]]`,
			want: template.FileTemplate{},
		},
		{
			name: "mapping with nested value is invalid",
			doc:  `[{"name": {"deep": true}}]`,
			want: template.FileTemplate{},
		},
		{
			name: "empty mapping is invalid",
			doc:  `[{}]`,
			want: template.FileTemplate{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := fileNodes(t, tt.doc)
			require.Len(t, nodes, 1)
			assert.Equal(t, tt.want, template.ParseFile(&nodes[0]))
		})
	}
}

func TestParseFileNilNode(t *testing.T) {
	assert.Equal(t, template.FileInvalid, template.ParseFile(nil).Kind)
}

func TestSubstitutedName(t *testing.T) {
	f := template.FileTemplate{Name: "test___FEATURE__.py", Kind: template.FileBare}

	assert.Equal(t, "test_login.py", f.SubstitutedName("__FEATURE__", "login"))
	// An empty token must not explode into every position.
	assert.Equal(t, "test___FEATURE__.py", f.SubstitutedName("", "login"))
}

func TestSubstitutedContent(t *testing.T) {
	f := template.FileTemplate{
		Name:    "README.md",
		Content: "# __APPS__\n\n__APPS__ does things.",
		Kind:    template.FileWithContent,
	}

	assert.Equal(t, "# blog\n\nblog does things.", f.SubstitutedContent("__APPS__", "blog"))

	empty := template.FileTemplate{Name: "x"}
	assert.Equal(t, "", empty.SubstitutedContent("__APPS__", "blog"))
}

func TestTemplateUnmarshalDefaultsArgs(t *testing.T) {
	var tpl template.Template
	require.NoError(t, yaml.Unmarshal([]byte(`apps: __APPS__`), &tpl))

	assert.Equal(t, "__APPS__", tpl.Apps)
	assert.NotNil(t, tpl.Args)
	assert.Empty(t, tpl.Args)
	assert.Empty(t, tpl.StructureGroups())
	assert.Empty(t, tpl.FeatureGroups())
}
