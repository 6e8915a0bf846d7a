package template_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/haliatech/sassy/pkg/messages"
	"github.com/haliatech/sassy/pkg/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	_, err := template.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)

	var loadErr *template.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, messages.ConfigNotFound, loadErr.Name)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yml")
	require.NoError(t, os.WriteFile(path, []byte("structure: [unclosed"), 0o644))

	_, err := template.Load(path)
	require.Error(t, err)

	var loadErr *template.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, messages.ConfigBadFormat, loadErr.Name)
	assert.Equal(t, path, loadErr.Path)
}

func TestLoadValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
apps: __NAME__
structure:
  root:
    files: [README.md]
`), 0o644))

	tpl, err := template.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "__NAME__", tpl.Apps)
	require.Len(t, tpl.StructureGroups(), 1)
}

func TestLoadDefault(t *testing.T) {
	tpl, err := template.LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, "__APPS__", tpl.Apps)
	assert.Equal(t, "__FEATURE__", tpl.Feature)
	assert.Equal(t, "tests", tpl.Args["*t"])

	groups := tpl.StructureGroups()
	require.NotEmpty(t, groups)
	assert.Equal(t, "root", groups[0].Name)

	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	assert.Contains(t, names, "clean_arch")
	assert.Contains(t, names, "tests")

	feats := tpl.FeatureGroups()
	require.NotEmpty(t, feats)
	// The clean_arch feature borrows the clean_arch structure dirs.
	assert.Equal(t, "clean_arch", feats[0].Name)
	assert.Contains(t, feats[0].Dirs, "applications")
}
