package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/haliatech/sassy/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Empty(t, cfg.TemplateFile)
	assert.Equal(t, ".", cfg.TargetDir)
	assert.Equal(t, []string{"root", "tests", "docs"}, cfg.RootClassGroups)
	assert.True(t, cfg.InitRepo)
	assert.Equal(t, "Initial commit.", cfg.CommitMessage)
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
}

func TestLoadMergesConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `
target_dir = "projects"
init_repo = false
root_class_groups = ["root", "docs"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sassy.toml"), []byte(content), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "projects", cfg.TargetDir)
	assert.False(t, cfg.InitRepo)
	assert.Equal(t, []string{"root", "docs"}, cfg.RootClassGroups)
	// Untouched keys keep their defaults.
	assert.Equal(t, "Initial commit.", cfg.CommitMessage)
}

func TestLoadPrefersDottedFileName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sassy.toml"), []byte(`target_dir = "dotted"`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sassy.toml"), []byte(`target_dir = "plain"`), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "dotted", cfg.TargetDir)
}

func TestLoadRejectsBadTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sassy.toml"), []byte(`target_dir = [`), 0o644))

	_, err := config.Load(dir)
	assert.Error(t, err)
}

func TestGenerateConfigContent(t *testing.T) {
	content, err := config.GenerateConfigContent()
	require.NoError(t, err)

	assert.Contains(t, content, "# sassy configuration")
	assert.Contains(t, content, "# target_dir = '.'")
	assert.Contains(t, content, "# init_repo = true")
	// No assignment line survives uncommented.
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		assert.Failf(t, "uncommented line", "line %q should be commented out", line)
	}
}
