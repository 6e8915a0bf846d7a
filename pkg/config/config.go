// Package config loads sassy's application configuration: defaults
// merged with an optional .sassy.toml found next to the invocation or
// in the XDG config directory. The scaffold template itself is separate
// (pkg/template); this package only configures how the tool runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the fully merged application configuration.
type Config struct {
	// TemplateFile points at a template YAML on disk; empty selects the
	// embedded default template.
	TemplateFile string `koanf:"template_file" toml:"template_file"`

	// TargetDir is the directory project trees are created under.
	TargetDir string `koanf:"target_dir" toml:"target_dir"`

	// RootClassGroups names the structure groups whose directories are
	// placed directly under the project root instead of the nested
	// module directory.
	RootClassGroups []string `koanf:"root_class_groups" toml:"root_class_groups"`

	// InitRepo controls whether a created structure is seeded into a
	// git repository.
	InitRepo bool `koanf:"init_repo" toml:"init_repo"`

	// CommitMessage is the message of the seeding commit.
	CommitMessage string `koanf:"commit_message" toml:"commit_message"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TargetDir:       ".",
		RootClassGroups: []string{"root", "tests", "docs"},
		InitRepo:        true,
		CommitMessage:   "Initial commit.",
	}
}

// configFileNames are probed in order at each search location.
var configFileNames = []string{".sassy.toml", "sassy.toml"}

// findConfigFile returns the first config file found in dir, then in
// the XDG config directory, or "" when none exists.
func findConfigFile(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	path := filepath.Join(xdg.ConfigHome, "sassy", "sassy.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// Load merges the defaults with the config file discovered from dir
// (usually the working directory). A missing file is not an error.
func Load(dir string) (*Config, error) {
	k := koanf.New(".")

	defaults := Default()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"template_file":     defaults.TemplateFile,
		"target_dir":        defaults.TargetDir,
		"root_class_groups": defaults.RootClassGroups,
		"init_repo":         defaults.InitRepo,
		"commit_message":    defaults.CommitMessage,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load config defaults: %w", err)
	}

	if path := findConfigFile(dir); path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return &cfg, nil
}
