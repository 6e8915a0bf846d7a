package config

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent renders the default configuration as TOML with
// every value commented out, ready to be written as a starter
// .sassy.toml.
func GenerateConfigContent() (string, error) {
	data, err := toml.Marshal(Default())
	if err != nil {
		return "", fmt.Errorf("failed to marshal default config: %w", err)
	}

	header := "# sassy configuration\n# Uncomment values to override the defaults.\n\n"
	return header + commentOutConfigValues(string(data)), nil
}

// commentOutConfigValues comments out every assignment line, leaving
// blanks, comments and section headers as-is.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
