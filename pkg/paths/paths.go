// Package paths computes scaffold target paths. Pure path arithmetic:
// nothing here touches the filesystem.
package paths

import (
	"path/filepath"
	"strings"
)

// NormalizeProject turns a project name into its package-directory form,
// replacing hyphens with underscores.
func NormalizeProject(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// NormalizeFeature lowercases a feature name and replaces hyphens with
// underscores before placeholder substitution.
func NormalizeFeature(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "-", "_")
}

// Build computes the target path for one directory of a structural
// group. Directories of root-class groups land directly under the
// project root (the root itself when dirName is empty); every other
// group nests under a subdirectory named after the project.
func Build(root, project, groupName, dirName string, rootClass []string) string {
	for _, name := range rootClass {
		if groupName == name {
			return filepath.Join(root, dirName)
		}
	}
	return filepath.Join(root, NormalizeProject(project), dirName)
}
