package template

import "slices"

// resolveSection normalizes one template section into groups, preserving
// the template's key order. Missing dirs/files default to empty lists;
// invalid file entries are filtered out.
func resolveSection(s *section) []StructureGroup {
	groups := make([]StructureGroup, 0, len(s.names))
	for _, name := range s.names {
		raw := s.groups[name]

		files := make([]FileTemplate, 0, len(raw.Files))
		for i := range raw.Files {
			if f := ParseFile(&raw.Files[i]); f.Kind != FileInvalid {
				files = append(files, f)
			}
		}

		dirs := raw.Dirs
		if dirs == nil {
			dirs = []string{}
		}
		groups = append(groups, StructureGroup{Name: name, Dirs: dirs, Files: files})
	}
	return groups
}

// StructureGroups returns the normalized groups of the structure
// section. A missing section yields an empty list, never an error.
func (t *Template) StructureGroups() []StructureGroup {
	return resolveSection(&t.structure)
}

// FeatureGroups returns the feature groups with their directory lists
// resolved against the structure section: a feature's dirs entries name
// structure groups, and the first structure group (in template order)
// whose name appears there contributes its directory list. No match
// leaves the feature with no directories. Files are the feature's own.
func (t *Template) FeatureGroups() []StructureGroup {
	structs := t.StructureGroups()
	feats := resolveSection(&t.features)

	resolved := make([]StructureGroup, 0, len(feats))
	for _, feat := range feats {
		dirs := []string{}
		for _, s := range structs {
			if slices.Contains(feat.Dirs, s.Name) {
				dirs = s.Dirs
				break
			}
		}
		resolved = append(resolved, StructureGroup{
			Name:  feat.Name,
			Dirs:  dirs,
			Files: feat.Files,
		})
	}
	return resolved
}
