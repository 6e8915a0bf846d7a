package scaffold

import (
	"path/filepath"
	"strings"

	"github.com/haliatech/sassy/pkg/logging"
	"github.com/haliatech/sassy/pkg/messages"
	"github.com/haliatech/sassy/pkg/paths"
	"github.com/haliatech/sassy/pkg/result"
	"github.com/haliatech/sassy/pkg/template"
	"github.com/haliatech/sassy/pkg/vcs"
	"github.com/rs/zerolog"
)

// Reporter receives the outcome of every individual operation as the
// orchestration runs. The library itself never prints.
type Reporter func(result.Outcome)

// Options wires a Scaffolder's collaborators. FS and Catalog are
// required; a nil Repo disables repository seeding.
type Options struct {
	FS        FS
	Catalog   *messages.Catalog
	TargetDir string
	RootClass []string
	Overwrite bool
	Repo      vcs.Initializer
	Report    Reporter
}

// Scaffolder materializes one project from a template: the full
// structure, or a single feature added to or removed from an existing
// structure. Everything is resolved fresh from the template per call;
// no state survives between invocations.
type Scaffolder struct {
	tpl     *template.Template
	project string
	root    string
	opts    Options
	mat     *Materializer
	log     zerolog.Logger
}

// New builds a Scaffolder for the named project. The project tree lives
// at TargetDir/project.
func New(tpl *template.Template, project string, opts Options) *Scaffolder {
	return &Scaffolder{
		tpl:     tpl,
		project: project,
		root:    filepath.Join(opts.TargetDir, project),
		opts:    opts,
		mat:     NewMaterializer(opts.FS, opts.Catalog, opts.Overwrite),
		log:     logging.GetLogger("scaffold"),
	}
}

// Root returns the project root the Scaffolder materializes into.
func (s *Scaffolder) Root() string { return s.root }

func (s *Scaffolder) report(o result.Outcome) {
	if s.opts.Report != nil {
		s.opts.Report(o)
	}
}

// CreateStructure materializes every structure group of the template.
// The first directory-creation failure aborts the whole pass and is
// returned; file-creation failures are reported but do not abort. When
// every group is processed and a repository initializer is wired, the
// created tree is handed to it and the seeding outcome is returned.
func (s *Scaffolder) CreateStructure() result.Outcome {
	var repoRoot string
	var created []string

	for _, group := range s.tpl.StructureGroups() {
		dirs := group.Dirs
		if len(dirs) == 0 {
			dirs = []string{""}
		}

		for _, dirName := range dirs {
			path := paths.Build(s.root, s.project, group.Name, dirName, s.opts.RootClass)

			out := s.mat.CreateDirectory(path)
			s.report(out)
			if out.Failed() {
				s.log.Error().Str("path", path).Msg("structure creation aborted")
				return out
			}

			if repoRoot == "" {
				repoRoot = path
			} else {
				created = append(created, path)
			}

			for _, file := range group.Files {
				name := file.SubstitutedName(s.tpl.Apps, s.project)
				content := file.SubstitutedContent(s.tpl.Apps, s.project)
				filePath := filepath.Join(path, name)
				created = append(created, filePath)

				s.report(s.mat.CreateFile(filePath, content))
			}
		}
	}

	if repoRoot != "" && s.opts.Repo != nil {
		out := s.seedRepo(repoRoot, created)
		s.report(out)
		return out
	}
	return result.Outcome{}
}

// CreateFeature materializes the feature's file templates into the
// directories its groups resolve to, skipping directories rejected by
// the filter. Directories are assumed to exist from a prior structure
// pass; per-file failures never abort the traversal.
func (s *Scaffolder) CreateFeature(feature string, dirFilters []string) {
	feature = paths.NormalizeFeature(feature)

	for _, group := range s.tpl.FeatureGroups() {
		for _, dirName := range group.Dirs {
			if !s.ValidDirectory(dirName, dirFilters) {
				continue
			}
			path := paths.Build(s.root, s.project, group.Name, dirName, s.opts.RootClass)

			for _, file := range group.Files {
				name := file.SubstitutedName(s.tpl.Feature, feature)
				content := file.SubstitutedContent(s.tpl.Feature, feature)

				s.report(s.mat.CreateFile(filepath.Join(path, name), content))
			}
		}
	}
}

// DeleteFeature removes the files a feature would have created. Only
// names are substituted; content is irrelevant to deletion.
func (s *Scaffolder) DeleteFeature(feature string, dirFilters []string) {
	feature = paths.NormalizeFeature(feature)

	for _, group := range s.tpl.FeatureGroups() {
		for _, dirName := range group.Dirs {
			if !s.ValidDirectory(dirName, dirFilters) {
				continue
			}
			path := paths.Build(s.root, s.project, group.Name, dirName, s.opts.RootClass)

			for _, file := range group.Files {
				name := file.SubstitutedName(s.tpl.Feature, feature)

				s.report(s.mat.DeleteFile(filepath.Join(path, name)))
			}
		}
	}
}

// ValidDirectory applies the optional directory filter: no filters
// admits everything; a filter starting with '*' is resolved through the
// template's args mapping (unresolvable tokens match nothing); matching
// is by suffix so a filter like "apps" also admits "tests/apps".
func (s *Scaffolder) ValidDirectory(directory string, filters []string) bool {
	return IsValidDirectory(directory, filters, s.tpl.Args)
}

// IsValidDirectory is the pure form of the directory filter.
func IsValidDirectory(directory string, filters []string, args map[string]string) bool {
	if len(filters) == 0 {
		return true
	}
	for _, f := range filters {
		if strings.HasPrefix(f, "*") {
			resolved, ok := args[f]
			if !ok {
				resolved = "invalid"
			}
			f = resolved
		}
		if strings.HasSuffix(directory, f) {
			return true
		}
	}
	return false
}

// seedRepo is the single catch-and-convert boundary around the
// repository initializer.
func (s *Scaffolder) seedRepo(root string, items []string) result.Outcome {
	commit, err := s.opts.Repo.Init(root, items)
	if err != nil {
		return result.Failure(s.opts.Catalog.Get(messages.RepoInitFailed, root).WithDetail(err.Error()))
	}
	return result.Success(s.opts.Catalog.Get(messages.RepoInitOK, root).WithDetail("commit " + commit))
}
