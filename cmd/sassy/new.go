package main

import (
	"errors"
	"fmt"

	"github.com/haliatech/sassy/pkg/messages"
	"github.com/haliatech/sassy/pkg/result"
	"github.com/haliatech/sassy/pkg/scaffold"
	"github.com/haliatech/sassy/pkg/style"
	"github.com/haliatech/sassy/pkg/vcs"
	"github.com/spf13/cobra"
)

var (
	newTarget string
	noRepo    bool

	newCmd = &cobra.Command{
		Use:   "new <project>",
		Short: "Create a project structure from the template",
		Long: `Create the full directory structure for a new project, materialize
its file templates with the project name substituted, and seed the tree
into a fresh git repository.`,
		Args: cobra.ExactArgs(1),
		RunE: runNew,
	}
)

func init() {
	newCmd.Flags().StringVar(&newTarget, "target", "", "Directory to create the project under (default: configured target_dir)")
	newCmd.Flags().BoolVar(&noRepo, "no-repo", false, "Skip git repository seeding")
}

func runNew(cmd *cobra.Command, args []string) error {
	project := args[0]
	renderer := style.NewRenderer()
	catalog, err := messages.NewCatalog()
	if err != nil {
		return err
	}

	cfg, tpl, err := loadSetup(catalog, renderer)
	if err != nil {
		return err
	}

	target := newTarget
	if target == "" {
		target = cfg.TargetDir
	}

	var repo vcs.Initializer
	if cfg.InitRepo && !noRepo {
		repo = vcs.NewGit(cfg.CommitMessage)
	}

	s := scaffold.New(tpl, project, scaffold.Options{
		FS:        scaffold.NewOSFS(),
		Catalog:   catalog,
		TargetDir: target,
		RootClass: cfg.RootClassGroups,
		Overwrite: force,
		Repo:      repo,
		Report:    printOutcome(renderer),
	})

	fmt.Printf("creating project at %s\n", s.Root())
	if out := s.CreateStructure(); out.Failed() {
		return errors.New(out.Err().Text)
	}
	return nil
}

// printOutcome returns the reporter the scaffolder streams per-operation
// outcomes through.
func printOutcome(renderer *style.Renderer) scaffold.Reporter {
	return func(o result.Outcome) {
		if line := renderer.Outcome(o); line != "" {
			fmt.Println(line)
		}
	}
}
