package main

import (
	"github.com/haliatech/sassy/pkg/messages"
	"github.com/haliatech/sassy/pkg/scaffold"
	"github.com/haliatech/sassy/pkg/style"
	"github.com/spf13/cobra"
)

var (
	featureProject string
	featureDirs    []string

	featureCmd = &cobra.Command{
		Use:   "feature",
		Short: "Add or remove a feature module in a scaffolded project",
	}

	featureAddCmd = &cobra.Command{
		Use:   "add <name>",
		Short: "Create the feature's files across the project layers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeature(args[0], false)
		},
	}

	featureRemoveCmd = &cobra.Command{
		Use:   "remove <name>",
		Short: "Delete the feature's files across the project layers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeature(args[0], true)
		},
	}
)

func init() {
	featureCmd.PersistentFlags().StringVarP(&featureProject, "project", "p", "", "Project name (required)")
	featureCmd.PersistentFlags().StringSliceVar(&featureDirs, "dirs", nil, "Only affect directories matching these filters (tokens starting with '*' resolve through the template's args mapping)")
	_ = featureCmd.MarkPersistentFlagRequired("project")

	featureCmd.AddCommand(featureAddCmd)
	featureCmd.AddCommand(featureRemoveCmd)
}

func runFeature(feature string, remove bool) error {
	renderer := style.NewRenderer()
	catalog, err := messages.NewCatalog()
	if err != nil {
		return err
	}

	cfg, tpl, err := loadSetup(catalog, renderer)
	if err != nil {
		return err
	}

	s := scaffold.New(tpl, featureProject, scaffold.Options{
		FS:        scaffold.NewOSFS(),
		Catalog:   catalog,
		TargetDir: cfg.TargetDir,
		RootClass: cfg.RootClassGroups,
		Overwrite: force,
		Report:    printOutcome(renderer),
	})

	if remove {
		s.DeleteFeature(feature, featureDirs)
	} else {
		s.CreateFeature(feature, featureDirs)
	}
	return nil
}
