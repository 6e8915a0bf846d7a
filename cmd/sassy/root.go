package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/haliatech/sassy/internal/version"
	"github.com/haliatech/sassy/pkg/config"
	"github.com/haliatech/sassy/pkg/logging"
	"github.com/haliatech/sassy/pkg/messages"
	"github.com/haliatech/sassy/pkg/style"
	"github.com/haliatech/sassy/pkg/template"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	verbosity    int
	force        bool
	templateFile string

	rootCmd = &cobra.Command{
		Use:   "sassy",
		Short: "Scaffold clean-architecture projects from a template",
		Long: `sassy creates a project directory tree from a declarative YAML
template, seeds it into a fresh git repository, and can add or remove a
named feature module inside an already-scaffolded project.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage: true,
	}
)

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&force, "force", false, "Overwrite existing files and tolerate existing directories")
	rootCmd.PersistentFlags().StringVar(&templateFile, "template", "", "Template YAML file (default: embedded template)")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(featureCmd)
	rootCmd.AddCommand(genconfigCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sassy %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
	},
}

// loadSetup loads the app config and the template, preferring the
// --template flag over the configured file over the embedded default.
func loadSetup(catalog *messages.Catalog, renderer *style.Renderer) (*config.Config, *template.Template, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, nil, err
	}

	path := templateFile
	if path == "" {
		path = cfg.TemplateFile
	}

	var tpl *template.Template
	if path == "" {
		tpl, err = template.LoadDefault()
	} else {
		tpl, err = template.Load(path)
	}
	if err != nil {
		var le *template.LoadError
		if errors.As(err, &le) {
			fmt.Fprintln(os.Stderr, renderer.Diagnostic(catalog.Get(le.Name, le.Path)))
		}
		return nil, nil, err
	}

	return cfg, tpl, nil
}
