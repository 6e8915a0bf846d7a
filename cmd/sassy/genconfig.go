package main

import (
	"fmt"
	"os"

	"github.com/haliatech/sassy/pkg/config"
	"github.com/spf13/cobra"
)

var (
	genconfigWrite bool

	genconfigCmd = &cobra.Command{
		Use:   "genconfig",
		Short: "Print a starter .sassy.toml with all values commented out",
		RunE:  runGenconfig,
	}
)

func init() {
	genconfigCmd.Flags().BoolVarP(&genconfigWrite, "write", "w", false, "Write .sassy.toml to the current directory instead of stdout")
}

func runGenconfig(cmd *cobra.Command, args []string) error {
	content, err := config.GenerateConfigContent()
	if err != nil {
		return err
	}

	if !genconfigWrite {
		fmt.Print(content)
		return nil
	}

	const path = ".sassy.toml"
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", path)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
