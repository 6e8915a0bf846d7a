package main

import (
	"fmt"
	"os"

	"github.com/haliatech/sassy/pkg/topics"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics [topic]",
	Short: "Show usage documentation",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTopics,
}

func runTopics(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		names, err := topics.List()
		if err != nil {
			return err
		}
		fmt.Println("Available topics:")
		for _, name := range names {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println("\nUse 'sassy topics <topic>' to read one.")
		return nil
	}

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		renderer = topics.NewGlamourRenderer()
	}

	out, err := topics.Show(args[0], renderer)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
