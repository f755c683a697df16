// Package cli implements the taskengine-cli demo command tree: a
// cobra command set that wires an in-process Runner against a
// SimulatedTickSource and a scripted Agent, so a goal can be set and
// watched resolve without a live game connection.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/taskengine-go/internal/infrastructure/config"
)

// NewRootCommand creates the root command for the demo CLI.
func NewRootCommand() *cobra.Command {
	cfg := config.LoadConfigOrDefault("")
	engine := NewDemoEngine(&cfg.Engine)

	rootCmd := &cobra.Command{
		Use:   "taskengine",
		Short: "taskengine CLI - drive the reactive task engine against a scripted agent",
		Long: `taskengine CLI exercises the task engine end to end without a live game
connection: goals are planned through the acquisition catalogue and ticked
against an in-memory scripted world.

Examples:
  taskengine goal set wooden_pickaxe 1
  taskengine status
  taskengine obtainable
  taskengine goal cancel`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(newGoalCommand(engine))
	rootCmd.AddCommand(newStatusCommand(engine))
	rootCmd.AddCommand(newObtainableCommand(engine))

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
