package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCommand(engine *Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the current active chain and task delegation chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			active := engine.Runner.ActiveChain()
			if active == nil {
				fmt.Println("no chain active")
				return nil
			}
			fmt.Printf("active chain: %s\n", active.Name())
			fmt.Println(chainString(engine))
			return nil
		},
	}
}

// chainString renders the user chain's live task delegation path, or
// "(idle)" when no goal is set.
func chainString(engine *Engine) string {
	uc := engine.Runner.UserTaskChain()
	t := uc.CurrentTask()
	if t == nil {
		return "(idle)"
	}
	return t.TaskChainString()
}
