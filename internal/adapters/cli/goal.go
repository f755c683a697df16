package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newGoalCommand(engine *Engine) *cobra.Command {
	goalCmd := &cobra.Command{
		Use:   "goal",
		Short: "Set or cancel the engine's current user goal",
	}

	var timeout time.Duration
	setCmd := &cobra.Command{
		Use:   "set <item> <count>",
		Short: "Set a goal item/count and tick the engine until it resolves or times out",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := parseCount(args[1])
			if err != nil {
				return err
			}

			t := engine.Catalogue.GetItemTask(args[0], count)
			if t == nil {
				return fmt.Errorf("no acquisition route registered for %q (see `taskengine obtainable`)", args[0])
			}

			engine.Runner.SetUserTask(t)
			engine.Runner.Start(engine.Tick)
			defer engine.Runner.Stop()

			deadline := time.After(timeout)
			ticker := time.NewTicker(250 * time.Millisecond)
			defer ticker.Stop()

			for {
				select {
				case <-deadline:
					fmt.Printf("timed out after %s; last state: %s\n", timeout, chainString(engine))
					return nil
				case <-ticker.C:
					if engine.Runner.UserTaskChain().CurrentTask() == nil {
						fmt.Println("goal resolved")
						return nil
					}
					fmt.Println(chainString(engine))
				}
			}
		},
	}
	setCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "how long to tick before giving up")

	cancelCmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel the current user goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine.Runner.CancelUserTask()
			fmt.Println("goal cancelled")
			return nil
		},
	}

	goalCmd.AddCommand(setCmd, cancelCmd)
	return goalCmd
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid count %q: must be a positive integer", s)
	}
	return n, nil
}
