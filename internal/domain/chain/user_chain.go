package chain

import "github.com/andrescamacho/taskengine-go/internal/domain/task"

// UserChain is the distinguished chain carrying the operator's
// imperative goal. Its priority is UserTask while it holds an
// unfinished task, else Inactive.
type UserChain struct {
	*BaseChain
}

// NewUserChain constructs the runner's single user-goal chain.
func NewUserChain() *UserChain {
	return &UserChain{BaseChain: NewBaseChain("user")}
}

// Priority implements Chain.
func (c *UserChain) Priority() Priority {
	if c.IsActive() {
		return UserTask
	}
	return Inactive
}

// SetUserTask installs the operator's new goal task.
func (c *UserChain) SetUserTask(t task.Task) {
	c.SetTask(t)
}

// CancelUserTask stops and clears the current goal, if any.
func (c *UserChain) CancelUserTask() {
	c.ClearTask()
}
