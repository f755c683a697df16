package task

// Wrapped is implemented by tasks built on Wrapper, letting generic
// code (and WrapperEquals) reach the delegate without a type switch
// over every concrete wrapper kind.
type Wrapped interface {
	WrappedTask() Task
}

// Wrapper is embedded by a task whose entire job is to forward to a
// single wrapped task (spec §4.1's wrapper form): OnTick always
// delegates, IsFinished mirrors the wrapped task, and equality is
// same-kind-and-wrapped-equal. Embedders still implement OnStart and
// OnStop themselves since the wrapped task's lifecycle is usually
// driven indirectly through the normal subtask swap rather than called
// directly by the wrapper.
type Wrapper struct {
	Inner Task
}

// WrappedTask implements Wrapped.
func (w *Wrapper) WrappedTask() Task { return w.Inner }

// OnTick always delegates to the wrapped task.
func (w *Wrapper) OnTick() Task { return w.Inner }

// IsFinished mirrors the wrapped task's finished state.
func (w *Wrapper) IsFinished() bool {
	return w.Inner != nil && w.Inner.IsFinished()
}

// WrapperEquals implements the wrapper equality rule: same concrete
// type as other, and other's wrapped task is equal to inner. Call it
// from a wrapper's own IsEqual implementation.
func WrapperEquals(self Task, inner Task, other Task) bool {
	if !SameKind(self, other) {
		return false
	}
	ow, ok := other.(Wrapped)
	if !ok {
		return false
	}
	otherInner := ow.WrappedTask()
	if inner == nil || otherInner == nil {
		return inner == otherInner
	}
	return inner.IsEqual(otherInner)
}
