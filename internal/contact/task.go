package contact

import (
	"context"
	"sync"
)

// Task is one in-flight submission.
type Task struct {
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	once sync.Once
	err  error
}

func newTask(parent context.Context) *Task {
	ctx, cancel := context.WithCancel(parent)
	return &Task{ctx: ctx, cancel: cancel, done: make(chan struct{})}
}

func (t *Task) finish(err error) {
	t.once.Do(func() {
		t.err = err
		t.cancel()
		close(t.done)
	})
}

// Cancel abandons the submission. The form is not updated when it completes.
func (t *Task) Cancel() {
	t.cancel()
}

// Done is closed once the submission has finished or been cancelled.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task finishes and returns the send error, or the
// context error if the task was cancelled.
func (t *Task) Wait() error {
	<-t.done
	return t.err
}
