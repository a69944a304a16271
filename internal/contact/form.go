// Package contact is the contact form: field state, submission status and
// the transports a message can be handed to.
package contact

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// Status is the submission state of a form.
type Status int

const (
	Idle Status = iota
	Sending
	Success
	Failed
)

func (s Status) String() string {
	switch s {
	case Sending:
		return "sending"
	case Success:
		return "success"
	case Failed:
		return "error"
	default:
		return "idle"
	}
}

// Field selects one of the form inputs.
type Field int

const (
	Name Field = iota
	Email
	Body
)

var ErrUnknownField = errors.New("unknown contact field")

// Message is what a Sender transmits.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Snapshot is a point-in-time copy of the form.
type Snapshot struct {
	Message
	Status Status
	Err    error
}

// Form owns the field values and submission status of one contact form.
type Form struct {
	sender Sender

	mu     sync.Mutex
	fields Message
	status Status
	err    error
	task   *Task
	closed bool
}

func NewForm(sender Sender) *Form {
	return &Form{sender: sender}
}

// UpdateField overwrites one field. Values are not validated here.
func (f *Form) UpdateField(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case Name:
		f.fields.Name = value
	case Email:
		f.fields.Email = value
	case Body:
		f.fields.Message = value
	default:
		return errors.Wrapf(ErrUnknownField, "field %d", field)
	}
	return nil
}

// Submit hands the current fields to the sender. While a submission is in
// flight further calls do nothing and return the pending task. On success
// the fields are cleared; on failure they are kept and the error recorded.
func (f *Form) Submit(ctx context.Context) *Task {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status == Sending && f.task != nil {
		return f.task
	}

	task := newTask(ctx)
	if f.closed {
		task.finish(context.Canceled)
		return task
	}
	f.task = task
	f.status = Sending
	f.err = nil

	msg := f.fields
	go func() {
		err := f.sender.Send(task.ctx, msg)
		f.complete(task, err)
	}()

	return task
}

func (f *Form) complete(task *Task, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	current := !f.closed && f.task == task

	// A delivered message counts as sent even if the context was
	// cancelled after the sender returned.
	if err == nil {
		if current {
			f.status = Success
			f.fields = Message{}
			f.task = nil
		}
		task.finish(nil)
		return
	}

	if cerr := task.ctx.Err(); cerr != nil {
		// A closed form has no owner left; leave it alone.
		if current {
			f.status = Idle
			f.task = nil
		}
		task.finish(cerr)
		return
	}

	if current {
		f.status = Failed
		f.err = err
		f.task = nil
	}
	task.finish(err)
}

// Snapshot returns the current fields and status.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{Message: f.fields, Status: f.status, Err: f.err}
}

func (f *Form) Status() Status {
	return f.Snapshot().Status
}

// Close tears the form down, cancelling any pending submission.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	if f.task != nil {
		f.task.Cancel()
	}
}
