package dashboard

import (
	"context"
	"errors"
	"sync"

	"clearview-backend/client"
)

// JobMutator is the slice of the API the mutation workflow needs.
// *client.Client satisfies it.
type JobMutator interface {
	MarkJobPaid(ctx context.Context, id uint) (*client.Job, error)
	DeleteJob(ctx context.Context, id uint) error
	ListJobs(ctx context.Context) ([]client.Job, error)
}

type ActionType string

const (
	ActionMarkPaid ActionType = "mark-paid"
	ActionDelete   ActionType = "delete"
)

type WorkflowState int

const (
	StateIdle WorkflowState = iota
	StateConfirming
	StateInFlight
)

// ErrActionPending is returned when an action is requested while another
// one is still confirming or in flight.
var ErrActionPending = errors.New("another action is pending")

// ErrNothingPending is returned by Confirm and Cancel outside Confirming.
var ErrNothingPending = errors.New("no action awaiting confirmation")

// Workflow drives a single mark-paid or delete action through
// Idle → Confirming → InFlight → Idle. Exactly one mutating call is
// issued per confirmation, followed by exactly one list refresh; the
// state always returns to Idle whatever the outcome.
type Workflow struct {
	api    JobMutator
	notify Notifier

	mu     sync.Mutex
	state  WorkflowState
	action ActionType
	job    client.Job
}

func NewWorkflow(api JobMutator, notify Notifier) *Workflow {
	return &Workflow{api: api, notify: notify}
}

func (w *Workflow) State() WorkflowState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Pending reports the action awaiting confirmation, if any.
func (w *Workflow) Pending() (ActionType, client.Job, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateConfirming {
		return "", client.Job{}, false
	}
	return w.action, w.job, true
}

// Request opens the confirmation gate for one job. No network call is
// made until Confirm.
func (w *Workflow) Request(action ActionType, job client.Job) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateIdle {
		return ErrActionPending
	}
	w.state = StateConfirming
	w.action = action
	w.job = job
	return nil
}

// Cancel abandons the pending action with no side effect.
func (w *Workflow) Cancel() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateConfirming {
		return ErrNothingPending
	}
	w.state = StateIdle
	return nil
}

// Confirm issues the pending mutation and re-fetches the job collection.
// On success it returns the fresh list; on failure the caller keeps
// whatever stale collection it already had.
func (w *Workflow) Confirm(ctx context.Context) ([]client.Job, error) {
	w.mu.Lock()
	if w.state != StateConfirming {
		w.mu.Unlock()
		return nil, ErrNothingPending
	}
	action, job := w.action, w.job
	w.state = StateInFlight
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.state = StateIdle
		w.mu.Unlock()
	}()

	switch action {
	case ActionMarkPaid:
		if _, err := w.api.MarkJobPaid(ctx, job.ID); err != nil {
			w.notify.Error("Error updating job")
			return nil, err
		}
		w.notify.Success("Job marked as paid")
	case ActionDelete:
		if err := w.api.DeleteJob(ctx, job.ID); err != nil {
			w.notify.Error("Error deleting job")
			return nil, err
		}
		w.notify.Success("Job deleted")
	default:
		return nil, errors.New("unknown action " + string(action))
	}

	// Full re-fetch, no local merge. A failed refresh leaves stale data
	// on screen until the next load.
	jobs, err := w.api.ListJobs(ctx)
	if err != nil {
		w.notify.Error("Failed to load jobs")
		return nil, err
	}
	return jobs, nil
}
