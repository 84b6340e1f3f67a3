package dashboard

import (
	"context"
	"sync"
	"time"

	"clearview-backend/client"

	"golang.org/x/sync/errgroup"
)

// API is the slice of the client the dashboard page needs.
type API interface {
	ListJobs(ctx context.Context) ([]client.Job, error)
	ListCustomers(ctx context.Context) ([]client.Customer, error)
}

// Dashboard caches the most recently fetched collections for one page
// view. Mutations never patch the cache; they trigger a full refresh.
// A failed load is distinguishable from an empty one: Loaded stays false.
type Dashboard struct {
	api    API
	notify Notifier
	now    func() time.Time

	mu        sync.RWMutex
	jobs      []client.Job
	customers []client.Customer
	loaded    bool
}

type DashboardOption func(*Dashboard)

// WithClock overrides the reference clock used for classification.
func WithClock(now func() time.Time) DashboardOption {
	return func(d *Dashboard) { d.now = now }
}

func NewDashboard(api API, notify Notifier, opts ...DashboardOption) *Dashboard {
	d := &Dashboard{
		api:    api,
		notify: notify,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Load fetches jobs and customers concurrently. Either failure fails the
// load as a whole and leaves the cache unchanged.
func (d *Dashboard) Load(ctx context.Context) error {
	var jobs []client.Job
	var customers []client.Customer

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobs, err = d.api.ListJobs(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = d.api.ListCustomers(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		d.notify.Error("Failed to load jobs")
		return err
	}

	d.mu.Lock()
	d.jobs = jobs
	d.customers = customers
	d.loaded = true
	d.mu.Unlock()
	return nil
}

// Refresh re-fetches the job collection only, after a mutation.
func (d *Dashboard) Refresh(ctx context.Context) error {
	jobs, err := d.api.ListJobs(ctx)
	if err != nil {
		d.notify.Error("Failed to load jobs")
		return err
	}

	d.mu.Lock()
	d.jobs = jobs
	d.loaded = true
	d.mu.Unlock()
	return nil
}

// SetJobs replaces the cached collection, used when a workflow already
// carried out its own refresh.
func (d *Dashboard) SetJobs(jobs []client.Job) {
	d.mu.Lock()
	d.jobs = jobs
	d.loaded = true
	d.mu.Unlock()
}

func (d *Dashboard) Jobs() []client.Job {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.jobs
}

func (d *Dashboard) Customers() []client.Customer {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.customers
}

// Loaded reports whether at least one fetch has succeeded. "No jobs
// found" is only shown when Loaded is true and Jobs is empty.
func (d *Dashboard) Loaded() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.loaded
}

// Buckets classifies the cached collection against the current clock.
func (d *Dashboard) Buckets() (Buckets, error) {
	d.mu.RLock()
	jobs := d.jobs
	d.mu.RUnlock()
	return Classify(jobs, d.now())
}
