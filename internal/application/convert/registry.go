package convert

import (
	"sync"
	"time"

	domain "clipd/internal/domain/convert"
)

// DefaultJobTTL is how long a terminal job record stays visible to
// polling clients before it expires from the registry.
const DefaultJobTTL = 10 * time.Minute

// Registry holds whole-value job records for in-flight and recently
// finished conversions, keyed by job id. Records are volatile; nothing
// survives a process restart. A job that never reaches a terminal
// state is never expired.
type Registry struct {
	mu   sync.Mutex
	jobs map[string]domain.Job

	ttl      time.Duration
	schedule func(d time.Duration, fn func())
}

// NewRegistry creates an empty registry expiring terminal records
// after ttl; non-positive ttl uses DefaultJobTTL.
func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultJobTTL
	}
	return &Registry{
		jobs:     make(map[string]domain.Job),
		ttl:      ttl,
		schedule: func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
	}
}

// Create registers the initial record for a new job id.
func (r *Registry) Create(job domain.Job) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.ID] = job
}

// Replace swaps in a new whole-value record. A terminal record arms
// its own expiry.
func (r *Registry) Replace(job domain.Job) {
	r.mu.Lock()
	r.jobs[job.ID] = job
	r.mu.Unlock()

	if job.Status.Terminal() {
		r.schedule(r.ttl, func() { r.expire(job.ID) })
	}
}

// Get returns the current record, or the distinguished not-found
// record for unknown and expired ids.
func (r *Registry) Get(id string) domain.Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return domain.NotFoundJob(id)
	}
	return job
}

func (r *Registry) expire(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.jobs, id)
}
