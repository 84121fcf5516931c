// Package fleet owns the authoritative fleet/jobs registries and the data
// model (Cart, Job, Trace) the rest of the engine is built around.
//
// Grounded on original_source/pyRoute13/api/environment/environment.py:
// ordered fleet/jobs mappings, add_cart/add_job/assign_job/complete_job/
// fail_job, deep-copy snapshots, and Trace notification on every
// transition.
package fleet

import "errors"

// ErrDoubleComplete is returned when complete_job is called twice for the
// same job — a fatal, aborting error.
var ErrDoubleComplete = errors.New("environment: job completed a second time")

// Environment owns the authoritative fleet and jobs registries.
type Environment struct {
	fleet *orderedMap[CartId, *Cart]
	jobs  *orderedMap[JobId, Job]

	successfulJobs   []Job
	successfulJobIDs map[JobId]bool
	failedJobs       []Job

	trace Trace
}

// New creates an empty Environment. trace may be nil.
func New(trace Trace) *Environment {
	return &Environment{
		fleet:            newOrderedMap[CartId, *Cart](),
		jobs:             newOrderedMap[JobId, Job](),
		successfulJobIDs: make(map[JobId]bool),
		trace:            trace,
	}
}

// AddCart registers a cart. Idempotent on id, matching the original's
// silent no-op on a re-add.
func (e *Environment) AddCart(cart *Cart) {
	if e.fleet.Has(cart.ID) {
		return
	}
	e.fleet.Set(cart.ID, cart)
}

// Cart looks up a live (non-snapshot) cart by id.
func (e *Environment) Cart(id CartId) (*Cart, bool) {
	return e.fleet.Get(id)
}

// Carts returns the live cart ids in insertion order.
func (e *Environment) Carts() []CartId {
	return e.fleet.Keys()
}

// FleetSize reports how many carts are registered.
func (e *Environment) FleetSize() int { return e.fleet.Len() }

// CartSnapshot returns a deep copy of the fleet, safe for the planner to
// read concurrently with driver mutation.
func (e *Environment) CartSnapshot() map[CartId]*Cart {
	out := make(map[CartId]*Cart, e.fleet.Len())
	e.fleet.Each(func(id CartId, c *Cart) {
		out[id] = c.Clone()
	})
	return out
}

// CartSnapshotList is CartSnapshot in fleet insertion order, for callers
// (the assigner, the planning loop) that need deterministic iteration
// rather than keyed lookup.
func (e *Environment) CartSnapshotList() []*Cart {
	out := make([]*Cart, 0, e.fleet.Len())
	e.fleet.Each(func(_ CartId, c *Cart) {
		out = append(out, c.Clone())
	})
	return out
}

// CartList returns the live, authoritative carts in fleet insertion order —
// unlike CartSnapshotList, these are the actual registry entries, not deep
// copies, so anything written through a result of this method writes
// into the Environment.
func (e *Environment) CartList() []*Cart {
	out := make([]*Cart, 0, e.fleet.Len())
	e.fleet.Each(func(_ CartId, c *Cart) {
		out = append(out, c)
	})
	return out
}

// AddJob registers job at its introduction time and notifies the trace.
func (e *Environment) AddJob(job Job) {
	if e.trace != nil {
		e.trace.JobIntroduced(job)
	}
	e.jobs.Set(job.ID(), job)
}

// Job looks up a live job by id.
func (e *Environment) Job(id JobId) (Job, bool) {
	return e.jobs.Get(id)
}

// Jobs returns the live job ids in insertion order.
func (e *Environment) Jobs() []JobId {
	return e.jobs.Keys()
}

// JobSnapshot returns a deep copy of the active jobs registry. Because a
// Job's assigned_to is stored as a CartId rather than an owning reference,
// no back-reference reconciliation against a copied cart set is needed —
// the clone already carries the correct id.
func (e *Environment) JobSnapshot() map[JobId]Job {
	out := make(map[JobId]Job, e.jobs.Len())
	e.jobs.Each(func(id JobId, j Job) {
		out[id] = j.Clone()
	})
	return out
}

// JobSnapshotList is JobSnapshot in job insertion order.
func (e *Environment) JobSnapshotList() []Job {
	out := make([]Job, 0, e.jobs.Len())
	e.jobs.Each(func(_ JobId, j Job) {
		out = append(out, j.Clone())
	})
	return out
}

// JobList returns the live, authoritative jobs in job insertion order —
// unlike JobSnapshotList, these are the actual registry entries, not deep
// copies. The planning loop's merge step builds its plan from these, so
// the Driver's later mutations of a planned job (State, AssignJob) land on
// the registry entry itself.
func (e *Environment) JobList() []Job {
	out := make([]Job, 0, e.jobs.Len())
	e.jobs.Each(func(_ JobId, j Job) {
		out = append(out, j)
	})
	return out
}

// AssignJob attaches cart to job. The TransferJob BEFORE_PICKUP→ENROUTE
// flip itself is the Driver's responsibility at pickup completion,
// matching the original driver.py call sequence.
func (e *Environment) AssignJob(job Job, cart *Cart) {
	job.SetAssignedTo(cart.ID)
	if e.trace != nil {
		e.trace.JobAssigned(job)
	}
}

// CompleteJob removes job from the active registry and appends it to
// successful_jobs. A second completion of the same job id is fatal.
func (e *Environment) CompleteJob(job Job) error {
	if e.successfulJobIDs[job.ID()] {
		return ErrDoubleComplete
	}
	e.jobs.Delete(job.ID())
	e.successfulJobIDs[job.ID()] = true
	e.successfulJobs = append(e.successfulJobs, job)
	if e.trace != nil {
		e.trace.JobSucceeded(job)
	}
	return nil
}

// FailJob removes job from the active registry (if still present) and
// appends it to failed_jobs.
func (e *Environment) FailJob(job Job) {
	e.jobs.Delete(job.ID())
	e.failedJobs = append(e.failedJobs, job)
	if e.trace != nil {
		e.trace.JobFailed(job)
	}
}

// SuccessfulJobs returns the jobs that have completed successfully.
func (e *Environment) SuccessfulJobs() []Job { return e.successfulJobs }

// FailedJobs returns the jobs that have failed.
func (e *Environment) FailedJobs() []Job { return e.failedJobs }
