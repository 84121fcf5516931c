package dispatch

import (
	"github.com/ianphil/pyRoute13/agent"
	"github.com/ianphil/pyRoute13/condition"
	"github.com/ianphil/pyRoute13/fleet"
	"github.com/ianphil/pyRoute13/simtime"
	"github.com/ianphil/pyRoute13/timeline"
)

// SimpleDispatcher hands out at most one unallocated job per GetPlan call,
// popped off a LIFO stack, and never reconsiders an already-assigned job.
// It never abandons a route mid-flight: NewerPlanAvailable always reports
// false.
type SimpleDispatcher struct {
	timeline *timeline.Timeline
	env      *fleet.Environment
	trace    fleet.Trace

	shuttingDown bool
	unallocated  []fleet.Job
	jobAvailable *condition.Condition
}

// NewSimpleDispatcher builds a SimpleDispatcher; trace may be nil.
func NewSimpleDispatcher(tl *timeline.Timeline, env *fleet.Environment, trace fleet.Trace) *SimpleDispatcher {
	return &SimpleDispatcher{
		timeline:     tl,
		env:          env,
		trace:        trace,
		jobAvailable: condition.New(),
	}
}

func (d *SimpleDispatcher) WaitForNextPlan(h *agent.Handle, _ simtime.SimTime) {
	if !d.shuttingDown {
		if err := h.Yield(d.jobAvailable.Sleep()); err != nil {
			panic(err)
		}
	}
}

func (d *SimpleDispatcher) NewerPlanAvailable(simtime.SimTime) bool { return false }

func (d *SimpleDispatcher) CurrentPlanTime() simtime.SimTime { return d.timeline.Now() }

func (d *SimpleDispatcher) GetPlan(cart *fleet.Cart, _ map[fleet.JobId]fleet.Job) []fleet.Job {
	var jobs []fleet.Job
	if n := len(d.unallocated); n > 0 {
		jobs = append(jobs, d.unallocated[n-1])
		d.unallocated = d.unallocated[:n-1]
	}
	if d.trace != nil {
		d.trace.CartPlanIs(cart, jobs, jobs)
	}
	return jobs
}

func (d *SimpleDispatcher) IsShuttingDown() bool { return d.shuttingDown }

// IntroduceJob is the agent body that registers job with the environment
// once simulated time reaches at, then wakes one waiting driver.
func (d *SimpleDispatcher) IntroduceJob(job fleet.Job, at simtime.SimTime) agent.Body {
	return func(h *agent.Handle) {
		if err := h.Yield(d.timeline.Until(at)); err != nil {
			panic(err)
		}
		d.env.AddJob(job)
		d.unallocated = append(d.unallocated, job)
		if err := d.jobAvailable.WakeOne(); err != nil {
			panic(err)
		}
	}
}

// ShutdownAt is the agent body that flips shuttingDown once simulated time
// reaches at.
func (d *SimpleDispatcher) ShutdownAt(at simtime.SimTime) agent.Body {
	return func(h *agent.Handle) {
		if err := h.Yield(d.timeline.Until(at)); err != nil {
			panic(err)
		}
		d.shuttingDown = true
	}
}
