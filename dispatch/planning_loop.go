package dispatch

import (
	"github.com/ianphil/pyRoute13/agent"
	"github.com/ianphil/pyRoute13/assign"
	"github.com/ianphil/pyRoute13/condition"
	"github.com/ianphil/pyRoute13/fleet"
	"github.com/ianphil/pyRoute13/simtime"
	"github.com/ianphil/pyRoute13/timeline"
)

// PlanningLoopDispatcher runs a periodic assignment cycle: snapshot the
// fleet and jobs, wait until the next planning instant, compute a new
// assignment, merge it against whatever jobs did in the meantime, and wake
// every driver waiting on a plan.
type PlanningLoopDispatcher struct {
	timeline *timeline.Timeline
	env      *fleet.Environment
	trace    fleet.Trace

	planningStartTime simtime.SimTime
	planningInterval  simtime.SimTime
	planner           *assign.JobAssigner

	shuttingDown     bool
	jobAvailable     *condition.Condition
	newPlanAvailable *condition.Condition

	currentPlan     map[fleet.CartId][]fleet.Job
	currentPlanTime simtime.SimTime
}

// NewPlanningLoopDispatcher builds a PlanningLoopDispatcher. The first
// plan is considered arbitrarily stale (current_plan_time = MinTime) so
// every driver's initial wait is honored.
func NewPlanningLoopDispatcher(
	tl *timeline.Timeline,
	env *fleet.Environment,
	trace fleet.Trace,
	planningStartTime, planningInterval simtime.SimTime,
	planner *assign.JobAssigner,
) *PlanningLoopDispatcher {
	return &PlanningLoopDispatcher{
		timeline:          tl,
		env:               env,
		trace:             trace,
		planningStartTime: planningStartTime,
		planningInterval:  planningInterval,
		planner:           planner,
		jobAvailable:      condition.New(),
		newPlanAvailable:  condition.New(),
		currentPlanTime:   simtime.MinTime,
	}
}

func (d *PlanningLoopDispatcher) WaitForNextPlan(h *agent.Handle, planTime simtime.SimTime) {
	if planTime >= d.currentPlanTime && !d.shuttingDown {
		if err := h.Yield(d.newPlanAvailable.Sleep()); err != nil {
			panic(err)
		}
	}
}

func (d *PlanningLoopDispatcher) NewerPlanAvailable(planTime simtime.SimTime) bool {
	return planTime < d.currentPlanTime
}

func (d *PlanningLoopDispatcher) CurrentPlanTime() simtime.SimTime { return d.currentPlanTime }

func (d *PlanningLoopDispatcher) GetPlan(cart *fleet.Cart, jobs map[fleet.JobId]fleet.Job) []fleet.Job {
	unfiltered := d.currentPlan[cart.ID]

	var filtered []fleet.Job
	for _, job := range unfiltered {
		active, ok := jobs[job.ID()]
		if !ok {
			continue
		}
		if assignedTo, has := active.AssignedTo(); !has || assignedTo == cart.ID {
			filtered = append(filtered, job)
		}
	}

	if d.trace != nil {
		d.trace.CartPlanIs(cart, unfiltered, filtered)
	}
	return filtered
}

func (d *PlanningLoopDispatcher) IsShuttingDown() bool { return d.shuttingDown }

// IntroduceJob mirrors SimpleDispatcher's: register the job once simulated
// time reaches at, then signal jobAvailable. Drivers of this dispatcher
// wait on newPlanAvailable, not jobAvailable, so no driver is woken here;
// the planning loop itself discovers the new job on its next cycle.
func (d *PlanningLoopDispatcher) IntroduceJob(job fleet.Job, at simtime.SimTime) agent.Body {
	return func(h *agent.Handle) {
		if err := h.Yield(d.timeline.Until(at)); err != nil {
			panic(err)
		}
		d.env.AddJob(job)
		if err := d.jobAvailable.WakeOne(); err != nil {
			panic(err)
		}
	}
}

func (d *PlanningLoopDispatcher) ShutdownAt(at simtime.SimTime) agent.Body {
	return func(h *agent.Handle) {
		if err := h.Yield(d.timeline.Until(at)); err != nil {
			panic(err)
		}
		d.shuttingDown = true
	}
}

// PlanningLoop is the agent body that repeatedly computes a fresh
// assignment until shutdown. Started once, alongside the carts' drivers.
func (d *PlanningLoopDispatcher) PlanningLoop() agent.Body {
	return func(h *agent.Handle) {
		for !d.shuttingDown {
			d.updateJobAssignments(h)
		}
	}
}

func (d *PlanningLoopDispatcher) updateJobAssignments(h *agent.Handle) {
	if d.trace != nil {
		d.trace.PlannerStarted()
	}

	carts := d.env.CartSnapshotList()
	jobs := d.env.JobSnapshotList()

	planReadyTime := d.planningStartTime
	if next := d.timeline.Now() + d.planningInterval; next > planReadyTime {
		planReadyTime = next
	}
	if err := h.Yield(d.timeline.Until(planReadyTime)); err != nil {
		panic(err)
	}

	plan := d.planner.CreateAssignment(jobs, carts, planReadyTime)

	// Merge against the live, authoritative fleet/jobs — not the snapshots
	// above — so currentPlan holds the same references the Driver mutates
	// at pickup (job.State, AssignJob). Merging against clones would leave
	// those mutations stranded on copies the registry never sees.
	merged, err := assign.Merge(d.env.CartList(), d.env.JobList(), plan)
	if err != nil {
		panic(err)
	}
	d.currentPlan = merged
	d.currentPlanTime = d.timeline.Now()

	if d.trace != nil {
		d.trace.PlannerFinished()
	}
	if err := d.newPlanAvailable.WakeAll(); err != nil {
		panic(err)
	}
}
