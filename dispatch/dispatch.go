// Package dispatch implements the two Dispatcher strategies a Driver
// consults between routes: SimpleDispatcher, a bare LIFO stack of
// unallocated jobs, and PlanningLoopDispatcher, which runs a periodic
// JobAssigner cycle and hands every cart the resulting slate.
//
// Grounded on
// original_source/pyRoute13/api/agents/dispatcher.py (the interface),
// simple_dispatcher.py, and planning_loop_dispatcher.py.
package dispatch

import (
	"github.com/ianphil/pyRoute13/agent"
	"github.com/ianphil/pyRoute13/fleet"
	"github.com/ianphil/pyRoute13/simtime"
)

// Dispatcher decides, between routes, whether a cart has anything to do.
type Dispatcher interface {
	// WaitForNextPlan suspends the calling agent until a plan newer than
	// planTime exists, unless the dispatcher has nothing to wait for (a
	// shutdown already in progress), in which case it returns without
	// yielding.
	WaitForNextPlan(h *agent.Handle, planTime simtime.SimTime)

	// NewerPlanAvailable reports whether a plan strictly newer than
	// planTime now exists, used by a Driver mid-route to decide whether to
	// abandon its remaining actions.
	NewerPlanAvailable(planTime simtime.SimTime) bool

	// CurrentPlanTime is the timestamp of the plan currently in force.
	CurrentPlanTime() simtime.SimTime

	// GetPlan returns the jobs cart should now execute, filtered against
	// jobs' live assignment state.
	GetPlan(cart *fleet.Cart, jobs map[fleet.JobId]fleet.Job) []fleet.Job

	// IsShuttingDown reports whether the simulation is winding down; a
	// Driver observing true after WaitForNextPlan returns stops looping.
	IsShuttingDown() bool
}
