// Package driver implements Driver: the per-cart agent loop that waits for
// a plan, finds the best route through it, and executes that route one
// action at a time, abandoning it early if the dispatcher announces a
// newer plan.
//
// Grounded on original_source/pyRoute13/api/agents/driver.py.
package driver

import (
	"github.com/ianphil/pyRoute13/agent"
	"github.com/ianphil/pyRoute13/dispatch"
	"github.com/ianphil/pyRoute13/estimate"
	"github.com/ianphil/pyRoute13/fleet"
	"github.com/ianphil/pyRoute13/planner"
	"github.com/ianphil/pyRoute13/simtime"
	"github.com/ianphil/pyRoute13/timeline"
)

// Driver drives one cart for the lifetime of the simulation.
type Driver struct {
	timeline   *timeline.Timeline
	dispatcher dispatch.Dispatcher
	env        *fleet.Environment
	trace      fleet.Trace
	planner    *planner.RoutePlanner
	estimators estimate.Set
}

// New builds a Driver. trace may be nil.
func New(
	tl *timeline.Timeline,
	d dispatch.Dispatcher,
	env *fleet.Environment,
	trace fleet.Trace,
	rp *planner.RoutePlanner,
	estimators estimate.Set,
) *Driver {
	return &Driver{timeline: tl, dispatcher: d, env: env, trace: trace, planner: rp, estimators: estimators}
}

// Drive is the agent body for one cart: repeatedly wait for a plan, fetch
// this cart's jobs from it, and run them until the dispatcher shuts down.
func (d *Driver) Drive(cart *fleet.Cart) agent.Body {
	return func(h *agent.Handle) {
		currentPlanTime := simtime.MinTime
		for {
			d.dispatcher.WaitForNextPlan(h, currentPlanTime)

			if d.dispatcher.IsShuttingDown() {
				return
			}

			currentPlanTime = d.timeline.Now()
			jobs := d.dispatcher.GetPlan(cart, d.env.JobSnapshot())
			if len(jobs) > 0 {
				d.findRouteAndGo(h, cart, currentPlanTime, jobs)
			}
		}
	}
}

func (d *Driver) findRouteAndGo(h *agent.Handle, cart *fleet.Cart, planTime simtime.SimTime, jobs []fleet.Job) {
	route, ok := d.planner.GetBestRoute(cart, jobs, d.timeline.Now())
	if !ok {
		for _, j := range jobs {
			d.env.FailJob(j)
		}
		return
	}

	for _, action := range route.Actions {
		if d.dispatcher.NewerPlanAvailable(planTime) {
			break
		}
		d.performAction(h, cart, action)
	}
}

// performAction dispatches on the action's kind. A nil action (the
// terminator placeholder for an already-consumed first action) is a
// harmless no-op, matching the original's silent AttributeError swallow.
func (d *Driver) performAction(h *agent.Handle, cart *fleet.Cart, action *planner.Action) {
	if action == nil {
		return
	}
	switch action.Type {
	case planner.ActionPickup:
		d.pickup(h, cart, action)
	case planner.ActionDropoff:
		d.dropoff(h, cart, action)
	case planner.ActionSuspend:
		d.suspend(h, cart, action)
	}
}

func (d *Driver) pickup(h *agent.Handle, cart *fleet.Cart, action *planner.Action) {
	d.driveTo(h, cart, action.Location)
	d.waitUntil(h, cart, action.Time)

	job := action.Job.(*fleet.TransferJob)
	job.State = fleet.Enroute
	d.env.AssignJob(job, cart)

	d.load(h, cart, action.Quantity)
}

func (d *Driver) dropoff(h *agent.Handle, cart *fleet.Cart, action *planner.Action) {
	d.driveTo(h, cart, action.Location)
	d.unload(h, cart, action.Quantity)
	if err := d.env.CompleteJob(action.Job); err != nil {
		panic(err)
	}
}

func (d *Driver) suspend(h *agent.Handle, cart *fleet.Cart, action *planner.Action) {
	d.driveTo(h, cart, action.Location)

	if d.trace != nil {
		d.trace.CartSuspendsService(cart)
	}

	job := action.Job.(*fleet.OutOfServiceJob)
	job.State = fleet.OnBreak
	d.waitUntil(h, cart, action.ResumeTime)

	if d.trace != nil {
		d.trace.CartResumesService(cart)
	}
	if err := d.env.CompleteJob(action.Job); err != nil {
		panic(err)
	}
}

// driveTo advances cart hop by hop toward destination, yielding for each
// hop's transit time, until it arrives.
func (d *Driver) driveTo(h *agent.Handle, cart *fleet.Cart, destination fleet.LocationId) {
	start := cart.LastKnownLocation
	for !fleet.SameLocation(cart.LastKnownLocation, destination) {
		next := d.estimators.RouteNext(cart.LastKnownLocation, destination, d.timeline.Now())
		driveTime := d.estimators.TransitTime(cart.LastKnownLocation, next, d.timeline.Now())

		if d.trace != nil && fleet.SameLocation(cart.LastKnownLocation, start) {
			d.trace.CartDeparts(cart, destination)
		}

		if err := h.Yield(d.timeline.Until(d.timeline.Now() + driveTime)); err != nil {
			panic(err)
		}
		if fleet.SameLocation(cart.LastKnownLocation, next) {
			break
		}
		cart.LastKnownLocation = next
		if d.trace != nil {
			if fleet.SameLocation(cart.LastKnownLocation, destination) {
				d.trace.CartArrives(cart)
			} else {
				d.trace.CartPasses(cart)
			}
		}
	}
}

func (d *Driver) load(h *agent.Handle, cart *fleet.Cart, quantity int) {
	if cart.Payload+quantity > cart.Capacity {
		panic(fleet.ErrCapacityExceeded)
	}

	if d.trace != nil {
		d.trace.CartBeginsLoading(cart, quantity)
	}

	finish := d.timeline.Now() + d.estimators.LoadTime(cart.LastKnownLocation, quantity, d.timeline.Now())
	if err := h.Yield(d.timeline.Until(finish)); err != nil {
		panic(err)
	}
	cart.Payload += quantity

	if d.trace != nil {
		d.trace.CartFinishesLoading(cart)
	}
}

func (d *Driver) unload(h *agent.Handle, cart *fleet.Cart, quantity int) {
	if cart.Payload < quantity {
		panic(fleet.ErrUnderflow)
	}

	if d.trace != nil {
		d.trace.CartBeginsUnloading(cart, quantity)
	}

	finish := d.timeline.Now() + d.estimators.UnloadTime(cart.LastKnownLocation, quantity, d.timeline.Now())
	if err := h.Yield(d.timeline.Until(finish)); err != nil {
		panic(err)
	}
	cart.Payload -= quantity

	if d.trace != nil {
		d.trace.CartFinishesUnloading(cart)
	}
}

func (d *Driver) waitUntil(h *agent.Handle, cart *fleet.Cart, until simtime.SimTime) {
	if d.timeline.Now() < until {
		if d.trace != nil {
			d.trace.CartWaits(cart, until)
		}
		if err := h.Yield(d.timeline.Until(until)); err != nil {
			panic(err)
		}
	}
}
