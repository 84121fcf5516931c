package planner

import (
	"github.com/ianphil/pyRoute13/estimate"
	"github.com/ianphil/pyRoute13/fleet"
	"github.com/ianphil/pyRoute13/simtime"
)

// routeState is the mutable state a trie walk threads through a candidate
// action ordering: the cart's position and payload as of the last applied
// action, the simulated clock, and the working time accrued so far.
type routeState struct {
	location         fleet.LocationId
	payload          int
	capacity         int
	time             simtime.SimTime
	working          simtime.SimTime
	quantityUnloaded int
}

func stateFromCart(c *fleet.Cart, now simtime.SimTime) routeState {
	return routeState{
		location: c.LastKnownLocation,
		payload:  c.Payload,
		capacity: c.Capacity,
		time:     now,
	}
}

// RoutePlanner finds the cheapest feasible ordering of a cart's candidate
// jobs' actions. One RoutePlanner is built per dispatcher and reused across
// planning cycles; its trie depends only on MaxJobs, not on any particular
// cart or job slate.
type RoutePlanner struct {
	MaxJobs    int
	Estimators estimate.Set

	trie []*TrieNode
}

// NewRoutePlanner precomputes the permutation trie for up to maxJobs jobs
// (2 action slots each: pickup/suspend then dropoff/terminator).
func NewRoutePlanner(maxJobs int, estimators estimate.Set) *RoutePlanner {
	return &RoutePlanner{
		MaxJobs:    maxJobs,
		Estimators: estimators,
		trie:       BuildTrie(maxJobs * 2),
	}
}

// GetBestRoute returns the lowest-working-time feasible Route for cart over
// jobs as of now, or false if no ordering of jobs' actions is feasible.
func (p *RoutePlanner) GetBestRoute(cart *fleet.Cart, jobs []fleet.Job, now simtime.SimTime) (*Route, bool) {
	actions := actionsFromJobs(jobs)

	var best *Route
	p.walk(p.trie, actions, stateFromCart(cart, now), nil, func(final routeState, ordering []*Action) {
		if best == nil || final.working < best.WorkingTime {
			kept := append([]*Action(nil), ordering...)
			var score float64
			if final.working != 0 {
				score = float64(final.quantityUnloaded) / float64(final.working)
			}
			best = &Route{Cart: cart, Actions: kept, WorkingTime: final.working, Score: score}
		}
	})
	if best == nil {
		return nil, false
	}
	return best, true
}

// walk depth-first traverses the trie, applying the action at each node's
// Key (if any exists at that index) to state and recursing into children;
// leaves invoke onComplete with the accumulated state and action sequence.
// A node whose key has no live action (beyond the end of this call's
// actions slice) is pruned, since no job produced enough slots to need it.
// The trie is sized for RoutePlanner.MaxJobs regardless of how many jobs a
// given call actually supplies, so a leaf is not "the node list is empty"
// but "every remaining node at this level was pruned" — the walk has run
// out of real actions before running out of trie depth.
func (p *RoutePlanner) walk(nodes []*TrieNode, actions []*Action, state routeState, chosen []*Action, onComplete func(routeState, []*Action)) {
	processed := false
	for _, node := range nodes {
		if node.Key >= len(actions) {
			continue
		}
		processed = true
		action := actions[node.Key]
		next, ok := p.applyAction(state, action)
		if !ok {
			continue
		}
		p.walk(node.Children, actions, next, append(chosen, action), onComplete)
	}
	if !processed {
		onComplete(state, chosen)
	}
}

// applyAction mutates a copy of state by executing action and reports
// whether the result is feasible. A nil action is the inert terminator
// placeholder inserted for an already-consumed first action: it leaves
// state untouched and always succeeds.
func (p *RoutePlanner) applyAction(state routeState, action *Action) (routeState, bool) {
	if action == nil {
		return state, true
	}
	switch action.Type {
	case ActionPickup:
		return p.applyPickup(state, action)
	case ActionDropoff:
		return p.applyDropoff(state, action)
	case ActionSuspend:
		return p.applySuspend(state, action)
	default:
		return state, false
	}
}

func (p *RoutePlanner) applyPickup(state routeState, action *Action) (routeState, bool) {
	start := state.time
	if !fleet.SameLocation(state.location, action.Location) {
		transit := p.Estimators.TransitTime(state.location, action.Location, state.time)
		state.time += transit
		state.location = action.Location
	}
	if state.time < action.Time {
		state.time = action.Time
	}
	state.time += p.Estimators.LoadTime(action.Location, action.Quantity, state.time)
	state.payload += action.Quantity
	if state.payload > state.capacity {
		return state, false
	}
	state.working += state.time - start
	return state, true
}

func (p *RoutePlanner) applyDropoff(state routeState, action *Action) (routeState, bool) {
	start := state.time
	if !fleet.SameLocation(state.location, action.Location) {
		transit := p.Estimators.TransitTime(state.location, action.Location, state.time)
		state.time += transit
		state.location = action.Location
	}
	state.time += p.Estimators.UnloadTime(action.Location, action.Quantity, state.time)
	state.payload -= action.Quantity
	state.quantityUnloaded += action.Quantity
	if state.payload < 0 {
		return state, false
	}
	if state.time > action.Time {
		return state, false
	}
	state.working += state.time - start
	return state, true
}

func (p *RoutePlanner) applySuspend(state routeState, action *Action) (routeState, bool) {
	if !fleet.SameLocation(state.location, action.Location) {
		transit := p.Estimators.TransitTime(state.location, action.Location, state.time)
		state.time += transit
		state.working += transit
		state.location = action.Location
	}
	if state.time > action.SuspendTime {
		return state, false
	}
	state.time = action.ResumeTime
	return state, true
}

// actionsFromJobs expands each job into its action slots: a TransferJob
// still before pickup contributes a pickup then a dropoff; one already
// enroute contributes only its dropoff, padded with a nil terminator so
// every job still occupies two slots. An OutOfServiceJob still before its
// break contributes a suspend then a nil terminator; one already on break
// contributes nothing, since its suspend action is already executing
// outside the planner's control.
func actionsFromJobs(jobs []fleet.Job) []*Action {
	var actions []*Action
	for _, j := range jobs {
		switch job := j.(type) {
		case *fleet.TransferJob:
			if job.State == fleet.BeforePickup {
				actions = append(actions, &Action{
					Type:     ActionPickup,
					Job:      job,
					Location: job.PickupLocation,
					Time:     job.PickupAfter,
					Quantity: job.Quantity,
				})
			}
			actions = append(actions, &Action{
				Type:     ActionDropoff,
				Job:      job,
				Location: job.DropoffLocation,
				Time:     job.DropoffBefore,
				Quantity: job.Quantity,
			})
			if job.State != fleet.BeforePickup {
				actions = append(actions, nil)
			}
		case *fleet.OutOfServiceJob:
			if job.State == fleet.BeforeBreak {
				actions = append(actions, &Action{
					Type:        ActionSuspend,
					Job:         job,
					Location:    job.SuspendLocation,
					SuspendTime: job.SuspendTime,
					ResumeTime:  job.ResumeTime,
				})
				actions = append(actions, nil)
			}
		}
	}
	return actions
}
