package planner

import (
	"github.com/ianphil/pyRoute13/fleet"
	"github.com/ianphil/pyRoute13/simtime"
)

// ActionType discriminates the three kinds of Action; a tagged sum stands
// in for what would otherwise be a small class hierarchy.
type ActionType int

const (
	ActionPickup ActionType = iota
	ActionDropoff
	ActionSuspend
)

// Action is one step of a Route. Only the fields relevant to Type are
// populated; Job and Location are always set, except for the nil
// "terminator" placeholder a RoutePlanner inserts for an already-consumed
// first action (see actionsFromJobs).
type Action struct {
	Type     ActionType
	Job      fleet.Job
	Location fleet.LocationId

	// Pickup/Dropoff fields.
	Time     simtime.SimTime // pickup_after or dropoff_before deadline
	Quantity int

	// Suspend fields.
	SuspendTime simtime.SimTime
	ResumeTime  simtime.SimTime
}

// Route is one candidate ordering of actions for one cart.
type Route struct {
	Cart        *fleet.Cart
	Actions     []*Action
	WorkingTime simtime.SimTime
	Score       float64
}
