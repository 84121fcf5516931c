// Package estimate defines the external estimator function types. The
// engine treats these as pure functions supplied by the caller; the
// graph-based airport route calculator
// (original_source/pyRoute13/api/planner/route_calculator.py) is one
// possible implementation and is not specified here.
package estimate

import (
	"github.com/ianphil/pyRoute13/fleet"
	"github.com/ianphil/pyRoute13/simtime"
)

// TransitTime estimates how long it takes to drive from origin to
// destination starting at now.
type TransitTime func(origin, destination fleet.LocationId, now simtime.SimTime) simtime.SimTime

// RouteNextStep returns the next hop toward destination; a result equal to
// destination means arrival on the next hop.
type RouteNextStep func(origin, destination fleet.LocationId, now simtime.SimTime) fleet.LocationId

// LoadTime estimates how long it takes to load quantity items at location.
type LoadTime func(location fleet.LocationId, quantity int, now simtime.SimTime) simtime.SimTime

// UnloadTime estimates how long it takes to unload quantity items at
// location.
type UnloadTime func(location fleet.LocationId, quantity int, now simtime.SimTime) simtime.SimTime

// Set bundles the four estimators the planner and driver consume,
// mirroring how pyRoute13's Environment threads them through as a group.
type Set struct {
	TransitTime  TransitTime
	RouteNext    RouteNextStep
	LoadTime     LoadTime
	UnloadTime   UnloadTime
}
