package estimate

import (
	"github.com/ianphil/pyRoute13/fleet"
	"github.com/ianphil/pyRoute13/simtime"
)

// GridSet builds a Set of estimators over locations on a 1-dimensional
// integer line, one hop per unit distance. It is a direct Go port of the
// load/unload/transit/route-next-step functions at the bottom of
// original_source/pyRoute13/hello-bb8.py, used by cmd/hello.go and as the
// default for cmd/full.go's generated scenarios. The graph-based airport
// estimator this stands in for is out of scope.
func GridSet(secondsPerHop, secondsPerLoadItem, secondsPerUnloadItem simtime.SimTime) Set {
	return Set{
		TransitTime: func(origin, destination fleet.LocationId, _ simtime.SimTime) simtime.SimTime {
			return abs(destination.(int)-origin.(int)) * secondsPerHop
		},
		RouteNext: func(origin, destination fleet.LocationId, _ simtime.SimTime) fleet.LocationId {
			o, d := origin.(int), destination.(int)
			switch {
			case o < d:
				return o + 1
			case o > d:
				return o - 1
			default:
				return o
			}
		},
		LoadTime: func(_ fleet.LocationId, quantity int, _ simtime.SimTime) simtime.SimTime {
			return secondsPerLoadItem * simtime.SimTime(quantity)
		},
		UnloadTime: func(_ fleet.LocationId, quantity int, _ simtime.SimTime) simtime.SimTime {
			return secondsPerUnloadItem * simtime.SimTime(quantity)
		},
	}
}

func abs(v int) simtime.SimTime {
	if v < 0 {
		return simtime.SimTime(-v)
	}
	return simtime.SimTime(v)
}
