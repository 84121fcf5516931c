package estimate

import (
	"testing"

	"github.com/ianphil/pyRoute13/fleet"
	"github.com/ianphil/pyRoute13/simtime"
)

func TestGridSet_TransitTime_IsDistanceTimesSecondsPerHop(t *testing.T) {
	set := GridSet(10*simtime.Second, simtime.Second, simtime.Second)
	got := set.TransitTime(2, 7, 0)
	if want := 5 * 10 * simtime.Second; got != want {
		t.Errorf("TransitTime(2,7): got %d, want %d", got, want)
	}
}

func TestGridSet_TransitTime_IsSymmetric(t *testing.T) {
	set := GridSet(10*simtime.Second, simtime.Second, simtime.Second)
	forward := set.TransitTime(2, 7, 0)
	backward := set.TransitTime(7, 2, 0)
	if forward != backward {
		t.Errorf("TransitTime not symmetric: %d vs %d", forward, backward)
	}
}

func TestGridSet_RouteNext_StepsTowardDestination(t *testing.T) {
	set := GridSet(simtime.Second, simtime.Second, simtime.Second)

	if got := set.RouteNext(2, 7, 0); got != fleet.LocationId(3) {
		t.Errorf("RouteNext(2,7): got %v, want 3", got)
	}
	if got := set.RouteNext(7, 2, 0); got != fleet.LocationId(6) {
		t.Errorf("RouteNext(7,2): got %v, want 6", got)
	}
}

func TestGridSet_RouteNext_AtDestinationStaysPut(t *testing.T) {
	set := GridSet(simtime.Second, simtime.Second, simtime.Second)
	if got := set.RouteNext(5, 5, 0); got != fleet.LocationId(5) {
		t.Errorf("RouteNext(5,5): got %v, want 5", got)
	}
}

func TestGridSet_LoadAndUnloadTime_ScaleWithQuantity(t *testing.T) {
	set := GridSet(simtime.Second, 2*simtime.Second, 3*simtime.Second)

	if got := set.LoadTime(0, 4, 0); got != 8*simtime.Second {
		t.Errorf("LoadTime(qty=4): got %d, want %d", got, 8*simtime.Second)
	}
	if got := set.UnloadTime(0, 4, 0); got != 12*simtime.Second {
		t.Errorf("UnloadTime(qty=4): got %d, want %d", got, 12*simtime.Second)
	}
}

func TestGridSet_LoadTime_ZeroQuantityIsZero(t *testing.T) {
	set := GridSet(simtime.Second, 2*simtime.Second, 3*simtime.Second)
	if got := set.LoadTime(0, 0, 0); got != 0 {
		t.Errorf("LoadTime(qty=0): got %d, want 0", got)
	}
}
