// Package generators builds demo fleets and job slates for cmd/full.go.
// The engine itself never imports this package — it only ever consumes
// jobs and carts through fleet.Environment, exactly as a hand-written
// scenario would. Grounded on
// original_source/pyRoute13/api/generators/staffing_plan.py and
// transfer_generator.py.
package generators

import (
	"github.com/ianphil/pyRoute13/fleet"
	"github.com/ianphil/pyRoute13/simtime"
)

// CartSpec describes one cart to add to the fleet before the simulation
// starts.
type CartSpec struct {
	ID       fleet.CartId
	Capacity int
	Home     fleet.LocationId
}

// JobSpec pairs a Job with the simulated time at which it should be
// introduced (added to the Environment and offered to dispatch).
type JobSpec struct {
	Job         fleet.Job
	IntroduceAt simtime.SimTime
}

// Shift describes one crew's working interval and break schedule, the way
// staffing_plan.py's standard_shift builds one.
type Shift struct {
	Start   simtime.SimTime
	Hours   int
	Breaks  []Break
}

// Break is one rest period during a Shift: suspended at Start+Offset for
// Length, at Location.
type Break struct {
	Location fleet.LocationId
	Offset   simtime.SimTime
	Length   simtime.SimTime
}

// StandardShift builds an 8-hour shift starting at start, with three
// breaks at breakRoom 2, 4, and 6 hours in, mirroring
// staffing_plan.py's standard_shift.
func StandardShift(start simtime.SimTime, breakRoom fleet.LocationId) Shift {
	return Shift{
		Start: start,
		Hours: 8,
		Breaks: []Break{
			{Location: breakRoom, Offset: 120 * simtime.Minute, Length: 15 * simtime.Minute},
			{Location: breakRoom, Offset: 240 * simtime.Minute, Length: 30 * simtime.Minute},
			{Location: breakRoom, Offset: 360 * simtime.Minute, Length: 15 * simtime.Minute},
		},
	}
}

// Crew is crewSize carts working the same Shift out of Home.
type Crew struct {
	Shift    Shift
	Size     int
	Home     fleet.LocationId
	Capacity int
}

// StaffingPlan builds one CartSpec per crew member and the OutOfServiceJob
// slate implementing each cart's off-shift time and in-shift breaks: idle
// from the dawn of time until the shift starts, on break per Shift.Breaks,
// and idle again from the shift's end to the end of time. Every break and
// bracketing idle period is introduced at simulated time 0, since a
// staffing plan is known in full before the simulation begins — only the
// Driver executing these as suspend actions makes the cart actually stop.
func StaffingPlan(crews []Crew, nextCartID func() fleet.CartId, nextJobID func() fleet.JobId) ([]CartSpec, []JobSpec) {
	var carts []CartSpec
	var jobs []JobSpec

	for _, crew := range crews {
		for i := 0; i < crew.Size; i++ {
			id := nextCartID()
			carts = append(carts, CartSpec{ID: id, Capacity: crew.Capacity, Home: crew.Home})

			jobs = append(jobs, JobSpec{
				Job: &fleet.OutOfServiceJob{
					Id:              nextJobID(),
					SuspendLocation: crew.Home,
					SuspendTime:     simtime.MinTime,
					ResumeTime:      crew.Shift.Start,
					State:           fleet.BeforeBreak,
				},
				IntroduceAt: 0,
			})

			for _, b := range crew.Shift.Breaks {
				jobs = append(jobs, JobSpec{
					Job: &fleet.OutOfServiceJob{
						Id:              nextJobID(),
						SuspendLocation: b.Location,
						SuspendTime:     crew.Shift.Start + b.Offset,
						ResumeTime:      crew.Shift.Start + b.Offset + b.Length,
						State:           fleet.BeforeBreak,
					},
					IntroduceAt: 0,
				})
			}

			shiftEnd := crew.Shift.Start + simtime.SimTime(crew.Shift.Hours)*simtime.Hour
			jobs = append(jobs, JobSpec{
				Job: &fleet.OutOfServiceJob{
					Id:              nextJobID(),
					SuspendLocation: crew.Home,
					SuspendTime:     shiftEnd,
					ResumeTime:      simtime.MaxTime,
					State:           fleet.BeforeBreak,
				},
				IntroduceAt: 0,
			})
		}
	}

	return carts, jobs
}
