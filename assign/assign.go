// Package assign implements JobAssigner: given a fleet snapshot and a job
// slate, it searches the feasible per-cart job combinations and commits a
// conflict-free subset, remembering what it has committed so
// later cycles never reassign a job out from under a cart.
package assign

import (
	"sort"

	"github.com/ianphil/pyRoute13/fleet"
	"github.com/ianphil/pyRoute13/planner"
	"github.com/ianphil/pyRoute13/simtime"
)

// Assignment pairs a cart with the full job slate a JobAssigner proposes
// for it (both its existing jobs and any newly proposed ones) and the
// route's working time, used to rank competing proposals.
type Assignment struct {
	Cart  *fleet.Cart
	Jobs  []fleet.Job
	Score simtime.SimTime
}

// JobAssigner searches combinations of unassigned jobs against each cart's
// existing assignment and commits a non-conflicting set of them.
type JobAssigner struct {
	MaxJobsPerCart int
	Planner        *planner.RoutePlanner

	committed map[fleet.JobId]bool
}

// NewJobAssigner builds a JobAssigner around a fresh RoutePlanner sized to
// maxJobsPerCart.
func NewJobAssigner(maxJobsPerCart int, p *planner.RoutePlanner) *JobAssigner {
	return &JobAssigner{
		MaxJobsPerCart: maxJobsPerCart,
		Planner:        p,
		committed:      make(map[fleet.JobId]bool),
	}
}

// CreateAssignment proposes a (cart, job slate) pair for every feasible
// combination of a cart's existing jobs plus a non-empty unassigned
// subset, then greedily commits the non-conflicting subset of proposals
// in descending score order, at most one per cart. The
// descending order favors the alternative with the HIGHEST working time
// among non-conflicting proposals, matching the upstream assigner's
// comparator exactly; see DESIGN.md for why this is kept rather than
// "fixed" to ascending.
func (a *JobAssigner) CreateAssignment(jobs []fleet.Job, carts []*fleet.Cart, now simtime.SimTime) []Assignment {
	var unassigned []fleet.Job
	existing := make(map[fleet.CartId][]fleet.Job, len(carts))
	for _, c := range carts {
		existing[c.ID] = nil
	}
	for _, j := range jobs {
		if cart, ok := j.AssignedTo(); ok {
			existing[cart] = append(existing[cart], j)
		} else {
			unassigned = append(unassigned, j)
		}
	}

	var alternatives []Assignment
	for _, cart := range carts {
		assigned := existing[cart.ID]
		if len(assigned) >= a.MaxJobsPerCart {
			continue
		}
		maxNewJobs := a.MaxJobsPerCart - len(assigned)
		for jobCount := 1; jobCount < maxNewJobs; jobCount++ {
			for _, combo := range planner.Combinations(jobCount, len(unassigned)) {
				slate := append([]fleet.Job(nil), assigned...)
				for _, idx := range combo {
					slate = append(slate, unassigned[idx])
				}
				route, ok := a.Planner.GetBestRoute(cart, slate, now)
				if !ok {
					continue
				}
				alternatives = append(alternatives, Assignment{Cart: cart, Jobs: slate, Score: route.WorkingTime})
			}
		}
	}

	sort.SliceStable(alternatives, func(i, j int) bool {
		return alternatives[i].Score > alternatives[j].Score
	})

	var assignments []Assignment
	claimedCarts := make(map[fleet.CartId]bool)
	for _, alt := range alternatives {
		if claimedCarts[alt.Cart.ID] {
			continue
		}
		conflict := false
		for _, j := range alt.Jobs {
			if a.committed[j.ID()] {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}
		claimedCarts[alt.Cart.ID] = true
		for _, j := range alt.Jobs {
			a.committed[j.ID()] = true
		}
		assignments = append(assignments, alt)
	}

	return assignments
}
