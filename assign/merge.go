package assign

import (
	"errors"

	"github.com/ianphil/pyRoute13/fleet"
)

// ErrUnknownCart is returned when a plan assignment names a cart not present
// in carts — a fatal error, since a plan can only ever be computed from the
// very fleet it is about to be merged against.
var ErrUnknownCart = errors.New("assign: plan references a cart not in the fleet")

// Merge combines a freshly computed plan with the current state of jobs,
// producing the job list each cart should now believe it has. A job already
// assigned (in jobs) keeps its current cart regardless of what the plan
// says; a plan job with no current assignment joins its proposed cart. A
// plan job that no longer exists in jobs (completed or failed since the
// plan was computed) is silently dropped. A plan assignment naming a cart
// absent from carts is ErrUnknownCart.
func Merge(carts []*fleet.Cart, jobs []fleet.Job, plan []Assignment) (map[fleet.CartId][]fleet.Job, error) {
	merged := make(map[fleet.CartId][]fleet.Job, len(carts))
	for _, c := range carts {
		merged[c.ID] = nil
	}

	byID := make(map[fleet.JobId]fleet.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID()] = j
		if cart, ok := j.AssignedTo(); ok {
			if _, known := merged[cart]; known {
				merged[cart] = append(merged[cart], j)
			}
		}
	}

	for _, alt := range plan {
		if _, known := merged[alt.Cart.ID]; !known {
			return nil, ErrUnknownCart
		}
		for _, pj := range alt.Jobs {
			job, ok := byID[pj.ID()]
			if !ok {
				continue
			}
			if _, assigned := job.AssignedTo(); !assigned {
				merged[alt.Cart.ID] = append(merged[alt.Cart.ID], job)
			}
		}
	}

	return merged, nil
}
