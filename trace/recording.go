package trace

import (
	"github.com/ianphil/pyRoute13/fleet"
	"github.com/ianphil/pyRoute13/simtime"
)

// Record is one observed event, flattened to a kind tag plus the ids
// involved, cheap to assert against in tests without caring about a
// Cart/Job's full contents at record time.
type Record struct {
	Kind string
	Cart fleet.CartId
	Job  fleet.JobId
}

// RecordingSink accumulates every event in call order, for tests that want
// to assert on the shape of a run without a live logger.
type RecordingSink struct {
	Records []Record
}

// NewRecordingSink returns an empty RecordingSink.
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

func (s *RecordingSink) append(kind string, cart fleet.CartId, job fleet.JobId) {
	s.Records = append(s.Records, Record{Kind: kind, Cart: cart, Job: job})
}

func (s *RecordingSink) CartPlanIs(cart *fleet.Cart, _, _ []fleet.Job) {
	s.append("cart_plan_is", cart.ID, 0)
}
func (s *RecordingSink) CartArrives(cart *fleet.Cart) { s.append("cart_arrives", cart.ID, 0) }
func (s *RecordingSink) CartPasses(cart *fleet.Cart)  { s.append("cart_passes", cart.ID, 0) }
func (s *RecordingSink) CartDeparts(cart *fleet.Cart, _ fleet.LocationId) {
	s.append("cart_departs", cart.ID, 0)
}
func (s *RecordingSink) CartWaits(cart *fleet.Cart, _ simtime.SimTime) {
	s.append("cart_waits", cart.ID, 0)
}
func (s *RecordingSink) CartBeginsLoading(cart *fleet.Cart, _ int) {
	s.append("cart_begins_loading", cart.ID, 0)
}
func (s *RecordingSink) CartFinishesLoading(cart *fleet.Cart) {
	s.append("cart_finishes_loading", cart.ID, 0)
}
func (s *RecordingSink) CartBeginsUnloading(cart *fleet.Cart, _ int) {
	s.append("cart_begins_unloading", cart.ID, 0)
}
func (s *RecordingSink) CartFinishesUnloading(cart *fleet.Cart) {
	s.append("cart_finishes_unloading", cart.ID, 0)
}
func (s *RecordingSink) CartSuspendsService(cart *fleet.Cart) {
	s.append("cart_suspends_service", cart.ID, 0)
}
func (s *RecordingSink) CartResumesService(cart *fleet.Cart) {
	s.append("cart_resumes_service", cart.ID, 0)
}
func (s *RecordingSink) JobIntroduced(job fleet.Job) { s.append("job_introduced", 0, job.ID()) }
func (s *RecordingSink) JobAssigned(job fleet.Job) {
	cart, _ := job.AssignedTo()
	s.append("job_assigned", cart, job.ID())
}
func (s *RecordingSink) JobSucceeded(job fleet.Job) { s.append("job_succeeded", 0, job.ID()) }
func (s *RecordingSink) JobFailed(job fleet.Job)    { s.append("job_failed", 0, job.ID()) }
func (s *RecordingSink) PlannerStarted()            { s.append("planner_started", 0, 0) }
func (s *RecordingSink) PlannerFinished()           { s.append("planner_finished", 0, 0) }

// CountKind reports how many records of kind were recorded.
func (s *RecordingSink) CountKind(kind string) int {
	n := 0
	for _, r := range s.Records {
		if r.Kind == kind {
			n++
		}
	}
	return n
}
