package fleet

import "github.com/ianphil/pyRoute13/simtime"

// Trace is the optional observer the engine notifies on every observable
// event. Every method must tolerate being called at any simulated time;
// the engine must also tolerate a nil Trace, so every call site in this
// package guards with a nil check rather than requiring callers to pass a
// no-op implementation.
type Trace interface {
	CartPlanIs(cart *Cart, unfiltered, filtered []Job)
	CartArrives(cart *Cart)
	CartPasses(cart *Cart)
	CartDeparts(cart *Cart, destination LocationId)
	CartWaits(cart *Cart, until simtime.SimTime)
	CartBeginsLoading(cart *Cart, quantity int)
	CartFinishesLoading(cart *Cart)
	CartBeginsUnloading(cart *Cart, quantity int)
	CartFinishesUnloading(cart *Cart)
	CartSuspendsService(cart *Cart)
	CartResumesService(cart *Cart)
	JobIntroduced(job Job)
	JobAssigned(job Job)
	JobSucceeded(job Job)
	JobFailed(job Job)
	PlannerStarted()
	PlannerFinished()
}
