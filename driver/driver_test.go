package driver

import (
	"testing"

	"github.com/ianphil/pyRoute13/agent"
	"github.com/ianphil/pyRoute13/estimate"
	"github.com/ianphil/pyRoute13/fleet"
	"github.com/ianphil/pyRoute13/planner"
	"github.com/ianphil/pyRoute13/simtime"
	"github.com/ianphil/pyRoute13/timeline"
)

// fakeDispatcher is a minimal dispatch.Dispatcher double: it hands out jobs
// exactly once, then reports shutting down, giving a deterministic
// single-cycle Drive loop without needing a real condition-based wait.
type fakeDispatcher struct {
	jobs        []fleet.Job
	served      bool
	newerPlan   bool
	planTimeArg simtime.SimTime
}

func (f *fakeDispatcher) WaitForNextPlan(h *agent.Handle, planTime simtime.SimTime) {}
func (f *fakeDispatcher) NewerPlanAvailable(planTime simtime.SimTime) bool {
	f.planTimeArg = planTime
	return f.newerPlan
}
func (f *fakeDispatcher) CurrentPlanTime() simtime.SimTime { return 0 }
func (f *fakeDispatcher) GetPlan(cart *fleet.Cart, jobs map[fleet.JobId]fleet.Job) []fleet.Job {
	if f.served {
		return nil
	}
	f.served = true
	return f.jobs
}
func (f *fakeDispatcher) IsShuttingDown() bool { return f.served }

func gridEstimators() estimate.Set {
	return estimate.GridSet(1, 1, 1)
}

func TestDrive_CompletesASingleTransferJobEndToEnd(t *testing.T) {
	tl := timeline.New()
	env := fleet.New(nil)
	rp := planner.NewRoutePlanner(1, gridEstimators())
	cart := &fleet.Cart{ID: 1, Capacity: 10, LastKnownLocation: 0}
	env.AddCart(cart)

	job := &fleet.TransferJob{
		Id: 1, Quantity: 3,
		PickupLocation: 5, PickupAfter: 0,
		DropoffLocation: 8, DropoffBefore: 1000,
		State: fleet.BeforePickup,
	}
	env.AddJob(job)

	disp := &fakeDispatcher{jobs: []fleet.Job{job}}
	d := New(tl, disp, env, nil, rp, gridEstimators())

	if err := agent.Start(d.Drive(cart)); err != nil {
		t.Fatalf("Start: unexpected error %v", err)
	}
	if err := tl.Run(); err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}

	if cart.LastKnownLocation != 8 {
		t.Errorf("LastKnownLocation: got %v, want 8", cart.LastKnownLocation)
	}
	if cart.Payload != 0 {
		t.Errorf("Payload: got %d, want 0 (dropped off)", cart.Payload)
	}
	successful := env.SuccessfulJobs()
	if len(successful) != 1 || successful[0].ID() != job.ID() {
		t.Errorf("SuccessfulJobs: got %v, want [job 1]", successful)
	}
	if _, stillLive := env.JobSnapshot()[job.ID()]; stillLive {
		t.Error("completed job is still in the live jobs registry")
	}
}

func TestDrive_InfeasibleRouteFailsEveryJobInTheBatch(t *testing.T) {
	tl := timeline.New()
	env := fleet.New(nil)
	rp := planner.NewRoutePlanner(1, gridEstimators())
	cart := &fleet.Cart{ID: 1, Capacity: 10, LastKnownLocation: 0}
	env.AddCart(cart)

	job := &fleet.TransferJob{
		Id: 1, Quantity: 3,
		PickupLocation: 5, PickupAfter: 0,
		DropoffLocation: 8, DropoffBefore: 1, // unreachable deadline
		State: fleet.BeforePickup,
	}
	env.AddJob(job)

	disp := &fakeDispatcher{jobs: []fleet.Job{job}}
	d := New(tl, disp, env, nil, rp, gridEstimators())

	agent.Start(d.Drive(cart))
	if err := tl.Run(); err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}

	failed := env.FailedJobs()
	if len(failed) != 1 || failed[0].ID() != job.ID() {
		t.Errorf("FailedJobs: got %v, want [job 1]", failed)
	}
	if cart.LastKnownLocation != 0 {
		t.Errorf("LastKnownLocation: got %v, want 0 (cart never moved)", cart.LastKnownLocation)
	}
}

func TestDrive_AbandonsRouteWhenANewerPlanIsAnnounced(t *testing.T) {
	tl := timeline.New()
	env := fleet.New(nil)
	rp := planner.NewRoutePlanner(1, gridEstimators())
	cart := &fleet.Cart{ID: 1, Capacity: 10, LastKnownLocation: 0}
	env.AddCart(cart)

	job := &fleet.TransferJob{
		Id: 1, Quantity: 3,
		PickupLocation: 5, PickupAfter: 0,
		DropoffLocation: 8, DropoffBefore: 1000,
		State: fleet.BeforePickup,
	}
	env.AddJob(job)

	disp := &fakeDispatcher{jobs: []fleet.Job{job}, newerPlan: true}
	d := New(tl, disp, env, nil, rp, gridEstimators())

	agent.Start(d.Drive(cart))
	if err := tl.Run(); err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}

	// NewerPlanAvailable is checked before the very first action, so the
	// cart never even starts driving toward the pickup.
	if cart.LastKnownLocation != 0 {
		t.Errorf("LastKnownLocation: got %v, want 0 (route abandoned before any action ran)", cart.LastKnownLocation)
	}
	if len(env.SuccessfulJobs()) != 0 {
		t.Errorf("SuccessfulJobs: got %v, want none", env.SuccessfulJobs())
	}
	if len(env.FailedJobs()) != 0 {
		t.Errorf("FailedJobs: got %v, want none (abandonment is not failure)", env.FailedJobs())
	}
}

func TestDrive_SuspendJobCompletesAndResumesService(t *testing.T) {
	tl := timeline.New()
	env := fleet.New(nil)
	rp := planner.NewRoutePlanner(1, gridEstimators())
	cart := &fleet.Cart{ID: 1, Capacity: 10, LastKnownLocation: 0}
	env.AddCart(cart)

	job := &fleet.OutOfServiceJob{
		Id: 1, SuspendLocation: 5, SuspendTime: 100, ResumeTime: 200,
		State: fleet.BeforeBreak,
	}
	env.AddJob(job)

	disp := &fakeDispatcher{jobs: []fleet.Job{job}}
	d := New(tl, disp, env, nil, rp, gridEstimators())

	agent.Start(d.Drive(cart))
	if err := tl.Run(); err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}

	if cart.LastKnownLocation != 5 {
		t.Errorf("LastKnownLocation: got %v, want 5", cart.LastKnownLocation)
	}
	if tl.Now() != 200 {
		t.Errorf("final time: got %d, want 200 (cart resumed at ResumeTime)", tl.Now())
	}
	successful := env.SuccessfulJobs()
	if len(successful) != 1 || successful[0].ID() != job.ID() {
		t.Errorf("SuccessfulJobs: got %v, want [job 1]", successful)
	}
}
