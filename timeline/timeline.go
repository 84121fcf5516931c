// Package timeline implements the discrete-event scheduler: a
// monotonically advancing simulated clock driven by a min-heap of
// scheduled agent resumptions.
//
// The heap shape is grounded on a cluster.EventHeap
// (container/heap with a deterministic tie-break), adapted from a
// timestamp→type-priority→eventID ordering down to this domain's simpler
// timestamp→insertion-sequence ordering: plain insertion-order FIFO among
// equal timestamps is all this domain needs, since there is no event-type
// priority table here.
package timeline

import (
	"container/heap"
	"errors"

	"github.com/ianphil/pyRoute13/agent"
	"github.com/ianphil/pyRoute13/simtime"
)

// ErrPastSchedule is returned when an agent is scheduled to resume strictly
// before the timeline's current_time.
var ErrPastSchedule = errors.New("timeline: cannot schedule an event in the past")

// event is one scheduled resumption. Ordered solely by time; ties are
// broken by insertion sequence, giving a stable FIFO among equal
// timestamps.
type event struct {
	time     simtime.SimTime
	sequence uint64
	handle   *agent.Handle
}

// eventHeap implements heap.Interface over a slice of events.
type eventHeap []*event

func (h eventHeap) Len() int { return len(h) }
func (h eventHeap) Less(i, j int) bool {
	if h[i].time != h[j].time {
		return h[i].time < h[j].time
	}
	return h[i].sequence < h[j].sequence
}
func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *eventHeap) Push(x any)   { *h = append(*h, x.(*event)) }
func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Timeline owns the simulated clock and the heap of pending resumptions.
type Timeline struct {
	queue       eventHeap
	currentTime simtime.SimTime
	nextSeq     uint64
}

// New creates a Timeline whose clock starts at zero.
func New() *Timeline {
	t := &Timeline{}
	heap.Init(&t.queue)
	return t
}

// Now returns current_time.
func (t *Timeline) Now() simtime.SimTime { return t.currentTime }

// schedule pushes an event for handle at time, enforcing PastSchedule.
func (t *Timeline) schedule(at simtime.SimTime, h *agent.Handle) error {
	if at < t.currentTime {
		return ErrPastSchedule
	}
	t.nextSeq++
	heap.Push(&t.queue, &event{time: at, sequence: t.nextSeq, handle: h})
	return nil
}

// Until returns the Directive an agent yields to resume at exactly time t.
// Scheduling to a time before current_time is a fatal
// PastSchedule error: since Directives run synchronously inside
// Handle.advance, the directive panics with ErrPastSchedule inside the
// Start or Resume call that ran the agent up to this yield — there is no
// recoverable path for a directive that cannot be honored.
func (t *Timeline) Until(at simtime.SimTime) agent.Directive {
	return func(h *agent.Handle) {
		if err := t.schedule(at, h); err != nil {
			panic(err)
		}
	}
}

// Wait returns the Directive to resume after dt simulated units from now.
func (t *Timeline) Wait(dt simtime.SimTime) agent.Directive {
	return t.Until(t.currentTime + dt)
}

// Run pops events in (time, insertion) order, advances current_time to
// each one, and resumes its agent exactly once, until the queue is empty.
func (t *Timeline) Run() error {
	for t.queue.Len() > 0 {
		e := heap.Pop(&t.queue).(*event)
		t.currentTime = e.time
		if err := e.handle.Resume(); err != nil {
			return err
		}
	}
	return nil
}
