// Package agent implements the cooperative scheduler's resumable-task
// runtime.
//
// Go has no generators, so the idiomatic stand-in used here is a
// rendezvous over an unbuffered channel: a goroutine per agent, blocked on
// a private channel between yield points. Exactly one goroutine is ever
// runnable at a time: the controller blocks while the agent body runs, and
// the agent body blocks on Yield while the controller runs. That strict
// alternation gives the engine single-threaded cooperative semantics
// despite being built from real goroutines.
package agent

import "errors"

// ErrBadYield is returned when an agent yields a nil Directive — the Go
// analogue of the original's "yielded a non-callable" failure.
var ErrBadYield = errors.New("agent: yielded directive was nil")

// Directive is a callable an agent yields to arrange its own next
// resumption. Timeline.Until and Condition.Sleep are the only producers
// of directives in this system.
type Directive func(h *Handle)

// Body is the function an agent runs. It receives its own Handle so it can
// call Handle.Yield at suspension points.
type Body func(h *Handle)

type step struct {
	directive Directive
	done      bool
}

// Handle is the resumable-task handle this system calls an "agent": the
// runtime's unit of scheduling.
type Handle struct {
	out    chan step
	resume chan struct{}
}

// Start bootstraps a new agent: it runs body on a fresh goroutine and
// resumes it once, stopping at the first yielded Directive or at
// completion. A body that yields a nil Directive fails with ErrBadYield.
func Start(body Body) error {
	h := &Handle{
		out:    make(chan step),
		resume: make(chan struct{}),
	}
	go func() {
		body(h)
		h.out <- step{done: true}
	}()
	return h.advance()
}

// Resume continues a previously suspended agent from the point of its last
// Yield, driving it forward to its next Yield or to completion.
func (h *Handle) Resume() error {
	h.resume <- struct{}{}
	return h.advance()
}

// advance reads exactly one step from the agent goroutine and, if it
// yielded a Directive, invokes the directive synchronously to arrange the
// agent's next resumption (matching the original's inline
// `scheduling_function(agent)` call inside `start`).
func (h *Handle) advance() error {
	s := <-h.out
	if s.done {
		return nil
	}
	if s.directive == nil {
		return ErrBadYield
	}
	s.directive(h)
	return nil
}

// Yield suspends the calling agent: it hands the directive to whichever
// goroutine is driving this agent (Start or Resume) and blocks until that
// driver calls Resume again. A nil directive makes that Start or Resume
// call fail with ErrBadYield, and the agent is left suspended.
func (h *Handle) Yield(d Directive) error {
	h.out <- step{directive: d}
	<-h.resume
	if d == nil {
		return ErrBadYield
	}
	return nil
}
