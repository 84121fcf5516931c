// Package condition implements the rendezvous primitive: sleep / wake-one
// / wake-all with pending-wakeup credit.
//
// The wake-one-is-LIFO / wake-all-is-FIFO asymmetry is load-bearing and
// intentionally preserved verbatim from the original
// (original_source/pyRoute13/api/core/condition.py) — it is not a bug to
// fix.
package condition

import "github.com/ianphil/pyRoute13/agent"

// Condition is a Go port of route13.core.condition.Condition.
type Condition struct {
	waiters []*agent.Handle
	pending int
}

// New creates an empty Condition.
func New() *Condition {
	return &Condition{}
}

// Sleep is the Directive an agent yields to block on this condition. If a
// wakeup is already pending (wake_one fired before any sleeper existed),
// the agent resumes immediately, consuming the credit, without ever being
// enqueued.
func (c *Condition) Sleep() agent.Directive {
	return func(h *agent.Handle) {
		if c.pending > 0 {
			c.pending--
			// Immediate resumption, same as the original's inline
			// `start(agent)` call — no suspension actually occurs.
			if err := h.Resume(); err != nil {
				panic(err)
			}
			return
		}
		c.waiters = append(c.waiters, h)
	}
}

// WakeOne resumes the most recently added waiter (LIFO). If there is no
// waiter, the wakeup is banked as pending credit for the next Sleep.
func (c *Condition) WakeOne() error {
	n := len(c.waiters)
	if n == 0 {
		c.pending++
		return nil
	}
	h := c.waiters[n-1]
	c.waiters = c.waiters[:n-1]
	return h.Resume()
}

// WakeAll resumes every waiter in insertion order (FIFO) and resets the
// pending-wakeup credit to zero.
func (c *Condition) WakeAll() error {
	waiters := c.waiters
	c.waiters = nil
	c.pending = 0
	for _, h := range waiters {
		if err := h.Resume(); err != nil {
			return err
		}
	}
	return nil
}
