package condition

import (
	"testing"

	"github.com/ianphil/pyRoute13/agent"
)

// sleeper starts an agent that sleeps on c, then appends name to order
// once resumed. Nothing but WakeOne/WakeAll (or a pending credit) resumes
// it.
func sleeper(t *testing.T, c *Condition, name string, order *[]string) {
	t.Helper()
	err := agent.Start(func(h *agent.Handle) {
		if yerr := h.Yield(c.Sleep()); yerr != nil {
			t.Errorf("%s: Yield error %v", name, yerr)
		}
		*order = append(*order, name)
	})
	if err != nil {
		t.Fatalf("%s: Start error %v", name, err)
	}
}

func TestSleep_NoPendingWakeup_Suspends(t *testing.T) {
	c := New()
	var order []string
	sleeper(t, c, "a", &order)

	if len(order) != 0 {
		t.Errorf("sleeper ran before any wakeup: order=%v", order)
	}
}

func TestWakeOne_NoWaiters_BanksPendingCredit(t *testing.T) {
	c := New()
	if err := c.WakeOne(); err != nil {
		t.Fatalf("WakeOne: unexpected error %v", err)
	}

	var order []string
	sleeper(t, c, "a", &order)

	// THEN the sleeper consumes the banked credit and never actually suspends
	if len(order) != 1 || order[0] != "a" {
		t.Errorf("order: got %v, want [a]", order)
	}
}

func TestWakeOne_WakesMostRecentWaiterFirst(t *testing.T) {
	// GIVEN waiters enqueued in order a, b, c
	c := New()
	var order []string
	sleeper(t, c, "a", &order)
	sleeper(t, c, "b", &order)
	sleeper(t, c, "c", &order)

	// WHEN WakeOne fires twice
	if err := c.WakeOne(); err != nil {
		t.Fatalf("WakeOne: unexpected error %v", err)
	}
	if err := c.WakeOne(); err != nil {
		t.Fatalf("WakeOne: unexpected error %v", err)
	}

	// THEN the most recently added waiters resume first (LIFO)
	want := []string{"c", "b"}
	if len(order) != 2 || order[0] != want[0] || order[1] != want[1] {
		t.Errorf("order: got %v, want %v", order, want)
	}
}

func TestWakeAll_WakesWaitersInInsertionOrder(t *testing.T) {
	// GIVEN waiters enqueued in order a, b, c
	c := New()
	var order []string
	sleeper(t, c, "a", &order)
	sleeper(t, c, "b", &order)
	sleeper(t, c, "c", &order)

	// WHEN WakeAll fires
	if err := c.WakeAll(); err != nil {
		t.Fatalf("WakeAll: unexpected error %v", err)
	}

	// THEN every waiter resumes in FIFO order
	want := []string{"a", "b", "c"}
	if len(order) != 3 {
		t.Fatalf("order: got %v, want length 3", order)
	}
	for i, name := range want {
		if order[i] != name {
			t.Errorf("order[%d]: got %s, want %s", i, order[i], name)
		}
	}
}

func TestWakeAll_ResetsPendingCredit(t *testing.T) {
	// GIVEN a pending credit banked with no waiters
	c := New()
	c.WakeOne()

	// WHEN WakeAll runs (with still no waiters)
	if err := c.WakeAll(); err != nil {
		t.Fatalf("WakeAll: unexpected error %v", err)
	}

	// THEN the credit is gone: a subsequent Sleep actually suspends
	var order []string
	sleeper(t, c, "a", &order)
	if len(order) != 0 {
		t.Errorf("sleeper consumed a stale credit: order=%v", order)
	}
}
