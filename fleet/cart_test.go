package fleet

import "testing"

func TestCart_CloneIsIndependentValue(t *testing.T) {
	c := &Cart{ID: 1, Capacity: 10, LastKnownLocation: 0, Payload: 2}
	clone := c.Clone()
	clone.Payload = 9
	clone.LastKnownLocation = 5

	if c.Payload != 2 {
		t.Errorf("original Payload mutated: got %d, want 2", c.Payload)
	}
	if c.LastKnownLocation != 0 {
		t.Errorf("original LastKnownLocation mutated: got %v, want 0", c.LastKnownLocation)
	}
}

func TestCart_CloneCopiesAllFields(t *testing.T) {
	c := &Cart{ID: 7, Capacity: 20, LastKnownLocation: 3, Payload: 5}
	clone := c.Clone()
	if clone.ID != c.ID || clone.Capacity != c.Capacity ||
		clone.LastKnownLocation != c.LastKnownLocation || clone.Payload != c.Payload {
		t.Errorf("Clone: got %+v, want a copy of %+v", clone, c)
	}
}
