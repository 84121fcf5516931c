package fleet

import "testing"

func TestOrderedMap_KeysPreserveInsertionOrder(t *testing.T) {
	m := newOrderedMap[string, int]()
	m.Set("b", 2)
	m.Set("a", 1)
	m.Set("c", 3)

	want := []string{"b", "a", "c"}
	got := m.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys[%d]: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestOrderedMap_SetExistingKeyDoesNotReorder(t *testing.T) {
	m := newOrderedMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 99)

	got, ok := m.Get("a")
	if !ok || got != 99 {
		t.Errorf("Get(a): got (%d, %v), want (99, true)", got, ok)
	}
	want := []string{"a", "b"}
	if keys := m.Keys(); keys[0] != want[0] || keys[1] != want[1] {
		t.Errorf("Keys after overwrite: got %v, want %v", keys, want)
	}
}

func TestOrderedMap_DeleteAbsentKeyIsNoOp(t *testing.T) {
	m := newOrderedMap[string, int]()
	m.Set("a", 1)
	m.Delete("missing")

	if m.Len() != 1 {
		t.Errorf("Len after deleting absent key: got %d, want 1", m.Len())
	}
}

func TestOrderedMap_DeletePreservesRemainingOrder(t *testing.T) {
	m := newOrderedMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)
	m.Delete("b")

	want := []string{"a", "c"}
	got := m.Keys()
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Keys after delete: got %v, want %v", got, want)
	}
	if m.Has("b") {
		t.Error("Has(b) after delete: got true, want false")
	}
}

func TestOrderedMap_EachVisitsInOrder(t *testing.T) {
	m := newOrderedMap[int, string]()
	m.Set(3, "c")
	m.Set(1, "a")
	m.Set(2, "b")

	var keys []int
	m.Each(func(k int, v string) { keys = append(keys, k) })

	want := []int{3, 1, 2}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Each order[%d]: got %d, want %d", i, keys[i], want[i])
		}
	}
}

func TestOrderedMap_CloneIsIndependent(t *testing.T) {
	m := newOrderedMap[string, int]()
	m.Set("a", 1)

	clone := m.Clone()
	clone.Set("b", 2)

	if m.Has("b") {
		t.Error("mutating clone affected the original")
	}
	if !clone.Has("a") {
		t.Error("clone missing original key")
	}
}
