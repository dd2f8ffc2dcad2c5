package ssim

import "testing"

func TestActionHeap_OrdersByTimeThenInsertionOrder(t *testing.T) {
	// GIVEN actions inserted out of time order, with two ties at time 5
	h := &actionHeap{}
	h.insert(&action{time: 10, seq: 1})
	h.insert(&action{time: 5, seq: 2})
	h.insert(&action{time: 5, seq: 3})
	h.insert(&action{time: 0, seq: 4})

	// WHEN popped repeatedly
	var order []uint64
	for h.Len() > 0 {
		order = append(order, h.popFirst().seq)
	}

	// THEN they come out by time, and ties come out in insertion order
	want := []uint64{4, 2, 3, 1}
	if len(order) != len(want) {
		t.Fatalf("got %d actions, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("position %d: got seq %d, want %d", i, order[i], want[i])
		}
	}
}

func TestActionHeap_PopFirst_Empty_ReturnsNil(t *testing.T) {
	h := &actionHeap{}
	if got := h.popFirst(); got != nil {
		t.Errorf("popFirst on empty heap: got %v, want nil", got)
	}
}

func TestActionHeap_RemoveWhere_OnlyRemovesMatchingEvents(t *testing.T) {
	// GIVEN a schedule with event actions "a", "b", "c" and an Init/Stop pair
	h := &actionHeap{}
	h.insert(&action{time: 2, seq: 1, kind: actionEvent, ev: "a"})
	h.insert(&action{time: 3, seq: 2, kind: actionEvent, ev: "b"})
	h.insert(&action{time: 4, seq: 3, kind: actionEvent, ev: "c"})
	h.insert(&action{time: 1, seq: 4, kind: actionInit})
	h.insert(&action{time: 9, seq: 5, kind: actionStop})

	// WHEN removing events labelled "b"
	var removed []Event
	h.removeWhere(func(e Event) bool { return e == "b" }, func(a *action) {
		removed = append(removed, a.ev)
	})

	// THEN only "b" was removed, and Init/Stop survive untouched
	if len(removed) != 1 || removed[0] != "b" {
		t.Fatalf("removeWhere: removed %v, want [\"b\"]", removed)
	}
	var remainingEvents []Event
	kinds := map[actionKind]int{}
	for _, a := range *h {
		kinds[a.kind]++
		if a.kind == actionEvent {
			remainingEvents = append(remainingEvents, a.ev)
		}
	}
	if kinds[actionInit] != 1 || kinds[actionStop] != 1 {
		t.Errorf("removeWhere touched Init/Stop actions: %v", kinds)
	}
	if len(remainingEvents) != 2 {
		t.Errorf("removeWhere: %d events remain, want 2", len(remainingEvents))
	}
}
