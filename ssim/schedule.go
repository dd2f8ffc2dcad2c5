package ssim

import "container/heap"

// actionKind distinguishes the three kinds of work the kernel schedules.
type actionKind int

const (
	actionEvent actionKind = iota
	actionInit
	actionStop
)

// action is one scheduled unit of work: deliver an event, initialize a
// process, or stop a process. Ties in time are broken by seq, a
// monotonically increasing insertion counter, so the schedule is stable
// (FIFO on equal times) the way container/heap's unstable sort cannot
// guarantee on its own.
type action struct {
	time Time
	seq  uint64
	kind actionKind
	pid  ProcessId
	ev   Event
}

// actionHeap is a binary heap of *action, min-ordered by (time, seq). It
// implements container/heap.Interface; see
// https://pkg.go.dev/container/heap#example-package-IntHeap for the
// canonical shape this follows.
type actionHeap []*action

func (h actionHeap) Len() int { return len(h) }

func (h actionHeap) Less(i, j int) bool {
	if h[i].time != h[j].time {
		return h[i].time < h[j].time
	}
	return h[i].seq < h[j].seq
}

func (h actionHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *actionHeap) Push(x any) {
	*h = append(*h, x.(*action))
}

func (h *actionHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// insert adds a to the schedule in O(log N).
func (h *actionHeap) insert(a *action) {
	heap.Push(h, a)
}

// popFirst removes and returns the earliest-scheduled action in O(log N).
// Returns nil if the schedule is empty.
func (h *actionHeap) popFirst() *action {
	if h.Len() == 0 {
		return nil
	}
	return heap.Pop(h).(*action)
}

// peekFirst returns the earliest-scheduled action without removing it.
// Returns nil if the schedule is empty.
func (h *actionHeap) peekFirst() *action {
	if h.Len() == 0 {
		return nil
	}
	return (*h)[0]
}

// removeWhere deletes every actionEvent action whose event satisfies pred,
// calling onRemoved for each one so the caller can release its refcount.
// actionInit and actionStop actions are never removed, matching the
// original kernel's remove_event semantics.
func (h *actionHeap) removeWhere(pred func(Event) bool, onRemoved func(*action)) {
	kept := (*h)[:0]
	for _, a := range *h {
		if a.kind == actionEvent && pred(a.ev) {
			onRemoved(a)
			continue
		}
		kept = append(kept, a)
	}
	*h = kept
	heap.Init(h)
}
