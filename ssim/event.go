package ssim

// Event is an opaque, immutable payload signalled between processes. The
// kernel never inspects an Event's contents; it only manages its lifetime.
// Applications typically define their own concrete event types (almost
// always pointers, so that repeated signals of "the same" event share
// identity) and signal them through Simulator.SignalEvent / SelfSignalEvent.
//
// A nil Event is valid and carries no refcount bookkeeping, matching the
// original kernel's "event (possibly NULL)" contract.
type Event = any

// Destroyer is an optional capability an Event value may implement. If an
// event's refcount drops to zero and the value implements Destroyer, Destroy
// is called before the event is forgotten. This is not required for memory
// safety -- Go reclaims unreferenced values regardless -- but it preserves
// the original kernel's explicit "last reference drops, destructor runs"
// semantics for applications that hold non-memory resources in an event
// (file handles, pooled buffers, and the like).
type Destroyer interface {
	Destroy()
}

// eventHandle is the kernel-managed reference count for one Event identity.
// Every action that references an Event increments the handle's refcount on
// scheduling and decrements it on dispatch or cancellation; the handle is
// forgotten once the count reaches zero.
type eventHandle struct {
	value    Event
	refcount int
}

// retainEvent increments the refcount for e, creating its handle on first
// use. A nil event is a no-op: the kernel never tracks refcounts for "no
// event".
func (s *Simulator) retainEvent(e Event) {
	if e == nil {
		return
	}
	h, ok := s.eventRefs[e]
	if !ok {
		h = &eventHandle{value: e}
		s.eventRefs[e] = h
	}
	h.refcount++
}

// releaseEvent decrements the refcount for e and destroys it once no action
// references it anymore.
func (s *Simulator) releaseEvent(e Event) {
	if e == nil {
		return
	}
	h, ok := s.eventRefs[e]
	if !ok {
		return
	}
	h.refcount--
	if h.refcount <= 0 {
		delete(s.eventRefs, e)
		if d, ok := h.value.(Destroyer); ok {
			d.Destroy()
		}
	}
}

// liveEventCount reports how many distinct event identities currently hold a
// non-zero refcount. Used by tests to check refcount soundness (testable
// property 5): it must be zero immediately after Clear.
func (s *Simulator) liveEventCount() int {
	return len(s.eventRefs)
}
