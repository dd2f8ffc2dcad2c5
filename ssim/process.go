package ssim

// Process is a user-defined state machine driven by the kernel. A concrete
// process is created within a Simulator via CreateProcess; from then on the
// kernel calls Init, ProcessEvent, and Stop at the appropriate points in the
// main loop (see Simulator.RunSimulation).
type Process interface {
	// Init is invoked exactly once, at the virtual time of the
	// CreateProcess call, before any event is delivered to this process.
	Init()

	// ProcessEvent is invoked once per delivered event action. The Event
	// is valid only for the duration of this call: it may be re-signalled
	// (which retains it for its new recipient), but must not be retained
	// past return.
	ProcessEvent(e Event)

	// Stop is invoked when the process is terminated via StopProcess /
	// StopProcessID, after every event already scheduled before the stop
	// call has been processed.
	Stop()
}

// WithID is an embeddable convenience wrapper that memoises a process's own
// ProcessId, the Go analogue of the original kernel's ProcessWithPId. A Go
// zero value cannot distinguish "never activated" from "activated as
// process 0" (ProcessId's zero value is a valid id), so WithID tracks an
// explicit activated flag alongside the cached id rather than relying on a
// sentinel default.
type WithID struct {
	id        ProcessId
	activated bool
}

// Activate creates p within s and records the resulting ProcessId. The same
// WithID can be activated only once; subsequent calls return NullProcessID
// without creating another process.
func (w *WithID) Activate(s *Simulator, p Process) ProcessId {
	if w.activated {
		return NullProcessID
	}
	w.activated = true
	w.id = s.CreateProcess(p)
	return w.id
}

// PID returns the id of the process associated with this WithID, or
// NullProcessID if it has not been activated yet.
func (w *WithID) PID() ProcessId {
	if !w.activated {
		return NullProcessID
	}
	return w.id
}
