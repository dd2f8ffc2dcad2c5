package ssim

import "errors"

// ErrAlreadyTerminated is returned by StopProcessID when the target process
// has already processed a Stop action. No action is scheduled in this case.
var ErrAlreadyTerminated = errors.New("ssim: process already terminated")

// ErrorHandler receives notification of recoverable scheduling anomalies:
// an action arriving for a process that is busy or already terminated. It
// is optional -- if none is installed, such conditions are silently
// dropped.
//
// HandleBusy and HandleTerminated are called from inside the main loop in
// the context of the affected process (Clear is called from Simulator.Clear
// instead): the handler may call Clock, ThisProcess, and any of
// the signalling methods, including signalling further events to the busy
// or terminated process. It must not call RunSimulation (the re-entrancy
// guard makes this a no-op rather than a correctness hazard, but it remains
// disallowed practice).
type ErrorHandler interface {
	// Clear is called by Simulator.Clear so the handler can reset any
	// internal counters of its own.
	Clear()

	// HandleBusy is called when an action is scheduled for a process that
	// is still inside its busy window (see Simulator.AdvanceDelay). e is
	// the diverted event, possibly nil.
	HandleBusy(pid ProcessId, e Event)

	// HandleTerminated is called when an action is scheduled for a
	// process that has already processed a Stop action. e is the
	// diverted event, possibly nil.
	HandleTerminated(pid ProcessId, e Event)
}
