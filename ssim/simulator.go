package ssim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// processDescriptor is the kernel's view of one registered process: the
// user's Process value, whether it has been stopped, and the busy-window
// watermark set after each successful dispatch.
type processDescriptor struct {
	process     Process
	terminated  bool
	availableAt Time
}

// Simulator is a self-contained discrete-event simulation context: a
// virtual clock, a time-ordered schedule of actions, a registry of
// processes, and the signalling API that ties them together. A Simulator is
// not safe for concurrent use from multiple goroutines -- it models a
// single, sequential thread of virtual execution, matching the kernel's
// single-threaded invariant.
//
// Construct one with NewSimulator. For callers that only ever need a single
// implicit simulation (mirroring the original kernel's static-module API),
// see the package-level facade in facade.go.
type Simulator struct {
	processes []processDescriptor
	actions   actionHeap
	nextSeq   uint64

	clock          Time
	currentProcess ProcessId
	running        bool
	locked         bool
	stopTime       Time

	errorHandler ErrorHandler
	eventRefs    map[Event]*eventHandle
}

// NewSimulator returns a freshly initialized Simulator: empty registry and
// schedule, clock at InitTime, no current process, no stop time and no
// error handler. Use it rather than a zero-valued Simulator, whose event
// refcount table is not allocated (Clear does not allocate it either).
func NewSimulator() *Simulator {
	s := &Simulator{}
	s.reset()
	return s
}

func (s *Simulator) reset() {
	s.processes = nil
	s.actions = nil
	s.clock = InitTime
	s.currentProcess = NullProcessID
	s.running = false
	s.eventRefs = make(map[Event]*eventHandle)
}

// Clock returns the current virtual time: the time of the action currently
// being dispatched, or the time of the last dispatched action once the loop
// has returned.
func (s *Simulator) Clock() Time { return s.clock }

// ThisProcess returns the id of the process currently executing. Outside
// RunSimulation it returns the target of the last action the loop handled,
// or NullProcessID if none has been handled since NewSimulator or the last
// Clear.
func (s *Simulator) ThisProcess() ProcessId { return s.currentProcess }

// CreateProcess registers p with the simulator and schedules its Init at
// the current virtual time. Safe to call both inside and outside the main
// loop.
func (s *Simulator) CreateProcess(p Process) ProcessId {
	s.processes = append(s.processes, processDescriptor{process: p, availableAt: InitTime})
	pid := ProcessId(len(s.processes) - 1)
	s.scheduleAt(s.clock, actionInit, pid, nil)
	logrus.Debugf("ssim: created process %d at %v", pid, s.clock)
	return pid
}

// SignalEvent schedules delivery of e to pid at the current virtual time.
func (s *Simulator) SignalEvent(pid ProcessId, e Event) {
	s.scheduleAt(s.clock, actionEvent, pid, e)
}

// SignalEventDelay schedules delivery of e to pid at clock+d. d must be
// non-negative; a negative delay is a programming error and panics.
func (s *Simulator) SignalEventDelay(pid ProcessId, e Event, d Time) {
	if d < 0 {
		panic(fmt.Sprintf("ssim: negative delay %v passed to SignalEventDelay", d))
	}
	s.scheduleAt(s.clock+d, actionEvent, pid, e)
}

// SelfSignalEvent schedules delivery of e to ThisProcess() at the current
// virtual time. There is no current process outside RunSimulation, so
// calling it then is a programmer error and panics, rather than silently
// targeting NullProcessID.
func (s *Simulator) SelfSignalEvent(e Event) {
	if !s.running {
		panic("ssim: SelfSignalEvent called while not running")
	}
	s.SignalEvent(s.currentProcess, e)
}

// SelfSignalEventDelay schedules delivery of e to ThisProcess() at
// clock+d. As with SelfSignalEvent, calling it outside RunSimulation panics.
func (s *Simulator) SelfSignalEventDelay(e Event, d Time) {
	if !s.running {
		panic("ssim: SelfSignalEventDelay called while not running")
	}
	s.SignalEventDelay(s.currentProcess, e, d)
}

// StopProcess schedules a Stop action for ThisProcess() at the current
// virtual time.
func (s *Simulator) StopProcess() {
	s.scheduleAt(s.clock, actionStop, s.currentProcess, nil)
}

// StopProcessID schedules a Stop action for pid at the current virtual
// time. It returns ErrAlreadyTerminated, without scheduling anything, if
// pid has already processed a Stop action.
func (s *Simulator) StopProcessID(pid ProcessId) error {
	s.checkProcessID(pid)
	if s.processes[pid].terminated {
		return ErrAlreadyTerminated
	}
	s.scheduleAt(s.clock, actionStop, pid, nil)
	return nil
}

// AdvanceDelay extends the current virtual time by d without scheduling any
// action. Calling it during dispatch widens ThisProcess()'s busy window: any
// action that targets it with a time before clock+d is diverted to the
// error handler instead of being dispatched. A no-op outside RunSimulation.
func (s *Simulator) AdvanceDelay(d Time) {
	if !s.running {
		return
	}
	s.clock += d
}

// SetStopTime sets the absolute virtual time at which RunSimulation
// terminates. InitTime (the default) disables the limit, so the loop runs
// until the schedule is empty. Clear does not reset the stop time, matching
// the original kernel.
func (s *Simulator) SetStopTime(t Time) {
	s.stopTime = t
}

// SetErrorHandler installs h as the receiver of busy/terminated
// notifications. A nil handler (the default) makes those conditions
// silently drop the offending action.
func (s *Simulator) SetErrorHandler(h ErrorHandler) {
	s.errorHandler = h
}

// RemoveEvent deletes every pending event action whose event satisfies
// pred. Init and Stop actions are never removed. This is O(N) in the size
// of the schedule and intended for relatively rare use (cancellation of a
// previously scheduled event in response to some other event occurring
// first).
func (s *Simulator) RemoveEvent(pred func(Event) bool) {
	s.actions.removeWhere(pred, func(a *action) {
		s.releaseEvent(a.ev)
	})
}

// StopSimulation requests that RunSimulation terminate at the end of the
// current dispatch.
func (s *Simulator) StopSimulation() {
	s.running = false
}

// Clear resets the simulator to an empty state: the registry is emptied,
// all pending actions are dropped (releasing their events), the clock and
// current process are restored to their initial sentinels, and the error
// handler (if any) is notified via its own Clear method. Every ProcessId
// returned by a prior CreateProcess call is invalidated.
//
// Clear does not reset the stop time set by SetStopTime, matching the
// original kernel -- a run-to-run stop-time policy survives across Clear
// unless the caller explicitly calls SetStopTime again.
//
// The caller retains ownership of its Process values; Clear never disposes
// of them.
func (s *Simulator) Clear() {
	s.running = false
	s.clock = InitTime
	s.currentProcess = NullProcessID
	s.processes = nil
	if s.errorHandler != nil {
		s.errorHandler.Clear()
	}
	for _, a := range s.actions {
		s.releaseEvent(a.ev)
	}
	s.actions = nil
	logrus.Debugf("ssim: cleared, %d events still live", s.liveEventCount())
}

// RunSimulation runs the main loop: peek the earliest action, and if its
// time does not exceed the configured stop time, pop it, advance the clock,
// and dispatch it to its target process. This repeats until either the
// schedule is empty, StopSimulation is called, or the next action's time
// exceeds the stop time -- in which case the loop exits leaving that action
// (and its event's reference) in the schedule, for a later RunSimulation
// call or Clear to deal with. Re-entrant calls (a process calling
// RunSimulation from inside its own Init/ProcessEvent/Stop) are silently
// ignored.
func (s *Simulator) RunSimulation() {
	if s.locked {
		return
	}
	s.locked = true
	s.running = true

	for s.running && s.actions.Len() > 0 {
		next := s.actions.peekFirst()
		if s.stopTime != InitTime && next.time > s.stopTime {
			break
		}
		a := s.actions.popFirst()
		s.clock = a.time
		s.currentProcess = a.pid
		s.checkProcessID(a.pid)

		pd := s.processes[a.pid]
		switch {
		case pd.terminated:
			logrus.Tracef("ssim: terminated-process condition for %d at %v", a.pid, s.clock)
			if s.errorHandler != nil {
				s.errorHandler.HandleTerminated(a.pid, a.ev)
			}
		case s.clock < pd.availableAt:
			logrus.Tracef("ssim: busy-process condition for %d at %v (available at %v)", a.pid, s.clock, pd.availableAt)
			if s.errorHandler != nil {
				s.errorHandler.HandleBusy(a.pid, a.ev)
			}
		default:
			switch a.kind {
			case actionEvent:
				pd.process.ProcessEvent(a.ev)
			case actionInit:
				pd.process.Init()
			case actionStop:
				pd.process.Stop()
				// Re-index rather than reuse pd: Stop() may have created
				// or stopped other processes, resizing the registry.
				s.processes[a.pid].terminated = true
			default:
				// Unknown action kind: skipped without effect.
			}
			// Re-index for the same reason as above: dispatch may have
			// grown the registry via CreateProcess.
			s.processes[a.pid].availableAt = s.clock
		}

		s.releaseEvent(a.ev)
	}

	s.locked = false
	s.running = false
}

// scheduleAt retains e (if non-nil) and inserts a new action into the
// schedule, stamping it with the next insertion sequence number so that
// actions with equal times are dispatched in FIFO order.
func (s *Simulator) scheduleAt(t Time, kind actionKind, pid ProcessId, e Event) {
	s.retainEvent(e)
	s.nextSeq++
	s.actions.insert(&action{time: t, seq: s.nextSeq, kind: kind, pid: pid, ev: e})
}

// checkProcessID panics if pid does not name a live entry in the registry.
// This is the debug-mode range check the kernel's error-handling design
// allows: an invalid ProcessId is a programmer error, not a recoverable
// simulation condition, and the original kernel leaves its behavior
// undefined. Panicking with a descriptive message is cheaper to debug than
// silent corruption.
func (s *Simulator) checkProcessID(pid ProcessId) {
	if pid < 0 || int(pid) >= len(s.processes) {
		panic(fmt.Sprintf("ssim: invalid ProcessId %d", pid))
	}
}
