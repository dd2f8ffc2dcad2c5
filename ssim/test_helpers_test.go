package ssim

// recordedCall captures one Init/ProcessEvent/Stop invocation for assertions
// in table-driven and scenario tests.
type recordedCall struct {
	method string // "init", "event", "stop"
	time   Time
	event  Event
}

// recordingProcess is a Process that appends every callback it receives to
// a shared log, optionally running a script of actions on Init/ProcessEvent.
type recordingProcess struct {
	sim     *Simulator
	log     *[]recordedCall
	onInit  func(sim *Simulator)
	onEvent func(sim *Simulator, e Event)
}

func (p *recordingProcess) Init() {
	*p.log = append(*p.log, recordedCall{method: "init", time: p.sim.Clock()})
	if p.onInit != nil {
		p.onInit(p.sim)
	}
}

func (p *recordingProcess) ProcessEvent(e Event) {
	*p.log = append(*p.log, recordedCall{method: "event", time: p.sim.Clock(), event: e})
	if p.onEvent != nil {
		p.onEvent(p.sim, e)
	}
}

func (p *recordingProcess) Stop() {
	*p.log = append(*p.log, recordedCall{method: "stop", time: p.sim.Clock()})
}

// recordingErrorHandler records every HandleBusy/HandleTerminated/Clear call
// it receives.
type recordingErrorHandler struct {
	busy       []recordedCall
	terminated []recordedCall
	cleared    int
	sim        *Simulator
}

func (h *recordingErrorHandler) Clear() { h.cleared++ }

func (h *recordingErrorHandler) HandleBusy(pid ProcessId, e Event) {
	h.busy = append(h.busy, recordedCall{method: "busy", time: h.sim.Clock(), event: e})
}

func (h *recordingErrorHandler) HandleTerminated(pid ProcessId, e Event) {
	h.terminated = append(h.terminated, recordedCall{method: "terminated", time: h.sim.Clock(), event: e})
}
