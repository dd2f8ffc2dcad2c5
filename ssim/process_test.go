package ssim

import "testing"

type idAwareProcess struct {
	WithID
	log *[]recordedCall
	sim *Simulator
}

func (p *idAwareProcess) Init() {
	*p.log = append(*p.log, recordedCall{method: "init", time: p.sim.Clock(), event: p.PID()})
}
func (p *idAwareProcess) ProcessEvent(e Event) {}
func (p *idAwareProcess) Stop()                {}

func TestWithID_PID_ReflectsActivation(t *testing.T) {
	sim := NewSimulator()
	var log []recordedCall
	p := &idAwareProcess{log: &log, sim: sim}

	if got := p.PID(); got != NullProcessID {
		t.Fatalf("PID() before Activate = %v, want NullProcessID", got)
	}

	pid := p.Activate(sim, p)
	if p.PID() != pid {
		t.Errorf("PID() after Activate = %v, want %v", p.PID(), pid)
	}

	sim.RunSimulation()
	if len(log) != 1 || log[0].event != pid {
		t.Errorf("Init saw PID() = %v, want %v (log=%v)", log[0].event, pid, log)
	}
}

func TestWithID_Activate_Twice_IsNoOp(t *testing.T) {
	sim := NewSimulator()
	var log []recordedCall
	p := &idAwareProcess{log: &log, sim: sim}

	first := p.Activate(sim, p)
	second := p.Activate(sim, p)
	if second != NullProcessID {
		t.Errorf("second Activate returned %v, want NullProcessID", second)
	}
	if p.PID() != first {
		t.Errorf("PID() after double Activate = %v, want %v (unchanged)", p.PID(), first)
	}
}
