package ssim

// defaultSimulator backs the package-level facade below. It exists purely
// for ergonomics -- callers who only ever run one simulation at a time can
// use the free functions instead of threading a *Simulator through their
// own code, recovering the original kernel's static-module feel without
// making that global state mandatory for everyone else (see NewSimulator
// and the re-architecture notes in doc.go).
var defaultSimulator = NewSimulator()

// DefaultSimulator returns the package-level Simulator instance used by the
// free functions below.
func DefaultSimulator() *Simulator { return defaultSimulator }

func CreateProcess(p Process) ProcessId { return defaultSimulator.CreateProcess(p) }

func SignalEvent(pid ProcessId, e Event) { defaultSimulator.SignalEvent(pid, e) }

func SignalEventDelay(pid ProcessId, e Event, d Time) {
	defaultSimulator.SignalEventDelay(pid, e, d)
}

func SelfSignalEvent(e Event) { defaultSimulator.SelfSignalEvent(e) }

func SelfSignalEventDelay(e Event, d Time) { defaultSimulator.SelfSignalEventDelay(e, d) }

func StopProcess() { defaultSimulator.StopProcess() }

func StopProcessID(pid ProcessId) error { return defaultSimulator.StopProcessID(pid) }

func AdvanceDelay(d Time) { defaultSimulator.AdvanceDelay(d) }

func SetStopTime(t Time) { defaultSimulator.SetStopTime(t) }

func SetErrorHandler(h ErrorHandler) { defaultSimulator.SetErrorHandler(h) }

func RemoveEvent(pred func(Event) bool) { defaultSimulator.RemoveEvent(pred) }

func RunSimulation() { defaultSimulator.RunSimulation() }

func StopSimulation() { defaultSimulator.StopSimulation() }

func Clear() { defaultSimulator.Clear() }

func Clock() Time { return defaultSimulator.Clock() }

func ThisProcess() ProcessId { return defaultSimulator.ThisProcess() }
