package ssim

// Time represents virtual (simulated) time. It is a real-valued scalar; the
// semantics of one unit of Time (a second, a year, a tick) is entirely up to
// the simulated application.
type Time float64

// InitTime is the beginning of time for a fresh Simulator.
const InitTime Time = 0

// ProcessId identifies a process registered with a Simulator. Process ids
// are dense, non-negative, and assigned in creation order; they are never
// reused within a run and are invalidated by Clear.
type ProcessId int

// NullProcessID is returned in place of a ProcessId when there is no
// associated process, e.g. a WithID that has not been activated yet.
const NullProcessID ProcessId = -1
