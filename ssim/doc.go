// Package ssim provides a generic, single-threaded, sequential discrete-event
// simulation kernel used as the substrate for continuous-time microsimulation.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - types.go: Time and ProcessId, the two scalar types the kernel is built around
//   - event.go: the opaque, reference-counted Event payload and its internal wrapper
//   - schedule.go: the time-ordered, FIFO-on-ties action heap
//   - process.go: the Process interface and the WithID convenience wrapper
//   - simulator.go: the process registry, the signalling API, and the main loop
//   - errors.go: the ErrorHandler contract and kernel-level sentinel errors
//   - facade.go: a package-level default Simulator for callers that want the
//     original static-module ergonomics instead of an explicit context value
//
// # Architecture
//
// ssim does not know anything about the application built on top of it: no
// random number generation, no person/request state machines, no report
// accumulation. Those concerns belong to consumers (see examples/demography
// and cmd/ in this repository) that import ssim and drive it through its
// public API.
//
// A Simulator is a self-contained context: clock, schedule, process
// registry, running/lock flags, stop time, and error handler all live on the
// *Simulator value. Nothing is process-wide global state except the
// convenience facade in facade.go, which simply wraps a package-level default
// Simulator. Tests should prefer NewSimulator() so that each test gets an
// isolated kernel instance.
package ssim
