// Package sim provides the discrete-time CPU scheduling simulation engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process lifecycle (new → ready → running → blocked → terminated)
//   - policy.go: Dispatch policies (vrr, rr, fcfs, sjf, srtf)
//   - simulator.go: The tick loop: arrivals, CPU step, dispatch, I/O step
//
// # Architecture
//
// One Simulator owns an arena of processes indexed by ProcessID, three
// bounded FIFO queues of IDs (ready, auxiliary, I/O), a CPUDevice and an
// IODevice. Each tick runs in a fixed order:
//
//	arrivals → CPU step → dispatch → I/O step → clock++
//
// Sub-packages:
//   - sim/trace/: Per-tick event recording and rendering
//   - sim/workload/: Workload files (YAML, CSV, semicolon text) and generation
//
// # Key Interfaces
//
//   - DispatchPolicy: preemption test, next-occupant selection and the queue
//     I/O-returning processes rejoin. Virtual Round Robin is the richest
//     implementation: I/O returns go to the auxiliary queue, which is served
//     before the ready queue, and resume their saved quantum.
package sim
