package sim

import "errors"

var (
	// ErrQueueOverflow is returned when an enqueue would exceed a queue's capacity.
	// Capacity is sized to the process count, so this indicates an engine bug.
	ErrQueueOverflow = errors.New("queue overflow")

	// ErrQueueUnderflow is returned when dequeuing from an empty queue.
	ErrQueueUnderflow = errors.New("queue underflow")

	// ErrInvalidDescriptor is returned for malformed process input.
	ErrInvalidDescriptor = errors.New("invalid process descriptor")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid simulation config")

	// ErrHorizonExceeded is returned when the clock passes Config.Horizon
	// before every process has terminated.
	ErrHorizonExceeded = errors.New("simulation horizon exceeded")
)
