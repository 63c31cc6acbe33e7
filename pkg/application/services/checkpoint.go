package services

// Checkpointer receives a callback after every committing mutation so the
// current state can be mirrored to durable storage. Implementations must be
// safe to call repeatedly; failures are logged, never propagated, because a
// committed mutation is already visible in memory.
type Checkpointer interface {
	Checkpoint()
}

// NopCheckpointer discards checkpoints. Useful in tests and for callers that
// manage persistence themselves.
type NopCheckpointer struct{}

// Checkpoint does nothing.
func (NopCheckpointer) Checkpoint() {}
