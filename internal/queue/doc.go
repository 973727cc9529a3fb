// Package queue implements the in-memory hand-off between order creation and
// order processing.
//
// BoundedQueue is a fixed-capacity FIFO of order identifiers. Enqueue never
// blocks: a full queue rejects the identifier. Dequeue waits up to a timeout
// and reports an empty result rather than an error.
//
// Producer wraps the queue for the order-creation path. A rejected identifier
// is logged and counted, but the order itself stays persisted in PENDING, so
// queueing failures are never surfaced to the caller.
//
// The queue is not durable: identifiers waiting in it are lost on restart.
package queue
