package ports

import "context"

// OrderSubmitter hands a freshly created order to the processing pipeline.
// Submission is best effort: a false result means the order was not queued,
// never that creation failed.
type OrderSubmitter interface {
	Submit(ctx context.Context, orderID int64) bool
}
