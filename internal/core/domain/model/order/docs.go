// Package order provides the Order aggregate and its status state machine.
//
// The package includes:
//   - Order: the aggregate root holding the customer, items, amount and status
//   - Item: a validated order line
//   - Status: the state machine Pending -> Processing -> Processed
//
// Key business rules:
//   - Orders start in Pending and receive their identifier from the order store
//   - Only the processing pipeline advances the status, one step at a time
//   - Processed is terminal for the pipeline
//   - OverrideStatus is the administrative exception and may set any valid
//     status from any status
package order
