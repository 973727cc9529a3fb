// Package queries contains read-only operations over orders. Handlers read
// the orders table directly through GORM and return read models instead of
// domain aggregates.
package queries
