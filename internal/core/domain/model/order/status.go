package order

import (
	"fmt"
	"strings"

	"github.com/kashish2310/food-delivery-order-system/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions driven by the processing pipeline:
//
//	Pending ──> Processing ──> Processed
//
// Processed is terminal for the pipeline. An administrative override
// (Order.OverrideStatus) may set any valid status regardless of these rules.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending is set when an order is created and waits in the queue.
	Pending

	// Processing is set by the worker once the first work phase is done.
	Processing

	// Processed is the final state of the pipeline.
	Processed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Processing: "PROCESSING",
		Processed:  "PROCESSED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		Processing: "PROCESSING",
		Processed:  "PROCESSED",
	}
}

// ParseStatus converts a name such as "PROCESSING" (any case) into a Status.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate reports whether s is one of Pending, Processing or Processed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case status name, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return getStatusStrings()[Unknown]
}

// IsTerminal reports whether the pipeline has nothing left to do for s.
func (s Status) IsTerminal() bool {
	return s == Processed
}

// MarshalText lets Status travel as its name in JSON payloads.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// StartProcessing transitions Pending -> Processing.
func (s Status) StartProcessing() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start processing", s.String()),
		)
	}
	return Processing, nil
}

// CompleteProcessing transitions Processing -> Processed.
func (s Status) CompleteProcessing() (Status, error) {
	if s != Processing {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete processing", s.String()),
		)
	}
	return Processed, nil
}
