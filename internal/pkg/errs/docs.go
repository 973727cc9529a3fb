// Package errs provides the typed errors shared by the order service.
//
// The package includes:
//   - ObjectNotFoundError: a lookup by identifier found nothing
//   - ValueIsInvalidError: a value broke a business rule
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//
// Each error type follows the same pattern: a sentinel variable, a struct
// with the details, constructors with and without a cause, Error() and an
// Unwrap() that returns the sentinel so callers can classify with errors.Is.
package errs
