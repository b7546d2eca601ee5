// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrValueIsRequired) used with errors.Is
//   - A struct type carrying the offending parameter name and optional cause
//   - Constructor functions with and without cause
//   - Error() and Unwrap() implementations
//
// The parameter name carried by every error is what callers surface in
// field-level validation messages, so domain code always names the exact
// field that failed (for example "CardNumber").
package errs
