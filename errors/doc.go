// Package errors provides structured error types for the tmdsgen module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries a location path, the offending value and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindOutOfRange).
//		Path("control").
//		Value(c).
//		Detail("control code %d exceeds 3", c).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotFound(errors.PhaseGenerate, "table", name)
//	err := errors.Invariant(errors.PhaseGenerate, path, "disparity %d after pair", d)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
