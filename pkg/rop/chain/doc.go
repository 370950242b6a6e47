// Package chain provides a fluent wrapper around Result[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Each step runs only while the chain is on the success track; the first
// failing step decides the outcome and later steps are skipped.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: fail the chain when a check returns an error
// - Tee: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
