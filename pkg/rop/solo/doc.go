// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions form the core building blocks for error-aware
// pipelines without channels.
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T]
// - FromOption: turn a comma-ok lookup into a Result with a typed error
// - Ensure: keep a value on the success track only if a check passes
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee: side-effect helper
// - Finally: reduce to a concrete value via success/error/cancel handlers
// - Traverse/TraversePrefix: fail-fast walk over a slice of inputs
package solo
