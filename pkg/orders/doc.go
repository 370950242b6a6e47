// Package orders validates orders against a user registry.
//
// A Pipeline checks one order: the user must exist, the user's email must
// contain an "@", and the amount must not exceed the configured ceiling.
// The checks run in that order and the first failure wins; failures are
// *OrderError values carried on the failure track of rop.Result.
//
// A Validator applies a Pipeline to a batch:
// - ValidateAll: all-or-nothing, first rejection aborts the batch
// - ValidatePrefix: same walk, also returns what was accepted before the rejection
// - Report: every order validated independently
//
// Neither type performs I/O; logging goes to the slog.Logger passed with
// WithLogger and is discarded otherwise.
package orders
