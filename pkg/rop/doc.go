// Package rop defines Result[T], the two-track value used across the
// railway-oriented packages of this module.
//
// A Result is on exactly one track:
// - Success: carries a value, Err is nil
// - Fail: carries an error describing why a step rejected its input
// - Cancel: carries a context cancellation error
//
// Every Result gets a uuid and a UTC creation time so outcomes can be
// correlated in logs.
package rop
