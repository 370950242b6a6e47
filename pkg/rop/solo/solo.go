package solo

import (
	"context"

	"github.com/ib-77/ropkit/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Cancel[T any](err error) rop.Result[T] {
	return rop.Cancel[T](err)
}

// FromOption lifts a comma-ok lookup onto the railway. A missing value fails
// with the error produced by onMissing.
func FromOption[T any](value T, ok bool, onMissing func() error) rop.Result[T] {
	if ok {
		return rop.Success(value)
	}
	return rop.Fail[T](onMissing())
}

// Ensure keeps a successful input on the success track only if check
// returns nil.
func Ensure[T any](ctx context.Context, input rop.Result[T],
	check func(ctx context.Context, in T) error) rop.Result[T] {

	if !input.IsSuccess() {
		return input
	}

	if err := check(ctx, input.Result()); err != nil {
		return rop.Fail[T](err)
	}
	return input
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Result()))
	}
	return rop.FailFrom[In, Out](input)
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if !input.IsSuccess() {
		return rop.FailFrom[In, Out](input)
	}

	out, err := onTryExecute(ctx, input.Result())
	if err != nil {
		return rop.FromError[Out](err)
	}
	return rop.Success(out)
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	}

	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	} else if input.IsCancel() {
		return onCancel(ctx, input.Err())
	} else {
		return onError(ctx, input.Err())
	}
}

// Traverse runs step over inputs in order and collects the successful values.
// It stops at the first non-successful step and returns that result; later
// inputs are never evaluated. A cancelled ctx between steps stops the walk on
// the cancel track.
func Traverse[In, Out any](ctx context.Context, inputs []In,
	step func(ctx context.Context, in In) rop.Result[Out]) rop.Result[[]Out] {

	out, failed := TraversePrefix(ctx, inputs, step)
	if failed != nil {
		return rop.FailFrom[Out, []Out](*failed)
	}
	return rop.Success(out)
}

// TraversePrefix is Traverse that also hands back the values collected before
// the first failure. failed is nil when every step succeeded.
func TraversePrefix[In, Out any](ctx context.Context, inputs []In,
	step func(ctx context.Context, in In) rop.Result[Out]) (prefix []Out, failed *rop.Result[Out]) {

	prefix = make([]Out, 0, len(inputs))

	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			cancelled := rop.Cancel[Out](err)
			return prefix, &cancelled
		}

		res := step(ctx, in)
		if !res.IsSuccess() {
			return prefix, &res
		}
		prefix = append(prefix, res.Result())
	}

	return prefix, nil
}
