package rop

import (
	"context"
	"errors"
	"testing"
)

func TestResultTracks(t *testing.T) {
	t.Parallel()

	ok := Success(5)
	if !ok.IsSuccess() || ok.IsFailure() || ok.IsCancel() || ok.Err() != nil {
		t.Fatalf("unexpected success state: %+v", ok)
	}

	failed := Fail[int](errors.New("boom"))
	if failed.IsSuccess() || !failed.IsFailure() || failed.IsCancel() {
		t.Fatalf("unexpected fail state: %+v", failed)
	}

	cancelled := Cancel[int](context.Canceled)
	if cancelled.IsSuccess() || cancelled.IsFailure() || !cancelled.IsCancel() {
		t.Fatalf("unexpected cancel state: %+v", cancelled)
	}

	var zero Result[int]
	if !zero.IsEmpty() || zero.IsFailure() {
		t.Fatalf("zero value should be empty")
	}
}

func TestFailFromKeepsIdentity(t *testing.T) {
	t.Parallel()

	in := Cancel[int](context.DeadlineExceeded)
	out := FailFrom[int, string](in)

	if out.Id() != in.Id() || !out.CreatedAt().Equal(in.CreatedAt()) {
		t.Fatalf("expected id and creation time to be carried over")
	}
	if !out.IsCancel() || !errors.Is(out.Err(), context.DeadlineExceeded) {
		t.Fatalf("expected cancel track with deadline error, got %v", out.Err())
	}
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	v, err := Success("x").Unwrap()
	if v != "x" || err != nil {
		t.Fatalf("expected (x, nil), got (%q, %v)", v, err)
	}

	_, err = Fail[string](errors.New("bad")).Unwrap()
	if err == nil || err.Error() != "bad" {
		t.Fatalf("expected bad, got %v", err)
	}
}

func TestFromError(t *testing.T) {
	t.Parallel()

	if !FromError[int](context.Canceled).IsCancel() {
		t.Fatalf("context.Canceled should map to the cancel track")
	}
	if !FromError[int](errors.New("x")).IsFailure() {
		t.Fatalf("plain errors should map to the fail track")
	}
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	a, b := errors.New("a"), errors.New("b")
	if got := GetErrors(errors.Join(a, b)); len(got) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(got))
	}
	if got := GetErrors(a); len(got) != 1 || got[0] != a {
		t.Fatalf("expected [a], got %v", got)
	}
	if got := GetErrors(nil); len(got) != 0 {
		t.Fatalf("expected none, got %v", got)
	}
}
