package orders

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidUser   = errors.New("invalid user")
	ErrPaymentFailed = errors.New("payment failed")

	ErrDuplicateUser = errors.New("duplicate user id")
)

// ErrorKind classifies an OrderError.
type ErrorKind string

const (
	KindUserNotFound  ErrorKind = "user_not_found"
	KindInvalidUser   ErrorKind = "invalid_user"
	KindPaymentFailed ErrorKind = "payment_failed"
)

// OrderError is the failure produced by the validation pipeline. UserID is
// set for KindUserNotFound, Reason for the other kinds.
type OrderError struct {
	Kind   ErrorKind
	UserID uint32
	Reason string
}

func UserNotFound(id uint32) *OrderError {
	return &OrderError{Kind: KindUserNotFound, UserID: id}
}

func InvalidUser(reason string) *OrderError {
	return &OrderError{Kind: KindInvalidUser, Reason: reason}
}

func PaymentFailed(reason string) *OrderError {
	return &OrderError{Kind: KindPaymentFailed, Reason: reason}
}

func (e *OrderError) Error() string {
	if e == nil {
		return "<nil>"
	}

	switch e.Kind {
	case KindUserNotFound:
		return fmt.Sprintf("user %d not found", e.UserID)
	case KindInvalidUser:
		return "invalid user: " + e.Reason
	case KindPaymentFailed:
		return "payment failed: " + e.Reason
	default:
		return fmt.Sprintf("order error (%s): %s", e.Kind, e.Reason)
	}
}

// Unwrap exposes the sentinel for the kind so callers can use errors.Is.
func (e *OrderError) Unwrap() error {
	if e == nil {
		return nil
	}

	switch e.Kind {
	case KindUserNotFound:
		return ErrUserNotFound
	case KindInvalidUser:
		return ErrInvalidUser
	case KindPaymentFailed:
		return ErrPaymentFailed
	default:
		return nil
	}
}

// IsKind reports whether err is an OrderError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OrderError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
