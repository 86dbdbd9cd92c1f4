package supplements

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrValidationFailed  = errors.New("validation failed")
	ErrPersistenceFailed = errors.New("persistence failed")

	// ErrEmptyCart is returned by Checkout when there is nothing to check out.
	ErrEmptyCart = fmt.Errorf("%w: cart is empty", ErrValidationFailed)
	// ErrItemOrdered is returned when a cart operation targets an item that
	// has already been checked out.
	ErrItemOrdered = fmt.Errorf("%w: item belongs to an order", ErrValidationFailed)
	// ErrRefreshInProgress is returned when a price refresh batch is started
	// while another one is still running.
	ErrRefreshInProgress = errors.New("price refresh already in progress")
)

func notFound(kind, id string) error {
	return fmt.Errorf("%w: %s %q", ErrNotFound, kind, id)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidationFailed, fmt.Sprintf(format, args...))
}
