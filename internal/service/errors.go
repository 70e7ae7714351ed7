package service

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

var (
	ErrDecode     = errors.New("decode")
	ErrValidation = errors.New("validation")
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrProfileNotFound  = errors.New("distributor profile not found")
	ErrRetailerNotFound = errors.New("retailer not found")
	ErrBadTransition    = errors.New("illegal status transition")
)

// PartialCommitError reports an order header that stayed persisted after its
// item batch failed and the compensating delete failed too. The order number
// is carried so the orphaned header can be reconciled by hand.
type PartialCommitError struct {
	OrderNumber string
	Cause       error
}

func (e *PartialCommitError) Error() string {
	return fmt.Sprintf("order %s committed without items: %v", e.OrderNumber, e.Cause)
}

func (e *PartialCommitError) Unwrap() error { return e.Cause }
