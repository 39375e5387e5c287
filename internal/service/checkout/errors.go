package checkout

import "errors"

var (
	ErrAdNotFound         = errors.New("ad not found")
	ErrCheckoutNotFound   = errors.New("checkout not found")
	ErrCheckoutClosed     = errors.New("checkout is no longer awaiting payment")
	ErrPaymentUnavailable = errors.New("payment provider unavailable")
)
