package dispatch

import "errors"

// Sentinel errors returned by the dispatch use case. Handlers map these to
// transport status codes; anything else is an internal error.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrCourierNotFound      = errors.New("courier not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderAlreadyAssigned = errors.New("order already assigned")
	ErrStoreUnavailable     = errors.New("store unavailable")
)
