package contract

import "errors"

// Failure kinds surfaced to callers. Every one of them aborts the whole
// execution; the host discards all writes made so far.
var (
	ErrNotFound          = errors.New("token not found")
	ErrInvalidAddress    = errors.New("invalid address")
	ErrNoFundsSent       = errors.New("no uastra sent")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotOwner          = errors.New("not the owner")
	ErrAlreadyExists     = errors.New("token already exists")
	ErrNotMinter         = errors.New("sender is not an authorized minter")
)
