package contract

import "errors"

// Precondition failures. Each aborts the call before any instruction is
// emitted or any record written; the reason surfaces verbatim to the
// caller. Missing-configuration failures surface as state.ErrNotFound
// and narrowing failures as amount.ErrOverflow.
var (
	ErrUnauthorized        = errors.New("contract: caller is not the owner")
	ErrNotWhitelisted      = errors.New("contract: account is not whitelisted")
	ErrInvalidCount        = errors.New("contract: count must be greater than zero")
	ErrSupplyExceeded      = errors.New("contract: max total mint exceeded")
	ErrInsufficientPayment = errors.New("contract: insufficient payment")

	ErrEmptyExecute = errors.New("contract: execute message has no variant set")
	ErrEmptyQuery   = errors.New("contract: query message has no variant set")
)
