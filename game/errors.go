package game

import "errors"

// Error kinds for failed operations. Business-rule violations are
// expected outcomes: they are carried inside a Result and never escape
// the engine boundary as returned errors. Callers branch with
// errors.Is against these sentinels.
var (
	// ErrValidation marks malformed input: non-positive quantities,
	// unknown goods/assets/cities, zero amounts.
	ErrValidation = errors.New("invalid input")

	// ErrInsufficientFunds marks a spend larger than the available
	// cash (or bank balance, for withdrawals).
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientQuantity marks a sell of more units than held.
	ErrInsufficientQuantity = errors.New("insufficient quantity")

	// ErrCargoFull marks a buy that does not fit the cargo hold.
	ErrCargoFull = errors.New("not enough cargo space")

	// ErrCreditLimit marks a loan request beyond credit capacity.
	ErrCreditLimit = errors.New("credit limit exceeded")
)
