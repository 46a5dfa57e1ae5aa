package engine

import "errors"

// Rule-level error kinds. NotFound and StoreFailure live in the store
// package; controllers map all of them to HTTP statuses with errors.Is.
var (
	// ErrInvalidState rejects an action attempted outside its legal game
	// state, e.g. rolling when the game is not active.
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidOperation rejects a rule violation, e.g. building without
	// a monopoly or mortgaging a built property.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrInsufficientFunds rejects an action the player cannot afford.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrUnknownAction rejects an unrecognized card type or card action.
	ErrUnknownAction = errors.New("unknown action")
)
