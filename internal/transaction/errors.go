package transaction

import "errors"

var (
	// ErrInvalidArgument marks input that can never produce a valid value:
	// blank required fields, non-positive amounts, malformed identifiers,
	// unknown enum text and cross-field rule violations.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIllegalState marks a lifecycle mutation that the current status
	// does not permit.
	ErrIllegalState = errors.New("illegal state")

	ErrNotFound = errors.New("transaction not found")
)
