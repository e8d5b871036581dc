package core

import "errors"

var (
	// ErrInvalidKind is returned when a transaction kind is neither
	// income nor expense.
	ErrInvalidKind = errors.New("invalid transaction kind")

	// ErrInvalidArgument is returned for arguments the formulas or the
	// ledger cannot accept, such as zero compounding periods.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStorageUnavailable is returned when the database cannot be
	// opened, read, or written. No retry is attempted; the caller
	// decides whether to retry or abort.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
