package core

import (
	"fmt"
	"time"
)

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// DateLayout is the wall-clock format transactions are stored with,
// second resolution, no timezone component.
const DateLayout = "2006-01-02 15:04:05"

type (
	// Kind classifies a transaction as income or expense.
	Kind string

	// Transaction is a single immutable ledger record. The store assigns
	// ID and Date at insert time; the ledger is append-only, so a record
	// never changes once written.
	Transaction struct {
		ID       int64
		Kind     Kind
		Amount   float64
		Category string // free-form label, may be empty
		Date     time.Time
	}
)

func (k Kind) Validate() error {
	switch k {
	case Income, Expense:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidKind, string(k))
	}
}
