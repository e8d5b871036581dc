// Package ledger implements the summary engine on top of the
// transaction store.
package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/core"
)

// TransactionStore is the persistence surface the ledger needs.
// *storage.Store satisfies it.
type TransactionStore interface {
	Append(ctx context.Context, kind core.Kind, amount float64, category string) (int64, error)
	SumByKind(ctx context.Context, kind core.Kind) (float64, error)
	List(ctx context.Context, limit int) ([]core.Transaction, error)
}

// Service orchestrates ledger operations against the transaction store.
type Service struct {
	store TransactionStore
}

func NewService(store TransactionStore) *Service {
	return &Service{store: store}
}

// Record appends one transaction and returns its id. Amounts carry no
// sign; direction comes from the kind, so a negative amount is
// rejected with ErrInvalidArgument before anything is written.
func (s *Service) Record(ctx context.Context, kind core.Kind, amount float64, category string) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: amount must not be negative, got %v", core.ErrInvalidArgument, amount)
	}

	id, err := s.store.Append(ctx, kind, amount, category)
	if err != nil {
		return 0, fmt.Errorf("record transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction recorded",
		"id", id,
		"kind", string(kind),
		"amount", amount)

	return id, nil
}

// Summarize derives the aggregate view of the ledger: total income,
// total expense, and their difference. It issues exactly two aggregate
// queries and holds no cached totals, so the stored records stay the
// sole source of truth. An empty ledger summarizes to all zeros.
func (s *Service) Summarize(ctx context.Context) (core.Summary, error) {
	income, err := s.store.SumByKind(ctx, core.Income)
	if err != nil {
		return core.Summary{}, fmt.Errorf("sum income: %w", err)
	}

	expense, err := s.store.SumByKind(ctx, core.Expense)
	if err != nil {
		return core.Summary{}, fmt.Errorf("sum expense: %w", err)
	}

	return core.Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income - expense,
	}, nil
}

// Recent returns up to limit transactions, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]core.Transaction, error) {
	txs, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}
