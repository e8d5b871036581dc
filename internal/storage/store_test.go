package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "fintrack.db"))
	require.NoError(t, err)
	require.NoError(t, store.EnsureSchema(context.Background()))
	return store
}

func TestNewStore_EmptyPath(t *testing.T) {
	_, err := NewStore("")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	// A record appended between two EnsureSchema calls must survive.
	_, err := store.Append(ctx, core.Income, 100, "salary")
	require.NoError(t, err)

	require.NoError(t, store.EnsureSchema(ctx))

	total, err := store.SumByKind(ctx, core.Income)
	require.NoError(t, err)
	assert.Equal(t, 100.0, total)
}

func TestAppend_AssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first, err := store.Append(ctx, core.Income, 10, "")
	require.NoError(t, err)
	second, err := store.Append(ctx, core.Expense, 20, "rent")
	require.NoError(t, err)

	assert.Greater(t, second, first)
}

func TestAppend_InvalidKind(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Append(ctx, core.Kind("unknown"), 10, "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidKind)

	// Nothing was written.
	income, err := store.SumByKind(ctx, core.Income)
	require.NoError(t, err)
	expense, err := store.SumByKind(ctx, core.Expense)
	require.NoError(t, err)
	assert.Zero(t, income)
	assert.Zero(t, expense)
}

func TestSumByKind(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	// Empty ledger sums to zero, not an error.
	total, err := store.SumByKind(ctx, core.Expense)
	require.NoError(t, err)
	assert.Zero(t, total)

	_, err = store.Append(ctx, core.Income, 1500.50, "salary")
	require.NoError(t, err)
	_, err = store.Append(ctx, core.Income, 200, "gift")
	require.NoError(t, err)
	_, err = store.Append(ctx, core.Expense, 300.25, "rent")
	require.NoError(t, err)

	income, err := store.SumByKind(ctx, core.Income)
	require.NoError(t, err)
	assert.InDelta(t, 1700.50, income, 1e-9)

	expense, err := store.SumByKind(ctx, core.Expense)
	require.NoError(t, err)
	assert.InDelta(t, 300.25, expense, 1e-9)
}

func TestSumByKind_InvalidKind(t *testing.T) {
	store := newTestStore(t)

	_, err := store.SumByKind(context.Background(), core.Kind(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidKind)
}

func TestList(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	before := time.Now().Add(-time.Second)

	id1, err := store.Append(ctx, core.Income, 100, "salary")
	require.NoError(t, err)
	id2, err := store.Append(ctx, core.Expense, 40, "")
	require.NoError(t, err)
	id3, err := store.Append(ctx, core.Expense, 60, "food")
	require.NoError(t, err)

	txs, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, txs, 3)

	// Newest first.
	assert.Equal(t, []int64{id3, id2, id1}, []int64{txs[0].ID, txs[1].ID, txs[2].ID})
	assert.Equal(t, core.Expense, txs[0].Kind)
	assert.Equal(t, "food", txs[0].Category)
	assert.Equal(t, "", txs[1].Category)

	// Timestamps are store-assigned, second resolution.
	for _, tx := range txs {
		assert.False(t, tx.Date.Before(before.Truncate(time.Second)))
		assert.Zero(t, tx.Date.Nanosecond())
	}

	// Limit is respected.
	txs, err = store.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, id3, txs[0].ID)
}

func TestList_Empty(t *testing.T) {
	store := newTestStore(t)

	txs, err := store.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, txs)
}
