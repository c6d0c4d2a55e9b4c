package memory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-point-ledger/internal/app/point/domain"
	"github.com/JoeShih716/go-point-ledger/pkg/wal"
)

func TestReadBalanceDefaultsToZero(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(nil)
	require.NoError(t, err)

	balance, err := store.ReadBalance(ctx, 99)
	require.NoError(t, err)
	assert.Equal(t, int64(99), balance.AccountID)
	assert.Equal(t, int64(0), balance.Amount)
	assert.NotZero(t, balance.UpdatedAt)

	// 邏輯預設值不可落地：讀過之後帳戶依然不存在
	history, err := store.ReadHistory(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestAppendVisibleImmediately(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(nil)
	require.NoError(t, err)

	recordID, err := store.AppendTransaction(ctx, 1, domain.TransactionKindCharge, 500, 12345)
	require.NoError(t, err)

	history, err := store.ReadHistory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, recordID, history[0].RecordID)
	assert.Equal(t, int64(500), history[0].Amount)
	assert.Equal(t, int64(12345), history[0].CreatedAt)
}

func TestHistorySnapshotIsCopy(t *testing.T) {
	ctx := context.Background()
	store, err := NewStore(nil)
	require.NoError(t, err)

	_, err = store.AppendTransaction(ctx, 1, domain.TransactionKindCharge, 100, 1)
	require.NoError(t, err)

	history, err := store.ReadHistory(ctx, 1)
	require.NoError(t, err)
	history[0].Amount = 999999

	again, err := store.ReadHistory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(100), again[0].Amount, "外部改動快照不得影響內部狀態")
}

// 重啟後從 WAL 完整重建餘額與 history
func TestRecoverFromWAL(t *testing.T) {
	ctx := context.Background()
	walPath := filepath.Join(t.TempDir(), "wal.log")

	w, err := wal.NewWAL(walPath)
	require.NoError(t, err)
	store, err := NewStore(w)
	require.NoError(t, err)

	require.NoError(t, store.WriteBalance(ctx, 1, 700, 100))
	_, err = store.AppendTransaction(ctx, 1, domain.TransactionKindCharge, 1000, 100)
	require.NoError(t, err)
	require.NoError(t, store.WriteBalance(ctx, 1, 700, 200))
	_, err = store.AppendTransaction(ctx, 1, domain.TransactionKindDebit, 300, 200)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	// 模擬重啟
	w2, err := wal.NewWAL(walPath)
	require.NoError(t, err)
	defer w2.Close()
	recovered, err := NewStore(w2)
	require.NoError(t, err)

	balance, err := recovered.ReadBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(700), balance.Amount)
	assert.Equal(t, int64(200), balance.UpdatedAt)

	history, err := recovered.ReadHistory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, domain.TransactionKindCharge, history[0].Kind)
	assert.Equal(t, domain.TransactionKindDebit, history[1].Kind)
}

// 程序在「餘額已寫、紀錄未 append」之間掛掉：
// 重建只看交易紀錄，所以會收斂回 餘額 == Ledger 總和
func TestRecoverHealsTornCommit(t *testing.T) {
	ctx := context.Background()
	walPath := filepath.Join(t.TempDir(), "wal.log")

	w, err := wal.NewWAL(walPath)
	require.NoError(t, err)
	store, err := NewStore(w)
	require.NoError(t, err)

	_, err = store.AppendTransaction(ctx, 1, domain.TransactionKindCharge, 1000, 100)
	require.NoError(t, err)
	// 第二筆只寫了餘額就掛掉，紀錄沒有落地
	require.NoError(t, store.WriteBalance(ctx, 1, 1500, 200))
	require.NoError(t, w.Close())

	w2, err := wal.NewWAL(walPath)
	require.NoError(t, err)
	defer w2.Close()
	recovered, err := NewStore(w2)
	require.NoError(t, err)

	balance, err := recovered.ReadBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance.Amount, "沒有紀錄佐證的餘額寫入在重建後消失")

	history, err := recovered.ReadHistory(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
