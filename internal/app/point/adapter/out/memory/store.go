package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/JoeShih716/go-point-ledger/internal/app/point/domain"
	"github.com/JoeShih716/go-point-ledger/internal/app/point/usecase"
	"github.com/JoeShih716/go-point-ledger/pkg/wal"
)

// accountState 單一帳戶在記憶體中的狀態
// 餘額與 history 放在同一個結構，由 Store 的鎖一起保護
type accountState struct {
	amount    int64
	updatedAt int64
	history   []domain.TransactionRecord
}

// Store 是使用 RWMutex 保護的 in-memory Ledger Store
//
// 結構:
//
//	accounts: 帳戶 ID 對應的狀態 Map
//	mu: 保護 accounts 的讀寫鎖
//	wal: Write-Ahead Log，可為 nil (純記憶體模式，測試用)
//
// 有 WAL 時每筆交易紀錄先落地再進記憶體，重啟時以 recoverFromWAL 重建狀態
type Store struct {
	accounts map[int64]*accountState
	mu       sync.RWMutex
	// Write-Ahead Logging
	wal *wal.WAL
}

// NewStore 建立一個新的 Store 實例
//
// 參數:
//
//	w: Write-Ahead Log 實例，可為 nil
//
// 回傳:
//
//	*Store: Store 實例
//	error: 初始化錯誤 (如 WAL 恢復失敗)
func NewStore(w *wal.WAL) (*Store, error) {
	s := &Store{
		accounts: make(map[int64]*accountState),
		wal:      w,
	}
	if w != nil {
		if err := s.recoverFromWAL(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// recoverFromWAL 從 WAL 重建帳本狀態
// 餘額完全由交易紀錄的正負總和重建，所以即使程序在
// 「餘額已寫入、紀錄還沒 append」之間掛掉，重啟後仍會收斂回
// 餘額 == Ledger 總和 的一致狀態
//
// 只有 NewStore 呼叫，無需 Lock (單執行緒)
func (s *Store) recoverFromWAL() error {
	return s.wal.ReadAll(func(jsonRaw []byte) error {
		var rec domain.TransactionRecord
		if err := json.Unmarshal(jsonRaw, &rec); err != nil {
			return errors.Wrap(err, "unmarshal wal record")
		}
		state := s.stateFor(rec.AccountID)
		state.history = append(state.history, rec)
		state.amount += rec.Kind.Signed(rec.Amount)
		state.updatedAt = rec.CreatedAt
		return nil
	})
}

// stateFor 取得帳戶狀態，不存在時建立
// 呼叫端必須已持有寫鎖 (或在單執行緒的恢復流程中)
func (s *Store) stateFor(accountID int64) *accountState {
	state, ok := s.accounts[accountID]
	if !ok {
		state = &accountState{}
		s.accounts[accountID] = state
	}
	return state
}

// ReadBalance 讀取帳戶餘額
// 帳戶不存在時回傳 (0, now) 的邏輯預設值，不建立任何資料
func (s *Store) ReadBalance(ctx context.Context, accountID int64) (domain.Balance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.accounts[accountID]
	if !ok {
		return domain.Balance{
			AccountID: accountID,
			UpdatedAt: time.Now().UnixMilli(),
		}, nil
	}
	return domain.Balance{
		AccountID: accountID,
		Amount:    state.amount,
		UpdatedAt: state.updatedAt,
	}, nil
}

// WriteBalance 寫入帳戶餘額 (upsert)
func (s *Store) WriteBalance(ctx context.Context, accountID int64, amount int64, updatedAt int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.stateFor(accountID)
	state.amount = amount
	state.updatedAt = updatedAt
	return nil
}

// AppendTransaction 追加一筆交易紀錄
// 有 WAL 時先落地 (Critical Path)，成功才進記憶體；
// WAL 寫入失敗則記憶體不變，錯誤原樣往上傳
func (s *Store) AppendTransaction(ctx context.Context, accountID int64, kind domain.TransactionKind, amount int64, createdAt int64) (uuid.UUID, error) {
	rec := domain.TransactionRecord{
		RecordID:  uuid.New(),
		AccountID: accountID,
		Kind:      kind,
		Amount:    amount,
		CreatedAt: createdAt,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.wal != nil {
		if err := s.wal.Append(&rec); err != nil {
			return uuid.Nil, err
		}
	}

	state := s.stateFor(accountID)
	state.history = append(state.history, rec)
	return rec.RecordID, nil
}

// ReadHistory 依 append 順序回傳帳戶所有交易紀錄
// 回傳值拷貝，避免外部修改內部切片
func (s *Store) ReadHistory(ctx context.Context, accountID int64) ([]domain.TransactionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.accounts[accountID]
	if !ok {
		return []domain.TransactionRecord{}, nil
	}
	out := make([]domain.TransactionRecord, len(state.history))
	copy(out, state.history)
	return out, nil
}

var _ usecase.Store = (*Store)(nil)
