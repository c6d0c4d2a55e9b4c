package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/JoeShih716/go-point-ledger/internal/app/point/domain"
)

// PointUseCase 是點數帳務的核心業務邏輯層 (Balance Engine)
//
// 結構:
//
//	store: Ledger 儲存層
//	locks: per-account 讀寫鎖，序列化同帳戶的 read-check-write-append 流程
//
// 鎖的粒度是帳戶，不同帳戶的操作互不阻塞
type PointUseCase struct {
	store Store
	locks sync.Map // map[int64]*sync.RWMutex
}

func NewPointUseCase(store Store) *PointUseCase {
	return &PointUseCase{
		store: store,
	}
}

// lockFor 取得指定帳戶的鎖，第一次存取時建立
// Fast path 先 Load，失敗才走 LoadOrStore，避免每次呼叫都分配
func (u *PointUseCase) lockFor(accountID int64) *sync.RWMutex {
	if v, ok := u.locks.Load(accountID); ok {
		return v.(*sync.RWMutex)
	}
	v, _ := u.locks.LoadOrStore(accountID, &sync.RWMutex{})
	return v.(*sync.RWMutex)
}

// GetBalance 取得帳戶餘額
// 帳戶從未被異動過時回傳 Amount=0 的邏輯預設值，不會產生任何資料列或交易紀錄
//
// 以讀鎖進入，確保不會讀到「餘額已更新但紀錄還沒 append」的中間狀態
func (u *PointUseCase) GetBalance(ctx context.Context, accountID int64) (domain.Balance, error) {
	mu := u.lockFor(accountID)
	mu.RLock()
	defer mu.RUnlock()
	return u.store.ReadBalance(ctx, accountID)
}

// Charge 充值點數
//
// 參數:
//
//	ctx: 上下文
//	accountID: 帳戶 ID
//	amount: 充值金額，必須 > 0
//
// 回傳:
//
//	domain.Balance: 更新後的餘額
//	error: domain.ErrInvalidAmount / domain.ErrBalanceCapExceeded，或儲存層錯誤原樣傳回
//
// 驗證失敗發生在任何儲存層互動之前，保證完全無副作用
func (u *PointUseCase) Charge(ctx context.Context, accountID int64, amount int64) (domain.Balance, error) {
	if amount <= 0 {
		return domain.Balance{}, domain.ErrInvalidAmount
	}

	mu := u.lockFor(accountID)
	mu.Lock()
	defer mu.Unlock()

	cur, err := u.store.ReadBalance(ctx, accountID)
	if err != nil {
		return domain.Balance{}, err
	}

	// 上限檢查必須在鎖內使用當前餘額，且充到剛好 MaxBalance 合法
	// 寫成減法避免 cur.Amount + amount 溢位
	if amount > domain.MaxBalance-cur.Amount {
		return domain.Balance{}, domain.ErrBalanceCapExceeded
	}

	return u.commit(ctx, accountID, cur.Amount+amount, domain.TransactionKindCharge, amount)
}

// Debit 使用點數，邏輯與 Charge 對稱
//
// 參數:
//
//	ctx: 上下文
//	accountID: 帳戶 ID
//	amount: 使用金額，必須 > 0 且 <= 當前餘額
//
// 回傳:
//
//	domain.Balance: 更新後的餘額
//	error: domain.ErrInvalidAmount / domain.ErrInsufficientBalance，或儲存層錯誤原樣傳回
func (u *PointUseCase) Debit(ctx context.Context, accountID int64, amount int64) (domain.Balance, error) {
	if amount <= 0 {
		return domain.Balance{}, domain.ErrInvalidAmount
	}

	mu := u.lockFor(accountID)
	mu.Lock()
	defer mu.Unlock()

	cur, err := u.store.ReadBalance(ctx, accountID)
	if err != nil {
		return domain.Balance{}, err
	}

	if cur.Amount-amount < 0 {
		return domain.Balance{}, domain.ErrInsufficientBalance
	}

	return u.commit(ctx, accountID, cur.Amount-amount, domain.TransactionKindDebit, amount)
}

// GetHistory 依 append 順序取得帳戶所有交易紀錄
// 從未被異動過的帳戶回傳空序列
func (u *PointUseCase) GetHistory(ctx context.Context, accountID int64) ([]domain.TransactionRecord, error) {
	mu := u.lockFor(accountID)
	mu.RLock()
	defer mu.RUnlock()
	return u.store.ReadHistory(ctx, accountID)
}

// commit 在呼叫端已持有帳戶寫鎖的前提下，寫入新餘額並 append 對應紀錄
// 兩者共用同一時間戳，讓餘額更新與 Ledger 紀錄可以互相對應
func (u *PointUseCase) commit(ctx context.Context, accountID int64, newAmount int64, kind domain.TransactionKind, amount int64) (domain.Balance, error) {
	now := nowMillis()

	if err := u.store.WriteBalance(ctx, accountID, newAmount, now); err != nil {
		return domain.Balance{}, err
	}
	if _, err := u.store.AppendTransaction(ctx, accountID, kind, amount, now); err != nil {
		return domain.Balance{}, err
	}

	return domain.Balance{
		AccountID: accountID,
		Amount:    newAmount,
		UpdatedAt: now,
	}, nil
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
