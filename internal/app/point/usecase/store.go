package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-point-ledger/internal/app/point/domain"
)

// Store 是 Ledger 儲存層的介面
// 四個操作各自保證原子性；餘額更新與紀錄 append 的「整體」原子性
// 由 PointUseCase 的 per-account lock 負責
type Store interface {
	// ReadBalance 讀取帳戶餘額，帳戶不存在時回傳 (0, now) 的邏輯預設值
	// 不可因讀取而建立任何資料列
	ReadBalance(ctx context.Context, accountID int64) (domain.Balance, error)
	// WriteBalance 寫入帳戶餘額 (atomic upsert)
	WriteBalance(ctx context.Context, accountID int64, amount int64, updatedAt int64) error
	// AppendTransaction 追加一筆交易紀錄並回傳紀錄 ID
	// 回傳後該紀錄必須立即對 ReadHistory 可見
	AppendTransaction(ctx context.Context, accountID int64, kind domain.TransactionKind, amount int64, createdAt int64) (uuid.UUID, error)
	// ReadHistory 依 append 順序回傳帳戶所有交易紀錄快照
	ReadHistory(ctx context.Context, accountID int64) ([]domain.TransactionRecord, error)
}
