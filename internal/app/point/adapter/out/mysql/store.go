package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JoeShih716/go-point-ledger/internal/app/point/domain"
	"github.com/JoeShih716/go-point-ledger/internal/app/point/usecase"
	"github.com/JoeShih716/go-point-ledger/pkg/mysql"
)

// sqlBalance 對應資料庫的 point_balances 表
type sqlBalance struct {
	AccountID int64 `gorm:"primaryKey;column:account_id"`
	Amount    int64
	UpdatedAt int64 // 由 Engine 指定，與交易紀錄共用時間戳，不用 autoUpdateTime
}

func (*sqlBalance) TableName() string {
	return "point_balances"
}

// sqlTransaction 對應資料庫的 point_transactions 表
// 自增主鍵同時是 append 順序，ReadHistory 依它排序
type sqlTransaction struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	RecordID  []byte `gorm:"column:record_id;type:binary(16);uniqueIndex"` // 對應 domain.TransactionRecord.RecordID
	AccountID int64  `gorm:"index"`
	Kind      uint8
	Amount    int64
	CreatedAt int64
}

func (*sqlTransaction) TableName() string {
	return "point_transactions"
}

// Store 是以 MySQL 持久化的 Ledger Store
// 並發控制在 Engine 的 per-account lock，這裡只負責單一操作的原子性
type Store struct {
	client *mysql.Client
}

func NewStore(client *mysql.Client) *Store {
	return &Store{
		client: client,
	}
}

// AutoMigrate 建立或更新資料表結構，啟動時呼叫一次
func (s *Store) AutoMigrate() error {
	return s.client.DB().AutoMigrate(&sqlBalance{}, &sqlTransaction{})
}

// ReadBalance 讀取帳戶餘額
// 查無資料列時回傳 (0, now) 的邏輯預設值，不寫入任何東西
func (s *Store) ReadBalance(ctx context.Context, accountID int64) (domain.Balance, error) {
	var row sqlBalance
	err := s.client.DB().WithContext(ctx).Where("account_id = ?", accountID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Balance{
			AccountID: accountID,
			UpdatedAt: time.Now().UnixMilli(),
		}, nil
	}
	if err != nil {
		return domain.Balance{}, err
	}
	return domain.Balance{
		AccountID: accountID,
		Amount:    row.Amount,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

// WriteBalance 寫入帳戶餘額，單列原子 upsert
func (s *Store) WriteBalance(ctx context.Context, accountID int64, amount int64, updatedAt int64) error {
	row := sqlBalance{
		AccountID: accountID,
		Amount:    amount,
		UpdatedAt: updatedAt,
	}
	return s.client.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
		}).
		Create(&row).Error
}

// AppendTransaction 追加一筆交易紀錄
func (s *Store) AppendTransaction(ctx context.Context, accountID int64, kind domain.TransactionKind, amount int64, createdAt int64) (uuid.UUID, error) {
	recordID := uuid.New()
	row := sqlTransaction{
		RecordID:  recordID[:],
		AccountID: accountID,
		Kind:      uint8(kind),
		Amount:    amount,
		CreatedAt: createdAt,
	}
	if err := s.client.DB().WithContext(ctx).Create(&row).Error; err != nil {
		return uuid.Nil, err
	}
	return recordID, nil
}

// ReadHistory 依 append 順序 (自增主鍵) 回傳帳戶所有交易紀錄
func (s *Store) ReadHistory(ctx context.Context, accountID int64) ([]domain.TransactionRecord, error) {
	var rows []sqlTransaction
	err := s.client.DB().WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.TransactionRecord, 0, len(rows))
	for _, row := range rows {
		recordID, err := uuid.FromBytes(row.RecordID)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.TransactionRecord{
			RecordID:  recordID,
			AccountID: row.AccountID,
			Kind:      domain.TransactionKind(row.Kind),
			Amount:    row.Amount,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

var _ usecase.Store = (*Store)(nil)
