package domain

import "github.com/google/uuid"

// MaxBalance 餘額上限 (含)
// 充值後餘額等於 MaxBalance 視為合法，超過才拒絕
const MaxBalance int64 = 1_000_000_000

// TransactionKind 交易類型
// 為了極致節省記憶體，使用 uint8
type TransactionKind uint8

const (
	// 充值
	TransactionKindCharge TransactionKind = 1
	// 使用
	TransactionKindDebit TransactionKind = 2
)

// String 回傳交易類型名稱，供 log 與測試輸出使用
func (k TransactionKind) String() string {
	switch k {
	case TransactionKindCharge:
		return "CHARGE"
	case TransactionKindDebit:
		return "DEBIT"
	default:
		return "UNKNOWN"
	}
}

// Signed 回傳帶正負號的金額：CHARGE 為 +amount，DEBIT 為 -amount
// Ledger 一致性檢查 (餘額 == 所有紀錄的 Signed 總和) 依賴這個定義
func (k TransactionKind) Signed(amount int64) int64 {
	if k == TransactionKindDebit {
		return -amount
	}
	return amount
}

// Balance 帳戶當前餘額快照
// 帳戶不存在時以 Amount=0 的邏輯預設值呈現，不會落地成資料列
type Balance struct {
	AccountID int64
	// Amount: 點數餘額，恆滿足 0 <= Amount <= MaxBalance
	Amount int64
	// UpdatedAt: 最後異動時間 (Unix milliseconds)
	UpdatedAt int64
}

// TransactionRecord 交易紀錄 一旦建立不可變更
// 注意欄位排序以避免 Padding
type TransactionRecord struct {
	// AccountID: 帳戶 ID
	AccountID int64
	// Amount: 金額，一律為正數，方向由 Kind 決定
	Amount int64
	// CreatedAt: 交易時間 (Unix milliseconds)，與對應的餘額更新共用同一時間戳
	CreatedAt int64
	// RecordID: 紀錄唯一識別碼 (UUID)，由 Store 於 append 時產生
	RecordID uuid.UUID
	// Kind: 放到最後面，利用 Padding 空間
	Kind TransactionKind
}
