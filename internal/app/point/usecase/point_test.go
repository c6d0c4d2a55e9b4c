package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-point-ledger/internal/app/point/adapter/out/memory"
	"github.com/JoeShih716/go-point-ledger/internal/app/point/domain"
	"github.com/JoeShih716/go-point-ledger/internal/app/point/usecase"
)

// newEngine 建立掛在純記憶體 Store (無 WAL) 上的 Engine，測試用
func newEngine(t *testing.T) *usecase.PointUseCase {
	t.Helper()
	store, err := memory.NewStore(nil)
	require.NoError(t, err)
	return usecase.NewPointUseCase(store)
}

// 從未被異動過的帳戶：餘額 0、history 空，且讀取不會留下任何痕跡
func TestUntouchedAccountDefaults(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)

	balance, err := engine.GetBalance(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), balance.AccountID)
	assert.Equal(t, int64(0), balance.Amount)
	assert.NotZero(t, balance.UpdatedAt, "邏輯預設值也要有時間戳")

	history, err := engine.GetHistory(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, history)

	// 讀取不得建立 ledger entry
	history, err = engine.GetHistory(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, history)
}

// 具體情境 1: 新帳戶充值 10000 → 餘額 10000，history = [CHARGE 10000]
func TestChargeFreshAccount(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)

	balance, err := engine.Charge(ctx, 1, 10000)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), balance.Amount)

	got, err := engine.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, balance.Amount, got.Amount, "Charge 回傳值要等於之後讀到的餘額")

	history, err := engine.GetHistory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.TransactionKindCharge, history[0].Kind)
	assert.Equal(t, int64(10000), history[0].Amount)
	assert.Equal(t, int64(1), history[0].AccountID)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", history[0].RecordID.String())
	assert.Equal(t, balance.UpdatedAt, history[0].CreatedAt, "紀錄與餘額更新共用同一時間戳")
}

func TestDebit(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)

	_, err := engine.Charge(ctx, 1, 5000)
	require.NoError(t, err)

	balance, err := engine.Debit(ctx, 1, 3000)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), balance.Amount)

	history, err := engine.GetHistory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, domain.TransactionKindDebit, history[1].Kind)
	assert.Equal(t, int64(3000), history[1].Amount, "DEBIT 金額以正數存放，方向由 Kind 表示")
}

// 具體情境 3: 金額 <= 0 一律 ErrInvalidAmount，且不碰儲存層
func TestInvalidAmount(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)

	for _, amount := range []int64{0, -1, -10000} {
		_, err := engine.Charge(ctx, 1, amount)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, "Charge(%d)", amount)

		_, err = engine.Debit(ctx, 1, amount)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, "Debit(%d)", amount)
	}

	history, err := engine.GetHistory(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, history, "驗證失敗不得產生 ledger entry")
}

// 具體情境 2: 餘額 1000 使用 3000 → ErrInsufficientBalance，狀態完全不變
func TestDebitInsufficientBalance(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)

	_, err := engine.Charge(ctx, 1, 1000)
	require.NoError(t, err)

	_, err = engine.Debit(ctx, 1, 3000)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	balance, err := engine.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance.Amount)

	history, err := engine.GetHistory(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, history, 1, "失敗的 Debit 不得留下紀錄")
}

// 上限邊界：充到剛好 MaxBalance 成功，再多 1 失敗且餘額不變
func TestChargeCapBoundary(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)

	balance, err := engine.Charge(ctx, 1, domain.MaxBalance)
	require.NoError(t, err, "充到剛好 MaxBalance 是合法的")
	assert.Equal(t, domain.MaxBalance, balance.Amount)

	_, err = engine.Charge(ctx, 1, 1)
	assert.ErrorIs(t, err, domain.ErrBalanceCapExceeded)

	balance, err = engine.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxBalance, balance.Amount)

	// MaxBalance + 1 的單筆充值也要在不溢位的前提下被拒絕
	_, err = engine.Charge(ctx, 2, domain.MaxBalance)
	require.NoError(t, err)
	_, err = engine.Debit(ctx, 2, 1)
	require.NoError(t, err)
	_, err = engine.Charge(ctx, 2, 2)
	assert.ErrorIs(t, err, domain.ErrBalanceCapExceeded)
}

// 使用邊界：amount == 餘額成功歸零；amount == 餘額 + 1 失敗
func TestDebitBoundary(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)

	_, err := engine.Charge(ctx, 1, 777)
	require.NoError(t, err)

	_, err = engine.Debit(ctx, 1, 778)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	balance, err := engine.Debit(ctx, 1, 777)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance.Amount)
}

// 無異動時重複讀取結果必須完全相同
func TestIdempotentReads(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)

	_, err := engine.Charge(ctx, 1, 300)
	require.NoError(t, err)
	_, err = engine.Debit(ctx, 1, 100)
	require.NoError(t, err)

	b1, err := engine.GetBalance(ctx, 1)
	require.NoError(t, err)
	b2, err := engine.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, b1, b2)

	h1, err := engine.GetHistory(ctx, 1)
	require.NoError(t, err)
	h2, err := engine.GetHistory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}

// Ledger 一致性：任何觀察點上 餘額 == 所有紀錄的正負總和
func TestLedgerBalanceConsistency(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)

	ops := []struct {
		charge bool
		amount int64
	}{
		{true, 500}, {true, 1200}, {false, 300}, {true, 80}, {false, 1000}, {false, 480},
	}

	for _, op := range ops {
		var err error
		if op.charge {
			_, err = engine.Charge(ctx, 1, op.amount)
		} else {
			_, err = engine.Debit(ctx, 1, op.amount)
		}
		require.NoError(t, err)

		balance, err := engine.GetBalance(ctx, 1)
		require.NoError(t, err)
		history, err := engine.GetHistory(ctx, 1)
		require.NoError(t, err)

		var sum int64
		for _, rec := range history {
			sum += rec.Kind.Signed(rec.Amount)
		}
		assert.Equal(t, balance.Amount, sum)
	}

	history, err := engine.GetHistory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, len(ops))
	for i, op := range ops {
		wantKind := domain.TransactionKindDebit
		if op.charge {
			wantKind = domain.TransactionKindCharge
		}
		assert.Equal(t, wantKind, history[i].Kind, "history 必須維持 append 順序")
		assert.Equal(t, op.amount, history[i].Amount)
	}
}

// 並發情境：兩筆同時的 Charge(1, 100) 最終餘額必須是 200，不得發生 lost update
func TestConcurrentChargesNoLostUpdate(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)

	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func() {
			defer wg.Done()
			if _, err := engine.Charge(ctx, 1, 100); err != nil {
				t.Errorf("charge err: %v", err)
			}
		}()
	}
	wg.Wait()

	balance, err := engine.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(200), balance.Amount)

	history, err := engine.GetHistory(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

// 高併發混合 Charge/Debit：最終餘額與 Ledger 總和一致
func TestConcurrentMixedOperations(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)

	// 先墊高餘額避免 Debit 因順序問題失敗
	_, err := engine.Charge(ctx, 1, 100000)
	require.NoError(t, err)

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		charge := i%2 == 0
		go func(charge bool) {
			defer wg.Done()
			var err error
			if charge {
				_, err = engine.Charge(ctx, 1, 10)
			} else {
				_, err = engine.Debit(ctx, 1, 10)
			}
			if err != nil {
				t.Errorf("op err: %v", err)
			}
		}(charge)
	}
	wg.Wait()

	balance, err := engine.GetBalance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), balance.Amount, "等量的充值與使用相抵後餘額不變")

	history, err := engine.GetHistory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, history, workers+1)

	var sum int64
	for _, rec := range history {
		sum += rec.Kind.Signed(rec.Amount)
	}
	assert.Equal(t, balance.Amount, sum)
}

// 不同帳戶的操作互不干擾，各自收斂到正確餘額
func TestConcurrentAccountsIsolated(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)

	const accounts = 10
	const chargesPerAccount = 50

	var wg sync.WaitGroup
	wg.Add(accounts * chargesPerAccount)
	for id := int64(1); id <= accounts; id++ {
		for j := 0; j < chargesPerAccount; j++ {
			go func(id int64) {
				defer wg.Done()
				if _, err := engine.Charge(ctx, id, 1); err != nil {
					t.Errorf("charge account %d: %v", id, err)
				}
			}(id)
		}
	}
	wg.Wait()

	for id := int64(1); id <= accounts; id++ {
		balance, err := engine.GetBalance(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(chargesPerAccount), balance.Amount, "account %d", id)
	}
}
