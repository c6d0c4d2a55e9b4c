package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	grpcpool "github.com/JoeShih716/go-point-ledger/pkg/grpc"
	pb "github.com/JoeShih716/go-point-ledger/proto"
)

const (
	Target       = "localhost:50051"
	AccountID    = 1
	ChargeAmount = 100
	TotalCount   = 100000
	Concurrency  = 500
)

// 對單一帳戶灌入大量並發充值，結束後驗證
// 最終餘額 == 成功筆數 * 單筆金額，且 history 筆數一致
func main() {
	pool := grpcpool.NewPool()
	defer pool.Close()

	conn, err := pool.GetConnection(Target)
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	c := pb.NewPointServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(TotalCount)

	sem := make(chan struct{}, Concurrency)
	var succeeded int64

	startTime := time.Now()

	for i := 0; i < TotalCount; i++ {
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			_, err := c.Charge(ctx, &pb.ChargeRequest{
				AccountId: AccountID,
				Amount:    ChargeAmount,
			})
			if err != nil {
				// 到達餘額上限後剩下的請求會收到 FailedPrecondition，屬預期行為
				if idx%10000 == 0 {
					log.Printf("Charge %d failed: %v", idx, err)
				}
				return
			}
			atomic.AddInt64(&succeeded, 1)
		}(i)
	}

	wg.Wait()

	elapsed := time.Since(startTime)
	fmt.Printf("Completed %d requests in %v\n", TotalCount, elapsed)
	fmt.Printf("TPS: %.2f\n", float64(TotalCount)/elapsed.Seconds())

	// 驗證最終狀態
	balance, err := c.GetBalance(ctx, &pb.GetBalanceRequest{AccountId: AccountID})
	if err != nil {
		log.Fatalf("GetBalance failed: %v", err)
	}
	history, err := c.GetHistory(ctx, &pb.GetHistoryRequest{AccountId: AccountID})
	if err != nil {
		log.Fatalf("GetHistory failed: %v", err)
	}

	expected := succeeded * ChargeAmount
	fmt.Printf("Succeeded: %d, Balance: %d (expected >= %d), Records: %d\n",
		succeeded, balance.Amount, expected, len(history.Records))
	if balance.Amount < expected {
		log.Fatalf("balance mismatch: got %d, want at least %d", balance.Amount, expected)
	}
}
