package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-point-ledger/internal/app/point/adapter/out/memory"
	"github.com/JoeShih716/go-point-ledger/internal/app/point/domain"
	"github.com/JoeShih716/go-point-ledger/internal/app/point/usecase"
	pb "github.com/JoeShih716/go-point-ledger/proto"
)

func newTestServer(t *testing.T) *GrpcServer {
	t.Helper()
	store, err := memory.NewStore(nil)
	require.NoError(t, err)
	return NewGrpcServer(usecase.NewPointUseCase(store), zap.NewNop())
}

func TestChargeAndGetBalance(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	resp, err := server.Charge(ctx, &pb.ChargeRequest{AccountId: 1, Amount: 10000})
	require.NoError(t, err)
	assert.Equal(t, int64(10000), resp.Amount)
	assert.NotZero(t, resp.UpdatedAt)

	got, err := server.GetBalance(ctx, &pb.GetBalanceRequest{AccountId: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(10000), got.Amount)
}

func TestDebitFlow(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	_, err := server.Charge(ctx, &pb.ChargeRequest{AccountId: 1, Amount: 500})
	require.NoError(t, err)

	resp, err := server.Debit(ctx, &pb.DebitRequest{AccountId: 1, Amount: 200})
	require.NoError(t, err)
	assert.Equal(t, int64(300), resp.Amount)

	history, err := server.GetHistory(ctx, &pb.GetHistoryRequest{AccountId: 1})
	require.NoError(t, err)
	require.Len(t, history.Records, 2)
	assert.Equal(t, pb.TransactionKind_TRANSACTION_KIND_CHARGE, history.Records[0].Kind)
	assert.Equal(t, pb.TransactionKind_TRANSACTION_KIND_DEBIT, history.Records[1].Kind)
	assert.NotEmpty(t, history.Records[0].RecordId)
}

// Engine 的錯誤類別必須映射成可供呼叫端分流的 status code
func TestErrorCodeMapping(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	_, err := server.Charge(ctx, &pb.ChargeRequest{AccountId: 1, Amount: 0})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = server.Debit(ctx, &pb.DebitRequest{AccountId: 1, Amount: -5})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = server.Debit(ctx, &pb.DebitRequest{AccountId: 1, Amount: 100})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err), "餘額不足")

	_, err = server.Charge(ctx, &pb.ChargeRequest{AccountId: 1, Amount: domain.MaxBalance})
	require.NoError(t, err)
	_, err = server.Charge(ctx, &pb.ChargeRequest{AccountId: 1, Amount: 1})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err), "超過餘額上限")
}

func TestGetHistoryEmpty(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)

	history, err := server.GetHistory(ctx, &pb.GetHistoryRequest{AccountId: 7})
	require.NoError(t, err)
	assert.Empty(t, history.Records)
}
