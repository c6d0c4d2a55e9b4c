package grpc

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-point-ledger/internal/app/point/domain"
	"github.com/JoeShih716/go-point-ledger/internal/app/point/usecase"
	pb "github.com/JoeShih716/go-point-ledger/proto"
)

type GrpcServer struct {
	pb.UnimplementedPointServiceServer
	point  *usecase.PointUseCase
	logger *zap.Logger
}

func NewGrpcServer(point *usecase.PointUseCase, logger *zap.Logger) *GrpcServer {
	return &GrpcServer{
		point:  point,
		logger: logger,
	}
}

func (s *GrpcServer) GetBalance(ctx context.Context, req *pb.GetBalanceRequest) (*pb.BalanceResponse, error) {
	balance, err := s.point.GetBalance(ctx, req.AccountId)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return toBalanceResponse(balance), nil
}

func (s *GrpcServer) Charge(ctx context.Context, req *pb.ChargeRequest) (*pb.BalanceResponse, error) {
	balance, err := s.point.Charge(ctx, req.AccountId, req.Amount)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return toBalanceResponse(balance), nil
}

func (s *GrpcServer) Debit(ctx context.Context, req *pb.DebitRequest) (*pb.BalanceResponse, error) {
	balance, err := s.point.Debit(ctx, req.AccountId, req.Amount)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return toBalanceResponse(balance), nil
}

func (s *GrpcServer) GetHistory(ctx context.Context, req *pb.GetHistoryRequest) (*pb.GetHistoryResponse, error) {
	records, err := s.point.GetHistory(ctx, req.AccountId)
	if err != nil {
		return nil, s.toStatus(err)
	}

	out := make([]*pb.TransactionRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, &pb.TransactionRecord{
			RecordId:  rec.RecordID.String(),
			AccountId: rec.AccountID,
			Kind:      toPbKind(rec.Kind),
			Amount:    rec.Amount,
			CreatedAt: rec.CreatedAt,
		})
	}
	return &pb.GetHistoryResponse{Records: out}, nil
}

// toStatus 把 Engine 的錯誤類別轉成 gRPC status code
// 讓呼叫端用 code 分流，不必比對錯誤訊息字串
func (s *GrpcServer) toStatus(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrBalanceCapExceeded),
		errors.Is(err, domain.ErrInsufficientBalance):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		// 儲存層故障等非業務錯誤，記 log 後以 Internal 回應
		s.logger.Error("point operation failed", zap.Error(err))
		return status.Error(codes.Internal, err.Error())
	}
}

func toBalanceResponse(b domain.Balance) *pb.BalanceResponse {
	return &pb.BalanceResponse{
		AccountId: b.AccountID,
		Amount:    b.Amount,
		UpdatedAt: b.UpdatedAt,
	}
}

func toPbKind(kind domain.TransactionKind) pb.TransactionKind {
	switch kind {
	case domain.TransactionKindCharge:
		return pb.TransactionKind_TRANSACTION_KIND_CHARGE
	case domain.TransactionKindDebit:
		return pb.TransactionKind_TRANSACTION_KIND_DEBIT
	default:
		return pb.TransactionKind_TRANSACTION_KIND_UNSPECIFIED
	}
}
