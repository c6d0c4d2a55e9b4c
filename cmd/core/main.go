package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
	"gopkg.in/yaml.v3"

	grpc_adapter "github.com/JoeShih716/go-point-ledger/internal/app/point/adapter/in/grpc"
	memory_adapter "github.com/JoeShih716/go-point-ledger/internal/app/point/adapter/out/memory"
	mysql_adapter "github.com/JoeShih716/go-point-ledger/internal/app/point/adapter/out/mysql"
	"github.com/JoeShih716/go-point-ledger/internal/app/point/usecase"
	"github.com/JoeShih716/go-point-ledger/pkg/mysql"
	"github.com/JoeShih716/go-point-ledger/pkg/wal"
	pb "github.com/JoeShih716/go-point-ledger/proto"
)

// Config 服務配置
type Config struct {
	// Listen gRPC 監聽位址
	Listen string `yaml:"listen"`
	// Store 儲存層實作: "memory" (記憶體+WAL) 或 "mysql"
	Store string `yaml:"store"`
	// WALPath memory 模式的 WAL 檔案路徑，留空代表不落地 (僅限測試)
	WALPath string `yaml:"wal_path"`
	// MySQL mysql 模式的連線配置
	MySQL mysql.Config `yaml:"mysql"`
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// 1. 載入設定
	cfg := loadConfig(logger)

	// 2. 依設定初始化 Ledger Store
	var store usecase.Store
	switch cfg.Store {
	case "memory":
		var walFile *wal.WAL
		if cfg.WALPath != "" {
			walFile, err = wal.NewWAL(cfg.WALPath)
			if err != nil {
				logger.Fatal("failed to init WAL", zap.Error(err))
			}
			// 程式結束時關閉 WAL
			defer walFile.Close()
		}
		store, err = memory_adapter.NewStore(walFile)
		if err != nil {
			logger.Fatal("failed to init memory store", zap.Error(err))
		}
	case "mysql":
		dbClient, err := mysql.NewClient(cfg.MySQL)
		if err != nil {
			logger.Fatal("failed to connect to MySQL", zap.Error(err))
		}
		defer dbClient.Close()
		logger.Info("connected to MySQL")

		mysqlStore := mysql_adapter.NewStore(dbClient)
		if err := mysqlStore.AutoMigrate(); err != nil {
			logger.Fatal("failed to migrate schema", zap.Error(err))
		}
		store = mysqlStore
	default:
		logger.Fatal("invalid store type", zap.String("store", cfg.Store))
	}

	// 3. 初始化 UseCase (Balance Engine)
	pointUseCase := usecase.NewPointUseCase(store)

	// 4. 初始化 gRPC Adapter (Driving Adapter)
	grpcServer := grpc_adapter.NewGrpcServer(pointUseCase, logger)

	// 5. 啟動 gRPC Server
	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		logger.Fatal("failed to listen", zap.String("addr", cfg.Listen), zap.Error(err))
	}

	s := grpc.NewServer()
	pb.RegisterPointServiceServer(s, grpcServer)
	reflection.Register(s) // 方便 gRPC Client 測試 (如 Postman/BloomRPC)

	// Graceful Shutdown
	go func() {
		logger.Info("starting gRPC server", zap.String("addr", cfg.Listen))
		if err := s.Serve(lis); err != nil {
			logger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	s.GracefulStop()
	logger.Info("server exited")
}

func loadConfig(logger *zap.Logger) Config {
	cfgData, err := os.ReadFile("config/config.yaml")
	if err != nil {
		logger.Fatal("failed to read config file", zap.Error(err))
	}
	var cfg Config
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		logger.Fatal("failed to parse config", zap.Error(err))
	}

	// 補全預設配置 (如果 yaml 沒寫)
	if cfg.Listen == "" {
		cfg.Listen = ":50051"
	}
	if cfg.Store == "" {
		cfg.Store = "memory"
	}
	if cfg.MySQL.MaxOpenConns == 0 {
		cfg.MySQL.MaxOpenConns = 100
	}
	if cfg.MySQL.MaxIdleConns == 0 {
		cfg.MySQL.MaxIdleConns = 10
	}
	if cfg.MySQL.ConnMaxLifetime == 0 {
		cfg.MySQL.ConnMaxLifetime = 30 * time.Minute
	}
	return cfg
}
