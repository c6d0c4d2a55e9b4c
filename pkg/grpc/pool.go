package grpc

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

// Pool 管理通往多個目標的 gRPC 客戶端連線
// 執行緒安全，每個目標地址只會維護一個連線實例
type Pool struct {
	conns       sync.Map // map[string]*grpc.ClientConn
	mu          sync.Mutex
	interceptor grpc.UnaryClientInterceptor // 全局的單一請求攔截器 (Optional)
}

// PoolOption 定義了 Pool 的配置選項函數
type PoolOption func(*Pool)

// WithInterceptor 設定 Pool 的全局 UnaryClientInterceptor
// 用於統一處理 Logging, Metrics, 或 Auth Token 注入
func WithInterceptor(interceptor grpc.UnaryClientInterceptor) PoolOption {
	return func(p *Pool) {
		p.interceptor = interceptor
	}
}

// NewPool 建立並回傳一個新的 gRPC 連線池
func NewPool(opts ...PoolOption) *Pool {
	p := &Pool{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetConnection 獲取現有的連線，或為指定目標建立新連線
//
// 參數:
//
//	target: 目標伺服器地址 (e.g., "localhost:50051" 或 K8s DNS)
//	opts: 可選的額外 gRPC 連線選項
//
// 回傳值:
//
//	*grpc.ClientConn: gRPC 客戶端連線物件
//	error: 若建立連線失敗則回傳錯誤
func (p *Pool) GetConnection(target string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	// 1. 嘗試讀取現有連線 (Fast path)
	if conn, ok := p.healthy(target); ok {
		return conn, nil
	}

	// 2. 加鎖以防止並發時的重複建立 (Double-check locking)
	p.mu.Lock()
	defer p.mu.Unlock()

	if conn, ok := p.healthy(target); ok {
		return conn, nil
	}

	// 3. 建立新連線
	// 內部服務通訊走私有網路，預設不加密；keepalive 維持長連線
	defaultOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                10 * time.Second,
			Timeout:             time.Second,
			PermitWithoutStream: true,
		}),
	}
	if p.interceptor != nil {
		defaultOpts = append(defaultOpts, grpc.WithUnaryInterceptor(p.interceptor))
	}
	finalOpts := append(defaultOpts, opts...)

	// grpc.NewClient 建立的是「虛擬連線」，真正的網路連線在第一次呼叫時才建立 (Lazy)
	conn, err := grpc.NewClient(target, finalOpts...)
	if err != nil {
		return nil, errors.Wrapf(err, "create grpc client for target %s", target)
	}

	p.conns.Store(target, conn)
	return conn, nil
}

// healthy 回傳目標的現有連線；連線已 Shutdown 時從 map 移除
func (p *Pool) healthy(target string) (*grpc.ClientConn, bool) {
	v, ok := p.conns.Load(target)
	if !ok {
		return nil, false
	}
	conn := v.(*grpc.ClientConn)
	if conn.GetState() != connectivity.Shutdown {
		return conn, true
	}
	p.conns.Delete(target)
	return nil, false
}

// Close 關閉連線池中的所有連線，應用程式關閉時呼叫
func (p *Pool) Close() error {
	var firstErr error
	p.conns.Range(func(key, value any) bool {
		conn := value.(*grpc.ClientConn)
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		p.conns.Delete(key)
		return true
	})
	return firstErr
}
