package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

var (
	ErrLockHeld = errors.New("lock is already held by this instance")
)

type lockOptions struct {
	logger        *slog.Logger
	expiry        time.Duration
	renewInterval time.Duration
	retryDelay    time.Duration
}

type LockOption func(*lockOptions)

// WithLockLogger 設置日誌記錄器
func WithLockLogger(logger *slog.Logger) LockOption {
	return func(o *lockOptions) {
		o.logger = logger
	}
}

// WithLockExpiry 設置鎖在沒有續期時的存活時間
func WithLockExpiry(d time.Duration) LockOption {
	return func(o *lockOptions) {
		o.expiry = d
	}
}

// WithLockRenewInterval 設置續期間隔，未設置時使用 expiry 的 1/3
func WithLockRenewInterval(d time.Duration) LockOption {
	return func(o *lockOptions) {
		o.renewInterval = d
	}
}

// WithLockRetryDelay 設置鎖被占用時的重試間隔
func WithLockRetryDelay(d time.Duration) LockOption {
	return func(o *lockOptions) {
		o.retryDelay = d
	}
}

// Lock 以 redsync 實作、持有期間自動續期的分散式鎖
// 同一個 Lock 可以重複 Lock/Unlock，但同一時間只能持有一次
type Lock struct {
	mutex   *redsync.Mutex
	mu      sync.Mutex
	held    bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	logger  *slog.Logger
	options lockOptions
}

func NewLock(client redis.UniversalClient, key string, opts ...LockOption) (*Lock, error) {
	if client == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if key == "" {
		return nil, errors.New("lock key cannot be empty")
	}

	// 默認選項
	options := lockOptions{
		logger:     slog.Default(),
		expiry:     8 * time.Second,
		retryDelay: 500 * time.Millisecond,
	}

	// 應用自定義選項
	for _, opt := range opts {
		opt(&options)
	}

	if options.expiry <= 0 {
		return nil, errors.New("lock expiry must be positive")
	}
	if options.renewInterval <= 0 {
		options.renewInterval = options.expiry / 3
	}
	if options.renewInterval >= options.expiry {
		return nil, errors.New("renew interval must be shorter than expiry")
	}

	mutex := redsync.New(goredis.NewPool(client)).NewMutex(
		key,
		redsync.WithExpiry(options.expiry),
		redsync.WithTries(1),
	)

	return &Lock{
		mutex:   mutex,
		logger:  options.logger.With(slog.String("caller", "Lock"), slog.String("key", key)),
		options: options,
	}, nil
}

// Lock 取得鎖並開始自動續期，鎖被其他實例占用時每隔 retryDelay 重試直到 ctx 結束
// 回傳的 context 會在 Unlock 或續期失敗(鎖已遺失)時取消
func (l *Lock) Lock(ctx context.Context) (context.Context, error) {
	l.mu.Lock()
	held := l.held
	l.mu.Unlock()
	if held {
		return nil, ErrLockHeld
	}

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}

		err := l.mutex.LockContext(ctx)
		if err == nil {
			break
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		// 只有被占用才重試，連線錯誤直接回傳
		var redisErr *redsync.RedisError
		if errors.As(err, &redisErr) {
			return nil, fmt.Errorf("failed to acquire lock: %w", err)
		}
		timer.Reset(l.options.retryDelay)
	}

	lockCtx, cancel := context.WithCancel(ctx)
	l.mu.Lock()
	l.held = true
	l.cancel = cancel
	l.mu.Unlock()

	l.wg.Add(1)
	go l.renew(lockCtx, cancel)
	l.logger.Debug("lock acquired")
	return lockCtx, nil
}

func (l *Lock) renew(ctx context.Context, cancel context.CancelFunc) {
	defer l.wg.Done()

	ticker := time.NewTicker(l.options.renewInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ok, err := l.mutex.ExtendContext(ctx)
			if err == nil && ok {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			l.logger.Warn("lock lost, fail to extend", slog.Any("error", err))
			l.mu.Lock()
			l.held = false
			l.mu.Unlock()
			cancel()
			return
		}
	}
}

// Unlock 停止續期並釋放鎖
func (l *Lock) Unlock() (bool, error) {
	l.mu.Lock()
	cancel := l.cancel
	l.cancel = nil
	l.held = false
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	l.wg.Wait()
	return l.mutex.Unlock()
}

// Valid 鎖仍由本實例持有且尚未過期
func (l *Lock) Valid() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.held && time.Now().Before(l.mutex.Until())
}

var _ ILock = (*Lock)(nil)
