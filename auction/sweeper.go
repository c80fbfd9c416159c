package auction

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type sweeperOptions struct {
	logger   *slog.Logger
	interval time.Duration
	locker   Locker
}

type SweeperOption func(*sweeperOptions)

// WithSweeperLogger 設置日誌記錄器
func WithSweeperLogger(logger *slog.Logger) SweeperOption {
	return func(o *sweeperOptions) {
		o.logger = logger
	}
}

// WithSweeperInterval 設置掃描間隔
func WithSweeperInterval(d time.Duration) SweeperOption {
	return func(o *sweeperOptions) {
		o.interval = d
	}
}

// WithSweeperLocker 設置跨實例的鎖，同一時間只有拿到鎖的實例會執行掃描
// 鎖只用來減少重複的工作，關閉拍賣的正確性不依賴它
func WithSweeperLocker(locker Locker) SweeperOption {
	return func(o *sweeperOptions) {
		o.locker = locker
	}
}

// Sweeper 定期關閉已過期的拍賣
type Sweeper struct {
	service    *Service
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
	logger     *slog.Logger
	options    sweeperOptions
}

func NewSweeper(service *Service, opts ...SweeperOption) (*Sweeper, error) {
	if service == nil {
		return nil, errors.New("service cannot be nil")
	}

	// 默認選項
	options := sweeperOptions{
		logger:   slog.Default(),
		interval: 30 * time.Second,
	}

	// 應用自定義選項
	for _, opt := range opts {
		opt(&options)
	}

	if options.interval <= 0 {
		return nil, errors.New("sweep interval must be positive")
	}

	return &Sweeper{
		service: service,
		closed:  true,
		logger:  options.logger.With(slog.String("caller", "Sweeper")),
		options: options,
	}, nil
}

func (s *Sweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancelFunc = cancel
	s.closed = false
	s.logger.Info("starting auction sweeper", slog.Duration("interval", s.options.interval))

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.logger.Info("sweeper goroutine stopped")

		ticker := time.NewTicker(s.options.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.RunOnce(ctx); err != nil {
					if errors.Is(err, context.Canceled) {
						return
					}
					s.logger.Error("sweep error", slog.Any("error", err))
				}
			}
		}
	}()
}

// RunOnce 執行一次掃描
// 有設置鎖但在一個掃描間隔內拿不到時略過這次掃描，回傳 nil
func (s *Sweeper) RunOnce(ctx context.Context) ([]uuid.UUID, error) {
	if s.options.locker == nil {
		return s.service.CloseExpiredAuctions(ctx)
	}

	// 等鎖加上掃描本身都不應超過一個間隔
	ctx, cancel := context.WithTimeout(ctx, s.options.interval)
	defer cancel()

	lockCtx, err := s.options.locker.Lock(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			s.logger.Debug("sweep skipped, lock held by another instance")
			return nil, nil
		}
		return nil, err
	}
	defer func() {
		if _, err := s.options.locker.Unlock(); err != nil {
			s.logger.Warn("Fail to release sweep lock", slog.Any("error", err))
		}
	}()

	return s.service.CloseExpiredAuctions(lockCtx)
}

func (s *Sweeper) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.logger.Info("closing auction sweeper")
	s.closed = true
	s.cancelFunc()
	s.wg.Wait()
	s.logger.Info("auction sweeper closed")
}
