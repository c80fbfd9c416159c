package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/smallnest/chanx"
)

var (
	ErrProducerClosed = errors.New("producer is closed")
)

type producerOptions[T any] struct {
	logger       *slog.Logger
	bufferSize   int
	maxLen       int64
	approxTrim   bool
	drainTimeout time.Duration
	encodeFunc   func(T) (map[string]any, error)
}

type ProducerOption[T any] func(*producerOptions[T])

// WithProducerLogger 設置日誌記錄器
func WithProducerLogger[T any](logger *slog.Logger) ProducerOption[T] {
	return func(o *producerOptions[T]) {
		o.logger = logger
	}
}

// WithProducerBufferSize 設置緩衝的初始大小，緩衝本身沒有上限
func WithProducerBufferSize[T any](size int) ProducerOption[T] {
	return func(o *producerOptions[T]) {
		o.bufferSize = size
	}
}

// WithProducerMaxLen 設置串流保留的訊息數量上限，0 代表不修剪
// approx 為 true 時使用 MAXLEN ~，修剪較有效率但數量只是近似值
func WithProducerMaxLen[T any](maxLen int64, approx bool) ProducerOption[T] {
	return func(o *producerOptions[T]) {
		o.maxLen = maxLen
		o.approxTrim = approx
	}
}

// WithProducerDrainTimeout 設置關閉時等待緩衝內訊息送出的時間
func WithProducerDrainTimeout[T any](d time.Duration) ProducerOption[T] {
	return func(o *producerOptions[T]) {
		o.drainTimeout = d
	}
}

// WithProducerEncodeFunc 設置訊息編碼函數
func WithProducerEncodeFunc[T any](fn func(T) (map[string]any, error)) ProducerOption[T] {
	return func(o *producerOptions[T]) {
		o.encodeFunc = fn
	}
}

// Producer 把訊息非同步寫入 redis stream
// Publish 只會把訊息放進無上限的緩衝，呼叫端不會被 redis 的延遲或故障阻塞
type Producer[T any] struct {
	client     redis.UniversalClient
	stream     string
	upstream   *chanx.UnboundedChan[map[string]any]
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	mu         sync.RWMutex
	closed     bool
	logger     *slog.Logger
	options    producerOptions[T]
}

func NewProducer[T any](client redis.UniversalClient, stream string, opts ...ProducerOption[T]) (*Producer[T], error) {
	if client == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if stream == "" {
		return nil, errors.New("stream cannot be empty")
	}

	// 默認選項
	options := producerOptions[T]{
		logger:       slog.Default(),
		bufferSize:   100,
		drainTimeout: 5 * time.Second,
		encodeFunc:   EncodeMessage[T],
	}

	// 應用自定義選項
	for _, opt := range opts {
		opt(&options)
	}

	if options.maxLen < 0 {
		return nil, errors.New("max length cannot be negative")
	}

	return &Producer[T]{
		client:  client,
		stream:  stream,
		closed:  true,
		logger:  options.logger.With(slog.String("caller", "Producer"), slog.String("stream", stream)),
		options: options,
	}, nil
}

func (p *Producer[T]) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.closed {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.upstream = chanx.NewUnboundedChan[map[string]any](ctx, p.options.bufferSize)
	p.cancelFunc = cancel
	p.closed = false
	p.logger.Info("starting stream producer")

	out := p.upstream.Out
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer p.logger.Info("producer goroutine stopped")

		// In 關閉後 Out 會在緩衝清空時關閉；ctx 取消則會直接關閉
		for message := range out {
			p.add(ctx, message)
		}
	}()
}

func (p *Producer[T]) add(ctx context.Context, message map[string]any) {
	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: message,
	}
	if p.options.maxLen > 0 {
		args.MaxLen = p.options.maxLen
		args.Approx = p.options.approxTrim
	}

	id, err := p.client.XAdd(ctx, args).Result()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		p.logger.Error("publish message error", slog.Any("error", err))
		return
	}
	p.logger.Debug("message published", slog.String("messageId", id))
}

func (p *Producer[T]) Publish(data T) error {
	message, err := p.options.encodeFunc(data)
	if err != nil {
		return fmt.Errorf("encode message error: %w", err)
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrProducerClosed
	}
	p.upstream.In <- message
	return nil
}

// Len 回傳尚未送出的訊息數量
func (p *Producer[T]) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.upstream == nil {
		return 0
	}
	return p.upstream.Len()
}

// Close 停止接收新訊息，並在 drainTimeout 內盡量送出緩衝中的訊息
func (p *Producer[T]) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.logger.Info("closing stream producer")
	p.closed = true
	close(p.upstream.In)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(p.options.drainTimeout)
	defer timer.Stop()
	select {
	case <-done:
	case <-timer.C:
		p.logger.Warn("drain timeout, dropping buffered messages", slog.Int("remaining", p.Len()))
		p.cancelFunc()
		<-done
	}
	p.cancelFunc()
	p.logger.Info("stream producer closed")
}

var _ IProducer[any] = (*Producer[any])(nil)
