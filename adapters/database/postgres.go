package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

type openOptions struct {
	logger          *slog.Logger
	logLevel        gormlogger.LogLevel
	schema          string
	maxRetries      uint64
	retryDelay      time.Duration
	maxRetryDelay   time.Duration
	maxOpenConns    int
	maxIdleConns    int
	connMaxLifetime time.Duration
	pingTimeout     time.Duration
}

type OpenOption func(*openOptions)

// WithLogger 設置日誌記錄器，gorm 的日誌也會轉到這裡
func WithLogger(logger *slog.Logger) OpenOption {
	return func(o *openOptions) {
		o.logger = logger
	}
}

// WithLogLevel 設置 gorm 的日誌等級
func WithLogLevel(level gormlogger.LogLevel) OpenOption {
	return func(o *openOptions) {
		o.logLevel = level
	}
}

// WithSchema 設置資料表所在的 schema，空字串代表使用連線的 search_path
func WithSchema(schema string) OpenOption {
	return func(o *openOptions) {
		o.schema = schema
	}
}

// WithRetry 設置連線失敗時的重試次數與起始間隔
func WithRetry(maxRetries uint64, delay time.Duration) OpenOption {
	return func(o *openOptions) {
		o.maxRetries = maxRetries
		o.retryDelay = delay
	}
}

// WithPool 設置連線池
func WithPool(maxOpen, maxIdle int, maxLifetime time.Duration) OpenOption {
	return func(o *openOptions) {
		o.maxOpenConns = maxOpen
		o.maxIdleConns = maxIdle
		o.connMaxLifetime = maxLifetime
	}
}

// Open 連線到 postgres，資料庫尚未就緒時以指數退避重試
func Open(ctx context.Context, dsn string, opts ...OpenOption) (*gorm.DB, error) {
	const op = "database.Open"

	if dsn == "" {
		return nil, errors.New("dsn cannot be empty")
	}

	// 默認選項
	options := openOptions{
		logger:          slog.Default(),
		logLevel:        gormlogger.Warn,
		maxRetries:      5,
		retryDelay:      500 * time.Millisecond,
		maxRetryDelay:   5 * time.Second,
		maxOpenConns:    25,
		maxIdleConns:    25,
		connMaxLifetime: 5 * time.Minute,
		pingTimeout:     5 * time.Second,
	}

	// 應用自定義選項
	for _, opt := range opts {
		opt(&options)
	}

	logger := options.logger.With(slog.String("caller", "Database"))
	config := &gorm.Config{
		TranslateError: true,
		Logger:         NewLogger(logger, options.logLevel),
	}
	if options.schema != "" {
		config.NamingStrategy = schema.NamingStrategy{
			TablePrefix: options.schema + ".",
		}
	}

	backoff := retry.WithMaxRetries(
		options.maxRetries,
		retry.WithCappedDuration(options.maxRetryDelay, retry.NewExponential(options.retryDelay)),
	)

	var db *gorm.DB
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		conn, err := gorm.Open(postgres.Open(dsn), config)
		if err != nil {
			logger.Warn("Database not ready", slog.Int("attempt", attempt), slog.Any("error", err))
			return retry.RetryableError(err)
		}
		db = conn
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to connect to database after %d attempts, err=%w", op, attempt, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to get sql.DB, err=%w", op, err)
	}
	sqlDB.SetMaxOpenConns(options.maxOpenConns)
	sqlDB.SetMaxIdleConns(options.maxIdleConns)
	sqlDB.SetConnMaxLifetime(options.connMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, options.pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("[%s] Fail to ping database, err=%w", op, err)
	}

	logger.Info("Database connected", slog.Int("attempts", attempt))
	return db, nil
}

// Close 關閉底層連線池
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
