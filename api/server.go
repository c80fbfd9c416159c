package api

import (
	"context"
	"crypto"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"bidhouse/adapters/database"
	redisAdapter "bidhouse/adapters/redis"
	"bidhouse/api/openapi"
	"bidhouse/auction"
)

type ServerImpl struct {
	db          *gorm.DB
	redisClient *redis.Client
	producer    redisAdapter.IProducer[auction.Event]
	service     *auction.Service
	sweeper     *auction.Sweeper
	publicKey   crypto.PublicKey
	logger      *slog.Logger

	config ServerConfig
}

func NewServer(ctx context.Context, config ServerConfig, logger *slog.Logger) (*ServerImpl, error) {
	const op = "NewServer"

	if logger == nil {
		logger = slog.Default()
	}

	// 解析驗證服務的公鑰
	publicKey, err := ParsePublicKey(config.Auth.PublicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to load auth public key, err=%w", op, err)
	}

	// 初始化資料庫連線
	db, err := database.Open(
		ctx,
		config.DB.DSN(),
		database.WithLogger(logger),
		database.WithLogLevel(config.DB.GormLogLevel()),
		database.WithSchema(config.DB.Schema),
		database.WithPool(config.DB.MaxOpenConns, config.DB.MaxIdleConns, config.DB.ConnMaxLifetime),
	)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to connect to database, err=%w", op, err)
	}
	if config.DB.Migrate {
		if err := database.Migrate(ctx, db, config.DB.Schema, logger); err != nil {
			closeClients(db, nil)
			return nil, fmt.Errorf("[%s] Fail to migrate database, err=%w", op, err)
		}
	}

	// 出價交易以 READ COMMITTED 執行，序列化由列鎖保證
	repo, err := auction.NewStore(db, auction.WithIsolation(sql.LevelReadCommitted))
	if err != nil {
		closeClients(db, nil)
		return nil, fmt.Errorf("[%s] Fail to create auction store, err=%w", op, err)
	}

	serviceOpts := []auction.ServiceOption{
		auction.WithLogger(logger),
		auction.WithMaxBidAttempts(config.Bidding.MaxAttempts),
		auction.WithRetryBaseDelay(config.Bidding.RetryDelay),
		auction.WithRecentBids(config.Bidding.RecentBids),
	}
	sweeperOpts := []auction.SweeperOption{
		auction.WithSweeperLogger(logger),
		auction.WithSweeperInterval(config.Sweep.Interval),
	}

	// 初始化Redis連線，沒有設定時不發布事件，每個實例各自掃描
	var (
		redisClient *redis.Client
		producer    *redisAdapter.Producer[auction.Event]
	)
	if config.Redis.Enabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     config.Redis.Addr,
			Password: config.Redis.Password,
			DB:       config.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			closeClients(db, redisClient)
			return nil, fmt.Errorf("[%s] Fail to connect to redis, err=%w", op, err)
		}

		producer, err = redisAdapter.NewProducer[auction.Event](
			redisClient,
			config.Redis.EventStream,
			redisAdapter.WithProducerLogger[auction.Event](logger),
			redisAdapter.WithProducerMaxLen[auction.Event](config.Redis.StreamMaxLen, true),
		)
		if err != nil {
			closeClients(db, redisClient)
			return nil, fmt.Errorf("[%s] Fail to create event producer, err=%w", op, err)
		}
		serviceOpts = append(serviceOpts, auction.WithPublisher(producer))

		lock, err := redisAdapter.NewLock(
			redisClient,
			config.Redis.SweepLockKey,
			redisAdapter.WithLockLogger(logger),
		)
		if err != nil {
			closeClients(db, redisClient)
			return nil, fmt.Errorf("[%s] Fail to create sweep lock, err=%w", op, err)
		}
		sweeperOpts = append(sweeperOpts, auction.WithSweeperLocker(lock))
	}

	service, err := auction.NewService(repo, serviceOpts...)
	if err != nil {
		closeClients(db, redisClient)
		return nil, fmt.Errorf("[%s] Fail to create auction service, err=%w", op, err)
	}
	sweeper, err := auction.NewSweeper(service, sweeperOpts...)
	if err != nil {
		closeClients(db, redisClient)
		return nil, fmt.Errorf("[%s] Fail to create auction sweeper, err=%w", op, err)
	}

	impl := &ServerImpl{
		db:          db,
		redisClient: redisClient,
		service:     service,
		sweeper:     sweeper,
		publicKey:   publicKey,
		logger:      logger.With(slog.String("caller", "Server")),
		config:      config,
	}
	if producer != nil {
		impl.producer = producer
	}
	return impl, nil
}

func (impl *ServerImpl) Start() {
	// 先啟動producer，掃描關閉的拍賣才能發布事件
	if impl.producer != nil {
		impl.producer.Start()
	}
	impl.sweeper.Start()
}

func (impl *ServerImpl) Close() {
	// 關閉sweeper
	impl.sweeper.Close()
	// 關閉producer，盡量送出緩衝中的事件
	if impl.producer != nil {
		impl.producer.Close()
	}
	if impl.redisClient != nil {
		if err := impl.redisClient.Close(); err != nil {
			impl.logger.Warn("Fail to close redis client", slog.Any("error", err))
		}
	}
	if err := database.Close(impl.db); err != nil {
		impl.logger.Warn("Fail to close database", slog.Any("error", err))
	}
}

// closeClients 建立過程失敗時釋放已經開啟的連線
func closeClients(db *gorm.DB, redisClient *redis.Client) {
	if redisClient != nil {
		redisClient.Close()
	}
	database.Close(db)
}

// RegisterHandlers 以產生的 strict server 註冊所有路由
func (impl *ServerImpl) RegisterHandlers(router gin.IRouter) {
	router.Use(impl.renderUnwrittenErrors())
	handler := openapi.NewStrictHandler(impl, nil)
	openapi.RegisterHandlersWithOptions(router, handler, openapi.GinServerOptions{
		ErrorHandler: impl.handleRequestError,
	})
}
