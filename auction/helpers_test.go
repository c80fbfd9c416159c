package auction

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bidhouse/models"
)

var (
	dbSeq     atomic.Int64
	testStart = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupStore 每個測試使用獨立的 in-memory sqlite
// 只開一條連線，交易因此會依序執行
func setupStore(t *testing.T) (*gorm.DB, Repository) {
	t.Helper()

	dsn := fmt.Sprintf("file:auction_test_%d?mode=memory&cache=shared&_foreign_keys=1", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Auction{}, &models.Bid{}))

	repo, err := NewStore(db)
	require.NoError(t, err)
	return db, repo
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: testStart}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// tickingClock 每次讀取都前進一微秒，讓出價的 created_at 不會重複
type tickingClock struct {
	testClock
}

func newTickingClock() *tickingClock {
	return &tickingClock{testClock{now: testStart}}
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Microsecond)
	return c.now
}

func newTestService(t *testing.T, repo Repository, clock func() time.Time, opts ...ServiceOption) *Service {
	t.Helper()

	opts = append([]ServiceOption{
		WithLogger(discardLogger()),
		WithClock(clock),
		WithRetryBaseDelay(time.Millisecond),
	}, opts...)
	service, err := NewService(repo, opts...)
	require.NoError(t, err)
	return service
}

func createUser(t *testing.T, repo Repository, email string) Identity {
	t.Helper()

	user := &models.User{Email: email}
	require.NoError(t, repo.EnsureUser(context.Background(), user))
	return Identity{UserID: user.ID, Email: user.Email}
}

func createAuction(t *testing.T, repo Repository, seller Identity, startingPrice string, endTime time.Time) *models.Auction {
	t.Helper()

	auction := &models.Auction{
		SellerID:      seller.UserID,
		Title:         "Vintage camera",
		StartingPrice: decimal.RequireFromString(startingPrice),
		EndTime:       endTime.UTC(),
		Status:        models.AuctionStatusActive,
		CreatedAt:     testStart,
		UpdatedAt:     testStart,
	}
	require.NoError(t, repo.CreateAuction(context.Background(), auction))
	return auction
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// flakyRepo 讓 AdvanceHighestBid 前 failures 次回傳條件不成立，模擬被其他寫入者搶先
type flakyRepo struct {
	Repository
	failures atomic.Int32
	calls    atomic.Int32
}

func (r *flakyRepo) Transaction(ctx context.Context, fn func(tx Repository) error) error {
	return r.Repository.Transaction(ctx, func(tx Repository) error {
		return fn(&flakyTx{Repository: tx, parent: r})
	})
}

type flakyTx struct {
	Repository
	parent *flakyRepo
}

func (r *flakyTx) AdvanceHighestBid(ctx context.Context, id, bidderID uuid.UUID, amount decimal.Decimal, now time.Time) (bool, error) {
	r.parent.calls.Add(1)
	if r.parent.failures.Add(-1) >= 0 {
		return false, nil
	}
	return r.Repository.AdvanceHighestBid(ctx, id, bidderID, amount, now)
}
