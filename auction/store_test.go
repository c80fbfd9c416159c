package auction

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bidhouse/models"
)

func TestNewStore(t *testing.T) {
	repo, err := NewStore(nil)
	assert.Error(t, err)
	assert.Nil(t, repo)
}

func TestStore_EnsureUser(t *testing.T) {
	ctx := context.Background()
	_, repo := setupStore(t)

	user := &models.User{ID: uuid.New(), Email: "alice@example.com"}
	require.NoError(t, repo.EnsureUser(ctx, user))

	// 重複呼叫不會覆寫既有資料
	require.NoError(t, repo.EnsureUser(ctx, &models.User{ID: user.ID, Email: "changed@example.com"}))
	got, err := repo.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)

	// 不同 ID 使用相同 email
	err = repo.EnsureUser(ctx, &models.User{ID: uuid.New(), Email: "alice@example.com"})
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Equal(t, ReasonIdentityConflict, ReasonOf(err))

	_, err = repo.GetUser(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_GetAuction(t *testing.T) {
	ctx := context.Background()
	_, repo := setupStore(t)
	seller := createUser(t, repo, "seller@example.com")
	auction := createAuction(t, repo, seller, "10.00", testStart.Add(time.Hour))

	got, err := repo.GetAuction(ctx, auction.ID)
	require.NoError(t, err)
	assert.Equal(t, auction.ID, got.ID)
	assert.True(t, got.StartingPrice.Equal(dec("10")))
	assert.False(t, got.CurrentHighestBid.Valid)
	assert.Nil(t, got.CurrentHighestBidderID)

	detail, err := repo.GetAuctionDetail(ctx, auction.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Seller)
	assert.Equal(t, "seller@example.com", detail.Seller.Email)
	assert.Nil(t, detail.HighestBidder)

	_, err = repo.GetAuction(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrAuctionNotFound)

	err = repo.Transaction(ctx, func(tx Repository) error {
		_, err := tx.LockAuction(ctx, uuid.New())
		return err
	})
	assert.ErrorIs(t, err, ErrAuctionNotFound)
}

func TestStore_CreateAuctionUnknownSeller(t *testing.T) {
	_, repo := setupStore(t)

	err := repo.CreateAuction(context.Background(), &models.Auction{
		SellerID:      uuid.New(),
		Title:         "Orphan",
		StartingPrice: dec("1"),
		EndTime:       testStart.Add(time.Hour),
		Status:        models.AuctionStatusActive,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_AdvanceHighestBid(t *testing.T) {
	ctx := context.Background()
	_, repo := setupStore(t)
	seller := createUser(t, repo, "seller@example.com")
	bidder := createUser(t, repo, "bidder@example.com")
	auction := createAuction(t, repo, seller, "10.00", testStart.Add(time.Hour))

	ok, err := repo.AdvanceHighestBid(ctx, auction.ID, bidder.UserID, dec("12.00"), testStart)
	require.NoError(t, err)
	assert.True(t, ok)

	// 相同或較低的金額不會覆蓋
	ok, err = repo.AdvanceHighestBid(ctx, auction.ID, bidder.UserID, dec("12.00"), testStart)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = repo.AdvanceHighestBid(ctx, auction.ID, bidder.UserID, dec("11.00"), testStart)
	require.NoError(t, err)
	assert.False(t, ok)

	// 已過結束時間
	ok, err = repo.AdvanceHighestBid(ctx, auction.ID, bidder.UserID, dec("20.00"), testStart.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetAuction(ctx, auction.ID)
	require.NoError(t, err)
	assert.True(t, got.CurrentHighestBid.Valid)
	assert.True(t, got.CurrentHighestBid.Decimal.Equal(dec("12")))
	require.NotNil(t, got.CurrentHighestBidderID)
	assert.Equal(t, bidder.UserID, *got.CurrentHighestBidderID)
}

func TestStore_CloseExpired(t *testing.T) {
	ctx := context.Background()
	_, repo := setupStore(t)
	seller := createUser(t, repo, "seller@example.com")

	expired1 := createAuction(t, repo, seller, "1.00", testStart.Add(-time.Hour))
	expired2 := createAuction(t, repo, seller, "1.00", testStart)
	open := createAuction(t, repo, seller, "1.00", testStart.Add(time.Second))

	ids, err := repo.CloseExpired(ctx, testStart)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{expired1.ID, expired2.ID}, ids)

	ids, err = repo.CloseExpired(ctx, testStart)
	require.NoError(t, err)
	assert.Empty(t, ids)

	got, err := repo.GetAuction(ctx, open.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AuctionStatusActive, got.Status)

	got, err = repo.GetAuction(ctx, expired1.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AuctionStatusClosed, got.Status)
}

func TestStore_CloseExpiredOrdersTiesByID(t *testing.T) {
	ctx := context.Background()
	_, repo := setupStore(t)
	seller := createUser(t, repo, "seller@example.com")

	// 結束時間相同時依 id 排序
	endTime := testStart.Add(-time.Minute)
	created := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		created = append(created, createAuction(t, repo, seller, "1.00", endTime).ID.String())
	}
	earlier := createAuction(t, repo, seller, "1.00", endTime.Add(-time.Minute))
	sort.Strings(created)

	ids, err := repo.CloseExpired(ctx, testStart)
	require.NoError(t, err)
	require.Len(t, ids, 5)
	assert.Equal(t, earlier.ID, ids[0])
	assert.Equal(t, created, lo.Map(ids[1:], func(id uuid.UUID, _ int) string { return id.String() }))
}

func TestClassify(t *testing.T) {
	const op = "store.Test"

	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, kind: KindConflict},
		{name: "deadlock detected", err: fmt.Errorf("commit: %w", &pgconn.PgError{Code: "40P01"}), kind: KindConflict},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, kind: KindStoreUnavailable},
		{name: "record not found", err: gorm.ErrRecordNotFound, kind: KindNotFound},
		{name: "connection refused", err: errors.New("dial tcp: connection refused"), kind: KindStoreUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(op, tt.err)
			assert.Equal(t, tt.kind, KindOf(err))
			assert.ErrorIs(t, err, tt.err)
		})
	}

	assert.NoError(t, classify(op, nil))
	// 已分類的錯誤原樣回傳
	assert.Same(t, ErrSelfBid, classify(op, ErrSelfBid))
}

func TestStore_CloseIfExpired(t *testing.T) {
	ctx := context.Background()
	_, repo := setupStore(t)
	seller := createUser(t, repo, "seller@example.com")
	auction := createAuction(t, repo, seller, "1.00", testStart.Add(time.Minute))

	closed, err := repo.CloseIfExpired(ctx, auction.ID, testStart)
	require.NoError(t, err)
	assert.False(t, closed)

	closed, err = repo.CloseIfExpired(ctx, auction.ID, testStart.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, closed)

	closed, err = repo.CloseIfExpired(ctx, auction.ID, testStart.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, closed)

	closed, err = repo.CloseIfExpired(ctx, uuid.New(), testStart)
	require.NoError(t, err)
	assert.False(t, closed)
}

func TestStore_TransactionRollback(t *testing.T) {
	ctx := context.Background()
	_, repo := setupStore(t)
	seller := createUser(t, repo, "seller@example.com")
	bidder := createUser(t, repo, "bidder@example.com")
	auction := createAuction(t, repo, seller, "1.00", testStart.Add(time.Hour))

	err := repo.Transaction(ctx, func(tx Repository) error {
		require.NoError(t, tx.InsertBid(ctx, &models.Bid{
			AuctionID: auction.ID,
			BidderID:  bidder.UserID,
			BidAmount: dec("2.00"),
			CreatedAt: testStart,
		}))
		return ErrSelfBid
	})
	assert.ErrorIs(t, err, ErrSelfBid)

	counts, err := repo.CountBids(ctx, []uuid.UUID{auction.ID})
	require.NoError(t, err)
	assert.Zero(t, counts[auction.ID])
}

func TestStore_RecentBidsAndCounts(t *testing.T) {
	ctx := context.Background()
	_, repo := setupStore(t)
	seller := createUser(t, repo, "seller@example.com")
	bidder := createUser(t, repo, "bidder@example.com")
	auction := createAuction(t, repo, seller, "1.00", testStart.Add(time.Hour))
	other := createAuction(t, repo, seller, "1.00", testStart.Add(time.Hour))

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.InsertBid(ctx, &models.Bid{
			AuctionID: auction.ID,
			BidderID:  bidder.UserID,
			BidAmount: decimal.NewFromInt(int64(i + 1)),
			CreatedAt: testStart.Add(time.Duration(i) * time.Second),
		}))
	}

	bids, err := repo.RecentBids(ctx, auction.ID, 3)
	require.NoError(t, err)
	require.Len(t, bids, 3)
	assert.Equal(t, testStart.Add(5*time.Second), bids[0].CreatedAt.UTC())
	assert.Equal(t, testStart.Add(3*time.Second), bids[2].CreatedAt.UTC())
	require.NotNil(t, bids[0].Bidder)
	assert.Equal(t, "bidder@example.com", bids[0].Bidder.Email)

	counts, err := repo.CountBids(ctx, []uuid.UUID{auction.ID, other.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(5), counts[auction.ID])
	_, ok := counts[other.ID]
	assert.False(t, ok)

	counts, err = repo.CountBids(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, counts)
}
