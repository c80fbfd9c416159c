package auction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bidhouse/models"
)

// postgres SQLSTATE
const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
)

type storeOptions struct {
	txOptions []*sql.TxOptions
}

type StoreOption func(*storeOptions)

// WithIsolation 設定 Transaction 使用的隔離等級
func WithIsolation(level sql.IsolationLevel) StoreOption {
	return func(o *storeOptions) {
		o.txOptions = []*sql.TxOptions{{Isolation: level}}
	}
}

type store struct {
	db      *gorm.DB
	options storeOptions
}

// NewStore 以 gorm 實作 Repository
func NewStore(db *gorm.DB, opts ...StoreOption) (Repository, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}

	options := storeOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	return &store{db: db, options: options}, nil
}

func (s *store) Transaction(ctx context.Context, fn func(tx Repository) error) error {
	const op = "store.Transaction"

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&store{db: tx, options: s.options})
	}, s.options.txOptions...)
	return classify(op, err)
}

func (s *store) EnsureUser(ctx context.Context, user *models.User) error {
	const op = "store.EnsureUser"

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// token 的 email 已經屬於另一個使用者，這個身份無法對應到任何使用者
		return &Error{
			Kind:    KindUnauthenticated,
			Reason:  ReasonIdentityConflict,
			Message: fmt.Sprintf("email %s is registered to another user", user.Email),
			Err:     err,
		}
	}
	return classify(op, err)
}

func (s *store) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "store.GetUser"

	user := models.User{}
	err := s.db.WithContext(ctx).Take(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound(ReasonUserNotFound, "user %s not found", id)
	}
	if err != nil {
		return nil, classify(op, err)
	}
	return &user, nil
}

func (s *store) CreateAuction(ctx context.Context, auction *models.Auction) error {
	const op = "store.CreateAuction"

	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(auction).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return notFound(ReasonUserNotFound, "seller %s not found", auction.SellerID)
	}
	return classify(op, err)
}

func (s *store) GetAuction(ctx context.Context, id uuid.UUID) (*models.Auction, error) {
	return takeAuction("store.GetAuction", s.db.WithContext(ctx), id)
}

func (s *store) GetAuctionDetail(ctx context.Context, id uuid.UUID) (*models.Auction, error) {
	query := s.db.WithContext(ctx).Preload("Seller").Preload("HighestBidder")
	return takeAuction("store.GetAuctionDetail", query, id)
}

func (s *store) LockAuction(ctx context.Context, id uuid.UUID) (*models.Auction, error) {
	query := s.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
	return takeAuction("store.LockAuction", query, id)
}

func takeAuction(op string, query *gorm.DB, id uuid.UUID) (*models.Auction, error) {
	auction := models.Auction{}
	err := query.Take(&auction, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound(ReasonAuctionNotFound, "auction %s not found", id)
	}
	if err != nil {
		return nil, classify(op, err)
	}
	return &auction, nil
}

func (s *store) InsertBid(ctx context.Context, bid *models.Bid) error {
	const op = "store.InsertBid"

	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(bid).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return notFound("", "auction %s or bidder %s not found", bid.AuctionID, bid.BidderID)
	}
	return classify(op, err)
}

func (s *store) AdvanceHighestBid(ctx context.Context, id, bidderID uuid.UUID, amount decimal.Decimal, now time.Time) (bool, error) {
	const op = "store.AdvanceHighestBid"

	result := s.db.WithContext(ctx).
		Model(&models.Auction{}).
		Where("id = ? AND status = ? AND end_time > ?", id, models.AuctionStatusActive, now).
		Where("(current_highest_bid IS NULL OR current_highest_bid < ?)", amount).
		Updates(map[string]any{
			"current_highest_bid":       amount,
			"current_highest_bidder_id": bidderID,
			"updated_at":                now,
		})
	if result.Error != nil {
		return false, classify(op, result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (s *store) CloseExpired(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	const op = "store.CloseExpired"

	ids := make([]uuid.UUID, 0)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先鎖定要關閉的列，與出價交易在同一把列鎖上排隊
		err := tx.Model(&models.Auction{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("status = ? AND end_time <= ?", models.AuctionStatusActive, now).
			Order("end_time").
			Order("id").
			Pluck("id", &ids).Error
		if err != nil || len(ids) == 0 {
			return err
		}

		return tx.Model(&models.Auction{}).
			Where("id IN ? AND status = ?", ids, models.AuctionStatusActive).
			Updates(map[string]any{
				"status":     models.AuctionStatusClosed,
				"updated_at": now,
			}).Error
	}, s.options.txOptions...)
	if err != nil {
		return nil, classify(op, err)
	}
	return ids, nil
}

func (s *store) CloseIfExpired(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	const op = "store.CloseIfExpired"

	result := s.db.WithContext(ctx).
		Model(&models.Auction{}).
		Where("id = ? AND status = ? AND end_time <= ?", id, models.AuctionStatusActive, now).
		Updates(map[string]any{
			"status":     models.AuctionStatusClosed,
			"updated_at": now,
		})
	if result.Error != nil {
		return false, classify(op, result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *store) RecentBids(ctx context.Context, auctionID uuid.UUID, limit int) ([]models.Bid, error) {
	const op = "store.RecentBids"

	bids := []models.Bid{}
	err := s.db.WithContext(ctx).
		Preload("Bidder").
		Where("auction_id = ?", auctionID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&bids).Error
	if err != nil {
		return nil, classify(op, err)
	}
	return bids, nil
}

func (s *store) ListActive(ctx context.Context) ([]models.Auction, error) {
	const op = "store.ListActive"

	auctions := []models.Auction{}
	err := s.db.WithContext(ctx).
		Preload("Seller").
		Preload("HighestBidder").
		Where("status = ?", models.AuctionStatusActive).
		Order("created_at DESC").
		Order("id DESC").
		Find(&auctions).Error
	if err != nil {
		return nil, classify(op, err)
	}
	return auctions, nil
}

func (s *store) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.Auction, error) {
	const op = "store.ListBySeller"

	auctions := []models.Auction{}
	err := s.db.WithContext(ctx).
		Preload("HighestBidder").
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&auctions).Error
	if err != nil {
		return nil, classify(op, err)
	}
	return auctions, nil
}

func (s *store) CountBids(ctx context.Context, auctionIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	const op = "store.CountBids"

	counts := make(map[uuid.UUID]int64, len(auctionIDs))
	if len(auctionIDs) == 0 {
		return counts, nil
	}

	rows := []struct {
		AuctionID uuid.UUID
		Total     int64
	}{}
	err := s.db.WithContext(ctx).
		Model(&models.Bid{}).
		Select("auction_id, COUNT(*) AS total").
		Where("auction_id IN ?", auctionIDs).
		Group("auction_id").
		Scan(&rows).Error
	if err != nil {
		return nil, classify(op, err)
	}
	for _, row := range rows {
		counts[row.AuctionID] = row.Total
	}
	return counts, nil
}

// classify 把儲存層的錯誤轉成 *Error，已經是 *Error 的錯誤原樣回傳
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Error{Kind: KindNotFound, Message: op, Err: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlStateSerializationFailure, sqlStateDeadlockDetected:
			return &Error{Kind: KindConflict, Message: op, Err: err}
		}
	}
	return unavailable(op, err)
}
