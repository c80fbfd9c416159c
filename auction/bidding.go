package auction

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"

	"bidhouse/models"
)

// PlaceBid 在單一交易內驗證並寫入出價，同時推進拍賣的最高出價
//
// 拍賣列在交易中以 SELECT ... FOR UPDATE 鎖定，同一拍賣的出價因此依序執行；
// 推進最高出價時再以條件更新確認金額仍然是最高，條件不成立視為併發衝突。
// 併發衝突(包含序列化失敗與死結)會以指數退避重試，次數用盡回傳 KindConflict。
// 業務規則的拒絕不會重試，也不會留下任何寫入。
func (s *Service) PlaceBid(ctx context.Context, bidder Identity, auctionID uuid.UUID, amount decimal.Decimal) (*models.Bid, error) {
	if err := requireIdentity(bidder); err != nil {
		return nil, err
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	logger := s.logger.With(
		slog.String("auctionID", auctionID.String()),
		slog.String("bidderID", bidder.UserID.String()),
	)

	var bid *models.Bid
	attempts := 0
	err := retry.Do(ctx, s.bidBackoff(), func(ctx context.Context) error {
		attempts++
		placed, err := s.placeBidOnce(ctx, bidder.UserID, auctionID, amount)
		if err != nil {
			if errors.Is(err, ErrConflict) {
				logger.Debug("Bid attempt conflicted", slog.Int("attempt", attempts), slog.Any("error", err))
				return retry.RetryableError(err)
			}
			return err
		}
		bid = placed
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrConflict) {
			logger.Warn("Bid gave up after concurrent updates", slog.Int("attempts", attempts))
			return nil, &Error{
				Kind:    KindConflict,
				Reason:  ReasonHighestBidChanged,
				Message: "auction is being updated concurrently, please retry",
				Err:     err,
			}
		}
		return nil, err
	}

	logger.Info(
		"Bid accepted",
		slog.String("bidID", bid.ID.String()),
		slog.String("amount", bid.BidAmount.StringFixed(2)),
		slog.Int("attempts", attempts),
	)
	s.publish(Event{
		Type:       EventBidPlaced,
		AuctionID:  auctionID,
		BidID:      bid.ID,
		BidderID:   bid.BidderID,
		Amount:     bid.BidAmount.StringFixed(2),
		OccurredAt: bid.CreatedAt,
	})
	return bid, nil
}

func (s *Service) bidBackoff() retry.Backoff {
	backoff := retry.NewExponential(s.options.retryBaseDelay)
	if jitter := s.options.retryBaseDelay / 2; jitter > 0 {
		backoff = retry.WithJitter(jitter, backoff)
	}
	return retry.WithMaxRetries(uint64(s.options.maxBidAttempts-1), backoff)
}

func (s *Service) placeBidOnce(ctx context.Context, bidderID, auctionID uuid.UUID, amount decimal.Decimal) (*models.Bid, error) {
	var placed *models.Bid
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		auction, err := tx.LockAuction(ctx, auctionID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}

		// 取得列鎖之後才讀時鐘，讓 created_at 與提交順序一致
		now := s.now()
		if err := ValidateBid(auction, bidderID, amount, now); err != nil {
			return err
		}

		bid := &models.Bid{
			AuctionID: auctionID,
			BidderID:  bidderID,
			BidAmount: amount,
			CreatedAt: now,
		}
		if err := tx.InsertBid(ctx, bid); err != nil {
			return err
		}

		advanced, err := tx.AdvanceHighestBid(ctx, auctionID, bidderID, amount, now)
		if err != nil {
			return err
		}
		if !advanced {
			return &Error{Kind: KindConflict, Reason: ReasonHighestBidChanged, Message: "highest bid changed before commit"}
		}

		placed = bid
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}
