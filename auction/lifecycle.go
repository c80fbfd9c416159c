package auction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// CloseExpiredAuctions 關閉所有已過結束時間但仍為 active 的拍賣，回傳這次關閉的 ID
// 重複執行或與出價併發執行都是安全的，已關閉的拍賣不會再被回傳
func (s *Service) CloseExpiredAuctions(ctx context.Context) ([]uuid.UUID, error) {
	now := s.now()
	ids, err := s.repo.CloseExpired(ctx, now)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}

	if len(ids) > 0 {
		s.logger.Info("Closed expired auctions", slog.Int("count", len(ids)))
	}
	for _, id := range ids {
		s.publish(Event{Type: EventAuctionClosed, AuctionID: id, OccurredAt: now})
	}
	return ids, nil
}

// CloseIfExpired 只處理單一拍賣，回傳這次呼叫是否把它關閉
func (s *Service) CloseIfExpired(ctx context.Context, auctionID uuid.UUID) (bool, error) {
	now := s.now()
	closed, err := s.repo.CloseIfExpired(ctx, auctionID, now)
	if err != nil {
		return false, err
	}
	if closed {
		s.logger.Info("Closed expired auction", slog.String("auctionID", auctionID.String()))
		s.publish(Event{Type: EventAuctionClosed, AuctionID: auctionID, OccurredAt: now})
	}
	return closed, nil
}
