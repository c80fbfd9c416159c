package auction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"bidhouse/models"
)

// BidView 出價紀錄與出價者的 email
type BidView struct {
	ID          uuid.UUID
	BidderID    uuid.UUID
	BidderEmail string
	Amount      decimal.Decimal
	CreatedAt   time.Time
}

// AuctionView 單一拍賣的詳細資料
type AuctionView struct {
	Auction            models.Auction
	SellerEmail        string
	HighestBidderEmail *string
	// MinimumBid 下一筆出價必須嚴格超過的金額
	MinimumBid decimal.Decimal
	// RecentBids 依時間倒序
	RecentBids []BidView
}

// AuctionSummary 拍賣列表的單筆資料
type AuctionSummary struct {
	Auction            models.Auction
	SellerEmail        string
	HighestBidderEmail *string
}

// SellerAuction 賣家自己的拍賣與出價數量
type SellerAuction struct {
	Auction            models.Auction
	HighestBidderEmail *string
	BidCount           int64
}

func emailOf(user *models.User) *string {
	if user == nil {
		return nil
	}
	return lo.ToPtr(user.Email)
}

// GetAuctionView 讀取前先關閉已過期的拍賣，回傳的狀態因此不會是過期的 active
func (s *Service) GetAuctionView(ctx context.Context, auctionID uuid.UUID) (*AuctionView, error) {
	if _, err := s.CloseIfExpired(ctx, auctionID); err != nil {
		return nil, err
	}

	auction, err := s.repo.GetAuctionDetail(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	bids, err := s.repo.RecentBids(ctx, auctionID, s.options.recentBids)
	if err != nil {
		return nil, err
	}

	view := &AuctionView{
		Auction:            *auction,
		SellerEmail:        lo.FromPtr(emailOf(auction.Seller)),
		HighestBidderEmail: emailOf(auction.HighestBidder),
		MinimumBid:         MinimumBid(auction),
		RecentBids: lo.Map(bids, func(bid models.Bid, _ int) BidView {
			return BidView{
				ID:          bid.ID,
				BidderID:    bid.BidderID,
				BidderEmail: lo.FromPtr(emailOf(bid.Bidder)),
				Amount:      bid.BidAmount,
				CreatedAt:   bid.CreatedAt,
			}
		}),
	}
	return view, nil
}

// ListActiveAuctions 依建立時間倒序列出 active 的拍賣
// 只看狀態欄位，已過期但尚未被掃描關閉的拍賣仍會出現
func (s *Service) ListActiveAuctions(ctx context.Context) ([]AuctionSummary, error) {
	auctions, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(auctions, func(auction models.Auction, _ int) AuctionSummary {
		return AuctionSummary{
			Auction:            auction,
			SellerEmail:        lo.FromPtr(emailOf(auction.Seller)),
			HighestBidderEmail: emailOf(auction.HighestBidder),
		}
	}), nil
}

// ListSellerAuctions 依建立時間倒序列出賣家的所有拍賣與各自的出價數量
func (s *Service) ListSellerAuctions(ctx context.Context, sellerID uuid.UUID) ([]SellerAuction, error) {
	auctions, err := s.repo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	ids := lo.Map(auctions, func(auction models.Auction, _ int) uuid.UUID { return auction.ID })
	counts, err := s.repo.CountBids(ctx, ids)
	if err != nil {
		return nil, err
	}

	return lo.Map(auctions, func(auction models.Auction, _ int) SellerAuction {
		return SellerAuction{
			Auction:            auction,
			HighestBidderEmail: emailOf(auction.HighestBidder),
			BidCount:           counts[auction.ID],
		}
	}), nil
}
