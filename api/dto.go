package api

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"bidhouse/api/openapi"
	"bidhouse/auction"
	"bidhouse/models"
)

// money 金額一律以兩位小數的字串輸出
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func highestBid(a models.Auction) *string {
	if !a.CurrentHighestBid.Valid {
		return nil
	}
	return lo.ToPtr(money(a.CurrentHighestBid.Decimal))
}

func toAuction(a models.Auction) openapi.Auction {
	return openapi.Auction{
		Id:                     a.ID,
		SellerId:               a.SellerID,
		Title:                  a.Title,
		Description:            a.Description,
		StartingPrice:          money(a.StartingPrice),
		CurrentHighestBid:      highestBid(a),
		CurrentHighestBidderId: a.CurrentHighestBidderID,
		EndTime:                a.EndTime,
		Status:                 openapi.AuctionStatus(a.Status),
		ImageUrl:               a.ImageURL,
		CreatedAt:              a.CreatedAt,
		UpdatedAt:              a.UpdatedAt,
	}
}

func toAuctionListItem(summary auction.AuctionSummary, _ int) openapi.AuctionListItem {
	a := summary.Auction
	return openapi.AuctionListItem{
		Id:                     a.ID,
		SellerId:               a.SellerID,
		Title:                  a.Title,
		Description:            a.Description,
		StartingPrice:          money(a.StartingPrice),
		CurrentHighestBid:      highestBid(a),
		CurrentHighestBidderId: a.CurrentHighestBidderID,
		EndTime:                a.EndTime,
		Status:                 openapi.AuctionStatus(a.Status),
		ImageUrl:               a.ImageURL,
		CreatedAt:              a.CreatedAt,
		UpdatedAt:              a.UpdatedAt,
		SellerEmail:            summary.SellerEmail,
		HighestBidderEmail:     summary.HighestBidderEmail,
	}
}

func toAuctionDetail(view *auction.AuctionView) openapi.AuctionDetail {
	a := view.Auction
	return openapi.AuctionDetail{
		Id:                     a.ID,
		SellerId:               a.SellerID,
		Title:                  a.Title,
		Description:            a.Description,
		StartingPrice:          money(a.StartingPrice),
		CurrentHighestBid:      highestBid(a),
		CurrentHighestBidderId: a.CurrentHighestBidderID,
		EndTime:                a.EndTime,
		Status:                 openapi.AuctionStatus(a.Status),
		ImageUrl:               a.ImageURL,
		CreatedAt:              a.CreatedAt,
		UpdatedAt:              a.UpdatedAt,
		SellerEmail:            view.SellerEmail,
		HighestBidderEmail:     view.HighestBidderEmail,
		MinimumBid:             money(view.MinimumBid),
		RecentBids: lo.Map(view.RecentBids, func(bid auction.BidView, _ int) openapi.BidHistoryItem {
			return openapi.BidHistoryItem{
				Id:          bid.ID,
				BidAmount:   money(bid.Amount),
				CreatedAt:   bid.CreatedAt,
				BidderEmail: bid.BidderEmail,
			}
		}),
	}
}

func toBid(bid *models.Bid) openapi.Bid {
	return openapi.Bid{
		Id:        bid.ID,
		AuctionId: bid.AuctionID,
		BidderId:  bid.BidderID,
		BidAmount: money(bid.BidAmount),
		CreatedAt: bid.CreatedAt,
	}
}

func toSellerAuction(item auction.SellerAuction, _ int) openapi.SellerAuction {
	a := item.Auction
	return openapi.SellerAuction{
		Id:                     a.ID,
		SellerId:               a.SellerID,
		Title:                  a.Title,
		Description:            a.Description,
		StartingPrice:          money(a.StartingPrice),
		CurrentHighestBid:      highestBid(a),
		CurrentHighestBidderId: a.CurrentHighestBidderID,
		EndTime:                a.EndTime,
		Status:                 openapi.AuctionStatus(a.Status),
		ImageUrl:               a.ImageURL,
		CreatedAt:              a.CreatedAt,
		UpdatedAt:              a.UpdatedAt,
		HighestBidderEmail:     item.HighestBidderEmail,
		TotalBids:              item.BidCount,
	}
}
