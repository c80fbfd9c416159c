package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"bidhouse/api/openapi"
	"bidhouse/auction"
)

// List active auctions
// (GET /auctions)
func (impl *ServerImpl) ListActiveAuctions(ctx context.Context, request openapi.ListActiveAuctionsRequestObject) (openapi.ListActiveAuctionsResponseObject, error) {
	const op = "ListActiveAuctions"
	summaries, err := impl.service.ListActiveAuctions(ctx)
	if err != nil {
		_, body := impl.rejection(op, err)
		return openapi.ListActiveAuctions503JSONResponse{UnavailableJSONResponse: openapi.UnavailableJSONResponse(body)}, nil
	}
	return openapi.ListActiveAuctions200JSONResponse(lo.Map(summaries, toAuctionListItem)), nil
}

// Create an auction
// (POST /auctions)
func (impl *ServerImpl) CreateAuction(ctx context.Context, request openapi.CreateAuctionRequestObject) (openapi.CreateAuctionResponseObject, error) {
	const op = "CreateAuction"
	// 檢查使用者是否有權限新增拍賣
	seller, err := impl.authenticateWriter(ctx, request.Params.Authorization, request.Params.AccessToken)
	if err != nil {
		return createAuctionRejection(impl.rejection(op, err)), nil
	}
	// 檢查必填欄位
	body := request.Body
	if strings.TrimSpace(body.Title) == "" || body.StartingPrice.IsZero() || body.EndTime.IsZero() {
		return openapi.CreateAuction400JSONResponse{
			BadRequestJSONResponse: openapi.BadRequestJSONResponse(
				errorBody("Title, starting price, and end time are required", string(auction.KindValidation)),
			),
		}, nil
	}

	created, err := impl.service.CreateAuction(ctx, seller, auction.CreateAuctionInput{
		Title:         body.Title,
		Description:   body.Description,
		StartingPrice: body.StartingPrice,
		EndTime:       body.EndTime,
		ImageURL:      body.ImageUrl,
	})
	if err != nil {
		return createAuctionRejection(impl.rejection(op, err)), nil
	}
	return openapi.CreateAuction201JSONResponse{
		Body: openapi.CreatedAuction{Auction: toAuction(*created)},
		Headers: openapi.CreateAuction201ResponseHeaders{
			Location: fmt.Sprintf("/auctions/%s", created.ID),
		},
	}, nil
}

func createAuctionRejection(status int, body openapi.ErrorResponse) openapi.CreateAuctionResponseObject {
	switch status {
	case http.StatusBadRequest:
		return openapi.CreateAuction400JSONResponse{BadRequestJSONResponse: openapi.BadRequestJSONResponse(body)}
	case http.StatusUnauthorized:
		return openapi.CreateAuction401JSONResponse{UnauthorizedJSONResponse: openapi.UnauthorizedJSONResponse(body)}
	default:
		return openapi.CreateAuction503JSONResponse{UnavailableJSONResponse: openapi.UnavailableJSONResponse(body)}
	}
}

// Get auction details with recent bids
// (GET /auctions/{id})
func (impl *ServerImpl) GetAuction(ctx context.Context, request openapi.GetAuctionRequestObject) (openapi.GetAuctionResponseObject, error) {
	const op = "GetAuction"
	view, err := impl.auctionView(ctx, request.Id)
	if err != nil {
		status, body := impl.rejection(op, err)
		if status == http.StatusNotFound {
			return openapi.GetAuction404JSONResponse{NotFoundJSONResponse: openapi.NotFoundJSONResponse(body)}, nil
		}
		return openapi.GetAuction503JSONResponse{UnavailableJSONResponse: openapi.UnavailableJSONResponse(body)}, nil
	}
	return openapi.GetAuction200JSONResponse(toAuctionDetail(view)), nil
}

func (impl *ServerImpl) auctionView(ctx context.Context, rawID string) (*auction.AuctionView, error) {
	auctionID, err := parseAuctionID(rawID)
	if err != nil {
		return nil, err
	}
	return impl.service.GetAuctionView(ctx, auctionID)
}

// Place a bid
// (POST /auctions/{id}/bid)
func (impl *ServerImpl) PlaceBid(ctx context.Context, request openapi.PlaceBidRequestObject) (openapi.PlaceBidResponseObject, error) {
	const op = "PlaceBid"
	auctionID, err := parseAuctionID(request.Id)
	if err != nil {
		return placeBidRejection(impl.rejection(op, err)), nil
	}
	// 檢查使用者是否可以出價
	bidder, err := impl.authenticateWriter(ctx, request.Params.Authorization, request.Params.AccessToken)
	if err != nil {
		return placeBidRejection(impl.rejection(op, err)), nil
	}

	bid, err := impl.service.PlaceBid(ctx, bidder, auctionID, request.Body.BidAmount)
	if err != nil {
		return placeBidRejection(impl.rejection(op, err)), nil
	}
	return openapi.PlaceBid201JSONResponse(toBid(bid)), nil
}

func placeBidRejection(status int, body openapi.ErrorResponse) openapi.PlaceBidResponseObject {
	switch status {
	case http.StatusBadRequest:
		return openapi.PlaceBid400JSONResponse{BadRequestJSONResponse: openapi.BadRequestJSONResponse(body)}
	case http.StatusUnauthorized:
		return openapi.PlaceBid401JSONResponse{UnauthorizedJSONResponse: openapi.UnauthorizedJSONResponse(body)}
	case http.StatusNotFound:
		return openapi.PlaceBid404JSONResponse{NotFoundJSONResponse: openapi.NotFoundJSONResponse(body)}
	case http.StatusConflict:
		return openapi.PlaceBid409JSONResponse(body)
	case http.StatusUnprocessableEntity:
		return openapi.PlaceBid422JSONResponse(body)
	default:
		return openapi.PlaceBid503JSONResponse{UnavailableJSONResponse: openapi.UnavailableJSONResponse(body)}
	}
}

// Close every expired auction
// (POST /auctions/update-status)
func (impl *ServerImpl) SweepExpiredAuctions(ctx context.Context, request openapi.SweepExpiredAuctionsRequestObject) (openapi.SweepExpiredAuctionsResponseObject, error) {
	const op = "SweepExpiredAuctions"
	closed, err := impl.service.CloseExpiredAuctions(ctx)
	if err != nil {
		_, body := impl.rejection(op, err)
		return openapi.SweepExpiredAuctions503JSONResponse{UnavailableJSONResponse: openapi.UnavailableJSONResponse(body)}, nil
	}
	return openapi.SweepExpiredAuctions200JSONResponse{
		Message:        fmt.Sprintf("Updated %d expired auctions", len(closed)),
		ClosedAuctions: closed,
	}, nil
}

// List a seller's auctions with bid counts
// (GET /users/{id}/auctions)
func (impl *ServerImpl) ListSellerAuctions(ctx context.Context, request openapi.ListSellerAuctionsRequestObject) (openapi.ListSellerAuctionsResponseObject, error) {
	const op = "ListSellerAuctions"
	sellerID, err := uuid.Parse(request.Id)
	if err != nil {
		// 不存在的使用者沒有任何拍賣
		return openapi.ListSellerAuctions200JSONResponse{}, nil
	}
	items, err := impl.service.ListSellerAuctions(ctx, sellerID)
	if err != nil {
		_, body := impl.rejection(op, err)
		return openapi.ListSellerAuctions503JSONResponse{UnavailableJSONResponse: openapi.UnavailableJSONResponse(body)}, nil
	}
	return openapi.ListSellerAuctions200JSONResponse(lo.Map(items, toSellerAuction)), nil
}

// List the caller's own auctions
// (GET /users/me/auctions)
func (impl *ServerImpl) ListMyAuctions(ctx context.Context, request openapi.ListMyAuctionsRequestObject) (openapi.ListMyAuctionsResponseObject, error) {
	const op = "ListMyAuctions"
	// 只讀取資料，不需要建立使用者
	caller, err := impl.authenticate(request.Params.Authorization, request.Params.AccessToken)
	if err != nil {
		_, body := impl.rejection(op, err)
		return openapi.ListMyAuctions401JSONResponse{UnauthorizedJSONResponse: openapi.UnauthorizedJSONResponse(body)}, nil
	}
	items, err := impl.service.ListSellerAuctions(ctx, caller.UserID)
	if err != nil {
		_, body := impl.rejection(op, err)
		return openapi.ListMyAuctions503JSONResponse{UnavailableJSONResponse: openapi.UnavailableJSONResponse(body)}, nil
	}
	return openapi.ListMyAuctions200JSONResponse{Auctions: lo.Map(items, toSellerAuction)}, nil
}

// Report database and redis reachability
// (GET /healthz)
func (impl *ServerImpl) Healthz(ctx context.Context, request openapi.HealthzRequestObject) (openapi.HealthzResponseObject, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	checks := map[string]string{"database": "ok"}
	healthy := true
	if sqlDB, err := impl.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		checks["database"] = "unavailable"
		healthy = false
	}
	if impl.redisClient != nil {
		checks["redis"] = "ok"
		if err := impl.redisClient.Ping(ctx).Err(); err != nil {
			checks["redis"] = "unavailable"
			healthy = false
		}
	}

	if !healthy {
		return openapi.Healthz503JSONResponse{Status: "unavailable", Checks: checks}, nil
	}
	return openapi.Healthz200JSONResponse{Status: "ok", Checks: checks}, nil
}

// parseAuctionID 格式錯誤的 id 視為不存在的拍賣
func parseAuctionID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &auction.Error{
			Kind:    auction.KindNotFound,
			Reason:  auction.ReasonAuctionNotFound,
			Message: "auction not found",
		}
	}
	return id, nil
}

var _ openapi.StrictServerInterface = (*ServerImpl)(nil)
