package auction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bidhouse/models"
)

// 金額欄位為 numeric(10,2)
var maxAmount = decimal.RequireFromString("99999999.99")

// ValidateBid 判斷出價在給定的拍賣快照下是否可以接受，回傳 nil 代表接受
//
// 檢查順序:
//   - 1. 拍賣不存在 -> AuctionNotFound
//   - 2. 狀態不是 active 或已過結束時間 -> AuctionNotActive
//     (結束時間一定要用 now 重新判斷，不能只相信可能尚未被掃描更新的狀態欄位)
//   - 3. 賣家對自己的拍賣出價 -> SelfBid
//   - 4. 金額不是正數、超過兩位小數或超過欄位上限 -> InvalidAmount
//   - 5. 金額沒有嚴格大於 max(目前最高出價, 起標價) -> BidTooLow
//
// 沒有最小加價幅度，只要求嚴格大於
func ValidateBid(auction *models.Auction, bidderID uuid.UUID, amount decimal.Decimal, now time.Time) error {
	if auction == nil {
		return ErrAuctionNotFound
	}
	if !auction.IsActive() {
		return stateConflict(ReasonAuctionNotActive, "auction is %s", auction.Status)
	}
	if auction.Expired(now) {
		return stateConflict(ReasonAuctionNotActive, "auction ended at %s", auction.EndTime.UTC().Format(time.RFC3339))
	}
	if bidderID == auction.SellerID {
		return stateConflict(ReasonSelfBid, "cannot bid on your own auction")
	}
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if floor := auction.Floor(); amount.LessThanOrEqual(floor) {
		return stateConflict(ReasonBidTooLow, "bid must be higher than %s", floor.StringFixed(2))
	}
	return nil
}

// ValidateAmount 只檢查金額本身的格式
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return invalid(ReasonInvalidAmount, "amount must be greater than 0")
	}
	if !amount.Equal(amount.Round(2)) {
		return invalid(ReasonInvalidAmount, "amount must have at most 2 decimal places")
	}
	if amount.GreaterThan(maxAmount) {
		return invalid(ReasonInvalidAmount, "amount must not exceed %s", maxAmount.StringFixed(2))
	}
	return nil
}

// MinimumBid 回傳下一筆出價必須嚴格超過的金額
func MinimumBid(auction *models.Auction) decimal.Decimal {
	return auction.Floor()
}
