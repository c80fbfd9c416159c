package auction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bidhouse/models"
)

// Repository 拍賣、出價與使用者的存取介面，不包含任何業務規則
//
// 所有回傳的錯誤都是 *Error:
//   - 找不到資料 -> KindNotFound
//   - 併發衝突(序列化失敗、死結) -> KindConflict
//   - 其他 -> KindStoreUnavailable
type Repository interface {
	// Transaction 在同一個交易中執行 fn，fn 回傳錯誤時整個交易回滾
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	// EnsureUser 使用者不存在時建立，已存在時不做任何事
	EnsureUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)

	CreateAuction(ctx context.Context, auction *models.Auction) error
	GetAuction(ctx context.Context, id uuid.UUID) (*models.Auction, error)
	// GetAuctionDetail 同 GetAuction，並載入賣家與最高出價者
	GetAuctionDetail(ctx context.Context, id uuid.UUID) (*models.Auction, error)
	// LockAuction 讀取並鎖定拍賣列直到交易結束，只能在 Transaction 中呼叫
	LockAuction(ctx context.Context, id uuid.UUID) (*models.Auction, error)

	InsertBid(ctx context.Context, bid *models.Bid) error
	// AdvanceHighestBid 只有在拍賣仍為 active 且新金額高於目前最高出價時才更新，
	// 回傳 false 代表條件不成立(有其他寫入者搶先)
	AdvanceHighestBid(ctx context.Context, id, bidderID uuid.UUID, amount decimal.Decimal, now time.Time) (bool, error)

	// CloseExpired 關閉所有 active 且 end_time <= now 的拍賣，回傳被關閉的 ID
	CloseExpired(ctx context.Context, now time.Time) ([]uuid.UUID, error)
	// CloseIfExpired 同 CloseExpired，但只處理單一拍賣
	CloseIfExpired(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)

	// RecentBids 依建立時間倒序回傳最多 limit 筆出價，並載入出價者
	RecentBids(ctx context.Context, auctionID uuid.UUID, limit int) ([]models.Bid, error)
	// ListActive 依建立時間倒序回傳所有 active 的拍賣，並載入賣家與最高出價者
	ListActive(ctx context.Context) ([]models.Auction, error)
	// ListBySeller 依建立時間倒序回傳賣家的所有拍賣，並載入最高出價者
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]models.Auction, error)
	// CountBids 回傳每個拍賣的出價數量，沒有出價的拍賣不會出現在結果中
	CountBids(ctx context.Context, auctionIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}
