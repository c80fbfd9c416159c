package auction

import (
	"time"

	"github.com/google/uuid"
)

// EventType 拍賣事件類型
type EventType string

const (
	EventBidPlaced     EventType = "bid.placed"
	EventAuctionClosed EventType = "auction.closed"
)

// Event 交易提交後才會發布的拍賣事件
// 發布失敗不影響已提交的結果，下游不能把事件當成唯一的資料來源
type Event struct {
	Type       EventType
	AuctionID  uuid.UUID
	BidID      uuid.UUID // 只有 bid.placed 有值
	BidderID   uuid.UUID // 只有 bid.placed 有值
	Amount     string    // 只有 bid.placed 有值，固定兩位小數
	OccurredAt time.Time
}

// MessageType 讓串流訊息帶上 type 欄位
func (e Event) MessageType() string {
	return string(e.Type)
}
