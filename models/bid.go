package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bid 代表拍賣的出價紀錄
// 出價紀錄只會新增，不會修改或刪除；依 created_at 倒序排列即為稽核軌跡
type Bid struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;<-:create"`
	AuctionID uuid.UUID       `gorm:"type:uuid;not null;index;<-:create"`
	BidderID  uuid.UUID       `gorm:"type:uuid;not null;index;<-:create"`
	BidAmount decimal.Decimal `gorm:"type:numeric(10,2);not null;<-:create"`
	CreatedAt time.Time       `gorm:"<-:create"`

	// 外鍵關聯
	Bidder *User `gorm:"foreignKey:BidderID;constraint:OnDelete:CASCADE"`
}

func (b *Bid) BeforeCreate(tx *gorm.DB) error {
	return assignID(&b.ID)
}
