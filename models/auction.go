package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AuctionStatus 拍賣狀態，只會從 active 單向轉移
type AuctionStatus string

const (
	AuctionStatusActive    AuctionStatus = "active"
	AuctionStatusClosed    AuctionStatus = "closed"
	AuctionStatusCancelled AuctionStatus = "cancelled" // 保留值，目前沒有任何操作會設定
)

// Auction 代表一筆拍賣
// 包含商品資訊、起標價、目前最高出價(快取指標)、結束時間與狀態
//
// CurrentHighestBid 與 CurrentHighestBidderID 必須同時為空或同時有值，
// 且只會在寫入 Bid 的同一個交易內更新
type Auction struct {
	ID                     uuid.UUID           `gorm:"type:uuid;primaryKey;<-:create"`
	SellerID               uuid.UUID           `gorm:"type:uuid;not null;index;<-:create"`
	Title                  string              `gorm:"type:varchar(255);not null;<-:create"`
	Description            *string             `gorm:"type:text;<-:create"`
	ImageURL               *string             `gorm:"type:varchar(500);<-:create"`
	StartingPrice          decimal.Decimal     `gorm:"type:numeric(10,2);not null;<-:create"`
	CurrentHighestBid      decimal.NullDecimal `gorm:"type:numeric(10,2)"`
	CurrentHighestBidderID *uuid.UUID          `gorm:"type:uuid"`
	EndTime                time.Time           `gorm:"not null;index;<-:create"`
	Status                 AuctionStatus       `gorm:"type:varchar(20);not null;default:active;index;check:chk_auctions_status,status IN ('active','closed','cancelled')"`
	CreatedAt              time.Time
	UpdatedAt              time.Time

	// 外鍵關聯
	Seller        *User `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
	HighestBidder *User `gorm:"foreignKey:CurrentHighestBidderID"`
	Bids          []Bid `gorm:"constraint:OnDelete:CASCADE"`
}

func (a *Auction) BeforeCreate(tx *gorm.DB) error {
	return assignID(&a.ID)
}

// IsActive 只看儲存的狀態，是否已過結束時間需要另外以時鐘判斷
func (a *Auction) IsActive() bool {
	return a.Status == AuctionStatusActive
}

// Expired 判斷在 now 這個時間點拍賣是否已經結束
func (a *Auction) Expired(now time.Time) bool {
	return !a.EndTime.After(now)
}

// Floor 回傳下一筆出價必須嚴格超過的金額
func (a *Auction) Floor() decimal.Decimal {
	if a.CurrentHighestBid.Valid && a.CurrentHighestBid.Decimal.GreaterThan(a.StartingPrice) {
		return a.CurrentHighestBid.Decimal
	}
	return a.StartingPrice
}
