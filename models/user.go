package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User 代表拍賣系統中的使用者
// 身份由外部的驗證服務提供，這裡只保存識別用的 email；密碼雜湊對核心邏輯來說是不透明的資料
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;<-:create"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash *string   `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	return assignID(&u.ID)
}

// assignID 在 ID 尚未指定時產生 UUIDv7，讓主鍵依建立時間排序
func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}
	v7, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = v7
	return nil
}
