package storage

import (
	"time"
)

type GormModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccountRecord is the only place the secret hash lives. Removal is a hard
// delete, so there is no deleted-at column.
type AccountRecord struct {
	GormModel
	Name       string `gorm:"size:64;not null"`
	Email      string `gorm:"size:128;not null;uniqueIndex"` // 唯一邮箱，重复插入由索引兜底
	SecretHash string `gorm:"size:128;not null"`
}

func (AccountRecord) TableName() string {
	return "users"
}
