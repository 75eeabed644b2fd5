package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base 所有实体共有的主键与时间戳
type Base struct {
	ID        string    `gorm:"primaryKey;size:36" json:"_id"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// MediaRef 指向媒体存储中的一个对象
type MediaRef struct {
	URL      string `gorm:"size:512" json:"url"`
	PublicID string `gorm:"size:255" json:"publicId"`
}

func (m MediaRef) IsZero() bool {
	return m.URL == "" && m.PublicID == ""
}
