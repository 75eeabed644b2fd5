package model

import "MyTube.com/pkg/constants"

type Tweet struct {
	Base
	Content string   `gorm:"type:text;not null" json:"content"`
	Image   MediaRef `gorm:"embedded;embeddedPrefix:image_" json:"image"`
	OwnerID string   `gorm:"size:36;not null;index" json:"owner"`
}

func (Tweet) TableName() string {
	return constants.TweetTableName
}
