package model

import "MyTube.com/pkg/constants"

type Video struct {
	Base
	Title       string   `gorm:"size:255;not null" json:"title"`
	Description string   `gorm:"type:text" json:"description"`
	VideoFile   MediaRef `gorm:"embedded;embeddedPrefix:video_file_" json:"videoFile"`
	Thumbnail   MediaRef `gorm:"embedded;embeddedPrefix:thumbnail_" json:"thumbnail"`
	Duration    float64  `gorm:"not null" json:"duration"`
	Views       int64    `gorm:"not null;default:0" json:"views"`
	IsPublished bool     `gorm:"not null;index" json:"isPublished"`
	OwnerID     string   `gorm:"size:36;not null;index" json:"owner"`
}

func (Video) TableName() string {
	return constants.VideoTableName
}
