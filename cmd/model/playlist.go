package model

import (
	"time"

	"MyTube.com/pkg/constants"
)

type Playlist struct {
	Base
	Name        string `gorm:"size:128;not null;uniqueIndex:idx_playlists_owner_name,priority:2" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	OwnerID     string `gorm:"size:36;not null;uniqueIndex:idx_playlists_owner_name,priority:1" json:"owner"`
}

func (Playlist) TableName() string {
	return constants.PlaylistTableName
}

// PlaylistVideo 收藏夹中的视频，复合主键保证同一视频只出现一次
type PlaylistVideo struct {
	PlaylistID string    `gorm:"primaryKey;size:36" json:"playlist"`
	VideoID    string    `gorm:"primaryKey;size:36" json:"video"`
	Position   int64     `gorm:"not null" json:"position"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (PlaylistVideo) TableName() string {
	return constants.PlaylistVideoTableName
}
