package model

import "MyTube.com/pkg/constants"

type Comment struct {
	Base
	Content string `gorm:"type:text;not null" json:"content"`
	VideoID string `gorm:"size:36;not null;index" json:"video"`
	OwnerID string `gorm:"size:36;not null;index" json:"owner"`
}

func (Comment) TableName() string {
	return constants.CommentTableName
}

// Like 指向 video/comment/tweet 中恰好一个目标
type Like struct {
	Base
	TargetKind string `gorm:"size:16;not null;uniqueIndex:idx_likes_actor_target,priority:2;index:idx_likes_target,priority:1" json:"targetKind"`
	TargetID   string `gorm:"size:36;not null;uniqueIndex:idx_likes_actor_target,priority:3;index:idx_likes_target,priority:2" json:"targetId"`
	LikedBy    string `gorm:"size:36;not null;uniqueIndex:idx_likes_actor_target,priority:1" json:"likedBy"`
}

func (Like) TableName() string {
	return constants.LikeTableName
}
