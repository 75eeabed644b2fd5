package model

import "time"

// 以下类型是列表/详情查询的投影结果，字段与查询中的列别名一一对应

// OwnerSummary 连接 users 表后得到的作者信息
type OwnerSummary struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	FullName string `json:"fullName,omitempty"`
	Avatar   string `json:"avatar"`
}

// OwnerColumns 返回 OwnerSummary 对应的投影列，as 为 users 表别名，localField 为引用作者的列
func OwnerColumns(as, localField string) []string {
	return []string{
		localField + " AS owner_id",
		"COALESCE(" + as + ".username, '') AS owner_username",
		"COALESCE(" + as + ".full_name, '') AS owner_full_name",
		"COALESCE(" + as + ".avatar_url, '') AS owner_avatar",
	}
}

type VideoItem struct {
	ID          string       `json:"_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	VideoFile   MediaRef     `gorm:"embedded;embeddedPrefix:video_file_" json:"videoFile"`
	Thumbnail   MediaRef     `gorm:"embedded;embeddedPrefix:thumbnail_" json:"thumbnail"`
	Duration    float64      `json:"duration"`
	Views       int64        `json:"views"`
	IsPublished bool         `json:"isPublished"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Owner       OwnerSummary `gorm:"embedded;embeddedPrefix:owner_" json:"owner"`
}

// ChannelVideoItem 频道后台的视频列表，包含未发布的视频
type ChannelVideoItem struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Thumbnail   MediaRef  `gorm:"embedded;embeddedPrefix:thumbnail_" json:"thumbnail"`
	Views       int64     `json:"views"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CommentItem struct {
	ID        string       `json:"_id"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"createdAt"`
	Owner     OwnerSummary `gorm:"embedded;embeddedPrefix:owner_" json:"owner"`
}

type TweetItem struct {
	ID            string    `json:"_id"`
	Content       string    `json:"content"`
	Image         MediaRef  `gorm:"embedded;embeddedPrefix:image_" json:"image"`
	OwnerID       string    `json:"owner"`
	LikesCount    int64     `json:"likesCount"`
	IsLikedByUser bool      `json:"isLikedByUser"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// LikedVideoItem 用户点赞过的视频
type LikedVideoItem struct {
	ID      string    `json:"_id"`
	LikedAt time.Time `json:"likedAt"`
	Video   VideoRef  `gorm:"embedded;embeddedPrefix:video_" json:"video"`
}

// VideoRef 嵌套在其他结果中的视频摘要
type VideoRef struct {
	ID        string   `json:"_id"`
	Title     string   `json:"title"`
	Duration  float64  `json:"duration"`
	Thumbnail MediaRef `gorm:"embedded;embeddedPrefix:thumbnail_" json:"thumbnail"`
	Views     int64    `json:"views"`
	OwnerID   string   `json:"owner"`
}

// UserRef 订阅列表中另一端的用户
type UserRef struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

type SubscriptionItem struct {
	ID        string    `json:"_id"`
	CreatedAt time.Time `json:"createdAt"`
	User      UserRef   `gorm:"embedded;embeddedPrefix:user_" json:"user"`
}

// PlaylistVideoItem 收藏夹中的视频，按加入顺序排列
type PlaylistVideoItem struct {
	PlaylistID string   `json:"-"`
	Position   int64    `json:"-"`
	Video      VideoRef `gorm:"embedded;embeddedPrefix:video_" json:"video"`
}

type PlaylistDetail struct {
	ID          string       `json:"_id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Owner       OwnerSummary `gorm:"embedded;embeddedPrefix:owner_" json:"owner"`
	Videos      []VideoRef   `gorm:"-" json:"videos"`
}
