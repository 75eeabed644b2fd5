package constants

import "time"

const (
	UserTableName          = "users"
	VideoTableName         = "videos"
	CommentTableName       = "comments"
	LikeTableName          = "likes"
	SubscriptionTableName  = "subscriptions"
	TweetTableName         = "tweets"
	PlaylistTableName      = "playlists"
	PlaylistVideoTableName = "playlist_videos"

	DataFormate = "2006-01-02 15:04:05"

	IdentityKey = "user_id"

	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	// MaxPage 超过后按最后可表示的页处理，保证偏移量不溢出
	MaxPage = 1 << 20

	OTPDigits = 4
	OTPTTL    = 5 * time.Minute
	// MaxOTPAttempts 连续输错后作废当前验证码
	MaxOTPAttempts = 5

	// object key prefixes for uploaded media
	VideoFolder = "mytube/videos"
	ImageFolder = "mytube/thumbnails"
)

// Like target kinds.
const (
	LikeTargetVideo   = "video"
	LikeTargetComment = "comment"
	LikeTargetTweet   = "tweet"
)
