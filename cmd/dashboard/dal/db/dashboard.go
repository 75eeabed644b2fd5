package db

import (
	"context"

	"MyTube.com/cmd/model"
	"MyTube.com/pkg/constants"
	"MyTube.com/pkg/database"
)

func ChannelExists(ctx context.Context, channelID string) (bool, error) {
	return database.Exists(DB, constants.UserTableName, channelID)(ctx)
}

// ChannelStats 频道的总播放量、订阅数、视频数和视频获得的点赞数
func ChannelStats(ctx context.Context, channelID string) (map[string]int64, error) {
	return database.Stats(ctx, database.Exists(DB, constants.UserTableName, channelID), "Channel",
		database.Counter{Name: "totalViews", Count: database.Sum(DB, constants.VideoTableName, "views", "owner_id = ?", channelID)},
		database.Counter{Name: "totalSubscribers", Count: database.Count(DB, constants.SubscriptionTableName, "channel_id = ?", channelID)},
		database.Counter{Name: "totalVideos", Count: database.Count(DB, constants.VideoTableName, "owner_id = ?", channelID)},
		database.Counter{Name: "totalLikes", Count: database.JoinCount(DB, constants.LikeTableName,
			"JOIN videos ON videos.id = likes.target_id",
			"likes.target_kind = ? AND videos.owner_id = ?", constants.LikeTargetVideo, channelID)},
	)
}

// ChannelVideos includeDrafts 为 false 时只返回已发布的视频
func ChannelVideos(ctx context.Context, channelID string, includeDrafts bool, page, limit int) (*database.Page[model.ChannelVideoItem], error) {
	p := database.From(constants.VideoTableName).
		Match("videos.owner_id = ?", channelID).
		Project("videos.id", "videos.title", "videos.thumbnail_url", "videos.thumbnail_public_id",
			"videos.views", "videos.is_published", "videos.created_at")
	if !includeDrafts {
		p.Match("videos.is_published = ?", true)
	}
	return database.Paginate[model.ChannelVideoItem](ctx, DB, p, database.PageOptions{
		Page:   page,
		Limit:  limit,
		Labels: database.Labels{Docs: "videos", TotalDocs: "totalVideos"},
	})
}
