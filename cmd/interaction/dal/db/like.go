package db

import (
	"context"

	"MyTube.com/cmd/model"
	"MyTube.com/pkg/constants"
	"MyTube.com/pkg/database"
	"MyTube.com/pkg/errno"
)

// likeTargets 点赞目标类型到表名与提示名
var likeTargets = map[string]struct {
	table string
	what  string
}{
	constants.LikeTargetVideo:   {constants.VideoTableName, "Video"},
	constants.LikeTargetComment: {constants.CommentTableName, "Comment"},
	constants.LikeTargetTweet:   {constants.TweetTableName, "Tweet"},
}

// ToggleLike 已点赞则取消，否则在目标存在时点赞
func ToggleLike(ctx context.Context, kind, targetID, userID string) (bool, *model.Like, error) {
	target, ok := likeTargets[kind]
	if !ok {
		return false, nil, errno.ParamErr.WithMessage("Invalid like target")
	}
	return database.Toggle(ctx, DB, database.ToggleSpec[model.Like]{
		Actor: userID,
		Match: map[string]interface{}{"liked_by": userID, "target_kind": kind, "target_id": targetID},
		Precheck: func(ctx context.Context) error {
			found, err := database.Exists(DB, target.table, targetID)(ctx)
			if err != nil {
				return err
			}
			if !found {
				return errno.NotFoundErr.WithMessage(target.what + " not found")
			}
			return nil
		},
		New: func() *model.Like {
			return &model.Like{TargetKind: kind, TargetID: targetID, LikedBy: userID}
		},
	})
}

// LikedVideos 用户点赞过且仍然存在的视频，按点赞时间倒序
func LikedVideos(ctx context.Context, userID string, page, limit int) (*database.Page[model.LikedVideoItem], error) {
	p := database.From(constants.LikeTableName).
		Lookup(constants.VideoTableName, "video", "likes.target_id").
		Match("likes.liked_by = ? AND likes.target_kind = ?", userID, constants.LikeTargetVideo).
		Match("video.id IS NOT NULL").
		Project(
			"likes.id",
			"likes.created_at AS liked_at",
			"video.id AS video_id",
			"video.title AS video_title",
			"video.duration AS video_duration",
			"video.thumbnail_url AS video_thumbnail_url",
			"video.thumbnail_public_id AS video_thumbnail_public_id",
			"video.views AS video_views",
			"video.owner_id AS video_owner_id",
		)
	return database.Paginate[model.LikedVideoItem](ctx, DB, p, database.PageOptions{
		Page:   page,
		Limit:  limit,
		Labels: database.Labels{Docs: "likedVideos", TotalDocs: "totalLikedVideos"},
	})
}
