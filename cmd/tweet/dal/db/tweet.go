package db

import (
	"context"

	"MyTube.com/cmd/model"
	"MyTube.com/pkg/constants"
	"MyTube.com/pkg/database"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const what = "Tweet"

func UserExists(ctx context.Context, userID string) (bool, error) {
	return database.Exists(DB, constants.UserTableName, userID)(ctx)
}

func CreateTweet(ctx context.Context, t *model.Tweet) error {
	return errors.Wrap(DB.WithContext(ctx).Create(t).Error, "create tweet")
}

// ChannelTweets 附带点赞数和 viewerID 是否点赞，viewerID 为空时均为未点赞
func ChannelTweets(ctx context.Context, channelID, viewerID string, page, limit int) (*database.Page[model.TweetItem], error) {
	p := database.From(constants.TweetTableName).
		Match("tweets.owner_id = ?", channelID).
		Project(
			"tweets.id", "tweets.content", "tweets.image_url", "tweets.image_public_id",
			"tweets.owner_id", "tweets.created_at", "tweets.updated_at",
		).
		AddField("(SELECT COUNT(*) FROM likes WHERE likes.target_kind = ? AND likes.target_id = tweets.id) AS likes_count",
			constants.LikeTargetTweet).
		AddField("EXISTS (SELECT 1 FROM likes WHERE likes.target_kind = ? AND likes.target_id = tweets.id AND likes.liked_by = ?) AS is_liked_by_user",
			constants.LikeTargetTweet, viewerID)
	return database.Paginate[model.TweetItem](ctx, DB, p, database.PageOptions{
		Page:   page,
		Limit:  limit,
		Labels: database.Labels{Docs: "tweets", TotalDocs: "totalTweets"},
	})
}

func GetOwnedTweet(ctx context.Context, tweetID, ownerID string) (*model.Tweet, error) {
	var t model.Tweet
	if err := database.FindOwned(ctx, DB, &t, tweetID, ownerID, what); err != nil {
		return nil, err
	}
	return &t, nil
}

func UpdateTweet(ctx context.Context, tweetID, ownerID string, updates map[string]interface{}) error {
	return database.UpdateOwned(ctx, DB, &model.Tweet{}, tweetID, ownerID, updates, what)
}

// DeleteTweet 删除推文及其点赞，返回被删除的推文用于清理图片
func DeleteTweet(ctx context.Context, tweetID, ownerID string) (*model.Tweet, error) {
	var t model.Tweet
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := database.FindOwned(ctx, tx, &t, tweetID, ownerID, what); err != nil {
			return err
		}
		if err := tx.Where("target_kind = ? AND target_id = ?", constants.LikeTargetTweet, tweetID).
			Delete(&model.Like{}).Error; err != nil {
			return errors.Wrap(err, "delete tweet likes")
		}
		return database.DeleteOwned(ctx, tx, &model.Tweet{}, tweetID, ownerID, what)
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}
