package db

import (
	"context"

	"MyTube.com/cmd/model"
	"MyTube.com/pkg/constants"
	"MyTube.com/pkg/database"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const commentWhat = "Comment"

// VideoExists 按主键检查视频
func VideoExists(ctx context.Context, videoID string) (bool, error) {
	return database.Exists(DB, constants.VideoTableName, videoID)(ctx)
}

// ListComments 按创建时间倒序返回某视频的评论及作者
func ListComments(ctx context.Context, videoID string, page, limit int) (*database.Page[model.CommentItem], error) {
	p := database.From(constants.CommentTableName).
		Match("comments.video_id = ?", videoID).
		Lookup(constants.UserTableName, "owner", "comments.owner_id").
		Project("comments.id", "comments.content", "comments.created_at").
		Project(model.OwnerColumns("owner", "comments.owner_id")...)
	return database.Paginate[model.CommentItem](ctx, DB, p, database.PageOptions{
		Page:   page,
		Limit:  limit,
		Labels: database.Labels{Docs: "comments", TotalDocs: "totalComments"},
	})
}

func CreateComment(ctx context.Context, c *model.Comment) error {
	return errors.Wrap(DB.WithContext(ctx).Create(c).Error, "create comment")
}

func UpdateComment(ctx context.Context, commentID, ownerID, content string) (*model.Comment, error) {
	if err := database.UpdateOwned(ctx, DB, &model.Comment{}, commentID, ownerID,
		map[string]interface{}{"content": content}, commentWhat); err != nil {
		return nil, err
	}
	var c model.Comment
	if err := database.FindOwned(ctx, DB, &c, commentID, ownerID, commentWhat); err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteComment 同时删除评论上的点赞
func DeleteComment(ctx context.Context, commentID, ownerID string) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := database.DeleteOwned(ctx, tx, &model.Comment{}, commentID, ownerID, commentWhat); err != nil {
			return err
		}
		err := tx.Where("target_kind = ? AND target_id = ?", constants.LikeTargetComment, commentID).Delete(&model.Like{}).Error
		return errors.Wrap(err, "delete comment likes")
	})
}
