package db

import (
	"context"
	"strings"

	"MyTube.com/cmd/model"
	"MyTube.com/pkg/constants"
	"MyTube.com/pkg/database"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const what = "Video"

// ListQuery 视频列表的过滤与排序条件
type ListQuery struct {
	Page   int
	Limit  int
	Query  string
	SortBy string
	Desc   bool
	UserID string
}

var sortable = map[string]string{
	"createdAt": constants.VideoTableName + ".created_at",
	"updatedAt": constants.VideoTableName + ".updated_at",
	"views":     constants.VideoTableName + ".views",
	"title":     constants.VideoTableName + ".title",
	"duration":  constants.VideoTableName + ".duration",
}

var videoColumns = []string{
	"videos.id", "videos.title", "videos.description",
	"videos.video_file_url", "videos.video_file_public_id",
	"videos.thumbnail_url", "videos.thumbnail_public_id",
	"videos.duration", "videos.views", "videos.is_published",
	"videos.created_at", "videos.updated_at",
}

func videoPipeline() *database.Pipeline {
	return database.From(constants.VideoTableName).
		Lookup(constants.UserTableName, "owner", "videos.owner_id").
		Project(videoColumns...).
		Project(model.OwnerColumns("owner", "videos.owner_id")...).
		Sortable(sortable)
}

// ListVideos 只返回已发布的视频
func ListVideos(ctx context.Context, q ListQuery) (*database.Page[model.VideoItem], error) {
	p := videoPipeline().Match("videos.is_published = ?", true)
	if q.UserID != "" {
		p.Match("videos.owner_id = ?", q.UserID)
	}
	if kw := strings.TrimSpace(q.Query); kw != "" {
		p.Match("LOWER(videos.title) LIKE ?", "%"+strings.ToLower(kw)+"%")
	}
	p.Sort(q.SortBy, q.Desc)
	return database.Paginate[model.VideoItem](ctx, DB, p, database.PageOptions{
		Page:   q.Page,
		Limit:  q.Limit,
		Labels: database.Labels{Docs: "videos", TotalDocs: "totalVideos"},
	})
}

// GetVideoItem 读取带作者信息的视频，不存在时返回 gorm.ErrRecordNotFound
func GetVideoItem(ctx context.Context, videoID string) (*model.VideoItem, error) {
	return database.One[model.VideoItem](ctx, DB, videoPipeline().Match("videos.id = ?", videoID))
}

func GetVideo(ctx context.Context, videoID string) (*model.Video, error) {
	var v model.Video
	if err := DB.WithContext(ctx).Where("id = ?", videoID).Take(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func CreateVideo(ctx context.Context, v *model.Video) error {
	return errors.Wrap(DB.WithContext(ctx).Create(v).Error, "create video")
}

// IncrementViews 返回是否找到该视频
func IncrementViews(ctx context.Context, videoID string) (bool, error) {
	res := DB.WithContext(ctx).Model(&model.Video{}).Where("id = ?", videoID).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return false, errors.Wrapf(res.Error, "increment views of %s", videoID)
	}
	return res.RowsAffected > 0, nil
}

func GetOwnedVideo(ctx context.Context, videoID, ownerID string) (*model.Video, error) {
	var v model.Video
	if err := database.FindOwned(ctx, DB, &v, videoID, ownerID, what); err != nil {
		return nil, err
	}
	return &v, nil
}

func UpdateVideo(ctx context.Context, videoID, ownerID string, updates map[string]interface{}) error {
	return database.UpdateOwned(ctx, DB, &model.Video{}, videoID, ownerID, updates, what)
}

// TogglePublish 翻转发布状态
func TogglePublish(ctx context.Context, videoID, ownerID string) (*model.Video, error) {
	err := UpdateVideo(ctx, videoID, ownerID, map[string]interface{}{"is_published": gorm.Expr("NOT is_published")})
	if err != nil {
		return nil, err
	}
	return GetOwnedVideo(ctx, videoID, ownerID)
}

// DeleteVideo 在一个事务中删除视频及其评论、点赞和收藏记录，返回被删除的视频用于清理媒体
func DeleteVideo(ctx context.Context, videoID, ownerID string) (*model.Video, error) {
	var v model.Video
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := database.FindOwned(ctx, tx, &v, videoID, ownerID, what); err != nil {
			return err
		}
		commentIDs := tx.Model(&model.Comment{}).Select("id").Where("video_id = ?", videoID)
		if err := tx.Where("target_kind = ? AND target_id IN (?)", constants.LikeTargetComment, commentIDs).
			Delete(&model.Like{}).Error; err != nil {
			return errors.Wrap(err, "delete comment likes")
		}
		if err := tx.Where("target_kind = ? AND target_id = ?", constants.LikeTargetVideo, videoID).
			Delete(&model.Like{}).Error; err != nil {
			return errors.Wrap(err, "delete video likes")
		}
		if err := tx.Where("video_id = ?", videoID).Delete(&model.Comment{}).Error; err != nil {
			return errors.Wrap(err, "delete comments")
		}
		if err := tx.Where("video_id = ?", videoID).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return errors.Wrap(err, "delete playlist entries")
		}
		return database.DeleteOwned(ctx, tx, &model.Video{}, videoID, ownerID, what)
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// VideoStats 统计播放量、点赞数和评论数
func VideoStats(ctx context.Context, videoID string) (map[string]int64, error) {
	return database.Stats(ctx, database.Exists(DB, constants.VideoTableName, videoID), what,
		database.Counter{Name: "views", Count: database.Sum(DB, constants.VideoTableName, "views", "id = ?", videoID)},
		database.Counter{Name: "likes", Count: database.Count(DB, constants.LikeTableName,
			"target_kind = ? AND target_id = ?", constants.LikeTargetVideo, videoID)},
		database.Counter{Name: "comments", Count: database.Count(DB, constants.CommentTableName, "video_id = ?", videoID)},
	)
}
