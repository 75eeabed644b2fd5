package db

import (
	"context"

	"MyTube.com/cmd/model"
	"MyTube.com/pkg/constants"
	"MyTube.com/pkg/database"
	"MyTube.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const what = "Playlist"

func duplicateName() error {
	return errno.ConflictErr.WithMessage("Playlist with this name already exists")
}

func CreatePlaylist(ctx context.Context, p *model.Playlist) error {
	err := DB.WithContext(ctx).Create(p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return duplicateName()
	}
	return errors.Wrap(err, "create playlist")
}

func playlistPipeline() *database.Pipeline {
	return database.From(constants.PlaylistTableName).
		Lookup(constants.UserTableName, "owner", "playlists.owner_id").
		Project("playlists.id", "playlists.name", "playlists.description", "playlists.created_at", "playlists.updated_at").
		Project(model.OwnerColumns("owner", "playlists.owner_id")...)
}

// playlistVideos 按加入顺序返回若干收藏夹中仍然存在的视频
func playlistVideos(ctx context.Context, playlistIDs []string) (map[string][]model.VideoRef, error) {
	out := make(map[string][]model.VideoRef, len(playlistIDs))
	if len(playlistIDs) == 0 {
		return out, nil
	}
	p := database.From(constants.PlaylistVideoTableName).
		Lookup(constants.VideoTableName, "video", "playlist_videos.video_id").
		Match("playlist_videos.playlist_id IN ?", playlistIDs).
		Match("video.id IS NOT NULL").
		Project(
			"playlist_videos.playlist_id",
			"playlist_videos.position",
			"video.id AS video_id",
			"video.title AS video_title",
			"video.duration AS video_duration",
			"video.thumbnail_url AS video_thumbnail_url",
			"video.thumbnail_public_id AS video_thumbnail_public_id",
			"video.views AS video_views",
			"video.owner_id AS video_owner_id",
		).
		Sortable(map[string]string{"position": "playlist_videos.position"}).
		Sort("position", false)
	items, err := database.All[model.PlaylistVideoItem](ctx, DB, p)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		out[it.PlaylistID] = append(out[it.PlaylistID], it.Video)
	}
	return out, nil
}

// GetPlaylist 返回收藏夹详情，包含作者和视频
func GetPlaylist(ctx context.Context, playlistID string) (*model.PlaylistDetail, error) {
	detail, err := database.One[model.PlaylistDetail](ctx, DB, playlistPipeline().Match("playlists.id = ?", playlistID))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errno.NotFoundErr.WithMessage("Playlist not found")
	}
	if err != nil {
		return nil, err
	}
	videos, err := playlistVideos(ctx, []string{detail.ID})
	if err != nil {
		return nil, err
	}
	detail.Videos = nonNil(videos[detail.ID])
	return detail, nil
}

// UserPlaylists 返回用户的全部收藏夹
func UserPlaylists(ctx context.Context, userID string) ([]model.PlaylistDetail, error) {
	list, err := database.All[model.PlaylistDetail](ctx, DB, playlistPipeline().Match("playlists.owner_id = ?", userID))
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	videos, err := playlistVideos(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Videos = nonNil(videos[list[i].ID])
	}
	return list, nil
}

func nonNil(v []model.VideoRef) []model.VideoRef {
	if v == nil {
		return []model.VideoRef{}
	}
	return v
}

func UpdatePlaylist(ctx context.Context, playlistID, ownerID string, updates map[string]interface{}) error {
	err := database.UpdateOwned(ctx, DB, &model.Playlist{}, playlistID, ownerID, updates, what)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return duplicateName()
	}
	return err
}

// DeletePlaylist 同时删除收藏夹中的视频记录
func DeletePlaylist(ctx context.Context, playlistID, ownerID string) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := database.DeleteOwned(ctx, tx, &model.Playlist{}, playlistID, ownerID, what); err != nil {
			return err
		}
		err := tx.Where("playlist_id = ?", playlistID).Delete(&model.PlaylistVideo{}).Error
		return errors.Wrap(err, "delete playlist videos")
	})
}

// AddVideo 将视频追加到收藏夹末尾，重复加入返回 Conflict
func AddVideo(ctx context.Context, playlistID, videoID, ownerID string) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.Playlist
		if err := database.FindOwned(ctx, tx, &p, playlistID, ownerID, what); err != nil {
			return err
		}
		var n int64
		if err := tx.Model(&model.Video{}).Where("id = ?", videoID).Count(&n).Error; err != nil {
			return errors.Wrap(err, "check video")
		}
		if n == 0 {
			return errno.NotFoundErr.WithMessage("Video not found")
		}
		var last int64
		if err := tx.Model(&model.PlaylistVideo{}).Select("COALESCE(MAX(position), 0)").
			Where("playlist_id = ?", playlistID).Row().Scan(&last); err != nil {
			return errors.Wrap(err, "load playlist position")
		}
		err := tx.Create(&model.PlaylistVideo{PlaylistID: playlistID, VideoID: videoID, Position: last + 1}).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errno.ConflictErr.WithMessage("Video already exists in playlist")
		}
		return errors.Wrap(err, "add playlist video")
	})
}

func RemoveVideo(ctx context.Context, playlistID, videoID, ownerID string) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.Playlist
		if err := database.FindOwned(ctx, tx, &p, playlistID, ownerID, what); err != nil {
			return err
		}
		res := tx.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).Delete(&model.PlaylistVideo{})
		if res.Error != nil {
			return errors.Wrap(res.Error, "remove playlist video")
		}
		if res.RowsAffected == 0 {
			return errno.NotFoundErr.WithMessage("Video not found in playlist")
		}
		return nil
	})
}
