package service

import (
	"context"

	"MyTube.com/cmd/model"
	"MyTube.com/cmd/video/dal/db"
	"MyTube.com/pkg/oss"
)

type DeleteVideoService struct {
	ctx   context.Context
	media oss.MediaStore
}

func NewDeleteVideoService(ctx context.Context, media oss.MediaStore) *DeleteVideoService {
	return &DeleteVideoService{ctx: ctx, media: media}
}

// Delete 删除记录后清理视频文件和封面
func (s *DeleteVideoService) Delete(videoID, ownerID string) (*model.Video, error) {
	if err := checkVideoID(videoID); err != nil {
		return nil, err
	}
	video, err := db.DeleteVideo(s.ctx, videoID, ownerID)
	if err != nil {
		return nil, err
	}
	cleanup(s.ctx, s.media, video.VideoFile, video.Thumbnail)
	return video, nil
}

type TogglePublishService struct {
	ctx context.Context
}

func NewTogglePublishService(ctx context.Context) *TogglePublishService {
	return &TogglePublishService{ctx: ctx}
}

func (s *TogglePublishService) TogglePublish(videoID, ownerID string) (*model.Video, error) {
	if err := checkVideoID(videoID); err != nil {
		return nil, err
	}
	return db.TogglePublish(s.ctx, videoID, ownerID)
}
