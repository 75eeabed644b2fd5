package service

import (
	"context"

	"MyTube.com/cmd/model"
	"MyTube.com/cmd/video/dal/db"
	"MyTube.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type VideoInfoService struct {
	ctx context.Context
}

func NewVideoInfoService(ctx context.Context) *VideoInfoService {
	return &VideoInfoService{ctx: ctx}
}

// VideoInfo 返回视频详情并增加一次播放，未发布的视频只有作者可见
func (s *VideoInfoService) VideoInfo(videoID, viewerID string) (*model.VideoItem, error) {
	if err := checkVideoID(videoID); err != nil {
		return nil, err
	}
	notFound := errno.NotFoundErr.WithMessage("Video not found")

	video, err := db.GetVideo(s.ctx, videoID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound
	}
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideo failed")
	}
	if !video.IsPublished && video.OwnerID != viewerID {
		return nil, notFound
	}

	found, err := db.IncrementViews(s.ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, notFound
	}
	item, err := db.GetVideoItem(s.ctx, videoID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound
	}
	return item, err
}

// VideoStats 返回 views/likes/comments
func (s *VideoInfoService) VideoStats(videoID string) (map[string]int64, error) {
	if err := checkVideoID(videoID); err != nil {
		return nil, err
	}
	return db.VideoStats(s.ctx, videoID)
}
