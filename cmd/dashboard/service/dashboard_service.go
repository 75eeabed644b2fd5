package service

import (
	"context"

	"MyTube.com/cmd/dashboard/dal/db"
	"MyTube.com/cmd/model"
	"MyTube.com/pkg/database"
	"MyTube.com/pkg/errno"
	"github.com/pkg/errors"
)

type DashboardService struct {
	ctx context.Context
}

func NewDashboardService(ctx context.Context) *DashboardService {
	return &DashboardService{ctx: ctx}
}

func invalidChannelID() error {
	return errno.ParamErr.WithMessage("Invalid channel id")
}

func (s *DashboardService) ChannelStats(channelID string) (map[string]int64, error) {
	if !database.ValidID(channelID) {
		return nil, invalidChannelID()
	}
	return db.ChannelStats(s.ctx, channelID)
}

// ChannelVideos 频道主本人可以看到未发布的视频
func (s *DashboardService) ChannelVideos(channelID, viewerID string, page, limit int) (*database.Page[model.ChannelVideoItem], error) {
	if !database.ValidID(channelID) {
		return nil, invalidChannelID()
	}
	found, err := db.ChannelExists(s.ctx, channelID)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ChannelExists failed")
	}
	if !found {
		return nil, errno.NotFoundErr.WithMessage("Channel not found")
	}
	return db.ChannelVideos(s.ctx, channelID, channelID == viewerID, page, limit)
}
