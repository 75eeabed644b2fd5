package handlers

import (
	"context"

	"MyTube.com/cmd/api/pack"
	"MyTube.com/cmd/dashboard/service"
	"MyTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

type PageParam struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

func ChannelStats(ctx context.Context, c *app.RequestContext) {
	stats, err := service.NewDashboardService(ctx).ChannelStats(c.Param("channelId"))
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Channel stats fetched successfully"), stats)
}

func ChannelVideos(ctx context.Context, c *app.RequestContext) {
	var p PageParam
	if err := c.BindAndValidate(&p); err != nil {
		pack.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	page, err := service.NewDashboardService(ctx).ChannelVideos(c.Param("channelId"), pack.UserID(c), p.Page, p.Limit)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Channel videos fetched successfully"), page)
}
