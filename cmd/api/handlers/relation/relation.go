package handlers

import (
	"context"

	"MyTube.com/cmd/api/pack"
	"MyTube.com/cmd/relation/service"
	"MyTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

type PageParam struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	res, err := service.NewRelationService(ctx).ToggleSubscription(pack.UserID(c), c.Param("channelId"))
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	msg := "Unsubscribed successfully"
	if res.Subscribed {
		msg = "Subscribed successfully"
	}
	pack.SendResponse(c, errno.Success.WithMessage(msg), res)
}

func ChannelSubscribers(ctx context.Context, c *app.RequestContext) {
	var p PageParam
	if err := c.BindAndValidate(&p); err != nil {
		pack.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	page, err := service.NewRelationService(ctx).ChannelSubscribers(c.Param("channelId"), p.Page, p.Limit)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Subscribers fetched successfully"), page)
}

func SubscribedChannels(ctx context.Context, c *app.RequestContext) {
	var p PageParam
	if err := c.BindAndValidate(&p); err != nil {
		pack.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	page, err := service.NewRelationService(ctx).SubscribedChannels(c.Param("subscriberId"), p.Page, p.Limit)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Subscribed channels fetched successfully"), page)
}
