package handlers

import (
	"context"

	"MyTube.com/cmd/api/infras"
	"MyTube.com/cmd/api/pack"
	"MyTube.com/cmd/tweet/service"
	"MyTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

type PageParam struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

func bindTweet(c *app.RequestContext) (*service.TweetRequest, bool) {
	var req service.TweetRequest
	if err := c.BindAndValidate(&req); err != nil {
		pack.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return nil, false
	}
	if f, err := c.FormFile("image"); err == nil {
		req.ImageUpload = f
	}
	return &req, true
}

func CreateTweet(ctx context.Context, c *app.RequestContext) {
	req, ok := bindTweet(c)
	if !ok {
		return
	}
	tweet, err := service.NewTweetService(ctx, infras.Media).CreateTweet(pack.UserID(c), req)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Created.WithMessage("Tweet created successfully"), tweet)
}

func ChannelTweets(ctx context.Context, c *app.RequestContext) {
	var p PageParam
	if err := c.BindAndValidate(&p); err != nil {
		pack.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	page, err := service.NewTweetService(ctx, infras.Media).
		ChannelTweets(c.Param("channelId"), pack.UserID(c), p.Page, p.Limit)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Tweets fetched successfully"), page)
}

func UpdateTweet(ctx context.Context, c *app.RequestContext) {
	req, ok := bindTweet(c)
	if !ok {
		return
	}
	tweet, err := service.NewTweetService(ctx, infras.Media).UpdateTweet(c.Param("tweetId"), pack.UserID(c), req)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Tweet updated successfully"), tweet)
}

func DeleteTweet(ctx context.Context, c *app.RequestContext) {
	if err := service.NewTweetService(ctx, infras.Media).DeleteTweet(c.Param("tweetId"), pack.UserID(c)); err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Tweet deleted successfully"), nil)
}
