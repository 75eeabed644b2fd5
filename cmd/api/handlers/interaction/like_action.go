package handlers

import (
	"context"

	"MyTube.com/cmd/api/pack"
	"MyTube.com/cmd/interaction/service"
	"MyTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// ToggleLike 返回切换点赞 kind 目标的处理函数，路由参数为 id
func ToggleLike(kind string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		res, err := service.NewLikeService(ctx).ToggleLike(kind, c.Param("id"), pack.UserID(c))
		if err != nil {
			pack.SendResponse(c, err, nil)
			return
		}
		msg := "Like removed successfully"
		if res.Liked {
			msg = "Liked successfully"
		}
		pack.SendResponse(c, errno.Success.WithMessage(msg), res)
	}
}

func LikedVideos(ctx context.Context, c *app.RequestContext) {
	p, ok := bindPage(c)
	if !ok {
		return
	}
	page, err := service.NewLikeService(ctx).LikedVideos(pack.UserID(c), p.Page, p.Limit)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Liked videos fetched successfully"), page)
}
