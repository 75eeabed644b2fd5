package handlers

import (
	"context"

	"MyTube.com/cmd/api/pack"
	"MyTube.com/cmd/interaction/service"
	"MyTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

func ListComment(ctx context.Context, c *app.RequestContext) {
	p, ok := bindPage(c)
	if !ok {
		return
	}
	page, err := service.NewCommentService(ctx).ListComments(c.Param("videoId"), p.Page, p.Limit)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Comments fetched successfully"), page)
}

func AddComment(ctx context.Context, c *app.RequestContext) {
	p, ok := bindComment(c)
	if !ok {
		return
	}
	comment, err := service.NewCommentService(ctx).AddComment(c.Param("videoId"), pack.UserID(c), p.Content)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Comment added successfully"), comment)
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	p, ok := bindComment(c)
	if !ok {
		return
	}
	comment, err := service.NewCommentService(ctx).UpdateComment(c.Param("commentId"), pack.UserID(c), p.Content)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Comment updated successfully"), comment)
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	if err := service.NewCommentService(ctx).DeleteComment(c.Param("commentId"), pack.UserID(c)); err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Comment deleted successfully"), nil)
}
