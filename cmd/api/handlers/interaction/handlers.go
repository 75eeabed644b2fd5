package handlers

import (
	"MyTube.com/cmd/api/pack"
	"MyTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

type PageParam struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

type CommentParam struct {
	Content string `json:"content" form:"content"`
}

func bindPage(c *app.RequestContext) (PageParam, bool) {
	var p PageParam
	if err := c.BindAndValidate(&p); err != nil {
		pack.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return p, false
	}
	return p, true
}

func bindComment(c *app.RequestContext) (CommentParam, bool) {
	var p CommentParam
	if err := c.BindAndValidate(&p); err != nil {
		pack.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return p, false
	}
	return p, true
}
