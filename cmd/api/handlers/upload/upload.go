package handlers

import (
	"context"

	"MyTube.com/cmd/api/infras"
	"MyTube.com/cmd/api/pack"
	"MyTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

type SignatureParam struct {
	Type     string `query:"type"`
	Filename string `query:"filename"`
}

// Signature 返回客户端直传媒体存储所需的预签名地址，type 只能是 video 或 image
func Signature(ctx context.Context, c *app.RequestContext) {
	var p SignatureParam
	if err := c.BindAndValidate(&p); err != nil {
		pack.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	if p.Type != "video" && p.Type != "image" {
		pack.SendResponse(c, errno.ParamErr.WithMessage("Invalid upload type. Must be 'video' or 'image'."), nil)
		return
	}
	ticket, err := infras.Media.PresignUpload(ctx, p.Type, pack.UserID(c), p.Filename)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Upload signature generated"), ticket)
}
