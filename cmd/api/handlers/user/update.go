package handlers

import (
	"context"

	"MyTube.com/cmd/api/infras"
	"MyTube.com/cmd/api/pack"
	usersvc "MyTube.com/cmd/user/service"
	"MyTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// UpdateAvatar 表单字段 avatar
func UpdateAvatar(ctx context.Context, c *app.RequestContext) {
	file, err := c.FormFile("avatar")
	if err != nil {
		pack.SendResponse(c, errno.ParamErr.WithMessage("Avatar file is missing"), nil)
		return
	}
	user, err := usersvc.NewUpdateAvatarService(ctx, infras.Media).UpdateAvatar(pack.UserID(c), file)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Avatar updated successfully"), user)
}
