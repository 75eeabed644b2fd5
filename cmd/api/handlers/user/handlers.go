package handlers

import (
	"context"
	"time"

	"MyTube.com/cmd/api/pack"
	"MyTube.com/cmd/model"
	usersvc "MyTube.com/cmd/user/service"
	"MyTube.com/pkg/errno"
	myjwt "MyTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

const (
	loginUserKey = "login_user"
	authErrorKey = "auth_error"
)

// LoginResult 登录与刷新 token 的返回
type LoginResult struct {
	User        *model.User `json:"user,omitempty"`
	AccessToken string      `json:"accessToken"`
	Expire      time.Time   `json:"expire"`
}

// Authenticator 供 jwt 中间件的 LoginHandler 使用
func Authenticator(ctx context.Context, c *app.RequestContext) (interface{}, error) {
	var req usersvc.LoginRequest
	if err := c.BindAndValidate(&req); err != nil {
		c.Set(authErrorKey, errno.ParamErr.WithMessage(err.Error()))
		return nil, err
	}
	user, err := usersvc.NewLoginService(ctx).Login(&req)
	if err != nil {
		c.Set(authErrorKey, err)
		return nil, err
	}
	c.Set(loginUserKey, user)
	return &myjwt.Identity{UserID: user.ID}, nil
}

// Unauthorized 保留登录失败的原始错误码，其余按 401 返回
func Unauthorized(ctx context.Context, c *app.RequestContext, code int, message string) {
	if v, ok := c.Get(authErrorKey); ok {
		if err, ok := v.(error); ok {
			pack.SendResponse(c, err, nil)
			return
		}
	}
	pack.SendResponse(c, errno.AuthorizationFailedErr.WithMessage(message), nil)
}

func LoginResponse(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
	var user *model.User
	if v, ok := c.Get(loginUserKey); ok {
		user, _ = v.(*model.User)
	}
	pack.SendResponse(c, errno.Success.WithMessage("User logged in successfully"),
		LoginResult{User: user, AccessToken: token, Expire: expire})
}

func RefreshResponse(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
	pack.SendResponse(c, errno.Success.WithMessage("Access token refreshed"),
		LoginResult{AccessToken: token, Expire: expire})
}

func Register(ctx context.Context, c *app.RequestContext) {
	var req usersvc.RegisterRequest
	if err := c.BindAndValidate(&req); err != nil {
		pack.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	user, err := usersvc.NewRegisterService(ctx).Register(&req)
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Created.WithMessage("User registered successfully"), user)
}

func CurrentUser(ctx context.Context, c *app.RequestContext) {
	user, err := usersvc.NewGetUserInfoService(ctx).GetUserInfo(pack.UserID(c))
	if err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("Current user fetched successfully"), user)
}
