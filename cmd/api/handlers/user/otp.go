package handlers

import (
	"context"

	"MyTube.com/cmd/api/infras"
	"MyTube.com/cmd/api/pack"
	usersvc "MyTube.com/cmd/user/service"
	"MyTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func SendOtp(ctx context.Context, c *app.RequestContext) {
	var req usersvc.SendOtpRequest
	if err := c.BindAndValidate(&req); err != nil {
		pack.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	if err := usersvc.NewSendOtpService(ctx, infras.Notifier, infras.OtpLimiter).SendOtp(&req); err != nil {
		hlog.CtxInfof(ctx, "send otp to %s: %v", req.Email, err)
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("OTP sent successfully"), nil)
}

func VerifyOtp(ctx context.Context, c *app.RequestContext) {
	var req usersvc.VerifyOtpRequest
	if err := c.BindAndValidate(&req); err != nil {
		pack.SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}
	if err := usersvc.NewVerifyOtpService(ctx).VerifyOtp(&req); err != nil {
		pack.SendResponse(c, err, nil)
		return
	}
	pack.SendResponse(c, errno.Success.WithMessage("OTP verified successfully"), nil)
}
