package service

import (
	"context"
	"fmt"
	"time"

	"MyTube.com/cmd/user/dal/db"
	"MyTube.com/pkg/constants"
	"MyTube.com/pkg/errno"
	"MyTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type SendOtpRequest struct {
	Email string `json:"email" form:"email"`
}

type SendOtpService struct {
	ctx      context.Context
	notifier Notifier
	limiter  Limiter
}

func NewSendOtpService(ctx context.Context, notifier Notifier, limiter Limiter) *SendOtpService {
	return &SendOtpService{ctx: ctx, notifier: notifier, limiter: limiter}
}

// SendOtp 生成验证码写入用户记录并发送邮件
func (s *SendOtpService) SendOtp(req *SendOtpRequest) error {
	email, err := NormalizeEmail(req.Email)
	if err != nil {
		return err
	}

	user, err := db.GetUserByEmail(s.ctx, email)
	switch {
	case err == nil && user.Registered():
		return errno.ConflictErr.WithMessage("Email is already registered")
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return errors.WithMessage(err, "dao.GetUserByEmail failed")
	}

	if s.limiter != nil {
		res, err := s.limiter.Allow(s.ctx, email)
		if err != nil {
			// redis 不可用时不阻塞注册流程
			hlog.CtxWarnf(s.ctx, "otp limiter unavailable: %v", err)
		} else if !res.Allowed {
			return errno.TooManyRequestsErr.WithMessage(
				fmt.Sprintf("Too many OTP requests, retry after %d seconds", int(res.RetryAfter.Seconds())+1))
		}
	}

	otp, err := utils.GenerateOTP(constants.OTPDigits)
	if err != nil {
		return errors.WithMessage(err, "generate otp failed")
	}
	if err = db.SaveOTP(s.ctx, email, otp, time.Now().Add(constants.OTPTTL)); err != nil {
		return err
	}

	body := fmt.Sprintf("Your MyTube verification code is %s. It expires in %d minutes.", otp, int(constants.OTPTTL.Minutes()))
	if err = s.notifier.Notify(s.ctx, email, "MyTube verification code", body); err != nil {
		hlog.CtxErrorf(s.ctx, "send otp to %s failed: %v", email, err)
		return errno.ServiceErr.WithMessage("Failed to send OTP")
	}
	return nil
}
