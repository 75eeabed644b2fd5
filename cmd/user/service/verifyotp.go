package service

import (
	"context"
	"strings"
	"time"

	"MyTube.com/cmd/user/dal/db"
	"MyTube.com/pkg/constants"
	"MyTube.com/pkg/errno"
	"MyTube.com/pkg/security"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type VerifyOtpRequest struct {
	Email string `json:"email" form:"email"`
	OTP   string `json:"otp" form:"otp"`
}

type VerifyOtpService struct {
	ctx context.Context
}

func NewVerifyOtpService(ctx context.Context) *VerifyOtpService {
	return &VerifyOtpService{ctx: ctx}
}

// VerifyOtp 校验通过后标记邮箱已验证，过期或连续输错的验证码会被清除
func (s *VerifyOtpService) VerifyOtp(req *VerifyOtpRequest) error {
	email, err := NormalizeEmail(req.Email)
	if err != nil {
		return err
	}
	code := strings.TrimSpace(req.OTP)
	if code == "" {
		return errno.ParamErr.WithMessage("OTP is required")
	}

	user, err := db.GetUserByEmail(s.ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errno.ParamErr.WithMessage("No OTP requested for this email")
	}
	if err != nil {
		return errors.WithMessage(err, "dao.GetUserByEmail failed")
	}
	if user.OTP == "" || user.OTPExpiry == nil {
		return errno.ParamErr.WithMessage("No OTP requested for this email")
	}

	if time.Now().After(*user.OTPExpiry) {
		if err = db.ClearOTP(s.ctx, user.ID); err != nil {
			return err
		}
		return errno.ParamErr.WithMessage("OTP expired")
	}
	if !security.SecureCompare(user.OTP, code) {
		cleared, err := db.RecordOTPFailure(s.ctx, user.ID, constants.MaxOTPAttempts)
		if err != nil {
			return err
		}
		if cleared {
			return errno.TooManyRequestsErr.WithMessage("Too many invalid attempts, please request a new OTP")
		}
		return errno.ParamErr.WithMessage("Invalid OTP")
	}
	return db.MarkVerified(s.ctx, user.ID)
}
