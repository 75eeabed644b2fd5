package service

import (
	"context"
	"net/mail"
	"strings"

	"MyTube.com/pkg/errno"
	"MyTube.com/pkg/security"
)

// Notifier 发送通知邮件
type Notifier interface {
	Notify(ctx context.Context, to, subject, body string) error
}

// Limiter 验证码发送限流，可以为空
type Limiter interface {
	Allow(ctx context.Context, key string) (*security.RateLimitResult, error)
}

// NormalizeEmail 去除首尾空白并转小写，非法邮箱返回 ParamErr
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", errno.ParamErr.WithMessage("Email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", errno.ParamErr.WithMessage("Invalid email")
	}
	return email, nil
}
