package redis

import (
	"time"

	"MyTube.com/pkg/security"
	"github.com/redis/go-redis/v9"
)

const otpSendPrefix = "mytube:otp:send:"

// NewOTPLimiter 按邮箱限制验证码发送次数
func NewOTPLimiter(client redis.UniversalClient, limit int64, window time.Duration) *security.RateLimiter {
	if limit <= 0 {
		limit = 3
	}
	if window <= 0 {
		window = 10 * time.Minute
	}
	return security.NewRateLimiter(client, otpSendPrefix, window, limit)
}
