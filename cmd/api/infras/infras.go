// Package infras 持有网关使用的外部依赖
package infras

import (
	"context"
	"time"

	userredis "MyTube.com/cmd/user/infras/redis"
	usersvc "MyTube.com/cmd/user/service"
	"MyTube.com/config"
	"MyTube.com/pkg/mq"
	"MyTube.com/pkg/oss"
	"MyTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

var (
	Media      oss.MediaStore
	Notifier   usersvc.Notifier
	OtpLimiter usersvc.Limiter

	closers []func() error
)

// InitMedia 连接 MinIO 并确保 bucket 存在
func InitMedia(ctx context.Context) error {
	c := config.ConfigInfo.Minio
	store, err := oss.InitMinio(ctx, oss.Config{
		Endpoint:      c.Endpoint,
		AccessKey:     c.AccessKey,
		SecretKey:     c.SecretKey,
		Bucket:        c.Bucket,
		UseSSL:        c.UseSSL,
		PublicURL:     c.PublicURL,
		PresignExpiry: config.Duration(c.PresignExpiry, 15*time.Minute),
	})
	if err != nil {
		return errors.WithMessage(err, "init minio")
	}
	Media = store
	return nil
}

// InitNotifier 按 notify.mode 选择发信方式：smtp 直接发送，mq 交给 mailer 消费，其余只写日志
func InitNotifier() error {
	switch mode := config.ConfigInfo.Notify.Mode; mode {
	case "smtp":
		s := config.ConfigInfo.Smtp
		Notifier = utils.NewMailer(utils.SMTPConfig{
			Host:     s.Host,
			Port:     s.Port,
			Username: s.Username,
			Password: s.Password,
			From:     s.From,
		})
	case "mq":
		r := config.ConfigInfo.RabbitMq
		producer, err := mq.NewProducer(mq.URL(r.Addr, r.Username, r.Password))
		if err != nil {
			return errors.WithMessage(err, "init rabbitmq producer")
		}
		Notifier = producer
		closers = append(closers, producer.Close)
	default:
		hlog.Warnf("notify mode %q: OTP mails are only logged", mode)
		Notifier = utils.LogNotifier{}
	}
	return nil
}

// InitOtpLimiter redis 不可用时不限流
func InitOtpLimiter() {
	r := config.ConfigInfo.Redis
	client, err := userredis.Init(r.Addr, r.Password, r.DB)
	if err != nil {
		hlog.Warnf("otp send limit disabled: %v", err)
		return
	}
	if client == nil {
		return
	}
	o := config.ConfigInfo.Otp
	OtpLimiter = userredis.NewOTPLimiter(client, int64(o.SendLimit), config.Duration(o.SendWindow, 10*time.Minute))
	closers = append(closers, func() error {
		userredis.Close()
		return nil
	})
}

func Close() {
	for _, c := range closers {
		if err := c(); err != nil {
			hlog.Warnf("close infra: %v", err)
		}
	}
}
