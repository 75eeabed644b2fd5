package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"MyTube.com/config"
	"MyTube.com/pkg/logger"
	"MyTube.com/pkg/mq"
	"MyTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const sendTimeout = 30 * time.Second

func main() {
	config.Init()
	cfg := config.ConfigInfo
	logger.Init(logger.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := cfg.RabbitMq
	consumer, err := mq.NewConsumer(mq.URL(r.Addr, r.Username, r.Password))
	if err != nil {
		hlog.Fatalf("init rabbitmq consumer: %v", err)
	}
	defer consumer.Close()

	s := cfg.Smtp
	mailer := utils.NewMailer(utils.SMTPConfig{
		Host:     s.Host,
		Port:     s.Port,
		Username: s.Username,
		Password: s.Password,
		From:     s.From,
	})
	if err = consumer.ConsumeEmailEvents(ctx, NewMailHandler(mailer, sendTimeout)); err != nil {
		hlog.Fatalf("consume email events: %v", err)
	}
	hlog.Infof("mailer started, waiting for email events")

	<-ctx.Done()
	hlog.Infof("mailer shutting down")
}
