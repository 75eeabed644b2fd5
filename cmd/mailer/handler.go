package main

import (
	"context"
	"time"

	"MyTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

// Sender 实际投递邮件的通道
type Sender interface {
	Notify(ctx context.Context, to, subject, body string) error
}

// MailHandler 消费 email_event_queue 并交给 Sender 发送
type MailHandler struct {
	sender  Sender
	timeout time.Duration
}

func NewMailHandler(sender Sender, timeout time.Duration) *MailHandler {
	return &MailHandler{sender: sender, timeout: timeout}
}

func (h *MailHandler) HandleEmailEvent(ctx context.Context, event *mq.EmailEvent) error {
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	if err := h.sender.Notify(ctx, event.To, event.Subject, event.Body); err != nil {
		return errors.Wrapf(err, "send email event %s", event.EventID)
	}
	hlog.CtxInfof(ctx, "邮件 %s 已发送至 %s", event.EventID, event.To)
	return nil
}
