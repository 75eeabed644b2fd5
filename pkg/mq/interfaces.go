package mq

import "context"

// EmailEventHandler 消费端处理邮件事件
type EmailEventHandler interface {
	HandleEmailEvent(ctx context.Context, event *EmailEvent) error
}

// 确保Producer可以作为通知渠道使用
var _ interface {
	Notify(ctx context.Context, to, subject, body string) error
} = (*Producer)(nil)
