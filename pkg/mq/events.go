package mq

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// EmailEvent 待发送的邮件
type EmailEvent struct {
	EventID   string `json:"event_id"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Timestamp int64  `json:"timestamp"`
}

const (
	EmailEventExchange = "email_events"
	EmailEventQueue    = "email_event_queue"
)

// URL 拼接 amqp 连接地址
func URL(addr, username, password string) string {
	u := url.URL{Scheme: "amqp", Host: addr, Path: "/"}
	if username != "" {
		u.User = url.UserPassword(username, password)
	}
	return u.String()
}

func decodeEmailEvent(body []byte) (*EmailEvent, error) {
	var event EmailEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, err
	}
	if event.To == "" {
		return nil, fmt.Errorf("email event %s has no recipient", event.EventID)
	}
	return &event, nil
}
