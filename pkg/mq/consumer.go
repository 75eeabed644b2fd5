package mq

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewConsumer(rabbitmqURL string) (*Consumer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	// 设置QoS，限制未确认消息数量
	if err = ch.Qos(10, 0, false); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}
	if err = setupTopology(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to setup topology: %w", err)
	}

	return &Consumer{
		conn:    conn,
		channel: ch,
	}, nil
}

// ConsumeEmailEvents 在后台 goroutine 中消费，ctx 取消时退出
func (c *Consumer) ConsumeEmailEvents(ctx context.Context, handler EmailEventHandler) error {
	msgs, err := c.channel.Consume(
		EmailEventQueue,
		"",    // consumer
		false, // auto-ack (设置为false，手动确认)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register a consumer: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				hlog.Info("Email event consumer context cancelled")
				return
			case d, ok := <-msgs:
				if !ok {
					hlog.Info("Email event consumer channel closed")
					return
				}
				handleDelivery(ctx, d, handler)
			}
		}
	}()

	return nil
}

type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

func handleDelivery(ctx context.Context, d amqp091.Delivery, handler EmailEventHandler) {
	process(ctx, d.Body, d.Redelivered, d, handler)
}

// process 格式错误直接丢弃；首次处理失败重新入队一次，再次失败丢弃
func process(ctx context.Context, body []byte, redelivered bool, ack acknowledger, handler EmailEventHandler) {
	event, err := decodeEmailEvent(body)
	if err != nil {
		hlog.Errorf("Failed to unmarshal email event: %v", err)
		ack.Nack(false, false)
		return
	}

	if err := handler.HandleEmailEvent(ctx, event); err != nil {
		hlog.Errorf("Failed to handle email event %s: %v", event.EventID, err)
		ack.Nack(false, !redelivered)
		return
	}

	ack.Ack(false)
	hlog.CtxInfof(ctx, "Successfully processed email event: %s", event.EventID)
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
