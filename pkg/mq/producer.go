package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

type Producer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	// amqp channel 不能并发发布
	mu sync.Mutex
}

func NewProducer(rabbitmqURL string) (*Producer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	producer := &Producer{
		conn:    conn,
		channel: ch,
	}

	// 声明exchanges和queues
	if err := setupTopology(ch); err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to setup topology: %w", err)
	}

	return producer, nil
}

func setupTopology(ch *amqp091.Channel) error {
	err := ch.ExchangeDeclare(
		EmailEventExchange,
		"direct",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare email event exchange: %w", err)
	}

	_, err = ch.QueueDeclare(
		EmailEventQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare email event queue: %w", err)
	}

	err = ch.QueueBind(
		EmailEventQueue,
		"",
		EmailEventExchange,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to bind email event queue: %w", err)
	}
	return nil
}

func (p *Producer) PublishEmailEvent(ctx context.Context, event *EmailEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal email event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.channel.PublishWithContext(
		ctx,
		EmailEventExchange,
		"",
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			MessageId:    event.EventID,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish email event: %w", err)
	}

	hlog.CtxInfof(ctx, "Published email event: id=%s to=%s", event.EventID, event.To)
	return nil
}

// Notify 把邮件交给 mailer 异步发送
func (p *Producer) Notify(ctx context.Context, to, subject, body string) error {
	return p.PublishEmailEvent(ctx, &EmailEvent{
		EventID:   uuid.NewString(),
		To:        to,
		Subject:   subject,
		Body:      body,
		Timestamp: time.Now().Unix(),
	})
}

func (p *Producer) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
