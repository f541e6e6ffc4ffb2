package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"unvaultd/pkg/config"
	"unvaultd/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ActivityExchange  = "activity"
	NotificationQueue = "notification_queue"
)

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	mu      sync.Mutex
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func declareTopology(channel *amqp.Channel) error {
	err := channel.ExchangeDeclare(
		ActivityExchange, // name
		"direct",         // type
		true,             // durable
		false,            // auto-deleted
		false,            // internal
		false,            // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		NotificationQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		amqp.Table{"x-max-priority": MaxPriority},
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	// One binding per activity type; the routing key is the event type.
	for _, eventType := range EventTypes {
		if err := channel.QueueBind(NotificationQueue, string(eventType), ActivityExchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind queue for %s: %w", eventType, err)
		}
	}
	return nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// PublishActivity sends the event to the activity exchange with its priority.
func (c *Client) PublishActivity(ctx context.Context, event Event) error {
	if err := event.Validate(); err != nil {
		return err
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	err = c.channel.PublishWithContext(ctx,
		ActivityExchange,
		string(event.Type), // routing key
		false,              // mandatory
		false,              // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			Priority:     ClampPriority(event.Priority),
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.CreatedAt,
		},
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish %s event: %v", event.Type, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Debug("[RABBITMQ] Published %s event for user %s", event.Type, event.UserID)
	return nil
}

// ConsumeActivity delivers events to handler until the channel closes.
// Malformed messages are dropped, handler failures are requeued.
func (c *Client) ConsumeActivity(handler func(Event) error) error {
	msgs, err := c.channel.Consume(
		NotificationQueue,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("[RABBITMQ] Started consuming from %s", NotificationQueue)

	go func() {
		for msg := range msgs {
			c.deliver(msg, handler)
		}
		c.logger.Warn("[RABBITMQ] Delivery channel closed for %s", NotificationQueue)
	}()

	return nil
}

func (c *Client) deliver(msg amqp.Delivery, handler func(Event) error) {
	event, err := DecodeEvent(msg.Body)
	if err != nil {
		c.logger.Error("[RABBITMQ] Dropping malformed event: %v, body=%s", err, string(msg.Body))
		msg.Nack(false, false)
		return
	}

	if err := handler(event); err != nil {
		c.logger.Error("[RABBITMQ] Handler failed for %s event: %v", event.Type, err)
		msg.Nack(false, !msg.Redelivered)
		return
	}

	msg.Ack(false)
}

func (c *Client) QueueLength() (int, error) {
	q, err := c.channel.QueueInspect(NotificationQueue)
	if err != nil {
		return 0, err
	}
	return q.Messages, nil
}
