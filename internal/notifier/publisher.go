package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"barista/internal/config"
)

// Reminder is the payload handed to the external messaging
// integration. The message text is templated here; the numeric fields
// let downstream consumers re-template it.
type Reminder struct {
	Phone             string    `json:"phone"`
	Name              string    `json:"name"`
	State             string    `json:"state"`
	DrinksUntilReward int       `json:"drinksUntilReward"`
	Message           string    `json:"message"`
	SentAt            time.Time `json:"sentAt"`
}

type ReminderPublisher interface {
	PublishReminder(ctx context.Context, reminder Reminder) error
	Close()
}

type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   *zap.Logger
}

func Dial(cfg config.BrokerConfig, logger *zap.Logger) (*AMQPPublisher, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%d/", cfg.User, cfg.Password, cfg.Host, cfg.Port)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dialing broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("opening channel: %w", err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declaring exchange: %w", err)
	}

	return &AMQPPublisher{
		conn:     conn,
		ch:       ch,
		exchange: cfg.Exchange,
		logger:   logger,
	}, nil
}

func (p *AMQPPublisher) PublishReminder(ctx context.Context, reminder Reminder) error {
	body, err := json.Marshal(reminder)
	if err != nil {
		return fmt.Errorf("marshaling reminder: %w", err)
	}

	routingKey := fmt.Sprintf("reminder.%s", reminder.State)

	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publishing reminder: %w", err)
	}

	p.logger.Debug("reminder published",
		zap.String("phone", reminder.Phone),
		zap.String("routingKey", routingKey),
	)

	return nil
}

func (p *AMQPPublisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// NoopPublisher is wired when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishReminder(context.Context, Reminder) error { return nil }

func (NoopPublisher) Close() {}

// FormatMessage renders the human-readable reminder text for a
// customer at the given point in the cycle.
func FormatMessage(name string, drinksUntilReward int) string {
	switch drinksUntilReward {
	case 0:
		return fmt.Sprintf("Hi %s, your free drink is ready to claim!", name)
	case 1:
		return fmt.Sprintf("Hi %s, you are 1 drink away from a free reward!", name)
	default:
		return fmt.Sprintf("Hi %s, %d more drinks to your next free reward.", name, drinksUntilReward)
	}
}
