package util

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/rumdien113/tiktok-api/internal/config"
)

const (
	// ReportExchange carries moderation events.
	ReportExchange = "report_exchange"
	// ReportCreatedQueue feeds the report counter worker.
	ReportCreatedQueue = "report_created_queue"
	// ReportCreatedKey is the routing key for report creation events.
	ReportCreatedKey = "report.created"
)

// RabbitMQClient wraps an AMQP connection and channel. Like the Redis client
// it is nilable; publishers treat a nil client as "messaging disabled".
type RabbitMQClient struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewRabbitMQClient(cfg *config.Config) (*RabbitMQClient, error) {
	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(
		ReportExchange,
		"direct",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &RabbitMQClient{
		conn:    conn,
		channel: channel,
	}, nil
}

// Publish sends a persistent JSON message to the report exchange.
func (r *RabbitMQClient) Publish(routingKey string, body []byte) error {
	return r.channel.Publish(
		ReportExchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

// GetChannel returns the underlying channel for consumers.
func (r *RabbitMQClient) GetChannel() *amqp.Channel {
	return r.channel
}

// Close closes the channel and connection.
func (r *RabbitMQClient) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
