package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Queue names. Declared durable on every publish so a consumer can be
// attached at any point without coordination.
const (
	AccountCreatedQueue = "account.created"
	BookingCreatedQueue = "booking.created"
)

// Publisher delivers events to RabbitMQ. A zero URL yields a disabled
// publisher whose methods are no-ops, so callers never have to branch
// on whether a broker is configured.
type Publisher struct {
	url string
}

func NewPublisher(url string) *Publisher { return &Publisher{url: url} }

// PublishAccountCreated sends an AccountCreatedEvent to the
// account.created queue. Errors are logged and returned so the caller
// can choose to ignore them.
func (p *Publisher) PublishAccountCreated(ctx context.Context, event AccountCreatedEvent) error {
	return p.publish(ctx, AccountCreatedQueue, event)
}

// PublishBookingCreated sends a BookingCreatedEvent to the
// booking.created queue.
func (p *Publisher) PublishBookingCreated(ctx context.Context, event BookingCreatedEvent) error {
	return p.publish(ctx, BookingCreatedQueue, event)
}

// publish dials the broker, declares the durable queue and delivers a
// persistent JSON message. Dialing per publish keeps the publisher
// stateless; at interactive rates the connection cost is irrelevant.
func (p *Publisher) publish(ctx context.Context, queueName string, event any) error {
	if p.url == "" {
		return nil
	}
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}

	return nil
}
