// Package queue_publisher publishes domain events to RabbitMQ.  Errors
// are logged and returned so callers can ignore failures without
// interrupting the main request flow: a lost event never fails a
// booking that is already in the ledger.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/orrynara/timebank/internal/queue"
)

const bookingQueueName = "booking.created"

// PublishBookingCreated publishes a BookingCreatedEvent to the
// booking.created queue on the broker at url.  The queue is declared
// durable and messages are marked persistent.  The function never
// panics; any error is logged and returned.
func PublishBookingCreated(ctx context.Context, url string, event q.BookingCreatedEvent) error {
	conn, err := amqp.Dial(url)
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

	if _, err := ch.QueueDeclare(bookingQueueName, true, false, false, false, nil); err != nil {
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
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", bookingQueueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
