package booking_submitted

import (
	"context"
	"encoding/json"
	"fmt"

	"booking/internal/entities"
	"github.com/IBM/sarama"
)

const eventType = "booking.submitted"

// Publisher отправляет событие об отправленном бронировании.
// Ключ сообщения id клиента, события одного клиента попадают в одну партицию.
type Publisher struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *Publisher) PublishBookingSubmitted(ctx context.Context, event entities.BookingSubmittedEvent) error {
	err := ctx.Err()
	if err != nil {
		return err
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal booking submitted event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.CustomerID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(eventType)},
			{Key: []byte("event_id"), Value: []byte(event.EventID.String())},
		},
		Timestamp: event.SubmittedAt,
	}

	_, _, err = p.producer.SendMessage(msg)
	if err != nil {
		EventsPublishedTotal.WithLabelValues(p.topic, "error").Inc()
		return fmt.Errorf("send booking submitted event: %w", err)
	}

	EventsPublishedTotal.WithLabelValues(p.topic, "ok").Inc()
	return nil
}
