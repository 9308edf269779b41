package booking_submitted

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"booking/internal/entities"
	notificationservice "booking/internal/service/notification"
	"booking/pkg/logger"
	"github.com/IBM/sarama"
)

type Handler struct {
	notificationService      Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notificationService Service, timeout time.Duration) *Handler {
	return &Handler{
		notificationService:      notificationService,
		log:                      log.With(logger.NewField("handler", "booking.submitted")),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("booking.submitted: claim messages closed, exiting ConsumeClaim")
				return nil
			}

			if h.messageProcessing(sess, message) {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка группы
			h.log.Info("booking.submitted: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, когда ConsumeClaim нужно прервать
// без коммита сообщения: оно придет снова после перезапуска сессии.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event entities.BookingSubmittedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("booking.submitted handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event_id", event.EventID.String()),
		logger.NewField("booking_number", event.BookingNumber),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("booking.submitted processing")

	notification, created, err := h.notificationService.HandleBookingSubmitted(ctx, event)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.submitted handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, notificationservice.ErrInvalidEvent):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.submitted handler skipped invalid event")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("booking.submitted handler failed to store notification")
		}
		sess.MarkMessage(message, "")
		return false
	}

	if !created {
		msgLog.With(
			logger.NewField("notification", notification.ID.String()),
		).Info("booking.submitted: duplicate event, notification already exists")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("notification", notification.ID.String()),
		logger.NewField("customer", notification.CustomerID),
	).Info("booking.submitted: processed")

	sess.MarkMessage(message, "")
	return false
}
