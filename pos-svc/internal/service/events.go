package service

import (
	"context"
	"strconv"
	"time"

	"restopos/pos-svc/internal/domain"

	log "github.com/sirupsen/logrus"
)

// publish is fire-and-forget: the state change is already committed, so a
// failed publish is logged and never surfaced to the caller.
func publish(ctx context.Context, publisher EventPublisher, msg domain.EventMessage) {
	if publisher == nil {
		return
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}
	if err := publisher.Publish(context.WithoutCancel(ctx), msg); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"type": msg.Type,
			"key":  msg.Key,
		}).Warn("failed to publish event")
	}
}

func saleEvent(eventType string, sale *domain.Sale) domain.EventMessage {
	return domain.EventMessage{
		Type: eventType,
		Key:  sale.ID,
		Sale: sale,
	}
}

func tableEvent(change *domain.TableChange) domain.EventMessage {
	return domain.EventMessage{
		Type:  domain.EventTableOccupancyChanged,
		Key:   "table:" + strconv.Itoa(change.TableID),
		Table: change,
	}
}
