package service

import (
	"context"
	"encoding/json"
	"errors"

	"restopos/pos-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

// Projector consumes the events topic and keeps the terminal-facing Redis
// projections current. It never feeds back into a core decision.
type Projector struct {
	Reader *kafka.Reader
	Board  BoardStore
}

func NewProjector(reader *kafka.Reader, board BoardStore) *Projector {
	return &Projector{
		Reader: reader,
		Board:  board,
	}
}

func (p *Projector) Start(ctx context.Context) {
	log.WithField("topic", p.Reader.Config().Topic).Info("starting event projector")
	for {
		message, err := p.Reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				log.Info("event projector stopped")
				return
			}
			log.WithError(err).Error("failed to read event")
			continue
		}

		var msg domain.EventMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.WithError(err).WithField("offset", message.Offset).Error("failed to decode event")
			continue
		}

		p.Process(ctx, msg)
	}
}

func (p *Projector) Process(ctx context.Context, msg domain.EventMessage) {
	switch msg.Type {
	case domain.EventTableOccupancyChanged:
		if msg.Table == nil {
			return
		}
		if err := p.Board.SetTableStatus(ctx, msg.Table.TableID, msg.Table.To); err != nil {
			log.WithError(err).WithField("table_id", msg.Table.TableID).Error("failed to update table board")
		}
	case domain.EventSaleCreated:
		p.countItems(ctx, msg, 1)
	case domain.EventSaleCancelled:
		p.countItems(ctx, msg, -1)
	default:
		log.WithField("type", msg.Type).Debug("ignoring event")
	}
}

// countItems moves the sale's quantities on the leaderboard of the day the
// sale was created.
func (p *Projector) countItems(ctx context.Context, msg domain.EventMessage, sign int) {
	if msg.Sale == nil {
		return
	}
	day := msg.Sale.CreatedAt
	if day.IsZero() {
		day = msg.Timestamp
	}
	for _, item := range msg.Sale.Items {
		if err := p.Board.AddItemSales(ctx, day, item.MenuItemID, sign*item.Quantity); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"sale_id":      msg.Sale.ID,
				"menu_item_id": item.MenuItemID,
			}).Error("failed to update sales leaderboard")
			return
		}
	}
}

var _ ProjectorInterface = (*Projector)(nil)
