package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"restopos/pos-svc/internal/domain"
	"restopos/pos-svc/internal/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// OrderService creates and cancels sales. Every sale is written in one
// transaction together with its stock reservations and table occupancy.
type OrderService struct {
	repo      OrderRepository
	inventory *InventoryLedger
	tables    *TableService
	publisher EventPublisher
	qrEncoder QRGenerator
	status    StatusInvalidator
	taxRate   decimal.Decimal
}

func NewOrderService(
	repo OrderRepository,
	inventory *InventoryLedger,
	tables *TableService,
	publisher EventPublisher,
	qr QRGenerator,
	status StatusInvalidator,
	taxRate decimal.Decimal,
) *OrderService {
	return &OrderService{
		repo:      repo,
		inventory: inventory,
		tables:    tables,
		publisher: publisher,
		qrEncoder: qr,
		status:    status,
		taxRate:   taxRate,
	}
}

func (s *OrderService) CreateSale(ctx context.Context, actor domain.Actor, input domain.CreateSaleInput) (*domain.Sale, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	saleID := input.ID
	if saleID == "" {
		saleID = uuid.NewString()
	}

	var (
		sale   *domain.Sale
		change *domain.TableChange
	)
	err := s.repo.InTx(ctx, func(tx storage.Tx) error {
		shift, err := tx.ActiveShift(ctx, actor.EmployeeID)
		if err != nil {
			return err
		}
		if shift == nil {
			return fmt.Errorf("%w: employee %d", domain.ErrNoActiveShift, actor.EmployeeID)
		}

		var table *domain.Table
		if tableID := input.Target.Table(); tableID != nil {
			if table, err = lockTable(ctx, tx, *tableID); err != nil {
				return err
			}
		}
		if customerID := input.Target.Customer(); customerID != nil {
			exists, err := tx.CustomerExists(ctx, *customerID)
			if err != nil {
				return err
			}
			if !exists {
				return fmt.Errorf("%w: customer %d", domain.ErrNotFound, *customerID)
			}
		}

		menu := make(map[int]*domain.MenuItem, len(input.Lines))
		for _, line := range input.Lines {
			if _, seen := menu[line.MenuItemID]; seen {
				continue
			}
			item, err := tx.GetMenuItem(ctx, line.MenuItemID)
			if err != nil {
				return err
			}
			if !item.IsActive {
				return fmt.Errorf("%w: menu item %d is not active", domain.ErrNotFound, item.ID)
			}
			menu[item.ID] = item
		}

		reservations := aggregateByItem(input.Lines, func(l domain.LineInput) (int, int) { return l.MenuItemID, l.Quantity })
		for _, r := range reservations {
			if err := s.inventory.reserveItem(ctx, tx, menu[r.MenuItemID], r.Quantity); err != nil {
				return err
			}
		}

		sale = s.buildSale(saleID, actor, shift, input, menu)
		inserted, err := tx.InsertSale(ctx, sale)
		if err != nil {
			return err
		}
		if !inserted {
			return fmt.Errorf("%w: sale %s already exists", domain.ErrConflict, saleID)
		}

		if table != nil {
			change, err = s.tables.Occupy(ctx, tx, table)
		}
		return err
	})
	if err != nil {
		return nil, domain.Classify(err)
	}

	log.WithFields(log.Fields{
		"sale_id":     sale.ID,
		"employee_id": sale.EmployeeID,
		"shift_id":    sale.ShiftID,
		"total":       sale.Total.StringFixed(2),
	}).Info("sale created")

	if s.status != nil {
		if err := s.status.InvalidateStatus(ctx); err != nil {
			log.WithError(err).Warn("failed to invalidate sync status cache")
		}
	}

	publish(ctx, s.publisher, saleEvent(domain.EventSaleCreated, sale))
	if change != nil {
		publish(ctx, s.publisher, tableEvent(change))
	}
	return sale, nil
}

func (s *OrderService) buildSale(
	saleID string,
	actor domain.Actor,
	shift *domain.Shift,
	input domain.CreateSaleInput,
	menu map[int]*domain.MenuItem,
) *domain.Sale {
	now := time.Now().UTC()
	sale := &domain.Sale{
		ID:             saleID,
		DeliveryFee:    input.Target.Fee(),
		PaymentMethod:  input.PaymentMethod,
		OrderType:      input.Target.Type(),
		Status:         domain.SaleStatusCompleted,
		TableID:        input.Target.Table(),
		CustomerID:     input.Target.Customer(),
		ShiftID:        shift.ID,
		EmployeeID:     actor.EmployeeID,
		OriginDeviceID: input.OriginDeviceID,
		SyncState:      domain.SyncStateSynced,
		SyncedAt:       &now,
		Notes:          input.Notes,
		CreatedAt:      now,
		Items:          make([]domain.SaleItem, 0, len(input.Lines)),
	}

	subtotal := decimal.Zero
	for _, line := range input.Lines {
		price := menu[line.MenuItemID].UnitPrice
		lineTotal := price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		sale.Items = append(sale.Items, domain.SaleItem{
			SaleID:          saleID,
			MenuItemID:      line.MenuItemID,
			Quantity:        line.Quantity,
			UnitPriceAtSale: price,
			LineTotal:       lineTotal,
			Notes:           line.Notes,
		})
	}

	sale.Subtotal = subtotal
	sale.TaxAmount = subtotal.Mul(s.taxRate).Round(2)
	sale.Total = subtotal.Add(sale.TaxAmount).Add(sale.DeliveryFee)
	return sale
}

func (s *OrderService) CancelSale(ctx context.Context, actor domain.Actor, saleID, reason string) (*domain.Sale, error) {
	var sale *domain.Sale
	err := s.repo.InTx(ctx, func(tx storage.Tx) error {
		var err error
		if sale, err = tx.LockSale(ctx, saleID); err != nil {
			return err
		}
		if !actor.CanActOn(sale.EmployeeID) {
			return fmt.Errorf("%w: sale %s belongs to another employee", domain.ErrForbidden, saleID)
		}
		if sale.Status == domain.SaleStatusCancelled {
			return fmt.Errorf("%w: sale %s", domain.ErrAlreadyCancelled, saleID)
		}

		restores := aggregateByItem(sale.Items, func(i domain.SaleItem) (int, int) { return i.MenuItemID, i.Quantity })
		for _, r := range restores {
			if err := s.inventory.Restore(ctx, tx, r.MenuItemID, r.Quantity); err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		notes := cancellationNote(sale.Notes, reason)
		if err := tx.MarkSaleCancelled(ctx, sale.ID, notes, now); err != nil {
			return err
		}
		sale.Status = domain.SaleStatusCancelled
		sale.CancelledAt = &now
		sale.Notes = notes
		return nil
	})
	if err != nil {
		return nil, domain.Classify(err)
	}

	log.WithFields(log.Fields{
		"sale_id":     sale.ID,
		"employee_id": actor.EmployeeID,
	}).Info("sale cancelled")

	publish(ctx, s.publisher, saleEvent(domain.EventSaleCancelled, sale))
	return sale, nil
}

func cancellationNote(notes, reason string) string {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "no reason given"
	}
	return strings.TrimSpace(notes + " [CANCELLED: " + reason + "]")
}

func (s *OrderService) GetSale(ctx context.Context, actor domain.Actor, saleID string) (*domain.Sale, error) {
	sale, err := s.repo.GetSale(ctx, saleID)
	if err != nil {
		return nil, domain.Classify(err)
	}
	if !actor.CanActOn(sale.EmployeeID) {
		return nil, fmt.Errorf("%w: sale %s belongs to another employee", domain.ErrForbidden, saleID)
	}
	return sale, nil
}

// ReceiptQRCode renders the receipt link for a sale the actor may see.
func (s *OrderService) ReceiptQRCode(ctx context.Context, actor domain.Actor, saleID string) ([]byte, error) {
	if _, err := s.GetSale(ctx, actor, saleID); err != nil {
		return nil, err
	}
	if s.qrEncoder == nil {
		return nil, fmt.Errorf("%w: receipt QR codes are not configured", domain.ErrInternal)
	}
	png, err := s.qrEncoder.Generate(saleID)
	if err != nil {
		return nil, domain.Classify(err)
	}
	return png, nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
