package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// roundingTolerance is the largest difference accepted between a record's
// stated totals and the totals recomputed from its lines.
var roundingTolerance = decimal.New(1, -2)

// SaleRecord is a sale produced by a disconnected device, identified by the
// id the device generated for it.
type SaleRecord struct {
	ID             string           `json:"id"`
	Subtotal       decimal.Decimal  `json:"subtotal"`
	TaxAmount      decimal.Decimal  `json:"tax_amount"`
	DeliveryFee    decimal.Decimal  `json:"delivery_fee"`
	Total          decimal.Decimal  `json:"total"`
	PaymentMethod  string           `json:"payment_method"`
	OrderType      OrderType        `json:"order_type"`
	Status         SaleStatus       `json:"status"`
	TableID        *int             `json:"table_id,omitempty"`
	CustomerID     *int             `json:"customer_id,omitempty"`
	ShiftID        int              `json:"shift_id"`
	EmployeeID     int              `json:"employee_id"`
	OriginDeviceID string           `json:"origin_device_id"`
	Notes          string           `json:"notes,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	Items          []SaleRecordItem `json:"items"`
}

type SaleRecordItem struct {
	MenuItemID int             `json:"menu_item_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	LineTotal  decimal.Decimal `json:"line_total"`
	Notes      string          `json:"notes,omitempty"`
}

// Validate rejects records that are incomplete or internally inconsistent.
// Defaults are filled for status and payment method.
func (r *SaleRecord) Validate() error {
	r.ID = strings.TrimSpace(r.ID)
	if r.ID == "" {
		return validationf("id is required")
	}
	if r.ShiftID <= 0 {
		return validationf("shift_id is required")
	}
	if r.EmployeeID <= 0 {
		return validationf("employee_id is required")
	}
	if _, err := NewOrderTarget(r.OrderType, r.TableID, r.CustomerID, r.DeliveryFee); err != nil {
		return err
	}
	if r.Status == "" {
		r.Status = SaleStatusCompleted
	}
	if !r.Status.Valid() {
		return validationf("unknown status %q", r.Status)
	}
	if strings.TrimSpace(r.PaymentMethod) == "" {
		r.PaymentMethod = DefaultPaymentMethod
	}
	if len(r.Items) == 0 {
		return validationf("items are required")
	}
	if r.Subtotal.IsNegative() || r.TaxAmount.IsNegative() || r.Total.IsNegative() {
		return validationf("amounts must not be negative")
	}

	sum := decimal.Zero
	for i, item := range r.Items {
		if item.MenuItemID <= 0 {
			return validationf("item %d: menu_item_id is required", i+1)
		}
		if item.Quantity <= 0 {
			return validationf("item %d: quantity must be greater than zero", i+1)
		}
		if item.UnitPrice.IsNegative() {
			return validationf("item %d: unit_price must not be negative", i+1)
		}
		expected := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		if !withinTolerance(expected, item.LineTotal) {
			return validationf("item %d: line_total %s does not match %s", i+1, item.LineTotal, expected)
		}
		sum = sum.Add(item.LineTotal)
	}
	if !withinTolerance(sum, r.Subtotal) {
		return validationf("subtotal %s does not match items %s", r.Subtotal, sum)
	}
	if !withinTolerance(r.Subtotal.Add(r.TaxAmount).Add(r.DeliveryFee), r.Total) {
		return validationf("total %s does not match subtotal + tax + delivery fee", r.Total)
	}
	return nil
}

// ToSale materialises a validated record. Synced state and timestamps are
// set by the caller.
func (r SaleRecord) ToSale() Sale {
	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	sale := Sale{
		ID:             r.ID,
		Subtotal:       r.Subtotal,
		TaxAmount:      r.TaxAmount,
		DeliveryFee:    r.DeliveryFee,
		Total:          r.Total,
		PaymentMethod:  r.PaymentMethod,
		OrderType:      r.OrderType,
		Status:         r.Status,
		TableID:        r.TableID,
		CustomerID:     r.CustomerID,
		ShiftID:        r.ShiftID,
		EmployeeID:     r.EmployeeID,
		OriginDeviceID: r.OriginDeviceID,
		Notes:          r.Notes,
		CreatedAt:      createdAt,
		Items:          make([]SaleItem, 0, len(r.Items)),
	}
	for _, item := range r.Items {
		sale.Items = append(sale.Items, SaleItem{
			SaleID:          r.ID,
			MenuItemID:      item.MenuItemID,
			Quantity:        item.Quantity,
			UnitPriceAtSale: item.UnitPrice,
			LineTotal:       item.LineTotal,
			Notes:           item.Notes,
		})
	}
	return sale
}

func withinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(roundingTolerance)
}
