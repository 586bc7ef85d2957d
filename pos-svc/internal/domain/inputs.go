package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultPaymentMethod = "cash"

// OrderTarget is the per-order-type part of a sale. Exactly one of
// DineIn, Takeaway or Delivery.
type OrderTarget interface {
	Type() OrderType
	Table() *int
	Customer() *int
	Fee() decimal.Decimal
}

type DineIn struct {
	TableID    int
	CustomerID *int
}

func (DineIn) Type() OrderType { return OrderTypeDineIn }
func (d DineIn) Table() *int {
	id := d.TableID
	return &id
}

func (d DineIn) Customer() *int     { return d.CustomerID }
func (DineIn) Fee() decimal.Decimal { return decimal.Zero }

type Takeaway struct {
	CustomerID *int
}

func (Takeaway) Type() OrderType      { return OrderTypeTakeaway }
func (Takeaway) Table() *int          { return nil }
func (t Takeaway) Customer() *int     { return t.CustomerID }
func (Takeaway) Fee() decimal.Decimal { return decimal.Zero }

type Delivery struct {
	CustomerID  int
	DeliveryFee decimal.Decimal
}

func (Delivery) Type() OrderType { return OrderTypeDelivery }
func (Delivery) Table() *int     { return nil }
func (d Delivery) Customer() *int {
	id := d.CustomerID
	return &id
}

func (d Delivery) Fee() decimal.Decimal { return d.DeliveryFee }

// NewOrderTarget builds the variant for orderType from loosely typed
// request fields.
func NewOrderTarget(orderType OrderType, tableID, customerID *int, deliveryFee decimal.Decimal) (OrderTarget, error) {
	if customerID != nil && *customerID <= 0 {
		return nil, validationf("customer_id must be positive")
	}
	if !deliveryFee.IsZero() && orderType != OrderTypeDelivery {
		return nil, validationf("delivery_fee is only allowed on delivery orders")
	}

	switch orderType {
	case OrderTypeDineIn:
		if tableID == nil || *tableID <= 0 {
			return nil, validationf("dine-in orders require table_id")
		}
		return DineIn{TableID: *tableID, CustomerID: customerID}, nil
	case OrderTypeTakeaway:
		return Takeaway{CustomerID: customerID}, nil
	case OrderTypeDelivery:
		if customerID == nil {
			return nil, validationf("delivery orders require customer_id")
		}
		if deliveryFee.IsNegative() {
			return nil, validationf("delivery_fee must not be negative")
		}
		return Delivery{CustomerID: *customerID, DeliveryFee: deliveryFee}, nil
	default:
		return nil, validationf("unknown order type %q", orderType)
	}
}

type LineInput struct {
	MenuItemID int    `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"notes,omitempty"`
}

type CreateSaleInput struct {
	// ID is an optional client-generated id used as idempotency key.
	ID             string
	Target         OrderTarget
	Lines          []LineInput
	PaymentMethod  string
	OriginDeviceID string
	Notes          string
}

// Validate checks everything that can be checked without the store and
// fills defaults.
func (in *CreateSaleInput) Validate() error {
	if in.Target == nil {
		return validationf("order type is required")
	}
	if len(in.Lines) == 0 {
		return validationf("sale requires at least one item")
	}
	for i, line := range in.Lines {
		if line.MenuItemID <= 0 {
			return validationf("line %d: menu_item_id is required", i+1)
		}
		if line.Quantity <= 0 {
			return validationf("line %d: quantity must be greater than zero", i+1)
		}
	}
	in.ID = strings.TrimSpace(in.ID)
	in.PaymentMethod = strings.TrimSpace(in.PaymentMethod)
	if in.PaymentMethod == "" {
		in.PaymentMethod = DefaultPaymentMethod
	}
	return nil
}

type OpenShiftInput struct {
	EmployeeID   int
	StartingCash decimal.Decimal
	DeviceID     string
	Notes        string
}

func (in OpenShiftInput) Validate() error {
	if in.EmployeeID <= 0 {
		return validationf("employee id is required")
	}
	if in.StartingCash.IsNegative() {
		return validationf("starting cash must not be negative")
	}
	return nil
}

type CloseShiftInput struct {
	EndingCash decimal.Decimal
	Notes      string
}

func (in CloseShiftInput) Validate() error {
	if in.EndingCash.IsNegative() {
		return validationf("ending cash must not be negative")
	}
	return nil
}

// ParseTableStatus accepts only the four known occupancy states.
func ParseTableStatus(s string) (TableStatus, error) {
	switch status := TableStatus(strings.ToLower(strings.TrimSpace(s))); status {
	case TableAvailable, TableOccupied, TableReserved, TableCleaning:
		return status, nil
	default:
		return "", validationf("unknown table status %q", s)
	}
}
