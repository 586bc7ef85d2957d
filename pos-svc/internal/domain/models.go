package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// UnlimitedStock marks a menu item whose stock is not tracked.
const UnlimitedStock = -1

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeTakeaway OrderType = "takeaway"
	OrderTypeDelivery OrderType = "delivery"
)

func (t OrderType) Valid() bool {
	return t == OrderTypeDineIn || t == OrderTypeTakeaway || t == OrderTypeDelivery
}

type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusCancelled SaleStatus = "cancelled"
)

func (s SaleStatus) Valid() bool {
	return s == SaleStatusPending || s == SaleStatusCompleted || s == SaleStatusCancelled
}

type SyncState string

const (
	SyncStateLocal  SyncState = "local"
	SyncStateSynced SyncState = "synced"
)

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
	TableCleaning  TableStatus = "cleaning"
)

type ShiftStatus string

const (
	ShiftActive ShiftStatus = "active"
	ShiftClosed ShiftStatus = "closed"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleCashier Role = "cashier"
	RoleWaiter  Role = "waiter"
)

// Actor is the authenticated employee behind a request.
type Actor struct {
	EmployeeID int  `json:"employee_id"`
	Role       Role `json:"role"`
}

func (a Actor) Elevated() bool {
	return a.Role == RoleAdmin || a.Role == RoleManager
}

// CanActOn reports whether the actor may operate on a record owned by employeeID.
func (a Actor) CanActOn(employeeID int) bool {
	return a.Elevated() || a.EmployeeID == employeeID
}

type MenuItem struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	StockCount int             `json:"stock_count"`
	IsActive   bool            `json:"is_active"`
}

func (m MenuItem) Unlimited() bool {
	return m.StockCount == UnlimitedStock
}

type Table struct {
	ID       int         `json:"id"`
	Number   int         `json:"number"`
	Capacity int         `json:"capacity"`
	Status   TableStatus `json:"status"`
	IsActive bool        `json:"is_active"`
}

type Shift struct {
	ID               int                 `json:"id"`
	EmployeeID       int                 `json:"employee_id"`
	StartTime        time.Time           `json:"start_time"`
	EndTime          *time.Time          `json:"end_time,omitempty"`
	StartingCash     decimal.Decimal     `json:"starting_cash"`
	EndingCash       decimal.NullDecimal `json:"ending_cash"`
	ExpectedCash     decimal.NullDecimal `json:"expected_cash"`
	TotalSales       decimal.Decimal     `json:"total_sales"`
	CashTotal        decimal.Decimal     `json:"cash_total"`
	CardTotal        decimal.Decimal     `json:"card_total"`
	TransactionCount int                 `json:"transaction_count"`
	Status           ShiftStatus         `json:"status"`
	Notes            string              `json:"notes,omitempty"`
	DeviceID         string              `json:"device_id,omitempty"`
}

type Sale struct {
	ID             string          `json:"id"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	DeliveryFee    decimal.Decimal `json:"delivery_fee"`
	Total          decimal.Decimal `json:"total"`
	PaymentMethod  string          `json:"payment_method"`
	OrderType      OrderType       `json:"order_type"`
	Status         SaleStatus      `json:"status"`
	TableID        *int            `json:"table_id,omitempty"`
	CustomerID     *int            `json:"customer_id,omitempty"`
	ShiftID        int             `json:"shift_id"`
	EmployeeID     int             `json:"employee_id"`
	OriginDeviceID string          `json:"origin_device_id,omitempty"`
	SyncState      SyncState       `json:"sync_state"`
	SyncedAt       *time.Time      `json:"synced_at,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	CancelledAt    *time.Time      `json:"cancelled_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	Items          []SaleItem      `json:"items"`
}

type SaleItem struct {
	ID              int             `json:"id"`
	SaleID          string          `json:"sale_id"`
	MenuItemID      int             `json:"menu_item_id"`
	Quantity        int             `json:"quantity"`
	UnitPriceAtSale decimal.Decimal `json:"unit_price_at_sale"`
	LineTotal       decimal.Decimal `json:"line_total"`
	Notes           string          `json:"notes,omitempty"`
}

// SaleAmount is the slice of a completed sale the shift ledger sums over.
type SaleAmount struct {
	Total         decimal.Decimal
	PaymentMethod string
}

// IsCashPayment reports whether a payment method lands in the cash drawer.
func IsCashPayment(method string) bool {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case "cash", "efectivo":
		return true
	}
	return false
}

type ShiftTotals struct {
	TotalSales       decimal.Decimal
	CashTotal        decimal.Decimal
	CardTotal        decimal.Decimal
	TransactionCount int
}

// ComputeShiftTotals folds completed sale amounts into shift totals.
func ComputeShiftTotals(amounts []SaleAmount) ShiftTotals {
	totals := ShiftTotals{TotalSales: decimal.Zero, CashTotal: decimal.Zero}
	for _, amount := range amounts {
		totals.TotalSales = totals.TotalSales.Add(amount.Total)
		if IsCashPayment(amount.PaymentMethod) {
			totals.CashTotal = totals.CashTotal.Add(amount.Total)
		}
	}
	totals.CardTotal = totals.TotalSales.Sub(totals.CashTotal)
	totals.TransactionCount = len(amounts)
	return totals
}

// Apply copies the totals onto the shift.
func (t ShiftTotals) Apply(shift *Shift) {
	shift.TotalSales = t.TotalSales
	shift.CashTotal = t.CashTotal
	shift.CardTotal = t.CardTotal
	shift.TransactionCount = t.TransactionCount
}

type SyncStatus struct {
	TotalSales     int        `json:"total_sales"`
	SyncedSales    int        `json:"synced_sales"`
	PendingSales   int        `json:"pending_sales"`
	SyncPercentage float64    `json:"sync_percentage"`
	LastSync       *time.Time `json:"last_sync"`
	DeviceLastSync *time.Time `json:"device_last_sync,omitempty"`
}

type RejectedRecord struct {
	RecordID string `json:"record_id"`
	Reason   string `json:"reason"`
}

type SyncResult struct {
	Accepted []Sale           `json:"accepted"`
	Rejected []RejectedRecord `json:"rejected"`
}

// AcceptedIDs lists the ids of accepted sales in batch order.
func (r SyncResult) AcceptedIDs() []string {
	ids := make([]string, 0, len(r.Accepted))
	for _, sale := range r.Accepted {
		ids = append(ids, sale.ID)
	}
	return ids
}
