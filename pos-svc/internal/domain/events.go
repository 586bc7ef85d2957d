package domain

import "time"

const (
	EventSaleCreated           = "sale-created"
	EventSaleCancelled         = "sale-cancelled"
	EventTableOccupancyChanged = "table-occupancy-changed"
	EventSyncCompleted         = "sync-completed"
)

type TableChange struct {
	TableID int         `json:"table_id"`
	From    TableStatus `json:"from"`
	To      TableStatus `json:"to"`
}

type SyncSummary struct {
	DeviceID string   `json:"device_id,omitempty"`
	Accepted []string `json:"accepted"`
	Rejected int      `json:"rejected"`
}

// EventMessage is the envelope published on the events topic. Key selects
// the partition; exactly one payload field is set per Type.
type EventMessage struct {
	Type      string       `json:"type"`
	Key       string       `json:"key"`
	Sale      *Sale        `json:"sale,omitempty"`
	Table     *TableChange `json:"table,omitempty"`
	Sync      *SyncSummary `json:"sync,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// ItemSales is one row of the daily per-item sales leaderboard.
type ItemSales struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}
