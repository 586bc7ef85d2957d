package service

import (
	"context"
	"time"

	"restopos/pos-svc/internal/domain"
	"restopos/pos-svc/internal/storage"
)

type SaleReader interface {
	GetSale(ctx context.Context, id string) (*domain.Sale, error)
}

type OrderRepository interface {
	storage.TxRunner
	SaleReader
}

type SyncRepository interface {
	storage.TxRunner
	SyncStatus(ctx context.Context) (*domain.SyncStatus, error)
	PendingSales(ctx context.Context, since *time.Time) ([]domain.Sale, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, msg domain.EventMessage) error
}

type SyncCache interface {
	CachedStatus(ctx context.Context) (*domain.SyncStatus, error)
	StoreStatus(ctx context.Context, status *domain.SyncStatus) error
	InvalidateStatus(ctx context.Context) error
	MarkDeviceSync(ctx context.Context, deviceID string, at time.Time) error
	DeviceLastSync(ctx context.Context, deviceID string) (*time.Time, error)
}

// StatusInvalidator drops the cached sync status once new sales are stored.
type StatusInvalidator interface {
	InvalidateStatus(ctx context.Context) error
}

// BoardStore is the write side of the terminal-facing projections.
type BoardStore interface {
	SetTableStatus(ctx context.Context, tableID int, status domain.TableStatus) error
	AddItemSales(ctx context.Context, day time.Time, menuItemID, delta int) error
}

type BoardReader interface {
	TableBoard(ctx context.Context) (map[int]domain.TableStatus, error)
	TopItems(ctx context.Context, day time.Time, limit int) ([]domain.ItemSales, error)
}

type OrderServiceInterface interface {
	CreateSale(ctx context.Context, actor domain.Actor, input domain.CreateSaleInput) (*domain.Sale, error)
	CancelSale(ctx context.Context, actor domain.Actor, saleID, reason string) (*domain.Sale, error)
	GetSale(ctx context.Context, actor domain.Actor, saleID string) (*domain.Sale, error)
	ReceiptQRCode(ctx context.Context, actor domain.Actor, saleID string) ([]byte, error)
}

type ShiftServiceInterface interface {
	OpenShift(ctx context.Context, actor domain.Actor, input domain.OpenShiftInput) (*domain.Shift, error)
	CloseShift(ctx context.Context, actor domain.Actor, shiftID int, input domain.CloseShiftInput) (*domain.Shift, error)
	ActiveShiftFor(ctx context.Context, employeeID int) (*domain.Shift, error)
}

type TableServiceInterface interface {
	SetStatus(ctx context.Context, actor domain.Actor, tableID int, status domain.TableStatus) (*domain.Table, error)
	Reserve(ctx context.Context, actor domain.Actor, tableID int) (*domain.Table, error)
	Release(ctx context.Context, actor domain.Actor, tableID int, requiresCleaning bool) (*domain.Table, error)
}

type SyncServiceInterface interface {
	Reconcile(ctx context.Context, deviceID string, records []domain.SaleRecord) (*domain.SyncResult, error)
	Status(ctx context.Context, deviceID string) (*domain.SyncStatus, error)
	Pending(ctx context.Context, since *time.Time) ([]domain.Sale, error)
}

type ProjectorInterface interface {
	Start(ctx context.Context)
	Process(ctx context.Context, msg domain.EventMessage)
}

var (
	_ OrderRepository   = (*storage.PostgresRepository)(nil)
	_ SyncRepository    = (*storage.PostgresRepository)(nil)
	_ EventPublisher    = (*storage.KafkaPublisher)(nil)
	_ SyncCache         = (*storage.RedisCache)(nil)
	_ StatusInvalidator = (*storage.RedisCache)(nil)
	_ BoardStore        = (*storage.RedisCache)(nil)
	_ BoardReader       = (*storage.RedisCache)(nil)
)
