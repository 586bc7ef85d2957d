package tests

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"restopos/pos-svc/internal/domain"
	"restopos/pos-svc/internal/storage"

	"github.com/shopspring/decimal"
)

// memStore is an in-memory relational store. Transactions are serialised on
// one mutex and roll back to a snapshot on error, which gives the services
// the same all-or-nothing guarantees the Postgres repository does.
//
// Because every transaction holds that mutex, the concurrent tests built on
// it check service-level bookkeeping only. They cannot fail on missing row
// locks or a non-atomic decrement; the SQL that provides those in Postgres
// is pinned by the sqlmock tests in storage_test.go.
type memStore struct {
	mu    sync.Mutex
	state *memState

	// failInsertSale, when set, makes every InsertSale fail with it.
	failInsertSale error
}

type memState struct {
	menu        map[int]domain.MenuItem
	tables      map[int]domain.Table
	customers   map[int]bool
	shifts      map[int]domain.Shift
	sales       map[string]domain.Sale
	nextShiftID int
	nextItemID  int
}

func newMemStore() *memStore {
	return &memStore{state: &memState{
		menu:        map[int]domain.MenuItem{},
		tables:      map[int]domain.Table{},
		customers:   map[int]bool{},
		shifts:      map[int]domain.Shift{},
		sales:       map[string]domain.Sale{},
		nextShiftID: 1,
		nextItemID:  1,
	}}
}

func (s *memState) clone() *memState {
	c := &memState{
		menu:        make(map[int]domain.MenuItem, len(s.menu)),
		tables:      make(map[int]domain.Table, len(s.tables)),
		customers:   make(map[int]bool, len(s.customers)),
		shifts:      make(map[int]domain.Shift, len(s.shifts)),
		sales:       make(map[string]domain.Sale, len(s.sales)),
		nextShiftID: s.nextShiftID,
		nextItemID:  s.nextItemID,
	}
	for k, v := range s.menu {
		c.menu[k] = v
	}
	for k, v := range s.tables {
		c.tables[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.shifts {
		c.shifts[k] = v
	}
	for k, v := range s.sales {
		c.sales[k] = copySale(v)
	}
	return c
}

func copySale(sale domain.Sale) domain.Sale {
	sale.Items = append([]domain.SaleItem(nil), sale.Items...)
	return sale
}

func (m *memStore) InTx(ctx context.Context, fn func(tx storage.Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := m.state.clone()
	if err := fn(&memTx{store: m}); err != nil {
		m.state = snapshot
		return err
	}
	return nil
}

func (m *memStore) GetSale(ctx context.Context, id string) (*domain.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sale, ok := m.state.sales[id]
	if !ok {
		return nil, fmt.Errorf("%w: sale %s", domain.ErrNotFound, id)
	}
	c := copySale(sale)
	return &c, nil
}

func (m *memStore) SyncStatus(ctx context.Context) (*domain.SyncStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	status := &domain.SyncStatus{SyncPercentage: 100}
	for _, sale := range m.state.sales {
		status.TotalSales++
		if sale.SyncState == domain.SyncStateSynced {
			status.SyncedSales++
			if sale.SyncedAt != nil && (status.LastSync == nil || sale.SyncedAt.After(*status.LastSync)) {
				at := *sale.SyncedAt
				status.LastSync = &at
			}
		}
	}
	status.PendingSales = status.TotalSales - status.SyncedSales
	if status.TotalSales > 0 {
		status.SyncPercentage = float64(status.SyncedSales) / float64(status.TotalSales) * 100
	}
	return status, nil
}

func (m *memStore) PendingSales(ctx context.Context, since *time.Time) ([]domain.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sales := []domain.Sale{}
	for _, sale := range m.state.sales {
		if sale.SyncState != domain.SyncStateLocal {
			continue
		}
		if since != nil && !sale.CreatedAt.After(*since) {
			continue
		}
		sales = append(sales, copySale(sale))
	}
	sort.Slice(sales, func(i, j int) bool { return sales[i].CreatedAt.Before(sales[j].CreatedAt) })
	return sales, nil
}

// Fixture helpers. They bypass transactions and are meant for test setup.

func (m *memStore) addMenuItem(id int, name string, price string, stock int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.menu[id] = domain.MenuItem{ID: id, Name: name, UnitPrice: decimal.RequireFromString(price), StockCount: stock, IsActive: true}
}

func (m *memStore) deactivateMenuItem(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item := m.state.menu[id]
	item.IsActive = false
	m.state.menu[id] = item
}

func (m *memStore) addTable(id int, status domain.TableStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.tables[id] = domain.Table{ID: id, Number: id, Capacity: 4, Status: status, IsActive: true}
}

func (m *memStore) addCustomer(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.customers[id] = true
}

func (m *memStore) putSale(sale domain.Sale) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.sales[sale.ID] = copySale(sale)
}

func (m *memStore) stock(id int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.menu[id].StockCount
}

func (m *memStore) table(id int) domain.Table {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.tables[id]
}

func (m *memStore) shift(id int) domain.Shift {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.shifts[id]
}

func (m *memStore) sale(id string) (domain.Sale, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sale, ok := m.state.sales[id]
	return copySale(sale), ok
}

func (m *memStore) saleCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.state.sales)
}

func (m *memStore) sales() []domain.Sale {
	m.mu.Lock()
	defer m.mu.Unlock()
	sales := make([]domain.Sale, 0, len(m.state.sales))
	for _, sale := range m.state.sales {
		sales = append(sales, copySale(sale))
	}
	return sales
}

type memTx struct {
	store *memStore
}

func (t *memTx) st() *memState {
	return t.store.state
}

func (t *memTx) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	item, ok := t.st().menu[id]
	if !ok {
		return nil, fmt.Errorf("%w: menu item %d", domain.ErrNotFound, id)
	}
	return &item, nil
}

func (t *memTx) ReserveStock(ctx context.Context, menuItemID, quantity int) (bool, error) {
	item, ok := t.st().menu[menuItemID]
	if !ok {
		return false, nil
	}
	if item.StockCount == domain.UnlimitedStock {
		return true, nil
	}
	if item.StockCount < quantity {
		return false, nil
	}
	item.StockCount -= quantity
	t.st().menu[menuItemID] = item
	return true, nil
}

func (t *memTx) RestoreStock(ctx context.Context, menuItemID, quantity int) error {
	item, ok := t.st().menu[menuItemID]
	if !ok || item.StockCount == domain.UnlimitedStock {
		return nil
	}
	item.StockCount += quantity
	t.st().menu[menuItemID] = item
	return nil
}

func (t *memTx) ConsumeStock(ctx context.Context, menuItemID, quantity int) error {
	item, ok := t.st().menu[menuItemID]
	if !ok || item.StockCount == domain.UnlimitedStock {
		return nil
	}
	item.StockCount -= quantity
	if item.StockCount < 0 {
		item.StockCount = 0
	}
	t.st().menu[menuItemID] = item
	return nil
}

func (t *memTx) GetTable(ctx context.Context, id int) (*domain.Table, error) {
	table, ok := t.st().tables[id]
	if !ok {
		return nil, fmt.Errorf("%w: table %d", domain.ErrNotFound, id)
	}
	return &table, nil
}

func (t *memTx) UpdateTableStatus(ctx context.Context, id int, status domain.TableStatus) error {
	table := t.st().tables[id]
	table.Status = status
	t.st().tables[id] = table
	return nil
}

func (t *memTx) CustomerExists(ctx context.Context, id int) (bool, error) {
	return t.st().customers[id], nil
}

func (t *memTx) ActiveShift(ctx context.Context, employeeID int) (*domain.Shift, error) {
	for _, shift := range t.st().shifts {
		if shift.EmployeeID == employeeID && shift.Status == domain.ShiftActive {
			return &shift, nil
		}
	}
	return nil, nil
}

func (t *memTx) LockShift(ctx context.Context, id int) (*domain.Shift, error) {
	shift, ok := t.st().shifts[id]
	if !ok {
		return nil, fmt.Errorf("%w: shift %d", domain.ErrNotFound, id)
	}
	return &shift, nil
}

func (t *memTx) InsertShift(ctx context.Context, shift *domain.Shift) error {
	for _, existing := range t.st().shifts {
		if existing.EmployeeID == shift.EmployeeID && existing.Status == domain.ShiftActive {
			return fmt.Errorf("%w: active shift for employee %d", domain.ErrConflict, shift.EmployeeID)
		}
	}
	shift.ID = t.st().nextShiftID
	t.st().nextShiftID++
	t.st().shifts[shift.ID] = *shift
	return nil
}

func (t *memTx) CompletedSaleAmounts(ctx context.Context, shiftID int) ([]domain.SaleAmount, error) {
	var amounts []domain.SaleAmount
	for _, sale := range t.st().sales {
		if sale.ShiftID == shiftID && sale.Status == domain.SaleStatusCompleted {
			amounts = append(amounts, domain.SaleAmount{Total: sale.Total, PaymentMethod: sale.PaymentMethod})
		}
	}
	return amounts, nil
}

func (t *memTx) SaveClosedShift(ctx context.Context, shift *domain.Shift) error {
	t.st().shifts[shift.ID] = *shift
	return nil
}

func (t *memTx) LockSale(ctx context.Context, id string) (*domain.Sale, error) {
	sale, ok := t.st().sales[id]
	if !ok {
		return nil, fmt.Errorf("%w: sale %s", domain.ErrNotFound, id)
	}
	c := copySale(sale)
	return &c, nil
}

func (t *memTx) InsertSale(ctx context.Context, sale *domain.Sale) (bool, error) {
	if t.store.failInsertSale != nil {
		return false, t.store.failInsertSale
	}
	if _, exists := t.st().sales[sale.ID]; exists {
		return false, nil
	}
	if _, ok := t.st().shifts[sale.ShiftID]; !ok {
		return false, fmt.Errorf("%w: shift %d", domain.ErrNotFound, sale.ShiftID)
	}
	if sale.TableID != nil {
		if _, ok := t.st().tables[*sale.TableID]; !ok {
			return false, fmt.Errorf("%w: table %d", domain.ErrNotFound, *sale.TableID)
		}
	}
	if sale.CustomerID != nil && !t.st().customers[*sale.CustomerID] {
		return false, fmt.Errorf("%w: customer %d", domain.ErrNotFound, *sale.CustomerID)
	}
	for i := range sale.Items {
		if _, ok := t.st().menu[sale.Items[i].MenuItemID]; !ok {
			return false, fmt.Errorf("%w: menu item %d", domain.ErrNotFound, sale.Items[i].MenuItemID)
		}
		sale.Items[i].ID = t.st().nextItemID
		sale.Items[i].SaleID = sale.ID
		t.st().nextItemID++
	}
	t.st().sales[sale.ID] = copySale(*sale)
	return true, nil
}

func (t *memTx) MarkSaleCancelled(ctx context.Context, id, notes string, at time.Time) error {
	sale := t.st().sales[id]
	sale.Status = domain.SaleStatusCancelled
	sale.Notes = notes
	sale.CancelledAt = &at
	t.st().sales[id] = sale
	return nil
}

func (t *memTx) MarkSaleSynced(ctx context.Context, id string, at time.Time) (bool, error) {
	sale, ok := t.st().sales[id]
	if !ok {
		return false, nil
	}
	sale.SyncState = domain.SyncStateSynced
	sale.SyncedAt = &at
	t.st().sales[id] = sale
	return true, nil
}

var (
	_ storage.TxRunner = (*memStore)(nil)
	_ storage.Tx       = (*memTx)(nil)
)
