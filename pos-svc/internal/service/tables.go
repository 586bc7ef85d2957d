package service

import (
	"context"
	"fmt"

	"restopos/pos-svc/internal/domain"
	"restopos/pos-svc/internal/storage"

	log "github.com/sirupsen/logrus"
)

// TableService is the table state machine. Orders drive available to
// occupied; staff drive every other transition.
type TableService struct {
	repo      storage.TxRunner
	publisher EventPublisher
}

func NewTableService(repo storage.TxRunner, publisher EventPublisher) *TableService {
	return &TableService{repo: repo, publisher: publisher}
}

// lockTable loads and locks an active table.
func lockTable(ctx context.Context, tx storage.Tx, tableID int) (*domain.Table, error) {
	table, err := tx.GetTable(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if !table.IsActive {
		return nil, fmt.Errorf("%w: table %d is not active", domain.ErrNotFound, tableID)
	}
	return table, nil
}

// transition applies status to a locked table and returns the change, or
// nil when the table was already in that state.
func transition(ctx context.Context, tx storage.Tx, table *domain.Table, status domain.TableStatus) (*domain.TableChange, error) {
	if table.Status == status {
		return nil, nil
	}
	if err := tx.UpdateTableStatus(ctx, table.ID, status); err != nil {
		return nil, err
	}
	change := &domain.TableChange{TableID: table.ID, From: table.Status, To: status}
	table.Status = status
	return change, nil
}

// Occupy marks a table occupied as part of a dine-in sale. Occupying an
// already occupied table is allowed and changes nothing.
func (s *TableService) Occupy(ctx context.Context, tx storage.Tx, table *domain.Table) (*domain.TableChange, error) {
	return transition(ctx, tx, table, domain.TableOccupied)
}

func (s *TableService) SetStatus(ctx context.Context, actor domain.Actor, tableID int, status domain.TableStatus) (*domain.Table, error) {
	if _, err := domain.ParseTableStatus(string(status)); err != nil {
		return nil, err
	}
	return s.apply(ctx, actor, tableID, func(tx storage.Tx, table *domain.Table) (domain.TableStatus, error) {
		return status, nil
	})
}

// Reserve holds an available table for an upcoming party.
func (s *TableService) Reserve(ctx context.Context, actor domain.Actor, tableID int) (*domain.Table, error) {
	return s.apply(ctx, actor, tableID, func(tx storage.Tx, table *domain.Table) (domain.TableStatus, error) {
		if table.Status != domain.TableAvailable {
			return "", fmt.Errorf("%w: table %d is %s", domain.ErrConflict, table.ID, table.Status)
		}
		return domain.TableReserved, nil
	})
}

// Release frees a table, straight to available or through cleaning. Open
// sales on the table do not block it.
func (s *TableService) Release(ctx context.Context, actor domain.Actor, tableID int, requiresCleaning bool) (*domain.Table, error) {
	return s.apply(ctx, actor, tableID, func(tx storage.Tx, table *domain.Table) (domain.TableStatus, error) {
		if requiresCleaning {
			return domain.TableCleaning, nil
		}
		return domain.TableAvailable, nil
	})
}

func (s *TableService) apply(
	ctx context.Context,
	actor domain.Actor,
	tableID int,
	decide func(tx storage.Tx, table *domain.Table) (domain.TableStatus, error),
) (*domain.Table, error) {
	var (
		table  *domain.Table
		change *domain.TableChange
	)
	err := s.repo.InTx(ctx, func(tx storage.Tx) error {
		var err error
		if table, err = lockTable(ctx, tx, tableID); err != nil {
			return err
		}
		status, err := decide(tx, table)
		if err != nil {
			return err
		}
		change, err = transition(ctx, tx, table, status)
		return err
	})
	if err != nil {
		return nil, domain.Classify(err)
	}

	if change != nil {
		log.WithFields(log.Fields{
			"table_id":    change.TableID,
			"from":        change.From,
			"to":          change.To,
			"employee_id": actor.EmployeeID,
		}).Info("table status changed")
		publish(ctx, s.publisher, tableEvent(change))
	}
	return table, nil
}

var _ TableServiceInterface = (*TableService)(nil)
