package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"restopos/pos-svc/internal/domain"
	"restopos/pos-svc/internal/storage"

	log "github.com/sirupsen/logrus"
)

// SyncService reconciles sales recorded by disconnected devices. Each record
// is applied in its own transaction so one bad record never blocks the rest
// of a batch.
type SyncService struct {
	repo      SyncRepository
	inventory *InventoryLedger
	cache     SyncCache
	publisher EventPublisher
}

func NewSyncService(repo SyncRepository, inventory *InventoryLedger, cache SyncCache, publisher EventPublisher) *SyncService {
	return &SyncService{
		repo:      repo,
		inventory: inventory,
		cache:     cache,
		publisher: publisher,
	}
}

func (s *SyncService) Reconcile(ctx context.Context, deviceID string, records []domain.SaleRecord) (*domain.SyncResult, error) {
	result := &domain.SyncResult{
		Accepted: []domain.Sale{},
		Rejected: []domain.RejectedRecord{},
	}

	for i := range records {
		record := records[i]
		if record.OriginDeviceID == "" {
			record.OriginDeviceID = deviceID
		}

		sale, err := s.apply(ctx, &record)
		if err != nil {
			log.WithError(err).WithFields(log.Fields{
				"record_id": record.ID,
				"device_id": deviceID,
			}).Warn("sync record rejected")
			result.Rejected = append(result.Rejected, domain.RejectedRecord{
				RecordID: record.ID,
				Reason:   err.Error(),
			})
			continue
		}
		result.Accepted = append(result.Accepted, *sale)
	}

	now := time.Now().UTC()
	if s.cache != nil {
		if err := s.cache.InvalidateStatus(ctx); err != nil {
			log.WithError(err).Warn("failed to invalidate sync status cache")
		}
		if deviceID != "" {
			if err := s.cache.MarkDeviceSync(ctx, deviceID, now); err != nil {
				log.WithError(err).WithField("device_id", deviceID).Warn("failed to record device sync")
			}
		}
	}

	log.WithFields(log.Fields{
		"device_id": deviceID,
		"accepted":  len(result.Accepted),
		"rejected":  len(result.Rejected),
	}).Info("sync batch reconciled")

	publish(ctx, s.publisher, domain.EventMessage{
		Type: domain.EventSyncCompleted,
		Key:  "device:" + deviceID,
		Sync: &domain.SyncSummary{
			DeviceID: deviceID,
			Accepted: result.AcceptedIDs(),
			Rejected: len(result.Rejected),
		},
		Timestamp: now,
	})
	return result, nil
}

// apply reconciles one record: a known id is only marked synced, whatever
// the body says. A new one is validated, stored as sent and its stock
// consumed.
func (s *SyncService) apply(ctx context.Context, record *domain.SaleRecord) (*domain.Sale, error) {
	record.ID = strings.TrimSpace(record.ID)
	if record.ID == "" {
		return nil, fmt.Errorf("%w: id is required", domain.ErrValidation)
	}

	var sale *domain.Sale
	err := s.repo.InTx(ctx, func(tx storage.Tx) error {
		now := time.Now().UTC()
		found, err := tx.MarkSaleSynced(ctx, record.ID, now)
		if err != nil {
			return err
		}
		if found {
			sale, err = tx.LockSale(ctx, record.ID)
			return err
		}

		if err := record.Validate(); err != nil {
			return err
		}
		// Serialises with CloseShift: the record either lands before the
		// totals are computed or is flagged as arriving after them.
		shift, err := tx.LockShift(ctx, record.ShiftID)
		if err != nil {
			return err
		}

		candidate := record.ToSale()
		candidate.SyncState = domain.SyncStateSynced
		candidate.SyncedAt = &now
		inserted, err := tx.InsertSale(ctx, &candidate)
		if err != nil {
			return err
		}
		if !inserted {
			// Another batch stored the same record between our two statements.
			if _, err := tx.MarkSaleSynced(ctx, record.ID, now); err != nil {
				return err
			}
			sale, err = tx.LockSale(ctx, record.ID)
			return err
		}

		if candidate.Status != domain.SaleStatusCancelled {
			consumed := aggregateByItem(candidate.Items, func(i domain.SaleItem) (int, int) { return i.MenuItemID, i.Quantity })
			for _, c := range consumed {
				if err := s.inventory.Consume(ctx, tx, c.MenuItemID, c.Quantity); err != nil {
					return err
				}
			}
		}
		if shift.Status == domain.ShiftClosed && candidate.Status != domain.SaleStatusCancelled {
			log.WithFields(log.Fields{
				"sale_id":  candidate.ID,
				"shift_id": shift.ID,
				"total":    candidate.Total.StringFixed(2),
			}).Warn("synced sale belongs to a closed shift, its totals are not recomputed")
		}
		sale = &candidate
		return nil
	})
	if err != nil {
		return nil, domain.Classify(err)
	}
	return sale, nil
}

// Status reports sync progress across all sales, served from cache when
// fresh. deviceID, when set, adds that device's last sync time.
func (s *SyncService) Status(ctx context.Context, deviceID string) (*domain.SyncStatus, error) {
	status, err := s.cachedStatus(ctx)
	if err != nil {
		return nil, err
	}

	if deviceID != "" && s.cache != nil {
		last, err := s.cache.DeviceLastSync(ctx, deviceID)
		if err != nil {
			log.WithError(err).WithField("device_id", deviceID).Warn("failed to read device sync marker")
		}
		status.DeviceLastSync = last
	}
	return status, nil
}

func (s *SyncService) cachedStatus(ctx context.Context) (*domain.SyncStatus, error) {
	if s.cache != nil {
		cached, err := s.cache.CachedStatus(ctx)
		if err != nil {
			log.WithError(err).Warn("failed to read cached sync status")
		}
		if cached != nil {
			return cached, nil
		}
	}

	status, err := s.repo.SyncStatus(ctx)
	if err != nil {
		return nil, domain.Classify(err)
	}
	if s.cache != nil {
		if err := s.cache.StoreStatus(ctx, status); err != nil {
			log.WithError(err).Warn("failed to cache sync status")
		}
	}
	return status, nil
}

func (s *SyncService) Pending(ctx context.Context, since *time.Time) ([]domain.Sale, error) {
	sales, err := s.repo.PendingSales(ctx, since)
	if err != nil {
		return nil, domain.Classify(err)
	}
	return sales, nil
}

var _ SyncServiceInterface = (*SyncService)(nil)
