package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"restopos/pos-svc/internal/domain"
	"restopos/pos-svc/internal/storage"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// ShiftService is the per-employee cash shift ledger.
type ShiftService struct {
	repo storage.TxRunner
}

func NewShiftService(repo storage.TxRunner) *ShiftService {
	return &ShiftService{repo: repo}
}

// OpenShift starts a shift. Employees open their own; managers and admins
// may open one for anyone.
func (s *ShiftService) OpenShift(ctx context.Context, actor domain.Actor, input domain.OpenShiftInput) (*domain.Shift, error) {
	if input.EmployeeID == 0 {
		input.EmployeeID = actor.EmployeeID
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if !actor.CanActOn(input.EmployeeID) {
		return nil, fmt.Errorf("%w: cannot open a shift for employee %d", domain.ErrForbidden, input.EmployeeID)
	}

	shift := &domain.Shift{
		EmployeeID:   input.EmployeeID,
		StartTime:    time.Now().UTC(),
		StartingCash: input.StartingCash,
		TotalSales:   decimal.Zero,
		CashTotal:    decimal.Zero,
		CardTotal:    decimal.Zero,
		Status:       domain.ShiftActive,
		Notes:        input.Notes,
		DeviceID:     input.DeviceID,
	}
	err := s.repo.InTx(ctx, func(tx storage.Tx) error {
		existing, err := tx.ActiveShift(ctx, input.EmployeeID)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: employee %d already has active shift %d", domain.ErrConflict, input.EmployeeID, existing.ID)
		}
		// The partial unique index still rejects a racing open with ErrConflict.
		return tx.InsertShift(ctx, shift)
	})
	if err != nil {
		return nil, domain.Classify(err)
	}

	log.WithFields(log.Fields{
		"shift_id":    shift.ID,
		"employee_id": shift.EmployeeID,
		"device_id":   shift.DeviceID,
	}).Info("shift opened")
	return shift, nil
}

// CloseShift settles a shift against the completed sales recorded on it.
// The shift row lock makes the close wait for sales still being written.
func (s *ShiftService) CloseShift(ctx context.Context, actor domain.Actor, shiftID int, input domain.CloseShiftInput) (*domain.Shift, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var shift *domain.Shift
	err := s.repo.InTx(ctx, func(tx storage.Tx) error {
		var err error
		if shift, err = tx.LockShift(ctx, shiftID); err != nil {
			return err
		}
		if !actor.CanActOn(shift.EmployeeID) {
			return fmt.Errorf("%w: shift %d belongs to another employee", domain.ErrForbidden, shiftID)
		}
		if shift.Status == domain.ShiftClosed {
			return fmt.Errorf("%w: shift %d", domain.ErrAlreadyClosed, shiftID)
		}

		amounts, err := tx.CompletedSaleAmounts(ctx, shiftID)
		if err != nil {
			return err
		}
		domain.ComputeShiftTotals(amounts).Apply(shift)

		now := time.Now().UTC()
		shift.EndTime = &now
		shift.EndingCash = decimal.NewNullDecimal(input.EndingCash)
		shift.ExpectedCash = decimal.NewNullDecimal(shift.StartingCash.Add(shift.CashTotal))
		shift.Status = domain.ShiftClosed
		if notes := strings.TrimSpace(input.Notes); notes != "" {
			shift.Notes = notes
		}
		return tx.SaveClosedShift(ctx, shift)
	})
	if err != nil {
		return nil, domain.Classify(err)
	}

	log.WithFields(log.Fields{
		"shift_id":      shift.ID,
		"employee_id":   shift.EmployeeID,
		"total_sales":   shift.TotalSales.StringFixed(2),
		"expected_cash": shift.ExpectedCash.Decimal.StringFixed(2),
		"ending_cash":   input.EndingCash.StringFixed(2),
		"transactions":  shift.TransactionCount,
	}).Info("shift closed")
	return shift, nil
}

// ActiveShiftFor returns the employee's active shift with live totals, or
// nil when none is open. The totals are not persisted.
func (s *ShiftService) ActiveShiftFor(ctx context.Context, employeeID int) (*domain.Shift, error) {
	var shift *domain.Shift
	err := s.repo.InTx(ctx, func(tx storage.Tx) error {
		var err error
		if shift, err = tx.ActiveShift(ctx, employeeID); err != nil || shift == nil {
			return err
		}
		amounts, err := tx.CompletedSaleAmounts(ctx, shift.ID)
		if err != nil {
			return err
		}
		domain.ComputeShiftTotals(amounts).Apply(shift)
		return nil
	})
	if err != nil {
		return nil, domain.Classify(err)
	}
	return shift, nil
}

var _ ShiftServiceInterface = (*ShiftService)(nil)
