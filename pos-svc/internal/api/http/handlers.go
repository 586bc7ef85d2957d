package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"restopos/pos-svc/internal/domain"
	"restopos/pos-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const defaultLeaderboardSize = 10

type Handler struct {
	Orders service.OrderServiceInterface
	Shifts service.ShiftServiceInterface
	Tables service.TableServiceInterface
	Sync   service.SyncServiceInterface
	Board  service.BoardReader
	Auth   *Authenticator
}

func NewHandler(
	orders service.OrderServiceInterface,
	shifts service.ShiftServiceInterface,
	tables service.TableServiceInterface,
	sync service.SyncServiceInterface,
	board service.BoardReader,
	auth *Authenticator,
) *Handler {
	return &Handler{
		Orders: orders,
		Shifts: shifts,
		Tables: tables,
		Sync:   sync,
		Board:  board,
		Auth:   auth,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	if h.Auth != nil {
		api.Use(h.Auth.Middleware)
	}

	api.HandleFunc("/sales", h.createSale).Methods("POST")
	api.HandleFunc("/sales/{id}", h.getSale).Methods("GET")
	api.HandleFunc("/sales/{id}/cancel", h.cancelSale).Methods("PUT")
	api.HandleFunc("/sales/{id}/qrcode", h.getSaleQRCode).Methods("GET")

	api.HandleFunc("/shifts", h.openShift).Methods("POST")
	api.HandleFunc("/shifts/active", h.getActiveShift).Methods("GET")
	api.HandleFunc("/shifts/{id}/close", h.closeShift).Methods("PUT")

	api.HandleFunc("/tables/board", h.getTableBoard).Methods("GET")
	api.HandleFunc("/tables/{id}/status", h.setTableStatus).Methods("PUT")
	api.HandleFunc("/tables/{id}/reserve", h.reserveTable).Methods("POST")
	api.HandleFunc("/tables/{id}/free", h.freeTable).Methods("POST")

	api.HandleFunc("/analytics/daily", h.getDailyLeaderboard).Methods("GET")

	api.HandleFunc("/sync/sales", h.syncSales).Methods("POST")
	api.HandleFunc("/sync/status", h.getSyncStatus).Methods("GET")
	api.HandleFunc("/sync/pending", h.getPendingSales).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "pos-svc"})
}

// actor resolves the authenticated employee or answers 401.
func (h *Handler) actor(w http.ResponseWriter, r *http.Request) (domain.Actor, bool) {
	actor, ok := ActorFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Code: "unauthorized"})
	}
	return actor, ok
}

// decodeBody decodes an optional JSON body; an empty body leaves dst as is.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

type createSaleRequest struct {
	ID             string             `json:"id"`
	OrderType      domain.OrderType   `json:"order_type"`
	TableID        *int               `json:"table_id"`
	CustomerID     *int               `json:"customer_id"`
	DeliveryFee    decimal.Decimal    `json:"delivery_fee"`
	PaymentMethod  string             `json:"payment_method"`
	OriginDeviceID string             `json:"origin_device_id"`
	Notes          string             `json:"notes"`
	Items          []domain.LineInput `json:"items"`
}

func (h *Handler) createSale(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req createSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid payload")
		return
	}

	target, err := domain.NewOrderTarget(req.OrderType, req.TableID, req.CustomerID, req.DeliveryFee)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sale, err := h.Orders.CreateSale(r.Context(), actor, domain.CreateSaleInput{
		ID:             req.ID,
		Target:         target,
		Lines:          req.Items,
		PaymentMethod:  req.PaymentMethod,
		OriginDeviceID: req.OriginDeviceID,
		Notes:          req.Notes,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sale)
}

func (h *Handler) getSale(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	sale, err := h.Orders.GetSale(r.Context(), actor, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sale)
}

func (h *Handler) cancelSale(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid payload")
		return
	}

	sale, err := h.Orders.CancelSale(r.Context(), actor, mux.Vars(r)["id"], req.Reason)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sale)
}

func (h *Handler) getSaleQRCode(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	png, err := h.Orders.ReceiptQRCode(r.Context(), actor, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) openShift(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req struct {
		EmployeeID   int             `json:"employee_id"`
		StartingCash decimal.Decimal `json:"starting_cash"`
		DeviceID     string          `json:"device_id"`
		Notes        string          `json:"notes"`
	}
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid payload")
		return
	}

	shift, err := h.Shifts.OpenShift(r.Context(), actor, domain.OpenShiftInput{
		EmployeeID:   req.EmployeeID,
		StartingCash: req.StartingCash,
		DeviceID:     req.DeviceID,
		Notes:        req.Notes,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, shift)
}

func (h *Handler) getActiveShift(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	employeeID := actor.EmployeeID
	if raw := r.URL.Query().Get("employee_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			badRequest(w, "invalid employee_id")
			return
		}
		employeeID = id
	}
	if !actor.CanActOn(employeeID) {
		writeError(w, r, domain.ErrForbidden)
		return
	}

	shift, err := h.Shifts.ActiveShiftFor(r.Context(), employeeID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]*domain.Shift{"shift": shift})
}

func (h *Handler) closeShift(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	shiftID, err := pathID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req struct {
		EndingCash decimal.Decimal `json:"ending_cash"`
		Notes      string          `json:"notes"`
	}
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid payload")
		return
	}

	shift, err := h.Shifts.CloseShift(r.Context(), actor, shiftID, domain.CloseShiftInput{
		EndingCash: req.EndingCash,
		Notes:      req.Notes,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, shift)
}

func (h *Handler) setTableStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	tableID, err := pathID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid payload")
		return
	}
	status, err := domain.ParseTableStatus(req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	table, err := h.Tables.SetStatus(r.Context(), actor, tableID, status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) reserveTable(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	tableID, err := pathID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	table, err := h.Tables.Reserve(r.Context(), actor, tableID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) freeTable(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	tableID, err := pathID(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	var req struct {
		RequiresCleaning bool `json:"requires_cleaning"`
	}
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid payload")
		return
	}

	table, err := h.Tables.Release(r.Context(), actor, tableID, req.RequiresCleaning)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) getTableBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.Board.TableBoard(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	stats := map[domain.TableStatus]int{
		domain.TableAvailable: 0,
		domain.TableOccupied:  0,
		domain.TableReserved:  0,
		domain.TableCleaning:  0,
	}
	for _, status := range board {
		stats[status]++
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tables": board,
		"stats":  stats,
		"total":  len(board),
	})
}

func (h *Handler) getDailyLeaderboard(w http.ResponseWriter, r *http.Request) {
	day := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			badRequest(w, "date must be YYYY-MM-DD")
			return
		}
		day = parsed
	}

	limit := defaultLeaderboardSize
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			badRequest(w, "invalid limit")
			return
		}
		limit = n
	}

	items, err := h.Board.TopItems(r.Context(), day, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":  day.Format("2006-01-02"),
		"items": items,
	})
}

func (h *Handler) syncSales(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.actor(w, r); !ok {
		return
	}

	// Records are decoded one by one so a malformed record is rejected on
	// its own instead of failing the whole batch.
	var payload struct {
		DeviceID string            `json:"device_id"`
		Sales    []json.RawMessage `json:"sales"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(w, "invalid payload")
		return
	}
	if payload.Sales == nil {
		badRequest(w, "sales must be an array")
		return
	}

	records := make([]domain.SaleRecord, 0, len(payload.Sales))
	var malformed []domain.RejectedRecord
	for _, raw := range payload.Sales {
		var record domain.SaleRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			malformed = append(malformed, domain.RejectedRecord{
				RecordID: rawRecordID(raw),
				Reason:   fmt.Sprintf("%v: malformed record: %v", domain.ErrValidation, err),
			})
			continue
		}
		records = append(records, record)
	}

	result, err := h.Sync.Reconcile(r.Context(), payload.DeviceID, records)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if len(malformed) > 0 {
		log.WithFields(log.Fields{
			"device_id": payload.DeviceID,
			"malformed": len(malformed),
		}).Warn("sync batch carried malformed records")
		result.Rejected = append(result.Rejected, malformed...)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"accepted":       result.Accepted,
		"rejected":       result.Rejected,
		"accepted_count": len(result.Accepted),
		"rejected_count": len(result.Rejected),
	})
}

// rawRecordID recovers the id of a record that failed to decode, or "".
func rawRecordID(raw json.RawMessage) string {
	var head struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return ""
	}
	return strings.TrimSpace(head.ID)
}

func (h *Handler) getSyncStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.Sync.Status(r.Context(), r.URL.Query().Get("device_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *Handler) getPendingSales(w http.ResponseWriter, r *http.Request) {
	var since *time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			badRequest(w, "since must be an RFC3339 timestamp")
			return
		}
		since = &parsed
	}

	sales, err := h.Sync.Pending(r.Context(), since)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"pending_sales": sales,
		"count":         len(sales),
	})
}
