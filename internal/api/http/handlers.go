package httpapi

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"warung-pos/internal/domain"
	"warung-pos/internal/service"

	"github.com/gorilla/mux"
)

// KitchenView is what the board endpoint needs from the poller.
type KitchenView interface {
	Snapshot() domain.KitchenSnapshot
}

type Handler struct {
	Catalog  service.CatalogServiceInterface
	Orders   service.OrderServiceInterface
	Payments service.PaymentServiceInterface
	Kitchen  KitchenView
	QR       service.QRGenerator
}

func NewHandler(catalog service.CatalogServiceInterface, orders service.OrderServiceInterface,
	payments service.PaymentServiceInterface, kitchen KitchenView, qr service.QRGenerator) *Handler {
	return &Handler{
		Catalog:  catalog,
		Orders:   orders,
		Payments: payments,
		Kitchen:  kitchen,
		QR:       qr,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err) || errors.Is(err, domain.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case domain.IsNotFound(err):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrDuplicateTableNumber):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "warung-pos",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Catalog.ListMenuItems()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Catalog.ListCategories()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) setMenuItemAvailability(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var body struct {
		Available  bool `json:"available"`
		OutOfStock bool `json:"out_of_stock"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	item, err := h.Catalog.SetMenuItemAvailability(id, body.Available, body.OutOfStock)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) getTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Catalog.ListTables()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) getTable(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	table, err := h.Catalog.GetTable(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) addTable(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Number int `json:"number"`
		Seats  int `json:"seats"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	table, err := h.Catalog.AddTable(body.Number, body.Seats)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, table)
}

func (h *Handler) setTableStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var body struct {
		Status  domain.TableStatus `json:"status"`
		OrderID int                `json:"order_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	table, err := h.Catalog.SetTableStatus(id, body.Status, body.OrderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) getTableQRCode(w http.ResponseWriter, r *http.Request) {
	number, _ := strconv.Atoi(mux.Vars(r)["number"])
	if _, err := h.Catalog.GetTableByNumber(number); err != nil {
		writeError(w, err)
		return
	}
	png, err := h.QR.Generate(number)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TableNumber     int                `json:"table_number"`
		Items           []domain.OrderItem `json:"items"`
		SpecialRequests string             `json:"special_requests"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Orders.Create(body.TableNumber, body.Items, body.SpecialRequests)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	if status := r.URL.Query().Get("status"); status != "" {
		orders, err := h.Orders.ListByStatus(domain.OrderStatus(status))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, orders)
		return
	}
	orders, err := h.Orders.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrderHistory(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.History()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var body struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Orders.UpdateStatus(id, body.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderKitchenDetails(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var body struct {
		AssignedChef     string `json:"assigned_chef"`
		PreparationNotes string `json:"preparation_notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Orders.UpdateKitchenDetails(id, body.AssignedChef, body.PreparationNotes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getKitchenBoard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Kitchen.Snapshot())
}

func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OrderID      int                  `json:"order_id"`
		Amount       int                  `json:"amount"`
		Method       domain.PaymentMethod `json:"method"`
		CustomerName string               `json:"customer_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	payment, err := h.Payments.Record(body.OrderID, body.Amount, body.Method, body.CustomerName)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

func (h *Handler) getPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Payments.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *Handler) updatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var body struct {
		Status domain.PaymentStatus `json:"status"`
		Notes  string               `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	payment, err := h.Payments.UpdateStatus(id, body.Status, body.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (h *Handler) exportPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Payments.List()
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="payments.csv"`)

	cw := csv.NewWriter(w)
	cw.Write([]string{"id", "order_id", "amount", "method", "status", "customer_name", "created_at"})
	for _, p := range payments {
		cw.Write([]string{
			strconv.Itoa(p.ID),
			strconv.Itoa(p.OrderID),
			strconv.Itoa(p.Amount),
			string(p.Method),
			string(p.Status),
			p.CustomerName,
			p.CreatedAt.Format(time.RFC3339),
		})
	}
	cw.Flush()
}

func (h *Handler) getSalesReport(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse("2006-01-02", r.URL.Query().Get("start"))
	if err != nil {
		http.Error(w, "start must be a YYYY-MM-DD date", http.StatusBadRequest)
		return
	}
	end, err := time.Parse("2006-01-02", r.URL.Query().Get("end"))
	if err != nil {
		http.Error(w, "end must be a YYYY-MM-DD date", http.StatusBadRequest)
		return
	}
	// Dates come in day-granular; stretch the end to cover its whole day so
	// both bounds stay inclusive.
	end = end.Add(24*time.Hour - time.Nanosecond)

	report, err := h.Payments.SalesReport(start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
