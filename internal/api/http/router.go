package httpapi

import "github.com/gorilla/mux"

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/categories", h.getMenuCategories).Methods("GET")
	r.HandleFunc("/api/menu/{id}/availability", h.setMenuItemAvailability).Methods("PUT")

	r.HandleFunc("/api/tables", h.getTables).Methods("GET")
	r.HandleFunc("/api/tables", h.addTable).Methods("POST")
	r.HandleFunc("/api/tables/{number:[0-9]+}/qrcode", h.getTableQRCode).Methods("GET")
	r.HandleFunc("/api/tables/{id:[0-9]+}", h.getTable).Methods("GET")
	r.HandleFunc("/api/tables/{id:[0-9]+}/status", h.setTableStatus).Methods("PUT")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/history", h.getOrderHistory).Methods("GET")
	r.HandleFunc("/api/orders/{id:[0-9]+}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id:[0-9]+}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id:[0-9]+}/kitchen", h.updateOrderKitchenDetails).Methods("PUT")

	r.HandleFunc("/api/kitchen", h.getKitchenBoard).Methods("GET")

	r.HandleFunc("/api/payments", h.recordPayment).Methods("POST")
	r.HandleFunc("/api/payments", h.getPayments).Methods("GET")
	r.HandleFunc("/api/payments/export", h.exportPayments).Methods("GET")
	r.HandleFunc("/api/payments/{id:[0-9]+}/status", h.updatePaymentStatus).Methods("PUT")

	r.HandleFunc("/api/reports/sales", h.getSalesReport).Methods("GET")
}
