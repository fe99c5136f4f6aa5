package service

import (
	"time"

	"warung-pos/internal/domain"
)

type PaymentService struct {
	repo   PaymentRepository
	orders OrderRepository
}

func NewPaymentService(repo PaymentRepository, orders OrderRepository) *PaymentService {
	return &PaymentService{repo: repo, orders: orders}
}

// Record opens a ledger entry for an order. Cash settles on the spot, every
// other method starts out pending.
func (s *PaymentService) Record(orderID, amount int, method domain.PaymentMethod, customerName string) (*domain.Payment, error) {
	if amount <= 0 {
		return nil, domain.NewValidationError("payment amount must be positive")
	}
	if !method.Valid() {
		return nil, domain.NewValidationError("unknown payment method")
	}
	if _, err := s.orders.GetOrder(orderID); err != nil {
		return nil, err
	}

	status := domain.PaymentPending
	if method == domain.MethodCash {
		status = domain.PaymentPaid
	}

	now := time.Now()
	payment := &domain.Payment{
		OrderID:      orderID,
		Amount:       amount,
		Method:       method,
		Status:       status,
		CustomerName: customerName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.CreatePayment(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// RecordForOrder backs the order engine's completion hook: it opens a pending
// entry for the order total unless the ledger already has one.
func (s *PaymentService) RecordForOrder(orderID, amount int) error {
	if existing, err := s.repo.GetPaymentByOrder(orderID); err == nil && existing != nil {
		return nil
	}
	now := time.Now()
	payment := &domain.Payment{
		OrderID:   orderID,
		Amount:    amount,
		Method:    domain.MethodCash,
		Status:    domain.PaymentPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.repo.CreatePayment(payment)
}

// UpdateStatus transitions a payment. Empty notes leave the previous notes in
// place; only non-empty input overwrites them.
func (s *PaymentService) UpdateStatus(id int, status domain.PaymentStatus, notes string) (*domain.Payment, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("unknown payment status")
	}
	payment, err := s.repo.GetPayment(id)
	if err != nil {
		return nil, err
	}
	payment.Status = status
	if notes != "" {
		payment.Notes = notes
	}
	payment.UpdatedAt = time.Now()
	if err := s.repo.UpdatePayment(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) Get(id int) (*domain.Payment, error) {
	return s.repo.GetPayment(id)
}

func (s *PaymentService) List() ([]domain.Payment, error) {
	payments, err := s.repo.ListPayments()
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// SalesReport aggregates paid payments created inside [start, end], both
// bounds inclusive. Pure projection: no state is touched.
func (s *PaymentService) SalesReport(start, end time.Time) (*domain.SalesReport, error) {
	if end.Before(start) {
		return nil, domain.NewValidationError("report period end precedes start")
	}
	payments, err := s.repo.ListPayments()
	if err != nil {
		return nil, err
	}

	breakdown := make(map[domain.PaymentMethod]int, len(domain.AllPaymentMethods()))
	for _, method := range domain.AllPaymentMethods() {
		breakdown[method] = 0
	}

	report := &domain.SalesReport{
		PaymentMethodBreakdown: breakdown,
		PeriodStart:            start,
		PeriodEnd:              end,
	}
	for _, payment := range payments {
		if payment.Status != domain.PaymentPaid {
			continue
		}
		if payment.CreatedAt.Before(start) || payment.CreatedAt.After(end) {
			continue
		}
		report.TotalRevenue += payment.Amount
		report.TransactionCount++
		breakdown[payment.Method] += payment.Amount
	}
	return report, nil
}

var _ PaymentServiceInterface = (*PaymentService)(nil)
var _ PaymentRecorder = (*PaymentService)(nil)
