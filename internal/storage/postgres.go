package storage

import (
	"database/sql"
	"fmt"

	"warung-pos/internal/domain"
)

// PostgresStore is the optional durable backend. It implements the same
// repository interfaces as MemoryStore; services never know which one they
// talk to.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (s *PostgresStore) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS menu_items (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price INTEGER NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			available BOOLEAN NOT NULL DEFAULT TRUE,
			out_of_stock BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS dining_tables (
			id INTEGER PRIMARY KEY,
			number INTEGER NOT NULL UNIQUE,
			seats INTEGER NOT NULL,
			status TEXT NOT NULL DEFAULT 'available',
			current_order_id INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			table_number INTEGER NOT NULL,
			status TEXT NOT NULL,
			total_amount INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			completion_time TIMESTAMPTZ,
			assigned_chef TEXT NOT NULL DEFAULT '',
			preparation_notes TEXT NOT NULL DEFAULT '',
			special_requests TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			order_id INTEGER NOT NULL REFERENCES orders(id),
			item_id INTEGER NOT NULL,
			menu_item_id TEXT NOT NULL,
			name TEXT NOT NULL,
			price INTEGER NOT NULL,
			quantity INTEGER NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (order_id, item_id)
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL,
			amount INTEGER NOT NULL,
			method TEXT NOT NULL,
			status TEXT NOT NULL,
			transaction_id TEXT NOT NULL DEFAULT '',
			customer_name TEXT NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) CreateMenuItem(item *domain.MenuItem) error {
	_, err := s.DB.Exec(`
		INSERT INTO menu_items (id, name, description, price, category, image_url, available, out_of_stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING`,
		item.ID, item.Name, item.Description, item.Price, item.Category, item.ImageURL, item.Available, item.OutOfStock)
	return err
}

func (s *PostgresStore) ListMenuItems() ([]domain.MenuItem, error) {
	rows, err := s.DB.Query(`
		SELECT id, name, description, price, category, image_url, available, out_of_stock
		FROM menu_items
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price,
			&item.Category, &item.ImageURL, &item.Available, &item.OutOfStock); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *PostgresStore) GetMenuItem(id string) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := s.DB.QueryRow(`
		SELECT id, name, description, price, category, image_url, available, out_of_stock
		FROM menu_items WHERE id = $1`, id).
		Scan(&item.ID, &item.Name, &item.Description, &item.Price,
			&item.Category, &item.ImageURL, &item.Available, &item.OutOfStock)
	if err == sql.ErrNoRows {
		return nil, domain.ErrMenuItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *PostgresStore) UpdateMenuItem(item *domain.MenuItem) error {
	result, err := s.DB.Exec(`
		UPDATE menu_items
		SET name=$1, description=$2, price=$3, category=$4, image_url=$5, available=$6, out_of_stock=$7
		WHERE id=$8`,
		item.Name, item.Description, item.Price, item.Category, item.ImageURL,
		item.Available, item.OutOfStock, item.ID)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

func (s *PostgresStore) ListTables() ([]domain.Table, error) {
	rows, err := s.DB.Query(`
		SELECT id, number, seats, status, current_order_id
		FROM dining_tables
		ORDER BY number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []domain.Table{}
	for rows.Next() {
		var table domain.Table
		if err := rows.Scan(&table.ID, &table.Number, &table.Seats, &table.Status, &table.CurrentOrderID); err != nil {
			continue
		}
		tables = append(tables, table)
	}
	return tables, nil
}

func (s *PostgresStore) GetTable(id int) (*domain.Table, error) {
	return s.scanTable(`SELECT id, number, seats, status, current_order_id FROM dining_tables WHERE id = $1`, id)
}

func (s *PostgresStore) GetTableByNumber(number int) (*domain.Table, error) {
	return s.scanTable(`SELECT id, number, seats, status, current_order_id FROM dining_tables WHERE number = $1`, number)
}

func (s *PostgresStore) scanTable(query string, arg int) (*domain.Table, error) {
	var table domain.Table
	err := s.DB.QueryRow(query, arg).
		Scan(&table.ID, &table.Number, &table.Seats, &table.Status, &table.CurrentOrderID)
	if err == sql.ErrNoRows {
		return nil, domain.ErrTableNotFound
	}
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (s *PostgresStore) AddTable(table *domain.Table) error {
	var exists bool
	if err := s.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM dining_tables WHERE number = $1)`, table.Number).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicateTableNumber
	}
	return s.DB.QueryRow(`
		INSERT INTO dining_tables (id, number, seats, status, current_order_id)
		SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, 0 FROM dining_tables
		RETURNING id`,
		table.Number, table.Seats, table.Status).Scan(&table.ID)
}

func (s *PostgresStore) UpdateTable(table *domain.Table) error {
	result, err := s.DB.Exec(`
		UPDATE dining_tables SET seats=$1, status=$2, current_order_id=$3 WHERE id=$4`,
		table.Seats, table.Status, table.CurrentOrderID, table.ID)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrTableNotFound
	}
	return nil
}

func (s *PostgresStore) CreateOrder(order *domain.Order, table *domain.Table) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (table_number, status, total_amount, created_at, updated_at,
			assigned_chef, preparation_notes, special_requests)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		order.TableNumber, order.Status, order.TotalAmount, order.CreatedAt, order.UpdatedAt,
		order.AssignedChef, order.PreparationNotes, order.SpecialRequests).Scan(&order.ID); err != nil {
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, item_id, menu_item_id, name, price, quantity, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			order.ID, item.ID, item.MenuItemID, item.Name, item.Price, item.Quantity, item.Notes); err != nil {
			return err
		}
	}

	if table != nil {
		table.CurrentOrderID = order.ID
		if _, err := tx.Exec(`
			UPDATE dining_tables SET status=$1, current_order_id=$2 WHERE id=$3`,
			table.Status, table.CurrentOrderID, table.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *PostgresStore) GetOrder(id int) (*domain.Order, error) {
	var order domain.Order
	var completion sql.NullTime
	err := s.DB.QueryRow(`
		SELECT id, table_number, status, total_amount, created_at, updated_at,
			completion_time, assigned_chef, preparation_notes, special_requests
		FROM orders WHERE id = $1`, id).
		Scan(&order.ID, &order.TableNumber, &order.Status, &order.TotalAmount,
			&order.CreatedAt, &order.UpdatedAt, &completion,
			&order.AssignedChef, &order.PreparationNotes, &order.SpecialRequests)
	if err == sql.ErrNoRows {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if completion.Valid {
		t := completion.Time
		order.CompletionTime = &t
	}

	items, err := s.orderItems(order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (s *PostgresStore) ListOrders() ([]domain.Order, error) {
	rows, err := s.DB.Query(`
		SELECT id, table_number, status, total_amount, created_at, updated_at,
			completion_time, assigned_chef, preparation_notes, special_requests
		FROM orders
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		var completion sql.NullTime
		if err := rows.Scan(&order.ID, &order.TableNumber, &order.Status, &order.TotalAmount,
			&order.CreatedAt, &order.UpdatedAt, &completion,
			&order.AssignedChef, &order.PreparationNotes, &order.SpecialRequests); err != nil {
			continue
		}
		if completion.Valid {
			t := completion.Time
			order.CompletionTime = &t
		}
		orders = append(orders, order)
	}

	for i := range orders {
		items, err := s.orderItems(orders[i].ID)
		if err != nil {
			continue
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (s *PostgresStore) orderItems(orderID int) ([]domain.OrderItem, error) {
	rows, err := s.DB.Query(`
		SELECT item_id, menu_item_id, name, price, quantity, notes
		FROM order_items
		WHERE order_id = $1
		ORDER BY item_id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.MenuItemID, &item.Name, &item.Price, &item.Quantity, &item.Notes); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *PostgresStore) UpdateOrder(order *domain.Order, table *domain.Table) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var completion sql.NullTime
	if order.CompletionTime != nil {
		completion = sql.NullTime{Time: *order.CompletionTime, Valid: true}
	}
	result, err := tx.Exec(`
		UPDATE orders
		SET status=$1, updated_at=$2, completion_time=$3, assigned_chef=$4, preparation_notes=$5
		WHERE id=$6`,
		order.Status, order.UpdatedAt, completion, order.AssignedChef, order.PreparationNotes, order.ID)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrOrderNotFound
	}

	if table != nil {
		if _, err := tx.Exec(`
			UPDATE dining_tables SET status=$1, current_order_id=$2 WHERE id=$3`,
			table.Status, table.CurrentOrderID, table.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *PostgresStore) CreatePayment(payment *domain.Payment) error {
	return s.DB.QueryRow(`
		INSERT INTO payments (order_id, amount, method, status, transaction_id, customer_name, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		payment.OrderID, payment.Amount, payment.Method, payment.Status,
		payment.TransactionID, payment.CustomerName, payment.Notes,
		payment.CreatedAt, payment.UpdatedAt).Scan(&payment.ID)
}

func (s *PostgresStore) GetPayment(id int) (*domain.Payment, error) {
	return s.scanPayment(`
		SELECT id, order_id, amount, method, status, transaction_id, customer_name, notes, created_at, updated_at
		FROM payments WHERE id = $1`, id)
}

func (s *PostgresStore) GetPaymentByOrder(orderID int) (*domain.Payment, error) {
	return s.scanPayment(`
		SELECT id, order_id, amount, method, status, transaction_id, customer_name, notes, created_at, updated_at
		FROM payments WHERE order_id = $1
		ORDER BY id DESC LIMIT 1`, orderID)
}

func (s *PostgresStore) scanPayment(query string, arg int) (*domain.Payment, error) {
	var payment domain.Payment
	err := s.DB.QueryRow(query, arg).
		Scan(&payment.ID, &payment.OrderID, &payment.Amount, &payment.Method, &payment.Status,
			&payment.TransactionID, &payment.CustomerName, &payment.Notes,
			&payment.CreatedAt, &payment.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *PostgresStore) ListPayments() ([]domain.Payment, error) {
	rows, err := s.DB.Query(`
		SELECT id, order_id, amount, method, status, transaction_id, customer_name, notes, created_at, updated_at
		FROM payments
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(&payment.ID, &payment.OrderID, &payment.Amount, &payment.Method, &payment.Status,
			&payment.TransactionID, &payment.CustomerName, &payment.Notes,
			&payment.CreatedAt, &payment.UpdatedAt); err != nil {
			continue
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

func (s *PostgresStore) UpdatePayment(payment *domain.Payment) error {
	result, err := s.DB.Exec(`
		UPDATE payments
		SET status=$1, notes=$2, transaction_id=$3, updated_at=$4
		WHERE id=$5`,
		payment.Status, payment.Notes, payment.TransactionID, payment.UpdatedAt, payment.ID)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}
