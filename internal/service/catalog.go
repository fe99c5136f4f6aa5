package service

import "warung-pos/internal/domain"

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListMenuItems() ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems()
}

// ListCategories returns distinct category names in first-seen order.
func (s *CatalogService) ListCategories() ([]string, error) {
	items, err := s.repo.ListMenuItems()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	categories := []string{}
	for _, item := range items {
		if seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	return categories, nil
}

// SetMenuItemAvailability mutates the availability flags. Marking an item out
// of stock forces it unavailable; that rule lives here, not in callers.
func (s *CatalogService) SetMenuItemAvailability(id string, available, outOfStock bool) (*domain.MenuItem, error) {
	item, err := s.repo.GetMenuItem(id)
	if err != nil {
		return nil, err
	}
	item.Available = available
	item.OutOfStock = outOfStock
	if outOfStock {
		item.Available = false
	}
	if err := s.repo.UpdateMenuItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CatalogService) ListTables() ([]domain.Table, error) {
	return s.repo.ListTables()
}

func (s *CatalogService) GetTable(id int) (*domain.Table, error) {
	return s.repo.GetTable(id)
}

func (s *CatalogService) GetTableByNumber(number int) (*domain.Table, error) {
	return s.repo.GetTableByNumber(number)
}

// SetTableStatus performs a raw status write. Invariant enforcement between
// tables and orders belongs to the order engine.
func (s *CatalogService) SetTableStatus(id int, status domain.TableStatus, orderID int) (*domain.Table, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("unknown table status")
	}
	table, err := s.repo.GetTable(id)
	if err != nil {
		return nil, err
	}
	table.Status = status
	table.CurrentOrderID = orderID
	if err := s.repo.UpdateTable(table); err != nil {
		return nil, err
	}
	return table, nil
}

func (s *CatalogService) AddTable(number, seats int) (*domain.Table, error) {
	if seats <= 0 {
		return nil, domain.NewValidationError("seats must be positive")
	}
	if number <= 0 {
		return nil, domain.NewValidationError("table number must be positive")
	}
	table := &domain.Table{
		Number: number,
		Seats:  seats,
		Status: domain.TableAvailable,
	}
	if err := s.repo.AddTable(table); err != nil {
		return nil, err
	}
	return table, nil
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
