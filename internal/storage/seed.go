package storage

import "warung-pos/internal/domain"

// Seeder is the slice of the catalog repository the demo data needs.
type Seeder interface {
	CreateMenuItem(item *domain.MenuItem) error
	ListMenuItems() ([]domain.MenuItem, error)
	AddTable(table *domain.Table) error
	ListTables() ([]domain.Table, error)
}

var demoMenu = []domain.MenuItem{
	{ID: "m1", Name: "Nasi Goreng Special", Description: "Nasi goreng dengan telur, ayam, dan sayuran", Price: 45000, Category: "Main", Available: true},
	{ID: "m2", Name: "Mie Goreng", Description: "Mie goreng dengan telur dan sayuran", Price: 40000, Category: "Main", Available: true},
	{ID: "m3", Name: "Sate Ayam", Description: "Sate ayam dengan bumbu kacang", Price: 35000, Category: "Appetizer", Available: true},
	{ID: "m4", Name: "Es Teh Manis", Description: "Teh manis dingin", Price: 10000, Category: "Beverage", Available: true},
	{ID: "m5", Name: "Jus Alpukat", Description: "Jus alpukat segar", Price: 18000, Category: "Beverage", Available: true},
	{ID: "m6", Name: "Pisang Goreng", Description: "Pisang goreng dengan madu", Price: 25000, Category: "Dessert", Available: true},
	{ID: "m7", Name: "Ayam Goreng", Description: "Ayam goreng dengan sambal", Price: 38000, Category: "Main", Available: true},
	{ID: "m8", Name: "Sop Buntut", Description: "Sop buntut sapi dengan rempah", Price: 65000, Category: "Main", Available: true},
}

var demoTableSeats = []int{2, 2, 4, 4, 6, 6, 8, 8}

// SeedDemoData loads the demo menu and floor plan into an empty catalog.
// A store that already has data is left alone, so restarts against a durable
// backend do not duplicate rows.
func SeedDemoData(repo Seeder) error {
	items, err := repo.ListMenuItems()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		for i := range demoMenu {
			item := demoMenu[i]
			if err := repo.CreateMenuItem(&item); err != nil {
				return err
			}
		}
	}

	tables, err := repo.ListTables()
	if err != nil {
		return err
	}
	if len(tables) == 0 {
		for i, seats := range demoTableSeats {
			table := domain.Table{Number: i + 1, Seats: seats, Status: domain.TableAvailable}
			if err := repo.AddTable(&table); err != nil {
				return err
			}
		}
	}
	return nil
}
