package main

import (
	"log"
	"net/http"

	"warung-pos/config"
	httpapi "warung-pos/internal/api/http"
	"warung-pos/internal/service"
	"warung-pos/internal/storage"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

type repositories interface {
	service.CatalogRepository
	service.OrderRepository
	service.PaymentRepository
	storage.Seeder
}

func main() {
	cfg := config.Load()

	var repos repositories
	switch cfg.Storage {
	case "postgres":
		db := config.MustInitPostgres()
		defer db.Close()
		pg := storage.NewPostgresStore(db)
		if err := pg.EnsureSchema(); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}
		repos = pg
		log.Println("[pos] using postgres storage")
	default:
		repos = storage.NewMemoryStore()
		log.Println("[pos] using in-memory storage")
	}

	if err := storage.SeedDemoData(repos); err != nil {
		log.Fatal("Failed to seed demo data:", err)
	}

	catalogSvc := service.NewCatalogService(repos)
	paymentSvc := service.NewPaymentService(repos, repos)
	orderSvc := service.NewOrderService(repos, repos, paymentSvc)

	kitchen := service.NewKitchenBoard(orderSvc, cfg.PollInterval)
	kitchen.Start()
	defer kitchen.Stop()

	qr := service.DefaultQRGenerator{BaseURL: cfg.BaseURL}

	handler := httpapi.NewHandler(catalogSvc, orderSvc, paymentSvc, kitchen, qr)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	h := cors.Default().Handler(r)

	log.Println("POS server starting on port " + cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, h))
}
