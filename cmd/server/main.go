package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/Leplia/Diller-shop/internal/config"
	"github.com/Leplia/Diller-shop/internal/database"
	"github.com/Leplia/Diller-shop/internal/handler"
	"github.com/Leplia/Diller-shop/internal/queue"
	"github.com/Leplia/Diller-shop/internal/repository"
	"github.com/Leplia/Diller-shop/internal/router"
)

func main() {
	// A missing .env is fine in production where the environment is
	// set by the deployment.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer func() { _ = db.Close() }()

	rdb := config.NewRedisClient()

	cars := repository.NewCarRepo(db)
	orders := repository.NewOrderRepo(db)
	payments := repository.NewPaymentRepo(db)
	testDrives := repository.NewTestDriveRepo(db)
	reviews := repository.NewReviewRepo(db)
	users := repository.NewUserRepo(db)
	dealers := repository.NewDealerRepo(db)
	types := repository.NewVehicleTypeRepo(db)
	faqs := repository.NewFAQRepo(db)

	e := echo.New()
	e.HideBanner = true

	router.Register(e, router.Handlers{
		Catalog:    handler.NewCatalogHandler(cars),
		CarAdmin:   handler.NewCarAdminHandler(cars),
		Orders:     handler.NewOrderHandler(orders),
		Payments:   handler.NewPaymentHandler(payments),
		TestDrives: handler.NewTestDriveHandler(testDrives),
		Reviews:    handler.NewReviewHandler(reviews),
		Users:      handler.NewUserHandler(users, cfg.BcryptCost),
		Dealers:    handler.NewDealerHandler(dealers),
		Types:      handler.NewVehicleTypeHandler(types),
		FAQ:        handler.NewFAQHandler(faqs),
	}, rdb)

	go queue.StartEventConsumer()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
