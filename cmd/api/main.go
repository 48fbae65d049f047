package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-stockroom/internal/handler"
	"go-stockroom/internal/middleware"
	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/internal/service"
	"go-stockroom/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	db.AutoMigrate(
		&model.Dealer{},
		&model.Storage{},
		&model.Product{},
		&model.BOM{},
		&model.PurchaseOrder{},
		&model.MaterialInward{},
		&model.MaterialOutward{},
		&model.Section{},
		&model.Operator{},
	)

	// 3. Seed default operator
	seedDefaultOperator(db)

	// 4. Dependency Injection (Wiring Layers)
	dealerRepo := repository.NewDealerRepo(db)
	storageRepo := repository.NewStorageRepo(db)
	productRepo := repository.NewProductRepo(db)
	operatorRepo := repository.NewOperatorRepo(db)

	dealerService := service.NewDealerService(dealerRepo, db)
	storageService := service.NewStorageService(storageRepo, dealerRepo, db)
	productService := service.NewProductService(productRepo, storageRepo, db)
	authService := service.NewAuthService(operatorRepo)

	dealerHandler := handler.NewDealerHandler(dealerService)
	storageHandler := handler.NewStorageHandler(storageService, dealerService)
	productHandler := handler.NewProductHandler(productService, storageService)
	authHandler := handler.NewAuthHandler(authService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Stockroom v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// Write protection is opt-in: the form surface stays open unless
	// AUTH_REQUIRED=true, in which case mutating routes need a bearer token.
	writeGuard := middleware.Passthrough()
	if os.Getenv("AUTH_REQUIRED") == "true" {
		writeGuard = middleware.RequireAuth(operatorRepo)
		log.Println("Write protection enabled: mutating routes require login")
	}

	// 6. Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Inventory Management System Home Page")
	})

	// Auth
	app.Post("/auth/login", authHandler.Login)
	app.Post("/auth/reset-password", writeGuard, authHandler.ResetPassword)

	// Dealers
	app.Get("/dealers", dealerHandler.ListDealers)
	app.Get("/dealer/add", dealerHandler.NewDealerForm)
	app.Post("/dealer/add", writeGuard, dealerHandler.CreateDealer)
	app.Get("/dealer/edit/:id", dealerHandler.EditDealerForm)
	app.Post("/dealer/edit/:id", writeGuard, dealerHandler.UpdateDealer)
	app.Post("/dealer/delete/:id", writeGuard, dealerHandler.DeleteDealer)

	// Storage
	app.Get("/storage", storageHandler.ListStorage)
	app.Get("/storage/add", storageHandler.NewStorageForm)
	app.Post("/storage/add", writeGuard, storageHandler.CreateStorage)
	app.Get("/storage/edit/:id", storageHandler.EditStorageForm)
	app.Post("/storage/edit/:id", writeGuard, storageHandler.UpdateStorage)
	app.Post("/storage/delete/:id", writeGuard, storageHandler.DeleteStorage)

	// Products
	app.Get("/product", productHandler.ListProducts)
	app.Get("/product/add", productHandler.NewProductForm)
	app.Post("/product/add", writeGuard, productHandler.CreateProduct)
	app.Get("/product/edit/:id", productHandler.EditProductForm)
	app.Post("/product/edit/:id", writeGuard, productHandler.UpdateProduct)
	app.Post("/product/delete/:id", writeGuard, productHandler.DeleteProduct)

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedDefaultOperator creates the default back-office account if none exists
func seedDefaultOperator(db *gorm.DB) {
	operatorRepo := repository.NewOperatorRepo(db)

	email := os.Getenv("OPERATOR_EMAIL")
	if email == "" {
		email = "operator@example.com"
	}

	if _, err := operatorRepo.FindByEmail(email); err == nil {
		return
	}

	password := os.Getenv("OPERATOR_PASSWORD")
	if password == "" {
		password = "operator123"
	}

	op := &model.Operator{
		Email:    email,
		FullName: "Default Operator",
		IsActive: true,
	}
	op.CreatedBy = "system"
	op.UpdatedBy = "system"

	if err := op.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash operator password: %v", err)
		return
	}

	if err := operatorRepo.Create(op); err != nil {
		log.Printf("Warning: Failed to create default operator: %v", err)
	} else {
		log.Printf("✅ Default operator created: %s", email)
	}
}
