package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"

	"github.com/PhotofineColorLab/Sarathi/internal/database"
	"github.com/PhotofineColorLab/Sarathi/internal/handlers"
	"github.com/PhotofineColorLab/Sarathi/internal/middleware"
	"github.com/PhotofineColorLab/Sarathi/internal/models"
	"github.com/PhotofineColorLab/Sarathi/internal/repositories"
	"github.com/PhotofineColorLab/Sarathi/internal/services"
	"github.com/PhotofineColorLab/Sarathi/pkg/events"
	"github.com/PhotofineColorLab/Sarathi/pkg/imagehost"

	"github.com/spf13/viper"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("STORAGE_DRIVER", "memory") // memory or sqlite
	viper.SetDefault("SQLITE_PATH", "sarathi.db")
	viper.SetDefault("RABBITMQ_URL", "") // empty: run without a broker
	viper.SetDefault("LOW_STOCK_THRESHOLD", 5)
	viper.SetDefault("ADMIN_EMAIL", "admin@electro.com")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("ADMIN_NAME", "Admin User")
	viper.SetDefault("IMAGE_HOST_URL", "https://images.example.com/api")
	viper.SetDefault("IMAGE_HOST_KEY", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	lowStockThreshold := viper.GetInt("LOW_STOCK_THRESHOLD")

	// --- Optional RabbitMQ event fan-out ---
	var publisher services.EventPublisher
	var mqClient *events.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		client, err := events.NewClient(events.Config{URL: url})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, continuing without event fan-out: %v", err)
		} else {
			mqClient = client
			publisher = client
			defer mqClient.Close()
		}
	}

	// --- Repositories ---
	var productRepo repositories.ProductRepository
	var staffRepo repositories.StaffRepository
	orderRepo := repositories.NewMemoryOrderRepository()

	switch driver := viper.GetString("STORAGE_DRIVER"); driver {
	case "sqlite":
		db, err := database.Open(viper.GetString("SQLITE_PATH"))
		if err != nil {
			log.Fatalf("Failed to open SQLite storage: %v", err)
		}
		productRepo = repositories.NewGORMProductRepository(db)
		staffRepo = repositories.NewGORMStaffRepository(db)
	case "memory":
		productRepo = repositories.NewMemoryProductRepository()
		staffRepo = repositories.NewMemoryStaffRepository()
	default:
		log.Fatalf("Unknown STORAGE_DRIVER: %s", driver)
	}

	seedProducts(productRepo)
	seedOrders(orderRepo)

	// --- Services ---
	notificationService := services.NewNotificationService(publisher)
	admins := []models.User{
		{
			ID:       "admin1",
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
			Role:     models.RoleAdmin,
			Name:     viper.GetString("ADMIN_NAME"),
		},
	}
	authService := services.NewAuthService(staffRepo, notificationService, admins)
	productService := services.NewProductService(productRepo, notificationService, lowStockThreshold)
	orderService := services.NewOrderService(orderRepo, productRepo, notificationService, authService)
	staffService := services.NewStaffService(staffRepo, notificationService)
	statsService := services.NewStatsService(orderRepo, productRepo, lowStockThreshold)
	imageClient := imagehost.NewClient(viper.GetString("IMAGE_HOST_URL"), viper.GetString("IMAGE_HOST_KEY"))

	// Initial scan so the bell shows stock warnings right after boot.
	if _, err := productService.CheckLowStock(); err != nil {
		log.Printf("Initial low-stock check failed: %v", err)
	}

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	orderHandler := handlers.NewOrderHandler(orderService)
	productHandler := handlers.NewProductHandler(productService)
	staffHandler := handlers.NewStaffHandler(staffService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	statsHandler := handlers.NewStatsHandler(statsService)
	uploadHandler := handlers.NewUploadHandler(imageClient)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")

	// Login is public; everything else needs the in-process session.
	authHandler.RegisterRoutes(apiV1)

	protected := apiV1.Group("", middleware.RequireUser(authService))
	orderHandler.RegisterRoutes(protected)
	productHandler.RegisterRoutes(protected)
	notificationHandler.RegisterRoutes(protected)
	statsHandler.RegisterRoutes(protected)
	uploadHandler.RegisterRoutes(protected)

	adminOnly := apiV1.Group("", middleware.RequireAdmin(authService))
	staffHandler.RegisterRoutes(adminOnly)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- RabbitMQ consumer, mirrors events back into the server log ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for dashboard events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received %s event (Tag: %d): %s", msg.Type, msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.Consume(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// seedProducts populates the catalog with the shop's starting inventory.
// With SQLite storage the seed only runs against an empty database.
func seedProducts(repo repositories.ProductRepository) {
	existing, err := repo.GetAll()
	if err != nil {
		log.Printf("Error checking existing products before seed: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	products := []models.Product{
		{Name: "Ceiling Fan", Description: "High-quality ceiling fan with 3-speed settings", Price: 89.99, Category: "Fans", Stock: 15},
		{Name: "LED Bulb Pack", Description: "Energy-efficient LED bulbs, pack of 4", Price: 19.99, Category: "Lights", Stock: 50},
		{Name: "Copper Wire Roll", Description: "100m roll of high-quality copper wire", Price: 45.99, Category: "Wires", Stock: 20},
		{Name: "Smart Switch", Description: "Wi-Fi enabled smart light switch", Price: 29.99, Category: "Switches", Stock: 25},
		{Name: "Surge Protector", Description: "6-outlet surge protector with USB ports", Price: 22.99, Category: "Sockets", Stock: 40},
		{Name: "Chandelier Light", Description: "Elegant chandelier with crystal details", Price: 149.99, Category: "Lights", Stock: 8},
		{Name: "Portable Air Conditioner", Description: "Compact and portable air conditioner", Price: 299.99, Category: "Fans", Stock: 5},
		{Name: "Wall Socket", Description: "Basic single wall socket", Price: 3.99, Category: "Sockets", Stock: 100},
	}

	for i := range products {
		if err := repo.Create(&products[i]); err != nil {
			log.Printf("Error seeding product %s: %v", products[i].Name, err)
		} else {
			log.Printf("Seeded product: %s (ID: %s)", products[i].Name, products[i].ID)
		}
	}
}

// seedOrders populates the order list with a few example orders.
func seedOrders(repo repositories.OrderRepository) {
	orders := []models.Order{
		{
			CustomerName: "John Smith",
			Items: []models.OrderItem{
				{ID: "1", Name: "LED Bulb 10W", Quantity: 5, Price: 9.99},
				{ID: "2", Name: "Extension Cord", Quantity: 2, Price: 15.99},
			},
			Total:      81.93,
			Status:     models.OrderStatusPending,
			Date:       "2024-03-15",
			CreatedBy:  "admin1",
			Activities: []models.OrderActivity{},
		},
		{
			CustomerName: "Sarah Johnson",
			Items: []models.OrderItem{
				{ID: "3", Name: "Circuit Breaker", Quantity: 1, Price: 45.99},
				{ID: "4", Name: "Wire Cable 50m", Quantity: 1, Price: 29.99},
			},
			Total:      75.98,
			Status:     models.OrderStatusCompleted,
			Date:       "2024-03-14",
			CreatedBy:  "admin1",
			Activities: []models.OrderActivity{},
		},
		{
			CustomerName: "Mike Wilson",
			Items: []models.OrderItem{
				{ID: "5", Name: "Power Socket", Quantity: 3, Price: 12.99},
				{ID: "6", Name: "Light Switch", Quantity: 4, Price: 8.99},
			},
			Total:      74.93,
			Status:     models.OrderStatusProcessing,
			Date:       "2024-03-13",
			CreatedBy:  "admin1",
			Activities: []models.OrderActivity{},
		},
	}

	for i := range orders {
		if err := repo.Create(&orders[i]); err != nil {
			log.Printf("Error seeding order for %s: %v", orders[i].CustomerName, err)
		}
	}
}
