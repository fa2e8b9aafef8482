package config

import (
	"io"
	"os"
	"spice-garden/internal/api/handlers"
	"spice-garden/internal/api/routes"
	"spice-garden/internal/middleware"
	"spice-garden/internal/utils"
	"spice-garden/internal/utils/mailing"
	"spice-garden/internal/utils/storage"
	"spice-garden/pkg/address"
	"spice-garden/pkg/admin"
	"spice-garden/pkg/cart"
	"spice-garden/pkg/catalog"
	"spice-garden/pkg/jwt"
	"spice-garden/pkg/order"
	"spice-garden/pkg/user"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Options carries the collaborators that talk to the outside world so tests
// can swap them out.
type Options struct {
	AccessLog    io.Writer
	Storage      storage.AwsS3
	Mailer       mailing.Mailer
	RateLimitMax int
	CORSOrigins  string
	AppURL       string
}

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.LoadConfig()

	// setting up logging
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}

	return BuildApp(db, Options{
		AccessLog:    file,
		Storage:      storage.NewAwsS3(),
		Mailer:       mailing.NewMailer(mailing.LoadMailConfig()),
		RateLimitMax: utils.GetConfigInt("RATE_LIMIT_MAX"),
		CORSOrigins:  utils.GetConfig("CORS_ORIGINS"),
		AppURL:       utils.GetConfig("APP_URL"),
	})
}

func BuildApp(db *gorm.DB, opts Options) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName: "Spice Garden",
	})
	middlewares := middleware.NewMiddleware(opts.CORSOrigins)
	validator := utils.Validate

	app.Use(recover.New())
	if opts.AccessLog != nil {
		app.Use(logger.New(logger.Config{
			TimeFormat: "2006-01-02 15:04:05",
			TimeZone:   "Local",
			Output:     opts.AccessLog,
		}))
	}
	if opts.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        opts.RateLimitMax,
			Expiration: 1 * time.Second,
		}))
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	addressRepository := address.NewAddressRepository(db)
	catalogRepository := catalog.NewCatalogRepository(db)
	cartRepository := cart.NewCartRepository(db)
	orderRepository := order.NewOrderRepository(db)
	adminRepository := admin.NewAdminRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	addressService := address.NewAddressService(addressRepository)
	catalogService := catalog.NewCatalogService(catalogRepository, opts.Storage)
	cartService := cart.NewCartService(cartRepository)
	orderService := order.NewOrderService(orderRepository, addressService, opts.Mailer, opts.AppURL)
	adminService := admin.NewAdminService(adminRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	addressHandler := handlers.NewAddressHandler(addressService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService, validator)
	cartHandler := handlers.NewCartHandler(cartService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	adminHandler := handlers.NewAdminHandler(adminService, orderService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		AddressHandler: addressHandler,
		CatalogHandler: catalogHandler,
		CartHandler:    cartHandler,
		OrderHandler:   orderHandler,
		AdminHandler:   adminHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
		RoleSource:     userService,
	}
	routesConfig.Setup()
	return app, nil
}
