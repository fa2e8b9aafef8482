package routes

import (
	"spice-garden/internal/api/handlers"
	"spice-garden/internal/middleware"
	"spice-garden/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	AddressHandler handlers.AddressHandler
	CatalogHandler handlers.CatalogHandler
	CartHandler    handlers.CartHandler
	OrderHandler   handlers.OrderHandler
	AdminHandler   handlers.AdminHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
	RoleSource     middleware.RoleSource
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.User()
	c.Address()
	c.Catalog()
	c.Cart()
	c.Order()
	c.Admin()
}

func (c *Config) auth() fiber.Handler {
	return c.Middleware.AuthMiddleware(c.JWTService)
}

func (c *Config) admin() fiber.Handler {
	return c.Middleware.AdminMiddleware(c.RoleSource)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}

func (c *Config) User() {
	user := c.App.Group("/api/users")
	{
		user.Post("", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.auth(), c.UserHandler.Me)
		user.Put("/profile", c.auth(), c.UserHandler.UpdateProfile)
		user.Put("/change-password", c.auth(), c.UserHandler.ChangePassword)
		user.Get("", c.auth(), c.admin(), c.UserHandler.GetUsers)
	}
}

func (c *Config) Address() {
	address := c.App.Group("/api/addresses", c.auth())
	{
		address.Get("", c.AddressHandler.GetAddresses)
		address.Post("", c.AddressHandler.AddAddress)
		address.Put("/:id", c.AddressHandler.UpdateAddress)
		address.Delete("/:id", c.AddressHandler.DeleteAddress)
		address.Patch("/:id/default", c.AddressHandler.SetDefault)
	}
}

func (c *Config) Catalog() {
	categories := c.App.Group("/api/categories")
	{
		categories.Get("", c.CatalogHandler.GetCategories)
		categories.Get("/:id", c.CatalogHandler.GetCategory)
		categories.Post("", c.auth(), c.admin(), c.CatalogHandler.CreateCategory)
		categories.Put("/:id", c.auth(), c.admin(), c.CatalogHandler.UpdateCategory)
		categories.Delete("/:id", c.auth(), c.admin(), c.CatalogHandler.DeleteCategory)
	}

	menuItems := c.App.Group("/api/menu-items")
	{
		menuItems.Get("", c.CatalogHandler.GetMenuItems)
		menuItems.Get("/:id", c.CatalogHandler.GetMenuItem)
		menuItems.Post("", c.auth(), c.admin(), c.CatalogHandler.CreateMenuItem)
		menuItems.Put("/:id", c.auth(), c.admin(), c.CatalogHandler.UpdateMenuItem)
		menuItems.Delete("/:id", c.auth(), c.admin(), c.CatalogHandler.DeleteMenuItem)
	}

	options := c.App.Group("/api/item-options")
	{
		options.Get("/:menuItemId", c.CatalogHandler.GetOptions)
		options.Post("", c.auth(), c.admin(), c.CatalogHandler.CreateOption)
		options.Put("/:id", c.auth(), c.admin(), c.CatalogHandler.UpdateOption)
		options.Delete("/:id", c.auth(), c.admin(), c.CatalogHandler.DeleteOption)
	}
}

func (c *Config) Cart() {
	cart := c.App.Group("/api/carts", c.auth())
	{
		cart.Post("", c.CartHandler.EnsureCart)
		cart.Get("/current", c.CartHandler.GetCurrentCart)
		cart.Post("/item", c.CartHandler.AddCartItem)
		cart.Put("/item/:id", c.CartHandler.UpdateCartItem)
		cart.Delete("/item/:id", c.CartHandler.RemoveCartItem)
	}
}

func (c *Config) Order() {
	order := c.App.Group("/api/orders", c.auth())
	{
		order.Post("", c.OrderHandler.PlaceOrder)
		order.Get("/user/current", c.OrderHandler.GetUserOrders)
		order.Get("/:orderId", c.OrderHandler.GetUserOrder)
	}
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/admin", c.auth(), c.admin())

	admin.Get("/dashboard/stats", c.AdminHandler.GetDashboardStats)

	admin.Get("/orders", c.AdminHandler.GetOrders)
	admin.Get("/orders/:orderId", c.AdminHandler.GetOrder)
	admin.Put("/orders/:orderId/status", c.AdminHandler.UpdateOrderStatus)

	admin.Get("/menu-items", c.CatalogHandler.GetMenuItems)
	admin.Post("/menu-items", c.CatalogHandler.CreateMenuItem)
	admin.Put("/menu-items/:id", c.CatalogHandler.UpdateMenuItem)
	admin.Delete("/menu-items/:id", c.CatalogHandler.DeleteMenuItem)
	admin.Post("/menu-items/:id/image", c.CatalogHandler.UploadMenuItemImage)

	admin.Get("/categories", c.CatalogHandler.GetCategories)
	admin.Post("/categories", c.CatalogHandler.CreateCategory)
	admin.Put("/categories/:id", c.CatalogHandler.UpdateCategory)
	admin.Delete("/categories/:id", c.CatalogHandler.DeleteCategory)

	admin.Get("/users", c.UserHandler.GetUsers)
	admin.Put("/users/:userId/role", c.UserHandler.UpdateRole)
}
