package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Thurzix/Product-Pit-Stop/config"
	"github.com/Thurzix/Product-Pit-Stop/controllers"
	"github.com/Thurzix/Product-Pit-Stop/database"
	"github.com/Thurzix/Product-Pit-Stop/kafka"
	"github.com/Thurzix/Product-Pit-Stop/middleware"
	"github.com/Thurzix/Product-Pit-Stop/repository"
	"github.com/Thurzix/Product-Pit-Stop/services"
)

// Register wires repositories, services and controllers onto the router.
// redisClient and producer may be nil; caching and eventing degrade to off.
func Register(r *gin.Engine, db *gorm.DB, redisClient *redis.Client, producer kafka.ProducerAPI, cfg config.Config) {
	carts := repository.NewGormCartRepository(db)
	products := repository.NewGormProductRepository(db)
	orders := repository.NewGormOrderRepository(db)
	tx := repository.NewGormTxManager(db)

	var cache database.CartCache
	if redisClient != nil {
		cache = database.NewRedisCartCache(redisClient, cfg.CartCacheTTL)
	}

	cartService := services.NewCartService(carts, products, cache)
	checkoutService := services.NewCheckoutService(tx, cache, producer)
	orderService := services.NewOrderService(orders)
	productService := services.NewProductService(products)

	cartController := controllers.NewCartController(cartService)
	checkoutController := controllers.NewCheckoutController(checkoutService)
	orderController := controllers.NewOrderController(orderService)
	productController := controllers.NewProductController(productService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	api := r.Group("/api")

	// Public catalog reads
	api.GET("/products", productController.ListProducts)
	api.GET("/products/:id", productController.GetProduct)

	// Everything touching a cart or orders requires an authenticated user
	auth := api.Group("")
	auth.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		auth.GET("/cart", cartController.GetCart)
		auth.POST("/cart", cartController.AddToCart)
		auth.PUT("/cart/:line_id", cartController.UpdateLine)
		auth.DELETE("/cart/:line_id", cartController.RemoveLine)
		auth.DELETE("/cart", cartController.ClearCart)

		auth.POST("/checkout", checkoutController.Checkout)
		auth.GET("/orders", orderController.GetOrders)
	}
}
