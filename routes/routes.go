package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/ecommerce-api/controllers"
	"github.com/kendall-kelly/ecommerce-api/middleware"
	"github.com/kendall-kelly/ecommerce-api/repository"
	"github.com/kendall-kelly/ecommerce-api/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options carries what the router needs from the running process
type Options struct {
	DB                 *gorm.DB
	Logger             *zap.Logger
	CORSAllowedOrigins []string
}

// SetupRouter builds the repositories, services and controllers on top of
// opts.DB and registers every route
func SetupRouter(opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	users := repository.NewGormUserRepository(opts.DB)
	products := repository.NewGormProductRepository(opts.DB)
	orders := repository.NewGormOrderRepository(opts.DB)
	orderProducts := repository.NewGormOrderProductRepository(opts.DB)

	userController := controllers.NewUserController(services.NewUserService(users), log)
	productController := controllers.NewProductController(services.NewProductService(products), log)
	orderController := controllers.NewOrderController(
		services.NewOrderService(orders, users, products, orderProducts), log)
	healthController := controllers.NewHealthController(opts.DB)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.PrometheusMiddleware(),
		middleware.CORS(opts.CORSAllowedOrigins),
	)

	router.GET("/health", healthController.HealthCheck)
	router.GET("/database/status", healthController.DatabaseStatus)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	userRoutes := router.Group("/users")
	{
		userRoutes.POST("", userController.CreateUser)
		userRoutes.GET("", userController.GetUsers)
		userRoutes.GET("/:id", userController.GetUser)
		userRoutes.PUT("/:id", userController.UpdateUser)
		userRoutes.DELETE("/:id", userController.DeleteUser)
	}

	productRoutes := router.Group("/products")
	{
		productRoutes.POST("", productController.CreateProduct)
		productRoutes.GET("", productController.GetProducts)
		productRoutes.GET("/:id", productController.GetProduct)
		productRoutes.PUT("/:id", productController.UpdateProduct)
		productRoutes.DELETE("/:id", productController.DeleteProduct)
	}

	orderRoutes := router.Group("/orders")
	{
		orderRoutes.POST("", orderController.CreateOrder)
		orderRoutes.GET("", orderController.GetOrders)
		orderRoutes.GET("/user/:user_id", orderController.GetOrdersForUser)
		orderRoutes.GET("/:order_id", orderController.GetOrder)
		orderRoutes.PUT("/:order_id", orderController.UpdateOrder)
		orderRoutes.DELETE("/:order_id", orderController.DeleteOrder)
		orderRoutes.PUT("/:order_id/add_product/:product_id", orderController.AddProductToOrder)
		orderRoutes.DELETE("/:order_id/remove_product/:product_id", orderController.RemoveProductFromOrder)
		orderRoutes.GET("/:order_id/products", orderController.GetOrderProducts)
		orderRoutes.GET("/:order_id/total_price", orderController.GetOrderTotalPrice)
	}

	return router
}
