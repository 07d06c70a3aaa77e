package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"admin-dashboard-service/internal/config"
	"admin-dashboard-service/internal/controller"
	"admin-dashboard-service/internal/metrics"
	"admin-dashboard-service/internal/middleware"
	"admin-dashboard-service/internal/rabbit"
	"admin-dashboard-service/internal/repository"
	"admin-dashboard-service/internal/service"
)

func main() {
	cfg := config.Load()

	// Conexión a MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal(err)
	}
	db := client.Database(cfg.MongoDBName)

	// Repositorios y servicios
	orderRepo := repository.NewMongoOrderRepository(db)
	productRepo := repository.NewMongoProductRepository(db)

	dashboard := service.NewDashboard(orderRepo)
	productService := service.NewProductService(productRepo)
	authService := service.NewAuthService(cfg.AuthURL)

	// Handlers
	dashCtrl := controller.NewDashboardController(dashboard)
	productCtrl := controller.NewProductController(productService)

	// Router
	srvMetrics := metrics.NewServerMetrics("admin_dashboard")

	r := gin.Default()
	r.Use(srvMetrics.Middleware())

	// Rutas públicas
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Rutas protegidas (requieren token)
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(authService))

	// CRUD de productos
	products := auth.Group("/api/products")
	products.GET("", productCtrl.List)
	products.POST("", productCtrl.Create)
	products.PUT("", productCtrl.Update)
	products.DELETE("", productCtrl.Delete)

	// Dashboard admin
	admin := auth.Group("/admin")
	admin.Use(middleware.AdminOnly())
	admin.GET("/dashboard", dashCtrl.GetDashboard)
	admin.GET("/orders", dashCtrl.GetOrders)
	admin.GET("/metrics", dashCtrl.GetMetrics)
	admin.GET("/customers", dashCtrl.GetCustomers)
	admin.POST("/orders/:orderId/toggle", dashCtrl.ToggleOrder)
	admin.PATCH("/orders/:orderId/status", dashCtrl.UpdateStatus)
	admin.DELETE("/orders/:orderId", dashCtrl.DeleteOrder)

	// Conexión a RabbitMQ: acá entran las órdenes que coloca el storefront
	conn, err := amqp091.Dial(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("Error conectando a RabbitMQ: %v", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("Error creando canal en RabbitMQ: %v", err)
	}

	rabbit.SetupConsumers(ch, orderRepo)

	// Ejecutar servidor
	log.Printf("Admin Dashboard Service ejecutándose en puerto %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
