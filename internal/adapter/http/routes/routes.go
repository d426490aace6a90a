package routes

import (
	"log"
	_ "oficina_os/docs" // This will be auto-generated
	"oficina_os/internal/adapter/http/handlers"
	"oficina_os/internal/adapter/http/middleware"
	repository2 "oficina_os/internal/adapter/persistence/repository"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/infrastructure/auth"
	"oficina_os/internal/infrastructure/cache"
	"oficina_os/internal/infrastructure/database"
	"oficina_os/internal/infrastructure/events"
	"oficina_os/internal/infrastructure/notifications"
	"oficina_os/internal/infrastructure/payments"
	"oficina_os/internal/infrastructure/printing"
	"oficina_os/internal/infrastructure/sales"
	"oficina_os/internal/usecase"
	"oficina_os/internal/usecase/interfaces"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	rdb := cache.ConnectRedis()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	itemRepo := repository2.NewLineItemDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	stockRepo := repository2.NewStockDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	salesService := sales.NewRegisterService(ddb, paymentGateway)
	notifier := notifications.NewWhatsAppNotifier()
	printer := printing.NewHTTPPrintService()
	authz := auth.NewRoleAuthorizationService()
	idemStore := cache.NewRedisIdempotencyStore(rdb)
	publisher := events.NewKafkaPublisher(events.NewKafkaWriter())

	statusCfg := entities.DefaultStatusConfig()
	checklistCfg := entities.DefaultChecklistConfig()
	methods := entities.DefaultPaymentMethods()

	orderUseCase := usecase.NewOrderUseCase(orderRepo, notifier, publisher, statusCfg, checklistCfg)
	itemUseCase := usecase.NewOrderItemUseCase(itemRepo, orderRepo, stockRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, orderRepo, salesService, authz, publisher, idemStore, methods)
	checklistUseCase := usecase.NewChecklistUseCase(orderRepo, printer, checklistCfg)
	stockUseCase := usecase.NewStockLedgerUseCase(stockRepo)

	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	itemHandler := handlers.NewOrderItemHandler(itemUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	checklistHandler := handlers.NewChecklistHandler(checklistUseCase, orderUseCase)
	stockHandler := handlers.NewStockHandler(stockUseCase)

	// Rotas publicas
	addPingRoutes(&router.RouterGroup)

	v1 := router.Group("/v1")
	v1.Use(middleware.ActorAuth())
	addOrderRoutes(v1, orderHandler, itemHandler, paymentHandler, checklistHandler)
	addStockRoutes(v1, stockHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
