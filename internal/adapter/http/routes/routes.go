package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "tienda_checkout/docs" // swag-generated
	"tienda_checkout/internal/adapter/http/handlers"
	repository2 "tienda_checkout/internal/adapter/persistence/repository"
	"tienda_checkout/internal/infrastructure/database"
	"tienda_checkout/internal/infrastructure/fulfillment"
	"tienda_checkout/internal/infrastructure/payments"
	"tienda_checkout/internal/usecase"
	"tienda_checkout/internal/usecase/interfaces"
	"tienda_checkout/internal/worker"

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

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)

	var preferenceGateway interfaces.IPreferenceGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		preferenceGateway = mpGateway
	}

	var captureGateway interfaces.ICaptureGateway
	ppGateway, err := payments.NewPayPalGateway(os.Getenv("PAYPAL_CLIENT_ID"), os.Getenv("PAYPAL_CLIENT_SECRET"))
	if err != nil {
		log.Printf("PayPal gateway not configured: %v", err)
	} else {
		captureGateway = ppGateway
	}

	reconciliation := usecase.NewReconciliationUseCase(orderRepo, fulfillment.NewLogNotifier())
	checkoutUseCase := usecase.NewCheckoutUseCase(orderRepo, productRepo, preferenceGateway, captureGateway)
	webhookUseCase := usecase.NewPaymentEventUseCase(preferenceGateway, reconciliation)
	captureUseCase := usecase.NewCaptureUseCase(captureGateway, reconciliation)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)
	captureHandler := handlers.NewCaptureHandler(captureUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, checkoutHandler, webhookHandler, captureHandler)

	startPendingSweep(orderRepo, preferenceGateway, captureGateway, reconciliation)
}

func startPendingSweep(orders interfaces.IOrderRepository, preference interfaces.IPreferenceGateway, capture interfaces.ICaptureGateway, reconciliation usecase.IReconciliationUseCase) {
	sweep, enabled := worker.NewPendingSweepFromEnv(orders, preference, capture, reconciliation)
	if !enabled {
		log.Printf("[sweep][routes] pending sweep disabled")
		return
	}
	go sweep.Start(context.Background())
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
