package routes

import (
	"tienda_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
	PathOrders   = "/orders"
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, webhookHandler *handlers.WebhookHandler, captureHandler *handlers.CaptureHandler) {
	rg.POST(PathCheckout, checkoutHandler.CreateCheckout)

	orders := rg.Group(PathOrders)
	{
		orders.GET("/:order_id", checkoutHandler.GetOrderByID)
	}

	payments := rg.Group(PathPayments)
	{
		// Server-to-server notifications from the asynchronous gateway.
		payments.POST("/webhook", webhookHandler.ReceiveNotification)
		// Client-initiated finalization for the synchronous gateway.
		payments.POST("/capture", captureHandler.FinalizeCapture)
	}
}
