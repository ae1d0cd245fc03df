package main

import (
	_ "tienda_checkout/docs"
	"tienda_checkout/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Checkout & Payment Reconciliation API
// @version         1.0
// @description     Storefront checkout service: creates payment preferences against Mercado Pago and PayPal and reconciles order status from gateway confirmations.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
