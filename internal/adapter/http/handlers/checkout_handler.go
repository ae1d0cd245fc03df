package handlers

import (
	"errors"
	"log"
	"net/http"

	request "tienda_checkout/internal/adapter/http/dto/request"
	response "tienda_checkout/internal/adapter/http/dto/response"
	"tienda_checkout/internal/usecase"
	"tienda_checkout/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)

// CheckoutHandler handles HTTP requests for preference creation and order
// lookup.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreateCheckout godoc
// @Summary      Create a payment preference for a cart
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        checkout  body      request.CheckoutRequest  true  "Cart items and payment method"
// @Success      201       {object}  response.CheckoutResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      502       {object}  pkg.HTTPError
// @Router       /checkout [post]
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	items, method, err := payload.Resolve()
	if err != nil {
		log.Printf("[checkout][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.CreateCheckout(c.Request.Context(), items, method)
	if err != nil {
		log.Printf("[checkout][handler] create failed err=%v", err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] create success order_id=%s method=%s", res.Order.ID, method)

	c.JSON(http.StatusCreated, response.FromCheckoutResult(res))
}

// GetOrderByID godoc
// @Summary      Fetch an order
// @Tags         checkout
// @Produce      json
// @Param        order_id  path      string  true  "Order id"
// @Success      200       {object}  response.OrderResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /orders/{order_id} [get]
func (h *CheckoutHandler) GetOrderByID(c *gin.Context) {
	orderID := c.Param("order_id")

	order, err := h.usecase.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[checkout][handler] get failed order_id=%s err=%v", orderID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyCart),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrProductUnavailable):
		return pkg.NewDomainErrorSimple("PRODUCT_UNAVAILABLE", "Product unavailable", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayNotConfigured), errors.Is(err, usecase.ErrGatewayRegistration):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
