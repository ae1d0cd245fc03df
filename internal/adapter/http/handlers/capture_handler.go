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

// CaptureHandler finalizes synchronous gateway payments. Unlike the webhook
// path this is driven by an end user, so failures surface synchronously
// instead of relying on provider retries.

type CaptureHandler struct {
	usecase usecase.ICaptureUseCase
}

func NewCaptureHandler(uc usecase.ICaptureUseCase) *CaptureHandler {
	return &CaptureHandler{usecase: uc}
}

// FinalizeCapture godoc
// @Summary      Finalize a capture
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        capture  body      request.CaptureRequest  true  "Capture token and optional order id"
// @Success      200      {object}  response.CaptureResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      502      {object}  pkg.HTTPError
// @Router       /payments/capture [post]
func (h *CaptureHandler) FinalizeCapture(c *gin.Context) {
	var payload request.CaptureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Capture token is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.FinalizeCapture(c.Request.Context(), payload.Token, payload.OrderID)
	if err != nil {
		log.Printf("[capture][handler] finalize failed token=%s err=%v", payload.Token, err)
		appErr := mapCaptureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[capture][handler] finalize success token=%s status=%s applied=%t", payload.Token, res.Status, res.Applied)

	c.JSON(http.StatusOK, response.FromCaptureResult(res))
}

func mapCaptureError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCaptureToken), errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCaptureGatewayUnavailable):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
