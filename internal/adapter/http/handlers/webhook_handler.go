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

// WebhookHandler ingests asynchronous gateway notifications.
//
// Response contract: 200 for anything structurally valid that was processed,
// including ignored event types — the gateway retries every non-2xx with
// exponential backoff, so a 5xx is reserved for genuine internal failure
// where a retry is actually wanted.

type WebhookHandler struct {
	usecase usecase.IPaymentEventUseCase
}

func NewWebhookHandler(uc usecase.IPaymentEventUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// ReceiveNotification godoc
// @Summary      Receive a payment notification
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        notification  body      request.WebhookRequest  true  "Gateway notification"
// @Success      200           {object}  response.WebhookAckResponse
// @Failure      400           {object}  pkg.HTTPError
// @Failure      404           {object}  pkg.HTTPError
// @Failure      500           {object}  pkg.HTTPError
// @Router       /payments/webhook [post]
func (h *WebhookHandler) ReceiveNotification(c *gin.Context) {
	var payload request.WebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[webhook][handler] malformed body err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_NOTIFICATION", "Malformed notification body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.ProcessNotification(c.Request.Context(), payload.Type, string(payload.Data.ID))
	if err != nil {
		appErr := mapWebhookError(err)
		log.Printf("[webhook][handler] processing failed type=%s payment_id=%s status=%d err=%v", payload.Type, payload.Data.ID, appErr.HTTPStatus, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if !res.Handled {
		c.JSON(http.StatusOK, response.WebhookAckResponse{Message: "event type not supported"})
		return
	}

	log.Printf("[webhook][handler] notification processed order_id=%s status=%s applied=%t", res.Order.ID, res.Order.Status, res.Applied)
	c.JSON(http.StatusOK, response.WebhookAckResponse{Message: "notification processed"})
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNotification):
		return pkg.NewDomainErrorSimple("INVALID_NOTIFICATION", "Invalid notification payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound), errors.Is(err, usecase.ErrInvalidExternalRef):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "No order matches the notification reference", http.StatusNotFound)
	default:
		// Storage or gateway failure: a 5xx tells the gateway to resend.
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
