package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"portfolio/internal/service"
)

// PaymentHandler handles payment-intent creation.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateIntentRequest represents a payment-intent creation request.
type CreateIntentRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Currency    string          `json:"currency" validate:"required,len=3"`
	Description string          `json:"description" validate:"max=500"`
}

// CreateIntent godoc
// @Summary Create a payment intent
// @Tags payments
// @Accept json
// @Produce json
// @Param request body CreateIntentRequest true "Intent parameters"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Failure 500 {object} Response
// @Router /payments/intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req CreateIntentRequest
	if err := c.Bind(&req); err != nil {
		return respondValidation(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err.Error())
	}

	intent, err := h.paymentService.CreateIntent(c.Request().Context(), req.Amount, req.Currency, req.Description)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusCreated, "payment intent created", intent)
}
