package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"portfolio/internal/service"
)

// MessageHandler handles the contact-form inbox.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// SubmitMessageRequest represents a contact-form submission.
type SubmitMessageRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=255"`
	Body    string `json:"body" validate:"required"`
}

// Submit godoc
// @Summary Submit a contact message
// @Tags messages
// @Accept json
// @Produce json
// @Param request body SubmitMessageRequest true "Message"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Failure 500 {object} Response
// @Router /messages [post]
func (h *MessageHandler) Submit(c echo.Context) error {
	var req SubmitMessageRequest
	if err := c.Bind(&req); err != nil {
		return respondValidation(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err.Error())
	}

	message, err := h.messageService.Submit(c.Request().Context(), req.Name, req.Email, req.Subject, req.Body)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusCreated, "message received", message)
}

// List godoc
// @Summary List contact messages
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Router /admin/messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	messages, err := h.messageService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "messages", messages)
}

// Get godoc
// @Summary Get one contact message
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /admin/messages/{id} [get]
func (h *MessageHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondValidation(c, "invalid id")
	}
	message, err := h.messageService.Get(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "message", message)
}
