package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/service"
)

// PaletteHandler handles AI color-palette generation.
type PaletteHandler struct {
	paletteService service.PaletteService
}

// NewPaletteHandler creates a new palette handler.
func NewPaletteHandler(paletteService service.PaletteService) *PaletteHandler {
	return &PaletteHandler{paletteService: paletteService}
}

// GeneratePaletteRequest represents a palette generation request.
type GeneratePaletteRequest struct {
	Description string `json:"description" validate:"required,max=500"`
	Mood        string `json:"mood" validate:"max=100"`
	Count       int    `json:"count" validate:"min=0,max=10"`
}

// Generate godoc
// @Summary Generate a color palette from a description
// @Tags palettes
// @Accept json
// @Produce json
// @Param request body GeneratePaletteRequest true "Palette parameters"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 500 {object} Response
// @Router /palettes [post]
func (h *PaletteHandler) Generate(c echo.Context) error {
	var req GeneratePaletteRequest
	if err := c.Bind(&req); err != nil {
		return respondValidation(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err.Error())
	}

	colors, err := h.paletteService.Generate(c.Request().Context(), req.Description, req.Mood, req.Count)
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "palette generated", colors)
}
