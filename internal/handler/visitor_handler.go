package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/service"
)

// VisitorHandler handles visit tracking and the analytics dashboard.
type VisitorHandler struct {
	visitorService service.VisitorService
	statsService   service.StatsService
}

// NewVisitorHandler creates a new visitor handler.
func NewVisitorHandler(visitorService service.VisitorService, statsService service.StatsService) *VisitorHandler {
	return &VisitorHandler{
		visitorService: visitorService,
		statsService:   statsService,
	}
}

// TrackRequest carries the optional fields the frontend resolves client-side.
// Network-derived fields (IP, user agent, referrer, language) come from the
// request itself.
type TrackRequest struct {
	Country *string `json:"country"`
	City    *string `json:"city"`
	Device  *string `json:"device"`
	Browser *string `json:"browser"`
	OS      *string `json:"os"`
}

// Track godoc
// @Summary Record a visit
// @Tags visitors
// @Accept json
// @Produce json
// @Param request body TrackRequest false "Client-resolved fields"
// @Success 202 {object} Response
// @Failure 500 {object} Response
// @Router /visits [post]
func (h *VisitorHandler) Track(c echo.Context) error {
	var req TrackRequest
	// Body is optional; a bare POST still counts as a visit.
	_ = c.Bind(&req)

	obs := service.VisitObservation{
		IPAddress: optional(c.RealIP()),
		UserAgent: optional(c.Request().UserAgent()),
		Referrer:  optional(c.Request().Referer()),
		Language:  optional(c.Request().Header.Get("Accept-Language")),
		Country:   req.Country,
		City:      req.City,
		Device:    req.Device,
		Browser:   req.Browser,
		OS:        req.OS,
	}

	if err := h.visitorService.RecordVisit(c.Request().Context(), obs); err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusAccepted, "visit recorded", nil)
}

// List godoc
// @Summary List visitor records
// @Tags visitors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Router /admin/visitors [get]
func (h *VisitorHandler) List(c echo.Context) error {
	visitors, err := h.visitorService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "visitors", visitors)
}

// Stats godoc
// @Summary Visitor dashboard summary
// @Tags visitors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Router /admin/visitors/stats [get]
func (h *VisitorHandler) Stats(c echo.Context) error {
	stats, err := h.statsService.VisitorStats(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "visitor stats", stats)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
