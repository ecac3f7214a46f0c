package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/service"
)

// RepoHandler handles the public repository listing.
type RepoHandler struct {
	repoService service.RepoService
}

// NewRepoHandler creates a new repo handler.
func NewRepoHandler(repoService service.RepoService) *RepoHandler {
	return &RepoHandler{repoService: repoService}
}

// List godoc
// @Summary List the portfolio owner's public repositories
// @Tags repos
// @Produce json
// @Success 200 {object} Response
// @Failure 500 {object} Response
// @Router /repos [get]
func (h *RepoHandler) List(c echo.Context) error {
	repos, err := h.repoService.ListRepos(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return respond(c, http.StatusOK, "repositories", repos)
}
