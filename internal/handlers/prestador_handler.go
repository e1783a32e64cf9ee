package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/agendaservices/salon-agenda/internal/domain/appointment"
	"github.com/agendaservices/salon-agenda/internal/httpresp"
)

type PrestadorHandler struct {
	repo domain.Repository
}

func NewPrestadorHandler(repo domain.Repository) *PrestadorHandler {
	return &PrestadorHandler{repo: repo}
}

type PrestadorResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func (h *PrestadorHandler) List(c *gin.Context) {
	providers, err := h.repo.ListProviders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]PrestadorResponse, 0, len(providers))
	for _, p := range providers {
		out = append(out, PrestadorResponse{ID: p.ID, Username: p.Username})
	}

	httpresp.List(c, out)
}
