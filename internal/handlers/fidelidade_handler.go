package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/agendaservices/salon-agenda/internal/domain/appointment"
	"github.com/agendaservices/salon-agenda/internal/httperr"
	"github.com/agendaservices/salon-agenda/internal/httpresp"
)

type FidelidadeHandler struct {
	repo domain.Repository
}

func NewFidelidadeHandler(repo domain.Repository) *FidelidadeHandler {
	return &FidelidadeHandler{repo: repo}
}

type FidelidadeResponse struct {
	ID              uint   `json:"id"`
	NomeCliente     string `json:"nome_cliente"`
	Prestador       string `json:"prestador"`
	NivelFidelidade int    `json:"nivel_fidelidade"`
}

func (h *FidelidadeHandler) List(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		httperr.BadRequest(c, "missing_username",
			"Informe o parâmetro username!")
		return
	}

	provider, err := h.repo.GetProviderByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpresp.List(c, []FidelidadeResponse{})
			return
		}
		respondError(c, err)
		return
	}

	records, err := h.repo.ListLoyalty(c.Request.Context(), provider.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]FidelidadeResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, FidelidadeResponse{
			ID:              rec.ID,
			NomeCliente:     rec.ClientName,
			Prestador:       provider.Username,
			NivelFidelidade: rec.Level,
		})
	}

	httpresp.List(c, out)
}
