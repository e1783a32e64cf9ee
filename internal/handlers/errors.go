package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendaservices/salon-agenda/internal/brasilapi"
	"github.com/agendaservices/salon-agenda/internal/fielderr"
	"github.com/agendaservices/salon-agenda/internal/httperr"
)

// respondError traduz os erros das camadas de baixo para a resposta
// HTTP: violações de validação viram o mapa campo -> mensagens com 400,
// o resto vira o envelope padrão de erro.
func respondError(c *gin.Context, err error) {
	var verrs *fielderr.Errors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, verrs.Fields)
		return
	}

	switch {
	case errors.Is(err, brasilapi.ErrLookupFailure):
		httperr.ServiceUnavailable(c, "holiday_lookup_failed",
			"Não foi possível consultar os feriados!")
	case errors.Is(err, gorm.ErrRecordNotFound):
		httperr.NotFound(c, "not_found", "Registro não encontrado!")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state",
			"Apenas agendamentos não confirmados podem ser confirmados!")
	default:
		httperr.Internal(c, "internal_error", "Erro interno do servidor")
	}
}
