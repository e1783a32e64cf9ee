package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agendaservices/salon-agenda/internal/httperr"
	"github.com/agendaservices/salon-agenda/internal/httpresp"
	"github.com/agendaservices/salon-agenda/internal/usecase/agenda"
)

type HorarioHandler struct {
	slotsUC *agenda.AvailableSlots
}

func NewHorarioHandler(slotsUC *agenda.AvailableSlots) *HorarioHandler {
	return &HorarioHandler{slotsUC: slotsUC}
}

type HorarioResponse struct {
	DataHorario time.Time `json:"data_horario"`
}

// List devolve os horários livres do dia. Domingo, feriado ou dia
// totalmente ocupado devolvem lista vazia, não erro.
func (h *HorarioHandler) List(c *gin.Context) {
	raw := c.Query("data")

	date, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		httperr.BadRequest(c, "invalid_date",
			"Data inválida! Use o formato YYYY-MM-DD.")
		return
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]HorarioResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, HorarioResponse{DataHorario: s})
	}

	httpresp.List(c, out)
}
