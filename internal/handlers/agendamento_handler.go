package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/agendaservices/salon-agenda/internal/domain/appointment"
	"github.com/agendaservices/salon-agenda/internal/httperr"
	"github.com/agendaservices/salon-agenda/internal/httpresp"
	"github.com/agendaservices/salon-agenda/internal/models"
	"github.com/agendaservices/salon-agenda/internal/usecase/agenda"
)

// ======================================================
// HANDLER
// ======================================================

type AgendamentoHandler struct {
	createUC  *agenda.CreateAppointment
	updateUC  *agenda.UpdateAppointment
	confirmUC *agenda.ConfirmAppointment
	cancelUC  *agenda.CancelAppointment
	listUC    *agenda.ListAppointments
	getUC     *agenda.GetAppointment
}

func NewAgendamentoHandler(
	createUC *agenda.CreateAppointment,
	updateUC *agenda.UpdateAppointment,
	confirmUC *agenda.ConfirmAppointment,
	cancelUC *agenda.CancelAppointment,
	listUC *agenda.ListAppointments,
	getUC *agenda.GetAppointment,
) *AgendamentoHandler {
	return &AgendamentoHandler{
		createUC:  createUC,
		updateUC:  updateUC,
		confirmUC: confirmUC,
		cancelUC:  cancelUC,
		listUC:    listUC,
		getUC:     getUC,
	}
}

// ======================================================
// REQUESTS / RESPONSES
// ======================================================

type CreateAgendamentoRequest struct {
	Prestador       string    `json:"prestador" binding:"required"`
	Estabelecimento string    `json:"estabelecimento" binding:"required"`
	Servico         string    `json:"servico" binding:"required"`
	DataHorario     time.Time `json:"data_horario" binding:"required"`
	NomeCliente     string    `json:"nome_cliente" binding:"required"`
	EmailCliente    string    `json:"email_cliente" binding:"required,email"`
	TelefoneCliente string    `json:"telefone_cliente" binding:"required"`
}

type UpdateAgendamentoRequest struct {
	DataHorario     time.Time `json:"data_horario" binding:"required"`
	NomeCliente     string    `json:"nome_cliente" binding:"required"`
	EmailCliente    string    `json:"email_cliente" binding:"required,email"`
	TelefoneCliente string    `json:"telefone_cliente" binding:"required"`
}

type AgendamentoResponse struct {
	ID              uint      `json:"id"`
	Prestador       string    `json:"prestador"`
	Estabelecimento string    `json:"estabelecimento"`
	Servico         string    `json:"servico"`
	DataHorario     time.Time `json:"data_horario"`
	NomeCliente     string    `json:"nome_cliente"`
	EmailCliente    string    `json:"email_cliente"`
	TelefoneCliente string    `json:"telefone_cliente"`
	States          string    `json:"states"`
	Cancelado       bool      `json:"cancelado"`
}

// toAgendamentoResponse serializa com o estado efetivo: CONF cujo
// horário já passou aparece como EXEC.
func toAgendamentoResponse(ap *models.Appointment, now time.Time) AgendamentoResponse {
	return AgendamentoResponse{
		ID:              ap.ID,
		Prestador:       ap.Provider.Username,
		Estabelecimento: ap.Establishment.Name,
		Servico:         ap.Service.Name,
		DataHorario:     ap.StartsAt,
		NomeCliente:     ap.ClientName,
		EmailCliente:    ap.ClientEmail,
		TelefoneCliente: ap.ClientPhone,
		States:          string(domain.EffectiveState(ap, now)),
		Cancelado:       ap.Canceled,
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *AgendamentoHandler) Create(c *gin.Context) {
	var req CreateAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", err.Error())
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), agenda.CreateInput{
		ProviderUsername:  req.Prestador,
		EstablishmentName: req.Estabelecimento,
		ServiceName:       req.Servico,
		StartsAt:          req.DataHorario,
		ClientName:        req.NomeCliente,
		ClientEmail:       req.EmailCliente,
		ClientPhone:       req.TelefoneCliente,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toAgendamentoResponse(ap, time.Now()))
}

// ======================================================
// LIST
// ======================================================

func (h *AgendamentoHandler) List(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		httperr.BadRequest(c, "missing_username",
			"Informe o parâmetro username!")
		return
	}

	var confirmed *bool
	if v := c.Query("confirmado"); v != "" {
		b := v == "True" || v == "true"
		confirmed = &b
	}
	executed := c.Query("executado") == "True" || c.Query("executado") == "true"

	appointments, err := h.listUC.Execute(c.Request.Context(), agenda.ListInput{
		Username:  username,
		Confirmed: confirmed,
		Executed:  executed,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now()
	out := make([]AgendamentoResponse, 0, len(appointments))
	for i := range appointments {
		out = append(out, toAgendamentoResponse(&appointments[i], now))
	}

	httpresp.List(c, out)
}

// ======================================================
// RETRIEVE / UPDATE / CANCEL / CONFIRM
// ======================================================

func (h *AgendamentoHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, toAgendamentoResponse(ap, time.Now()))
}

func (h *AgendamentoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateAgendamentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", err.Error())
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), agenda.UpdateInput{
		ID:          id,
		StartsAt:    req.DataHorario,
		ClientName:  req.NomeCliente,
		ClientEmail: req.EmailCliente,
		ClientPhone: req.TelefoneCliente,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, toAgendamentoResponse(ap, time.Now()))
}

func (h *AgendamentoHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.cancelUC.Execute(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AgendamentoHandler) Confirm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.confirmUC.Execute(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, toAgendamentoResponse(ap, time.Now()))
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido!")
		return 0, false
	}
	return uint(id), true
}
