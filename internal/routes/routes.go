package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/agendaservices/salon-agenda/internal/brasilapi"
	domain "github.com/agendaservices/salon-agenda/internal/domain/appointment"
	"github.com/agendaservices/salon-agenda/internal/handlers"
	infraRepo "github.com/agendaservices/salon-agenda/internal/infra/repository"
	ucAgenda "github.com/agendaservices/salon-agenda/internal/usecase/agenda"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	log *zap.Logger,
	policy domain.ExclusionPolicy,
	calendar brasilapi.Calendar,
	brasil *brasilapi.Client,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	agendaRepo := infraRepo.NewAgendaGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	availableSlotsUC := ucAgenda.NewAvailableSlots(agendaRepo, calendar, policy)

	createAppointmentUC := ucAgenda.NewCreateAppointment(
		agendaRepo,
		availableSlotsUC,
		log,
	)

	updateAppointmentUC := ucAgenda.NewUpdateAppointment(
		agendaRepo,
		availableSlotsUC,
	)

	confirmAppointmentUC := ucAgenda.NewConfirmAppointment(agendaRepo)
	cancelAppointmentUC := ucAgenda.NewCancelAppointment(agendaRepo)
	listAppointmentsUC := ucAgenda.NewListAppointments(agendaRepo)
	getAppointmentUC := ucAgenda.NewGetAppointment(agendaRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	agendamentoHandler := handlers.NewAgendamentoHandler(
		createAppointmentUC,
		updateAppointmentUC,
		confirmAppointmentUC,
		cancelAppointmentUC,
		listAppointmentsUC,
		getAppointmentUC,
	)

	horarioHandler := handlers.NewHorarioHandler(availableSlotsUC)
	prestadorHandler := handlers.NewPrestadorHandler(agendaRepo)
	fidelidadeHandler := handlers.NewFidelidadeHandler(agendaRepo)

	funcionarioHandler := handlers.NewFuncionarioHandler(db)
	estabelecimentoHandler := handlers.NewEstabelecimentoHandler(db)
	servicoHandler := handlers.NewServicoHandler(db)
	enderecoHandler := handlers.NewEnderecoHandler(db, brasil)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/horarios/", horarioHandler.List)

		api.GET("/agendamentos/", agendamentoHandler.List)
		api.POST("/agendamentos/", agendamentoHandler.Create)
		api.GET("/agendamentos/:id/", agendamentoHandler.Get)
		api.PUT("/agendamentos/:id/", agendamentoHandler.Update)
		api.DELETE("/agendamentos/:id/", agendamentoHandler.Cancel)
		api.PATCH("/agendamentos/:id/confirmar/", agendamentoHandler.Confirm)

		api.GET("/prestadores/", prestadorHandler.List)
		api.GET("/fidelidade/", fidelidadeHandler.List)

		api.GET("/funcionarios/", funcionarioHandler.List)
		api.POST("/funcionarios/", funcionarioHandler.Create)

		api.GET("/estabelecimentos/", estabelecimentoHandler.List)
		api.POST("/estabelecimentos/", estabelecimentoHandler.Create)

		api.GET("/servicos/", servicoHandler.List)
		api.POST("/servicos/", servicoHandler.Create)

		api.GET("/enderecos/", enderecoHandler.List)
		api.POST("/enderecos/", enderecoHandler.Create)
	}
}
