package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendaservices/salon-agenda/internal/fielderr"
	"github.com/agendaservices/salon-agenda/internal/httperr"
	"github.com/agendaservices/salon-agenda/internal/httpresp"
	"github.com/agendaservices/salon-agenda/internal/models"
)

// ======================================================
// HANDLER — vínculos de trabalho (tripla única)
// ======================================================

type FuncionarioHandler struct {
	db *gorm.DB
}

func NewFuncionarioHandler(db *gorm.DB) *FuncionarioHandler {
	return &FuncionarioHandler{db: db}
}

type CreateFuncionarioRequest struct {
	Prestador       string `json:"prestador" binding:"required"`
	Estabelecimento string `json:"estabelecimento" binding:"required"`
	Servico         string `json:"servico" binding:"required"`
}

type FuncionarioResponse struct {
	ID              uint   `json:"id"`
	Prestador       string `json:"prestador"`
	Estabelecimento string `json:"estabelecimento"`
	Servico         string `json:"servico"`
}

func (h *FuncionarioHandler) Create(c *gin.Context) {
	var req CreateFuncionarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", err.Error())
		return
	}

	ctx := c.Request.Context()
	verrs := fielderr.New()

	var provider models.Provider
	if err := h.db.WithContext(ctx).
		Where("username = ?", req.Prestador).
		First(&provider).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, err)
			return
		}
		verrs.Add("prestador", "Username incorreto!")
	}

	var establishment models.Establishment
	if err := h.db.WithContext(ctx).
		Where("name = ?", req.Estabelecimento).
		First(&establishment).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, err)
			return
		}
		verrs.Add("estabelecimento", "Estabelecimento não encontrado!")
	}

	var service models.Service
	if err := h.db.WithContext(ctx).
		Where("name = ?", req.Servico).
		First(&service).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, err)
			return
		}
		verrs.Add("servico", "Serviço não encontrado!")
	}

	if !verrs.Empty() {
		c.JSON(http.StatusBadRequest, verrs.Fields)
		return
	}

	var count int64
	if err := h.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where(
			"provider_id = ? AND establishment_id = ? AND service_id = ?",
			provider.ID, establishment.ID, service.ID,
		).
		Count(&count).Error; err != nil {
		respondError(c, err)
		return
	}
	if count > 0 {
		verrs.AddNonField("Funcionário já cadastrado para este estabelecimento e serviço!")
		c.JSON(http.StatusBadRequest, verrs.Fields)
		return
	}

	employee := models.Employee{
		ProviderID:      provider.ID,
		EstablishmentID: establishment.ID,
		ServiceID:       service.ID,
	}
	if err := h.db.WithContext(ctx).Create(&employee).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, FuncionarioResponse{
		ID:              employee.ID,
		Prestador:       provider.Username,
		Estabelecimento: establishment.Name,
		Servico:         service.Name,
	})
}

func (h *FuncionarioHandler) List(c *gin.Context) {
	var employees []models.Employee
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Provider").
		Preload("Establishment").
		Preload("Service").
		Find(&employees).Error; err != nil {
		respondError(c, err)
		return
	}

	out := make([]FuncionarioResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, FuncionarioResponse{
			ID:              e.ID,
			Prestador:       e.Provider.Username,
			Estabelecimento: e.Establishment.Name,
			Servico:         e.Service.Name,
		})
	}

	httpresp.List(c, out)
}
