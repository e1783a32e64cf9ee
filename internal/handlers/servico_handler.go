package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendaservices/salon-agenda/internal/fielderr"
	"github.com/agendaservices/salon-agenda/internal/httperr"
	"github.com/agendaservices/salon-agenda/internal/httpresp"
	"github.com/agendaservices/salon-agenda/internal/models"
)

type ServicoHandler struct {
	db *gorm.DB
}

func NewServicoHandler(db *gorm.DB) *ServicoHandler {
	return &ServicoHandler{db: db}
}

type CreateServicoRequest struct {
	Servico string `json:"servico" binding:"required"`
}

func (h *ServicoHandler) Create(c *gin.Context) {
	var req CreateServicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", err.Error())
		return
	}

	ctx := c.Request.Context()

	var count int64
	if err := h.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("name = ?", req.Servico).
		Count(&count).Error; err != nil {
		respondError(c, err)
		return
	}
	if count > 0 {
		verrs := fielderr.New()
		verrs.Add("servico", "Serviço já cadastrado!")
		c.JSON(http.StatusBadRequest, verrs.Fields)
		return
	}

	service := models.Service{Name: req.Servico}
	if err := h.db.WithContext(ctx).Create(&service).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *ServicoHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Order("name ASC").
		Find(&services).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, services)
}
