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

type EstabelecimentoHandler struct {
	db *gorm.DB
}

func NewEstabelecimentoHandler(db *gorm.DB) *EstabelecimentoHandler {
	return &EstabelecimentoHandler{db: db}
}

type CreateEstabelecimentoRequest struct {
	Nome string `json:"nome_estabelecimento" binding:"required"`
}

func (h *EstabelecimentoHandler) Create(c *gin.Context) {
	var req CreateEstabelecimentoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", err.Error())
		return
	}

	ctx := c.Request.Context()

	var count int64
	if err := h.db.WithContext(ctx).
		Model(&models.Establishment{}).
		Where("name = ?", req.Nome).
		Count(&count).Error; err != nil {
		respondError(c, err)
		return
	}
	if count > 0 {
		verrs := fielderr.New()
		verrs.Add("nome_estabelecimento", "Estabelecimento já cadastrado!")
		c.JSON(http.StatusBadRequest, verrs.Fields)
		return
	}

	establishment := models.Establishment{Name: req.Nome}
	if err := h.db.WithContext(ctx).Create(&establishment).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, establishment)
}

func (h *EstabelecimentoHandler) List(c *gin.Context) {
	var establishments []models.Establishment
	if err := h.db.WithContext(c.Request.Context()).
		Order("name ASC").
		Find(&establishments).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, establishments)
}
