package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendaservices/salon-agenda/internal/brasilapi"
	"github.com/agendaservices/salon-agenda/internal/fielderr"
	"github.com/agendaservices/salon-agenda/internal/httperr"
	"github.com/agendaservices/salon-agenda/internal/httpresp"
	"github.com/agendaservices/salon-agenda/internal/models"
)

// ======================================================
// HANDLER — endereços (preenchidos a partir do CEP)
// ======================================================

type EnderecoHandler struct {
	db     *gorm.DB
	brasil *brasilapi.Client
}

func NewEnderecoHandler(db *gorm.DB, brasil *brasilapi.Client) *EnderecoHandler {
	return &EnderecoHandler{db: db, brasil: brasil}
}

type CreateEnderecoRequest struct {
	Estabelecimento string `json:"estabelecimento" binding:"required"`
	CEP             string `json:"cep" binding:"required"`
	Complemento     string `json:"complemento"`
}

type EnderecoResponse struct {
	ID              uint   `json:"id"`
	Estabelecimento string `json:"estabelecimento"`
	CEP             string `json:"cep"`
	Estado          string `json:"estado"`
	Cidade          string `json:"cidade"`
	Bairro          string `json:"bairro"`
	Rua             string `json:"rua"`
	Complemento     string `json:"complemento"`
}

// Create resolve o CEP na BrasilAPI e grava o endereço já preenchido.
func (h *EnderecoHandler) Create(c *gin.Context) {
	var req CreateEnderecoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_payload", err.Error())
		return
	}

	ctx := c.Request.Context()

	var establishment models.Establishment
	if err := h.db.WithContext(ctx).
		Where("name = ?", req.Estabelecimento).
		First(&establishment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			verrs := fielderr.New()
			verrs.Add("estabelecimento", "Estabelecimento não encontrado!")
			c.JSON(http.StatusBadRequest, verrs.Fields)
			return
		}
		respondError(c, err)
		return
	}

	info, err := h.brasil.LookupCEP(ctx, req.CEP)
	if err != nil {
		if errors.Is(err, brasilapi.ErrLookupFailure) {
			verrs := fielderr.New()
			verrs.Add("cep", "CEP inválido ou não encontrado!")
			c.JSON(http.StatusBadRequest, verrs.Fields)
			return
		}
		respondError(c, err)
		return
	}

	address := models.Address{
		EstablishmentID: establishment.ID,
		CEP:             req.CEP,
		State:           info.State,
		City:            info.City,
		Neighborhood:    info.Neighborhood,
		Street:          info.Street,
		Complement:      req.Complemento,
	}
	if err := h.db.WithContext(ctx).Create(&address).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, EnderecoResponse{
		ID:              address.ID,
		Estabelecimento: establishment.Name,
		CEP:             address.CEP,
		Estado:          address.State,
		Cidade:          address.City,
		Bairro:          address.Neighborhood,
		Rua:             address.Street,
		Complemento:     address.Complement,
	})
}

func (h *EnderecoHandler) List(c *gin.Context) {
	var addresses []models.Address
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Establishment").
		Find(&addresses).Error; err != nil {
		respondError(c, err)
		return
	}

	out := make([]EnderecoResponse, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, EnderecoResponse{
			ID:              a.ID,
			Estabelecimento: a.Establishment.Name,
			CEP:             a.CEP,
			Estado:          a.State,
			Cidade:          a.City,
			Bairro:          a.Neighborhood,
			Rua:             a.Street,
			Complemento:     a.Complement,
		})
	}

	httpresp.List(c, out)
}
