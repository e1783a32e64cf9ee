// Package brasilapi consulta a BrasilAPI: calendário de feriados
// nacionais e busca de endereço por CEP.
package brasilapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const DefaultBaseURL = "https://brasilapi.com.br"

// ErrLookupFailure: a BrasilAPI não respondeu com sucesso. A política é
// propagar — nunca tratar a data como "não feriado" silenciosamente.
var ErrLookupFailure = errors.New("não foi possível consultar a BrasilAPI")

// Calendar responde se uma data é feriado nacional.
type Calendar interface {
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}

type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type CEPInfo struct {
	CEP          string `json:"cep"`
	State        string `json:"state"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Street       string `json:"street"`
}

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// NewClient cria o cliente com timeout limitado; a consulta de feriados
// roda dentro de requisições e não pode bloquear indefinidamente.
func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Holidays busca a lista de feriados do ano.
func (c *Client) Holidays(ctx context.Context, year int) ([]Holiday, error) {
	url := fmt.Sprintf("%s/api/feriados/v1/%d", c.baseURL, year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("consulta de feriados falhou",
			zap.Int("ano", year),
			zap.Error(err),
		)
		return nil, ErrLookupFailure
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("consulta de feriados retornou status inesperado",
			zap.Int("ano", year),
			zap.Int("status", resp.StatusCode),
		)
		return nil, ErrLookupFailure
	}

	var holidays []Holiday
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, ErrLookupFailure
	}

	return holidays, nil
}

func (c *Client) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	holidays, err := c.Holidays(ctx, date.Year())
	if err != nil {
		return false, err
	}
	return containsDate(holidays, date), nil
}

// LookupCEP busca um endereço pelo CEP (v2).
func (c *Client) LookupCEP(ctx context.Context, cep string) (*CEPInfo, error) {
	c.log.Info("fazendo requisição para BrasilAPI", zap.String("cep", cep))

	url := fmt.Sprintf("%s/api/cep/v2/%s", c.baseURL, cep)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("consulta de CEP falhou", zap.String("cep", cep), zap.Error(err))
		return nil, ErrLookupFailure
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("consulta de CEP retornou status inesperado",
			zap.String("cep", cep),
			zap.Int("status", resp.StatusCode),
		)
		return nil, ErrLookupFailure
	}

	var info CEPInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, ErrLookupFailure
	}

	return &info, nil
}

func containsDate(holidays []Holiday, date time.Time) bool {
	day := date.UTC().Format("2006-01-02")
	for _, h := range holidays {
		if h.Date == day {
			return true
		}
	}
	return false
}

var _ Calendar = (*Client)(nil)
