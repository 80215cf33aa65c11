package fipe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/garagem/crm-backend/internal/domain/errors"
	"github.com/garagem/crm-backend/internal/domain/ports"
	"github.com/garagem/crm-backend/internal/infrastructure/config"
)

// vehicleType é o segmento consultado na API (1 = carros)
const vehicleType = "carros"

// Client consulta a tabela FIPE via API pública (parallelum.com.br).
// A busca é feita em três etapas encadeadas: marcas -> modelos -> anos,
// casando cada etapa por substring case-insensitive.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     ports.Logger
}

// NewClient cria um novo cliente FIPE
func NewClient(cfg *config.FipeConfig, logger ports.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

type brandDTO struct {
	Codigo string `json:"codigo"`
	Nome   string `json:"nome"`
}

type modelListDTO struct {
	Modelos []modelDTO `json:"modelos"`
}

type modelDTO struct {
	Codigo json.Number `json:"codigo"`
	Nome   string      `json:"nome"`
}

type yearDTO struct {
	Codigo string `json:"codigo"`
	Nome   string `json:"nome"`
}

type valuationDTO struct {
	Valor          string `json:"Valor"`
	Marca          string `json:"Marca"`
	Modelo         string `json:"Modelo"`
	AnoModelo      int    `json:"AnoModelo"`
	Combustivel    string `json:"Combustivel"`
	CodigoFipe     string `json:"CodigoFipe"`
	MesReferencia  string `json:"MesReferencia"`
	TipoVeiculo    int    `json:"TipoVeiculo"`
	SiglaComb      string `json:"SiglaCombustivel"`
	DataConsulta   string `json:"DataConsulta"`
}

// Lookup implementa ports.PriceTable
func (c *Client) Lookup(ctx context.Context, brand, model string, year int) (*ports.PriceQuote, error) {
	brandCode, err := c.findBrand(ctx, brand)
	if err != nil {
		return nil, err
	}

	modelCode, err := c.findModel(ctx, brandCode, model)
	if err != nil {
		return nil, err
	}

	yearCode, err := c.findYear(ctx, brandCode, modelCode, year)
	if err != nil {
		return nil, err
	}

	valuation, err := c.fetchValuation(ctx, brandCode, modelCode, yearCode)
	if err != nil {
		return nil, err
	}

	value, err := ParseCurrency(valuation.Valor)
	if err != nil {
		c.logger.Warn("unparseable fipe value", "raw", valuation.Valor)
		return nil, errors.ErrFipeUnreliable
	}

	return &ports.PriceQuote{
		Brand:     valuation.Marca,
		Model:     valuation.Modelo,
		YearLabel: strconv.Itoa(valuation.AnoModelo),
		FuelType:  valuation.Combustivel,
		FipeCode:  valuation.CodigoFipe,
		Value:     value,
		Reference: valuation.MesReferencia,
	}, nil
}

func (c *Client) findBrand(ctx context.Context, brand string) (string, error) {
	var brands []brandDTO
	if err := c.get(ctx, fmt.Sprintf("/%s/marcas", vehicleType), &brands); err != nil {
		return "", err
	}

	for _, b := range brands {
		if containsFold(b.Nome, brand) {
			return b.Codigo, nil
		}
	}

	return "", errors.ErrFipeNoMatch
}

func (c *Client) findModel(ctx context.Context, brandCode, model string) (string, error) {
	var list modelListDTO
	path := fmt.Sprintf("/%s/marcas/%s/modelos", vehicleType, brandCode)
	if err := c.get(ctx, path, &list); err != nil {
		return "", err
	}

	for _, m := range list.Modelos {
		if containsFold(m.Nome, model) {
			return m.Codigo.String(), nil
		}
	}

	return "", errors.ErrFipeNoMatch
}

func (c *Client) findYear(ctx context.Context, brandCode, modelCode string, year int) (string, error) {
	var years []yearDTO
	path := fmt.Sprintf("/%s/marcas/%s/modelos/%s/anos", vehicleType, brandCode, modelCode)
	if err := c.get(ctx, path, &years); err != nil {
		return "", err
	}

	wanted := strconv.Itoa(year)
	for _, y := range years {
		// Código vem como "2015-1" (ano-combustível)
		if strings.HasPrefix(y.Codigo, wanted) || strings.Contains(y.Nome, wanted) {
			return y.Codigo, nil
		}
	}

	return "", errors.ErrFipeNoMatch
}

func (c *Client) fetchValuation(ctx context.Context, brandCode, modelCode, yearCode string) (*valuationDTO, error) {
	var valuation valuationDTO
	path := fmt.Sprintf("/%s/marcas/%s/modelos/%s/anos/%s", vehicleType, brandCode, modelCode, yearCode)
	if err := c.get(ctx, path, &valuation); err != nil {
		return nil, err
	}
	return &valuation, nil
}

// get executa um GET na API e decodifica a resposta JSON
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("fipe request failed", "path", path, "error", err)
		return errors.ErrFipeUnreliable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("fipe request returned non-200", "path", path, "status", resp.StatusCode)
		return errors.ErrFipeUnreliable
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.ErrFipeUnreliable
	}

	return nil
}

// containsFold verifica substring ignorando maiúsculas/minúsculas
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(strings.TrimSpace(needle)))
}

// ParseCurrency converte um valor monetário localizado ("R$ 43.294,00")
// em decimal
func ParseCurrency(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	if s == "" {
		return decimal.Zero, fmt.Errorf("empty currency value")
	}

	return decimal.NewFromString(s)
}
