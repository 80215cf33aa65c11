package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/garagem/crm-backend/internal/handlers/dto"
)

// parseID extrai e valida o parâmetro de rota :id como UUID.
// Responde 400 e retorna false quando inválido.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		dto.RespondValidationError(c, err)
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination extrai page e page_size da query string
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}

// parsePeriod extrai o intervalo from/to da query string (RFC 3339 ou
// yyyy-mm-dd). Defaults: início do mês corrente até agora.
func parsePeriod(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := now

	if raw := c.Query("from"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			dto.RespondValidationError(c, err)
			return time.Time{}, time.Time{}, false
		}
		from = parsed
	}

	if raw := c.Query("to"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			dto.RespondValidationError(c, err)
			return time.Time{}, time.Time{}, false
		}
		// Data sem hora cobre o dia inteiro
		if len(raw) == len("2006-01-02") {
			parsed = parsed.Add(24*time.Hour - time.Nanosecond)
		}
		to = parsed
	}

	return from, to, true
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// respondNoContent responde 204 sem corpo
func respondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
