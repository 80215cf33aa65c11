package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/garagem/crm-backend/internal/handlers/middleware"
	"github.com/garagem/crm-backend/internal/infrastructure/i18n"
)

// T traduz uma chave no idioma da requisição.
// Uso: dto.T(c, "error.not_found.detail", map[string]interface{}{"Resource": "Cliente"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	i18nService, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := i18nService.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma configurado no contexto da requisição
func GetLanguage(c *gin.Context) string {
	lang, exists := c.Get(middleware.LanguageContextKey)
	if !exists {
		return "pt-BR"
	}

	langStr, ok := lang.(string)
	if !ok {
		return "pt-BR"
	}

	return langStr
}
