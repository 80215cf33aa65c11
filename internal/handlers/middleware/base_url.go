package middleware

import "github.com/gin-gonic/gin"

// BaseURL injeta a URL base da API no contexto de cada requisição.
// As respostas de erro RFC 7807 a usam para montar URIs de tipo absolutas.
func BaseURL(baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("base_url", baseURL)
		c.Next()
	}
}
