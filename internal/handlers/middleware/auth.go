package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moogar0880/problems"

	"github.com/garagem/crm-backend/internal/domain/entities"
	"github.com/garagem/crm-backend/internal/domain/errors"
	"github.com/garagem/crm-backend/internal/infrastructure/i18n"
	"github.com/garagem/crm-backend/internal/services"
)

const (
	// UserIDContextKey é a chave do ID do usuário autenticado no contexto do Gin
	UserIDContextKey = "auth_user_id"
	// RoleContextKey é a chave do papel do usuário autenticado no contexto do Gin
	RoleContextKey = "auth_role"
)

// AuthMiddleware valida o token JWT das requisições
type AuthMiddleware struct {
	authService *services.AuthService
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(authService *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireAuth exige um Bearer token válido e coloca as claims no contexto
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abortProblem(c, http.StatusUnauthorized, errors.ProblemTypeUnauthorized,
				"error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		claims, err := m.authService.VerifyAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortProblem(c, http.StatusUnauthorized, errors.ProblemTypeUnauthorized,
				"error.unauthorized.title", "error.invalid_token")
			return
		}

		c.Set(UserIDContextKey, claims.UserID)
		c.Set(RoleContextKey, entities.Role(claims.Role))

		c.Next()
	}
}

// RequireRole exige que o usuário autenticado tenha um dos papéis informados
func (m *AuthMiddleware) RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := CurrentRole(c)
		if !ok {
			abortProblem(c, http.StatusUnauthorized, errors.ProblemTypeUnauthorized,
				"error.unauthorized.title", "error.unauthorized.detail")
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		abortProblem(c, http.StatusForbidden, errors.ProblemTypeForbidden,
			"error.forbidden.title", "error.forbidden.detail")
	}
}

// CurrentUserID retorna o ID do usuário autenticado na requisição
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(UserIDContextKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

// CurrentRole retorna o papel do usuário autenticado na requisição
func CurrentRole(c *gin.Context) (entities.Role, bool) {
	value, exists := c.Get(RoleContextKey)
	if !exists {
		return "", false
	}
	role, ok := value.(entities.Role)
	return role, ok
}

// abortProblem responde RFC 7807 e interrompe a cadeia de handlers.
// Fica aqui (e não no pacote dto) para evitar ciclo de import.
func abortProblem(c *gin.Context, status int, problemType, titleKey, detailKey string) {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	title, detail := titleKey, detailKey
	if value, exists := c.Get(I18nServiceContextKey); exists {
		if service, ok := value.(*i18n.Service); ok {
			lang, _ := c.Get(LanguageContextKey)
			langStr, _ := lang.(string)
			title = service.T(langStr, titleKey)
			detail = service.T(langStr, detailKey)
		}
	}

	problem := problems.DefaultProblem{
		Type:     baseURL + problemType,
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.Request.URL.Path,
	}

	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(status, problem)
}
