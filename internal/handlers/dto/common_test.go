package dto

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garagem/crm-backend/internal/domain/errors"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/v1/customers", nil)
	return c, w
}

func decodeProblem(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestRespondError(t *testing.T) {
	t.Run("erro de domínio não encontrado vira 404", func(t *testing.T) {
		c, w := newTestContext(t)

		RespondError(c, errors.ErrCustomerNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, problems.ProblemMediaType, w.Header().Get("Content-Type"))

		response := decodeProblem(t, w)
		assert.Equal(t, http.StatusNotFound, response.Status)
		assert.Equal(t, "/api/v1/customers", response.Instance)
		assert.Contains(t, response.Type, errors.ProblemTypeNotFound)
	})

	t.Run("credenciais inválidas viram 401", func(t *testing.T) {
		c, w := newTestContext(t)

		RespondError(c, errors.ErrInvalidCredentials)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("transição inválida vira 422", func(t *testing.T) {
		c, w := newTestContext(t)

		RespondError(c, errors.ErrInvalidTransition)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("erro de validação de entidade carrega a mensagem original", func(t *testing.T) {
		c, w := newTestContext(t)

		RespondError(c, errors.Validation(stderrors.New("sale price must be positive")))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		response := decodeProblem(t, w)
		assert.Equal(t, "sale price must be positive", response.Detail)
	})

	t.Run("erro desconhecido vira 500 sem vazar detalhes", func(t *testing.T) {
		c, w := newTestContext(t)

		RespondError(c, stderrors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		response := decodeProblem(t, w)
		assert.NotContains(t, response.Detail, "connection refused")
	})

	t.Run("FIPE indisponível vira 502", func(t *testing.T) {
		c, w := newTestContext(t)

		RespondError(c, errors.ErrFipeUnreliable)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestRespondValidationError(t *testing.T) {
	t.Run("erros de binding viram 400 campo a campo", func(t *testing.T) {
		gin.SetMode(gin.TestMode)

		router := gin.New()
		router.POST("/customers", func(c *gin.Context) {
			var req CreateCustomerRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				RespondValidationError(c, err)
				return
			}
			c.Status(http.StatusCreated)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/customers", nil)
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		response := decodeProblem(t, w)
		assert.Equal(t, http.StatusBadRequest, response.Status)
	})
}
