package dto

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"

	"github.com/garagem/crm-backend/internal/domain/errors"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	problems.DefaultProblem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// NewErrorResponse cria uma resposta de erro RFC 7807 com título e detalhe
// traduzidos pelas chaves i18n informadas
func NewErrorResponse(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return ErrorResponse{
		DefaultProblem: problems.DefaultProblem{
			Type:     baseURL + problemType,
			Title:    T(c, titleKey, params...),
			Status:   status,
			Detail:   T(c, detailKey, params...),
			Instance: c.Request.URL.Path,
		},
	}
}

// RespondProblem escreve a resposta de erro com o media type RFC 7807
func RespondProblem(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.JSON(response.Status, response)
}

// RespondValidationError responde 400 com os erros de binding campo a campo
func RespondValidationError(c *gin.Context, err error) {
	response := NewErrorResponse(c,
		errors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		http.StatusBadRequest)

	var verrs validator.ValidationErrors
	if errs.As(err, &verrs) {
		for _, fe := range verrs {
			response.Errors = append(response.Errors, ValidationError{
				Field:   fe.Field(),
				Message: fe.Error(),
				Tag:     fe.Tag(),
			})
		}
	}

	RespondProblem(c, response)
}

// statusForError mapeia erros de domínio para status HTTP e tipo de problema
func statusForError(err error) (int, string, string) {
	switch {
	case errs.Is(err, errors.ErrUserNotFound),
		errs.Is(err, errors.ErrCustomerNotFound),
		errs.Is(err, errors.ErrVehicleNotFound),
		errs.Is(err, errors.ErrSaleNotFound),
		errs.Is(err, errors.ErrTradeInNotFound),
		errs.Is(err, errors.ErrGoalNotFound),
		errs.Is(err, errors.ErrPromotionNotFound),
		errs.Is(err, errors.ErrPendenciaNotFound),
		errs.Is(err, errors.ErrSinalNotFound),
		errs.Is(err, errors.ErrLocationNotFound),
		errs.Is(err, errors.ErrCategoryNotFound),
		errs.Is(err, errors.ErrFipeNoMatch):
		return http.StatusNotFound, errors.ProblemTypeNotFound, "error.not_found.title"

	case errs.Is(err, errors.ErrEmailAlreadyExists),
		errs.Is(err, errors.ErrCPFAlreadyExists):
		return http.StatusConflict, errors.ProblemTypeConflict, "error.conflict.title"

	case errs.Is(err, errors.ErrInvalidCredentials),
		errs.Is(err, errors.ErrInvalidToken),
		errs.Is(err, errors.ErrUnauthorized):
		return http.StatusUnauthorized, errors.ProblemTypeUnauthorized, "error.unauthorized.title"

	case errs.Is(err, errors.ErrForbidden):
		return http.StatusForbidden, errors.ProblemTypeForbidden, "error.forbidden.title"

	case errs.Is(err, errors.ErrInvalidTransition),
		errs.Is(err, errors.ErrVehicleNotForSale),
		errs.Is(err, errors.ErrCategoryTooDeep),
		errs.Is(err, errors.ErrCategoryKindMismatch):
		return http.StatusUnprocessableEntity, errors.ProblemTypeConflict, "error.unprocessable.title"

	case errs.Is(err, errors.ErrInvalidEmail),
		errs.Is(err, errors.ErrInvalidCPF),
		errs.Is(err, errors.ErrInvalidPhone):
		return http.StatusBadRequest, errors.ProblemTypeValidation, "error.validation.title"

	case errs.Is(err, errors.ErrFipeUnreliable):
		return http.StatusBadGateway, errors.ProblemTypeUpstream, "error.upstream.title"

	case errs.Is(err, errors.ErrInvalidPayload):
		return http.StatusUnprocessableEntity, errors.ProblemTypeValidation, "error.unprocessable.title"
	}

	return http.StatusInternalServerError, errors.ProblemTypeInternal, "error.internal.title"
}

// RespondError traduz um erro de domínio em uma resposta RFC 7807.
// A mensagem dos erros de domínio é a chave i18n do detalhe; erros
// inesperados viram 500 sem vazar detalhes.
func RespondError(c *gin.Context, err error) {
	status, problemType, titleKey := statusForError(err)

	// Erros de validação de entidade carregam a mensagem original
	var domainErr *errors.DomainError
	if errs.As(err, &domainErr) && domainErr.Message != "" {
		response := NewErrorResponse(c, problemType, titleKey, "error.validation.detail", status)
		response.Detail = domainErr.Message
		RespondProblem(c, response)
		return
	}

	detailKey := err.Error()
	if status == http.StatusInternalServerError {
		detailKey = "error.internal.detail"
	}

	RespondProblem(c, NewErrorResponse(c, problemType, titleKey, detailKey, status))
}
