package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound       = errors.New("error.user_not_found")
	ErrEmailAlreadyExists = errors.New("error.email_already_exists")
	ErrInvalidCredentials = errors.New("error.invalid_credentials")
	ErrUnauthorized       = errors.New("error.unauthorized")
	ErrForbidden          = errors.New("error.forbidden")
	ErrInvalidToken       = errors.New("error.invalid_token")

	ErrCustomerNotFound  = errors.New("error.customer_not_found")
	ErrCPFAlreadyExists  = errors.New("error.cpf_already_exists")
	ErrVehicleNotFound   = errors.New("error.vehicle_not_found")
	ErrVehicleNotForSale = errors.New("error.vehicle_not_for_sale")
	ErrSaleNotFound      = errors.New("error.sale_not_found")
	ErrTradeInNotFound   = errors.New("error.tradein_not_found")
	ErrGoalNotFound      = errors.New("error.goal_not_found")
	ErrPromotionNotFound = errors.New("error.promotion_not_found")
	ErrPendenciaNotFound = errors.New("error.pendencia_not_found")
	ErrSinalNotFound     = errors.New("error.sinal_not_found")
	ErrLocationNotFound  = errors.New("error.location_not_found")

	ErrCategoryNotFound     = errors.New("error.category_not_found")
	ErrCategoryTooDeep      = errors.New("error.category_too_deep")
	ErrCategoryKindMismatch = errors.New("error.category_kind_mismatch")

	ErrInvalidTransition = errors.New("error.invalid_status_transition")

	// ErrInvalidPayload marca erros de validação de entidade (regras que o
	// binding não cobre). O detalhe fica na mensagem original.
	ErrInvalidPayload = errors.New("error.invalid_payload")
)

// Domain errors
var (
	ErrInvalidEmail = errors.New("error.invalid_email")
	ErrInvalidCPF   = errors.New("error.invalid_cpf")
	ErrInvalidPhone = errors.New("error.invalid_phone")
)

// Integration errors (FIPE)
var (
	ErrFipeNoMatch    = errors.New("error.fipe_no_match")
	ErrFipeUnreliable = errors.New("error.fipe_upstream")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
	ProblemTypeUpstream     = "/problems/upstream-error"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Validation envolve um erro de validação de entidade para que a camada HTTP
// o trate como 422, preservando a mensagem original no detalhe
func Validation(err error) error {
	return &DomainError{
		Type:    ProblemTypeValidation,
		Message: err.Error(),
		Err:     ErrInvalidPayload,
	}
}
