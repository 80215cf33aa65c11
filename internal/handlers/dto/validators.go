package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/garagem/crm-backend/internal/domain/valueobjects"
)

// RegisterCustomValidators registra as tags de validação próprias do domínio
// no engine de binding do Gin. Chamar uma vez no bootstrap.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return valueobjects.IsValidCPF(fl.Field().String())
	})
}
