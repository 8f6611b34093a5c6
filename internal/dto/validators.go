package dto

import (
	"github.com/cardwise/cardwise_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators installs the binding rules the request DTOs rely
// on. Call once at startup before the engine serves requests.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currencycode", validCurrencyCode)
	}
}

// validCurrencyCode accepts only codes present in the domain currency table.
func validCurrencyCode(fl validator.FieldLevel) bool {
	return domain.IsValidCurrency(domain.CurrencyCode(fl.Field().String()))
}
