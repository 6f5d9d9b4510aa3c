package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
)

// periodKind validates the period query parameter values accepted by the
// report endpoints.
func periodKind(fl validator.FieldLevel) bool {
	switch domain.PeriodKind(fl.Field().String()) {
	case domain.PeriodAll, domain.PeriodToday, domain.PeriodThisMonth, domain.PeriodCustom:
		return true
	default:
		return false
	}
}

// RegisterCustomValidations attaches application validations to gin's binding
// validator. Called once at startup.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("periodkind", periodKind)
}
