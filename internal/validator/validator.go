// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	monthKeyRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	isoDateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	// Work dates may arrive as a full day or, for monthly entries, a bare
	// month the resolver expands to the first.
	workDateRegex = regexp.MustCompile(`^\d{4}-\d{2}(-\d{2})?$`)
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("period_mode", validatePeriodMode)
		_ = v.RegisterValidation("savings_mode", validateSavingsMode)
		_ = v.RegisterValidation("month_key", validateMonthKey)
		_ = v.RegisterValidation("iso_date", validateISODate)
		_ = v.RegisterValidation("work_date", validateWorkDate)
	}
}

func validatePeriodMode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "weekly", "monthly":
		return true
	}
	return false
}

func validateSavingsMode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "fixed", "percent":
		return true
	}
	return false
}

func validateMonthKey(fl validator.FieldLevel) bool {
	return monthKeyRegex.MatchString(fl.Field().String())
}

func validateISODate(fl validator.FieldLevel) bool {
	return isoDateRegex.MatchString(fl.Field().String())
}

func validateWorkDate(fl validator.FieldLevel) bool {
	return workDateRegex.MatchString(fl.Field().String())
}
