package validation

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "rmdcalc/internal/errors"
	"rmdcalc/internal/infrastructure"
	"rmdcalc/internal/rmd"
)

// RequestValidator checks projection requests against their struct tags
type RequestValidator struct {
	validate *validator.Validate
	logger   *slog.Logger
}

// NewRequestValidator creates a request validator
func NewRequestValidator(logger *slog.Logger) *RequestValidator {
	v := validator.New()
	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{
		validate: v,
		logger:   infrastructure.WithComponent(logger, "request_validator"),
	}
}

// Validate returns a VALIDATION AppError listing every failed field, or nil
func (v *RequestValidator) Validate(req rmd.ProjectionRequest) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewAppValidationError("invalid projection request", err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}

	v.logger.Warn("projection request rejected",
		slog.Any("problems", problems))

	return apperrors.NewAppValidationError(
		"invalid projection request: "+strings.Join(problems, "; "), nil,
	).WithContext("fields", problems)
}

// describe renders a field error for humans
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s check", fe.Field(), fe.Tag())
	}
}
