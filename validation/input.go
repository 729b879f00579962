package validation

import (
	"io"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/grzegorzmaniak/gothic-validator/errors"
	"go.uber.org/zap"
)

// defaultValidator is used by the binders when the caller does not pass a
// validator. It is resolved once, without a container.
var defaultValidator = sync.OnceValue(func() Validator {
	zap.L().Debug("No validator given, resolving the default validator")
	return Get(nil, nil)
})

// BindInput binds the input data from the request context to the provided struct.
func BindInput[T any](ctx *gin.Context) (*T, *errors.AppError) {
	var input T

	// - Bind Headers (Universal between all requests)
	if err := ctx.ShouldBindHeader(&input); err != nil {
		return nil, errors.NewBadRequest("Failed to bind headers", err)
	}

	// - Bind Query Parameters (Universal between all requests)
	if err := ctx.ShouldBindQuery(&input); err != nil {
		return nil, errors.NewBadRequest("Failed to bind query parameters", err)
	}

	// - Bind JSON Body (Only for requests that carry one)
	if ctx.Request.Method != http.MethodGet && ctx.Request.Method != http.MethodDelete {
		if ctx.Request.ContentLength > 0 || ctx.GetHeader("Content-Type") != "" {
			if err := ctx.ShouldBindJSON(&input); err != nil {
				if err != io.EOF || ctx.Request.ContentLength != 0 {
					return nil, errors.NewBadRequest("Failed to bind JSON body", err)
				}
			}
		}
	}

	return &input, nil
}

// InputData binds the request into T and validates it with v, passing hints
// through when v understands them. A nil v uses the default validator.
func InputData[T any](ctx *gin.Context, v Validator, hints ...any) (*T, *errors.AppError) {
	input, appErr := BindInput[T](ctx)
	if appErr != nil {
		return nil, appErr
	}

	if appErr := validateData(v, input, "Input validation failed", hints); appErr != nil {
		return nil, appErr
	}

	return input, nil
}

// validateData runs v over target and converts the outcome into an AppError.
func validateData(v Validator, target any, failureMessage string, hints []any) *errors.AppError {
	if v == nil {
		v = defaultValidator()
	}

	errs := NewErrors(objectName(target))

	var err error
	if smart, ok := v.(SmartValidator); ok && len(hints) > 0 {
		err = smart.ValidateWithHints(target, errs, hints...)
	} else {
		err = v.Validate(target, errs)
	}

	if err != nil {
		zap.L().Debug("Validator failed", zap.Error(err))
		return errors.NewInternalServerError("Validation could not be performed", err)
	}

	if errs.HasErrors() {
		return errors.NewValidationFailed(failureMessage, errs)
	}

	return nil
}
