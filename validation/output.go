package validation

import (
	"reflect"

	"github.com/grzegorzmaniak/gothic-validator/errors"
	"go.uber.org/zap"
)

// OutputData validates the output struct with v and extracts the fields tagged
// `header:"X-Header-Name"` into a header map. A nil v uses the default validator.
func OutputData[Output any](v Validator, output *Output) (map[string]string, *Output, *errors.AppError) {
	headers := make(map[string]string)

	if output == nil {
		return headers, nil, errors.NewInternalServerError("Output data is nil, cannot validate", nil, "nil_output_validation")
	}

	if appErr := validateData(v, output, "Output data validation failed", nil); appErr != nil {
		return headers, nil, appErr
	}

	val := reflect.Indirect(reflect.ValueOf(output))
	if val.Kind() != reflect.Struct {
		return headers, output, nil
	}

	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		headerTag, ok := field.Tag.Lookup("header")
		if !ok || headerTag == "" || headerTag == "-" {
			continue
		}
		if field.Type.Kind() != reflect.String {
			zap.L().Warn("Header field is not of type string, skipping", zap.String("field", field.Name))
			continue
		}
		headers[headerTag] = val.Field(i).String()
	}

	return headers, output, nil
}
