package httpadapter

import (
	"errors"
	"fmt"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/go-playground/validator/v10"
)

var errValidationFailed = errors.New("request validation failed")

var validate = validator.New(validator.WithRequiredStructEnabled())

// bindAndValidate decodes the JSON body into out and runs struct
// validation on it. The returned error wraps errValidationFailed so
// writeError can map it to a 400.
func bindAndValidate(ctx *app.RequestContext, out any) error {
	if err := decodeJSON(ctx, out); err != nil {
		return fmt.Errorf("%w: malformed JSON body", errValidationFailed)
	}
	if err := validate.Struct(out); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return fmt.Errorf("%w: %v", errValidationFailed, err)
		}
		var fields validator.ValidationErrors
		if errors.As(err, &fields) && len(fields) > 0 {
			f := fields[0]
			return fmt.Errorf("%w: field %q failed rule %q", errValidationFailed, f.Field(), f.Tag())
		}
		return fmt.Errorf("%w: %v", errValidationFailed, err)
	}
	return nil
}
