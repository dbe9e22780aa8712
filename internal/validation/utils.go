package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/storefront-labs/catalog-api/internal/errs"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required,min=1"`)
//   - Implement Validate() error that runs validation.Struct(req)
//   - Return validator.ValidationErrors (or CustomValidationErrors for
//     checks tags cannot express)
type Validatable interface {
	Validate() error
}

// Bindable is implemented by request types that need data Echo's binder
// does not reach, such as cookies. BindRequest runs after the standard
// path/query/body binding and before validation.
type Bindable interface {
	BindRequest(c echo.Context) error
}

// Defaulter is implemented by request types with default parameter
// values. Defaults runs before binding, so values provided by the
// client always win.
type Defaulter interface {
	Defaults()
}

// CustomValidationError represents a single validation issue for a
// specific field, used for checks that cannot be expressed via
// validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// validate is the shared validator instance. Field names in error
// messages come from the binding tags (json/form/query/param) rather
// than the Go field names, so clients see the names they sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// Struct runs the shared validator against v. Request types call this
// from their Validate method.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. Defaults() (if implemented) seeds default parameter values.
//  2. Path params, query params, and the body are bound in three
//     explicit steps. Echo's combined Bind skips query params on
//     non-GET methods, and several endpoints here take query params on
//     PUT/POST.
//  3. BindRequest() (if implemented) extracts values the binder does
//     not reach (cookies, etc.).
//  4. payload.Validate() applies the validation rules.
//
// Returns *errs.HTTPError (400) with field-level errors if validation
// fails.
//
// NOTE: payload must be a pointer to a struct so binding can mutate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if d, ok := payload.(Defaulter); ok {
		d.Defaults()
	}

	binder := &echo.DefaultBinder{}
	if err := binder.BindPathParams(c, payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), false, nil, nil, nil)
	}
	if err := binder.BindQueryParams(c, payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), false, nil, nil, nil)
	}
	if err := binder.BindBody(c, payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), false, nil, nil, nil)
	}

	if b, ok := payload.(Bindable); ok {
		if err := b.BindRequest(c); err != nil {
			return errs.NewBadRequestError(bindErrorMessage(err), false, nil, nil, nil)
		}
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

// bindErrorMessage normalizes an Echo binding error into a client-safe
// message.
func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok {
			return msg
		}
	}
	return "malformed request"
}

// validateStruct calls v.Validate() and extracts field errors if
// validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		var customErrors CustomValidationErrors
		if errors.As(err, &customErrors) {
			for _, cerr := range customErrors {
				fieldErrors = append(fieldErrors, errs.FieldError{
					Field: cerr.Field,
					Error: cerr.Message,
				})
			}
			return "Validation failed", fieldErrors
		}

		// Unknown error shape: surface it as a single unnamed field error.
		return "Validation failed", []errs.FieldError{{Field: "", Error: err.Error()}}
	}

	// Convert validator.ValidationErrors into user-friendly messages.
	// Field() is already the client-facing name from the binding tags.
	for _, ferr := range validationErrors {
		field := ferr.Field()
		var msg string

		switch ferr.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// min means minimum length for strings, minimum value for numbers.
			if ferr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", ferr.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", ferr.Param())
			}

		case "max":
			if ferr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", ferr.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", ferr.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", ferr.Param())

		case "gt":
			msg = fmt.Sprintf("must be greater than %s", ferr.Param())

		case "email":
			msg = "must be a valid email address"

		case "dive":
			msg = "some items are invalid"

		default:
			if ferr.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, ferr.Tag(), ferr.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, ferr.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
