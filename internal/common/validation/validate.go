package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/unionconnect/go-wallet-admin/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

type ErrorValidateResponse struct {
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e ErrorValidateResponse) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	validate = validator.New()

	phonePattern    = regexp.MustCompile(`^\+?[0-9][0-9 \-]{5,19}$`)
	memberIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9\-]*$`)

	// custom tags; every value is trimmed before matching since requests
	// are validated before they are normalized
	customTags = map[string]func(value string) bool{
		"phone":    phonePattern.MatchString,
		"memberid": memberIDPattern.MatchString,
		"nonblank": func(value string) bool { return value != "" },
	}
)

func init() {
	// field names in errors follow the json tags
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, match := range customTags {
		match := match
		if err := registerTag(validate, tag, match); err != nil {
			panic(err)
		}
	}
}

func registerTag(v *validator.Validate, tag string, match func(value string) bool) error {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return match(strings.TrimSpace(fl.Field().String()))
	})
	if err != nil {
		return fmt.Errorf("register validation %q: %w", tag, err)
	}
	return nil
}

// ValidateStruct returns a *multierror.Error holding one ErrorValidateResponse
// per failed field, or nil.
func ValidateStruct(toValidate interface{}) error {
	err := validate.Struct(toValidate)
	if err == nil {
		return nil
	}

	var (
		errs       *multierror.Error
		invalidErr *validator.InvalidValidationError
		fieldErrs  validator.ValidationErrors
	)
	switch {
	case errors.As(err, &invalidErr):
		errs = multierror.Append(errs, ErrorValidateResponse{Message: invalidErr.Error()})
	case errors.As(err, &fieldErrs):
		for _, fieldErr := range fieldErrs {
			errs = multierror.Append(errs, toErrorResponse(fieldErr))
		}
	default:
		errs = multierror.Append(errs, ErrorValidateResponse{Message: err.Error()})
	}

	return errs.ErrorOrNil()
}

// toErrorResponse looks the failure up in models.MapErrors under
// "<field>_<tag>" and falls back to the raw tag.
func toErrorResponse(fieldErr validator.FieldError) ErrorValidateResponse {
	key := fmt.Sprintf("%s_%s", fieldErr.Field(), fieldErr.Tag())
	if data, found := models.MapErrors[key]; found {
		return ErrorValidateResponse{
			Code:    data.Code,
			Field:   fieldErr.Field(),
			Message: data.ErrorMessage.Error(),
		}
	}

	return ErrorValidateResponse{
		Code:    strings.ToUpper(fmt.Sprintf("%s_%s", fieldErr.Field(), fieldErr.Tag())),
		Field:   fieldErr.Field(),
		Message: strings.TrimSpace(fmt.Sprintf("%s %s", fieldErr.Tag(), fieldErr.Param())),
	}
}
