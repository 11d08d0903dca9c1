// Package validation registers routing number rules with go-playground/validator
// so request and config structs can declare them as struct tags:
//
//	type Payee struct {
//		Routing string `validate:"required,aba_micr"`
//	}
package validation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"rtn/pkg/routing"
)

// Tags registered on the shared validator.
const (
	TagMICR     = "aba_micr"
	TagFraction = "aba_fraction"
	TagAny      = "aba_rtn"
)

var (
	// ErrValidationFailed wraps every error returned by ValidateStruct.
	ErrValidationFailed = errors.New("validation failed")
	// ErrFieldRequired is returned when a required field is missing.
	ErrFieldRequired = errors.New("field is required")
	// ErrFieldRoutingNumber is returned when a field is not a valid routing number.
	ErrFieldRoutingNumber = errors.New("field must be a valid routing number")
	// ErrValidatorInit is returned when custom rule registration fails.
	ErrValidatorInit = errors.New("validator initialization failed")
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
	errValidate  error
)

// parseRules maps each tag to the parse function it enforces.
var parseRules = map[string]func(string) (routing.RoutingNumber, error){
	TagMICR:     routing.ParseMICR,
	TagFraction: routing.ParseFraction,
	TagAny:      routing.Parse,
}

// Register adds the routing number tags to v.
func Register(v *validator.Validate) error {
	for tag, parse := range parseRules {
		parse := parse
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if s == "" {
				return true // left to required
			}
			_, err := parse(s)
			return err == nil
		})
		if err != nil {
			return fmt.Errorf("%w: failed to register '%s': %w", ErrValidatorInit, tag, err)
		}
	}
	return nil
}

func initValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := Register(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Get returns the shared validator, building it on first use.
func Get() (*validator.Validate, error) {
	validateOnce.Do(func() {
		validate, errValidate = initValidator()
	})
	return validate, errValidate
}

// ValidateStruct validates payload and returns the first failing field.
func ValidateStruct(payload any) error {
	v, err := Get()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	if err := v.Struct(payload); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fmt.Errorf("%w: %w", ErrValidationFailed, formatFieldError(fieldErrs[0]))
		}
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}
	return nil
}

func formatFieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: '%s'", ErrFieldRequired, fe.Field())
	case TagMICR, TagFraction, TagAny:
		return fmt.Errorf("%w: '%s' (%s)", ErrFieldRoutingNumber, fe.Field(), fe.Tag())
	default:
		return fmt.Errorf("'%s' failed on '%s'", fe.Field(), fe.Tag())
	}
}
