package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/expense_ledger_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// instance returns the shared validator. It reads the same "binding" tags gin
// uses so request structs are validated identically in handlers and services.
func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.SetTagName("binding")
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Struct validates s and returns every violation as apperrors.ValidationErrors.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return FromValidator(verrs)
}

// FromValidator converts validator output into the application error type.
func FromValidator(verrs validator.ValidationErrors) apperrors.ValidationErrors {
	out := make(apperrors.ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, apperrors.FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// Collector accumulates field errors from hand-written checks.
type Collector struct {
	errs apperrors.ValidationErrors
}

// Add records a violation.
func (c *Collector) Add(field, rule, msg string) {
	c.errs = append(c.errs, apperrors.FieldError{Field: field, Rule: rule, Message: msg})
}

// Merge appends the violations found in err when it is a validation error,
// and returns any other error unchanged.
func (c *Collector) Merge(err error) error {
	if err == nil {
		return nil
	}
	var verrs apperrors.ValidationErrors
	if errors.As(err, &verrs) {
		c.errs = append(c.errs, verrs...)
		return nil
	}
	return err
}

// Err returns nil when nothing was collected.
func (c *Collector) Err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}
