package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	TagPincode = "pincode"
	TagPhone10 = "phone10"
)

var (
	pincodeRegexp = regexp.MustCompile(`^[0-9]{6}$`)
	phone10Regexp = regexp.MustCompile(`^[0-9]{10}$`)
)

var validationMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"min":      "must be at least %s characters long",
	"max":      "must be at most %s characters long",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"gtfield":  "must be greater than %s",
	"gtefield": "must be greater than or equal to %s",
	"len":      "must have the exact length of %s",
	"eq":       "must be %s",
	"oneof":    "must be one of: %s",
	"datetime": "must match the format %s",
	TagPincode: "must be a 6-digit postal code",
	TagPhone10: "must be a 10-digit phone number",
}

// New возвращает валидатор с правилами бронирования и именами полей из json тегов.
func New() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	err := v.RegisterValidation(TagPincode, matchRegexp(pincodeRegexp))
	if err != nil {
		return nil, fmt.Errorf("register %s validation: %w", TagPincode, err)
	}
	err = v.RegisterValidation(TagPhone10, matchRegexp(phone10Regexp))
	if err != nil {
		return nil, fmt.Errorf("register %s validation: %w", TagPhone10, err)
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v, nil
}

func MustNew() *validator.Validate {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
}

// Message человекочитаемое сообщение для первой ошибки валидации.
func Message(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		if err == nil {
			return ""
		}
		return err.Error()
	}
	return fieldMessage(errs[0])
}

// Describe собирает все ошибки в строку вида "cargo.weight: must be greater than 0".
func Describe(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		if err == nil {
			return ""
		}
		return err.Error()
	}

	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, fmt.Sprintf("%s: %s", trimRoot(fe.Namespace()), fieldMessage(fe)))
	}
	return strings.Join(parts, ", ")
}

func fieldMessage(fe validator.FieldError) string {
	msg, ok := validationMessages[fe.Tag()]
	if !ok {
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
	if strings.Contains(msg, "%s") {
		return fmt.Sprintf(msg, fe.Param())
	}
	return msg
}

func trimRoot(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return rest
}

func matchRegexp(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}
