package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const MaxReasonLength = 255

var (
	// One local part, one @, and a domain whose final dot-separated label is
	// at least two characters long.
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)*\.[A-Za-z]{2,}$`)

	// Canonical UUID text form: 8-4-4-4-12 hex groups, case-insensitive.
	uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the wire name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func ValidUUID(s string) bool {
	return uuidPattern.MatchString(s)
}

// ValidReason accepts an absent reason or one of at most MaxReasonLength
// characters.
func ValidReason(s *string) bool {
	return s == nil || utf8.RuneCountInString(*s) <= MaxReasonLength
}

// Struct runs the `validate` tags of a request DTO and reports the first
// failing field as a client-facing error.
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		if fe.Tag() == "required" {
			return fmt.Errorf("%s is required", fe.Field())
		}
		return fmt.Errorf("%s is invalid", fe.Field())
	}
	return err
}
