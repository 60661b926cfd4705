package recipient

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern      = regexp.MustCompile(`^\+?[0-9\s().\-]+$`)
	nationalIDPattern = regexp.MustCompile(`^[A-Za-z0-9\- ]+$`)
)

// Info is the recipient identity collected for a gift order.
type Info struct {
	Name       string `json:"name" validate:"notblank"`
	Phone      string `json:"phone" validate:"visiblemin=10,phone,hasdigit"`
	NationalID string `json:"nationalId" validate:"min=5,max=20,nationalid,hasalnum"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	must(v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}))
	must(v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("nationalid", func(fl validator.FieldLevel) bool {
		return nationalIDPattern.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("visiblemin", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return visibleLen(fl.Field().String()) >= n
	}))
	must(v.RegisterValidation("hasdigit", func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), unicode.IsDigit) >= 0
	}))
	must(v.RegisterValidation("hasalnum", func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsDigit(r)
		}) >= 0
	}))
	return v
}

// visibleLen counts the runes of s that are not whitespace.
func visibleLen(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Validate checks info and returns one message per failing field, keyed by
// the field's json name. A nil map means info is valid.
func Validate(info Info) map[string]string {
	err := validate.Struct(info)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Field() {
	case "name":
		return "Recipient name is required."
	case "phone":
		switch fe.Tag() {
		case "visiblemin":
			return "Phone number must be at least 10 characters."
		case "hasdigit":
			return "Phone number must contain digits."
		}
		return "Phone number may only contain digits, spaces, parentheses, dots and hyphens, with an optional leading +."
	case "nationalId":
		switch fe.Tag() {
		case "nationalid":
			return "National ID may only contain letters, digits, hyphens and spaces."
		case "hasalnum":
			return "National ID must contain letters or digits."
		}
		return "National ID must be between 5 and 20 characters."
	}
	return fe.Error()
}
