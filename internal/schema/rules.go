package schema

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/MKhiriev/storefront-api/models"
	"github.com/go-playground/validator/v10"
)

// passwordMessage is the single client-facing explanation for every
// password complexity failure. It deliberately does not reveal which rule
// was missed.
const passwordMessage = "Password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, one number and one special character"

// registerTagNames makes validation errors report JSON field names instead
// of Go struct field names.
func registerTagNames(validate *validator.Validate) {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// registerDomainRules adds the validation rules that plain tags cannot
// express: password complexity and category enum membership.
func registerDomainRules(validate *validator.Validate) error {
	if err := validate.RegisterValidation("password", validPassword); err != nil {
		return err
	}
	return validate.RegisterValidation("category", validCategory)
}

// validPassword enforces the signup password policy: at least 8
// characters with one upper-case letter, one lower-case letter, one digit
// and one symbol.
func validPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSymbol
}

// validCategory checks enum membership against models.Categories.
func validCategory(fl validator.FieldLevel) bool {
	candidate := models.Category(fl.Field().String())
	for _, category := range models.Categories {
		if candidate == category {
			return true
		}
	}
	return false
}

// issueMessage renders a stable, client-safe message for a single violated
// constraint.
func issueMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid url"
	case "min":
		if fieldError.Kind() == reflect.String {
			return "must be at least " + fieldError.Param() + " characters long"
		}
		return "must be at least " + fieldError.Param()
	case "max":
		if fieldError.Kind() == reflect.String {
			return "must be at most " + fieldError.Param() + " characters long"
		}
		return "must be at most " + fieldError.Param()
	case "gt":
		return "must be greater than " + fieldError.Param()
	case "password":
		return passwordMessage
	case "category":
		return "must be one of: " + joinCategories()
	default:
		return "is invalid"
	}
}

func joinCategories() string {
	parts := make([]string, 0, len(models.Categories))
	for _, category := range models.Categories {
		parts = append(parts, string(category))
	}
	return strings.Join(parts, ", ")
}
