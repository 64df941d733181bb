package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// recipient_phone -> Recipient Phone
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError converts a gin binding error into a 422 AppError with
// per-field messages. Field names come from json tags via Init().
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make(map[string]string, len(errs))
		for _, e := range errs {
			human := formatFieldName(e.Field())
			switch e.Tag() {
			case "required":
				fields[e.Field()] = human + " is required"
			case "email":
				fields[e.Field()] = human + " must be a valid email address"
			case "min":
				fields[e.Field()] = human + " must be at least " + e.Param() + " characters"
			case "max":
				fields[e.Field()] = human + " must be at most " + e.Param() + " characters"
			case "oneof":
				fields[e.Field()] = human + " must be one of: " + e.Param()
			default:
				fields[e.Field()] = human + " is invalid"
			}
		}

		e := errs[0]
		human := formatFieldName(e.Field())
		var base *AppError
		if e.Tag() == "required" {
			base = RequiredField(human)
		} else {
			base = InvalidField(human)
		}
		return base.WithDetails(fields)
	}

	return New(
		CodeValidation,
		"Invalid input",
		http.StatusUnprocessableEntity,
	)
}
