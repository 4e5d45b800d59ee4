package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"taskboard-api/pkg/datemath"
)

func label(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "The " + label(field) + " is required"
	case "max":
		return fmt.Sprintf("The maximum length is %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("This value must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("This value must be greater than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("This value must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "taskdate":
		return "Unable to parse the date, accepted formats: " + strings.Join(datemath.Layouts, ", ")
	default:
		return fmt.Sprintf("Invalid value for %s", label(field))
	}
}
