package structtag

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// messageForError converts a validator field error into the message
// vocabulary the rest of the library uses, so forms read the same no
// matter which model implementation produced the failure.
func messageForError(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "Field required"
	case "gte":
		return "Input should be greater than or equal to " + fieldErr.Param()
	case "gt":
		return "Input should be greater than " + fieldErr.Param()
	case "lte":
		return "Input should be less than or equal to " + fieldErr.Param()
	case "lt":
		return "Input should be less than " + fieldErr.Param()
	case "oneof":
		return fmt.Sprintf("%v is not one of the available choices", fieldErr.Value())
	case "min":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("String should have at least %s characters", fieldErr.Param())
		}
		return "Input should be greater than or equal to " + fieldErr.Param()
	case "max":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("String should have at most %s characters", fieldErr.Param())
		}
		return "Input should be less than or equal to " + fieldErr.Param()
	case "email":
		return "Input should be a valid email address"
	default:
		return fmt.Sprintf("Input failed the '%s' rule", fieldErr.Tag())
	}
}
