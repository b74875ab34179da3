package schemamodel

import (
	"fmt"
	"strconv"
)

// Message texts mirror the upstream validator so error lists read the
// same regardless of which model implementation backs the form.
const (
	msgFieldRequired   = "Field required"
	msgInvalidText     = "Input should be a valid string"
	msgInvalidInteger  = "Input should be a valid integer"
	msgInvalidNumber   = "Input should be a valid number"
	msgInvalidDate     = "Input should be a valid date"
	msgInvalidDateTime = "Input should be a valid datetime"
)

func msgNotAChoice(value any) string {
	return fmt.Sprintf("%v is not one of the available choices", value)
}

func msgGreaterEqual(bound float64) string {
	return "Input should be greater than or equal to " + formatBound(bound)
}

func msgGreater(bound float64) string {
	return "Input should be greater than " + formatBound(bound)
}

func msgLessEqual(bound float64) string {
	return "Input should be less than or equal to " + formatBound(bound)
}

func msgLess(bound float64) string {
	return "Input should be less than " + formatBound(bound)
}

func msgMinLength(n int) string {
	return fmt.Sprintf("String should have at least %d characters", n)
}

func msgMaxLength(n int) string {
	return fmt.Sprintf("String should have at most %d characters", n)
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
