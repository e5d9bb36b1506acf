package lox

import (
	"strconv"
)

// FloatVal formats a number the way print shows it: shortest decimal form,
// no exponent and no trailing ".0" on whole values.
func FloatVal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
