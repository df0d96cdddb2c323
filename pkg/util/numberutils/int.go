package numberutils

import (
	"strconv"
)

// ToIntWithDefault converts the given string to an integer.
// If the string cannot be converted, it returns the provided default value.
func ToIntWithDefault(s string, defaultVal int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return defaultVal
}

// IsIntPositive checks if the given number is positive.
// It returns true if the number is greater than zero.
func IsIntPositive(number int) bool {
	return number > 0
}
