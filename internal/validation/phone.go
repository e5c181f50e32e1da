// Package validation содержит функции валидации входных данных.
package validation

import "unicode"

// IsValidPhoneNumber проверяет, что номер телефона непуст, состоит только из
// цифр и имеет разумную длину.
func IsValidPhoneNumber(number string) bool {
	if len(number) < 3 || len(number) > 15 {
		return false
	}

	for _, ch := range number {
		if !unicode.IsDigit(ch) {
			return false
		}
	}

	return true
}
