package validation

import (
	"strings"
	"unicode/utf8"
)

func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return Error("name is required")
	}

	if utf8.RuneCountInString(trimmed) > 100 {
		return Error("name is too long (max 100 characters)")
	}

	return nil
}
