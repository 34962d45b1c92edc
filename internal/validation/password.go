package validation

import (
	"strings"
)

var commonPasswords = []string{
	"password", "123456", "qwerty", "letmein", "welcome", "fitness",
}

// ValidatePassword applies the signup rules. The backend hashes and stores
// the password; this only rejects obviously weak input early.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return Error("password must be at least 8 characters")
	}

	if len(password) > 72 {
		return Error("password must not exceed 72 characters")
	}

	lower := strings.ToLower(password)
	for _, pattern := range commonPasswords {
		if strings.Contains(lower, pattern) {
			return Error("password is too common, please choose a stronger one")
		}
	}

	return nil
}
