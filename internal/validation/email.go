package validation

import "net/mail"

// ValidateEmail checks length and RFC 5322 syntax.
func ValidateEmail(email string) error {
	if email == "" {
		return Error("email address is required")
	}

	if len(email) > 254 {
		return Error("email address is too long (max 254 characters)")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return Error("invalid email address format")
	}

	return nil
}
