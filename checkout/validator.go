package checkout

import (
	"regexp"
	"strings"
)

// Form carries the contact and delivery fields collected at checkout.
// Apartment and postal code are optional.
type Form struct {
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Address     string `json:"address"`
	Apartment   string `json:"apartment"`
	City        string `json:"city"`
	Governorate string `json:"governorate"`
	PostalCode  string `json:"postal_code"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Egyptian mobile numbers: 11 digits, 010/011/012/015 prefixes.
	phonePattern = regexp.MustCompile(`^01[0125][0-9]{8}$`)
)

// Validate checks shape and presence only. It never touches the network and
// never inspects deliverability or uniqueness.
func Validate(f Form) []FieldError {
	var errs []FieldError

	if !emailPattern.MatchString(strings.TrimSpace(f.Email)) {
		errs = append(errs, FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if !phonePattern.MatchString(strings.TrimSpace(f.Phone)) {
		errs = append(errs, FieldError{Field: "phone", Message: "must be a valid Egyptian mobile number"})
	}
	for _, req := range []struct{ field, value string }{
		{"first_name", f.FirstName},
		{"last_name", f.LastName},
		{"address", f.Address},
		{"city", f.City},
		{"governorate", f.Governorate},
	} {
		if strings.TrimSpace(req.value) == "" {
			errs = append(errs, FieldError{Field: req.field, Message: "is required"})
		}
	}
	return errs
}

func Valid(f Form) bool {
	return len(Validate(f)) == 0
}
