package validate

import (
	"fmt"
	"strings"
	"time"
)

type LoginForm struct {
	Email    string
	Password string
}

func (f LoginForm) Validate() FieldErrors {
	fe := FieldErrors{}
	email := strings.TrimSpace(f.Email)
	if email == "" {
		fe["email"] = "Email is required"
	} else if !Email(email) {
		fe["email"] = "Please enter a valid email address"
	}
	if f.Password == "" {
		fe["password"] = "Password is required"
	} else if len(f.Password) < MinPasswordLen {
		fe["password"] = fmt.Sprintf("Password must be at least %d characters", MinPasswordLen)
	}
	return fe
}

type RegistrationForm struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	Address         string
}

func (f RegistrationForm) Validate() FieldErrors {
	fe := FieldErrors{}

	first := strings.TrimSpace(f.FirstName)
	if first == "" {
		fe["firstName"] = "First name is required"
	} else if len(first) < MinNameLen {
		fe["firstName"] = fmt.Sprintf("First name must be at least %d characters", MinNameLen)
	}

	last := strings.TrimSpace(f.LastName)
	if last == "" {
		fe["lastName"] = "Last name is required"
	} else if len(last) < MinNameLen {
		fe["lastName"] = fmt.Sprintf("Last name must be at least %d characters", MinNameLen)
	}

	email := strings.TrimSpace(f.Email)
	if email == "" {
		fe["email"] = "Email is required"
	} else if !Email(email) {
		fe["email"] = "Please enter a valid email address"
	}

	if f.Password == "" {
		fe["password"] = "Password is required"
	} else if len(f.Password) < MinPasswordLen {
		fe["password"] = fmt.Sprintf("Password must be at least %d characters", MinPasswordLen)
	}

	// The mismatch always lands on the confirmation field, whichever field
	// was edited last.
	if f.ConfirmPassword == "" {
		fe["confirmPassword"] = "Please confirm your password"
	} else if f.Password != f.ConfirmPassword {
		fe["confirmPassword"] = "Passwords do not match"
	}

	return fe
}

type PaymentMethodForm struct {
	CardType       string
	CardholderName string
	CardNumber     string // spaces allowed; stripped before checking
	ExpiryDate     string // MM/YY
	CVV            string
	BillingZip     string
	IsDefault      bool
}

func (f PaymentMethodForm) Validate(now time.Time) FieldErrors {
	fe := FieldErrors{}

	if strings.TrimSpace(f.CardType) == "" {
		fe["cardType"] = "Card type is required"
	}
	if strings.TrimSpace(f.CardholderName) == "" {
		fe["cardholderName"] = "Cardholder name is required"
	}

	number := strings.ReplaceAll(f.CardNumber, " ", "")
	if !CardNumber(number) {
		fe["cardNumber"] = "Please enter a valid card number (13-19 digits)"
	}

	ok, expired := Expiry(f.ExpiryDate, now)
	switch {
	case !ok:
		fe["expiryDate"] = "Please enter a valid expiry date (MM/YY)"
	case expired:
		fe["expiryDate"] = "Card has expired. Please enter a valid expiry date."
	}

	if !CVV(f.CVV) {
		fe["cvv"] = "Please enter a valid CVV (3-4 digits)"
	}

	if len(strings.TrimSpace(f.BillingZip)) < MinZipLen {
		fe["billingZip"] = "Please enter a valid ZIP code"
	}

	return fe
}

type CheckoutForm struct {
	FirstName  string
	LastName   string
	Address    string
	Phone      string
	Email      string
	CardNumber string
	Expiry     string
	CVV        string
}

// Validate only requires presence; the card fields may hold a masked
// default-card prefill, which a format check would reject.
func (f CheckoutForm) Validate() FieldErrors {
	fe := FieldErrors{}
	required := map[string]string{
		"firstName":  f.FirstName,
		"lastName":   f.LastName,
		"address":    f.Address,
		"phone":      f.Phone,
		"email":      f.Email,
		"cardNumber": f.CardNumber,
		"expiry":     f.Expiry,
		"cvv":        f.CVV,
	}
	for field, v := range required {
		if strings.TrimSpace(v) == "" {
			fe[field] = "Please fill out all fields."
		}
	}
	return fe
}

// AccountField validates a single account-editor field by name.
func AccountField(field, value string) FieldErrors {
	fe := FieldErrors{}
	v := strings.TrimSpace(value)
	switch field {
	case "first_name":
		if v == "" {
			fe[field] = "First name cannot be empty."
		} else if len(v) < MinNameLen {
			fe[field] = fmt.Sprintf("First name must be at least %d characters.", MinNameLen)
		}
	case "last_name":
		if v == "" {
			fe[field] = "Last name cannot be empty."
		} else if len(v) < MinNameLen {
			fe[field] = fmt.Sprintf("Last name must be at least %d characters.", MinNameLen)
		}
	case "email":
		if v == "" {
			fe[field] = "Email cannot be empty."
		} else if !Email(v) {
			fe[field] = "Please enter a valid email address."
		}
	case "shipping_phone":
		if v == "" {
			fe[field] = "Phone number cannot be empty."
		}
	case "password":
		if value == "" {
			fe[field] = "Password cannot be empty."
		} else if len(value) < MinPasswordLen {
			fe[field] = fmt.Sprintf("Password must be at least %d characters.", MinPasswordLen)
		}
	default:
		fe[field] = "Unknown field."
	}
	return fe
}
