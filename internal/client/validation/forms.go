// Package validation holds the client-side form checks that run before any
// payload reaches the auth gateway. The gateway itself never re-validates
// shape; it only sends what it is given.
package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoginForm is the login input.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// RegisterForm is the registration input.
type RegisterForm struct {
	FullName string `validate:"required"`
	Username string `validate:"required,min=3"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Role     string `validate:"required,oneof=student recruiter"`
}

func (f LoginForm) Validate() error    { return validate.Struct(f) }
func (f RegisterForm) Validate() error { return validate.Struct(f) }

// Explain turns a validator error into user-facing messages, one per failed
// field. Unknown errors come back as a single generic message.
func Explain(err error) []string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"Invalid input. Please check the form and try again."}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "FullName":
		return "Please enter your full name"
	case "Username":
		if fe.Tag() == "min" {
			return "Username must be at least 3 characters"
		}
		return "Please enter a username"
	case "Email":
		if fe.Tag() == "email" {
			return "Please enter a valid email"
		}
		return "Please enter your email"
	case "Password":
		if fe.Tag() == "min" {
			return "Password must be at least 6 characters"
		}
		return "Please enter your password"
	case "Role":
		return "Please select a role (student or recruiter)"
	default:
		return "Invalid value for " + fe.Field()
	}
}
