package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldUsername targets the username of an account.
	FieldUsername = "username"

	// FieldEmail targets the email address of an account.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password submitted at registration.
	FieldPassword = "password"
)

// Minimum lengths applied after whitespace trimming.
const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// emailPattern is a deliberately permissive format check: one "@", no
// whitespace, and a dotted domain part. Full RFC 5322 parsing is not the goal.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AccountValidator implements the [Validator] interface for account-related
// inputs: CreateAccountInput in value and pointer form.
type AccountValidator struct {
}

// NewAccountValidator constructs a new AccountValidator
// and returns it as the Validator interface.
func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateAccountInput:
		return v.validateCreateAccount(ctx, value, fields...)
	case *models.CreateAccountInput:
		return v.validateCreateAccount(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCreateAccount checks a createAccount input.
//
// A required-fields pre-check runs first: when any field is entirely absent,
// the missing fields are reported and field-level rules are skipped. Once
// all fields are present, every field-level rule is evaluated and all
// violations are accumulated into one *[ValidationError].
//
// Default validated fields (when none specified): Username, Email, Password.
func (v *AccountValidator) validateCreateAccount(_ context.Context, input models.CreateAccountInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	missing := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldUsername:
			if input.Username == "" {
				missing.add(FieldUsername, "username is required")
			}
		case FieldEmail:
			if input.Email == "" {
				missing.add(FieldEmail, "email is required")
			}
		case FieldPassword:
			if input.Password == "" {
				missing.add(FieldPassword, "password is required")
			}
		default:
			return ErrUnknownField
		}
	}
	if err := missing.orNil(); err != nil {
		return err
	}

	violations := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldUsername:
			if len(strings.TrimSpace(input.Username)) < minUsernameLen {
				violations.add(FieldUsername, "username must be at least 3 characters")
			}
		case FieldEmail:
			if !emailPattern.MatchString(input.Email) {
				violations.add(FieldEmail, "email is not a valid address")
			}
		case FieldPassword:
			if len(strings.TrimSpace(input.Password)) < minPasswordLen {
				violations.add(FieldPassword, "password must be at least 6 characters")
			}
		}
	}

	return violations.orNil()
}
