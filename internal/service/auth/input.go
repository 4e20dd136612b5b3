package auth

import (
	"strings"

	"github.com/tjwls11/diary111/internal/domain"
)

// SignupInput holds parameters for the signup operation.
type SignupInput struct {
	ID       string
	Name     string
	Password string
}

// Validate validates the signup input.
func (i SignupInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == "" {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	} else if len(i.ID) > 64 {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "too long"})
	} else if strings.ContainsAny(i.ID, " \t\n") {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "must not contain whitespace"})
	}

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) < 4 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	} else if len(i.Password) > 72 {
		// bcrypt truncates beyond 72 bytes
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	ID       string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == "" {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangePasswordInput holds parameters for the password change operation.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// Validate validates the password change input.
func (i ChangePasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.CurrentPassword == "" {
		errs = append(errs, domain.FieldError{Field: "current_password", Message: "required"})
	}

	if i.NewPassword == "" {
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "required"})
	} else if len(i.NewPassword) < 4 {
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "too short"})
	} else if len(i.NewPassword) > 72 {
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
