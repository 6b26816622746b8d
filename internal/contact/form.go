package contact

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidForm is returned when a field fails its constraint. No submission
// is attempted for an invalid form.
var ErrInvalidForm = errors.New("invalid contact form")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Form holds the contact fields.
type Form struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Message string `json:"message" form:"message" validate:"required"`
}

// Trimmed returns f with surrounding whitespace removed from every field.
func (f Form) Trimmed() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
}

// IsZero reports whether every field is empty.
func (f Form) IsZero() bool { return f == Form{} }

// Validate checks presence of name and message and the email syntax.
func (f Form) Validate() error {
	err := validate.Struct(f.Trimmed())
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidForm, strings.Join(fields, ", "))
}
