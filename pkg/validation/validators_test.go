package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsContactEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"ada@example.com", true},
		{"a.b+c@sub.example.co", true},
		{"x@y.z", true},
		{"", false},
		{"plainaddress", false},
		{"no-at.example.com", false},
		{"missing@tld", false},
		{"two@@example.com", false},
		{"a@b@c.com", false},
		{"space in@example.com", false},
		{"tab@exa\tmple.com", false},
		{"@example.com", false},
		{"user@.", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsContactEmail(tt.in))
		})
	}
}

type contactForm struct {
	Name    string `validate:"required,notblank"`
	Email   string `validate:"required,notblank,contact_email"`
	Message string `validate:"required,notblank"`
}

func TestRegisteredValidators(t *testing.T) {
	v := validator.New()
	RegisterValidators(v)

	t.Run("valid form passes", func(t *testing.T) {
		err := v.Struct(contactForm{Name: "Ada", Email: " ada@example.com ", Message: "hi"})
		assert.NoError(t, err)
	})

	t.Run("blank fields are reported with labels", func(t *testing.T) {
		err := v.Struct(contactForm{Name: "   ", Email: "ada@example.com", Message: "\n\t"})
		require.Error(t, err)
		msgs := FormatValidationErrors(err)
		assert.Equal(t, []string{"Name is required", "Message is required"}, msgs)
	})

	t.Run("malformed email", func(t *testing.T) {
		err := v.Struct(contactForm{Name: "Ada", Email: "ada@example", Message: "hi"})
		require.Error(t, err)
		assert.Equal(t, "Email must be a valid email address", Summary(err))
	})
}

func TestFormatValidationErrorsNonValidation(t *testing.T) {
	assert.Equal(t, []string{"Invalid request body"}, FormatValidationErrors(errors.New("unexpected EOF")))
}
