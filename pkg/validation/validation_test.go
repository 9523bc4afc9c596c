package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Username string `form:"username" validate:"required,min=3,max=20"`
	Password string `form:"password" validate:"required,eqfield=Confirm"`
	Confirm  string `form:"confirm" validate:"required"`
	Nickname string `form:"nickname" validate:"omitempty,max=5"`
}

func (signupForm) ValidationMessages() map[string]string {
	return map[string]string{
		"username.required": "Please Fill the Field.",
		"username.min":      "User Name Must between 3 to 20",
		"username.max":      "User Name Must between 3 to 20",
		"password.eqfield":  "Password Not match",
	}
}

func TestFieldErrors(t *testing.T) {
	v := New()

	tests := []struct {
		name string
		form signupForm
		want map[string]string
	}{
		{
			name: "empty form",
			form: signupForm{},
			want: map[string]string{
				"username": "Please Fill the Field.",
				"password": "This field is required.",
				"confirm":  "This field is required.",
			},
		},
		{
			name: "short username and mismatched password",
			form: signupForm{Username: "ab", Password: "x", Confirm: "y"},
			want: map[string]string{
				"username": "User Name Must between 3 to 20",
				"password": "Password Not match",
			},
		},
		{
			name: "unmapped rule falls back",
			form: signupForm{Username: "alice", Password: "x", Confirm: "x", Nickname: "toolong"},
			want: map[string]string{
				"nickname": "Invalid value.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.form)
			require.Error(t, err)
			assert.Equal(t, tt.want, FieldErrors(err, tt.form))
		})
	}
}

func TestFieldErrorsValid(t *testing.T) {
	form := signupForm{Username: "alice", Password: "secret", Confirm: "secret"}
	assert.NoError(t, New().Struct(form))
}

func TestFieldErrorsNonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("boom"), nil))
}
