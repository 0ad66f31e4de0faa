package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techhive/userdir/internal/model"
)

func validUser() model.User {
	return model.User{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@example.com",
		Role:      "User",
	}
}

func TestUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(*model.User)
		wantReason string
	}{
		{
			name:   "valid user",
			mutate: func(u *model.User) {},
		},
		{
			name:   "valid admin with mixed case role",
			mutate: func(u *model.User) { u.Role = "aDmIn" },
		},
		{
			name:       "empty first name",
			mutate:     func(u *model.User) { u.FirstName = "" },
			wantReason: "All fields are required and cannot be empty.",
		},
		{
			name:       "whitespace last name",
			mutate:     func(u *model.User) { u.LastName = "   " },
			wantReason: "All fields are required and cannot be empty.",
		},
		{
			name:       "empty email",
			mutate:     func(u *model.User) { u.Email = "" },
			wantReason: "All fields are required and cannot be empty.",
		},
		{
			name:       "empty role",
			mutate:     func(u *model.User) { u.Role = "" },
			wantReason: "All fields are required and cannot be empty.",
		},
		{
			name:       "first name too long",
			mutate:     func(u *model.User) { u.FirstName = strings.Repeat("a", 51) },
			wantReason: "FirstName cannot exceed 50 characters.",
		},
		{
			name:       "last name too long",
			mutate:     func(u *model.User) { u.LastName = strings.Repeat("b", 51) },
			wantReason: "LastName cannot exceed 50 characters.",
		},
		{
			name:       "email too long",
			mutate:     func(u *model.User) { u.Email = strings.Repeat("c", 64) + "@example.com" },
			wantReason: "Email cannot exceed 75 characters.",
		},
		{
			name:       "role too long",
			mutate:     func(u *model.User) { u.Role = strings.Repeat("d", 11) },
			wantReason: "Role cannot exceed 10 characters.",
		},
		{
			name:       "email without at sign",
			mutate:     func(u *model.User) { u.Email = "ann.example.com" },
			wantReason: "Email is not in a valid format.",
		},
		{
			name:       "email with spaces",
			mutate:     func(u *model.User) { u.Email = "a nn@example.com" },
			wantReason: "Email is not in a valid format.",
		},
		{
			name:       "email with display name",
			mutate:     func(u *model.User) { u.Email = "Ann Lee <ann@example.com>" },
			wantReason: "Email is not in a valid format.",
		},
		{
			name:       "unknown role",
			mutate:     func(u *model.User) { u.Role = "Guest" },
			wantReason: "Role must be either 'Admin' or 'User'.",
		},
		{
			name:       "length check runs before syntax check",
			mutate:     func(u *model.User) { u.Email = strings.Repeat("x", 76) },
			wantReason: "Email cannot exceed 75 characters.",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u := validUser()
			tt.mutate(&u)

			err := User(u)

			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var validationErr *model.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantReason, validationErr.Reason)
		})
	}
}

func TestUser_BoundaryLengths(t *testing.T) {
	t.Parallel()

	u := validUser()
	u.FirstName = strings.Repeat("a", 50)
	u.LastName = strings.Repeat("b", 50)
	u.Email = strings.Repeat("c", 63) + "@example.com" // exactly 75
	require.Len(t, u.Email, 75)

	assert.NoError(t, User(u))
}
