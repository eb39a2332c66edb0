package server_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.openly.dev/pointy"

	"droscher.com/RecipeBox/pkg/server"
	api "droscher.com/RecipeBox/pkg/server/rest/api/v1"
)

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := server.NewValidator()

	err := v.Validate(api.RegisterUserRequest{Email: "not-an-email", Username: "bad name!", FirstName: "A", LastName: "B"})

	var validationErr *api.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.ErrorIs(t, err, api.ErrInvalidInput)
	assert.Equal(t, "must be a valid email address", validationErr.Fields["email"])
	assert.Equal(t, "may contain only letters, digits and @/./+/-/_", validationErr.Fields["username"])
	assert.Equal(t, "is required", validationErr.Fields["password"])
	assert.NotContains(t, validationErr.Fields, "first_name")
}

func TestValidator_AcceptsValidPayload(t *testing.T) {
	v := server.NewValidator()

	err := v.Validate(api.RegisterUserRequest{
		Email:     "cook@example.com",
		Username:  "cook.42",
		FirstName: "Ada",
		LastName:  "Cook",
		Password:  "s3cret-pass",
	})
	assert.NoError(t, err)
}

func TestValidator_SkipsOmittedOptionalFields(t *testing.T) {
	v := server.NewValidator()

	assert.NoError(t, v.Validate(api.UpdateRecipeRequest{}))

	err := v.Validate(api.UpdateRecipeRequest{Name: pointy.String("")})
	assert.ErrorIs(t, err, api.ErrInvalidInput)
}
