package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createRequest struct {
	Title string  `validate:"required,min=1,max=500"`
	Price float64 `validate:"omitempty,gte=0"`
}

func TestValidate_Valid(t *testing.T) {
	err := Validate(createRequest{Title: "Anvil", Price: 50})
	assert.NoError(t, err)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	err := Validate(createRequest{})

	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Error(), "Title")
	assert.Contains(t, valErr.Error(), "is required")

	fields := valErr.Fields()
	assert.Equal(t, "is required", fields["Title"])
}

func TestValidate_TagMessages(t *testing.T) {
	type req struct {
		Name string `validate:"min=3"`
	}

	err := Validate(req{Name: "ab"})

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Fields()["Name"], "at least 3")
}
