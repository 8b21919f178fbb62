package validator

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type moonInput struct {
	Name     string `validate:"required,max=5"`
	PlanetID uint   `validate:"required"`
	Type     string `validate:"omitempty,oneof=Planet Moon"`
}

func TestFormatValidationError(t *testing.T) {
	v := validator.New()

	err := v.Struct(moonInput{Name: "Ganymede", Type: "Star"})
	assert.Equal(t,
		"Name must be at most 5 characters; Planet is required; Type must be one of: Planet, Moon",
		FormatValidationError(err))
}

func TestFormatDecodeErrors(t *testing.T) {
	var target struct {
		PlanetID uint `json:"planetId"`
	}

	err := json.Unmarshal([]byte(`{"planetId":"one"}`), &target)
	assert.Equal(t, "planetId has the wrong type", FormatValidationError(err))

	err = json.Unmarshal([]byte(`{"planetId":`), &target)
	assert.Equal(t, "malformed request body", FormatValidationError(err))

	assert.Equal(t, "boom", FormatValidationError(errors.New("boom")))
}
