package sim

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Message(t *testing.T) {
	err := NewMissingFieldError("umidadeBagaço")
	assert.Equal(t, "invalid input umidadeBagaço: required field not provided", err.Error())
}

func TestErrors_SurviveWrapping(t *testing.T) {
	// GIVEN typed errors wrapped by a caller
	wrappedValidation := fmt.Errorf("sugar run: %w", &ValidationError{Field: "polCaldo", Reason: "must be >= 0"})
	wrappedInfeasible := fmt.Errorf("sugar run: %w", &InfeasibilityError{Stage: "FiltroPrensa", Reason: "negative filtrate"})
	wrappedData := fmt.Errorf("evaporator feed: %w", ErrInsufficientData)

	// THEN errors.As and errors.Is still find them
	var ve *ValidationError
	require.True(t, errors.As(wrappedValidation, &ve))
	assert.Equal(t, "polCaldo", ve.Field)

	var ie *InfeasibilityError
	require.True(t, errors.As(wrappedInfeasible, &ie))
	assert.Equal(t, "FiltroPrensa: negative filtrate", ie.Error())

	assert.ErrorIs(t, wrappedData, ErrInsufficientData)
}
