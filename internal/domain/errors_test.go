package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_ClasificaErroresEnvueltos(t *testing.T) {
	err := fmt.Errorf("orders.Transition: %w: detalle", ErrConflict)
	assert.Equal(t, ErrConflict, Kind(err))

	assert.Nil(t, Kind(fmt.Errorf("algo inesperado")))
	assert.Nil(t, Kind(nil))
}

func TestRetryable_SoloConflictoYNoDisponible(t *testing.T) {
	assert.True(t, Retryable(ErrConflict))
	assert.True(t, Retryable(fmt.Errorf("storage: %w: timeout", ErrUnavailable)))

	assert.False(t, Retryable(ErrUnauthorized))
	assert.False(t, Retryable(ErrInvalidTransition))
	assert.False(t, Retryable(ErrNotFound))
}
