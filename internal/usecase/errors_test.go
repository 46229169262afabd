package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestValidationError_MatchesInvalidInput(t *testing.T) {
	err := fmt.Errorf("rate: %w", newValidationError("star", "rating star does not exist"))

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "rate: validation failed: star: rating star does not exist", err.Error())
}

func TestValidationFailed_NilWhenClean(t *testing.T) {
	assert.NoError(t, validationFailed(nil))
	assert.NoError(t, validationFailed(map[string]string{}))
	assert.Error(t, validationFailed(map[string]string{"Title": "This field is required"}))
}

func TestStoreError(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	foreign := &pgconn.PgError{Code: "23503"}
	other := errors.New("boom")

	assert.ErrorIs(t, storeError("create genre", unique), ErrConflict)
	assert.ErrorIs(t, storeError("create movie", foreign), ErrInvalidInput)

	err := storeError("create movie", other)
	assert.ErrorIs(t, err, other)
	assert.NotErrorIs(t, err, ErrConflict)
}
