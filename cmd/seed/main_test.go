package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUsernameTaken(t *testing.T) {
	taken := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
	assert.True(t, isUsernameTaken(taken))
	assert.True(t, isUsernameTaken(fmt.Errorf("seed: %w", taken)))

	// the email conflict is handled by the upsert, not this path
	assert.False(t, isUsernameTaken(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}))
	assert.False(t, isUsernameTaken(&pgconn.PgError{Code: "23503", ConstraintName: "users_username_key"}))
	assert.False(t, isUsernameTaken(errors.New("connection refused")))
	assert.False(t, isUsernameTaken(nil))
}
