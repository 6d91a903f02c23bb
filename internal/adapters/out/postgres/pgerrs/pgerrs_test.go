package pgerrs_test

import (
	"errors"
	"fmt"
	"testing"

	"deliverytracking/internal/adapters/out/postgres/pgerrs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrs.ForeignKeyViolation})

	assert.Equal(t, pgerrs.ForeignKeyViolation, pgerrs.Code(wrapped))
	assert.True(t, pgerrs.IsForeignKeyViolation(wrapped))
	assert.False(t, pgerrs.IsUniqueViolation(wrapped))
	assert.True(t, pgerrs.IsUniqueViolation(&pgconn.PgError{Code: pgerrs.UniqueViolation}))
	assert.Empty(t, pgerrs.Code(errors.New("connection reset")))
	assert.Empty(t, pgerrs.Code(nil))
}
