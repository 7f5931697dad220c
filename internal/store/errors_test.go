package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/santoshmanaguli/finpay-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateErr(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, translateErr(nil, "email"))
	})

	t.Run("record not found", func(t *testing.T) {
		assert.ErrorIs(t, translateErr(gorm.ErrRecordNotFound, ""), ErrNotFound)
	})

	t.Run("gorm duplicated key", func(t *testing.T) {
		err := translateErr(gorm.ErrDuplicatedKey, "email")
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "email", conflict.Field)
	})

	t.Run("postgres unique violation", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}
		err := translateErr(pgErr, "email")
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "email", conflict.Field)
	})

	t.Run("postgres foreign key violation", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "fk_credit_cards_user"}
		err := translateErr(pgErr, "")
		var ref *ReferenceError
		require.ErrorAs(t, err, &ref)
		assert.Contains(t, ref.Error(), "fk_credit_cards_user")
	})

	t.Run("sqlite unique message", func(t *testing.T) {
		err := translateErr(errors.New("UNIQUE constraint failed: users.email"), "email")
		var conflict *ConflictError
		assert.ErrorAs(t, err, &conflict)
	})

	t.Run("validation errors pass through", func(t *testing.T) {
		fieldErr := &models.FieldError{Field: "email", Reason: "is required"}
		err := translateErr(fieldErr, "email")
		var got *models.FieldError
		require.ErrorAs(t, err, &got)
		assert.Equal(t, "email", got.Field)
	})

	t.Run("unknown errors pass through", func(t *testing.T) {
		boom := errors.New("connection reset")
		assert.Equal(t, boom, translateErr(boom, ""))
	})
}
