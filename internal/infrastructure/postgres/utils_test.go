package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "stock_items_name_category_key"}

	assert.True(t, isUniqueViolation(pgErr))
	assert.True(t, isUniqueViolation(fmt.Errorf("create stock item: %w", pgErr)), "detecta el código aunque el error venga envuelto")
	assert.True(t, isUniqueViolation(errors.New("ERROR: duplicate key (SQLSTATE 23505)")), "fallback por substring para errores aplanados")
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: codeForeignKeyViolation}))
}

func TestIsForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: "ledger_entries_stock_item_id_fkey"}

	assert.True(t, isForeignKeyViolation(pgErr))
	assert.True(t, isForeignKeyViolation(fmt.Errorf("create ledger entry: %w", pgErr)))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: codeUniqueViolation}))
	assert.False(t, isForeignKeyViolation(errors.New("context canceled")))
}
