package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que las constraints de este esquema pueden producir.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// hasPgCode verifica el código SQLSTATE de un error de pgx. El fallback por
// substring cubre errores que llegan ya aplanados a texto.
func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return strings.Contains(err.Error(), code)
}

// isUniqueViolation: constraint único violada (nombre+categoría de insumo,
// nombre de producto de carta, email de usuario).
func isUniqueViolation(err error) bool {
	return hasPgCode(err, codeUniqueViolation)
}

// isForeignKeyViolation: referencia a una fila inexistente (el insumo de un
// lote, el producto de carta de una línea de pedido).
func isForeignKeyViolation(err error) bool {
	return hasPgCode(err, codeForeignKeyViolation)
}
