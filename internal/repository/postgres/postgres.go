package postgres

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/lib/pq"

	"github.com/dougladias/vida-plena-api/internal/repository"
)

const pqUniqueViolation = "23505"

// translateErr maps driver-level errors to repository sentinels.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
		return repository.ErrDuplicateUniqueField
	}
	return err
}

// setClause builds a partial UPDATE SET list from column/value pairs,
// returning the clause and the ordered arguments. Placeholders start at $2;
// $1 is reserved for the row id in the WHERE clause.
func setClause(columns []string, values []interface{}) (string, []interface{}) {
	parts := make([]string, 0, len(columns)+1)
	args := make([]interface{}, 0, len(values))
	for i, col := range columns {
		parts = append(parts, col+" = $"+strconv.Itoa(i+2))
		args = append(args, values[i])
	}
	parts = append(parts, "updated_at = NOW()")
	return strings.Join(parts, ", "), args
}
