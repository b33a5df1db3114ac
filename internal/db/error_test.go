package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestErrorDescription(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           UniqueViolationCode,
		ConstraintName: WatchesUniqueConstraint,
	}

	code, constraint := ErrorDescription(fmt.Errorf("exec failed: %w", pgErr))
	require.Equal(t, UniqueViolationCode, code)
	require.Equal(t, WatchesUniqueConstraint, constraint)
}

func TestErrorDescriptionNonPostgresError(t *testing.T) {
	code, constraint := ErrorDescription(errors.New("dial tcp: connection refused"))
	require.Empty(t, code)
	require.Empty(t, constraint)
}
