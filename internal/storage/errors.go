package storage

import (
	"errors"
	"fmt"
	"strings"

	"cakue/internal/core"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// mapError translates SQLite constraint failures into core errors.
func mapError(err error) error {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return err
	}

	code := se.Code()
	if code&0xff != sqlite3.SQLITE_CONSTRAINT {
		return err
	}

	msg := se.Error()
	switch {
	case code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY || strings.Contains(msg, "FOREIGN KEY"):
		return fmt.Errorf("%w: %v", core.ErrInvalidReference, err)
	case code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return fmt.Errorf("%w: %v", core.ErrConflict, err)
	default:
		return fmt.Errorf("%w: %v", core.ErrConstraintViolation, err)
	}
}
