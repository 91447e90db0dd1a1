package sqlite

import (
	"strings"

	"gorm.io/gorm"

	"carrental/internal/errors"
)

// isUniqueConstraintViolation reports whether err comes from a UNIQUE
// constraint or index. GORM's error translation covers the common case; the
// message check catches violations raised by indexes created with raw SQL.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
