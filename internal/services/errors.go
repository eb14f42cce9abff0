package services

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrSymptomNotFound    = errors.New("symptom not found")
	ErrSymptomExists      = errors.New("symptom already recorded for this user")
)

// isDuplicateErr reports whether err came from a unique constraint violation.
// Both backends are covered: MySQL surfaces error 1062, the sqlite driver
// reports "UNIQUE constraint failed". This is the backstop for concurrent
// double-submits that slip past the existence pre-checks.
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
