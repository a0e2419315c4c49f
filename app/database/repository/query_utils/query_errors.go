package util

import (
	"database/sql"
	"errors"

	"github.com/uptrace/bun/driver/pgdriver"
)

func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func IsUniqueViolation(err error) bool {
	if postgresErr, ok := err.(pgdriver.Error); ok {
		if postgresErr.Field('C') == "23505" { // unique_violation, see at: https://www.postgresql.org/docs/current/errcodes-appendix.html
			return true
		}
	}
	return false
}

// UniqueConstraint returns the name of the constraint behind a unique
// violation, or "" for any other error.
func UniqueConstraint(err error) string {
	if postgresErr, ok := err.(pgdriver.Error); ok {
		if postgresErr.Field('C') == "23505" {
			return postgresErr.Field('n')
		}
	}
	return ""
}
