// Package repository implements the persistence gateway for the two
// durable entities, accounts and tickets, over database/sql. The
// sentinel errors defined here let higher layers distinguish failure
// scenarios without inspecting driver error strings themselves; for
// example a duplicate primary key surfaces as ErrDuplicateKey and the
// service layer translates it into its own taxonomy.
package repository

import (
	"errors"
	"strings"
)

// ErrDuplicateKey is returned when an insert violates a primary key
// constraint (MySQL error 1062). For accounts this means the username
// is taken; for tickets it means a booking reference collided.
var ErrDuplicateKey = errors.New("duplicate key")

// isDuplicate reports whether err is a MySQL duplicate-entry error.
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
