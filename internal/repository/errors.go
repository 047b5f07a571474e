// Package repository implements the durable record store over PostgreSQL.
package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyResolved is returned when resolving a reply option set that
	// already carries a selected or custom response.
	ErrAlreadyResolved = errors.New("reply option set already resolved")
	// ErrDuplicatePhone is returned when creating a party whose phone is
	// already registered to another active party.
	ErrDuplicatePhone = errors.New("phone already registered")
)
