package service

import "errors"

var (
	// ErrIDRequired is returned when a lookup is attempted without its
	// identifying argument. It is raised before any remote call is made.
	ErrIDRequired = errors.New("id is required")

	// ErrNotFound is returned when a record addressed by id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrNoSession is returned when no authenticated session is active.
	ErrNoSession = errors.New("no active session")

	// ErrNotAdmin is returned when the signed-in account is not backed by an
	// admin member record.
	ErrNotAdmin = errors.New("account is not an admin member")
)
