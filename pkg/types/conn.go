package types

import "errors"

// Conn is the database-access capability the schema ensurer works against.
// Implementations wrap a real connection or record statements in memory.
type Conn interface {
	// TablePrefix returns the string prepended to every table and index name.
	// It is interpolated without escaping.
	TablePrefix() string

	// Dialect returns the dialect identifier. Only "sqlite" is recognized;
	// any other value selects the MySQL family.
	Dialect() string

	// Exec runs one literal SQL statement. A non-nil error aborts the caller.
	Exec(query string) error
}

// ErrConnClosed is returned by Exec after the connection has been closed.
var ErrConnClosed = errors.New("connection is closed")
