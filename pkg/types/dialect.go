package types

// Dialect selects one of the two statement sets.
type Dialect int

// Supported dialects. DialectMySQL is the zero value and the fallback.
const (
	DialectMySQL Dialect = iota
	DialectSQLite
)

// Dialect identifiers as reported by Conn.Dialect.
const (
	DialectNameMySQL  = "mysql"
	DialectNameSQLite = "sqlite"
)

// ParseDialect resolves a dialect identifier. The match is exact and
// case-sensitive: only "sqlite" yields DialectSQLite.
func ParseDialect(s string) Dialect {
	if s == DialectNameSQLite {
		return DialectSQLite
	}
	return DialectMySQL
}

// String returns the canonical identifier for d.
func (d Dialect) String() string {
	if d == DialectSQLite {
		return DialectNameSQLite
	}
	return DialectNameMySQL
}

// DriverName returns the database/sql driver registered for d.
func (d Dialect) DriverName() string {
	if d == DialectSQLite {
		return "sqlite"
	}
	return "mysql"
}
