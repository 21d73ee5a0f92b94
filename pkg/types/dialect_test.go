package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		in   string
		want Dialect
	}{
		{"sqlite", DialectSQLite},
		{"mysql", DialectMySQL},
		{"mariadb", DialectMySQL},
		{"", DialectMySQL},
		{"SQLite", DialectMySQL},
		{"sqlite3", DialectMySQL},
		{" sqlite", DialectMySQL},
		{"postgres", DialectMySQL},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDialect(tt.in))
		})
	}
}

func TestDialectNames(t *testing.T) {
	assert.Equal(t, "mysql", DialectMySQL.String())
	assert.Equal(t, "sqlite", DialectSQLite.String())
	assert.Equal(t, "mysql", DialectMySQL.DriverName())
	assert.Equal(t, "sqlite", DialectSQLite.DriverName())

	cfg := Config{Dialect: "sqlite", DSN: ":memory:"}
	assert.Equal(t, DialectSQLite, cfg.ParsedDialect())
}
