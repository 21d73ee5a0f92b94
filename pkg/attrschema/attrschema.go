// Package attrschema is the public entry point for provisioning the product
// attribute tables from other Go programs.
//
// Example:
//
//	db, err := sqldb.Open(types.Config{Dialect: "mysql", DSN: dsn, TablePrefix: "shop_"}, log)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//	return attrschema.EnsureSchema(db)
package attrschema

import (
	"github.com/mesh-intelligence/attrschema/internal/schema"
	"github.com/mesh-intelligence/attrschema/pkg/types"
)

// Version is the release version reported by the CLI.
const Version = "0.1.0"

// EnsureSchema creates the product attribute tables on conn if missing.
// The first error returned by conn.Exec is returned unchanged.
func EnsureSchema(conn types.Conn) error {
	return schema.EnsureSchema(conn)
}

// Statements returns the DDL EnsureSchema would run for the given dialect
// identifier and prefix.
func Statements(dialect, prefix string) []string {
	return schema.Statements(types.ParseDialect(dialect), prefix)
}
