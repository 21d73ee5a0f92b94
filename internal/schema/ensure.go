package schema

import (
	"fmt"

	"github.com/mesh-intelligence/attrschema/pkg/types"
)

// Statements returns the ordered DDL for d with prefix substituted into
// every table and index name.
func Statements(d types.Dialect, prefix string) []string {
	ddl := mysqlDDL
	if d == types.DialectSQLite {
		ddl = sqliteDDL
	}

	stmts := make([]string, len(ddl))
	for i, tmpl := range ddl {
		stmts[i] = fmt.Sprintf(tmpl, prefix)
	}
	return stmts
}

// EnsureSchema creates the product attribute tables and their indexes on
// conn if they do not exist yet. Statements run one at a time; the first
// error from conn.Exec is returned as is and the remaining statements are
// not attempted. Objects created before the failure are left in place.
func EnsureSchema(conn types.Conn) error {
	dialect := types.ParseDialect(conn.Dialect())
	for _, stmt := range Statements(dialect, conn.TablePrefix()) {
		if err := conn.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
