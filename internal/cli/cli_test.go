package cli

import (
	"bytes"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/attrschema/internal/paths"
)

// isolate points the config directory at a fresh temp dir and clears every
// ATTRSCHEMA_ variable the command reads. It returns the config directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, dir)
	for _, key := range []string{"DIALECT", "DSN", "TABLE_PREFIX", "DATA_DIR", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(envPrefix+"_"+key, "")
	}
	return dir
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func tableNames(t *testing.T, dsn string) []string {
	t.Helper()
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	return names
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "attrschema v0.1.0")
	assert.Contains(t, out, "module: "+modulePath)
}

func TestPrint(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		env       map[string]string
		wantCount int
		wantText  string
	}{
		{
			name:      "default dialect is mysql",
			args:      []string{"print"},
			wantCount: 4,
			wantText:  "CREATE TABLE IF NOT EXISTS `product_attribute_categories` (",
		},
		{
			name:      "sqlite flag with prefix",
			args:      []string{"print", "--dialect", "sqlite", "--prefix", "fa_"},
			wantCount: 10,
			wantText:  `CREATE INDEX IF NOT EXISTS "fa_product_attribute_values_category_idx"`,
		},
		{
			name:      "dialect from environment",
			args:      []string{"print"},
			env:       map[string]string{"ATTRSCHEMA_DIALECT": "sqlite", "ATTRSCHEMA_TABLE_PREFIX": "env_"},
			wantCount: 10,
			wantText:  `"env_product_attribute_categories"`,
		},
		{
			name:      "unknown dialect falls back to mysql",
			args:      []string{"print", "--dialect", "oracle", "--prefix", "shop_"},
			wantCount: 4,
			wantText:  "`shop_product_attribute_category_assignments`",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, strings.Count(out, "CREATE "))
			assert.Contains(t, out, tt.wantText)
		})
	}
}

func TestPrint_ConfigFileAndFlagPrecedence(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt),
		[]byte("dialect: sqlite\ntable_prefix: cfg_\n"), 0o644))

	out, _, err := run(t, "print")
	require.NoError(t, err)
	assert.Contains(t, out, `"cfg_product_attribute_categories"`)

	t.Setenv("ATTRSCHEMA_TABLE_PREFIX", "env_")
	out, _, err = run(t, "print")
	require.NoError(t, err)
	assert.Contains(t, out, `"env_product_attribute_categories"`)

	out, _, err = run(t, "print", "--prefix", "flag_")
	require.NoError(t, err)
	assert.Contains(t, out, `"flag_product_attribute_categories"`)
	assert.NotContains(t, out, "env_")
}

func TestPrint_MalformedConfig(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte("dialect: [unclosed\n"), 0o644))

	_, _, err := run(t, "print")
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestEnsure_SQLite(t *testing.T) {
	isolate(t)
	dsn := filepath.Join(t.TempDir(), "db", "shop.db")

	for i := 0; i < 2; i++ {
		out, stderr, err := run(t, "ensure", "--dialect", "sqlite", "--dsn", dsn, "--prefix", "shop_", "--log-format", "json")
		require.NoError(t, err, stderr)
		assert.Contains(t, out, "Schema ensured")
		assert.Contains(t, stderr, `"message":"schema ensured"`)
		assert.Contains(t, stderr, `"statements":10`)
	}

	assert.Equal(t, []string{
		"shop_product_attribute_assignments",
		"shop_product_attribute_categories",
		"shop_product_attribute_category_assignments",
		"shop_product_attribute_values",
	}, tableNames(t, dsn))
}

func TestEnsure_SQLiteDefaultDSN(t *testing.T) {
	isolate(t)
	dataDir := t.TempDir()
	t.Setenv(paths.EnvDataDir, dataDir)

	_, stderr, err := run(t, "ensure", "--dialect", "sqlite")
	require.NoError(t, err, stderr)

	dsn := filepath.Join(dataDir, paths.SQLiteFileName)
	_, err = os.Stat(dsn)
	require.NoError(t, err)
	assert.Len(t, tableNames(t, dsn), 4)
}

func TestEnsure_UserErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"mysql without dsn", []string{"ensure"}},
		{"mysql with malformed dsn", []string{"ensure", "--dsn", "not-a-dsn"}},
		{"unknown flag", []string{"ensure", "--no-such-flag"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, exitUserError, exitCode(err))
		})
	}
}

func TestEnsure_SystemErrorStopsSequence(t *testing.T) {
	isolate(t)
	dsn := filepath.Join(t.TempDir(), "shop.db")

	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE VIEW "product_attribute_values" AS SELECT 1 AS category_id`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, stderr, err := run(t, "ensure", "--dialect", "sqlite", "--dsn", dsn)
	require.Error(t, err)
	assert.Equal(t, exitSysError, exitCode(err))
	assert.Contains(t, err.Error(), "ensure schema")
	assert.Contains(t, stderr, "statement failed")

	assert.Equal(t, []string{"product_attribute_categories"}, tableNames(t, dsn))
}

func TestInit_WritesConfigOnce(t *testing.T) {
	dir := isolate(t)

	out, _, err := run(t, "init", "--dialect", "sqlite", "--prefix", "fa_", "--dsn", "/var/lib/shop.db")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration written to")

	path := filepath.Join(dir, configFileExt)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg configFile
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, "sqlite", cfg.Dialect)
	assert.Equal(t, "fa_", cfg.TablePrefix)
	assert.Equal(t, "/var/lib/shop.db", cfg.DSN)

	out, _, err = run(t, "init", "--prefix", "other_")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration already exists at")

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, after)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(errors.New("plain")))
	assert.Equal(t, exitSysError, exitCode(sysError(errors.New("db down"))))

	wrapped := userError(errors.New("bad flag"))
	assert.Equal(t, "bad flag", wrapped.Error())
	assert.Equal(t, exitUserError, exitCode(wrapped))
}
