// Package cli implements the attrschema command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/attrschema/internal/logger"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Persistent flag names.
const (
	flagConfigDir = "config-dir"
	flagDataDir   = "data-dir"
	flagDialect   = "dialect"
	flagDSN       = "dsn"
	flagPrefix    = "prefix"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }

func sysError(err error) error { return &exitError{code: exitSysError, err: err} }

// exitCode maps a command error to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// NewRootCmd creates the top-level "attrschema" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "attrschema",
		Short: "Provision the product attribute tables",
		Long: "attrschema creates the product attribute tables and indexes in a\n" +
			"MySQL family or SQLite database if they do not exist yet.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String(flagConfigDir, "", "configuration directory (default: platform config dir)")
	pf.String(flagDataDir, "", "data directory for the default SQLite database")
	pf.String(flagDialect, "", `database dialect: "sqlite" or a MySQL family name (default "mysql")`)
	pf.String(flagDSN, "", "data source name")
	pf.String(flagPrefix, "", "table name prefix, inserted verbatim")
	pf.String(flagLogLevel, "", `log level: trace, debug, info, warn, error (default "info")`)
	pf.String(flagLogFormat, "", `log format: console or json (default "console")`)

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newEnsureCmd())
	root.AddCommand(newPrintCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "attrschema:", err)
	}
	os.Exit(exitCode(err))
}

// newLogger builds the command logger from loaded settings.
func newLogger(w io.Writer, s *settings) zerolog.Logger {
	return logger.New(w, logger.Config{Format: s.LogFormat, Level: s.LogLevel})
}
