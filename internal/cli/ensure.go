package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/attrschema/internal/sqldb"
	"github.com/mesh-intelligence/attrschema/pkg/attrschema"
	"github.com/mesh-intelligence/attrschema/pkg/types"
)

func newEnsureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ensure",
		Short: "Create the product attribute tables if missing",
		Long: "Connect to the configured database and create the product attribute\n" +
			"tables and indexes that do not exist yet. Running it again is a no-op.",
		Args: cobra.NoArgs,
		RunE: runEnsure,
	}
}

func runEnsure(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return userError(err)
	}
	if err := s.resolveDSN(); err != nil {
		return sysError(err)
	}

	log := newLogger(cmd.ErrOrStderr(), s)

	db, err := sqldb.Open(s.Config, log)
	if err != nil {
		if errors.Is(err, types.ErrDSNEmpty) || errors.Is(err, types.ErrDSNInvalid) {
			return userError(err)
		}
		return sysError(fmt.Errorf("open database: %w", err))
	}
	defer db.Close()

	if err := attrschema.EnsureSchema(db); err != nil {
		return sysError(fmt.Errorf("ensure schema: %w", err))
	}

	log.Info().
		Str("run_id", db.RunID()).
		Str("dialect", s.ParsedDialect().String()).
		Str("prefix", s.TablePrefix).
		Int("statements", len(attrschema.Statements(s.Dialect, s.TablePrefix))).
		Msg("schema ensured")
	fmt.Fprintln(cmd.OutOrStdout(), "Schema ensured")
	return nil
}
