package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/attrschema/internal/schema"
)

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the DDL without connecting to a database",
		Args:  cobra.NoArgs,
		RunE:  runPrint,
	}
}

func runPrint(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return userError(err)
	}

	rec := schema.NewRecorder(s.TablePrefix, s.Dialect)
	if err := schema.EnsureSchema(rec); err != nil {
		return sysError(err)
	}

	out := cmd.OutOrStdout()
	for _, stmt := range rec.Statements {
		fmt.Fprintf(out, "%s;\n\n", stmt)
	}
	return nil
}
