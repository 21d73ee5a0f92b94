package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/attrschema/pkg/attrschema"
)

const modulePath = "github.com/mesh-intelligence/attrschema"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the attrschema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "attrschema v%s\nmodule: %s\n", attrschema.Version, modulePath)
			return nil
		},
	}
}
