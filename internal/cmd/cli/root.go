package cli

import (
	"github.com/spf13/cobra"

	"github.com/ultimicro/ulid/internal/config"
	logpkg "github.com/ultimicro/ulid/pkg/log"
)

// NewRoot constructs the root command for the ulid CLI. Defaults for flags
// come from cfg, so file and environment configuration apply unless a flag
// overrides them.
func NewRoot(cfg config.Config, logger logpkg.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "ulid",
		Short: "ULID command-line tool",
		Long:  "Generate, convert and inspect Universally Unique Lexicographically Sortable Identifiers.",
	}
	root.AddCommand(
		newGenerateCommand(cfg, logger),
		newConvertCommand(),
		newInspectCommand(),
	)
	return root
}
