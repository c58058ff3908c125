package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ultimicro/ulid/internal/config"
	logpkg "github.com/ultimicro/ulid/pkg/log"
	"github.com/ultimicro/ulid/pkg/ulid"
)

// newGenerateCommand constructs the `generate` subcommand. All identifiers
// from one invocation come from a single stream, so generating several with
// a pinned --at still yields strictly increasing values.
func newGenerateCommand(cfg config.Config, logger logpkg.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate new identifiers",
		Aliases: []string{"gen", "new"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, _ := cmd.Flags().GetInt("count")
			at, _ := cmd.Flags().GetString("at")
			format, _ := cmd.Flags().GetString("format")
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}

			var atMs uint64
			pinned := at != ""
			if pinned {
				ms, err := parseAt(at)
				if err != nil {
					return err
				}
				atMs = ms
			}

			logger.Debug("generating identifiers",
				logpkg.F("count", count), logpkg.F("format", format), logpkg.F("pinned", pinned))

			g := ulid.NewGenerator()
			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				var id ulid.ULID
				var err error
				if pinned {
					id, err = g.NewAt(atMs)
				} else {
					id, err = g.New()
				}
				if err != nil {
					return err
				}
				if err := writeIdentifier(out, id, format); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntP("count", "n", cfg.Count, "Number of identifiers to generate")
	cmd.Flags().String("at", "", "Timestamp override: unix ms or RFC3339")
	cmd.Flags().String("format", cfg.Format, "Output format: canonical|hex|json")
	return cmd
}
