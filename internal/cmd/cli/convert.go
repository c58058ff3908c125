package cli

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ultimicro/ulid/internal/config"
	"github.com/ultimicro/ulid/pkg/ulid"
)

// newConvertCommand constructs the `convert` subcommand. Without --to it
// flips to the other form: canonical input comes out as hex, hex input as
// canonical.
func newConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <identifier>",
		Short: "Convert between canonical and binary-hex forms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := strings.TrimSpace(args[0])
			id, err := parseIdentifier(in)
			if err != nil {
				return err
			}

			to, _ := cmd.Flags().GetString("to")
			if !cmd.Flags().Changed("to") {
				if len(in) == ulid.EncodedSize {
					to = config.FormatHex
				} else {
					to = config.FormatCanonical
				}
			}

			switch to {
			case config.FormatCanonical:
				_, err = fmt.Fprintln(cmd.OutOrStdout(), id.String())
			case config.FormatHex:
				_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(id.Bytes()))
			default:
				return fmt.Errorf("invalid --to %q; use canonical|hex", to)
			}
			return err
		},
	}
	cmd.Flags().String("to", "", "Target form: canonical|hex (default: the other form)")
	return cmd
}
