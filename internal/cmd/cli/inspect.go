package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newInspectCommand constructs the `inspect` subcommand.
func newInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <identifier>",
		Short: "Show the components of an identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIdentifier(args[0])
			if err != nil {
				return err
			}

			part, _ := cmd.Flags().GetString("part")
			out := cmd.OutOrStdout()
			switch part {
			case "":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(viewOf(id))
			case "timestamp":
				_, err = fmt.Fprintln(out, id.Timestamp())
			case "time":
				_, err = fmt.Fprintln(out, viewOf(id).Time)
			case "randomness":
				_, err = fmt.Fprintln(out, hex.EncodeToString(id.Randomness()))
			default:
				return fmt.Errorf("invalid --part %q; use timestamp|time|randomness", part)
			}
			return err
		},
	}
	cmd.Flags().String("part", "", "Print a single component: timestamp|time|randomness")
	return cmd
}
