// Package cli contains the Cobra commands for the ulid tool: generate,
// convert and inspect. Commands write to cmd.OutOrStdout so tests can
// capture their output.
package cli
