package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ultimicro/ulid/internal/config"
	logpkg "github.com/ultimicro/ulid/pkg/log"
	"github.com/ultimicro/ulid/pkg/ulid"
)

const (
	vectorCanonical = "01ARYZ6S41000G40R40M30E209"
	vectorHex       = "01563df3648100010203040506070809"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	logger := logpkg.NewLogger(logpkg.WithOutput(logpkg.NewWriterOutput(io.Discard)))
	root := NewRoot(config.Default(), logger)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestGenerateCanonical(t *testing.T) {
	out, err := execute(t, "generate")
	require.NoError(t, err)

	s := strings.TrimSpace(out)
	require.Len(t, s, ulid.EncodedSize)
	_, err = ulid.Parse(s)
	require.NoError(t, err)
}

func TestGenerateCountIsMonotonic(t *testing.T) {
	out, err := execute(t, "generate", "-n", "50", "--at", "1469918176385")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 50)
	for i := 1; i < len(lines); i++ {
		require.Less(t, lines[i-1], lines[i], "same-millisecond output must strictly increase")
		require.True(t, strings.HasPrefix(lines[i], "01ARYZ6S41"))
	}
}

func TestGenerateAtRFC3339(t *testing.T) {
	out, err := execute(t, "generate", "--at", "2021-05-13T10:00:32.009Z", "--format", "json")
	require.NoError(t, err)

	var view struct {
		TimestampMs uint64 `json:"timestampMs"`
		Time        string `json:"time"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	require.Equal(t, uint64(1620900032009), view.TimestampMs)
	require.Equal(t, "2021-05-13T10:00:32.009Z", view.Time)
}

func TestGenerateHexFormat(t *testing.T) {
	out, err := execute(t, "generate", "--format", "hex")
	require.NoError(t, err)
	s := strings.TrimSpace(out)
	require.Len(t, s, ulid.Size*2)
}

func TestGenerateErrors(t *testing.T) {
	_, err := execute(t, "generate", "--at", "281474976710656") // 2^48
	require.ErrorIs(t, err, ulid.ErrTimestampRange)

	_, err = execute(t, "generate", "-n", "0")
	require.Error(t, err)

	_, err = execute(t, "generate", "--format", "base58")
	require.Error(t, err)

	_, err = execute(t, "generate", "--at", "soon")
	require.Error(t, err)
}

func TestConvertFlipsByDefault(t *testing.T) {
	out, err := execute(t, "convert", vectorCanonical)
	require.NoError(t, err)
	require.Equal(t, vectorHex, strings.TrimSpace(out))

	out, err = execute(t, "convert", vectorHex)
	require.NoError(t, err)
	require.Equal(t, vectorCanonical, strings.TrimSpace(out))
}

func TestConvertExplicitTarget(t *testing.T) {
	out, err := execute(t, "convert", vectorCanonical, "--to", "canonical")
	require.NoError(t, err)
	require.Equal(t, vectorCanonical, strings.TrimSpace(out))

	out, err = execute(t, "convert", vectorHex, "--to", "hex")
	require.NoError(t, err)
	require.Equal(t, vectorHex, strings.TrimSpace(out))

	_, err = execute(t, "convert", vectorHex, "--to", "base64")
	require.Error(t, err)
}

func TestConvertRejectsMalformed(t *testing.T) {
	_, err := execute(t, "convert", "invalid-len-string")
	require.Error(t, err)

	_, err = execute(t, "convert", strings.Repeat("g", 32)) // not hex
	require.Error(t, err)

	_, err = execute(t, "convert", "8ZZZZZZZZZZZZZZZZZZZZZZZZZ") // leading digit > 7
	require.ErrorIs(t, err, ulid.ErrInvalidFormat)
}

func TestInspect(t *testing.T) {
	out, err := execute(t, "inspect", vectorCanonical)
	require.NoError(t, err)

	var view struct {
		Canonical   string `json:"canonical"`
		Hex         string `json:"hex"`
		TimestampMs uint64 `json:"timestampMs"`
		Randomness  string `json:"randomness"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	require.Equal(t, vectorCanonical, view.Canonical)
	require.Equal(t, vectorHex, view.Hex)
	require.Equal(t, uint64(1469918176385), view.TimestampMs)
	require.Equal(t, "00010203040506070809", view.Randomness)
}

func TestInspectParts(t *testing.T) {
	out, err := execute(t, "inspect", vectorHex, "--part", "timestamp")
	require.NoError(t, err)
	require.Equal(t, "1469918176385", strings.TrimSpace(out))

	out, err = execute(t, "inspect", vectorCanonical, "--part", "randomness")
	require.NoError(t, err)
	require.Equal(t, "00010203040506070809", strings.TrimSpace(out))

	_, err = execute(t, "inspect", vectorCanonical, "--part", "entropy")
	require.Error(t, err)
}
