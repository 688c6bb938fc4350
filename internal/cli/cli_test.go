package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"sigma", "fixture"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, "--format", "xml", "fixture")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSigmaText(t *testing.T) {
	path := writeProfile(t, "gates:\n  - gate: T\n    count: 3\n  - gate: C(T)\n    count: 2\n  - gate: CNOT\n    count: 7\n")
	out, err := execute(t, "sigma", path)
	require.NoError(t, err)
	assert.Equal(t, "gate  count  T\n"+
		"CNOT  7  0\n"+
		"C[T]  2  5\n"+
		"T     3  1\n"+
		"total T: 13\n", out)
}

func TestSigmaJSON(t *testing.T) {
	path := writeProfile(t, "gates:\n  - gate: Rz(0.1)\n    count: n\n")
	out, err := execute(t, "--format", "json", "sigma", path)
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   Report `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "52*n", resp.Data.Total)
	require.Len(t, resp.Data.Gates, 1)
	assert.Equal(t, GateCost{Gate: "Rz(0.1, eps=1e-11)", Count: "n", TCount: "52"}, resp.Data.Gates[0])
}

func TestSigmaErrors(t *testing.T) {
	_, err := execute(t, "sigma", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	path := writeProfile(t, "gates:\n  - gate: Nope\n")
	out, err := execute(t, "--format", "json", "sigma", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, `"status":"error"`)

	_, err = execute(t, "sigma")
	assert.Error(t, err)
}

func TestFixture(t *testing.T) {
	out, err := execute(t, "fixture", "--bitsize", "3", "--check", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "TestCastToFrom(3)")
	assert.Contains(t, out, "Cast(QFxp(3, 3, false) -> QUInt(3))")
	assert.Contains(t, out, "total T: 8")
	assert.Contains(t, out, "classical action checked")

	out, err = execute(t, "--format", "json", "fixture")
	require.NoError(t, err)
	var resp struct {
		Data FixtureResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "12", resp.Data.Cost.Total)
	assert.Len(t, resp.Data.Cost.Gates, 3)
	assert.False(t, resp.Data.Checked)
}

func TestFixtureErrors(t *testing.T) {
	_, err := execute(t, "fixture", "--bitsize", "0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = execute(t, "fixture", "--bitsize", "9", "--check")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
