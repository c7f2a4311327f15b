package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/safedep/readfence/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	t          *testing.T
	tmpDir     string
	configPath string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithConfig(t, "")
}

func newTestEnvWithConfig(t *testing.T, configYAML string) *testEnv {
	t.Helper()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if configYAML == "" {
		configYAML = `display:
  colors: never
`
	}

	err := os.WriteFile(configPath, []byte(configYAML), 0o600)
	require.NoError(t, err)

	return &testEnv{
		t:          t,
		tmpDir:     tmpDir,
		configPath: configPath,
	}
}

func (env *testEnv) run(args ...string) (stdout, stderr string, err error) {
	env.t.Helper()
	return env.runWithStdin(nil, args...)
}

func (env *testEnv) runWithStdin(stdin []byte, args ...string) (stdout, stderr string, err error) {
	env.t.Helper()

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetIn(bytes.NewReader(stdin))
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)

	fullArgs := append([]string{"--config", env.configPath, "--no-color"}, args...)
	rootCmd.SetArgs(fullArgs)
	err = rootCmd.ExecuteContext(context.Background())
	return outBuf.String(), errBuf.String(), err
}

// runHook drives the hidden hook command the way an agent would: payload
// on stdin, decision on stdout.
func (env *testEnv) runHook(agentName, hookType string, payload []byte) (stdout, stderr string, err error) {
	env.t.Helper()
	return env.runWithStdin(payload, "_hook", agentName, hookType)
}

// decodeDecision parses the single JSON decision object a hook run writes.
func decodeDecision(t *testing.T, stdout string) map[string]any {
	t.Helper()

	var decision map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &decision), "hook output is not a JSON object: %q", stdout)
	return decision
}

func assertExitCode(t *testing.T, err error, code int) {
	t.Helper()

	var coder cli.ExitCoder
	require.ErrorAs(t, err, &coder)
	assert.Equal(t, code, coder.ExitCode())
}
