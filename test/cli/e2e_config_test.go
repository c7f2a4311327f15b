package cli_test

import (
	"os"
	"testing"

	"github.com/safedep/readfence/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_ShowIncludesDefaults(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run("config", "show")

	assert.NoError(t, err)
	assert.Contains(t, stdout, "gate")
	assert.Contains(t, stdout, "display")
}

func TestConfig_GetKnownKey(t *testing.T) {
	env := newTestEnvWithConfig(t, `gate:
  deny_message: "no reading %s"
display:
  colors: never
`)

	stdout, _, err := env.run("config", "get", "gate.deny_message")

	assert.NoError(t, err)
	assert.Contains(t, stdout, "no reading")
}

func TestConfig_GetUnknownKeyFails(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run("config", "get", "gate.nope")

	assertExitCode(t, err, cli.ExitConfig)
}

func TestConfig_SetPersistsAndApplies(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run("config", "set", "gate.additional_names", "[scratch.env]")
	require.NoError(t, err)

	// The next process start picks up the new denylist.
	stdout, _, err := env.runHook("cursor", "beforeReadFile", []byte(`{"file_path": "/tmp/scratch.env"}`))
	require.NoError(t, err)
	assert.Equal(t, "deny", decodeDecision(t, stdout)["permission"])
}

func TestConfig_SetRejectsPatterns(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run("config", "set", "gate.additional_names", "[*.env]")

	// Matching is exact by contract; globs never enter the denylist.
	assertExitCode(t, err, cli.ExitConfig)
}

func TestConfig_ResetRemovesFile(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run("config", "set", "gate.additional_names", "[scratch.env]")
	require.NoError(t, err)

	_, _, err = env.run("config", "reset")
	require.NoError(t, err)

	_, statErr := os.Stat(env.configPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConfig_InvalidFileFailsLoudlyForCLI(t *testing.T) {
	env := newTestEnvWithConfig(t, `gate:
  additional_names:
    - "secrets/*.yaml"
`)

	_, _, err := env.run("rules")

	// CLI commands surface config problems; only the hook path fails open.
	assertExitCode(t, err, cli.ExitConfig)
}
