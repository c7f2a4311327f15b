package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHook_Cursor_BeforeReadFile(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		assert  func(t *testing.T, decision map[string]any)
	}{
		{
			name:    "denies_sensitive_filename",
			payload: `{"file_path": "/home/user/project/.env"}`,
			assert: func(t *testing.T, decision map[string]any) {
				assert.Equal(t, "deny", decision["permission"])
				assert.Contains(t, decision["user_message"], ".env")
			},
		},
		{
			name:    "denies_case_insensitively",
			payload: `{"file_path": "C:\\Users\\dev\\CREDENTIALS.JSON"}`,
			assert: func(t *testing.T, decision map[string]any) {
				assert.Equal(t, "deny", decision["permission"])
			},
		},
		{
			name:    "allows_ordinary_file",
			payload: `{"file_path": "/home/user/project/notes.txt"}`,
			assert: func(t *testing.T, decision map[string]any) {
				assert.Equal(t, "allow", decision["permission"])
				assert.NotContains(t, decision, "user_message")
			},
		},
		{
			name:    "exact_match_does_not_catch_supersets",
			payload: `{"file_path": "/home/user/project/myconfig.json"}`,
			assert: func(t *testing.T, decision map[string]any) {
				assert.Equal(t, "allow", decision["permission"])
			},
		},
		{
			name:    "missing_file_path_allows_silently",
			payload: `{}`,
			assert: func(t *testing.T, decision map[string]any) {
				assert.Equal(t, "allow", decision["permission"])
				assert.NotContains(t, decision, "user_message")
			},
		},
		{
			name:    "non_string_file_path_allows_silently",
			payload: `{"file_path": 42}`,
			assert: func(t *testing.T, decision map[string]any) {
				assert.Equal(t, "allow", decision["permission"])
				assert.NotContains(t, decision, "user_message")
			},
		},
		{
			name:    "malformed_json_allows_with_diagnostic",
			payload: `not valid json`,
			assert: func(t *testing.T, decision map[string]any) {
				assert.Equal(t, "allow", decision["permission"])
				assert.NotEmpty(t, decision["user_message"])
			},
		},
		{
			name:    "empty_input_allows_with_diagnostic",
			payload: ``,
			assert: func(t *testing.T, decision map[string]any) {
				assert.Equal(t, "allow", decision["permission"])
				assert.NotEmpty(t, decision["user_message"])
			},
		},
		{
			name:    "extra_fields_are_ignored",
			payload: `{"conversation_id": "abc", "hook_event_name": "beforeReadFile", "file_path": "/tmp/id_rsa", "workspace_roots": ["/tmp"]}`,
			assert: func(t *testing.T, decision map[string]any) {
				assert.Equal(t, "deny", decision["permission"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			stdout, _, err := env.runHook("cursor", "beforeReadFile", []byte(tt.payload))

			// The hook contract: never a hard failure, always one decision
			// object on stdout.
			require.NoError(t, err)
			tt.assert(t, decodeDecision(t, stdout))
		})
	}
}

func TestHook_IsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	payload := []byte(`{"file_path": "/home/user/.env"}`)

	first, _, err := env.runHook("cursor", "beforeReadFile", payload)
	require.NoError(t, err)
	second, _, err := env.runHook("cursor", "beforeReadFile", payload)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHook_UnknownAgentAllows(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.runHook("vscode", "beforeReadFile", []byte(`{"file_path": "/tmp/.env"}`))

	require.NoError(t, err)
	decision := decodeDecision(t, stdout)
	assert.Equal(t, "allow", decision["permission"])
}

func TestHook_NonReadHookTypePassesThrough(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.runHook("cursor", "beforeShellExecution", []byte(`{"command": "cat .env"}`))

	require.NoError(t, err)
	decision := decodeDecision(t, stdout)
	assert.Equal(t, "allow", decision["permission"])
}

func TestHook_BrokenConfigStillAnswers(t *testing.T) {
	env := newTestEnvWithConfig(t, "gate: [not: valid: yaml\n")

	stdout, _, err := env.runHook("cursor", "beforeReadFile", []byte(`{"file_path": "/home/user/.env"}`))

	// A broken config falls back to defaults; the gate still denies.
	require.NoError(t, err)
	decision := decodeDecision(t, stdout)
	assert.Equal(t, "deny", decision["permission"])
}

func TestHook_ConfigAdjustsDenylist(t *testing.T) {
	t.Run("additional_names", func(t *testing.T) {
		env := newTestEnvWithConfig(t, `gate:
  additional_names:
    - scratch.env
display:
  colors: never
`)

		stdout, _, err := env.runHook("cursor", "beforeReadFile", []byte(`{"file_path": "/tmp/scratch.env"}`))
		require.NoError(t, err)
		assert.Equal(t, "deny", decodeDecision(t, stdout)["permission"])
	})

	t.Run("ignored_names", func(t *testing.T) {
		env := newTestEnvWithConfig(t, `gate:
  ignored_names:
    - config.json
display:
  colors: never
`)

		stdout, _, err := env.runHook("cursor", "beforeReadFile", []byte(`{"file_path": "/tmp/config.json"}`))
		require.NoError(t, err)
		assert.Equal(t, "allow", decodeDecision(t, stdout)["permission"])
	})

	t.Run("deny_message_override", func(t *testing.T) {
		env := newTestEnvWithConfig(t, `gate:
  deny_message: "reading %s is off limits"
display:
  colors: never
`)

		stdout, _, err := env.runHook("cursor", "beforeReadFile", []byte(`{"file_path": "/tmp/.env"}`))
		require.NoError(t, err)
		decision := decodeDecision(t, stdout)
		assert.Equal(t, "deny", decision["permission"])
		assert.Equal(t, "reading .env is off limits", decision["user_message"])
	})
}
