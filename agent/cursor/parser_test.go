package cursor

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHookEvent(t *testing.T) {
	raw := []byte(`{
		"conversation_id": "conv-123",
		"generation_id": "gen-456",
		"hook_event_name": "beforeReadFile",
		"file_path": "/home/user/.env",
		"workspace_roots": ["/home/user/project"],
		"unmapped_field": true
	}`)

	event, err := ParseHookEvent(raw)
	require.NoError(t, err)

	assert.Equal(t, "conv-123", event.ConversationID)
	assert.Equal(t, "gen-456", event.GenerationID)
	assert.Equal(t, "beforeReadFile", event.HookEventName)
	assert.Equal(t, "/home/user/.env", event.FilePath)
	assert.Equal(t, []string{"/home/user/project"}, event.WorkspaceRoots)
}

func TestParseHookEvent_Malformed(t *testing.T) {
	_, err := ParseHookEvent([]byte("not valid json"))
	assert.Error(t, err)
}

func TestSessionUUID(t *testing.T) {
	t.Run("valid uuid passes through", func(t *testing.T) {
		id := uuid.New()
		event := &HookEvent{ConversationID: id.String()}
		assert.Equal(t, id, event.SessionUUID())
	})

	t.Run("non-uuid id maps deterministically", func(t *testing.T) {
		a := &HookEvent{ConversationID: "conv-123"}
		b := &HookEvent{ConversationID: "conv-123"}
		c := &HookEvent{ConversationID: "conv-999"}

		assert.Equal(t, a.SessionUUID(), b.SessionUUID())
		assert.NotEqual(t, a.SessionUUID(), c.SessionUUID())
	})

	t.Run("empty id gets a fresh uuid", func(t *testing.T) {
		event := &HookEvent{}
		assert.NotEqual(t, event.SessionUUID(), event.SessionUUID())
	})
}

func TestHookTypeClassification(t *testing.T) {
	assert.True(t, IsPermissionHook("beforeReadFile"))
	assert.True(t, IsPermissionHook("beforeShellExecution"))
	assert.False(t, IsPermissionHook("afterFileEdit"))
	assert.False(t, IsPermissionHook("stop"))

	assert.True(t, IsReadHook("beforeReadFile"))
	assert.True(t, IsReadHook("beforeTabFileRead"))
	assert.False(t, IsReadHook("beforeShellExecution"))
}
