package cursor

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// HookEvent represents the raw event Cursor writes to the hook's stdin.
// Only the fields the gate cares about are mapped; everything else in
// the object is ignored.
type HookEvent struct {
	ConversationID string   `json:"conversation_id"`
	GenerationID   string   `json:"generation_id"`
	HookEventName  string   `json:"hook_event_name"`
	FilePath       string   `json:"file_path,omitempty"`
	WorkspaceRoots []string `json:"workspace_roots,omitempty"`
}

// ParseHookEvent decodes a raw Cursor hook event.
func ParseHookEvent(rawData []byte) (*HookEvent, error) {
	var event HookEvent
	if err := json.Unmarshal(rawData, &event); err != nil {
		return nil, fmt.Errorf("failed to parse hook event: %w", err)
	}
	return &event, nil
}

// SessionUUID returns a session identifier derived from the event's
// conversation_id. Non-UUID conversation IDs map to a deterministic UUID
// so the same conversation always logs under the same session; an absent
// conversation_id gets a fresh random one.
func (e *HookEvent) SessionUUID() uuid.UUID {
	if e.ConversationID == "" {
		return uuid.New()
	}
	if id, err := uuid.Parse(e.ConversationID); err == nil {
		return id
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(e.ConversationID))
}

// IsPermissionHook reports whether hookType expects a permission response
// body ({"permission": "allow"|"deny", ...}) on stdout.
func IsPermissionHook(hookType string) bool {
	switch hookType {
	case "beforeReadFile", "beforeTabFileRead", "beforeShellExecution", "beforeMCPExecution":
		return true
	default:
		return false
	}
}

// IsReadHook reports whether hookType is a file-read permission hook,
// i.e. one the filename gate actually evaluates.
func IsReadHook(hookType string) bool {
	return hookType == "beforeReadFile" || hookType == "beforeTabFileRead"
}
