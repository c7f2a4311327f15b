// Package cursor provides the adapter for Cursor integration.
package cursor

import (
	"context"

	"github.com/safedep/readfence/agent"
)

const (
	// AgentName is the machine identifier for Cursor.
	AgentName = agent.AgentCursor
	// DisplayName is the human-readable name for Cursor.
	DisplayName = agent.DisplayCursor
)

// Adapter implements the agent.Adapter interface for Cursor.
type Adapter struct{}

// New creates a new Cursor adapter.
func New() *Adapter {
	return &Adapter{}
}

// Name returns the machine identifier.
func (a *Adapter) Name() string {
	return AgentName
}

// DisplayName returns the human-readable name.
func (a *Adapter) DisplayName() string {
	return DisplayName
}

// Detect determines if Cursor is installed.
func (a *Adapter) Detect(ctx context.Context) (*agent.DetectionResult, error) {
	return Detect(ctx)
}

// Install installs the gate hook for Cursor.
func (a *Adapter) Install(ctx context.Context, opts agent.InstallOptions) (*agent.InstallResult, error) {
	return InstallHooks(ctx, opts)
}

// Uninstall removes the gate hook from Cursor.
func (a *Adapter) Uninstall(ctx context.Context, opts agent.UninstallOptions) (*agent.UninstallResult, error) {
	return UninstallHooks(ctx, opts)
}

// Status checks the current hook state.
func (a *Adapter) Status(ctx context.Context) (*agent.HookStatus, error) {
	return GetHookStatus(ctx)
}

// Register adds this adapter to the given registry.
func Register(registry *agent.Registry) {
	registry.Register(New())
}

// Ensure Adapter implements agent.Adapter
var _ agent.Adapter = (*Adapter)(nil)
