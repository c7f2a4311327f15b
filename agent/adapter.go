// Package agent provides the adapter pattern for editor integrations.
package agent

import "context"

// Standard agent identifiers.
const (
	AgentCursor = "cursor"
)

// Standard agent display names.
const (
	DisplayCursor = "Cursor"
)

// DetectionResult contains information about a detected agent.
type DetectionResult struct {
	// Installed indicates if the agent is installed.
	Installed bool
	// Version is the detected version of the agent.
	Version string
	// Path is the installation path of the agent.
	Path string
	// ConfigPath is the configuration directory path.
	ConfigPath string
	// HooksPath is the hooks file path.
	HooksPath string
	// Message provides additional context (e.g., why not installed).
	Message string
}

// InstallOptions configures hook installation.
type InstallOptions struct {
	// DryRun shows what would be installed without making changes.
	DryRun bool
	// Force overwrites existing hooks without merging.
	Force bool
	// Backup creates backups of existing hooks.
	Backup bool
	// BackupDir is the directory to store backups. Empty means alongside
	// the hooks file.
	BackupDir string
}

// InstallResult contains the result of hook installation.
type InstallResult struct {
	Success        bool
	HooksInstalled []string
	BackupPaths    map[string]string
	Warnings       []string
	Error          error
}

// UninstallOptions configures hook removal.
type UninstallOptions struct {
	// DryRun shows what would be removed without making changes.
	DryRun bool
}

// UninstallResult contains the result of hook removal.
type UninstallResult struct {
	Success      bool
	HooksRemoved []string
	Error        error
}

// HookStatus contains the status of installed hooks.
type HookStatus struct {
	// Installed indicates if our hooks are present.
	Installed bool
	// Valid indicates the hooks file parsed cleanly.
	Valid bool
	// Hooks lists the hook types our command is registered for.
	Hooks []string
	// Issues contains problems found while inspecting the hooks file.
	Issues []string
}

// Adapter is the integration surface for one agent.
type Adapter interface {
	// Name returns the machine identifier.
	Name() string
	// DisplayName returns the human-readable name.
	DisplayName() string
	// Detect determines if the agent is installed.
	Detect(ctx context.Context) (*DetectionResult, error)
	// Install installs the gate hook for the agent.
	Install(ctx context.Context, opts InstallOptions) (*InstallResult, error)
	// Uninstall removes the gate hook from the agent.
	Uninstall(ctx context.Context, opts UninstallOptions) (*UninstallResult, error)
	// Status checks the current hook state.
	Status(ctx context.Context) (*HookStatus, error)
}
