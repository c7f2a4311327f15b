package tui

// StatusView represents the status output data.
type StatusView struct {
	Version string            `json:"version"`
	Agents  []AgentStatusView `json:"agents"`
	Config  ConfigStatusView  `json:"config"`
	Rules   RuleCountView     `json:"rules"`
}

// AgentStatusView represents an agent's status.
type AgentStatusView struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Installed   bool     `json:"installed"`
	Version     string   `json:"version,omitempty"`
	HooksActive bool     `json:"hooks_active"`
	Hooks       []string `json:"hooks,omitempty"`
	Issues      []string `json:"issues,omitempty"`
}

// ConfigStatusView represents configuration status.
type ConfigStatusView struct {
	Location string `json:"location"`
	Exists   bool   `json:"exists"`
}

// RuleCountView summarizes the effective denylist.
type RuleCountView struct {
	Builtin    int `json:"builtin"`
	Additional int `json:"additional"`
	Ignored    int `json:"ignored"`
}

// InstallView represents install command output.
type InstallView struct {
	DryRun bool               `json:"dry_run,omitempty"`
	Agents []AgentInstallView `json:"agents"`
}

// AgentInstallView represents one agent's install result.
type AgentInstallView struct {
	Name           string            `json:"name"`
	DisplayName    string            `json:"display_name"`
	Installed      bool              `json:"installed"`
	Version        string            `json:"version,omitempty"`
	HooksInstalled []string          `json:"hooks_installed,omitempty"`
	BackupPaths    map[string]string `json:"backup_paths,omitempty"`
	Warnings       []string          `json:"warnings,omitempty"`
	Error          string            `json:"error,omitempty"`
}

// UninstallView represents uninstall command output.
type UninstallView struct {
	DryRun bool                 `json:"dry_run,omitempty"`
	Agents []AgentUninstallView `json:"agents"`
}

// AgentUninstallView represents one agent's uninstall result.
type AgentUninstallView struct {
	Name         string   `json:"name"`
	DisplayName  string   `json:"display_name"`
	HooksRemoved []string `json:"hooks_removed,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// DoctorView represents doctor command output.
type DoctorView struct {
	Checks []DoctorCheckView `json:"checks"`
}

// DoctorCheckView is a single diagnostic result.
type DoctorCheckView struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

// CheckView represents check command output.
type CheckView struct {
	Results []CheckResultView `json:"results"`
}

// CheckResultView is the classification of one path.
type CheckResultView struct {
	Path      string `json:"path"`
	Filename  string `json:"filename,omitempty"`
	Sensitive bool   `json:"sensitive"`
}

// RulesView represents the effective denylist.
type RulesView struct {
	Builtin    []string `json:"builtin"`
	Additional []string `json:"additional,omitempty"`
	Ignored    []string `json:"ignored,omitempty"`
}

// ConfigView represents configuration output.
type ConfigView struct {
	Location string         `json:"location"`
	Settings map[string]any `json:"settings"`
}
