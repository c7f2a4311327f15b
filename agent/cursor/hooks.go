package cursor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/safedep/readfence/agent"
)

// HookTypes are the Cursor hook types the gate registers for. Only the
// read path is gated; other hook types are answered permissively when
// Cursor invokes us anyway.
var HookTypes = []string{
	"beforeReadFile",
}

// hookCommand is the command Cursor runs for each gated hook type.
func hookCommand(hookType string) string {
	return fmt.Sprintf("readfence _hook cursor %s", hookType)
}

// isReadfenceCommand checks if a hooks.json command entry is ours.
func isReadfenceCommand(cmd string) bool {
	return strings.HasPrefix(cmd, "readfence")
}

// HooksConfig represents the Cursor hooks.json structure.
type HooksConfig struct {
	Version int                      `json:"version"`
	Hooks   map[string][]HookCommand `json:"hooks"`
}

// HookCommand represents a single hook command.
type HookCommand struct {
	Command string `json:"command"`
}

// GenerateHooksConfig generates the hooks.json content for the gate.
func GenerateHooksConfig() *HooksConfig {
	config := &HooksConfig{
		Version: 1,
		Hooks:   make(map[string][]HookCommand),
	}
	for _, hookType := range HookTypes {
		config.Hooks[hookType] = []HookCommand{{Command: hookCommand(hookType)}}
	}
	return config
}

// mergeHooksConfig adds our commands to an existing config without
// disturbing hooks owned by other tools.
func mergeHooksConfig(existing *HooksConfig) *HooksConfig {
	if existing.Hooks == nil {
		existing.Hooks = make(map[string][]HookCommand)
	}
	for hookType, commands := range GenerateHooksConfig().Hooks {
		found := false
		for _, cmd := range existing.Hooks[hookType] {
			if cmd.Command == commands[0].Command {
				found = true
				break
			}
		}
		if !found {
			existing.Hooks[hookType] = append(existing.Hooks[hookType], commands...)
		}
	}
	return existing
}

// InstallHooks installs the gate hook for Cursor.
func InstallHooks(ctx context.Context, opts agent.InstallOptions) (*agent.InstallResult, error) {
	result := &agent.InstallResult{
		BackupPaths: make(map[string]string),
	}

	detection, err := Detect(ctx)
	if err != nil {
		result.Error = err
		return result, err
	}
	if !detection.Installed {
		result.Error = fmt.Errorf("Cursor is not installed")
		return result, result.Error
	}

	configDir := detection.ConfigPath
	hooksFile := detection.HooksPath

	if !opts.DryRun {
		if err := os.MkdirAll(configDir, 0700); err != nil {
			result.Error = fmt.Errorf("failed to create config directory: %w", err)
			return result, result.Error
		}
	}

	var existingConfig *HooksConfig
	if data, err := os.ReadFile(hooksFile); err == nil {
		existingConfig = &HooksConfig{}
		if err := json.Unmarshal(data, existingConfig); err != nil {
			result.Warnings = append(result.Warnings, "existing hooks.json is malformed, will be replaced")
			existingConfig = nil
		}
	}

	if opts.DryRun {
		result.HooksInstalled = HookTypes
		result.Success = true
		return result, nil
	}

	if existingConfig != nil && opts.Backup {
		backupPath := backupPath(hooksFile, opts.BackupDir)
		data, _ := json.MarshalIndent(existingConfig, "", "  ")
		if err := os.WriteFile(backupPath, data, 0600); err == nil {
			result.BackupPaths["hooks.json"] = backupPath
		} else {
			result.Warnings = append(result.Warnings, fmt.Sprintf("failed to backup hooks.json: %v", err))
		}
	}

	var newConfig *HooksConfig
	if existingConfig != nil && !opts.Force {
		newConfig = mergeHooksConfig(existingConfig)
	} else {
		newConfig = GenerateHooksConfig()
	}

	data, err := json.MarshalIndent(newConfig, "", "  ")
	if err != nil {
		result.Error = fmt.Errorf("failed to marshal hooks config: %w", err)
		return result, result.Error
	}
	if err := os.WriteFile(hooksFile, data, 0600); err != nil {
		result.Error = fmt.Errorf("failed to write hooks.json: %w", err)
		return result, result.Error
	}

	result.HooksInstalled = HookTypes
	result.Success = true
	return result, nil
}

// backupPath returns the timestamped backup location for the hooks file.
func backupPath(hooksFile, backupDir string) string {
	name := fmt.Sprintf("%s.backup.%s", filepath.Base(hooksFile), time.Now().Format("20060102150405"))
	if backupDir != "" {
		if err := os.MkdirAll(backupDir, 0700); err == nil {
			return filepath.Join(backupDir, name)
		}
	}
	return filepath.Join(filepath.Dir(hooksFile), name)
}

// UninstallHooks removes the gate hook from Cursor.
func UninstallHooks(ctx context.Context, opts agent.UninstallOptions) (*agent.UninstallResult, error) {
	result := &agent.UninstallResult{}

	detection, err := Detect(ctx)
	if err != nil {
		result.Error = err
		return result, err
	}
	if !detection.Installed {
		result.Success = true
		return result, nil
	}

	hooksFile := detection.HooksPath
	data, err := os.ReadFile(hooksFile)
	if os.IsNotExist(err) {
		result.Success = true
		return result, nil
	} else if err != nil {
		result.Error = fmt.Errorf("failed to read hooks.json: %w", err)
		return result, result.Error
	}

	var config HooksConfig
	if err := json.Unmarshal(data, &config); err != nil {
		result.Error = fmt.Errorf("failed to parse hooks.json: %w", err)
		return result, result.Error
	}

	if opts.DryRun {
		result.HooksRemoved = HookTypes
		result.Success = true
		return result, nil
	}

	for hookType := range config.Hooks {
		filtered := []HookCommand{}
		for _, cmd := range config.Hooks[hookType] {
			if isReadfenceCommand(cmd.Command) {
				result.HooksRemoved = append(result.HooksRemoved, hookType)
			} else {
				filtered = append(filtered, cmd)
			}
		}
		config.Hooks[hookType] = filtered
	}

	newData, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		result.Error = fmt.Errorf("failed to marshal hooks config: %w", err)
		return result, result.Error
	}
	if err := os.WriteFile(hooksFile, newData, 0600); err != nil {
		result.Error = fmt.Errorf("failed to write hooks.json: %w", err)
		return result, result.Error
	}

	result.Success = true
	return result, nil
}

// GetHookStatus checks the current hook state.
func GetHookStatus(ctx context.Context) (*agent.HookStatus, error) {
	status := &agent.HookStatus{}

	detection, err := Detect(ctx)
	if err != nil {
		return status, err
	}
	if !detection.Installed {
		return status, nil
	}

	data, err := os.ReadFile(detection.HooksPath)
	if os.IsNotExist(err) {
		return status, nil
	} else if err != nil {
		status.Issues = append(status.Issues, fmt.Sprintf("cannot read hooks.json: %v", err))
		return status, nil
	}

	var config HooksConfig
	if err := json.Unmarshal(data, &config); err != nil {
		status.Issues = append(status.Issues, "hooks.json is malformed")
		return status, nil
	}

	status.Valid = true
	for hookType, commands := range config.Hooks {
		for _, cmd := range commands {
			if isReadfenceCommand(cmd.Command) {
				status.Installed = true
				status.Hooks = append(status.Hooks, hookType)
				break
			}
		}
	}

	return status, nil
}
