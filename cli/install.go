package cli

import (
	"context"

	"github.com/safedep/readfence/agent"
	"github.com/safedep/readfence/config"
	"github.com/safedep/readfence/tui"
	"github.com/spf13/cobra"
)

// NewInstallCmd creates the install command.
func NewInstallCmd() *cobra.Command {
	var (
		agents   []string
		dryRun   bool
		force    bool
		noBackup bool
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the read gate hook for AI coding agents",
		Long: `Install the read gate hook for AI coding agents.

Discovers supported agents on the system and registers the
beforeReadFile gate in their hook configuration. Existing hooks from
other tools are preserved, and the hooks file is backed up by default.`,
		Example: `  readfence install
  readfence install --agent cursor
  readfence install --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			if !dryRun {
				if err := config.EnsureDirectories(); err != nil {
					return ErrConfig("failed to create directories", err)
				}
			}

			adapters := app.Registry.All()
			if len(agents) > 0 {
				adapters = filterAdapters(adapters, agents)
				if len(adapters) == 0 {
					return ErrAgentNotFound(agents[0])
				}
			}

			view := &tui.InstallView{DryRun: dryRun}
			var installErr error

			for _, adapter := range adapters {
				detection, err := adapter.Detect(ctx)
				if err != nil {
					view.Agents = append(view.Agents, tui.AgentInstallView{
						Name:        adapter.Name(),
						DisplayName: adapter.DisplayName(),
						Error:       err.Error(),
					})
					installErr = err
					continue
				}

				agentView := tui.AgentInstallView{
					Name:        adapter.Name(),
					DisplayName: adapter.DisplayName(),
					Installed:   detection.Installed,
					Version:     detection.Version,
				}

				if detection.Installed {
					opts := agent.InstallOptions{
						DryRun:    dryRun,
						Force:     force,
						Backup:    !noBackup,
						BackupDir: app.Paths.BackupsDir,
					}

					result, err := adapter.Install(ctx, opts)
					if err != nil {
						agentView.Error = err.Error()
						installErr = err
					} else {
						agentView.HooksInstalled = result.HooksInstalled
						agentView.BackupPaths = result.BackupPaths
						agentView.Warnings = result.Warnings
					}
				}

				view.Agents = append(view.Agents, agentView)
			}

			if err := app.Presenter.RenderInstall(view); err != nil {
				return err
			}
			if installErr != nil {
				return ErrHookFailed("hook installation failed", installErr)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&agents, "agent", nil, "install for specific agent only (repeatable)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be installed")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing hooks without merging")
	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "skip backup of existing hooks")

	return cmd
}

func filterAdapters(adapters []agent.Adapter, names []string) []agent.Adapter {
	nameSet := make(map[string]bool)
	for _, name := range names {
		nameSet[name] = true
	}

	filtered := make([]agent.Adapter, 0)
	for _, adapter := range adapters {
		if nameSet[adapter.Name()] {
			filtered = append(filtered, adapter)
		}
	}
	return filtered
}
