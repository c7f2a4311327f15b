package cli

import (
	"context"

	"github.com/safedep/readfence/agent"
	"github.com/safedep/readfence/tui"
	"github.com/spf13/cobra"
)

// NewUninstallCmd creates the uninstall command.
func NewUninstallCmd() *cobra.Command {
	var (
		agents []string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the read gate hook from AI coding agents",
		Long: `Remove the read gate hook from AI coding agents.

Only hooks registered by readfence are removed. Hooks installed by
other tools stay in place.`,
		Example: `  readfence uninstall
  readfence uninstall --agent cursor`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			adapters := app.Registry.All()
			if len(agents) > 0 {
				adapters = filterAdapters(adapters, agents)
				if len(adapters) == 0 {
					return ErrAgentNotFound(agents[0])
				}
			}

			view := &tui.UninstallView{DryRun: dryRun}
			var uninstallErr error

			for _, adapter := range adapters {
				agentView := tui.AgentUninstallView{
					Name:        adapter.Name(),
					DisplayName: adapter.DisplayName(),
				}

				result, err := adapter.Uninstall(ctx, agent.UninstallOptions{DryRun: dryRun})
				if err != nil {
					agentView.Error = err.Error()
					uninstallErr = err
				} else {
					agentView.HooksRemoved = result.HooksRemoved
				}

				view.Agents = append(view.Agents, agentView)
			}

			if err := app.Presenter.RenderUninstall(view); err != nil {
				return err
			}
			if uninstallErr != nil {
				return ErrHookFailed("hook removal failed", uninstallErr)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&agents, "agent", nil, "uninstall from specific agent only (repeatable)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be removed")

	return cmd
}
