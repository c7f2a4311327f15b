package cli

import (
	"context"
	"os"

	"github.com/safedep/readfence/core/gate"
	"github.com/safedep/readfence/internal/version"
	"github.com/safedep/readfence/tui"
	"github.com/spf13/cobra"
)

// NewStatusCmd creates the status command.
func NewStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show agent detection and hook installation status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			view := &tui.StatusView{
				Version: version.Version,
				Config: tui.ConfigStatusView{
					Location: app.Paths.ConfigFile,
					Exists:   fileExists(app.Paths.ConfigFile),
				},
				Rules: tui.RuleCountView{
					Builtin:    len(gate.DefaultSensitiveNames()),
					Additional: len(app.Config.Gate.AdditionalNames),
					Ignored:    len(app.Config.Gate.IgnoredNames),
				},
			}

			for _, adapter := range app.Registry.All() {
				agentView := tui.AgentStatusView{
					Name:        adapter.Name(),
					DisplayName: adapter.DisplayName(),
				}

				detection, err := adapter.Detect(ctx)
				if err != nil {
					agentView.Issues = append(agentView.Issues, err.Error())
					view.Agents = append(view.Agents, agentView)
					continue
				}

				agentView.Installed = detection.Installed
				agentView.Version = detection.Version

				if detection.Installed {
					status, err := adapter.Status(ctx)
					if err != nil {
						agentView.Issues = append(agentView.Issues, err.Error())
					} else {
						agentView.HooksActive = status.Installed && status.Valid
						agentView.Hooks = status.Hooks
						agentView.Issues = append(agentView.Issues, status.Issues...)
					}
				}

				view.Agents = append(view.Agents, agentView)
			}

			return app.Presenter.RenderStatus(view)
		},
	}

	return cmd
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
