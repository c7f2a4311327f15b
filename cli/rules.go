package cli

import (
	"github.com/safedep/readfence/core/gate"
	"github.com/safedep/readfence/tui"
	"github.com/spf13/cobra"
)

// NewRulesCmd creates the rules command.
func NewRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the sensitive-filename denylist",
		Long: `List the sensitive-filename denylist.

Shows the built-in names together with any additions or ignores from
the configuration file. The effective set is what the hook matches
against, by exact filename, case-insensitively.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			view := &tui.RulesView{
				Builtin:    gate.DefaultSensitiveNames(),
				Additional: app.Config.Gate.AdditionalNames,
				Ignored:    app.Config.Gate.IgnoredNames,
			}

			return app.Presenter.RenderRules(view)
		},
	}

	return cmd
}
