package cli

import (
	"github.com/safedep/readfence/core/gate"
	"github.com/safedep/readfence/tui"
	"github.com/spf13/cobra"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Classify paths against the sensitive-filename denylist",
		Long: `Classify paths against the sensitive-filename denylist.

Runs the same classifier the beforeReadFile hook uses. The exit code is
non-zero when any path is sensitive, which makes the command usable from
scripts and CI.`,
		Example: `  readfence check /home/user/.env
  readfence check secrets.json notes.txt
  readfence check --format json $(git ls-files)`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			view := &tui.CheckView{}
			sensitiveCount := 0
			for _, path := range args {
				sensitive := app.Gate.Sensitive(path)
				if sensitive {
					sensitiveCount++
				}
				view.Results = append(view.Results, tui.CheckResultView{
					Path:      path,
					Filename:  gate.BaseName(path),
					Sensitive: sensitive,
				})
			}

			if err := app.Presenter.RenderCheck(view); err != nil {
				return err
			}

			if sensitiveCount > 0 {
				return ErrSensitive(sensitiveCount)
			}
			return nil
		},
	}

	return cmd
}
