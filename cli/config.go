package cli

import (
	"fmt"
	"os"

	"github.com/safedep/readfence/config"
	"github.com/safedep/readfence/tui"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command with its subcommands.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage readfence configuration",
		Long: `Manage readfence configuration.

Configuration adjusts the denylist (additional and ignored names) and
display settings. It never changes the matching semantics: names are
always matched exactly, case-insensitively, against the base filename.`,
		Example: `  readfence config show
  readfence config get gate.deny_message
  readfence config set gate.additional_names [notes.txt,scratch.env]
  readfence config reset`,
	}

	cmd.AddCommand(
		newConfigShowCmd(),
		newConfigGetCmd(),
		newConfigSetCmd(),
		newConfigResetCmd(),
	)

	return cmd
}

func configManager() (*config.Manager, error) {
	path := globalFlags.ConfigPath
	if path == "" {
		path = config.ResolvePaths().ConfigFile
	}

	manager, err := config.NewManager(path)
	if err != nil {
		return nil, ErrConfig("failed to load configuration", err)
	}
	return manager, nil
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show all configuration values",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			manager, err := configManager()
			if err != nil {
				return err
			}

			return app.Presenter.RenderConfig(&tui.ConfigView{
				Location: manager.ConfigPath(),
				Settings: manager.AllSettings(),
			})
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			manager, err := configManager()
			if err != nil {
				return err
			}

			key := args[0]
			if !manager.HasKey(key) {
				return ErrConfig(fmt.Sprintf("unknown config key: %s", key), nil)
			}

			return app.Presenter.RenderMessage(fmt.Sprintf("%v", manager.Get(key)))
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value and persist it.

List values use bracket syntax: [a,b,c]. An empty list is [].
Values that would break the gate contract (paths or glob patterns in
name lists) are rejected.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			manager, err := configManager()
			if err != nil {
				return err
			}

			key := args[0]
			if !manager.HasKey(key) {
				return ErrConfig(fmt.Sprintf("unknown config key: %s", key), nil)
			}

			value := config.ParseValue(args[1])
			if err := manager.Set(key, value); err != nil {
				return ErrConfig(fmt.Sprintf("failed to set %s", key), err)
			}

			return app.Presenter.RenderMessage(fmt.Sprintf("%s = %v", key, value))
		},
	}
}

func newConfigResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Reset is the recovery path for a broken config file, so it
			// must not insist on parsing it first.
			path := globalFlags.ConfigPath
			if path == "" {
				path = config.ResolvePaths().ConfigFile
			}

			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				return ErrConfig("failed to reset configuration", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "configuration reset to defaults")
			return nil
		},
	}
}
