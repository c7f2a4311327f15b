package cli

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/safedep/readfence/agent"
	"github.com/safedep/readfence/agent/cursor"
	"github.com/safedep/readfence/config"
	"github.com/safedep/readfence/core/gate"
	"github.com/safedep/readfence/tui"
	"github.com/spf13/cobra"
)

// NewDoctorCmd creates the doctor command.
func NewDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the readfence installation",
		Long: `Diagnose the readfence installation.

Verifies the configuration, the effective denylist, the readfence
binary on PATH, and the hook registration for every supported agent.
Doctor keeps going past failures so one broken piece does not hide
the rest of the report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			view := &tui.DoctorView{}
			healthy := true

			// Doctor must report a broken config rather than die on it, so
			// it builds its own presenter instead of going through loadApp.
			cfg, err := config.Load(globalFlags.ConfigPath)
			if err != nil {
				healthy = false
				cfg = config.Default()
				view.Checks = append(view.Checks, tui.DoctorCheckView{
					Name:   "configuration",
					OK:     false,
					Detail: err.Error(),
				})
			} else {
				paths := config.ResolvePaths()
				detail := paths.ConfigFile
				if !fileExists(paths.ConfigFile) {
					detail = "no config file, using defaults"
				}
				view.Checks = append(view.Checks, tui.DoctorCheckView{
					Name:   "configuration",
					OK:     true,
					Detail: detail,
				})
			}

			g := gate.New(gate.Options{
				AdditionalNames: cfg.Gate.AdditionalNames,
				IgnoredNames:    cfg.Gate.IgnoredNames,
				DenyMessage:     cfg.Gate.DenyMessage,
			})

			denylistCheck := tui.DoctorCheckView{
				Name:   "denylist",
				OK:     true,
				Detail: fmt.Sprintf("%d names active", len(g.Names())),
			}
			// An empty denylist means every read is allowed. Legal, but
			// almost certainly a misconfiguration.
			if len(g.Names()) == 0 {
				healthy = false
				denylistCheck.OK = false
				denylistCheck.Detail = "denylist is empty, all reads will be allowed"
			}
			view.Checks = append(view.Checks, denylistCheck)

			binaryCheck := tui.DoctorCheckView{Name: "binary"}
			if path, err := exec.LookPath("readfence"); err == nil {
				binaryCheck.OK = true
				binaryCheck.Detail = path
			} else {
				healthy = false
				binaryCheck.Detail = "readfence not on PATH, installed hooks will not run"
			}
			view.Checks = append(view.Checks, binaryCheck)

			registry := agent.NewRegistry()
			cursor.Register(registry)

			for _, adapter := range registry.All() {
				check := agentCheck(ctx, adapter)
				if !check.OK {
					healthy = false
				}
				view.Checks = append(view.Checks, check)
			}

			presenter := tui.NewPresenter(getFormat(globalFlags.Format), tui.PresenterOptions{
				Writer:    cmd.OutOrStdout(),
				UseColors: shouldUseColors(cfg, cmd.OutOrStdout()),
			})
			if err := presenter.RenderDoctor(view); err != nil {
				return err
			}

			if !healthy {
				return NewCLIError(ExitGeneral, "one or more checks failed")
			}
			return nil
		},
	}

	return cmd
}

func agentCheck(ctx context.Context, adapter agent.Adapter) tui.DoctorCheckView {
	check := tui.DoctorCheckView{Name: fmt.Sprintf("agent %s", adapter.Name())}

	detection, err := adapter.Detect(ctx)
	if err != nil {
		check.Detail = err.Error()
		return check
	}
	if !detection.Installed {
		check.OK = true
		check.Detail = "not installed, skipped"
		return check
	}

	status, err := adapter.Status(ctx)
	if err != nil {
		check.Detail = err.Error()
		return check
	}

	switch {
	case !status.Installed:
		check.Detail = "hook not installed, run: readfence install"
	case !status.Valid:
		check.Detail = "hooks file has issues"
		if len(status.Issues) > 0 {
			check.Detail = status.Issues[0]
		}
	default:
		check.OK = true
		check.Detail = fmt.Sprintf("hook active for %v", status.Hooks)
	}

	return check
}
