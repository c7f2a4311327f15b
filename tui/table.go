package tui

import (
	"fmt"
	"io"
	"sort"
)

// TablePresenter renders output in a human-readable format.
type TablePresenter struct {
	w     io.Writer
	style *Styler
}

// NewTablePresenter creates a new table presenter.
func NewTablePresenter(opts PresenterOptions) *TablePresenter {
	return &TablePresenter{
		w:     opts.Writer,
		style: NewStyler(opts.UseColors),
	}
}

// RenderStatus renders the tool status.
func (p *TablePresenter) RenderStatus(status *StatusView) error {
	fmt.Fprintf(p.w, "%s\n\n", p.style.Header("readfence "+status.Version))

	fmt.Fprintf(p.w, "%s\n", p.style.Header("Agents"))
	for _, agent := range status.Agents {
		statusStr := "not found"
		hooksStr := "-"
		if agent.Installed {
			statusStr = "installed"
			if agent.HooksActive {
				hooksStr = fmt.Sprintf("hook active (%d)", len(agent.Hooks))
			} else {
				hooksStr = "hook not active"
			}
		}
		fmt.Fprintf(p.w, "  %-12s %-12s %-10s %s\n",
			p.style.Agent(agent.Name), statusStr, orDash(agent.Version), hooksStr)
		for _, issue := range agent.Issues {
			fmt.Fprintf(p.w, "    %s\n", p.style.Warn(issue))
		}
	}
	fmt.Fprintln(p.w)

	fmt.Fprintf(p.w, "%s\n", p.style.Header("Rules"))
	fmt.Fprintf(p.w, "  %-12s %d\n", "Built-in", status.Rules.Builtin)
	fmt.Fprintf(p.w, "  %-12s %d\n", "Additional", status.Rules.Additional)
	fmt.Fprintf(p.w, "  %-12s %d\n", "Ignored", status.Rules.Ignored)
	fmt.Fprintln(p.w)

	fmt.Fprintf(p.w, "%s\n", p.style.Header("Config"))
	location := status.Config.Location
	if !status.Config.Exists {
		location += " (not present, using defaults)"
	}
	fmt.Fprintf(p.w, "  %-12s %s\n", "Location", p.style.Path(location))

	return nil
}

// RenderInstall renders the installation result.
func (p *TablePresenter) RenderInstall(result *InstallView) error {
	if result.DryRun {
		fmt.Fprintf(p.w, "%s\n\n", p.style.Warn("Dry run: no changes made"))
	}

	for _, agent := range result.Agents {
		if agent.Error != "" {
			fmt.Fprintf(p.w, "%s  %s\n", p.style.Agent(agent.DisplayName), p.style.Deny(agent.Error))
			continue
		}
		if !agent.Installed {
			fmt.Fprintf(p.w, "%s  not found, skipped\n", p.style.Agent(agent.DisplayName))
			continue
		}

		fmt.Fprintf(p.w, "%s  %s\n", p.style.Agent(agent.DisplayName), p.style.Allow("hooks installed"))
		for _, hook := range agent.HooksInstalled {
			fmt.Fprintf(p.w, "  %s\n", hook)
		}
		for name, path := range agent.BackupPaths {
			fmt.Fprintf(p.w, "  backed up %s to %s\n", name, p.style.Path(path))
		}
		for _, warning := range agent.Warnings {
			fmt.Fprintf(p.w, "  %s\n", p.style.Warn(warning))
		}
	}

	return nil
}

// RenderUninstall renders the uninstallation result.
func (p *TablePresenter) RenderUninstall(result *UninstallView) error {
	if result.DryRun {
		fmt.Fprintf(p.w, "%s\n\n", p.style.Warn("Dry run: no changes made"))
	}

	for _, agent := range result.Agents {
		if agent.Error != "" {
			fmt.Fprintf(p.w, "%s  %s\n", p.style.Agent(agent.DisplayName), p.style.Deny(agent.Error))
			continue
		}
		if len(agent.HooksRemoved) == 0 {
			fmt.Fprintf(p.w, "%s  no hooks to remove\n", p.style.Agent(agent.DisplayName))
			continue
		}
		fmt.Fprintf(p.w, "%s  %s\n", p.style.Agent(agent.DisplayName), p.style.Allow("hooks removed"))
		for _, hook := range agent.HooksRemoved {
			fmt.Fprintf(p.w, "  %s\n", hook)
		}
	}

	return nil
}

// RenderDoctor renders the doctor check results.
func (p *TablePresenter) RenderDoctor(result *DoctorView) error {
	for _, check := range result.Checks {
		marker := p.style.Allow("[ok]")
		if !check.OK {
			marker = p.style.Deny("[!!]")
		}
		fmt.Fprintf(p.w, "%s %s", marker, check.Name)
		if check.Detail != "" {
			fmt.Fprintf(p.w, " - %s", check.Detail)
		}
		fmt.Fprintln(p.w)
	}
	return nil
}

// RenderCheck renders manual classification results.
func (p *TablePresenter) RenderCheck(result *CheckView) error {
	for _, r := range result.Results {
		verdict := p.style.Allow("allow")
		if r.Sensitive {
			verdict = p.style.Deny("deny")
		}
		fmt.Fprintf(p.w, "%-6s %s\n", verdict, p.style.Path(r.Path))
	}
	return nil
}

// RenderRules renders the effective denylist.
func (p *TablePresenter) RenderRules(rules *RulesView) error {
	fmt.Fprintf(p.w, "%s\n", p.style.Header(fmt.Sprintf("Built-in (%d)", len(rules.Builtin))))
	for _, name := range sorted(rules.Builtin) {
		fmt.Fprintf(p.w, "  %s\n", name)
	}

	if len(rules.Additional) > 0 {
		fmt.Fprintf(p.w, "\n%s\n", p.style.Header(fmt.Sprintf("Additional (%d)", len(rules.Additional))))
		for _, name := range sorted(rules.Additional) {
			fmt.Fprintf(p.w, "  %s\n", name)
		}
	}

	if len(rules.Ignored) > 0 {
		fmt.Fprintf(p.w, "\n%s\n", p.style.Header(fmt.Sprintf("Ignored (%d)", len(rules.Ignored))))
		for _, name := range sorted(rules.Ignored) {
			fmt.Fprintf(p.w, "  %s\n", p.style.Warn(name))
		}
	}

	return nil
}

// RenderConfig renders the configuration settings.
func (p *TablePresenter) RenderConfig(config *ConfigView) error {
	fmt.Fprintf(p.w, "%s\n", p.style.Header("Config"))
	fmt.Fprintf(p.w, "  %-12s %s\n\n", "Location", p.style.Path(config.Location))

	keys := make([]string, 0, len(config.Settings))
	for key := range config.Settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(p.w, "  %-12s %v\n", key, config.Settings[key])
	}

	return nil
}

// RenderMessage renders a simple message.
func (p *TablePresenter) RenderMessage(message string) error {
	fmt.Fprintln(p.w, message)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func sorted(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return out
}
