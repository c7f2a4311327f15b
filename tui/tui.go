// Package tui provides the presentation layer for terminal output.
package tui

import (
	"io"
	"os"
)

// Format represents the output format.
type Format string

const (
	// FormatTable is the default human-readable format.
	FormatTable Format = "table"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
)

// Presenter defines the interface for output rendering.
type Presenter interface {
	// RenderStatus renders the tool status.
	RenderStatus(status *StatusView) error

	// RenderInstall renders the installation result.
	RenderInstall(result *InstallView) error

	// RenderUninstall renders the uninstallation result.
	RenderUninstall(result *UninstallView) error

	// RenderDoctor renders the doctor check results.
	RenderDoctor(result *DoctorView) error

	// RenderCheck renders manual classification results.
	RenderCheck(result *CheckView) error

	// RenderRules renders the effective denylist.
	RenderRules(rules *RulesView) error

	// RenderConfig renders the configuration settings.
	RenderConfig(config *ConfigView) error

	// RenderMessage renders a simple message.
	RenderMessage(message string) error
}

// PresenterOptions configures presenter behavior.
type PresenterOptions struct {
	// Writer is the output destination.
	Writer io.Writer
	// UseColors indicates if colors should be used.
	UseColors bool
}

// NewPresenter creates a new presenter for the given format.
func NewPresenter(format Format, opts PresenterOptions) Presenter {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	switch format {
	case FormatJSON:
		return NewJSONPresenter(opts)
	default:
		return NewTablePresenter(opts)
	}
}
