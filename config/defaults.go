package config

import "github.com/spf13/viper"

// setDefaults sets all default configuration values.
func setDefaults(v *viper.Viper) {
	// Gate defaults. The built-in denylist lives in core/gate; config
	// only carries deltas against it.
	v.SetDefault("gate.additional_names", []string{})
	v.SetDefault("gate.ignored_names", []string{})
	v.SetDefault("gate.deny_message", "")

	// Display defaults
	v.SetDefault("display.colors", "auto")
}
