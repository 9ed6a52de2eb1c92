package config

import "strings"

// Deployment-mode overlays. Each mode is just another overlay applied last,
// so a key set here always wins over the defaults, the caller-supplied
// source, and the config file.
var modes = map[string]Overlay{
	ModeDevelopment: {
		App: AppOverlay{Debug: Bool(true)},
		Server: ServerOverlay{
			Host: String("127.0.0.1"),
		},
		Logging: LoggingOverlay{Level: String("debug")},
	},
	ModeProduction: {
		App: AppOverlay{Debug: Bool(false)},
		Database: DatabaseOverlay{
			PingOnStart: Bool(true),
		},
		Logging: LoggingOverlay{
			Level:  String("info"),
			Format: String("json"),
		},
	},
	ModeStaging: {
		App: AppOverlay{Debug: Bool(false)},
		Logging: LoggingOverlay{
			Level:  String("debug"),
			Format: String("json"),
		},
	},
	ModeTesting: {
		App: AppOverlay{Testing: Bool(true)},
		Database: DatabaseOverlay{
			Enabled: Bool(false),
		},
		Mail:    MailOverlay{Enabled: Bool(false)},
		Logging: LoggingOverlay{Level: String("error")},
	},
}

// ResolveMode normalizes a deployment-mode name. Empty or unrecognized
// values resolve to ModeDevelopment.
func ResolveMode(name string) string {
	mode := strings.ToUpper(strings.TrimSpace(name))
	if _, ok := modes[mode]; !ok {
		return ModeDevelopment
	}
	return mode
}
