package driven

import "github.com/custodia-labs/foundry-cli/internal/core/domain"

// SettingsStore loads the runtime configuration. Environment variables are
// authoritative; file-backed stores only fill in unset values.
type SettingsStore interface {
	// Load resolves the settings from all configured sources.
	Load() (domain.Settings, error)
}
