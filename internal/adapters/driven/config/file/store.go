// Package file is the TOML-backed settings adapter. Environment variables
// are authoritative; the config file only fills in values the environment
// leaves unset.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/foundry-cli/internal/core/domain"
	"github.com/custodia-labs/foundry-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.SettingsStore = (*Store)(nil)

// Environment variable names.
const (
	EnvProjectEndpoint     = "AZURE_AI_PROJECT_ENDPOINT"
	EnvSearchEndpoint      = "AZURE_AI_SEARCH_ENDPOINT"
	EnvSearchIndexName     = "AZURE_AI_SEARCH_INDEX_NAME"
	EnvOpenAIEndpoint      = "AZURE_OPENAI_ENDPOINT"
	EnvEmbeddingModel      = "AZURE_OPENAI_EMBEDDING_MODEL"
	EnvEmbeddingDimensions = "AZURE_OPENAI_EMBEDDING_DIMENSIONS"
	EnvCompletionModel     = "AZURE_OPENAI_COMPLETION_MODEL_NAME"
	EnvOpenAIAPIVersion    = "AZURE_OPENAI_API_VERSION"
	EnvRunningInProduction = "RUNNING_IN_PRODUCTION"
	EnvClientID            = "AZURE_CLIENT_ID"
	EnvAppInsights         = "APPLICATIONINSIGHTS_CONNECTION_STRING"

	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "FOUNDRY_CONFIG"
)

// fileConfig mirrors the TOML schema.
type fileConfig struct {
	Azure struct {
		ProjectEndpoint     string `toml:"project_endpoint"`
		SearchEndpoint      string `toml:"search_endpoint"`
		SearchIndexName     string `toml:"search_index_name"`
		OpenAIEndpoint      string `toml:"openai_endpoint"`
		EmbeddingModel      string `toml:"embedding_model"`
		EmbeddingDimensions int    `toml:"embedding_dimensions"`
		CompletionModel     string `toml:"completion_model"`
		OpenAIAPIVersion    string `toml:"openai_api_version"`
	} `toml:"azure"`
	Workflow struct {
		AgentRunTimeout string `toml:"agent_run_timeout"`
	} `toml:"workflow"`
}

// Store loads settings from the environment and an optional TOML file.
type Store struct {
	path string
}

// NewStore creates a settings store. An empty path resolves to
// $FOUNDRY_CONFIG, falling back to ~/.foundry/config.toml.
func NewStore(path string) *Store {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".foundry", "config.toml")
		}
	}
	return &Store{path: path}
}

// Path returns the resolved config file path.
func (s *Store) Path() string {
	return s.path
}

// Load resolves the settings. File values fill in defaults first, then the
// environment overrides everything it sets. A missing file is not an error.
func (s *Store) Load() (domain.Settings, error) {
	settings := domain.DefaultSettings()

	if err := s.applyFile(&settings); err != nil {
		return domain.Settings{}, err
	}
	if err := applyEnv(&settings); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

func (s *Store) applyFile(settings *domain.Settings) error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file %s: %w", s.path, err)
	}

	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", s.path, err)
	}

	setString(&settings.ProjectEndpoint, cfg.Azure.ProjectEndpoint)
	setString(&settings.SearchEndpoint, cfg.Azure.SearchEndpoint)
	setString(&settings.SearchIndexName, cfg.Azure.SearchIndexName)
	setString(&settings.OpenAIEndpoint, cfg.Azure.OpenAIEndpoint)
	setString(&settings.EmbeddingModel, cfg.Azure.EmbeddingModel)
	setString(&settings.CompletionModel, cfg.Azure.CompletionModel)
	setString(&settings.OpenAIAPIVersion, cfg.Azure.OpenAIAPIVersion)
	if cfg.Azure.EmbeddingDimensions > 0 {
		settings.EmbeddingDimensions = cfg.Azure.EmbeddingDimensions
	}
	if cfg.Workflow.AgentRunTimeout != "" {
		timeout, err := time.ParseDuration(cfg.Workflow.AgentRunTimeout)
		if err != nil {
			return fmt.Errorf("parse agent_run_timeout in %s: %w", s.path, err)
		}
		settings.AgentRunTimeout = timeout
	}
	return nil
}

func applyEnv(settings *domain.Settings) error {
	setString(&settings.ProjectEndpoint, os.Getenv(EnvProjectEndpoint))
	setString(&settings.SearchEndpoint, os.Getenv(EnvSearchEndpoint))
	setString(&settings.SearchIndexName, os.Getenv(EnvSearchIndexName))
	setString(&settings.OpenAIEndpoint, os.Getenv(EnvOpenAIEndpoint))
	setString(&settings.EmbeddingModel, os.Getenv(EnvEmbeddingModel))
	setString(&settings.CompletionModel, os.Getenv(EnvCompletionModel))
	setString(&settings.OpenAIAPIVersion, os.Getenv(EnvOpenAIAPIVersion))
	setString(&settings.ClientID, os.Getenv(EnvClientID))
	setString(&settings.AppInsightsConnString, os.Getenv(EnvAppInsights))

	if raw := os.Getenv(EnvEmbeddingDimensions); raw != "" {
		dimensions, err := strconv.Atoi(raw)
		if err != nil || dimensions <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %q", EnvEmbeddingDimensions, raw)
		}
		settings.EmbeddingDimensions = dimensions
	}
	settings.RunningInProduction = strings.EqualFold(os.Getenv(EnvRunningInProduction), "true")
	return nil
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
