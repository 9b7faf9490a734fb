package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the persisted application settings. It is loaded once at
// startup and passed explicitly to whatever needs it; there is no ambient
// global.
type Config struct {
	Model            string  `json:"model"`
	BaseURL          string  `json:"base_url"`
	OutputFormat     string  `json:"output_format"`
	Language         string  `json:"language"`
	TemplatesDir     string  `json:"templates_dir"`
	PromptsPath      string  `json:"prompts_config"`
	MaxTokens        int     `json:"max_tokens"`
	Temperature      float64 `json:"temperature"`
	TopP             float64 `json:"top_p"`
	TopK             int     `json:"top_k"`
	PresencePenalty  float64 `json:"presence_penalty"`
	FrequencyPenalty float64 `json:"frequency_penalty"`
	// KeepReasoning leaves any delimited thinking asides in the generated
	// text instead of stripping them.
	KeepReasoning    bool    `json:"keep_reasoning"`
	PathFile         string  `json:"path_file"`
}

const (
	defaultModel       = "gemma3:12b"
	defaultBaseURL     = "http://localhost:11434"
	defaultFormat      = "jira"
	defaultLang        = "en"
	defaultTemplates   = "templates"
	defaultPrompts     = "prompts.json"
	defaultMaxTokens   = 500
	defaultTemperature = 0.8
	defaultTopP        = 0.9
	defaultTopK        = 40
)

// LoadConfig loads the config file under path. When path points to a
// directory, the file lives at <path>/.template-drafter/config.json and is
// created with defaults if absent.
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".template-drafter")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create config directory: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}
	config.PathFile = configPath
	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("loaded config is not valid: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{PathFile: path}
	applyDefaults(config)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to save default config: %w", err)
	}

	return config, nil
}

// SaveConfig persists the config back to the file it was loaded from.
func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("config to save is not valid: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("config file path is not set")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

func applyDefaults(config *Config) {
	if config.Model == "" {
		config.Model = defaultModel
	}
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.OutputFormat == "" {
		config.OutputFormat = defaultFormat
	}
	if config.Language == "" {
		config.Language = defaultLang
	}
	if config.TemplatesDir == "" {
		config.TemplatesDir = defaultTemplates
	}
	if config.PromptsPath == "" {
		config.PromptsPath = defaultPrompts
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = defaultMaxTokens
	}
	if config.Temperature == 0 {
		config.Temperature = defaultTemperature
	}
	if config.TopP == 0 {
		config.TopP = defaultTopP
	}
	if config.TopK == 0 {
		config.TopK = defaultTopK
	}
}

func validateConfig(config *Config) error {
	if config.Model == "" {
		return errors.New("model must not be empty")
	}
	if config.BaseURL == "" {
		return errors.New("base_url must not be empty")
	}
	if config.MaxTokens <= 0 {
		return errors.New("max_tokens must be greater than 0")
	}
	if config.OutputFormat != "jira" && config.OutputFormat != "adoc" {
		return fmt.Errorf("unsupported output format: %s", config.OutputFormat)
	}
	return nil
}
