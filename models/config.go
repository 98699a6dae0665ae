package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultBoardURL is the forum this scraper models.
const DefaultBoardURL = "https://rara.jp/hotaruika-toyama/"

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Duration wraps time.Duration so YAML configs can say "3s" or "500ms".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds runtime configuration for a scraping run. It is loaded once
// and passed into constructors; nothing reads it ambiently.
type Config struct {
	BaseURL      string    `yaml:"base_url"`
	UserAgent    string    `yaml:"user_agent"`
	MaxPages     int       `yaml:"max_pages"`
	PageDelay    Duration  `yaml:"page_delay"`
	OutputPath   string    `yaml:"output_path"`
	DatabasePath string    `yaml:"database_path"`
	SkipForeign  bool      `yaml:"skip_foreign"`
	LLM          LLMConfig `yaml:"llm"`
}

// LLMConfig configures the optional remote classifier. The adapter runs in
// local-only mode when no API key resolves.
type LLMConfig struct {
	APIKey      string   `yaml:"api_key"`
	APIKeyEnv   string   `yaml:"api_key_env"`
	BaseURL     string   `yaml:"base_url"`
	Model       string   `yaml:"model"`
	MaxAttempts int      `yaml:"max_attempts"`
	Backoff     Duration `yaml:"backoff"`
	Timeout     Duration `yaml:"timeout"`
}

// Configured reports whether a remote classifier can be constructed.
func (c LLMConfig) Configured() bool {
	return c.APIKey != ""
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:      DefaultBoardURL,
		UserAgent:    defaultUserAgent,
		MaxPages:     5,
		PageDelay:    Duration(3 * time.Second),
		OutputPath:   "hotaruika_surge_data.csv",
		DatabasePath: "hotaruika-surge.db",
		LLM: LLMConfig{
			APIKeyEnv:   "GROK_API_KEY",
			BaseURL:     "https://api.x.ai/v1",
			Model:       "grok-3",
			MaxAttempts: 3,
			Backoff:     Duration(time.Second),
			Timeout:     Duration(30 * time.Second),
		},
	}
}

// LoadConfig reads a YAML config file, applies defaults for unset fields,
// and resolves the API key from the environment when api_key is empty.
// A missing file is not an error; defaults apply.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.resolveAPIKey()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBoardURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 5
	}
	if cfg.PageDelay <= 0 {
		cfg.PageDelay = Duration(3 * time.Second)
	}
	if cfg.LLM.MaxAttempts <= 0 {
		cfg.LLM.MaxAttempts = 3
	}
	if cfg.LLM.Backoff <= 0 {
		cfg.LLM.Backoff = Duration(time.Second)
	}
	if cfg.LLM.Timeout <= 0 {
		cfg.LLM.Timeout = Duration(30 * time.Second)
	}

	cfg.resolveAPIKey()
	return cfg, nil
}

func (c *Config) resolveAPIKey() {
	if c.LLM.APIKey == "" && c.LLM.APIKeyEnv != "" {
		c.LLM.APIKey = os.Getenv(c.LLM.APIKeyEnv)
	}
}
