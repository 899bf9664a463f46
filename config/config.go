package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to key names for environment variable lookup.
const EnvPrefix = "ARTICLEFLOW_"

// Config is the full process configuration.
type Config struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`

	// DatabasePath is the SQLite file; ":memory:" keeps everything
	// in-process.
	DatabasePath string `yaml:"database_path"`

	// AssetsDir is where generated images are written.
	AssetsDir string `yaml:"assets_dir"`

	// AssetsBaseURL is the public prefix exported articles use to
	// reference images.
	AssetsBaseURL string `yaml:"assets_base_url"`

	LLM       LLMConfig       `yaml:"llm"`
	Images    ImagesConfig    `yaml:"images"`
	Webhook   WebhookConfig   `yaml:"webhook"`
	WordPress WordPressConfig `yaml:"wordpress"`
}

// LLMConfig configures the text-generation provider.
type LLMConfig struct {
	Model    string `yaml:"model"`
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url"`
}

// ImagesConfig configures illustration generation.
type ImagesConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Size    string `yaml:"size"`
	Quality string `yaml:"quality"`
}

// WebhookConfig configures the optional event webhook.
type WebhookConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}

// WordPressConfig configures the optional WordPress export target.
// Export stays disabled while BaseURL is empty.
type WordPressConfig struct {
	BaseURL     string `yaml:"base_url"`
	Username    string `yaml:"username"`
	AppPassword string `yaml:"app_password"`
	Status      string `yaml:"status"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Listen:        ":8080",
		DatabasePath:  "articleflow.db",
		AssetsDir:     "uploads/images",
		AssetsBaseURL: "/uploads/images",
		LLM: LLMConfig{
			Model:    "claude-sonnet-4-20250514",
			Provider: "anthropic",
		},
		Images: ImagesConfig{
			Size:    "1024x1024",
			Quality: "standard",
		},
	}
}

// Load resolves configuration from defaults, the YAML file at path (if
// path is non-empty; a missing file is only an error when explicitly
// named), and ARTICLEFLOW_* environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	set := func(key string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}
	set("LISTEN", &cfg.Listen)
	set("DATABASE_PATH", &cfg.DatabasePath)
	set("ASSETS_DIR", &cfg.AssetsDir)
	set("ASSETS_BASE_URL", &cfg.AssetsBaseURL)
	set("LLM_MODEL", &cfg.LLM.Model)
	set("LLM_PROVIDER", &cfg.LLM.Provider)
	set("LLM_API_KEY", &cfg.LLM.APIKey)
	set("LLM_BASE_URL", &cfg.LLM.BaseURL)
	set("IMAGES_API_KEY", &cfg.Images.APIKey)
	set("IMAGES_BASE_URL", &cfg.Images.BaseURL)
	set("IMAGES_SIZE", &cfg.Images.Size)
	set("IMAGES_QUALITY", &cfg.Images.Quality)
	set("WEBHOOK_URL", &cfg.Webhook.URL)
	set("WEBHOOK_TOKEN", &cfg.Webhook.Token)
	set("WORDPRESS_BASE_URL", &cfg.WordPress.BaseURL)
	set("WORDPRESS_USERNAME", &cfg.WordPress.Username)
	set("WORDPRESS_APP_PASSWORD", &cfg.WordPress.AppPassword)
	set("WORDPRESS_STATUS", &cfg.WordPress.Status)
}

func (c Config) validate() error {
	if c.Listen == "" {
		return errors.New("config: listen address is empty")
	}
	if c.DatabasePath == "" {
		return errors.New("config: database path is empty")
	}
	if c.Images.Quality != "standard" && c.Images.Quality != "hd" {
		return fmt.Errorf("config: image quality %q (want standard or hd)", c.Images.Quality)
	}
	if _, _, err := splitSize(c.Images.Size); err != nil {
		return err
	}
	return nil
}

func splitSize(size string) (w, h int, err error) {
	var sw, sh string
	for i := 0; i < len(size); i++ {
		if size[i] == 'x' {
			sw, sh = size[:i], size[i+1:]
			break
		}
	}
	if sw == "" || sh == "" {
		return 0, 0, fmt.Errorf("config: image size %q (want WxH)", size)
	}
	if w, err = strconv.Atoi(sw); err != nil {
		return 0, 0, fmt.Errorf("config: image size %q (want WxH)", size)
	}
	if h, err = strconv.Atoi(sh); err != nil {
		return 0, 0, fmt.Errorf("config: image size %q (want WxH)", size)
	}
	return w, h, nil
}
