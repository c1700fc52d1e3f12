package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Global  GlobalConfig  `yaml:"global"`
	Grocery GroceryConfig `yaml:"grocery"`
	Recipes RecipesConfig `yaml:"recipes"`
}

type GlobalConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

type GroceryConfig struct {
	Enabled bool   `yaml:"enabled"`
	APIURL  string `yaml:"api_url"`

	// Session credentials are only accepted from the environment, never from
	// the config file.
	SessionCookie    string `yaml:"-"`
	SessionSignature string `yaml:"-"`

	StoreID        string `yaml:"store_id"`
	DefaultListID  string `yaml:"default_list_id"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent"`
}

type RecipesConfig struct {
	Enabled        bool   `yaml:"enabled"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent"`
}

func DefaultConfig() *Config {
	return &Config{
		Global: GlobalConfig{
			LogLevel:  "info",
			LogFormat: "json",
		},
		Grocery: GroceryConfig{
			Enabled:        true,
			APIURL:         "https://www.heb.com/graphql",
			TimeoutSeconds: 10,
			UserAgent:      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		},
		Recipes: RecipesConfig{
			Enabled:        true,
			BaseURL:        "https://www.allrecipes.com",
			TimeoutSeconds: 15,
			UserAgent:      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		},
	}
}

func LoadConfig(path string) (*Config, error) {
	// Credentials may live in a .env next to the binary; missing files are fine.
	_ = godotenv.Load()

	config := DefaultConfig()

	if path == "" {
		configDir, err := os.UserConfigDir()
		if err == nil {
			path = filepath.Join(configDir, "grocery-mcps", "config.yaml")
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, err
			}
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

func applyEnvOverrides(config *Config) {
	if v := os.Getenv("GROCERY_MCP_LOG_LEVEL"); v != "" {
		config.Global.LogLevel = v
	}
	if v := os.Getenv("GROCERY_MCP_LOG_FORMAT"); v != "" {
		config.Global.LogFormat = v
	}
	if v := os.Getenv("GROCERY_MCP_API_URL"); v != "" {
		config.Grocery.APIURL = v
	}
	if v := os.Getenv("GROCERY_MCP_SESSION_COOKIE"); v != "" {
		config.Grocery.SessionCookie = v
	}
	if v := os.Getenv("GROCERY_MCP_SESSION_SIGNATURE"); v != "" {
		config.Grocery.SessionSignature = v
	}
	if v := os.Getenv("GROCERY_MCP_STORE_ID"); v != "" {
		config.Grocery.StoreID = v
	}
	if v := os.Getenv("GROCERY_MCP_DEFAULT_LIST_ID"); v != "" {
		config.Grocery.DefaultListID = v
	}
	if v := os.Getenv("GROCERY_MCP_TIMEOUT_SECONDS"); v != "" {
		if timeout, err := strconv.Atoi(v); err == nil {
			config.Grocery.TimeoutSeconds = timeout
		}
	}
	if v := os.Getenv("RECIPE_MCP_BASE_URL"); v != "" {
		config.Recipes.BaseURL = v
	}
	if v := os.Getenv("RECIPE_MCP_TIMEOUT_SECONDS"); v != "" {
		if timeout, err := strconv.Atoi(v); err == nil {
			config.Recipes.TimeoutSeconds = timeout
		}
	}
}

// ValidateGrocery checks the parameters the grocery server cannot run without.
// Callers treat a failure here as fatal at startup.
func (c *Config) ValidateGrocery() error {
	if c.Grocery.SessionCookie == "" {
		return fmt.Errorf("GROCERY_MCP_SESSION_COOKIE is required")
	}
	if c.Grocery.SessionSignature == "" {
		return fmt.Errorf("GROCERY_MCP_SESSION_SIGNATURE is required")
	}
	if c.Grocery.StoreID == "" {
		return fmt.Errorf("store id is required (GROCERY_MCP_STORE_ID or config file)")
	}
	if c.Grocery.APIURL == "" {
		return fmt.Errorf("grocery api url must not be empty")
	}
	return nil
}

func (c *Config) ValidateRecipes() error {
	if c.Recipes.BaseURL == "" {
		return fmt.Errorf("recipe base url must not be empty")
	}
	return nil
}
