package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"pokerdrills-server/internal/util"
)

// Config provides configuration for the poker drills server
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
	Drill struct {
		HighRankingOdds int      `yaml:"highRankingOdds" envconfig:"high_ranking_odds"`
		MaxRetries      int      `yaml:"maxRetries" envconfig:"max_retries"`
		Pockets         []string `yaml:"pockets" envconfig:"pockets"`
		// Seed makes problem generation reproducible. Zero uses crypto/rand.
		Seed int64 `yaml:"seed" envconfig:"seed"`
	} `yaml:"drill"`
}

var config Config

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	var cfg Config
	cfg.Addr = ":5000"
	cfg.Log.Level = "info"
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.Drill.HighRankingOdds = 5
	cfg.Drill.MaxRetries = 500
	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults and environment are used instead.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("PD_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("pd", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
