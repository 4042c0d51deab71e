package config

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store    StoreConfig    `yaml:"store" mapstructure:"store"`
	Analysis AnalysisConfig `yaml:"analysis" mapstructure:"analysis"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Batch    BatchConfig    `yaml:"batch" mapstructure:"batch"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the analysis history backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	Path        string `yaml:"path" mapstructure:"path"`
}

// AnalysisConfig tunes the analyzer.
type AnalysisConfig struct {
	MaxRecommendations int `yaml:"max_recommendations" mapstructure:"max_recommendations"`
}

// OutputConfig selects how results are rendered.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
	Color  bool   `yaml:"color" mapstructure:"color"`
}

// BatchConfig configures batch processing.
type BatchConfig struct {
	MaxConcurrent int `yaml:"max_concurrent" mapstructure:"max_concurrent"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Output formats accepted by output.format.
var OutputFormats = []string{"human", "json", "yaml", "csv", "xlsx"}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("FINHEALTH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "finhealth.db")
	v.SetDefault("analysis.max_recommendations", 10)
	v.SetDefault("output.format", "human")
	v.SetDefault("output.color", true)
	v.SetDefault("batch.max_concurrent", 4)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the settings a command depends on. mode is one of
// "analyze", "batch", or "store".
func (c *Config) Validate(mode string) error {
	var errs []string

	if n := c.Analysis.MaxRecommendations; n < 1 || n > 10 {
		errs = append(errs, fmt.Sprintf("analysis.max_recommendations must be between 1 and 10 (got %d)", n))
	}
	if !validFormat(c.Output.Format) {
		errs = append(errs, fmt.Sprintf("output.format must be one of %s (got %q)", strings.Join(OutputFormats, ", "), c.Output.Format))
	}

	switch mode {
	case "analyze":
	case "batch":
		if n := c.Batch.MaxConcurrent; n < 1 || n > 50 {
			errs = append(errs, fmt.Sprintf("batch.max_concurrent must be between 1 and 50 (got %d)", n))
		}
	case "store":
		switch c.Store.Driver {
		case "sqlite":
			if c.Store.Path == "" {
				errs = append(errs, "store.path is required for the sqlite driver")
			}
		case "postgres":
			if c.Store.DatabaseURL == "" {
				errs = append(errs, "store.database_url is required for the postgres driver")
			}
		default:
			errs = append(errs, fmt.Sprintf("store.driver must be sqlite or postgres (got %q)", c.Store.Driver))
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if len(errs) > 0 {
		return eris.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validFormat(f string) bool {
	for _, o := range OutputFormats {
		if f == o {
			return true
		}
	}
	return false
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
