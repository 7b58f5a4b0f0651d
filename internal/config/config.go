// Package config loads engine settings from config.yaml and the environment
// and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Settings is the root engine configuration.
type Settings struct {
	Engine EngineConfig `yaml:"engine" mapstructure:"engine"`
	Router RouterConfig `yaml:"router" mapstructure:"router"`
	Tables TablesConfig `yaml:"tables" mapstructure:"tables"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// EngineConfig tunes the numeric consistency and conflict checks.
type EngineConfig struct {
	ConsistencyDiffPct float64 `yaml:"consistency_diff_pct" mapstructure:"consistency_diff_pct"`
	HighSeverityPct    float64 `yaml:"high_severity_pct" mapstructure:"high_severity_pct"`
	ConflictTolerance  float64 `yaml:"conflict_tolerance" mapstructure:"conflict_tolerance"`
}

// RouterConfig tunes section heading routing.
type RouterConfig struct {
	CacheTTLSecs int `yaml:"cache_ttl_secs" mapstructure:"cache_ttl_secs"`
	TopN         int `yaml:"top_n" mapstructure:"top_n"`
}

// TablesConfig points at optional YAML table files. Any path left empty
// falls back to the built-in table for that concern.
type TablesConfig struct {
	UnitsFile      string `yaml:"units_file" mapstructure:"units_file"`
	ContextsFile   string `yaml:"contexts_file" mapstructure:"contexts_file"`
	RoutingFile    string `yaml:"routing_file" mapstructure:"routing_file"`
	DomainsFile    string `yaml:"domains_file" mapstructure:"domains_file"`
	ThresholdsFile string `yaml:"thresholds_file" mapstructure:"thresholds_file"`
	ChecklistFile  string `yaml:"checklist_file" mapstructure:"checklist_file"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Settings, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("ESIA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("engine.consistency_diff_pct", 5.0)
	v.SetDefault("engine.high_severity_pct", 20.0)
	v.SetDefault("engine.conflict_tolerance", 0.02)
	v.SetDefault("router.cache_ttl_secs", 300)
	v.SetDefault("router.top_n", 3)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Settings
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the numeric settings for values the engine cannot run with.
func (c *Settings) Validate() error {
	var problems []string

	if c.Engine.ConsistencyDiffPct <= 0 {
		problems = append(problems, "engine.consistency_diff_pct must be > 0")
	}
	if c.Engine.HighSeverityPct <= c.Engine.ConsistencyDiffPct {
		problems = append(problems, "engine.high_severity_pct must be > consistency_diff_pct")
	}
	if c.Engine.ConflictTolerance < 0 || c.Engine.ConflictTolerance >= 1 {
		problems = append(problems, "engine.conflict_tolerance must be in [0, 1)")
	}
	if c.Router.CacheTTLSecs < 0 {
		problems = append(problems, "router.cache_ttl_secs must be >= 0")
	}
	if c.Router.TopN < 0 {
		problems = append(problems, "router.top_n must be >= 0")
	}

	if len(problems) > 0 {
		return eris.Errorf("config: invalid settings: %s", strings.Join(problems, "; "))
	}
	return nil
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
