package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where Load looks for the YAML defaults file when
// no explicit path is given.
const DefaultConfigPath = "config/symphony.yaml"

// Load builds the effective configuration: built-in defaults, then the
// YAML file at path (optional, DefaultConfigPath when empty), then
// environment variables. The result is validated before being returned.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}
	if err := mergeYAMLFile(cfg, path, explicit); err != nil {
		return nil, err
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	slog.Info("Configuration loaded",
		"address", cfg.Address(),
		"autonomic_enabled", cfg.Autonomic.Enabled,
		"loop_specs", len(cfg.Instruments.Loops),
		"room_peers", len(cfg.Rooms.Peers))
	return cfg, nil
}

// mergeYAMLFile merges the YAML file over cfg, expanding {{.VAR}}
// environment references first. A missing file is only an error when
// the path was given explicitly.
func mergeYAMLFile(cfg *Config, path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			slog.Debug("No configuration file, using defaults", "path", path)
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(expandEnv(data), &fileCfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	if err := mergo.Merge(cfg, &fileCfg, mergo.WithOverride); err != nil {
		return fmt.Errorf("merge config file %s: %w", path, err)
	}

	slog.Info("Loaded configuration file", "path", path)
	return nil
}

// applyEnv overrides config fields from the environment.
func applyEnv(cfg *Config) {
	setString(&cfg.Host, "HOST")
	setInt(&cfg.Port, "PORT")

	setString(&cfg.Database.URL, "SUPABASE_URL")
	setString(&cfg.Database.Key, "SUPABASE_KEY")

	setBool(&cfg.Autonomic.Enabled, "AUTONOMIC_ENABLED")
	setSeconds(&cfg.Autonomic.HeartbeatInterval, "AUTONOMIC_HEARTBEAT_INTERVAL")
	setSeconds(&cfg.Autonomic.HealthInterval, "AUTONOMIC_HEALTH_INTERVAL")

	setString(&cfg.Tools.ClaudeAPIKey, "CLAUDE_API_KEY")
	setString(&cfg.Tools.ClaudeModel, "CLAUDE_MODEL")
	setInt(&cfg.Tools.ClaudeMaxTokens, "CLAUDE_MAX_TOKENS")
	setString(&cfg.Tools.TavilyAPIKey, "TAVILY_API_KEY")

	setString(&cfg.Notify.TelegramBotToken, "TELEGRAM_BOT_TOKEN")
	setString(&cfg.Notify.SlackBotToken, "SLACK_BOT_TOKEN")
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.Workers.Count < 1 {
		return fmt.Errorf("workers.count must be at least 1")
	}
	if c.Conductor.MaxSpawnDepth < 1 {
		return fmt.Errorf("conductor.max_spawn_depth must be at least 1")
	}
	if c.Autonomic.HeartbeatInterval <= 0 || c.Autonomic.HealthInterval <= 0 {
		return fmt.Errorf("autonomic intervals must be positive")
	}
	for i, spec := range c.Instruments.Loops {
		if spec.Name == "" {
			return fmt.Errorf("instruments.loops[%d]: name is required", i)
		}
		if len(spec.Phases) == 0 {
			return fmt.Errorf("instruments.loops[%d] (%s): at least one phase is required", i, spec.Name)
		}
		for j, phase := range spec.Phases {
			if phase.Name == "" {
				return fmt.Errorf("instruments.loops[%d] (%s): phase %d needs a name", i, spec.Name, j)
			}
			switch phase.Action {
			case "", "prompt", "instrument", "spawn":
			default:
				return fmt.Errorf("instruments.loops[%d] (%s): phase %q has unknown action %q", i, spec.Name, phase.Name, phase.Action)
			}
			if phase.Action == "instrument" && phase.Instrument == "" {
				return fmt.Errorf("instruments.loops[%d] (%s): phase %q needs an instrument", i, spec.Name, phase.Name)
			}
		}
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("Ignoring invalid integer in environment", "key", key, "value", v)
		return
	}
	*dst = parsed
}

func setBool(dst *bool, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("Ignoring invalid boolean in environment", "key", key, "value", v)
		return
	}
	*dst = parsed
}

// setSeconds reads an integer number of seconds.
func setSeconds(dst *time.Duration, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed <= 0 {
		slog.Warn("Ignoring invalid interval in environment", "key", key, "value", v)
		return
	}
	*dst = time.Duration(parsed) * time.Second
}
