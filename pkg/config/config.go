// Package config loads server configuration from built-in defaults, an
// optional YAML file, and environment variables, in that precedence
// order.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config is the umbrella configuration object handed to the rest of the
// server at startup.
type Config struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	Database    DatabaseConfig    `yaml:"database"`
	Tools       ToolsConfig       `yaml:"tools"`
	Workers     WorkerConfig      `yaml:"workers"`
	Conductor   ConductorConfig   `yaml:"conductor"`
	Termination TerminationConfig `yaml:"termination"`
	EventBus    EventBusConfig    `yaml:"event_bus"`
	Autonomic   AutonomicConfig   `yaml:"autonomic"`
	Rooms       RoomConfig        `yaml:"rooms"`
	Notify      NotifyConfig      `yaml:"notifications"`
	Instruments InstrumentsConfig `yaml:"instruments"`
}

// Address returns the HTTP bind address.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds the Postgres connection settings. URL is a
// postgresql:// DSN; Key supplies the password when the DSN omits one.
type DatabaseConfig struct {
	URL string `yaml:"url"`
	Key string `yaml:"-"`

	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

// DSN resolves the effective connection string, injecting Key as the
// password when the URL carries a user without one.
func (c DatabaseConfig) DSN() (string, error) {
	if c.URL == "" {
		return "", fmt.Errorf("database URL is not set")
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return "", fmt.Errorf("parse database URL: %w", err)
	}
	if u.User != nil && c.Key != "" {
		if _, hasPassword := u.User.Password(); !hasPassword {
			u.User = url.UserPassword(u.User.Username(), c.Key)
		}
	}
	return u.String(), nil
}

// ToolsConfig carries external tool credentials and tuning.
type ToolsConfig struct {
	ClaudeAPIKey    string `yaml:"-"`
	ClaudeModel     string `yaml:"claude_model"`
	ClaudeMaxTokens int    `yaml:"claude_max_tokens"`
	TavilyAPIKey    string `yaml:"-"`
}

// WorkerConfig sizes the task manager's worker pool.
type WorkerConfig struct {
	Count     int `yaml:"count"`
	QueueSize int `yaml:"queue_size"`
}

// ConductorConfig tunes routing and spawning.
type ConductorConfig struct {
	// MaxSpawnDepth bounds nested sub-task spawning.
	MaxSpawnDepth int `yaml:"max_spawn_depth"`
	// BranchTimeout bounds each parallel composition branch.
	BranchTimeout time.Duration `yaml:"branch_timeout"`
	// PrivacyStrict makes the privacy classifier keep even merely
	// sensitive queries on the local room.
	PrivacyStrict bool `yaml:"privacy_strict"`
}

// TerminationConfig tunes the loop termination evaluator.
type TerminationConfig struct {
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`
	DeltaThreshold      float64 `yaml:"delta_threshold"`
	Window              int     `yaml:"window"`
}

// EventBusConfig tunes the per-task event stream.
type EventBusConfig struct {
	HistoryLimit      int           `yaml:"history_limit"`
	SubscriberBuffer  int           `yaml:"subscriber_buffer"`
	TerminalTTL       time.Duration `yaml:"terminal_ttl"`
	KeepaliveInterval time.Duration `yaml:"keepalive_interval"`
}

// AutonomicConfig controls the background scheduler and health loops.
type AutonomicConfig struct {
	Enabled           bool          `yaml:"enabled"`
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`
	HealthInterval    time.Duration `yaml:"health_interval"`
}

// RoomConfig describes this node's registry entry and its known peers.
type RoomConfig struct {
	SelfName     string   `yaml:"self_name"`
	Capabilities []string `yaml:"capabilities"`
	// OfflineAfter is how long a room may go unseen before the sweep
	// marks it offline.
	OfflineAfter time.Duration `yaml:"offline_after"`
	Peers        []PeerConfig  `yaml:"peers"`
}

// PeerConfig pre-registers a remote room at startup.
type PeerConfig struct {
	Name         string   `yaml:"name"`
	URL          string   `yaml:"url"`
	RoomType     string   `yaml:"room_type"`
	Capabilities []string `yaml:"capabilities"`
}

// NotifyConfig carries notification channel credentials and timeouts.
type NotifyConfig struct {
	TelegramBotToken string        `yaml:"-"`
	SlackBotToken    string        `yaml:"-"`
	Timeout          time.Duration `yaml:"timeout"`
}

// InstrumentsConfig holds per-instrument tuning plus dynamically
// declared loop specifications.
type InstrumentsConfig struct {
	Research  InstrumentTuning `yaml:"research"`
	Vision    InstrumentTuning `yaml:"vision"`
	Synthesis InstrumentTuning `yaml:"synthesis"`
	Loops     []LoopSpecConfig `yaml:"loops"`
}

// InstrumentTuning overrides a single instrument's loop bounds. Zero
// fields keep the instrument's built-in values.
type InstrumentTuning struct {
	MaxIterations       int     `yaml:"max_iterations"`
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`
}

// LoopSpecConfig declares a phase-based loop instrument registered at
// startup.
type LoopSpecConfig struct {
	Name                 string        `yaml:"name"`
	Description          string        `yaml:"description"`
	Phases               []PhaseConfig `yaml:"phases"`
	MaxIterations        int           `yaml:"max_iterations"`
	RequiredCapabilities []string      `yaml:"required_capabilities"`
}

// PhaseConfig is one phase of a loop spec. Action selects how the phase
// runs: "prompt" (default) sends Prompt to the reasoning tool,
// "instrument" runs the named instrument, "spawn" submits a sub-task
// built from Description.
type PhaseConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Action      string `yaml:"action"`
	Instrument  string `yaml:"instrument"`
	Prompt      string `yaml:"prompt"`
}
