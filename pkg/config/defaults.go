package config

import "time"

// Built-in defaults. The YAML file overrides these; environment
// variables override both.
func defaultConfig() *Config {
	return &Config{
		Host: "0.0.0.0",
		Port: 8000,
		Database: DatabaseConfig{
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
			ConnMaxIdleTime: 5 * time.Minute,
		},
		Workers: WorkerConfig{
			Count:     4,
			QueueSize: 100,
		},
		Conductor: ConductorConfig{
			MaxSpawnDepth: 3,
			BranchTimeout: 60 * time.Second,
		},
		Termination: TerminationConfig{
			ConfidenceThreshold: 0.85,
			DeltaThreshold:      0.02,
			Window:              2,
		},
		EventBus: EventBusConfig{
			HistoryLimit:      1024,
			SubscriberBuffer:  64,
			TerminalTTL:       15 * time.Minute,
			KeepaliveInterval: 30 * time.Second,
		},
		Autonomic: AutonomicConfig{
			Enabled:           false,
			HeartbeatInterval: 60 * time.Second,
			HealthInterval:    300 * time.Second,
		},
		Rooms: RoomConfig{
			SelfName:     "symphony-local",
			OfflineAfter: 120 * time.Second,
		},
		Notify: NotifyConfig{
			Timeout: 10 * time.Second,
		},
		Instruments: InstrumentsConfig{
			Research:  InstrumentTuning{MaxIterations: 5},
			Vision:    InstrumentTuning{MaxIterations: 3},
			Synthesis: InstrumentTuning{MaxIterations: 2},
		},
	}
}
