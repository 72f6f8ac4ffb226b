// Symphony orchestration server: provides the HTTP API, runs the task
// worker pool, and hosts the autonomic heartbeat and health loops.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/loop-symphony/symphony/pkg/api"
	"github.com/loop-symphony/symphony/pkg/autonomic"
	"github.com/loop-symphony/symphony/pkg/conductor"
	"github.com/loop-symphony/symphony/pkg/config"
	"github.com/loop-symphony/symphony/pkg/database"
	"github.com/loop-symphony/symphony/pkg/events"
	"github.com/loop-symphony/symphony/pkg/instrument"
	"github.com/loop-symphony/symphony/pkg/notify"
	"github.com/loop-symphony/symphony/pkg/rooms"
	"github.com/loop-symphony/symphony/pkg/services"
	"github.com/loop-symphony/symphony/pkg/taskmanager"
	"github.com/loop-symphony/symphony/pkg/tools"
	"github.com/loop-symphony/symphony/pkg/trust"
	"github.com/loop-symphony/symphony/pkg/version"
)

// workerDrainTimeout bounds how long shutdown waits for in-flight tasks
// before abandoning them to the startup interrupted-task sweep.
const workerDrainTimeout = 30 * time.Second

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configPath := flag.String("config",
		getEnv("CONFIG_PATH", ""),
		"Path to configuration file (defaults to "+config.DefaultConfigPath+")")
	flag.Parse()

	// Load .env before config so the env overrides see it
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "error", err)
	} else {
		slog.Info("Loaded environment from .env")
	}

	slog.Info("Starting Symphony", "version", version.Full())

	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Connect to the database (runs embedded migrations)
	dbClient, err := database.NewClient(ctx, cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	apps := services.NewAppService(dbClient.Client)
	profiles := services.NewProfileService(dbClient.Client)
	tasks := services.NewTaskService(dbClient.Client)
	iterations := services.NewIterationService(dbClient.Client)
	heartbeats := services.NewHeartbeatService(dbClient.Client)
	arrangements := services.NewArrangementService(dbClient.Client)
	notifications := services.NewNotificationService(dbClient.Client)
	knowledge := services.NewKnowledgeService(dbClient.Client)
	errorLog := services.NewErrorService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. One-time startup sweep: tasks a previous process left running
	if swept, err := tasks.SweepInterrupted(ctx); err != nil {
		slog.Error("Failed to sweep interrupted tasks", "error", err)
		// Non-fatal; continue startup
	} else if swept > 0 {
		slog.Info("Swept interrupted tasks from previous run", "count", swept)
	}

	// 5. Ensure the anonymous app exists; unauthenticated submissions
	// are scoped to it
	anonymous, err := apps.EnsureAnonymousApp(ctx)
	if err != nil {
		slog.Error("Failed to ensure anonymous app", "error", err)
		os.Exit(1)
	}

	// 6. External tools. Reasoning is required; search is optional but
	// its absence removes the research capability at routing time.
	if cfg.Tools.ClaudeAPIKey == "" {
		slog.Error("CLAUDE_API_KEY is required")
		os.Exit(1)
	}
	registry := tools.NewRegistry()
	claude := tools.NewClaudeClient(tools.ClaudeConfig{
		APIKey:    cfg.Tools.ClaudeAPIKey,
		Model:     cfg.Tools.ClaudeModel,
		MaxTokens: cfg.Tools.ClaudeMaxTokens,
	})
	if err := registry.Register(claude); err != nil {
		slog.Error("Failed to register reasoning tool", "error", err)
		os.Exit(1)
	}
	if cfg.Tools.TavilyAPIKey != "" {
		tavily := tools.NewTavilyClient(tools.TavilyConfig{APIKey: cfg.Tools.TavilyAPIKey})
		if err := registry.Register(tavily); err != nil {
			slog.Error("Failed to register search tool", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("TAVILY_API_KEY not set, web search disabled")
	}
	slog.Info("Tools registered", "count", registry.Len())

	// 7. Instrument factory (builtins plus configured loop specs)
	factory, err := instrument.NewFactory(registry, instrument.FactoryConfigFromConfig(cfg.Instruments, cfg.Termination))
	if err != nil {
		slog.Error("Failed to build instrument factory", "error", err)
		os.Exit(1)
	}
	slog.Info("Instruments ready", "names", factory.Names())

	// 8. Event bus for live task streams
	bus := events.NewBus(events.BusConfig{
		HistoryLimit:     cfg.EventBus.HistoryLimit,
		SubscriberBuffer: cfg.EventBus.SubscriberBuffer,
		TerminalTTL:      cfg.EventBus.TerminalTTL,
	})
	defer bus.Close()

	// 9. Room registry: self plus statically configured peers
	roomRegistry := rooms.NewRegistry(cfg.Rooms.OfflineAfter)
	roomRegistry.RegisterSelf(cfg.Rooms.SelfName, cfg.Rooms.Capabilities)
	for _, peer := range cfg.Rooms.Peers {
		if _, err := roomRegistry.Register(rooms.Registration{
			ID:           peer.Name,
			Name:         peer.Name,
			Type:         peer.RoomType,
			URL:          peer.URL,
			Capabilities: peer.Capabilities,
		}); err != nil {
			slog.Warn("Skipping invalid peer room", "name", peer.Name, "error", err)
		}
	}
	slog.Info("Room registry initialized",
		"self", cfg.Rooms.SelfName, "peers", len(cfg.Rooms.Peers))

	// 10. Worker pool (before the HTTP server so submissions have
	// somewhere to go)
	manager := taskmanager.NewManager(tasks, bus, cfg.Workers)
	manager.Start(ctx)

	// 11. Conductor: routing, planning, delegation
	cond := conductor.New(conductor.Deps{
		Instruments:  factory,
		Arrangements: arrangements,
		Iterations:   iterations,
		Errors:       errorLog,
		Bus:          bus,
		Registry:     roomRegistry,
		Delegator:    rooms.NewClient(rooms.ClientConfig{}),
	}, cfg.Conductor)

	// 12. Trust tracker and notifier
	trustTracker := trust.NewTracker(profiles)
	notifier := notify.NewNotifier(notifications, profiles, cfg.Notify)

	// 13. Autonomic loops. Constructed unconditionally so the tick and
	// health endpoints work; the background loops only run when enabled.
	scheduler := autonomic.NewScheduler(autonomic.SchedulerDeps{
		Heartbeats: heartbeats,
		Tasks:      tasks,
		Profiles:   profiles,
		Manager:    manager,
		Executor:   cond,
	}, cfg.Autonomic.HeartbeatInterval)
	monitor := autonomic.NewMonitor(autonomic.MonitorDeps{
		DB:      dbClient,
		Tools:   registry,
		Rooms:   roomRegistry,
		Bus:     bus,
		Manager: manager,
		Errors:  errorLog,
	}, cfg.Autonomic.HealthInterval)
	if cfg.Autonomic.Enabled {
		scheduler.Start(ctx)
		monitor.Start(ctx)
	} else {
		slog.Info("Autonomic loops disabled")
	}

	// 14. HTTP server
	httpServer := api.NewServer(api.Deps{
		Apps:          apps,
		Profiles:      profiles,
		Tasks:         tasks,
		Iterations:    iterations,
		Heartbeats:    heartbeats,
		Arrangements:  arrangements,
		Notifications: notifications,
		Knowledge:     knowledge,
		Manager:       manager,
		Conductor:     cond,
		Bus:           bus,
		Trust:         trustTracker,
		Rooms:         roomRegistry,
		Tools:         registry,
		Notifier:      notifier,
		Scheduler:     scheduler,
		Monitor:       monitor,
		DB:            dbClient,
		Anonymous:     anonymous,
	}, cfg)

	// 15. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := cfg.Address()
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Symphony started successfully",
		"workers", cfg.Workers.Count,
		"autonomic", cfg.Autonomic.Enabled)

	// 16. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 17. Graceful shutdown. Background loops stop first so nothing new
	// enters the queue, then the workers drain, then the listener closes.
	scheduler.Stop()
	monitor.Stop()

	drainCtx, drainCancel := context.WithTimeout(ctx, workerDrainTimeout)
	defer drainCancel()

	done := make(chan struct{})
	go func() {
		manager.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-drainCtx.Done():
		slog.Warn("Shutdown timeout exceeded; interrupted tasks will be swept on next start")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
