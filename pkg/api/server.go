// Package api exposes the orchestration engine over HTTP: task
// submission and lifecycle, SSE progress streams, trust management,
// heartbeat CRUD, room registration, notifications, arrangements, and
// health. Handlers stay thin; semantics live in the service layer and
// the managers behind it.
package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loop-symphony/symphony/ent"
	"github.com/loop-symphony/symphony/pkg/autonomic"
	"github.com/loop-symphony/symphony/pkg/conductor"
	"github.com/loop-symphony/symphony/pkg/config"
	"github.com/loop-symphony/symphony/pkg/database"
	"github.com/loop-symphony/symphony/pkg/events"
	"github.com/loop-symphony/symphony/pkg/notify"
	"github.com/loop-symphony/symphony/pkg/rooms"
	"github.com/loop-symphony/symphony/pkg/services"
	"github.com/loop-symphony/symphony/pkg/taskmanager"
	"github.com/loop-symphony/symphony/pkg/tools"
	"github.com/loop-symphony/symphony/pkg/trust"
)

// defaultKeepalive paces SSE comment frames when the config leaves the
// interval unset.
const defaultKeepalive = 30 * time.Second

// Deps are the wired collaborators behind the HTTP surface. Optional
// subsystems may be nil; their endpoints answer 503 instead.
type Deps struct {
	Apps          *services.AppService
	Profiles      *services.ProfileService
	Tasks         *services.TaskService
	Iterations    *services.IterationService
	Heartbeats    *services.HeartbeatService
	Arrangements  *services.ArrangementService
	Notifications *services.NotificationService
	Knowledge     *services.KnowledgeService

	Manager   *taskmanager.Manager
	Conductor *conductor.Conductor
	Bus       *events.Bus
	Trust     *trust.Tracker
	Rooms     *rooms.Registry
	Tools     *tools.Registry
	Notifier  *notify.Notifier
	Scheduler *autonomic.Scheduler
	Monitor   *autonomic.Monitor
	DB        *database.Client

	// Anonymous is the app row that scopes unauthenticated submissions,
	// ensured at startup.
	Anonymous *ent.App
}

// Server carries the handlers' dependencies.
type Server struct {
	apps          *services.AppService
	profiles      *services.ProfileService
	tasks         *services.TaskService
	iterations    *services.IterationService
	heartbeats    *services.HeartbeatService
	arrangements  *services.ArrangementService
	notifications *services.NotificationService
	knowledge     *services.KnowledgeService

	manager   *taskmanager.Manager
	conductor *conductor.Conductor
	bus       *events.Bus
	trust     *trust.Tracker
	rooms     *rooms.Registry
	tools     *tools.Registry
	notifier  *notify.Notifier
	scheduler *autonomic.Scheduler
	monitor   *autonomic.Monitor
	db        *database.Client

	anonymous *ent.App
	keepalive time.Duration

	httpSrv *http.Server
}

// NewServer creates the API server. cfg tunes the SSE keepalive cadence
// and may be nil.
func NewServer(deps Deps, cfg *config.Config) *Server {
	keepalive := defaultKeepalive
	if cfg != nil && cfg.EventBus.KeepaliveInterval > 0 {
		keepalive = cfg.EventBus.KeepaliveInterval
	}
	return &Server{
		apps:          deps.Apps,
		profiles:      deps.Profiles,
		tasks:         deps.Tasks,
		iterations:    deps.Iterations,
		heartbeats:    deps.Heartbeats,
		arrangements:  deps.Arrangements,
		notifications: deps.Notifications,
		knowledge:     deps.Knowledge,
		manager:       deps.Manager,
		conductor:     deps.Conductor,
		bus:           deps.Bus,
		trust:         deps.Trust,
		rooms:         deps.Rooms,
		tools:         deps.Tools,
		notifier:      deps.Notifier,
		scheduler:     deps.Scheduler,
		monitor:       deps.Monitor,
		db:            deps.DB,
		anonymous:     deps.Anonymous,
		keepalive:     keepalive,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(requestLogger(), gin.Recovery(), securityHeaders())

	r.GET("/health", s.healthHandler)
	r.GET("/health/system", s.systemHealthHandler)
	r.GET("/health/database", s.databaseHealthHandler)

	// Task submission works with or without credentials; anonymous
	// callers are scoped to the shared anonymous app.
	task := r.Group("", s.optionalAuth())
	{
		task.POST("/task", s.submitTaskHandler)
		task.GET("/task/:id", s.getTaskHandler)
		task.GET("/task/:id/stream", s.streamTaskHandler)
		task.GET("/task/:id/checkpoints", s.listCheckpointsHandler)
		task.POST("/task/:id/approve", s.approveTaskHandler)
		task.POST("/task/:id/cancel", s.cancelTaskHandler)
		task.GET("/tasks/active", s.listActiveTasksHandler)
		task.GET("/tasks/recent", s.listRecentTasksHandler)
		task.GET("/tasks/stats", s.taskStatsHandler)
	}

	trustGroup := r.Group("/trust", s.requireAuth())
	{
		trustGroup.GET("/metrics", s.trustMetricsHandler)
		trustGroup.GET("/suggestion", s.trustSuggestionHandler)
		trustGroup.PUT("/level", s.setTrustLevelHandler)
	}

	hb := r.Group("/heartbeats", s.requireAuth())
	{
		hb.POST("", s.createHeartbeatHandler)
		hb.GET("", s.listHeartbeatsHandler)
		hb.GET("/:id", s.getHeartbeatHandler)
		hb.PUT("/:id", s.updateHeartbeatHandler)
		hb.DELETE("/:id", s.deleteHeartbeatHandler)
		hb.GET("/:id/runs", s.listHeartbeatRunsHandler)
		hb.POST("/tick", s.tickHeartbeatsHandler)
	}

	room := r.Group("/rooms", s.optionalAuth())
	{
		room.POST("/register", s.registerRoomHandler)
		room.POST("/heartbeat", s.roomHeartbeatHandler)
		room.POST("/deregister", s.deregisterRoomHandler)
		room.GET("", s.listRoomsHandler)
		room.GET("/status", s.roomStatusHandler)
		room.GET("/:id", s.getRoomHandler)
	}

	arr := r.Group("/arrangements", s.requireAuth())
	{
		arr.POST("", s.createArrangementHandler)
		arr.GET("", s.listArrangementsHandler)
		arr.GET("/:id", s.getArrangementHandler)
		arr.DELETE("/:id", s.deleteArrangementHandler)
	}

	notif := r.Group("/notifications", s.requireAuth())
	{
		notif.GET("/preferences", s.getNotificationPreferencesHandler)
		notif.PUT("/preferences", s.putNotificationPreferencesHandler)
		notif.POST("/channels", s.createNotificationChannelHandler)
		notif.GET("/channels", s.listNotificationChannelsHandler)
		notif.DELETE("/channels/:id", s.deleteNotificationChannelHandler)
		notif.GET("/history", s.notificationHistoryHandler)
	}

	return r
}

// Start serves the router on addr, blocking until the listener fails
// or Shutdown is called. No write timeout is set so SSE streams can
// stay open indefinitely.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpSrv.ListenAndServe()
}

// StartWithListener serves the router on an existing listener, so
// callers can bind an ephemeral port before the serve goroutine starts.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpSrv = &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpSrv.Serve(ln)
}

// Shutdown drains in-flight requests until ctx expires. Safe to call
// when Start never ran.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
