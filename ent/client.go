// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/loop-symphony/symphony/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loop-symphony/symphony/ent/app"
	"github.com/loop-symphony/symphony/ent/errorpattern"
	"github.com/loop-symphony/symphony/ent/errorrecord"
	"github.com/loop-symphony/symphony/ent/heartbeat"
	"github.com/loop-symphony/symphony/ent/heartbeatrun"
	"github.com/loop-symphony/symphony/ent/knowledgeentry"
	"github.com/loop-symphony/symphony/ent/knowledgesyncstate"
	"github.com/loop-symphony/symphony/ent/notificationchannel"
	"github.com/loop-symphony/symphony/ent/notificationhistory"
	"github.com/loop-symphony/symphony/ent/notificationpreference"
	"github.com/loop-symphony/symphony/ent/roomlearning"
	"github.com/loop-symphony/symphony/ent/roomsyncstate"
	"github.com/loop-symphony/symphony/ent/savedarrangement"
	"github.com/loop-symphony/symphony/ent/task"
	"github.com/loop-symphony/symphony/ent/taskiteration"
	"github.com/loop-symphony/symphony/ent/userprofile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// App is the client for interacting with the App builders.
	App *AppClient
	// ErrorPattern is the client for interacting with the ErrorPattern builders.
	ErrorPattern *ErrorPatternClient
	// ErrorRecord is the client for interacting with the ErrorRecord builders.
	ErrorRecord *ErrorRecordClient
	// Heartbeat is the client for interacting with the Heartbeat builders.
	Heartbeat *HeartbeatClient
	// HeartbeatRun is the client for interacting with the HeartbeatRun builders.
	HeartbeatRun *HeartbeatRunClient
	// KnowledgeEntry is the client for interacting with the KnowledgeEntry builders.
	KnowledgeEntry *KnowledgeEntryClient
	// KnowledgeSyncState is the client for interacting with the KnowledgeSyncState builders.
	KnowledgeSyncState *KnowledgeSyncStateClient
	// NotificationChannel is the client for interacting with the NotificationChannel builders.
	NotificationChannel *NotificationChannelClient
	// NotificationHistory is the client for interacting with the NotificationHistory builders.
	NotificationHistory *NotificationHistoryClient
	// NotificationPreference is the client for interacting with the NotificationPreference builders.
	NotificationPreference *NotificationPreferenceClient
	// RoomLearning is the client for interacting with the RoomLearning builders.
	RoomLearning *RoomLearningClient
	// RoomSyncState is the client for interacting with the RoomSyncState builders.
	RoomSyncState *RoomSyncStateClient
	// SavedArrangement is the client for interacting with the SavedArrangement builders.
	SavedArrangement *SavedArrangementClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TaskIteration is the client for interacting with the TaskIteration builders.
	TaskIteration *TaskIterationClient
	// UserProfile is the client for interacting with the UserProfile builders.
	UserProfile *UserProfileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.App = NewAppClient(c.config)
	c.ErrorPattern = NewErrorPatternClient(c.config)
	c.ErrorRecord = NewErrorRecordClient(c.config)
	c.Heartbeat = NewHeartbeatClient(c.config)
	c.HeartbeatRun = NewHeartbeatRunClient(c.config)
	c.KnowledgeEntry = NewKnowledgeEntryClient(c.config)
	c.KnowledgeSyncState = NewKnowledgeSyncStateClient(c.config)
	c.NotificationChannel = NewNotificationChannelClient(c.config)
	c.NotificationHistory = NewNotificationHistoryClient(c.config)
	c.NotificationPreference = NewNotificationPreferenceClient(c.config)
	c.RoomLearning = NewRoomLearningClient(c.config)
	c.RoomSyncState = NewRoomSyncStateClient(c.config)
	c.SavedArrangement = NewSavedArrangementClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TaskIteration = NewTaskIterationClient(c.config)
	c.UserProfile = NewUserProfileClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		App:                    NewAppClient(cfg),
		ErrorPattern:           NewErrorPatternClient(cfg),
		ErrorRecord:            NewErrorRecordClient(cfg),
		Heartbeat:              NewHeartbeatClient(cfg),
		HeartbeatRun:           NewHeartbeatRunClient(cfg),
		KnowledgeEntry:         NewKnowledgeEntryClient(cfg),
		KnowledgeSyncState:     NewKnowledgeSyncStateClient(cfg),
		NotificationChannel:    NewNotificationChannelClient(cfg),
		NotificationHistory:    NewNotificationHistoryClient(cfg),
		NotificationPreference: NewNotificationPreferenceClient(cfg),
		RoomLearning:           NewRoomLearningClient(cfg),
		RoomSyncState:          NewRoomSyncStateClient(cfg),
		SavedArrangement:       NewSavedArrangementClient(cfg),
		Task:                   NewTaskClient(cfg),
		TaskIteration:          NewTaskIterationClient(cfg),
		UserProfile:            NewUserProfileClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		App:                    NewAppClient(cfg),
		ErrorPattern:           NewErrorPatternClient(cfg),
		ErrorRecord:            NewErrorRecordClient(cfg),
		Heartbeat:              NewHeartbeatClient(cfg),
		HeartbeatRun:           NewHeartbeatRunClient(cfg),
		KnowledgeEntry:         NewKnowledgeEntryClient(cfg),
		KnowledgeSyncState:     NewKnowledgeSyncStateClient(cfg),
		NotificationChannel:    NewNotificationChannelClient(cfg),
		NotificationHistory:    NewNotificationHistoryClient(cfg),
		NotificationPreference: NewNotificationPreferenceClient(cfg),
		RoomLearning:           NewRoomLearningClient(cfg),
		RoomSyncState:          NewRoomSyncStateClient(cfg),
		SavedArrangement:       NewSavedArrangementClient(cfg),
		Task:                   NewTaskClient(cfg),
		TaskIteration:          NewTaskIterationClient(cfg),
		UserProfile:            NewUserProfileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		App.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.App, c.ErrorPattern, c.ErrorRecord, c.Heartbeat, c.HeartbeatRun,
		c.KnowledgeEntry, c.KnowledgeSyncState, c.NotificationChannel,
		c.NotificationHistory, c.NotificationPreference, c.RoomLearning,
		c.RoomSyncState, c.SavedArrangement, c.Task, c.TaskIteration, c.UserProfile,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.App, c.ErrorPattern, c.ErrorRecord, c.Heartbeat, c.HeartbeatRun,
		c.KnowledgeEntry, c.KnowledgeSyncState, c.NotificationChannel,
		c.NotificationHistory, c.NotificationPreference, c.RoomLearning,
		c.RoomSyncState, c.SavedArrangement, c.Task, c.TaskIteration, c.UserProfile,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AppMutation:
		return c.App.mutate(ctx, m)
	case *ErrorPatternMutation:
		return c.ErrorPattern.mutate(ctx, m)
	case *ErrorRecordMutation:
		return c.ErrorRecord.mutate(ctx, m)
	case *HeartbeatMutation:
		return c.Heartbeat.mutate(ctx, m)
	case *HeartbeatRunMutation:
		return c.HeartbeatRun.mutate(ctx, m)
	case *KnowledgeEntryMutation:
		return c.KnowledgeEntry.mutate(ctx, m)
	case *KnowledgeSyncStateMutation:
		return c.KnowledgeSyncState.mutate(ctx, m)
	case *NotificationChannelMutation:
		return c.NotificationChannel.mutate(ctx, m)
	case *NotificationHistoryMutation:
		return c.NotificationHistory.mutate(ctx, m)
	case *NotificationPreferenceMutation:
		return c.NotificationPreference.mutate(ctx, m)
	case *RoomLearningMutation:
		return c.RoomLearning.mutate(ctx, m)
	case *RoomSyncStateMutation:
		return c.RoomSyncState.mutate(ctx, m)
	case *SavedArrangementMutation:
		return c.SavedArrangement.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TaskIterationMutation:
		return c.TaskIteration.mutate(ctx, m)
	case *UserProfileMutation:
		return c.UserProfile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AppClient is a client for the App schema.
type AppClient struct {
	config
}

// NewAppClient returns a client for the App from the given config.
func NewAppClient(c config) *AppClient {
	return &AppClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `app.Hooks(f(g(h())))`.
func (c *AppClient) Use(hooks ...Hook) {
	c.hooks.App = append(c.hooks.App, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `app.Intercept(f(g(h())))`.
func (c *AppClient) Intercept(interceptors ...Interceptor) {
	c.inters.App = append(c.inters.App, interceptors...)
}

// Create returns a builder for creating a App entity.
func (c *AppClient) Create() *AppCreate {
	mutation := newAppMutation(c.config, OpCreate)
	return &AppCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of App entities.
func (c *AppClient) CreateBulk(builders ...*AppCreate) *AppCreateBulk {
	return &AppCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppClient) MapCreateBulk(slice any, setFunc func(*AppCreate, int)) *AppCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppCreateBulk{err: fmt.Errorf("calling to AppClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for App.
func (c *AppClient) Update() *AppUpdate {
	mutation := newAppMutation(c.config, OpUpdate)
	return &AppUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppClient) UpdateOne(_m *App) *AppUpdateOne {
	mutation := newAppMutation(c.config, OpUpdateOne, withApp(_m))
	return &AppUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppClient) UpdateOneID(id string) *AppUpdateOne {
	mutation := newAppMutation(c.config, OpUpdateOne, withAppID(id))
	return &AppUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for App.
func (c *AppClient) Delete() *AppDelete {
	mutation := newAppMutation(c.config, OpDelete)
	return &AppDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppClient) DeleteOne(_m *App) *AppDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppClient) DeleteOneID(id string) *AppDeleteOne {
	builder := c.Delete().Where(app.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppDeleteOne{builder}
}

// Query returns a query builder for App.
func (c *AppClient) Query() *AppQuery {
	return &AppQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApp},
		inters: c.Interceptors(),
	}
}

// Get returns a App entity by its id.
func (c *AppClient) Get(ctx context.Context, id string) (*App, error) {
	return c.Query().Where(app.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppClient) GetX(ctx context.Context, id string) *App {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUserProfiles queries the user_profiles edge of a App.
func (c *AppClient) QueryUserProfiles(_m *App) *UserProfileQuery {
	query := (&UserProfileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(app.Table, app.FieldID, id),
			sqlgraph.To(userprofile.Table, userprofile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, app.UserProfilesTable, app.UserProfilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTasks queries the tasks edge of a App.
func (c *AppClient) QueryTasks(_m *App) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(app.Table, app.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, app.TasksTable, app.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHeartbeats queries the heartbeats edge of a App.
func (c *AppClient) QueryHeartbeats(_m *App) *HeartbeatQuery {
	query := (&HeartbeatClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(app.Table, app.FieldID, id),
			sqlgraph.To(heartbeat.Table, heartbeat.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, app.HeartbeatsTable, app.HeartbeatsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryArrangements queries the arrangements edge of a App.
func (c *AppClient) QueryArrangements(_m *App) *SavedArrangementQuery {
	query := (&SavedArrangementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(app.Table, app.FieldID, id),
			sqlgraph.To(savedarrangement.Table, savedarrangement.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, app.ArrangementsTable, app.ArrangementsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryErrorRecords queries the error_records edge of a App.
func (c *AppClient) QueryErrorRecords(_m *App) *ErrorRecordQuery {
	query := (&ErrorRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(app.Table, app.FieldID, id),
			sqlgraph.To(errorrecord.Table, errorrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, app.ErrorRecordsTable, app.ErrorRecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryErrorPatterns queries the error_patterns edge of a App.
func (c *AppClient) QueryErrorPatterns(_m *App) *ErrorPatternQuery {
	query := (&ErrorPatternClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(app.Table, app.FieldID, id),
			sqlgraph.To(errorpattern.Table, errorpattern.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, app.ErrorPatternsTable, app.ErrorPatternsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryKnowledgeEntries queries the knowledge_entries edge of a App.
func (c *AppClient) QueryKnowledgeEntries(_m *App) *KnowledgeEntryQuery {
	query := (&KnowledgeEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(app.Table, app.FieldID, id),
			sqlgraph.To(knowledgeentry.Table, knowledgeentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, app.KnowledgeEntriesTable, app.KnowledgeEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryKnowledgeSyncStates queries the knowledge_sync_states edge of a App.
func (c *AppClient) QueryKnowledgeSyncStates(_m *App) *KnowledgeSyncStateQuery {
	query := (&KnowledgeSyncStateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(app.Table, app.FieldID, id),
			sqlgraph.To(knowledgesyncstate.Table, knowledgesyncstate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, app.KnowledgeSyncStatesTable, app.KnowledgeSyncStatesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryNotificationPreferences queries the notification_preferences edge of a App.
func (c *AppClient) QueryNotificationPreferences(_m *App) *NotificationPreferenceQuery {
	query := (&NotificationPreferenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(app.Table, app.FieldID, id),
			sqlgraph.To(notificationpreference.Table, notificationpreference.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, app.NotificationPreferencesTable, app.NotificationPreferencesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryNotificationChannels queries the notification_channels edge of a App.
func (c *AppClient) QueryNotificationChannels(_m *App) *NotificationChannelQuery {
	query := (&NotificationChannelClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(app.Table, app.FieldID, id),
			sqlgraph.To(notificationchannel.Table, notificationchannel.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, app.NotificationChannelsTable, app.NotificationChannelsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryNotificationHistory queries the notification_history edge of a App.
func (c *AppClient) QueryNotificationHistory(_m *App) *NotificationHistoryQuery {
	query := (&NotificationHistoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(app.Table, app.FieldID, id),
			sqlgraph.To(notificationhistory.Table, notificationhistory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, app.NotificationHistoryTable, app.NotificationHistoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AppClient) Hooks() []Hook {
	return c.hooks.App
}

// Interceptors returns the client interceptors.
func (c *AppClient) Interceptors() []Interceptor {
	return c.inters.App
}

func (c *AppClient) mutate(ctx context.Context, m *AppMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown App mutation op: %q", m.Op())
	}
}

// ErrorPatternClient is a client for the ErrorPattern schema.
type ErrorPatternClient struct {
	config
}

// NewErrorPatternClient returns a client for the ErrorPattern from the given config.
func NewErrorPatternClient(c config) *ErrorPatternClient {
	return &ErrorPatternClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `errorpattern.Hooks(f(g(h())))`.
func (c *ErrorPatternClient) Use(hooks ...Hook) {
	c.hooks.ErrorPattern = append(c.hooks.ErrorPattern, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `errorpattern.Intercept(f(g(h())))`.
func (c *ErrorPatternClient) Intercept(interceptors ...Interceptor) {
	c.inters.ErrorPattern = append(c.inters.ErrorPattern, interceptors...)
}

// Create returns a builder for creating a ErrorPattern entity.
func (c *ErrorPatternClient) Create() *ErrorPatternCreate {
	mutation := newErrorPatternMutation(c.config, OpCreate)
	return &ErrorPatternCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ErrorPattern entities.
func (c *ErrorPatternClient) CreateBulk(builders ...*ErrorPatternCreate) *ErrorPatternCreateBulk {
	return &ErrorPatternCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ErrorPatternClient) MapCreateBulk(slice any, setFunc func(*ErrorPatternCreate, int)) *ErrorPatternCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ErrorPatternCreateBulk{err: fmt.Errorf("calling to ErrorPatternClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ErrorPatternCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ErrorPatternCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ErrorPattern.
func (c *ErrorPatternClient) Update() *ErrorPatternUpdate {
	mutation := newErrorPatternMutation(c.config, OpUpdate)
	return &ErrorPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ErrorPatternClient) UpdateOne(_m *ErrorPattern) *ErrorPatternUpdateOne {
	mutation := newErrorPatternMutation(c.config, OpUpdateOne, withErrorPattern(_m))
	return &ErrorPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ErrorPatternClient) UpdateOneID(id string) *ErrorPatternUpdateOne {
	mutation := newErrorPatternMutation(c.config, OpUpdateOne, withErrorPatternID(id))
	return &ErrorPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ErrorPattern.
func (c *ErrorPatternClient) Delete() *ErrorPatternDelete {
	mutation := newErrorPatternMutation(c.config, OpDelete)
	return &ErrorPatternDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ErrorPatternClient) DeleteOne(_m *ErrorPattern) *ErrorPatternDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ErrorPatternClient) DeleteOneID(id string) *ErrorPatternDeleteOne {
	builder := c.Delete().Where(errorpattern.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ErrorPatternDeleteOne{builder}
}

// Query returns a query builder for ErrorPattern.
func (c *ErrorPatternClient) Query() *ErrorPatternQuery {
	return &ErrorPatternQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeErrorPattern},
		inters: c.Interceptors(),
	}
}

// Get returns a ErrorPattern entity by its id.
func (c *ErrorPatternClient) Get(ctx context.Context, id string) (*ErrorPattern, error) {
	return c.Query().Where(errorpattern.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ErrorPatternClient) GetX(ctx context.Context, id string) *ErrorPattern {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApp queries the app edge of a ErrorPattern.
func (c *ErrorPatternClient) QueryApp(_m *ErrorPattern) *AppQuery {
	query := (&AppClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(errorpattern.Table, errorpattern.FieldID, id),
			sqlgraph.To(app.Table, app.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, errorpattern.AppTable, errorpattern.AppColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ErrorPatternClient) Hooks() []Hook {
	return c.hooks.ErrorPattern
}

// Interceptors returns the client interceptors.
func (c *ErrorPatternClient) Interceptors() []Interceptor {
	return c.inters.ErrorPattern
}

func (c *ErrorPatternClient) mutate(ctx context.Context, m *ErrorPatternMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ErrorPatternCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ErrorPatternUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ErrorPatternUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ErrorPatternDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ErrorPattern mutation op: %q", m.Op())
	}
}

// ErrorRecordClient is a client for the ErrorRecord schema.
type ErrorRecordClient struct {
	config
}

// NewErrorRecordClient returns a client for the ErrorRecord from the given config.
func NewErrorRecordClient(c config) *ErrorRecordClient {
	return &ErrorRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `errorrecord.Hooks(f(g(h())))`.
func (c *ErrorRecordClient) Use(hooks ...Hook) {
	c.hooks.ErrorRecord = append(c.hooks.ErrorRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `errorrecord.Intercept(f(g(h())))`.
func (c *ErrorRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ErrorRecord = append(c.inters.ErrorRecord, interceptors...)
}

// Create returns a builder for creating a ErrorRecord entity.
func (c *ErrorRecordClient) Create() *ErrorRecordCreate {
	mutation := newErrorRecordMutation(c.config, OpCreate)
	return &ErrorRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ErrorRecord entities.
func (c *ErrorRecordClient) CreateBulk(builders ...*ErrorRecordCreate) *ErrorRecordCreateBulk {
	return &ErrorRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ErrorRecordClient) MapCreateBulk(slice any, setFunc func(*ErrorRecordCreate, int)) *ErrorRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ErrorRecordCreateBulk{err: fmt.Errorf("calling to ErrorRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ErrorRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ErrorRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ErrorRecord.
func (c *ErrorRecordClient) Update() *ErrorRecordUpdate {
	mutation := newErrorRecordMutation(c.config, OpUpdate)
	return &ErrorRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ErrorRecordClient) UpdateOne(_m *ErrorRecord) *ErrorRecordUpdateOne {
	mutation := newErrorRecordMutation(c.config, OpUpdateOne, withErrorRecord(_m))
	return &ErrorRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ErrorRecordClient) UpdateOneID(id string) *ErrorRecordUpdateOne {
	mutation := newErrorRecordMutation(c.config, OpUpdateOne, withErrorRecordID(id))
	return &ErrorRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ErrorRecord.
func (c *ErrorRecordClient) Delete() *ErrorRecordDelete {
	mutation := newErrorRecordMutation(c.config, OpDelete)
	return &ErrorRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ErrorRecordClient) DeleteOne(_m *ErrorRecord) *ErrorRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ErrorRecordClient) DeleteOneID(id string) *ErrorRecordDeleteOne {
	builder := c.Delete().Where(errorrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ErrorRecordDeleteOne{builder}
}

// Query returns a query builder for ErrorRecord.
func (c *ErrorRecordClient) Query() *ErrorRecordQuery {
	return &ErrorRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeErrorRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ErrorRecord entity by its id.
func (c *ErrorRecordClient) Get(ctx context.Context, id string) (*ErrorRecord, error) {
	return c.Query().Where(errorrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ErrorRecordClient) GetX(ctx context.Context, id string) *ErrorRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApp queries the app edge of a ErrorRecord.
func (c *ErrorRecordClient) QueryApp(_m *ErrorRecord) *AppQuery {
	query := (&AppClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(errorrecord.Table, errorrecord.FieldID, id),
			sqlgraph.To(app.Table, app.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, errorrecord.AppTable, errorrecord.AppColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ErrorRecordClient) Hooks() []Hook {
	return c.hooks.ErrorRecord
}

// Interceptors returns the client interceptors.
func (c *ErrorRecordClient) Interceptors() []Interceptor {
	return c.inters.ErrorRecord
}

func (c *ErrorRecordClient) mutate(ctx context.Context, m *ErrorRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ErrorRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ErrorRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ErrorRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ErrorRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ErrorRecord mutation op: %q", m.Op())
	}
}

// HeartbeatClient is a client for the Heartbeat schema.
type HeartbeatClient struct {
	config
}

// NewHeartbeatClient returns a client for the Heartbeat from the given config.
func NewHeartbeatClient(c config) *HeartbeatClient {
	return &HeartbeatClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `heartbeat.Hooks(f(g(h())))`.
func (c *HeartbeatClient) Use(hooks ...Hook) {
	c.hooks.Heartbeat = append(c.hooks.Heartbeat, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `heartbeat.Intercept(f(g(h())))`.
func (c *HeartbeatClient) Intercept(interceptors ...Interceptor) {
	c.inters.Heartbeat = append(c.inters.Heartbeat, interceptors...)
}

// Create returns a builder for creating a Heartbeat entity.
func (c *HeartbeatClient) Create() *HeartbeatCreate {
	mutation := newHeartbeatMutation(c.config, OpCreate)
	return &HeartbeatCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Heartbeat entities.
func (c *HeartbeatClient) CreateBulk(builders ...*HeartbeatCreate) *HeartbeatCreateBulk {
	return &HeartbeatCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HeartbeatClient) MapCreateBulk(slice any, setFunc func(*HeartbeatCreate, int)) *HeartbeatCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HeartbeatCreateBulk{err: fmt.Errorf("calling to HeartbeatClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HeartbeatCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HeartbeatCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Heartbeat.
func (c *HeartbeatClient) Update() *HeartbeatUpdate {
	mutation := newHeartbeatMutation(c.config, OpUpdate)
	return &HeartbeatUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HeartbeatClient) UpdateOne(_m *Heartbeat) *HeartbeatUpdateOne {
	mutation := newHeartbeatMutation(c.config, OpUpdateOne, withHeartbeat(_m))
	return &HeartbeatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HeartbeatClient) UpdateOneID(id string) *HeartbeatUpdateOne {
	mutation := newHeartbeatMutation(c.config, OpUpdateOne, withHeartbeatID(id))
	return &HeartbeatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Heartbeat.
func (c *HeartbeatClient) Delete() *HeartbeatDelete {
	mutation := newHeartbeatMutation(c.config, OpDelete)
	return &HeartbeatDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HeartbeatClient) DeleteOne(_m *Heartbeat) *HeartbeatDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HeartbeatClient) DeleteOneID(id string) *HeartbeatDeleteOne {
	builder := c.Delete().Where(heartbeat.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HeartbeatDeleteOne{builder}
}

// Query returns a query builder for Heartbeat.
func (c *HeartbeatClient) Query() *HeartbeatQuery {
	return &HeartbeatQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHeartbeat},
		inters: c.Interceptors(),
	}
}

// Get returns a Heartbeat entity by its id.
func (c *HeartbeatClient) Get(ctx context.Context, id string) (*Heartbeat, error) {
	return c.Query().Where(heartbeat.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HeartbeatClient) GetX(ctx context.Context, id string) *Heartbeat {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApp queries the app edge of a Heartbeat.
func (c *HeartbeatClient) QueryApp(_m *Heartbeat) *AppQuery {
	query := (&AppClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(heartbeat.Table, heartbeat.FieldID, id),
			sqlgraph.To(app.Table, app.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, heartbeat.AppTable, heartbeat.AppColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRuns queries the runs edge of a Heartbeat.
func (c *HeartbeatClient) QueryRuns(_m *Heartbeat) *HeartbeatRunQuery {
	query := (&HeartbeatRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(heartbeat.Table, heartbeat.FieldID, id),
			sqlgraph.To(heartbeatrun.Table, heartbeatrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, heartbeat.RunsTable, heartbeat.RunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HeartbeatClient) Hooks() []Hook {
	return c.hooks.Heartbeat
}

// Interceptors returns the client interceptors.
func (c *HeartbeatClient) Interceptors() []Interceptor {
	return c.inters.Heartbeat
}

func (c *HeartbeatClient) mutate(ctx context.Context, m *HeartbeatMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HeartbeatCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HeartbeatUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HeartbeatUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HeartbeatDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Heartbeat mutation op: %q", m.Op())
	}
}

// HeartbeatRunClient is a client for the HeartbeatRun schema.
type HeartbeatRunClient struct {
	config
}

// NewHeartbeatRunClient returns a client for the HeartbeatRun from the given config.
func NewHeartbeatRunClient(c config) *HeartbeatRunClient {
	return &HeartbeatRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `heartbeatrun.Hooks(f(g(h())))`.
func (c *HeartbeatRunClient) Use(hooks ...Hook) {
	c.hooks.HeartbeatRun = append(c.hooks.HeartbeatRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `heartbeatrun.Intercept(f(g(h())))`.
func (c *HeartbeatRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.HeartbeatRun = append(c.inters.HeartbeatRun, interceptors...)
}

// Create returns a builder for creating a HeartbeatRun entity.
func (c *HeartbeatRunClient) Create() *HeartbeatRunCreate {
	mutation := newHeartbeatRunMutation(c.config, OpCreate)
	return &HeartbeatRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HeartbeatRun entities.
func (c *HeartbeatRunClient) CreateBulk(builders ...*HeartbeatRunCreate) *HeartbeatRunCreateBulk {
	return &HeartbeatRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HeartbeatRunClient) MapCreateBulk(slice any, setFunc func(*HeartbeatRunCreate, int)) *HeartbeatRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HeartbeatRunCreateBulk{err: fmt.Errorf("calling to HeartbeatRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HeartbeatRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HeartbeatRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HeartbeatRun.
func (c *HeartbeatRunClient) Update() *HeartbeatRunUpdate {
	mutation := newHeartbeatRunMutation(c.config, OpUpdate)
	return &HeartbeatRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HeartbeatRunClient) UpdateOne(_m *HeartbeatRun) *HeartbeatRunUpdateOne {
	mutation := newHeartbeatRunMutation(c.config, OpUpdateOne, withHeartbeatRun(_m))
	return &HeartbeatRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HeartbeatRunClient) UpdateOneID(id string) *HeartbeatRunUpdateOne {
	mutation := newHeartbeatRunMutation(c.config, OpUpdateOne, withHeartbeatRunID(id))
	return &HeartbeatRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HeartbeatRun.
func (c *HeartbeatRunClient) Delete() *HeartbeatRunDelete {
	mutation := newHeartbeatRunMutation(c.config, OpDelete)
	return &HeartbeatRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HeartbeatRunClient) DeleteOne(_m *HeartbeatRun) *HeartbeatRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HeartbeatRunClient) DeleteOneID(id string) *HeartbeatRunDeleteOne {
	builder := c.Delete().Where(heartbeatrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HeartbeatRunDeleteOne{builder}
}

// Query returns a query builder for HeartbeatRun.
func (c *HeartbeatRunClient) Query() *HeartbeatRunQuery {
	return &HeartbeatRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHeartbeatRun},
		inters: c.Interceptors(),
	}
}

// Get returns a HeartbeatRun entity by its id.
func (c *HeartbeatRunClient) Get(ctx context.Context, id string) (*HeartbeatRun, error) {
	return c.Query().Where(heartbeatrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HeartbeatRunClient) GetX(ctx context.Context, id string) *HeartbeatRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryHeartbeat queries the heartbeat edge of a HeartbeatRun.
func (c *HeartbeatRunClient) QueryHeartbeat(_m *HeartbeatRun) *HeartbeatQuery {
	query := (&HeartbeatClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(heartbeatrun.Table, heartbeatrun.FieldID, id),
			sqlgraph.To(heartbeat.Table, heartbeat.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, heartbeatrun.HeartbeatTable, heartbeatrun.HeartbeatColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HeartbeatRunClient) Hooks() []Hook {
	return c.hooks.HeartbeatRun
}

// Interceptors returns the client interceptors.
func (c *HeartbeatRunClient) Interceptors() []Interceptor {
	return c.inters.HeartbeatRun
}

func (c *HeartbeatRunClient) mutate(ctx context.Context, m *HeartbeatRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HeartbeatRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HeartbeatRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HeartbeatRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HeartbeatRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HeartbeatRun mutation op: %q", m.Op())
	}
}

// KnowledgeEntryClient is a client for the KnowledgeEntry schema.
type KnowledgeEntryClient struct {
	config
}

// NewKnowledgeEntryClient returns a client for the KnowledgeEntry from the given config.
func NewKnowledgeEntryClient(c config) *KnowledgeEntryClient {
	return &KnowledgeEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `knowledgeentry.Hooks(f(g(h())))`.
func (c *KnowledgeEntryClient) Use(hooks ...Hook) {
	c.hooks.KnowledgeEntry = append(c.hooks.KnowledgeEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `knowledgeentry.Intercept(f(g(h())))`.
func (c *KnowledgeEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.KnowledgeEntry = append(c.inters.KnowledgeEntry, interceptors...)
}

// Create returns a builder for creating a KnowledgeEntry entity.
func (c *KnowledgeEntryClient) Create() *KnowledgeEntryCreate {
	mutation := newKnowledgeEntryMutation(c.config, OpCreate)
	return &KnowledgeEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KnowledgeEntry entities.
func (c *KnowledgeEntryClient) CreateBulk(builders ...*KnowledgeEntryCreate) *KnowledgeEntryCreateBulk {
	return &KnowledgeEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KnowledgeEntryClient) MapCreateBulk(slice any, setFunc func(*KnowledgeEntryCreate, int)) *KnowledgeEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KnowledgeEntryCreateBulk{err: fmt.Errorf("calling to KnowledgeEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KnowledgeEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KnowledgeEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KnowledgeEntry.
func (c *KnowledgeEntryClient) Update() *KnowledgeEntryUpdate {
	mutation := newKnowledgeEntryMutation(c.config, OpUpdate)
	return &KnowledgeEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KnowledgeEntryClient) UpdateOne(_m *KnowledgeEntry) *KnowledgeEntryUpdateOne {
	mutation := newKnowledgeEntryMutation(c.config, OpUpdateOne, withKnowledgeEntry(_m))
	return &KnowledgeEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KnowledgeEntryClient) UpdateOneID(id string) *KnowledgeEntryUpdateOne {
	mutation := newKnowledgeEntryMutation(c.config, OpUpdateOne, withKnowledgeEntryID(id))
	return &KnowledgeEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KnowledgeEntry.
func (c *KnowledgeEntryClient) Delete() *KnowledgeEntryDelete {
	mutation := newKnowledgeEntryMutation(c.config, OpDelete)
	return &KnowledgeEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KnowledgeEntryClient) DeleteOne(_m *KnowledgeEntry) *KnowledgeEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KnowledgeEntryClient) DeleteOneID(id string) *KnowledgeEntryDeleteOne {
	builder := c.Delete().Where(knowledgeentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KnowledgeEntryDeleteOne{builder}
}

// Query returns a query builder for KnowledgeEntry.
func (c *KnowledgeEntryClient) Query() *KnowledgeEntryQuery {
	return &KnowledgeEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKnowledgeEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a KnowledgeEntry entity by its id.
func (c *KnowledgeEntryClient) Get(ctx context.Context, id string) (*KnowledgeEntry, error) {
	return c.Query().Where(knowledgeentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KnowledgeEntryClient) GetX(ctx context.Context, id string) *KnowledgeEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApp queries the app edge of a KnowledgeEntry.
func (c *KnowledgeEntryClient) QueryApp(_m *KnowledgeEntry) *AppQuery {
	query := (&AppClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(knowledgeentry.Table, knowledgeentry.FieldID, id),
			sqlgraph.To(app.Table, app.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, knowledgeentry.AppTable, knowledgeentry.AppColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *KnowledgeEntryClient) Hooks() []Hook {
	return c.hooks.KnowledgeEntry
}

// Interceptors returns the client interceptors.
func (c *KnowledgeEntryClient) Interceptors() []Interceptor {
	return c.inters.KnowledgeEntry
}

func (c *KnowledgeEntryClient) mutate(ctx context.Context, m *KnowledgeEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KnowledgeEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KnowledgeEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KnowledgeEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KnowledgeEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KnowledgeEntry mutation op: %q", m.Op())
	}
}

// KnowledgeSyncStateClient is a client for the KnowledgeSyncState schema.
type KnowledgeSyncStateClient struct {
	config
}

// NewKnowledgeSyncStateClient returns a client for the KnowledgeSyncState from the given config.
func NewKnowledgeSyncStateClient(c config) *KnowledgeSyncStateClient {
	return &KnowledgeSyncStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `knowledgesyncstate.Hooks(f(g(h())))`.
func (c *KnowledgeSyncStateClient) Use(hooks ...Hook) {
	c.hooks.KnowledgeSyncState = append(c.hooks.KnowledgeSyncState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `knowledgesyncstate.Intercept(f(g(h())))`.
func (c *KnowledgeSyncStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.KnowledgeSyncState = append(c.inters.KnowledgeSyncState, interceptors...)
}

// Create returns a builder for creating a KnowledgeSyncState entity.
func (c *KnowledgeSyncStateClient) Create() *KnowledgeSyncStateCreate {
	mutation := newKnowledgeSyncStateMutation(c.config, OpCreate)
	return &KnowledgeSyncStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KnowledgeSyncState entities.
func (c *KnowledgeSyncStateClient) CreateBulk(builders ...*KnowledgeSyncStateCreate) *KnowledgeSyncStateCreateBulk {
	return &KnowledgeSyncStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KnowledgeSyncStateClient) MapCreateBulk(slice any, setFunc func(*KnowledgeSyncStateCreate, int)) *KnowledgeSyncStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KnowledgeSyncStateCreateBulk{err: fmt.Errorf("calling to KnowledgeSyncStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KnowledgeSyncStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KnowledgeSyncStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KnowledgeSyncState.
func (c *KnowledgeSyncStateClient) Update() *KnowledgeSyncStateUpdate {
	mutation := newKnowledgeSyncStateMutation(c.config, OpUpdate)
	return &KnowledgeSyncStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KnowledgeSyncStateClient) UpdateOne(_m *KnowledgeSyncState) *KnowledgeSyncStateUpdateOne {
	mutation := newKnowledgeSyncStateMutation(c.config, OpUpdateOne, withKnowledgeSyncState(_m))
	return &KnowledgeSyncStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KnowledgeSyncStateClient) UpdateOneID(id string) *KnowledgeSyncStateUpdateOne {
	mutation := newKnowledgeSyncStateMutation(c.config, OpUpdateOne, withKnowledgeSyncStateID(id))
	return &KnowledgeSyncStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KnowledgeSyncState.
func (c *KnowledgeSyncStateClient) Delete() *KnowledgeSyncStateDelete {
	mutation := newKnowledgeSyncStateMutation(c.config, OpDelete)
	return &KnowledgeSyncStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KnowledgeSyncStateClient) DeleteOne(_m *KnowledgeSyncState) *KnowledgeSyncStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KnowledgeSyncStateClient) DeleteOneID(id string) *KnowledgeSyncStateDeleteOne {
	builder := c.Delete().Where(knowledgesyncstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KnowledgeSyncStateDeleteOne{builder}
}

// Query returns a query builder for KnowledgeSyncState.
func (c *KnowledgeSyncStateClient) Query() *KnowledgeSyncStateQuery {
	return &KnowledgeSyncStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKnowledgeSyncState},
		inters: c.Interceptors(),
	}
}

// Get returns a KnowledgeSyncState entity by its id.
func (c *KnowledgeSyncStateClient) Get(ctx context.Context, id string) (*KnowledgeSyncState, error) {
	return c.Query().Where(knowledgesyncstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KnowledgeSyncStateClient) GetX(ctx context.Context, id string) *KnowledgeSyncState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApp queries the app edge of a KnowledgeSyncState.
func (c *KnowledgeSyncStateClient) QueryApp(_m *KnowledgeSyncState) *AppQuery {
	query := (&AppClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(knowledgesyncstate.Table, knowledgesyncstate.FieldID, id),
			sqlgraph.To(app.Table, app.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, knowledgesyncstate.AppTable, knowledgesyncstate.AppColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *KnowledgeSyncStateClient) Hooks() []Hook {
	return c.hooks.KnowledgeSyncState
}

// Interceptors returns the client interceptors.
func (c *KnowledgeSyncStateClient) Interceptors() []Interceptor {
	return c.inters.KnowledgeSyncState
}

func (c *KnowledgeSyncStateClient) mutate(ctx context.Context, m *KnowledgeSyncStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KnowledgeSyncStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KnowledgeSyncStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KnowledgeSyncStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KnowledgeSyncStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KnowledgeSyncState mutation op: %q", m.Op())
	}
}

// NotificationChannelClient is a client for the NotificationChannel schema.
type NotificationChannelClient struct {
	config
}

// NewNotificationChannelClient returns a client for the NotificationChannel from the given config.
func NewNotificationChannelClient(c config) *NotificationChannelClient {
	return &NotificationChannelClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notificationchannel.Hooks(f(g(h())))`.
func (c *NotificationChannelClient) Use(hooks ...Hook) {
	c.hooks.NotificationChannel = append(c.hooks.NotificationChannel, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notificationchannel.Intercept(f(g(h())))`.
func (c *NotificationChannelClient) Intercept(interceptors ...Interceptor) {
	c.inters.NotificationChannel = append(c.inters.NotificationChannel, interceptors...)
}

// Create returns a builder for creating a NotificationChannel entity.
func (c *NotificationChannelClient) Create() *NotificationChannelCreate {
	mutation := newNotificationChannelMutation(c.config, OpCreate)
	return &NotificationChannelCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NotificationChannel entities.
func (c *NotificationChannelClient) CreateBulk(builders ...*NotificationChannelCreate) *NotificationChannelCreateBulk {
	return &NotificationChannelCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationChannelClient) MapCreateBulk(slice any, setFunc func(*NotificationChannelCreate, int)) *NotificationChannelCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationChannelCreateBulk{err: fmt.Errorf("calling to NotificationChannelClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationChannelCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationChannelCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NotificationChannel.
func (c *NotificationChannelClient) Update() *NotificationChannelUpdate {
	mutation := newNotificationChannelMutation(c.config, OpUpdate)
	return &NotificationChannelUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationChannelClient) UpdateOne(_m *NotificationChannel) *NotificationChannelUpdateOne {
	mutation := newNotificationChannelMutation(c.config, OpUpdateOne, withNotificationChannel(_m))
	return &NotificationChannelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationChannelClient) UpdateOneID(id string) *NotificationChannelUpdateOne {
	mutation := newNotificationChannelMutation(c.config, OpUpdateOne, withNotificationChannelID(id))
	return &NotificationChannelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NotificationChannel.
func (c *NotificationChannelClient) Delete() *NotificationChannelDelete {
	mutation := newNotificationChannelMutation(c.config, OpDelete)
	return &NotificationChannelDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationChannelClient) DeleteOne(_m *NotificationChannel) *NotificationChannelDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationChannelClient) DeleteOneID(id string) *NotificationChannelDeleteOne {
	builder := c.Delete().Where(notificationchannel.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationChannelDeleteOne{builder}
}

// Query returns a query builder for NotificationChannel.
func (c *NotificationChannelClient) Query() *NotificationChannelQuery {
	return &NotificationChannelQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotificationChannel},
		inters: c.Interceptors(),
	}
}

// Get returns a NotificationChannel entity by its id.
func (c *NotificationChannelClient) Get(ctx context.Context, id string) (*NotificationChannel, error) {
	return c.Query().Where(notificationchannel.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationChannelClient) GetX(ctx context.Context, id string) *NotificationChannel {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApp queries the app edge of a NotificationChannel.
func (c *NotificationChannelClient) QueryApp(_m *NotificationChannel) *AppQuery {
	query := (&AppClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(notificationchannel.Table, notificationchannel.FieldID, id),
			sqlgraph.To(app.Table, app.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, notificationchannel.AppTable, notificationchannel.AppColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *NotificationChannelClient) Hooks() []Hook {
	return c.hooks.NotificationChannel
}

// Interceptors returns the client interceptors.
func (c *NotificationChannelClient) Interceptors() []Interceptor {
	return c.inters.NotificationChannel
}

func (c *NotificationChannelClient) mutate(ctx context.Context, m *NotificationChannelMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationChannelCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationChannelUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationChannelUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationChannelDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NotificationChannel mutation op: %q", m.Op())
	}
}

// NotificationHistoryClient is a client for the NotificationHistory schema.
type NotificationHistoryClient struct {
	config
}

// NewNotificationHistoryClient returns a client for the NotificationHistory from the given config.
func NewNotificationHistoryClient(c config) *NotificationHistoryClient {
	return &NotificationHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notificationhistory.Hooks(f(g(h())))`.
func (c *NotificationHistoryClient) Use(hooks ...Hook) {
	c.hooks.NotificationHistory = append(c.hooks.NotificationHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notificationhistory.Intercept(f(g(h())))`.
func (c *NotificationHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.NotificationHistory = append(c.inters.NotificationHistory, interceptors...)
}

// Create returns a builder for creating a NotificationHistory entity.
func (c *NotificationHistoryClient) Create() *NotificationHistoryCreate {
	mutation := newNotificationHistoryMutation(c.config, OpCreate)
	return &NotificationHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NotificationHistory entities.
func (c *NotificationHistoryClient) CreateBulk(builders ...*NotificationHistoryCreate) *NotificationHistoryCreateBulk {
	return &NotificationHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationHistoryClient) MapCreateBulk(slice any, setFunc func(*NotificationHistoryCreate, int)) *NotificationHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationHistoryCreateBulk{err: fmt.Errorf("calling to NotificationHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NotificationHistory.
func (c *NotificationHistoryClient) Update() *NotificationHistoryUpdate {
	mutation := newNotificationHistoryMutation(c.config, OpUpdate)
	return &NotificationHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationHistoryClient) UpdateOne(_m *NotificationHistory) *NotificationHistoryUpdateOne {
	mutation := newNotificationHistoryMutation(c.config, OpUpdateOne, withNotificationHistory(_m))
	return &NotificationHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationHistoryClient) UpdateOneID(id string) *NotificationHistoryUpdateOne {
	mutation := newNotificationHistoryMutation(c.config, OpUpdateOne, withNotificationHistoryID(id))
	return &NotificationHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NotificationHistory.
func (c *NotificationHistoryClient) Delete() *NotificationHistoryDelete {
	mutation := newNotificationHistoryMutation(c.config, OpDelete)
	return &NotificationHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationHistoryClient) DeleteOne(_m *NotificationHistory) *NotificationHistoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationHistoryClient) DeleteOneID(id string) *NotificationHistoryDeleteOne {
	builder := c.Delete().Where(notificationhistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationHistoryDeleteOne{builder}
}

// Query returns a query builder for NotificationHistory.
func (c *NotificationHistoryClient) Query() *NotificationHistoryQuery {
	return &NotificationHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotificationHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a NotificationHistory entity by its id.
func (c *NotificationHistoryClient) Get(ctx context.Context, id string) (*NotificationHistory, error) {
	return c.Query().Where(notificationhistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationHistoryClient) GetX(ctx context.Context, id string) *NotificationHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApp queries the app edge of a NotificationHistory.
func (c *NotificationHistoryClient) QueryApp(_m *NotificationHistory) *AppQuery {
	query := (&AppClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(notificationhistory.Table, notificationhistory.FieldID, id),
			sqlgraph.To(app.Table, app.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, notificationhistory.AppTable, notificationhistory.AppColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *NotificationHistoryClient) Hooks() []Hook {
	return c.hooks.NotificationHistory
}

// Interceptors returns the client interceptors.
func (c *NotificationHistoryClient) Interceptors() []Interceptor {
	return c.inters.NotificationHistory
}

func (c *NotificationHistoryClient) mutate(ctx context.Context, m *NotificationHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NotificationHistory mutation op: %q", m.Op())
	}
}

// NotificationPreferenceClient is a client for the NotificationPreference schema.
type NotificationPreferenceClient struct {
	config
}

// NewNotificationPreferenceClient returns a client for the NotificationPreference from the given config.
func NewNotificationPreferenceClient(c config) *NotificationPreferenceClient {
	return &NotificationPreferenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notificationpreference.Hooks(f(g(h())))`.
func (c *NotificationPreferenceClient) Use(hooks ...Hook) {
	c.hooks.NotificationPreference = append(c.hooks.NotificationPreference, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notificationpreference.Intercept(f(g(h())))`.
func (c *NotificationPreferenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.NotificationPreference = append(c.inters.NotificationPreference, interceptors...)
}

// Create returns a builder for creating a NotificationPreference entity.
func (c *NotificationPreferenceClient) Create() *NotificationPreferenceCreate {
	mutation := newNotificationPreferenceMutation(c.config, OpCreate)
	return &NotificationPreferenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NotificationPreference entities.
func (c *NotificationPreferenceClient) CreateBulk(builders ...*NotificationPreferenceCreate) *NotificationPreferenceCreateBulk {
	return &NotificationPreferenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationPreferenceClient) MapCreateBulk(slice any, setFunc func(*NotificationPreferenceCreate, int)) *NotificationPreferenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationPreferenceCreateBulk{err: fmt.Errorf("calling to NotificationPreferenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationPreferenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationPreferenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NotificationPreference.
func (c *NotificationPreferenceClient) Update() *NotificationPreferenceUpdate {
	mutation := newNotificationPreferenceMutation(c.config, OpUpdate)
	return &NotificationPreferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationPreferenceClient) UpdateOne(_m *NotificationPreference) *NotificationPreferenceUpdateOne {
	mutation := newNotificationPreferenceMutation(c.config, OpUpdateOne, withNotificationPreference(_m))
	return &NotificationPreferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationPreferenceClient) UpdateOneID(id string) *NotificationPreferenceUpdateOne {
	mutation := newNotificationPreferenceMutation(c.config, OpUpdateOne, withNotificationPreferenceID(id))
	return &NotificationPreferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NotificationPreference.
func (c *NotificationPreferenceClient) Delete() *NotificationPreferenceDelete {
	mutation := newNotificationPreferenceMutation(c.config, OpDelete)
	return &NotificationPreferenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationPreferenceClient) DeleteOne(_m *NotificationPreference) *NotificationPreferenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationPreferenceClient) DeleteOneID(id string) *NotificationPreferenceDeleteOne {
	builder := c.Delete().Where(notificationpreference.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationPreferenceDeleteOne{builder}
}

// Query returns a query builder for NotificationPreference.
func (c *NotificationPreferenceClient) Query() *NotificationPreferenceQuery {
	return &NotificationPreferenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotificationPreference},
		inters: c.Interceptors(),
	}
}

// Get returns a NotificationPreference entity by its id.
func (c *NotificationPreferenceClient) Get(ctx context.Context, id string) (*NotificationPreference, error) {
	return c.Query().Where(notificationpreference.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationPreferenceClient) GetX(ctx context.Context, id string) *NotificationPreference {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApp queries the app edge of a NotificationPreference.
func (c *NotificationPreferenceClient) QueryApp(_m *NotificationPreference) *AppQuery {
	query := (&AppClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(notificationpreference.Table, notificationpreference.FieldID, id),
			sqlgraph.To(app.Table, app.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, notificationpreference.AppTable, notificationpreference.AppColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *NotificationPreferenceClient) Hooks() []Hook {
	return c.hooks.NotificationPreference
}

// Interceptors returns the client interceptors.
func (c *NotificationPreferenceClient) Interceptors() []Interceptor {
	return c.inters.NotificationPreference
}

func (c *NotificationPreferenceClient) mutate(ctx context.Context, m *NotificationPreferenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationPreferenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationPreferenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationPreferenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationPreferenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown NotificationPreference mutation op: %q", m.Op())
	}
}

// RoomLearningClient is a client for the RoomLearning schema.
type RoomLearningClient struct {
	config
}

// NewRoomLearningClient returns a client for the RoomLearning from the given config.
func NewRoomLearningClient(c config) *RoomLearningClient {
	return &RoomLearningClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `roomlearning.Hooks(f(g(h())))`.
func (c *RoomLearningClient) Use(hooks ...Hook) {
	c.hooks.RoomLearning = append(c.hooks.RoomLearning, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `roomlearning.Intercept(f(g(h())))`.
func (c *RoomLearningClient) Intercept(interceptors ...Interceptor) {
	c.inters.RoomLearning = append(c.inters.RoomLearning, interceptors...)
}

// Create returns a builder for creating a RoomLearning entity.
func (c *RoomLearningClient) Create() *RoomLearningCreate {
	mutation := newRoomLearningMutation(c.config, OpCreate)
	return &RoomLearningCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RoomLearning entities.
func (c *RoomLearningClient) CreateBulk(builders ...*RoomLearningCreate) *RoomLearningCreateBulk {
	return &RoomLearningCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RoomLearningClient) MapCreateBulk(slice any, setFunc func(*RoomLearningCreate, int)) *RoomLearningCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RoomLearningCreateBulk{err: fmt.Errorf("calling to RoomLearningClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RoomLearningCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RoomLearningCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RoomLearning.
func (c *RoomLearningClient) Update() *RoomLearningUpdate {
	mutation := newRoomLearningMutation(c.config, OpUpdate)
	return &RoomLearningUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RoomLearningClient) UpdateOne(_m *RoomLearning) *RoomLearningUpdateOne {
	mutation := newRoomLearningMutation(c.config, OpUpdateOne, withRoomLearning(_m))
	return &RoomLearningUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RoomLearningClient) UpdateOneID(id string) *RoomLearningUpdateOne {
	mutation := newRoomLearningMutation(c.config, OpUpdateOne, withRoomLearningID(id))
	return &RoomLearningUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RoomLearning.
func (c *RoomLearningClient) Delete() *RoomLearningDelete {
	mutation := newRoomLearningMutation(c.config, OpDelete)
	return &RoomLearningDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RoomLearningClient) DeleteOne(_m *RoomLearning) *RoomLearningDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RoomLearningClient) DeleteOneID(id string) *RoomLearningDeleteOne {
	builder := c.Delete().Where(roomlearning.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RoomLearningDeleteOne{builder}
}

// Query returns a query builder for RoomLearning.
func (c *RoomLearningClient) Query() *RoomLearningQuery {
	return &RoomLearningQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRoomLearning},
		inters: c.Interceptors(),
	}
}

// Get returns a RoomLearning entity by its id.
func (c *RoomLearningClient) Get(ctx context.Context, id string) (*RoomLearning, error) {
	return c.Query().Where(roomlearning.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RoomLearningClient) GetX(ctx context.Context, id string) *RoomLearning {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RoomLearningClient) Hooks() []Hook {
	return c.hooks.RoomLearning
}

// Interceptors returns the client interceptors.
func (c *RoomLearningClient) Interceptors() []Interceptor {
	return c.inters.RoomLearning
}

func (c *RoomLearningClient) mutate(ctx context.Context, m *RoomLearningMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RoomLearningCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RoomLearningUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RoomLearningUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RoomLearningDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RoomLearning mutation op: %q", m.Op())
	}
}

// RoomSyncStateClient is a client for the RoomSyncState schema.
type RoomSyncStateClient struct {
	config
}

// NewRoomSyncStateClient returns a client for the RoomSyncState from the given config.
func NewRoomSyncStateClient(c config) *RoomSyncStateClient {
	return &RoomSyncStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `roomsyncstate.Hooks(f(g(h())))`.
func (c *RoomSyncStateClient) Use(hooks ...Hook) {
	c.hooks.RoomSyncState = append(c.hooks.RoomSyncState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `roomsyncstate.Intercept(f(g(h())))`.
func (c *RoomSyncStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.RoomSyncState = append(c.inters.RoomSyncState, interceptors...)
}

// Create returns a builder for creating a RoomSyncState entity.
func (c *RoomSyncStateClient) Create() *RoomSyncStateCreate {
	mutation := newRoomSyncStateMutation(c.config, OpCreate)
	return &RoomSyncStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RoomSyncState entities.
func (c *RoomSyncStateClient) CreateBulk(builders ...*RoomSyncStateCreate) *RoomSyncStateCreateBulk {
	return &RoomSyncStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RoomSyncStateClient) MapCreateBulk(slice any, setFunc func(*RoomSyncStateCreate, int)) *RoomSyncStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RoomSyncStateCreateBulk{err: fmt.Errorf("calling to RoomSyncStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RoomSyncStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RoomSyncStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RoomSyncState.
func (c *RoomSyncStateClient) Update() *RoomSyncStateUpdate {
	mutation := newRoomSyncStateMutation(c.config, OpUpdate)
	return &RoomSyncStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RoomSyncStateClient) UpdateOne(_m *RoomSyncState) *RoomSyncStateUpdateOne {
	mutation := newRoomSyncStateMutation(c.config, OpUpdateOne, withRoomSyncState(_m))
	return &RoomSyncStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RoomSyncStateClient) UpdateOneID(id string) *RoomSyncStateUpdateOne {
	mutation := newRoomSyncStateMutation(c.config, OpUpdateOne, withRoomSyncStateID(id))
	return &RoomSyncStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RoomSyncState.
func (c *RoomSyncStateClient) Delete() *RoomSyncStateDelete {
	mutation := newRoomSyncStateMutation(c.config, OpDelete)
	return &RoomSyncStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RoomSyncStateClient) DeleteOne(_m *RoomSyncState) *RoomSyncStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RoomSyncStateClient) DeleteOneID(id string) *RoomSyncStateDeleteOne {
	builder := c.Delete().Where(roomsyncstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RoomSyncStateDeleteOne{builder}
}

// Query returns a query builder for RoomSyncState.
func (c *RoomSyncStateClient) Query() *RoomSyncStateQuery {
	return &RoomSyncStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRoomSyncState},
		inters: c.Interceptors(),
	}
}

// Get returns a RoomSyncState entity by its id.
func (c *RoomSyncStateClient) Get(ctx context.Context, id string) (*RoomSyncState, error) {
	return c.Query().Where(roomsyncstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RoomSyncStateClient) GetX(ctx context.Context, id string) *RoomSyncState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RoomSyncStateClient) Hooks() []Hook {
	return c.hooks.RoomSyncState
}

// Interceptors returns the client interceptors.
func (c *RoomSyncStateClient) Interceptors() []Interceptor {
	return c.inters.RoomSyncState
}

func (c *RoomSyncStateClient) mutate(ctx context.Context, m *RoomSyncStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RoomSyncStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RoomSyncStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RoomSyncStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RoomSyncStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RoomSyncState mutation op: %q", m.Op())
	}
}

// SavedArrangementClient is a client for the SavedArrangement schema.
type SavedArrangementClient struct {
	config
}

// NewSavedArrangementClient returns a client for the SavedArrangement from the given config.
func NewSavedArrangementClient(c config) *SavedArrangementClient {
	return &SavedArrangementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `savedarrangement.Hooks(f(g(h())))`.
func (c *SavedArrangementClient) Use(hooks ...Hook) {
	c.hooks.SavedArrangement = append(c.hooks.SavedArrangement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `savedarrangement.Intercept(f(g(h())))`.
func (c *SavedArrangementClient) Intercept(interceptors ...Interceptor) {
	c.inters.SavedArrangement = append(c.inters.SavedArrangement, interceptors...)
}

// Create returns a builder for creating a SavedArrangement entity.
func (c *SavedArrangementClient) Create() *SavedArrangementCreate {
	mutation := newSavedArrangementMutation(c.config, OpCreate)
	return &SavedArrangementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SavedArrangement entities.
func (c *SavedArrangementClient) CreateBulk(builders ...*SavedArrangementCreate) *SavedArrangementCreateBulk {
	return &SavedArrangementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SavedArrangementClient) MapCreateBulk(slice any, setFunc func(*SavedArrangementCreate, int)) *SavedArrangementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SavedArrangementCreateBulk{err: fmt.Errorf("calling to SavedArrangementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SavedArrangementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SavedArrangementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SavedArrangement.
func (c *SavedArrangementClient) Update() *SavedArrangementUpdate {
	mutation := newSavedArrangementMutation(c.config, OpUpdate)
	return &SavedArrangementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SavedArrangementClient) UpdateOne(_m *SavedArrangement) *SavedArrangementUpdateOne {
	mutation := newSavedArrangementMutation(c.config, OpUpdateOne, withSavedArrangement(_m))
	return &SavedArrangementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SavedArrangementClient) UpdateOneID(id string) *SavedArrangementUpdateOne {
	mutation := newSavedArrangementMutation(c.config, OpUpdateOne, withSavedArrangementID(id))
	return &SavedArrangementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SavedArrangement.
func (c *SavedArrangementClient) Delete() *SavedArrangementDelete {
	mutation := newSavedArrangementMutation(c.config, OpDelete)
	return &SavedArrangementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SavedArrangementClient) DeleteOne(_m *SavedArrangement) *SavedArrangementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SavedArrangementClient) DeleteOneID(id string) *SavedArrangementDeleteOne {
	builder := c.Delete().Where(savedarrangement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SavedArrangementDeleteOne{builder}
}

// Query returns a query builder for SavedArrangement.
func (c *SavedArrangementClient) Query() *SavedArrangementQuery {
	return &SavedArrangementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSavedArrangement},
		inters: c.Interceptors(),
	}
}

// Get returns a SavedArrangement entity by its id.
func (c *SavedArrangementClient) Get(ctx context.Context, id string) (*SavedArrangement, error) {
	return c.Query().Where(savedarrangement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SavedArrangementClient) GetX(ctx context.Context, id string) *SavedArrangement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApp queries the app edge of a SavedArrangement.
func (c *SavedArrangementClient) QueryApp(_m *SavedArrangement) *AppQuery {
	query := (&AppClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(savedarrangement.Table, savedarrangement.FieldID, id),
			sqlgraph.To(app.Table, app.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, savedarrangement.AppTable, savedarrangement.AppColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SavedArrangementClient) Hooks() []Hook {
	return c.hooks.SavedArrangement
}

// Interceptors returns the client interceptors.
func (c *SavedArrangementClient) Interceptors() []Interceptor {
	return c.inters.SavedArrangement
}

func (c *SavedArrangementClient) mutate(ctx context.Context, m *SavedArrangementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SavedArrangementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SavedArrangementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SavedArrangementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SavedArrangementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SavedArrangement mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApp queries the app edge of a Task.
func (c *TaskClient) QueryApp(_m *Task) *AppQuery {
	query := (&AppClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(app.Table, app.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, task.AppTable, task.AppColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryIterations queries the iterations edge of a Task.
func (c *TaskClient) QueryIterations(_m *Task) *TaskIterationQuery {
	query := (&TaskIterationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(taskiteration.Table, taskiteration.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.IterationsTable, task.IterationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TaskIterationClient is a client for the TaskIteration schema.
type TaskIterationClient struct {
	config
}

// NewTaskIterationClient returns a client for the TaskIteration from the given config.
func NewTaskIterationClient(c config) *TaskIterationClient {
	return &TaskIterationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskiteration.Hooks(f(g(h())))`.
func (c *TaskIterationClient) Use(hooks ...Hook) {
	c.hooks.TaskIteration = append(c.hooks.TaskIteration, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskiteration.Intercept(f(g(h())))`.
func (c *TaskIterationClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskIteration = append(c.inters.TaskIteration, interceptors...)
}

// Create returns a builder for creating a TaskIteration entity.
func (c *TaskIterationClient) Create() *TaskIterationCreate {
	mutation := newTaskIterationMutation(c.config, OpCreate)
	return &TaskIterationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskIteration entities.
func (c *TaskIterationClient) CreateBulk(builders ...*TaskIterationCreate) *TaskIterationCreateBulk {
	return &TaskIterationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskIterationClient) MapCreateBulk(slice any, setFunc func(*TaskIterationCreate, int)) *TaskIterationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskIterationCreateBulk{err: fmt.Errorf("calling to TaskIterationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskIterationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskIterationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskIteration.
func (c *TaskIterationClient) Update() *TaskIterationUpdate {
	mutation := newTaskIterationMutation(c.config, OpUpdate)
	return &TaskIterationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskIterationClient) UpdateOne(_m *TaskIteration) *TaskIterationUpdateOne {
	mutation := newTaskIterationMutation(c.config, OpUpdateOne, withTaskIteration(_m))
	return &TaskIterationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskIterationClient) UpdateOneID(id string) *TaskIterationUpdateOne {
	mutation := newTaskIterationMutation(c.config, OpUpdateOne, withTaskIterationID(id))
	return &TaskIterationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskIteration.
func (c *TaskIterationClient) Delete() *TaskIterationDelete {
	mutation := newTaskIterationMutation(c.config, OpDelete)
	return &TaskIterationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskIterationClient) DeleteOne(_m *TaskIteration) *TaskIterationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskIterationClient) DeleteOneID(id string) *TaskIterationDeleteOne {
	builder := c.Delete().Where(taskiteration.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskIterationDeleteOne{builder}
}

// Query returns a query builder for TaskIteration.
func (c *TaskIterationClient) Query() *TaskIterationQuery {
	return &TaskIterationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskIteration},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskIteration entity by its id.
func (c *TaskIterationClient) Get(ctx context.Context, id string) (*TaskIteration, error) {
	return c.Query().Where(taskiteration.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskIterationClient) GetX(ctx context.Context, id string) *TaskIteration {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a TaskIteration.
func (c *TaskIterationClient) QueryTask(_m *TaskIteration) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskiteration.Table, taskiteration.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taskiteration.TaskTable, taskiteration.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskIterationClient) Hooks() []Hook {
	return c.hooks.TaskIteration
}

// Interceptors returns the client interceptors.
func (c *TaskIterationClient) Interceptors() []Interceptor {
	return c.inters.TaskIteration
}

func (c *TaskIterationClient) mutate(ctx context.Context, m *TaskIterationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskIterationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskIterationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskIterationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskIterationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskIteration mutation op: %q", m.Op())
	}
}

// UserProfileClient is a client for the UserProfile schema.
type UserProfileClient struct {
	config
}

// NewUserProfileClient returns a client for the UserProfile from the given config.
func NewUserProfileClient(c config) *UserProfileClient {
	return &UserProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userprofile.Hooks(f(g(h())))`.
func (c *UserProfileClient) Use(hooks ...Hook) {
	c.hooks.UserProfile = append(c.hooks.UserProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userprofile.Intercept(f(g(h())))`.
func (c *UserProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserProfile = append(c.inters.UserProfile, interceptors...)
}

// Create returns a builder for creating a UserProfile entity.
func (c *UserProfileClient) Create() *UserProfileCreate {
	mutation := newUserProfileMutation(c.config, OpCreate)
	return &UserProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserProfile entities.
func (c *UserProfileClient) CreateBulk(builders ...*UserProfileCreate) *UserProfileCreateBulk {
	return &UserProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserProfileClient) MapCreateBulk(slice any, setFunc func(*UserProfileCreate, int)) *UserProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserProfileCreateBulk{err: fmt.Errorf("calling to UserProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserProfile.
func (c *UserProfileClient) Update() *UserProfileUpdate {
	mutation := newUserProfileMutation(c.config, OpUpdate)
	return &UserProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserProfileClient) UpdateOne(_m *UserProfile) *UserProfileUpdateOne {
	mutation := newUserProfileMutation(c.config, OpUpdateOne, withUserProfile(_m))
	return &UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserProfileClient) UpdateOneID(id string) *UserProfileUpdateOne {
	mutation := newUserProfileMutation(c.config, OpUpdateOne, withUserProfileID(id))
	return &UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserProfile.
func (c *UserProfileClient) Delete() *UserProfileDelete {
	mutation := newUserProfileMutation(c.config, OpDelete)
	return &UserProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserProfileClient) DeleteOne(_m *UserProfile) *UserProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserProfileClient) DeleteOneID(id string) *UserProfileDeleteOne {
	builder := c.Delete().Where(userprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserProfileDeleteOne{builder}
}

// Query returns a query builder for UserProfile.
func (c *UserProfileClient) Query() *UserProfileQuery {
	return &UserProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a UserProfile entity by its id.
func (c *UserProfileClient) Get(ctx context.Context, id string) (*UserProfile, error) {
	return c.Query().Where(userprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserProfileClient) GetX(ctx context.Context, id string) *UserProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApp queries the app edge of a UserProfile.
func (c *UserProfileClient) QueryApp(_m *UserProfile) *AppQuery {
	query := (&AppClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(userprofile.Table, userprofile.FieldID, id),
			sqlgraph.To(app.Table, app.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, userprofile.AppTable, userprofile.AppColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserProfileClient) Hooks() []Hook {
	return c.hooks.UserProfile
}

// Interceptors returns the client interceptors.
func (c *UserProfileClient) Interceptors() []Interceptor {
	return c.inters.UserProfile
}

func (c *UserProfileClient) mutate(ctx context.Context, m *UserProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserProfile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		App, ErrorPattern, ErrorRecord, Heartbeat, HeartbeatRun, KnowledgeEntry,
		KnowledgeSyncState, NotificationChannel, NotificationHistory,
		NotificationPreference, RoomLearning, RoomSyncState, SavedArrangement, Task,
		TaskIteration, UserProfile []ent.Hook
	}
	inters struct {
		App, ErrorPattern, ErrorRecord, Heartbeat, HeartbeatRun, KnowledgeEntry,
		KnowledgeSyncState, NotificationChannel, NotificationHistory,
		NotificationPreference, RoomLearning, RoomSyncState, SavedArrangement, Task,
		TaskIteration, UserProfile []ent.Interceptor
	}
)
