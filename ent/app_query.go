// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loop-symphony/symphony/ent/app"
	"github.com/loop-symphony/symphony/ent/errorpattern"
	"github.com/loop-symphony/symphony/ent/errorrecord"
	"github.com/loop-symphony/symphony/ent/heartbeat"
	"github.com/loop-symphony/symphony/ent/knowledgeentry"
	"github.com/loop-symphony/symphony/ent/knowledgesyncstate"
	"github.com/loop-symphony/symphony/ent/notificationchannel"
	"github.com/loop-symphony/symphony/ent/notificationhistory"
	"github.com/loop-symphony/symphony/ent/notificationpreference"
	"github.com/loop-symphony/symphony/ent/predicate"
	"github.com/loop-symphony/symphony/ent/savedarrangement"
	"github.com/loop-symphony/symphony/ent/task"
	"github.com/loop-symphony/symphony/ent/userprofile"
)

// AppQuery is the builder for querying App entities.
type AppQuery struct {
	config
	ctx                         *QueryContext
	order                       []app.OrderOption
	inters                      []Interceptor
	predicates                  []predicate.App
	withUserProfiles            *UserProfileQuery
	withTasks                   *TaskQuery
	withHeartbeats              *HeartbeatQuery
	withArrangements            *SavedArrangementQuery
	withErrorRecords            *ErrorRecordQuery
	withErrorPatterns           *ErrorPatternQuery
	withKnowledgeEntries        *KnowledgeEntryQuery
	withKnowledgeSyncStates     *KnowledgeSyncStateQuery
	withNotificationPreferences *NotificationPreferenceQuery
	withNotificationChannels    *NotificationChannelQuery
	withNotificationHistory     *NotificationHistoryQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AppQuery builder.
func (_q *AppQuery) Where(ps ...predicate.App) *AppQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *AppQuery) Limit(limit int) *AppQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *AppQuery) Offset(offset int) *AppQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *AppQuery) Unique(unique bool) *AppQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *AppQuery) Order(o ...app.OrderOption) *AppQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryUserProfiles chains the current query on the "user_profiles" edge.
func (_q *AppQuery) QueryUserProfiles() *UserProfileQuery {
	query := (&UserProfileClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(app.Table, app.FieldID, selector),
			sqlgraph.To(userprofile.Table, userprofile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, app.UserProfilesTable, app.UserProfilesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTasks chains the current query on the "tasks" edge.
func (_q *AppQuery) QueryTasks() *TaskQuery {
	query := (&TaskClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(app.Table, app.FieldID, selector),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, app.TasksTable, app.TasksColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryHeartbeats chains the current query on the "heartbeats" edge.
func (_q *AppQuery) QueryHeartbeats() *HeartbeatQuery {
	query := (&HeartbeatClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(app.Table, app.FieldID, selector),
			sqlgraph.To(heartbeat.Table, heartbeat.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, app.HeartbeatsTable, app.HeartbeatsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryArrangements chains the current query on the "arrangements" edge.
func (_q *AppQuery) QueryArrangements() *SavedArrangementQuery {
	query := (&SavedArrangementClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(app.Table, app.FieldID, selector),
			sqlgraph.To(savedarrangement.Table, savedarrangement.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, app.ArrangementsTable, app.ArrangementsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryErrorRecords chains the current query on the "error_records" edge.
func (_q *AppQuery) QueryErrorRecords() *ErrorRecordQuery {
	query := (&ErrorRecordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(app.Table, app.FieldID, selector),
			sqlgraph.To(errorrecord.Table, errorrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, app.ErrorRecordsTable, app.ErrorRecordsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryErrorPatterns chains the current query on the "error_patterns" edge.
func (_q *AppQuery) QueryErrorPatterns() *ErrorPatternQuery {
	query := (&ErrorPatternClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(app.Table, app.FieldID, selector),
			sqlgraph.To(errorpattern.Table, errorpattern.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, app.ErrorPatternsTable, app.ErrorPatternsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryKnowledgeEntries chains the current query on the "knowledge_entries" edge.
func (_q *AppQuery) QueryKnowledgeEntries() *KnowledgeEntryQuery {
	query := (&KnowledgeEntryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(app.Table, app.FieldID, selector),
			sqlgraph.To(knowledgeentry.Table, knowledgeentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, app.KnowledgeEntriesTable, app.KnowledgeEntriesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryKnowledgeSyncStates chains the current query on the "knowledge_sync_states" edge.
func (_q *AppQuery) QueryKnowledgeSyncStates() *KnowledgeSyncStateQuery {
	query := (&KnowledgeSyncStateClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(app.Table, app.FieldID, selector),
			sqlgraph.To(knowledgesyncstate.Table, knowledgesyncstate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, app.KnowledgeSyncStatesTable, app.KnowledgeSyncStatesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryNotificationPreferences chains the current query on the "notification_preferences" edge.
func (_q *AppQuery) QueryNotificationPreferences() *NotificationPreferenceQuery {
	query := (&NotificationPreferenceClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(app.Table, app.FieldID, selector),
			sqlgraph.To(notificationpreference.Table, notificationpreference.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, app.NotificationPreferencesTable, app.NotificationPreferencesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryNotificationChannels chains the current query on the "notification_channels" edge.
func (_q *AppQuery) QueryNotificationChannels() *NotificationChannelQuery {
	query := (&NotificationChannelClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(app.Table, app.FieldID, selector),
			sqlgraph.To(notificationchannel.Table, notificationchannel.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, app.NotificationChannelsTable, app.NotificationChannelsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryNotificationHistory chains the current query on the "notification_history" edge.
func (_q *AppQuery) QueryNotificationHistory() *NotificationHistoryQuery {
	query := (&NotificationHistoryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(app.Table, app.FieldID, selector),
			sqlgraph.To(notificationhistory.Table, notificationhistory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, app.NotificationHistoryTable, app.NotificationHistoryColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first App entity from the query.
// Returns a *NotFoundError when no App was found.
func (_q *AppQuery) First(ctx context.Context) (*App, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{app.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *AppQuery) FirstX(ctx context.Context) *App {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first App ID from the query.
// Returns a *NotFoundError when no App ID was found.
func (_q *AppQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{app.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *AppQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single App entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one App entity is found.
// Returns a *NotFoundError when no App entities are found.
func (_q *AppQuery) Only(ctx context.Context) (*App, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{app.Label}
	default:
		return nil, &NotSingularError{app.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *AppQuery) OnlyX(ctx context.Context) *App {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only App ID in the query.
// Returns a *NotSingularError when more than one App ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *AppQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{app.Label}
	default:
		err = &NotSingularError{app.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *AppQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Apps.
func (_q *AppQuery) All(ctx context.Context) ([]*App, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*App, *AppQuery]()
	return withInterceptors[[]*App](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *AppQuery) AllX(ctx context.Context) []*App {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of App IDs.
func (_q *AppQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(app.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *AppQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *AppQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*AppQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *AppQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *AppQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *AppQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AppQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *AppQuery) Clone() *AppQuery {
	if _q == nil {
		return nil
	}
	return &AppQuery{
		config:                      _q.config,
		ctx:                         _q.ctx.Clone(),
		order:                       append([]app.OrderOption{}, _q.order...),
		inters:                      append([]Interceptor{}, _q.inters...),
		predicates:                  append([]predicate.App{}, _q.predicates...),
		withUserProfiles:            _q.withUserProfiles.Clone(),
		withTasks:                   _q.withTasks.Clone(),
		withHeartbeats:              _q.withHeartbeats.Clone(),
		withArrangements:            _q.withArrangements.Clone(),
		withErrorRecords:            _q.withErrorRecords.Clone(),
		withErrorPatterns:           _q.withErrorPatterns.Clone(),
		withKnowledgeEntries:        _q.withKnowledgeEntries.Clone(),
		withKnowledgeSyncStates:     _q.withKnowledgeSyncStates.Clone(),
		withNotificationPreferences: _q.withNotificationPreferences.Clone(),
		withNotificationChannels:    _q.withNotificationChannels.Clone(),
		withNotificationHistory:     _q.withNotificationHistory.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithUserProfiles tells the query-builder to eager-load the nodes that are connected to
// the "user_profiles" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AppQuery) WithUserProfiles(opts ...func(*UserProfileQuery)) *AppQuery {
	query := (&UserProfileClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withUserProfiles = query
	return _q
}

// WithTasks tells the query-builder to eager-load the nodes that are connected to
// the "tasks" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AppQuery) WithTasks(opts ...func(*TaskQuery)) *AppQuery {
	query := (&TaskClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTasks = query
	return _q
}

// WithHeartbeats tells the query-builder to eager-load the nodes that are connected to
// the "heartbeats" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AppQuery) WithHeartbeats(opts ...func(*HeartbeatQuery)) *AppQuery {
	query := (&HeartbeatClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withHeartbeats = query
	return _q
}

// WithArrangements tells the query-builder to eager-load the nodes that are connected to
// the "arrangements" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AppQuery) WithArrangements(opts ...func(*SavedArrangementQuery)) *AppQuery {
	query := (&SavedArrangementClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withArrangements = query
	return _q
}

// WithErrorRecords tells the query-builder to eager-load the nodes that are connected to
// the "error_records" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AppQuery) WithErrorRecords(opts ...func(*ErrorRecordQuery)) *AppQuery {
	query := (&ErrorRecordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withErrorRecords = query
	return _q
}

// WithErrorPatterns tells the query-builder to eager-load the nodes that are connected to
// the "error_patterns" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AppQuery) WithErrorPatterns(opts ...func(*ErrorPatternQuery)) *AppQuery {
	query := (&ErrorPatternClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withErrorPatterns = query
	return _q
}

// WithKnowledgeEntries tells the query-builder to eager-load the nodes that are connected to
// the "knowledge_entries" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AppQuery) WithKnowledgeEntries(opts ...func(*KnowledgeEntryQuery)) *AppQuery {
	query := (&KnowledgeEntryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withKnowledgeEntries = query
	return _q
}

// WithKnowledgeSyncStates tells the query-builder to eager-load the nodes that are connected to
// the "knowledge_sync_states" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AppQuery) WithKnowledgeSyncStates(opts ...func(*KnowledgeSyncStateQuery)) *AppQuery {
	query := (&KnowledgeSyncStateClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withKnowledgeSyncStates = query
	return _q
}

// WithNotificationPreferences tells the query-builder to eager-load the nodes that are connected to
// the "notification_preferences" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AppQuery) WithNotificationPreferences(opts ...func(*NotificationPreferenceQuery)) *AppQuery {
	query := (&NotificationPreferenceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withNotificationPreferences = query
	return _q
}

// WithNotificationChannels tells the query-builder to eager-load the nodes that are connected to
// the "notification_channels" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AppQuery) WithNotificationChannels(opts ...func(*NotificationChannelQuery)) *AppQuery {
	query := (&NotificationChannelClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withNotificationChannels = query
	return _q
}

// WithNotificationHistory tells the query-builder to eager-load the nodes that are connected to
// the "notification_history" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *AppQuery) WithNotificationHistory(opts ...func(*NotificationHistoryQuery)) *AppQuery {
	query := (&NotificationHistoryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withNotificationHistory = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.App.Query().
//		GroupBy(app.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *AppQuery) GroupBy(field string, fields ...string) *AppGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AppGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = app.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.App.Query().
//		Select(app.FieldName).
//		Scan(ctx, &v)
func (_q *AppQuery) Select(fields ...string) *AppSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &AppSelect{AppQuery: _q}
	sbuild.label = app.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AppSelect configured with the given aggregations.
func (_q *AppQuery) Aggregate(fns ...AggregateFunc) *AppSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *AppQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !app.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *AppQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*App, error) {
	var (
		nodes       = []*App{}
		_spec       = _q.querySpec()
		loadedTypes = [11]bool{
			_q.withUserProfiles != nil,
			_q.withTasks != nil,
			_q.withHeartbeats != nil,
			_q.withArrangements != nil,
			_q.withErrorRecords != nil,
			_q.withErrorPatterns != nil,
			_q.withKnowledgeEntries != nil,
			_q.withKnowledgeSyncStates != nil,
			_q.withNotificationPreferences != nil,
			_q.withNotificationChannels != nil,
			_q.withNotificationHistory != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*App).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &App{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withUserProfiles; query != nil {
		if err := _q.loadUserProfiles(ctx, query, nodes,
			func(n *App) { n.Edges.UserProfiles = []*UserProfile{} },
			func(n *App, e *UserProfile) { n.Edges.UserProfiles = append(n.Edges.UserProfiles, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTasks; query != nil {
		if err := _q.loadTasks(ctx, query, nodes,
			func(n *App) { n.Edges.Tasks = []*Task{} },
			func(n *App, e *Task) { n.Edges.Tasks = append(n.Edges.Tasks, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withHeartbeats; query != nil {
		if err := _q.loadHeartbeats(ctx, query, nodes,
			func(n *App) { n.Edges.Heartbeats = []*Heartbeat{} },
			func(n *App, e *Heartbeat) { n.Edges.Heartbeats = append(n.Edges.Heartbeats, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withArrangements; query != nil {
		if err := _q.loadArrangements(ctx, query, nodes,
			func(n *App) { n.Edges.Arrangements = []*SavedArrangement{} },
			func(n *App, e *SavedArrangement) { n.Edges.Arrangements = append(n.Edges.Arrangements, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withErrorRecords; query != nil {
		if err := _q.loadErrorRecords(ctx, query, nodes,
			func(n *App) { n.Edges.ErrorRecords = []*ErrorRecord{} },
			func(n *App, e *ErrorRecord) { n.Edges.ErrorRecords = append(n.Edges.ErrorRecords, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withErrorPatterns; query != nil {
		if err := _q.loadErrorPatterns(ctx, query, nodes,
			func(n *App) { n.Edges.ErrorPatterns = []*ErrorPattern{} },
			func(n *App, e *ErrorPattern) { n.Edges.ErrorPatterns = append(n.Edges.ErrorPatterns, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withKnowledgeEntries; query != nil {
		if err := _q.loadKnowledgeEntries(ctx, query, nodes,
			func(n *App) { n.Edges.KnowledgeEntries = []*KnowledgeEntry{} },
			func(n *App, e *KnowledgeEntry) { n.Edges.KnowledgeEntries = append(n.Edges.KnowledgeEntries, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withKnowledgeSyncStates; query != nil {
		if err := _q.loadKnowledgeSyncStates(ctx, query, nodes,
			func(n *App) { n.Edges.KnowledgeSyncStates = []*KnowledgeSyncState{} },
			func(n *App, e *KnowledgeSyncState) {
				n.Edges.KnowledgeSyncStates = append(n.Edges.KnowledgeSyncStates, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withNotificationPreferences; query != nil {
		if err := _q.loadNotificationPreferences(ctx, query, nodes,
			func(n *App) { n.Edges.NotificationPreferences = []*NotificationPreference{} },
			func(n *App, e *NotificationPreference) {
				n.Edges.NotificationPreferences = append(n.Edges.NotificationPreferences, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withNotificationChannels; query != nil {
		if err := _q.loadNotificationChannels(ctx, query, nodes,
			func(n *App) { n.Edges.NotificationChannels = []*NotificationChannel{} },
			func(n *App, e *NotificationChannel) {
				n.Edges.NotificationChannels = append(n.Edges.NotificationChannels, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withNotificationHistory; query != nil {
		if err := _q.loadNotificationHistory(ctx, query, nodes,
			func(n *App) { n.Edges.NotificationHistory = []*NotificationHistory{} },
			func(n *App, e *NotificationHistory) {
				n.Edges.NotificationHistory = append(n.Edges.NotificationHistory, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *AppQuery) loadUserProfiles(ctx context.Context, query *UserProfileQuery, nodes []*App, init func(*App), assign func(*App, *UserProfile)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*App)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(userprofile.FieldAppID)
	}
	query.Where(predicate.UserProfile(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(app.UserProfilesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AppID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "app_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AppQuery) loadTasks(ctx context.Context, query *TaskQuery, nodes []*App, init func(*App), assign func(*App, *Task)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*App)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(task.FieldAppID)
	}
	query.Where(predicate.Task(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(app.TasksColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AppID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "app_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AppQuery) loadHeartbeats(ctx context.Context, query *HeartbeatQuery, nodes []*App, init func(*App), assign func(*App, *Heartbeat)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*App)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(heartbeat.FieldAppID)
	}
	query.Where(predicate.Heartbeat(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(app.HeartbeatsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AppID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "app_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AppQuery) loadArrangements(ctx context.Context, query *SavedArrangementQuery, nodes []*App, init func(*App), assign func(*App, *SavedArrangement)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*App)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(savedarrangement.FieldAppID)
	}
	query.Where(predicate.SavedArrangement(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(app.ArrangementsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AppID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "app_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AppQuery) loadErrorRecords(ctx context.Context, query *ErrorRecordQuery, nodes []*App, init func(*App), assign func(*App, *ErrorRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*App)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(errorrecord.FieldAppID)
	}
	query.Where(predicate.ErrorRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(app.ErrorRecordsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AppID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "app_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AppQuery) loadErrorPatterns(ctx context.Context, query *ErrorPatternQuery, nodes []*App, init func(*App), assign func(*App, *ErrorPattern)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*App)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(errorpattern.FieldAppID)
	}
	query.Where(predicate.ErrorPattern(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(app.ErrorPatternsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AppID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "app_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AppQuery) loadKnowledgeEntries(ctx context.Context, query *KnowledgeEntryQuery, nodes []*App, init func(*App), assign func(*App, *KnowledgeEntry)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*App)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(knowledgeentry.FieldAppID)
	}
	query.Where(predicate.KnowledgeEntry(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(app.KnowledgeEntriesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AppID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "app_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AppQuery) loadKnowledgeSyncStates(ctx context.Context, query *KnowledgeSyncStateQuery, nodes []*App, init func(*App), assign func(*App, *KnowledgeSyncState)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*App)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(knowledgesyncstate.FieldAppID)
	}
	query.Where(predicate.KnowledgeSyncState(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(app.KnowledgeSyncStatesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AppID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "app_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AppQuery) loadNotificationPreferences(ctx context.Context, query *NotificationPreferenceQuery, nodes []*App, init func(*App), assign func(*App, *NotificationPreference)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*App)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(notificationpreference.FieldAppID)
	}
	query.Where(predicate.NotificationPreference(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(app.NotificationPreferencesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AppID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "app_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AppQuery) loadNotificationChannels(ctx context.Context, query *NotificationChannelQuery, nodes []*App, init func(*App), assign func(*App, *NotificationChannel)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*App)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(notificationchannel.FieldAppID)
	}
	query.Where(predicate.NotificationChannel(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(app.NotificationChannelsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AppID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "app_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *AppQuery) loadNotificationHistory(ctx context.Context, query *NotificationHistoryQuery, nodes []*App, init func(*App), assign func(*App, *NotificationHistory)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*App)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(notificationhistory.FieldAppID)
	}
	query.Where(predicate.NotificationHistory(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(app.NotificationHistoryColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.AppID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "app_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *AppQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *AppQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(app.Table, app.Columns, sqlgraph.NewFieldSpec(app.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, app.FieldID)
		for i := range fields {
			if fields[i] != app.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *AppQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(app.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = app.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AppGroupBy is the group-by builder for App entities.
type AppGroupBy struct {
	selector
	build *AppQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *AppGroupBy) Aggregate(fns ...AggregateFunc) *AppGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *AppGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AppQuery, *AppGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *AppGroupBy) sqlScan(ctx context.Context, root *AppQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AppSelect is the builder for selecting fields of App entities.
type AppSelect struct {
	*AppQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *AppSelect) Aggregate(fns ...AggregateFunc) *AppSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *AppSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AppQuery, *AppSelect](ctx, _s.AppQuery, _s, _s.inters, v)
}

func (_s *AppSelect) sqlScan(ctx context.Context, root *AppQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
