// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/loop-symphony/symphony/ent/predicate"
	"github.com/loop-symphony/symphony/ent/roomsyncstate"
)

// RoomSyncStateQuery is the builder for querying RoomSyncState entities.
type RoomSyncStateQuery struct {
	config
	ctx        *QueryContext
	order      []roomsyncstate.OrderOption
	inters     []Interceptor
	predicates []predicate.RoomSyncState
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RoomSyncStateQuery builder.
func (_q *RoomSyncStateQuery) Where(ps ...predicate.RoomSyncState) *RoomSyncStateQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *RoomSyncStateQuery) Limit(limit int) *RoomSyncStateQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *RoomSyncStateQuery) Offset(offset int) *RoomSyncStateQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *RoomSyncStateQuery) Unique(unique bool) *RoomSyncStateQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *RoomSyncStateQuery) Order(o ...roomsyncstate.OrderOption) *RoomSyncStateQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// First returns the first RoomSyncState entity from the query.
// Returns a *NotFoundError when no RoomSyncState was found.
func (_q *RoomSyncStateQuery) First(ctx context.Context) (*RoomSyncState, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{roomsyncstate.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *RoomSyncStateQuery) FirstX(ctx context.Context) *RoomSyncState {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first RoomSyncState ID from the query.
// Returns a *NotFoundError when no RoomSyncState ID was found.
func (_q *RoomSyncStateQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{roomsyncstate.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *RoomSyncStateQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single RoomSyncState entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one RoomSyncState entity is found.
// Returns a *NotFoundError when no RoomSyncState entities are found.
func (_q *RoomSyncStateQuery) Only(ctx context.Context) (*RoomSyncState, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{roomsyncstate.Label}
	default:
		return nil, &NotSingularError{roomsyncstate.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *RoomSyncStateQuery) OnlyX(ctx context.Context) *RoomSyncState {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only RoomSyncState ID in the query.
// Returns a *NotSingularError when more than one RoomSyncState ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *RoomSyncStateQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{roomsyncstate.Label}
	default:
		err = &NotSingularError{roomsyncstate.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *RoomSyncStateQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of RoomSyncStates.
func (_q *RoomSyncStateQuery) All(ctx context.Context) ([]*RoomSyncState, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*RoomSyncState, *RoomSyncStateQuery]()
	return withInterceptors[[]*RoomSyncState](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *RoomSyncStateQuery) AllX(ctx context.Context) []*RoomSyncState {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of RoomSyncState IDs.
func (_q *RoomSyncStateQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(roomsyncstate.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *RoomSyncStateQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *RoomSyncStateQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*RoomSyncStateQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *RoomSyncStateQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *RoomSyncStateQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *RoomSyncStateQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RoomSyncStateQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *RoomSyncStateQuery) Clone() *RoomSyncStateQuery {
	if _q == nil {
		return nil
	}
	return &RoomSyncStateQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]roomsyncstate.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.RoomSyncState{}, _q.predicates...),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		RoomID string `json:"room_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.RoomSyncState.Query().
//		GroupBy(roomsyncstate.FieldRoomID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *RoomSyncStateQuery) GroupBy(field string, fields ...string) *RoomSyncStateGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RoomSyncStateGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = roomsyncstate.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		RoomID string `json:"room_id,omitempty"`
//	}
//
//	client.RoomSyncState.Query().
//		Select(roomsyncstate.FieldRoomID).
//		Scan(ctx, &v)
func (_q *RoomSyncStateQuery) Select(fields ...string) *RoomSyncStateSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &RoomSyncStateSelect{RoomSyncStateQuery: _q}
	sbuild.label = roomsyncstate.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RoomSyncStateSelect configured with the given aggregations.
func (_q *RoomSyncStateQuery) Aggregate(fns ...AggregateFunc) *RoomSyncStateSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *RoomSyncStateQuery) prepareQuery(ctx context.Context) error {
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
		if !roomsyncstate.ValidColumn(f) {
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

func (_q *RoomSyncStateQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*RoomSyncState, error) {
	var (
		nodes = []*RoomSyncState{}
		_spec = _q.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*RoomSyncState).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &RoomSyncState{config: _q.config}
		nodes = append(nodes, node)
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
	return nodes, nil
}

func (_q *RoomSyncStateQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *RoomSyncStateQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(roomsyncstate.Table, roomsyncstate.Columns, sqlgraph.NewFieldSpec(roomsyncstate.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, roomsyncstate.FieldID)
		for i := range fields {
			if fields[i] != roomsyncstate.FieldID {
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

func (_q *RoomSyncStateQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(roomsyncstate.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = roomsyncstate.Columns
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

// RoomSyncStateGroupBy is the group-by builder for RoomSyncState entities.
type RoomSyncStateGroupBy struct {
	selector
	build *RoomSyncStateQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *RoomSyncStateGroupBy) Aggregate(fns ...AggregateFunc) *RoomSyncStateGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *RoomSyncStateGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RoomSyncStateQuery, *RoomSyncStateGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *RoomSyncStateGroupBy) sqlScan(ctx context.Context, root *RoomSyncStateQuery, v any) error {
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

// RoomSyncStateSelect is the builder for selecting fields of RoomSyncState entities.
type RoomSyncStateSelect struct {
	*RoomSyncStateQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *RoomSyncStateSelect) Aggregate(fns ...AggregateFunc) *RoomSyncStateSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *RoomSyncStateSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RoomSyncStateQuery, *RoomSyncStateSelect](ctx, _s.RoomSyncStateQuery, _s, _s.inters, v)
}

func (_s *RoomSyncStateSelect) sqlScan(ctx context.Context, root *RoomSyncStateQuery, v any) error {
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
