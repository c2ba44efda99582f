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
	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/contenttype"
	"lattice-cms.io/lattice/ent/fielddefinition"
	"lattice-cms.io/lattice/ent/fieldtype"
	"lattice-cms.io/lattice/ent/predicate"
)

// FieldDefinitionQuery is the builder for querying FieldDefinition entities.
type FieldDefinitionQuery struct {
	config
	ctx             *QueryContext
	order           []fielddefinition.OrderOption
	inters          []Interceptor
	predicates      []predicate.FieldDefinition
	withContentType *ContentTypeQuery
	withFieldType   *FieldTypeQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the FieldDefinitionQuery builder.
func (_q *FieldDefinitionQuery) Where(ps ...predicate.FieldDefinition) *FieldDefinitionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *FieldDefinitionQuery) Limit(limit int) *FieldDefinitionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *FieldDefinitionQuery) Offset(offset int) *FieldDefinitionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *FieldDefinitionQuery) Unique(unique bool) *FieldDefinitionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *FieldDefinitionQuery) Order(o ...fielddefinition.OrderOption) *FieldDefinitionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryContentType chains the current query on the "content_type" edge.
func (_q *FieldDefinitionQuery) QueryContentType() *ContentTypeQuery {
	query := (&ContentTypeClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(fielddefinition.Table, fielddefinition.FieldID, selector),
			sqlgraph.To(contenttype.Table, contenttype.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fielddefinition.ContentTypeTable, fielddefinition.ContentTypeColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryFieldType chains the current query on the "field_type" edge.
func (_q *FieldDefinitionQuery) QueryFieldType() *FieldTypeQuery {
	query := (&FieldTypeClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(fielddefinition.Table, fielddefinition.FieldID, selector),
			sqlgraph.To(fieldtype.Table, fieldtype.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fielddefinition.FieldTypeTable, fielddefinition.FieldTypeColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first FieldDefinition entity from the query.
// Returns a *NotFoundError when no FieldDefinition was found.
func (_q *FieldDefinitionQuery) First(ctx context.Context) (*FieldDefinition, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{fielddefinition.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *FieldDefinitionQuery) FirstX(ctx context.Context) *FieldDefinition {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first FieldDefinition ID from the query.
// Returns a *NotFoundError when no FieldDefinition ID was found.
func (_q *FieldDefinitionQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{fielddefinition.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *FieldDefinitionQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single FieldDefinition entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one FieldDefinition entity is found.
// Returns a *NotFoundError when no FieldDefinition entities are found.
func (_q *FieldDefinitionQuery) Only(ctx context.Context) (*FieldDefinition, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{fielddefinition.Label}
	default:
		return nil, &NotSingularError{fielddefinition.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *FieldDefinitionQuery) OnlyX(ctx context.Context) *FieldDefinition {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only FieldDefinition ID in the query.
// Returns a *NotSingularError when more than one FieldDefinition ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *FieldDefinitionQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{fielddefinition.Label}
	default:
		err = &NotSingularError{fielddefinition.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *FieldDefinitionQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of FieldDefinitions.
func (_q *FieldDefinitionQuery) All(ctx context.Context) ([]*FieldDefinition, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*FieldDefinition, *FieldDefinitionQuery]()
	return withInterceptors[[]*FieldDefinition](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *FieldDefinitionQuery) AllX(ctx context.Context) []*FieldDefinition {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of FieldDefinition IDs.
func (_q *FieldDefinitionQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(fielddefinition.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *FieldDefinitionQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *FieldDefinitionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*FieldDefinitionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *FieldDefinitionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *FieldDefinitionQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *FieldDefinitionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the FieldDefinitionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *FieldDefinitionQuery) Clone() *FieldDefinitionQuery {
	if _q == nil {
		return nil
	}
	return &FieldDefinitionQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]fielddefinition.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.FieldDefinition{}, _q.predicates...),
		withContentType: _q.withContentType.Clone(),
		withFieldType:   _q.withFieldType.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithContentType tells the query-builder to eager-load the nodes that are connected to
// the "content_type" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FieldDefinitionQuery) WithContentType(opts ...func(*ContentTypeQuery)) *FieldDefinitionQuery {
	query := (&ContentTypeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withContentType = query
	return _q
}

// WithFieldType tells the query-builder to eager-load the nodes that are connected to
// the "field_type" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FieldDefinitionQuery) WithFieldType(opts ...func(*FieldTypeQuery)) *FieldDefinitionQuery {
	query := (&FieldTypeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFieldType = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ContentTypeID uuid.UUID `json:"content_type_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.FieldDefinition.Query().
//		GroupBy(fielddefinition.FieldContentTypeID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *FieldDefinitionQuery) GroupBy(field string, fields ...string) *FieldDefinitionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &FieldDefinitionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = fielddefinition.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ContentTypeID uuid.UUID `json:"content_type_id,omitempty"`
//	}
//
//	client.FieldDefinition.Query().
//		Select(fielddefinition.FieldContentTypeID).
//		Scan(ctx, &v)
func (_q *FieldDefinitionQuery) Select(fields ...string) *FieldDefinitionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &FieldDefinitionSelect{FieldDefinitionQuery: _q}
	sbuild.label = fielddefinition.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a FieldDefinitionSelect configured with the given aggregations.
func (_q *FieldDefinitionQuery) Aggregate(fns ...AggregateFunc) *FieldDefinitionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *FieldDefinitionQuery) prepareQuery(ctx context.Context) error {
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
		if !fielddefinition.ValidColumn(f) {
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

func (_q *FieldDefinitionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*FieldDefinition, error) {
	var (
		nodes       = []*FieldDefinition{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withContentType != nil,
			_q.withFieldType != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*FieldDefinition).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &FieldDefinition{config: _q.config}
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
	if query := _q.withContentType; query != nil {
		if err := _q.loadContentType(ctx, query, nodes, nil,
			func(n *FieldDefinition, e *ContentType) { n.Edges.ContentType = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withFieldType; query != nil {
		if err := _q.loadFieldType(ctx, query, nodes, nil,
			func(n *FieldDefinition, e *FieldType) { n.Edges.FieldType = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *FieldDefinitionQuery) loadContentType(ctx context.Context, query *ContentTypeQuery, nodes []*FieldDefinition, init func(*FieldDefinition), assign func(*FieldDefinition, *ContentType)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*FieldDefinition)
	for i := range nodes {
		fk := nodes[i].ContentTypeID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(contenttype.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "content_type_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *FieldDefinitionQuery) loadFieldType(ctx context.Context, query *FieldTypeQuery, nodes []*FieldDefinition, init func(*FieldDefinition), assign func(*FieldDefinition, *FieldType)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*FieldDefinition)
	for i := range nodes {
		fk := nodes[i].FieldTypeID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(fieldtype.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "field_type_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *FieldDefinitionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *FieldDefinitionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(fielddefinition.Table, fielddefinition.Columns, sqlgraph.NewFieldSpec(fielddefinition.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fielddefinition.FieldID)
		for i := range fields {
			if fields[i] != fielddefinition.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withContentType != nil {
			_spec.Node.AddColumnOnce(fielddefinition.FieldContentTypeID)
		}
		if _q.withFieldType != nil {
			_spec.Node.AddColumnOnce(fielddefinition.FieldFieldTypeID)
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

func (_q *FieldDefinitionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(fielddefinition.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = fielddefinition.Columns
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

// FieldDefinitionGroupBy is the group-by builder for FieldDefinition entities.
type FieldDefinitionGroupBy struct {
	selector
	build *FieldDefinitionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *FieldDefinitionGroupBy) Aggregate(fns ...AggregateFunc) *FieldDefinitionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *FieldDefinitionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FieldDefinitionQuery, *FieldDefinitionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *FieldDefinitionGroupBy) sqlScan(ctx context.Context, root *FieldDefinitionQuery, v any) error {
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

// FieldDefinitionSelect is the builder for selecting fields of FieldDefinition entities.
type FieldDefinitionSelect struct {
	*FieldDefinitionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *FieldDefinitionSelect) Aggregate(fns ...AggregateFunc) *FieldDefinitionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *FieldDefinitionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FieldDefinitionQuery, *FieldDefinitionSelect](ctx, _s.FieldDefinitionQuery, _s, _s.inters, v)
}

func (_s *FieldDefinitionSelect) sqlScan(ctx context.Context, root *FieldDefinitionQuery, v any) error {
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
