// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"lattice-cms.io/lattice/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"lattice-cms.io/lattice/ent/actor"
	"lattice-cms.io/lattice/ent/apikey"
	"lattice-cms.io/lattice/ent/content"
	"lattice-cms.io/lattice/ent/contentlocale"
	"lattice-cms.io/lattice/ent/contenttype"
	"lattice-cms.io/lattice/ent/fielddefinition"
	"lattice-cms.io/lattice/ent/fieldindex"
	"lattice-cms.io/lattice/ent/fieldtype"
	"lattice-cms.io/lattice/ent/language"
	"lattice-cms.io/lattice/ent/publishedcontent"
	"lattice-cms.io/lattice/ent/realm"
	"lattice-cms.io/lattice/ent/uniqueindex"
	"lattice-cms.io/lattice/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Actor is the client for interacting with the Actor builders.
	Actor *ActorClient
	// ApiKey is the client for interacting with the ApiKey builders.
	ApiKey *ApiKeyClient
	// Content is the client for interacting with the Content builders.
	Content *ContentClient
	// ContentLocale is the client for interacting with the ContentLocale builders.
	ContentLocale *ContentLocaleClient
	// ContentType is the client for interacting with the ContentType builders.
	ContentType *ContentTypeClient
	// FieldDefinition is the client for interacting with the FieldDefinition builders.
	FieldDefinition *FieldDefinitionClient
	// FieldIndex is the client for interacting with the FieldIndex builders.
	FieldIndex *FieldIndexClient
	// FieldType is the client for interacting with the FieldType builders.
	FieldType *FieldTypeClient
	// Language is the client for interacting with the Language builders.
	Language *LanguageClient
	// PublishedContent is the client for interacting with the PublishedContent builders.
	PublishedContent *PublishedContentClient
	// Realm is the client for interacting with the Realm builders.
	Realm *RealmClient
	// UniqueIndex is the client for interacting with the UniqueIndex builders.
	UniqueIndex *UniqueIndexClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Actor = NewActorClient(c.config)
	c.ApiKey = NewApiKeyClient(c.config)
	c.Content = NewContentClient(c.config)
	c.ContentLocale = NewContentLocaleClient(c.config)
	c.ContentType = NewContentTypeClient(c.config)
	c.FieldDefinition = NewFieldDefinitionClient(c.config)
	c.FieldIndex = NewFieldIndexClient(c.config)
	c.FieldType = NewFieldTypeClient(c.config)
	c.Language = NewLanguageClient(c.config)
	c.PublishedContent = NewPublishedContentClient(c.config)
	c.Realm = NewRealmClient(c.config)
	c.UniqueIndex = NewUniqueIndexClient(c.config)
	c.User = NewUserClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		Actor:            NewActorClient(cfg),
		ApiKey:           NewApiKeyClient(cfg),
		Content:          NewContentClient(cfg),
		ContentLocale:    NewContentLocaleClient(cfg),
		ContentType:      NewContentTypeClient(cfg),
		FieldDefinition:  NewFieldDefinitionClient(cfg),
		FieldIndex:       NewFieldIndexClient(cfg),
		FieldType:        NewFieldTypeClient(cfg),
		Language:         NewLanguageClient(cfg),
		PublishedContent: NewPublishedContentClient(cfg),
		Realm:            NewRealmClient(cfg),
		UniqueIndex:      NewUniqueIndexClient(cfg),
		User:             NewUserClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		Actor:            NewActorClient(cfg),
		ApiKey:           NewApiKeyClient(cfg),
		Content:          NewContentClient(cfg),
		ContentLocale:    NewContentLocaleClient(cfg),
		ContentType:      NewContentTypeClient(cfg),
		FieldDefinition:  NewFieldDefinitionClient(cfg),
		FieldIndex:       NewFieldIndexClient(cfg),
		FieldType:        NewFieldTypeClient(cfg),
		Language:         NewLanguageClient(cfg),
		PublishedContent: NewPublishedContentClient(cfg),
		Realm:            NewRealmClient(cfg),
		UniqueIndex:      NewUniqueIndexClient(cfg),
		User:             NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Actor.
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
		c.Actor, c.ApiKey, c.Content, c.ContentLocale, c.ContentType, c.FieldDefinition,
		c.FieldIndex, c.FieldType, c.Language, c.PublishedContent, c.Realm,
		c.UniqueIndex, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Actor, c.ApiKey, c.Content, c.ContentLocale, c.ContentType, c.FieldDefinition,
		c.FieldIndex, c.FieldType, c.Language, c.PublishedContent, c.Realm,
		c.UniqueIndex, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActorMutation:
		return c.Actor.mutate(ctx, m)
	case *ApiKeyMutation:
		return c.ApiKey.mutate(ctx, m)
	case *ContentMutation:
		return c.Content.mutate(ctx, m)
	case *ContentLocaleMutation:
		return c.ContentLocale.mutate(ctx, m)
	case *ContentTypeMutation:
		return c.ContentType.mutate(ctx, m)
	case *FieldDefinitionMutation:
		return c.FieldDefinition.mutate(ctx, m)
	case *FieldIndexMutation:
		return c.FieldIndex.mutate(ctx, m)
	case *FieldTypeMutation:
		return c.FieldType.mutate(ctx, m)
	case *LanguageMutation:
		return c.Language.mutate(ctx, m)
	case *PublishedContentMutation:
		return c.PublishedContent.mutate(ctx, m)
	case *RealmMutation:
		return c.Realm.mutate(ctx, m)
	case *UniqueIndexMutation:
		return c.UniqueIndex.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ActorClient is a client for the Actor schema.
type ActorClient struct {
	config
}

// NewActorClient returns a client for the Actor from the given config.
func NewActorClient(c config) *ActorClient {
	return &ActorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `actor.Hooks(f(g(h())))`.
func (c *ActorClient) Use(hooks ...Hook) {
	c.hooks.Actor = append(c.hooks.Actor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `actor.Intercept(f(g(h())))`.
func (c *ActorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Actor = append(c.inters.Actor, interceptors...)
}

// Create returns a builder for creating a Actor entity.
func (c *ActorClient) Create() *ActorCreate {
	mutation := newActorMutation(c.config, OpCreate)
	return &ActorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Actor entities.
func (c *ActorClient) CreateBulk(builders ...*ActorCreate) *ActorCreateBulk {
	return &ActorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActorClient) MapCreateBulk(slice any, setFunc func(*ActorCreate, int)) *ActorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActorCreateBulk{err: fmt.Errorf("calling to ActorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Actor.
func (c *ActorClient) Update() *ActorUpdate {
	mutation := newActorMutation(c.config, OpUpdate)
	return &ActorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActorClient) UpdateOne(_m *Actor) *ActorUpdateOne {
	mutation := newActorMutation(c.config, OpUpdateOne, withActor(_m))
	return &ActorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActorClient) UpdateOneID(id string) *ActorUpdateOne {
	mutation := newActorMutation(c.config, OpUpdateOne, withActorID(id))
	return &ActorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Actor.
func (c *ActorClient) Delete() *ActorDelete {
	mutation := newActorMutation(c.config, OpDelete)
	return &ActorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActorClient) DeleteOne(_m *Actor) *ActorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActorClient) DeleteOneID(id string) *ActorDeleteOne {
	builder := c.Delete().Where(actor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActorDeleteOne{builder}
}

// Query returns a query builder for Actor.
func (c *ActorClient) Query() *ActorQuery {
	return &ActorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActor},
		inters: c.Interceptors(),
	}
}

// Get returns a Actor entity by its id.
func (c *ActorClient) Get(ctx context.Context, id string) (*Actor, error) {
	return c.Query().Where(actor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActorClient) GetX(ctx context.Context, id string) *Actor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ActorClient) Hooks() []Hook {
	return c.hooks.Actor
}

// Interceptors returns the client interceptors.
func (c *ActorClient) Interceptors() []Interceptor {
	return c.inters.Actor
}

func (c *ActorClient) mutate(ctx context.Context, m *ActorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Actor mutation op: %q", m.Op())
	}
}

// ApiKeyClient is a client for the ApiKey schema.
type ApiKeyClient struct {
	config
}

// NewApiKeyClient returns a client for the ApiKey from the given config.
func NewApiKeyClient(c config) *ApiKeyClient {
	return &ApiKeyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `apikey.Hooks(f(g(h())))`.
func (c *ApiKeyClient) Use(hooks ...Hook) {
	c.hooks.ApiKey = append(c.hooks.ApiKey, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `apikey.Intercept(f(g(h())))`.
func (c *ApiKeyClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApiKey = append(c.inters.ApiKey, interceptors...)
}

// Create returns a builder for creating a ApiKey entity.
func (c *ApiKeyClient) Create() *ApiKeyCreate {
	mutation := newApiKeyMutation(c.config, OpCreate)
	return &ApiKeyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApiKey entities.
func (c *ApiKeyClient) CreateBulk(builders ...*ApiKeyCreate) *ApiKeyCreateBulk {
	return &ApiKeyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApiKeyClient) MapCreateBulk(slice any, setFunc func(*ApiKeyCreate, int)) *ApiKeyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApiKeyCreateBulk{err: fmt.Errorf("calling to ApiKeyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApiKeyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApiKeyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApiKey.
func (c *ApiKeyClient) Update() *ApiKeyUpdate {
	mutation := newApiKeyMutation(c.config, OpUpdate)
	return &ApiKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApiKeyClient) UpdateOne(_m *ApiKey) *ApiKeyUpdateOne {
	mutation := newApiKeyMutation(c.config, OpUpdateOne, withApiKey(_m))
	return &ApiKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApiKeyClient) UpdateOneID(id uuid.UUID) *ApiKeyUpdateOne {
	mutation := newApiKeyMutation(c.config, OpUpdateOne, withApiKeyID(id))
	return &ApiKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApiKey.
func (c *ApiKeyClient) Delete() *ApiKeyDelete {
	mutation := newApiKeyMutation(c.config, OpDelete)
	return &ApiKeyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApiKeyClient) DeleteOne(_m *ApiKey) *ApiKeyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApiKeyClient) DeleteOneID(id uuid.UUID) *ApiKeyDeleteOne {
	builder := c.Delete().Where(apikey.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApiKeyDeleteOne{builder}
}

// Query returns a query builder for ApiKey.
func (c *ApiKeyClient) Query() *ApiKeyQuery {
	return &ApiKeyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApiKey},
		inters: c.Interceptors(),
	}
}

// Get returns a ApiKey entity by its id.
func (c *ApiKeyClient) Get(ctx context.Context, id uuid.UUID) (*ApiKey, error) {
	return c.Query().Where(apikey.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApiKeyClient) GetX(ctx context.Context, id uuid.UUID) *ApiKey {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ApiKeyClient) Hooks() []Hook {
	return c.hooks.ApiKey
}

// Interceptors returns the client interceptors.
func (c *ApiKeyClient) Interceptors() []Interceptor {
	return c.inters.ApiKey
}

func (c *ApiKeyClient) mutate(ctx context.Context, m *ApiKeyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApiKeyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApiKeyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApiKeyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApiKeyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApiKey mutation op: %q", m.Op())
	}
}

// ContentClient is a client for the Content schema.
type ContentClient struct {
	config
}

// NewContentClient returns a client for the Content from the given config.
func NewContentClient(c config) *ContentClient {
	return &ContentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `content.Hooks(f(g(h())))`.
func (c *ContentClient) Use(hooks ...Hook) {
	c.hooks.Content = append(c.hooks.Content, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `content.Intercept(f(g(h())))`.
func (c *ContentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Content = append(c.inters.Content, interceptors...)
}

// Create returns a builder for creating a Content entity.
func (c *ContentClient) Create() *ContentCreate {
	mutation := newContentMutation(c.config, OpCreate)
	return &ContentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Content entities.
func (c *ContentClient) CreateBulk(builders ...*ContentCreate) *ContentCreateBulk {
	return &ContentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContentClient) MapCreateBulk(slice any, setFunc func(*ContentCreate, int)) *ContentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContentCreateBulk{err: fmt.Errorf("calling to ContentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Content.
func (c *ContentClient) Update() *ContentUpdate {
	mutation := newContentMutation(c.config, OpUpdate)
	return &ContentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContentClient) UpdateOne(_m *Content) *ContentUpdateOne {
	mutation := newContentMutation(c.config, OpUpdateOne, withContent(_m))
	return &ContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContentClient) UpdateOneID(id uuid.UUID) *ContentUpdateOne {
	mutation := newContentMutation(c.config, OpUpdateOne, withContentID(id))
	return &ContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Content.
func (c *ContentClient) Delete() *ContentDelete {
	mutation := newContentMutation(c.config, OpDelete)
	return &ContentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContentClient) DeleteOne(_m *Content) *ContentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContentClient) DeleteOneID(id uuid.UUID) *ContentDeleteOne {
	builder := c.Delete().Where(content.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContentDeleteOne{builder}
}

// Query returns a query builder for Content.
func (c *ContentClient) Query() *ContentQuery {
	return &ContentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContent},
		inters: c.Interceptors(),
	}
}

// Get returns a Content entity by its id.
func (c *ContentClient) Get(ctx context.Context, id uuid.UUID) (*Content, error) {
	return c.Query().Where(content.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContentClient) GetX(ctx context.Context, id uuid.UUID) *Content {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryContentType queries the content_type edge of a Content.
func (c *ContentClient) QueryContentType(_m *Content) *ContentTypeQuery {
	query := (&ContentTypeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(content.Table, content.FieldID, id),
			sqlgraph.To(contenttype.Table, contenttype.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, content.ContentTypeTable, content.ContentTypeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLocales queries the locales edge of a Content.
func (c *ContentClient) QueryLocales(_m *Content) *ContentLocaleQuery {
	query := (&ContentLocaleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(content.Table, content.FieldID, id),
			sqlgraph.To(contentlocale.Table, contentlocale.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, content.LocalesTable, content.LocalesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContentClient) Hooks() []Hook {
	return c.hooks.Content
}

// Interceptors returns the client interceptors.
func (c *ContentClient) Interceptors() []Interceptor {
	return c.inters.Content
}

func (c *ContentClient) mutate(ctx context.Context, m *ContentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Content mutation op: %q", m.Op())
	}
}

// ContentLocaleClient is a client for the ContentLocale schema.
type ContentLocaleClient struct {
	config
}

// NewContentLocaleClient returns a client for the ContentLocale from the given config.
func NewContentLocaleClient(c config) *ContentLocaleClient {
	return &ContentLocaleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contentlocale.Hooks(f(g(h())))`.
func (c *ContentLocaleClient) Use(hooks ...Hook) {
	c.hooks.ContentLocale = append(c.hooks.ContentLocale, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contentlocale.Intercept(f(g(h())))`.
func (c *ContentLocaleClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContentLocale = append(c.inters.ContentLocale, interceptors...)
}

// Create returns a builder for creating a ContentLocale entity.
func (c *ContentLocaleClient) Create() *ContentLocaleCreate {
	mutation := newContentLocaleMutation(c.config, OpCreate)
	return &ContentLocaleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContentLocale entities.
func (c *ContentLocaleClient) CreateBulk(builders ...*ContentLocaleCreate) *ContentLocaleCreateBulk {
	return &ContentLocaleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContentLocaleClient) MapCreateBulk(slice any, setFunc func(*ContentLocaleCreate, int)) *ContentLocaleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContentLocaleCreateBulk{err: fmt.Errorf("calling to ContentLocaleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContentLocaleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContentLocaleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContentLocale.
func (c *ContentLocaleClient) Update() *ContentLocaleUpdate {
	mutation := newContentLocaleMutation(c.config, OpUpdate)
	return &ContentLocaleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContentLocaleClient) UpdateOne(_m *ContentLocale) *ContentLocaleUpdateOne {
	mutation := newContentLocaleMutation(c.config, OpUpdateOne, withContentLocale(_m))
	return &ContentLocaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContentLocaleClient) UpdateOneID(id uuid.UUID) *ContentLocaleUpdateOne {
	mutation := newContentLocaleMutation(c.config, OpUpdateOne, withContentLocaleID(id))
	return &ContentLocaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContentLocale.
func (c *ContentLocaleClient) Delete() *ContentLocaleDelete {
	mutation := newContentLocaleMutation(c.config, OpDelete)
	return &ContentLocaleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContentLocaleClient) DeleteOne(_m *ContentLocale) *ContentLocaleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContentLocaleClient) DeleteOneID(id uuid.UUID) *ContentLocaleDeleteOne {
	builder := c.Delete().Where(contentlocale.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContentLocaleDeleteOne{builder}
}

// Query returns a query builder for ContentLocale.
func (c *ContentLocaleClient) Query() *ContentLocaleQuery {
	return &ContentLocaleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContentLocale},
		inters: c.Interceptors(),
	}
}

// Get returns a ContentLocale entity by its id.
func (c *ContentLocaleClient) Get(ctx context.Context, id uuid.UUID) (*ContentLocale, error) {
	return c.Query().Where(contentlocale.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContentLocaleClient) GetX(ctx context.Context, id uuid.UUID) *ContentLocale {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryContent queries the content edge of a ContentLocale.
func (c *ContentLocaleClient) QueryContent(_m *ContentLocale) *ContentQuery {
	query := (&ContentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contentlocale.Table, contentlocale.FieldID, id),
			sqlgraph.To(content.Table, content.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, contentlocale.ContentTable, contentlocale.ContentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContentLocaleClient) Hooks() []Hook {
	return c.hooks.ContentLocale
}

// Interceptors returns the client interceptors.
func (c *ContentLocaleClient) Interceptors() []Interceptor {
	return c.inters.ContentLocale
}

func (c *ContentLocaleClient) mutate(ctx context.Context, m *ContentLocaleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContentLocaleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContentLocaleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContentLocaleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContentLocaleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContentLocale mutation op: %q", m.Op())
	}
}

// ContentTypeClient is a client for the ContentType schema.
type ContentTypeClient struct {
	config
}

// NewContentTypeClient returns a client for the ContentType from the given config.
func NewContentTypeClient(c config) *ContentTypeClient {
	return &ContentTypeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contenttype.Hooks(f(g(h())))`.
func (c *ContentTypeClient) Use(hooks ...Hook) {
	c.hooks.ContentType = append(c.hooks.ContentType, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contenttype.Intercept(f(g(h())))`.
func (c *ContentTypeClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContentType = append(c.inters.ContentType, interceptors...)
}

// Create returns a builder for creating a ContentType entity.
func (c *ContentTypeClient) Create() *ContentTypeCreate {
	mutation := newContentTypeMutation(c.config, OpCreate)
	return &ContentTypeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContentType entities.
func (c *ContentTypeClient) CreateBulk(builders ...*ContentTypeCreate) *ContentTypeCreateBulk {
	return &ContentTypeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContentTypeClient) MapCreateBulk(slice any, setFunc func(*ContentTypeCreate, int)) *ContentTypeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContentTypeCreateBulk{err: fmt.Errorf("calling to ContentTypeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContentTypeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContentTypeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContentType.
func (c *ContentTypeClient) Update() *ContentTypeUpdate {
	mutation := newContentTypeMutation(c.config, OpUpdate)
	return &ContentTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContentTypeClient) UpdateOne(_m *ContentType) *ContentTypeUpdateOne {
	mutation := newContentTypeMutation(c.config, OpUpdateOne, withContentType(_m))
	return &ContentTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContentTypeClient) UpdateOneID(id uuid.UUID) *ContentTypeUpdateOne {
	mutation := newContentTypeMutation(c.config, OpUpdateOne, withContentTypeID(id))
	return &ContentTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContentType.
func (c *ContentTypeClient) Delete() *ContentTypeDelete {
	mutation := newContentTypeMutation(c.config, OpDelete)
	return &ContentTypeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContentTypeClient) DeleteOne(_m *ContentType) *ContentTypeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContentTypeClient) DeleteOneID(id uuid.UUID) *ContentTypeDeleteOne {
	builder := c.Delete().Where(contenttype.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContentTypeDeleteOne{builder}
}

// Query returns a query builder for ContentType.
func (c *ContentTypeClient) Query() *ContentTypeQuery {
	return &ContentTypeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContentType},
		inters: c.Interceptors(),
	}
}

// Get returns a ContentType entity by its id.
func (c *ContentTypeClient) Get(ctx context.Context, id uuid.UUID) (*ContentType, error) {
	return c.Query().Where(contenttype.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContentTypeClient) GetX(ctx context.Context, id uuid.UUID) *ContentType {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFieldDefinitions queries the field_definitions edge of a ContentType.
func (c *ContentTypeClient) QueryFieldDefinitions(_m *ContentType) *FieldDefinitionQuery {
	query := (&FieldDefinitionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contenttype.Table, contenttype.FieldID, id),
			sqlgraph.To(fielddefinition.Table, fielddefinition.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, contenttype.FieldDefinitionsTable, contenttype.FieldDefinitionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryContents queries the contents edge of a ContentType.
func (c *ContentTypeClient) QueryContents(_m *ContentType) *ContentQuery {
	query := (&ContentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contenttype.Table, contenttype.FieldID, id),
			sqlgraph.To(content.Table, content.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, contenttype.ContentsTable, contenttype.ContentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContentTypeClient) Hooks() []Hook {
	return c.hooks.ContentType
}

// Interceptors returns the client interceptors.
func (c *ContentTypeClient) Interceptors() []Interceptor {
	return c.inters.ContentType
}

func (c *ContentTypeClient) mutate(ctx context.Context, m *ContentTypeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContentTypeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContentTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContentTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContentTypeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContentType mutation op: %q", m.Op())
	}
}

// FieldDefinitionClient is a client for the FieldDefinition schema.
type FieldDefinitionClient struct {
	config
}

// NewFieldDefinitionClient returns a client for the FieldDefinition from the given config.
func NewFieldDefinitionClient(c config) *FieldDefinitionClient {
	return &FieldDefinitionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fielddefinition.Hooks(f(g(h())))`.
func (c *FieldDefinitionClient) Use(hooks ...Hook) {
	c.hooks.FieldDefinition = append(c.hooks.FieldDefinition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fielddefinition.Intercept(f(g(h())))`.
func (c *FieldDefinitionClient) Intercept(interceptors ...Interceptor) {
	c.inters.FieldDefinition = append(c.inters.FieldDefinition, interceptors...)
}

// Create returns a builder for creating a FieldDefinition entity.
func (c *FieldDefinitionClient) Create() *FieldDefinitionCreate {
	mutation := newFieldDefinitionMutation(c.config, OpCreate)
	return &FieldDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FieldDefinition entities.
func (c *FieldDefinitionClient) CreateBulk(builders ...*FieldDefinitionCreate) *FieldDefinitionCreateBulk {
	return &FieldDefinitionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FieldDefinitionClient) MapCreateBulk(slice any, setFunc func(*FieldDefinitionCreate, int)) *FieldDefinitionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FieldDefinitionCreateBulk{err: fmt.Errorf("calling to FieldDefinitionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FieldDefinitionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FieldDefinitionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FieldDefinition.
func (c *FieldDefinitionClient) Update() *FieldDefinitionUpdate {
	mutation := newFieldDefinitionMutation(c.config, OpUpdate)
	return &FieldDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FieldDefinitionClient) UpdateOne(_m *FieldDefinition) *FieldDefinitionUpdateOne {
	mutation := newFieldDefinitionMutation(c.config, OpUpdateOne, withFieldDefinition(_m))
	return &FieldDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FieldDefinitionClient) UpdateOneID(id uuid.UUID) *FieldDefinitionUpdateOne {
	mutation := newFieldDefinitionMutation(c.config, OpUpdateOne, withFieldDefinitionID(id))
	return &FieldDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FieldDefinition.
func (c *FieldDefinitionClient) Delete() *FieldDefinitionDelete {
	mutation := newFieldDefinitionMutation(c.config, OpDelete)
	return &FieldDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FieldDefinitionClient) DeleteOne(_m *FieldDefinition) *FieldDefinitionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FieldDefinitionClient) DeleteOneID(id uuid.UUID) *FieldDefinitionDeleteOne {
	builder := c.Delete().Where(fielddefinition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FieldDefinitionDeleteOne{builder}
}

// Query returns a query builder for FieldDefinition.
func (c *FieldDefinitionClient) Query() *FieldDefinitionQuery {
	return &FieldDefinitionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFieldDefinition},
		inters: c.Interceptors(),
	}
}

// Get returns a FieldDefinition entity by its id.
func (c *FieldDefinitionClient) Get(ctx context.Context, id uuid.UUID) (*FieldDefinition, error) {
	return c.Query().Where(fielddefinition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FieldDefinitionClient) GetX(ctx context.Context, id uuid.UUID) *FieldDefinition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryContentType queries the content_type edge of a FieldDefinition.
func (c *FieldDefinitionClient) QueryContentType(_m *FieldDefinition) *ContentTypeQuery {
	query := (&ContentTypeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fielddefinition.Table, fielddefinition.FieldID, id),
			sqlgraph.To(contenttype.Table, contenttype.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fielddefinition.ContentTypeTable, fielddefinition.ContentTypeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFieldType queries the field_type edge of a FieldDefinition.
func (c *FieldDefinitionClient) QueryFieldType(_m *FieldDefinition) *FieldTypeQuery {
	query := (&FieldTypeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fielddefinition.Table, fielddefinition.FieldID, id),
			sqlgraph.To(fieldtype.Table, fieldtype.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fielddefinition.FieldTypeTable, fielddefinition.FieldTypeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FieldDefinitionClient) Hooks() []Hook {
	return c.hooks.FieldDefinition
}

// Interceptors returns the client interceptors.
func (c *FieldDefinitionClient) Interceptors() []Interceptor {
	return c.inters.FieldDefinition
}

func (c *FieldDefinitionClient) mutate(ctx context.Context, m *FieldDefinitionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FieldDefinitionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FieldDefinitionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FieldDefinitionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FieldDefinitionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FieldDefinition mutation op: %q", m.Op())
	}
}

// FieldIndexClient is a client for the FieldIndex schema.
type FieldIndexClient struct {
	config
}

// NewFieldIndexClient returns a client for the FieldIndex from the given config.
func NewFieldIndexClient(c config) *FieldIndexClient {
	return &FieldIndexClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fieldindex.Hooks(f(g(h())))`.
func (c *FieldIndexClient) Use(hooks ...Hook) {
	c.hooks.FieldIndex = append(c.hooks.FieldIndex, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fieldindex.Intercept(f(g(h())))`.
func (c *FieldIndexClient) Intercept(interceptors ...Interceptor) {
	c.inters.FieldIndex = append(c.inters.FieldIndex, interceptors...)
}

// Create returns a builder for creating a FieldIndex entity.
func (c *FieldIndexClient) Create() *FieldIndexCreate {
	mutation := newFieldIndexMutation(c.config, OpCreate)
	return &FieldIndexCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FieldIndex entities.
func (c *FieldIndexClient) CreateBulk(builders ...*FieldIndexCreate) *FieldIndexCreateBulk {
	return &FieldIndexCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FieldIndexClient) MapCreateBulk(slice any, setFunc func(*FieldIndexCreate, int)) *FieldIndexCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FieldIndexCreateBulk{err: fmt.Errorf("calling to FieldIndexClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FieldIndexCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FieldIndexCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FieldIndex.
func (c *FieldIndexClient) Update() *FieldIndexUpdate {
	mutation := newFieldIndexMutation(c.config, OpUpdate)
	return &FieldIndexUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FieldIndexClient) UpdateOne(_m *FieldIndex) *FieldIndexUpdateOne {
	mutation := newFieldIndexMutation(c.config, OpUpdateOne, withFieldIndex(_m))
	return &FieldIndexUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FieldIndexClient) UpdateOneID(id uuid.UUID) *FieldIndexUpdateOne {
	mutation := newFieldIndexMutation(c.config, OpUpdateOne, withFieldIndexID(id))
	return &FieldIndexUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FieldIndex.
func (c *FieldIndexClient) Delete() *FieldIndexDelete {
	mutation := newFieldIndexMutation(c.config, OpDelete)
	return &FieldIndexDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FieldIndexClient) DeleteOne(_m *FieldIndex) *FieldIndexDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FieldIndexClient) DeleteOneID(id uuid.UUID) *FieldIndexDeleteOne {
	builder := c.Delete().Where(fieldindex.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FieldIndexDeleteOne{builder}
}

// Query returns a query builder for FieldIndex.
func (c *FieldIndexClient) Query() *FieldIndexQuery {
	return &FieldIndexQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFieldIndex},
		inters: c.Interceptors(),
	}
}

// Get returns a FieldIndex entity by its id.
func (c *FieldIndexClient) Get(ctx context.Context, id uuid.UUID) (*FieldIndex, error) {
	return c.Query().Where(fieldindex.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FieldIndexClient) GetX(ctx context.Context, id uuid.UUID) *FieldIndex {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FieldIndexClient) Hooks() []Hook {
	return c.hooks.FieldIndex
}

// Interceptors returns the client interceptors.
func (c *FieldIndexClient) Interceptors() []Interceptor {
	return c.inters.FieldIndex
}

func (c *FieldIndexClient) mutate(ctx context.Context, m *FieldIndexMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FieldIndexCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FieldIndexUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FieldIndexUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FieldIndexDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FieldIndex mutation op: %q", m.Op())
	}
}

// FieldTypeClient is a client for the FieldType schema.
type FieldTypeClient struct {
	config
}

// NewFieldTypeClient returns a client for the FieldType from the given config.
func NewFieldTypeClient(c config) *FieldTypeClient {
	return &FieldTypeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fieldtype.Hooks(f(g(h())))`.
func (c *FieldTypeClient) Use(hooks ...Hook) {
	c.hooks.FieldType = append(c.hooks.FieldType, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fieldtype.Intercept(f(g(h())))`.
func (c *FieldTypeClient) Intercept(interceptors ...Interceptor) {
	c.inters.FieldType = append(c.inters.FieldType, interceptors...)
}

// Create returns a builder for creating a FieldType entity.
func (c *FieldTypeClient) Create() *FieldTypeCreate {
	mutation := newFieldTypeMutation(c.config, OpCreate)
	return &FieldTypeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FieldType entities.
func (c *FieldTypeClient) CreateBulk(builders ...*FieldTypeCreate) *FieldTypeCreateBulk {
	return &FieldTypeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FieldTypeClient) MapCreateBulk(slice any, setFunc func(*FieldTypeCreate, int)) *FieldTypeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FieldTypeCreateBulk{err: fmt.Errorf("calling to FieldTypeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FieldTypeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FieldTypeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FieldType.
func (c *FieldTypeClient) Update() *FieldTypeUpdate {
	mutation := newFieldTypeMutation(c.config, OpUpdate)
	return &FieldTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FieldTypeClient) UpdateOne(_m *FieldType) *FieldTypeUpdateOne {
	mutation := newFieldTypeMutation(c.config, OpUpdateOne, withFieldType(_m))
	return &FieldTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FieldTypeClient) UpdateOneID(id uuid.UUID) *FieldTypeUpdateOne {
	mutation := newFieldTypeMutation(c.config, OpUpdateOne, withFieldTypeID(id))
	return &FieldTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FieldType.
func (c *FieldTypeClient) Delete() *FieldTypeDelete {
	mutation := newFieldTypeMutation(c.config, OpDelete)
	return &FieldTypeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FieldTypeClient) DeleteOne(_m *FieldType) *FieldTypeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FieldTypeClient) DeleteOneID(id uuid.UUID) *FieldTypeDeleteOne {
	builder := c.Delete().Where(fieldtype.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FieldTypeDeleteOne{builder}
}

// Query returns a query builder for FieldType.
func (c *FieldTypeClient) Query() *FieldTypeQuery {
	return &FieldTypeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFieldType},
		inters: c.Interceptors(),
	}
}

// Get returns a FieldType entity by its id.
func (c *FieldTypeClient) Get(ctx context.Context, id uuid.UUID) (*FieldType, error) {
	return c.Query().Where(fieldtype.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FieldTypeClient) GetX(ctx context.Context, id uuid.UUID) *FieldType {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFieldDefinitions queries the field_definitions edge of a FieldType.
func (c *FieldTypeClient) QueryFieldDefinitions(_m *FieldType) *FieldDefinitionQuery {
	query := (&FieldDefinitionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fieldtype.Table, fieldtype.FieldID, id),
			sqlgraph.To(fielddefinition.Table, fielddefinition.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, fieldtype.FieldDefinitionsTable, fieldtype.FieldDefinitionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FieldTypeClient) Hooks() []Hook {
	return c.hooks.FieldType
}

// Interceptors returns the client interceptors.
func (c *FieldTypeClient) Interceptors() []Interceptor {
	return c.inters.FieldType
}

func (c *FieldTypeClient) mutate(ctx context.Context, m *FieldTypeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FieldTypeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FieldTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FieldTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FieldTypeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FieldType mutation op: %q", m.Op())
	}
}

// LanguageClient is a client for the Language schema.
type LanguageClient struct {
	config
}

// NewLanguageClient returns a client for the Language from the given config.
func NewLanguageClient(c config) *LanguageClient {
	return &LanguageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `language.Hooks(f(g(h())))`.
func (c *LanguageClient) Use(hooks ...Hook) {
	c.hooks.Language = append(c.hooks.Language, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `language.Intercept(f(g(h())))`.
func (c *LanguageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Language = append(c.inters.Language, interceptors...)
}

// Create returns a builder for creating a Language entity.
func (c *LanguageClient) Create() *LanguageCreate {
	mutation := newLanguageMutation(c.config, OpCreate)
	return &LanguageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Language entities.
func (c *LanguageClient) CreateBulk(builders ...*LanguageCreate) *LanguageCreateBulk {
	return &LanguageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LanguageClient) MapCreateBulk(slice any, setFunc func(*LanguageCreate, int)) *LanguageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LanguageCreateBulk{err: fmt.Errorf("calling to LanguageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LanguageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LanguageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Language.
func (c *LanguageClient) Update() *LanguageUpdate {
	mutation := newLanguageMutation(c.config, OpUpdate)
	return &LanguageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LanguageClient) UpdateOne(_m *Language) *LanguageUpdateOne {
	mutation := newLanguageMutation(c.config, OpUpdateOne, withLanguage(_m))
	return &LanguageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LanguageClient) UpdateOneID(id uuid.UUID) *LanguageUpdateOne {
	mutation := newLanguageMutation(c.config, OpUpdateOne, withLanguageID(id))
	return &LanguageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Language.
func (c *LanguageClient) Delete() *LanguageDelete {
	mutation := newLanguageMutation(c.config, OpDelete)
	return &LanguageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LanguageClient) DeleteOne(_m *Language) *LanguageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LanguageClient) DeleteOneID(id uuid.UUID) *LanguageDeleteOne {
	builder := c.Delete().Where(language.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LanguageDeleteOne{builder}
}

// Query returns a query builder for Language.
func (c *LanguageClient) Query() *LanguageQuery {
	return &LanguageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLanguage},
		inters: c.Interceptors(),
	}
}

// Get returns a Language entity by its id.
func (c *LanguageClient) Get(ctx context.Context, id uuid.UUID) (*Language, error) {
	return c.Query().Where(language.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LanguageClient) GetX(ctx context.Context, id uuid.UUID) *Language {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LanguageClient) Hooks() []Hook {
	return c.hooks.Language
}

// Interceptors returns the client interceptors.
func (c *LanguageClient) Interceptors() []Interceptor {
	return c.inters.Language
}

func (c *LanguageClient) mutate(ctx context.Context, m *LanguageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LanguageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LanguageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LanguageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LanguageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Language mutation op: %q", m.Op())
	}
}

// PublishedContentClient is a client for the PublishedContent schema.
type PublishedContentClient struct {
	config
}

// NewPublishedContentClient returns a client for the PublishedContent from the given config.
func NewPublishedContentClient(c config) *PublishedContentClient {
	return &PublishedContentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `publishedcontent.Hooks(f(g(h())))`.
func (c *PublishedContentClient) Use(hooks ...Hook) {
	c.hooks.PublishedContent = append(c.hooks.PublishedContent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `publishedcontent.Intercept(f(g(h())))`.
func (c *PublishedContentClient) Intercept(interceptors ...Interceptor) {
	c.inters.PublishedContent = append(c.inters.PublishedContent, interceptors...)
}

// Create returns a builder for creating a PublishedContent entity.
func (c *PublishedContentClient) Create() *PublishedContentCreate {
	mutation := newPublishedContentMutation(c.config, OpCreate)
	return &PublishedContentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PublishedContent entities.
func (c *PublishedContentClient) CreateBulk(builders ...*PublishedContentCreate) *PublishedContentCreateBulk {
	return &PublishedContentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PublishedContentClient) MapCreateBulk(slice any, setFunc func(*PublishedContentCreate, int)) *PublishedContentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PublishedContentCreateBulk{err: fmt.Errorf("calling to PublishedContentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PublishedContentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PublishedContentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PublishedContent.
func (c *PublishedContentClient) Update() *PublishedContentUpdate {
	mutation := newPublishedContentMutation(c.config, OpUpdate)
	return &PublishedContentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PublishedContentClient) UpdateOne(_m *PublishedContent) *PublishedContentUpdateOne {
	mutation := newPublishedContentMutation(c.config, OpUpdateOne, withPublishedContent(_m))
	return &PublishedContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PublishedContentClient) UpdateOneID(id uuid.UUID) *PublishedContentUpdateOne {
	mutation := newPublishedContentMutation(c.config, OpUpdateOne, withPublishedContentID(id))
	return &PublishedContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PublishedContent.
func (c *PublishedContentClient) Delete() *PublishedContentDelete {
	mutation := newPublishedContentMutation(c.config, OpDelete)
	return &PublishedContentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PublishedContentClient) DeleteOne(_m *PublishedContent) *PublishedContentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PublishedContentClient) DeleteOneID(id uuid.UUID) *PublishedContentDeleteOne {
	builder := c.Delete().Where(publishedcontent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PublishedContentDeleteOne{builder}
}

// Query returns a query builder for PublishedContent.
func (c *PublishedContentClient) Query() *PublishedContentQuery {
	return &PublishedContentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePublishedContent},
		inters: c.Interceptors(),
	}
}

// Get returns a PublishedContent entity by its id.
func (c *PublishedContentClient) Get(ctx context.Context, id uuid.UUID) (*PublishedContent, error) {
	return c.Query().Where(publishedcontent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PublishedContentClient) GetX(ctx context.Context, id uuid.UUID) *PublishedContent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PublishedContentClient) Hooks() []Hook {
	return c.hooks.PublishedContent
}

// Interceptors returns the client interceptors.
func (c *PublishedContentClient) Interceptors() []Interceptor {
	return c.inters.PublishedContent
}

func (c *PublishedContentClient) mutate(ctx context.Context, m *PublishedContentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PublishedContentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PublishedContentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PublishedContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PublishedContentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PublishedContent mutation op: %q", m.Op())
	}
}

// RealmClient is a client for the Realm schema.
type RealmClient struct {
	config
}

// NewRealmClient returns a client for the Realm from the given config.
func NewRealmClient(c config) *RealmClient {
	return &RealmClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `realm.Hooks(f(g(h())))`.
func (c *RealmClient) Use(hooks ...Hook) {
	c.hooks.Realm = append(c.hooks.Realm, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `realm.Intercept(f(g(h())))`.
func (c *RealmClient) Intercept(interceptors ...Interceptor) {
	c.inters.Realm = append(c.inters.Realm, interceptors...)
}

// Create returns a builder for creating a Realm entity.
func (c *RealmClient) Create() *RealmCreate {
	mutation := newRealmMutation(c.config, OpCreate)
	return &RealmCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Realm entities.
func (c *RealmClient) CreateBulk(builders ...*RealmCreate) *RealmCreateBulk {
	return &RealmCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RealmClient) MapCreateBulk(slice any, setFunc func(*RealmCreate, int)) *RealmCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RealmCreateBulk{err: fmt.Errorf("calling to RealmClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RealmCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RealmCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Realm.
func (c *RealmClient) Update() *RealmUpdate {
	mutation := newRealmMutation(c.config, OpUpdate)
	return &RealmUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RealmClient) UpdateOne(_m *Realm) *RealmUpdateOne {
	mutation := newRealmMutation(c.config, OpUpdateOne, withRealm(_m))
	return &RealmUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RealmClient) UpdateOneID(id uuid.UUID) *RealmUpdateOne {
	mutation := newRealmMutation(c.config, OpUpdateOne, withRealmID(id))
	return &RealmUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Realm.
func (c *RealmClient) Delete() *RealmDelete {
	mutation := newRealmMutation(c.config, OpDelete)
	return &RealmDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RealmClient) DeleteOne(_m *Realm) *RealmDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RealmClient) DeleteOneID(id uuid.UUID) *RealmDeleteOne {
	builder := c.Delete().Where(realm.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RealmDeleteOne{builder}
}

// Query returns a query builder for Realm.
func (c *RealmClient) Query() *RealmQuery {
	return &RealmQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRealm},
		inters: c.Interceptors(),
	}
}

// Get returns a Realm entity by its id.
func (c *RealmClient) Get(ctx context.Context, id uuid.UUID) (*Realm, error) {
	return c.Query().Where(realm.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RealmClient) GetX(ctx context.Context, id uuid.UUID) *Realm {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RealmClient) Hooks() []Hook {
	return c.hooks.Realm
}

// Interceptors returns the client interceptors.
func (c *RealmClient) Interceptors() []Interceptor {
	return c.inters.Realm
}

func (c *RealmClient) mutate(ctx context.Context, m *RealmMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RealmCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RealmUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RealmUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RealmDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Realm mutation op: %q", m.Op())
	}
}

// UniqueIndexClient is a client for the UniqueIndex schema.
type UniqueIndexClient struct {
	config
}

// NewUniqueIndexClient returns a client for the UniqueIndex from the given config.
func NewUniqueIndexClient(c config) *UniqueIndexClient {
	return &UniqueIndexClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `uniqueindex.Hooks(f(g(h())))`.
func (c *UniqueIndexClient) Use(hooks ...Hook) {
	c.hooks.UniqueIndex = append(c.hooks.UniqueIndex, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `uniqueindex.Intercept(f(g(h())))`.
func (c *UniqueIndexClient) Intercept(interceptors ...Interceptor) {
	c.inters.UniqueIndex = append(c.inters.UniqueIndex, interceptors...)
}

// Create returns a builder for creating a UniqueIndex entity.
func (c *UniqueIndexClient) Create() *UniqueIndexCreate {
	mutation := newUniqueIndexMutation(c.config, OpCreate)
	return &UniqueIndexCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UniqueIndex entities.
func (c *UniqueIndexClient) CreateBulk(builders ...*UniqueIndexCreate) *UniqueIndexCreateBulk {
	return &UniqueIndexCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UniqueIndexClient) MapCreateBulk(slice any, setFunc func(*UniqueIndexCreate, int)) *UniqueIndexCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UniqueIndexCreateBulk{err: fmt.Errorf("calling to UniqueIndexClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UniqueIndexCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UniqueIndexCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UniqueIndex.
func (c *UniqueIndexClient) Update() *UniqueIndexUpdate {
	mutation := newUniqueIndexMutation(c.config, OpUpdate)
	return &UniqueIndexUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UniqueIndexClient) UpdateOne(_m *UniqueIndex) *UniqueIndexUpdateOne {
	mutation := newUniqueIndexMutation(c.config, OpUpdateOne, withUniqueIndex(_m))
	return &UniqueIndexUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UniqueIndexClient) UpdateOneID(id uuid.UUID) *UniqueIndexUpdateOne {
	mutation := newUniqueIndexMutation(c.config, OpUpdateOne, withUniqueIndexID(id))
	return &UniqueIndexUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UniqueIndex.
func (c *UniqueIndexClient) Delete() *UniqueIndexDelete {
	mutation := newUniqueIndexMutation(c.config, OpDelete)
	return &UniqueIndexDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UniqueIndexClient) DeleteOne(_m *UniqueIndex) *UniqueIndexDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UniqueIndexClient) DeleteOneID(id uuid.UUID) *UniqueIndexDeleteOne {
	builder := c.Delete().Where(uniqueindex.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UniqueIndexDeleteOne{builder}
}

// Query returns a query builder for UniqueIndex.
func (c *UniqueIndexClient) Query() *UniqueIndexQuery {
	return &UniqueIndexQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUniqueIndex},
		inters: c.Interceptors(),
	}
}

// Get returns a UniqueIndex entity by its id.
func (c *UniqueIndexClient) Get(ctx context.Context, id uuid.UUID) (*UniqueIndex, error) {
	return c.Query().Where(uniqueindex.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UniqueIndexClient) GetX(ctx context.Context, id uuid.UUID) *UniqueIndex {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UniqueIndexClient) Hooks() []Hook {
	return c.hooks.UniqueIndex
}

// Interceptors returns the client interceptors.
func (c *UniqueIndexClient) Interceptors() []Interceptor {
	return c.inters.UniqueIndex
}

func (c *UniqueIndexClient) mutate(ctx context.Context, m *UniqueIndexMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UniqueIndexCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UniqueIndexUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UniqueIndexUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UniqueIndexDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UniqueIndex mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Actor, ApiKey, Content, ContentLocale, ContentType, FieldDefinition, FieldIndex,
		FieldType, Language, PublishedContent, Realm, UniqueIndex, User []ent.Hook
	}
	inters struct {
		Actor, ApiKey, Content, ContentLocale, ContentType, FieldDefinition, FieldIndex,
		FieldType, Language, PublishedContent, Realm, UniqueIndex,
		User []ent.Interceptor
	}
)
