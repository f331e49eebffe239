// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/extractly-io/extractly/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/extractly-io/extractly/gen/ent/collection"
	"github.com/extractly-io/extractly/gen/ent/collectionproperty"
	"github.com/extractly-io/extractly/gen/ent/extractionrule"
	"github.com/extractly-io/extractly/gen/ent/extractionsession"
	"github.com/extractly-io/extractly/gen/ent/knowledgedocument"
	"github.com/extractly-io/extractly/gen/ent/project"
	"github.com/extractly-io/extractly/gen/ent/schemafield"
	"github.com/extractly-io/extractly/gen/ent/sessiondocument"
	"github.com/extractly-io/extractly/gen/ent/validationrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Collection is the client for interacting with the Collection builders.
	Collection *CollectionClient
	// CollectionProperty is the client for interacting with the CollectionProperty builders.
	CollectionProperty *CollectionPropertyClient
	// ExtractionRule is the client for interacting with the ExtractionRule builders.
	ExtractionRule *ExtractionRuleClient
	// ExtractionSession is the client for interacting with the ExtractionSession builders.
	ExtractionSession *ExtractionSessionClient
	// KnowledgeDocument is the client for interacting with the KnowledgeDocument builders.
	KnowledgeDocument *KnowledgeDocumentClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// SchemaField is the client for interacting with the SchemaField builders.
	SchemaField *SchemaFieldClient
	// SessionDocument is the client for interacting with the SessionDocument builders.
	SessionDocument *SessionDocumentClient
	// ValidationRecord is the client for interacting with the ValidationRecord builders.
	ValidationRecord *ValidationRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Collection = NewCollectionClient(c.config)
	c.CollectionProperty = NewCollectionPropertyClient(c.config)
	c.ExtractionRule = NewExtractionRuleClient(c.config)
	c.ExtractionSession = NewExtractionSessionClient(c.config)
	c.KnowledgeDocument = NewKnowledgeDocumentClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.SchemaField = NewSchemaFieldClient(c.config)
	c.SessionDocument = NewSessionDocumentClient(c.config)
	c.ValidationRecord = NewValidationRecordClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		Collection:         NewCollectionClient(cfg),
		CollectionProperty: NewCollectionPropertyClient(cfg),
		ExtractionRule:     NewExtractionRuleClient(cfg),
		ExtractionSession:  NewExtractionSessionClient(cfg),
		KnowledgeDocument:  NewKnowledgeDocumentClient(cfg),
		Project:            NewProjectClient(cfg),
		SchemaField:        NewSchemaFieldClient(cfg),
		SessionDocument:    NewSessionDocumentClient(cfg),
		ValidationRecord:   NewValidationRecordClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		Collection:         NewCollectionClient(cfg),
		CollectionProperty: NewCollectionPropertyClient(cfg),
		ExtractionRule:     NewExtractionRuleClient(cfg),
		ExtractionSession:  NewExtractionSessionClient(cfg),
		KnowledgeDocument:  NewKnowledgeDocumentClient(cfg),
		Project:            NewProjectClient(cfg),
		SchemaField:        NewSchemaFieldClient(cfg),
		SessionDocument:    NewSessionDocumentClient(cfg),
		ValidationRecord:   NewValidationRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Collection.
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
		c.Collection, c.CollectionProperty, c.ExtractionRule, c.ExtractionSession,
		c.KnowledgeDocument, c.Project, c.SchemaField, c.SessionDocument,
		c.ValidationRecord,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Collection, c.CollectionProperty, c.ExtractionRule, c.ExtractionSession,
		c.KnowledgeDocument, c.Project, c.SchemaField, c.SessionDocument,
		c.ValidationRecord,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CollectionMutation:
		return c.Collection.mutate(ctx, m)
	case *CollectionPropertyMutation:
		return c.CollectionProperty.mutate(ctx, m)
	case *ExtractionRuleMutation:
		return c.ExtractionRule.mutate(ctx, m)
	case *ExtractionSessionMutation:
		return c.ExtractionSession.mutate(ctx, m)
	case *KnowledgeDocumentMutation:
		return c.KnowledgeDocument.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *SchemaFieldMutation:
		return c.SchemaField.mutate(ctx, m)
	case *SessionDocumentMutation:
		return c.SessionDocument.mutate(ctx, m)
	case *ValidationRecordMutation:
		return c.ValidationRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CollectionClient is a client for the Collection schema.
type CollectionClient struct {
	config
}

// NewCollectionClient returns a client for the Collection from the given config.
func NewCollectionClient(c config) *CollectionClient {
	return &CollectionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `collection.Hooks(f(g(h())))`.
func (c *CollectionClient) Use(hooks ...Hook) {
	c.hooks.Collection = append(c.hooks.Collection, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `collection.Intercept(f(g(h())))`.
func (c *CollectionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Collection = append(c.inters.Collection, interceptors...)
}

// Create returns a builder for creating a Collection entity.
func (c *CollectionClient) Create() *CollectionCreate {
	mutation := newCollectionMutation(c.config, OpCreate)
	return &CollectionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Collection entities.
func (c *CollectionClient) CreateBulk(builders ...*CollectionCreate) *CollectionCreateBulk {
	return &CollectionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CollectionClient) MapCreateBulk(slice any, setFunc func(*CollectionCreate, int)) *CollectionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CollectionCreateBulk{err: fmt.Errorf("calling to CollectionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CollectionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CollectionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Collection.
func (c *CollectionClient) Update() *CollectionUpdate {
	mutation := newCollectionMutation(c.config, OpUpdate)
	return &CollectionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CollectionClient) UpdateOne(_m *Collection) *CollectionUpdateOne {
	mutation := newCollectionMutation(c.config, OpUpdateOne, withCollection(_m))
	return &CollectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CollectionClient) UpdateOneID(id uuid.UUID) *CollectionUpdateOne {
	mutation := newCollectionMutation(c.config, OpUpdateOne, withCollectionID(id))
	return &CollectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Collection.
func (c *CollectionClient) Delete() *CollectionDelete {
	mutation := newCollectionMutation(c.config, OpDelete)
	return &CollectionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CollectionClient) DeleteOne(_m *Collection) *CollectionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CollectionClient) DeleteOneID(id uuid.UUID) *CollectionDeleteOne {
	builder := c.Delete().Where(collection.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CollectionDeleteOne{builder}
}

// Query returns a query builder for Collection.
func (c *CollectionClient) Query() *CollectionQuery {
	return &CollectionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCollection},
		inters: c.Interceptors(),
	}
}

// Get returns a Collection entity by its id.
func (c *CollectionClient) Get(ctx context.Context, id uuid.UUID) (*Collection, error) {
	return c.Query().Where(collection.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CollectionClient) GetX(ctx context.Context, id uuid.UUID) *Collection {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Collection.
func (c *CollectionClient) QueryProject(_m *Collection) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(collection.Table, collection.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, collection.ProjectTable, collection.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProperties queries the properties edge of a Collection.
func (c *CollectionClient) QueryProperties(_m *Collection) *CollectionPropertyQuery {
	query := (&CollectionPropertyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(collection.Table, collection.FieldID, id),
			sqlgraph.To(collectionproperty.Table, collectionproperty.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, collection.PropertiesTable, collection.PropertiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CollectionClient) Hooks() []Hook {
	return c.hooks.Collection
}

// Interceptors returns the client interceptors.
func (c *CollectionClient) Interceptors() []Interceptor {
	return c.inters.Collection
}

func (c *CollectionClient) mutate(ctx context.Context, m *CollectionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CollectionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CollectionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CollectionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CollectionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Collection mutation op: %q", m.Op())
	}
}

// CollectionPropertyClient is a client for the CollectionProperty schema.
type CollectionPropertyClient struct {
	config
}

// NewCollectionPropertyClient returns a client for the CollectionProperty from the given config.
func NewCollectionPropertyClient(c config) *CollectionPropertyClient {
	return &CollectionPropertyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `collectionproperty.Hooks(f(g(h())))`.
func (c *CollectionPropertyClient) Use(hooks ...Hook) {
	c.hooks.CollectionProperty = append(c.hooks.CollectionProperty, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `collectionproperty.Intercept(f(g(h())))`.
func (c *CollectionPropertyClient) Intercept(interceptors ...Interceptor) {
	c.inters.CollectionProperty = append(c.inters.CollectionProperty, interceptors...)
}

// Create returns a builder for creating a CollectionProperty entity.
func (c *CollectionPropertyClient) Create() *CollectionPropertyCreate {
	mutation := newCollectionPropertyMutation(c.config, OpCreate)
	return &CollectionPropertyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CollectionProperty entities.
func (c *CollectionPropertyClient) CreateBulk(builders ...*CollectionPropertyCreate) *CollectionPropertyCreateBulk {
	return &CollectionPropertyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CollectionPropertyClient) MapCreateBulk(slice any, setFunc func(*CollectionPropertyCreate, int)) *CollectionPropertyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CollectionPropertyCreateBulk{err: fmt.Errorf("calling to CollectionPropertyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CollectionPropertyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CollectionPropertyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CollectionProperty.
func (c *CollectionPropertyClient) Update() *CollectionPropertyUpdate {
	mutation := newCollectionPropertyMutation(c.config, OpUpdate)
	return &CollectionPropertyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CollectionPropertyClient) UpdateOne(_m *CollectionProperty) *CollectionPropertyUpdateOne {
	mutation := newCollectionPropertyMutation(c.config, OpUpdateOne, withCollectionProperty(_m))
	return &CollectionPropertyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CollectionPropertyClient) UpdateOneID(id uuid.UUID) *CollectionPropertyUpdateOne {
	mutation := newCollectionPropertyMutation(c.config, OpUpdateOne, withCollectionPropertyID(id))
	return &CollectionPropertyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CollectionProperty.
func (c *CollectionPropertyClient) Delete() *CollectionPropertyDelete {
	mutation := newCollectionPropertyMutation(c.config, OpDelete)
	return &CollectionPropertyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CollectionPropertyClient) DeleteOne(_m *CollectionProperty) *CollectionPropertyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CollectionPropertyClient) DeleteOneID(id uuid.UUID) *CollectionPropertyDeleteOne {
	builder := c.Delete().Where(collectionproperty.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CollectionPropertyDeleteOne{builder}
}

// Query returns a query builder for CollectionProperty.
func (c *CollectionPropertyClient) Query() *CollectionPropertyQuery {
	return &CollectionPropertyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCollectionProperty},
		inters: c.Interceptors(),
	}
}

// Get returns a CollectionProperty entity by its id.
func (c *CollectionPropertyClient) Get(ctx context.Context, id uuid.UUID) (*CollectionProperty, error) {
	return c.Query().Where(collectionproperty.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CollectionPropertyClient) GetX(ctx context.Context, id uuid.UUID) *CollectionProperty {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCollection queries the collection edge of a CollectionProperty.
func (c *CollectionPropertyClient) QueryCollection(_m *CollectionProperty) *CollectionQuery {
	query := (&CollectionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(collectionproperty.Table, collectionproperty.FieldID, id),
			sqlgraph.To(collection.Table, collection.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, collectionproperty.CollectionTable, collectionproperty.CollectionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CollectionPropertyClient) Hooks() []Hook {
	return c.hooks.CollectionProperty
}

// Interceptors returns the client interceptors.
func (c *CollectionPropertyClient) Interceptors() []Interceptor {
	return c.inters.CollectionProperty
}

func (c *CollectionPropertyClient) mutate(ctx context.Context, m *CollectionPropertyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CollectionPropertyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CollectionPropertyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CollectionPropertyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CollectionPropertyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CollectionProperty mutation op: %q", m.Op())
	}
}

// ExtractionRuleClient is a client for the ExtractionRule schema.
type ExtractionRuleClient struct {
	config
}

// NewExtractionRuleClient returns a client for the ExtractionRule from the given config.
func NewExtractionRuleClient(c config) *ExtractionRuleClient {
	return &ExtractionRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractionrule.Hooks(f(g(h())))`.
func (c *ExtractionRuleClient) Use(hooks ...Hook) {
	c.hooks.ExtractionRule = append(c.hooks.ExtractionRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractionrule.Intercept(f(g(h())))`.
func (c *ExtractionRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractionRule = append(c.inters.ExtractionRule, interceptors...)
}

// Create returns a builder for creating a ExtractionRule entity.
func (c *ExtractionRuleClient) Create() *ExtractionRuleCreate {
	mutation := newExtractionRuleMutation(c.config, OpCreate)
	return &ExtractionRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractionRule entities.
func (c *ExtractionRuleClient) CreateBulk(builders ...*ExtractionRuleCreate) *ExtractionRuleCreateBulk {
	return &ExtractionRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionRuleClient) MapCreateBulk(slice any, setFunc func(*ExtractionRuleCreate, int)) *ExtractionRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionRuleCreateBulk{err: fmt.Errorf("calling to ExtractionRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractionRule.
func (c *ExtractionRuleClient) Update() *ExtractionRuleUpdate {
	mutation := newExtractionRuleMutation(c.config, OpUpdate)
	return &ExtractionRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionRuleClient) UpdateOne(_m *ExtractionRule) *ExtractionRuleUpdateOne {
	mutation := newExtractionRuleMutation(c.config, OpUpdateOne, withExtractionRule(_m))
	return &ExtractionRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionRuleClient) UpdateOneID(id uuid.UUID) *ExtractionRuleUpdateOne {
	mutation := newExtractionRuleMutation(c.config, OpUpdateOne, withExtractionRuleID(id))
	return &ExtractionRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractionRule.
func (c *ExtractionRuleClient) Delete() *ExtractionRuleDelete {
	mutation := newExtractionRuleMutation(c.config, OpDelete)
	return &ExtractionRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionRuleClient) DeleteOne(_m *ExtractionRule) *ExtractionRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionRuleClient) DeleteOneID(id uuid.UUID) *ExtractionRuleDeleteOne {
	builder := c.Delete().Where(extractionrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionRuleDeleteOne{builder}
}

// Query returns a query builder for ExtractionRule.
func (c *ExtractionRuleClient) Query() *ExtractionRuleQuery {
	return &ExtractionRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractionRule},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractionRule entity by its id.
func (c *ExtractionRuleClient) Get(ctx context.Context, id uuid.UUID) (*ExtractionRule, error) {
	return c.Query().Where(extractionrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionRuleClient) GetX(ctx context.Context, id uuid.UUID) *ExtractionRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a ExtractionRule.
func (c *ExtractionRuleClient) QueryProject(_m *ExtractionRule) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionrule.Table, extractionrule.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractionrule.ProjectTable, extractionrule.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionRuleClient) Hooks() []Hook {
	return c.hooks.ExtractionRule
}

// Interceptors returns the client interceptors.
func (c *ExtractionRuleClient) Interceptors() []Interceptor {
	return c.inters.ExtractionRule
}

func (c *ExtractionRuleClient) mutate(ctx context.Context, m *ExtractionRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractionRule mutation op: %q", m.Op())
	}
}

// ExtractionSessionClient is a client for the ExtractionSession schema.
type ExtractionSessionClient struct {
	config
}

// NewExtractionSessionClient returns a client for the ExtractionSession from the given config.
func NewExtractionSessionClient(c config) *ExtractionSessionClient {
	return &ExtractionSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractionsession.Hooks(f(g(h())))`.
func (c *ExtractionSessionClient) Use(hooks ...Hook) {
	c.hooks.ExtractionSession = append(c.hooks.ExtractionSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractionsession.Intercept(f(g(h())))`.
func (c *ExtractionSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractionSession = append(c.inters.ExtractionSession, interceptors...)
}

// Create returns a builder for creating a ExtractionSession entity.
func (c *ExtractionSessionClient) Create() *ExtractionSessionCreate {
	mutation := newExtractionSessionMutation(c.config, OpCreate)
	return &ExtractionSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractionSession entities.
func (c *ExtractionSessionClient) CreateBulk(builders ...*ExtractionSessionCreate) *ExtractionSessionCreateBulk {
	return &ExtractionSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionSessionClient) MapCreateBulk(slice any, setFunc func(*ExtractionSessionCreate, int)) *ExtractionSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionSessionCreateBulk{err: fmt.Errorf("calling to ExtractionSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractionSession.
func (c *ExtractionSessionClient) Update() *ExtractionSessionUpdate {
	mutation := newExtractionSessionMutation(c.config, OpUpdate)
	return &ExtractionSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionSessionClient) UpdateOne(_m *ExtractionSession) *ExtractionSessionUpdateOne {
	mutation := newExtractionSessionMutation(c.config, OpUpdateOne, withExtractionSession(_m))
	return &ExtractionSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionSessionClient) UpdateOneID(id uuid.UUID) *ExtractionSessionUpdateOne {
	mutation := newExtractionSessionMutation(c.config, OpUpdateOne, withExtractionSessionID(id))
	return &ExtractionSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractionSession.
func (c *ExtractionSessionClient) Delete() *ExtractionSessionDelete {
	mutation := newExtractionSessionMutation(c.config, OpDelete)
	return &ExtractionSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionSessionClient) DeleteOne(_m *ExtractionSession) *ExtractionSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionSessionClient) DeleteOneID(id uuid.UUID) *ExtractionSessionDeleteOne {
	builder := c.Delete().Where(extractionsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionSessionDeleteOne{builder}
}

// Query returns a query builder for ExtractionSession.
func (c *ExtractionSessionClient) Query() *ExtractionSessionQuery {
	return &ExtractionSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractionSession},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractionSession entity by its id.
func (c *ExtractionSessionClient) Get(ctx context.Context, id uuid.UUID) (*ExtractionSession, error) {
	return c.Query().Where(extractionsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionSessionClient) GetX(ctx context.Context, id uuid.UUID) *ExtractionSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a ExtractionSession.
func (c *ExtractionSessionClient) QueryProject(_m *ExtractionSession) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionsession.Table, extractionsession.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractionsession.ProjectTable, extractionsession.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDocuments queries the documents edge of a ExtractionSession.
func (c *ExtractionSessionClient) QueryDocuments(_m *ExtractionSession) *SessionDocumentQuery {
	query := (&SessionDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionsession.Table, extractionsession.FieldID, id),
			sqlgraph.To(sessiondocument.Table, sessiondocument.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, extractionsession.DocumentsTable, extractionsession.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRecords queries the records edge of a ExtractionSession.
func (c *ExtractionSessionClient) QueryRecords(_m *ExtractionSession) *ValidationRecordQuery {
	query := (&ValidationRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionsession.Table, extractionsession.FieldID, id),
			sqlgraph.To(validationrecord.Table, validationrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, extractionsession.RecordsTable, extractionsession.RecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionSessionClient) Hooks() []Hook {
	return c.hooks.ExtractionSession
}

// Interceptors returns the client interceptors.
func (c *ExtractionSessionClient) Interceptors() []Interceptor {
	return c.inters.ExtractionSession
}

func (c *ExtractionSessionClient) mutate(ctx context.Context, m *ExtractionSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractionSession mutation op: %q", m.Op())
	}
}

// KnowledgeDocumentClient is a client for the KnowledgeDocument schema.
type KnowledgeDocumentClient struct {
	config
}

// NewKnowledgeDocumentClient returns a client for the KnowledgeDocument from the given config.
func NewKnowledgeDocumentClient(c config) *KnowledgeDocumentClient {
	return &KnowledgeDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `knowledgedocument.Hooks(f(g(h())))`.
func (c *KnowledgeDocumentClient) Use(hooks ...Hook) {
	c.hooks.KnowledgeDocument = append(c.hooks.KnowledgeDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `knowledgedocument.Intercept(f(g(h())))`.
func (c *KnowledgeDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.KnowledgeDocument = append(c.inters.KnowledgeDocument, interceptors...)
}

// Create returns a builder for creating a KnowledgeDocument entity.
func (c *KnowledgeDocumentClient) Create() *KnowledgeDocumentCreate {
	mutation := newKnowledgeDocumentMutation(c.config, OpCreate)
	return &KnowledgeDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KnowledgeDocument entities.
func (c *KnowledgeDocumentClient) CreateBulk(builders ...*KnowledgeDocumentCreate) *KnowledgeDocumentCreateBulk {
	return &KnowledgeDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KnowledgeDocumentClient) MapCreateBulk(slice any, setFunc func(*KnowledgeDocumentCreate, int)) *KnowledgeDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KnowledgeDocumentCreateBulk{err: fmt.Errorf("calling to KnowledgeDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KnowledgeDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KnowledgeDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KnowledgeDocument.
func (c *KnowledgeDocumentClient) Update() *KnowledgeDocumentUpdate {
	mutation := newKnowledgeDocumentMutation(c.config, OpUpdate)
	return &KnowledgeDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KnowledgeDocumentClient) UpdateOne(_m *KnowledgeDocument) *KnowledgeDocumentUpdateOne {
	mutation := newKnowledgeDocumentMutation(c.config, OpUpdateOne, withKnowledgeDocument(_m))
	return &KnowledgeDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KnowledgeDocumentClient) UpdateOneID(id uuid.UUID) *KnowledgeDocumentUpdateOne {
	mutation := newKnowledgeDocumentMutation(c.config, OpUpdateOne, withKnowledgeDocumentID(id))
	return &KnowledgeDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KnowledgeDocument.
func (c *KnowledgeDocumentClient) Delete() *KnowledgeDocumentDelete {
	mutation := newKnowledgeDocumentMutation(c.config, OpDelete)
	return &KnowledgeDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KnowledgeDocumentClient) DeleteOne(_m *KnowledgeDocument) *KnowledgeDocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KnowledgeDocumentClient) DeleteOneID(id uuid.UUID) *KnowledgeDocumentDeleteOne {
	builder := c.Delete().Where(knowledgedocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KnowledgeDocumentDeleteOne{builder}
}

// Query returns a query builder for KnowledgeDocument.
func (c *KnowledgeDocumentClient) Query() *KnowledgeDocumentQuery {
	return &KnowledgeDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKnowledgeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a KnowledgeDocument entity by its id.
func (c *KnowledgeDocumentClient) Get(ctx context.Context, id uuid.UUID) (*KnowledgeDocument, error) {
	return c.Query().Where(knowledgedocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KnowledgeDocumentClient) GetX(ctx context.Context, id uuid.UUID) *KnowledgeDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a KnowledgeDocument.
func (c *KnowledgeDocumentClient) QueryProject(_m *KnowledgeDocument) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(knowledgedocument.Table, knowledgedocument.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, knowledgedocument.ProjectTable, knowledgedocument.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *KnowledgeDocumentClient) Hooks() []Hook {
	return c.hooks.KnowledgeDocument
}

// Interceptors returns the client interceptors.
func (c *KnowledgeDocumentClient) Interceptors() []Interceptor {
	return c.inters.KnowledgeDocument
}

func (c *KnowledgeDocumentClient) mutate(ctx context.Context, m *KnowledgeDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KnowledgeDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KnowledgeDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KnowledgeDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KnowledgeDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KnowledgeDocument mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id uuid.UUID) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id uuid.UUID) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id uuid.UUID) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id uuid.UUID) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFields queries the fields edge of a Project.
func (c *ProjectClient) QueryFields(_m *Project) *SchemaFieldQuery {
	query := (&SchemaFieldClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(schemafield.Table, schemafield.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.FieldsTable, project.FieldsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCollections queries the collections edge of a Project.
func (c *ProjectClient) QueryCollections(_m *Project) *CollectionQuery {
	query := (&CollectionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(collection.Table, collection.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.CollectionsTable, project.CollectionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySessions queries the sessions edge of a Project.
func (c *ProjectClient) QuerySessions(_m *Project) *ExtractionSessionQuery {
	query := (&ExtractionSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(extractionsession.Table, extractionsession.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.SessionsTable, project.SessionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRules queries the rules edge of a Project.
func (c *ProjectClient) QueryRules(_m *Project) *ExtractionRuleQuery {
	query := (&ExtractionRuleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(extractionrule.Table, extractionrule.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.RulesTable, project.RulesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryKnowledge queries the knowledge edge of a Project.
func (c *ProjectClient) QueryKnowledge(_m *Project) *KnowledgeDocumentQuery {
	query := (&KnowledgeDocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(knowledgedocument.Table, knowledgedocument.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.KnowledgeTable, project.KnowledgeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// SchemaFieldClient is a client for the SchemaField schema.
type SchemaFieldClient struct {
	config
}

// NewSchemaFieldClient returns a client for the SchemaField from the given config.
func NewSchemaFieldClient(c config) *SchemaFieldClient {
	return &SchemaFieldClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `schemafield.Hooks(f(g(h())))`.
func (c *SchemaFieldClient) Use(hooks ...Hook) {
	c.hooks.SchemaField = append(c.hooks.SchemaField, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `schemafield.Intercept(f(g(h())))`.
func (c *SchemaFieldClient) Intercept(interceptors ...Interceptor) {
	c.inters.SchemaField = append(c.inters.SchemaField, interceptors...)
}

// Create returns a builder for creating a SchemaField entity.
func (c *SchemaFieldClient) Create() *SchemaFieldCreate {
	mutation := newSchemaFieldMutation(c.config, OpCreate)
	return &SchemaFieldCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SchemaField entities.
func (c *SchemaFieldClient) CreateBulk(builders ...*SchemaFieldCreate) *SchemaFieldCreateBulk {
	return &SchemaFieldCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SchemaFieldClient) MapCreateBulk(slice any, setFunc func(*SchemaFieldCreate, int)) *SchemaFieldCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SchemaFieldCreateBulk{err: fmt.Errorf("calling to SchemaFieldClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SchemaFieldCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SchemaFieldCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SchemaField.
func (c *SchemaFieldClient) Update() *SchemaFieldUpdate {
	mutation := newSchemaFieldMutation(c.config, OpUpdate)
	return &SchemaFieldUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SchemaFieldClient) UpdateOne(_m *SchemaField) *SchemaFieldUpdateOne {
	mutation := newSchemaFieldMutation(c.config, OpUpdateOne, withSchemaField(_m))
	return &SchemaFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SchemaFieldClient) UpdateOneID(id uuid.UUID) *SchemaFieldUpdateOne {
	mutation := newSchemaFieldMutation(c.config, OpUpdateOne, withSchemaFieldID(id))
	return &SchemaFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SchemaField.
func (c *SchemaFieldClient) Delete() *SchemaFieldDelete {
	mutation := newSchemaFieldMutation(c.config, OpDelete)
	return &SchemaFieldDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SchemaFieldClient) DeleteOne(_m *SchemaField) *SchemaFieldDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SchemaFieldClient) DeleteOneID(id uuid.UUID) *SchemaFieldDeleteOne {
	builder := c.Delete().Where(schemafield.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SchemaFieldDeleteOne{builder}
}

// Query returns a query builder for SchemaField.
func (c *SchemaFieldClient) Query() *SchemaFieldQuery {
	return &SchemaFieldQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSchemaField},
		inters: c.Interceptors(),
	}
}

// Get returns a SchemaField entity by its id.
func (c *SchemaFieldClient) Get(ctx context.Context, id uuid.UUID) (*SchemaField, error) {
	return c.Query().Where(schemafield.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SchemaFieldClient) GetX(ctx context.Context, id uuid.UUID) *SchemaField {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a SchemaField.
func (c *SchemaFieldClient) QueryProject(_m *SchemaField) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(schemafield.Table, schemafield.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, schemafield.ProjectTable, schemafield.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SchemaFieldClient) Hooks() []Hook {
	return c.hooks.SchemaField
}

// Interceptors returns the client interceptors.
func (c *SchemaFieldClient) Interceptors() []Interceptor {
	return c.inters.SchemaField
}

func (c *SchemaFieldClient) mutate(ctx context.Context, m *SchemaFieldMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SchemaFieldCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SchemaFieldUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SchemaFieldUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SchemaFieldDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SchemaField mutation op: %q", m.Op())
	}
}

// SessionDocumentClient is a client for the SessionDocument schema.
type SessionDocumentClient struct {
	config
}

// NewSessionDocumentClient returns a client for the SessionDocument from the given config.
func NewSessionDocumentClient(c config) *SessionDocumentClient {
	return &SessionDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessiondocument.Hooks(f(g(h())))`.
func (c *SessionDocumentClient) Use(hooks ...Hook) {
	c.hooks.SessionDocument = append(c.hooks.SessionDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessiondocument.Intercept(f(g(h())))`.
func (c *SessionDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionDocument = append(c.inters.SessionDocument, interceptors...)
}

// Create returns a builder for creating a SessionDocument entity.
func (c *SessionDocumentClient) Create() *SessionDocumentCreate {
	mutation := newSessionDocumentMutation(c.config, OpCreate)
	return &SessionDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionDocument entities.
func (c *SessionDocumentClient) CreateBulk(builders ...*SessionDocumentCreate) *SessionDocumentCreateBulk {
	return &SessionDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionDocumentClient) MapCreateBulk(slice any, setFunc func(*SessionDocumentCreate, int)) *SessionDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionDocumentCreateBulk{err: fmt.Errorf("calling to SessionDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionDocument.
func (c *SessionDocumentClient) Update() *SessionDocumentUpdate {
	mutation := newSessionDocumentMutation(c.config, OpUpdate)
	return &SessionDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionDocumentClient) UpdateOne(_m *SessionDocument) *SessionDocumentUpdateOne {
	mutation := newSessionDocumentMutation(c.config, OpUpdateOne, withSessionDocument(_m))
	return &SessionDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionDocumentClient) UpdateOneID(id uuid.UUID) *SessionDocumentUpdateOne {
	mutation := newSessionDocumentMutation(c.config, OpUpdateOne, withSessionDocumentID(id))
	return &SessionDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionDocument.
func (c *SessionDocumentClient) Delete() *SessionDocumentDelete {
	mutation := newSessionDocumentMutation(c.config, OpDelete)
	return &SessionDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionDocumentClient) DeleteOne(_m *SessionDocument) *SessionDocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionDocumentClient) DeleteOneID(id uuid.UUID) *SessionDocumentDeleteOne {
	builder := c.Delete().Where(sessiondocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDocumentDeleteOne{builder}
}

// Query returns a query builder for SessionDocument.
func (c *SessionDocumentClient) Query() *SessionDocumentQuery {
	return &SessionDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionDocument entity by its id.
func (c *SessionDocumentClient) Get(ctx context.Context, id uuid.UUID) (*SessionDocument, error) {
	return c.Query().Where(sessiondocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionDocumentClient) GetX(ctx context.Context, id uuid.UUID) *SessionDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a SessionDocument.
func (c *SessionDocumentClient) QuerySession(_m *SessionDocument) *ExtractionSessionQuery {
	query := (&ExtractionSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sessiondocument.Table, sessiondocument.FieldID, id),
			sqlgraph.To(extractionsession.Table, extractionsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, sessiondocument.SessionTable, sessiondocument.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionDocumentClient) Hooks() []Hook {
	return c.hooks.SessionDocument
}

// Interceptors returns the client interceptors.
func (c *SessionDocumentClient) Interceptors() []Interceptor {
	return c.inters.SessionDocument
}

func (c *SessionDocumentClient) mutate(ctx context.Context, m *SessionDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionDocument mutation op: %q", m.Op())
	}
}

// ValidationRecordClient is a client for the ValidationRecord schema.
type ValidationRecordClient struct {
	config
}

// NewValidationRecordClient returns a client for the ValidationRecord from the given config.
func NewValidationRecordClient(c config) *ValidationRecordClient {
	return &ValidationRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `validationrecord.Hooks(f(g(h())))`.
func (c *ValidationRecordClient) Use(hooks ...Hook) {
	c.hooks.ValidationRecord = append(c.hooks.ValidationRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `validationrecord.Intercept(f(g(h())))`.
func (c *ValidationRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ValidationRecord = append(c.inters.ValidationRecord, interceptors...)
}

// Create returns a builder for creating a ValidationRecord entity.
func (c *ValidationRecordClient) Create() *ValidationRecordCreate {
	mutation := newValidationRecordMutation(c.config, OpCreate)
	return &ValidationRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ValidationRecord entities.
func (c *ValidationRecordClient) CreateBulk(builders ...*ValidationRecordCreate) *ValidationRecordCreateBulk {
	return &ValidationRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ValidationRecordClient) MapCreateBulk(slice any, setFunc func(*ValidationRecordCreate, int)) *ValidationRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ValidationRecordCreateBulk{err: fmt.Errorf("calling to ValidationRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ValidationRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ValidationRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ValidationRecord.
func (c *ValidationRecordClient) Update() *ValidationRecordUpdate {
	mutation := newValidationRecordMutation(c.config, OpUpdate)
	return &ValidationRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ValidationRecordClient) UpdateOne(_m *ValidationRecord) *ValidationRecordUpdateOne {
	mutation := newValidationRecordMutation(c.config, OpUpdateOne, withValidationRecord(_m))
	return &ValidationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ValidationRecordClient) UpdateOneID(id uuid.UUID) *ValidationRecordUpdateOne {
	mutation := newValidationRecordMutation(c.config, OpUpdateOne, withValidationRecordID(id))
	return &ValidationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ValidationRecord.
func (c *ValidationRecordClient) Delete() *ValidationRecordDelete {
	mutation := newValidationRecordMutation(c.config, OpDelete)
	return &ValidationRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ValidationRecordClient) DeleteOne(_m *ValidationRecord) *ValidationRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ValidationRecordClient) DeleteOneID(id uuid.UUID) *ValidationRecordDeleteOne {
	builder := c.Delete().Where(validationrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ValidationRecordDeleteOne{builder}
}

// Query returns a query builder for ValidationRecord.
func (c *ValidationRecordClient) Query() *ValidationRecordQuery {
	return &ValidationRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeValidationRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ValidationRecord entity by its id.
func (c *ValidationRecordClient) Get(ctx context.Context, id uuid.UUID) (*ValidationRecord, error) {
	return c.Query().Where(validationrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ValidationRecordClient) GetX(ctx context.Context, id uuid.UUID) *ValidationRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a ValidationRecord.
func (c *ValidationRecordClient) QuerySession(_m *ValidationRecord) *ExtractionSessionQuery {
	query := (&ExtractionSessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(validationrecord.Table, validationrecord.FieldID, id),
			sqlgraph.To(extractionsession.Table, extractionsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, validationrecord.SessionTable, validationrecord.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ValidationRecordClient) Hooks() []Hook {
	return c.hooks.ValidationRecord
}

// Interceptors returns the client interceptors.
func (c *ValidationRecordClient) Interceptors() []Interceptor {
	return c.inters.ValidationRecord
}

func (c *ValidationRecordClient) mutate(ctx context.Context, m *ValidationRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ValidationRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ValidationRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ValidationRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ValidationRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ValidationRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Collection, CollectionProperty, ExtractionRule, ExtractionSession,
		KnowledgeDocument, Project, SchemaField, SessionDocument,
		ValidationRecord []ent.Hook
	}
	inters struct {
		Collection, CollectionProperty, ExtractionRule, ExtractionSession,
		KnowledgeDocument, Project, SchemaField, SessionDocument,
		ValidationRecord []ent.Interceptor
	}
)
