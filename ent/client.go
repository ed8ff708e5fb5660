// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/bizmandi/storefront/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/bizmandi/storefront/ent/registrationevent"
	"github.com/bizmandi/storefront/ent/sellerprofile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// RegistrationEvent is the client for interacting with the RegistrationEvent builders.
	RegistrationEvent *RegistrationEventClient
	// SellerProfile is the client for interacting with the SellerProfile builders.
	SellerProfile *SellerProfileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.RegistrationEvent = NewRegistrationEventClient(c.config)
	c.SellerProfile = NewSellerProfileClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		RegistrationEvent: NewRegistrationEventClient(cfg),
		SellerProfile:     NewSellerProfileClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		RegistrationEvent: NewRegistrationEventClient(cfg),
		SellerProfile:     NewSellerProfileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		RegistrationEvent.
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
	c.RegistrationEvent.Use(hooks...)
	c.SellerProfile.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.RegistrationEvent.Intercept(interceptors...)
	c.SellerProfile.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *RegistrationEventMutation:
		return c.RegistrationEvent.mutate(ctx, m)
	case *SellerProfileMutation:
		return c.SellerProfile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// RegistrationEventClient is a client for the RegistrationEvent schema.
type RegistrationEventClient struct {
	config
}

// NewRegistrationEventClient returns a client for the RegistrationEvent from the given config.
func NewRegistrationEventClient(c config) *RegistrationEventClient {
	return &RegistrationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `registrationevent.Hooks(f(g(h())))`.
func (c *RegistrationEventClient) Use(hooks ...Hook) {
	c.hooks.RegistrationEvent = append(c.hooks.RegistrationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `registrationevent.Intercept(f(g(h())))`.
func (c *RegistrationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RegistrationEvent = append(c.inters.RegistrationEvent, interceptors...)
}

// Create returns a builder for creating a RegistrationEvent entity.
func (c *RegistrationEventClient) Create() *RegistrationEventCreate {
	mutation := newRegistrationEventMutation(c.config, OpCreate)
	return &RegistrationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RegistrationEvent entities.
func (c *RegistrationEventClient) CreateBulk(builders ...*RegistrationEventCreate) *RegistrationEventCreateBulk {
	return &RegistrationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RegistrationEventClient) MapCreateBulk(slice any, setFunc func(*RegistrationEventCreate, int)) *RegistrationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RegistrationEventCreateBulk{err: fmt.Errorf("calling to RegistrationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RegistrationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RegistrationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RegistrationEvent.
func (c *RegistrationEventClient) Update() *RegistrationEventUpdate {
	mutation := newRegistrationEventMutation(c.config, OpUpdate)
	return &RegistrationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RegistrationEventClient) UpdateOne(_m *RegistrationEvent) *RegistrationEventUpdateOne {
	mutation := newRegistrationEventMutation(c.config, OpUpdateOne, withRegistrationEvent(_m))
	return &RegistrationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RegistrationEventClient) UpdateOneID(id int) *RegistrationEventUpdateOne {
	mutation := newRegistrationEventMutation(c.config, OpUpdateOne, withRegistrationEventID(id))
	return &RegistrationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RegistrationEvent.
func (c *RegistrationEventClient) Delete() *RegistrationEventDelete {
	mutation := newRegistrationEventMutation(c.config, OpDelete)
	return &RegistrationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RegistrationEventClient) DeleteOne(_m *RegistrationEvent) *RegistrationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RegistrationEventClient) DeleteOneID(id int) *RegistrationEventDeleteOne {
	builder := c.Delete().Where(registrationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RegistrationEventDeleteOne{builder}
}

// Query returns a query builder for RegistrationEvent.
func (c *RegistrationEventClient) Query() *RegistrationEventQuery {
	return &RegistrationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRegistrationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RegistrationEvent entity by its id.
func (c *RegistrationEventClient) Get(ctx context.Context, id int) (*RegistrationEvent, error) {
	return c.Query().Where(registrationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RegistrationEventClient) GetX(ctx context.Context, id int) *RegistrationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RegistrationEventClient) Hooks() []Hook {
	return c.hooks.RegistrationEvent
}

// Interceptors returns the client interceptors.
func (c *RegistrationEventClient) Interceptors() []Interceptor {
	return c.inters.RegistrationEvent
}

func (c *RegistrationEventClient) mutate(ctx context.Context, m *RegistrationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RegistrationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RegistrationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RegistrationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RegistrationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RegistrationEvent mutation op: %q", m.Op())
	}
}

// SellerProfileClient is a client for the SellerProfile schema.
type SellerProfileClient struct {
	config
}

// NewSellerProfileClient returns a client for the SellerProfile from the given config.
func NewSellerProfileClient(c config) *SellerProfileClient {
	return &SellerProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sellerprofile.Hooks(f(g(h())))`.
func (c *SellerProfileClient) Use(hooks ...Hook) {
	c.hooks.SellerProfile = append(c.hooks.SellerProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sellerprofile.Intercept(f(g(h())))`.
func (c *SellerProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.SellerProfile = append(c.inters.SellerProfile, interceptors...)
}

// Create returns a builder for creating a SellerProfile entity.
func (c *SellerProfileClient) Create() *SellerProfileCreate {
	mutation := newSellerProfileMutation(c.config, OpCreate)
	return &SellerProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SellerProfile entities.
func (c *SellerProfileClient) CreateBulk(builders ...*SellerProfileCreate) *SellerProfileCreateBulk {
	return &SellerProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SellerProfileClient) MapCreateBulk(slice any, setFunc func(*SellerProfileCreate, int)) *SellerProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SellerProfileCreateBulk{err: fmt.Errorf("calling to SellerProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SellerProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SellerProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SellerProfile.
func (c *SellerProfileClient) Update() *SellerProfileUpdate {
	mutation := newSellerProfileMutation(c.config, OpUpdate)
	return &SellerProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SellerProfileClient) UpdateOne(_m *SellerProfile) *SellerProfileUpdateOne {
	mutation := newSellerProfileMutation(c.config, OpUpdateOne, withSellerProfile(_m))
	return &SellerProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SellerProfileClient) UpdateOneID(id int) *SellerProfileUpdateOne {
	mutation := newSellerProfileMutation(c.config, OpUpdateOne, withSellerProfileID(id))
	return &SellerProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SellerProfile.
func (c *SellerProfileClient) Delete() *SellerProfileDelete {
	mutation := newSellerProfileMutation(c.config, OpDelete)
	return &SellerProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SellerProfileClient) DeleteOne(_m *SellerProfile) *SellerProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SellerProfileClient) DeleteOneID(id int) *SellerProfileDeleteOne {
	builder := c.Delete().Where(sellerprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SellerProfileDeleteOne{builder}
}

// Query returns a query builder for SellerProfile.
func (c *SellerProfileClient) Query() *SellerProfileQuery {
	return &SellerProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSellerProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a SellerProfile entity by its id.
func (c *SellerProfileClient) Get(ctx context.Context, id int) (*SellerProfile, error) {
	return c.Query().Where(sellerprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SellerProfileClient) GetX(ctx context.Context, id int) *SellerProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SellerProfileClient) Hooks() []Hook {
	return c.hooks.SellerProfile
}

// Interceptors returns the client interceptors.
func (c *SellerProfileClient) Interceptors() []Interceptor {
	return c.inters.SellerProfile
}

func (c *SellerProfileClient) mutate(ctx context.Context, m *SellerProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SellerProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SellerProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SellerProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SellerProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SellerProfile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		RegistrationEvent, SellerProfile []ent.Hook
	}
	inters struct {
		RegistrationEvent, SellerProfile []ent.Interceptor
	}
)
