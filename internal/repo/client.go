// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/medorahq/medora_backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/medorahq/medora_backend/internal/repo/appointment"
	"github.com/medorahq/medora_backend/internal/repo/assistant"
	"github.com/medorahq/medora_backend/internal/repo/auditlog"
	"github.com/medorahq/medora_backend/internal/repo/clinic"
	"github.com/medorahq/medora_backend/internal/repo/doctor"
	"github.com/medorahq/medora_backend/internal/repo/patient"
	"github.com/medorahq/medora_backend/internal/repo/reminder"
	"github.com/medorahq/medora_backend/internal/repo/reminderrule"
	"github.com/medorahq/medora_backend/internal/repo/user"
	"github.com/medorahq/medora_backend/internal/repo/webhookendpoint"
	"github.com/medorahq/medora_backend/internal/repo/weeklyslot"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Appointment is the client for interacting with the Appointment builders.
	Appointment *AppointmentClient
	// Assistant is the client for interacting with the Assistant builders.
	Assistant *AssistantClient
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// Clinic is the client for interacting with the Clinic builders.
	Clinic *ClinicClient
	// Doctor is the client for interacting with the Doctor builders.
	Doctor *DoctorClient
	// Patient is the client for interacting with the Patient builders.
	Patient *PatientClient
	// Reminder is the client for interacting with the Reminder builders.
	Reminder *ReminderClient
	// ReminderRule is the client for interacting with the ReminderRule builders.
	ReminderRule *ReminderRuleClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// WebhookEndpoint is the client for interacting with the WebhookEndpoint builders.
	WebhookEndpoint *WebhookEndpointClient
	// WeeklySlot is the client for interacting with the WeeklySlot builders.
	WeeklySlot *WeeklySlotClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Appointment = NewAppointmentClient(c.config)
	c.Assistant = NewAssistantClient(c.config)
	c.AuditLog = NewAuditLogClient(c.config)
	c.Clinic = NewClinicClient(c.config)
	c.Doctor = NewDoctorClient(c.config)
	c.Patient = NewPatientClient(c.config)
	c.Reminder = NewReminderClient(c.config)
	c.ReminderRule = NewReminderRuleClient(c.config)
	c.User = NewUserClient(c.config)
	c.WebhookEndpoint = NewWebhookEndpointClient(c.config)
	c.WeeklySlot = NewWeeklySlotClient(c.config)
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
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Appointment:     NewAppointmentClient(cfg),
		Assistant:       NewAssistantClient(cfg),
		AuditLog:        NewAuditLogClient(cfg),
		Clinic:          NewClinicClient(cfg),
		Doctor:          NewDoctorClient(cfg),
		Patient:         NewPatientClient(cfg),
		Reminder:        NewReminderClient(cfg),
		ReminderRule:    NewReminderRuleClient(cfg),
		User:            NewUserClient(cfg),
		WebhookEndpoint: NewWebhookEndpointClient(cfg),
		WeeklySlot:      NewWeeklySlotClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		Appointment:     NewAppointmentClient(cfg),
		Assistant:       NewAssistantClient(cfg),
		AuditLog:        NewAuditLogClient(cfg),
		Clinic:          NewClinicClient(cfg),
		Doctor:          NewDoctorClient(cfg),
		Patient:         NewPatientClient(cfg),
		Reminder:        NewReminderClient(cfg),
		ReminderRule:    NewReminderRuleClient(cfg),
		User:            NewUserClient(cfg),
		WebhookEndpoint: NewWebhookEndpointClient(cfg),
		WeeklySlot:      NewWeeklySlotClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Appointment.
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
		c.Appointment, c.Assistant, c.AuditLog, c.Clinic, c.Doctor, c.Patient,
		c.Reminder, c.ReminderRule, c.User, c.WebhookEndpoint, c.WeeklySlot,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Appointment, c.Assistant, c.AuditLog, c.Clinic, c.Doctor, c.Patient,
		c.Reminder, c.ReminderRule, c.User, c.WebhookEndpoint, c.WeeklySlot,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AppointmentMutation:
		return c.Appointment.mutate(ctx, m)
	case *AssistantMutation:
		return c.Assistant.mutate(ctx, m)
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *ClinicMutation:
		return c.Clinic.mutate(ctx, m)
	case *DoctorMutation:
		return c.Doctor.mutate(ctx, m)
	case *PatientMutation:
		return c.Patient.mutate(ctx, m)
	case *ReminderMutation:
		return c.Reminder.mutate(ctx, m)
	case *ReminderRuleMutation:
		return c.ReminderRule.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *WebhookEndpointMutation:
		return c.WebhookEndpoint.mutate(ctx, m)
	case *WeeklySlotMutation:
		return c.WeeklySlot.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// AppointmentClient is a client for the Appointment schema.
type AppointmentClient struct {
	config
}

// NewAppointmentClient returns a client for the Appointment from the given config.
func NewAppointmentClient(c config) *AppointmentClient {
	return &AppointmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `appointment.Hooks(f(g(h())))`.
func (c *AppointmentClient) Use(hooks ...Hook) {
	c.hooks.Appointment = append(c.hooks.Appointment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `appointment.Intercept(f(g(h())))`.
func (c *AppointmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Appointment = append(c.inters.Appointment, interceptors...)
}

// Create returns a builder for creating a Appointment entity.
func (c *AppointmentClient) Create() *AppointmentCreate {
	mutation := newAppointmentMutation(c.config, OpCreate)
	return &AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Appointment entities.
func (c *AppointmentClient) CreateBulk(builders ...*AppointmentCreate) *AppointmentCreateBulk {
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AppointmentClient) MapCreateBulk(slice any, setFunc func(*AppointmentCreate, int)) *AppointmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AppointmentCreateBulk{err: fmt.Errorf("calling to AppointmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AppointmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AppointmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Appointment.
func (c *AppointmentClient) Update() *AppointmentUpdate {
	mutation := newAppointmentMutation(c.config, OpUpdate)
	return &AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AppointmentClient) UpdateOne(_m *Appointment) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointment(_m))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AppointmentClient) UpdateOneID(id uuid.UUID) *AppointmentUpdateOne {
	mutation := newAppointmentMutation(c.config, OpUpdateOne, withAppointmentID(id))
	return &AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Appointment.
func (c *AppointmentClient) Delete() *AppointmentDelete {
	mutation := newAppointmentMutation(c.config, OpDelete)
	return &AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AppointmentClient) DeleteOne(_m *Appointment) *AppointmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AppointmentClient) DeleteOneID(id uuid.UUID) *AppointmentDeleteOne {
	builder := c.Delete().Where(appointment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AppointmentDeleteOne{builder}
}

// Query returns a query builder for Appointment.
func (c *AppointmentClient) Query() *AppointmentQuery {
	return &AppointmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAppointment},
		inters: c.Interceptors(),
	}
}

// Get returns a Appointment entity by its id.
func (c *AppointmentClient) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return c.Query().Where(appointment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AppointmentClient) GetX(ctx context.Context, id uuid.UUID) *Appointment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AppointmentClient) Hooks() []Hook {
	return c.hooks.Appointment
}

// Interceptors returns the client interceptors.
func (c *AppointmentClient) Interceptors() []Interceptor {
	return c.inters.Appointment
}

func (c *AppointmentClient) mutate(ctx context.Context, m *AppointmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AppointmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AppointmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AppointmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AppointmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Appointment mutation op: %q", m.Op())
	}
}

// AssistantClient is a client for the Assistant schema.
type AssistantClient struct {
	config
}

// NewAssistantClient returns a client for the Assistant from the given config.
func NewAssistantClient(c config) *AssistantClient {
	return &AssistantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `assistant.Hooks(f(g(h())))`.
func (c *AssistantClient) Use(hooks ...Hook) {
	c.hooks.Assistant = append(c.hooks.Assistant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `assistant.Intercept(f(g(h())))`.
func (c *AssistantClient) Intercept(interceptors ...Interceptor) {
	c.inters.Assistant = append(c.inters.Assistant, interceptors...)
}

// Create returns a builder for creating a Assistant entity.
func (c *AssistantClient) Create() *AssistantCreate {
	mutation := newAssistantMutation(c.config, OpCreate)
	return &AssistantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Assistant entities.
func (c *AssistantClient) CreateBulk(builders ...*AssistantCreate) *AssistantCreateBulk {
	return &AssistantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AssistantClient) MapCreateBulk(slice any, setFunc func(*AssistantCreate, int)) *AssistantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AssistantCreateBulk{err: fmt.Errorf("calling to AssistantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AssistantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AssistantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Assistant.
func (c *AssistantClient) Update() *AssistantUpdate {
	mutation := newAssistantMutation(c.config, OpUpdate)
	return &AssistantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AssistantClient) UpdateOne(_m *Assistant) *AssistantUpdateOne {
	mutation := newAssistantMutation(c.config, OpUpdateOne, withAssistant(_m))
	return &AssistantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AssistantClient) UpdateOneID(id uuid.UUID) *AssistantUpdateOne {
	mutation := newAssistantMutation(c.config, OpUpdateOne, withAssistantID(id))
	return &AssistantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Assistant.
func (c *AssistantClient) Delete() *AssistantDelete {
	mutation := newAssistantMutation(c.config, OpDelete)
	return &AssistantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AssistantClient) DeleteOne(_m *Assistant) *AssistantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AssistantClient) DeleteOneID(id uuid.UUID) *AssistantDeleteOne {
	builder := c.Delete().Where(assistant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AssistantDeleteOne{builder}
}

// Query returns a query builder for Assistant.
func (c *AssistantClient) Query() *AssistantQuery {
	return &AssistantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAssistant},
		inters: c.Interceptors(),
	}
}

// Get returns a Assistant entity by its id.
func (c *AssistantClient) Get(ctx context.Context, id uuid.UUID) (*Assistant, error) {
	return c.Query().Where(assistant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AssistantClient) GetX(ctx context.Context, id uuid.UUID) *Assistant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AssistantClient) Hooks() []Hook {
	return c.hooks.Assistant
}

// Interceptors returns the client interceptors.
func (c *AssistantClient) Interceptors() []Interceptor {
	return c.inters.Assistant
}

func (c *AssistantClient) mutate(ctx context.Context, m *AssistantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AssistantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AssistantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AssistantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AssistantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Assistant mutation op: %q", m.Op())
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(_m *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(_m))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id uuid.UUID) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(_m *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id uuid.UUID) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id uuid.UUID) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id uuid.UUID) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown AuditLog mutation op: %q", m.Op())
	}
}

// ClinicClient is a client for the Clinic schema.
type ClinicClient struct {
	config
}

// NewClinicClient returns a client for the Clinic from the given config.
func NewClinicClient(c config) *ClinicClient {
	return &ClinicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `clinic.Hooks(f(g(h())))`.
func (c *ClinicClient) Use(hooks ...Hook) {
	c.hooks.Clinic = append(c.hooks.Clinic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `clinic.Intercept(f(g(h())))`.
func (c *ClinicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Clinic = append(c.inters.Clinic, interceptors...)
}

// Create returns a builder for creating a Clinic entity.
func (c *ClinicClient) Create() *ClinicCreate {
	mutation := newClinicMutation(c.config, OpCreate)
	return &ClinicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Clinic entities.
func (c *ClinicClient) CreateBulk(builders ...*ClinicCreate) *ClinicCreateBulk {
	return &ClinicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClinicClient) MapCreateBulk(slice any, setFunc func(*ClinicCreate, int)) *ClinicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClinicCreateBulk{err: fmt.Errorf("calling to ClinicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClinicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClinicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Clinic.
func (c *ClinicClient) Update() *ClinicUpdate {
	mutation := newClinicMutation(c.config, OpUpdate)
	return &ClinicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClinicClient) UpdateOne(_m *Clinic) *ClinicUpdateOne {
	mutation := newClinicMutation(c.config, OpUpdateOne, withClinic(_m))
	return &ClinicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClinicClient) UpdateOneID(id uuid.UUID) *ClinicUpdateOne {
	mutation := newClinicMutation(c.config, OpUpdateOne, withClinicID(id))
	return &ClinicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Clinic.
func (c *ClinicClient) Delete() *ClinicDelete {
	mutation := newClinicMutation(c.config, OpDelete)
	return &ClinicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClinicClient) DeleteOne(_m *Clinic) *ClinicDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClinicClient) DeleteOneID(id uuid.UUID) *ClinicDeleteOne {
	builder := c.Delete().Where(clinic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClinicDeleteOne{builder}
}

// Query returns a query builder for Clinic.
func (c *ClinicClient) Query() *ClinicQuery {
	return &ClinicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClinic},
		inters: c.Interceptors(),
	}
}

// Get returns a Clinic entity by its id.
func (c *ClinicClient) Get(ctx context.Context, id uuid.UUID) (*Clinic, error) {
	return c.Query().Where(clinic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClinicClient) GetX(ctx context.Context, id uuid.UUID) *Clinic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ClinicClient) Hooks() []Hook {
	return c.hooks.Clinic
}

// Interceptors returns the client interceptors.
func (c *ClinicClient) Interceptors() []Interceptor {
	return c.inters.Clinic
}

func (c *ClinicClient) mutate(ctx context.Context, m *ClinicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClinicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClinicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClinicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClinicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Clinic mutation op: %q", m.Op())
	}
}

// DoctorClient is a client for the Doctor schema.
type DoctorClient struct {
	config
}

// NewDoctorClient returns a client for the Doctor from the given config.
func NewDoctorClient(c config) *DoctorClient {
	return &DoctorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `doctor.Hooks(f(g(h())))`.
func (c *DoctorClient) Use(hooks ...Hook) {
	c.hooks.Doctor = append(c.hooks.Doctor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `doctor.Intercept(f(g(h())))`.
func (c *DoctorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Doctor = append(c.inters.Doctor, interceptors...)
}

// Create returns a builder for creating a Doctor entity.
func (c *DoctorClient) Create() *DoctorCreate {
	mutation := newDoctorMutation(c.config, OpCreate)
	return &DoctorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Doctor entities.
func (c *DoctorClient) CreateBulk(builders ...*DoctorCreate) *DoctorCreateBulk {
	return &DoctorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DoctorClient) MapCreateBulk(slice any, setFunc func(*DoctorCreate, int)) *DoctorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DoctorCreateBulk{err: fmt.Errorf("calling to DoctorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DoctorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DoctorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Doctor.
func (c *DoctorClient) Update() *DoctorUpdate {
	mutation := newDoctorMutation(c.config, OpUpdate)
	return &DoctorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DoctorClient) UpdateOne(_m *Doctor) *DoctorUpdateOne {
	mutation := newDoctorMutation(c.config, OpUpdateOne, withDoctor(_m))
	return &DoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DoctorClient) UpdateOneID(id uuid.UUID) *DoctorUpdateOne {
	mutation := newDoctorMutation(c.config, OpUpdateOne, withDoctorID(id))
	return &DoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Doctor.
func (c *DoctorClient) Delete() *DoctorDelete {
	mutation := newDoctorMutation(c.config, OpDelete)
	return &DoctorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DoctorClient) DeleteOne(_m *Doctor) *DoctorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DoctorClient) DeleteOneID(id uuid.UUID) *DoctorDeleteOne {
	builder := c.Delete().Where(doctor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DoctorDeleteOne{builder}
}

// Query returns a query builder for Doctor.
func (c *DoctorClient) Query() *DoctorQuery {
	return &DoctorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDoctor},
		inters: c.Interceptors(),
	}
}

// Get returns a Doctor entity by its id.
func (c *DoctorClient) Get(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return c.Query().Where(doctor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DoctorClient) GetX(ctx context.Context, id uuid.UUID) *Doctor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DoctorClient) Hooks() []Hook {
	return c.hooks.Doctor
}

// Interceptors returns the client interceptors.
func (c *DoctorClient) Interceptors() []Interceptor {
	return c.inters.Doctor
}

func (c *DoctorClient) mutate(ctx context.Context, m *DoctorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DoctorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DoctorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DoctorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Doctor mutation op: %q", m.Op())
	}
}

// PatientClient is a client for the Patient schema.
type PatientClient struct {
	config
}

// NewPatientClient returns a client for the Patient from the given config.
func NewPatientClient(c config) *PatientClient {
	return &PatientClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `patient.Hooks(f(g(h())))`.
func (c *PatientClient) Use(hooks ...Hook) {
	c.hooks.Patient = append(c.hooks.Patient, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `patient.Intercept(f(g(h())))`.
func (c *PatientClient) Intercept(interceptors ...Interceptor) {
	c.inters.Patient = append(c.inters.Patient, interceptors...)
}

// Create returns a builder for creating a Patient entity.
func (c *PatientClient) Create() *PatientCreate {
	mutation := newPatientMutation(c.config, OpCreate)
	return &PatientCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Patient entities.
func (c *PatientClient) CreateBulk(builders ...*PatientCreate) *PatientCreateBulk {
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PatientClient) MapCreateBulk(slice any, setFunc func(*PatientCreate, int)) *PatientCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PatientCreateBulk{err: fmt.Errorf("calling to PatientClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PatientCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PatientCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Patient.
func (c *PatientClient) Update() *PatientUpdate {
	mutation := newPatientMutation(c.config, OpUpdate)
	return &PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PatientClient) UpdateOne(_m *Patient) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatient(_m))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PatientClient) UpdateOneID(id uuid.UUID) *PatientUpdateOne {
	mutation := newPatientMutation(c.config, OpUpdateOne, withPatientID(id))
	return &PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Patient.
func (c *PatientClient) Delete() *PatientDelete {
	mutation := newPatientMutation(c.config, OpDelete)
	return &PatientDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PatientClient) DeleteOne(_m *Patient) *PatientDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PatientClient) DeleteOneID(id uuid.UUID) *PatientDeleteOne {
	builder := c.Delete().Where(patient.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PatientDeleteOne{builder}
}

// Query returns a query builder for Patient.
func (c *PatientClient) Query() *PatientQuery {
	return &PatientQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePatient},
		inters: c.Interceptors(),
	}
}

// Get returns a Patient entity by its id.
func (c *PatientClient) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return c.Query().Where(patient.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PatientClient) GetX(ctx context.Context, id uuid.UUID) *Patient {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PatientClient) Hooks() []Hook {
	return c.hooks.Patient
}

// Interceptors returns the client interceptors.
func (c *PatientClient) Interceptors() []Interceptor {
	return c.inters.Patient
}

func (c *PatientClient) mutate(ctx context.Context, m *PatientMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PatientCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PatientUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PatientUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PatientDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Patient mutation op: %q", m.Op())
	}
}

// ReminderClient is a client for the Reminder schema.
type ReminderClient struct {
	config
}

// NewReminderClient returns a client for the Reminder from the given config.
func NewReminderClient(c config) *ReminderClient {
	return &ReminderClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reminder.Hooks(f(g(h())))`.
func (c *ReminderClient) Use(hooks ...Hook) {
	c.hooks.Reminder = append(c.hooks.Reminder, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reminder.Intercept(f(g(h())))`.
func (c *ReminderClient) Intercept(interceptors ...Interceptor) {
	c.inters.Reminder = append(c.inters.Reminder, interceptors...)
}

// Create returns a builder for creating a Reminder entity.
func (c *ReminderClient) Create() *ReminderCreate {
	mutation := newReminderMutation(c.config, OpCreate)
	return &ReminderCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Reminder entities.
func (c *ReminderClient) CreateBulk(builders ...*ReminderCreate) *ReminderCreateBulk {
	return &ReminderCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReminderClient) MapCreateBulk(slice any, setFunc func(*ReminderCreate, int)) *ReminderCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReminderCreateBulk{err: fmt.Errorf("calling to ReminderClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReminderCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReminderCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Reminder.
func (c *ReminderClient) Update() *ReminderUpdate {
	mutation := newReminderMutation(c.config, OpUpdate)
	return &ReminderUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReminderClient) UpdateOne(_m *Reminder) *ReminderUpdateOne {
	mutation := newReminderMutation(c.config, OpUpdateOne, withReminder(_m))
	return &ReminderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReminderClient) UpdateOneID(id uuid.UUID) *ReminderUpdateOne {
	mutation := newReminderMutation(c.config, OpUpdateOne, withReminderID(id))
	return &ReminderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Reminder.
func (c *ReminderClient) Delete() *ReminderDelete {
	mutation := newReminderMutation(c.config, OpDelete)
	return &ReminderDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReminderClient) DeleteOne(_m *Reminder) *ReminderDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReminderClient) DeleteOneID(id uuid.UUID) *ReminderDeleteOne {
	builder := c.Delete().Where(reminder.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReminderDeleteOne{builder}
}

// Query returns a query builder for Reminder.
func (c *ReminderClient) Query() *ReminderQuery {
	return &ReminderQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReminder},
		inters: c.Interceptors(),
	}
}

// Get returns a Reminder entity by its id.
func (c *ReminderClient) Get(ctx context.Context, id uuid.UUID) (*Reminder, error) {
	return c.Query().Where(reminder.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReminderClient) GetX(ctx context.Context, id uuid.UUID) *Reminder {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReminderClient) Hooks() []Hook {
	return c.hooks.Reminder
}

// Interceptors returns the client interceptors.
func (c *ReminderClient) Interceptors() []Interceptor {
	return c.inters.Reminder
}

func (c *ReminderClient) mutate(ctx context.Context, m *ReminderMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReminderCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReminderUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReminderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReminderDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Reminder mutation op: %q", m.Op())
	}
}

// ReminderRuleClient is a client for the ReminderRule schema.
type ReminderRuleClient struct {
	config
}

// NewReminderRuleClient returns a client for the ReminderRule from the given config.
func NewReminderRuleClient(c config) *ReminderRuleClient {
	return &ReminderRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reminderrule.Hooks(f(g(h())))`.
func (c *ReminderRuleClient) Use(hooks ...Hook) {
	c.hooks.ReminderRule = append(c.hooks.ReminderRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reminderrule.Intercept(f(g(h())))`.
func (c *ReminderRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReminderRule = append(c.inters.ReminderRule, interceptors...)
}

// Create returns a builder for creating a ReminderRule entity.
func (c *ReminderRuleClient) Create() *ReminderRuleCreate {
	mutation := newReminderRuleMutation(c.config, OpCreate)
	return &ReminderRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReminderRule entities.
func (c *ReminderRuleClient) CreateBulk(builders ...*ReminderRuleCreate) *ReminderRuleCreateBulk {
	return &ReminderRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReminderRuleClient) MapCreateBulk(slice any, setFunc func(*ReminderRuleCreate, int)) *ReminderRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReminderRuleCreateBulk{err: fmt.Errorf("calling to ReminderRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReminderRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReminderRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReminderRule.
func (c *ReminderRuleClient) Update() *ReminderRuleUpdate {
	mutation := newReminderRuleMutation(c.config, OpUpdate)
	return &ReminderRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReminderRuleClient) UpdateOne(_m *ReminderRule) *ReminderRuleUpdateOne {
	mutation := newReminderRuleMutation(c.config, OpUpdateOne, withReminderRule(_m))
	return &ReminderRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReminderRuleClient) UpdateOneID(id uuid.UUID) *ReminderRuleUpdateOne {
	mutation := newReminderRuleMutation(c.config, OpUpdateOne, withReminderRuleID(id))
	return &ReminderRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReminderRule.
func (c *ReminderRuleClient) Delete() *ReminderRuleDelete {
	mutation := newReminderRuleMutation(c.config, OpDelete)
	return &ReminderRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReminderRuleClient) DeleteOne(_m *ReminderRule) *ReminderRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReminderRuleClient) DeleteOneID(id uuid.UUID) *ReminderRuleDeleteOne {
	builder := c.Delete().Where(reminderrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReminderRuleDeleteOne{builder}
}

// Query returns a query builder for ReminderRule.
func (c *ReminderRuleClient) Query() *ReminderRuleQuery {
	return &ReminderRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReminderRule},
		inters: c.Interceptors(),
	}
}

// Get returns a ReminderRule entity by its id.
func (c *ReminderRuleClient) Get(ctx context.Context, id uuid.UUID) (*ReminderRule, error) {
	return c.Query().Where(reminderrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReminderRuleClient) GetX(ctx context.Context, id uuid.UUID) *ReminderRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReminderRuleClient) Hooks() []Hook {
	return c.hooks.ReminderRule
}

// Interceptors returns the client interceptors.
func (c *ReminderRuleClient) Interceptors() []Interceptor {
	return c.inters.ReminderRule
}

func (c *ReminderRuleClient) mutate(ctx context.Context, m *ReminderRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReminderRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReminderRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReminderRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReminderRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ReminderRule mutation op: %q", m.Op())
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
		return nil, fmt.Errorf("repo: unknown User mutation op: %q", m.Op())
	}
}

// WebhookEndpointClient is a client for the WebhookEndpoint schema.
type WebhookEndpointClient struct {
	config
}

// NewWebhookEndpointClient returns a client for the WebhookEndpoint from the given config.
func NewWebhookEndpointClient(c config) *WebhookEndpointClient {
	return &WebhookEndpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `webhookendpoint.Hooks(f(g(h())))`.
func (c *WebhookEndpointClient) Use(hooks ...Hook) {
	c.hooks.WebhookEndpoint = append(c.hooks.WebhookEndpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `webhookendpoint.Intercept(f(g(h())))`.
func (c *WebhookEndpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.WebhookEndpoint = append(c.inters.WebhookEndpoint, interceptors...)
}

// Create returns a builder for creating a WebhookEndpoint entity.
func (c *WebhookEndpointClient) Create() *WebhookEndpointCreate {
	mutation := newWebhookEndpointMutation(c.config, OpCreate)
	return &WebhookEndpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WebhookEndpoint entities.
func (c *WebhookEndpointClient) CreateBulk(builders ...*WebhookEndpointCreate) *WebhookEndpointCreateBulk {
	return &WebhookEndpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WebhookEndpointClient) MapCreateBulk(slice any, setFunc func(*WebhookEndpointCreate, int)) *WebhookEndpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WebhookEndpointCreateBulk{err: fmt.Errorf("calling to WebhookEndpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WebhookEndpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WebhookEndpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WebhookEndpoint.
func (c *WebhookEndpointClient) Update() *WebhookEndpointUpdate {
	mutation := newWebhookEndpointMutation(c.config, OpUpdate)
	return &WebhookEndpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WebhookEndpointClient) UpdateOne(_m *WebhookEndpoint) *WebhookEndpointUpdateOne {
	mutation := newWebhookEndpointMutation(c.config, OpUpdateOne, withWebhookEndpoint(_m))
	return &WebhookEndpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WebhookEndpointClient) UpdateOneID(id uuid.UUID) *WebhookEndpointUpdateOne {
	mutation := newWebhookEndpointMutation(c.config, OpUpdateOne, withWebhookEndpointID(id))
	return &WebhookEndpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WebhookEndpoint.
func (c *WebhookEndpointClient) Delete() *WebhookEndpointDelete {
	mutation := newWebhookEndpointMutation(c.config, OpDelete)
	return &WebhookEndpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WebhookEndpointClient) DeleteOne(_m *WebhookEndpoint) *WebhookEndpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WebhookEndpointClient) DeleteOneID(id uuid.UUID) *WebhookEndpointDeleteOne {
	builder := c.Delete().Where(webhookendpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WebhookEndpointDeleteOne{builder}
}

// Query returns a query builder for WebhookEndpoint.
func (c *WebhookEndpointClient) Query() *WebhookEndpointQuery {
	return &WebhookEndpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWebhookEndpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a WebhookEndpoint entity by its id.
func (c *WebhookEndpointClient) Get(ctx context.Context, id uuid.UUID) (*WebhookEndpoint, error) {
	return c.Query().Where(webhookendpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WebhookEndpointClient) GetX(ctx context.Context, id uuid.UUID) *WebhookEndpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WebhookEndpointClient) Hooks() []Hook {
	return c.hooks.WebhookEndpoint
}

// Interceptors returns the client interceptors.
func (c *WebhookEndpointClient) Interceptors() []Interceptor {
	return c.inters.WebhookEndpoint
}

func (c *WebhookEndpointClient) mutate(ctx context.Context, m *WebhookEndpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WebhookEndpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WebhookEndpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WebhookEndpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WebhookEndpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown WebhookEndpoint mutation op: %q", m.Op())
	}
}

// WeeklySlotClient is a client for the WeeklySlot schema.
type WeeklySlotClient struct {
	config
}

// NewWeeklySlotClient returns a client for the WeeklySlot from the given config.
func NewWeeklySlotClient(c config) *WeeklySlotClient {
	return &WeeklySlotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `weeklyslot.Hooks(f(g(h())))`.
func (c *WeeklySlotClient) Use(hooks ...Hook) {
	c.hooks.WeeklySlot = append(c.hooks.WeeklySlot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `weeklyslot.Intercept(f(g(h())))`.
func (c *WeeklySlotClient) Intercept(interceptors ...Interceptor) {
	c.inters.WeeklySlot = append(c.inters.WeeklySlot, interceptors...)
}

// Create returns a builder for creating a WeeklySlot entity.
func (c *WeeklySlotClient) Create() *WeeklySlotCreate {
	mutation := newWeeklySlotMutation(c.config, OpCreate)
	return &WeeklySlotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WeeklySlot entities.
func (c *WeeklySlotClient) CreateBulk(builders ...*WeeklySlotCreate) *WeeklySlotCreateBulk {
	return &WeeklySlotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WeeklySlotClient) MapCreateBulk(slice any, setFunc func(*WeeklySlotCreate, int)) *WeeklySlotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WeeklySlotCreateBulk{err: fmt.Errorf("calling to WeeklySlotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WeeklySlotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WeeklySlotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WeeklySlot.
func (c *WeeklySlotClient) Update() *WeeklySlotUpdate {
	mutation := newWeeklySlotMutation(c.config, OpUpdate)
	return &WeeklySlotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WeeklySlotClient) UpdateOne(_m *WeeklySlot) *WeeklySlotUpdateOne {
	mutation := newWeeklySlotMutation(c.config, OpUpdateOne, withWeeklySlot(_m))
	return &WeeklySlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WeeklySlotClient) UpdateOneID(id uuid.UUID) *WeeklySlotUpdateOne {
	mutation := newWeeklySlotMutation(c.config, OpUpdateOne, withWeeklySlotID(id))
	return &WeeklySlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WeeklySlot.
func (c *WeeklySlotClient) Delete() *WeeklySlotDelete {
	mutation := newWeeklySlotMutation(c.config, OpDelete)
	return &WeeklySlotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WeeklySlotClient) DeleteOne(_m *WeeklySlot) *WeeklySlotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WeeklySlotClient) DeleteOneID(id uuid.UUID) *WeeklySlotDeleteOne {
	builder := c.Delete().Where(weeklyslot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WeeklySlotDeleteOne{builder}
}

// Query returns a query builder for WeeklySlot.
func (c *WeeklySlotClient) Query() *WeeklySlotQuery {
	return &WeeklySlotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWeeklySlot},
		inters: c.Interceptors(),
	}
}

// Get returns a WeeklySlot entity by its id.
func (c *WeeklySlotClient) Get(ctx context.Context, id uuid.UUID) (*WeeklySlot, error) {
	return c.Query().Where(weeklyslot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WeeklySlotClient) GetX(ctx context.Context, id uuid.UUID) *WeeklySlot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WeeklySlotClient) Hooks() []Hook {
	return c.hooks.WeeklySlot
}

// Interceptors returns the client interceptors.
func (c *WeeklySlotClient) Interceptors() []Interceptor {
	return c.inters.WeeklySlot
}

func (c *WeeklySlotClient) mutate(ctx context.Context, m *WeeklySlotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WeeklySlotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WeeklySlotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WeeklySlotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WeeklySlotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown WeeklySlot mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Appointment, Assistant, AuditLog, Clinic, Doctor, Patient, Reminder,
		ReminderRule, User, WebhookEndpoint, WeeklySlot []ent.Hook
	}
	inters struct {
		Appointment, Assistant, AuditLog, Clinic, Doctor, Patient, Reminder,
		ReminderRule, User, WebhookEndpoint, WeeklySlot []ent.Interceptor
	}
)
