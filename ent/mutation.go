// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/bizmandi/storefront/ent/predicate"
	"github.com/bizmandi/storefront/ent/registrationevent"
	"github.com/bizmandi/storefront/ent/sellerprofile"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeRegistrationEvent = "RegistrationEvent"
	TypeSellerProfile     = "SellerProfile"
)

// RegistrationEventMutation represents an operation that mutates the RegistrationEvent nodes in the graph.
type RegistrationEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	mobile        *string
	event         *registrationevent.Event
	detail        *string
	ip_address    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RegistrationEvent, error)
	predicates    []predicate.RegistrationEvent
}

var _ ent.Mutation = (*RegistrationEventMutation)(nil)

// registrationeventOption allows management of the mutation configuration using functional options.
type registrationeventOption func(*RegistrationEventMutation)

// newRegistrationEventMutation creates new mutation for the RegistrationEvent entity.
func newRegistrationEventMutation(c config, op Op, opts ...registrationeventOption) *RegistrationEventMutation {
	m := &RegistrationEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRegistrationEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRegistrationEventID sets the ID field of the mutation.
func withRegistrationEventID(id int) registrationeventOption {
	return func(m *RegistrationEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RegistrationEvent
		)
		m.oldValue = func(ctx context.Context) (*RegistrationEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RegistrationEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRegistrationEvent sets the old RegistrationEvent of the mutation.
func withRegistrationEvent(node *RegistrationEvent) registrationeventOption {
	return func(m *RegistrationEventMutation) {
		m.oldValue = func(context.Context) (*RegistrationEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RegistrationEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RegistrationEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RegistrationEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RegistrationEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RegistrationEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMobile sets the "mobile" field.
func (m *RegistrationEventMutation) SetMobile(s string) {
	m.mobile = &s
}

// Mobile returns the value of the "mobile" field in the mutation.
func (m *RegistrationEventMutation) Mobile() (r string, exists bool) {
	v := m.mobile
	if v == nil {
		return
	}
	return *v, true
}

// OldMobile returns the old "mobile" field's value of the RegistrationEvent entity.
// If the RegistrationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegistrationEventMutation) OldMobile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMobile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMobile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMobile: %w", err)
	}
	return oldValue.Mobile, nil
}

// ResetMobile resets all changes to the "mobile" field.
func (m *RegistrationEventMutation) ResetMobile() {
	m.mobile = nil
}

// SetEvent sets the "event" field.
func (m *RegistrationEventMutation) SetEvent(r registrationevent.Event) {
	m.event = &r
}

// Event returns the value of the "event" field in the mutation.
func (m *RegistrationEventMutation) Event() (r registrationevent.Event, exists bool) {
	v := m.event
	if v == nil {
		return
	}
	return *v, true
}

// OldEvent returns the old "event" field's value of the RegistrationEvent entity.
// If the RegistrationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegistrationEventMutation) OldEvent(ctx context.Context) (v registrationevent.Event, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvent: %w", err)
	}
	return oldValue.Event, nil
}

// ResetEvent resets all changes to the "event" field.
func (m *RegistrationEventMutation) ResetEvent() {
	m.event = nil
}

// SetDetail sets the "detail" field.
func (m *RegistrationEventMutation) SetDetail(s string) {
	m.detail = &s
}

// Detail returns the value of the "detail" field in the mutation.
func (m *RegistrationEventMutation) Detail() (r string, exists bool) {
	v := m.detail
	if v == nil {
		return
	}
	return *v, true
}

// OldDetail returns the old "detail" field's value of the RegistrationEvent entity.
// If the RegistrationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegistrationEventMutation) OldDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetail: %w", err)
	}
	return oldValue.Detail, nil
}

// ClearDetail clears the value of the "detail" field.
func (m *RegistrationEventMutation) ClearDetail() {
	m.detail = nil
	m.clearedFields[registrationevent.FieldDetail] = struct{}{}
}

// DetailCleared returns if the "detail" field was cleared in this mutation.
func (m *RegistrationEventMutation) DetailCleared() bool {
	_, ok := m.clearedFields[registrationevent.FieldDetail]
	return ok
}

// ResetDetail resets all changes to the "detail" field.
func (m *RegistrationEventMutation) ResetDetail() {
	m.detail = nil
	delete(m.clearedFields, registrationevent.FieldDetail)
}

// SetIPAddress sets the "ip_address" field.
func (m *RegistrationEventMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *RegistrationEventMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the RegistrationEvent entity.
// If the RegistrationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegistrationEventMutation) OldIPAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *RegistrationEventMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[registrationevent.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *RegistrationEventMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[registrationevent.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *RegistrationEventMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, registrationevent.FieldIPAddress)
}

// SetCreatedAt sets the "created_at" field.
func (m *RegistrationEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RegistrationEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RegistrationEvent entity.
// If the RegistrationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RegistrationEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RegistrationEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the RegistrationEventMutation builder.
func (m *RegistrationEventMutation) Where(ps ...predicate.RegistrationEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RegistrationEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RegistrationEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RegistrationEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RegistrationEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RegistrationEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RegistrationEvent).
func (m *RegistrationEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RegistrationEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.mobile != nil {
		fields = append(fields, registrationevent.FieldMobile)
	}
	if m.event != nil {
		fields = append(fields, registrationevent.FieldEvent)
	}
	if m.detail != nil {
		fields = append(fields, registrationevent.FieldDetail)
	}
	if m.ip_address != nil {
		fields = append(fields, registrationevent.FieldIPAddress)
	}
	if m.created_at != nil {
		fields = append(fields, registrationevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RegistrationEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case registrationevent.FieldMobile:
		return m.Mobile()
	case registrationevent.FieldEvent:
		return m.Event()
	case registrationevent.FieldDetail:
		return m.Detail()
	case registrationevent.FieldIPAddress:
		return m.IPAddress()
	case registrationevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RegistrationEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case registrationevent.FieldMobile:
		return m.OldMobile(ctx)
	case registrationevent.FieldEvent:
		return m.OldEvent(ctx)
	case registrationevent.FieldDetail:
		return m.OldDetail(ctx)
	case registrationevent.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case registrationevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RegistrationEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RegistrationEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case registrationevent.FieldMobile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMobile(v)
		return nil
	case registrationevent.FieldEvent:
		v, ok := value.(registrationevent.Event)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvent(v)
		return nil
	case registrationevent.FieldDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetail(v)
		return nil
	case registrationevent.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case registrationevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RegistrationEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RegistrationEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RegistrationEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RegistrationEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RegistrationEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RegistrationEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(registrationevent.FieldDetail) {
		fields = append(fields, registrationevent.FieldDetail)
	}
	if m.FieldCleared(registrationevent.FieldIPAddress) {
		fields = append(fields, registrationevent.FieldIPAddress)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RegistrationEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RegistrationEventMutation) ClearField(name string) error {
	switch name {
	case registrationevent.FieldDetail:
		m.ClearDetail()
		return nil
	case registrationevent.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	}
	return fmt.Errorf("unknown RegistrationEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RegistrationEventMutation) ResetField(name string) error {
	switch name {
	case registrationevent.FieldMobile:
		m.ResetMobile()
		return nil
	case registrationevent.FieldEvent:
		m.ResetEvent()
		return nil
	case registrationevent.FieldDetail:
		m.ResetDetail()
		return nil
	case registrationevent.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case registrationevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RegistrationEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RegistrationEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RegistrationEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RegistrationEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RegistrationEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RegistrationEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RegistrationEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RegistrationEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RegistrationEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RegistrationEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RegistrationEvent edge %s", name)
}

// SellerProfileMutation represents an operation that mutates the SellerProfile nodes in the graph.
type SellerProfileMutation struct {
	config
	op               Op
	typ              string
	id               *int
	mobile           *string
	first_name       *string
	last_name        *string
	business_name    *string
	email            *string
	whatsapp         *string
	pincode          *string
	plot_number      *string
	building_name    *string
	street_name      *string
	landmark         *string
	area             *string
	city             *string
	state            *string
	categories       *[]string
	appendcategories []string
	status           *sellerprofile.Status
	current_step     *int
	addcurrent_step  *int
	submit_stage     *sellerprofile.SubmitStage
	store_id         *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*SellerProfile, error)
	predicates       []predicate.SellerProfile
}

var _ ent.Mutation = (*SellerProfileMutation)(nil)

// sellerprofileOption allows management of the mutation configuration using functional options.
type sellerprofileOption func(*SellerProfileMutation)

// newSellerProfileMutation creates new mutation for the SellerProfile entity.
func newSellerProfileMutation(c config, op Op, opts ...sellerprofileOption) *SellerProfileMutation {
	m := &SellerProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeSellerProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSellerProfileID sets the ID field of the mutation.
func withSellerProfileID(id int) sellerprofileOption {
	return func(m *SellerProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *SellerProfile
		)
		m.oldValue = func(ctx context.Context) (*SellerProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SellerProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSellerProfile sets the old SellerProfile of the mutation.
func withSellerProfile(node *SellerProfile) sellerprofileOption {
	return func(m *SellerProfileMutation) {
		m.oldValue = func(context.Context) (*SellerProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SellerProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SellerProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SellerProfileMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SellerProfileMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SellerProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMobile sets the "mobile" field.
func (m *SellerProfileMutation) SetMobile(s string) {
	m.mobile = &s
}

// Mobile returns the value of the "mobile" field in the mutation.
func (m *SellerProfileMutation) Mobile() (r string, exists bool) {
	v := m.mobile
	if v == nil {
		return
	}
	return *v, true
}

// OldMobile returns the old "mobile" field's value of the SellerProfile entity.
// If the SellerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerProfileMutation) OldMobile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMobile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMobile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMobile: %w", err)
	}
	return oldValue.Mobile, nil
}

// ResetMobile resets all changes to the "mobile" field.
func (m *SellerProfileMutation) ResetMobile() {
	m.mobile = nil
}

// SetFirstName sets the "first_name" field.
func (m *SellerProfileMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *SellerProfileMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the SellerProfile entity.
// If the SellerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerProfileMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *SellerProfileMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *SellerProfileMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *SellerProfileMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the SellerProfile entity.
// If the SellerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerProfileMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *SellerProfileMutation) ResetLastName() {
	m.last_name = nil
}

// SetBusinessName sets the "business_name" field.
func (m *SellerProfileMutation) SetBusinessName(s string) {
	m.business_name = &s
}

// BusinessName returns the value of the "business_name" field in the mutation.
func (m *SellerProfileMutation) BusinessName() (r string, exists bool) {
	v := m.business_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessName returns the old "business_name" field's value of the SellerProfile entity.
// If the SellerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerProfileMutation) OldBusinessName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessName: %w", err)
	}
	return oldValue.BusinessName, nil
}

// ResetBusinessName resets all changes to the "business_name" field.
func (m *SellerProfileMutation) ResetBusinessName() {
	m.business_name = nil
}

// SetEmail sets the "email" field.
func (m *SellerProfileMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *SellerProfileMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the SellerProfile entity.
// If the SellerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerProfileMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *SellerProfileMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[sellerprofile.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *SellerProfileMutation) EmailCleared() bool {
	_, ok := m.clearedFields[sellerprofile.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *SellerProfileMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, sellerprofile.FieldEmail)
}

// SetWhatsapp sets the "whatsapp" field.
func (m *SellerProfileMutation) SetWhatsapp(s string) {
	m.whatsapp = &s
}

// Whatsapp returns the value of the "whatsapp" field in the mutation.
func (m *SellerProfileMutation) Whatsapp() (r string, exists bool) {
	v := m.whatsapp
	if v == nil {
		return
	}
	return *v, true
}

// OldWhatsapp returns the old "whatsapp" field's value of the SellerProfile entity.
// If the SellerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerProfileMutation) OldWhatsapp(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWhatsapp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWhatsapp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWhatsapp: %w", err)
	}
	return oldValue.Whatsapp, nil
}

// ClearWhatsapp clears the value of the "whatsapp" field.
func (m *SellerProfileMutation) ClearWhatsapp() {
	m.whatsapp = nil
	m.clearedFields[sellerprofile.FieldWhatsapp] = struct{}{}
}

// WhatsappCleared returns if the "whatsapp" field was cleared in this mutation.
func (m *SellerProfileMutation) WhatsappCleared() bool {
	_, ok := m.clearedFields[sellerprofile.FieldWhatsapp]
	return ok
}

// ResetWhatsapp resets all changes to the "whatsapp" field.
func (m *SellerProfileMutation) ResetWhatsapp() {
	m.whatsapp = nil
	delete(m.clearedFields, sellerprofile.FieldWhatsapp)
}

// SetPincode sets the "pincode" field.
func (m *SellerProfileMutation) SetPincode(s string) {
	m.pincode = &s
}

// Pincode returns the value of the "pincode" field in the mutation.
func (m *SellerProfileMutation) Pincode() (r string, exists bool) {
	v := m.pincode
	if v == nil {
		return
	}
	return *v, true
}

// OldPincode returns the old "pincode" field's value of the SellerProfile entity.
// If the SellerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerProfileMutation) OldPincode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPincode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPincode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPincode: %w", err)
	}
	return oldValue.Pincode, nil
}

// ResetPincode resets all changes to the "pincode" field.
func (m *SellerProfileMutation) ResetPincode() {
	m.pincode = nil
}

// SetPlotNumber sets the "plot_number" field.
func (m *SellerProfileMutation) SetPlotNumber(s string) {
	m.plot_number = &s
}

// PlotNumber returns the value of the "plot_number" field in the mutation.
func (m *SellerProfileMutation) PlotNumber() (r string, exists bool) {
	v := m.plot_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPlotNumber returns the old "plot_number" field's value of the SellerProfile entity.
// If the SellerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerProfileMutation) OldPlotNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlotNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlotNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlotNumber: %w", err)
	}
	return oldValue.PlotNumber, nil
}

// ResetPlotNumber resets all changes to the "plot_number" field.
func (m *SellerProfileMutation) ResetPlotNumber() {
	m.plot_number = nil
}

// SetBuildingName sets the "building_name" field.
func (m *SellerProfileMutation) SetBuildingName(s string) {
	m.building_name = &s
}

// BuildingName returns the value of the "building_name" field in the mutation.
func (m *SellerProfileMutation) BuildingName() (r string, exists bool) {
	v := m.building_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBuildingName returns the old "building_name" field's value of the SellerProfile entity.
// If the SellerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerProfileMutation) OldBuildingName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuildingName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuildingName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuildingName: %w", err)
	}
	return oldValue.BuildingName, nil
}

// ResetBuildingName resets all changes to the "building_name" field.
func (m *SellerProfileMutation) ResetBuildingName() {
	m.building_name = nil
}

// SetStreetName sets the "street_name" field.
func (m *SellerProfileMutation) SetStreetName(s string) {
	m.street_name = &s
}

// StreetName returns the value of the "street_name" field in the mutation.
func (m *SellerProfileMutation) StreetName() (r string, exists bool) {
	v := m.street_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStreetName returns the old "street_name" field's value of the SellerProfile entity.
// If the SellerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerProfileMutation) OldStreetName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreetName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreetName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreetName: %w", err)
	}
	return oldValue.StreetName, nil
}

// ResetStreetName resets all changes to the "street_name" field.
func (m *SellerProfileMutation) ResetStreetName() {
	m.street_name = nil
}

// SetLandmark sets the "landmark" field.
func (m *SellerProfileMutation) SetLandmark(s string) {
	m.landmark = &s
}

// Landmark returns the value of the "landmark" field in the mutation.
func (m *SellerProfileMutation) Landmark() (r string, exists bool) {
	v := m.landmark
	if v == nil {
		return
	}
	return *v, true
}

// OldLandmark returns the old "landmark" field's value of the SellerProfile entity.
// If the SellerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerProfileMutation) OldLandmark(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLandmark is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLandmark requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLandmark: %w", err)
	}
	return oldValue.Landmark, nil
}

// ResetLandmark resets all changes to the "landmark" field.
func (m *SellerProfileMutation) ResetLandmark() {
	m.landmark = nil
}

// SetArea sets the "area" field.
func (m *SellerProfileMutation) SetArea(s string) {
	m.area = &s
}

// Area returns the value of the "area" field in the mutation.
func (m *SellerProfileMutation) Area() (r string, exists bool) {
	v := m.area
	if v == nil {
		return
	}
	return *v, true
}

// OldArea returns the old "area" field's value of the SellerProfile entity.
// If the SellerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerProfileMutation) OldArea(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArea is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArea requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArea: %w", err)
	}
	return oldValue.Area, nil
}

// ResetArea resets all changes to the "area" field.
func (m *SellerProfileMutation) ResetArea() {
	m.area = nil
}

// SetCity sets the "city" field.
func (m *SellerProfileMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *SellerProfileMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the SellerProfile entity.
// If the SellerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerProfileMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ResetCity resets all changes to the "city" field.
func (m *SellerProfileMutation) ResetCity() {
	m.city = nil
}

// SetState sets the "state" field.
func (m *SellerProfileMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *SellerProfileMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the SellerProfile entity.
// If the SellerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerProfileMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *SellerProfileMutation) ResetState() {
	m.state = nil
}

// SetCategories sets the "categories" field.
func (m *SellerProfileMutation) SetCategories(s []string) {
	m.categories = &s
	m.appendcategories = nil
}

// Categories returns the value of the "categories" field in the mutation.
func (m *SellerProfileMutation) Categories() (r []string, exists bool) {
	v := m.categories
	if v == nil {
		return
	}
	return *v, true
}

// OldCategories returns the old "categories" field's value of the SellerProfile entity.
// If the SellerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerProfileMutation) OldCategories(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategories is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategories requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategories: %w", err)
	}
	return oldValue.Categories, nil
}

// AppendCategories adds s to the "categories" field.
func (m *SellerProfileMutation) AppendCategories(s []string) {
	m.appendcategories = append(m.appendcategories, s...)
}

// AppendedCategories returns the list of values that were appended to the "categories" field in this mutation.
func (m *SellerProfileMutation) AppendedCategories() ([]string, bool) {
	if len(m.appendcategories) == 0 {
		return nil, false
	}
	return m.appendcategories, true
}

// ClearCategories clears the value of the "categories" field.
func (m *SellerProfileMutation) ClearCategories() {
	m.categories = nil
	m.appendcategories = nil
	m.clearedFields[sellerprofile.FieldCategories] = struct{}{}
}

// CategoriesCleared returns if the "categories" field was cleared in this mutation.
func (m *SellerProfileMutation) CategoriesCleared() bool {
	_, ok := m.clearedFields[sellerprofile.FieldCategories]
	return ok
}

// ResetCategories resets all changes to the "categories" field.
func (m *SellerProfileMutation) ResetCategories() {
	m.categories = nil
	m.appendcategories = nil
	delete(m.clearedFields, sellerprofile.FieldCategories)
}

// SetStatus sets the "status" field.
func (m *SellerProfileMutation) SetStatus(s sellerprofile.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SellerProfileMutation) Status() (r sellerprofile.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SellerProfile entity.
// If the SellerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerProfileMutation) OldStatus(ctx context.Context) (v sellerprofile.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SellerProfileMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentStep sets the "current_step" field.
func (m *SellerProfileMutation) SetCurrentStep(i int) {
	m.current_step = &i
	m.addcurrent_step = nil
}

// CurrentStep returns the value of the "current_step" field in the mutation.
func (m *SellerProfileMutation) CurrentStep() (r int, exists bool) {
	v := m.current_step
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStep returns the old "current_step" field's value of the SellerProfile entity.
// If the SellerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerProfileMutation) OldCurrentStep(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStep: %w", err)
	}
	return oldValue.CurrentStep, nil
}

// AddCurrentStep adds i to the "current_step" field.
func (m *SellerProfileMutation) AddCurrentStep(i int) {
	if m.addcurrent_step != nil {
		*m.addcurrent_step += i
	} else {
		m.addcurrent_step = &i
	}
}

// AddedCurrentStep returns the value that was added to the "current_step" field in this mutation.
func (m *SellerProfileMutation) AddedCurrentStep() (r int, exists bool) {
	v := m.addcurrent_step
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentStep resets all changes to the "current_step" field.
func (m *SellerProfileMutation) ResetCurrentStep() {
	m.current_step = nil
	m.addcurrent_step = nil
}

// SetSubmitStage sets the "submit_stage" field.
func (m *SellerProfileMutation) SetSubmitStage(ss sellerprofile.SubmitStage) {
	m.submit_stage = &ss
}

// SubmitStage returns the value of the "submit_stage" field in the mutation.
func (m *SellerProfileMutation) SubmitStage() (r sellerprofile.SubmitStage, exists bool) {
	v := m.submit_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmitStage returns the old "submit_stage" field's value of the SellerProfile entity.
// If the SellerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerProfileMutation) OldSubmitStage(ctx context.Context) (v sellerprofile.SubmitStage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmitStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmitStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmitStage: %w", err)
	}
	return oldValue.SubmitStage, nil
}

// ResetSubmitStage resets all changes to the "submit_stage" field.
func (m *SellerProfileMutation) ResetSubmitStage() {
	m.submit_stage = nil
}

// SetStoreID sets the "store_id" field.
func (m *SellerProfileMutation) SetStoreID(s string) {
	m.store_id = &s
}

// StoreID returns the value of the "store_id" field in the mutation.
func (m *SellerProfileMutation) StoreID() (r string, exists bool) {
	v := m.store_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStoreID returns the old "store_id" field's value of the SellerProfile entity.
// If the SellerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerProfileMutation) OldStoreID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoreID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoreID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoreID: %w", err)
	}
	return oldValue.StoreID, nil
}

// ClearStoreID clears the value of the "store_id" field.
func (m *SellerProfileMutation) ClearStoreID() {
	m.store_id = nil
	m.clearedFields[sellerprofile.FieldStoreID] = struct{}{}
}

// StoreIDCleared returns if the "store_id" field was cleared in this mutation.
func (m *SellerProfileMutation) StoreIDCleared() bool {
	_, ok := m.clearedFields[sellerprofile.FieldStoreID]
	return ok
}

// ResetStoreID resets all changes to the "store_id" field.
func (m *SellerProfileMutation) ResetStoreID() {
	m.store_id = nil
	delete(m.clearedFields, sellerprofile.FieldStoreID)
}

// SetCreatedAt sets the "created_at" field.
func (m *SellerProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SellerProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SellerProfile entity.
// If the SellerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SellerProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SellerProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SellerProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SellerProfile entity.
// If the SellerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SellerProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SellerProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SellerProfileMutation builder.
func (m *SellerProfileMutation) Where(ps ...predicate.SellerProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SellerProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SellerProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SellerProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SellerProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SellerProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SellerProfile).
func (m *SellerProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SellerProfileMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.mobile != nil {
		fields = append(fields, sellerprofile.FieldMobile)
	}
	if m.first_name != nil {
		fields = append(fields, sellerprofile.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, sellerprofile.FieldLastName)
	}
	if m.business_name != nil {
		fields = append(fields, sellerprofile.FieldBusinessName)
	}
	if m.email != nil {
		fields = append(fields, sellerprofile.FieldEmail)
	}
	if m.whatsapp != nil {
		fields = append(fields, sellerprofile.FieldWhatsapp)
	}
	if m.pincode != nil {
		fields = append(fields, sellerprofile.FieldPincode)
	}
	if m.plot_number != nil {
		fields = append(fields, sellerprofile.FieldPlotNumber)
	}
	if m.building_name != nil {
		fields = append(fields, sellerprofile.FieldBuildingName)
	}
	if m.street_name != nil {
		fields = append(fields, sellerprofile.FieldStreetName)
	}
	if m.landmark != nil {
		fields = append(fields, sellerprofile.FieldLandmark)
	}
	if m.area != nil {
		fields = append(fields, sellerprofile.FieldArea)
	}
	if m.city != nil {
		fields = append(fields, sellerprofile.FieldCity)
	}
	if m.state != nil {
		fields = append(fields, sellerprofile.FieldState)
	}
	if m.categories != nil {
		fields = append(fields, sellerprofile.FieldCategories)
	}
	if m.status != nil {
		fields = append(fields, sellerprofile.FieldStatus)
	}
	if m.current_step != nil {
		fields = append(fields, sellerprofile.FieldCurrentStep)
	}
	if m.submit_stage != nil {
		fields = append(fields, sellerprofile.FieldSubmitStage)
	}
	if m.store_id != nil {
		fields = append(fields, sellerprofile.FieldStoreID)
	}
	if m.created_at != nil {
		fields = append(fields, sellerprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, sellerprofile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SellerProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sellerprofile.FieldMobile:
		return m.Mobile()
	case sellerprofile.FieldFirstName:
		return m.FirstName()
	case sellerprofile.FieldLastName:
		return m.LastName()
	case sellerprofile.FieldBusinessName:
		return m.BusinessName()
	case sellerprofile.FieldEmail:
		return m.Email()
	case sellerprofile.FieldWhatsapp:
		return m.Whatsapp()
	case sellerprofile.FieldPincode:
		return m.Pincode()
	case sellerprofile.FieldPlotNumber:
		return m.PlotNumber()
	case sellerprofile.FieldBuildingName:
		return m.BuildingName()
	case sellerprofile.FieldStreetName:
		return m.StreetName()
	case sellerprofile.FieldLandmark:
		return m.Landmark()
	case sellerprofile.FieldArea:
		return m.Area()
	case sellerprofile.FieldCity:
		return m.City()
	case sellerprofile.FieldState:
		return m.State()
	case sellerprofile.FieldCategories:
		return m.Categories()
	case sellerprofile.FieldStatus:
		return m.Status()
	case sellerprofile.FieldCurrentStep:
		return m.CurrentStep()
	case sellerprofile.FieldSubmitStage:
		return m.SubmitStage()
	case sellerprofile.FieldStoreID:
		return m.StoreID()
	case sellerprofile.FieldCreatedAt:
		return m.CreatedAt()
	case sellerprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SellerProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sellerprofile.FieldMobile:
		return m.OldMobile(ctx)
	case sellerprofile.FieldFirstName:
		return m.OldFirstName(ctx)
	case sellerprofile.FieldLastName:
		return m.OldLastName(ctx)
	case sellerprofile.FieldBusinessName:
		return m.OldBusinessName(ctx)
	case sellerprofile.FieldEmail:
		return m.OldEmail(ctx)
	case sellerprofile.FieldWhatsapp:
		return m.OldWhatsapp(ctx)
	case sellerprofile.FieldPincode:
		return m.OldPincode(ctx)
	case sellerprofile.FieldPlotNumber:
		return m.OldPlotNumber(ctx)
	case sellerprofile.FieldBuildingName:
		return m.OldBuildingName(ctx)
	case sellerprofile.FieldStreetName:
		return m.OldStreetName(ctx)
	case sellerprofile.FieldLandmark:
		return m.OldLandmark(ctx)
	case sellerprofile.FieldArea:
		return m.OldArea(ctx)
	case sellerprofile.FieldCity:
		return m.OldCity(ctx)
	case sellerprofile.FieldState:
		return m.OldState(ctx)
	case sellerprofile.FieldCategories:
		return m.OldCategories(ctx)
	case sellerprofile.FieldStatus:
		return m.OldStatus(ctx)
	case sellerprofile.FieldCurrentStep:
		return m.OldCurrentStep(ctx)
	case sellerprofile.FieldSubmitStage:
		return m.OldSubmitStage(ctx)
	case sellerprofile.FieldStoreID:
		return m.OldStoreID(ctx)
	case sellerprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case sellerprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SellerProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SellerProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sellerprofile.FieldMobile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMobile(v)
		return nil
	case sellerprofile.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case sellerprofile.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case sellerprofile.FieldBusinessName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessName(v)
		return nil
	case sellerprofile.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case sellerprofile.FieldWhatsapp:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWhatsapp(v)
		return nil
	case sellerprofile.FieldPincode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPincode(v)
		return nil
	case sellerprofile.FieldPlotNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlotNumber(v)
		return nil
	case sellerprofile.FieldBuildingName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuildingName(v)
		return nil
	case sellerprofile.FieldStreetName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreetName(v)
		return nil
	case sellerprofile.FieldLandmark:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLandmark(v)
		return nil
	case sellerprofile.FieldArea:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArea(v)
		return nil
	case sellerprofile.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case sellerprofile.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case sellerprofile.FieldCategories:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategories(v)
		return nil
	case sellerprofile.FieldStatus:
		v, ok := value.(sellerprofile.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case sellerprofile.FieldCurrentStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStep(v)
		return nil
	case sellerprofile.FieldSubmitStage:
		v, ok := value.(sellerprofile.SubmitStage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmitStage(v)
		return nil
	case sellerprofile.FieldStoreID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoreID(v)
		return nil
	case sellerprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case sellerprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SellerProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SellerProfileMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_step != nil {
		fields = append(fields, sellerprofile.FieldCurrentStep)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SellerProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sellerprofile.FieldCurrentStep:
		return m.AddedCurrentStep()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SellerProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sellerprofile.FieldCurrentStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStep(v)
		return nil
	}
	return fmt.Errorf("unknown SellerProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SellerProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sellerprofile.FieldEmail) {
		fields = append(fields, sellerprofile.FieldEmail)
	}
	if m.FieldCleared(sellerprofile.FieldWhatsapp) {
		fields = append(fields, sellerprofile.FieldWhatsapp)
	}
	if m.FieldCleared(sellerprofile.FieldCategories) {
		fields = append(fields, sellerprofile.FieldCategories)
	}
	if m.FieldCleared(sellerprofile.FieldStoreID) {
		fields = append(fields, sellerprofile.FieldStoreID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SellerProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SellerProfileMutation) ClearField(name string) error {
	switch name {
	case sellerprofile.FieldEmail:
		m.ClearEmail()
		return nil
	case sellerprofile.FieldWhatsapp:
		m.ClearWhatsapp()
		return nil
	case sellerprofile.FieldCategories:
		m.ClearCategories()
		return nil
	case sellerprofile.FieldStoreID:
		m.ClearStoreID()
		return nil
	}
	return fmt.Errorf("unknown SellerProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SellerProfileMutation) ResetField(name string) error {
	switch name {
	case sellerprofile.FieldMobile:
		m.ResetMobile()
		return nil
	case sellerprofile.FieldFirstName:
		m.ResetFirstName()
		return nil
	case sellerprofile.FieldLastName:
		m.ResetLastName()
		return nil
	case sellerprofile.FieldBusinessName:
		m.ResetBusinessName()
		return nil
	case sellerprofile.FieldEmail:
		m.ResetEmail()
		return nil
	case sellerprofile.FieldWhatsapp:
		m.ResetWhatsapp()
		return nil
	case sellerprofile.FieldPincode:
		m.ResetPincode()
		return nil
	case sellerprofile.FieldPlotNumber:
		m.ResetPlotNumber()
		return nil
	case sellerprofile.FieldBuildingName:
		m.ResetBuildingName()
		return nil
	case sellerprofile.FieldStreetName:
		m.ResetStreetName()
		return nil
	case sellerprofile.FieldLandmark:
		m.ResetLandmark()
		return nil
	case sellerprofile.FieldArea:
		m.ResetArea()
		return nil
	case sellerprofile.FieldCity:
		m.ResetCity()
		return nil
	case sellerprofile.FieldState:
		m.ResetState()
		return nil
	case sellerprofile.FieldCategories:
		m.ResetCategories()
		return nil
	case sellerprofile.FieldStatus:
		m.ResetStatus()
		return nil
	case sellerprofile.FieldCurrentStep:
		m.ResetCurrentStep()
		return nil
	case sellerprofile.FieldSubmitStage:
		m.ResetSubmitStage()
		return nil
	case sellerprofile.FieldStoreID:
		m.ResetStoreID()
		return nil
	case sellerprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case sellerprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SellerProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SellerProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SellerProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SellerProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SellerProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SellerProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SellerProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SellerProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SellerProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SellerProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SellerProfile edge %s", name)
}
