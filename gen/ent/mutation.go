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
	"github.com/extractly-io/extractly/gen/ent/collection"
	"github.com/extractly-io/extractly/gen/ent/collectionproperty"
	"github.com/extractly-io/extractly/gen/ent/extractionrule"
	"github.com/extractly-io/extractly/gen/ent/extractionsession"
	"github.com/extractly-io/extractly/gen/ent/knowledgedocument"
	"github.com/extractly-io/extractly/gen/ent/predicate"
	"github.com/extractly-io/extractly/gen/ent/project"
	"github.com/extractly-io/extractly/gen/ent/schemafield"
	"github.com/extractly-io/extractly/gen/ent/sessiondocument"
	"github.com/extractly-io/extractly/gen/ent/validationrecord"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCollection         = "Collection"
	TypeCollectionProperty = "CollectionProperty"
	TypeExtractionRule     = "ExtractionRule"
	TypeExtractionSession  = "ExtractionSession"
	TypeKnowledgeDocument  = "KnowledgeDocument"
	TypeProject            = "Project"
	TypeSchemaField        = "SchemaField"
	TypeSessionDocument    = "SessionDocument"
	TypeValidationRecord   = "ValidationRecord"
)

// CollectionMutation represents an operation that mutates the Collection nodes in the graph.
type CollectionMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	name              *string
	description       *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	project           *uuid.UUID
	clearedproject    bool
	properties        map[uuid.UUID]struct{}
	removedproperties map[uuid.UUID]struct{}
	clearedproperties bool
	done              bool
	oldValue          func(context.Context) (*Collection, error)
	predicates        []predicate.Collection
}

var _ ent.Mutation = (*CollectionMutation)(nil)

// collectionOption allows management of the mutation configuration using functional options.
type collectionOption func(*CollectionMutation)

// newCollectionMutation creates new mutation for the Collection entity.
func newCollectionMutation(c config, op Op, opts ...collectionOption) *CollectionMutation {
	m := &CollectionMutation{
		config:        c,
		op:            op,
		typ:           TypeCollection,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCollectionID sets the ID field of the mutation.
func withCollectionID(id uuid.UUID) collectionOption {
	return func(m *CollectionMutation) {
		var (
			err   error
			once  sync.Once
			value *Collection
		)
		m.oldValue = func(ctx context.Context) (*Collection, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Collection.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCollection sets the old Collection of the mutation.
func withCollection(node *Collection) collectionOption {
	return func(m *CollectionMutation) {
		m.oldValue = func(context.Context) (*Collection, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CollectionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CollectionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Collection entities.
func (m *CollectionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CollectionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CollectionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Collection.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *CollectionMutation) SetProjectID(u uuid.UUID) {
	m.project = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *CollectionMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Collection entity.
// If the Collection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *CollectionMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *CollectionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CollectionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Collection entity.
// If the Collection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CollectionMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *CollectionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CollectionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Collection entity.
// If the Collection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CollectionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[collection.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CollectionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[collection.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CollectionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, collection.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *CollectionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CollectionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Collection entity.
// If the Collection object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CollectionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *CollectionMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[collection.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *CollectionMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *CollectionMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *CollectionMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddPropertyIDs adds the "properties" edge to the CollectionProperty entity by ids.
func (m *CollectionMutation) AddPropertyIDs(ids ...uuid.UUID) {
	if m.properties == nil {
		m.properties = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.properties[ids[i]] = struct{}{}
	}
}

// ClearProperties clears the "properties" edge to the CollectionProperty entity.
func (m *CollectionMutation) ClearProperties() {
	m.clearedproperties = true
}

// PropertiesCleared reports if the "properties" edge to the CollectionProperty entity was cleared.
func (m *CollectionMutation) PropertiesCleared() bool {
	return m.clearedproperties
}

// RemovePropertyIDs removes the "properties" edge to the CollectionProperty entity by IDs.
func (m *CollectionMutation) RemovePropertyIDs(ids ...uuid.UUID) {
	if m.removedproperties == nil {
		m.removedproperties = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.properties, ids[i])
		m.removedproperties[ids[i]] = struct{}{}
	}
}

// RemovedProperties returns the removed IDs of the "properties" edge to the CollectionProperty entity.
func (m *CollectionMutation) RemovedPropertiesIDs() (ids []uuid.UUID) {
	for id := range m.removedproperties {
		ids = append(ids, id)
	}
	return
}

// PropertiesIDs returns the "properties" edge IDs in the mutation.
func (m *CollectionMutation) PropertiesIDs() (ids []uuid.UUID) {
	for id := range m.properties {
		ids = append(ids, id)
	}
	return
}

// ResetProperties resets all changes to the "properties" edge.
func (m *CollectionMutation) ResetProperties() {
	m.properties = nil
	m.clearedproperties = false
	m.removedproperties = nil
}

// Where appends a list predicates to the CollectionMutation builder.
func (m *CollectionMutation) Where(ps ...predicate.Collection) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CollectionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CollectionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Collection, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CollectionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CollectionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Collection).
func (m *CollectionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CollectionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.project != nil {
		fields = append(fields, collection.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, collection.FieldName)
	}
	if m.description != nil {
		fields = append(fields, collection.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, collection.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CollectionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case collection.FieldProjectID:
		return m.ProjectID()
	case collection.FieldName:
		return m.Name()
	case collection.FieldDescription:
		return m.Description()
	case collection.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CollectionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case collection.FieldProjectID:
		return m.OldProjectID(ctx)
	case collection.FieldName:
		return m.OldName(ctx)
	case collection.FieldDescription:
		return m.OldDescription(ctx)
	case collection.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Collection field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CollectionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case collection.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case collection.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case collection.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case collection.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Collection field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CollectionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CollectionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CollectionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Collection numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CollectionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(collection.FieldDescription) {
		fields = append(fields, collection.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CollectionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CollectionMutation) ClearField(name string) error {
	switch name {
	case collection.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Collection nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CollectionMutation) ResetField(name string) error {
	switch name {
	case collection.FieldProjectID:
		m.ResetProjectID()
		return nil
	case collection.FieldName:
		m.ResetName()
		return nil
	case collection.FieldDescription:
		m.ResetDescription()
		return nil
	case collection.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Collection field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CollectionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, collection.EdgeProject)
	}
	if m.properties != nil {
		edges = append(edges, collection.EdgeProperties)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CollectionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case collection.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case collection.EdgeProperties:
		ids := make([]ent.Value, 0, len(m.properties))
		for id := range m.properties {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CollectionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedproperties != nil {
		edges = append(edges, collection.EdgeProperties)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CollectionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case collection.EdgeProperties:
		ids := make([]ent.Value, 0, len(m.removedproperties))
		for id := range m.removedproperties {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CollectionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, collection.EdgeProject)
	}
	if m.clearedproperties {
		edges = append(edges, collection.EdgeProperties)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CollectionMutation) EdgeCleared(name string) bool {
	switch name {
	case collection.EdgeProject:
		return m.clearedproject
	case collection.EdgeProperties:
		return m.clearedproperties
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CollectionMutation) ClearEdge(name string) error {
	switch name {
	case collection.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Collection unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CollectionMutation) ResetEdge(name string) error {
	switch name {
	case collection.EdgeProject:
		m.ResetProject()
		return nil
	case collection.EdgeProperties:
		m.ResetProperties()
		return nil
	}
	return fmt.Errorf("unknown Collection edge %s", name)
}

// CollectionPropertyMutation represents an operation that mutates the CollectionProperty nodes in the graph.
type CollectionPropertyMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	name              *string
	property_type     *string
	description       *string
	choices           *[]string
	appendchoices     []string
	required          *bool
	position          *int
	addposition       *int
	clearedFields     map[string]struct{}
	collection        *uuid.UUID
	clearedcollection bool
	done              bool
	oldValue          func(context.Context) (*CollectionProperty, error)
	predicates        []predicate.CollectionProperty
}

var _ ent.Mutation = (*CollectionPropertyMutation)(nil)

// collectionpropertyOption allows management of the mutation configuration using functional options.
type collectionpropertyOption func(*CollectionPropertyMutation)

// newCollectionPropertyMutation creates new mutation for the CollectionProperty entity.
func newCollectionPropertyMutation(c config, op Op, opts ...collectionpropertyOption) *CollectionPropertyMutation {
	m := &CollectionPropertyMutation{
		config:        c,
		op:            op,
		typ:           TypeCollectionProperty,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCollectionPropertyID sets the ID field of the mutation.
func withCollectionPropertyID(id uuid.UUID) collectionpropertyOption {
	return func(m *CollectionPropertyMutation) {
		var (
			err   error
			once  sync.Once
			value *CollectionProperty
		)
		m.oldValue = func(ctx context.Context) (*CollectionProperty, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CollectionProperty.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCollectionProperty sets the old CollectionProperty of the mutation.
func withCollectionProperty(node *CollectionProperty) collectionpropertyOption {
	return func(m *CollectionPropertyMutation) {
		m.oldValue = func(context.Context) (*CollectionProperty, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CollectionPropertyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CollectionPropertyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CollectionProperty entities.
func (m *CollectionPropertyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CollectionPropertyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CollectionPropertyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CollectionProperty.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCollectionID sets the "collection_id" field.
func (m *CollectionPropertyMutation) SetCollectionID(u uuid.UUID) {
	m.collection = &u
}

// CollectionID returns the value of the "collection_id" field in the mutation.
func (m *CollectionPropertyMutation) CollectionID() (r uuid.UUID, exists bool) {
	v := m.collection
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectionID returns the old "collection_id" field's value of the CollectionProperty entity.
// If the CollectionProperty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionPropertyMutation) OldCollectionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectionID: %w", err)
	}
	return oldValue.CollectionID, nil
}

// ResetCollectionID resets all changes to the "collection_id" field.
func (m *CollectionPropertyMutation) ResetCollectionID() {
	m.collection = nil
}

// SetName sets the "name" field.
func (m *CollectionPropertyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CollectionPropertyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the CollectionProperty entity.
// If the CollectionProperty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionPropertyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CollectionPropertyMutation) ResetName() {
	m.name = nil
}

// SetPropertyType sets the "property_type" field.
func (m *CollectionPropertyMutation) SetPropertyType(s string) {
	m.property_type = &s
}

// PropertyType returns the value of the "property_type" field in the mutation.
func (m *CollectionPropertyMutation) PropertyType() (r string, exists bool) {
	v := m.property_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPropertyType returns the old "property_type" field's value of the CollectionProperty entity.
// If the CollectionProperty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionPropertyMutation) OldPropertyType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPropertyType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPropertyType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPropertyType: %w", err)
	}
	return oldValue.PropertyType, nil
}

// ResetPropertyType resets all changes to the "property_type" field.
func (m *CollectionPropertyMutation) ResetPropertyType() {
	m.property_type = nil
}

// SetDescription sets the "description" field.
func (m *CollectionPropertyMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CollectionPropertyMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the CollectionProperty entity.
// If the CollectionProperty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionPropertyMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CollectionPropertyMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[collectionproperty.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CollectionPropertyMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[collectionproperty.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CollectionPropertyMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, collectionproperty.FieldDescription)
}

// SetChoices sets the "choices" field.
func (m *CollectionPropertyMutation) SetChoices(s []string) {
	m.choices = &s
	m.appendchoices = nil
}

// Choices returns the value of the "choices" field in the mutation.
func (m *CollectionPropertyMutation) Choices() (r []string, exists bool) {
	v := m.choices
	if v == nil {
		return
	}
	return *v, true
}

// OldChoices returns the old "choices" field's value of the CollectionProperty entity.
// If the CollectionProperty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionPropertyMutation) OldChoices(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChoices is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChoices requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChoices: %w", err)
	}
	return oldValue.Choices, nil
}

// AppendChoices adds s to the "choices" field.
func (m *CollectionPropertyMutation) AppendChoices(s []string) {
	m.appendchoices = append(m.appendchoices, s...)
}

// AppendedChoices returns the list of values that were appended to the "choices" field in this mutation.
func (m *CollectionPropertyMutation) AppendedChoices() ([]string, bool) {
	if len(m.appendchoices) == 0 {
		return nil, false
	}
	return m.appendchoices, true
}

// ClearChoices clears the value of the "choices" field.
func (m *CollectionPropertyMutation) ClearChoices() {
	m.choices = nil
	m.appendchoices = nil
	m.clearedFields[collectionproperty.FieldChoices] = struct{}{}
}

// ChoicesCleared returns if the "choices" field was cleared in this mutation.
func (m *CollectionPropertyMutation) ChoicesCleared() bool {
	_, ok := m.clearedFields[collectionproperty.FieldChoices]
	return ok
}

// ResetChoices resets all changes to the "choices" field.
func (m *CollectionPropertyMutation) ResetChoices() {
	m.choices = nil
	m.appendchoices = nil
	delete(m.clearedFields, collectionproperty.FieldChoices)
}

// SetRequired sets the "required" field.
func (m *CollectionPropertyMutation) SetRequired(b bool) {
	m.required = &b
}

// Required returns the value of the "required" field in the mutation.
func (m *CollectionPropertyMutation) Required() (r bool, exists bool) {
	v := m.required
	if v == nil {
		return
	}
	return *v, true
}

// OldRequired returns the old "required" field's value of the CollectionProperty entity.
// If the CollectionProperty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionPropertyMutation) OldRequired(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequired: %w", err)
	}
	return oldValue.Required, nil
}

// ResetRequired resets all changes to the "required" field.
func (m *CollectionPropertyMutation) ResetRequired() {
	m.required = nil
}

// SetPosition sets the "position" field.
func (m *CollectionPropertyMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *CollectionPropertyMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the CollectionProperty entity.
// If the CollectionProperty object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CollectionPropertyMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *CollectionPropertyMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *CollectionPropertyMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *CollectionPropertyMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// ClearCollection clears the "collection" edge to the Collection entity.
func (m *CollectionPropertyMutation) ClearCollection() {
	m.clearedcollection = true
	m.clearedFields[collectionproperty.FieldCollectionID] = struct{}{}
}

// CollectionCleared reports if the "collection" edge to the Collection entity was cleared.
func (m *CollectionPropertyMutation) CollectionCleared() bool {
	return m.clearedcollection
}

// CollectionIDs returns the "collection" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CollectionID instead. It exists only for internal usage by the builders.
func (m *CollectionPropertyMutation) CollectionIDs() (ids []uuid.UUID) {
	if id := m.collection; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCollection resets all changes to the "collection" edge.
func (m *CollectionPropertyMutation) ResetCollection() {
	m.collection = nil
	m.clearedcollection = false
}

// Where appends a list predicates to the CollectionPropertyMutation builder.
func (m *CollectionPropertyMutation) Where(ps ...predicate.CollectionProperty) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CollectionPropertyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CollectionPropertyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CollectionProperty, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CollectionPropertyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CollectionPropertyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CollectionProperty).
func (m *CollectionPropertyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CollectionPropertyMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.collection != nil {
		fields = append(fields, collectionproperty.FieldCollectionID)
	}
	if m.name != nil {
		fields = append(fields, collectionproperty.FieldName)
	}
	if m.property_type != nil {
		fields = append(fields, collectionproperty.FieldPropertyType)
	}
	if m.description != nil {
		fields = append(fields, collectionproperty.FieldDescription)
	}
	if m.choices != nil {
		fields = append(fields, collectionproperty.FieldChoices)
	}
	if m.required != nil {
		fields = append(fields, collectionproperty.FieldRequired)
	}
	if m.position != nil {
		fields = append(fields, collectionproperty.FieldPosition)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CollectionPropertyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case collectionproperty.FieldCollectionID:
		return m.CollectionID()
	case collectionproperty.FieldName:
		return m.Name()
	case collectionproperty.FieldPropertyType:
		return m.PropertyType()
	case collectionproperty.FieldDescription:
		return m.Description()
	case collectionproperty.FieldChoices:
		return m.Choices()
	case collectionproperty.FieldRequired:
		return m.Required()
	case collectionproperty.FieldPosition:
		return m.Position()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CollectionPropertyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case collectionproperty.FieldCollectionID:
		return m.OldCollectionID(ctx)
	case collectionproperty.FieldName:
		return m.OldName(ctx)
	case collectionproperty.FieldPropertyType:
		return m.OldPropertyType(ctx)
	case collectionproperty.FieldDescription:
		return m.OldDescription(ctx)
	case collectionproperty.FieldChoices:
		return m.OldChoices(ctx)
	case collectionproperty.FieldRequired:
		return m.OldRequired(ctx)
	case collectionproperty.FieldPosition:
		return m.OldPosition(ctx)
	}
	return nil, fmt.Errorf("unknown CollectionProperty field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CollectionPropertyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case collectionproperty.FieldCollectionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectionID(v)
		return nil
	case collectionproperty.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case collectionproperty.FieldPropertyType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPropertyType(v)
		return nil
	case collectionproperty.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case collectionproperty.FieldChoices:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChoices(v)
		return nil
	case collectionproperty.FieldRequired:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequired(v)
		return nil
	case collectionproperty.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	}
	return fmt.Errorf("unknown CollectionProperty field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CollectionPropertyMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, collectionproperty.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CollectionPropertyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case collectionproperty.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CollectionPropertyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case collectionproperty.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown CollectionProperty numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CollectionPropertyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(collectionproperty.FieldDescription) {
		fields = append(fields, collectionproperty.FieldDescription)
	}
	if m.FieldCleared(collectionproperty.FieldChoices) {
		fields = append(fields, collectionproperty.FieldChoices)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CollectionPropertyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CollectionPropertyMutation) ClearField(name string) error {
	switch name {
	case collectionproperty.FieldDescription:
		m.ClearDescription()
		return nil
	case collectionproperty.FieldChoices:
		m.ClearChoices()
		return nil
	}
	return fmt.Errorf("unknown CollectionProperty nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CollectionPropertyMutation) ResetField(name string) error {
	switch name {
	case collectionproperty.FieldCollectionID:
		m.ResetCollectionID()
		return nil
	case collectionproperty.FieldName:
		m.ResetName()
		return nil
	case collectionproperty.FieldPropertyType:
		m.ResetPropertyType()
		return nil
	case collectionproperty.FieldDescription:
		m.ResetDescription()
		return nil
	case collectionproperty.FieldChoices:
		m.ResetChoices()
		return nil
	case collectionproperty.FieldRequired:
		m.ResetRequired()
		return nil
	case collectionproperty.FieldPosition:
		m.ResetPosition()
		return nil
	}
	return fmt.Errorf("unknown CollectionProperty field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CollectionPropertyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.collection != nil {
		edges = append(edges, collectionproperty.EdgeCollection)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CollectionPropertyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case collectionproperty.EdgeCollection:
		if id := m.collection; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CollectionPropertyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CollectionPropertyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CollectionPropertyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcollection {
		edges = append(edges, collectionproperty.EdgeCollection)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CollectionPropertyMutation) EdgeCleared(name string) bool {
	switch name {
	case collectionproperty.EdgeCollection:
		return m.clearedcollection
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CollectionPropertyMutation) ClearEdge(name string) error {
	switch name {
	case collectionproperty.EdgeCollection:
		m.ClearCollection()
		return nil
	}
	return fmt.Errorf("unknown CollectionProperty unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CollectionPropertyMutation) ResetEdge(name string) error {
	switch name {
	case collectionproperty.EdgeCollection:
		m.ResetCollection()
		return nil
	}
	return fmt.Errorf("unknown CollectionProperty edge %s", name)
}

// ExtractionRuleMutation represents an operation that mutates the ExtractionRule nodes in the graph.
type ExtractionRuleMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	rule_name      *string
	target_field   *string
	rule_content   *string
	is_active      *bool
	created_at     *time.Time
	clearedFields  map[string]struct{}
	project        *uuid.UUID
	clearedproject bool
	done           bool
	oldValue       func(context.Context) (*ExtractionRule, error)
	predicates     []predicate.ExtractionRule
}

var _ ent.Mutation = (*ExtractionRuleMutation)(nil)

// extractionruleOption allows management of the mutation configuration using functional options.
type extractionruleOption func(*ExtractionRuleMutation)

// newExtractionRuleMutation creates new mutation for the ExtractionRule entity.
func newExtractionRuleMutation(c config, op Op, opts ...extractionruleOption) *ExtractionRuleMutation {
	m := &ExtractionRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionRuleID sets the ID field of the mutation.
func withExtractionRuleID(id uuid.UUID) extractionruleOption {
	return func(m *ExtractionRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionRule
		)
		m.oldValue = func(ctx context.Context) (*ExtractionRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionRule sets the old ExtractionRule of the mutation.
func withExtractionRule(node *ExtractionRule) extractionruleOption {
	return func(m *ExtractionRuleMutation) {
		m.oldValue = func(context.Context) (*ExtractionRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionRule entities.
func (m *ExtractionRuleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionRuleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionRuleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ExtractionRuleMutation) SetProjectID(u uuid.UUID) {
	m.project = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ExtractionRuleMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ExtractionRuleMutation) ResetProjectID() {
	m.project = nil
}

// SetRuleName sets the "rule_name" field.
func (m *ExtractionRuleMutation) SetRuleName(s string) {
	m.rule_name = &s
}

// RuleName returns the value of the "rule_name" field in the mutation.
func (m *ExtractionRuleMutation) RuleName() (r string, exists bool) {
	v := m.rule_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleName returns the old "rule_name" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldRuleName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleName: %w", err)
	}
	return oldValue.RuleName, nil
}

// ResetRuleName resets all changes to the "rule_name" field.
func (m *ExtractionRuleMutation) ResetRuleName() {
	m.rule_name = nil
}

// SetTargetField sets the "target_field" field.
func (m *ExtractionRuleMutation) SetTargetField(s string) {
	m.target_field = &s
}

// TargetField returns the value of the "target_field" field in the mutation.
func (m *ExtractionRuleMutation) TargetField() (r string, exists bool) {
	v := m.target_field
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetField returns the old "target_field" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldTargetField(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetField is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetField requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetField: %w", err)
	}
	return oldValue.TargetField, nil
}

// ClearTargetField clears the value of the "target_field" field.
func (m *ExtractionRuleMutation) ClearTargetField() {
	m.target_field = nil
	m.clearedFields[extractionrule.FieldTargetField] = struct{}{}
}

// TargetFieldCleared returns if the "target_field" field was cleared in this mutation.
func (m *ExtractionRuleMutation) TargetFieldCleared() bool {
	_, ok := m.clearedFields[extractionrule.FieldTargetField]
	return ok
}

// ResetTargetField resets all changes to the "target_field" field.
func (m *ExtractionRuleMutation) ResetTargetField() {
	m.target_field = nil
	delete(m.clearedFields, extractionrule.FieldTargetField)
}

// SetRuleContent sets the "rule_content" field.
func (m *ExtractionRuleMutation) SetRuleContent(s string) {
	m.rule_content = &s
}

// RuleContent returns the value of the "rule_content" field in the mutation.
func (m *ExtractionRuleMutation) RuleContent() (r string, exists bool) {
	v := m.rule_content
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleContent returns the old "rule_content" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldRuleContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleContent: %w", err)
	}
	return oldValue.RuleContent, nil
}

// ResetRuleContent resets all changes to the "rule_content" field.
func (m *ExtractionRuleMutation) ResetRuleContent() {
	m.rule_content = nil
}

// SetIsActive sets the "is_active" field.
func (m *ExtractionRuleMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ExtractionRuleMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ExtractionRuleMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionRule entity.
// If the ExtractionRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ExtractionRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ExtractionRuleMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[extractionrule.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ExtractionRuleMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ExtractionRuleMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ExtractionRuleMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the ExtractionRuleMutation builder.
func (m *ExtractionRuleMutation) Where(ps ...predicate.ExtractionRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionRule).
func (m *ExtractionRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionRuleMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.project != nil {
		fields = append(fields, extractionrule.FieldProjectID)
	}
	if m.rule_name != nil {
		fields = append(fields, extractionrule.FieldRuleName)
	}
	if m.target_field != nil {
		fields = append(fields, extractionrule.FieldTargetField)
	}
	if m.rule_content != nil {
		fields = append(fields, extractionrule.FieldRuleContent)
	}
	if m.is_active != nil {
		fields = append(fields, extractionrule.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, extractionrule.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionrule.FieldProjectID:
		return m.ProjectID()
	case extractionrule.FieldRuleName:
		return m.RuleName()
	case extractionrule.FieldTargetField:
		return m.TargetField()
	case extractionrule.FieldRuleContent:
		return m.RuleContent()
	case extractionrule.FieldIsActive:
		return m.IsActive()
	case extractionrule.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionrule.FieldProjectID:
		return m.OldProjectID(ctx)
	case extractionrule.FieldRuleName:
		return m.OldRuleName(ctx)
	case extractionrule.FieldTargetField:
		return m.OldTargetField(ctx)
	case extractionrule.FieldRuleContent:
		return m.OldRuleContent(ctx)
	case extractionrule.FieldIsActive:
		return m.OldIsActive(ctx)
	case extractionrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionrule.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case extractionrule.FieldRuleName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleName(v)
		return nil
	case extractionrule.FieldTargetField:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetField(v)
		return nil
	case extractionrule.FieldRuleContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleContent(v)
		return nil
	case extractionrule.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case extractionrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionRuleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionRuleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExtractionRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionrule.FieldTargetField) {
		fields = append(fields, extractionrule.FieldTargetField)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionRuleMutation) ClearField(name string) error {
	switch name {
	case extractionrule.FieldTargetField:
		m.ClearTargetField()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionRuleMutation) ResetField(name string) error {
	switch name {
	case extractionrule.FieldProjectID:
		m.ResetProjectID()
		return nil
	case extractionrule.FieldRuleName:
		m.ResetRuleName()
		return nil
	case extractionrule.FieldTargetField:
		m.ResetTargetField()
		return nil
	case extractionrule.FieldRuleContent:
		m.ResetRuleContent()
		return nil
	case extractionrule.FieldIsActive:
		m.ResetIsActive()
		return nil
	case extractionrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, extractionrule.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionRuleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionrule.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, extractionrule.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionRuleMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionrule.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionRuleMutation) ClearEdge(name string) error {
	switch name {
	case extractionrule.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionRuleMutation) ResetEdge(name string) error {
	switch name {
	case extractionrule.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRule edge %s", name)
}

// ExtractionSessionMutation represents an operation that mutates the ExtractionSession nodes in the graph.
type ExtractionSessionMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	status           *string
	progress_message *string
	error_message    *string
	model_name       *string
	started_at       *time.Time
	finished_at      *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	project          *uuid.UUID
	clearedproject   bool
	documents        map[uuid.UUID]struct{}
	removeddocuments map[uuid.UUID]struct{}
	cleareddocuments bool
	records          map[uuid.UUID]struct{}
	removedrecords   map[uuid.UUID]struct{}
	clearedrecords   bool
	done             bool
	oldValue         func(context.Context) (*ExtractionSession, error)
	predicates       []predicate.ExtractionSession
}

var _ ent.Mutation = (*ExtractionSessionMutation)(nil)

// extractionsessionOption allows management of the mutation configuration using functional options.
type extractionsessionOption func(*ExtractionSessionMutation)

// newExtractionSessionMutation creates new mutation for the ExtractionSession entity.
func newExtractionSessionMutation(c config, op Op, opts ...extractionsessionOption) *ExtractionSessionMutation {
	m := &ExtractionSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionSessionID sets the ID field of the mutation.
func withExtractionSessionID(id uuid.UUID) extractionsessionOption {
	return func(m *ExtractionSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionSession
		)
		m.oldValue = func(ctx context.Context) (*ExtractionSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionSession sets the old ExtractionSession of the mutation.
func withExtractionSession(node *ExtractionSession) extractionsessionOption {
	return func(m *ExtractionSessionMutation) {
		m.oldValue = func(context.Context) (*ExtractionSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionSession entities.
func (m *ExtractionSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ExtractionSessionMutation) SetProjectID(u uuid.UUID) {
	m.project = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ExtractionSessionMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ExtractionSession entity.
// If the ExtractionSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionSessionMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ExtractionSessionMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *ExtractionSessionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ExtractionSessionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ExtractionSession entity.
// If the ExtractionSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionSessionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *ExtractionSessionMutation) ClearName() {
	m.name = nil
	m.clearedFields[extractionsession.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *ExtractionSessionMutation) NameCleared() bool {
	_, ok := m.clearedFields[extractionsession.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *ExtractionSessionMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, extractionsession.FieldName)
}

// SetStatus sets the "status" field.
func (m *ExtractionSessionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionSessionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractionSession entity.
// If the ExtractionSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionSessionMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *ExtractionSessionMutation) ResetStatus() {
	m.status = nil
}

// SetProgressMessage sets the "progress_message" field.
func (m *ExtractionSessionMutation) SetProgressMessage(s string) {
	m.progress_message = &s
}

// ProgressMessage returns the value of the "progress_message" field in the mutation.
func (m *ExtractionSessionMutation) ProgressMessage() (r string, exists bool) {
	v := m.progress_message
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressMessage returns the old "progress_message" field's value of the ExtractionSession entity.
// If the ExtractionSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionSessionMutation) OldProgressMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressMessage: %w", err)
	}
	return oldValue.ProgressMessage, nil
}

// ClearProgressMessage clears the value of the "progress_message" field.
func (m *ExtractionSessionMutation) ClearProgressMessage() {
	m.progress_message = nil
	m.clearedFields[extractionsession.FieldProgressMessage] = struct{}{}
}

// ProgressMessageCleared returns if the "progress_message" field was cleared in this mutation.
func (m *ExtractionSessionMutation) ProgressMessageCleared() bool {
	_, ok := m.clearedFields[extractionsession.FieldProgressMessage]
	return ok
}

// ResetProgressMessage resets all changes to the "progress_message" field.
func (m *ExtractionSessionMutation) ResetProgressMessage() {
	m.progress_message = nil
	delete(m.clearedFields, extractionsession.FieldProgressMessage)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractionSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractionSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractionSession entity.
// If the ExtractionSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractionSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractionsession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractionSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractionsession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractionSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractionsession.FieldErrorMessage)
}

// SetModelName sets the "model_name" field.
func (m *ExtractionSessionMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ExtractionSessionMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the ExtractionSession entity.
// If the ExtractionSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionSessionMutation) OldModelName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *ExtractionSessionMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[extractionsession.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *ExtractionSessionMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[extractionsession.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ExtractionSessionMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, extractionsession.FieldModelName)
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractionSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractionSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractionSession entity.
// If the ExtractionSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionSessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ExtractionSessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[extractionsession.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ExtractionSessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[extractionsession.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractionSessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, extractionsession.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractionSessionMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractionSessionMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractionSession entity.
// If the ExtractionSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionSessionMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractionSessionMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractionsession.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractionSessionMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractionsession.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractionSessionMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractionsession.FieldFinishedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionSession entity.
// If the ExtractionSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ExtractionSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExtractionSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExtractionSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExtractionSession entity.
// If the ExtractionSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ExtractionSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ExtractionSessionMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[extractionsession.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ExtractionSessionMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ExtractionSessionMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ExtractionSessionMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddDocumentIDs adds the "documents" edge to the SessionDocument entity by ids.
func (m *ExtractionSessionMutation) AddDocumentIDs(ids ...uuid.UUID) {
	if m.documents == nil {
		m.documents = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the SessionDocument entity.
func (m *ExtractionSessionMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the SessionDocument entity was cleared.
func (m *ExtractionSessionMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the SessionDocument entity by IDs.
func (m *ExtractionSessionMutation) RemoveDocumentIDs(ids ...uuid.UUID) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the SessionDocument entity.
func (m *ExtractionSessionMutation) RemovedDocumentsIDs() (ids []uuid.UUID) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *ExtractionSessionMutation) DocumentsIDs() (ids []uuid.UUID) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *ExtractionSessionMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// AddRecordIDs adds the "records" edge to the ValidationRecord entity by ids.
func (m *ExtractionSessionMutation) AddRecordIDs(ids ...uuid.UUID) {
	if m.records == nil {
		m.records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.records[ids[i]] = struct{}{}
	}
}

// ClearRecords clears the "records" edge to the ValidationRecord entity.
func (m *ExtractionSessionMutation) ClearRecords() {
	m.clearedrecords = true
}

// RecordsCleared reports if the "records" edge to the ValidationRecord entity was cleared.
func (m *ExtractionSessionMutation) RecordsCleared() bool {
	return m.clearedrecords
}

// RemoveRecordIDs removes the "records" edge to the ValidationRecord entity by IDs.
func (m *ExtractionSessionMutation) RemoveRecordIDs(ids ...uuid.UUID) {
	if m.removedrecords == nil {
		m.removedrecords = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.records, ids[i])
		m.removedrecords[ids[i]] = struct{}{}
	}
}

// RemovedRecords returns the removed IDs of the "records" edge to the ValidationRecord entity.
func (m *ExtractionSessionMutation) RemovedRecordsIDs() (ids []uuid.UUID) {
	for id := range m.removedrecords {
		ids = append(ids, id)
	}
	return
}

// RecordsIDs returns the "records" edge IDs in the mutation.
func (m *ExtractionSessionMutation) RecordsIDs() (ids []uuid.UUID) {
	for id := range m.records {
		ids = append(ids, id)
	}
	return
}

// ResetRecords resets all changes to the "records" edge.
func (m *ExtractionSessionMutation) ResetRecords() {
	m.records = nil
	m.clearedrecords = false
	m.removedrecords = nil
}

// Where appends a list predicates to the ExtractionSessionMutation builder.
func (m *ExtractionSessionMutation) Where(ps ...predicate.ExtractionSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionSession).
func (m *ExtractionSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionSessionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.project != nil {
		fields = append(fields, extractionsession.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, extractionsession.FieldName)
	}
	if m.status != nil {
		fields = append(fields, extractionsession.FieldStatus)
	}
	if m.progress_message != nil {
		fields = append(fields, extractionsession.FieldProgressMessage)
	}
	if m.error_message != nil {
		fields = append(fields, extractionsession.FieldErrorMessage)
	}
	if m.model_name != nil {
		fields = append(fields, extractionsession.FieldModelName)
	}
	if m.started_at != nil {
		fields = append(fields, extractionsession.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractionsession.FieldFinishedAt)
	}
	if m.created_at != nil {
		fields = append(fields, extractionsession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, extractionsession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionsession.FieldProjectID:
		return m.ProjectID()
	case extractionsession.FieldName:
		return m.Name()
	case extractionsession.FieldStatus:
		return m.Status()
	case extractionsession.FieldProgressMessage:
		return m.ProgressMessage()
	case extractionsession.FieldErrorMessage:
		return m.ErrorMessage()
	case extractionsession.FieldModelName:
		return m.ModelName()
	case extractionsession.FieldStartedAt:
		return m.StartedAt()
	case extractionsession.FieldFinishedAt:
		return m.FinishedAt()
	case extractionsession.FieldCreatedAt:
		return m.CreatedAt()
	case extractionsession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionsession.FieldProjectID:
		return m.OldProjectID(ctx)
	case extractionsession.FieldName:
		return m.OldName(ctx)
	case extractionsession.FieldStatus:
		return m.OldStatus(ctx)
	case extractionsession.FieldProgressMessage:
		return m.OldProgressMessage(ctx)
	case extractionsession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractionsession.FieldModelName:
		return m.OldModelName(ctx)
	case extractionsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractionsession.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case extractionsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extractionsession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionsession.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case extractionsession.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case extractionsession.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractionsession.FieldProgressMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressMessage(v)
		return nil
	case extractionsession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractionsession.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case extractionsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractionsession.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case extractionsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extractionsession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExtractionSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionsession.FieldName) {
		fields = append(fields, extractionsession.FieldName)
	}
	if m.FieldCleared(extractionsession.FieldProgressMessage) {
		fields = append(fields, extractionsession.FieldProgressMessage)
	}
	if m.FieldCleared(extractionsession.FieldErrorMessage) {
		fields = append(fields, extractionsession.FieldErrorMessage)
	}
	if m.FieldCleared(extractionsession.FieldModelName) {
		fields = append(fields, extractionsession.FieldModelName)
	}
	if m.FieldCleared(extractionsession.FieldStartedAt) {
		fields = append(fields, extractionsession.FieldStartedAt)
	}
	if m.FieldCleared(extractionsession.FieldFinishedAt) {
		fields = append(fields, extractionsession.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionSessionMutation) ClearField(name string) error {
	switch name {
	case extractionsession.FieldName:
		m.ClearName()
		return nil
	case extractionsession.FieldProgressMessage:
		m.ClearProgressMessage()
		return nil
	case extractionsession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractionsession.FieldModelName:
		m.ClearModelName()
		return nil
	case extractionsession.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case extractionsession.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionSessionMutation) ResetField(name string) error {
	switch name {
	case extractionsession.FieldProjectID:
		m.ResetProjectID()
		return nil
	case extractionsession.FieldName:
		m.ResetName()
		return nil
	case extractionsession.FieldStatus:
		m.ResetStatus()
		return nil
	case extractionsession.FieldProgressMessage:
		m.ResetProgressMessage()
		return nil
	case extractionsession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractionsession.FieldModelName:
		m.ResetModelName()
		return nil
	case extractionsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractionsession.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case extractionsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extractionsession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.project != nil {
		edges = append(edges, extractionsession.EdgeProject)
	}
	if m.documents != nil {
		edges = append(edges, extractionsession.EdgeDocuments)
	}
	if m.records != nil {
		edges = append(edges, extractionsession.EdgeRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionsession.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case extractionsession.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	case extractionsession.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.records))
		for id := range m.records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeddocuments != nil {
		edges = append(edges, extractionsession.EdgeDocuments)
	}
	if m.removedrecords != nil {
		edges = append(edges, extractionsession.EdgeRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case extractionsession.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	case extractionsession.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.removedrecords))
		for id := range m.removedrecords {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedproject {
		edges = append(edges, extractionsession.EdgeProject)
	}
	if m.cleareddocuments {
		edges = append(edges, extractionsession.EdgeDocuments)
	}
	if m.clearedrecords {
		edges = append(edges, extractionsession.EdgeRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionsession.EdgeProject:
		return m.clearedproject
	case extractionsession.EdgeDocuments:
		return m.cleareddocuments
	case extractionsession.EdgeRecords:
		return m.clearedrecords
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionSessionMutation) ClearEdge(name string) error {
	switch name {
	case extractionsession.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown ExtractionSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionSessionMutation) ResetEdge(name string) error {
	switch name {
	case extractionsession.EdgeProject:
		m.ResetProject()
		return nil
	case extractionsession.EdgeDocuments:
		m.ResetDocuments()
		return nil
	case extractionsession.EdgeRecords:
		m.ResetRecords()
		return nil
	}
	return fmt.Errorf("unknown ExtractionSession edge %s", name)
}

// KnowledgeDocumentMutation represents an operation that mutates the KnowledgeDocument nodes in the graph.
type KnowledgeDocumentMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	display_name   *string
	content        *string
	target_field   *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	project        *uuid.UUID
	clearedproject bool
	done           bool
	oldValue       func(context.Context) (*KnowledgeDocument, error)
	predicates     []predicate.KnowledgeDocument
}

var _ ent.Mutation = (*KnowledgeDocumentMutation)(nil)

// knowledgedocumentOption allows management of the mutation configuration using functional options.
type knowledgedocumentOption func(*KnowledgeDocumentMutation)

// newKnowledgeDocumentMutation creates new mutation for the KnowledgeDocument entity.
func newKnowledgeDocumentMutation(c config, op Op, opts ...knowledgedocumentOption) *KnowledgeDocumentMutation {
	m := &KnowledgeDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeKnowledgeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withKnowledgeDocumentID sets the ID field of the mutation.
func withKnowledgeDocumentID(id uuid.UUID) knowledgedocumentOption {
	return func(m *KnowledgeDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *KnowledgeDocument
		)
		m.oldValue = func(ctx context.Context) (*KnowledgeDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().KnowledgeDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withKnowledgeDocument sets the old KnowledgeDocument of the mutation.
func withKnowledgeDocument(node *KnowledgeDocument) knowledgedocumentOption {
	return func(m *KnowledgeDocumentMutation) {
		m.oldValue = func(context.Context) (*KnowledgeDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m KnowledgeDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m KnowledgeDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of KnowledgeDocument entities.
func (m *KnowledgeDocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *KnowledgeDocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *KnowledgeDocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().KnowledgeDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *KnowledgeDocumentMutation) SetProjectID(u uuid.UUID) {
	m.project = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *KnowledgeDocumentMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the KnowledgeDocument entity.
// If the KnowledgeDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeDocumentMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *KnowledgeDocumentMutation) ResetProjectID() {
	m.project = nil
}

// SetDisplayName sets the "display_name" field.
func (m *KnowledgeDocumentMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *KnowledgeDocumentMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the KnowledgeDocument entity.
// If the KnowledgeDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeDocumentMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *KnowledgeDocumentMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetContent sets the "content" field.
func (m *KnowledgeDocumentMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *KnowledgeDocumentMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the KnowledgeDocument entity.
// If the KnowledgeDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeDocumentMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *KnowledgeDocumentMutation) ResetContent() {
	m.content = nil
}

// SetTargetField sets the "target_field" field.
func (m *KnowledgeDocumentMutation) SetTargetField(s string) {
	m.target_field = &s
}

// TargetField returns the value of the "target_field" field in the mutation.
func (m *KnowledgeDocumentMutation) TargetField() (r string, exists bool) {
	v := m.target_field
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetField returns the old "target_field" field's value of the KnowledgeDocument entity.
// If the KnowledgeDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeDocumentMutation) OldTargetField(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetField is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetField requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetField: %w", err)
	}
	return oldValue.TargetField, nil
}

// ClearTargetField clears the value of the "target_field" field.
func (m *KnowledgeDocumentMutation) ClearTargetField() {
	m.target_field = nil
	m.clearedFields[knowledgedocument.FieldTargetField] = struct{}{}
}

// TargetFieldCleared returns if the "target_field" field was cleared in this mutation.
func (m *KnowledgeDocumentMutation) TargetFieldCleared() bool {
	_, ok := m.clearedFields[knowledgedocument.FieldTargetField]
	return ok
}

// ResetTargetField resets all changes to the "target_field" field.
func (m *KnowledgeDocumentMutation) ResetTargetField() {
	m.target_field = nil
	delete(m.clearedFields, knowledgedocument.FieldTargetField)
}

// SetCreatedAt sets the "created_at" field.
func (m *KnowledgeDocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *KnowledgeDocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the KnowledgeDocument entity.
// If the KnowledgeDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *KnowledgeDocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *KnowledgeDocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *KnowledgeDocumentMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[knowledgedocument.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *KnowledgeDocumentMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *KnowledgeDocumentMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *KnowledgeDocumentMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the KnowledgeDocumentMutation builder.
func (m *KnowledgeDocumentMutation) Where(ps ...predicate.KnowledgeDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the KnowledgeDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *KnowledgeDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.KnowledgeDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *KnowledgeDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *KnowledgeDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (KnowledgeDocument).
func (m *KnowledgeDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *KnowledgeDocumentMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.project != nil {
		fields = append(fields, knowledgedocument.FieldProjectID)
	}
	if m.display_name != nil {
		fields = append(fields, knowledgedocument.FieldDisplayName)
	}
	if m.content != nil {
		fields = append(fields, knowledgedocument.FieldContent)
	}
	if m.target_field != nil {
		fields = append(fields, knowledgedocument.FieldTargetField)
	}
	if m.created_at != nil {
		fields = append(fields, knowledgedocument.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *KnowledgeDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case knowledgedocument.FieldProjectID:
		return m.ProjectID()
	case knowledgedocument.FieldDisplayName:
		return m.DisplayName()
	case knowledgedocument.FieldContent:
		return m.Content()
	case knowledgedocument.FieldTargetField:
		return m.TargetField()
	case knowledgedocument.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *KnowledgeDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case knowledgedocument.FieldProjectID:
		return m.OldProjectID(ctx)
	case knowledgedocument.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case knowledgedocument.FieldContent:
		return m.OldContent(ctx)
	case knowledgedocument.FieldTargetField:
		return m.OldTargetField(ctx)
	case knowledgedocument.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown KnowledgeDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case knowledgedocument.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case knowledgedocument.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case knowledgedocument.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case knowledgedocument.FieldTargetField:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetField(v)
		return nil
	case knowledgedocument.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown KnowledgeDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *KnowledgeDocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *KnowledgeDocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *KnowledgeDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown KnowledgeDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *KnowledgeDocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(knowledgedocument.FieldTargetField) {
		fields = append(fields, knowledgedocument.FieldTargetField)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *KnowledgeDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *KnowledgeDocumentMutation) ClearField(name string) error {
	switch name {
	case knowledgedocument.FieldTargetField:
		m.ClearTargetField()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *KnowledgeDocumentMutation) ResetField(name string) error {
	switch name {
	case knowledgedocument.FieldProjectID:
		m.ResetProjectID()
		return nil
	case knowledgedocument.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case knowledgedocument.FieldContent:
		m.ResetContent()
		return nil
	case knowledgedocument.FieldTargetField:
		m.ResetTargetField()
		return nil
	case knowledgedocument.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *KnowledgeDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, knowledgedocument.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *KnowledgeDocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case knowledgedocument.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *KnowledgeDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *KnowledgeDocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *KnowledgeDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, knowledgedocument.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *KnowledgeDocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case knowledgedocument.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *KnowledgeDocumentMutation) ClearEdge(name string) error {
	switch name {
	case knowledgedocument.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *KnowledgeDocumentMutation) ResetEdge(name string) error {
	switch name {
	case knowledgedocument.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown KnowledgeDocument edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	name               *string
	description        *string
	inbox_address      *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	fields             map[uuid.UUID]struct{}
	removedfields      map[uuid.UUID]struct{}
	clearedfields      bool
	collections        map[uuid.UUID]struct{}
	removedcollections map[uuid.UUID]struct{}
	clearedcollections bool
	sessions           map[uuid.UUID]struct{}
	removedsessions    map[uuid.UUID]struct{}
	clearedsessions    bool
	rules              map[uuid.UUID]struct{}
	removedrules       map[uuid.UUID]struct{}
	clearedrules       bool
	knowledge          map[uuid.UUID]struct{}
	removedknowledge   map[uuid.UUID]struct{}
	clearedknowledge   bool
	done               bool
	oldValue           func(context.Context) (*Project, error)
	predicates         []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id uuid.UUID) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ProjectMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProjectMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ProjectMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[project.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ProjectMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[project.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ProjectMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, project.FieldDescription)
}

// SetInboxAddress sets the "inbox_address" field.
func (m *ProjectMutation) SetInboxAddress(s string) {
	m.inbox_address = &s
}

// InboxAddress returns the value of the "inbox_address" field in the mutation.
func (m *ProjectMutation) InboxAddress() (r string, exists bool) {
	v := m.inbox_address
	if v == nil {
		return
	}
	return *v, true
}

// OldInboxAddress returns the old "inbox_address" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldInboxAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInboxAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInboxAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInboxAddress: %w", err)
	}
	return oldValue.InboxAddress, nil
}

// ClearInboxAddress clears the value of the "inbox_address" field.
func (m *ProjectMutation) ClearInboxAddress() {
	m.inbox_address = nil
	m.clearedFields[project.FieldInboxAddress] = struct{}{}
}

// InboxAddressCleared returns if the "inbox_address" field was cleared in this mutation.
func (m *ProjectMutation) InboxAddressCleared() bool {
	_, ok := m.clearedFields[project.FieldInboxAddress]
	return ok
}

// ResetInboxAddress resets all changes to the "inbox_address" field.
func (m *ProjectMutation) ResetInboxAddress() {
	m.inbox_address = nil
	delete(m.clearedFields, project.FieldInboxAddress)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddFieldIDs adds the "fields" edge to the SchemaField entity by ids.
func (m *ProjectMutation) AddFieldIDs(ids ...uuid.UUID) {
	if m.fields == nil {
		m.fields = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.fields[ids[i]] = struct{}{}
	}
}

// ClearFields clears the "fields" edge to the SchemaField entity.
func (m *ProjectMutation) ClearFields() {
	m.clearedfields = true
}

// FieldsCleared reports if the "fields" edge to the SchemaField entity was cleared.
func (m *ProjectMutation) FieldsCleared() bool {
	return m.clearedfields
}

// RemoveFieldIDs removes the "fields" edge to the SchemaField entity by IDs.
func (m *ProjectMutation) RemoveFieldIDs(ids ...uuid.UUID) {
	if m.removedfields == nil {
		m.removedfields = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.fields, ids[i])
		m.removedfields[ids[i]] = struct{}{}
	}
}

// RemovedFields returns the removed IDs of the "fields" edge to the SchemaField entity.
func (m *ProjectMutation) RemovedFieldsIDs() (ids []uuid.UUID) {
	for id := range m.removedfields {
		ids = append(ids, id)
	}
	return
}

// FieldsIDs returns the "fields" edge IDs in the mutation.
func (m *ProjectMutation) FieldsIDs() (ids []uuid.UUID) {
	for id := range m.fields {
		ids = append(ids, id)
	}
	return
}

// ResetFields resets all changes to the "fields" edge.
func (m *ProjectMutation) ResetFields() {
	m.fields = nil
	m.clearedfields = false
	m.removedfields = nil
}

// AddCollectionIDs adds the "collections" edge to the Collection entity by ids.
func (m *ProjectMutation) AddCollectionIDs(ids ...uuid.UUID) {
	if m.collections == nil {
		m.collections = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.collections[ids[i]] = struct{}{}
	}
}

// ClearCollections clears the "collections" edge to the Collection entity.
func (m *ProjectMutation) ClearCollections() {
	m.clearedcollections = true
}

// CollectionsCleared reports if the "collections" edge to the Collection entity was cleared.
func (m *ProjectMutation) CollectionsCleared() bool {
	return m.clearedcollections
}

// RemoveCollectionIDs removes the "collections" edge to the Collection entity by IDs.
func (m *ProjectMutation) RemoveCollectionIDs(ids ...uuid.UUID) {
	if m.removedcollections == nil {
		m.removedcollections = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.collections, ids[i])
		m.removedcollections[ids[i]] = struct{}{}
	}
}

// RemovedCollections returns the removed IDs of the "collections" edge to the Collection entity.
func (m *ProjectMutation) RemovedCollectionsIDs() (ids []uuid.UUID) {
	for id := range m.removedcollections {
		ids = append(ids, id)
	}
	return
}

// CollectionsIDs returns the "collections" edge IDs in the mutation.
func (m *ProjectMutation) CollectionsIDs() (ids []uuid.UUID) {
	for id := range m.collections {
		ids = append(ids, id)
	}
	return
}

// ResetCollections resets all changes to the "collections" edge.
func (m *ProjectMutation) ResetCollections() {
	m.collections = nil
	m.clearedcollections = false
	m.removedcollections = nil
}

// AddSessionIDs adds the "sessions" edge to the ExtractionSession entity by ids.
func (m *ProjectMutation) AddSessionIDs(ids ...uuid.UUID) {
	if m.sessions == nil {
		m.sessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the ExtractionSession entity.
func (m *ProjectMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the ExtractionSession entity was cleared.
func (m *ProjectMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the ExtractionSession entity by IDs.
func (m *ProjectMutation) RemoveSessionIDs(ids ...uuid.UUID) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the ExtractionSession entity.
func (m *ProjectMutation) RemovedSessionsIDs() (ids []uuid.UUID) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *ProjectMutation) SessionsIDs() (ids []uuid.UUID) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *ProjectMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// AddRuleIDs adds the "rules" edge to the ExtractionRule entity by ids.
func (m *ProjectMutation) AddRuleIDs(ids ...uuid.UUID) {
	if m.rules == nil {
		m.rules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.rules[ids[i]] = struct{}{}
	}
}

// ClearRules clears the "rules" edge to the ExtractionRule entity.
func (m *ProjectMutation) ClearRules() {
	m.clearedrules = true
}

// RulesCleared reports if the "rules" edge to the ExtractionRule entity was cleared.
func (m *ProjectMutation) RulesCleared() bool {
	return m.clearedrules
}

// RemoveRuleIDs removes the "rules" edge to the ExtractionRule entity by IDs.
func (m *ProjectMutation) RemoveRuleIDs(ids ...uuid.UUID) {
	if m.removedrules == nil {
		m.removedrules = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.rules, ids[i])
		m.removedrules[ids[i]] = struct{}{}
	}
}

// RemovedRules returns the removed IDs of the "rules" edge to the ExtractionRule entity.
func (m *ProjectMutation) RemovedRulesIDs() (ids []uuid.UUID) {
	for id := range m.removedrules {
		ids = append(ids, id)
	}
	return
}

// RulesIDs returns the "rules" edge IDs in the mutation.
func (m *ProjectMutation) RulesIDs() (ids []uuid.UUID) {
	for id := range m.rules {
		ids = append(ids, id)
	}
	return
}

// ResetRules resets all changes to the "rules" edge.
func (m *ProjectMutation) ResetRules() {
	m.rules = nil
	m.clearedrules = false
	m.removedrules = nil
}

// AddKnowledgeIDs adds the "knowledge" edge to the KnowledgeDocument entity by ids.
func (m *ProjectMutation) AddKnowledgeIDs(ids ...uuid.UUID) {
	if m.knowledge == nil {
		m.knowledge = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.knowledge[ids[i]] = struct{}{}
	}
}

// ClearKnowledge clears the "knowledge" edge to the KnowledgeDocument entity.
func (m *ProjectMutation) ClearKnowledge() {
	m.clearedknowledge = true
}

// KnowledgeCleared reports if the "knowledge" edge to the KnowledgeDocument entity was cleared.
func (m *ProjectMutation) KnowledgeCleared() bool {
	return m.clearedknowledge
}

// RemoveKnowledgeIDs removes the "knowledge" edge to the KnowledgeDocument entity by IDs.
func (m *ProjectMutation) RemoveKnowledgeIDs(ids ...uuid.UUID) {
	if m.removedknowledge == nil {
		m.removedknowledge = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.knowledge, ids[i])
		m.removedknowledge[ids[i]] = struct{}{}
	}
}

// RemovedKnowledge returns the removed IDs of the "knowledge" edge to the KnowledgeDocument entity.
func (m *ProjectMutation) RemovedKnowledgeIDs() (ids []uuid.UUID) {
	for id := range m.removedknowledge {
		ids = append(ids, id)
	}
	return
}

// KnowledgeIDs returns the "knowledge" edge IDs in the mutation.
func (m *ProjectMutation) KnowledgeIDs() (ids []uuid.UUID) {
	for id := range m.knowledge {
		ids = append(ids, id)
	}
	return
}

// ResetKnowledge resets all changes to the "knowledge" edge.
func (m *ProjectMutation) ResetKnowledge() {
	m.knowledge = nil
	m.clearedknowledge = false
	m.removedknowledge = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.description != nil {
		fields = append(fields, project.FieldDescription)
	}
	if m.inbox_address != nil {
		fields = append(fields, project.FieldInboxAddress)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldDescription:
		return m.Description()
	case project.FieldInboxAddress:
		return m.InboxAddress()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldDescription:
		return m.OldDescription(ctx)
	case project.FieldInboxAddress:
		return m.OldInboxAddress(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case project.FieldInboxAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInboxAddress(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldDescription) {
		fields = append(fields, project.FieldDescription)
	}
	if m.FieldCleared(project.FieldInboxAddress) {
		fields = append(fields, project.FieldInboxAddress)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldDescription:
		m.ClearDescription()
		return nil
	case project.FieldInboxAddress:
		m.ClearInboxAddress()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldDescription:
		m.ResetDescription()
		return nil
	case project.FieldInboxAddress:
		m.ResetInboxAddress()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.fields != nil {
		edges = append(edges, project.EdgeFields)
	}
	if m.collections != nil {
		edges = append(edges, project.EdgeCollections)
	}
	if m.sessions != nil {
		edges = append(edges, project.EdgeSessions)
	}
	if m.rules != nil {
		edges = append(edges, project.EdgeRules)
	}
	if m.knowledge != nil {
		edges = append(edges, project.EdgeKnowledge)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeFields:
		ids := make([]ent.Value, 0, len(m.fields))
		for id := range m.fields {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeCollections:
		ids := make([]ent.Value, 0, len(m.collections))
		for id := range m.collections {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeRules:
		ids := make([]ent.Value, 0, len(m.rules))
		for id := range m.rules {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeKnowledge:
		ids := make([]ent.Value, 0, len(m.knowledge))
		for id := range m.knowledge {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedfields != nil {
		edges = append(edges, project.EdgeFields)
	}
	if m.removedcollections != nil {
		edges = append(edges, project.EdgeCollections)
	}
	if m.removedsessions != nil {
		edges = append(edges, project.EdgeSessions)
	}
	if m.removedrules != nil {
		edges = append(edges, project.EdgeRules)
	}
	if m.removedknowledge != nil {
		edges = append(edges, project.EdgeKnowledge)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeFields:
		ids := make([]ent.Value, 0, len(m.removedfields))
		for id := range m.removedfields {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeCollections:
		ids := make([]ent.Value, 0, len(m.removedcollections))
		for id := range m.removedcollections {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeRules:
		ids := make([]ent.Value, 0, len(m.removedrules))
		for id := range m.removedrules {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeKnowledge:
		ids := make([]ent.Value, 0, len(m.removedknowledge))
		for id := range m.removedknowledge {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedfields {
		edges = append(edges, project.EdgeFields)
	}
	if m.clearedcollections {
		edges = append(edges, project.EdgeCollections)
	}
	if m.clearedsessions {
		edges = append(edges, project.EdgeSessions)
	}
	if m.clearedrules {
		edges = append(edges, project.EdgeRules)
	}
	if m.clearedknowledge {
		edges = append(edges, project.EdgeKnowledge)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeFields:
		return m.clearedfields
	case project.EdgeCollections:
		return m.clearedcollections
	case project.EdgeSessions:
		return m.clearedsessions
	case project.EdgeRules:
		return m.clearedrules
	case project.EdgeKnowledge:
		return m.clearedknowledge
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeFields:
		m.ResetFields()
		return nil
	case project.EdgeCollections:
		m.ResetCollections()
		return nil
	case project.EdgeSessions:
		m.ResetSessions()
		return nil
	case project.EdgeRules:
		m.ResetRules()
		return nil
	case project.EdgeKnowledge:
		m.ResetKnowledge()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// SchemaFieldMutation represents an operation that mutates the SchemaField nodes in the graph.
type SchemaFieldMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	field_type     *string
	description    *string
	choices        *[]string
	appendchoices  []string
	required       *bool
	position       *int
	addposition    *int
	created_at     *time.Time
	clearedFields  map[string]struct{}
	project        *uuid.UUID
	clearedproject bool
	done           bool
	oldValue       func(context.Context) (*SchemaField, error)
	predicates     []predicate.SchemaField
}

var _ ent.Mutation = (*SchemaFieldMutation)(nil)

// schemafieldOption allows management of the mutation configuration using functional options.
type schemafieldOption func(*SchemaFieldMutation)

// newSchemaFieldMutation creates new mutation for the SchemaField entity.
func newSchemaFieldMutation(c config, op Op, opts ...schemafieldOption) *SchemaFieldMutation {
	m := &SchemaFieldMutation{
		config:        c,
		op:            op,
		typ:           TypeSchemaField,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSchemaFieldID sets the ID field of the mutation.
func withSchemaFieldID(id uuid.UUID) schemafieldOption {
	return func(m *SchemaFieldMutation) {
		var (
			err   error
			once  sync.Once
			value *SchemaField
		)
		m.oldValue = func(ctx context.Context) (*SchemaField, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SchemaField.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSchemaField sets the old SchemaField of the mutation.
func withSchemaField(node *SchemaField) schemafieldOption {
	return func(m *SchemaFieldMutation) {
		m.oldValue = func(context.Context) (*SchemaField, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SchemaFieldMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SchemaFieldMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SchemaField entities.
func (m *SchemaFieldMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SchemaFieldMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SchemaFieldMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SchemaField.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *SchemaFieldMutation) SetProjectID(u uuid.UUID) {
	m.project = &u
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *SchemaFieldMutation) ProjectID() (r uuid.UUID, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the SchemaField entity.
// If the SchemaField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaFieldMutation) OldProjectID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *SchemaFieldMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *SchemaFieldMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SchemaFieldMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SchemaField entity.
// If the SchemaField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaFieldMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SchemaFieldMutation) ResetName() {
	m.name = nil
}

// SetFieldType sets the "field_type" field.
func (m *SchemaFieldMutation) SetFieldType(s string) {
	m.field_type = &s
}

// FieldType returns the value of the "field_type" field in the mutation.
func (m *SchemaFieldMutation) FieldType() (r string, exists bool) {
	v := m.field_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldType returns the old "field_type" field's value of the SchemaField entity.
// If the SchemaField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaFieldMutation) OldFieldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldType: %w", err)
	}
	return oldValue.FieldType, nil
}

// ResetFieldType resets all changes to the "field_type" field.
func (m *SchemaFieldMutation) ResetFieldType() {
	m.field_type = nil
}

// SetDescription sets the "description" field.
func (m *SchemaFieldMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SchemaFieldMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the SchemaField entity.
// If the SchemaField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaFieldMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *SchemaFieldMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[schemafield.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *SchemaFieldMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[schemafield.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *SchemaFieldMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, schemafield.FieldDescription)
}

// SetChoices sets the "choices" field.
func (m *SchemaFieldMutation) SetChoices(s []string) {
	m.choices = &s
	m.appendchoices = nil
}

// Choices returns the value of the "choices" field in the mutation.
func (m *SchemaFieldMutation) Choices() (r []string, exists bool) {
	v := m.choices
	if v == nil {
		return
	}
	return *v, true
}

// OldChoices returns the old "choices" field's value of the SchemaField entity.
// If the SchemaField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaFieldMutation) OldChoices(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChoices is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChoices requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChoices: %w", err)
	}
	return oldValue.Choices, nil
}

// AppendChoices adds s to the "choices" field.
func (m *SchemaFieldMutation) AppendChoices(s []string) {
	m.appendchoices = append(m.appendchoices, s...)
}

// AppendedChoices returns the list of values that were appended to the "choices" field in this mutation.
func (m *SchemaFieldMutation) AppendedChoices() ([]string, bool) {
	if len(m.appendchoices) == 0 {
		return nil, false
	}
	return m.appendchoices, true
}

// ClearChoices clears the value of the "choices" field.
func (m *SchemaFieldMutation) ClearChoices() {
	m.choices = nil
	m.appendchoices = nil
	m.clearedFields[schemafield.FieldChoices] = struct{}{}
}

// ChoicesCleared returns if the "choices" field was cleared in this mutation.
func (m *SchemaFieldMutation) ChoicesCleared() bool {
	_, ok := m.clearedFields[schemafield.FieldChoices]
	return ok
}

// ResetChoices resets all changes to the "choices" field.
func (m *SchemaFieldMutation) ResetChoices() {
	m.choices = nil
	m.appendchoices = nil
	delete(m.clearedFields, schemafield.FieldChoices)
}

// SetRequired sets the "required" field.
func (m *SchemaFieldMutation) SetRequired(b bool) {
	m.required = &b
}

// Required returns the value of the "required" field in the mutation.
func (m *SchemaFieldMutation) Required() (r bool, exists bool) {
	v := m.required
	if v == nil {
		return
	}
	return *v, true
}

// OldRequired returns the old "required" field's value of the SchemaField entity.
// If the SchemaField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaFieldMutation) OldRequired(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequired: %w", err)
	}
	return oldValue.Required, nil
}

// ResetRequired resets all changes to the "required" field.
func (m *SchemaFieldMutation) ResetRequired() {
	m.required = nil
}

// SetPosition sets the "position" field.
func (m *SchemaFieldMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *SchemaFieldMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the SchemaField entity.
// If the SchemaField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaFieldMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *SchemaFieldMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *SchemaFieldMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *SchemaFieldMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SchemaFieldMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SchemaFieldMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SchemaField entity.
// If the SchemaField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaFieldMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SchemaFieldMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *SchemaFieldMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[schemafield.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *SchemaFieldMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *SchemaFieldMutation) ProjectIDs() (ids []uuid.UUID) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *SchemaFieldMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the SchemaFieldMutation builder.
func (m *SchemaFieldMutation) Where(ps ...predicate.SchemaField) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SchemaFieldMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SchemaFieldMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SchemaField, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SchemaFieldMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SchemaFieldMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SchemaField).
func (m *SchemaFieldMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SchemaFieldMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.project != nil {
		fields = append(fields, schemafield.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, schemafield.FieldName)
	}
	if m.field_type != nil {
		fields = append(fields, schemafield.FieldFieldType)
	}
	if m.description != nil {
		fields = append(fields, schemafield.FieldDescription)
	}
	if m.choices != nil {
		fields = append(fields, schemafield.FieldChoices)
	}
	if m.required != nil {
		fields = append(fields, schemafield.FieldRequired)
	}
	if m.position != nil {
		fields = append(fields, schemafield.FieldPosition)
	}
	if m.created_at != nil {
		fields = append(fields, schemafield.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SchemaFieldMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case schemafield.FieldProjectID:
		return m.ProjectID()
	case schemafield.FieldName:
		return m.Name()
	case schemafield.FieldFieldType:
		return m.FieldType()
	case schemafield.FieldDescription:
		return m.Description()
	case schemafield.FieldChoices:
		return m.Choices()
	case schemafield.FieldRequired:
		return m.Required()
	case schemafield.FieldPosition:
		return m.Position()
	case schemafield.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SchemaFieldMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case schemafield.FieldProjectID:
		return m.OldProjectID(ctx)
	case schemafield.FieldName:
		return m.OldName(ctx)
	case schemafield.FieldFieldType:
		return m.OldFieldType(ctx)
	case schemafield.FieldDescription:
		return m.OldDescription(ctx)
	case schemafield.FieldChoices:
		return m.OldChoices(ctx)
	case schemafield.FieldRequired:
		return m.OldRequired(ctx)
	case schemafield.FieldPosition:
		return m.OldPosition(ctx)
	case schemafield.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SchemaField field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchemaFieldMutation) SetField(name string, value ent.Value) error {
	switch name {
	case schemafield.FieldProjectID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case schemafield.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case schemafield.FieldFieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldType(v)
		return nil
	case schemafield.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case schemafield.FieldChoices:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChoices(v)
		return nil
	case schemafield.FieldRequired:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequired(v)
		return nil
	case schemafield.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case schemafield.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SchemaField field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SchemaFieldMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, schemafield.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SchemaFieldMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case schemafield.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchemaFieldMutation) AddField(name string, value ent.Value) error {
	switch name {
	case schemafield.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown SchemaField numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SchemaFieldMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(schemafield.FieldDescription) {
		fields = append(fields, schemafield.FieldDescription)
	}
	if m.FieldCleared(schemafield.FieldChoices) {
		fields = append(fields, schemafield.FieldChoices)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SchemaFieldMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SchemaFieldMutation) ClearField(name string) error {
	switch name {
	case schemafield.FieldDescription:
		m.ClearDescription()
		return nil
	case schemafield.FieldChoices:
		m.ClearChoices()
		return nil
	}
	return fmt.Errorf("unknown SchemaField nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SchemaFieldMutation) ResetField(name string) error {
	switch name {
	case schemafield.FieldProjectID:
		m.ResetProjectID()
		return nil
	case schemafield.FieldName:
		m.ResetName()
		return nil
	case schemafield.FieldFieldType:
		m.ResetFieldType()
		return nil
	case schemafield.FieldDescription:
		m.ResetDescription()
		return nil
	case schemafield.FieldChoices:
		m.ResetChoices()
		return nil
	case schemafield.FieldRequired:
		m.ResetRequired()
		return nil
	case schemafield.FieldPosition:
		m.ResetPosition()
		return nil
	case schemafield.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SchemaField field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SchemaFieldMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, schemafield.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SchemaFieldMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case schemafield.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SchemaFieldMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SchemaFieldMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SchemaFieldMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, schemafield.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SchemaFieldMutation) EdgeCleared(name string) bool {
	switch name {
	case schemafield.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SchemaFieldMutation) ClearEdge(name string) error {
	switch name {
	case schemafield.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown SchemaField unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SchemaFieldMutation) ResetEdge(name string) error {
	switch name {
	case schemafield.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown SchemaField edge %s", name)
}

// SessionDocumentMutation represents an operation that mutates the SessionDocument nodes in the graph.
type SessionDocumentMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	file_name         *string
	mime_type         *string
	file_size         *int
	addfile_size      *int
	content_hash      *[]byte
	source            *string
	extracted_content *string
	uploaded_at       *time.Time
	clearedFields     map[string]struct{}
	session           *uuid.UUID
	clearedsession    bool
	done              bool
	oldValue          func(context.Context) (*SessionDocument, error)
	predicates        []predicate.SessionDocument
}

var _ ent.Mutation = (*SessionDocumentMutation)(nil)

// sessiondocumentOption allows management of the mutation configuration using functional options.
type sessiondocumentOption func(*SessionDocumentMutation)

// newSessionDocumentMutation creates new mutation for the SessionDocument entity.
func newSessionDocumentMutation(c config, op Op, opts ...sessiondocumentOption) *SessionDocumentMutation {
	m := &SessionDocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionDocumentID sets the ID field of the mutation.
func withSessionDocumentID(id uuid.UUID) sessiondocumentOption {
	return func(m *SessionDocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionDocument
		)
		m.oldValue = func(ctx context.Context) (*SessionDocument, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionDocument.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionDocument sets the old SessionDocument of the mutation.
func withSessionDocument(node *SessionDocument) sessiondocumentOption {
	return func(m *SessionDocumentMutation) {
		m.oldValue = func(context.Context) (*SessionDocument, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionDocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionDocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SessionDocument entities.
func (m *SessionDocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionDocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionDocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionDocument.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SessionDocumentMutation) SetSessionID(u uuid.UUID) {
	m.session = &u
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionDocumentMutation) SessionID() (r uuid.UUID, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionDocument entity.
// If the SessionDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionDocumentMutation) OldSessionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionDocumentMutation) ResetSessionID() {
	m.session = nil
}

// SetFileName sets the "file_name" field.
func (m *SessionDocumentMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *SessionDocumentMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the SessionDocument entity.
// If the SessionDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionDocumentMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *SessionDocumentMutation) ResetFileName() {
	m.file_name = nil
}

// SetMimeType sets the "mime_type" field.
func (m *SessionDocumentMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *SessionDocumentMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the SessionDocument entity.
// If the SessionDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionDocumentMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *SessionDocumentMutation) ResetMimeType() {
	m.mime_type = nil
}

// SetFileSize sets the "file_size" field.
func (m *SessionDocumentMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *SessionDocumentMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the SessionDocument entity.
// If the SessionDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionDocumentMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *SessionDocumentMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *SessionDocumentMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *SessionDocumentMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetContentHash sets the "content_hash" field.
func (m *SessionDocumentMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *SessionDocumentMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the SessionDocument entity.
// If the SessionDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionDocumentMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *SessionDocumentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetSource sets the "source" field.
func (m *SessionDocumentMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *SessionDocumentMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the SessionDocument entity.
// If the SessionDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionDocumentMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *SessionDocumentMutation) ResetSource() {
	m.source = nil
}

// SetExtractedContent sets the "extracted_content" field.
func (m *SessionDocumentMutation) SetExtractedContent(s string) {
	m.extracted_content = &s
}

// ExtractedContent returns the value of the "extracted_content" field in the mutation.
func (m *SessionDocumentMutation) ExtractedContent() (r string, exists bool) {
	v := m.extracted_content
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedContent returns the old "extracted_content" field's value of the SessionDocument entity.
// If the SessionDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionDocumentMutation) OldExtractedContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedContent: %w", err)
	}
	return oldValue.ExtractedContent, nil
}

// ClearExtractedContent clears the value of the "extracted_content" field.
func (m *SessionDocumentMutation) ClearExtractedContent() {
	m.extracted_content = nil
	m.clearedFields[sessiondocument.FieldExtractedContent] = struct{}{}
}

// ExtractedContentCleared returns if the "extracted_content" field was cleared in this mutation.
func (m *SessionDocumentMutation) ExtractedContentCleared() bool {
	_, ok := m.clearedFields[sessiondocument.FieldExtractedContent]
	return ok
}

// ResetExtractedContent resets all changes to the "extracted_content" field.
func (m *SessionDocumentMutation) ResetExtractedContent() {
	m.extracted_content = nil
	delete(m.clearedFields, sessiondocument.FieldExtractedContent)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *SessionDocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *SessionDocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the SessionDocument entity.
// If the SessionDocument object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionDocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *SessionDocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearSession clears the "session" edge to the ExtractionSession entity.
func (m *SessionDocumentMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[sessiondocument.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ExtractionSession entity was cleared.
func (m *SessionDocumentMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *SessionDocumentMutation) SessionIDs() (ids []uuid.UUID) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *SessionDocumentMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the SessionDocumentMutation builder.
func (m *SessionDocumentMutation) Where(ps ...predicate.SessionDocument) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionDocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionDocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionDocument, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionDocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionDocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionDocument).
func (m *SessionDocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionDocumentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session != nil {
		fields = append(fields, sessiondocument.FieldSessionID)
	}
	if m.file_name != nil {
		fields = append(fields, sessiondocument.FieldFileName)
	}
	if m.mime_type != nil {
		fields = append(fields, sessiondocument.FieldMimeType)
	}
	if m.file_size != nil {
		fields = append(fields, sessiondocument.FieldFileSize)
	}
	if m.content_hash != nil {
		fields = append(fields, sessiondocument.FieldContentHash)
	}
	if m.source != nil {
		fields = append(fields, sessiondocument.FieldSource)
	}
	if m.extracted_content != nil {
		fields = append(fields, sessiondocument.FieldExtractedContent)
	}
	if m.uploaded_at != nil {
		fields = append(fields, sessiondocument.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionDocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessiondocument.FieldSessionID:
		return m.SessionID()
	case sessiondocument.FieldFileName:
		return m.FileName()
	case sessiondocument.FieldMimeType:
		return m.MimeType()
	case sessiondocument.FieldFileSize:
		return m.FileSize()
	case sessiondocument.FieldContentHash:
		return m.ContentHash()
	case sessiondocument.FieldSource:
		return m.Source()
	case sessiondocument.FieldExtractedContent:
		return m.ExtractedContent()
	case sessiondocument.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionDocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessiondocument.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessiondocument.FieldFileName:
		return m.OldFileName(ctx)
	case sessiondocument.FieldMimeType:
		return m.OldMimeType(ctx)
	case sessiondocument.FieldFileSize:
		return m.OldFileSize(ctx)
	case sessiondocument.FieldContentHash:
		return m.OldContentHash(ctx)
	case sessiondocument.FieldSource:
		return m.OldSource(ctx)
	case sessiondocument.FieldExtractedContent:
		return m.OldExtractedContent(ctx)
	case sessiondocument.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionDocument field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionDocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessiondocument.FieldSessionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessiondocument.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case sessiondocument.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case sessiondocument.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case sessiondocument.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case sessiondocument.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case sessiondocument.FieldExtractedContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedContent(v)
		return nil
	case sessiondocument.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionDocument field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionDocumentMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, sessiondocument.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionDocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessiondocument.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionDocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessiondocument.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown SessionDocument numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionDocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessiondocument.FieldExtractedContent) {
		fields = append(fields, sessiondocument.FieldExtractedContent)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionDocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionDocumentMutation) ClearField(name string) error {
	switch name {
	case sessiondocument.FieldExtractedContent:
		m.ClearExtractedContent()
		return nil
	}
	return fmt.Errorf("unknown SessionDocument nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionDocumentMutation) ResetField(name string) error {
	switch name {
	case sessiondocument.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessiondocument.FieldFileName:
		m.ResetFileName()
		return nil
	case sessiondocument.FieldMimeType:
		m.ResetMimeType()
		return nil
	case sessiondocument.FieldFileSize:
		m.ResetFileSize()
		return nil
	case sessiondocument.FieldContentHash:
		m.ResetContentHash()
		return nil
	case sessiondocument.FieldSource:
		m.ResetSource()
		return nil
	case sessiondocument.FieldExtractedContent:
		m.ResetExtractedContent()
		return nil
	case sessiondocument.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionDocument field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionDocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, sessiondocument.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionDocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sessiondocument.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionDocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionDocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionDocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, sessiondocument.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionDocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case sessiondocument.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionDocumentMutation) ClearEdge(name string) error {
	switch name {
	case sessiondocument.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown SessionDocument unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionDocumentMutation) ResetEdge(name string) error {
	switch name {
	case sessiondocument.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown SessionDocument edge %s", name)
}

// ValidationRecordMutation represents an operation that mutates the ValidationRecord nodes in the graph.
type ValidationRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	field_id            *uuid.UUID
	collection_id       *uuid.UUID
	record_index        *int
	addrecord_index     *int
	field_name          *string
	extracted_value     *string
	validation_status   *string
	confidence_score    *int
	addconfidence_score *int
	reasoning           *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	session             *uuid.UUID
	clearedsession      bool
	done                bool
	oldValue            func(context.Context) (*ValidationRecord, error)
	predicates          []predicate.ValidationRecord
}

var _ ent.Mutation = (*ValidationRecordMutation)(nil)

// validationrecordOption allows management of the mutation configuration using functional options.
type validationrecordOption func(*ValidationRecordMutation)

// newValidationRecordMutation creates new mutation for the ValidationRecord entity.
func newValidationRecordMutation(c config, op Op, opts ...validationrecordOption) *ValidationRecordMutation {
	m := &ValidationRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeValidationRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withValidationRecordID sets the ID field of the mutation.
func withValidationRecordID(id uuid.UUID) validationrecordOption {
	return func(m *ValidationRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ValidationRecord
		)
		m.oldValue = func(ctx context.Context) (*ValidationRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ValidationRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withValidationRecord sets the old ValidationRecord of the mutation.
func withValidationRecord(node *ValidationRecord) validationrecordOption {
	return func(m *ValidationRecordMutation) {
		m.oldValue = func(context.Context) (*ValidationRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ValidationRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ValidationRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ValidationRecord entities.
func (m *ValidationRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ValidationRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ValidationRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ValidationRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ValidationRecordMutation) SetSessionID(u uuid.UUID) {
	m.session = &u
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ValidationRecordMutation) SessionID() (r uuid.UUID, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ValidationRecord entity.
// If the ValidationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRecordMutation) OldSessionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ValidationRecordMutation) ResetSessionID() {
	m.session = nil
}

// SetFieldID sets the "field_id" field.
func (m *ValidationRecordMutation) SetFieldID(u uuid.UUID) {
	m.field_id = &u
}

// FieldID returns the value of the "field_id" field in the mutation.
func (m *ValidationRecordMutation) FieldID() (r uuid.UUID, exists bool) {
	v := m.field_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldID returns the old "field_id" field's value of the ValidationRecord entity.
// If the ValidationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRecordMutation) OldFieldID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldID: %w", err)
	}
	return oldValue.FieldID, nil
}

// ResetFieldID resets all changes to the "field_id" field.
func (m *ValidationRecordMutation) ResetFieldID() {
	m.field_id = nil
}

// SetCollectionID sets the "collection_id" field.
func (m *ValidationRecordMutation) SetCollectionID(u uuid.UUID) {
	m.collection_id = &u
}

// CollectionID returns the value of the "collection_id" field in the mutation.
func (m *ValidationRecordMutation) CollectionID() (r uuid.UUID, exists bool) {
	v := m.collection_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectionID returns the old "collection_id" field's value of the ValidationRecord entity.
// If the ValidationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRecordMutation) OldCollectionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectionID: %w", err)
	}
	return oldValue.CollectionID, nil
}

// ClearCollectionID clears the value of the "collection_id" field.
func (m *ValidationRecordMutation) ClearCollectionID() {
	m.collection_id = nil
	m.clearedFields[validationrecord.FieldCollectionID] = struct{}{}
}

// CollectionIDCleared returns if the "collection_id" field was cleared in this mutation.
func (m *ValidationRecordMutation) CollectionIDCleared() bool {
	_, ok := m.clearedFields[validationrecord.FieldCollectionID]
	return ok
}

// ResetCollectionID resets all changes to the "collection_id" field.
func (m *ValidationRecordMutation) ResetCollectionID() {
	m.collection_id = nil
	delete(m.clearedFields, validationrecord.FieldCollectionID)
}

// SetRecordIndex sets the "record_index" field.
func (m *ValidationRecordMutation) SetRecordIndex(i int) {
	m.record_index = &i
	m.addrecord_index = nil
}

// RecordIndex returns the value of the "record_index" field in the mutation.
func (m *ValidationRecordMutation) RecordIndex() (r int, exists bool) {
	v := m.record_index
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordIndex returns the old "record_index" field's value of the ValidationRecord entity.
// If the ValidationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRecordMutation) OldRecordIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordIndex: %w", err)
	}
	return oldValue.RecordIndex, nil
}

// AddRecordIndex adds i to the "record_index" field.
func (m *ValidationRecordMutation) AddRecordIndex(i int) {
	if m.addrecord_index != nil {
		*m.addrecord_index += i
	} else {
		m.addrecord_index = &i
	}
}

// AddedRecordIndex returns the value that was added to the "record_index" field in this mutation.
func (m *ValidationRecordMutation) AddedRecordIndex() (r int, exists bool) {
	v := m.addrecord_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecordIndex resets all changes to the "record_index" field.
func (m *ValidationRecordMutation) ResetRecordIndex() {
	m.record_index = nil
	m.addrecord_index = nil
}

// SetFieldName sets the "field_name" field.
func (m *ValidationRecordMutation) SetFieldName(s string) {
	m.field_name = &s
}

// FieldName returns the value of the "field_name" field in the mutation.
func (m *ValidationRecordMutation) FieldName() (r string, exists bool) {
	v := m.field_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldName returns the old "field_name" field's value of the ValidationRecord entity.
// If the ValidationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRecordMutation) OldFieldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldName: %w", err)
	}
	return oldValue.FieldName, nil
}

// ResetFieldName resets all changes to the "field_name" field.
func (m *ValidationRecordMutation) ResetFieldName() {
	m.field_name = nil
}

// SetExtractedValue sets the "extracted_value" field.
func (m *ValidationRecordMutation) SetExtractedValue(s string) {
	m.extracted_value = &s
}

// ExtractedValue returns the value of the "extracted_value" field in the mutation.
func (m *ValidationRecordMutation) ExtractedValue() (r string, exists bool) {
	v := m.extracted_value
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedValue returns the old "extracted_value" field's value of the ValidationRecord entity.
// If the ValidationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRecordMutation) OldExtractedValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedValue: %w", err)
	}
	return oldValue.ExtractedValue, nil
}

// ClearExtractedValue clears the value of the "extracted_value" field.
func (m *ValidationRecordMutation) ClearExtractedValue() {
	m.extracted_value = nil
	m.clearedFields[validationrecord.FieldExtractedValue] = struct{}{}
}

// ExtractedValueCleared returns if the "extracted_value" field was cleared in this mutation.
func (m *ValidationRecordMutation) ExtractedValueCleared() bool {
	_, ok := m.clearedFields[validationrecord.FieldExtractedValue]
	return ok
}

// ResetExtractedValue resets all changes to the "extracted_value" field.
func (m *ValidationRecordMutation) ResetExtractedValue() {
	m.extracted_value = nil
	delete(m.clearedFields, validationrecord.FieldExtractedValue)
}

// SetValidationStatus sets the "validation_status" field.
func (m *ValidationRecordMutation) SetValidationStatus(s string) {
	m.validation_status = &s
}

// ValidationStatus returns the value of the "validation_status" field in the mutation.
func (m *ValidationRecordMutation) ValidationStatus() (r string, exists bool) {
	v := m.validation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationStatus returns the old "validation_status" field's value of the ValidationRecord entity.
// If the ValidationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRecordMutation) OldValidationStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationStatus: %w", err)
	}
	return oldValue.ValidationStatus, nil
}

// ResetValidationStatus resets all changes to the "validation_status" field.
func (m *ValidationRecordMutation) ResetValidationStatus() {
	m.validation_status = nil
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *ValidationRecordMutation) SetConfidenceScore(i int) {
	m.confidence_score = &i
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *ValidationRecordMutation) ConfidenceScore() (r int, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the ValidationRecord entity.
// If the ValidationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRecordMutation) OldConfidenceScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds i to the "confidence_score" field.
func (m *ValidationRecordMutation) AddConfidenceScore(i int) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += i
	} else {
		m.addconfidence_score = &i
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *ValidationRecordMutation) AddedConfidenceScore() (r int, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *ValidationRecordMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetReasoning sets the "reasoning" field.
func (m *ValidationRecordMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *ValidationRecordMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the ValidationRecord entity.
// If the ValidationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRecordMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *ValidationRecordMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[validationrecord.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *ValidationRecordMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[validationrecord.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *ValidationRecordMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, validationrecord.FieldReasoning)
}

// SetCreatedAt sets the "created_at" field.
func (m *ValidationRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ValidationRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ValidationRecord entity.
// If the ValidationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ValidationRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ValidationRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ValidationRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ValidationRecord entity.
// If the ValidationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ValidationRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ValidationRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSession clears the "session" edge to the ExtractionSession entity.
func (m *ValidationRecordMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[validationrecord.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ExtractionSession entity was cleared.
func (m *ValidationRecordMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ValidationRecordMutation) SessionIDs() (ids []uuid.UUID) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ValidationRecordMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the ValidationRecordMutation builder.
func (m *ValidationRecordMutation) Where(ps ...predicate.ValidationRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ValidationRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ValidationRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ValidationRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ValidationRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ValidationRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ValidationRecord).
func (m *ValidationRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ValidationRecordMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.session != nil {
		fields = append(fields, validationrecord.FieldSessionID)
	}
	if m.field_id != nil {
		fields = append(fields, validationrecord.FieldFieldID)
	}
	if m.collection_id != nil {
		fields = append(fields, validationrecord.FieldCollectionID)
	}
	if m.record_index != nil {
		fields = append(fields, validationrecord.FieldRecordIndex)
	}
	if m.field_name != nil {
		fields = append(fields, validationrecord.FieldFieldName)
	}
	if m.extracted_value != nil {
		fields = append(fields, validationrecord.FieldExtractedValue)
	}
	if m.validation_status != nil {
		fields = append(fields, validationrecord.FieldValidationStatus)
	}
	if m.confidence_score != nil {
		fields = append(fields, validationrecord.FieldConfidenceScore)
	}
	if m.reasoning != nil {
		fields = append(fields, validationrecord.FieldReasoning)
	}
	if m.created_at != nil {
		fields = append(fields, validationrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, validationrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ValidationRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case validationrecord.FieldSessionID:
		return m.SessionID()
	case validationrecord.FieldFieldID:
		return m.FieldID()
	case validationrecord.FieldCollectionID:
		return m.CollectionID()
	case validationrecord.FieldRecordIndex:
		return m.RecordIndex()
	case validationrecord.FieldFieldName:
		return m.FieldName()
	case validationrecord.FieldExtractedValue:
		return m.ExtractedValue()
	case validationrecord.FieldValidationStatus:
		return m.ValidationStatus()
	case validationrecord.FieldConfidenceScore:
		return m.ConfidenceScore()
	case validationrecord.FieldReasoning:
		return m.Reasoning()
	case validationrecord.FieldCreatedAt:
		return m.CreatedAt()
	case validationrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ValidationRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case validationrecord.FieldSessionID:
		return m.OldSessionID(ctx)
	case validationrecord.FieldFieldID:
		return m.OldFieldID(ctx)
	case validationrecord.FieldCollectionID:
		return m.OldCollectionID(ctx)
	case validationrecord.FieldRecordIndex:
		return m.OldRecordIndex(ctx)
	case validationrecord.FieldFieldName:
		return m.OldFieldName(ctx)
	case validationrecord.FieldExtractedValue:
		return m.OldExtractedValue(ctx)
	case validationrecord.FieldValidationStatus:
		return m.OldValidationStatus(ctx)
	case validationrecord.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case validationrecord.FieldReasoning:
		return m.OldReasoning(ctx)
	case validationrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case validationrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ValidationRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case validationrecord.FieldSessionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case validationrecord.FieldFieldID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldID(v)
		return nil
	case validationrecord.FieldCollectionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectionID(v)
		return nil
	case validationrecord.FieldRecordIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordIndex(v)
		return nil
	case validationrecord.FieldFieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldName(v)
		return nil
	case validationrecord.FieldExtractedValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedValue(v)
		return nil
	case validationrecord.FieldValidationStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationStatus(v)
		return nil
	case validationrecord.FieldConfidenceScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case validationrecord.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case validationrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case validationrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ValidationRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ValidationRecordMutation) AddedFields() []string {
	var fields []string
	if m.addrecord_index != nil {
		fields = append(fields, validationrecord.FieldRecordIndex)
	}
	if m.addconfidence_score != nil {
		fields = append(fields, validationrecord.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ValidationRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case validationrecord.FieldRecordIndex:
		return m.AddedRecordIndex()
	case validationrecord.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ValidationRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case validationrecord.FieldRecordIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecordIndex(v)
		return nil
	case validationrecord.FieldConfidenceScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown ValidationRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ValidationRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(validationrecord.FieldCollectionID) {
		fields = append(fields, validationrecord.FieldCollectionID)
	}
	if m.FieldCleared(validationrecord.FieldExtractedValue) {
		fields = append(fields, validationrecord.FieldExtractedValue)
	}
	if m.FieldCleared(validationrecord.FieldReasoning) {
		fields = append(fields, validationrecord.FieldReasoning)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ValidationRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ValidationRecordMutation) ClearField(name string) error {
	switch name {
	case validationrecord.FieldCollectionID:
		m.ClearCollectionID()
		return nil
	case validationrecord.FieldExtractedValue:
		m.ClearExtractedValue()
		return nil
	case validationrecord.FieldReasoning:
		m.ClearReasoning()
		return nil
	}
	return fmt.Errorf("unknown ValidationRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ValidationRecordMutation) ResetField(name string) error {
	switch name {
	case validationrecord.FieldSessionID:
		m.ResetSessionID()
		return nil
	case validationrecord.FieldFieldID:
		m.ResetFieldID()
		return nil
	case validationrecord.FieldCollectionID:
		m.ResetCollectionID()
		return nil
	case validationrecord.FieldRecordIndex:
		m.ResetRecordIndex()
		return nil
	case validationrecord.FieldFieldName:
		m.ResetFieldName()
		return nil
	case validationrecord.FieldExtractedValue:
		m.ResetExtractedValue()
		return nil
	case validationrecord.FieldValidationStatus:
		m.ResetValidationStatus()
		return nil
	case validationrecord.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case validationrecord.FieldReasoning:
		m.ResetReasoning()
		return nil
	case validationrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case validationrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ValidationRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ValidationRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, validationrecord.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ValidationRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case validationrecord.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ValidationRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ValidationRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ValidationRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, validationrecord.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ValidationRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case validationrecord.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ValidationRecordMutation) ClearEdge(name string) error {
	switch name {
	case validationrecord.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown ValidationRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ValidationRecordMutation) ResetEdge(name string) error {
	switch name {
	case validationrecord.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown ValidationRecord edge %s", name)
}
