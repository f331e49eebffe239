package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/extractly-io/extractly/gen/ent"
	"github.com/extractly-io/extractly/gen/ent/collection"
	"github.com/extractly-io/extractly/gen/ent/collectionproperty"
	"github.com/extractly-io/extractly/gen/ent/project"
	"github.com/extractly-io/extractly/gen/ent/schemafield"
)

// Project carries the writable attributes of a project row.
type Project struct {
	Name         string
	Description  string
	InboxAddress string
}

// SchemaField carries the writable attributes of one schema field or
// collection property.
type SchemaField struct {
	Name        string
	Type        string
	Description string
	Choices     []string
	Required    bool
	Position    int
}

type ProjectRepository interface {
	CreateProject(ctx context.Context, p *Project) (*ent.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Project, error)
	GetByInboxAddress(ctx context.Context, address string) (*ent.Project, error)
	ListProjects(ctx context.Context) ([]*ent.Project, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	AddField(ctx context.Context, projectID uuid.UUID, f *SchemaField) (*ent.SchemaField, error)
	ListFields(ctx context.Context, projectID uuid.UUID) ([]*ent.SchemaField, error)
	AddCollection(ctx context.Context, projectID uuid.UUID, name, description string) (*ent.Collection, error)
	AddProperty(ctx context.Context, collectionID uuid.UUID, f *SchemaField) (*ent.CollectionProperty, error)
	ListCollections(ctx context.Context, projectID uuid.UUID) ([]*ent.Collection, error)
}

type projectRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProjectRepository(client *ent.Client, logger *slog.Logger) ProjectRepository {
	return &projectRepository{
		client: client,
		logger: logger,
	}
}

func (r *projectRepository) CreateProject(ctx context.Context, p *Project) (*ent.Project, error) {
	create := r.client.Project.Create().
		SetName(p.Name).
		SetDescription(p.Description)
	if p.InboxAddress != "" {
		create.SetInboxAddress(p.InboxAddress)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create project", "name", p.Name, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Project, error) {
	return r.client.Project.
		Query().
		Where(project.ID(id)).
		Only(ctx)
}

func (r *projectRepository) GetByInboxAddress(ctx context.Context, address string) (*ent.Project, error) {
	row, err := r.client.Project.
		Query().
		Where(project.InboxAddress(address)).
		Only(ctx)
	if err != nil {
		r.logger.Warn("no project for inbox address", "address", address, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *projectRepository) ListProjects(ctx context.Context) ([]*ent.Project, error) {
	plist, err := r.client.Project.Query().Order(project.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list projects", "error", err)
		return nil, err
	}
	return plist, nil
}

func (r *projectRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.Project.Query().Where(project.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check project existence", "project_id", id, "error", err)
		return false, err
	}
	return exists, nil
}

func (r *projectRepository) AddField(ctx context.Context, projectID uuid.UUID, f *SchemaField) (*ent.SchemaField, error) {
	row, err := r.client.SchemaField.Create().
		SetProjectID(projectID).
		SetName(f.Name).
		SetFieldType(f.Type).
		SetDescription(f.Description).
		SetChoices(f.Choices).
		SetRequired(f.Required).
		SetPosition(f.Position).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to add schema field", "project_id", projectID, "name", f.Name, "error", err)
		return nil, err
	}
	r.logger.Info("schema field added", "project_id", projectID, "field_id", row.ID, "name", f.Name, "type", f.Type)
	return row, nil
}

func (r *projectRepository) ListFields(ctx context.Context, projectID uuid.UUID) ([]*ent.SchemaField, error) {
	return r.client.SchemaField.Query().
		Where(schemafield.ProjectID(projectID)).
		Order(schemafield.ByPosition(), schemafield.ByName()).
		All(ctx)
}

func (r *projectRepository) AddCollection(ctx context.Context, projectID uuid.UUID, name, description string) (*ent.Collection, error) {
	row, err := r.client.Collection.Create().
		SetProjectID(projectID).
		SetName(name).
		SetDescription(description).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to add collection", "project_id", projectID, "name", name, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *projectRepository) AddProperty(ctx context.Context, collectionID uuid.UUID, f *SchemaField) (*ent.CollectionProperty, error) {
	row, err := r.client.CollectionProperty.Create().
		SetCollectionID(collectionID).
		SetName(f.Name).
		SetPropertyType(f.Type).
		SetDescription(f.Description).
		SetChoices(f.Choices).
		SetRequired(f.Required).
		SetPosition(f.Position).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to add collection property", "collection_id", collectionID, "name", f.Name, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *projectRepository) ListCollections(ctx context.Context, projectID uuid.UUID) ([]*ent.Collection, error) {
	return r.client.Collection.Query().
		Where(collection.ProjectID(projectID)).
		WithProperties(func(q *ent.CollectionPropertyQuery) {
			q.Order(collectionproperty.ByPosition(), collectionproperty.ByName())
		}).
		Order(collection.ByName()).
		All(ctx)
}
