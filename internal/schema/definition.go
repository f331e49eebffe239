package schema

import (
	"context"

	"github.com/google/uuid"

	"github.com/extractly-io/extractly/internal/repository"
)

// FieldDef is one typed field (top-level or collection property) of a
// project's target schema.
type FieldDef struct {
	ID          uuid.UUID
	Name        string
	Type        string
	Description string
	Choices     []string
	Required    bool
}

// CollectionDef is a repeated-record group with its typed properties.
type CollectionDef struct {
	ID          uuid.UUID
	Name        string
	Description string
	Properties  []FieldDef
}

// Definition is the complete target schema of one project.
type Definition struct {
	ProjectID   uuid.UUID
	Fields      []FieldDef
	Collections []CollectionDef
}

// FieldByName returns the top-level field with the given name.
func (d *Definition) FieldByName(name string) (FieldDef, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDef{}, false
}

// CollectionByName returns the collection with the given name.
func (d *Definition) CollectionByName(name string) (CollectionDef, bool) {
	for _, c := range d.Collections {
		if c.Name == name {
			return c, true
		}
	}
	return CollectionDef{}, false
}

// FieldNames lists the top-level field names in schema order.
func (d *Definition) FieldNames() []string {
	names := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		names = append(names, f.Name)
	}
	return names
}

// Load assembles a project's definition from the repository.
func Load(ctx context.Context, repo repository.ProjectRepository, projectID uuid.UUID) (*Definition, error) {
	fields, err := repo.ListFields(ctx, projectID)
	if err != nil {
		return nil, err
	}
	collections, err := repo.ListCollections(ctx, projectID)
	if err != nil {
		return nil, err
	}

	def := &Definition{ProjectID: projectID}
	for _, f := range fields {
		def.Fields = append(def.Fields, fieldDefFromEnt(f.ID, f.Name, f.FieldType, f.Description, f.Choices, f.Required))
	}
	for _, c := range collections {
		cd := CollectionDef{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
		}
		for _, p := range c.Edges.Properties {
			cd.Properties = append(cd.Properties, fieldDefFromEnt(p.ID, p.Name, p.PropertyType, p.Description, p.Choices, p.Required))
		}
		def.Collections = append(def.Collections, cd)
	}
	return def, nil
}

func fieldDefFromEnt(id uuid.UUID, name, typ, description string, choices []string, required bool) FieldDef {
	return FieldDef{
		ID:          id,
		Name:        name,
		Type:        typ,
		Description: description,
		Choices:     choices,
		Required:    required,
	}
}
