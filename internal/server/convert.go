package server

import (
	"time"

	extractlypb "github.com/extractly-io/extractly/gen/proto/extractly/v1"

	"github.com/extractly-io/extractly/gen/ent"
)

func toPBProject(row *ent.Project) *extractlypb.Project {
	p := &extractlypb.Project{
		Id:          row.ID.String(),
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   row.CreatedAt.Format(time.RFC3339Nano),
	}
	if row.InboxAddress != nil {
		p.InboxAddress = *row.InboxAddress
	}
	return p
}

func toPBField(row *ent.SchemaField) *extractlypb.SchemaField {
	return &extractlypb.SchemaField{
		Id:          row.ID.String(),
		ProjectId:   row.ProjectID.String(),
		Name:        row.Name,
		FieldType:   row.FieldType,
		Description: row.Description,
		Choices:     row.Choices,
		Required:    row.Required,
		Position:    int32(row.Position),
	}
}

func toPBProperty(row *ent.CollectionProperty) *extractlypb.CollectionProperty {
	return &extractlypb.CollectionProperty{
		Id:           row.ID.String(),
		CollectionId: row.CollectionID.String(),
		Name:         row.Name,
		PropertyType: row.PropertyType,
		Description:  row.Description,
		Choices:      row.Choices,
		Required:     row.Required,
		Position:     int32(row.Position),
	}
}

func toPBCollection(row *ent.Collection) *extractlypb.Collection {
	c := &extractlypb.Collection{
		Id:          row.ID.String(),
		ProjectId:   row.ProjectID.String(),
		Name:        row.Name,
		Description: row.Description,
	}
	for _, p := range row.Edges.Properties {
		c.Properties = append(c.Properties, toPBProperty(p))
	}
	return c
}

func toPBSession(row *ent.ExtractionSession) *extractlypb.Session {
	s := &extractlypb.Session{
		Id:        row.ID.String(),
		ProjectId: row.ProjectID.String(),
		Name:      row.Name,
		Status:    row.Status,
		CreatedAt: row.CreatedAt.Format(time.RFC3339Nano),
	}
	if row.ProgressMessage != nil {
		s.ProgressMessage = *row.ProgressMessage
	}
	if row.ErrorMessage != nil {
		s.ErrorMessage = *row.ErrorMessage
	}
	if row.ModelName != nil {
		s.ModelName = *row.ModelName
	}
	if row.StartedAt != nil {
		s.StartedAt = row.StartedAt.Format(time.RFC3339Nano)
	}
	if row.FinishedAt != nil {
		s.FinishedAt = row.FinishedAt.Format(time.RFC3339Nano)
	}
	return s
}

func toPBRecord(row *ent.ValidationRecord) *extractlypb.ValidationRecord {
	r := &extractlypb.ValidationRecord{
		Id:               row.ID.String(),
		SessionId:        row.SessionID.String(),
		FieldId:          row.FieldID.String(),
		RecordIndex:      int32(row.RecordIndex),
		FieldName:        row.FieldName,
		ExtractedValue:   row.ExtractedValue,
		ValidationStatus: row.ValidationStatus,
		ConfidenceScore:  int32(row.ConfidenceScore),
		Reasoning:        row.Reasoning,
	}
	if row.CollectionID != nil {
		r.CollectionId = row.CollectionID.String()
	}
	return r
}
