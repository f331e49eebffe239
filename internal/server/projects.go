package server

import (
	"context"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/extractly-io/extractly/constants"
	extractlypb "github.com/extractly-io/extractly/gen/proto/extractly/v1"

	"github.com/extractly-io/extractly/gen/ent"
	"github.com/extractly-io/extractly/internal/common"
	"github.com/extractly-io/extractly/internal/inbox"
	"github.com/extractly-io/extractly/internal/repository"
)

type ProjectsServer struct {
	extractlypb.UnimplementedProjectsServiceServer
	projects repository.ProjectRepository
	rules    repository.RuleRepository
	inboxes  inbox.Provider
	logger   *slog.Logger
}

func NewProjectsServer(projects repository.ProjectRepository, rules repository.RuleRepository, inboxes inbox.Provider, logger *slog.Logger) *ProjectsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectsServer{
		projects: projects,
		rules:    rules,
		inboxes:  inboxes,
		logger:   logger,
	}
}

// CreateProject creates a project; with create_inbox set it also provisions
// an email inbox address bound to the project.
func (s *ProjectsServer) CreateProject(ctx context.Context, req *extractlypb.CreateProjectRequest) (*extractlypb.CreateProjectResponse, error) {
	if req.GetName() == "" {
		return nil, common.InvalidArgumentError("name is required")
	}

	p := &repository.Project{
		Name:        req.GetName(),
		Description: req.GetDescription(),
	}
	if req.GetCreateInbox() {
		if s.inboxes == nil {
			return nil, common.FailedPreconditionError("email intake is not configured")
		}
		address, err := s.inboxes.CreateInbox(ctx, req.GetName())
		if err != nil {
			s.logger.Error("inbox provisioning failed", "project", req.GetName(), "error", err)
			return nil, common.InternalError("inbox provisioning failed")
		}
		p.InboxAddress = address
	}

	row, err := s.projects.CreateProject(ctx, p)
	if err != nil {
		s.logger.Error("create project failed", "name", req.GetName(), "error", err)
		return nil, common.InternalError("create project failed")
	}
	return &extractlypb.CreateProjectResponse{Project: toPBProject(row)}, nil
}

func (s *ProjectsServer) GetProject(ctx context.Context, req *extractlypb.GetProjectRequest) (*extractlypb.GetProjectResponse, error) {
	id, err := parseID(req.GetProjectId(), "project_id")
	if err != nil {
		return nil, err
	}
	row, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("project not found")
		}
		return nil, common.InternalError("get project failed")
	}
	return &extractlypb.GetProjectResponse{Project: toPBProject(row)}, nil
}

func (s *ProjectsServer) ListProjects(ctx context.Context, _ *extractlypb.ListProjectsRequest) (*extractlypb.ListProjectsResponse, error) {
	rows, err := s.projects.ListProjects(ctx)
	if err != nil {
		return nil, common.InternalError("list projects failed")
	}
	out := make([]*extractlypb.Project, 0, len(rows))
	for _, row := range rows {
		out = append(out, toPBProject(row))
	}
	return &extractlypb.ListProjectsResponse{Projects: out}, nil
}

func (s *ProjectsServer) AddField(ctx context.Context, req *extractlypb.AddFieldRequest) (*extractlypb.AddFieldResponse, error) {
	projectID, err := parseID(req.GetProjectId(), "project_id")
	if err != nil {
		return nil, err
	}
	if err := validateFieldInput(req.GetName(), req.GetFieldType(), req.GetChoices()); err != nil {
		return nil, err
	}

	row, err := s.projects.AddField(ctx, projectID, &repository.SchemaField{
		Name:        req.GetName(),
		Type:        req.GetFieldType(),
		Description: req.GetDescription(),
		Choices:     req.GetChoices(),
		Required:    req.GetRequired(),
		Position:    int(req.GetPosition()),
	})
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, common.InvalidArgumentError("a field with this name already exists")
		}
		s.logger.Error("add field failed", "project_id", projectID, "error", err)
		return nil, common.InternalError("add field failed")
	}
	return &extractlypb.AddFieldResponse{Field: toPBField(row)}, nil
}

func (s *ProjectsServer) AddCollection(ctx context.Context, req *extractlypb.AddCollectionRequest) (*extractlypb.AddCollectionResponse, error) {
	projectID, err := parseID(req.GetProjectId(), "project_id")
	if err != nil {
		return nil, err
	}
	if req.GetName() == "" {
		return nil, common.InvalidArgumentError("name is required")
	}

	row, err := s.projects.AddCollection(ctx, projectID, req.GetName(), req.GetDescription())
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, common.InvalidArgumentError("a collection with this name already exists")
		}
		s.logger.Error("add collection failed", "project_id", projectID, "error", err)
		return nil, common.InternalError("add collection failed")
	}
	return &extractlypb.AddCollectionResponse{Collection: toPBCollection(row)}, nil
}

func (s *ProjectsServer) AddCollectionProperty(ctx context.Context, req *extractlypb.AddCollectionPropertyRequest) (*extractlypb.AddCollectionPropertyResponse, error) {
	collectionID, err := parseID(req.GetCollectionId(), "collection_id")
	if err != nil {
		return nil, err
	}
	if err := validateFieldInput(req.GetName(), req.GetPropertyType(), req.GetChoices()); err != nil {
		return nil, err
	}

	row, err := s.projects.AddProperty(ctx, collectionID, &repository.SchemaField{
		Name:        req.GetName(),
		Type:        req.GetPropertyType(),
		Description: req.GetDescription(),
		Choices:     req.GetChoices(),
		Required:    req.GetRequired(),
		Position:    int(req.GetPosition()),
	})
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, common.InvalidArgumentError("a property with this name already exists")
		}
		s.logger.Error("add property failed", "collection_id", collectionID, "error", err)
		return nil, common.InternalError("add property failed")
	}
	return &extractlypb.AddCollectionPropertyResponse{Property: toPBProperty(row)}, nil
}

func (s *ProjectsServer) GetProjectSchema(ctx context.Context, req *extractlypb.GetProjectSchemaRequest) (*extractlypb.GetProjectSchemaResponse, error) {
	projectID, err := parseID(req.GetProjectId(), "project_id")
	if err != nil {
		return nil, err
	}
	fields, err := s.projects.ListFields(ctx, projectID)
	if err != nil {
		return nil, common.InternalError("list fields failed")
	}
	collections, err := s.projects.ListCollections(ctx, projectID)
	if err != nil {
		return nil, common.InternalError("list collections failed")
	}

	resp := &extractlypb.GetProjectSchemaResponse{}
	for _, f := range fields {
		resp.Fields = append(resp.Fields, toPBField(f))
	}
	for _, c := range collections {
		resp.Collections = append(resp.Collections, toPBCollection(c))
	}
	return resp, nil
}

func (s *ProjectsServer) AddExtractionRule(ctx context.Context, req *extractlypb.AddExtractionRuleRequest) (*extractlypb.AddExtractionRuleResponse, error) {
	projectID, err := parseID(req.GetProjectId(), "project_id")
	if err != nil {
		return nil, err
	}
	if req.GetRuleName() == "" || req.GetRuleContent() == "" {
		return nil, common.InvalidArgumentError("rule_name and rule_content are required")
	}

	row, err := s.rules.AddRule(ctx, projectID, req.GetRuleName(), req.GetTargetField(), req.GetRuleContent())
	if err != nil {
		s.logger.Error("add rule failed", "project_id", projectID, "error", err)
		return nil, common.InternalError("add rule failed")
	}
	return &extractlypb.AddExtractionRuleResponse{RuleId: row.ID.String()}, nil
}

func (s *ProjectsServer) AddKnowledgeDocument(ctx context.Context, req *extractlypb.AddKnowledgeDocumentRequest) (*extractlypb.AddKnowledgeDocumentResponse, error) {
	projectID, err := parseID(req.GetProjectId(), "project_id")
	if err != nil {
		return nil, err
	}
	if req.GetDisplayName() == "" || req.GetContent() == "" {
		return nil, common.InvalidArgumentError("display_name and content are required")
	}

	row, err := s.rules.AddKnowledge(ctx, projectID, req.GetDisplayName(), req.GetContent(), req.GetTargetField())
	if err != nil {
		s.logger.Error("add knowledge failed", "project_id", projectID, "error", err)
		return nil, common.InternalError("add knowledge failed")
	}
	return &extractlypb.AddKnowledgeDocumentResponse{KnowledgeId: row.ID.String()}, nil
}

func parseID(raw, label string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentError(label + " is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError(label + " must be a UUID")
	}
	return id, nil
}

func validateFieldInput(name, fieldType string, choices []string) error {
	if name == "" {
		return common.InvalidArgumentError("name is required")
	}
	if !slices.Contains(constants.FieldTypes, fieldType) {
		return common.InvalidArgumentError("field type must be one of TEXT, NUMBER, DATE, BOOLEAN, CHOICE")
	}
	if fieldType == constants.FieldTypeChoice && len(choices) == 0 {
		return common.InvalidArgumentError("CHOICE fields require at least one choice")
	}
	return nil
}
