package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/extractly-io/extractly/gen/ent"
	"github.com/extractly-io/extractly/gen/ent/extractionrule"
	"github.com/extractly-io/extractly/gen/ent/knowledgedocument"
)

type RuleRepository interface {
	AddRule(ctx context.Context, projectID uuid.UUID, name, targetField, content string) (*ent.ExtractionRule, error)
	ListActiveRules(ctx context.Context, projectID uuid.UUID) ([]*ent.ExtractionRule, error)
	SetRuleActive(ctx context.Context, ruleID uuid.UUID, active bool) error

	AddKnowledge(ctx context.Context, projectID uuid.UUID, displayName, content, targetField string) (*ent.KnowledgeDocument, error)
	ListKnowledge(ctx context.Context, projectID uuid.UUID) ([]*ent.KnowledgeDocument, error)
}

type ruleRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewRuleRepository(client *ent.Client, logger *slog.Logger) RuleRepository {
	return &ruleRepository{
		client: client,
		logger: logger,
	}
}

func (r *ruleRepository) AddRule(ctx context.Context, projectID uuid.UUID, name, targetField, content string) (*ent.ExtractionRule, error) {
	row, err := r.client.ExtractionRule.Create().
		SetProjectID(projectID).
		SetRuleName(name).
		SetTargetField(targetField).
		SetRuleContent(content).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to add extraction rule", "project_id", projectID, "rule_name", name, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *ruleRepository) ListActiveRules(ctx context.Context, projectID uuid.UUID) ([]*ent.ExtractionRule, error) {
	return r.client.ExtractionRule.Query().
		Where(
			extractionrule.ProjectID(projectID),
			extractionrule.IsActive(true),
		).
		Order(extractionrule.ByCreatedAt()).
		All(ctx)
}

func (r *ruleRepository) SetRuleActive(ctx context.Context, ruleID uuid.UUID, active bool) error {
	_, err := r.client.ExtractionRule.UpdateOneID(ruleID).
		SetIsActive(active).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to toggle extraction rule", "rule_id", ruleID, "active", active, "error", err)
	}
	return err
}

func (r *ruleRepository) AddKnowledge(ctx context.Context, projectID uuid.UUID, displayName, content, targetField string) (*ent.KnowledgeDocument, error) {
	row, err := r.client.KnowledgeDocument.Create().
		SetProjectID(projectID).
		SetDisplayName(displayName).
		SetContent(content).
		SetTargetField(targetField).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to add knowledge document", "project_id", projectID, "display_name", displayName, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *ruleRepository) ListKnowledge(ctx context.Context, projectID uuid.UUID) ([]*ent.KnowledgeDocument, error) {
	return r.client.KnowledgeDocument.Query().
		Where(knowledgedocument.ProjectID(projectID)).
		Order(knowledgedocument.ByCreatedAt()).
		All(ctx)
}
