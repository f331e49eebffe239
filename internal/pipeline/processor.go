// Package pipeline runs the extraction of one session end to end: load the
// project's target schema and documents, build the prompt, call the model,
// and persist the per-field validation records.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/extractly-io/extractly/constants"
	"github.com/extractly-io/extractly/gen/ent"
	"github.com/extractly-io/extractly/internal/common"
	"github.com/extractly-io/extractly/internal/llm"
	"github.com/extractly-io/extractly/internal/prompt"
	"github.com/extractly-io/extractly/internal/repository"
	"github.com/extractly-io/extractly/internal/schema"
)

type Processor struct {
	sessions  repository.SessionRepository
	projects  repository.ProjectRepository
	documents repository.DocumentRepository
	records   repository.RecordRepository
	rules     repository.RuleRepository
	extractor llm.Extractor
	modelName string
	log       *slog.Logger
}

func NewProcessor(
	sessions repository.SessionRepository,
	projects repository.ProjectRepository,
	documents repository.DocumentRepository,
	records repository.RecordRepository,
	rules repository.RuleRepository,
	extractor llm.Extractor,
	modelName string,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		sessions:  sessions,
		projects:  projects,
		documents: documents,
		records:   records,
		rules:     rules,
		extractor: extractor,
		modelName: modelName,
		log:       logger,
	}
}

// ProcessSession runs one session to a terminal status and reports how many
// validation records it wrote. A session that is already terminal is left
// alone, so queue redeliveries are harmless. A model or schema failure marks
// the session failed; an infrastructure failure marks it error and returns
// the cause to the caller.
func (p *Processor) ProcessSession(ctx context.Context, sessionID uuid.UUID) (int, error) {
	start := time.Now()

	if err := p.sessions.MarkProcessing(ctx, sessionID, "loading project schema"); err != nil {
		if errors.Is(err, common.ErrTerminalStatus) {
			p.log.Info("pipeline.already_terminal", "session_id", sessionID)
			return 0, nil
		}
		return 0, fmt.Errorf("mark processing: %w", err)
	}
	if err := p.sessions.SetModelName(ctx, sessionID, p.modelName); err != nil {
		p.log.Warn("pipeline.set_model_failed", "session_id", sessionID, "error", err)
	}

	session, err := p.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return 0, p.fail(ctx, sessionID, constants.SessionStatusError, "load session", err)
	}

	def, err := schema.Load(ctx, p.projects, session.ProjectID)
	if err != nil {
		return 0, p.fail(ctx, sessionID, constants.SessionStatusError, "load target schema", err)
	}
	if len(def.Fields) == 0 && len(def.Collections) == 0 {
		return 0, p.fail(ctx, sessionID, constants.SessionStatusFailed, "project has no target schema", nil)
	}

	docs, err := p.documents.ListBySession(ctx, sessionID)
	if err != nil {
		return 0, p.fail(ctx, sessionID, constants.SessionStatusError, "load documents", err)
	}
	if len(docs) == 0 {
		return 0, p.fail(ctx, sessionID, constants.SessionStatusFailed, "session has no documents", nil)
	}

	if err := p.sessions.SetProgress(ctx, sessionID, "building extraction prompt"); err != nil {
		p.log.Warn("pipeline.progress_failed", "session_id", sessionID, "error", err)
	}

	req, err := p.buildRequest(ctx, def, session.ProjectID, sessionID, docs)
	if err != nil {
		return 0, p.fail(ctx, sessionID, constants.SessionStatusError, "build prompt", err)
	}

	if err := p.sessions.SetProgress(ctx, sessionID, "extracting fields"); err != nil {
		p.log.Warn("pipeline.progress_failed", "session_id", sessionID, "error", err)
	}

	result, _, err := p.extractor.Extract(ctx, req)
	if err != nil {
		return 0, p.fail(ctx, sessionID, constants.SessionStatusFailed, "extraction failed", err)
	}

	recs := p.toRecords(def, result)
	if err := p.records.ReplaceForSession(ctx, sessionID, recs); err != nil {
		return 0, p.fail(ctx, sessionID, constants.SessionStatusError, "persist records", err)
	}

	if err := p.sessions.Finish(ctx, sessionID, constants.SessionStatusCompleted, ""); err != nil {
		return 0, fmt.Errorf("finish session: %w", err)
	}
	p.log.Info("pipeline.session_ok",
		"session_id", sessionID,
		"records", len(recs),
		"documents", len(docs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return len(recs), nil
}

func (p *Processor) buildRequest(ctx context.Context, def *schema.Definition, projectID, sessionID uuid.UUID, docs []*ent.SessionDocument) (llm.ExtractRequest, error) {
	ruleRows, err := p.rules.ListActiveRules(ctx, projectID)
	if err != nil {
		return llm.ExtractRequest{}, fmt.Errorf("load rules: %w", err)
	}
	knowRows, err := p.rules.ListKnowledge(ctx, projectID)
	if err != nil {
		return llm.ExtractRequest{}, fmt.Errorf("load knowledge: %w", err)
	}

	// verified values from a previous run of this session survive as
	// reference data for @-substitution and context
	recRows, err := p.records.ListBySession(ctx, sessionID)
	if err != nil {
		return llm.ExtractRequest{}, fmt.Errorf("load prior records: %w", err)
	}
	refs := make(map[string]string)
	for _, rec := range recRows {
		if rec.ValidationStatus == string(constants.ValidationStatusVerified) && rec.CollectionID == nil {
			refs[rec.FieldName] = rec.ExtractedValue
		}
	}

	req := prompt.BuildRequest{Definition: def, References: refs}
	for _, r := range ruleRows {
		req.Rules = append(req.Rules, prompt.Rule{
			Name:        r.RuleName,
			TargetField: r.TargetField,
			Content:     r.RuleContent,
		})
	}
	for _, k := range knowRows {
		req.Knowledge = append(req.Knowledge, prompt.Knowledge{
			Title:       k.DisplayName,
			Content:     k.Content,
			TargetField: k.TargetField,
		})
	}
	for _, d := range docs {
		req.Documents = append(req.Documents, prompt.Document{
			Name:    d.FileName,
			MIME:    d.MimeType,
			Content: d.ExtractedContent,
		})
	}

	return llm.ExtractRequest{
		Prompt:     prompt.BuildExtractionPrompt(req),
		Schema:     schema.BuildJSONSchema(def),
		Definition: def,
	}, nil
}

func (p *Processor) fail(ctx context.Context, sessionID uuid.UUID, status constants.SessionStatus, msg string, cause error) error {
	errMsg := msg
	if cause != nil {
		errMsg = fmt.Sprintf("%s: %v", msg, cause)
	}
	if err := p.sessions.Finish(ctx, sessionID, status, errMsg); err != nil {
		p.log.Error("pipeline.finish_failed", "session_id", sessionID, "status", status, "error", err)
	}
	p.log.Error("pipeline.session_failed", "session_id", sessionID, "status", status, "error", errMsg)
	if status == constants.SessionStatusError && cause != nil {
		return fmt.Errorf("%s: %w", msg, cause)
	}
	return nil
}

// toRecords flattens a model result into validation records: one per
// top-level field, one per collection item property. Values below the
// minimum confidence are parked for review instead of marked valid; values
// the model returned for names outside the schema are dropped.
func (p *Processor) toRecords(def *schema.Definition, result llm.ExtractionResult) []repository.Record {
	var recs []repository.Record

	names := make([]string, 0, len(result.Fields))
	for name := range result.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fd, ok := def.FieldByName(name)
		if !ok {
			p.log.Warn("pipeline.unknown_field_dropped", "field", name)
			continue
		}
		recs = append(recs, toRecord(fd, nil, 0, result.Fields[name]))
	}

	collNames := make([]string, 0, len(result.Collections))
	for name := range result.Collections {
		collNames = append(collNames, name)
	}
	sort.Strings(collNames)
	for _, name := range collNames {
		cd, ok := def.CollectionByName(name)
		if !ok {
			p.log.Warn("pipeline.unknown_collection_dropped", "collection", name)
			continue
		}
		for idx, item := range result.Collections[name] {
			propNames := make([]string, 0, len(item))
			for prop := range item {
				propNames = append(propNames, prop)
			}
			sort.Strings(propNames)
			for _, propName := range propNames {
				var pd schema.FieldDef
				found := false
				for _, cand := range cd.Properties {
					if cand.Name == propName {
						pd, found = cand, true
						break
					}
				}
				if !found {
					p.log.Warn("pipeline.unknown_property_dropped", "collection", name, "property", propName)
					continue
				}
				collID := cd.ID
				recs = append(recs, toRecord(pd, &collID, idx, item[propName]))
			}
		}
	}
	return recs
}

func toRecord(fd schema.FieldDef, collectionID *uuid.UUID, index int, v llm.ExtractedValue) repository.Record {
	status := constants.ValidationStatusValid
	if v.Confidence < constants.MinConfidenceScore {
		status = constants.ValidationStatusReview
	}
	return repository.Record{
		FieldID:         fd.ID,
		CollectionID:    collectionID,
		RecordIndex:     index,
		FieldName:       fd.Name,
		ExtractedValue:  stringifyValue(v.Value),
		Status:          string(status),
		ConfidenceScore: v.Confidence,
		Reasoning:       v.Reasoning,
	}
}

// stringifyValue renders an extracted value for the text column. Strings
// pass through; everything else round-trips through JSON.
func stringifyValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	}
}
