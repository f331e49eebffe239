package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/extractly-io/extractly/gen/ent"
	"github.com/extractly-io/extractly/gen/ent/validationrecord"
)

// Record carries the writable attributes of one validation record.
type Record struct {
	FieldID         uuid.UUID
	CollectionID    *uuid.UUID
	RecordIndex     int
	FieldName       string
	ExtractedValue  string
	Status          string
	ConfidenceScore int
	Reasoning       string
}

type RecordRepository interface {
	// ReplaceForSession drops any previous results of the session and writes
	// the new set in one transaction.
	ReplaceForSession(ctx context.Context, sessionID uuid.UUID, records []Record) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*ent.ValidationRecord, error)
	ListByField(ctx context.Context, sessionID, fieldID uuid.UUID) ([]*ent.ValidationRecord, error)
}

type recordRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewRecordRepository(client *ent.Client, logger *slog.Logger) RecordRepository {
	return &recordRepository{
		client: client,
		logger: logger,
	}
}

func (r *recordRepository) ReplaceForSession(ctx context.Context, sessionID uuid.UUID, records []Record) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.ValidationRecord.Delete().
		Where(validationrecord.SessionID(sessionID)).
		Exec(ctx); err != nil {
		r.logger.Error("failed to clear validation records", "session_id", sessionID, "error", err)
		return rollback(tx, err)
	}

	builders := make([]*ent.ValidationRecordCreate, 0, len(records))
	for _, rec := range records {
		b := tx.ValidationRecord.Create().
			SetSessionID(sessionID).
			SetFieldID(rec.FieldID).
			SetRecordIndex(rec.RecordIndex).
			SetFieldName(rec.FieldName).
			SetExtractedValue(rec.ExtractedValue).
			SetValidationStatus(rec.Status).
			SetConfidenceScore(rec.ConfidenceScore).
			SetReasoning(rec.Reasoning)
		if rec.CollectionID != nil {
			b.SetCollectionID(*rec.CollectionID)
		}
		builders = append(builders, b)
	}
	if _, err := tx.ValidationRecord.CreateBulk(builders...).Save(ctx); err != nil {
		r.logger.Error("failed to write validation records", "session_id", sessionID, "count", len(records), "error", err)
		return rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	r.logger.Info("validation records written", "session_id", sessionID, "count", len(records))
	return nil
}

func (r *recordRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*ent.ValidationRecord, error) {
	return r.client.ValidationRecord.Query().
		Where(validationrecord.SessionID(sessionID)).
		Order(validationrecord.ByRecordIndex(), validationrecord.ByFieldName()).
		All(ctx)
}

func (r *recordRepository) ListByField(ctx context.Context, sessionID, fieldID uuid.UUID) ([]*ent.ValidationRecord, error) {
	return r.client.ValidationRecord.Query().
		Where(
			validationrecord.SessionID(sessionID),
			validationrecord.FieldIDEQ(fieldID),
		).
		Order(validationrecord.ByRecordIndex()).
		All(ctx)
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return rerr
	}
	return err
}
