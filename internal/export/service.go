package export

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jszwec/csvutil"
	"github.com/xuri/excelize/v2"

	"github.com/extractly-io/extractly/gen/ent"
	"github.com/extractly-io/extractly/internal/repository"
	"github.com/extractly-io/extractly/internal/schema"
)

// Service produces XLSX and CSV exports of a session's extraction results.
type Service struct {
	sessions repository.SessionRepository
	projects repository.ProjectRepository
	records  repository.RecordRepository
	logger   *slog.Logger
}

func NewService(sessions repository.SessionRepository, projects repository.ProjectRepository, records repository.RecordRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{sessions: sessions, projects: projects, records: records, logger: logger}
}

// ExportSessionXLSX returns a workbook with one Fields sheet for top-level
// values and one sheet per collection, collection items one row per index.
func (s *Service) ExportSessionXLSX(ctx context.Context, sessionID uuid.UUID) ([]byte, error) {
	start := time.Now()

	session, def, recs, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const fieldsSheet = "Fields"
	if err := f.SetSheetName("Sheet1", fieldsSheet); err != nil {
		return nil, err
	}

	headers := []string{"Field", "Value", "Status", "Confidence", "Reasoning"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(fieldsSheet, cell, h)
	}
	row := 2
	for _, fd := range def.Fields {
		for _, rec := range recs {
			if rec.CollectionID != nil || rec.FieldID != fd.ID {
				continue
			}
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(fieldsSheet, cell, v)
			}
			write(1, rec.FieldName)
			write(2, rec.ExtractedValue)
			write(3, rec.ValidationStatus)
			write(4, rec.ConfidenceScore)
			write(5, rec.Reasoning)
			row++
		}
	}
	_ = f.SetColWidth(fieldsSheet, "A", "A", 24)
	_ = f.SetColWidth(fieldsSheet, "B", "B", 40)
	_ = f.SetColWidth(fieldsSheet, "C", "D", 12)
	_ = f.SetColWidth(fieldsSheet, "E", "E", 48)

	used := map[string]bool{fieldsSheet: true}
	for _, cd := range def.Collections {
		if err := s.writeCollectionSheet(f, sheetName(cd.Name, used), cd, recs); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	s.logger.Info("export.xlsx.ok",
		"session_id", sessionID.String(),
		"project_id", session.ProjectID.String(),
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// writeCollectionSheet lays a collection out as a grid: one column per
// property, one row per record index.
func (s *Service) writeCollectionSheet(f *excelize.File, sheet string, cd schema.CollectionDef, recs []*ent.ValidationRecord) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	colByProp := make(map[uuid.UUID]int, len(cd.Properties))
	for i, p := range cd.Properties {
		colByProp[p.ID] = i + 1
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, p.Name)
	}

	for _, rec := range recs {
		if rec.CollectionID == nil || *rec.CollectionID != cd.ID {
			continue
		}
		col, ok := colByProp[rec.FieldID]
		if !ok {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(col, rec.RecordIndex+2)
		_ = f.SetCellValue(sheet, cell, rec.ExtractedValue)
	}
	return nil
}

// Row is one flattened validation record for CSV export.
type Row struct {
	Collection  string `csv:"collection"`
	RecordIndex int    `csv:"record_index"`
	Field       string `csv:"field"`
	Value       string `csv:"value"`
	Status      string `csv:"status"`
	Confidence  int    `csv:"confidence"`
	Reasoning   string `csv:"reasoning"`
}

// ExportSessionCSV returns every validation record of the session as one
// flat CSV, collection rows tagged with the collection name and index.
func (s *Service) ExportSessionCSV(ctx context.Context, sessionID uuid.UUID) ([]byte, error) {
	start := time.Now()

	_, def, recs, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	collNames := make(map[uuid.UUID]string, len(def.Collections))
	for _, cd := range def.Collections {
		collNames[cd.ID] = cd.Name
	}

	rows := make([]Row, 0, len(recs))
	for _, rec := range recs {
		r := Row{
			RecordIndex: rec.RecordIndex,
			Field:       rec.FieldName,
			Value:       rec.ExtractedValue,
			Status:      rec.ValidationStatus,
			Confidence:  rec.ConfidenceScore,
			Reasoning:   rec.Reasoning,
		}
		if rec.CollectionID != nil {
			r.Collection = collNames[*rec.CollectionID]
		}
		rows = append(rows, r)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Collection != rows[j].Collection {
			return rows[i].Collection < rows[j].Collection
		}
		if rows[i].RecordIndex != rows[j].RecordIndex {
			return rows[i].RecordIndex < rows[j].RecordIndex
		}
		return rows[i].Field < rows[j].Field
	})

	out, err := csvutil.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("csv marshal: %w", err)
	}
	s.logger.Info("export.csv.ok",
		"session_id", sessionID.String(),
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

func (s *Service) load(ctx context.Context, sessionID uuid.UUID) (*ent.ExtractionSession, *schema.Definition, []*ent.ValidationRecord, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load session: %w", err)
	}
	def, err := schema.Load(ctx, s.projects, session.ProjectID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load target schema: %w", err)
	}
	recs, err := s.records.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load records: %w", err)
	}
	return session, def, recs, nil
}

// sheetName fits a collection name into excelize's 31-char sheet limit and
// keeps it unique within the workbook. Clipped names that land on an already
// taken sheet get a numeric suffix inside the limit.
func sheetName(name string, used map[string]bool) string {
	base := clipSheet(name, 31)
	sheet := base
	for n := 2; used[sheet]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		sheet = clipSheet(base, 31-len(suffix)) + suffix
	}
	used[sheet] = true
	return sheet
}

// clipSheet cuts s at n bytes without splitting a multi-byte rune.
func clipSheet(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
