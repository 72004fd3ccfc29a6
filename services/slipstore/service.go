// Package slipstore persists generated quinielas. Persistence is
// optional for the application as a whole: callers only construct a
// Service when a database DSN is configured.
package slipstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/leonmuri/progol-backend/lib/quiniela"
	"github.com/leonmuri/progol-backend/lib/timezone"
	"github.com/leonmuri/progol-backend/services/slipstore/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	_ "modernc.org/sqlite"
)

var tracer = otel.Tracer("services/slipstore")

var ErrNotFound = errors.New("slip not found")

// DefaultListLimit caps history listings when the caller doesn't
// provide a limit of its own.
const DefaultListLimit = 50

// StoredSlip is a persisted slip together with its store metadata.
type StoredSlip struct {
	ID          int64
	GeneratedAt time.Time
	MatchCount  int
	Entries     quiniela.Slip
}

// StoreStats aggregates over everything persisted so far.
type StoreStats struct {
	TotalSlips int64
	FirstAt    time.Time
	LastAt     time.Time
}

type Service struct {
	db  *sql.DB
	qry *db.Queries
}

func NewService(database *sql.DB) *Service {
	return &Service{
		db:  database,
		qry: db.New(database),
	}
}

// Open connects to the sqlite database at `dsn` and ensures the schema
// exists.
func Open(dsn string) (*Service, error) {
	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	_, err = database.Exec(db.Schema)
	if err != nil {
		database.Close()
		return nil, err
	}
	return NewService(database), nil
}

func (s *Service) Close() error {
	return s.db.Close()
}

func (s *Service) Save(ctx context.Context, slip quiniela.Slip) (int64, error) {
	ctx, span := tracer.Start(ctx, "Save")
	defer span.End()

	entries, err := json.Marshal(slip)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	id, err := s.qry.CreateSlip(ctx, db.CreateSlipParams{
		GeneratedAt: timezone.Now().Unix(),
		MatchCount:  int64(len(slip)),
		Entries:     string(entries),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int64("slip_id", id))
	return id, nil
}

func (s *Service) Get(ctx context.Context, id int64) (StoredSlip, error) {
	ctx, span := tracer.Start(ctx, "Get")
	defer span.End()

	span.SetAttributes(attribute.Int64("slip_id", id))

	row, err := s.qry.GetSlip(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return StoredSlip{}, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return StoredSlip{}, err
	}

	return decodeRow(row)
}

func (s *Service) List(ctx context.Context, limit int) ([]StoredSlip, error) {
	ctx, span := tracer.Start(ctx, "List")
	defer span.End()

	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := s.qry.ListSlips(ctx, int64(limit))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	slips := make([]StoredSlip, 0, len(rows))
	for _, row := range rows {
		stored, err := decodeRow(row)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		slips = append(slips, stored)
	}
	return slips, nil
}

// Delete removes a slip by id. Deleting an id that doesn't exist is not
// an error, it reports false.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, span := tracer.Start(ctx, "Delete")
	defer span.End()

	span.SetAttributes(attribute.Int64("slip_id", id))

	affected, err := s.qry.DeleteSlip(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, err
	}
	return affected > 0, nil
}

func (s *Service) Stats(ctx context.Context) (StoreStats, error) {
	ctx, span := tracer.Start(ctx, "Stats")
	defer span.End()

	total, err := s.qry.CountSlips(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return StoreStats{}, err
	}

	stats := StoreStats{TotalSlips: total}
	if total == 0 {
		return stats, nil
	}

	bounds, err := s.qry.GetSlipTimeBounds(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return StoreStats{}, err
	}
	stats.FirstAt = time.Unix(bounds.FirstAt, 0).In(timezone.Location)
	stats.LastAt = time.Unix(bounds.LastAt, 0).In(timezone.Location)
	return stats, nil
}

func decodeRow(row db.Slip) (StoredSlip, error) {
	var entries quiniela.Slip
	err := json.Unmarshal([]byte(row.Entries), &entries)
	if err != nil {
		return StoredSlip{}, err
	}
	return StoredSlip{
		ID:          row.ID,
		GeneratedAt: time.Unix(row.GeneratedAt, 0).In(timezone.Location),
		MatchCount:  int(row.MatchCount),
		Entries:     entries,
	}, nil
}
