// Package record implements the writing record repository using PostgreSQL.
package record

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/linglual-backend/internal/adapter/postgres"
	"github.com/heartmarshall/linglual-backend/internal/domain"
)

const table = "records"

var columns = []string{
	"id", "date", "content", "topic", "level", "summary",
	"feedback", "search_keywords", "created_at", "updated_at",
}

// Repo provides record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new record repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID             uuid.UUID `db:"id"`
	Date           time.Time `db:"date"`
	Content        string    `db:"content"`
	Topic          string    `db:"topic"`
	Level          *string   `db:"level"`
	Summary        string    `db:"summary"`
	Feedback       string    `db:"feedback"`
	SearchKeywords []string  `db:"search_keywords"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r row) toDomain() *domain.Record {
	rec := &domain.Record{
		ID:             r.ID,
		Date:           r.Date,
		Content:        r.Content,
		Topic:          r.Topic,
		Summary:        r.Summary,
		Feedback:       r.Feedback,
		SearchKeywords: r.SearchKeywords,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if rec.SearchKeywords == nil {
		rec.SearchKeywords = []string{}
	}
	if r.Level != nil {
		if lvl, ok := domain.ParseLevel(*r.Level); ok {
			rec.Level = &lvl
		}
	}
	return rec
}

func levelArg(l *domain.Level) *string {
	if l == nil {
		return nil
	}
	s := string(*l)
	return &s
}

func keywordsArg(k []string) []string {
	if k == nil {
		return []string{}
	}
	return k
}

// GetByID returns a record by primary key.
// Returns domain.ErrNotFound if the record does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get record: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "record", id)
	}

	return out.toDomain(), nil
}

// List returns all records, newest writing date first.
// Returns an empty slice (not nil) when there are no records.
func (r *Repo) List(ctx context.Context) ([]*domain.Record, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("date DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list records: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	out := make([]*domain.Record, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Create inserts rec and returns the stored row.
func (r *Repo) Create(ctx context.Context, rec domain.Record) (*domain.Record, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			rec.ID, rec.Date, rec.Content, rec.Topic, levelArg(rec.Level), rec.Summary,
			rec.Feedback, keywordsArg(rec.SearchKeywords), rec.CreatedAt, rec.UpdatedAt,
		).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert record: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "record", rec.ID)
	}

	return out.toDomain(), nil
}

// Update overwrites content, topic and the analysis columns of rec.ID.
// Returns domain.ErrNotFound if the record does not exist.
func (r *Repo) Update(ctx context.Context, rec domain.Record) (*domain.Record, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("date", rec.Date).
		Set("content", rec.Content).
		Set("topic", rec.Topic).
		Set("level", levelArg(rec.Level)).
		Set("summary", rec.Summary).
		Set("feedback", rec.Feedback).
		Set("search_keywords", keywordsArg(rec.SearchKeywords)).
		Set("updated_at", rec.UpdatedAt).
		Where(sq.Eq{"id": rec.ID}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update record: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "record", rec.ID)
	}

	return out.toDomain(), nil
}

// Delete removes a record. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete record: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "record", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "record", id)
	}

	return nil
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}
