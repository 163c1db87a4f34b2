// Package vocabulary implements the saved-word repository using PostgreSQL.
package vocabulary

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/linglual-backend/internal/adapter/postgres"
	"github.com/heartmarshall/linglual-backend/internal/domain"
)

const table = "vocabulary"

var columns = []string{"id", "word", "meaning", "example", "record_id", "created_at"}

// Repo provides vocabulary persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new vocabulary repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID  `db:"id"`
	Word      string     `db:"word"`
	Meaning   string     `db:"meaning"`
	Example   *string    `db:"example"`
	RecordID  *uuid.UUID `db:"record_id"`
	CreatedAt time.Time  `db:"created_at"`
}

func (r row) toDomain() *domain.Word {
	return &domain.Word{
		ID:        r.ID,
		Text:      r.Word,
		Meaning:   r.Meaning,
		Example:   r.Example,
		RecordID:  r.RecordID,
		CreatedAt: r.CreatedAt,
	}
}

// List returns all saved words, newest first.
func (r *Repo) List(ctx context.Context) ([]*domain.Word, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list vocabulary: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list vocabulary: %w", err)
	}

	out := make([]*domain.Word, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Create inserts w. A RecordID pointing at a missing record yields
// domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, w domain.Word) (*domain.Word, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(w.ID, w.Text, w.Meaning, w.Example, w.RecordID, w.CreatedAt).
		Suffix("RETURNING id, word, meaning, example, record_id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert vocabulary: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "vocabulary", w.ID)
	}

	return out.toDomain(), nil
}

// Delete removes a word. Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete vocabulary: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "vocabulary", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "vocabulary", id)
	}

	return nil
}
