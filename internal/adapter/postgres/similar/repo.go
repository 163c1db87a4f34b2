// Package similar implements the similar-expression repository using PostgreSQL.
package similar

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/linglual-backend/internal/adapter/postgres"
	"github.com/heartmarshall/linglual-backend/internal/domain"
)

const table = "similar_expressions"

var columns = []string{"id", "record_id", "original_text", "alternative_text", "explanation", "created_at"}

// Repo provides similar-expression persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
	tx *postgres.TxManager
}

// New creates a new similar-expression repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db, tx: postgres.NewTxManager(db)}
}

type row struct {
	ID              uuid.UUID `db:"id"`
	RecordID        uuid.UUID `db:"record_id"`
	OriginalText    string    `db:"original_text"`
	AlternativeText string    `db:"alternative_text"`
	Explanation     string    `db:"explanation"`
	CreatedAt       time.Time `db:"created_at"`
}

func (r row) toDomain() domain.SimilarExpression {
	return domain.SimilarExpression{
		ID:              r.ID,
		RecordID:        r.RecordID,
		OriginalText:    r.OriginalText,
		AlternativeText: r.AlternativeText,
		Explanation:     r.Explanation,
		CreatedAt:       r.CreatedAt,
	}
}

func toDomain(rows []row) []domain.SimilarExpression {
	out := make([]domain.SimilarExpression, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out
}

// ListByRecord returns the expressions stored for recordID, newest first.
func (r *Repo) ListByRecord(ctx context.Context, recordID uuid.UUID) ([]domain.SimilarExpression, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"record_id": recordID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list similar expressions: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "record", recordID)
	}

	return toDomain(rows), nil
}

// Create inserts a single expression.
func (r *Repo) Create(ctx context.Context, e domain.SimilarExpression) (*domain.SimilarExpression, error) {
	out, err := r.insert(ctx, []domain.SimilarExpression{e})
	if err != nil {
		return nil, postgres.MapError(err, "similar_expression", e.ID)
	}
	return &out[0], nil
}

// DeleteByRecord removes every expression of recordID and returns how many
// rows were deleted.
func (r *Repo) DeleteByRecord(ctx context.Context, recordID uuid.UUID) (int64, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"record_id": recordID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete similar expressions: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "record", recordID)
	}
	return tag.RowsAffected(), nil
}

// ReplaceForRecord deletes the stored batch of recordID and inserts items in
// one transaction. An empty items slice leaves the record with no
// expressions.
func (r *Repo) ReplaceForRecord(ctx context.Context, recordID uuid.UUID, items []domain.SimilarExpression) ([]domain.SimilarExpression, error) {
	var out []domain.SimilarExpression

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := r.DeleteByRecord(ctx, recordID); err != nil {
			return err
		}
		if len(items) == 0 {
			out = []domain.SimilarExpression{}
			return nil
		}

		for i := range items {
			items[i].RecordID = recordID
		}
		inserted, err := r.insert(ctx, items)
		if err != nil {
			return postgres.MapError(err, "record", recordID)
		}
		out = inserted
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("replace similar expressions: %w", err)
	}

	return out, nil
}

func (r *Repo) insert(ctx context.Context, items []domain.SimilarExpression) ([]domain.SimilarExpression, error) {
	b := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	for _, e := range items {
		b = b.Values(e.ID, e.RecordID, e.OriginalText, e.AlternativeText, e.Explanation, e.CreatedAt)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert similar expressions: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, err
	}

	return toDomain(rows), nil
}
