package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/linglual-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedRecord inserts a record with an intermediate level and a minimal
// feedback blob.
func SeedRecord(t *testing.T, pool *pgxpool.Pool) domain.Record {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	level := domain.LevelIntermediate
	rec := domain.Record{
		ID:             uuid.New(),
		Date:           time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Content:        "I go to school yesterday " + suffix,
		Topic:          "daily life " + suffix,
		Level:          &level,
		Summary:        "summary " + suffix,
		Feedback:       "강점:\ngood\n\n개선점:\ntense\n\n수정 제안:\n",
		SearchKeywords: []string{"school", suffix},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO records (id, date, content, topic, level, summary, feedback, search_keywords, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.ID, rec.Date, rec.Content, rec.Topic, string(level), rec.Summary, rec.Feedback, rec.SearchKeywords, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord: %v", err)
	}

	return rec
}

// SeedSimilarExpression inserts one similar expression for recordID.
func SeedSimilarExpression(t *testing.T, pool *pgxpool.Pool, recordID uuid.UUID) domain.SimilarExpression {
	t.Helper()

	suffix := uniqueSuffix()
	expr := domain.SimilarExpression{
		ID:              uuid.New(),
		RecordID:        recordID,
		OriginalText:    "original " + suffix,
		AlternativeText: "alternative " + suffix,
		Explanation:     "explanation " + suffix,
		CreatedAt:       time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO similar_expressions (id, record_id, original_text, alternative_text, explanation, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		expr.ID, expr.RecordID, expr.OriginalText, expr.AlternativeText, expr.Explanation, expr.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSimilarExpression: %v", err)
	}

	return expr
}
