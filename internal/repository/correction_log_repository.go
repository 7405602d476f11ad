package repository

import (
	"context"
	"time"

	"talentmatch/internal/database"
	"talentmatch/internal/domain/skill"

	"github.com/google/uuid"
)

// CorrectionStats summarizes the audit trail for review dashboards.
type CorrectionStats struct {
	Total         int64
	AutoCorrected int64
	NeedsReview   int64
	AvgSimilarity float64
}

// CorrectionLogRepository appends resolution audit rows. The table is
// append-only; nothing in the core updates or deletes it.
type CorrectionLogRepository interface {
	Append(ctx context.Context, entry skill.CorrectionLog) error
	Stats(ctx context.Context) (CorrectionStats, error)
	Recent(ctx context.Context, limit int) ([]skill.CorrectionLog, error)
}

type PostgresCorrectionLogRepository struct {
	db database.DB
}

func NewPostgresCorrectionLogRepository(db database.DB) *PostgresCorrectionLogRepository {
	return &PostgresCorrectionLogRepository{db: db}
}

func (r *PostgresCorrectionLogRepository) Append(ctx context.Context, entry skill.CorrectionLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO skill_correction_logs
		   (id, original_term, corrected_term, similarity_score, was_auto_corrected, needs_review, user_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID,
		skill.TruncateTerm(entry.OriginalTerm),
		skill.TruncateTerm(entry.CorrectedTerm),
		entry.SimilarityScore,
		entry.WasAutoCorrect,
		entry.NeedsReview,
		nullableUUID(entry.UserID),
		entry.CreatedAt,
	)
	return err
}

func (r *PostgresCorrectionLogRepository) Stats(ctx context.Context) (CorrectionStats, error) {
	var s CorrectionStats
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE was_auto_corrected),
		        COUNT(*) FILTER (WHERE needs_review),
		        COALESCE(AVG(similarity_score), 0)
		 FROM skill_correction_logs`).
		Scan(&s.Total, &s.AutoCorrected, &s.NeedsReview, &s.AvgSimilarity)
	if err != nil {
		return CorrectionStats{}, err
	}
	return s, nil
}

func (r *PostgresCorrectionLogRepository) Recent(ctx context.Context, limit int) ([]skill.CorrectionLog, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.Query(ctx,
		`SELECT id, original_term, corrected_term, similarity_score, was_auto_corrected, needs_review, user_id, created_at
		 FROM skill_correction_logs
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.CorrectionLog, 0, limit)
	for rows.Next() {
		var e skill.CorrectionLog
		if err := rows.Scan(&e.ID, &e.OriginalTerm, &e.CorrectedTerm, &e.SimilarityScore,
			&e.WasAutoCorrect, &e.NeedsReview, &e.UserID, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func nullableUUID(id uuid.NullUUID) any {
	if !id.Valid {
		return nil
	}
	return id.UUID
}
