package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vedran77/quill/internal/domain"
	"github.com/vedran77/quill/internal/repository"
)

type RatingRepo struct {
	db *sql.DB
}

func NewRatingRepo(store *Store) *RatingRepo {
	return &RatingRepo{db: store.db}
}

func (r *RatingRepo) Upsert(ctx context.Context, postID int64, rating domain.Rating) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM posts WHERE id = ?`, postID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	if err != nil {
		return err
	}

	// seq keeps first-rated order stable across later upserts.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO ratings (post_id, user_id, value, seq)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM ratings WHERE post_id = ?))
		ON CONFLICT (post_id, user_id) DO UPDATE SET value = excluded.value`,
		postID, rating.UserID, rating.Value, postID,
	)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *RatingRepo) ListByPost(ctx context.Context, postID int64) ([]domain.Rating, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, value FROM ratings WHERE post_id = ? ORDER BY seq`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := []domain.Rating{}
	for rows.Next() {
		var rt domain.Rating
		if err := rows.Scan(&rt.UserID, &rt.Value); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		ratings = append(ratings, rt)
	}
	return ratings, rows.Err()
}

func (r *RatingRepo) Summary(ctx context.Context, postID int64) (*domain.RatingSummary, error) {
	s := &domain.RatingSummary{PostID: postID}
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(value), 0) FROM ratings WHERE post_id = ?`, postID,
	).Scan(&s.Count, &s.Sum)
	if err != nil {
		return nil, err
	}
	return s, nil
}
