package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/quill/internal/domain"
	"github.com/vedran77/quill/internal/repository"
)

const foreignKeyViolation = "23503"

type RatingRepo struct {
	pool *pgxpool.Pool
}

func NewRatingRepo(pool *pgxpool.Pool) *RatingRepo {
	return &RatingRepo{pool: pool}
}

func (r *RatingRepo) Upsert(ctx context.Context, postID int64, rating domain.Rating) error {
	query := `
		INSERT INTO ratings (post_id, user_id, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (post_id, user_id) DO UPDATE SET value = EXCLUDED.value`

	_, err := r.pool.Exec(ctx, query, postID, rating.UserID, rating.Value)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return repository.ErrNotFound
	}
	return err
}

func (r *RatingRepo) ListByPost(ctx context.Context, postID int64) ([]domain.Rating, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT user_id, value
		FROM ratings
		WHERE post_id = $1
		ORDER BY user_id`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := []domain.Rating{}
	for rows.Next() {
		var rt domain.Rating
		if err := rows.Scan(&rt.UserID, &rt.Value); err != nil {
			return nil, err
		}
		ratings = append(ratings, rt)
	}
	return ratings, rows.Err()
}

func (r *RatingRepo) Summary(ctx context.Context, postID int64) (*domain.RatingSummary, error) {
	s := &domain.RatingSummary{PostID: postID}
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(value), 0) FROM ratings WHERE post_id = $1`, postID,
	).Scan(&s.Count, &s.Sum)
	if err != nil {
		return nil, err
	}
	return s, nil
}
