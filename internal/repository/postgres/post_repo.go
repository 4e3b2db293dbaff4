package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/quill/internal/domain"
)

const postColumns = `id, title, content, author_id, created_at`

type PostRepo struct {
	pool *pgxpool.Pool
}

func NewPostRepo(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{pool: pool}
}

func (r *PostRepo) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (title, content, author_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	return r.pool.QueryRow(ctx, query,
		post.Title, post.Content, post.AuthorID, post.CreatedAt.UnixNano(),
	).Scan(&post.ID)
}

func (r *PostRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+postColumns+" FROM posts WHERE id = $1", id)
	p, err := scanPost(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostRepo) List(ctx context.Context) ([]domain.Post, error) {
	return r.list(ctx, "SELECT "+postColumns+" FROM posts ORDER BY id")
}

func (r *PostRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Post, error) {
	return r.list(ctx, "SELECT "+postColumns+" FROM posts WHERE author_id = $1 ORDER BY id", authorID)
}

func (r *PostRepo) list(ctx context.Context, query string, args ...any) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var (
		p         domain.Post
		createdAt int64
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &createdAt); err != nil {
		return nil, err
	}
	p.CreatedAt = time.Unix(0, createdAt).UTC()
	return &p, nil
}
