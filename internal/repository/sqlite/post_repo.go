package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/domain"
)

const postColumns = `id, title, content, author_id, created_at`

type PostRepo struct {
	db *sql.DB
}

func NewPostRepo(store *Store) *PostRepo {
	return &PostRepo{db: store.db}
}

func (r *PostRepo) Create(ctx context.Context, post *domain.Post) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (title, content, author_id, created_at) VALUES (?, ?, ?, ?)`,
		post.Title, post.Content, post.AuthorID, post.CreatedAt.UnixNano(),
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read post id: %w", err)
	}
	post.ID = id
	return nil
}

func (r *PostRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = ?`, id)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostRepo) List(ctx context.Context) ([]domain.Post, error) {
	return r.list(ctx, `SELECT `+postColumns+` FROM posts ORDER BY id`)
}

func (r *PostRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Post, error) {
	return r.list(ctx, `SELECT `+postColumns+` FROM posts WHERE author_id = ? ORDER BY id`, authorID)
}

func (r *PostRepo) list(ctx context.Context, query string, args ...any) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(row scanner) (*domain.Post, error) {
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
