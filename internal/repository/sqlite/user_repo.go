package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/domain"
	"github.com/vedran77/quill/internal/repository"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(store *Store) *UserRepo {
	return &UserRepo{db: store.db}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, bio) VALUES (?, ?, ?) ON CONFLICT (id) DO NOTHING`,
		user.ID, user.Username, user.Bio,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrConflict
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, `SELECT id, username, bio FROM users WHERE id = ?`, id).Scan(
		&u.ID, &u.Username, &u.Bio,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UpdateBio(ctx context.Context, id uuid.UUID, bio string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET bio = ? WHERE id = ?`, bio, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
