package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/domain"
)

type PostRepo struct {
	store *Store
}

func NewPostRepo(store *Store) *PostRepo {
	return &PostRepo{store: store}
}

func (r *PostRepo) Create(ctx context.Context, post *domain.Post) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	post.ID = int64(len(r.store.posts)) + 1
	r.store.posts = append(r.store.posts, *post)
	r.store.byAuthor[post.AuthorID] = append(r.store.byAuthor[post.AuthorID], post.ID)
	return nil
}

func (r *PostRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.post(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PostRepo) List(ctx context.Context) ([]domain.Post, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	posts := make([]domain.Post, len(r.store.posts))
	copy(posts, r.store.posts)
	return posts, nil
}

func (r *PostRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Post, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ids := r.store.byAuthor[authorID]
	posts := make([]domain.Post, 0, len(ids))
	for _, id := range ids {
		p, _ := r.store.post(id)
		posts = append(posts, p)
	}
	return posts, nil
}
