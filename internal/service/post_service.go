package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/domain"
	"github.com/vedran77/quill/internal/repository"
	"github.com/vedran77/quill/pkg/validator"
)

type PostService struct {
	postRepo repository.PostRepository
	notifier Notifier
	now      func() time.Time
}

func NewPostService(postRepo repository.PostRepository, notifier Notifier) *PostService {
	return &PostService{
		postRepo: postRepo,
		notifier: notifierOrNoop(notifier),
		now:      time.Now,
	}
}

type CreatePostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreatePost stores a post authored by the caller and returns it with its
// newly allocated ID. A profile is not required to post.
func (s *PostService) CreatePost(ctx context.Context, input CreatePostInput) (*domain.Post, error) {
	callerID, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}

	if err := validationError(validator.ValidatePost(input.Title, input.Content)); err != nil {
		return nil, err
	}

	post := &domain.Post{
		Title:     validator.Normalize(input.Title),
		Content:   input.Content,
		AuthorID:  callerID,
		CreatedAt: s.now().UTC(),
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	s.notifier.NotifyNewPost(post)
	return post, nil
}

// GetPost returns nil when id was never allocated.
func (s *PostService) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) GetAllPosts(ctx context.Context) ([]domain.Post, error) {
	return s.postRepo.List(ctx)
}

// GetUserPosts returns the posts authored by userID in creation order. The
// result is empty, not an error, for unknown users.
func (s *PostService) GetUserPosts(ctx context.Context, userID uuid.UUID) ([]domain.Post, error) {
	return s.postRepo.ListByAuthor(ctx, userID)
}
