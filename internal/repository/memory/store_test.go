package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/domain"
	"github.com/vedran77/quill/internal/repository"
)

func TestUserRepoCreateConflict(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo(NewStore())
	id := uuid.New()

	if err := repo.Create(ctx, &domain.User{ID: id, Username: "alice"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	err := repo.Create(ctx, &domain.User{ID: id, Username: "mallory"})
	if !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("second Create() error = %v, want ErrConflict", err)
	}

	u, err := repo.GetByID(ctx, id)
	if err != nil || u == nil {
		t.Fatalf("GetByID() = %v, %v", u, err)
	}
	if u.Username != "alice" {
		t.Errorf("Username = %q, want alice", u.Username)
	}
}

func TestUserRepoUpdateBio(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo(NewStore())
	id := uuid.New()

	if err := repo.UpdateBio(ctx, id, "hi"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("UpdateBio(missing) error = %v, want ErrNotFound", err)
	}
	if u, _ := repo.GetByID(ctx, id); u != nil {
		t.Fatal("UpdateBio on a missing user created one")
	}

	_ = repo.Create(ctx, &domain.User{ID: id, Username: "alice", Bio: "old"})
	if err := repo.UpdateBio(ctx, id, "new"); err != nil {
		t.Fatalf("UpdateBio() error = %v", err)
	}
	u, _ := repo.GetByID(ctx, id)
	if u.Bio != "new" || u.Username != "alice" {
		t.Errorf("user = %+v", u)
	}
}

func TestUserRepoReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo(NewStore())
	id := uuid.New()
	_ = repo.Create(ctx, &domain.User{ID: id, Username: "alice", Bio: "b"})

	u, _ := repo.GetByID(ctx, id)
	u.Bio = "mutated"

	again, _ := repo.GetByID(ctx, id)
	if again.Bio != "b" {
		t.Errorf("stored bio changed through a returned pointer: %q", again.Bio)
	}
}

func TestPostRepoAllocatesSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepo(NewStore())
	alice, bob := uuid.New(), uuid.New()

	var ids []int64
	for i, author := range []uuid.UUID{alice, bob, alice} {
		p := &domain.Post{Title: "t", Content: "c", AuthorID: author, CreatedAt: time.Unix(0, int64(i))}
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		ids = append(ids, p.ID)
	}
	if ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Fatalf("ids = %v, want [1 2 3]", ids)
	}

	for _, id := range []int64{0, -1, 4} {
		if p, _ := repo.GetByID(ctx, id); p != nil {
			t.Errorf("GetByID(%d) = %+v, want nil", id, p)
		}
	}

	all, _ := repo.List(ctx)
	if len(all) != 3 || all[0].ID != 1 || all[2].ID != 3 {
		t.Errorf("List() = %+v", all)
	}

	mine, _ := repo.ListByAuthor(ctx, alice)
	if len(mine) != 2 || mine[0].ID != 1 || mine[1].ID != 3 {
		t.Errorf("ListByAuthor(alice) = %+v", mine)
	}

	none, _ := repo.ListByAuthor(ctx, uuid.New())
	if none == nil || len(none) != 0 {
		t.Errorf("ListByAuthor(stranger) = %#v, want empty non-nil slice", none)
	}
}

func TestPostRepoConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepo(NewStore())

	const n = 100
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := &domain.Post{Title: "t", Content: "c", AuthorID: uuid.New()}
			if err := repo.Create(ctx, p); err != nil {
				t.Errorf("Create() error = %v", err)
			}
			ids <- p.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("id %d allocated twice", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Errorf("got %d distinct ids, want %d", len(seen), n)
	}
}

func TestRatingRepoUpsert(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	posts := NewPostRepo(store)
	ratings := NewRatingRepo(store)

	if err := ratings.Upsert(ctx, 1, domain.Rating{UserID: uuid.New(), Value: 3}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("Upsert(missing post) error = %v, want ErrNotFound", err)
	}

	p := &domain.Post{Title: "t", Content: "c", AuthorID: uuid.New()}
	_ = posts.Create(ctx, p)

	alice, bob := uuid.New(), uuid.New()
	_ = ratings.Upsert(ctx, p.ID, domain.Rating{UserID: alice, Value: 2})
	_ = ratings.Upsert(ctx, p.ID, domain.Rating{UserID: bob, Value: 4})
	_ = ratings.Upsert(ctx, p.ID, domain.Rating{UserID: alice, Value: 5})

	list, _ := ratings.ListByPost(ctx, p.ID)
	if len(list) != 2 {
		t.Fatalf("ListByPost() = %+v, want 2 entries", list)
	}
	if list[0].UserID != alice || list[0].Value != 5 {
		t.Errorf("alice's rating = %+v, want value 5", list[0])
	}

	summary, _ := ratings.Summary(ctx, p.ID)
	if summary.Count != 2 || summary.Sum != 9 {
		t.Errorf("Summary() = %+v, want count 2 sum 9", summary)
	}
}

func TestRatingRepoConcurrentUpsertSameRater(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	p := &domain.Post{Title: "t", Content: "c", AuthorID: uuid.New()}
	_ = NewPostRepo(store).Create(ctx, p)
	ratings := NewRatingRepo(store)
	rater := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			_ = ratings.Upsert(ctx, p.ID, domain.Rating{UserID: rater, Value: v%5 + 1})
		}(i)
	}
	wg.Wait()

	list, _ := ratings.ListByPost(ctx, p.ID)
	if len(list) != 1 {
		t.Fatalf("ListByPost() has %d entries for one rater, want 1", len(list))
	}
}
