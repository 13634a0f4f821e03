package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"personal-site/internal/domain"
)

func TestMemoryMessageRepository_CreateListFind(t *testing.T) {
	repo := NewMemoryMessageRepository()
	fixed := time.Date(2024, 3, 1, 10, 0, 0, 123456789, time.UTC)
	repo.now = func() time.Time { return fixed }
	ctx := context.Background()

	first, err := repo.Create(ctx, domain.Message{Name: "Alice", Message: "hi"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !ValidID(first.ID) {
		t.Fatalf("expected generated object id, got %q", first.ID)
	}
	if !first.CreatedAt.Equal(fixed.Truncate(time.Millisecond)) || !first.UpdatedAt.Equal(first.CreatedAt) {
		t.Fatalf("unexpected timestamps: %+v", first)
	}

	second, err := repo.Create(ctx, domain.Message{Name: "Alice", Message: "hi"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("expected distinct ids for identical messages")
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(all) != 2 || all[0].ID != first.ID || all[1].ID != second.ID {
		t.Fatalf("expected insertion order, got %+v", all)
	}

	found, err := repo.FindByID(ctx, second.ID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(found) != 1 || found[0] != second {
		t.Fatalf("expected exactly the saved record, got %+v", found)
	}
}

func TestMemoryMessageRepository_FindByID_UnknownAndInvalid(t *testing.T) {
	repo := NewMemoryMessageRepository()
	ctx := context.Background()

	out, err := repo.FindByID(ctx, NewID())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %+v", out)
	}

	if _, err := repo.FindByID(ctx, "not-an-id"); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestMemoryMessageRepository_ListReturnsCopy(t *testing.T) {
	repo := NewMemoryMessageRepository()
	ctx := context.Background()
	if _, err := repo.Create(ctx, domain.Message{Name: "a"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	out, _ := repo.List(ctx)
	out[0].Name = "changed"

	again, _ := repo.List(ctx)
	if again[0].Name != "a" {
		t.Fatalf("expected stored message untouched, got %q", again[0].Name)
	}
}

func TestMemoryMessageRepository_ConcurrentCreates(t *testing.T) {
	repo := NewMemoryMessageRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Create(ctx, domain.Message{Name: "n", Message: "m"})
		}()
	}
	wg.Wait()

	out, _ := repo.List(ctx)
	if len(out) != 50 {
		t.Fatalf("expected 50 messages, got %d", len(out))
	}
}
