package memory_test

import (
	"context"
	"testing"

	"github.com/ErlanBelekov/task-tracker/internal/domain"
	"github.com/ErlanBelekov/task-tracker/internal/infrastructure/memory"
	"github.com/ErlanBelekov/task-tracker/internal/repository"
)

func TestUserRepository_SoftDeleteFreesUsername(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	first := repo.Save(ctx, domain.NewUser{Username: "alice", PasswordHash: "h1"}).Value()

	if dup := repo.Save(ctx, domain.NewUser{Username: "alice", PasswordHash: "h2"}); !dup.IsFailure() {
		t.Fatal("duplicate live username must be rejected")
	}

	if r := repo.Delete(ctx, first.ID); r.IsFailure() {
		t.Fatalf("delete: %v", r.Err())
	}
	if r := repo.FindByID(ctx, first.ID); !r.IsFailure() || r.Err() != repository.ErrNotFound {
		t.Fatalf("deleted user still visible: %+v", r)
	}
	if r := repo.Delete(ctx, first.ID); !r.IsFailure() || r.Err() != repository.ErrNotFound {
		t.Fatalf("second delete: want ErrNotFound, got %+v", r)
	}

	if r := repo.Save(ctx, domain.NewUser{Username: "alice", PasswordHash: "h3"}); r.IsFailure() {
		t.Fatalf("re-register after delete: %v", r.Err())
	}
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepository()

	u := repo.Save(ctx, domain.NewUser{Username: "bob", PasswordHash: "h"}).Value()
	u.Username = "mallory"

	if got := repo.FindByID(ctx, u.ID).Value().Username; got != "bob" {
		t.Errorf("stored username = %q, want bob", got)
	}
}

func TestTaskRepository_FindManyByUserID_ScopedAndOrdered(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTaskRepository()

	a1 := repo.Save(ctx, domain.NewTask{UserID: "a", Title: "first"}).Value()
	repo.Save(ctx, domain.NewTask{UserID: "b", Title: "other"})
	a2 := repo.Save(ctx, domain.NewTask{UserID: "a", Title: "second"}).Value()
	a3 := repo.Save(ctx, domain.NewTask{UserID: "a", Title: "third"}).Value()
	repo.Delete(ctx, a2.ID)

	tasks := repo.FindManyByUserID(ctx, "a").Value()
	if len(tasks) != 2 {
		t.Fatalf("len = %d, want 2", len(tasks))
	}
	if tasks[0].ID != a1.ID || tasks[1].ID != a3.ID {
		t.Errorf("order = [%s %s], want [%s %s]", tasks[0].ID, tasks[1].ID, a1.ID, a3.ID)
	}
}

func TestTaskRepository_UpdateMissing_NotFound(t *testing.T) {
	repo := memory.NewTaskRepository()

	r := repo.Update(context.Background(), &domain.Task{ID: "missing"})
	if !r.IsFailure() || r.Err() != repository.ErrNotFound {
		t.Errorf("want ErrNotFound, got %+v", r)
	}
}
