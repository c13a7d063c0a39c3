package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/ErlanBelekov/task-tracker/internal/domain"
	"github.com/ErlanBelekov/task-tracker/internal/repository"
	"github.com/ErlanBelekov/task-tracker/internal/result"
	"github.com/ErlanBelekov/task-tracker/internal/service"
)

func wantTaskErr[T any](t *testing.T, r result.Result[service.TaskError, T], want service.TaskError) {
	t.Helper()
	if !r.IsFailure() {
		t.Fatalf("want %v, got success", want)
	}
	if r.Err() != want {
		t.Fatalf("want %v, got %v", want, r.Err())
	}
}

func seedTask(t *testing.T, svc *service.TaskService, userID, title string, done bool) *domain.Task {
	t.Helper()
	r := svc.Create(context.Background(), domain.NewTask{UserID: userID, Title: title, IsCompleted: done})
	if r.IsFailure() {
		t.Fatalf("create %q: %v", title, r.Err())
	}
	return r.Value()
}

func TestTaskCreate_SaveFailure_Unknown(t *testing.T) {
	for _, repoErr := range []repository.Error{repository.ErrUnknown, repository.ErrNotFound} {
		repo := newFakeTaskRepo()
		repo.save = func(context.Context, domain.NewTask) result.Result[repository.Error, *domain.Task] {
			return result.Failure[*domain.Task](repoErr)
		}
		svc := service.NewTaskService(repo)

		wantTaskErr(t, svc.Create(context.Background(), domain.NewTask{UserID: "u1", Title: "x"}), service.TaskErrUnknown)
	}
}

func TestTaskGetByID_IdempotentRead(t *testing.T) {
	ctx := context.Background()
	svc := service.NewTaskService(newFakeTaskRepo())
	task := seedTask(t, svc, "u1", "write report", false)

	first := svc.GetByID(ctx, task.ID, "u1").Value()
	second := svc.GetByID(ctx, task.ID, "u1").Value()
	if *first != *second {
		t.Errorf("reads differ: %+v vs %+v", first, second)
	}
}

func TestTaskOwnershipGate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTaskRepo()
	svc := service.NewTaskService(repo)
	task := seedTask(t, svc, "owner", "private", false)

	wantTaskErr(t, svc.GetByID(ctx, task.ID, "intruder"), service.TaskErrNotBelongingToUser)
	wantTaskErr(t, svc.Update(ctx, task.ID, "intruder", domain.TaskUpdate{Title: ptr("pwned")}), service.TaskErrNotBelongingToUser)
	wantTaskErr(t, svc.Delete(ctx, task.ID, "intruder"), service.TaskErrNotBelongingToUser)

	stored := repo.TaskRepository.FindByID(ctx, task.ID)
	if stored.IsFailure() {
		t.Fatal("task removed by a non-owner")
	}
	if stored.Value().Title != "private" {
		t.Errorf("task changed by a non-owner: %+v", stored.Value())
	}
}

func TestTaskMissing_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := service.NewTaskService(newFakeTaskRepo())

	wantTaskErr(t, svc.GetByID(ctx, "missing", "u1"), service.TaskErrNotFound)
	wantTaskErr(t, svc.Update(ctx, "missing", "u1", domain.TaskUpdate{}), service.TaskErrNotFound)
	wantTaskErr(t, svc.Delete(ctx, "missing", "u1"), service.TaskErrNotFound)
}

func TestTaskLookupUnknown_Unknown(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTaskRepo()
	repo.findByID = taskUnknown
	svc := service.NewTaskService(repo)

	wantTaskErr(t, svc.GetByID(ctx, "t1", "u1"), service.TaskErrUnknown)
	wantTaskErr(t, svc.Update(ctx, "t1", "u1", domain.TaskUpdate{}), service.TaskErrUnknown)
	wantTaskErr(t, svc.Delete(ctx, "t1", "u1"), service.TaskErrUnknown)
}

func TestTaskUpdate_MergesSetFieldsOnly(t *testing.T) {
	ctx := context.Background()
	svc := service.NewTaskService(newFakeTaskRepo())
	task := svc.Create(ctx, domain.NewTask{UserID: "u1", Title: "title", Description: "desc"}).Value()

	r := svc.Update(ctx, task.ID, "u1", domain.TaskUpdate{IsCompleted: ptr(true)})
	if r.IsFailure() {
		t.Fatalf("update: %v", r.Err())
	}
	got := r.Value()
	if !got.IsCompleted || got.Title != "title" || got.Description != "desc" {
		t.Errorf("unexpected merge: %+v", got)
	}

	got = svc.Update(ctx, task.ID, "u1", domain.TaskUpdate{Title: ptr("new"), Description: ptr("")}).Value()
	if got.Title != "new" || got.Description != "" || !got.IsCompleted {
		t.Errorf("unexpected merge: %+v", got)
	}
}

func TestTaskUpdate_PersistFailure_Unknown(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTaskRepo()
	svc := service.NewTaskService(repo)
	task := seedTask(t, svc, "u1", "x", false)
	repo.update = func(context.Context, *domain.Task) result.Result[repository.Error, *domain.Task] {
		return result.Failure[*domain.Task](repository.ErrUnknown)
	}

	wantTaskErr(t, svc.Update(ctx, task.ID, "u1", domain.TaskUpdate{Title: ptr("y")}), service.TaskErrUnknown)
}

func TestTaskDelete_ReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	svc := service.NewTaskService(newFakeTaskRepo())
	task := seedTask(t, svc, "u1", "gone soon", true)

	r := svc.Delete(ctx, task.ID, "u1")
	if r.IsFailure() {
		t.Fatalf("delete: %v", r.Err())
	}
	if r.Value().ID != task.ID || r.Value().Title != "gone soon" {
		t.Errorf("snapshot = %+v", r.Value())
	}
	wantTaskErr(t, svc.GetByID(ctx, task.ID, "u1"), service.TaskErrNotFound)
}

func TestTaskLists_PartitionByCompletion(t *testing.T) {
	ctx := context.Background()
	svc := service.NewTaskService(newFakeTaskRepo())
	seedTask(t, svc, "u1", "a", true)
	seedTask(t, svc, "u1", "b", false)
	seedTask(t, svc, "u1", "c", true)
	seedTask(t, svc, "u2", "other", true)

	all := svc.GetAll(ctx, "u1").Value()
	done := svc.GetCompleted(ctx, "u1").Value()
	open := svc.GetNotCompleted(ctx, "u1").Value()

	if len(all) != 3 {
		t.Fatalf("GetAll returned %d tasks, want 3", len(all))
	}
	if len(done)+len(open) != len(all) {
		t.Errorf("completed(%d) + not completed(%d) != all(%d)", len(done), len(open), len(all))
	}
	for _, task := range done {
		if !task.IsCompleted || task.UserID != "u1" {
			t.Errorf("unexpected task in completed list: %+v", task)
		}
	}
	for _, task := range open {
		if task.IsCompleted || task.UserID != "u1" {
			t.Errorf("unexpected task in not completed list: %+v", task)
		}
	}
	if done[0].Title != "a" || done[1].Title != "c" {
		t.Errorf("creation order not kept: %q, %q", done[0].Title, done[1].Title)
	}
}

func TestTaskLists_NoTasks_EmptyNotFailure(t *testing.T) {
	ctx := context.Background()
	svc := service.NewTaskService(newFakeTaskRepo())

	for name, r := range map[string]result.Result[service.TaskError, []*domain.Task]{
		"all":           svc.GetAll(ctx, "nobody"),
		"completed":     svc.GetCompleted(ctx, "nobody"),
		"not completed": svc.GetNotCompleted(ctx, "nobody"),
	} {
		if r.IsFailure() {
			t.Errorf("%s: unexpected failure %v", name, r.Err())
			continue
		}
		if len(r.Value()) != 0 {
			t.Errorf("%s: got %d tasks", name, len(r.Value()))
		}
	}
}

func TestTaskLists_RepoFailure_Unknown(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTaskRepo()
	repo.findMany = func(context.Context, string) result.Result[repository.Error, []*domain.Task] {
		return result.Failure[[]*domain.Task](repository.ErrUnknown)
	}
	svc := service.NewTaskService(repo)

	wantTaskErr(t, svc.GetAll(ctx, "u1"), service.TaskErrUnknown)
	wantTaskErr(t, svc.GetCompleted(ctx, "u1"), service.TaskErrUnknown)
	wantTaskErr(t, svc.GetNotCompleted(ctx, "u1"), service.TaskErrUnknown)
}

func TestTaskError_StringCoversEveryTag(t *testing.T) {
	for e := service.TaskErrUnknown; e <= service.TaskErrNotBelongingToUser; e++ {
		if strings.HasPrefix(e.String(), "TaskError(") {
			t.Errorf("tag %d has no message", int(e))
		}
	}
}
