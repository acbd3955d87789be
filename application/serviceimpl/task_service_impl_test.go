package serviceimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-management-api/domain/dto"
	"project-management-api/domain/models"
	"project-management-api/domain/repositories"
	"project-management-api/domain/services"
)

var testNow = time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)

func newTestTaskService(t *testing.T) (*TaskServiceImpl, testRepos) {
	t.Helper()
	repos := setupRepos(t)
	svc := NewTaskService(repos.tasks, fixedClock(testNow)).(*TaskServiceImpl)
	return svc, repos
}

func createRequest(title string) *dto.CreateTaskRequest {
	return &dto.CreateTaskRequest{
		Title: title,
		Checklists: []dto.ChecklistItemRequest{
			{Title: "draft"},
			{Title: "review"},
		},
		Priority: "high",
	}
}

func strPtr(s string) *string { return &s }

func TestTaskService_CreateThenListGroupsUnderTodo(t *testing.T) {
	svc, _ := newTestTaskService(t)
	ctx := context.Background()
	userID := uuid.New()

	task, err := svc.CreateTask(ctx, userID, createRequest("Draft roadmap"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, task.ID)

	grouped, err := svc.ListTasks(ctx, userID, services.FilterNone)
	require.NoError(t, err)
	require.Len(t, grouped.Todo, 1)
	assert.Empty(t, grouped.Backlog)
	assert.Empty(t, grouped.InProgress)
	assert.Empty(t, grouped.Done)

	summary := grouped.Todo[0]
	assert.Equal(t, task.ID, summary.TaskID)
	assert.Equal(t, 2, summary.TotalChecklists)
	assert.Equal(t, 0, summary.MarkedChecklists)
	assert.Equal(t, "todo", summary.Phase)
}

func TestTaskService_CreateWithPhaseEmptyChecklistAndDueDate(t *testing.T) {
	svc, repos := newTestTaskService(t)
	ctx := context.Background()

	req := &dto.CreateTaskRequest{
		Title:      "Plan",
		Checklists: []dto.ChecklistItemRequest{},
		Priority:   "low",
		DueDate:    "2024-06-01",
		Phase:      "backlog",
	}
	task, err := svc.CreateTask(ctx, uuid.New(), req)
	require.NoError(t, err)

	stored, err := repos.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseBacklog, stored.Phase)
	assert.Equal(t, 0, stored.TotalChecklists)
	require.NotNil(t, stored.DueDate)
	assert.True(t, stored.DueDate.Equal(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, stored.CreatedOn.Equal(testNow))
}

func TestTaskService_CreateRejectsBadDueDate(t *testing.T) {
	svc, _ := newTestTaskService(t)

	req := createRequest("Bad date")
	req.DueDate = "next tuesday"

	_, err := svc.CreateTask(context.Background(), uuid.New(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrValidation))
}

func TestTaskService_ListFilters(t *testing.T) {
	svc, _ := newTestTaskService(t)
	ctx := context.Background()
	userID := uuid.New()

	created := map[string]time.Time{
		"today":     testNow.Add(-2 * time.Hour),
		"yesterday": testNow.AddDate(0, 0, -1).Add(-3 * time.Hour),
		"5 days":    testNow.AddDate(0, 0, -5),
		"20 days":   testNow.AddDate(0, 0, -20),
		"40 days":   testNow.AddDate(0, 0, -40),
	}
	for title, at := range created {
		svc.now = fixedClock(at)
		_, err := svc.CreateTask(ctx, userID, createRequest(title))
		require.NoError(t, err)
	}
	svc.now = fixedClock(testNow)

	tests := []struct {
		filter services.TaskFilter
		want   int
	}{
		{services.FilterNone, 5},
		{services.FilterToday, 1},
		{services.FilterYesterday, 1},
		{services.FilterThisWeek, 3},
		{services.FilterThisMonth, 4},
		{services.TaskFilter("last_decade"), 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			grouped, err := svc.ListTasks(ctx, userID, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, grouped.Len())
		})
	}

	grouped, err := svc.ListTasks(ctx, userID, services.FilterYesterday)
	require.NoError(t, err)
	require.Len(t, grouped.Todo, 1)
	assert.Equal(t, "yesterday", grouped.Todo[0].Title)
}

func TestTaskService_ListPartitionsByPhase(t *testing.T) {
	svc, _ := newTestTaskService(t)
	ctx := context.Background()
	userID := uuid.New()

	for _, phase := range []string{"backlog", "todo", "inProgress", "done", "done"} {
		req := createRequest("task in " + phase)
		req.Phase = phase
		_, err := svc.CreateTask(ctx, userID, req)
		require.NoError(t, err)
	}
	_, err := svc.CreateTask(ctx, uuid.New(), createRequest("not mine"))
	require.NoError(t, err)

	grouped, err := svc.ListTasks(ctx, userID, services.FilterNone)
	require.NoError(t, err)
	assert.Equal(t, 5, grouped.Len())
	assert.Len(t, grouped.Backlog, 1)
	assert.Len(t, grouped.Todo, 1)
	assert.Len(t, grouped.InProgress, 1)
	assert.Len(t, grouped.Done, 2)

	for _, s := range grouped.Done {
		assert.Equal(t, "done", s.Phase)
	}
}

func TestTaskService_ListUnknownPhaseFails(t *testing.T) {
	svc, repos := newTestTaskService(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repos.tasks.Create(ctx, &models.Task{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "legacy",
		Phase:     models.Phase("archived"),
		CreatedOn: testNow,
		Position:  1,
	}))

	_, err := svc.ListTasks(ctx, userID, services.FilterNone)
	require.Error(t, err)
	assert.False(t, errors.Is(err, services.ErrNotFound))
	assert.False(t, errors.Is(err, services.ErrValidation))
}

func TestTaskService_Analytics(t *testing.T) {
	ctx := context.Background()

	t.Run("done task with due date", func(t *testing.T) {
		svc, _ := newTestTaskService(t)
		userID := uuid.New()

		req := createRequest("Ship it")
		req.Phase = "done"
		req.DueDate = "2024-05-20"
		_, err := svc.CreateTask(ctx, userID, req)
		require.NoError(t, err)

		got, err := svc.GetAnalytics(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.PriorityCounts["high"])
		assert.Equal(t, 1, got.PhaseCounts["done"])
		assert.Equal(t, 0, got.DueDateNotPassedCount)
	})

	t.Run("fixed buckets and skipped priority", func(t *testing.T) {
		svc, repos := newTestTaskService(t)
		userID := uuid.New()

		req := createRequest("Due soon")
		req.DueDate = "2024-05-20"
		req.Priority = "moderate"
		_, err := svc.CreateTask(ctx, userID, req)
		require.NoError(t, err)

		require.NoError(t, repos.tasks.Create(ctx, &models.Task{
			ID:        uuid.New(),
			UserID:    userID,
			Title:     "no priority",
			Phase:     models.PhaseBacklog,
			CreatedOn: testNow,
			Position:  1,
		}))

		got, err := svc.GetAnalytics(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"backlog": 1, "todo": 1, "inProgress": 0, "done": 0}, got.PhaseCounts)
		assert.Equal(t, map[string]int{"low": 0, "moderate": 1, "high": 0}, got.PriorityCounts)
		assert.Equal(t, 1, got.DueDateNotPassedCount)
	})

	t.Run("no tasks", func(t *testing.T) {
		svc, _ := newTestTaskService(t)

		got, err := svc.GetAnalytics(ctx, uuid.New())
		require.NoError(t, err)
		assert.Len(t, got.PhaseCounts, 4)
		assert.Len(t, got.PriorityCounts, 3)
		assert.Equal(t, 0, got.DueDateNotPassedCount)
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	svc, repos := newTestTaskService(t)
	ctx := context.Background()
	owner := uuid.New()

	task, err := svc.CreateTask(ctx, owner, createRequest("Mine"))
	require.NoError(t, err)

	err = svc.DeleteTask(ctx, uuid.New(), task.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))

	_, err = repos.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err, "a foreign delete must not remove the task")

	require.NoError(t, svc.DeleteTask(ctx, owner, task.ID))

	err = svc.DeleteTask(ctx, owner, task.ID)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestTaskService_EditTask(t *testing.T) {
	ctx := context.Background()

	t.Run("absent and empty fields keep old values", func(t *testing.T) {
		svc, repos := newTestTaskService(t)
		owner := uuid.New()
		req := createRequest("Before edit")
		req.DueDate = "2024-05-30"
		task, err := svc.CreateTask(ctx, owner, req)
		require.NoError(t, err)

		err = svc.EditTask(ctx, owner, task.ID, &dto.EditTaskRequest{
			Title:    strPtr(""),
			Priority: strPtr("low"),
			DueDate:  strPtr(""),
		})
		require.NoError(t, err)

		stored, err := repos.tasks.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, "Before edit", stored.Title)
		assert.Equal(t, models.PriorityLow, stored.Priority)
		require.NotNil(t, stored.DueDate)
		assert.Len(t, stored.Checklists, 2)
	})

	t.Run("checklist replacement recounts", func(t *testing.T) {
		svc, repos := newTestTaskService(t)
		owner := uuid.New()
		task, err := svc.CreateTask(ctx, owner, createRequest("Lists"))
		require.NoError(t, err)

		keepID := task.Checklists[0].ID.String()
		checklists := []dto.ChecklistItemRequest{
			{ID: keepID, Title: "draft", IsMarked: true},
			{Title: "publish", IsMarked: true},
			{Title: "announce"},
		}
		err = svc.EditTask(ctx, owner, task.ID, &dto.EditTaskRequest{Checklists: &checklists})
		require.NoError(t, err)

		stored, err := repos.tasks.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, stored.TotalChecklists)
		assert.Equal(t, 2, stored.MarkedChecklists)
		assert.Equal(t, keepID, stored.Checklists[0].ID.String())
		assert.Equal(t, "Lists", stored.Title)
	})

	t.Run("explicit empty checklist clears it", func(t *testing.T) {
		svc, repos := newTestTaskService(t)
		owner := uuid.New()
		task, err := svc.CreateTask(ctx, owner, createRequest("Clear"))
		require.NoError(t, err)

		empty := []dto.ChecklistItemRequest{}
		require.NoError(t, svc.EditTask(ctx, owner, task.ID, &dto.EditTaskRequest{Checklists: &empty}))

		stored, err := repos.tasks.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, stored.TotalChecklists)
		assert.Equal(t, 0, stored.MarkedChecklists)
	})

	t.Run("foreign task is not found", func(t *testing.T) {
		svc, _ := newTestTaskService(t)
		task, err := svc.CreateTask(ctx, uuid.New(), createRequest("Theirs"))
		require.NoError(t, err)

		err = svc.EditTask(ctx, uuid.New(), task.ID, &dto.EditTaskRequest{Title: strPtr("Mine now")})
		assert.True(t, errors.Is(err, services.ErrNotFound))
	})
}

// deleteOnLookupRepo removes a task right after handing it out, the way a
// concurrent delete would between an edit's read and its write.
type deleteOnLookupRepo struct {
	repositories.TaskRepository
}

func (r deleteOnLookupRepo) GetByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*models.Task, error) {
	task, err := r.TaskRepository.GetByIDAndUserID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := r.TaskRepository.Delete(ctx, id); err != nil {
		return nil, err
	}
	return task, nil
}

func TestTaskService_EditAfterConcurrentDelete(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()
	owner := uuid.New()

	creator := NewTaskService(repos.tasks, fixedClock(testNow))
	task, err := creator.CreateTask(ctx, owner, createRequest("Racing"))
	require.NoError(t, err)

	svc := NewTaskService(deleteOnLookupRepo{repos.tasks}, fixedClock(testNow))
	err = svc.EditTask(ctx, owner, task.ID, &dto.EditTaskRequest{Title: strPtr("Resurrected")})
	assert.True(t, errors.Is(err, services.ErrNotFound))

	_, err = repos.tasks.GetByID(ctx, task.ID)
	assert.True(t, repositories.IsNotFound(err), "an edit must not bring a deleted task back")
}

func TestTaskService_UpdatePhaseTwiceKeepsOneRecord(t *testing.T) {
	svc, repos := newTestTaskService(t)
	ctx := context.Background()
	owner := uuid.New()

	req := createRequest("Twice")
	req.DueDate = "2024-05-30"
	task, err := svc.CreateTask(ctx, owner, req)
	require.NoError(t, err)

	before, err := repos.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)

	require.NoError(t, svc.UpdatePhase(ctx, owner, task.ID, models.PhaseInProgress))
	require.NoError(t, svc.UpdatePhase(ctx, owner, task.ID, models.PhaseInProgress))

	grouped, err := svc.ListTasks(ctx, owner, services.FilterNone)
	require.NoError(t, err)
	assert.Equal(t, 1, grouped.Len())
	require.Len(t, grouped.InProgress, 1)

	got := grouped.InProgress[0]
	assert.Equal(t, task.ID, got.TaskID)
	assert.Equal(t, before.Title, got.Title)
	assert.Equal(t, before.TotalChecklists, got.TotalChecklists)
	assert.Equal(t, before.MarkedChecklists, got.MarkedChecklists)
	require.Len(t, got.Checklists, len(before.Checklists))
	for i, item := range before.Checklists {
		assert.Equal(t, item.ID, got.Checklists[i].ID)
		assert.Equal(t, item.Title, got.Checklists[i].Title)
	}
	require.NotNil(t, got.DueDate)
	assert.True(t, before.DueDate.Equal(*got.DueDate))
	assert.True(t, before.CreatedOn.Equal(got.CreatedOn))
}

func TestTaskService_UpdatePhase(t *testing.T) {
	svc, _ := newTestTaskService(t)
	ctx := context.Background()
	owner := uuid.New()

	first, err := svc.CreateTask(ctx, owner, createRequest("first"))
	require.NoError(t, err)
	req := createRequest("second")
	req.Phase = "done"
	_, err = svc.CreateTask(ctx, owner, req)
	require.NoError(t, err)

	require.NoError(t, svc.UpdatePhase(ctx, owner, first.ID, models.PhaseDone))

	grouped, err := svc.ListTasks(ctx, owner, services.FilterNone)
	require.NoError(t, err)
	assert.Equal(t, 2, grouped.Len())
	assert.Empty(t, grouped.Todo)
	require.Len(t, grouped.Done, 2)
	// a phase change re-appends the task
	assert.Equal(t, "second", grouped.Done[0].Title)
	assert.Equal(t, "first", grouped.Done[1].Title)
	assert.Equal(t, 2, grouped.Done[1].TotalChecklists)

	err = svc.UpdatePhase(ctx, uuid.New(), first.ID, models.PhaseTodo)
	assert.True(t, errors.Is(err, services.ErrNotFound))

	err = svc.UpdatePhase(ctx, owner, first.ID, models.Phase("archived"))
	assert.True(t, errors.Is(err, services.ErrValidation))
}

func TestTaskService_GetTask(t *testing.T) {
	svc, _ := newTestTaskService(t)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, uuid.New(), createRequest("Public"))
	require.NoError(t, err)

	got, err := svc.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Public", got.Title)

	_, err = svc.GetTask(ctx, uuid.New())
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestNextPositionIncreases(t *testing.T) {
	svc, _ := newTestTaskService(t)

	prev := svc.nextPosition()
	assert.Equal(t, testNow.UnixNano(), prev, "positions follow the service clock")
	for i := 0; i < 100; i++ {
		next := svc.nextPosition()
		assert.Greater(t, next, prev)
		prev = next
	}
}
