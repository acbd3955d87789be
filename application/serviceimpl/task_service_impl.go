package serviceimpl

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"project-management-api/domain/dto"
	"project-management-api/domain/models"
	"project-management-api/domain/repositories"
	"project-management-api/domain/services"
	"project-management-api/pkg/logger"
	"project-management-api/pkg/utils"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	now      func() time.Time

	lastPosition atomic.Int64
}

// NewTaskService builds the task service. now is the clock used for
// creation stamps and date filters; nil means time.Now.
func NewTaskService(taskRepo repositories.TaskRepository, now func() time.Time) services.TaskService {
	if now == nil {
		now = time.Now
	}
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		now:      now,
	}
}

// nextPosition hands out strictly increasing list positions, seeded from the
// service clock so positions keep growing across restarts.
func (s *TaskServiceImpl) nextPosition() int64 {
	for {
		last := s.lastPosition.Load()
		next := s.now().UnixNano()
		if next <= last {
			next = last + 1
		}
		if s.lastPosition.CompareAndSwap(last, next) {
			return next
		}
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	now := s.now()

	task := &models.Task{
		ID:         uuid.New(),
		UserID:     userID,
		Title:      req.Title,
		Priority:   models.Priority(req.Priority),
		Phase:      models.PhaseTodo,
		CreatedOn:  now,
		Checklists: dto.ChecklistRequestsToItems(req.Checklists),
		Position:   s.nextPosition(),
		UpdatedAt:  now,
	}

	if req.Phase != "" {
		task.Phase = models.Phase(req.Phase)
	}

	if req.DueDate != "" {
		dueDate, err := utils.ParseDate(req.DueDate, now.Location())
		if err != nil {
			return nil, services.NewValidationError("Invalid due date")
		}
		task.DueDate = &dueDate
	}

	task.RecountChecklists()

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created successfully", "task_id", task.ID, "user_id", userID)

	return task, nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, userID uuid.UUID, filter services.TaskFilter) (*dto.GroupedTasks, error) {
	tasks, err := s.taskRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get user tasks", "user_id", userID, "error", err)
		return nil, err
	}

	tasks = filterTasks(tasks, filter, s.now())

	grouped := dto.NewGroupedTasks()
	for _, task := range tasks {
		summary := dto.TaskToSummaryResponse(task)
		switch task.Phase {
		case models.PhaseBacklog:
			grouped.Backlog = append(grouped.Backlog, summary)
		case models.PhaseTodo:
			grouped.Todo = append(grouped.Todo, summary)
		case models.PhaseInProgress:
			grouped.InProgress = append(grouped.InProgress, summary)
		case models.PhaseDone:
			grouped.Done = append(grouped.Done, summary)
		default:
			logger.ErrorContext(ctx, "Task has unknown phase", "task_id", task.ID, "phase", task.Phase)
			return nil, fmt.Errorf("task %s has unknown phase %q", task.ID, task.Phase)
		}
	}

	return grouped, nil
}

func (s *TaskServiceImpl) GetAnalytics(ctx context.Context, userID uuid.UUID) (*dto.AnalyticsResponse, error) {
	tasks, err := s.taskRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get user tasks", "user_id", userID, "error", err)
		return nil, err
	}

	phaseCounts := make(map[string]int, len(models.Phases))
	for _, phase := range models.Phases {
		phaseCounts[string(phase)] = 0
	}
	priorityCounts := make(map[string]int, len(models.Priorities))
	for _, priority := range models.Priorities {
		priorityCounts[string(priority)] = 0
	}

	dueDateNotPassed := 0
	for _, task := range tasks {
		if _, ok := phaseCounts[string(task.Phase)]; ok {
			phaseCounts[string(task.Phase)]++
		}
		// tasks without a known priority are left out of the tally
		if _, ok := priorityCounts[string(task.Priority)]; ok {
			priorityCounts[string(task.Priority)]++
		}
		if task.HasDueDate() && task.Phase != models.PhaseDone {
			dueDateNotPassed++
		}
	}

	return &dto.AnalyticsResponse{
		PhaseCounts:           phaseCounts,
		PriorityCounts:        priorityCounts,
		DueDateNotPassedCount: dueDateNotPassed,
	}, nil
}

func (s *TaskServiceImpl) findOwnedTask(ctx context.Context, userID, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByIDAndUserID(ctx, taskID, userID)
	if err != nil {
		if repositories.IsNotFound(err) {
			logger.WarnContext(ctx, "Task not found", "task_id", taskID, "user_id", userID)
			return nil, services.NewNotFoundError("Task not found")
		}
		logger.ErrorContext(ctx, "Failed to get task", "task_id", taskID, "error", err)
		return nil, err
	}
	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	task, err := s.findOwnedTask(ctx, userID, taskID)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, task.ID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted successfully", "task_id", taskID, "user_id", userID)
	return nil
}

func (s *TaskServiceImpl) EditTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.EditTaskRequest) error {
	task, err := s.findOwnedTask(ctx, userID, taskID)
	if err != nil {
		return err
	}

	if req.Title != nil && *req.Title != "" {
		task.Title = *req.Title
	}
	if req.Checklists != nil {
		task.Checklists = dto.ChecklistRequestsToItems(*req.Checklists)
	}
	if req.Priority != nil && *req.Priority != "" {
		task.Priority = models.Priority(*req.Priority)
	}
	if req.DueDate != nil && *req.DueDate != "" {
		dueDate, err := utils.ParseDate(*req.DueDate, s.now().Location())
		if err != nil {
			return services.NewValidationError("Invalid due date")
		}
		task.DueDate = &dueDate
	}

	task.RecountChecklists()
	task.UpdatedAt = s.now()

	if err := s.taskRepo.Save(ctx, task); err != nil {
		if repositories.IsNotFound(err) {
			logger.WarnContext(ctx, "Task deleted before update", "task_id", taskID)
			return services.NewNotFoundError("Task not found")
		}
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task updated successfully", "task_id", taskID, "user_id", userID)
	return nil
}

// UpdatePhase moves the task to the end of the user's list in its new phase.
func (s *TaskServiceImpl) UpdatePhase(ctx context.Context, userID, taskID uuid.UUID, phase models.Phase) error {
	if !phase.Valid() {
		return services.NewValidationError("Invalid phase")
	}

	task, err := s.findOwnedTask(ctx, userID, taskID)
	if err != nil {
		return err
	}

	if err := s.taskRepo.UpdatePhase(ctx, task.ID, phase, s.nextPosition()); err != nil {
		if repositories.IsNotFound(err) {
			// deleted between lookup and update
			return services.NewNotFoundError("Task not found")
		}
		logger.ErrorContext(ctx, "Failed to update task phase", "task_id", taskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task phase updated", "task_id", taskID, "phase", phase)
	return nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, services.NewNotFoundError("Task not found")
		}
		logger.ErrorContext(ctx, "Failed to get task", "task_id", taskID, "error", err)
		return nil, err
	}
	return task, nil
}
