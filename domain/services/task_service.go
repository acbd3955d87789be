package services

import (
	"context"

	"github.com/google/uuid"

	"project-management-api/domain/dto"
	"project-management-api/domain/models"
)

// TaskFilter narrows listings by creation date.
type TaskFilter string

const (
	FilterNone      TaskFilter = ""
	FilterToday     TaskFilter = "today"
	FilterYesterday TaskFilter = "yesterday"
	FilterThisWeek  TaskFilter = "this_week"
	FilterThisMonth TaskFilter = "this_month"
)

type TaskService interface {
	CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	ListTasks(ctx context.Context, userID uuid.UUID, filter TaskFilter) (*dto.GroupedTasks, error)
	GetAnalytics(ctx context.Context, userID uuid.UUID) (*dto.AnalyticsResponse, error)
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
	EditTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.EditTaskRequest) error
	UpdatePhase(ctx context.Context, userID, taskID uuid.UUID, phase models.Phase) error
	// GetTask looks a task up by id alone, without an ownership check.
	GetTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error)
}
