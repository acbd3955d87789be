package repositories

import (
	"context"

	"github.com/google/uuid"

	"project-management-api/domain/models"
)

// Lookups return ErrNotFound when no row matches;
// callers test for it with IsNotFound.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	GetByIDAndUserID(ctx context.Context, id, userID uuid.UUID) (*models.Task, error)
	// ListByUserID returns the user's tasks in list order (ascending position).
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	Save(ctx context.Context, task *models.Task) error
	// UpdatePhase sets the phase and position of one task in a single statement.
	UpdatePhase(ctx context.Context, id uuid.UUID, phase models.Phase, position int64) error
	Delete(ctx context.Context, id uuid.UUID) error
}
