package services

import (
	"context"

	"github.com/google/uuid"

	"project-management-api/domain/dto"
	"project-management-api/domain/models"
)

type UserService interface {
	// Register creates the account and returns a signed token for it.
	Register(ctx context.Context, req *dto.RegisterRequest) (string, *models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, req *dto.UpdateSettingsRequest) error
}
