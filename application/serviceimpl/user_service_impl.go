package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"project-management-api/domain/dto"
	"project-management-api/domain/models"
	"project-management-api/domain/repositories"
	"project-management-api/domain/services"
	"project-management-api/pkg/logger"
	"project-management-api/pkg/utils"
)

type UserServiceImpl struct {
	userRepo  repositories.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
	now       func() time.Time
}

func NewUserService(userRepo repositories.UserRepository, jwtSecret string, jwtExpiry time.Duration) services.UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		now:       time.Now,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (string, *models.User, error) {
	if req.Password != req.ConfirmPassword {
		return "", nil, services.NewValidationError("Password does not match")
	}

	existingUser, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !repositories.IsNotFound(err) {
		logger.ErrorContext(ctx, "Failed to look up email", "error", err)
		return "", nil, err
	}
	if existingUser != nil {
		logger.WarnContext(ctx, "Email already exists", "email", req.Email)
		return "", nil, services.NewConflictError("User with this email already exists.")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return "", nil, err
	}

	now := s.now()
	user := &models.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repositories.ErrDuplicate) {
			return "", nil, services.NewConflictError("User with this email already exists.")
		}
		logger.ErrorContext(ctx, "Failed to create user in database", "error", err)
		return "", nil, err
	}

	token, err := utils.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry, now)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate JWT", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User created successfully", "user_id", user.ID, "email", user.Email)

	return token, user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if repositories.IsNotFound(err) {
			logger.WarnContext(ctx, "Login failed - email not found", "email", req.Email)
			return "", nil, services.NewValidationError("User does not exist")
		}
		logger.ErrorContext(ctx, "Failed to look up user", "error", err)
		return "", nil, err
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		logger.WarnContext(ctx, "Login failed - invalid password", "user_id", user.ID)
		return "", nil, services.NewInvalidCredentialsError("Incorrect credentials")
	}

	token, err := utils.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry, s.now())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate JWT", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User logged in successfully", "user_id", user.ID)

	return token, user, nil
}

// UpdateSettings acts on the user named by userID, whoever the caller is.
func (s *UserServiceImpl) UpdateSettings(ctx context.Context, userID uuid.UUID, req *dto.UpdateSettingsRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if repositories.IsNotFound(err) {
			logger.WarnContext(ctx, "User not found for settings update", "user_id", userID)
			return services.NewNotFoundError("User not found")
		}
		return err
	}

	if req.OldPassword != "" {
		if !utils.CheckPassword(req.OldPassword, user.Password) {
			logger.WarnContext(ctx, "Settings update - old password mismatch", "user_id", userID)
			return services.NewValidationError("Old password does not match")
		}
		if req.NewPassword != "" {
			hashedPassword, err := utils.HashPassword(req.NewPassword)
			if err != nil {
				logger.ErrorContext(ctx, "Failed to hash password", "error", err)
				return err
			}
			user.Password = hashedPassword
		}
	}

	if req.Name != "" {
		user.Name = req.Name
	}

	user.UpdatedAt = s.now()

	if err := s.userRepo.Update(ctx, userID, user); err != nil {
		logger.ErrorContext(ctx, "Failed to update user settings", "user_id", userID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "User settings updated", "user_id", userID)
	return nil
}
