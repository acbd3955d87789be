package handlers

import (
	"github.com/gofiber/fiber/v2"

	"project-management-api/domain/dto"
	"project-management-api/domain/models"
	"project-management-api/domain/services"
	"project-management-api/pkg/logger"
	"project-management-api/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return utils.ValidationErrorResponse(c, "Invalid user ID", nil)
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, "Title, checklists, and priority are required fields.", errors)
	}

	task, err := h.taskService.CreateTask(ctx, userID, &req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.CreatedResponse(c, dto.CreateTaskResponse{
		TaskID:  task.ID,
		Message: "Task created successfully",
	})
}

func (h *TaskHandler) GetAllTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return utils.ValidationErrorResponse(c, "Invalid user ID", nil)
	}

	filter := services.TaskFilter(c.Query("filter"))

	grouped, err := h.taskService.ListTasks(ctx, userID, filter)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.ListTasksResponse{GroupedTasks: grouped})
}

func (h *TaskHandler) GetAnalytics(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return utils.ValidationErrorResponse(c, "Invalid user ID", nil)
	}

	analytics, err := h.taskService.GetAnalytics(ctx, userID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, analytics)
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, okUser := parseUUIDParam(c, "userId")
	taskID, okTask := parseUUIDParam(c, "taskId")
	if !okUser || !okTask {
		return utils.ValidationErrorResponse(c, "Invalid user ID or task ID", nil)
	}

	if err := h.taskService.DeleteTask(ctx, userID, taskID); err != nil {
		return handleServiceError(c, err)
	}

	return utils.MessageResponse(c, "Task deleted successfully")
}

func (h *TaskHandler) EditTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, okUser := parseUUIDParam(c, "userId")
	taskID, okTask := parseUUIDParam(c, "taskId")
	if !okUser || !okTask {
		return utils.ValidationErrorResponse(c, "Invalid user ID or task ID", nil)
	}

	var req dto.EditTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, "", errors)
	}

	if err := h.taskService.EditTask(ctx, userID, taskID, &req); err != nil {
		return handleServiceError(c, err)
	}

	return utils.MessageResponse(c, "Task updated successfully")
}

func (h *TaskHandler) UpdatePhase(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, okUser := parseUUIDParam(c, "userId")
	taskID, okTask := parseUUIDParam(c, "taskId")
	if !okUser || !okTask {
		return utils.ValidationErrorResponse(c, "Invalid user ID or task ID", nil)
	}

	var req dto.UpdatePhaseRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, "", errors)
	}

	if err := h.taskService.UpdatePhase(ctx, userID, taskID, models.Phase(req.Phase)); err != nil {
		return handleServiceError(c, err)
	}

	return utils.MessageResponse(c, "Task phase updated successfully")
}

// GetTask is public: anyone holding a task id can read its details.
func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, ok := parseUUIDParam(c, "taskId")
	if !ok {
		return utils.NotFoundResponse(c, "Task not found")
	}

	task, err := h.taskService.GetTask(ctx, taskID)
	if err != nil {
		return handleServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.TaskToDetailResponse(task))
}
