package routes

import (
	"github.com/gofiber/fiber/v2"

	"project-management-api/interfaces/api/handlers"
	"project-management-api/interfaces/api/middleware"
)

func SetupTaskRoutes(router fiber.Router, h *handlers.Handlers, jwtSecret string) {
	tasks := router.Group("/task")
	protected := middleware.Protected(jwtSecret)

	tasks.Post("/createTask/:userId", protected, h.TaskHandler.CreateTask)
	tasks.Get("/getAllTasks/:userId", protected, h.TaskHandler.GetAllTasks)
	tasks.Get("/analytics/:userId", protected, h.TaskHandler.GetAnalytics)
	tasks.Delete("/deleteTask/:userId/:taskId", protected, h.TaskHandler.DeleteTask)
	tasks.Put("/editTask/:userId/:taskId", protected, h.TaskHandler.EditTask)
	tasks.Put("/updatePhase/:userId/:taskId", protected, h.TaskHandler.UpdatePhase)

	// public task detail
	tasks.Get("/:taskId", h.TaskHandler.GetTask)
}
