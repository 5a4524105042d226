package handlers

import (
	"errors"
	"log/slog"

	"github.com/atakanyildirim/taskdeck/internal/dto"
	"github.com/atakanyildirim/taskdeck/internal/services"
	"github.com/atakanyildirim/taskdeck/internal/token"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// TaskHandler re-derives the caller's identity from the token on every
// call instead of trusting upstream middleware; the gate can be bypassed
// in some deployment shapes.
type TaskHandler struct {
	tasks  *services.TaskService
	tokens *token.Service
}

func NewTaskHandler(tasks *services.TaskService, tokens *token.Service) *TaskHandler {
	return &TaskHandler{tasks: tasks, tokens: tokens}
}

func (h *TaskHandler) List(c *fiber.Ctx) error {
	claims, err := h.tokens.FromRequest(c)
	if err != nil {
		return unauthorized(c)
	}

	tasks, err := h.tasks.List(claims.UserID, dto.TaskFilter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Search:   c.Query("search"),
	})
	if err != nil {
		slog.Error("task list failed", "error", err, "user_id", claims.UserID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch tasks",
		})
	}

	return c.JSON(tasks)
}

func (h *TaskHandler) Create(c *fiber.Ctx) error {
	claims, err := h.tokens.FromRequest(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	task, err := h.tasks.Create(claims.UserID, req)
	if err != nil {
		if isValidationErr(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("task create failed", "error", err, "user_id", claims.UserID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create task",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

func (h *TaskHandler) Update(c *fiber.Ctx) error {
	claims, err := h.tokens.FromRequest(c)
	if err != nil {
		return unauthorized(c)
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid task ID",
		})
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	task, err := h.tasks.Update(claims.UserID, taskID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case isValidationErr(err):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("task update failed", "error", err, "user_id", claims.UserID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update task",
		})
	}

	return c.JSON(task)
}

func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	claims, err := h.tokens.FromRequest(c)
	if err != nil {
		return unauthorized(c)
	}

	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid task ID",
		})
	}

	if err := h.tasks.Delete(claims.UserID, taskID); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("task delete failed", "error", err, "user_id", claims.UserID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete task",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Task deleted successfully"})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func isValidationErr(err error) bool {
	return errors.Is(err, services.ErrTitleRequired) ||
		errors.Is(err, services.ErrInvalidStatus) ||
		errors.Is(err, services.ErrInvalidPriority)
}
