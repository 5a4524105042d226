package handlers

import (
	"errors"
	"log/slog"

	"github.com/atakanyildirim/taskdeck/internal/config"
	"github.com/atakanyildirim/taskdeck/internal/dto"
	"github.com/atakanyildirim/taskdeck/internal/services"
	"github.com/atakanyildirim/taskdeck/internal/session"
	"github.com/atakanyildirim/taskdeck/internal/token"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	auth   *services.AuthService
	tokens *token.Service
	cfg    *config.Config
}

func NewAuthHandler(auth *services.AuthService, tokens *token.Service, cfg *config.Config) *AuthHandler {
	return &AuthHandler{auth: auth, tokens: tokens, cfg: cfg}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, err := h.auth.Register(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEmail), errors.Is(err, services.ErrWeakPassword):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrEmailTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("signup failed", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create user. Please try again.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SignupResponse{
		Message: "User created successfully",
		User:    dto.UserResponse{ID: user.ID, Email: user.Email},
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("login failed", "error", err, "path", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	minted, err := h.tokens.Mint(user.ID, user.Email)
	if err != nil {
		slog.Error("token mint failed", "error", err, "user_id", user.ID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	session.Set(c, minted, h.cfg.SessionTTL, h.cfg.Production())

	return c.JSON(dto.LoginResponse{
		Message: "Logged in successfully",
		User:    dto.UserResponse{ID: user.ID, Email: user.Email},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	session.Clear(c, h.cfg.Production())
	return c.JSON(dto.MessageResponse{Message: "Logged out successfully"})
}
