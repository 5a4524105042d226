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

const stateCookie = "oauth_state"

// OAuthHandler drives the Google sign-in flow. Any failure during the
// callback lands the user back on the login page with an error flag, never
// a raw 5xx.
type OAuthHandler struct {
	google *services.GoogleService
	auth   *services.AuthService
	tokens *token.Service
	cfg    *config.Config
}

func NewOAuthHandler(google *services.GoogleService, auth *services.AuthService, tokens *token.Service, cfg *config.Config) *OAuthHandler {
	return &OAuthHandler{google: google, auth: auth, tokens: tokens, cfg: cfg}
}

// Begin redirects to the Google consent screen.
func (h *OAuthHandler) Begin(c *fiber.Ctx) error {
	if !h.google.Configured() {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Google OAuth is not configured",
		})
	}

	state, err := services.NewState()
	if err != nil {
		slog.Error("oauth state generation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to initialize Google sign-in",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HTTPOnly: true,
		Secure:   h.cfg.Production(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect(h.google.AuthURL(state), fiber.StatusFound)
}

// Callback handles the provider redirect: state check, code exchange,
// account create-or-link, session cookie, dashboard redirect.
func (h *OAuthHandler) Callback(c *fiber.Ctx) error {
	if c.Query("error") != "" {
		return h.loginRedirect(c, "google_auth_failed")
	}

	code := c.Query("code")
	if code == "" {
		return h.loginRedirect(c, "missing_code")
	}

	state := c.Query("state")
	if state == "" || state != c.Cookies(stateCookie) {
		return h.loginRedirect(c, "invalid_state")
	}
	c.Cookie(&fiber.Cookie{
		Name:     stateCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.cfg.Production(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	profile, err := h.google.Exchange(c.Context(), code)
	if err != nil {
		slog.Error("google exchange failed", "error", err, "path", c.Path())
		return h.loginRedirect(c, "google_auth_failed")
	}

	user, err := h.auth.SignInGoogle(*profile)
	if err != nil {
		if errors.Is(err, services.ErrGoogleIDConflict) {
			return h.loginRedirect(c, "account_conflict")
		}
		slog.Error("google sign-in failed", "error", err, "path", c.Path())
		return h.loginRedirect(c, "google_auth_failed")
	}

	minted, err := h.tokens.Mint(user.ID, user.Email)
	if err != nil {
		slog.Error("token mint failed", "error", err, "user_id", user.ID.String())
		return h.loginRedirect(c, "google_auth_failed")
	}

	session.Set(c, minted, h.cfg.SessionTTL, h.cfg.Production())
	return c.Redirect(h.cfg.AppBaseURL+"/dashboard?login=success", fiber.StatusFound)
}

func (h *OAuthHandler) loginRedirect(c *fiber.Ctx, errCode string) error {
	return c.Redirect(h.cfg.AppBaseURL+"/auth/login?error="+errCode, fiber.StatusFound)
}
