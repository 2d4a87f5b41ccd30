package controllers

import (
	"Backend-PlanujSmeny/src/middleware"
	"Backend-PlanujSmeny/src/services/auth"
	"Backend-PlanujSmeny/src/utils"
	"Backend-PlanujSmeny/src/views"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// LoginRequest body ของการ login
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
	From     string `json:"-" form:"from"`
}

type AuthController struct {
	Auth     *auth.Service
	TokenTTL time.Duration
}

func NewAuthController(svc *auth.Service, tokenTTL time.Duration) *AuthController {
	return &AuthController{Auth: svc, TokenTTL: tokenTTL}
}

func rateLimitMessage(remaining time.Duration) string {
	return fmt.Sprintf("Too many login attempts. Please try again in %d minutes and %d seconds.",
		int(remaining.Minutes()), int(remaining.Seconds())%60)
}

// LoginUser godoc
// @Summary      Log in with a demo account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body LoginRequest true "Credentials"
// @Success      200  {object}  auth.Session
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      429  {object}  models.ErrorResponse
// @Router       /api/auth/login [post]
func (ac *AuthController) LoginUser(c *fiber.Ctx) error {
	// 1. Input validation
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "INVALID_REQUEST",
		})
	}

	// 2. Authenticate (rate limiting happens inside)
	session, err := ac.Auth.Login(req.Username, req.Password)
	var rl *auth.RateLimitError
	switch {
	case errors.As(err, &rl):
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":         rateLimitMessage(rl.Remaining),
			"code":          "RATE_LIMITED",
			"remainingTime": int(rl.Remaining.Seconds()),
		})
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "INVALID_CREDENTIALS",
		})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Token generation failed",
			"code":  "TOKEN_ERROR",
		})
	}

	// 3. Set security headers
	c.Set("X-Frame-Options", "DENY")
	c.Set("X-Content-Type-Options", "nosniff")

	// 4. Return response
	return c.JSON(fiber.Map{
		"token":     session.Token,
		"sessionId": session.SessionID,
		"expiresIn": int(ac.TokenTTL.Seconds()),
		"user":      session.User,
		"message":   "Login successful",
	})
}

// LogoutUser godoc
// @Summary      Log out and revoke the token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  models.ErrorResponse
// @Router       /api/auth/logout [post]
func (ac *AuthController) LogoutUser(c *fiber.Ctx) error {
	claims := middleware.Claims(c)
	token, _ := c.Locals("token").(string)
	if claims == nil || token == "" {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Missing or invalid Authorization header")
	}
	if err := ac.Auth.Logout(token, claims); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to revoke token")
	}
	return c.JSON(fiber.Map{"message": "Logout successful"})
}

// safeFrom keeps the post-login redirect on this site.
func safeFrom(from string) string {
	if !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") || strings.ContainsAny(from, "\\\r\n\t") {
		return "/"
	}
	u, err := url.Parse(from)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil || strings.HasPrefix(u.Path, "/login") {
		return "/"
	}
	return from
}

// LoginPage แสดงหน้า login
func (ac *AuthController) LoginPage(c *fiber.Ctx) error {
	return views.Render(c, "login", views.LoginPage{From: safeFrom(c.Query("from"))})
}

// LoginForm รับฟอร์ม login จากหน้าเว็บ
func (ac *AuthController) LoginForm(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid request format")
	}
	page := views.LoginPage{From: safeFrom(req.From), Username: req.Username}

	session, err := ac.Auth.Login(req.Username, req.Password)
	var rl *auth.RateLimitError
	switch {
	case errors.As(err, &rl):
		page.Error = rateLimitMessage(rl.Remaining)
		c.Status(fiber.StatusTooManyRequests)
		return views.Render(c, "login", page)
	case errors.Is(err, auth.ErrInvalidCredentials):
		page.Error = err.Error()
		c.Status(fiber.StatusUnauthorized)
		return views.Render(c, "login", page)
	case err != nil:
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect(page.From, fiber.StatusSeeOther)
}

// LogoutForm ออกจากระบบจากหน้าเว็บ
func (ac *AuthController) LogoutForm(c *fiber.Ctx) error {
	if claims := middleware.Claims(c); claims != nil {
		token, _ := c.Locals("token").(string)
		if err := ac.Auth.Logout(token, claims); err != nil {
			return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to revoke token")
		}
	}
	c.ClearCookie(middleware.SessionCookie)
	return c.Redirect("/login", fiber.StatusSeeOther)
}
