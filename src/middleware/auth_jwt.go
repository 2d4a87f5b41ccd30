package middleware

import (
	"Backend-PlanujSmeny/src/utils"
	"log"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const SessionCookie = "session"

// tokenFrom reads the bearer token, falling back to the session cookie.
func tokenFrom(c *fiber.Ctx) string {
	if authHeader := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Cookies(SessionCookie)
}

// authError is why a request could not be authenticated.
type authError struct {
	status int
	reason string
}

func authenticate(c *fiber.Ctx) (*utils.JWTClaims, string, *authError) {
	tokenStr := tokenFrom(c)
	if tokenStr == "" {
		return nil, "", &authError{fiber.StatusUnauthorized, "Missing or invalid Authorization header"}
	}

	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		return nil, "", &authError{fiber.StatusUnauthorized, "Invalid or expired token"}
	}

	// fail closed when Redis errors
	blacklisted, err := utils.IsTokenBlacklisted(tokenStr)
	if err != nil {
		log.Println("⚠️ blacklist check failed:", err)
		return nil, "", &authError{fiber.StatusServiceUnavailable, "Unable to verify token, please try again"}
	}
	if blacklisted {
		return nil, "", &authError{fiber.StatusUnauthorized, "Token has been revoked"}
	}
	return claims, tokenStr, nil
}

func setLocals(c *fiber.Ctx, claims *utils.JWTClaims, token string) {
	c.Locals("claims", claims)
	c.Locals("token", token)
	c.Locals("username", claims.Username)
	c.Locals("role", claims.Role)
	c.Locals("sessionId", claims.SessionID())
}

// AuthJWT guards API routes and answers 401 JSON.
func AuthJWT(c *fiber.Ctx) error {
	claims, token, aerr := authenticate(c)
	if aerr != nil {
		return c.Status(aerr.status).JSON(fiber.Map{"error": aerr.reason})
	}
	setLocals(c, claims, token)
	return c.Next()
}

// AuthPage guards HTML pages and redirects to the login page.
func AuthPage(c *fiber.Ctx) error {
	claims, token, aerr := authenticate(c)
	if aerr != nil && aerr.status == fiber.StatusServiceUnavailable {
		return c.Status(aerr.status).SendString(aerr.reason)
	}
	if aerr != nil {
		c.ClearCookie(SessionCookie)
		return c.Redirect("/login?from="+url.QueryEscape(c.OriginalURL()), fiber.StatusSeeOther)
	}
	setLocals(c, claims, token)
	return c.Next()
}

// RequireRole lets only the given role through. Pages are sent home, API
// callers get 403.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if r, _ := c.Locals("role").(string); r == role {
			return c.Next()
		}
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
		}
		return c.Redirect("/", fiber.StatusSeeOther)
	}
}

// Claims returns the claims stored by AuthJWT/AuthPage.
func Claims(c *fiber.Ctx) *utils.JWTClaims {
	claims, _ := c.Locals("claims").(*utils.JWTClaims)
	return claims
}
