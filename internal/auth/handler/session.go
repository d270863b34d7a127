package handler

import (
	"strings"
	"time"

	"github.com/AnthoniusHendriyanto/session-service/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

// ExtractToken pulls the token off the request without inspecting it.
// An Authorization bearer header wins over the jwt cookie when both
// are present.
func ExtractToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(authHeader, constant.BearerScheme) {
		if token := authHeader[len(constant.BearerScheme):]; token != "" {
			return token, true
		}
	}

	if token := c.Cookies(constant.TokenCookieName); token != "" {
		return token, true
	}

	return "", false
}

// AttachToken sets the session cookie. HTTPOnly keeps the token out
// of reach of page scripts.
func AttachToken(c *fiber.Ctx, token string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     constant.TokenCookieName,
		Value:    token,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
	})
}

// ClearToken overwrites the session cookie with an already-expired
// one. The token itself stays valid until its expiry; there is no
// server-side revocation in this design.
func ClearToken(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     constant.TokenCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}
