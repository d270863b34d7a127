package handler

import (
	"errors"
	"log"

	"github.com/AnthoniusHendriyanto/session-service/internal/auth/domain"
	autherror "github.com/AnthoniusHendriyanto/session-service/internal/errors"
	"github.com/AnthoniusHendriyanto/session-service/internal/obs"
	"github.com/AnthoniusHendriyanto/session-service/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

// authenticate is the gate core shared by both guard variants:
// extract the token, verify it and re-fetch its user.
func (h *AuthHandler) authenticate(c *fiber.Ctx) (*domain.User, error) {
	token, ok := ExtractToken(c)
	if !ok {
		return nil, autherror.ErrMissingToken
	}

	return h.userService.Authenticate(c.UserContext(), token)
}

// Protect is the API guard and the actual authorization boundary.
// Auth failures come back as structured 401s; a store outage is a
// logged 500, never blamed on the client.
func (h *AuthHandler) Protect(c *fiber.Ctx) error {
	user, err := h.authenticate(c)
	if err != nil {
		obs.RecordAuthOutcome(outcomeLabel(err))

		if errors.Is(err, autherror.ErrStoreUnavailable) {
			log.Printf("auth: user lookup failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "error",
				"message": "internal server error",
			})
		}

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  "fail",
			"message": err.Error(),
		})
	}

	obs.RecordAuthOutcome(obs.ResultAuthorized)
	c.Locals(constant.CurrentUserKey, user)

	return c.Next()
}

// RequireLogin is the view guard. It is advisory only: every failure,
// including a store outage, becomes a redirect to the sign-in page so
// the end user never sees a raw error. Data must be protected by
// Protect, not by this.
func (h *AuthHandler) RequireLogin(c *fiber.Ctx) error {
	user, err := h.authenticate(c)
	if err != nil {
		obs.RecordAuthOutcome(outcomeLabel(err))
		if errors.Is(err, autherror.ErrStoreUnavailable) {
			log.Printf("auth: user lookup failed: %v", err)
		}

		return c.Redirect("/login", fiber.StatusFound)
	}

	obs.RecordAuthOutcome(obs.ResultAuthorized)
	c.Locals(constant.CurrentUserKey, user)

	return c.Next()
}

// CurrentUser returns the user Protect or RequireLogin attached to
// the request, or nil on an unguarded route.
func CurrentUser(c *fiber.Ctx) *domain.User {
	user, _ := c.Locals(constant.CurrentUserKey).(*domain.User)
	return user
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, autherror.ErrMissingToken):
		return obs.ResultMissingToken
	case errors.Is(err, autherror.ErrInvalidSignature):
		return obs.ResultInvalidSignature
	case errors.Is(err, autherror.ErrExpiredToken):
		return obs.ResultExpired
	case errors.Is(err, autherror.ErrUserNotFound):
		return obs.ResultUserNotFound
	case errors.Is(err, autherror.ErrPasswordChanged):
		return obs.ResultPasswordChanged
	case errors.Is(err, autherror.ErrStoreUnavailable):
		return obs.ResultStoreError
	default:
		return obs.ResultMalformed
	}
}
