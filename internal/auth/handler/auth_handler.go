package handler

import (
	"errors"
	"log"
	"time"

	"github.com/AnthoniusHendriyanto/session-service/internal/auth/dto"
	"github.com/AnthoniusHendriyanto/session-service/internal/auth/service"
	autherror "github.com/AnthoniusHendriyanto/session-service/internal/errors"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService *service.UserService
	cookieTTL   time.Duration
}

func NewAuthHandler(userService *service.UserService, cookieTTLDays int) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		cookieTTL:   time.Duration(cookieTTLDays) * 24 * time.Hour,
	}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": "invalid input",
		})
	}

	user, token, err := h.userService.Signup(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrStoreUnavailable) {
			log.Printf("auth: signup failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "error",
				"message": "internal server error",
			})
		}

		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": err.Error(),
		})
	}

	AttachToken(c, token, h.cookieTTL)

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		Status: "success",
		Token:  token,
		Data:   dto.AuthData{User: dto.NewUserOutput(user)},
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": "invalid input",
		})
	}

	user, token, err := h.userService.Login(c.UserContext(), input)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrMissingCredentials):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "fail",
				"message": err.Error(),
			})
		case errors.Is(err, autherror.ErrStoreUnavailable):
			log.Printf("auth: login failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "error",
				"message": "internal server error",
			})
		default:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "fail",
				"message": err.Error(),
			})
		}
	}

	AttachToken(c, token, h.cookieTTL)

	return c.Status(fiber.StatusOK).JSON(dto.AuthResponse{
		Status: "success",
		Token:  token,
		Data:   dto.AuthData{User: dto.NewUserOutput(user)},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	ClearToken(c)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
	})
}

// Me returns the authenticated user attached by Protect.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := CurrentUser(c)

	return c.Status(fiber.StatusOK).JSON(dto.AuthResponse{
		Status: "success",
		Data:   dto.AuthData{User: dto.NewUserOutput(user)},
	})
}

// LoginPage is the redirect target for the view guard. Rendering is
// out of scope; this only anchors the route.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "please log in",
	})
}

// AccountPage stands in for a signed-in view behind RequireLogin.
func (h *AuthHandler) AccountPage(c *fiber.Ctx) error {
	user := CurrentUser(c)

	return c.Status(fiber.StatusOK).JSON(dto.AuthResponse{
		Status: "success",
		Data:   dto.AuthData{User: dto.NewUserOutput(user)},
	})
}
