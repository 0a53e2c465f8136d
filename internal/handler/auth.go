package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"golden-catering/internal/dto"
	"golden-catering/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.authService.Register(ctx, req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Email already exists"})
		}
		slog.Error("registration failed", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error"})
	}

	return c.JSON(http.StatusCreated, map[string]string{"message": "Registration successful"})
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}

	resp, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid credentials"})
		}
		slog.Error("login failed", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error"})
	}

	return c.JSON(http.StatusOK, resp)
}

// GoogleLogin trusts the identity claims forwarded by the client; the Google
// token's signature is verified in the browser, not here.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.GoogleLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return validationErrorResponse(c, err)
	}

	resp, err := h.authService.GoogleLogin(ctx, req.Email, req.Name, req.GoogleID)
	if err != nil {
		slog.Error("google login failed", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error"})
	}

	return c.JSON(http.StatusOK, resp)
}

// validationErrorResponse renders field-level validation failures as a 400
// with one entry per offending field.
func validationErrorResponse(c echo.Context, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request"})
	}

	fieldErrors := make([]dto.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, dto.FieldError{
			Field:   fe.Field(),
			Message: "Invalid value",
		})
	}

	return c.JSON(http.StatusBadRequest, map[string]any{"errors": fieldErrors})
}
