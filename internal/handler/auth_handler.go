package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username    string `json:"username" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	PhoneNumber string `json:"phone_number" validate:"required,phone"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest represents a token refresh request.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest represents a logout request.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthData is the profile-plus-token payload returned on register and login.
type AuthData struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

func authData(user *model.User, accessToken, refreshToken string) AuthData {
	return AuthData{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		PhoneNumber:  user.PhoneNumber,
		Token:        accessToken,
		RefreshToken: refreshToken,
	}
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} Response
// @Failure 422 {object} Response
// @Failure 500 {object} Response
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return respondValidation(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	user, accessToken, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password, req.PhoneNumber)
	if err != nil {
		switch err {
		case errors.ErrUsernameTaken:
			return c.JSON(http.StatusUnprocessableEntity, Response{
				Message: "Validation Error!",
				Data:    []FieldError{{ItemName: "username", Message: err.Error()}},
			})
		case errors.ErrEmailTaken:
			return c.JSON(http.StatusUnprocessableEntity, Response{
				Message: "Validation Error!",
				Data:    []FieldError{{ItemName: "email", Message: err.Error()}},
			})
		}
		return respondError(c, err)
	}

	return respond(c, http.StatusCreated, "Register User Successfully!", authData(user, accessToken, ""))
}

// Login godoc
// @Summary Login with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Failure 500 {object} Response
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return respondValidation(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	user, accessToken, refreshToken, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return respond(c, http.StatusOK, "Login successfully!", authData(user, accessToken, refreshToken))
}

// Refresh godoc
// @Summary Exchange a refresh token for a new access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Router /refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return respondValidation(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	accessToken, err := h.authService.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return respondError(c, err)
	}

	return respond(c, http.StatusOK, "Refresh Token Successfully!", map[string]string{"token": accessToken})
}

// Logout godoc
// @Summary Invalidate a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LogoutRequest true "Refresh token"
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req LogoutRequest
	if err := c.Bind(&req); err != nil {
		return respondValidation(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return respondValidation(c, err)
	}

	if err := h.authService.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return respondError(c, err)
	}

	return respond(c, http.StatusOK, "Logout Successfully!", nil)
}
