package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soundvault/catalog-api/internal/core/domain"
	"github.com/soundvault/catalog-api/internal/core/ports"
)

// UserHandler handles HTTP requests for the identity lifecycle.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Age      int    `json:"age"`
	Role     string `json:"role"`
}

type changePasswordRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates a user and returns the signed bearer token as the
// response body.
//
// @Summary      Login
// @Tags         users
// @Produce      plain
// @Param        username  path      string  true  "Username"
// @Param        password  path      string  true  "Password"
// @Success      200       {string}  string  "JWT bearer token"
// @Failure      400       {object}  map[string]string
// @Failure      401       {object}  map[string]string
// @Failure      409       {object}  map[string]string
// @Router       /api/UserLogin/Login/{username}/{password} [post]
func (h *UserHandler) Login(c echo.Context) error {
	username := c.Param("username")
	password := c.Param("password")

	token, err := h.service.Login(c.Request().Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyField):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "username and password are required"})
		case errors.Is(err, domain.ErrUserNotFound):
			// Unknown identities answer 409, not 404, so the login surface
			// keeps the legacy store's status contract.
			return c.JSON(http.StatusConflict, map[string]string{"error": "unknown user"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		}
		return err
	}

	return c.String(http.StatusOK, token)
}

// Create registers a new identity. Administrator only. The supplied age is
// ignored (a fixed default is stored) and unknown roles coerce to basic.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User to create"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/UserLogin/CreateUser [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyField):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "username and password are required"})
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusConflict, map[string]string{"error": "user already exists"})
		}
		return err
	}

	return c.JSON(http.StatusOK, user)
}

// List returns every stored identity. Administrator only.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.User
// @Router       /api/UserLogin/GetAllUsers [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ChangePassword overwrites a user's credential after re-verifying the
// current one. Credential-based, no token required.
//
// @Summary      Change a user's password
// @Tags         users
// @Accept       json
// @Param        newPassword  path  string                 true  "New password"
// @Param        body         body  changePasswordRequest  true  "Current credential"
// @Success      200
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/UserLogin/ChangePassword/{newPassword} [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	err := h.service.ChangePassword(c.Request().Context(), req.Username, req.Password, c.Param("newPassword"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyField):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "username, password, and new password are required"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		}
		return err
	}

	return c.NoContent(http.StatusOK)
}

// Delete removes an identity by username. Administrator only. Outstanding
// tokens issued to the identity remain valid until they expire.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        username  path  string  true  "Username"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/UserLogin/DeleteUser/{username} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("username")); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
