package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dwirez99/majunkita/internal/api/metrics"
	"github.com/dwirez99/majunkita/internal/core/ports"
)

// UserHandler exposes the administrative user operations over HTTP. All
// authorization decisions live in the service; the handler only binds,
// validates shape, and renders.
type UserHandler struct {
	service ports.UserAdminService
}

func NewUserHandler(service ports.UserAdminService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /create-user.
//
// @Summary      Create a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "New user details"
// @Success      200   {object}  createUserResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /create-user [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	callerID, err := ctxCallerID(c)
	if err != nil {
		return err
	}

	result, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		CallerID: callerID,
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
		Name:     req.Name,
		Role:     req.Role,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues(result.Role).Inc()

	return c.JSON(http.StatusOK, createUserResponse{
		Success: true,
		Message: "User created successfully",
		User:    createdUser{ID: result.ID, Email: result.Email, Role: result.Role},
	})
}

// Update handles POST /update-user.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /update-user [post]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	callerID, err := ctxCallerID(c)
	if err != nil {
		return err
	}

	err = h.service.UpdateUser(c.Request().Context(), ports.UpdateUserInput{
		CallerID: callerID,
		UserID:   req.UserID,
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
		Name:     req.Name,
		Phone:    req.Phone,
		Role:     req.Role,
		Address:  req.Address,
	})
	if err != nil {
		return err
	}

	metrics.UsersUpdatedTotal.Inc()

	return c.JSON(http.StatusOK, statusResponse{
		Success: true,
		Message: "User updated successfully",
	})
}

// Delete handles POST /delete-user.
//
// @Summary      Delete a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      deleteUserRequest  true  "Account to delete"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /delete-user [post]
func (h *UserHandler) Delete(c echo.Context) error {
	var req deleteUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	callerID, err := ctxCallerID(c)
	if err != nil {
		return err
	}

	err = h.service.DeleteUser(c.Request().Context(), ports.DeleteUserInput{
		CallerID: callerID,
		UserID:   req.UserID,
	})
	if err != nil {
		return err
	}

	metrics.UsersDeletedTotal.Inc()

	return c.JSON(http.StatusOK, statusResponse{
		Success: true,
		Message: "User deleted successfully",
	})
}
