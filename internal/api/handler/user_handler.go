package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/chargemesh/cms-admin-api/internal/api/metrics"
	"github.com/chargemesh/cms-admin-api/internal/core/ports"
)

// UserHandler serves the admin user management endpoints.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// FetchUsers handles GET /FetchUsers: all managed-role users with their
// resolved role/reseller/client/association names.
//
// @Summary      List managed users
// @Tags         users
// @Produce      json
// @Success      200  {object}  dataResponse
// @Failure      500  {object}  map[string]string
// @Router       /FetchUsers [get]
func (h *UserHandler) FetchUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successData(users))
}

// FetchSpecificUserRoleForSelection handles GET /FetchSpecificUserRoleForSelection.
func (h *UserHandler) FetchSpecificUserRoleForSelection(c echo.Context) error {
	roles, err := h.service.SelectableRoles(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successData(roles))
}

// CreateUser handles POST /CreateUser.
//
// @Summary      Create a user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "new user fields"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /CreateUser [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Username:      req.Username,
		RoleID:        req.RoleID,
		EmailID:       req.EmailID,
		Password:      req.Password,
		PhoneNo:       req.PhoneNo,
		CreatedBy:     req.CreatedBy,
		ResellerID:    req.ResellerID,
		ClientID:      req.ClientID,
		AssociationID: req.AssociationID,
	})
	if err != nil {
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues(strconv.Itoa(user.RoleID)).Inc()
	return c.JSON(http.StatusOK, successMessage("New user created successfully"))
}

// UpdateUser handles POST /UpdateUser.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.UpdateUser(c.Request().Context(), ports.UpdateUserInput{
		UserID:        req.UserID,
		Username:      req.Username,
		PhoneNo:       req.PhoneNo,
		Password:      req.Password,
		WalletBalance: req.WalletBalance,
		Status:        req.Status,
		ModifiedBy:    req.ModifiedBy,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successMessage("User updated successfully"))
}

// DeActivateUser handles POST /DeActivateUser. The status field must be a
// JSON boolean; anything else fails validation.
func (h *UserHandler) DeActivateUser(c echo.Context) error {
	var req deactivateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.SetUserStatus(c.Request().Context(), ports.SetUserStatusInput{
		UserID:     req.UserID,
		Status:     *req.Status,
		ModifiedBy: req.ModifiedBy,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successMessage("User deactivated successfully"))
}
