package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chargemesh/cms-admin-api/internal/api/metrics"
	"github.com/chargemesh/cms-admin-api/internal/core/ports"
)

// MembershipHandler serves the association membership endpoints.
type MembershipHandler struct {
	service ports.MembershipService
}

func NewMembershipHandler(service ports.MembershipService) *MembershipHandler {
	return &MembershipHandler{service: service}
}

// FetchUsersWithSpecificRolesToAssgin handles
// GET /FetchUsersWithSpecificRolesToAssgin: users eligible for assignment.
// An empty candidate set is a 404, matching the admin console's contract.
func (h *MembershipHandler) FetchUsersWithSpecificRolesToAssgin(c echo.Context) error {
	users, err := h.service.AssignableUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successData(users))
}

// AddUserToAssociation handles POST /AddUserToAssociation.
func (h *MembershipHandler) AddUserToAssociation(c echo.Context) error {
	var req assignUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.Assign(c.Request().Context(), ports.AssignInput{
		AssociationID: req.AssociationID,
		UserID:        req.UserID,
		ModifiedBy:    req.ModifiedBy,
	})
	if err != nil {
		return err
	}

	metrics.MembershipChangesTotal.WithLabelValues("assign").Inc()
	return c.JSON(http.StatusOK, successMessage("User Successfully Assigned to Association"))
}

// FetchUsersWithSpecificRolesToUnAssgin handles
// POST /FetchUsersWithSpecificRolesToUnAssgin: the users currently assigned
// to the given association.
func (h *MembershipHandler) FetchUsersWithSpecificRolesToUnAssgin(c echo.Context) error {
	var req assignedUsersRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	users, err := h.service.AssignedUsers(c.Request().Context(), req.AssociationID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successData(users))
}

// RemoveUserFromAssociation handles POST /RemoveUserFromAssociation.
func (h *MembershipHandler) RemoveUserFromAssociation(c echo.Context) error {
	var req unassignUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.Unassign(c.Request().Context(), ports.UnassignInput{
		UserID:        req.UserID,
		AssociationID: req.AssociationID,
		ModifiedBy:    req.ModifiedBy,
	})
	if err != nil {
		return err
	}

	metrics.MembershipChangesTotal.WithLabelValues("unassign").Inc()
	return c.JSON(http.StatusOK, successMessage("User successfully removed from association"))
}
