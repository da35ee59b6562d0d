package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chargemesh/cms-admin-api/internal/core/ports"
)

// ProfileHandler serves the per-account profile and wallet endpoints.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// FetchUserProfile handles POST /FetchUserProfile.
//
// @Summary      Fetch a user profile with its association details
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      fetchUserProfileRequest  true  "user id"
// @Success      200   {object}  dataResponse
// @Failure      404   {object}  map[string]string
// @Router       /FetchUserProfile [post]
func (h *ProfileHandler) FetchUserProfile(c echo.Context) error {
	var req fetchUserProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	profile, err := h.service.FetchUserProfile(c.Request().Context(), req.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successData(profile))
}

// UpdateUserProfile handles POST /UpdateUserProfile.
func (h *ProfileHandler) UpdateUserProfile(c echo.Context) error {
	var req updateUserProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.UpdateUserProfile(c.Request().Context(), ports.UpdateUserProfileInput{
		UserID:   req.UserID,
		Username: req.Username,
		PhoneNo:  req.PhoneNo,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successMessage("User profile updated successfully"))
}

// UpdateAssociationProfile handles POST /UpdateAssociationProfile.
func (h *ProfileHandler) UpdateAssociationProfile(c echo.Context) error {
	var req updateAssociationProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.UpdateAssociationProfile(c.Request().Context(), ports.UpdateAssociationProfileInput{
		AssociationID: req.AssociationID,
		PhoneNo:       req.PhoneNo,
		Address:       req.Address,
		ModifiedBy:    req.ModifiedBy,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successMessage("Association profile updated successfully"))
}

// FetchCommissionAmtAssociation handles POST /FetchCommissionAmtAssociation,
// returning only the user's wallet balance.
func (h *ProfileHandler) FetchCommissionAmtAssociation(c echo.Context) error {
	var req walletRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	balance, err := h.service.WalletBalance(c.Request().Context(), req.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successData(balance))
}
