package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chargemesh/cms-admin-api/internal/api/metrics"
	"github.com/chargemesh/cms-admin-api/internal/core/ports"
)

// ChargerHandler serves the charger device management endpoints.
type ChargerHandler struct {
	service ports.ChargerService
}

func NewChargerHandler(service ports.ChargerService) *ChargerHandler {
	return &ChargerHandler{service: service}
}

// FetchAllocatedChargerByClientToAssociation handles
// POST /FetchAllocatedChargerByClientToAssociation.
func (h *ChargerHandler) FetchAllocatedChargerByClientToAssociation(c echo.Context) error {
	var req fetchAllocatedChargersRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	chargers, err := h.service.ListByAssociation(c.Request().Context(), req.AssociationID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successData(chargers))
}

// UpdateDevice handles POST /UpdateDevice.
//
// @Summary      Update a charger's network and location settings
// @Tags         chargers
// @Accept       json
// @Produce      json
// @Param        body  body      updateDeviceRequest  true  "charger fields"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /UpdateDevice [post]
func (h *ChargerHandler) UpdateDevice(c echo.Context) error {
	var req updateDeviceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.UpdateDevice(c.Request().Context(), ports.UpdateDeviceInput{
		ChargerID:     req.ChargerID,
		Accessibility: req.Accessibility,
		WifiUsername:  req.WifiUsername,
		WifiPassword:  req.WifiPassword,
		Lat:           req.Lat,
		Long:          req.Long,
		ModifiedBy:    req.ModifiedBy,
	})
	if err != nil {
		return err
	}

	metrics.ChargerUpdatesTotal.WithLabelValues("network").Inc()
	return c.JSON(http.StatusOK, successMessage("Charger updated successfully"))
}

// DeActivateOrActivateCharger handles POST /DeActivateOrActivateCharger.
func (h *ChargerHandler) DeActivateOrActivateCharger(c echo.Context) error {
	var req chargerStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.SetChargerStatus(c.Request().Context(), ports.SetChargerStatusInput{
		ChargerID:  req.ChargerID,
		Status:     *req.Status,
		ModifiedBy: req.ModifiedBy,
	})
	if err != nil {
		return err
	}

	metrics.ChargerUpdatesTotal.WithLabelValues("status").Inc()
	return c.JSON(http.StatusOK, successMessage("Charger updated successfully"))
}
