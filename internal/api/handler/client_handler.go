package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chargemesh/cms-admin-api/internal/core/ports"
)

// ClientHandler serves the reseller-side client management endpoints.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// FetchAllClients handles POST /FetchAllClients.
func (h *ClientHandler) FetchAllClients(c echo.Context) error {
	var req fetchAllClientsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	clients, err := h.service.ListClients(c.Request().Context(), req.ResellerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successData(clients))
}

// AddNewClient handles POST /AddNewClient.
func (h *ClientHandler) AddNewClient(c echo.Context) error {
	var req addClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.service.AddClient(c.Request().Context(), ports.AddClientInput{
		ResellerID: req.ResellerID,
		ClientName: req.ClientName,
		PhoneNo:    req.PhoneNo,
		EmailID:    req.EmailID,
		Address:    req.Address,
		CreatedBy:  req.CreatedBy,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successMessage("New client added successfully"))
}

// UpdateClient handles POST /UpdateClient.
func (h *ClientHandler) UpdateClient(c echo.Context) error {
	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.UpdateClient(c.Request().Context(), ports.UpdateClientInput{
		ClientID:   req.ClientID,
		ClientName: req.ClientName,
		PhoneNo:    req.PhoneNo,
		Address:    req.Address,
		Status:     req.Status,
		ModifiedBy: req.ModifiedBy,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successMessage("Client updated successfully"))
}

// DeActivateClient handles POST /DeActivateClient.
func (h *ClientHandler) DeActivateClient(c echo.Context) error {
	var req clientStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.service.SetClientStatus(c.Request().Context(), ports.SetClientStatusInput{
		ClientID:   req.ClientID,
		Status:     *req.Status,
		ModifiedBy: req.ModifiedBy,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successMessage("Client deactivated successfully"))
}
