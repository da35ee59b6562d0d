package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chargemesh/cms-admin-api/internal/api/metrics"
	"github.com/chargemesh/cms-admin-api/internal/core/domain"
	"github.com/chargemesh/cms-admin-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// loginResponse keeps data as the bare reseller record the admin console
// expects; the session token rides alongside it.
type loginResponse struct {
	Status string           `json:"status"`
	Data   *domain.Reseller `json:"data"`
	Token  string           `json:"token,omitempty"`
}

// CheckLoginCredentials authenticates an admin against the stored user/role
// pair and returns the linked reseller record.
//
// @Summary      Check admin login credentials
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "email, password and role name"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /CheckLoginCredentials [post]
func (h *AuthHandler) CheckLoginCredentials(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		RoleName: req.Admin,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("unauthorized").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Status: "Success",
		Data:   result.Reseller,
		Token:  result.Token,
	})
}
