package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wattline/energy-tracker/internal/core/ports"
)

// AuthHandler handles HTTP requests for the OTP login flow.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type requestOTPRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type requestOTPResponse struct {
	Message string `json:"message"`
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp"   validate:"required,min=3"`
}

type verifyOTPResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// RequestOTP arms and emails a one-time passcode.
//
// @Summary      Request a login code by email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      requestOTPRequest  true  "Name and email"
// @Success      200   {object}  requestOTPResponse
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /v1/otp [post]
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req requestOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.RequestOTP(c.Request().Context(), req.Name, req.Email); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, requestOTPResponse{Message: "otp sent"})
}

// VerifyOTP exchanges a valid passcode for a session token.
//
// @Summary      Verify a login code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      verifyOTPRequest  true  "Email and code"
// @Success      200   {object}  verifyOTPResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/otp/verify [post]
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.VerifyOTP(c.Request().Context(), req.Email, req.OTP)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, verifyOTPResponse{
		Token:  result.Token,
		UserID: result.UserID,
		Name:   result.Name,
		Email:  result.Email,
	})
}
