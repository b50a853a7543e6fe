package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wattline/energy-tracker/internal/core/ports"
)

// ApplianceHandler handles HTTP requests for the appliance ledger.
type ApplianceHandler struct {
	service ports.ApplianceService
}

func NewApplianceHandler(service ports.ApplianceService) *ApplianceHandler {
	return &ApplianceHandler{service: service}
}

// Create handles POST /v1/appliances.
//
// @Summary      Create an appliance record
// @Tags         appliances
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createApplianceRequest  true  "Appliance fields"
// @Success      201   {object}  applianceResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/appliances [post]
func (h *ApplianceHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createApplianceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), toCreateInput(req, userID))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toApplianceResponse(created))
}

// List handles GET /v1/appliances.
//
// @Summary      List own appliance records, newest first
// @Tags         appliances
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   applianceResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/appliances [get]
func (h *ApplianceHandler) List(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toApplianceListResponse(items))
}

// Update handles PUT /v1/appliances/:id.
//
// @Summary      Update an appliance record (partial)
// @Tags         appliances
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Appliance id"
// @Param        body  body      updateApplianceRequest  true  "Fields to change"
// @Success      200   {object}  applianceResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/appliances/{id} [put]
func (h *ApplianceHandler) Update(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateApplianceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), userID, toUpdateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toApplianceResponse(updated))
}

// Delete handles DELETE /v1/appliances/:id.
//
// @Summary      Delete an appliance record
// @Tags         appliances
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Appliance id"
// @Success      200  {object}  deleteApplianceResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/appliances/{id} [delete]
func (h *ApplianceHandler) Delete(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id, userID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, deleteApplianceResponse{Deleted: id})
}
