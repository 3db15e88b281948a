package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridersapp/internal/middleware"
	"ridersapp/internal/model"
	"ridersapp/internal/service"
	"ridersapp/internal/websocket"
	"ridersapp/pkg/datatable"
	"ridersapp/pkg/response"
)

type DailyRideHandler struct {
	rideService service.DailyRideService
	hub         *websocket.Hub
}

func NewDailyRideHandler(rideService service.DailyRideService, hub *websocket.Hub) *DailyRideHandler {
	return &DailyRideHandler{rideService: rideService, hub: hub}
}

func (h *DailyRideHandler) RegisterRoutes(router *gin.RouterGroup) {
	rides := router.Group("/api/daily-rides")
	rides.Use(middleware.RequireRole(model.RoleUser, model.RoleAdmin))
	{
		rides.GET("", h.ListDailyRides)
		rides.GET("/:id", h.GetDailyRide)
		rides.POST("", h.CreateDailyRide)
		rides.POST("/query", h.QueryDailyRides)
		rides.PUT("/:id", h.UpdateDailyRide)
		rides.DELETE("/:id", h.DeleteDailyRide)
	}
}

func (h *DailyRideHandler) notify(action string) {
	if h.hub != nil {
		h.hub.NotifyChange("daily_ride", action)
	}
}

// ListDailyRides returns all ride entries, newest first
// @Summary      List daily rides
// @Tags         daily-rides
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/daily-rides [get]
func (h *DailyRideHandler) ListDailyRides(c *gin.Context) {
	rides, err := h.rideService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rides))
}

func (h *DailyRideHandler) GetDailyRide(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid daily ride ID"))
		return
	}

	ride, err := h.rideService.GetByID(c.Request.Context(), id)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, ride))
}

// QueryDailyRides serves the server-side table: filter, sort, page
// @Summary      Query daily rides for tabular display
// @Tags         daily-rides
// @Security     BearerAuth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Success      200  {object}  datatable.Response[service.DailyRideVM]
// @Router       /api/daily-rides/query [post]
func (h *DailyRideHandler) QueryDailyRides(c *gin.Context) {
	req := datatable.ParseRequest(c)
	res, err := h.rideService.Query(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, res)
}

// CreateDailyRide records a ride entry. WAT amounts are computed from the
// current CashWAT/CreditWAT configuration, never taken from the client.
// @Summary      Create daily ride
// @Tags         daily-rides
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.DailyRideRequest  true  "Daily ride payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/daily-rides [post]
func (h *DailyRideHandler) CreateDailyRide(c *gin.Context) {
	var req service.DailyRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	ride, err := h.rideService.Create(c.Request.Context(), req, actorFrom(c))
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	h.notify("created")
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, ride))
}

func (h *DailyRideHandler) UpdateDailyRide(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid daily ride ID"))
		return
	}

	var req service.DailyRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	ride, err := h.rideService.Update(c.Request.Context(), id, req, actorFrom(c))
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	h.notify("updated")
	c.JSON(http.StatusOK, response.Success(http.StatusOK, ride))
}

func (h *DailyRideHandler) DeleteDailyRide(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid daily ride ID"))
		return
	}

	if err := h.rideService.Delete(c.Request.Context(), id, actorFrom(c)); err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	h.notify("deleted")
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Daily ride deleted successfully"}))
}
