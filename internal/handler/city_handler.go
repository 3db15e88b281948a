package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridersapp/internal/middleware"
	"ridersapp/internal/model"
	"ridersapp/internal/service"
	"ridersapp/pkg/datatable"
	"ridersapp/pkg/response"
)

type CityHandler struct {
	cityService service.CityService
}

func NewCityHandler(cityService service.CityService) *CityHandler {
	return &CityHandler{cityService: cityService}
}

func (h *CityHandler) RegisterRoutes(router *gin.RouterGroup) {
	cities := router.Group("/api/cities")
	cities.Use(middleware.RequireRole(model.RoleAdmin))
	{
		cities.GET("", h.ListCities)
		cities.GET("/:id", h.GetCity)
		cities.POST("", h.CreateCity)
		cities.POST("/query", h.QueryCities)
		cities.PUT("/:id", h.UpdateCity)
		cities.DELETE("/:id", h.DeleteCity)
	}
}

// ListCities returns all cities with their country names
// @Summary      List cities
// @Tags         cities
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/cities [get]
func (h *CityHandler) ListCities(c *gin.Context) {
	cities, err := h.cityService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, cities))
}

func (h *CityHandler) GetCity(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid city ID"))
		return
	}

	city, err := h.cityService.GetByID(c.Request.Context(), id)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, city))
}

func (h *CityHandler) QueryCities(c *gin.Context) {
	req := datatable.ParseRequest(c)
	res, err := h.cityService.Query(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, res)
}

// CreateCity creates a new city under an existing country
// @Summary      Create city
// @Tags         cities
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CityRequest  true  "City payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/cities [post]
func (h *CityHandler) CreateCity(c *gin.Context) {
	var req service.CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	city, err := h.cityService.Create(c.Request.Context(), req, actorFrom(c))
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, city))
}

func (h *CityHandler) UpdateCity(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid city ID"))
		return
	}

	var req service.CityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	city, err := h.cityService.Update(c.Request.Context(), id, req, actorFrom(c))
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, city))
}

// DeleteCity deletes a city if no employees reference it
// @Summary      Delete city
// @Tags         cities
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "City ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/cities/{id} [delete]
func (h *CityHandler) DeleteCity(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid city ID"))
		return
	}

	if err := h.cityService.Delete(c.Request.Context(), id, actorFrom(c)); err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "City deleted successfully"}))
}
