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

type CountryHandler struct {
	countryService service.CountryService
}

func NewCountryHandler(countryService service.CountryService) *CountryHandler {
	return &CountryHandler{countryService: countryService}
}

func (h *CountryHandler) RegisterRoutes(router *gin.RouterGroup) {
	countries := router.Group("/api/countries")
	countries.Use(middleware.RequireRole(model.RoleAdmin))
	{
		countries.GET("", h.ListCountries)
		countries.GET("/:id", h.GetCountry)
		countries.POST("", h.CreateCountry)
		countries.POST("/query", h.QueryCountries)
		countries.PUT("/:id", h.UpdateCountry)
		countries.DELETE("/:id", h.DeleteCountry)
	}
}

// ListCountries returns all countries ordered by name
// @Summary      List countries
// @Tags         countries
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/countries [get]
func (h *CountryHandler) ListCountries(c *gin.Context) {
	countries, err := h.countryService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, countries))
}

// GetCountry returns a single country by ID
// @Summary      Get country
// @Tags         countries
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Country ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/countries/{id} [get]
func (h *CountryHandler) GetCountry(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid country ID"))
		return
	}

	country, err := h.countryService.GetByID(c.Request.Context(), id)
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, country))
}

// QueryCountries serves the server-side table: filter, sort, page
// @Summary      Query countries for tabular display
// @Tags         countries
// @Security     BearerAuth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Success      200  {object}  datatable.Response[service.CountryVM]
// @Router       /api/countries/query [post]
func (h *CountryHandler) QueryCountries(c *gin.Context) {
	req := datatable.ParseRequest(c)
	res, err := h.countryService.Query(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, res)
}

// CreateCountry creates a new country
// @Summary      Create country
// @Tags         countries
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CountryRequest  true  "Country payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/countries [post]
func (h *CountryHandler) CreateCountry(c *gin.Context) {
	var req service.CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	country, err := h.countryService.Create(c.Request.Context(), req, actorFrom(c))
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, country))
}

// UpdateCountry updates an existing country
// @Summary      Update country
// @Tags         countries
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  int                     true  "Country ID"
// @Param        payload  body  service.CountryRequest  true  "Country payload"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/countries/{id} [put]
func (h *CountryHandler) UpdateCountry(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid country ID"))
		return
	}

	var req service.CountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	country, err := h.countryService.Update(c.Request.Context(), id, req, actorFrom(c))
	if err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, country))
}

// DeleteCountry deletes a country if no cities or employees reference it
// @Summary      Delete country
// @Tags         countries
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  int  true  "Country ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/countries/{id} [delete]
func (h *CountryHandler) DeleteCountry(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid country ID"))
		return
	}

	if err := h.countryService.Delete(c.Request.Context(), id, actorFrom(c)); err != nil {
		status := statusFor(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Country deleted successfully"}))
}
